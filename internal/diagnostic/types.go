package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics collects the findings of one matching run or one settings
// check, bucketed by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is one finding, such as a token that found no partner or a
// policy value out of range.
type Diagnostic struct {
	Severity Severity
	// Code is a stable snake_case identifier, e.g. "unaligned_token".
	Code    string
	Message string
	// Segment is the ID of the segment pair, empty outside a document.
	Segment string
	// Subject is the token text, phrase text or setting key concerned.
	Subject string
}

// Severity of a Diagnostic. Only errors make Diagnostics.Error non-nil.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError records a finding that makes the checked value unusable.
func (d *Diagnostics) AddError(code, message, segment, subject string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, segment, subject))
}

// AddWarning records a usable but suspicious value.
func (d *Diagnostics) AddWarning(code, message, segment, subject string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, segment, subject))
}

// AddInfo records an explanation, e.g. why a phrase was dropped.
func (d *Diagnostics) AddInfo(code, message, segment, subject string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, segment, subject))
}

func newDiagnostic(sev Severity, code, message, segment, subject string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: message, Segment: segment, Subject: subject}
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error joins the recorded errors, or returns nil when there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}

// String formats d as "[segment] subject: [code] message", omitting empty parts.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	var where []string
	if d.Segment != "" {
		where = append(where, "["+d.Segment+"]")
	}

	if d.Subject != "" {
		where = append(where, d.Subject)
	}

	if len(where) == 0 {
		return msg
	}

	return strings.Join(where, " ") + ": " + msg
}
