package engine

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"phrase-highlighter/internal/diagnostic"
	"phrase-highlighter/internal/match"
	"phrase-highlighter/internal/phrase"
	"phrase-highlighter/internal/policy"
)

// Source identifies where the matches of a Report came from.
type Source int

const (
	SourceNone Source = iota
	SourceAligned
	SourceExternal
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceAligned:
		return "aligned"
	case SourceExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Options configures an Engine.
type Options struct {
	// Logger receives recovered faults and per-call summaries. Nil discards.
	Logger *slog.Logger
}

// Engine finds phrase matches between a source text and its translation.
// It is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
	merge  func([]phrase.Match, int) []phrase.Match
}

// Report is the result of Explain: the matches plus why other tokens and
// phrases did not make it.
type Report struct {
	Matches     []phrase.Match
	Source      Source
	Diagnostics diagnostic.Diagnostics
}

// New creates an Engine.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine{logger: logger, merge: phrase.Merge}
}

// FindPhraseMatches returns the phrase matches between source and target,
// ordered by source position. external, when non-empty, is used instead of the
// word-level alignment but still passes the length filter.
func (e *Engine) FindPhraseMatches(source, target string, p policy.Policy, external []phrase.Match) []phrase.Match {
	return e.run(source, target, p, external, nil).Matches
}

// Explain runs the same pipeline as FindPhraseMatches and records diagnostics
// for unaligned tokens, filtered phrases and recovered faults.
func (e *Engine) Explain(source, target string, p policy.Policy, external []phrase.Match) Report {
	var diags diagnostic.Diagnostics

	report := e.run(source, target, p, external, &diags)
	report.Diagnostics = diags

	return report
}

func (e *Engine) run(
	source, target string,
	p policy.Policy,
	external []phrase.Match,
	diags *diagnostic.Diagnostics,
) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("phrase matching failed", "panic", r)

			if diags != nil {
				diags.AddError("internal_fault", fmt.Sprintf("recovered: %v", r), "", "")
			}

			report = Report{Source: SourceNone}
		}
	}()

	if strings.TrimSpace(source) == "" || strings.TrimSpace(target) == "" {
		if diags != nil {
			diags.AddInfo("blank_text", "source or target text is blank", "", "")
		}

		return Report{Source: SourceNone}
	}

	p = p.Sanitize()

	var candidates []phrase.Match

	if len(external) > 0 {
		report.Source = SourceExternal
		candidates = external
	} else {
		report.Source = SourceAligned
		candidates = e.alignWords(source, target, p, diags)
	}

	report.Matches = phrase.Filter(candidates, p.MinPhraseLength)

	if diags != nil {
		for _, m := range phrase.Rejected(candidates, p.MinPhraseLength) {
			diags.AddInfo("phrase_too_short",
				fmt.Sprintf("dropped %s: shorter than %d characters", m, p.MinPhraseLength),
				"", m.SourceText)
		}
	}

	e.logger.Debug("phrase matching done",
		"source", report.Source.String(),
		"candidates", len(candidates),
		"matches", len(report.Matches))

	return report
}

// alignWords runs the word-level pipeline up to, but excluding, the filter.
func (e *Engine) alignWords(source, target string, p policy.Policy, diags *diagnostic.Diagnostics) []phrase.Match {
	sourceTokens := match.Tokenize(source, p)
	targetTokens := match.Tokenize(target, p)

	if len(sourceTokens) == 0 || len(targetTokens) == 0 {
		if diags != nil {
			diags.AddInfo("no_tokens", "no words survived tokenization", "", "")
		}

		return nil
	}

	alignment := match.AlignDetailed(sourceTokens, targetTokens, p)

	if diags != nil {
		for _, rej := range alignment.Unaligned {
			reason := "no target words left"
			if rej.HasBest {
				reason = fmt.Sprintf("best candidate %q (%.2f) below threshold %.2f",
					rej.Best.Text, rej.BestScore, p.MinSimilarityScore)
			}

			diags.AddWarning("unaligned_token", reason, "", rej.Source.Text)
		}
	}

	return e.merge(phrase.FromPairs(alignment.Pairs), p.MaxGapSize)
}

var defaultEngine = New(Options{})

// FindPhraseMatches runs the pipeline with a silent Engine.
func FindPhraseMatches(source, target string, p policy.Policy, external []phrase.Match) []phrase.Match {
	return defaultEngine.FindPhraseMatches(source, target, p, external)
}
