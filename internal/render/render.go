// Package render prints highlighted segments and match tables to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"phrase-highlighter/internal/phrase"
	"phrase-highlighter/internal/segment"
)

var (
	markupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Segment renders every node of s: highlighted text runs on their background,
// tags, placeholders and locked content dimmed, invisible markers omitted.
func Segment(s *segment.Segment) string {
	if s == nil {
		return ""
	}

	var b strings.Builder

	writeNodes(&b, s.Nodes)

	return b.String()
}

func writeNodes(b *strings.Builder, nodes []segment.Node) {
	for _, n := range nodes {
		switch n.Kind {
		case segment.KindText:
			b.WriteString(textRun(n))
		case segment.KindTagPair:
			b.WriteString(markupStyle.Render("<" + n.Name + ">"))
			writeNodes(b, n.Children)
			b.WriteString(markupStyle.Render("</" + n.Name + ">"))
		case segment.KindPlaceholder:
			b.WriteString(markupStyle.Render(n.Name))
		case segment.KindLockedContent:
			b.WriteString(lockedStyle.Render(n.Text))
		case segment.KindLocationMarker, segment.KindCommentMarker,
			segment.KindOtherMarker, segment.KindRevisionMarker:
			// not visible in the editor either
		}
	}
}

func textRun(n segment.Node) string {
	if n.Background == nil {
		return n.Text
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(n.Background.Hex())).
		Foreground(lipgloss.Color("#000000")).
		Render(n.Text)
}

// Pair writes a segment pair as two labelled lines.
func Pair(w io.Writer, pair *segment.Pair) error {
	if pair == nil {
		return nil
	}

	_, err := fmt.Fprintf(w, "%s\n  src: %s\n  tgt: %s\n",
		idStyle.Render("#"+pair.ID), Segment(pair.Source), Segment(pair.Target))

	return err
}

// Table writes matches as aligned columns. Confidence is included when
// withConfidence is set.
func Table(w io.Writer, matches []phrase.Match, withConfidence bool) error {
	sourceWidth := runewidth.StringWidth("SOURCE")
	targetWidth := runewidth.StringWidth("TARGET")

	for _, m := range matches {
		sourceWidth = max(sourceWidth, runewidth.StringWidth(m.SourceText))
		targetWidth = max(targetWidth, runewidth.StringWidth(m.TargetText))
	}

	header := runewidth.FillRight("SOURCE", sourceWidth) + "  "
	if withConfidence {
		header += runewidth.FillRight("TARGET", targetWidth) + "  CONFIDENCE"
	} else {
		header += "TARGET"
	}

	if _, err := fmt.Fprintln(w, headerStyle.Render(header)); err != nil {
		return err
	}

	for _, m := range matches {
		line := runewidth.FillRight(m.SourceText, sourceWidth) + "  "
		if withConfidence {
			line += runewidth.FillRight(m.TargetText, targetWidth) + fmt.Sprintf("  %3.0f%%", m.Confidence*100)
		} else {
			line += m.TargetText
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
