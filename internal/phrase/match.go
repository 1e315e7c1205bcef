package phrase

import (
	"fmt"

	"phrase-highlighter/internal/match"
)

// Match is a confirmed correspondence between a source span and a target span.
// Offsets and lengths are counted in runes.
type Match struct {
	SourceStart  int     `json:"sourceStart" yaml:"source_start"`
	SourceLength int     `json:"sourceLength" yaml:"source_length"`
	SourceText   string  `json:"sourceText" yaml:"source_text"`
	TargetStart  int     `json:"targetStart" yaml:"target_start"`
	TargetLength int     `json:"targetLength" yaml:"target_length"`
	TargetText   string  `json:"targetText" yaml:"target_text"`
	Confidence   float64 `json:"confidenceScore" yaml:"confidence"`
}

// FromPair wraps one aligned token pair as a single-token match.
func FromPair(pair match.TokenPair) Match {
	return Match{
		SourceStart:  pair.Source.Start,
		SourceLength: pair.Source.Length,
		SourceText:   pair.Source.Text,
		TargetStart:  pair.Target.Start,
		TargetLength: pair.Target.Length,
		TargetText:   pair.Target.Text,
		Confidence:   pair.Score,
	}
}

// FromPairs wraps every aligned pair, preserving order.
func FromPairs(pairs []match.TokenPair) []Match {
	if len(pairs) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(pairs))
	for _, pair := range pairs {
		matches = append(matches, FromPair(pair))
	}

	return matches
}

// SourceEnd returns the rune offset just past the source span.
func (m Match) SourceEnd() int {
	return m.SourceStart + m.SourceLength
}

// TargetEnd returns the rune offset just past the target span.
func (m Match) TargetEnd() int {
	return m.TargetStart + m.TargetLength
}

// SliceSource returns the exact source substring covered by the match.
// SourceText of a merged match is space-joined; use this when the original
// inter-word characters matter.
func (m Match) SliceSource(source string) string {
	return sliceRunes(source, m.SourceStart, m.SourceLength)
}

// SliceTarget returns the exact target substring covered by the match.
func (m Match) SliceTarget(target string) string {
	return sliceRunes(target, m.TargetStart, m.TargetLength)
}

func (m Match) String() string {
	return fmt.Sprintf("'%s' (%d,%d) <-> '%s' (%d,%d) [%.0f%%]",
		m.SourceText, m.SourceStart, m.SourceLength,
		m.TargetText, m.TargetStart, m.TargetLength,
		m.Confidence*100)
}

func sliceRunes(s string, start, length int) string {
	runes := []rune(s)

	start = max(0, min(start, len(runes)))
	end := max(start, min(start+length, len(runes)))

	return string(runes[start:end])
}
