// Package policy holds the tunable thresholds that govern tokenization,
// similarity acceptance and phrase merging.
package policy

import (
	"fmt"
	"math"

	"phrase-highlighter/internal/diagnostic"
)

// Default threshold values.
const (
	DefaultMinPhraseLength    = 3
	DefaultMinWordLength      = 2
	DefaultMinSimilarityScore = 0.8
	DefaultMaxGapSize         = 5
)

// Policy is a read-only value object consumed by the matching engine.
// Lengths and gaps are measured in characters (runes).
type Policy struct {
	// MinPhraseLength is the minimum span length, on both sides, of a returned phrase.
	MinPhraseLength int `json:"minPhraseLength" yaml:"min_phrase_length"`
	// MinWordLength is the minimum token length kept by the tokenizer.
	// Numerals and acronyms are kept regardless.
	MinWordLength int `json:"minWordLength" yaml:"min_word_length"`
	// MinSimilarityScore is the lowest token similarity accepted as a pair.
	MinSimilarityScore float64 `json:"minSimilarityScore" yaml:"min_similarity_score"`
	// MaxGapSize is the largest gap between two matches that still merges them.
	MaxGapSize int `json:"maxGapSize" yaml:"max_gap_size"`
	// CaseSensitive disables case folding of tokens before comparison.
	CaseSensitive bool `json:"caseSensitive" yaml:"case_sensitive"`
}

// Default returns the policy with the documented default thresholds.
func Default() Policy {
	return Policy{
		MinPhraseLength:    DefaultMinPhraseLength,
		MinWordLength:      DefaultMinWordLength,
		MinSimilarityScore: DefaultMinSimilarityScore,
		MaxGapSize:         DefaultMaxGapSize,
		CaseSensitive:      false,
	}
}

// Sanitize returns a copy with out-of-range values clamped into their valid range.
// The engine calls it on every invocation so a bad policy degrades instead of failing.
func (p Policy) Sanitize() Policy {
	if p.MinPhraseLength < 0 {
		p.MinPhraseLength = 0
	}

	if p.MinWordLength < 0 {
		p.MinWordLength = 0
	}

	if p.MaxGapSize < 0 {
		p.MaxGapSize = 0
	}

	switch {
	case math.IsNaN(p.MinSimilarityScore):
		p.MinSimilarityScore = DefaultMinSimilarityScore
	case p.MinSimilarityScore < 0:
		p.MinSimilarityScore = 0
	case p.MinSimilarityScore > 1:
		p.MinSimilarityScore = 1
	}

	return p
}

// Validate reports every out-of-range threshold. It is meant for the settings
// layer; the engine itself only relies on Sanitize.
func (p Policy) Validate() error {
	var diags diagnostic.Diagnostics

	if p.MinPhraseLength <= 0 {
		diags.AddError("invalid_policy",
			fmt.Sprintf("min phrase length must be positive, got %d", p.MinPhraseLength),
			"", "min_phrase_length")
	}

	if p.MinWordLength <= 0 {
		diags.AddError("invalid_policy",
			fmt.Sprintf("min word length must be positive, got %d", p.MinWordLength),
			"", "min_word_length")
	}

	if !isInRange(0, p.MinSimilarityScore, 1) {
		diags.AddError("invalid_policy",
			fmt.Sprintf("min similarity score must be within [0,1], got %v", p.MinSimilarityScore),
			"", "min_similarity_score")
	}

	if p.MaxGapSize < 0 {
		diags.AddError("invalid_policy",
			fmt.Sprintf("max gap size must not be negative, got %d", p.MaxGapSize),
			"", "max_gap_size")
	}

	return diags.Error()
}

type number interface {
	~int | ~float64
}

// isInRange checks if a value is within the specified range, both inclusive.
// NaN is never in range.
func isInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}
