package match

// Similarity scores two tokens in [0,1] on their normalized text.
// It is symmetric and deterministic; identical non-empty tokens score exactly 1.
func Similarity(a, b Token) float64 {
	return LevenshteinNormalized(a.Normalized, b.Normalized)
}
