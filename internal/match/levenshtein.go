package match

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-rune edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// The full (len(a)+1) x (len(b)+1) table is filled; inputs are word-sized.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(len(a) * len(b)).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	cols := len(rb) + 1
	d := make([]int, (len(ra)+1)*cols)

	for i := 0; i <= len(ra); i++ {
		d[i*cols] = i
	}

	for j := 0; j <= len(rb); j++ {
		d[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			d[i*cols+j] = min(
				d[(i-1)*cols+j]+1,      // deletion
				d[i*cols+j-1]+1,        // insertion
				d[(i-1)*cols+j-1]+cost, // substitution
			)
		}
	}

	return d[len(ra)*cols+len(rb)]
}

// LevenshteinNormalized computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(len(a), len(b))), lengths in runes.
// Two empty strings score 0: there is nothing to match.
func LevenshteinNormalized(a, b string) float64 {
	maxLen := max(runeCount(a), runeCount(b))
	if maxLen == 0 {
		return 0
	}

	if a == b {
		return 1.0
	}

	distance := Levenshtein(a, b)

	return 1.0 - float64(distance)/float64(maxLen)
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}

	return n
}
