package match

import (
	"fmt"
	"unicode"
)

// Token is a word-like unit extracted from one string.
// Start and Length are counted in runes of the originating string.
type Token struct {
	Text       string
	Normalized string
	Start      int
	Length     int
}

// End returns the rune offset just past the token.
func (t Token) End() int {
	return t.Start + t.Length
}

func (t Token) String() string {
	return fmt.Sprintf("%q@%d+%d", t.Text, t.Start, t.Length)
}

// IsImportant reports whether a word must be kept even when shorter than the
// minimum word length: numerals and acronyms are translation anchors.
func IsImportant(word string) bool {
	return isNumeral(word) || isAcronym(word)
}

// isNumeral reports whether s consists solely of digits.
func isNumeral(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// isAcronym reports whether s consists solely of at least two uppercase letters.
func isAcronym(s string) bool {
	n := 0

	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}

		n++
	}

	return n >= 2
}
