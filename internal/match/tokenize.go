package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"phrase-highlighter/internal/policy"
)

// Tokenize splits text into word tokens ordered by position.
//
// A word is a maximal run of letters, digits and combining marks, optionally
// joined by apostrophes or hyphens. Apostrophes and hyphens at either end of a
// run are boundaries, not part of the word. Words shorter than
// p.MinWordLength are dropped unless IsImportant. Repeated words are kept.
func Tokenize(text string, p policy.Policy) []Token {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	fold := newFolder(p.CaseSensitive)

	var tokens []Token

	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) {
			i++

			continue
		}

		start := i
		end := i + 1

		// Extend across joiners only when a word rune follows them.
		for j := end; j < len(runes); j++ {
			if isWordRune(runes[j]) {
				end = j + 1

				continue
			}

			if !isJoiner(runes[j]) {
				break
			}
		}

		i = end

		word := string(runes[start:end])
		length := end - start

		if length < p.MinWordLength && !IsImportant(word) {
			continue
		}

		tokens = append(tokens, Token{
			Text:       word,
			Normalized: fold(word),
			Start:      start,
			Length:     length,
		})
	}

	return tokens
}

// newFolder returns the normalization applied to token text before comparison.
// A cases.Caser is not safe for concurrent use, so one is built per call.
func newFolder(caseSensitive bool) func(string) string {
	if caseSensitive {
		return func(s string) string { return s }
	}

	lower := cases.Lower(language.Und)

	return lower.String
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// isJoiner reports apostrophes and hyphens, typographic variants included.
func isJoiner(r rune) bool {
	switch r {
	case '\'', '’', '-', '‐', '‑':
		return true
	default:
		return false
	}
}
