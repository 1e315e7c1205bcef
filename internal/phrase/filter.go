package phrase

// Filter keeps matches whose source and target spans are both at least
// minLength runes long. Empty spans never survive, whatever minLength is.
// Order is preserved and the input is not modified.
func Filter(matches []Match, minLength int) []Match {
	minLength = max(minLength, 1)

	var kept []Match

	for _, m := range matches {
		if m.SourceLength >= minLength && m.TargetLength >= minLength {
			kept = append(kept, m)
		}
	}

	return kept
}

// Rejected returns the matches Filter would drop.
func Rejected(matches []Match, minLength int) []Match {
	minLength = max(minLength, 1)

	var dropped []Match

	for _, m := range matches {
		if m.SourceLength < minLength || m.TargetLength < minLength {
			dropped = append(dropped, m)
		}
	}

	return dropped
}
