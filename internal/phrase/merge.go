package phrase

import (
	"sort"
)

// Merge coalesces neighbouring matches into multi-word phrases in a single
// left-to-right sweep over matches sorted by SourceStart.
//
// Two consecutive matches merge only when they are close in both texts:
// the next source span starts within maxGap runes of the current one's end,
// and the next target span starts within maxGap runes (either direction) of
// the current target end. A merged match stays current, so chains absorb any
// number of further neighbours. The input slice is not modified.
//
// The merged source span ends at the later of the two source ends. For
// sorted, non-overlapping token matches that is always the next match's end;
// overlapping input never yields a span shorter than the current one.
func Merge(matches []Match, maxGap int) []Match {
	if len(matches) <= 1 {
		return matches
	}

	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SourceStart < sorted[j].SourceStart
	})

	merged := make([]Match, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if Adjacent(current, next, maxGap) {
			current = combine(current, next)

			continue
		}

		merged = append(merged, current)
		current = next
	}

	merged = append(merged, current)

	return merged
}

// Adjacent reports whether next may be merged into current.
func Adjacent(current, next Match, maxGap int) bool {
	sourceAdjacent := next.SourceStart <= current.SourceEnd()+maxGap
	targetAdjacent := abs(next.TargetStart-current.TargetEnd()) <= maxGap

	return sourceAdjacent && targetAdjacent
}

// combine builds the match spanning both inputs. The aligner may pair target
// tokens out of order, so the target span uses min/max of both spans.
func combine(current, next Match) Match {
	sourceEnd := max(current.SourceEnd(), next.SourceEnd())
	targetStart := min(current.TargetStart, next.TargetStart)
	targetEnd := max(current.TargetEnd(), next.TargetEnd())

	return Match{
		SourceStart:  current.SourceStart,
		SourceLength: sourceEnd - current.SourceStart,
		SourceText:   current.SourceText + " " + next.SourceText,
		TargetStart:  targetStart,
		TargetLength: targetEnd - targetStart,
		TargetText:   current.TargetText + " " + next.TargetText,
		Confidence:   (current.Confidence + next.Confidence) / 2,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
