package match

import (
	"phrase-highlighter/internal/policy"
)

// TokenPair is one aligned source/target token with its similarity score.
type TokenPair struct {
	Source Token
	Target Token
	Score  float64
}

// Rejection records a source token that found no partner above the threshold.
// Best is the closest unused target token, if any target was left to compare.
type Rejection struct {
	Source    Token
	Best      Token
	BestScore float64
	HasBest   bool
}

// Alignment is the full result of a greedy alignment pass.
type Alignment struct {
	Pairs     []TokenPair
	Unaligned []Rejection
}

// Align greedily pairs each source token, left to right, with the unused target
// token of strictly highest similarity, provided it reaches p.MinSimilarityScore.
// Ties go to the lowest target index. A target token is used at most once.
// Pairs are returned in source order.
func Align(source, target []Token, p policy.Policy) []TokenPair {
	return AlignDetailed(source, target, p).Pairs
}

// AlignDetailed is Align that also reports every unaligned source token.
func AlignDetailed(source, target []Token, p policy.Policy) Alignment {
	var result Alignment

	used := make([]bool, len(target))

	for _, src := range source {
		bestIdx := -1
		bestScore := 0.0

		rejected := Rejection{Source: src}

		for j, tgt := range target {
			if used[j] {
				continue
			}

			score := Similarity(src, tgt)

			if score > bestScore && score >= p.MinSimilarityScore {
				bestScore = score
				bestIdx = j
			}

			if !rejected.HasBest || score > rejected.BestScore {
				rejected.Best = tgt
				rejected.BestScore = score
				rejected.HasBest = true
			}
		}

		if bestIdx < 0 {
			result.Unaligned = append(result.Unaligned, rejected)

			continue
		}

		used[bestIdx] = true
		result.Pairs = append(result.Pairs, TokenPair{
			Source: src,
			Target: target[bestIdx],
			Score:  bestScore,
		})
	}

	return result
}
