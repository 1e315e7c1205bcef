package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func single(text string, sourceStart, targetStart int, score float64) Match {
	n := len([]rune(text))

	return Match{
		SourceStart:  sourceStart,
		SourceLength: n,
		SourceText:   text,
		TargetStart:  targetStart,
		TargetLength: n,
		TargetText:   text,
		Confidence:   score,
	}
}

func TestMerge_AdjacentPair(t *testing.T) {
	t.Parallel()

	merged := Merge([]Match{
		single("Hello", 0, 0, 1.0),
		single("World", 6, 6, 1.0),
	}, 5)

	require.Len(t, merged, 1)
	assert.Equal(t, Match{
		SourceStart:  0,
		SourceLength: 11,
		SourceText:   "Hello World",
		TargetStart:  0,
		TargetLength: 11,
		TargetText:   "Hello World",
		Confidence:   1.0,
	}, merged[0])
}

func TestMerge_OutOfOrderTarget(t *testing.T) {
	t.Parallel()

	// "cat 123 dog" <-> "123 dog cat"
	merged := Merge([]Match{
		single("cat", 0, 8, 1.0),
		single("123", 4, 0, 1.0),
		single("dog", 8, 4, 1.0),
	}, 5)

	require.Len(t, merged, 2)
	assert.Equal(t, "cat", merged[0].SourceText)
	assert.Equal(t, 8, merged[0].TargetStart)

	assert.Equal(t, "123 dog", merged[1].SourceText)
	assert.Equal(t, 4, merged[1].SourceStart)
	assert.Equal(t, 7, merged[1].SourceLength)
	assert.Equal(t, 0, merged[1].TargetStart)
	assert.Equal(t, 7, merged[1].TargetLength)
}

func TestMerge_TargetMinMax(t *testing.T) {
	t.Parallel()

	// "big house" <-> "casa grande": target order is reversed.
	big := Match{SourceStart: 0, SourceLength: 3, SourceText: "big",
		TargetStart: 5, TargetLength: 6, TargetText: "grande", Confidence: 1.0}
	house := Match{SourceStart: 4, SourceLength: 5, SourceText: "house",
		TargetStart: 0, TargetLength: 4, TargetText: "casa", Confidence: 0.8}

	assert.Len(t, Merge([]Match{big, house}, 5), 2)

	merged := Merge([]Match{big, house}, 11)
	require.Len(t, merged, 1)
	assert.Equal(t, "big house", merged[0].SourceText)
	assert.Equal(t, 9, merged[0].SourceLength)
	assert.Equal(t, 0, merged[0].TargetStart)
	assert.Equal(t, 11, merged[0].TargetLength)
	assert.Equal(t, "grande casa", merged[0].TargetText)
	assert.InDelta(t, 0.9, merged[0].Confidence, 1e-9)
}

func TestMerge_ChainAbsorbsManyTokens(t *testing.T) {
	t.Parallel()

	merged := Merge([]Match{
		single("one", 0, 0, 1.0),
		single("two", 4, 4, 1.0),
		single("three", 8, 8, 1.0),
		single("four", 14, 14, 1.0),
	}, 1)

	require.Len(t, merged, 1)
	assert.Equal(t, "one two three four", merged[0].SourceText)
	assert.Equal(t, 18, merged[0].SourceLength)
	assert.Equal(t, 18, merged[0].TargetLength)
}

func TestMerge_BothGapsRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		next Match
		want int
	}{
		{name: "close in both", next: single("bb", 5, 5, 1), want: 1},
		{name: "far in source", next: single("bb", 20, 5, 1), want: 2},
		{name: "far in target", next: single("bb", 5, 20, 1), want: 2},
		{name: "target before current", next: single("bb", 5, 0, 1), want: 1},
		{name: "gap exactly max", next: single("bb", 7, 7, 1), want: 1},
		{name: "gap one past max", next: single("bb", 8, 8, 1), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Merge([]Match{single("aa", 0, 0, 1), tt.next}, 5)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestMerge_SortsBySource(t *testing.T) {
	t.Parallel()

	input := []Match{
		single("zeta", 40, 40, 1),
		single("alpha", 0, 0, 1),
		single("mid", 20, 20, 1),
	}

	merged := Merge(input, 2)
	require.Len(t, merged, 3)
	assert.Equal(t, 0, merged[0].SourceStart)
	assert.Equal(t, 20, merged[1].SourceStart)
	assert.Equal(t, 40, merged[2].SourceStart)

	// input untouched
	assert.Equal(t, 40, input[0].SourceStart)
}

func TestMerge_Trivial(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Merge(nil, 5))

	one := []Match{single("solo", 3, 7, 0.9)}
	assert.Equal(t, one, Merge(one, 5))
}

func TestMerge_Monotonic(t *testing.T) {
	t.Parallel()

	input := []Match{
		single("the", 0, 10, 0.9),
		single("red", 4, 0, 1.0),
		single("car", 8, 4, 0.85),
		single("stops", 30, 30, 1.0),
		single("here", 36, 28, 0.8),
	}

	covered := func(ms []Match) (src, tgt int) {
		for _, m := range ms {
			src += m.SourceLength
			tgt += m.TargetLength
		}

		return src, tgt
	}

	inSrc, inTgt := covered(input)
	merged := Merge(input, 5)
	outSrc, outTgt := covered(merged)

	assert.GreaterOrEqual(t, outSrc, inSrc)
	assert.GreaterOrEqual(t, outTgt, inTgt)

	for _, m := range merged {
		for _, in := range input {
			if in.SourceStart >= m.SourceStart && in.SourceEnd() <= m.SourceEnd() {
				assert.GreaterOrEqual(t, m.SourceLength, in.SourceLength)
				assert.GreaterOrEqual(t, m.TargetLength, in.TargetLength)
			}
		}
	}
}

func TestMerge_NestedSourceKeepsOuterEnd(t *testing.T) {
	t.Parallel()

	outer := single("greenhouse", 0, 0, 1.0)
	inner := single("reen", 1, 1, 0.5)

	merged := Merge([]Match{outer, inner}, 9)
	require.Len(t, merged, 1)
	assert.Equal(t, 0, merged[0].SourceStart)
	assert.Equal(t, 10, merged[0].SourceLength, "span never shrinks below the current end")
	assert.Equal(t, 10, merged[0].TargetLength)
	assert.InDelta(t, 0.75, merged[0].Confidence, 1e-9)
}
