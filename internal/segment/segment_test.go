package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var yellow = RGB(255, 255, 200)

func sample() *Segment {
	return New(
		TextNode("Press the "),
		TagPairNode("b", TextNode("Start")),
		Node{Kind: KindPlaceholder, Name: "{1}"},
		TextNode(" button"),
		Node{Kind: KindLockedContent, Text: "LOCKED"},
		Node{Kind: KindCommentMarker, Text: "check"},
	)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Press the Start button", sample().PlainText())
	assert.Empty(t, (*Segment)(nil).PlainText())
	assert.Empty(t, New().PlainText())
}

func TestApplyHighlight_SplitsRuns(t *testing.T) {
	t.Parallel()

	s := FromText("Hello big World")
	s.ApplyHighlight(6, 3, yellow)

	runs := s.Runs()
	require.Len(t, runs, 3)
	assert.Equal(t, "Hello ", runs[0].Text)
	assert.Nil(t, runs[0].Background)
	assert.Equal(t, "big", runs[1].Text)
	require.NotNil(t, runs[1].Background)
	assert.Equal(t, yellow, *runs[1].Background)
	assert.Equal(t, " World", runs[2].Text)
	assert.Nil(t, runs[2].Background)

	assert.Equal(t, "Hello big World", s.PlainText())
}

func TestApplyHighlight_AcrossTagPair(t *testing.T) {
	t.Parallel()

	s := sample()
	// "the Start" spans a text run and the bold child.
	s.ApplyHighlight(6, 9, yellow)

	var highlighted []string

	for _, r := range s.Runs() {
		if r.Background != nil {
			highlighted = append(highlighted, r.Text)
		}
	}

	assert.Equal(t, []string{"the ", "Start"}, highlighted)
	assert.Equal(t, "Press the Start button", s.PlainText())
	assert.Equal(t, KindTagPair, s.Nodes[2].Kind, "tag pair survives the split")
}

func TestApplyHighlight_RuneOffsets(t *testing.T) {
	t.Parallel()

	s := FromText("Ūdens ir dzīvība")
	s.ApplyHighlight(9, 7, yellow)

	runs := s.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, "dzīvība", runs[1].Text)
	assert.NotNil(t, runs[1].Background)
}

func TestApplyHighlight_IgnoresBadRanges(t *testing.T) {
	t.Parallel()

	s := FromText("short")
	s.ApplyHighlight(-1, 3, yellow)
	s.ApplyHighlight(2, 0, yellow)
	s.ApplyHighlight(50, 3, yellow)

	runs := s.Runs()
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].Background)

	s.ApplyHighlight(3, 50, yellow)
	runs = s.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, "rt", runs[1].Text)
	assert.NotNil(t, runs[1].Background)
}

func TestClearHighlights(t *testing.T) {
	t.Parallel()

	s := FromText("Hello big World")
	s.ApplyHighlight(0, 5, yellow)
	s.ApplyHighlight(10, 5, RGB(200, 255, 200))
	require.Len(t, s.Runs(), 3)

	s.ClearHighlights()

	runs := s.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, "Hello big World", runs[0].Text)
	assert.Nil(t, runs[0].Background)
}

func TestNodeKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "KindText", KindText.String())
	assert.Equal(t, "KindRevisionMarker", KindRevisionMarker.String())
	assert.Equal(t, "NodeKind(0)", NodeKind(0).String())

	assert.True(t, KindText.HasText())
	assert.True(t, KindTagPair.HasText())
	assert.False(t, KindLockedContent.HasText())
	assert.False(t, NodeKind(0).HasText())
}

func TestColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ffffc8", yellow.Hex())

	c, err := ParseHex("#C8E6FF")
	require.NoError(t, err)
	assert.Equal(t, RGB(200, 230, 255), c)

	_, err = ParseHex("#abc")
	require.Error(t, err)

	_, err = ParseHex("zzzzzz")
	require.Error(t, err)
}
