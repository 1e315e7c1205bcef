package bilingual

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"phrase-highlighter/internal/segment"
)

const sampleDoc = `
segments:
  - id: "1"
    source:
      - text: "Press the "
      - tag: b
        children:
          - text: Start
      - placeholder: "{1}"
      - text: " button"
      - comment: check wording
    target: Nospiediet pogu Start
    alignment:
      - source_start: 10
        source_length: 5
        source_text: Start
        target_start: 16
        target_length: 5
        target_text: Start
        confidence: 1
  - source: Hello World
    target:
      - locked: "v2.1"
      - text: Hello World
      - revision: r1
      - location: loc
      - other: x
`

func TestParse(t *testing.T) {
	t.Parallel()

	file, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, file.Segments, 2)

	first := file.Segments[0]
	assert.Equal(t, "1", first.ID)
	require.Len(t, first.Source, 5)
	assert.Equal(t, segment.KindText, first.Source[0].Kind)
	assert.Equal(t, segment.KindTagPair, first.Source[1].Kind)
	assert.Equal(t, "b", first.Source[1].Name)
	require.Len(t, first.Source[1].Children, 1)
	assert.Equal(t, "Start", first.Source[1].Children[0].Text)
	assert.Equal(t, segment.KindPlaceholder, first.Source[2].Kind)
	assert.Equal(t, segment.KindCommentMarker, first.Source[4].Kind)

	require.Len(t, first.Target, 1)
	assert.Equal(t, "Nospiediet pogu Start", first.Target[0].Text)

	require.Len(t, first.Alignment, 1)
	assert.Equal(t, 10, first.Alignment[0].SourceStart)
	assert.Equal(t, 16, first.Alignment[0].TargetStart)
	assert.InDelta(t, 1.0, first.Alignment[0].Confidence, 1e-9)

	second := file.Segments[1]
	assert.Equal(t, "2", second.ID, "missing IDs default to position")

	kinds := make([]segment.NodeKind, 0, len(second.Target))
	for _, n := range second.Target {
		kinds = append(kinds, n.Kind)
	}

	assert.Equal(t, []segment.NodeKind{
		segment.KindLockedContent,
		segment.KindText,
		segment.KindRevisionMarker,
		segment.KindLocationMarker,
		segment.KindOtherMarker,
	}, kinds)
}

func TestDocument(t *testing.T) {
	t.Parallel()

	file, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	doc, alignments := file.Document()
	require.Len(t, doc.Pairs, 2)

	assert.Equal(t, "Press the Start button", doc.Pairs[0].Source.PlainText())
	assert.Equal(t, "Hello World", doc.Pairs[1].Target.PlainText())

	assert.Len(t, alignments["1"], 1)
	assert.NotContains(t, alignments, "2")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("segments: [\n"))
	require.Error(t, err)

	_, err = Parse([]byte("segments:\n  - source:\n      - bogus: 1\n    target: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recognised key")

	_, err = Parse([]byte("segments:\n  - source:\n      key: value\n    target: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "string or a list of nodes")
}

func TestRead_UTF16WithBOM(t *testing.T) {
	t.Parallel()

	doc := "segments:\n  - source: Ūdens ir dzīvība\n    target: Water is life\n"

	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(doc))
	require.NoError(t, err)

	file, err := Read(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, file.Segments, 1)
	assert.Equal(t, "Ūdens ir dzīvība", file.Segments[0].Source[0].Text)
}

func TestRead_UTF8WithBOM(t *testing.T) {
	t.Parallel()

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("segments:\n  - source: a\n    target: b\n")...)

	file, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, file.Segments, 1)
	assert.Equal(t, "a", file.Segments[0].Source[0].Text)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Segments, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open bilingual file")
}
