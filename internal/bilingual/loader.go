package bilingual

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"phrase-highlighter/internal/phrase"
	"phrase-highlighter/internal/segment"
)

// File is the decoded form of a bilingual document.
type File struct {
	Segments []SegmentPair `yaml:"segments"`
}

// SegmentPair is one entry of a bilingual document.
type SegmentPair struct {
	ID        string         `yaml:"id"`
	Source    Content        `yaml:"source"`
	Target    Content        `yaml:"target"`
	Alignment []phrase.Match `yaml:"alignment,omitempty"`
}

// Content is one side of a segment pair.
type Content []segment.Node

// LoadFile reads and parses a bilingual document from path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bilingual file %s: %w", path, err)
	}
	defer f.Close()

	file, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// Read decodes a bilingual document. A UTF-16 or UTF-8 byte order mark selects
// the encoding; without one the input is taken as UTF-8.
func Read(r io.Reader) (*File, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("failed to decode bilingual document: %w", err)
	}

	return Parse(data)
}

// Parse parses UTF-8 YAML data into a File and fills in missing segment IDs
// with their 1-based position.
func Parse(data []byte) (*File, error) {
	var file File

	if err := yaml.Unmarshal(bytes.TrimSpace(data), &file); err != nil {
		return nil, fmt.Errorf("failed to parse bilingual YAML: %w", err)
	}

	for i := range file.Segments {
		if file.Segments[i].ID == "" {
			file.Segments[i].ID = fmt.Sprint(i + 1)
		}
	}

	return &file, nil
}

// Document converts the file into the segment model and returns the
// pre-computed alignments keyed by segment ID.
func (f *File) Document() (*segment.Document, map[string][]phrase.Match) {
	doc := &segment.Document{}
	alignments := make(map[string][]phrase.Match)

	for _, sp := range f.Segments {
		doc.Pairs = append(doc.Pairs, &segment.Pair{
			ID:     sp.ID,
			Source: segment.New(sp.Source...),
			Target: segment.New(sp.Target...),
		})

		if len(sp.Alignment) > 0 {
			alignments[sp.ID] = sp.Alignment
		}
	}

	return doc, alignments
}

// UnmarshalYAML accepts either a scalar string or a sequence of node mappings.
func (c *Content) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = Content{segment.TextNode(value.Value)}

		return nil
	case yaml.SequenceNode:
		nodes := make(Content, 0, len(value.Content))

		for _, item := range value.Content {
			var spec nodeSpec
			if err := item.Decode(&spec); err != nil {
				return err
			}

			n, err := spec.node()
			if err != nil {
				return fmt.Errorf("line %d: %w", item.Line, err)
			}

			nodes = append(nodes, n)
		}

		*c = nodes

		return nil
	default:
		return fmt.Errorf("line %d: segment content must be a string or a list of nodes", value.Line)
	}
}

type nodeSpec struct {
	Text        *string `yaml:"text"`
	Tag         string  `yaml:"tag"`
	Children    Content `yaml:"children"`
	Placeholder string  `yaml:"placeholder"`
	Location    string  `yaml:"location"`
	Comment     string  `yaml:"comment"`
	Other       string  `yaml:"other"`
	Locked      string  `yaml:"locked"`
	Revision    string  `yaml:"revision"`
}

func (s nodeSpec) node() (segment.Node, error) {
	switch {
	case s.Text != nil:
		return segment.TextNode(*s.Text), nil
	case s.Tag != "":
		return segment.TagPairNode(s.Tag, s.Children...), nil
	case s.Placeholder != "":
		return segment.Node{Kind: segment.KindPlaceholder, Name: s.Placeholder}, nil
	case s.Location != "":
		return segment.Node{Kind: segment.KindLocationMarker, Name: s.Location}, nil
	case s.Comment != "":
		return segment.Node{Kind: segment.KindCommentMarker, Text: s.Comment}, nil
	case s.Other != "":
		return segment.Node{Kind: segment.KindOtherMarker, Name: s.Other}, nil
	case s.Locked != "":
		return segment.Node{Kind: segment.KindLockedContent, Text: s.Locked}, nil
	case s.Revision != "":
		return segment.Node{Kind: segment.KindRevisionMarker, Name: s.Revision}, nil
	default:
		return segment.Node{}, errors.New("node has no recognised key")
	}
}
