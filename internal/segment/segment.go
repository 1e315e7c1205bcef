package segment

import (
	"strings"
	"unicode/utf8"
)

// Node is one markup item of a segment. Which fields are meaningful depends on
// Kind: Text and Background for text runs, Name and Children for tag pairs,
// Name for placeholders and markers, Text for locked content and comments.
type Node struct {
	Kind       NodeKind
	Text       string
	Name       string
	Background *Color
	Children   []Node
}

// Segment is one side (source or target) of a segment pair.
type Segment struct {
	Nodes []Node
}

// Pair is a source segment and its translation.
type Pair struct {
	ID     string
	Source *Segment
	Target *Segment
}

// Document is an ordered list of segment pairs.
type Document struct {
	Pairs []*Pair
}

// TextNode builds a plain text run.
func TextNode(text string) Node {
	return Node{Kind: KindText, Text: text}
}

// TagPairNode builds a paired tag around children.
func TagPairNode(name string, children ...Node) Node {
	return Node{Kind: KindTagPair, Name: name, Children: children}
}

// New builds a segment from nodes.
func New(nodes ...Node) *Segment {
	return &Segment{Nodes: nodes}
}

// FromText builds a segment holding a single text run.
func FromText(text string) *Segment {
	return New(TextNode(text))
}

// PlainText returns the text the matching engine sees.
func (s *Segment) PlainText() string {
	if s == nil {
		return ""
	}

	var b strings.Builder

	walkText(s.Nodes, func(n *Node) {
		b.WriteString(n.Text)
	})

	return b.String()
}

// Runs returns the text runs in plain-text order, with their backgrounds.
func (s *Segment) Runs() []Node {
	if s == nil {
		return nil
	}

	var runs []Node

	walkText(s.Nodes, func(n *Node) {
		runs = append(runs, *n)
	})

	return runs
}

// ApplyHighlight colours the plain-text range [start, start+length), counted in
// runes. Text runs partially covered by the range are split at its boundaries.
// Out-of-range or empty ranges are ignored.
func (s *Segment) ApplyHighlight(start, length int, c Color) {
	if s == nil || start < 0 || length <= 0 {
		return
	}

	pos := 0
	s.Nodes = highlightNodes(s.Nodes, &pos, start, start+length, c)
}

// ClearHighlights removes every background and joins runs that only differed
// by their background.
func (s *Segment) ClearHighlights() {
	if s == nil {
		return
	}

	s.Nodes = clearNodes(s.Nodes)
}

// walkText calls fn for every text run that contributes to the plain text,
// in document order.
func walkText(nodes []Node, fn func(n *Node)) {
	for i := range nodes {
		n := &nodes[i]
		if !n.Kind.HasText() {
			continue
		}

		if n.Kind == KindTagPair {
			walkText(n.Children, fn)
			continue
		}

		fn(n)
	}
}

func highlightNodes(nodes []Node, pos *int, from, to int, c Color) []Node {
	out := make([]Node, 0, len(nodes))

	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			out = append(out, splitRun(n, pos, from, to, c)...)
		case KindTagPair:
			n.Children = highlightNodes(n.Children, pos, from, to, c)
			out = append(out, n)
		default:
			out = append(out, n)
		}
	}

	return out
}

// splitRun colours the part of run n that overlaps [from, to) and advances pos
// past the run.
func splitRun(n Node, pos *int, from, to int, c Color) []Node {
	runStart := *pos
	runLen := utf8.RuneCountInString(n.Text)
	*pos += runLen

	lo := max(from-runStart, 0)
	hi := min(to-runStart, runLen)

	if lo >= hi {
		return []Node{n}
	}

	runes := []rune(n.Text)
	colour := c

	var parts []Node

	if lo > 0 {
		before := n
		before.Text = string(runes[:lo])
		parts = append(parts, before)
	}

	mid := n
	mid.Text = string(runes[lo:hi])
	mid.Background = &colour
	parts = append(parts, mid)

	if hi < runLen {
		after := n
		after.Text = string(runes[hi:])
		parts = append(parts, after)
	}

	return parts
}

func clearNodes(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))

	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			n.Background = nil

			if last := len(out) - 1; last >= 0 && out[last].Kind == KindText {
				out[last].Text += n.Text

				continue
			}
		case KindTagPair:
			n.Children = clearNodes(n.Children)
		}

		out = append(out, n)
	}

	return out
}
