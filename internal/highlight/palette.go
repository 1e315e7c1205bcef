// Package highlight drives the matching engine over segment pairs and
// colours each returned phrase match in both the source and the target.
package highlight

import (
	"slices"

	"phrase-highlighter/internal/segment"
)

// DefaultColors are soft, distinguishable pastel backgrounds.
var DefaultColors = []segment.Color{
	segment.RGB(255, 255, 200), // light yellow
	segment.RGB(200, 255, 200), // light green
	segment.RGB(200, 230, 255), // light blue
	segment.RGB(255, 220, 200), // light peach
	segment.RGB(230, 200, 255), // light purple
	segment.RGB(255, 200, 220), // light pink
	segment.RGB(200, 255, 230), // light mint
	segment.RGB(255, 230, 180), // light orange
	segment.RGB(220, 220, 255), // light lavender
	segment.RGB(255, 240, 200), // light cream
	segment.RGB(200, 245, 255), // light cyan
	segment.RGB(245, 200, 200), // light coral
	segment.RGB(230, 255, 200), // light lime
	segment.RGB(255, 200, 255), // light magenta
	segment.RGB(200, 220, 240), // light steel blue
}

// Palette hands out colours in a fixed cycle. Each highlighting session owns
// its own Palette; it is not safe for concurrent use.
type Palette struct {
	colors []segment.Color
	next   int
}

// NewPalette creates a palette over colors, or DefaultColors when none are given.
func NewPalette(colors ...segment.Color) *Palette {
	if len(colors) == 0 {
		colors = DefaultColors
	}

	return &Palette{colors: slices.Clone(colors)}
}

// Next returns the current colour and advances the cursor, wrapping around.
func (p *Palette) Next() segment.Color {
	if len(p.colors) == 0 {
		return segment.Color{}
	}

	c := p.colors[p.next%len(p.colors)]
	p.next = (p.next + 1) % len(p.colors)

	return c
}

// Reset moves the cursor back to the first colour.
func (p *Palette) Reset() {
	p.next = 0
}

// At returns the colour at index, or the first colour when index is out of range.
func (p *Palette) At(index int) segment.Color {
	if len(p.colors) == 0 {
		return segment.Color{}
	}

	if index < 0 || index >= len(p.colors) {
		return p.colors[0]
	}

	return p.colors[index]
}

// Len returns the number of colours.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Add appends c unless the palette already holds it.
func (p *Palette) Add(c segment.Color) {
	if !slices.Contains(p.colors, c) {
		p.colors = append(p.colors, c)
	}
}

// Remove deletes c and reports whether it was present. The cursor is kept
// within range.
func (p *Palette) Remove(c segment.Color) bool {
	i := slices.Index(p.colors, c)
	if i < 0 {
		return false
	}

	p.colors = slices.Delete(p.colors, i, i+1)

	if p.next >= len(p.colors) {
		p.next = 0
	}

	return true
}

// Colors returns a copy of the palette's colours.
func (p *Palette) Colors() []segment.Color {
	return slices.Clone(p.colors)
}
