package highlight

import (
	"io"
	"log/slog"

	"phrase-highlighter/internal/engine"
	"phrase-highlighter/internal/phrase"
	"phrase-highlighter/internal/segment"
	"phrase-highlighter/internal/settings"
)

// Options configures a Highlighter.
type Options struct {
	Engine   *engine.Engine
	Settings *settings.Settings
	Palette  *Palette
	Logger   *slog.Logger
}

// Highlighter colours matching phrases in segment pairs.
type Highlighter struct {
	engine   *engine.Engine
	settings *settings.Settings
	palette  *Palette
	logger   *slog.Logger
}

// Result is what HighlightPair did to one segment pair.
type Result struct {
	PairID  string
	Matches []phrase.Match
	Colors  []segment.Color
}

// New creates a Highlighter. Missing options fall back to defaults.
func New(opts Options) *Highlighter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	eng := opts.Engine
	if eng == nil {
		eng = engine.New(engine.Options{Logger: logger})
	}

	s := opts.Settings
	if s == nil {
		s = settings.DefaultSettings()
	}

	palette := opts.Palette
	if palette == nil {
		palette = NewPalette()
	}

	return &Highlighter{
		engine:   eng,
		settings: s,
		palette:  palette,
		logger:   logger,
	}
}

// HighlightPair finds the phrase matches of pair and colours each match's
// source and target span with the same palette colour. The palette restarts
// for every pair so colours are stable per segment.
func (h *Highlighter) HighlightPair(pair *segment.Pair, external []phrase.Match) Result {
	result := Result{}
	if pair == nil {
		return result
	}

	result.PairID = pair.ID

	sourceText := pair.Source.PlainText()
	targetText := pair.Target.PlainText()

	if !h.settings.UseTranslationMemory {
		external = nil
	}

	result.Matches = h.engine.FindPhraseMatches(sourceText, targetText, h.settings.Policy, external)
	if len(result.Matches) == 0 {
		return result
	}

	h.palette.Reset()

	for _, m := range result.Matches {
		c := h.palette.Next()
		pair.Source.ApplyHighlight(m.SourceStart, m.SourceLength, c)
		pair.Target.ApplyHighlight(m.TargetStart, m.TargetLength, c)
		result.Colors = append(result.Colors, c)
	}

	h.logger.Debug("highlighted segment", "pair", pair.ID, "matches", len(result.Matches))

	return result
}

// HighlightAll highlights every pair of doc. alignments, keyed by pair ID,
// supplies pre-computed matches. It returns the number of segments visited and
// the total number of matches.
func (h *Highlighter) HighlightAll(doc *segment.Document, alignments map[string][]phrase.Match) (segments, matches int) {
	if doc == nil {
		return 0, 0
	}

	for _, pair := range doc.Pairs {
		if pair == nil {
			continue
		}

		res := h.HighlightPair(pair, alignments[pair.ID])
		segments++
		matches += len(res.Matches)
	}

	return segments, matches
}

// ClearAll removes every highlight from doc.
func (h *Highlighter) ClearAll(doc *segment.Document) {
	if doc == nil {
		return
	}

	for _, pair := range doc.Pairs {
		if pair == nil {
			continue
		}

		pair.Source.ClearHighlights()
		pair.Target.ClearHighlights()
	}
}
