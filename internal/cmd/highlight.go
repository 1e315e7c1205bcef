package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"phrase-highlighter/internal/bilingual"
	"phrase-highlighter/internal/engine"
	"phrase-highlighter/internal/highlight"
	"phrase-highlighter/internal/phrase"
	"phrase-highlighter/internal/render"
	"phrase-highlighter/internal/segment"
)

type highlightOptions struct {
	format  string
	segment string
	colors  []string
}

type segmentOutput struct {
	ID      string         `json:"id" yaml:"id"`
	Source  string         `json:"source" yaml:"source"`
	Target  string         `json:"target" yaml:"target"`
	Matches []phrase.Match `json:"matches" yaml:"matches"`
	Colors  []string       `json:"colors" yaml:"colors"`
}

func newHighlightCmd(root *rootOptions) *cobra.Command {
	opts := &highlightOptions{}

	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "Highlight matching phrases in every segment of a bilingual document",
		Long: `Read a bilingual YAML document (UTF-8 or UTF-16 with BOM), find the
phrase matches of each segment pair and print the segments with every match
coloured identically on both sides.

Pre-computed alignments in the document are used when use_translation_memory
is enabled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, yaml")
	cmd.Flags().StringVar(&opts.segment, "segment", "", "only highlight the segment with this ID")
	cmd.Flags().StringSliceVar(&opts.colors, "colors", nil,
		"comma-separated #rrggbb highlight colours (default: built-in pastels)")

	return cmd
}

func runHighlight(cmd *cobra.Command, root *rootOptions, opts *highlightOptions, path string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	palette, err := opts.palette()
	if err != nil {
		return err
	}

	s, err := root.loadSettings()
	if err != nil {
		return err
	}

	logger, err := root.logger(cmd)
	if err != nil {
		return err
	}

	file, err := bilingual.LoadFile(path)
	if err != nil {
		return err
	}

	doc, alignments := file.Document()

	h := highlight.New(highlight.Options{
		Engine:   engine.New(engine.Options{Logger: logger}),
		Settings: s,
		Palette:  palette,
		Logger:   logger,
	})

	if opts.segment != "" {
		doc.Pairs = slices.DeleteFunc(doc.Pairs, func(p *segment.Pair) bool {
			return p.ID != opts.segment
		})

		if len(doc.Pairs) == 0 {
			return fmt.Errorf("segment %q not found in %s", opts.segment, path)
		}
	}

	w := cmd.OutOrStdout()

	if opts.format != formatText {
		outputs := make([]segmentOutput, 0, len(doc.Pairs))

		for _, pair := range doc.Pairs {
			res := h.HighlightPair(pair, alignments[pair.ID])
			outputs = append(outputs, newSegmentOutput(pair, res))
		}

		return writeStructured(w, opts.format, outputs)
	}

	segments, matches := h.HighlightAll(doc, alignments)

	for _, pair := range doc.Pairs {
		if err := render.Pair(w, pair); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\n%d phrase matches in %d segments\n", matches, segments)

	return nil
}

// palette builds the highlight palette from --colors, or the default one.
func (o *highlightOptions) palette() (*highlight.Palette, error) {
	if len(o.colors) == 0 {
		return highlight.NewPalette(), nil
	}

	colors := make([]segment.Color, 0, len(o.colors))

	for _, raw := range o.colors {
		c, err := segment.ParseHex(raw)
		if err != nil {
			return nil, err
		}

		colors = append(colors, c)
	}

	return highlight.NewPalette(colors...), nil
}

func newSegmentOutput(pair *segment.Pair, res highlight.Result) segmentOutput {
	out := segmentOutput{
		ID:      pair.ID,
		Source:  pair.Source.PlainText(),
		Target:  pair.Target.PlainText(),
		Matches: res.Matches,
		Colors:  make([]string, 0, len(res.Colors)),
	}

	if out.Matches == nil {
		out.Matches = []phrase.Match{}
	}

	for _, c := range res.Colors {
		out.Colors = append(out.Colors, c.Hex())
	}

	return out
}
