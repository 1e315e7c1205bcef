package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"phrase-highlighter/internal/engine"
	"phrase-highlighter/internal/phrase"
	"phrase-highlighter/internal/render"
	"phrase-highlighter/internal/settings"
)

type matchOptions struct {
	format  string
	explain bool

	minPhraseLength    int
	minWordLength      int
	minSimilarityScore float64
	maxGapSize         int
	caseSensitive      bool
}

type matchOutput struct {
	Source      string         `json:"source" yaml:"source"`
	Target      string         `json:"target" yaml:"target"`
	Matches     []phrase.Match `json:"matches" yaml:"matches"`
	Diagnostics []string       `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func newMatchCmd(root *rootOptions) *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match <source> <target>",
		Short: "List phrase matches between a source string and its translation",
		Long: `Align the words of a source string with those of its translation and
print the merged phrase matches. Policy flags override the persisted settings
for this run only.

Examples:
  phrase-highlighter match "Hello World" "Hello World"
  phrase-highlighter match --min-similarity 0.5 colour color
  phrase-highlighter match --format json --explain "the quick fox" "le renard rapide"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, root, opts, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, yaml")
	f.BoolVar(&opts.explain, "explain", false, "also report why words did not match")
	f.IntVar(&opts.minPhraseLength, "min-phrase-length", 0, "minimum phrase length in characters")
	f.IntVar(&opts.minWordLength, "min-word-length", 0, "minimum word length in characters")
	f.Float64Var(&opts.minSimilarityScore, "min-similarity", 0, "minimum word similarity (0-1)")
	f.IntVar(&opts.maxGapSize, "max-gap", 0, "maximum gap in characters between merged words")
	f.BoolVar(&opts.caseSensitive, "case-sensitive", false, "compare words case-sensitively")

	return cmd
}

// applyFlags copies explicitly set policy flags over s.
func (o *matchOptions) applyFlags(cmd *cobra.Command, s *settings.Settings) {
	f := cmd.Flags()

	if f.Changed("min-phrase-length") {
		s.MinPhraseLength = o.minPhraseLength
	}

	if f.Changed("min-word-length") {
		s.MinWordLength = o.minWordLength
	}

	if f.Changed("min-similarity") {
		s.MinSimilarityScore = o.minSimilarityScore
	}

	if f.Changed("max-gap") {
		s.MaxGapSize = o.maxGapSize
	}

	if f.Changed("case-sensitive") {
		s.CaseSensitive = o.caseSensitive
	}
}

func runMatch(cmd *cobra.Command, root *rootOptions, opts *matchOptions, source, target string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	s, err := root.loadSettings()
	if err != nil {
		return err
	}

	opts.applyFlags(cmd, s)

	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid policy: %w", err)
	}

	logger, err := root.logger(cmd)
	if err != nil {
		return err
	}

	report := engine.New(engine.Options{Logger: logger}).Explain(source, target, s.Policy, nil)

	out := matchOutput{Source: source, Target: target, Matches: report.Matches}
	if out.Matches == nil {
		out.Matches = []phrase.Match{}
	}

	if opts.explain {
		for _, d := range report.Diagnostics.All() {
			out.Diagnostics = append(out.Diagnostics, d.String())
		}
	}

	w := cmd.OutOrStdout()

	if opts.format != formatText {
		return writeStructured(w, opts.format, out)
	}

	if len(out.Matches) == 0 {
		fmt.Fprintln(w, "no phrase matches found")
	} else if err := render.Table(w, out.Matches, s.ShowConfidenceScores); err != nil {
		return err
	}

	for _, d := range out.Diagnostics {
		fmt.Fprintln(w, "  "+d)
	}

	return nil
}
