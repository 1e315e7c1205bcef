// Package cmd implements the phrase-highlighter command line.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"phrase-highlighter/internal/settings"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type rootOptions struct {
	settingsPath string
	logLevel     string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "phrase-highlighter",
		Short: "highlight corresponding phrases in a sentence and its translation",
		Long: `phrase-highlighter - find and colour phrases that correspond between a
source sentence and its translation.

  match      align two strings and list the phrase matches
  highlight  colour every segment pair of a bilingual document
  config     inspect or change the persisted matching settings`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.settingsPath, "settings", "",
		"settings file (default: per-user settings.json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn",
		"log level: debug, info, warn, error")

	root.AddCommand(newMatchCmd(opts))
	root.AddCommand(newHighlightCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) path() string {
	if o.settingsPath != "" {
		return o.settingsPath
	}

	return settings.DefaultPaths().SettingsFile()
}

// loadSettings returns the effective settings for matching, env overrides
// included. They are never saved.
func (o *rootOptions) loadSettings() (*settings.Settings, error) {
	s, err := settings.LoadFromFile(o.path())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return s, nil
}

// storedSettings returns the persisted settings only, for editing.
func (o *rootOptions) storedSettings() (*settings.Settings, error) {
	s, err := settings.ReadFromFile(o.path())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return s, nil
}

func (o *rootOptions) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(o.logLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", o.logLevel)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "phrase-highlighter %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", GitCommit)
		},
	}
}
