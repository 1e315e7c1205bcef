package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"phrase-highlighter/internal/settings"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set matching settings",
		Long: `Get or set phrase-highlighter settings.

Without arguments, lists all settings.
With one argument, shows the value of that setting.
With two arguments, sets the setting to the value.

Examples:
  phrase-highlighter config
  phrase-highlighter config min_similarity_score
  phrase-highlighter config max_gap_size 3
  phrase-highlighter config --reset`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, root, reset, args)
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "restore every setting to its default")

	return cmd
}

func runConfig(cmd *cobra.Command, root *rootOptions, reset bool, args []string) error {
	// Reset must work even when the stored file no longer loads.
	if reset {
		return saveSettings(cmd, root, settings.DefaultSettings())
	}

	s, err := root.storedSettings()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	switch len(args) {
	case 0:
		for _, k := range settings.ListKeys() {
			v, err := s.Get(k.Name)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "  %-24s = %-6s  # %s\n", k.Name, v, k.Description)
		}

		diags := s.Diagnose()
		for _, d := range diags.All() {
			fmt.Fprintf(w, "\n%s: %s", d.Severity, d.String())
		}

		fmt.Fprintf(w, "\nSettings file: %s\n", root.path())

		return nil
	case 1:
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(w, v)

		return nil
	default:
		if err := s.Set(args[0], args[1]); err != nil {
			return err
		}

		if err := s.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		return saveSettings(cmd, root, s)
	}
}

func saveSettings(cmd *cobra.Command, root *rootOptions, s *settings.Settings) error {
	if err := s.SaveToFile(root.path()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", root.path())

	return nil
}
