// Package cli provides the Cobra command structure for sveltels.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/JohnnyFun/svelte-language-server/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root sveltels command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "sveltels",
		Short: "Language intelligence for single-file Svelte components",
		Long: `sveltels is the command-line face of the Svelte language-server core.

It resolves component imports against a project's path-alias configuration,
checks that every component import and tag usage resolves to a file on disk,
and inverts absolute paths back into natural import specifiers.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand(&color))
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
