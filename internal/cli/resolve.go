package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JohnnyFun/svelte-language-server/internal/logging"
	"github.com/JohnnyFun/svelte-language-server/pkg/componentindex"
	"github.com/JohnnyFun/svelte-language-server/pkg/pathalias"
	"github.com/JohnnyFun/svelte-language-server/pkg/resolver"
)

func newResolveCommand() *cobra.Command {
	var fromDir string
	var invert string

	cmd := &cobra.Command{
		Use:   "resolve <specifier>",
		Short: "Resolve an import specifier against the component index",
		Long: `Resolve prints the component files an import specifier matches, honoring
the project's path-alias configuration. With --invert, it instead prints the
import specifier a document in --from would use for the given absolute path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, fromDir, invert)
		},
	}

	cmd.Flags().StringVar(&fromDir, "from", ".", "directory of the importing document")
	cmd.Flags().StringVar(&invert, "invert", "", "absolute component path to turn into a specifier")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, fromDir, invert string) error {
	logger := logging.Default()

	absFrom, err := filepath.Abs(fromDir)
	if err != nil {
		return fmt.Errorf("resolve --from %s: %w", fromDir, err)
	}

	root, basePaths := pathalias.NewCache().EnsureResolved(absFrom)
	indexRoot := root
	if indexRoot == "" {
		indexRoot = absFrom
	}
	logger.Debug("resolving", logging.FieldProjectRoot, indexRoot)

	index, err := componentindex.Build(cmd.Context(), []string{indexRoot})
	if err != nil {
		return fmt.Errorf("build component index: %w", err)
	}

	res := resolver.New(index, basePaths)

	if invert != "" {
		absTarget, err := filepath.Abs(invert)
		if err != nil {
			return fmt.Errorf("resolve --invert %s: %w", invert, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.ToImportSpecifier(absFrom, absTarget))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("specifier argument required unless --invert is given")
	}

	matches := res.ResolveImportTarget(args[0], absFrom)
	if len(matches) == 0 {
		// A resolution miss is an empty result, not an error.
		fmt.Fprintln(cmd.OutOrStdout(), "no matches")
		return nil
	}

	for _, match := range matches {
		fmt.Fprintln(cmd.OutOrStdout(), match)
	}
	return nil
}
