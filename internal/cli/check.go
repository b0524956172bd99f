package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JohnnyFun/svelte-language-server/internal/configloader"
	"github.com/JohnnyFun/svelte-language-server/internal/importcheck"
	"github.com/JohnnyFun/svelte-language-server/internal/logging"
	"github.com/JohnnyFun/svelte-language-server/internal/ui/pretty"
	"github.com/JohnnyFun/svelte-language-server/pkg/componentindex"
	"github.com/JohnnyFun/svelte-language-server/pkg/document"
	"github.com/JohnnyFun/svelte-language-server/pkg/pathalias"
	"github.com/JohnnyFun/svelte-language-server/pkg/plugin"
	"github.com/JohnnyFun/svelte-language-server/pkg/protocol"
	"github.com/JohnnyFun/svelte-language-server/pkg/resolver"
)

func newCheckCommand(colorMode *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check component imports and tag usages",
		Long: `Check discovers component files under the given paths (default: the
current directory), resolves every component import against the project's
path-alias configuration and component index, and reports imports or tags
that resolve to nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, *colorMode)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, colorMode string) error {
	ctx := cmd.Context()
	logger := logging.Default()

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := discoverComponentFiles(cmd, paths)
	if err != nil {
		return fmt.Errorf("discover component files: %w", err)
	}
	logger.Debug("discovered component files", logging.FieldFiles, len(files))

	settings, err := configloader.Load("")
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	styles := pretty.NewStyles(pretty.ShouldColorize(colorMode, os.Stdout))
	styles.Width = pretty.TerminalWidth(os.Stdout)

	// Caches are shared across all files of the run.
	aliasCache := pathalias.NewCache()
	indexCache := componentindex.NewCache()

	var stats pretty.Stats
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		doc := document.New(file, string(content))
		docDir := filepath.Dir(file)

		root, basePaths := aliasCache.EnsureResolved(docDir)
		indexRoot := root
		if indexRoot == "" {
			indexRoot = docDir
		}
		logger.Debug("checking", logging.FieldDocument, file, logging.FieldProjectRoot, indexRoot)

		index, err := indexCache.EnsureBuilt(ctx, indexRoot, []string{indexRoot})
		if err != nil {
			return fmt.Errorf("build component index: %w", err)
		}

		res := resolver.New(index, basePaths)

		p := &plugin.Plugin{
			Settings: settings,
			Compiler: importcheck.New(res),
			Aliases:  aliasCache,
			Index:    indexCache,
		}

		diags := p.GetDiagnostics(ctx, doc)

		stats.FilesChecked++
		if len(diags) > 0 {
			stats.FilesWithIssues++
		}

		for i := range diags {
			countSeverity(&stats, diags[i].Severity)
			sourceLine := doc.LineContent(diags[i].StartLine)
			fmt.Fprint(cmd.OutOrStdout(), styles.FormatDiagnostic(displayPath(file), &diags[i], sourceLine))
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(stats))

	if stats.Errors > 0 {
		return ErrIssuesFound
	}
	return nil
}

// discoverComponentFiles expands the argument paths into component files:
// directories are walked, explicit files are taken as-is.
func discoverComponentFiles(cmd *cobra.Command, paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			walked, err := componentindex.Build(cmd.Context(), []string{absPath})
			if err != nil {
				return nil, err
			}
			files = append(files, walked...)
		} else {
			files = append(files, absPath)
		}
	}
	return files, nil
}

func countSeverity(stats *pretty.Stats, sev protocol.Severity) {
	switch sev {
	case protocol.SeverityError:
		stats.Errors++
	case protocol.SeverityWarning:
		stats.Warnings++
	default:
		stats.Infos++
	}
}

// displayPath shortens a path to be relative to the working directory when
// possible.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
