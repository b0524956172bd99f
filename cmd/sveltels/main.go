// Package main is the entry point for the sveltels CLI.
package main

import (
	"errors"
	"os"

	"github.com/JohnnyFun/svelte-language-server/internal/cli"
	"github.com/JohnnyFun/svelte-language-server/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrIssuesFound) {
			return cli.ExitIssuesFound
		}
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}
