package cli

import "errors"

// Exit codes for sveltels.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates the check completed but found errors.
	ExitIssuesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates settings file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrIssuesFound signals a non-zero exit without an error log; the
// diagnostics were already printed.
var ErrIssuesFound = errors.New("issues found")
