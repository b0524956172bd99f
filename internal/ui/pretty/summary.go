package pretty

import (
	"fmt"
	"strings"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// Stats summarizes one check run.
type Stats struct {
	FilesChecked    int
	FilesWithIssues int
	Errors          int
	Warnings        int
	Infos           int
}

// Total returns the total diagnostic count.
func (st Stats) Total() int {
	return st.Errors + st.Warnings + st.Infos
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 issues (2 errors, 1 warning) in 2 files".
func (s *Styles) FormatSummaryOneLine(stats Stats) string {
	if stats.Total() == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesChecked)) + "\n"
	}

	issueWord := "issues"
	if stats.Total() == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if stats.Errors > 0 {
		severityParts = append(severityParts, s.Error.Render(plural(stats.Errors, "error", "errors")))
	}
	if stats.Warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(plural(stats.Warnings, "warning", "warnings")))
	}
	if stats.Infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", stats.Infos)))
	}

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}

	return fmt.Sprintf("%d %s (%s) in %d %s\n",
		stats.Total(), issueWord,
		strings.Join(severityParts, ", "),
		stats.FilesWithIssues, fileWord,
	)
}

func plural(n int, singular, pluralWord string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralWord)
}
