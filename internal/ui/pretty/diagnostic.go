package pretty

import (
	"fmt"
	"strings"

	"github.com/JohnnyFun/svelte-language-server/pkg/protocol"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// Layout: path:line:col  severity  message  (source).
func (s *Styles) FormatDiagnostic(path string, diag *protocol.Diagnostic, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		diag.StartLine,
		diag.StartColumn,
	)

	source := ""
	if diag.Source != "" {
		source = "  " + s.Source.Render("("+diag.Source+")")
	}

	builder.WriteString(fmt.Sprintf("  %s  %s  %s%s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		source,
	))

	if sourceLine != "" {
		builder.WriteString(s.formatSourceContext(sourceLine, diag.StartColumn))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity label.
func (s *Styles) FormatSeverity(sev protocol.Severity) string {
	switch sev {
	case protocol.SeverityError:
		return s.Error.Render("error")
	case protocol.SeverityWarning:
		return s.Warning.Render("warning")
	case protocol.SeverityHint:
		return s.Hint.Render("hint")
	default:
		return s.Info.Render("info")
	}
}

const contextIndent = "    "

// formatSourceContext renders the offending source line with a caret under
// the start column. Long lines are cut to the terminal width so the caret
// row stays aligned with the text above it.
func (s *Styles) formatSourceContext(sourceLine string, column int) string {
	if column < 1 {
		column = 1
	}

	if s.Width > len(contextIndent) {
		sourceLine = TruncateLine(sourceLine, s.Width-len(contextIndent))
	}
	if column > len(sourceLine)+1 {
		column = len(sourceLine) + 1
	}

	var builder strings.Builder
	builder.WriteString(contextIndent + s.SourceLine.Render(sourceLine) + "\n")
	builder.WriteString(contextIndent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")
	return builder.String()
}
