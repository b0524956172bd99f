// Package pretty provides Lipgloss-based styled output for the CLI.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for CLI output.
type Styles struct {
	// Width is the output column limit; 0 means unconstrained.
	Width int

	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Hint    lipgloss.Style

	// Diagnostic components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Source     lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error:      plain,
			Warning:    plain,
			Info:       plain,
			Hint:       plain,
			FilePath:   plain,
			Location:   plain,
			Source:     plain,
			Message:    plain,
			SourceLine: plain,
			Caret:      plain,
			Success:    plain,
			Failure:    plain,
			Dim:        plain,
			Bold:       plain,
		}
	}

	return &Styles{
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Hint:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),
		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Source:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:       lipgloss.NewStyle().Bold(true),
	}
}

// ShouldColorize determines whether to colorize output for the given writer
// based on the color mode: "always", "never", or "auto" (TTY detection).
func ShouldColorize(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		file, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
}
