package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column width of the terminal behind w, or 0 when
// w is not a terminal. A zero width means unconstrained output.
func TerminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return 0
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

const truncationMark = "..."

// TruncateLine cuts a line down to width bytes, marking the cut.
func TruncateLine(line string, width int) string {
	if width <= 0 || len(line) <= width {
		return line
	}
	if width <= len(truncationMark) {
		return line[:width]
	}
	return line[:width-len(truncationMark)] + truncationMark
}
