// Package document provides the position model for component source files:
// documents with derived line tables and fragments (markup/script/style zones)
// with exact parent/relative position conversion.
package document

import "sort"

// LineInfo describes one line of a document.
type LineInfo struct {
	// StartOffset is the byte index of the first character of the line.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins
	// (equal to EndOffset for the last line without a terminator).
	NewlineStart int

	// EndOffset is the byte index just past the line terminator.
	EndOffset int
}

// Document is a source file (or a synthetic transpiled file) with a derived
// line table. The editor host owns real documents; this package only reads
// their text.
type Document struct {
	// Path identifies the document (absolute path or URI).
	Path string

	// Content is the full text.
	Content string

	// Lines is the derived line table.
	Lines []LineInfo
}

// New builds a Document and its line table.
func New(path, content string) *Document {
	return &Document{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content string) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(content); idx++ {
		if content[idx] == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.Content)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is negative or the document is empty.
func (d *Document) LineAt(offset int) (int, int) {
	if offset < 0 || len(d.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(d.Content) {
		lastLine := d.Lines[len(d.Lines)-1]
		return len(d.Lines), offset - lastLine.StartOffset + 1
	}

	lineIdx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(d.Lines) {
		lineIdx = len(d.Lines) - 1
	}

	lineInfo := d.Lines[lineIdx]
	if offset < lineInfo.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - lineInfo.StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
func (d *Document) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(d.Lines) {
		return 0, false
	}

	lineInfo := d.Lines[line-1]
	if col < 1 {
		return 0, false
	}

	offset := lineInfo.StartOffset + col - 1

	// Column may point just past the line content (cursor positioning).
	if offset > lineInfo.EndOffset {
		return 0, false
	}

	return offset, true
}

// ClampOffset clamps an offset into [0, Len()].
func (d *Document) ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(d.Content) {
		return len(d.Content)
	}
	return offset
}

// LineContent returns the content of a 1-based line number, excluding the
// newline. Returns "" if the line number is out of range.
func (d *Document) LineContent(line int) string {
	if line < 1 || line > len(d.Lines) {
		return ""
	}

	lineInfo := d.Lines[line-1]
	return d.Content[lineInfo.StartOffset:lineInfo.NewlineStart]
}
