// Package protocol defines the editor-facing value types shared by the
// plugin facade, the diagnostic remapper, and the CLI output layer.
package protocol

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels, ordered from most to least severe.
const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Range is a half-open byte range [StartOffset, EndOffset) in a document.
type Range struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.EndOffset - r.StartOffset
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Diagnostic is a single issue reported against a document.
// The offset range is authoritative; the line/column mirror is derived from
// the document the range currently refers to.
type Diagnostic struct {
	// Message is the human-readable description of the issue.
	Message string

	// Code is the producer-specific diagnostic code, if any.
	Code string

	// Severity indicates the importance of the diagnostic.
	Severity Severity

	// Source names the producer (e.g. "svelte").
	Source string

	// Range is the byte range of the issue in the document.
	Range Range

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int
}

// LocationLink points from a span in the origin document to a target file.
type LocationLink struct {
	// OriginStart and OriginEnd delimit the linked span in the origin document.
	OriginStart int
	OriginEnd   int

	// TargetPath is the absolute path of the target file.
	TargetPath string

	// TargetOffset is the byte offset in the target the link leads to.
	TargetOffset int
}

// TextEdit represents a single text replacement in a document.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// CompletionItem is one completion candidate.
type CompletionItem struct {
	// Label is the text shown to the user (the component name).
	Label string

	// Detail describes the candidate (the import specifier it resolves to).
	Detail string

	// InsertText is the text inserted at the cursor; empty means Label.
	InsertText string

	// AdditionalEdits are applied alongside the insertion, typically the
	// auto-import statement.
	AdditionalEdits []TextEdit
}

// CompletionList is the result of a completion request.
type CompletionList struct {
	// Items are the completion candidates, in resolver order.
	Items []CompletionItem
}
