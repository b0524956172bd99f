package document

// Kind identifies the zone a fragment covers in a component file.
type Kind string

// Fragment kinds.
const (
	KindMarkup Kind = "markup"
	KindScript Kind = "script"
	KindStyle  Kind = "style"
)

// Fragment is a named zone of a document defined by a half-open byte range
// [Start, End) in its parent. Fragments of one document are non-overlapping
// and ordered by Start.
type Fragment struct {
	// Kind is the zone kind.
	Kind Kind

	// Start is the byte index in the parent where the fragment begins (inclusive).
	Start int

	// End is the byte index in the parent where the fragment ends (exclusive).
	End int

	// Attrs holds tag attributes for script/style fragments (e.g. lang).
	// Nil for markup fragments.
	Attrs map[string]string
}

// Len returns the fragment length in bytes.
func (f Fragment) Len() int {
	return f.End - f.Start
}

// Contains returns true if the parent-document offset lies inside the fragment.
func (f Fragment) Contains(offset int) bool {
	return offset >= f.Start && offset < f.End
}

// ToRelative converts a parent-document offset to a fragment-relative offset.
// Offsets just outside the fragment are clamped to its bounds rather than
// rejected; upstream boundary off-by-ones must not corrupt positions.
func (f Fragment) ToRelative(offset int) int {
	if offset < f.Start {
		return 0
	}
	if offset > f.End {
		return f.Len()
	}
	return offset - f.Start
}

// ToParent converts a fragment-relative offset to a parent-document offset,
// clamping to the fragment bounds.
func (f Fragment) ToParent(offset int) int {
	if offset < 0 {
		return f.Start
	}
	if offset > f.Len() {
		return f.End
	}
	return f.Start + offset
}

// Text returns the fragment's text within the given parent content.
func (f Fragment) Text(content string) string {
	start := f.Start
	end := f.End
	if start < 0 {
		start = 0
	}
	if end > len(content) {
		end = len(content)
	}
	if start >= end {
		return ""
	}
	return content[start:end]
}

// Attr returns the named attribute, or "" when absent.
func (f Fragment) Attr(name string) string {
	if f.Attrs == nil {
		return ""
	}
	return f.Attrs[name]
}
