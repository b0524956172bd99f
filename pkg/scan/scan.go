// Package scan provides the cursor-anchored lexical heuristics used instead
// of a full parser: identifier extraction under a cursor, import statement
// detection, and component tag lookup. The contracts here are defined by the
// heuristics' behavior, known gaps included; do not upgrade to an AST.
package scan

import "regexp"

// importNameRe matches an import statement's locally bound name.
var importNameRe = regexp.MustCompile(`import\s+([A-Za-z0-9_$]+)\s+from`)

// importStatementRe matches a default-import statement with its specifier.
var importStatementRe = regexp.MustCompile(`import\s+([A-Za-z0-9_$]+)\s+from\s+['"]([^'"]+)['"]`)

// ExtractName determines the identifier the cursor is "on".
//
// Stage 1 expands outward from the cursor along the enclosing line; if the
// line contains an import statement, the locally bound import name is
// returned (the cursor may be anywhere on the statement, including inside
// the module path string). Stage 2 expands strictly along identifier
// characters [A-Za-z0-9] in both directions and returns the contiguous run,
// which handles the cursor sitting on a markup tag name. No case
// normalization happens here; matching decides case sensitivity.
func ExtractName(text string, cursor int) string {
	if len(text) == 0 {
		return ""
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}

	line := enclosingLine(text, cursor)
	if m := importNameRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}

	return identifierRun(text, cursor)
}

// enclosingLine expands outward from the cursor to the nearest line
// boundaries and returns the enclosed text.
func enclosingLine(text string, cursor int) string {
	start := cursor
	for start > 0 && text[start-1] != '\n' {
		start--
	}

	end := cursor
	for end < len(text) && text[end] != '\n' {
		end++
	}

	return text[start:end]
}

// identifierRun expands greedily in both directions along [A-Za-z0-9] and
// returns the contiguous run around the cursor.
func identifierRun(text string, cursor int) string {
	start := cursor
	for start > 0 && isIdentByte(text[start-1]) {
		start--
	}

	end := cursor
	for end < len(text) && isIdentByte(text[end]) {
		end++
	}

	return text[start:end]
}

// IdentifierRange returns the [start, end) offsets of the identifier run
// around the cursor, using the same expansion as ExtractName's second stage.
// start == end when the cursor touches no identifier character.
func IdentifierRange(text string, cursor int) (int, int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(text) {
		cursor = len(text)
	}

	start := cursor
	for start > 0 && isIdentByte(text[start-1]) {
		start--
	}

	end := cursor
	for end < len(text) && isIdentByte(text[end]) {
		end++
	}

	return start, end
}

func isIdentByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

// Import is one default-import statement found in a document.
type Import struct {
	// Name is the locally bound identifier.
	Name string

	// Specifier is the module path string, without quotes.
	Specifier string

	// Start and End delimit the whole statement in the document.
	Start int
	End   int
}

// Imports enumerates the default-import statements in the text, in document
// order. Named and namespace imports are outside the heuristic and skipped.
func Imports(text string) []Import {
	matches := importStatementRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}

	imports := make([]Import, 0, len(matches))
	for _, m := range matches {
		imports = append(imports, Import{
			Name:      text[m[2]:m[3]],
			Specifier: text[m[4]:m[5]],
			Start:     m[0],
			End:       m[1],
		})
	}

	return imports
}

// ImportFor returns the import whose bound name equals name, if present.
func ImportFor(text, name string) (Import, bool) {
	for _, imp := range Imports(text) {
		if imp.Name == name {
			return imp, true
		}
	}
	return Import{}, false
}

// componentTagRe matches component tag usages; framework convention is an
// uppercase first letter.
var componentTagRe = regexp.MustCompile(`<([A-Z][A-Za-z0-9]*)[\s/>]`)

// TagRef is one component tag usage.
type TagRef struct {
	// Name is the tag name.
	Name string

	// Offset is the byte offset of the name in the document.
	Offset int
}

// ComponentTags returns every component tag usage in the text, in document
// order.
func ComponentTags(text string) []TagRef {
	matches := componentTagRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}

	tags := make([]TagRef, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, TagRef{
			Name:   text[m[2]:m[3]],
			Offset: m[2],
		})
	}

	return tags
}

// TagOffsets returns the offsets of the tag-name character after each
// `<name` usage in the text, for tags matching the given component name.
func TagOffsets(text, name string) []int {
	if name == "" {
		return nil
	}

	re := regexp.MustCompile(`<(` + regexp.QuoteMeta(name) + `)[\s/>]`)
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}

	offsets := make([]int, 0, len(matches))
	for _, m := range matches {
		offsets = append(offsets, m[2])
	}

	return offsets
}
