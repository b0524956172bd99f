// Package resolver maps import specifiers typed in component markup to
// candidate files in the component index, and inverts absolute file paths
// back into the most natural import specifier for auto-import insertion.
package resolver

import (
	"path/filepath"
	"strings"
)

// DefaultExtension is the component extension appended to extension-less
// specifiers and stripped when producing one.
const DefaultExtension = ".svelte"

// maxAscent bounds the ../-walk in ToImportSpecifier. Deeper targets fall
// back to the absolute path.
const maxAscent = 64

// Resolver resolves specifiers against a built component index and a set of
// alias base directories.
type Resolver struct {
	// Index is the list of absolute component file paths.
	Index []string

	// BasePaths are the alias base directories for the active project.
	BasePaths []string

	// Extension overrides DefaultExtension when non-empty.
	Extension string
}

// New creates a Resolver over the given index and alias base paths.
func New(index, basePaths []string) *Resolver {
	return &Resolver{Index: index, BasePaths: basePaths}
}

func (r *Resolver) extension() string {
	if r.Extension != "" {
		return r.Extension
	}
	return DefaultExtension
}

// ResolveImportTarget resolves an import specifier already present in an
// import statement to the indexed files it may refer to. The specifier is
// resolved against every alias base directory and against the document's
// own directory; every indexed file whose path case-insensitively ends with
// one of those candidates is returned. Zero matches is an empty result, not
// an error; multiple matches are all returned and disambiguation is the
// host's concern.
func (r *Resolver) ResolveImportTarget(specifier, docDir string) []string {
	ext := r.extension()
	if !strings.HasSuffix(strings.ToLower(specifier), ext) {
		specifier += ext
	}

	candidates := make([]string, 0, 2*len(r.BasePaths)+1)
	for _, base := range r.BasePaths {
		candidates = append(candidates, normalizePath(filepath.Join(base, specifier)))

		// Alias names are not tracked alongside their base directories, so
		// for a bare specifier like "@x/Btn" the base directory stands in
		// for the alias segment and the remainder resolves beneath it.
		if rest, ok := stripAliasSegment(specifier); ok {
			candidates = append(candidates, normalizePath(filepath.Join(base, rest)))
		}
	}
	candidates = append(candidates, normalizePath(filepath.Join(docDir, specifier)))

	var matches []string
	for _, file := range r.Index {
		normalized := normalizePath(file)
		for _, candidate := range candidates {
			if strings.HasSuffix(normalized, candidate) {
				matches = append(matches, file)
				break
			}
		}
	}

	return matches
}

// ResolveLoose returns every indexed file whose base filename
// case-insensitively contains partial as a substring, in index order. This
// is a deliberately permissive filter for mid-typing completion; ranking is
// the host's concern.
func (r *Resolver) ResolveLoose(partial, docDir string) []string {
	_ = docDir // reserved; loose matching is index-wide

	needle := strings.ToLower(partial)

	var matches []string
	for _, file := range r.Index {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		if strings.Contains(strings.ToLower(base), needle) {
			matches = append(matches, file)
		}
	}

	return matches
}

// ToImportSpecifier turns an absolute target path into the import specifier
// a document in docDir would naturally use: the alias-relative form when an
// alias base directory prefixes the target, else a ./-descent or ../-ascent
// relative form. Output always uses forward slashes and never includes the
// component extension. Path casing is compared case-insensitively (platform
// path-casing quirks) while the target's own casing is preserved in the
// output.
func (r *Resolver) ToImportSpecifier(docDir, target string) string {
	ext := r.extension()
	stripped := target
	if strings.HasSuffix(strings.ToLower(stripped), ext) {
		stripped = stripped[:len(stripped)-len(ext)]
	}

	lowTarget := normalizePath(stripped)

	// Alias form preferred over relative form.
	for _, base := range r.BasePaths {
		prefix := normalizePath(base) + "/"
		if strings.HasPrefix(lowTarget, prefix) {
			return filepath.ToSlash(stripped[len(prefix):])
		}
	}

	lowDir := normalizePath(docDir)

	// Target inside the document directory's subtree: ./-descent.
	if strings.HasPrefix(lowTarget, lowDir+"/") {
		return "./" + filepath.ToSlash(stripped[len(lowDir)+1:])
	}

	// Walk the document directory upward until it prefixes the target.
	ascent := "../"
	up := filepath.Dir(docDir)
	for range maxAscent {
		lowUp := normalizePath(up)
		if strings.HasPrefix(lowTarget, lowUp+"/") {
			return ascent + filepath.ToSlash(stripped[len(lowUp)+1:])
		}

		parent := filepath.Dir(up)
		if parent == up {
			break
		}
		up = parent
		ascent += "../"
	}

	// Crude fallback: the absolute path, unchanged apart from slashes.
	return filepath.ToSlash(stripped)
}

// stripAliasSegment removes the leading path segment from a bare specifier.
// Relative specifiers and single-segment specifiers have no alias segment.
func stripAliasSegment(specifier string) (string, bool) {
	if strings.HasPrefix(specifier, ".") {
		return "", false
	}
	idx := strings.IndexByte(specifier, '/')
	if idx < 0 {
		return "", false
	}
	return specifier[idx+1:], true
}

// normalizePath lower-cases a path and converts separators to forward
// slashes, for comparison only.
func normalizePath(path string) string {
	return strings.ToLower(filepath.ToSlash(path))
}
