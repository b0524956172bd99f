// Package remap translates diagnostics computed against a transpiled
// component document back into coordinates of the original document.
//
// Two passes: an exact pass through each transformed fragment's source map,
// then a best-effort linear offset correction for everything outside the
// transformed zones, whose absolute offsets shift whenever an earlier
// fragment changed length.
package remap

import (
	"sort"

	"github.com/JohnnyFun/svelte-language-server/pkg/document"
	"github.com/JohnnyFun/svelte-language-server/pkg/preprocess"
	"github.com/JohnnyFun/svelte-language-server/pkg/protocol"
)

// Remap returns a new diagnostic slice with every range rewritten from
// transpiled-document coordinates to original-document coordinates. Input
// order is preserved and the input is not mutated. With no transformed
// fragments, Remap is the identity on ranges.
func Remap(
	diags []protocol.Diagnostic,
	original *document.Document,
	transpiled *document.Document,
	fragments []preprocess.PreprocessedFragment,
) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, len(diags))
	copy(out, diags)

	sorted := make([]preprocess.PreprocessedFragment, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Transpiled.Start < sorted[j].Transpiled.Start
	})

	mapped := make([]bool, len(out))

	// Exact pass: fragments with a source map, independently.
	for _, frag := range sorted {
		mapper := newFragmentMapper(frag, original, transpiled)

		for i := range out {
			if mapped[i] || !frag.Transpiled.Contains(out[i].Range.StartOffset) {
				continue
			}

			start, ok := mapper.toOriginal(out[i].Range.StartOffset)
			if !ok {
				// No mapping at or before the position; leave the
				// diagnostic to the offset-correction pass.
				continue
			}

			end, ok := mapper.toOriginal(out[i].Range.EndOffset)
			if !ok || end < start {
				end = start
			}

			out[i].Range = protocol.Range{StartOffset: start, EndOffset: end}
			mapped[i] = true
		}
	}

	// Offset-correction pass for diagnostics outside any mapped zone.
	for i := range out {
		if mapped[i] {
			continue
		}

		diff := precedingDiff(sorted, out[i].Range.StartOffset)
		out[i].Range = protocol.Range{
			StartOffset: original.ClampOffset(out[i].Range.StartOffset + diff),
			EndOffset:   original.ClampOffset(out[i].Range.EndOffset + diff),
		}
	}

	// Refresh the line/column mirrors against the original document.
	for i := range out {
		out[i].StartLine, out[i].StartColumn = original.LineAt(out[i].Range.StartOffset)
		out[i].EndLine, out[i].EndColumn = original.LineAt(out[i].Range.EndOffset)
	}

	return out
}

// precedingDiff returns the length correction contributed by the nearest
// fragment whose transpiled range ends at or before the given offset.
//
// Only the nearest preceding fragment's diff is applied, not a running sum
// across every preceding fragment. When two or more preceding fragments
// changed length this under-corrects; the behavior is pinned by a
// regression test and kept as is.
func precedingDiff(sorted []preprocess.PreprocessedFragment, offset int) int {
	diff := 0
	for _, frag := range sorted {
		if frag.Transpiled.End > offset {
			break
		}
		diff = frag.Original.Len() - frag.Transpiled.Len()
	}
	return diff
}

// fragmentMapper converts one transformed fragment's transpiled-absolute
// offsets to original-absolute offsets through its source map.
type fragmentMapper struct {
	frag     preprocess.PreprocessedFragment
	genText  *document.Document
	origText *document.Document
}

func newFragmentMapper(frag preprocess.PreprocessedFragment, original, transpiled *document.Document) *fragmentMapper {
	// Synthetic documents over the two fragment texts provide the line
	// tables for the source-map coordinate conversions.
	return &fragmentMapper{
		frag:     frag,
		genText:  document.New("", frag.Transpiled.Text(transpiled.Content)),
		origText: document.New("", frag.Original.Text(original.Content)),
	}
}

// toOriginal maps a transpiled-document-absolute offset to an
// original-document-absolute offset. Returns false when the source map has
// no entry at or before the position.
func (m *fragmentMapper) toOriginal(absOffset int) (int, bool) {
	rel := m.frag.Transpiled.ToRelative(absOffset)

	line, col := m.genText.LineAt(rel)

	// Source-map convention: 1-based line, 0-based column. Off-by-one here
	// silently corrupts editor highlighting.
	origPos, ok := m.frag.Map.OriginalPosition(preprocess.MapPosition{Line: line, Column: col - 1})
	if !ok {
		return 0, false
	}

	relOrig, valid := m.origText.Offset(origPos.Line, origPos.Column+1)
	if !valid {
		relOrig = m.origText.ClampOffset(m.origText.Len())
	}

	return m.frag.Original.ToParent(relOrig), true
}
