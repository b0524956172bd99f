package remap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnnyFun/svelte-language-server/pkg/document"
	"github.com/JohnnyFun/svelte-language-server/pkg/preprocess"
	"github.com/JohnnyFun/svelte-language-server/pkg/protocol"
	"github.com/JohnnyFun/svelte-language-server/pkg/remap"
)

func singleMapping(gen, orig preprocess.MapPosition) *preprocess.SourceMap {
	return preprocess.NewSourceMap([]preprocess.Mapping{{Generated: gen, Original: orig}})
}

func TestRemap_IdentityWithoutFragments(t *testing.T) {
	t.Parallel()

	doc := document.New("Widget.svelte", "<p>\n  text\n</p>")

	diags := []protocol.Diagnostic{
		{Message: "m", Range: protocol.Range{StartOffset: 6, EndOffset: 10}},
	}

	out := remap.Remap(diags, doc, doc, nil)

	require.Len(t, out, 1)
	assert.Equal(t, protocol.Range{StartOffset: 6, EndOffset: 10}, out[0].Range)

	// Line/column mirrors are refreshed against the original document.
	assert.Equal(t, 2, out[0].StartLine)
	assert.Equal(t, 3, out[0].StartColumn)

	// The input slice is not mutated.
	assert.Zero(t, diags[0].StartLine)
}

func TestRemap_ExactPass(t *testing.T) {
	t.Parallel()

	original := document.New("Widget.svelte", "abc\ndef\nXY")
	transpiled := document.New("Widget.svelte", "abc\nDDEEFF\nXY")

	fragments := []preprocess.PreprocessedFragment{
		{
			Original:   document.Fragment{Kind: document.KindScript, Start: 4, End: 7},
			Transpiled: document.Fragment{Kind: document.KindScript, Start: 4, End: 10},
			Map: preprocess.NewSourceMap([]preprocess.Mapping{
				{Generated: preprocess.MapPosition{Line: 1, Column: 0}, Original: preprocess.MapPosition{Line: 1, Column: 0}},
				{Generated: preprocess.MapPosition{Line: 1, Column: 2}, Original: preprocess.MapPosition{Line: 1, Column: 1}},
				{Generated: preprocess.MapPosition{Line: 1, Column: 4}, Original: preprocess.MapPosition{Line: 1, Column: 2}},
			}),
		},
	}

	// "FF" in the transpiled script maps back to "f" in the original.
	diags := []protocol.Diagnostic{
		{Message: "m", Range: protocol.Range{StartOffset: 8, EndOffset: 10}},
	}

	out := remap.Remap(diags, original, transpiled, fragments)

	require.Len(t, out, 1)
	assert.Equal(t, 6, out[0].Range.StartOffset)
	assert.Equal(t, 6, out[0].Range.EndOffset)
	assert.Equal(t, 2, out[0].StartLine)
	assert.Equal(t, 3, out[0].StartColumn)
}

func TestRemap_OffsetCorrection(t *testing.T) {
	t.Parallel()

	original := document.New("Widget.svelte", "abc\ndef\nXY")
	transpiled := document.New("Widget.svelte", "abc\nDDEEFF\nXY")

	fragments := []preprocess.PreprocessedFragment{
		{
			Original:   document.Fragment{Kind: document.KindScript, Start: 4, End: 7},
			Transpiled: document.Fragment{Kind: document.KindScript, Start: 4, End: 10},
			Map: singleMapping(
				preprocess.MapPosition{Line: 1, Column: 0},
				preprocess.MapPosition{Line: 1, Column: 0},
			),
		},
	}

	// "X" in the trailing markup sits 3 bytes later in the transpiled
	// document because the script grew from 3 to 6 bytes.
	diags := []protocol.Diagnostic{
		{Message: "m", Range: protocol.Range{StartOffset: 11, EndOffset: 12}},
	}

	out := remap.Remap(diags, original, transpiled, fragments)

	require.Len(t, out, 1)
	assert.Equal(t, protocol.Range{StartOffset: 8, EndOffset: 9}, out[0].Range)
	assert.Equal(t, 3, out[0].StartLine)
	assert.Equal(t, 1, out[0].StartColumn)
}

// Only the nearest preceding fragment's length diff is applied to unmapped
// diagnostics, not the sum across every preceding fragment. With the two
// fragments below the cumulative correction would be -5; the applied one is
// -3. This pins the current behavior.
func TestRemap_NearestPrecedingDiffOnly(t *testing.T) {
	t.Parallel()

	original := document.New("Widget.svelte", "abbcddwxyz")
	transpiled := document.New("Widget.svelte", "aBBBBcDDDDDwxyz")

	noopMap := singleMapping(
		preprocess.MapPosition{Line: 1, Column: 0},
		preprocess.MapPosition{Line: 1, Column: 0},
	)

	// Passed out of order; Remap sorts by transpiled start.
	fragments := []preprocess.PreprocessedFragment{
		{
			Original:   document.Fragment{Kind: document.KindStyle, Start: 4, End: 6},
			Transpiled: document.Fragment{Kind: document.KindStyle, Start: 6, End: 11},
			Map:        noopMap,
		},
		{
			Original:   document.Fragment{Kind: document.KindScript, Start: 1, End: 3},
			Transpiled: document.Fragment{Kind: document.KindScript, Start: 1, End: 5},
			Map:        noopMap,
		},
	}

	// "w" is at transpiled offset 11 and original offset 6.
	diags := []protocol.Diagnostic{
		{Message: "m", Range: protocol.Range{StartOffset: 11, EndOffset: 12}},
	}

	out := remap.Remap(diags, original, transpiled, fragments)

	require.Len(t, out, 1)
	assert.Equal(t, 8, out[0].Range.StartOffset)
}

func TestRemap_NoMappingFallsThrough(t *testing.T) {
	t.Parallel()

	original := document.New("Widget.svelte", "abc\ndef\nXY")
	transpiled := document.New("Widget.svelte", "abc\nDDEEFF\nXY")

	fragments := []preprocess.PreprocessedFragment{
		{
			Original:   document.Fragment{Kind: document.KindScript, Start: 4, End: 7},
			Transpiled: document.Fragment{Kind: document.KindScript, Start: 4, End: 10},
			// The first mapping starts past column 0, so a diagnostic at
			// the fragment start has no entry at or before it.
			Map: singleMapping(
				preprocess.MapPosition{Line: 1, Column: 2},
				preprocess.MapPosition{Line: 1, Column: 1},
			),
		},
	}

	diags := []protocol.Diagnostic{
		{Message: "m", Range: protocol.Range{StartOffset: 4, EndOffset: 5}},
	}

	out := remap.Remap(diags, original, transpiled, fragments)

	// No fragment ends at or before offset 4 either, so the range survives
	// unchanged through the correction pass.
	require.Len(t, out, 1)
	assert.Equal(t, protocol.Range{StartOffset: 4, EndOffset: 5}, out[0].Range)
}

func TestRemap_EndClampedToStart(t *testing.T) {
	t.Parallel()

	original := document.New("Widget.svelte", "abc\ndef\nXY")
	transpiled := document.New("Widget.svelte", "abc\nDDEEFF\nXY")

	fragments := []preprocess.PreprocessedFragment{
		{
			Original:   document.Fragment{Kind: document.KindScript, Start: 4, End: 7},
			Transpiled: document.Fragment{Kind: document.KindScript, Start: 4, End: 10},
			// End maps earlier than start through a deliberately inverted
			// table.
			Map: preprocess.NewSourceMap([]preprocess.Mapping{
				{Generated: preprocess.MapPosition{Line: 1, Column: 0}, Original: preprocess.MapPosition{Line: 1, Column: 2}},
				{Generated: preprocess.MapPosition{Line: 1, Column: 4}, Original: preprocess.MapPosition{Line: 1, Column: 0}},
			}),
		},
	}

	diags := []protocol.Diagnostic{
		{Message: "m", Range: protocol.Range{StartOffset: 4, EndOffset: 9}},
	}

	out := remap.Remap(diags, original, transpiled, fragments)

	require.Len(t, out, 1)
	assert.Equal(t, out[0].Range.StartOffset, out[0].Range.EndOffset)
	assert.Equal(t, 6, out[0].Range.StartOffset)
}

func TestRemap_OrderPreserved(t *testing.T) {
	t.Parallel()

	doc := document.New("Widget.svelte", "abc\ndef\nXY")

	diags := []protocol.Diagnostic{
		{Message: "second", Range: protocol.Range{StartOffset: 8, EndOffset: 9}},
		{Message: "first", Range: protocol.Range{StartOffset: 0, EndOffset: 1}},
	}

	out := remap.Remap(diags, doc, doc, nil)

	require.Len(t, out, 2)
	assert.Equal(t, "second", out[0].Message)
	assert.Equal(t, "first", out[1].Message)
}
