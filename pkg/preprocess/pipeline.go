// Package preprocess wraps the external per-fragment transformations of a
// component document: it locates script/style zones, invokes the supplied
// transformers, assembles the transpiled document, and records the source
// maps needed to translate diagnostic positions back.
package preprocess

import (
	"context"
	"fmt"
	"strings"

	"github.com/JohnnyFun/svelte-language-server/pkg/document"
)

// Transformer transpiles one fragment's code. attrs are the fragment tag's
// attributes, filename identifies the parent document. A nil SourceMap
// means the transformation reported no position table; the transformed text
// is still substituted, but diagnostics inside it fall through to the
// generic offset-correction path instead of exact lookup.
type Transformer func(ctx context.Context, code string, attrs map[string]string, filename string) (string, *SourceMap, error)

// Transforms supplies an optional Transformer per fragment kind.
type Transforms struct {
	Script Transformer
	Style  Transformer
}

// PreprocessedFragment pairs a transformed source fragment with its zone in
// the transpiled document and the source map the transformation reported.
// At most one exists per script/style fragment per diagnostics pass.
type PreprocessedFragment struct {
	// Original is the fragment's zone in the original document.
	Original document.Fragment

	// Transpiled is the fragment's zone in the transpiled document.
	Transpiled document.Fragment

	// Map translates transpiled fragment positions to original fragment
	// positions. Never nil.
	Map *SourceMap
}

// Result is the outcome of one preprocessing pass.
type Result struct {
	// Transpiled is the synthetic document assembled from the (possibly
	// transformed) fragment texts, in original order. Its length generally
	// differs from the original.
	Transpiled *document.Document

	// Fragments are the fragments for which a source map was reported,
	// ordered by transpiled start offset.
	Fragments []PreprocessedFragment
}

// Run scans doc into fragments, applies the matching transformer to each
// script/style fragment, and assembles the transpiled document. Transpiled
// fragment offsets accumulate transpiled lengths, not original lengths.
func Run(ctx context.Context, doc *document.Document, transforms Transforms) (*Result, error) {
	fragments := ScanFragments(doc)

	var builder strings.Builder
	var preprocessed []PreprocessedFragment

	for _, frag := range fragments {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("preprocess cancelled: %w", ctx.Err())
		default:
		}

		text := frag.Text(doc.Content)

		transformer := transforms.transformerFor(frag.Kind)
		if transformer == nil {
			builder.WriteString(text)
			continue
		}

		code, srcMap, err := transformer(ctx, text, frag.Attrs, doc.Path)
		if err != nil {
			return nil, fmt.Errorf("transform %s fragment: %w", frag.Kind, err)
		}

		transpiledStart := builder.Len()
		builder.WriteString(code)

		if srcMap != nil {
			preprocessed = append(preprocessed, PreprocessedFragment{
				Original: frag,
				Transpiled: document.Fragment{
					Kind:  frag.Kind,
					Start: transpiledStart,
					End:   transpiledStart + len(code),
					Attrs: frag.Attrs,
				},
				Map: srcMap,
			})
		}
	}

	return &Result{
		Transpiled: document.New(doc.Path, builder.String()),
		Fragments:  preprocessed,
	}, nil
}

func (t Transforms) transformerFor(kind document.Kind) Transformer {
	switch kind {
	case document.KindScript:
		return t.Script
	case document.KindStyle:
		return t.Style
	default:
		return nil
	}
}
