// Package plugin is the editor-facing facade: diagnostics, go-to-definition,
// completion, and formatting for component documents. The framework
// compiler, the fragment transformers, and the formatter are external
// collaborators supplied as interfaces; this package owns the coordinate
// bookkeeping and the resolution state between them.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/JohnnyFun/svelte-language-server/pkg/componentindex"
	"github.com/JohnnyFun/svelte-language-server/pkg/document"
	"github.com/JohnnyFun/svelte-language-server/pkg/pathalias"
	"github.com/JohnnyFun/svelte-language-server/pkg/preprocess"
	"github.com/JohnnyFun/svelte-language-server/pkg/protocol"
	"github.com/JohnnyFun/svelte-language-server/pkg/remap"
	"github.com/JohnnyFun/svelte-language-server/pkg/resolver"
	"github.com/JohnnyFun/svelte-language-server/pkg/scan"
)

// Setting keys gating each capability. Every capability returns an
// empty/nil result when its key is false; none of them ever panics into
// the host.
const (
	SettingDiagnostics = "svelte.diagnostics.enable"
	SettingCompletions = "svelte.completions.enable"
	SettingDefinitions = "svelte.definitions.enable"
	SettingFormat      = "svelte.format.enable"
)

// Settings is the host configuration lookup.
type Settings interface {
	GetBool(key string) bool
}

// Compiler is the external framework compiler. It receives the fully
// preprocessed document text and reports diagnostics in its coordinates.
type Compiler interface {
	Compile(ctx context.Context, text, filename string) ([]protocol.Diagnostic, error)
}

// Formatter is the external formatter; its result fully replaces the
// document text.
type Formatter interface {
	Format(ctx context.Context, text, filename string) (string, error)
}

// CompileError is a compiler failure carrying the failure's reported
// position, when the compiler reported one.
type CompileError struct {
	// Offset is the byte offset of the failure in the compiled text, or -1
	// when unreported.
	Offset int

	// Message describes the failure.
	Message string
}

func (e *CompileError) Error() string {
	return e.Message
}

// Plugin holds the per-instance state: alias and index caches (lazily
// hydrated, explicitly invalidatable) plus the external collaborators.
type Plugin struct {
	Settings   Settings
	Compiler   Compiler
	Formatter  Formatter
	Transforms preprocess.Transforms

	Aliases *pathalias.Cache
	Index   *componentindex.Cache
}

// New creates a Plugin with fresh caches.
func New(settings Settings, compiler Compiler, formatter Formatter, transforms preprocess.Transforms) *Plugin {
	return &Plugin{
		Settings:   settings,
		Compiler:   compiler,
		Formatter:  formatter,
		Transforms: transforms,
		Aliases:    pathalias.NewCache(),
		Index:      componentindex.NewCache(),
	}
}

func (p *Plugin) enabled(key string) bool {
	return p.Settings != nil && p.Settings.GetBool(key)
}

// GetDiagnostics preprocesses the document, compiles it, and remaps the
// resulting diagnostics into original-document coordinates. A preprocessor
// or compiler failure becomes a single error-severity diagnostic rather
// than an error to the host.
func (p *Plugin) GetDiagnostics(ctx context.Context, doc *document.Document) []protocol.Diagnostic {
	if !p.enabled(SettingDiagnostics) || p.Compiler == nil {
		return nil
	}

	result, err := preprocess.Run(ctx, doc, p.Transforms)
	if err != nil {
		return []protocol.Diagnostic{syntheticFailure(doc, err)}
	}

	diags, err := p.Compiler.Compile(ctx, result.Transpiled.Content, doc.Path)
	if err != nil {
		return []protocol.Diagnostic{syntheticFailure(doc, err)}
	}

	return remap.Remap(diags, doc, result.Transpiled, result.Fragments)
}

// syntheticFailure turns a pipeline failure into one error diagnostic at
// the failure's reported position, or document start when unreported.
func syntheticFailure(doc *document.Document, err error) protocol.Diagnostic {
	offset := 0
	var compileErr *CompileError
	if errors.As(err, &compileErr) && compileErr.Offset >= 0 {
		offset = doc.ClampOffset(compileErr.Offset)
	}

	line, col := doc.LineAt(offset)
	return protocol.Diagnostic{
		Message:     err.Error(),
		Severity:    protocol.SeverityError,
		Source:      "svelte",
		Range:       protocol.Range{StartOffset: offset, EndOffset: offset},
		StartLine:   line,
		StartColumn: col,
		EndLine:     line,
		EndColumn:   col,
	}
}

// GetDefinitions resolves the component identifier under the cursor to the
// candidate files it may be defined in.
func (p *Plugin) GetDefinitions(ctx context.Context, doc *document.Document, offset int) ([]protocol.LocationLink, error) {
	if !p.enabled(SettingDefinitions) {
		return nil, nil
	}

	name := scan.ExtractName(doc.Content, offset)
	if name == "" {
		return nil, nil
	}

	res, err := p.resolverFor(ctx, doc)
	if err != nil {
		return nil, err
	}

	docDir := filepath.Dir(doc.Path)

	var targets []string
	if imp, ok := scan.ImportFor(doc.Content, name); ok {
		targets = res.ResolveImportTarget(imp.Specifier, docDir)
	} else {
		targets = res.ResolveLoose(name, docDir)
	}

	originStart, originEnd := scan.IdentifierRange(doc.Content, offset)

	links := make([]protocol.LocationLink, 0, len(targets))
	for _, target := range targets {
		links = append(links, protocol.LocationLink{
			OriginStart: originStart,
			OriginEnd:   originEnd,
			TargetPath:  target,
		})
	}

	return links, nil
}

// GetCompletions returns component completions for the partial identifier
// under the cursor, each carrying an auto-import edit unless the name is
// already imported. Returns nil when disabled or when the cursor touches no
// identifier.
func (p *Plugin) GetCompletions(ctx context.Context, doc *document.Document, offset int) (*protocol.CompletionList, error) {
	if !p.enabled(SettingCompletions) {
		return nil, nil
	}

	start, end := scan.IdentifierRange(doc.Content, offset)
	if start == end {
		return nil, nil
	}
	partial := doc.Content[start:end]

	res, err := p.resolverFor(ctx, doc)
	if err != nil {
		return nil, err
	}

	docDir := filepath.Dir(doc.Path)
	targets := res.ResolveLoose(partial, docDir)
	if len(targets) == 0 {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(targets))
	for _, target := range targets {
		name := strings.TrimSuffix(filepath.Base(target), filepath.Ext(target))
		specifier := res.ToImportSpecifier(docDir, target)

		item := protocol.CompletionItem{
			Label:  name,
			Detail: specifier,
		}
		if _, imported := scan.ImportFor(doc.Content, name); !imported {
			item.AdditionalEdits = []protocol.TextEdit{autoImportEdit(doc, name, specifier)}
		}
		items = append(items, item)
	}

	return &protocol.CompletionList{Items: items}, nil
}

var scriptOpenRe = regexp.MustCompile(`(?i)<script[^>]*>`)

// autoImportEdit inserts an import statement after the opening script tag,
// or a fresh script block at the top when the document has none.
func autoImportEdit(doc *document.Document, name, specifier string) protocol.TextEdit {
	statement := fmt.Sprintf("import %s from '%s'", name, specifier)

	if loc := scriptOpenRe.FindStringIndex(doc.Content); loc != nil {
		return protocol.TextEdit{
			StartOffset: loc[1],
			EndOffset:   loc[1],
			NewText:     "\n  " + statement,
		}
	}

	return protocol.TextEdit{
		StartOffset: 0,
		EndOffset:   0,
		NewText:     "<script>\n  " + statement + "\n</script>\n\n",
	}
}

// FormatDocument runs the external formatter; the result replaces the whole
// document. A formatter failure degrades to no edits.
func (p *Plugin) FormatDocument(ctx context.Context, doc *document.Document) []protocol.TextEdit {
	if !p.enabled(SettingFormat) || p.Formatter == nil {
		return nil
	}

	formatted, err := p.Formatter.Format(ctx, doc.Content, doc.Path)
	if err != nil || formatted == doc.Content {
		return nil
	}

	return []protocol.TextEdit{{
		StartOffset: 0,
		EndOffset:   doc.Len(),
		NewText:     formatted,
	}}
}

// resolverFor assembles a Resolver for the project containing doc: alias
// base paths from the nearest alias config, component index over the
// project root (or the document's directory when no project root exists).
func (p *Plugin) resolverFor(ctx context.Context, doc *document.Document) (*resolver.Resolver, error) {
	docDir := filepath.Dir(doc.Path)

	root, basePaths := p.Aliases.EnsureResolved(docDir)

	indexRoot := root
	if indexRoot == "" {
		indexRoot = docDir
	}

	index, err := p.Index.EnsureBuilt(ctx, indexRoot, []string{indexRoot})
	if err != nil {
		return nil, fmt.Errorf("build component index: %w", err)
	}

	return resolver.New(index, basePaths), nil
}
