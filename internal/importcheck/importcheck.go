// Package importcheck implements the plugin's Compiler interface with a
// resolution-only check: component imports must resolve against the index,
// and component tags must be backed by an import. It stands in for the
// framework compiler in the CLI, which has no JavaScript runtime to call.
package importcheck

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/JohnnyFun/svelte-language-server/pkg/document"
	"github.com/JohnnyFun/svelte-language-server/pkg/protocol"
	"github.com/JohnnyFun/svelte-language-server/pkg/resolver"
	"github.com/JohnnyFun/svelte-language-server/pkg/scan"
)

// Compiler checks component imports and tag usages. It satisfies
// plugin.Compiler.
type Compiler struct {
	// Resolver resolves specifiers for the active project.
	Resolver *resolver.Resolver
}

// New creates a Compiler over the given resolver.
func New(res *resolver.Resolver) *Compiler {
	return &Compiler{Resolver: res}
}

// Compile reports unresolvable component imports and unimported component
// tags as error diagnostics. It never fails; resolution misses are
// diagnostics, not errors.
func (c *Compiler) Compile(_ context.Context, text, filename string) ([]protocol.Diagnostic, error) {
	doc := document.New(filename, text)
	docDir := filepath.Dir(filename)

	var diags []protocol.Diagnostic

	imports := scan.Imports(text)
	tags := scan.ComponentTags(text)

	imported := make(map[string]bool, len(imports))
	for _, imp := range imports {
		imported[imp.Name] = true

		if !c.isComponentImport(imp, tags) {
			continue
		}

		if len(c.Resolver.ResolveImportTarget(imp.Specifier, docDir)) == 0 {
			diags = append(diags, diagnosticAt(doc, imp.Start, imp.End,
				"cannot resolve component import '"+imp.Specifier+"'"))
		}
	}

	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if imported[tag.Name] || seen[tag.Name] {
			continue
		}
		seen[tag.Name] = true
		diags = append(diags, diagnosticAt(doc, tag.Offset, tag.Offset+len(tag.Name),
			"component '"+tag.Name+"' is not imported"))
	}

	return diags, nil
}

// isComponentImport decides whether an import refers to a component: either
// the specifier names a component file, or the bound name is used as a tag.
func (c *Compiler) isComponentImport(imp scan.Import, tags []scan.TagRef) bool {
	if strings.HasSuffix(strings.ToLower(imp.Specifier), resolver.DefaultExtension) {
		return true
	}
	for _, tag := range tags {
		if tag.Name == imp.Name {
			return true
		}
	}
	return false
}

func diagnosticAt(doc *document.Document, start, end int, message string) protocol.Diagnostic {
	startLine, startCol := doc.LineAt(start)
	endLine, endCol := doc.LineAt(end)
	return protocol.Diagnostic{
		Message:     message,
		Severity:    protocol.SeverityError,
		Source:      "import-check",
		Range:       protocol.Range{StartOffset: start, EndOffset: end},
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}
