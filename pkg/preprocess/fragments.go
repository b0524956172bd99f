package preprocess

import (
	"regexp"
	"sort"

	"github.com/JohnnyFun/svelte-language-server/pkg/document"
)

// Tag scanning is regex-based on purpose: the zones feed coordinate
// bookkeeping, not semantic analysis, and the framework compiler re-parses
// the document anyway.
var (
	scriptTagRe = regexp.MustCompile(`(?is)<script([^>]*)>(.*?)</script>`)
	styleTagRe  = regexp.MustCompile(`(?is)<style([^>]*)>(.*?)</style>`)
	attrRe      = regexp.MustCompile(`([\w-]+)\s*=\s*["']([^"']*)["']`)
)

// ScanFragments splits a component document into ordered, non-overlapping
// fragments: the content zones of <script> and <style> tags, and markup
// fragments covering everything else (tags themselves included). The
// fragments concatenate back to the whole document.
func ScanFragments(doc *document.Document) []document.Fragment {
	var tagged []document.Fragment
	tagged = append(tagged, tagFragments(doc.Content, scriptTagRe, document.KindScript)...)
	tagged = append(tagged, tagFragments(doc.Content, styleTagRe, document.KindStyle)...)

	sort.Slice(tagged, func(i, j int) bool {
		return tagged[i].Start < tagged[j].Start
	})

	// Fill the gaps with markup fragments.
	var fragments []document.Fragment
	cursor := 0
	for _, frag := range tagged {
		if frag.Start > cursor {
			fragments = append(fragments, document.Fragment{
				Kind:  document.KindMarkup,
				Start: cursor,
				End:   frag.Start,
			})
		}
		fragments = append(fragments, frag)
		cursor = frag.End
	}
	if cursor < doc.Len() {
		fragments = append(fragments, document.Fragment{
			Kind:  document.KindMarkup,
			Start: cursor,
			End:   doc.Len(),
		})
	}

	return fragments
}

// tagFragments returns the content zones of every match of tagRe, with
// parsed attributes.
func tagFragments(content string, tagRe *regexp.Regexp, kind document.Kind) []document.Fragment {
	matches := tagRe.FindAllStringSubmatchIndex(content, -1)
	if matches == nil {
		return nil
	}

	fragments := make([]document.Fragment, 0, len(matches))
	for _, m := range matches {
		// m[2:4] is the attribute list, m[4:6] the content zone.
		fragments = append(fragments, document.Fragment{
			Kind:  kind,
			Start: m[4],
			End:   m[5],
			Attrs: parseAttrs(content[m[2]:m[3]]),
		})
	}

	return fragments
}

// parseAttrs extracts quoted key="value" attributes from a tag's attribute
// list. Bare attributes carry no value this package cares about.
func parseAttrs(attrList string) map[string]string {
	matches := attrRe.FindAllStringSubmatch(attrList, -1)
	if matches == nil {
		return nil
	}

	attrs := make(map[string]string, len(matches))
	for _, m := range matches {
		attrs[m[1]] = m[2]
	}

	return attrs
}
