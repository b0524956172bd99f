package preprocess

import "sort"

// MapPosition is a position in source-map convention: 1-based line,
// 0-based column. Both sides of a mapping are relative to their fragment's
// own text, not to any whole document.
type MapPosition struct {
	Line   int
	Column int
}

// before reports whether p sorts before q.
func (p MapPosition) before(q MapPosition) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Mapping relates one transpiled position to its original position.
type Mapping struct {
	Generated MapPosition
	Original  MapPosition
}

// SourceMap is the position-translation table an external preprocessor
// reports for one transformed fragment.
type SourceMap struct {
	mappings []Mapping
}

// NewSourceMap builds a SourceMap from mappings, sorting them by generated
// position.
func NewSourceMap(mappings []Mapping) *SourceMap {
	sorted := make([]Mapping, len(mappings))
	copy(sorted, mappings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Generated.before(sorted[j].Generated)
	})
	return &SourceMap{mappings: sorted}
}

// Len returns the number of mappings.
func (m *SourceMap) Len() int {
	return len(m.mappings)
}

// OriginalPosition returns the original position for a generated position
// using a greatest-lower-bound lookup: the mapping with the greatest
// generated position not past the query. The intra-segment column delta is
// not added; the lookup returns the mapping's recorded original position,
// matching the consumer behavior the transpiled coordinates were produced
// under. Returns false when no mapping precedes the query.
func (m *SourceMap) OriginalPosition(generated MapPosition) (MapPosition, bool) {
	if len(m.mappings) == 0 {
		return MapPosition{}, false
	}

	// First mapping strictly past the query.
	idx := sort.Search(len(m.mappings), func(i int) bool {
		return generated.before(m.mappings[i].Generated)
	})
	if idx == 0 {
		return MapPosition{}, false
	}

	return m.mappings[idx-1].Original, true
}
