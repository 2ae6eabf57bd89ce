package pandochtml

// Footnotes is the numbering of a document's footnotes: a bijection
// between the distinct footnote bodies (by structural equality) and the
// integers 1..N, in order of first encounter. It is built once per
// document by [CollectFootnotes] and read-only afterwards.
//
// The zero value is an empty numbering; every lookup misses. The footnote
// section deliberately renders bodies under the zero value so footnotes
// nested inside footnotes never resolve to a numbered reference.
type Footnotes struct {
	index  map[string]int
	bodies [][]Block
}

// CollectFootnotes walks the whole document in pre-order and numbers
// every distinct footnote body it encounters, including bodies nested
// inside other footnotes. An empty document yields an empty numbering.
func CollectFootnotes(doc *Document) Footnotes {
	notes := Footnotes{index: make(map[string]int)}
	Query(doc, func(e Element) WalkResult {
		if n, ok := e.(*Note); ok {
			key := blocksKey(n.Blocks)
			if _, seen := notes.index[key]; !seen {
				notes.bodies = append(notes.bodies, n.Blocks)
				notes.index[key] = len(notes.bodies)
			}
		}
		return WalkContinue
	})
	return notes
}

// Lookup returns the 1-based number assigned to a footnote body, matching
// by structural equality of the block sequence.
func (f Footnotes) Lookup(blocks []Block) (int, bool) {
	if f.index == nil {
		return 0, false
	}
	n, ok := f.index[blocksKey(blocks)]
	return n, ok
}

// Len returns the number of distinct footnote bodies.
func (f Footnotes) Len() int { return len(f.bodies) }

// Body returns the footnote body numbered n (1-based).
func (f Footnotes) Body(n int) []Block { return f.bodies[n-1] }
