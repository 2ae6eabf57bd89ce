// Package pandochtml renders [Pandoc] documents to HTML (or any other
// output tree) with pluggable link, code and raw-content rendering.
//
// The input is the Pandoc AST as defined in [Pandoc Types]; it can be
// built directly, decoded from pandoc's JSON wire format with
// [ReadDocument], converted from CommonMark with [FromMarkdown], or
// obtained from a pandoc executable with [Converter].
//
// Rendering is a two-pass process: [CollectFootnotes] first numbers every
// distinct footnote body in the document, then [Render] walks the tree a
// second time, resolving footnote references against that numbering and
// appending a deduplicated footnote section after the main content.
//
// [Pandoc]: https://pandoc.org/
// [Pandoc Types]: https://hackage.haskell.org/package/pandoc-types
package pandochtml

import "encoding/json"

// Supported pandoc-api-version.
const Version = "1.23.1"

// A Document is a parsed Pandoc document: metadata and a sequence of
// blocks. The renderer never inspects Meta; it is carried through
// untouched so documents survive a read/write round trip.
type Document struct {
	APIVersion []int
	Meta       json.RawMessage
	Blocks     []Block
}
