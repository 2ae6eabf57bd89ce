package pandochtml

import "strings"

// Element is any Pandoc AST node, block- or inline-level.
type Element interface {
	Tag() Tag
}

// WalkResult is the result of a query callback.
type WalkResult int

// WalkContinue indicates that the traversal should descend into the
// current element's children.
const WalkContinue WalkResult = 0

// WalkSkip indicates that the current element's children should not be
// visited.
const WalkSkip WalkResult = 1

// WalkStop indicates that the traversal should stop immediately.
const WalkStop WalkResult = 2

// Query applies fun to every block and inline of the document in
// pre-order: list items, table cells, captions and footnote bodies
// included. The traversal is strictly read-only.
func Query(doc *Document, fun func(Element) WalkResult) {
	queryBlocks(doc.Blocks, fun)
}

// QueryBlocks is Query over a bare block sequence.
func QueryBlocks(blocks []Block, fun func(Element) WalkResult) {
	queryBlocks(blocks, fun)
}

// QueryInlines is Query over a bare inline sequence.
func QueryInlines(inlines []Inline, fun func(Element) WalkResult) {
	queryInlines(inlines, fun)
}

func queryBlocks(blocks []Block, fun func(Element) WalkResult) WalkResult {
	for _, b := range blocks {
		switch fun(b) {
		case WalkStop:
			return WalkStop
		case WalkSkip:
			continue
		}
		if queryBlockChildren(b, fun) == WalkStop {
			return WalkStop
		}
	}
	return WalkContinue
}

func queryInlines(inlines []Inline, fun func(Element) WalkResult) WalkResult {
	for _, i := range inlines {
		switch fun(i) {
		case WalkStop:
			return WalkStop
		case WalkSkip:
			continue
		}
		if queryInlineChildren(i, fun) == WalkStop {
			return WalkStop
		}
	}
	return WalkContinue
}

func queryBlockChildren(b Block, fun func(Element) WalkResult) WalkResult {
	switch b := b.(type) {
	case *Plain:
		return queryInlines(b.Inlines, fun)
	case *Para:
		return queryInlines(b.Inlines, fun)
	case *LineBlock:
		for _, line := range b.Inlines {
			if queryInlines(line, fun) == WalkStop {
				return WalkStop
			}
		}
	case *BlockQuote:
		return queryBlocks(b.Blocks, fun)
	case *OrderedList:
		return queryItems(b.Items, fun)
	case *BulletList:
		return queryItems(b.Items, fun)
	case *DefinitionList:
		for _, item := range b.Items {
			if queryInlines(item.Term, fun) == WalkStop {
				return WalkStop
			}
			if queryItems(item.Definition, fun) == WalkStop {
				return WalkStop
			}
		}
	case *Header:
		return queryInlines(b.Inlines, fun)
	case *Table:
		if queryCaption(b.Caption, fun) == WalkStop {
			return WalkStop
		}
		if queryRows(b.Head.Rows, fun) == WalkStop {
			return WalkStop
		}
		for _, body := range b.Bodies {
			if queryRows(body.Head, fun) == WalkStop {
				return WalkStop
			}
			if queryRows(body.Body, fun) == WalkStop {
				return WalkStop
			}
		}
		return queryRows(b.Foot.Rows, fun)
	case *Figure:
		if queryCaption(b.Caption, fun) == WalkStop {
			return WalkStop
		}
		return queryBlocks(b.Blocks, fun)
	case *Div:
		return queryBlocks(b.Blocks, fun)
	case *CodeBlock, *RawBlock, *HorizontalRule:
		// no children
	}
	return WalkContinue
}

func queryInlineChildren(i Inline, fun func(Element) WalkResult) WalkResult {
	switch i := i.(type) {
	case *Emph:
		return queryInlines(i.Inlines, fun)
	case *Underline:
		return queryInlines(i.Inlines, fun)
	case *Strong:
		return queryInlines(i.Inlines, fun)
	case *Strikeout:
		return queryInlines(i.Inlines, fun)
	case *Superscript:
		return queryInlines(i.Inlines, fun)
	case *Subscript:
		return queryInlines(i.Inlines, fun)
	case *SmallCaps:
		return queryInlines(i.Inlines, fun)
	case *Quoted:
		return queryInlines(i.Inlines, fun)
	case *Cite:
		return queryInlines(i.Inlines, fun)
	case *Link:
		return queryInlines(i.Inlines, fun)
	case *Image:
		return queryInlines(i.Inlines, fun)
	case *Span:
		return queryInlines(i.Inlines, fun)
	case *Note:
		return queryBlocks(i.Blocks, fun)
	case *Str, *Code, *Space, *SoftBreak, *LineBreak, *Math, *RawInline:
		// no children
	}
	return WalkContinue
}

func queryItems(items [][]Block, fun func(Element) WalkResult) WalkResult {
	for _, item := range items {
		if queryBlocks(item, fun) == WalkStop {
			return WalkStop
		}
	}
	return WalkContinue
}

func queryRows(rows []*TableRow, fun func(Element) WalkResult) WalkResult {
	for _, row := range rows {
		for _, cell := range row.Cells {
			if queryBlocks(cell.Blocks, fun) == WalkStop {
				return WalkStop
			}
		}
	}
	return WalkContinue
}

func queryCaption(c Caption, fun func(Element) WalkResult) WalkResult {
	if queryInlines(c.Short, fun) == WalkStop {
		return WalkStop
	}
	return queryBlocks(c.Long, fun)
}

// Stringify flattens inline content to plain text: string runs are kept,
// any whitespace inline becomes a single space or newline, markup is
// stripped and footnote bodies are skipped.
func Stringify(inlines []Inline) string {
	var sb strings.Builder
	queryInlines(inlines, func(e Element) WalkResult {
		switch e := e.(type) {
		case *Str:
			sb.WriteString(e.Text)
		case *Space:
			sb.WriteByte(' ')
		case *SoftBreak:
			sb.WriteByte('\n')
		case *LineBreak:
			sb.WriteByte('\n')
		case *Code:
			sb.WriteString(e.Text)
		case *Math:
			sb.WriteString(e.Text)
		case *Note:
			return WalkSkip
		}
		return WalkContinue
	})
	return sb.String()
}
