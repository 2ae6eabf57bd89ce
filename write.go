package pandochtml

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteDocument encodes a document into pandoc's JSON wire format,
// suitable for "pandoc -f json".
func WriteDocument(w io.Writer, doc *Document) error {
	version := doc.APIVersion
	if len(version) == 0 {
		version = apiVersion()
	}
	meta := doc.Meta
	if len(meta) == 0 {
		meta = json.RawMessage("{}")
	}
	payload := struct {
		APIVersion []int           `json:"pandoc-api-version"`
		Meta       json.RawMessage `json:"meta"`
		Blocks     any             `json:"blocks"`
	}{
		APIVersion: version,
		Meta:       meta,
		Blocks:     encBlocks(doc.Blocks),
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&payload); err != nil {
		return fmt.Errorf("pandoc json: %w", err)
	}
	return nil
}

func apiVersion() []int {
	v := make([]int, 0, 3)
	n := 0
	for i := 0; i < len(Version); i++ {
		if Version[i] == '.' {
			v = append(v, n)
			n = 0
			continue
		}
		n = n*10 + int(Version[i]-'0')
	}
	return append(v, n)
}

// elt is the {"t": ..., "c": ...} encoded form. A nil C is omitted, which
// is how childless constructors (Space, HorizontalRule, ...) are written.
type elt struct {
	T Tag `json:"t"`
	C any `json:"c,omitempty"`
}

func encBlocks(blocks []Block) []any {
	out := make([]any, len(blocks))
	for i, b := range blocks {
		out[i] = encBlock(b)
	}
	return out
}

func encInlines(inlines []Inline) []any {
	out := make([]any, len(inlines))
	for i, in := range inlines {
		out[i] = encInline(in)
	}
	return out
}

func encItems(items [][]Block) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = encBlocks(item)
	}
	return out
}

func encAttr(a Attr) []any {
	classes := a.Classes
	if classes == nil {
		classes = []string{}
	}
	kvs := make([][2]string, len(a.KVs))
	for i, kv := range a.KVs {
		kvs[i] = [2]string{kv.Key, kv.Value}
	}
	return []any{a.Id, classes, kvs}
}

func encEnum[T ~string](v T) elt {
	return elt{T: Tag(v)}
}

func encCaption(c Caption) []any {
	var short any
	if c.Short != nil {
		short = encInlines(c.Short)
	}
	return []any{short, encBlocks(c.Long)}
}

func encRows(rows []*TableRow) []any {
	out := make([]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = []any{
				encAttr(cell.Attr),
				encEnum(cell.Align),
				cell.RowSpan,
				cell.ColSpan,
				encBlocks(cell.Blocks),
			}
		}
		out[i] = []any{encAttr(row.Attr), cells}
	}
	return out
}

func encHeadFoot(hf TableHeadFoot) []any {
	return []any{encAttr(hf.Attr), encRows(hf.Rows)}
}

func encBlock(b Block) any {
	switch b := b.(type) {
	case *Plain:
		return elt{T: PlainTag, C: encInlines(b.Inlines)}
	case *Para:
		return elt{T: ParaTag, C: encInlines(b.Inlines)}
	case *LineBlock:
		lines := make([]any, len(b.Inlines))
		for i, line := range b.Inlines {
			lines[i] = encInlines(line)
		}
		return elt{T: LineBlockTag, C: lines}
	case *CodeBlock:
		return elt{T: CodeBlockTag, C: []any{encAttr(b.Attr), b.Text}}
	case *RawBlock:
		return elt{T: RawBlockTag, C: []any{b.Format, b.Text}}
	case *BlockQuote:
		return elt{T: BlockQuoteTag, C: encBlocks(b.Blocks)}
	case *OrderedList:
		attrs := []any{b.Attr.Start, encEnum(b.Attr.Style), encEnum(b.Attr.Delimiter)}
		return elt{T: OrderedListTag, C: []any{attrs, encItems(b.Items)}}
	case *BulletList:
		return elt{T: BulletListTag, C: encItems(b.Items)}
	case *DefinitionList:
		items := make([]any, len(b.Items))
		for i, item := range b.Items {
			items[i] = []any{encInlines(item.Term), encItems(item.Definition)}
		}
		return elt{T: DefinitionListTag, C: items}
	case *Header:
		return elt{T: HeaderTag, C: []any{b.Level, encAttr(b.Attr), encInlines(b.Inlines)}}
	case *HorizontalRule:
		return elt{T: HorizontalRuleTag}
	case *Table:
		specs := make([]any, len(b.Aligns))
		for i, spec := range b.Aligns {
			width := elt{T: "ColWidthDefault"}
			if !spec.Width.Default {
				width = elt{T: "ColWidth", C: spec.Width.Width}
			}
			specs[i] = []any{encEnum(spec.Align), width}
		}
		bodies := make([]any, len(b.Bodies))
		for i, body := range b.Bodies {
			bodies[i] = []any{
				encAttr(body.Attr),
				body.RowHeadColumns,
				encRows(body.Head),
				encRows(body.Body),
			}
		}
		return elt{T: TableTag, C: []any{
			encAttr(b.Attr),
			encCaption(b.Caption),
			specs,
			encHeadFoot(b.Head),
			bodies,
			encHeadFoot(b.Foot),
		}}
	case *Figure:
		return elt{T: FigureTag, C: []any{encAttr(b.Attr), encCaption(b.Caption), encBlocks(b.Blocks)}}
	case *Div:
		return elt{T: DivTag, C: []any{encAttr(b.Attr), encBlocks(b.Blocks)}}
	default:
		// unreachable: Block is a closed union
		return elt{T: b.Tag()}
	}
}

func encInline(i Inline) any {
	switch i := i.(type) {
	case *Str:
		return elt{T: StrTag, C: i.Text}
	case *Emph:
		return elt{T: EmphTag, C: encInlines(i.Inlines)}
	case *Underline:
		return elt{T: UnderlineTag, C: encInlines(i.Inlines)}
	case *Strong:
		return elt{T: StrongTag, C: encInlines(i.Inlines)}
	case *Strikeout:
		return elt{T: StrikeoutTag, C: encInlines(i.Inlines)}
	case *Superscript:
		return elt{T: SuperscriptTag, C: encInlines(i.Inlines)}
	case *Subscript:
		return elt{T: SubscriptTag, C: encInlines(i.Inlines)}
	case *SmallCaps:
		return elt{T: SmallCapsTag, C: encInlines(i.Inlines)}
	case *Quoted:
		return elt{T: QuotedTag, C: []any{encEnum(i.QuoteType), encInlines(i.Inlines)}}
	case *Cite:
		citations := make([]any, len(i.Citations))
		for j, c := range i.Citations {
			citations[j] = map[string]any{
				"citationId":      c.Id,
				"citationPrefix":  encInlines(c.Prefix),
				"citationSuffix":  encInlines(c.Suffix),
				"citationMode":    encEnum(c.Mode),
				"citationNoteNum": c.NoteNum,
				"citationHash":    c.Hash,
			}
		}
		return elt{T: CiteTag, C: []any{citations, encInlines(i.Inlines)}}
	case *Code:
		return elt{T: CodeTag, C: []any{encAttr(i.Attr), i.Text}}
	case *Space:
		return elt{T: SpaceTag}
	case *SoftBreak:
		return elt{T: SoftBreakTag}
	case *LineBreak:
		return elt{T: LineBreakTag}
	case *Math:
		return elt{T: MathTag, C: []any{encEnum(i.MathType), i.Text}}
	case *RawInline:
		return elt{T: RawInlineTag, C: []any{i.Format, i.Text}}
	case *Link:
		return elt{T: LinkTag, C: []any{encAttr(i.Attr), encInlines(i.Inlines), [2]string{i.Target.Url, i.Target.Title}}}
	case *Image:
		return elt{T: ImageTag, C: []any{encAttr(i.Attr), encInlines(i.Inlines), [2]string{i.Target.Url, i.Target.Title}}}
	case *Note:
		return elt{T: NoteTag, C: encBlocks(i.Blocks)}
	case *Span:
		return elt{T: SpanTag, C: []any{encAttr(i.Attr), encInlines(i.Inlines)}}
	default:
		// unreachable: Inline is a closed union
		return elt{T: i.Tag()}
	}
}

// blocksKey returns the canonical encoding of a block sequence. Two
// sequences have equal keys exactly when they are structurally equal,
// which is the identity footnote deduplication runs on.
func blocksKey(blocks []Block) string {
	key, err := json.Marshal(encBlocks(blocks))
	if err != nil {
		// encBlocks produces only slices, strings, numbers and structs;
		// Marshal cannot fail on it.
		panic(err)
	}
	return string(key)
}
