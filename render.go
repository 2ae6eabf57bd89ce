package pandochtml

import "strconv"

// Render renders a document: footnotes are collected first, then the
// block sequence is rendered under that numbering, then the deduplicated
// footnote section is appended. The result is the backend's combination
// of the two parts.
//
// Rendering never fails: unsupported constructs (citations) degrade to a
// visible inline marker and the rest of the document renders normally.
func Render[O any](backend Backend[O], cfg Config[O], doc *Document) O {
	notes := CollectFootnotes(doc)
	r := &renderer[O]{b: backend, cfg: cfg}
	return backend.Combine(
		r.blocks(notes, doc.Blocks),
		r.footnoteSection(notes),
	)
}

// RenderBlocks renders a bare block sequence under a given footnote
// numbering. Pass the zero Footnotes to render without references.
func RenderBlocks[O any](backend Backend[O], cfg Config[O], notes Footnotes, blocks []Block) O {
	r := &renderer[O]{b: backend, cfg: cfg}
	return r.blocks(notes, blocks)
}

// RenderInlines renders a bare inline sequence under a given footnote
// numbering.
func RenderInlines[O any](backend Backend[O], cfg Config[O], notes Footnotes, inlines []Inline) O {
	r := &renderer[O]{b: backend, cfg: cfg}
	return r.inlines(notes, inlines)
}

type renderer[O any] struct {
	b   Backend[O]
	cfg Config[O]
}

// The footnote numbering is threaded through every call explicitly; the
// renderer itself holds no traversal state.

func (r *renderer[O]) blocks(notes Footnotes, blocks []Block) O {
	parts := make([]O, len(blocks))
	for i, b := range blocks {
		parts[i] = r.block(notes, b)
	}
	return r.b.Combine(parts...)
}

func (r *renderer[O]) inlines(notes Footnotes, inlines []Inline) O {
	parts := make([]O, len(inlines))
	for i, in := range inlines {
		parts[i] = r.inline(notes, in)
	}
	return r.b.Combine(parts...)
}

func (r *renderer[O]) block(notes Footnotes, blk Block) O {
	switch b := blk.(type) {
	case *Plain:
		return r.maybeTask(notes, b.Inlines)
	case *Para:
		return r.b.Element("p", nil, r.maybeTask(notes, b.Inlines))
	case *LineBlock:
		parts := make([]O, 0, 2*len(b.Inlines))
		for i, line := range b.Inlines {
			if i > 0 {
				parts = append(parts, r.b.Void("br", nil))
			}
			parts = append(parts, r.inlines(notes, line))
		}
		return r.b.Element("div", []KV{{"class", "line-block"}}, r.b.Combine(parts...))
	case *CodeBlock:
		def := func() O {
			return r.b.Element("pre", attrPairs(b.Attr),
				r.b.Element("code", nil, r.b.Text(b.Text)))
		}
		if r.cfg.Code != nil {
			return r.cfg.Code(def, b.Attr, b.Text)
		}
		return def()
	case *RawBlock:
		return r.raw(RawContent{Block: true, Format: b.Format, Text: b.Text})
	case *BlockQuote:
		return r.b.Element("blockquote", nil, r.blocks(notes, b.Blocks))
	case *OrderedList:
		var attrs []KV
		if b.Attr.Start != 1 {
			attrs = append(attrs, KV{"start", strconv.Itoa(b.Attr.Start)})
		}
		if t := markerType(b.Attr.Style); t != "" {
			attrs = append(attrs, KV{"type", t})
		}
		return r.b.Element("ol", attrs, r.items(notes, b.Items))
	case *BulletList:
		return r.b.Element("ul", nil, r.items(notes, b.Items))
	case *DefinitionList:
		parts := make([]O, 0, 2*len(b.Items))
		for _, item := range b.Items {
			parts = append(parts, r.b.Element("dt", nil, r.inlines(notes, item.Term)))
			for _, def := range item.Definition {
				parts = append(parts, r.b.Element("dd", nil, r.blocks(notes, def)))
			}
		}
		return r.b.Element("dl", nil, r.b.Combine(parts...))
	case *Header:
		level := b.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		return r.b.Element("h"+strconv.Itoa(level), attrPairs(b.Attr), r.inlines(notes, b.Inlines))
	case *HorizontalRule:
		return r.b.Void("hr", nil)
	case *Table:
		return r.table(notes, b)
	case *Figure:
		// Caption is accepted but not rendered.
		return r.b.Element("figure", attrPairs(b.Attr), r.blocks(notes, b.Blocks))
	case *Div:
		return r.b.Element("div", attrPairs(b.Attr), r.blocks(notes, b.Blocks))
	default:
		// Block is a closed union; this arm guards against a new variant
		// being added without a rendering rule.
		return r.unsupported(blk.Tag())
	}
}

func (r *renderer[O]) inline(notes Footnotes, inl Inline) O {
	switch i := inl.(type) {
	case *Str:
		return r.b.Text(i.Text)
	case *Emph:
		return r.b.Element("em", nil, r.inlines(notes, i.Inlines))
	case *Underline:
		return r.b.Element("u", nil, r.inlines(notes, i.Inlines))
	case *Strong:
		return r.b.Element("strong", nil, r.inlines(notes, i.Inlines))
	case *Strikeout:
		return r.b.Element("del", nil, r.inlines(notes, i.Inlines))
	case *Superscript:
		return r.b.Element("sup", nil, r.inlines(notes, i.Inlines))
	case *Subscript:
		return r.b.Element("sub", nil, r.inlines(notes, i.Inlines))
	case *SmallCaps:
		return r.b.Element("span", []KV{{"class", "smallcaps"}}, r.inlines(notes, i.Inlines))
	case *Quoted:
		opening, closing := "‘", "’"
		if i.QuoteType == DoubleQuote {
			opening, closing = "“", "”"
		}
		return r.b.Combine(r.b.Text(opening), r.inlines(notes, i.Inlines), r.b.Text(closing))
	case *Cite:
		return r.unsupported(CiteTag)
	case *Code:
		return r.b.Element("code", attrPairs(i.Attr), r.b.Text(i.Text))
	case *Space:
		return r.b.Text(" ")
	case *SoftBreak:
		return r.b.Text("\n")
	case *LineBreak:
		return r.b.Void("br", nil)
	case *Math:
		if i.MathType == DisplayMath {
			return r.b.Element("span", []KV{{"class", "math display"}}, r.b.Text("$$"+i.Text+"$$"))
		}
		return r.b.Element("span", []KV{{"class", "math inline"}}, r.b.Text(`\(`+i.Text+`\)`))
	case *RawInline:
		return r.raw(RawContent{Format: i.Format, Text: i.Text})
	case *Link:
		return r.link(notes, i)
	case *Image:
		attrs := attrPairs(i.Attr, KV{"src", i.Target.Url}, KV{"alt", Stringify(i.Inlines)})
		if i.Target.Title != "" {
			attrs = append(attrs, KV{"title", i.Target.Title})
		}
		return r.b.Void("img", attrs)
	case *Note:
		return r.note(notes, i)
	case *Span:
		return r.b.Element("span", attrPairs(i.Attr), r.inlines(notes, i.Inlines))
	default:
		// Inline is a closed union; see the matching arm in block.
		return r.unsupported(inl.Tag())
	}
}

func (r *renderer[O]) link(notes Footnotes, l *Link) O {
	def := func() O {
		attrs := attrPairs(l.Attr, KV{"href", l.Target.Url})
		if l.Target.Title != "" {
			attrs = append(attrs, KV{"title", l.Target.Title})
		}
		return r.b.Element("a", attrs, r.inlines(notes, l.Inlines))
	}
	if r.cfg.Link == nil {
		return def()
	}
	inner := l.Inlines
	if isAutolink(l) {
		inner = nil
	} else if inner == nil {
		inner = []Inline{}
	}
	return r.cfg.Link(def, l.Target.Url, l.Attr, l.Target.Title, inner)
}

// isAutolink reports whether the link's visible content is a single
// string equal to its URL.
func isAutolink(l *Link) bool {
	if len(l.Inlines) != 1 {
		return false
	}
	s, ok := l.Inlines[0].(*Str)
	return ok && s.Text == l.Target.Url
}

// note resolves a footnote reference against the numbering. A miss means
// this note's body sits inside another footnote's body (the section is
// rendered under an empty numbering); such notes display inline with no
// number rather than recursing into cross-references.
func (r *renderer[O]) note(notes Footnotes, n *Note) O {
	if num, ok := notes.Lookup(n.Blocks); ok {
		label := strconv.Itoa(num)
		return r.b.Element("sup",
			[]KV{{"class", "footnote-ref"}, {"id", "fnref:" + label}},
			r.b.Element("a", []KV{{"href", "#fn:" + label}}, r.b.Text(label)))
	}
	return r.b.Element("aside", []KV{{"class", "footnote-nested"}}, r.blocks(notes, n.Blocks))
}

// footnoteSection renders the deduplicated footnote bodies as an ordered
// list, each with a return link to its reference marker. Bodies render
// under an empty numbering (the nested-footnote depth bound).
//
// A footnote referenced more than once produces the same fnref id at
// every site; the return link then resolves to the first occurrence.
func (r *renderer[O]) footnoteSection(notes Footnotes) O {
	if notes.Len() == 0 {
		return r.b.Empty()
	}
	var empty Footnotes
	items := make([]O, notes.Len())
	for num := 1; num <= notes.Len(); num++ {
		label := strconv.Itoa(num)
		back := r.b.Element("a",
			[]KV{{"class", "footnote-return"}, {"href", "#fnref:" + label}},
			r.b.Text("↩"))
		items[num-1] = r.b.Element("li", []KV{{"id", "fn:" + label}},
			r.b.Combine(r.blocks(empty, notes.Body(num)), r.b.Text(" "), back))
	}
	return r.b.Element("ol", []KV{{"class", "footnotes"}}, r.b.Combine(items...))
}

func (r *renderer[O]) items(notes Footnotes, items [][]Block) O {
	parts := make([]O, len(items))
	for i, item := range items {
		parts[i] = r.b.Element("li", nil, r.blocks(notes, item))
	}
	return r.b.Combine(parts...)
}

func (r *renderer[O]) table(notes Footnotes, t *Table) O {
	// Caption, column spec and foot are accepted but not rendered.
	var parts []O
	if len(t.Head.Rows) > 0 {
		parts = append(parts, r.b.Element("thead", nil, r.rows(notes, t.Head.Rows, "th")))
	}
	for _, body := range t.Bodies {
		cells := r.b.Combine(
			r.rows(notes, body.Head, "td"),
			r.rows(notes, body.Body, "td"),
		)
		parts = append(parts, r.b.Element("tbody", nil, cells))
	}
	return r.b.Element("table", attrPairs(t.Attr), r.b.Combine(parts...))
}

func (r *renderer[O]) rows(notes Footnotes, rows []*TableRow, cellTag string) O {
	parts := make([]O, len(rows))
	for i, row := range rows {
		cells := make([]O, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = r.b.Element(cellTag, attrPairs(cell.Attr), r.blocks(notes, cell.Blocks))
		}
		parts[i] = r.b.Element("tr", attrPairs(row.Attr), r.b.Combine(cells...))
	}
	return r.b.Combine(parts...)
}

// maybeTask renders a Plain/Para inline sequence, turning a leading
// task-list glyph into a disabled checkbox.
func (r *renderer[O]) maybeTask(notes Footnotes, inlines []Inline) O {
	checked, rest, ok := taskBox(inlines)
	if !ok {
		return r.inlines(notes, inlines)
	}
	attrs := []KV{{"type", "checkbox"}, {"disabled", ""}}
	if checked {
		attrs = append(attrs, KV{"checked", ""})
	}
	return r.b.Combine(r.b.Void("input", attrs), r.b.Text(" "), r.inlines(notes, rest))
}

// taskBox detects the task-list extension's literal glyphs: an unchecked
// or checked box followed by a space at the head of the inline sequence.
func taskBox(inlines []Inline) (checked bool, rest []Inline, ok bool) {
	if len(inlines) < 2 {
		return false, nil, false
	}
	s, isStr := inlines[0].(*Str)
	if !isStr {
		return false, nil, false
	}
	switch s.Text {
	case "☐":
	case "☑", "☒":
		checked = true
	default:
		return false, nil, false
	}
	if _, isSpace := inlines[1].(*Space); !isSpace {
		return false, nil, false
	}
	return checked, inlines[2:], true
}

func (r *renderer[O]) raw(raw RawContent) O {
	if r.cfg.Raw != nil {
		return r.cfg.Raw(raw)
	}
	return r.b.Empty()
}

func (r *renderer[O]) unsupported(tag Tag) O {
	return r.b.Element("span", []KV{{"class", "unsupported"}},
		r.b.Text("["+string(tag)+" not supported]"))
}

// markerType maps an enumeration style to the HTML list type hint.
func markerType(style ListNumberStyle) string {
	switch style {
	case LowerRoman:
		return "i"
	case UpperRoman:
		return "I"
	case LowerAlpha:
		return "a"
	case UpperAlpha:
		return "A"
	}
	return ""
}

// attrPairs flattens an Attr into rendered attributes: id, class, then
// the key-value pairs, followed by any extras.
func attrPairs(a Attr, extra ...KV) []KV {
	pairs := make([]KV, 0, 2+len(a.KVs)+len(extra))
	if a.Id != "" {
		pairs = append(pairs, KV{"id", a.Id})
	}
	if len(a.Classes) > 0 {
		class := a.Classes[0]
		for _, c := range a.Classes[1:] {
			class += " " + c
		}
		pairs = append(pairs, KV{"class", class})
	}
	pairs = append(pairs, a.KVs...)
	return append(pairs, extra...)
}
