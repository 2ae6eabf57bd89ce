package pandochtml

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadDocument decodes a document from pandoc's JSON wire format, as
// produced by "pandoc -t json".
func ReadDocument(r io.Reader) (*Document, error) {
	var raw struct {
		APIVersion []int           `json:"pandoc-api-version"`
		Meta       json.RawMessage `json:"meta"`
		Blocks     json.RawMessage `json:"blocks"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("pandoc json: %w", err)
	}
	if len(raw.APIVersion) == 0 || raw.APIVersion[0] != 1 {
		return nil, fmt.Errorf("pandoc json: unsupported api version %v", raw.APIVersion)
	}
	blocks, err := decodeBlocks(raw.Blocks)
	if err != nil {
		return nil, err
	}
	return &Document{
		APIVersion: raw.APIVersion,
		Meta:       raw.Meta,
		Blocks:     blocks,
	}, nil
}

// tagged is the {"t": ..., "c": ...} shape every AST element is encoded as.
type tagged struct {
	T Tag             `json:"t"`
	C json.RawMessage `json:"c"`
}

func tuple(raw json.RawMessage, n int, what Tag) ([]json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, fmt.Errorf("pandoc json: %s contents: %w", what, err)
	}
	if len(parts) != n {
		return nil, fmt.Errorf("pandoc json: %s expects %d fields, got %d", what, n, len(parts))
	}
	return parts, nil
}

func decodeBlocks(raw json.RawMessage) ([]Block, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("pandoc json: block list: %w", err)
	}
	blocks := make([]Block, len(items))
	for i, item := range items {
		b, err := decodeBlock(item)
		if err != nil {
			return nil, err
		}
		blocks[i] = b
	}
	return blocks, nil
}

func decodeInlines(raw json.RawMessage) ([]Inline, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("pandoc json: inline list: %w", err)
	}
	inlines := make([]Inline, len(items))
	for i, item := range items {
		in, err := decodeInline(item)
		if err != nil {
			return nil, err
		}
		inlines[i] = in
	}
	return inlines, nil
}

func decodeBlock(raw json.RawMessage) (Block, error) {
	var e tagged
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("pandoc json: block: %w", err)
	}
	switch e.T {
	case PlainTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &Plain{Inlines: inlines}, nil
	case ParaTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &Para{Inlines: inlines}, nil
	case LineBlockTag:
		var lines []json.RawMessage
		if err := json.Unmarshal(e.C, &lines); err != nil {
			return nil, fmt.Errorf("pandoc json: LineBlock: %w", err)
		}
		b := &LineBlock{Inlines: make([][]Inline, len(lines))}
		for i, line := range lines {
			inlines, err := decodeInlines(line)
			if err != nil {
				return nil, err
			}
			b.Inlines[i] = inlines
		}
		return b, nil
	case CodeBlockTag:
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		var text string
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, fmt.Errorf("pandoc json: CodeBlock text: %w", err)
		}
		return &CodeBlock{Attr: attr, Text: text}, nil
	case RawBlockTag:
		format, text, err := decodeRaw(e.C, e.T)
		if err != nil {
			return nil, err
		}
		return &RawBlock{Format: format, Text: text}, nil
	case BlockQuoteTag:
		blocks, err := decodeBlocks(e.C)
		if err != nil {
			return nil, err
		}
		return &BlockQuote{Blocks: blocks}, nil
	case OrderedListTag:
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		attrs, err := decodeListAttrs(parts[0])
		if err != nil {
			return nil, err
		}
		items, err := decodeItems(parts[1])
		if err != nil {
			return nil, err
		}
		return &OrderedList{Attr: attrs, Items: items}, nil
	case BulletListTag:
		items, err := decodeItems(e.C)
		if err != nil {
			return nil, err
		}
		return &BulletList{Items: items}, nil
	case DefinitionListTag:
		var raw []json.RawMessage
		if err := json.Unmarshal(e.C, &raw); err != nil {
			return nil, fmt.Errorf("pandoc json: DefinitionList: %w", err)
		}
		d := &DefinitionList{Items: make([]Definition, len(raw))}
		for i, item := range raw {
			parts, err := tuple(item, 2, e.T)
			if err != nil {
				return nil, err
			}
			term, err := decodeInlines(parts[0])
			if err != nil {
				return nil, err
			}
			defs, err := decodeItems(parts[1])
			if err != nil {
				return nil, err
			}
			d.Items[i] = Definition{Term: term, Definition: defs}
		}
		return d, nil
	case HeaderTag:
		parts, err := tuple(e.C, 3, e.T)
		if err != nil {
			return nil, err
		}
		var level int
		if err := json.Unmarshal(parts[0], &level); err != nil {
			return nil, fmt.Errorf("pandoc json: Header level: %w", err)
		}
		attr, err := decodeAttr(parts[1])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlines(parts[2])
		if err != nil {
			return nil, err
		}
		return &Header{Attr: attr, Level: level, Inlines: inlines}, nil
	case HorizontalRuleTag:
		return HR, nil
	case TableTag:
		return decodeTable(e.C)
	case FigureTag:
		parts, err := tuple(e.C, 3, e.T)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		caption, err := decodeCaption(parts[1])
		if err != nil {
			return nil, err
		}
		blocks, err := decodeBlocks(parts[2])
		if err != nil {
			return nil, err
		}
		return &Figure{Attr: attr, Caption: caption, Blocks: blocks}, nil
	case DivTag:
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		blocks, err := decodeBlocks(parts[1])
		if err != nil {
			return nil, err
		}
		return &Div{Attr: attr, Blocks: blocks}, nil
	default:
		return nil, fmt.Errorf("pandoc json: unknown block type %q", e.T)
	}
}

func decodeInline(raw json.RawMessage) (Inline, error) {
	var e tagged
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("pandoc json: inline: %w", err)
	}
	switch e.T {
	case StrTag:
		var text string
		if err := json.Unmarshal(e.C, &text); err != nil {
			return nil, fmt.Errorf("pandoc json: Str: %w", err)
		}
		return &Str{Text: text}, nil
	case EmphTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &Emph{Inlines: inlines}, nil
	case UnderlineTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &Underline{Inlines: inlines}, nil
	case StrongTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &Strong{Inlines: inlines}, nil
	case StrikeoutTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &Strikeout{Inlines: inlines}, nil
	case SuperscriptTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &Superscript{Inlines: inlines}, nil
	case SubscriptTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &Subscript{Inlines: inlines}, nil
	case SmallCapsTag:
		inlines, err := decodeInlines(e.C)
		if err != nil {
			return nil, err
		}
		return &SmallCaps{Inlines: inlines}, nil
	case QuotedTag:
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		qt, err := decodeEnum(parts[0])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlines(parts[1])
		if err != nil {
			return nil, err
		}
		return &Quoted{QuoteType: QuoteType(qt), Inlines: inlines}, nil
	case CiteTag:
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		citations, err := decodeCitations(parts[0])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlines(parts[1])
		if err != nil {
			return nil, err
		}
		return &Cite{Citations: citations, Inlines: inlines}, nil
	case CodeTag:
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		var text string
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, fmt.Errorf("pandoc json: Code text: %w", err)
		}
		return &Code{Attr: attr, Text: text}, nil
	case SpaceTag:
		return SP, nil
	case SoftBreakTag:
		return SB, nil
	case LineBreakTag:
		return LB, nil
	case MathTag:
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		mt, err := decodeEnum(parts[0])
		if err != nil {
			return nil, err
		}
		var text string
		if err := json.Unmarshal(parts[1], &text); err != nil {
			return nil, fmt.Errorf("pandoc json: Math text: %w", err)
		}
		return &Math{MathType: MathType(mt), Text: text}, nil
	case RawInlineTag:
		format, text, err := decodeRaw(e.C, e.T)
		if err != nil {
			return nil, err
		}
		return &RawInline{Format: format, Text: text}, nil
	case LinkTag:
		attr, inlines, target, err := decodeLinkish(e.C, e.T)
		if err != nil {
			return nil, err
		}
		return &Link{Attr: attr, Inlines: inlines, Target: target}, nil
	case ImageTag:
		attr, inlines, target, err := decodeLinkish(e.C, e.T)
		if err != nil {
			return nil, err
		}
		return &Image{Attr: attr, Inlines: inlines, Target: target}, nil
	case NoteTag:
		blocks, err := decodeBlocks(e.C)
		if err != nil {
			return nil, err
		}
		return &Note{Blocks: blocks}, nil
	case SpanTag:
		parts, err := tuple(e.C, 2, e.T)
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		inlines, err := decodeInlines(parts[1])
		if err != nil {
			return nil, err
		}
		return &Span{Attr: attr, Inlines: inlines}, nil
	default:
		return nil, fmt.Errorf("pandoc json: unknown inline type %q", e.T)
	}
}

func decodeRaw(raw json.RawMessage, what Tag) (format, text string, err error) {
	parts, err := tuple(raw, 2, what)
	if err != nil {
		return "", "", err
	}
	if err := json.Unmarshal(parts[0], &format); err != nil {
		return "", "", fmt.Errorf("pandoc json: %s format: %w", what, err)
	}
	if err := json.Unmarshal(parts[1], &text); err != nil {
		return "", "", fmt.Errorf("pandoc json: %s text: %w", what, err)
	}
	return format, text, nil
}

func decodeLinkish(raw json.RawMessage, what Tag) (Attr, []Inline, Target, error) {
	parts, err := tuple(raw, 3, what)
	if err != nil {
		return Attr{}, nil, Target{}, err
	}
	attr, err := decodeAttr(parts[0])
	if err != nil {
		return Attr{}, nil, Target{}, err
	}
	inlines, err := decodeInlines(parts[1])
	if err != nil {
		return Attr{}, nil, Target{}, err
	}
	var target [2]string
	if err := json.Unmarshal(parts[2], &target); err != nil {
		return Attr{}, nil, Target{}, fmt.Errorf("pandoc json: %s target: %w", what, err)
	}
	return attr, inlines, Target{Url: target[0], Title: target[1]}, nil
}

func decodeAttr(raw json.RawMessage) (Attr, error) {
	parts, err := tuple(raw, 3, "Attr")
	if err != nil {
		return Attr{}, err
	}
	var attr Attr
	if err := json.Unmarshal(parts[0], &attr.Id); err != nil {
		return Attr{}, fmt.Errorf("pandoc json: attr id: %w", err)
	}
	if err := json.Unmarshal(parts[1], &attr.Classes); err != nil {
		return Attr{}, fmt.Errorf("pandoc json: attr classes: %w", err)
	}
	var kvs [][2]string
	if err := json.Unmarshal(parts[2], &kvs); err != nil {
		return Attr{}, fmt.Errorf("pandoc json: attr key-values: %w", err)
	}
	for _, kv := range kvs {
		attr.KVs = append(attr.KVs, KV{Key: kv[0], Value: kv[1]})
	}
	return attr, nil
}

// decodeEnum reads a bare tagged constant like {"t":"SingleQuote"}.
func decodeEnum(raw json.RawMessage) (Tag, error) {
	var e tagged
	if err := json.Unmarshal(raw, &e); err != nil {
		return "", fmt.Errorf("pandoc json: enum: %w", err)
	}
	return e.T, nil
}

func decodeListAttrs(raw json.RawMessage) (ListAttrs, error) {
	parts, err := tuple(raw, 3, "ListAttributes")
	if err != nil {
		return ListAttrs{}, err
	}
	var attrs ListAttrs
	if err := json.Unmarshal(parts[0], &attrs.Start); err != nil {
		return ListAttrs{}, fmt.Errorf("pandoc json: list start: %w", err)
	}
	style, err := decodeEnum(parts[1])
	if err != nil {
		return ListAttrs{}, err
	}
	delim, err := decodeEnum(parts[2])
	if err != nil {
		return ListAttrs{}, err
	}
	attrs.Style = ListNumberStyle(style)
	attrs.Delimiter = ListNumberDelim(delim)
	return attrs, nil
}

func decodeItems(raw json.RawMessage) ([][]Block, error) {
	var rawItems []json.RawMessage
	if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil, fmt.Errorf("pandoc json: list items: %w", err)
	}
	items := make([][]Block, len(rawItems))
	for i, item := range rawItems {
		blocks, err := decodeBlocks(item)
		if err != nil {
			return nil, err
		}
		items[i] = blocks
	}
	return items, nil
}

func decodeCitations(raw json.RawMessage) ([]*Citation, error) {
	var rawCites []struct {
		Id      string          `json:"citationId"`
		Prefix  json.RawMessage `json:"citationPrefix"`
		Suffix  json.RawMessage `json:"citationSuffix"`
		Mode    tagged          `json:"citationMode"`
		NoteNum int             `json:"citationNoteNum"`
		Hash    int             `json:"citationHash"`
	}
	if err := json.Unmarshal(raw, &rawCites); err != nil {
		return nil, fmt.Errorf("pandoc json: citations: %w", err)
	}
	citations := make([]*Citation, len(rawCites))
	for i, rc := range rawCites {
		prefix, err := decodeInlines(rc.Prefix)
		if err != nil {
			return nil, err
		}
		suffix, err := decodeInlines(rc.Suffix)
		if err != nil {
			return nil, err
		}
		citations[i] = &Citation{
			Id:      rc.Id,
			Prefix:  prefix,
			Suffix:  suffix,
			Mode:    CitationMode(rc.Mode.T),
			NoteNum: rc.NoteNum,
			Hash:    rc.Hash,
		}
	}
	return citations, nil
}

func decodeCaption(raw json.RawMessage) (Caption, error) {
	parts, err := tuple(raw, 2, "Caption")
	if err != nil {
		return Caption{}, err
	}
	var caption Caption
	if string(parts[0]) != "null" {
		short, err := decodeInlines(parts[0])
		if err != nil {
			return Caption{}, err
		}
		caption.Short = short
	}
	long, err := decodeBlocks(parts[1])
	if err != nil {
		return Caption{}, err
	}
	caption.Long = long
	return caption, nil
}

func decodeColSpecs(raw json.RawMessage) ([]ColSpec, error) {
	var rawSpecs []json.RawMessage
	if err := json.Unmarshal(raw, &rawSpecs); err != nil {
		return nil, fmt.Errorf("pandoc json: colspecs: %w", err)
	}
	specs := make([]ColSpec, len(rawSpecs))
	for i, rs := range rawSpecs {
		parts, err := tuple(rs, 2, "ColSpec")
		if err != nil {
			return nil, err
		}
		align, err := decodeEnum(parts[0])
		if err != nil {
			return nil, err
		}
		var width tagged
		if err := json.Unmarshal(parts[1], &width); err != nil {
			return nil, fmt.Errorf("pandoc json: colwidth: %w", err)
		}
		specs[i].Align = Alignment(align)
		if width.T == "ColWidthDefault" {
			specs[i].Width = DefaultColWidth()
		} else if err := json.Unmarshal(width.C, &specs[i].Width.Width); err != nil {
			return nil, fmt.Errorf("pandoc json: colwidth: %w", err)
		}
	}
	return specs, nil
}

func decodeRows(raw json.RawMessage) ([]*TableRow, error) {
	var rawRows []json.RawMessage
	if err := json.Unmarshal(raw, &rawRows); err != nil {
		return nil, fmt.Errorf("pandoc json: rows: %w", err)
	}
	rows := make([]*TableRow, len(rawRows))
	for i, rr := range rawRows {
		parts, err := tuple(rr, 2, "Row")
		if err != nil {
			return nil, err
		}
		attr, err := decodeAttr(parts[0])
		if err != nil {
			return nil, err
		}
		var rawCells []json.RawMessage
		if err := json.Unmarshal(parts[1], &rawCells); err != nil {
			return nil, fmt.Errorf("pandoc json: cells: %w", err)
		}
		row := &TableRow{Attr: attr, Cells: make([]*TableCell, len(rawCells))}
		for j, rc := range rawCells {
			cell, err := decodeCell(rc)
			if err != nil {
				return nil, err
			}
			row.Cells[j] = cell
		}
		rows[i] = row
	}
	return rows, nil
}

func decodeCell(raw json.RawMessage) (*TableCell, error) {
	parts, err := tuple(raw, 5, "Cell")
	if err != nil {
		return nil, err
	}
	attr, err := decodeAttr(parts[0])
	if err != nil {
		return nil, err
	}
	align, err := decodeEnum(parts[1])
	if err != nil {
		return nil, err
	}
	cell := &TableCell{Attr: attr, Align: Alignment(align)}
	if err := json.Unmarshal(parts[2], &cell.RowSpan); err != nil {
		return nil, fmt.Errorf("pandoc json: cell rowspan: %w", err)
	}
	if err := json.Unmarshal(parts[3], &cell.ColSpan); err != nil {
		return nil, fmt.Errorf("pandoc json: cell colspan: %w", err)
	}
	blocks, err := decodeBlocks(parts[4])
	if err != nil {
		return nil, err
	}
	cell.Blocks = blocks
	return cell, nil
}

func decodeHeadFoot(raw json.RawMessage, what Tag) (TableHeadFoot, error) {
	parts, err := tuple(raw, 2, what)
	if err != nil {
		return TableHeadFoot{}, err
	}
	attr, err := decodeAttr(parts[0])
	if err != nil {
		return TableHeadFoot{}, err
	}
	rows, err := decodeRows(parts[1])
	if err != nil {
		return TableHeadFoot{}, err
	}
	return TableHeadFoot{Attr: attr, Rows: rows}, nil
}

func decodeTable(raw json.RawMessage) (*Table, error) {
	parts, err := tuple(raw, 6, TableTag)
	if err != nil {
		return nil, err
	}
	attr, err := decodeAttr(parts[0])
	if err != nil {
		return nil, err
	}
	caption, err := decodeCaption(parts[1])
	if err != nil {
		return nil, err
	}
	aligns, err := decodeColSpecs(parts[2])
	if err != nil {
		return nil, err
	}
	head, err := decodeHeadFoot(parts[3], "TableHead")
	if err != nil {
		return nil, err
	}
	var rawBodies []json.RawMessage
	if err := json.Unmarshal(parts[4], &rawBodies); err != nil {
		return nil, fmt.Errorf("pandoc json: table bodies: %w", err)
	}
	bodies := make([]*TableBody, len(rawBodies))
	for i, rb := range rawBodies {
		bparts, err := tuple(rb, 4, "TableBody")
		if err != nil {
			return nil, err
		}
		battr, err := decodeAttr(bparts[0])
		if err != nil {
			return nil, err
		}
		body := &TableBody{Attr: battr}
		if err := json.Unmarshal(bparts[1], &body.RowHeadColumns); err != nil {
			return nil, fmt.Errorf("pandoc json: table body: %w", err)
		}
		if body.Head, err = decodeRows(bparts[2]); err != nil {
			return nil, err
		}
		if body.Body, err = decodeRows(bparts[3]); err != nil {
			return nil, err
		}
		bodies[i] = body
	}
	foot, err := decodeHeadFoot(parts[5], "TableFoot")
	if err != nil {
		return nil, err
	}
	return &Table{
		Attr:    attr,
		Caption: caption,
		Aligns:  aligns,
		Head:    head,
		Bodies:  bodies,
		Foot:    foot,
	}, nil
}
