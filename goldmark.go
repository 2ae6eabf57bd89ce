package pandochtml

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown parses CommonMark source with goldmark and converts the
// resulting tree into a Document. It covers the constructs goldmark
// produces without extensions; text runs are split into Str/Space
// sequences to match pandoc's inline layout.
func FromMarkdown(source []byte) (*Document, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))
	blocks, err := convertBlocks(source, root)
	if err != nil {
		return nil, err
	}
	return &Document{APIVersion: apiVersion(), Blocks: blocks}, nil
}

func convertBlocks(src []byte, parent gmast.Node) ([]Block, error) {
	var blocks []Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		b, err := convertBlock(src, n)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func convertBlock(src []byte, n gmast.Node) (Block, error) {
	switch n := n.(type) {
	case *gmast.Paragraph:
		inlines, err := convertInlines(src, n)
		if err != nil {
			return nil, err
		}
		return &Para{Inlines: inlines}, nil
	case *gmast.TextBlock:
		inlines, err := convertInlines(src, n)
		if err != nil {
			return nil, err
		}
		return &Plain{Inlines: inlines}, nil
	case *gmast.Heading:
		inlines, err := convertInlines(src, n)
		if err != nil {
			return nil, err
		}
		return &Header{Level: n.Level, Inlines: inlines}, nil
	case *gmast.ThematicBreak:
		return HR, nil
	case *gmast.CodeBlock:
		return &CodeBlock{Text: linesText(src, n)}, nil
	case *gmast.FencedCodeBlock:
		var attr Attr
		if lang := n.Language(src); len(lang) > 0 {
			attr.Classes = []string{string(lang)}
		}
		return &CodeBlock{Attr: attr, Text: linesText(src, n)}, nil
	case *gmast.Blockquote:
		blocks, err := convertBlocks(src, n)
		if err != nil {
			return nil, err
		}
		return &BlockQuote{Blocks: blocks}, nil
	case *gmast.List:
		var items [][]Block
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			blocks, err := convertBlocks(src, item)
			if err != nil {
				return nil, err
			}
			items = append(items, blocks)
		}
		if !n.IsOrdered() {
			return &BulletList{Items: items}, nil
		}
		delim := Period
		if n.Marker == ')' {
			delim = OneParen
		}
		return &OrderedList{
			Attr:  ListAttrs{Start: n.Start, Style: Decimal, Delimiter: delim},
			Items: items,
		}, nil
	case *gmast.HTMLBlock:
		var sb strings.Builder
		sb.WriteString(linesText(src, n))
		if n.HasClosure() {
			sb.Write(n.ClosureLine.Value(src))
		}
		return &RawBlock{Format: "html", Text: sb.String()}, nil
	default:
		return nil, fmt.Errorf("markdown: unsupported block node %s", n.Kind())
	}
}

func convertInlines(src []byte, parent gmast.Node) ([]Inline, error) {
	var inlines []Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *gmast.Text:
			inlines = appendText(inlines, string(n.Segment.Value(src)))
			if n.HardLineBreak() {
				inlines = append(inlines, LB)
			} else if n.SoftLineBreak() {
				inlines = append(inlines, SB)
			}
		case *gmast.String:
			inlines = appendText(inlines, string(n.Value))
		case *gmast.CodeSpan:
			inlines = append(inlines, &Code{Text: childText(src, n)})
		case *gmast.Emphasis:
			inner, err := convertInlines(src, n)
			if err != nil {
				return nil, err
			}
			if n.Level >= 2 {
				inlines = append(inlines, &Strong{Inlines: inner})
			} else {
				inlines = append(inlines, &Emph{Inlines: inner})
			}
		case *gmast.Link:
			inner, err := convertInlines(src, n)
			if err != nil {
				return nil, err
			}
			inlines = append(inlines, &Link{
				Inlines: inner,
				Target:  Target{Url: string(n.Destination), Title: string(n.Title)},
			})
		case *gmast.AutoLink:
			label := string(n.Label(src))
			url := label
			attr := Attr{Classes: []string{"uri"}}
			if n.AutoLinkType == gmast.AutoLinkEmail {
				attr.Classes = []string{"email"}
				url = "mailto:" + label
			}
			inlines = append(inlines, &Link{
				Attr:    attr,
				Inlines: []Inline{&Str{Text: label}},
				Target:  Target{Url: url},
			})
		case *gmast.Image:
			alt, err := convertInlines(src, n)
			if err != nil {
				return nil, err
			}
			inlines = append(inlines, &Image{
				Inlines: alt,
				Target:  Target{Url: string(n.Destination), Title: string(n.Title)},
			})
		case *gmast.RawHTML:
			var sb strings.Builder
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				sb.Write(seg.Value(src))
			}
			inlines = append(inlines, &RawInline{Format: "html", Text: sb.String()})
		default:
			return nil, fmt.Errorf("markdown: unsupported inline node %s", n.Kind())
		}
	}
	return inlines, nil
}

// appendText splits a text run the way pandoc tokenizes it: words become
// Str nodes, whitespace runs collapse to a single Space.
func appendText(dst []Inline, s string) []Inline {
	for len(s) > 0 {
		i := strings.IndexAny(s, " \t")
		if i < 0 {
			return append(dst, &Str{Text: s})
		}
		if i > 0 {
			dst = append(dst, &Str{Text: s[:i]})
		}
		dst = append(dst, SP)
		s = strings.TrimLeft(s[i+1:], " \t")
	}
	return dst
}

func linesText(src []byte, n gmast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(src))
	}
	return sb.String()
}

func childText(src []byte, n gmast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			sb.Write(t.Segment.Value(src))
		}
	}
	return sb.String()
}
