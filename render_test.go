package pandochtml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	pandoc "github.com/growler/go-pandoc-html"
	. "github.com/growler/go-pandoc-html/dot"
)

func renderHTML(t *testing.T, cfg pandoc.Config[pandoc.HTML], doc *pandoc.Document) string {
	t.Helper()
	return pandoc.RenderHTML(cfg, doc).String()
}

func TestRenderBasicBlocks(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  *pandoc.Document
		want string
	}{
		{
			"paragraph",
			Doc(Para(Str("a"), Space(), Emph(Str("b")))),
			"<p>a <em>b</em></p>",
		},
		{
			"plain",
			Doc(Plain(Str("bare"))),
			"bare",
		},
		{
			"header with attributes",
			Doc(Header(2, Attr("intro", "wide"), Str("Hi"))),
			`<h2 id="intro" class="wide">Hi</h2>`,
		},
		{
			"header level clamped",
			Doc(Header(9, NoAttr, Str("deep"))),
			"<h6>deep</h6>",
		},
		{
			"block quote",
			Doc(BlockQuote(Para(Str("q")))),
			"<blockquote><p>q</p></blockquote>",
		},
		{
			"horizontal rule",
			Doc(HorizontalRule()),
			"<hr>",
		},
		{
			"line block",
			Doc(LineBlock(Inlines(Str("one")), Inlines(Str("two")))),
			`<div class="line-block">one<br>two</div>`,
		},
		{
			"bullet list",
			Doc(BulletList(Blocks(Plain(Str("a"))), Blocks(Plain(Str("b"))))),
			"<ul><li>a</li><li>b</li></ul>",
		},
		{
			"definition list",
			Doc(DefinitionList(Definition(Inlines(Str("term")), Blocks(Plain(Str("def")))))),
			"<dl><dt>term</dt><dd>def</dd></dl>",
		},
		{
			"div",
			Doc(Div(Attr("", "note"), Para(Str("x")))),
			`<div class="note"><p>x</p></div>`,
		},
		{
			"figure without caption",
			Doc(Figure(Attr("fig1"), Plain(Image(NoAttr, "i.png", "", Str("alt"), Space(), Str("text"))))),
			`<figure id="fig1"><img src="i.png" alt="alt text"></figure>`,
		},
		{
			"code block default",
			Doc(CodeBlock(Attr("", "go"), `fmt.Println("hi")`)),
			`<pre class="go"><code>fmt.Println(&quot;hi&quot;)</code></pre>`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, renderHTML(t, pandoc.Config[pandoc.HTML]{}, tc.doc))
		})
	}
}

func TestRenderBasicInlines(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  *pandoc.Document
		want string
	}{
		{
			"styled text",
			Doc(Plain(
				Strong(Str("s")), Underline(Str("u")), Strikeout(Str("d")),
				Superscript(Str("hi")), Subscript(Str("lo")), SmallCaps(Str("sc")),
			)),
			`<strong>s</strong><u>u</u><del>d</del><sup>hi</sup><sub>lo</sub><span class="smallcaps">sc</span>`,
		},
		{
			"quoted single",
			Doc(Plain(Quoted(SingleQuote, Str("a")))),
			"‘a’",
		},
		{
			"quoted double",
			Doc(Plain(Quoted(DoubleQuote, Str("a")))),
			"“a”",
		},
		{
			"inline code escapes",
			Doc(Plain(Code(NoAttr, "x < y"))),
			"<code>x &lt; y</code>",
		},
		{
			"math inline",
			Doc(Plain(Math(InlineMath, "E=mc^2"))),
			`<span class="math inline">\(E=mc^2\)</span>`,
		},
		{
			"math display",
			Doc(Plain(Math(DisplayMath, "x_1"))),
			`<span class="math display">$$x_1$$</span>`,
		},
		{
			"line break",
			Doc(Plain(Str("a"), LineBreak(), Str("b"))),
			"a<br>b",
		},
		{
			"span with attributes",
			Doc(Plain(Span(AttrKVs("", KVs("lang", "de")), Str("Wort")))),
			`<span lang="de">Wort</span>`,
		},
		{
			"text escaped",
			Doc(Plain(Str(`<&">`))),
			"&lt;&amp;&quot;&gt;",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, renderHTML(t, pandoc.Config[pandoc.HTML]{}, tc.doc))
		})
	}
}

func TestRenderDeterminism(t *testing.T) {
	doc := Doc(
		Header(1, Attr("h"), Str("T")),
		Para(Str("a"), Note(Para(Str("n1"))), Note(Para(Str("n2")))),
		BulletList(Blocks(Plain(Str("x")))),
	)
	first := renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc)
	second := renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc)
	require.Equal(t, first, second)
}

func TestRenderFootnoteDedup(t *testing.T) {
	doc := Doc(Para(
		Str("a"),
		Note(Para(Str("x"))),
		Note(Para(Str("x"))),
	))
	got := renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc)
	want := `<p>a` +
		`<sup class="footnote-ref" id="fnref:1"><a href="#fn:1">1</a></sup>` +
		`<sup class="footnote-ref" id="fnref:1"><a href="#fn:1">1</a></sup>` +
		`</p>` +
		`<ol class="footnotes"><li id="fn:1"><p>x</p> ` +
		`<a class="footnote-return" href="#fnref:1">↩</a></li></ol>`
	require.Equal(t, want, got)
}

func TestRenderFootnoteOrdering(t *testing.T) {
	doc := Doc(
		Para(Note(Para(Str("first")))),
		Para(Note(Para(Str("second"))), Note(Para(Str("first")))),
	)
	got := renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc)
	require.Contains(t, got, `<li id="fn:1"><p>first</p>`)
	require.Contains(t, got, `<li id="fn:2"><p>second</p>`)
	require.NotContains(t, got, `fn:3`)
}

func TestRenderNestedFootnoteFallback(t *testing.T) {
	inner := Note(Para(Str("y")))
	doc := Doc(Para(Str("ref"), Note(Para(Str("outer"), inner))))
	got := renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc)

	// The outer note resolves to a numbered reference; the inner one
	// renders inline inside the footnote section, with no number.
	require.Contains(t, got, `<sup class="footnote-ref" id="fnref:1">`)
	require.Contains(t, got, `<aside class="footnote-nested"><p>y</p></aside>`)
	require.NotContains(t, got, `id="fnref:2"`)
}

func TestRenderNoFootnotesNoSection(t *testing.T) {
	got := renderHTML(t, pandoc.Config[pandoc.HTML]{}, Doc(Para(Str("a"))))
	require.Equal(t, "<p>a</p>", got)
}

func TestRenderAutolinkDetection(t *testing.T) {
	var captured [][]pandoc.Inline
	cfg := pandoc.Config[pandoc.HTML]{
		Link: func(def func() pandoc.HTML, url string, _ pandoc.Attr, _ string, inner []pandoc.Inline) pandoc.HTML {
			captured = append(captured, inner)
			return def()
		},
	}
	doc := Doc(Para(
		Link(NoAttr, "http://x", "", Str("http://x")),
		Space(),
		Link(NoAttr, "http://x", "", Str("click")),
	))
	got := renderHTML(t, cfg, doc)

	require.Len(t, captured, 2)
	require.Nil(t, captured[0])
	require.Equal(t, Inlines(Str("click")), captured[1])
	require.Equal(t, `<p><a href="http://x">http://x</a> <a href="http://x">click</a></p>`, got)
}

func TestRenderLinkTitleAndOverride(t *testing.T) {
	doc := Doc(Para(Link(NoAttr, "/a", "the title", Str("go"))))
	require.Equal(t,
		`<p><a href="/a" title="the title">go</a></p>`,
		renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc))

	cfg := pandoc.Config[pandoc.HTML]{
		Link: func(func() pandoc.HTML, string, pandoc.Attr, string, []pandoc.Inline) pandoc.HTML {
			return pandoc.HTML("<b>custom</b>")
		},
	}
	require.Equal(t, "<p><b>custom</b></p>", renderHTML(t, cfg, doc))
}

func TestRenderOrderedListStart(t *testing.T) {
	one := Doc(OrderedList(pandoc.ListAttrs{Start: 1, Style: pandoc.Decimal, Delimiter: pandoc.Period},
		Blocks(Plain(Str("a")))))
	require.Equal(t, "<ol><li>a</li></ol>", renderHTML(t, pandoc.Config[pandoc.HTML]{}, one))

	five := Doc(OrderedList(pandoc.ListAttrs{Start: 5, Style: pandoc.Decimal, Delimiter: pandoc.Period},
		Blocks(Plain(Str("a")))))
	require.Equal(t, `<ol start="5"><li>a</li></ol>`, renderHTML(t, pandoc.Config[pandoc.HTML]{}, five))
}

func TestRenderOrderedListMarkerType(t *testing.T) {
	for style, hint := range map[pandoc.ListNumberStyle]string{
		pandoc.LowerRoman: "i",
		pandoc.UpperRoman: "I",
		pandoc.LowerAlpha: "a",
		pandoc.UpperAlpha: "A",
	} {
		doc := Doc(OrderedList(pandoc.ListAttrs{Start: 1, Style: style}, Blocks(Plain(Str("a")))))
		require.Equal(t, `<ol type="`+hint+`"><li>a</li></ol>`,
			renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc), "style %s", style)
	}
	plain := Doc(OrderedList(pandoc.ListAttrs{Start: 1, Style: pandoc.DefaultStyle}, Blocks(Plain(Str("a")))))
	require.Equal(t, "<ol><li>a</li></ol>", renderHTML(t, pandoc.Config[pandoc.HTML]{}, plain))
}

func TestRenderTableShape(t *testing.T) {
	cell := func(s string) *pandoc.TableCell {
		return &pandoc.TableCell{Blocks: Blocks(Plain(Str(s)))}
	}
	doc := Doc(&pandoc.Table{
		Head: pandoc.TableHeadFoot{Rows: []*pandoc.TableRow{
			{Cells: []*pandoc.TableCell{cell("h1"), cell("h2")}},
		}},
		Bodies: []*pandoc.TableBody{{
			Body: []*pandoc.TableRow{
				{Cells: []*pandoc.TableCell{cell("a1"), cell("a2")}},
				{Cells: []*pandoc.TableCell{cell("b1"), cell("b2")}},
			},
		}},
	})
	want := "<table>" +
		"<thead><tr><th>h1</th><th>h2</th></tr></thead>" +
		"<tbody><tr><td>a1</td><td>a2</td></tr><tr><td>b1</td><td>b2</td></tr></tbody>" +
		"</table>"
	require.Equal(t, want, renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc))
}

func TestRenderCiteFailSoft(t *testing.T) {
	doc := Doc(Para(Str("before"), Space(), Cite(), Space(), Str("after")))
	got := renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc)
	require.Contains(t, got, "before")
	require.Contains(t, got, "after")
	require.Contains(t, got, `<span class="unsupported">[Cite not supported]</span>`)
}

func TestRenderTaskList(t *testing.T) {
	doc := Doc(
		Plain(Str("☐"), Space(), Str("todo")),
		Para(Str("☑"), Space(), Str("done")),
		Para(Str("☒"), Space(), Str("also"), Space(), Str("done")),
		Para(Str("☐no-space")),
	)
	got := renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc)
	require.Contains(t, got, `<input type="checkbox" disabled=""> todo`)
	require.Contains(t, got, `<p><input type="checkbox" disabled="" checked=""> done</p>`)
	require.Contains(t, got, `checked=""> also done`)
	require.Contains(t, got, "<p>☐no-space</p>")
}

func TestRenderCodeHook(t *testing.T) {
	var gotAttr pandoc.Attr
	var gotCode string
	cfg := pandoc.Config[pandoc.HTML]{
		Code: func(def func() pandoc.HTML, attr pandoc.Attr, code string) pandoc.HTML {
			gotAttr, gotCode = attr, code
			return pandoc.HTMLBackend{}.Element("div", []pandoc.KV{{Key: "class", Value: "hl"}}, def())
		},
	}
	doc := Doc(CodeBlock(Attr("", "go"), "x := 1"))
	got := renderHTML(t, cfg, doc)
	require.Equal(t, "x := 1", gotCode)
	require.Equal(t, []string{"go"}, gotAttr.Classes)
	require.Equal(t, `<div class="hl"><pre class="go"><code>x := 1</code></pre></div>`, got)
}

func TestRenderRawDroppedByDefault(t *testing.T) {
	doc := Doc(
		RawBlock("html", "<script>evil()</script>"),
		Para(Str("a"), RawInline("html", "<b>raw</b>")),
	)
	require.Equal(t, "<p>a</p>", renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc))
}

func TestRenderRawHook(t *testing.T) {
	cfg := pandoc.Config[pandoc.HTML]{
		Raw: func(raw pandoc.RawContent) pandoc.HTML {
			if raw.Format == "html" {
				return pandoc.HTMLBackend{}.Unsafe(raw.Text)
			}
			return ""
		},
	}
	doc := Doc(
		RawBlock("html", "<hr class=\"x\">"),
		RawBlock("latex", "\\newpage"),
	)
	require.Equal(t, `<hr class="x">`, renderHTML(t, cfg, doc))
}

func TestRenderImageAltFlattening(t *testing.T) {
	doc := Doc(Plain(Image(NoAttr, "pic.png", "a pic",
		Emph(Str("styled")), Space(), Str("alt"))))
	require.Equal(t,
		`<img src="pic.png" alt="styled alt" title="a pic">`,
		renderHTML(t, pandoc.Config[pandoc.HTML]{}, doc))
}

func TestRenderBlocksWithExplicitContext(t *testing.T) {
	note := Note(Para(Str("n")))
	blocks := Blocks(Para(Str("a"), note))

	// Without a numbering every note falls back to inline display.
	got := pandoc.RenderBlocks[pandoc.HTML](pandoc.HTMLBackend{}, pandoc.Config[pandoc.HTML]{}, pandoc.Footnotes{}, blocks)
	require.Equal(t, `<p>a<aside class="footnote-nested"><p>n</p></aside></p>`, got.String())

	notes := pandoc.CollectFootnotes(Doc(blocks...))
	got = pandoc.RenderBlocks[pandoc.HTML](pandoc.HTMLBackend{}, pandoc.Config[pandoc.HTML]{}, notes, blocks)
	require.Contains(t, got.String(), `id="fnref:1"`)
}
