package pandochtml_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	pandoc "github.com/growler/go-pandoc-html"
	. "github.com/growler/go-pandoc-html/dot"
)

func fromMarkdown(t *testing.T, src string) []pandoc.Block {
	t.Helper()
	doc, err := pandoc.FromMarkdown([]byte(src))
	require.NoError(t, err)
	return doc.Blocks
}

func requireBlocks(t *testing.T, want, got []pandoc.Block) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("converted blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMarkdownHeadingAndParagraph(t *testing.T) {
	got := fromMarkdown(t, "# Hi\n\nplain *em* **strong** `code`\n")
	requireBlocks(t, Blocks(
		Header(1, NoAttr, Str("Hi")),
		Para(
			Str("plain"), Space(),
			Emph(Str("em")), Space(),
			Strong(Str("strong")), Space(),
			Code(NoAttr, "code"),
		),
	), got)
}

func TestFromMarkdownLists(t *testing.T) {
	got := fromMarkdown(t, "- a\n- b\n\n3) x\n")
	requireBlocks(t, Blocks(
		BulletList(
			Blocks(Plain(Str("a"))),
			Blocks(Plain(Str("b"))),
		),
		OrderedList(
			pandoc.ListAttrs{Start: 3, Style: pandoc.Decimal, Delimiter: pandoc.OneParen},
			Blocks(Plain(Str("x"))),
		),
	), got)
}

func TestFromMarkdownAutolink(t *testing.T) {
	got := fromMarkdown(t, "<https://x.y/>\n")
	requireBlocks(t, Blocks(
		Para(Link(Attr("", "uri"), "https://x.y/", "", Str("https://x.y/"))),
	), got)
}

func TestFromMarkdownBlockquoteAndCode(t *testing.T) {
	got := fromMarkdown(t, "> quoted\n\n```go\nx := 1\ny := 2\n```\n")
	requireBlocks(t, Blocks(
		BlockQuote(Para(Str("quoted"))),
		CodeBlock(Attr("", "go"), "x := 1\ny := 2\n"),
	), got)
}

func TestFromMarkdownRawHTML(t *testing.T) {
	got := fromMarkdown(t, "a <b>x</b> c\n\n<div>\nhi\n</div>\n")
	requireBlocks(t, Blocks(
		Para(
			Str("a"), Space(),
			RawInline("html", "<b>"), Str("x"), RawInline("html", "</b>"),
			Space(), Str("c"),
		),
		RawBlock("html", "<div>\nhi\n</div>\n"),
	), got)
}

func TestFromMarkdownSoftBreak(t *testing.T) {
	got := fromMarkdown(t, "one\ntwo\n")
	requireBlocks(t, Blocks(
		Para(Str("one"), SoftBreak(), Str("two")),
	), got)
}

func TestFromMarkdownRenders(t *testing.T) {
	doc, err := pandoc.FromMarkdown([]byte("# Hi\n"))
	require.NoError(t, err)
	out := pandoc.RenderHTML(pandoc.Config[pandoc.HTML]{}, doc)
	require.Equal(t, pandoc.HTML("<h1>Hi</h1>"), out)
}
