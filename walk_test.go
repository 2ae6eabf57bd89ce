package pandochtml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	pandoc "github.com/growler/go-pandoc-html"
	. "github.com/growler/go-pandoc-html/dot"
)

func testTable() *pandoc.Table {
	cell := func(s string) *pandoc.TableCell {
		return &pandoc.TableCell{Blocks: Blocks(Plain(Str(s)))}
	}
	return &pandoc.Table{
		Head: pandoc.TableHeadFoot{Rows: []*pandoc.TableRow{
			{Cells: []*pandoc.TableCell{cell("TableHead")}},
		}},
		Bodies: []*pandoc.TableBody{{
			Head: []*pandoc.TableRow{{Cells: []*pandoc.TableCell{cell("BodyHead")}}},
			Body: []*pandoc.TableRow{{Cells: []*pandoc.TableCell{cell("BodyBody")}}},
		}},
		Foot: pandoc.TableHeadFoot{Rows: []*pandoc.TableRow{
			{Cells: []*pandoc.TableCell{cell("TableFoot")}},
		}},
	}
}

func TestQueryTableOrder(t *testing.T) {
	var items []string
	pandoc.Query(Doc(testTable()), func(e pandoc.Element) pandoc.WalkResult {
		if s, ok := e.(*pandoc.Str); ok {
			items = append(items, s.Text)
		}
		return pandoc.WalkContinue
	})
	require.Equal(t, "TableHead,BodyHead,BodyBody,TableFoot", strings.Join(items, ","))
}

func TestQueryDescendsIntoNotes(t *testing.T) {
	doc := Doc(Para(Note(Para(Str("inside")))))
	var found bool
	pandoc.Query(doc, func(e pandoc.Element) pandoc.WalkResult {
		if s, ok := e.(*pandoc.Str); ok && s.Text == "inside" {
			found = true
		}
		return pandoc.WalkContinue
	})
	require.True(t, found)
}

func TestQuerySkip(t *testing.T) {
	doc := Doc(
		Para(Note(Para(Str("skipped")))),
		Para(Str("kept")),
	)
	var items []string
	pandoc.Query(doc, func(e pandoc.Element) pandoc.WalkResult {
		switch e := e.(type) {
		case *pandoc.Note:
			return pandoc.WalkSkip
		case *pandoc.Str:
			items = append(items, e.Text)
		}
		return pandoc.WalkContinue
	})
	require.Equal(t, []string{"kept"}, items)
}

func TestQueryStop(t *testing.T) {
	doc := Doc(Para(Str("a"), Str("b"), Str("c")))
	var count int
	pandoc.Query(doc, func(e pandoc.Element) pandoc.WalkResult {
		if _, ok := e.(*pandoc.Str); ok {
			count++
			if count == 2 {
				return pandoc.WalkStop
			}
		}
		return pandoc.WalkContinue
	})
	require.Equal(t, 2, count)
}

func TestStringify(t *testing.T) {
	inlines := Inlines(
		Str("a"), Space(), Emph(Str("b")),
		Note(Para(Str("dropped"))),
		LineBreak(), Code(NoAttr, "x+y"),
	)
	require.Equal(t, "a b\nx+y", pandoc.Stringify(inlines))
}
