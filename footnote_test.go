package pandochtml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	pandoc "github.com/growler/go-pandoc-html"
	. "github.com/growler/go-pandoc-html/dot"
)

func TestCollectFootnotesEmpty(t *testing.T) {
	notes := pandoc.CollectFootnotes(Doc(Para(Str("a"))))
	require.Equal(t, 0, notes.Len())
	_, ok := notes.Lookup(Blocks(Para(Str("a"))))
	require.False(t, ok)
}

func TestCollectFootnotesZeroValue(t *testing.T) {
	var notes pandoc.Footnotes
	require.Equal(t, 0, notes.Len())
	_, ok := notes.Lookup(Blocks(Para(Str("x"))))
	require.False(t, ok)
}

func TestCollectFootnotesDedupAndOrder(t *testing.T) {
	a := Blocks(Para(Str("a")))
	b := Blocks(Para(Str("b")))
	doc := Doc(
		Para(Note(a...)),
		Para(Note(b...), Note(a...)),
	)
	notes := pandoc.CollectFootnotes(doc)
	require.Equal(t, 2, notes.Len())

	na, ok := notes.Lookup(a)
	require.True(t, ok)
	require.Equal(t, 1, na)

	nb, ok := notes.Lookup(b)
	require.True(t, ok)
	require.Equal(t, 2, nb)

	require.Equal(t, a, notes.Body(1))
	require.Equal(t, b, notes.Body(2))
}

func TestCollectFootnotesStructuralEquality(t *testing.T) {
	// Two independently built but byte-for-byte equal bodies are the
	// same footnote; a body that differs only in attributes is not.
	doc := Doc(
		Para(Note(Para(Str("x"), Space(), Emph(Str("y"))))),
		Para(Note(Para(Str("x"), Space(), Emph(Str("y"))))),
		Para(Note(Para(Str("x"), Space(), Strong(Str("y"))))),
	)
	notes := pandoc.CollectFootnotes(doc)
	require.Equal(t, 2, notes.Len())
}

func TestCollectFootnotesNested(t *testing.T) {
	inner := Blocks(Para(Str("inner")))
	outer := Blocks(Para(Str("outer"), Note(inner...)))
	notes := pandoc.CollectFootnotes(Doc(Para(Note(outer...))))

	// Nested notes are collected as if top-level, outer first.
	require.Equal(t, 2, notes.Len())
	no, _ := notes.Lookup(outer)
	ni, _ := notes.Lookup(inner)
	require.Equal(t, 1, no)
	require.Equal(t, 2, ni)
}

func TestCollectFootnotesEverywhere(t *testing.T) {
	// Notes hiding in list items, table cells and block quotes are all
	// found by the collection pass.
	doc := Doc(
		BulletList(Blocks(Plain(Note(Para(Str("in-list")))))),
		BlockQuote(Para(Note(Para(Str("in-quote"))))),
		&pandoc.Table{
			Bodies: []*pandoc.TableBody{{
				Body: []*pandoc.TableRow{{
					Cells: []*pandoc.TableCell{{
						Blocks: Blocks(Plain(Note(Para(Str("in-cell"))))),
					}},
				}},
			}},
		},
	)
	notes := pandoc.CollectFootnotes(doc)
	require.Equal(t, 3, notes.Len())
	n, ok := notes.Lookup(Blocks(Para(Str("in-cell"))))
	require.True(t, ok)
	require.Equal(t, 3, n)
}
