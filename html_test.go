package pandochtml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	pandoc "github.com/growler/go-pandoc-html"
)

func TestHTMLBackendTextEscaping(t *testing.T) {
	var be pandoc.HTMLBackend
	require.Equal(t, pandoc.HTML("a&lt;b&gt;&amp;&quot;c&quot;"), be.Text(`a<b>&"c"`))
}

func TestHTMLBackendAttrEscaping(t *testing.T) {
	var be pandoc.HTMLBackend
	got := be.Element("a", []pandoc.KV{{Key: "href", Value: `x?a=1&b="2"`}}, be.Text("t"))
	require.Equal(t, pandoc.HTML(`<a href="x?a=1&amp;b=&quot;2&quot;">t</a>`), got)
}

func TestHTMLBackendVoid(t *testing.T) {
	var be pandoc.HTMLBackend
	require.Equal(t, pandoc.HTML("<br>"), be.Void("br", nil))
	require.Equal(t, pandoc.HTML(`<img src="x.png">`),
		be.Void("img", []pandoc.KV{{Key: "src", Value: "x.png"}}))
}

func TestHTMLBackendCombine(t *testing.T) {
	var be pandoc.HTMLBackend
	require.Equal(t, be.Empty(), be.Combine())
	require.Equal(t, pandoc.HTML("a"), be.Combine("a"))
	require.Equal(t, pandoc.HTML("abc"), be.Combine("a", "b", "c"))
	require.Equal(t, pandoc.HTML("x"), be.Combine(be.Empty(), "x", be.Empty()))
}

func TestHTMLBackendUnsafe(t *testing.T) {
	var be pandoc.HTMLBackend
	require.Equal(t, pandoc.HTML("<b>raw</b>"), be.Unsafe("<b>raw</b>"))
}
