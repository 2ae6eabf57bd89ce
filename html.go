package pandochtml

import "strings"

// Backend materializes the output tree. O must behave like a monoid:
// Combine is associative and Empty is its identity. The renderer only
// decides which elements, attributes and text to produce; the backend
// decides what an element actually is.
type Backend[O any] interface {
	Empty() O
	Combine(parts ...O) O
	// Text produces escaped character data.
	Text(text string) O
	// Element produces a container element wrapping body.
	Element(name string, attrs []KV, body O) O
	// Void produces a childless element (br, hr, img, input).
	Void(name string, attrs []KV) O
}

// HTML is rendered markup. Values produced by [HTMLBackend] are properly
// escaped except where [HTMLBackend.Unsafe] was used explicitly.
type HTML string

func (h HTML) String() string { return string(h) }

// HTMLBackend materializes the output as an HTML string.
type HTMLBackend struct{}

var _ Backend[HTML] = HTMLBackend{}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func (HTMLBackend) Empty() HTML { return "" }

func (HTMLBackend) Combine(parts ...HTML) HTML {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(string(p))
	}
	return HTML(sb.String())
}

func (HTMLBackend) Text(text string) HTML {
	return HTML(htmlEscaper.Replace(text))
}

func (HTMLBackend) Element(name string, attrs []KV, body HTML) HTML {
	var sb strings.Builder
	openTag(&sb, name, attrs)
	sb.WriteString(string(body))
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
	return HTML(sb.String())
}

func (HTMLBackend) Void(name string, attrs []KV) HTML {
	var sb strings.Builder
	openTag(&sb, name, attrs)
	return HTML(sb.String())
}

// Unsafe wraps already-rendered markup without escaping. Intended for Raw
// hooks that deliberately pass trusted content through.
func (HTMLBackend) Unsafe(markup string) HTML { return HTML(markup) }

func openTag(sb *strings.Builder, name string, attrs []KV) {
	sb.WriteByte('<')
	sb.WriteString(name)
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		htmlEscaper.WriteString(sb, a.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
}

// RenderHTML renders a document to an HTML string.
func RenderHTML(cfg Config[HTML], doc *Document) HTML {
	return Render[HTML](HTMLBackend{}, cfg, doc)
}
