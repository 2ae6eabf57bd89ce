package pandochtml

// RawContent is a raw node handed to the Raw hook: verbatim text in some
// target format, either block- or inline-level.
type RawContent struct {
	Block  bool // true for RawBlock, false for RawInline
	Format string
	Text   string
}

// Config customizes rendering at the three extension points. Nil fields
// use the defaults. The zero Config renders plain HTML-shaped output with
// raw content dropped.
type Config[O any] struct {
	// Link decides how a hyperlink is rendered. defaultRender produces
	// the standard anchor and may be called, wrapped or ignored. inner is
	// the link's visible inline content, or nil when the link is an
	// autolink (visible content is a single string equal to the URL).
	Link func(defaultRender func() O, url string, attr Attr, title string, inner []Inline) O

	// Code decides how a code block is rendered; the seam for syntax
	// highlighting. defaultRender produces a plain-text code block.
	Code func(defaultRender func() O, attr Attr, code string) O

	// Raw renders raw block or inline content. The default drops it:
	// raw text is never emitted unescaped unless a hook opts in.
	Raw func(raw RawContent) O
}
