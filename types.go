package pandochtml

// Pandoc AST element tag.
type Tag string

func (t Tag) String() string { return string(t) }

// Pandoc AST inline element.
type Inline interface {
	Tag() Tag
	inline()
}

// Pandoc AST block element.
type Block interface {
	Tag() Tag
	block()
}

// Pandoc elements attribute's key-value pair.
type KV struct {
	Key   string
	Value string
}

// Pandoc elements attribute.
type Attr struct {
	Id      string   // Element ID
	Classes []string // Element classes
	KVs     []KV     // Element attributes' key-value pairs
}

// Returns true if attribute has the given class.
func (a *Attr) HasClass(c string) bool {
	for _, cl := range a.Classes {
		if cl == c {
			return true
		}
	}
	return false
}

// Returns a value of the given key or false if the key is not present.
func (a *Attr) Get(key string) (string, bool) {
	for _, kv := range a.KVs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Returns true if the attribute carries no id, classes or key-value pairs.
func (a *Attr) IsEmpty() bool {
	return a.Id == "" && len(a.Classes) == 0 && len(a.KVs) == 0
}

// Link or image target.
type Target struct {
	Url   string
	Title string
}

// Text (string)
type Str struct {
	Text string
}

const StrTag = Tag("Str")

func (s *Str) Tag() Tag { return StrTag }
func (s *Str) inline()  {}

// Emphasized text (list of inlines)
type Emph struct {
	Inlines []Inline
}

const EmphTag = Tag("Emph")

func (e *Emph) Tag() Tag { return EmphTag }
func (e *Emph) inline()  {}

// Underlined text (list of inlines)
type Underline struct {
	Inlines []Inline
}

const UnderlineTag = Tag("Underline")

func (u *Underline) Tag() Tag { return UnderlineTag }
func (u *Underline) inline()  {}

// Strongly emphasized text (list of inlines)
type Strong struct {
	Inlines []Inline
}

const StrongTag = Tag("Strong")

func (s *Strong) Tag() Tag { return StrongTag }
func (s *Strong) inline()  {}

// Strikeout text (list of inlines)
type Strikeout struct {
	Inlines []Inline
}

const StrikeoutTag = Tag("Strikeout")

func (s *Strikeout) Tag() Tag { return StrikeoutTag }
func (s *Strikeout) inline()  {}

// Superscripted text (list of inlines)
type Superscript struct {
	Inlines []Inline
}

const SuperscriptTag = Tag("Superscript")

func (s *Superscript) Tag() Tag { return SuperscriptTag }
func (s *Superscript) inline()  {}

// Subscripted text (list of inlines)
type Subscript struct {
	Inlines []Inline
}

const SubscriptTag = Tag("Subscript")

func (s *Subscript) Tag() Tag { return SubscriptTag }
func (s *Subscript) inline()  {}

// Small capitals (list of inlines)
type SmallCaps struct {
	Inlines []Inline
}

const SmallCapsTag = Tag("SmallCaps")

func (s *SmallCaps) Tag() Tag { return SmallCapsTag }
func (s *SmallCaps) inline()  {}

type QuoteType Tag

const (
	SingleQuote QuoteType = "SingleQuote"
	DoubleQuote QuoteType = "DoubleQuote"
)

// Quoted text (list of inlines)
type Quoted struct {
	QuoteType QuoteType
	Inlines   []Inline
}

const QuotedTag = Tag("Quoted")

func (q *Quoted) Tag() Tag { return QuotedTag }
func (q *Quoted) inline()  {}

type CitationMode Tag

const (
	NormalCitation CitationMode = "NormalCitation"
	SuppressAuthor CitationMode = "SuppressAuthor"
	AuthorInText   CitationMode = "AuthorInText"
)

type Citation struct {
	Id      string
	Prefix  []Inline
	Suffix  []Inline
	Mode    CitationMode
	NoteNum int
	Hash    int
}

// Citation (list of inlines). The renderer does not support citation
// processing; Cite nodes render as an inline diagnostic.
type Cite struct {
	Citations []*Citation
	Inlines   []Inline
}

const CiteTag = Tag("Cite")

func (c *Cite) Tag() Tag { return CiteTag }
func (c *Cite) inline()  {}

// Inline code (literal)
type Code struct {
	Attr
	Text string
}

const CodeTag = Tag("Code")

func (c *Code) Tag() Tag { return CodeTag }
func (c *Code) inline()  {}

var SP = &Space{}

// Inter-word space
type Space struct{}

const SpaceTag = Tag("Space")

func (*Space) Tag() Tag { return SpaceTag }
func (*Space) inline()  {}

var SB = &SoftBreak{}

// Soft line break
type SoftBreak struct{}

const SoftBreakTag = Tag("SoftBreak")

func (*SoftBreak) Tag() Tag { return SoftBreakTag }
func (*SoftBreak) inline()  {}

var LB = &LineBreak{}

// Hard line break
type LineBreak struct{}

const LineBreakTag = Tag("LineBreak")

func (*LineBreak) Tag() Tag { return LineBreakTag }
func (*LineBreak) inline()  {}

type MathType Tag

const (
	DisplayMath MathType = "DisplayMath"
	InlineMath  MathType = "InlineMath"
)

// TeX math (literal)
type Math struct {
	MathType MathType
	Text     string
}

const MathTag = Tag("Math")

func (m *Math) Tag() Tag { return MathTag }
func (m *Math) inline()  {}

// Raw inline
type RawInline struct {
	Format string
	Text   string
}

const RawInlineTag = Tag("RawInline")

func (r *RawInline) Tag() Tag { return RawInlineTag }
func (r *RawInline) inline()  {}

// Hyperlink: alt text (list of inlines), target
type Link struct {
	Attr
	Inlines []Inline
	Target  Target
}

const LinkTag = Tag("Link")

func (l *Link) Tag() Tag { return LinkTag }
func (l *Link) inline()  {}

// Image: alt text (list of inlines), target
type Image struct {
	Attr
	Inlines []Inline
	Target  Target
}

const ImageTag = Tag("Image")

func (i *Image) Tag() Tag { return ImageTag }
func (i *Image) inline()  {}

// Footnote: list of blocks
type Note struct {
	Blocks []Block
}

const NoteTag = Tag("Note")

func (n *Note) Tag() Tag { return NoteTag }
func (n *Note) inline()  {}

// Generic inline container with attributes
type Span struct {
	Attr
	Inlines []Inline
}

const SpanTag = Tag("Span")

func (s *Span) Tag() Tag { return SpanTag }
func (s *Span) inline()  {}

// Plain text, not a paragraph
type Plain struct {
	Inlines []Inline
}

const PlainTag = Tag("Plain")

func (p *Plain) Tag() Tag { return PlainTag }
func (p *Plain) block()   {}

// Paragraph (list of inlines)
type Para struct {
	Inlines []Inline
}

const ParaTag = Tag("Para")

func (p *Para) Tag() Tag { return ParaTag }
func (p *Para) block()   {}

// Multiple non-breaking lines
type LineBlock struct {
	Inlines [][]Inline
}

const LineBlockTag = Tag("LineBlock")

func (b *LineBlock) Tag() Tag { return LineBlockTag }
func (b *LineBlock) block()   {}

// Code block (literal)
type CodeBlock struct {
	Attr
	Text string
}

const CodeBlockTag = Tag("CodeBlock")

func (b *CodeBlock) Tag() Tag { return CodeBlockTag }
func (b *CodeBlock) block()   {}

// Raw block
type RawBlock struct {
	Format string
	Text   string
}

const RawBlockTag = Tag("RawBlock")

func (b *RawBlock) Tag() Tag { return RawBlockTag }
func (b *RawBlock) block()   {}

// Block quote (list of blocks)
type BlockQuote struct {
	Blocks []Block
}

const BlockQuoteTag = Tag("BlockQuote")

func (b *BlockQuote) Tag() Tag { return BlockQuoteTag }
func (b *BlockQuote) block()   {}

type ListNumberStyle Tag

const (
	DefaultStyle ListNumberStyle = "DefaultStyle"
	Example      ListNumberStyle = "Example"
	Decimal      ListNumberStyle = "Decimal"
	LowerRoman   ListNumberStyle = "LowerRoman"
	UpperRoman   ListNumberStyle = "UpperRoman"
	LowerAlpha   ListNumberStyle = "LowerAlpha"
	UpperAlpha   ListNumberStyle = "UpperAlpha"
)

type ListNumberDelim Tag

const (
	DefaultDelim ListNumberDelim = "DefaultDelim"
	Period       ListNumberDelim = "Period"
	OneParen     ListNumberDelim = "OneParen"
	TwoParens    ListNumberDelim = "TwoParens"
)

type ListAttrs struct {
	Start     int
	Style     ListNumberStyle
	Delimiter ListNumberDelim
}

// Ordered list (attributes and a list of items, each a list of blocks)
type OrderedList struct {
	Attr  ListAttrs
	Items [][]Block
}

const OrderedListTag = Tag("OrderedList")

func (l *OrderedList) Tag() Tag { return OrderedListTag }
func (l *OrderedList) block()   {}

// Bullet list (list of items, each a list of blocks)
type BulletList struct {
	Items [][]Block
}

const BulletListTag = Tag("BulletList")

func (l *BulletList) Tag() Tag { return BulletListTag }
func (l *BulletList) block()   {}

type Definition struct {
	Term       []Inline
	Definition [][]Block
}

// Definition list (list of items, each a pair of inlines and a list of blocks)
type DefinitionList struct {
	Items []Definition
}

const DefinitionListTag = Tag("DefinitionList")

func (d *DefinitionList) Tag() Tag { return DefinitionListTag }
func (d *DefinitionList) block()   {}

var HR = &HorizontalRule{}

// Horizontal rule
type HorizontalRule struct{}

const HorizontalRuleTag = Tag("HorizontalRule")

func (*HorizontalRule) Tag() Tag { return HorizontalRuleTag }
func (*HorizontalRule) block()   {}

// Header - level (integer) and text (inlines)
type Header struct {
	Attr
	Level   int
	Inlines []Inline
}

const HeaderTag = Tag("Header")

func (h *Header) Tag() Tag { return HeaderTag }
func (h *Header) block()   {}

type Caption struct {
	Short []Inline
	Long  []Block
}

type Alignment Tag

const (
	AlignLeft    Alignment = "AlignLeft"
	AlignRight   Alignment = "AlignRight"
	AlignCenter  Alignment = "AlignCenter"
	AlignDefault Alignment = "AlignDefault"
)

type ColWidth struct {
	Width   float64
	Default bool
}

func DefaultColWidth() ColWidth { return ColWidth{Default: true} }

type ColSpec struct {
	Align Alignment
	Width ColWidth
}

type TableHeadFoot struct {
	Attr
	Rows []*TableRow
}

type TableRow struct {
	Attr
	Cells []*TableCell
}

type TableCell struct {
	Attr
	Align   Alignment
	RowSpan int
	ColSpan int
	Blocks  []Block
}

type TableBody struct {
	Attr
	RowHeadColumns int
	Head           []*TableRow
	Body           []*TableRow
}

// Table, with attributes, caption, optional short caption, column alignments
// and widths (required), table head, table bodies, and table foot
type Table struct {
	Attr
	Caption Caption
	Aligns  []ColSpec
	Head    TableHeadFoot
	Bodies  []*TableBody
	Foot    TableHeadFoot
}

const TableTag = Tag("Table")

func (t *Table) Tag() Tag { return TableTag }
func (t *Table) block()   {}

// Figure, with attributes, caption, and content (list of blocks)
type Figure struct {
	Attr
	Caption Caption
	Blocks  []Block
}

const FigureTag = Tag("Figure")

func (f *Figure) Tag() Tag { return FigureTag }
func (f *Figure) block()   {}

// Generic block container with attributes
type Div struct {
	Attr
	Blocks []Block
}

const DivTag = Tag("Div")

func (d *Div) Tag() Tag { return DivTag }
func (d *Div) block()   {}
