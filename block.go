// Package chatmd defines the document model for streamed chat markdown:
// a flat sequence of block nodes, each carrying unformatted text that a
// renderer runs through the inline formatter. The model is pure data —
// no back-references, no shared state, no identity beyond position.
package chatmd

// Block is a sealed interface representing a top-level structural unit
// of the document. The unexported marker method prevents external
// implementations, so renderers can switch exhaustively over the kinds.
type Block interface {
	block()
}

// CodeBlock is a fenced code block. Content is the exact newline-joined
// text between the fences, unmodified — "copy code" consumers rely on it
// being verbatim. Language is the trimmed label after the opening fence
// and may be empty.
type CodeBlock struct {
	Language string
	Content  string
}

func (CodeBlock) block() {}

// Table holds trimmed cell strings. Header and Rows are not reconciled
// to equal width; a short row simply renders fewer cells.
type Table struct {
	Header []string
	Rows   [][]string
}

func (Table) block() {}

// Blockquote holds the text of consecutive quoted lines with the leading
// "> " stripped. Each line is inline-formatted independently.
type Blockquote struct {
	Lines []string
}

func (Blockquote) block() {}

// Header is a heading. Level is clamped to 1..6.
type Header struct {
	Level   int
	Content string
}

func (Header) block() {}

// HorizontalRule is a thematic break ("---" or "***" on its own line).
type HorizontalRule struct{}

func (HorizontalRule) block() {}

// ListItem is a single list line. Items are never grouped into a nested
// list tree; Indent is the count of leading whitespace characters and is
// used only for visual offset.
type ListItem struct {
	Indent  int
	Ordered bool
	Marker  string
	Content string
}

func (ListItem) block() {}

// Blank is an empty line.
type Blank struct{}

func (Blank) block() {}

// Paragraph is any line not matched by another block kind. Consecutive
// non-blank lines become separate Paragraphs; there is no merging.
type Paragraph struct {
	Content string
}

func (Paragraph) block() {}

// Interface compliance checks.
var (
	_ Block = CodeBlock{}
	_ Block = Table{}
	_ Block = Blockquote{}
	_ Block = Header{}
	_ Block = HorizontalRule{}
	_ Block = ListItem{}
	_ Block = Blank{}
	_ Block = Paragraph{}
)
