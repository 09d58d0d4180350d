package bubbletea

import (
	"strings"

	"github.com/mwielgus/chatmd"
	"github.com/mwielgus/chatmd/ansi"
	"github.com/mwielgus/chatmd/parse"
)

// StreamBlock renders streamed LLM text with markdown formatting. Every
// appended delta triggers a full re-parse through the driver; rendered
// output is cached per block position and reused for the leading blocks
// a re-parse left structurally unchanged, so steady streaming repaints
// only the tail of the document.
type StreamBlock struct {
	driver   *parse.Driver
	renderer *ansi.Renderer
	content  strings.Builder

	doc chatmd.Document

	// rendered caches per-block output for cacheWidth. Entries past the
	// shared prefix of the last re-parse are discarded on Append.
	rendered   []string
	cacheWidth int
}

// NewStreamBlock creates a block for streaming markdown text.
func NewStreamBlock(theme chatmd.Theme) *StreamBlock {
	return &StreamBlock{
		driver:   parse.NewDriver(),
		renderer: ansi.New(theme),
	}
}

// Append adds a text delta from the stream and re-parses the snapshot.
func (b *StreamBlock) Append(text string) {
	b.content.WriteString(text)
	doc := b.driver.Update(b.content.String())
	keep := chatmd.PrefixLen(b.doc, doc)
	if keep > len(b.rendered) {
		keep = len(b.rendered)
	}
	b.rendered = b.rendered[:keep]
	b.doc = doc
}

// View renders the current document at the given width, filling in the
// per-position cache for blocks not yet rendered.
func (b *StreamBlock) View(width int) string {
	if width <= 0 {
		return ""
	}
	if width != b.cacheWidth {
		b.rendered = b.rendered[:0]
		b.cacheWidth = width
	}
	for i := len(b.rendered); i < len(b.doc); i++ {
		b.rendered = append(b.rendered, b.renderer.RenderBlock(b.doc[i], width))
	}
	return strings.Join(b.rendered, "\n")
}

// Text returns the raw text accumulated so far.
func (b *StreamBlock) Text() string {
	return b.content.String()
}

// Document returns the current parsed document.
func (b *StreamBlock) Document() chatmd.Document {
	return b.doc
}
