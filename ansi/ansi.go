// Package ansi renders a [chatmd.Document] to ANSI-styled terminal
// output using lipgloss for styling and chroma for syntax highlighting
// of fenced code blocks. Paragraphs, list items and quoted lines are
// word-wrapped to width; code blocks are rendered at full width without
// reflow.
package ansi

import "github.com/mwielgus/chatmd"

// Render renders a document to ANSI-styled terminal output.
func Render(doc chatmd.Document, width int, theme chatmd.Theme) string {
	if len(doc) == 0 {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := New(theme)
	return r.Render(doc, width)
}
