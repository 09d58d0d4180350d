// Package goldmark renders complete markdown text to ANSI-styled
// terminal output using the goldmark CommonMark parser and lipgloss.
//
// It is the one-shot alternative to the streaming engine: CommonMark
// grouping (merged paragraphs, nested lists) is fine for a finished
// file, but the hand-rolled parser in package parse remains the only
// engine for streamed text, where per-line blocks are the contract.
package goldmark

import "github.com/mwielgus/chatmd"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width. Code blocks are
// rendered at full width without reflow.
func Render(source string, width int, theme chatmd.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
