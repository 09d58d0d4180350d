package parse

import (
	"strings"

	"github.com/mwielgus/chatmd"
)

// Span kinds in match priority order. When two spans start at the same
// offset the earlier kind wins, so "**" is bold rather than two italics.
type spanKind int

const (
	spanBold spanKind = iota
	spanItalic
	spanCode
)

var spanDelims = [...]string{
	spanBold:   "**",
	spanItalic: "*",
	spanCode:   "`",
}

type spanMatch struct {
	kind  spanKind
	start int    // offset of the opening delimiter
	inner string // text between the delimiters, always non-empty
	end   int    // offset just past the closing delimiter
}

// FormatInline splits text into an ordered inline node sequence:
// leftmost-match over bold, italic and inline code, with links resolved
// afterwards on the residual plain-text segments so link syntax inside a
// code span is never treated as a link. Bold and italic recurse into the
// formatter on their inner text; code spans stay raw. Unterminated
// markers fall through as literal text.
//
// Every branch strictly shortens the unprocessed remainder, so recursion
// depth is bounded by the input length: the formatter terminates on any
// input, including adversarial repeated markers.
func FormatInline(text string) []chatmd.Inline {
	var nodes []chatmd.Inline
	remaining := text
	for remaining != "" {
		m, ok := nextSpan(remaining)
		if !ok {
			nodes = append(nodes, linkPass(remaining)...)
			break
		}
		if m.start > 0 {
			nodes = append(nodes, linkPass(remaining[:m.start])...)
		}
		switch m.kind {
		case spanBold:
			nodes = append(nodes, chatmd.Bold{Children: FormatInline(m.inner)})
		case spanItalic:
			nodes = append(nodes, chatmd.Italic{Children: FormatInline(m.inner)})
		case spanCode:
			nodes = append(nodes, chatmd.Code{Text: m.inner})
		}
		remaining = remaining[m.end:]
	}
	return nodes
}

// nextSpan finds the leftmost matching span in s. Ties on start offset
// resolve by kind priority.
func nextSpan(s string) (spanMatch, bool) {
	var best spanMatch
	found := false
	for kind, delim := range spanDelims {
		m, ok := matchDelim(s, delim)
		if !ok {
			continue
		}
		m.kind = spanKind(kind)
		if !found || m.start < best.start {
			best = m
			found = true
		}
	}
	return best, found
}

// matchDelim finds the leftmost delimited span with a non-empty inner
// text. The closing scan starts one byte past the opener so the inner
// text has at least one character, matching a non-greedy one-or-more
// pattern: "****" as italic yields an inner of "*", not an empty span.
func matchDelim(s, delim string) (spanMatch, bool) {
	open := strings.Index(s, delim)
	if open < 0 {
		return spanMatch{}, false
	}
	innerStart := open + len(delim)
	if innerStart+1 > len(s) {
		return spanMatch{}, false
	}
	rel := strings.Index(s[innerStart+1:], delim)
	if rel < 0 {
		// No closer anywhere past the inner text, so no later opener
		// can be closed either.
		return spanMatch{}, false
	}
	innerEnd := innerStart + 1 + rel
	return spanMatch{
		start: open,
		inner: s[innerStart:innerEnd],
		end:   innerEnd + len(delim),
	}, true
}

// linkPass scans a plain-text segment for [label](href) spans. Labels
// are carried as-is; only the literal text around matches is emitted as
// Text nodes.
func linkPass(s string) []chatmd.Inline {
	var nodes []chatmd.Inline
	for s != "" {
		link, start, end, ok := matchLink(s)
		if !ok {
			nodes = append(nodes, chatmd.Text{Text: s})
			break
		}
		if start > 0 {
			nodes = append(nodes, chatmd.Text{Text: s[:start]})
		}
		nodes = append(nodes, link)
		s = s[end:]
	}
	return nodes
}

// matchLink finds the leftmost [label](href) span.
func matchLink(s string) (chatmd.Link, int, int, bool) {
	open := strings.Index(s, "[")
	if open < 0 {
		return chatmd.Link{}, 0, 0, false
	}
	mid := strings.Index(s[open:], "](")
	if mid < 0 {
		return chatmd.Link{}, 0, 0, false
	}
	hrefStart := open + mid + 2
	closeRel := strings.Index(s[hrefStart:], ")")
	if closeRel < 0 {
		return chatmd.Link{}, 0, 0, false
	}
	link := chatmd.Link{
		Label: s[open+1 : open+mid],
		Href:  s[hrefStart : hrefStart+closeRel],
	}
	return link, open, hrefStart + closeRel + 1, true
}
