package parse

import (
	"strings"

	"github.com/mwielgus/chatmd"
)

// Scan classifies source into an ordered block sequence in a single
// forward pass over its lines. Every line belongs to exactly one block,
// so there is no error return: worst case the output is all Paragraph
// and Blank blocks.
func Scan(source string) []chatmd.Block {
	if source == "" {
		return nil
	}
	source = strings.ReplaceAll(source, "\r\n", "\n")
	lines := strings.Split(source, "\n")

	var blocks []chatmd.Block
	for i := 0; i < len(lines); {
		line := lines[i]
		switch {
		case fenceLen(line) > 0:
			block, consumed := scanCode(lines[i:])
			blocks = append(blocks, block)
			i += consumed

		case strings.HasPrefix(strings.TrimSpace(line), "|"):
			block, consumed := scanTable(lines[i:])
			blocks = append(blocks, block)
			i += consumed

		case strings.HasPrefix(line, "> "):
			quote, consumed := scanQuote(lines[i:])
			blocks = append(blocks, quote)
			i += consumed

		case strings.HasPrefix(line, "#"):
			blocks = append(blocks, scanHeader(line))
			i++

		case isRule(line):
			blocks = append(blocks, chatmd.HorizontalRule{})
			i++

		default:
			if item, ok := matchListItem(line); ok {
				blocks = append(blocks, item)
			} else if strings.TrimSpace(line) == "" {
				blocks = append(blocks, chatmd.Blank{})
			} else {
				blocks = append(blocks, chatmd.Paragraph{Content: line})
			}
			i++
		}
	}
	return blocks
}

// fenceLen returns the length of the leading backtick run when the line
// starts with a fence token (three or more backticks), zero otherwise.
func fenceLen(line string) int {
	n := 0
	for n < len(line) && line[n] == '`' {
		n++
	}
	if n < 3 {
		return 0
	}
	return n
}

// isClosingFence reports whether the line consists solely of a fence
// token, ignoring surrounding whitespace.
func isClosingFence(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 3 && strings.Trim(t, "`") == ""
}

// scanCode consumes an opening fence and all following lines verbatim
// until a closing fence or end of input. An unterminated fence closes
// implicitly at EOF with content preserved up to that point.
func scanCode(lines []string) (chatmd.Block, int) {
	language := strings.TrimSpace(lines[0][fenceLen(lines[0]):])
	var content []string
	for i := 1; i < len(lines); i++ {
		if isClosingFence(lines[i]) {
			return chatmd.CodeBlock{Language: language, Content: strings.Join(content, "\n")}, i + 1
		}
		content = append(content, lines[i])
	}
	return chatmd.CodeBlock{Language: language, Content: strings.Join(content, "\n")}, len(lines)
}

// scanTable consumes consecutive pipe-leading lines. A lone pipe line is
// not elevated to a table; it falls back to a paragraph.
func scanTable(lines []string) (chatmd.Block, int) {
	n := 0
	for n < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[n]), "|") {
		n++
	}
	if n < 2 {
		return chatmd.Paragraph{Content: lines[0]}, 1
	}
	return splitTable(lines[:n]), n
}

// scanQuote consumes consecutive "> "-prefixed lines and strips the
// prefix. Each collected line is inline-formatted independently by the
// renderer.
func scanQuote(lines []string) (chatmd.Block, int) {
	var quoted []string
	for _, line := range lines {
		if !strings.HasPrefix(line, "> ") {
			break
		}
		quoted = append(quoted, line[2:])
	}
	return chatmd.Blockquote{Lines: quoted}, len(quoted)
}

// scanHeader emits a header from a leading '#' run. Runs longer than six
// are clamped, not rejected.
func scanHeader(line string) chatmd.Block {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	content := strings.TrimSpace(line[level:])
	if level > 6 {
		level = 6
	}
	return chatmd.Header{Level: level, Content: content}
}

func isRule(line string) bool {
	t := strings.TrimSpace(line)
	return t == "---" || t == "***"
}

// matchListItem matches leading whitespace, a bullet ('-' or '*') or an
// ordered marker (digits followed by '.'), and a single space. One item
// is emitted per source line; siblings are never grouped into a nested
// list tree, and indent is used only for visual offset.
func matchListItem(line string) (chatmd.ListItem, bool) {
	indent := 0
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}
	rest := line[indent:]

	if len(rest) >= 2 && (rest[0] == '-' || rest[0] == '*') && rest[1] == ' ' {
		return chatmd.ListItem{
			Indent:  indent,
			Ordered: false,
			Marker:  rest[:1],
			Content: rest[2:],
		}, true
	}

	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits+1 < len(rest) && rest[digits] == '.' && rest[digits+1] == ' ' {
		return chatmd.ListItem{
			Indent:  indent,
			Ordered: true,
			Marker:  rest[:digits+1],
			Content: rest[digits+2:],
		}, true
	}

	return chatmd.ListItem{}, false
}
