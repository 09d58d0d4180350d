package ansi

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/mwielgus/chatmd"
	"github.com/mwielgus/chatmd/parse"
	"github.com/rivo/uniseg"
)

// Renderer holds the lipgloss styles derived from a theme. Blocks render
// independently, so hosts can cache per-block output keyed by position
// and repaint only past the shared prefix after a streamed update.
type Renderer struct {
	bold      lipgloss.Style
	italic    lipgloss.Style
	accent    lipgloss.Style
	muted     lipgloss.Style
	quote     lipgloss.Style
	link      lipgloss.Style
	codeSpan  lipgloss.Style
	highlight string
}

// New creates a Renderer from a theme.
func New(theme chatmd.Theme) *Renderer {
	return &Renderer{
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		accent:    lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		quote:     lipgloss.NewStyle().Foreground(ansiColor(theme.Quote)),
		link:      lipgloss.NewStyle().Foreground(ansiColor(theme.Link)).Underline(true),
		codeSpan:  lipgloss.NewStyle().Background(ansiColor(theme.CodeBg)).Bold(true),
		highlight: "monokai",
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// Render renders the whole document, one block per line group, joined
// with single newlines. Blank blocks contribute empty lines, so the
// output line structure mirrors the block sequence exactly.
func (r *Renderer) Render(doc chatmd.Document, width int) string {
	parts := make([]string, len(doc))
	for i, block := range doc {
		parts[i] = r.RenderBlock(block, width)
	}
	return strings.Join(parts, "\n")
}

// RenderBlock renders a single block without a trailing newline. The
// switch is exhaustive over the sealed Block union.
func (r *Renderer) RenderBlock(block chatmd.Block, width int) string {
	switch b := block.(type) {
	case chatmd.CodeBlock:
		return r.renderCode(b)
	case chatmd.Table:
		return r.renderTable(b, width)
	case chatmd.Blockquote:
		return r.renderQuote(b, width)
	case chatmd.Header:
		styled := r.accent.Render(r.renderInlines(parse.FormatInline(b.Content)))
		return lipgloss.NewStyle().Width(width).Render(styled)
	case chatmd.HorizontalRule:
		return r.muted.Render(strings.Repeat("─", ruleWidth(width)))
	case chatmd.ListItem:
		return r.renderListItem(b, width)
	case chatmd.Blank:
		return ""
	case chatmd.Paragraph:
		inline := r.renderInlines(parse.FormatInline(b.Content))
		return lipgloss.NewStyle().Width(width).Render(inline)
	default:
		// Unreachable: Block is sealed.
		return ""
	}
}

func ruleWidth(width int) int {
	if width > 40 {
		return 40
	}
	if width < 3 {
		return 3
	}
	return width
}

// renderCode emits the language label in muted style, then the content
// behind a gutter bar. Content is highlighted when chroma knows the
// language label and passed through untouched otherwise — the raw
// Content string stays available to the host for clipboard copies.
func (r *Renderer) renderCode(b chatmd.CodeBlock) string {
	var buf strings.Builder
	if b.Language != "" {
		buf.WriteString(r.muted.Render(b.Language))
		buf.WriteString("\n")
	}
	gutter := r.muted.Render("│") + " "
	content := r.highlightCode(b.Content, b.Language)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(gutter + line)
	}
	return buf.String()
}

func (r *Renderer) highlightCode(content, language string) string {
	if language == "" || content == "" {
		return content
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return content
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}
	style := styles.Get(r.highlight)
	if style == nil {
		style = styles.Fallback
	}
	var buf strings.Builder
	if err := formatters.TTY256.Format(&buf, style, iterator); err != nil {
		return content
	}
	// Chroma emits a newline for the final token line; the scanner
	// already joined content without one.
	return strings.TrimSuffix(buf.String(), "\n")
}

// renderTable pads cells to per-column display widths measured on the
// raw cell text. Ragged rows render fewer cells. The separator row was
// dropped by the parser; a muted rule is drawn instead.
func (r *Renderer) renderTable(b chatmd.Table, width int) string {
	maxCell := width - 2
	if maxCell < 1 {
		maxCell = 1
	}
	clip := func(cells []string) []string {
		out := make([]string, len(cells))
		for i, cell := range cells {
			out[i] = runewidth.Truncate(cell, maxCell, "…")
		}
		return out
	}
	header := clip(b.Header)
	rows := make([][]string, len(b.Rows))
	for i, row := range b.Rows {
		rows[i] = clip(row)
	}

	widths := columnWidths(header, rows)

	var buf strings.Builder
	buf.WriteString(r.renderRow(header, widths, r.bold))
	buf.WriteString("\n")
	buf.WriteString(r.muted.Render(strings.Repeat("─", ruleWidth(totalWidth(widths)))))
	for _, row := range rows {
		buf.WriteString("\n")
		buf.WriteString(r.renderRow(row, widths, lipgloss.NewStyle()))
	}
	return buf.String()
}

func columnWidths(header []string, rows [][]string) []int {
	var widths []int
	note := func(cells []string) {
		for i, cell := range cells {
			w := uniseg.StringWidth(cell)
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}
	note(header)
	for _, row := range rows {
		note(row)
	}
	return widths
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if total > 2 {
		total -= 2
	}
	return total
}

// renderRow formats each cell inline, pads to the column width measured
// on the raw text, and joins with two spaces.
func (r *Renderer) renderRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := 0
		if i < len(widths) {
			pad = widths[i] - uniseg.StringWidth(cell)
		}
		rendered := style.Render(r.renderInlines(parse.FormatInline(cell)))
		parts[i] = rendered + strings.Repeat(" ", max(pad, 0))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// renderQuote renders each quoted line as its own paragraph behind a
// quote bar, inline-formatted independently.
func (r *Renderer) renderQuote(b chatmd.Blockquote, width int) string {
	bar := r.quote.Render("│") + " "
	lineWidth := width - 2
	if lineWidth < 10 {
		lineWidth = 10
	}
	var out []string
	for _, line := range b.Lines {
		inline := r.quote.Render(r.renderInlines(parse.FormatInline(line)))
		wrapped := lipgloss.NewStyle().Width(lineWidth).Render(inline)
		for _, l := range strings.Split(wrapped, "\n") {
			out = append(out, bar+l)
		}
	}
	return strings.Join(out, "\n")
}

// renderListItem writes the item with continuation-line indentation
// under the marker.
func (r *Renderer) renderListItem(b chatmd.ListItem, width int) string {
	prefix := strings.Repeat(" ", b.Indent) + b.Marker + " "
	itemWidth := width - len(prefix)
	if itemWidth < 10 {
		itemWidth = 10
	}
	content := r.renderInlines(parse.FormatInline(b.Content))
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	lines := strings.Split(wrapped, "\n")
	continuation := strings.Repeat(" ", len(prefix))
	for i, line := range lines {
		if i == 0 {
			lines[i] = prefix + line
		} else {
			lines[i] = continuation + line
		}
	}
	return strings.Join(lines, "\n")
}

// renderInlines renders an inline node sequence. The switch is
// exhaustive over the sealed Inline union; Bold and Italic recurse into
// their children.
func (r *Renderer) renderInlines(nodes []chatmd.Inline) string {
	var buf strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case chatmd.Text:
			buf.WriteString(n.Text)
		case chatmd.Bold:
			buf.WriteString(r.bold.Render(r.renderInlines(n.Children)))
		case chatmd.Italic:
			buf.WriteString(r.italic.Render(r.renderInlines(n.Children)))
		case chatmd.Code:
			buf.WriteString(r.codeSpan.Render(n.Text))
		case chatmd.Link:
			buf.WriteString(r.link.Render(n.Label))
			buf.WriteString(" ")
			buf.WriteString(r.muted.Render("(" + n.Href + ")"))
		}
	}
	return buf.String()
}
