package parse_test

import (
	"strings"
	"testing"

	"github.com/mwielgus/chatmd"
	"github.com/mwielgus/chatmd/parse"
	"github.com/stretchr/testify/assert"
)

func TestFormatInline(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields no nodes", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, parse.FormatInline(""))
	})

	t.Run("plain text yields a single text node", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("no markers here")
		assert.Equal(t, []chatmd.Inline{chatmd.Text{Text: "no markers here"}}, nodes)
	})

	t.Run("bold wraps recursively formatted children", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("**a *b* c**")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Bold{Children: []chatmd.Inline{
				chatmd.Text{Text: "a "},
				chatmd.Italic{Children: []chatmd.Inline{chatmd.Text{Text: "b"}}},
				chatmd.Text{Text: " c"},
			}},
		}, nodes)
	})

	t.Run("italic between plain text", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("an *emphasized* word")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Text{Text: "an "},
			chatmd.Italic{Children: []chatmd.Inline{chatmd.Text{Text: "emphasized"}}},
			chatmd.Text{Text: " word"},
		}, nodes)
	})

	t.Run("code span is never re-formatted", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("`**not bold**`")
		assert.Equal(t, []chatmd.Inline{chatmd.Code{Text: "**not bold**"}}, nodes)
	})

	t.Run("unterminated bold is literal text", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("**oops")
		assert.Equal(t, []chatmd.Inline{chatmd.Text{Text: "**oops"}}, nodes)
	})

	t.Run("unterminated italic is literal text", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("*oops")
		assert.Equal(t, []chatmd.Inline{chatmd.Text{Text: "*oops"}}, nodes)
	})

	t.Run("unterminated code span is literal text", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("`oops")
		assert.Equal(t, []chatmd.Inline{chatmd.Text{Text: "`oops"}}, nodes)
	})

	t.Run("bold wins over italic at the same offset", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("**strong**")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Bold{Children: []chatmd.Inline{chatmd.Text{Text: "strong"}}},
		}, nodes)
	})

	t.Run("leftmost span wins regardless of kind", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("*first* then **second**")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Italic{Children: []chatmd.Inline{chatmd.Text{Text: "first"}}},
			chatmd.Text{Text: " then "},
			chatmd.Bold{Children: []chatmd.Inline{chatmd.Text{Text: "second"}}},
		}, nodes)
	})

	t.Run("adversarial marker runs terminate", func(t *testing.T) {
		t.Parallel()
		parse.FormatInline(strings.Repeat("*", 500))
		parse.FormatInline(strings.Repeat("`", 500))
		parse.FormatInline(strings.Repeat("**a", 500))
	})

	t.Run("four asterisks match like a non-greedy pattern", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("****")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Italic{Children: []chatmd.Inline{chatmd.Text{Text: "*"}}},
			chatmd.Text{Text: "*"},
		}, nodes)
	})
}

func TestFormatInlineLinks(t *testing.T) {
	t.Parallel()

	t.Run("link between plain text", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("see [docs](https://example.com) now")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Text{Text: "see "},
			chatmd.Link{Label: "docs", Href: "https://example.com"},
			chatmd.Text{Text: " now"},
		}, nodes)
	})

	t.Run("link inside bold", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("**[docs](https://example.com)**")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Bold{Children: []chatmd.Inline{
				chatmd.Link{Label: "docs", Href: "https://example.com"},
			}},
		}, nodes)
	})

	t.Run("link syntax inside a code span stays raw", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("`[x](y)`")
		assert.Equal(t, []chatmd.Inline{chatmd.Code{Text: "[x](y)"}}, nodes)
	})

	t.Run("bold inside a label splits the span before the link pass", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("[**label**](href)")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Text{Text: "["},
			chatmd.Bold{Children: []chatmd.Inline{chatmd.Text{Text: "label"}}},
			chatmd.Text{Text: "](href)"},
		}, nodes)
	})

	t.Run("plain label is carried as-is", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("[label text](href)")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Link{Label: "label text", Href: "href"},
		}, nodes)
	})

	t.Run("incomplete link is literal text", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("[dangling](still going")
		assert.Equal(t, []chatmd.Inline{chatmd.Text{Text: "[dangling](still going"}}, nodes)
	})

	t.Run("multiple links in one segment", func(t *testing.T) {
		t.Parallel()
		nodes := parse.FormatInline("[a](1) and [b](2)")
		assert.Equal(t, []chatmd.Inline{
			chatmd.Link{Label: "a", Href: "1"},
			chatmd.Text{Text: " and "},
			chatmd.Link{Label: "b", Href: "2"},
		}, nodes)
	})
}
