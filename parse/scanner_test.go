package parse_test

import (
	"strings"
	"testing"

	"github.com/mwielgus/chatmd"
	"github.com/mwielgus/chatmd/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields empty document", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, parse.Parse(""))
	})

	t.Run("same input yields structurally equal documents", func(t *testing.T) {
		t.Parallel()
		src := "# Title\n\nSome *text*.\n\n```go\nfmt.Println(1)\n```\n\n|a|b|\n|-|-|\n|1|2|"
		first := parse.Parse(src)
		second := parse.Parse(src)
		assert.Equal(t, first, second)
		assert.True(t, first.Equal(second))
	})

	t.Run("every prefix parses without panicking", func(t *testing.T) {
		t.Parallel()
		src := "# Head\n> quoted\n```py\nprint(1)\n```\n|a|b|\n|-|-|\n|1|2|\n- item\n---\ntext **bold [x](y)**"
		for k := 0; k <= len(src); k++ {
			parse.Parse(src[:k])
		}
		assert.Equal(t, parse.Parse(src), parse.Parse(src[:len(src)]))
	})

	t.Run("CRLF input parses identically to LF input", func(t *testing.T) {
		t.Parallel()
		lf := "# Title\npara\n\n- item"
		crlf := strings.ReplaceAll(lf, "\n", "\r\n")
		assert.Equal(t, parse.Parse(lf), parse.Parse(crlf))
	})
}

func TestScanCodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("fence captures content and language exactly", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("```js\nconsole.log(1)\n```")
		assert.Equal(t, chatmd.Document{
			chatmd.CodeBlock{Language: "js", Content: "console.log(1)"},
		}, doc)
	})

	t.Run("unterminated fence closes at end of input", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("```py\nprint(1)")
		assert.Equal(t, chatmd.Document{
			chatmd.CodeBlock{Language: "py", Content: "print(1)"},
		}, doc)
	})

	t.Run("fence consumes lines that look like other blocks", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("```\n# not a header\n|not|a|table|\n> not a quote\n```")
		assert.Equal(t, chatmd.Document{
			chatmd.CodeBlock{Content: "# not a header\n|not|a|table|\n> not a quote"},
		}, doc)
	})

	t.Run("longer fence tokens open and close", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("````sql\nselect 1\n````")
		assert.Equal(t, chatmd.Document{
			chatmd.CodeBlock{Language: "sql", Content: "select 1"},
		}, doc)
	})

	t.Run("language label is trimmed", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("```  rust  \nfn main() {}\n```")
		assert.Equal(t, chatmd.Document{
			chatmd.CodeBlock{Language: "rust", Content: "fn main() {}"},
		}, doc)
	})

	t.Run("empty fenced block", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("```\n```")
		assert.Equal(t, chatmd.Document{chatmd.CodeBlock{}}, doc)
	})
}

func TestScanTables(t *testing.T) {
	t.Parallel()

	t.Run("header separator and body rows", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("|a|b|\n|-|-|\n|1|2|")
		assert.Equal(t, chatmd.Document{
			chatmd.Table{Header: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
		}, doc)
	})

	t.Run("single pipe line is a paragraph", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("|lonely|")
		assert.Equal(t, chatmd.Document{chatmd.Paragraph{Content: "|lonely|"}}, doc)
	})

	t.Run("table run ends at first non-pipe line", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("|a|\n|-|\n|1|\nafter")
		require.Len(t, doc, 2)
		assert.Equal(t, chatmd.Table{Header: []string{"a"}, Rows: [][]string{{"1"}}}, doc[0])
		assert.Equal(t, chatmd.Paragraph{Content: "after"}, doc[1])
	})

	t.Run("indented pipe line still starts a table", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("  |a|\n  |-|")
		assert.Equal(t, chatmd.Document{chatmd.Table{Header: []string{"a"}}}, doc)
	})
}

func TestScanBlockquotes(t *testing.T) {
	t.Parallel()

	t.Run("consecutive quoted lines group into one blockquote", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("> one\n> two\nplain")
		assert.Equal(t, chatmd.Document{
			chatmd.Blockquote{Lines: []string{"one", "two"}},
			chatmd.Paragraph{Content: "plain"},
		}, doc)
	})

	t.Run("bare angle bracket is a paragraph", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse(">no space")
		assert.Equal(t, chatmd.Document{chatmd.Paragraph{Content: ">no space"}}, doc)
	})
}

func TestScanHeaders(t *testing.T) {
	t.Parallel()

	t.Run("levels one through six", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("# a\n## b\n### c\n#### d\n##### e\n###### f")
		require.Len(t, doc, 6)
		for i, content := range []string{"a", "b", "c", "d", "e", "f"} {
			assert.Equal(t, chatmd.Header{Level: i + 1, Content: content}, doc[i])
		}
	})

	t.Run("run longer than six clamps", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("####### Too deep")
		assert.Equal(t, chatmd.Document{chatmd.Header{Level: 6, Content: "Too deep"}}, doc)
	})

	t.Run("content is trimmed", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("##   spaced   ")
		assert.Equal(t, chatmd.Document{chatmd.Header{Level: 2, Content: "spaced"}}, doc)
	})
}

func TestScanRules(t *testing.T) {
	t.Parallel()

	t.Run("dashes and asterisks", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("---\n***")
		assert.Equal(t, chatmd.Document{chatmd.HorizontalRule{}, chatmd.HorizontalRule{}}, doc)
	})

	t.Run("independent of surrounding blank lines", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("\n---\n")
		assert.Equal(t, chatmd.Document{chatmd.Blank{}, chatmd.HorizontalRule{}, chatmd.Blank{}}, doc)
	})
}

func TestScanListItems(t *testing.T) {
	t.Parallel()

	t.Run("one item per line with no grouping", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("- one\n- two")
		assert.Equal(t, chatmd.Document{
			chatmd.ListItem{Marker: "-", Content: "one"},
			chatmd.ListItem{Marker: "-", Content: "two"},
		}, doc)
	})

	t.Run("asterisk bullets", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("* starred")
		assert.Equal(t, chatmd.Document{chatmd.ListItem{Marker: "*", Content: "starred"}}, doc)
	})

	t.Run("ordered markers keep their number", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("1. first\n12. twelfth")
		assert.Equal(t, chatmd.Document{
			chatmd.ListItem{Ordered: true, Marker: "1.", Content: "first"},
			chatmd.ListItem{Ordered: true, Marker: "12.", Content: "twelfth"},
		}, doc)
	})

	t.Run("indent counts leading whitespace", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("  - nested")
		assert.Equal(t, chatmd.Document{
			chatmd.ListItem{Indent: 2, Marker: "-", Content: "nested"},
		}, doc)
	})

	t.Run("marker without trailing space is a paragraph", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("*italic* start")
		assert.Equal(t, chatmd.Document{chatmd.Paragraph{Content: "*italic* start"}}, doc)
	})
}

func TestScanParagraphs(t *testing.T) {
	t.Parallel()

	t.Run("consecutive lines stay separate paragraphs", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("first line\nsecond line")
		assert.Equal(t, chatmd.Document{
			chatmd.Paragraph{Content: "first line"},
			chatmd.Paragraph{Content: "second line"},
		}, doc)
	})

	t.Run("blank lines become blank blocks", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("a\n\nb")
		assert.Equal(t, chatmd.Document{
			chatmd.Paragraph{Content: "a"},
			chatmd.Blank{},
			chatmd.Paragraph{Content: "b"},
		}, doc)
	})

	t.Run("whitespace-only line is blank", func(t *testing.T) {
		t.Parallel()
		doc := parse.Parse("   ")
		assert.Equal(t, chatmd.Document{chatmd.Blank{}}, doc)
	})
}
