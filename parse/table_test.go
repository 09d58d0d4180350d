package parse_test

import (
	"testing"

	"github.com/mwielgus/chatmd"
	"github.com/mwielgus/chatmd/parse"
	"github.com/stretchr/testify/assert"
)

func TestSplitTable(t *testing.T) {
	t.Parallel()

	t.Run("separator row is discarded without validation", func(t *testing.T) {
		t.Parallel()
		table := parse.SplitTable([]string{"|a|b|", "|letters not dashes|", "|1|2|"})
		assert.Equal(t, chatmd.Table{
			Header: []string{"a", "b"},
			Rows:   [][]string{{"1", "2"}},
		}, table)
	})

	t.Run("header and separator only yields no rows", func(t *testing.T) {
		t.Parallel()
		table := parse.SplitTable([]string{"|a|b|", "|-|-|"})
		assert.Equal(t, []string{"a", "b"}, table.Header)
		assert.Empty(t, table.Rows)
	})

	t.Run("ragged rows keep their own width", func(t *testing.T) {
		t.Parallel()
		table := parse.SplitTable([]string{"|a|b|c|", "|-|-|-|", "|1|", "|1|2|3|4|"})
		assert.Equal(t, [][]string{{"1"}, {"1", "2", "3", "4"}}, table.Rows)
	})
}

func TestSplitRow(t *testing.T) {
	t.Parallel()

	t.Run("cells are trimmed", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b"}, parse.SplitRow("|  a  |  b  |"))
	})

	t.Run("empty fragments from pipes are dropped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b"}, parse.SplitRow("|a||b|"))
	})

	t.Run("row without surrounding pipes still splits", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b"}, parse.SplitRow("a|b"))
	})

	t.Run("pipes only yields no cells", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, parse.SplitRow("|||"))
	})
}
