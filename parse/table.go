package parse

import (
	"strings"

	"github.com/mwielgus/chatmd"
)

// splitTable builds a table from a run of pipe-delimited lines. The
// first line is the header, the second is assumed to be the separator
// and is discarded without validation (a malformed separator is silently
// skipped), and the rest are body rows. Row widths are not reconciled;
// a short row renders fewer cells.
func splitTable(lines []string) chatmd.Table {
	table := chatmd.Table{Header: splitRow(lines[0])}
	for _, line := range lines[2:] {
		table.Rows = append(table.Rows, splitRow(line))
	}
	return table
}

// splitRow splits a row on '|', trims each fragment, and drops the
// empty fragments produced by leading and trailing pipes.
func splitRow(line string) []string {
	var cells []string
	for _, frag := range strings.Split(line, "|") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		cells = append(cells, frag)
	}
	return cells
}
