package parse

// Exported for tests.
var (
	SplitTable = splitTable
	SplitRow   = splitRow
)
