// Package parse turns raw assistant-generated markdown into a
// [chatmd.Document]. The input is untrusted, model-generated, and
// frequently truncated mid-construct, so every function in this package
// is total: malformed input degrades to a best-effort literal rendering
// and nothing here returns an error or panics.
package parse

import "github.com/mwielgus/chatmd"

// Parse normalizes line endings and scans source into a block sequence.
// It is pure and deterministic: the same source always yields a
// structurally identical Document. Empty input yields an empty Document.
func Parse(source string) chatmd.Document {
	return chatmd.Document(Scan(source))
}
