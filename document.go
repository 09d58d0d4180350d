package chatmd

import "reflect"

// Document is the ordered block sequence produced by one parse call. It
// is a transient view of the latest text snapshot: constructed fresh on
// every parse and discarded after rendering. Positional index is the
// only block identity.
type Document []Block

// Equal reports structural equality. Parsing is deterministic, so two
// parses of the same text always compare equal.
func (d Document) Equal(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !reflect.DeepEqual(d[i], other[i]) {
			return false
		}
	}
	return true
}

// PrefixLen returns the number of leading blocks that are structurally
// unchanged between two documents. A host can keep rendered output for
// those positions when repainting after a streamed update. The result is
// positional: inserting a block earlier in the text shifts everything
// after it and the shared prefix ends there.
func PrefixLen(old, new Document) int {
	n := len(old)
	if len(new) < n {
		n = len(new)
	}
	for i := 0; i < n; i++ {
		if !reflect.DeepEqual(old[i], new[i]) {
			return i
		}
	}
	return n
}
