package parse

import (
	"strings"

	"github.com/mwielgus/chatmd"
)

// Driver is the re-parse policy for streaming updates: one full re-parse
// per observed text mutation, no incremental diffing. It holds only the
// latest snapshot and its document, so correctness never depends on
// prior parse state. Positional index within the document is the only
// block identity offered to hosts; see [chatmd.PrefixLen] for reusing
// rendered output across updates.
//
// A Driver is not safe for concurrent use. Drive it from a single
// goroutine, the way a Bubble Tea model owns its state.
type Driver struct {
	text   string
	doc    chatmd.Document
	parsed bool
}

// NewDriver returns a Driver with no snapshot.
func NewDriver() *Driver {
	return &Driver{}
}

// Update parses the given text snapshot and returns its document.
//
// Two short-circuits avoid redundant work without changing any result:
// an unchanged snapshot returns the cached document, and a snapshot that
// is a strict prefix of the current one is stale — it was superseded by
// a longer stream state already parsed — so the current document is
// returned unchanged. Any other mutation triggers a full re-parse.
func (d *Driver) Update(text string) chatmd.Document {
	if d.parsed {
		if text == d.text {
			return d.doc
		}
		if len(text) < len(d.text) && strings.HasPrefix(d.text, text) {
			return d.doc
		}
	}
	d.text = text
	d.doc = Parse(text)
	d.parsed = true
	return d.doc
}

// Document returns the most recently built document, or nil before the
// first Update.
func (d *Driver) Document() chatmd.Document {
	return d.doc
}

// Text returns the snapshot the current document was built from.
func (d *Driver) Text() string {
	return d.text
}
