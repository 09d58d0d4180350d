// Package mock provides test doubles for chatmd interfaces.
package mock

import "github.com/mwielgus/chatmd"

// Interface compliance check.
var _ chatmd.Stream = (*Stream)(nil)

// Stream is a test double for [chatmd.Stream].
// Set the function fields for the methods you need. NextFn and TextFn
// panic when nil to catch missing setup. CloseFn and StateFn are
// nil-safe (no-op and zero value) because test code commonly calls
// defer stream.Close() and these methods rarely need custom behavior.
type Stream struct {
	NextFn  func() (chatmd.Event, error)
	StateFn func() chatmd.StreamState
	TextFn  func() (string, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (chatmd.Event, error) {
	return s.NextFn()
}

// State delegates to StateFn. Returns StreamStateNew when StateFn is nil.
func (s *Stream) State() chatmd.StreamState {
	if s.StateFn == nil {
		return chatmd.StreamStateNew
	}
	return s.StateFn()
}

// Text delegates to TextFn.
func (s *Stream) Text() (string, error) {
	return s.TextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
