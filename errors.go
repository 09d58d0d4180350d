package chatmd

import "errors"

// Sentinel errors for common failure modes. Parsing itself is total and
// has no error values; these belong to the streaming text boundary.
var (
	// ErrStreamNotReady indicates Text() was called before Next().
	ErrStreamNotReady = errors.New("stream not ready: call Next() first")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")
)
