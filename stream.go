package chatmd

// StreamState indicates the current state of a Stream.
type StreamState int

const (
	StreamStateNew       StreamState = iota // Before Next() is ever called.
	StreamStateStreaming                    // Mid-stream, receiving deltas.
	StreamStateComplete                     // Next() returned io.EOF.
	StreamStateError                        // Next() returned non-EOF error.
	StreamStateClosed                       // Close() called before terminal state.
)

// Stream supplies the progressively growing assistant text the engine is
// re-invoked on. It uses a pull-based iterator pattern; cancellation
// flows through the context passed to the source's constructor.
//
// State() returns the current StreamState. Callers can use it to
// determine whether Text() returns a partial or complete snapshot.
//
// Text() returns the text accumulated so far. Behavior by stream state:
//   - StreamStateComplete: full text, nil error.
//   - StreamStateStreaming: partial text, nil error.
//   - StreamStateError / StreamStateClosed: partial text up to the
//     failure or close, nil error.
//   - StreamStateNew: empty string, ErrStreamNotReady.
type Stream interface {
	Next() (Event, error)
	State() StreamState
	Text() (string, error)
	Close() error
}
