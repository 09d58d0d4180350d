package chatmd

import (
	"context"
	"io"
)

// Pump drains a stream, invoking onEvent for each event until the
// stream reports io.EOF. It returns nil on normal completion, the
// stream's error on failure, or the context error when ctx is cancelled
// first. The stream is not closed; that stays with the caller.
func Pump(ctx context.Context, stream Stream, onEvent func(Event)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		event, err := stream.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		onEvent(event)
	}
}
