package chatmd

import "context"

// Provider is a strategy pattern interface for streaming text sources.
// A provider turns a prompt into a [Stream] of text deltas; the markdown
// engine re-renders the growing text after each delta.
type Provider interface {
	Stream(ctx context.Context, prompt string) (Stream, error)
}
