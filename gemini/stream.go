package gemini

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/mwielgus/chatmd"
	"google.golang.org/genai"
)

// stream implements [chatmd.Stream] by wrapping the genai SDK's
// streaming iterator. Chunks without text content are skipped.
type stream struct {
	pull  func() (*genai.GenerateContentResponse, error, bool)
	stop  func()
	state chatmd.StreamState
	text  strings.Builder
	err   error
}

// Interface compliance check.
var _ chatmd.Stream = (*stream)(nil)

// NewStreamFromIter wraps a genai response iterator in a
// [chatmd.Stream]. Exposed so tests can drive the stream with
// pre-built chunks.
func NewStreamFromIter(_ context.Context, iterFn iter.Seq2[*genai.GenerateContentResponse, error]) chatmd.Stream {
	next, stop := iter.Pull2(iterFn)
	return &stream{
		pull:  next,
		stop:  stop,
		state: chatmd.StreamStateNew,
	}
}

func (s *stream) Next() (chatmd.Event, error) {
	switch s.state {
	case chatmd.StreamStateComplete:
		return nil, io.EOF
	case chatmd.StreamStateError:
		return nil, s.err
	case chatmd.StreamStateClosed:
		return nil, chatmd.ErrStreamClosed
	}
	for {
		resp, err, ok := s.pull()
		if !ok {
			s.state = chatmd.StreamStateComplete
			return nil, io.EOF
		}
		if err != nil {
			s.state = chatmd.StreamStateError
			s.err = fmt.Errorf("gemini: %w", err)
			return nil, s.err
		}
		delta := textDelta(resp)
		if delta == "" {
			continue
		}
		s.state = chatmd.StreamStateStreaming
		s.text.WriteString(delta)
		return chatmd.EventTextDelta{Delta: delta}, nil
	}
}

// textDelta concatenates the non-thought text parts of a chunk.
func textDelta(resp *genai.GenerateContentResponse) string {
	var buf strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			buf.WriteString(part.Text)
		}
	}
	return buf.String()
}

func (s *stream) State() chatmd.StreamState {
	return s.state
}

func (s *stream) Text() (string, error) {
	if s.state == chatmd.StreamStateNew {
		return "", chatmd.ErrStreamNotReady
	}
	return s.text.String(), nil
}

func (s *stream) Close() error {
	if s.state != chatmd.StreamStateComplete && s.state != chatmd.StreamStateError {
		s.state = chatmd.StreamStateClosed
	}
	s.stop()
	return nil
}
