package mock

import (
	"io"
	"strings"

	"github.com/mwielgus/chatmd"
)

// Interface compliance check.
var _ chatmd.Stream = (*scriptStream)(nil)

// Script returns a Stream that replays the given chunks as text deltas
// in order and then reports io.EOF. It backs the CLI's replay mode and
// tests that need a deterministic streaming source.
func Script(chunks ...string) chatmd.Stream {
	return &scriptStream{chunks: chunks}
}

type scriptStream struct {
	chunks []string
	pos    int
	state  chatmd.StreamState
	text   strings.Builder
}

func (s *scriptStream) Next() (chatmd.Event, error) {
	switch s.state {
	case chatmd.StreamStateClosed:
		return nil, chatmd.ErrStreamClosed
	case chatmd.StreamStateComplete:
		return nil, io.EOF
	}
	if s.pos >= len(s.chunks) {
		s.state = chatmd.StreamStateComplete
		return nil, io.EOF
	}
	delta := s.chunks[s.pos]
	s.pos++
	s.state = chatmd.StreamStateStreaming
	s.text.WriteString(delta)
	return chatmd.EventTextDelta{Delta: delta}, nil
}

func (s *scriptStream) State() chatmd.StreamState {
	return s.state
}

func (s *scriptStream) Text() (string, error) {
	if s.state == chatmd.StreamStateNew {
		return "", chatmd.ErrStreamNotReady
	}
	return s.text.String(), nil
}

func (s *scriptStream) Close() error {
	if s.state != chatmd.StreamStateComplete && s.state != chatmd.StreamStateError {
		s.state = chatmd.StreamStateClosed
	}
	return nil
}
