package anthropic

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mwielgus/chatmd"
)

// stream implements [chatmd.Stream] by parsing SSE events from an HTTP
// response body.
type stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	ctx     context.Context
	state   chatmd.StreamState
	text    strings.Builder
	err     error // terminal error, if any
}

// Interface compliance check.
var _ chatmd.Stream = (*stream)(nil)

func newStream(ctx context.Context, body io.ReadCloser) *stream {
	return &stream{
		body:    body,
		scanner: bufio.NewScanner(body),
		ctx:     ctx,
		state:   chatmd.StreamStateNew,
	}
}

// Next reads the next text delta from the SSE stream.
// Returns io.EOF when the stream completes normally.
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
		eventType, data, err := s.readSSEEvent()
		if err != nil {
			s.terminate(err)
			return nil, s.err
		}

		s.state = chatmd.StreamStateStreaming

		evt, err := s.processEvent(eventType, data)
		if err != nil {
			s.terminate(err)
			return nil, s.err
		}

		// processEvent sets StreamStateComplete on message_stop.
		if s.state == chatmd.StreamStateComplete {
			return nil, io.EOF
		}

		if evt != nil {
			return evt, nil
		}
		// Non-text event (ping, message_start, thinking, etc.) - keep reading.
	}
}

// State returns the current stream state.
func (s *stream) State() chatmd.StreamState {
	return s.state
}

// Text returns the text accumulated so far.
func (s *stream) Text() (string, error) {
	if s.state == chatmd.StreamStateNew {
		return "", chatmd.ErrStreamNotReady
	}
	return s.text.String(), nil
}

// Close closes the underlying HTTP response body.
func (s *stream) Close() error {
	if s.state != chatmd.StreamStateComplete && s.state != chatmd.StreamStateError {
		s.state = chatmd.StreamStateClosed
	}
	return s.body.Close()
}

// terminate records a terminal error and sets the error state.
func (s *stream) terminate(err error) {
	s.state = chatmd.StreamStateError
	if err == io.EOF {
		// Normal completion via message_stop sets StreamStateComplete
		// before we reach here. Raw EOF means the stream was cut off.
		s.err = fmt.Errorf("anthropic: unexpected end of stream")
		return
	}
	if s.ctx.Err() != nil {
		s.err = s.ctx.Err()
		return
	}
	s.err = err
}

// readSSEEvent reads lines until a complete SSE event is assembled.
// Returns the event type and the data payload.
func (s *stream) readSSEEvent() (string, string, error) {
	var eventType string
	var dataBuf strings.Builder

	for s.scanner.Scan() {
		line := s.scanner.Text()

		if line == "" {
			// Empty line signals end of event.
			if dataBuf.Len() > 0 {
				return eventType, dataBuf.String(), nil
			}
			// Empty event, keep reading.
			continue
		}

		if strings.HasPrefix(line, "event: ") {
			eventType = strings.TrimPrefix(line, "event: ")
		} else if strings.HasPrefix(line, "data: ") {
			if dataBuf.Len() > 0 {
				dataBuf.WriteByte('\n')
			}
			dataBuf.WriteString(strings.TrimPrefix(line, "data: "))
		}
		// Ignore comments (lines starting with ':') and unknown fields.
	}

	if err := s.scanner.Err(); err != nil {
		return "", "", fmt.Errorf("anthropic: %w", err)
	}

	// Scanner exhausted without error = EOF.
	if dataBuf.Len() > 0 {
		return eventType, dataBuf.String(), nil
	}
	return "", "", io.EOF
}

// processEvent maps an SSE event to a [chatmd.Event]. Returns a nil
// event for everything that carries no text delta.
func (s *stream) processEvent(eventType, data string) (chatmd.Event, error) {
	switch eventType {
	case "content_block_delta":
		return s.handleContentBlockDelta(data)
	case "message_stop":
		s.state = chatmd.StreamStateComplete
		return nil, nil
	case "error":
		return nil, s.handleError(data)
	default:
		// message_start, content_block_start/stop, message_delta, ping
		// and unknown event types carry no text.
		return nil, nil
	}
}

func (s *stream) handleContentBlockDelta(data string) (chatmd.Event, error) {
	var evt sseContentBlockDelta
	if err := json.Unmarshal([]byte(data), &evt); err != nil {
		return nil, fmt.Errorf("anthropic: failed to parse content_block_delta: %w", err)
	}

	// thinking_delta, input_json_delta and signature_delta are skipped.
	if evt.Delta.Type != "text_delta" {
		return nil, nil
	}

	s.text.WriteString(evt.Delta.Text)
	return chatmd.EventTextDelta{Delta: evt.Delta.Text}, nil
}

func (s *stream) handleError(data string) error {
	var evt sseError
	if err := json.Unmarshal([]byte(data), &evt); err != nil {
		return fmt.Errorf("anthropic: failed to parse error event: %w", err)
	}
	return fmt.Errorf("anthropic: %s: %s", evt.Error.Type, evt.Error.Message)
}
