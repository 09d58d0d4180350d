// Package bubbletea provides a Bubble Tea TUI that displays a streamed
// markdown document as it grows.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwielgus/chatmd"
)

// SourceFunc produces the streamed text. The onEvent callback is called
// for each streaming event. The function blocks until the stream
// completes or the context is cancelled.
type SourceFunc func(ctx context.Context, onEvent func(chatmd.Event)) error

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. The context is used for graceful shutdown — when
// cancelled, the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// StreamEventMsg wraps a streaming event for delivery to the model.
type StreamEventMsg struct {
	Event chatmd.Event
}

// StreamDoneMsg signals that the source has completed.
type StreamDoneMsg struct {
	Err error
}
