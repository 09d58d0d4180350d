package bubbletea

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwielgus/chatmd"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the streaming markdown viewer. It
// owns one StreamBlock, starts the source on Init, and repaints the
// viewport once per received delta.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model
	// Spinner is shown in the status line while streaming. Exported for
	// test access.
	Spinner spinner.Model

	run    SourceFunc
	styles Styles
	block  *StreamBlock

	ctx     context.Context
	cancel  context.CancelFunc
	eventCh chan chatmd.Event
	doneCh  chan error

	running bool
	err     error
	ready   bool
}

// New creates a viewer Model for the given source function and theme.
func New(run SourceFunc, theme chatmd.Theme) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		Spinner: sp,
		run:     run,
		styles:  NewStyles(theme),
		block:   NewStreamBlock(theme),
		ctx:     ctx,
		cancel:  cancel,
		eventCh: make(chan chatmd.Event, 256),
		doneCh:  make(chan error, 1),
		running: true,
	}
}

// Running returns whether the source is still streaming.
func (m Model) Running() bool { return m.running }

// Err returns the stream error, if any.
func (m Model) Err() error { return m.err }

// Text returns the raw text received so far.
func (m Model) Text() string { return m.block.Text() }

// Init implements tea.Model: it starts the source and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		startSource(m.run, m.ctx, m.eventCh, m.doneCh),
		listenForEvent(m.eventCh, m.doneCh),
		m.Spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.String() == "q":
			m.cancel()
			return m, tea.Quit
		}

	case StreamEventMsg:
		if delta, ok := msg.Event.(chatmd.EventTextDelta); ok {
			m.block.Append(delta.Delta)
			m.Viewport.SetContent(m.block.View(m.Viewport.Width))
			m.Viewport.GotoBottom()
		}
		return m, listenForEvent(m.eventCh, m.doneCh)

	case StreamDoneMsg:
		m.running = false
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
		}
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Viewport always receives remaining messages for scrolling.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.Viewport.View() + "\n" + m.statusLine()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 2 // newline + status line
	vpHeight := msg.Height - statusHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	// Re-render at the new width.
	m.Viewport.SetContent(m.block.View(msg.Width))
	m.Viewport.GotoBottom()
	return m
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.running {
		return m.Spinner.View() + " " + m.styles.Muted.Render("Streaming... (q to quit)")
	}
	return m.styles.Muted.Render("q to quit")
}

// startSource runs the source in a goroutine and signals completion.
func startSource(run SourceFunc, ctx context.Context, eventCh chan<- chatmd.Event, doneCh chan<- error) tea.Cmd {
	return func() tea.Msg {
		err := run(ctx, func(e chatmd.Event) {
			select {
			case eventCh <- e:
			case <-ctx.Done():
			}
		})
		close(eventCh)
		doneCh <- err
		return nil
	}
}

// listenForEvent waits for the next event from the channel. When the
// channel closes, it reads the error from doneCh and returns
// StreamDoneMsg.
func listenForEvent(ch <-chan chatmd.Event, doneCh <-chan error) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			err := <-doneCh
			return StreamDoneMsg{Err: err}
		}
		return StreamEventMsg{Event: evt}
	}
}
