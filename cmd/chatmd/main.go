// Command chatmd renders chat-style markdown to the terminal.
//
// Usage:
//
//	chatmd [flags] [glob ...]
//
// With file arguments (doublestar globs are supported) or stdin, the
// document is rendered once. With -stream, the input is replayed
// through the streaming viewer in chunks, re-parsing on every delta the
// way a chat client renders a model response. With -prompt, the
// response is streamed live from an LLM provider.
//
// Flags:
//
//	-w int            Output width (default 80)
//	-engine string    One-shot renderer: ansi, goldmark (default ansi)
//	-stream           Replay input through the streaming viewer
//	-chunk int        Replay chunk size in bytes (default 24)
//	-prompt string    Prompt to stream from a live provider
//	-provider string  anthropic or gemini (default: auto-detect from env)
//	-model string     Model ID (default: provider default)
//	-api-key string   API key (overrides the provider's env var)
//
// Live mode reads ANTHROPIC_API_KEY or GEMINI_API_KEY from the
// environment when -api-key is not given.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mwielgus/chatmd"
	"github.com/mwielgus/chatmd/ansi"
	bt "github.com/mwielgus/chatmd/bubbletea"
	"github.com/mwielgus/chatmd/goldmark"
	"github.com/mwielgus/chatmd/mock"
	"github.com/mwielgus/chatmd/parse"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chatmd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		width     = flag.Int("w", 80, "Output width")
		engine    = flag.String("engine", "ansi", "One-shot renderer: ansi, goldmark")
		stream    = flag.Bool("stream", false, "Replay input through the streaming viewer")
		chunkSize = flag.Int("chunk", 24, "Replay chunk size in bytes")
		prompt    = flag.String("prompt", "", "Prompt to stream from a live provider")
		provider  = flag.String("provider", "", "Provider: anthropic or gemini (default: auto-detect)")
		model     = flag.String("model", "", "Model ID (default: provider default)")
		apiKey    = flag.String("api-key", "", "API key (overrides the provider's env var)")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	theme := chatmd.DefaultTheme()

	if *prompt != "" {
		p, err := resolveProvider(ctx, *provider, *model, *apiKey,
			os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("GEMINI_API_KEY"))
		if err != nil {
			return err
		}
		return runLive(ctx, p, *prompt, theme)
	}

	text, err := readInput(flag.Args())
	if err != nil {
		return err
	}

	if *stream {
		source := func(ctx context.Context, onEvent func(chatmd.Event)) error {
			s := mock.Script(chunks(text, *chunkSize)...)
			defer s.Close()
			return chatmd.Pump(ctx, s, onEvent)
		}
		return bt.Run(ctx, bt.New(source, theme))
	}

	rendered, err := renderOnce(text, *engine, *width, theme)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}

// runLive streams a provider response through the viewer.
func runLive(ctx context.Context, provider chatmd.Provider, prompt string, theme chatmd.Theme) error {
	source := func(ctx context.Context, onEvent func(chatmd.Event)) error {
		s, err := provider.Stream(ctx, prompt)
		if err != nil {
			return err
		}
		defer s.Close()
		return chatmd.Pump(ctx, s, onEvent)
	}
	return bt.Run(ctx, bt.New(source, theme))
}

// renderOnce renders a complete document with the selected engine.
func renderOnce(text, engine string, width int, theme chatmd.Theme) (string, error) {
	switch engine {
	case "ansi":
		return ansi.Render(parse.Parse(text), width, theme), nil
	case "goldmark":
		return goldmark.Render(text, width, theme), nil
	default:
		return "", fmt.Errorf("unknown engine %q (want ansi or goldmark)", engine)
	}
}

// readInput concatenates the files matched by the argument globs, or
// reads stdin when no arguments are given. Multiple files are joined
// with a blank line so they render as separate blocks.
func readInput(patterns []string) (string, error) {
	if len(patterns) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	paths, err := expandGlobs(patterns)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("no files match %s", strings.Join(patterns, " "))
	}

	var parts []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		parts = append(parts, strings.TrimRight(string(data), "\n"))
	}
	return strings.Join(parts, "\n\n"), nil
}
