package gemini

import (
	"context"
	"fmt"

	"github.com/mwielgus/chatmd"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ chatmd.Provider = (*Client)(nil)

// Client streams chat completions from the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-3.1-pro-preview.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Stream sends a prompt to the Gemini API and returns a [chatmd.Stream]
// of text deltas. Cancellation flows through ctx.
func (c *Client) Stream(ctx context.Context, prompt string) (chatmd.Stream, error) {
	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: defaultMaxTokens,
	}

	iter := c.client.Models.GenerateContentStream(ctx, c.model, contents, config)
	return NewStreamFromIter(ctx, iter), nil
}
