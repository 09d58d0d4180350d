// Package gemini implements [chatmd.Stream] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating streamed
// response chunks into text delta events. Streaming uses the SDK's
// iter.Seq2 iterator, wrapped into the pull-based [chatmd.Stream]
// interface. Only text parts are surfaced: thought parts are skipped,
// since the stream feeds a markdown display, not an agent loop.
package gemini

const (
	defaultModel     = "gemini-3.1-pro-preview"
	defaultMaxTokens = 65536
)
