// Package llm handles external model communication: structured generation
// with optional web-search grounding, and chunked chat streaming.
package llm

import (
	"context"

	"github.com/osintlab/crisisdash/internal/prompt"
)

// Message roles. The Gemini wire names are used internally; providers map
// them to their own conventions.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one conversational turn.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Citation is an out-of-band grounding reference attached to a generation.
type Citation struct {
	Title string
	URI   string
}

// GenerateResult is the outcome of one structured generation round-trip.
type GenerateResult struct {
	// Text is the raw model output, expected to be JSON per the request.
	Text string

	// Citations are grounding references, when the provider supports them.
	Citations []Citation
}

// Chunk is one increment of a streamed chat response. A Chunk with Err set
// is terminal: no further chunks follow and the channel is closed.
type Chunk struct {
	Text string
	Err  error
}

// Provider is the interface for external model backends.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Generate performs one blocking structured-generation round-trip.
	Generate(ctx context.Context, req prompt.Request) (*GenerateResult, error)

	// StreamChat sends one user turn against a system context and prior
	// history, returning a channel of incremental text chunks. The channel
	// is closed after the final chunk; a mid-stream failure surfaces as a
	// terminal error chunk rather than a silent truncation.
	StreamChat(ctx context.Context, system string, history []Message, userText string) (<-chan Chunk, error)
}
