package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/osintlab/crisisdash/internal/prompt"
)

// GeminiProvider implements Provider using the Google Gen AI SDK. This is
// the primary backend: it supports live web-search grounding, which the
// structured-report pipeline depends on for citations. A fresh client is
// created per call so providers stay stateless.
type GeminiProvider struct {
	apiKey    string
	model     string
	timeout   time.Duration
	maxTokens int
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(apiKey, model string, timeout time.Duration, maxTokens int) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = "gemini-3-pro-preview"
	}
	return &GeminiProvider{apiKey: apiKey, model: model, timeout: timeout, maxTokens: maxTokens}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

// Generate performs one structured round-trip, collecting grounding
// citations from the candidate metadata.
func (p *GeminiProvider) Generate(ctx context.Context, req prompt.Request) (*GenerateResult, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	client, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(req.Contents), p.generationConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini: response contained no text content")
	}
	return &GenerateResult{Text: text, Citations: collectCitations(resp)}, nil
}

// StreamChat streams one conversational turn. The prior history is replayed
// into the SDK chat session so providers stay stateless.
func (p *GeminiProvider) StreamChat(ctx context.Context, system string, history []Message, userText string) (<-chan Chunk, error) {
	client, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
	prior := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		prior = append(prior, &genai.Content{
			Role:  msg.Role,
			Parts: []*genai.Part{{Text: msg.Text}},
		})
	}

	cs, err := client.Chats.Create(ctx, p.model, cfg, prior)
	if err != nil {
		return nil, fmt.Errorf("gemini: chat session: %w", err)
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		for resp, err := range cs.SendMessageStream(ctx, genai.Part{Text: userText}) {
			if err != nil {
				select {
				case out <- Chunk{Err: fmt.Errorf("gemini: stream: %w", err)}:
				case <-ctx.Done():
				}
				return
			}
			if text := collectText(resp); text != "" {
				select {
				case out <- Chunk{Text: text}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (p *GeminiProvider) newClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: client: %w", err)
	}
	return client, nil
}

func (p *GeminiProvider) generationConfig(req prompt.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.System}}},
		Temperature:       genai.Ptr(req.Temperature),
	}
	if p.maxTokens > 0 {
		cfg.MaxOutputTokens = int32(p.maxTokens)
	}
	if req.UseSearch {
		// The API rejects JSON response mode combined with the search tool;
		// the schema text in the instruction governs the reply shape instead.
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	} else {
		cfg.ResponseMIMEType = "application/json"
	}
	return cfg
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}

// collectCitations reads web grounding chunks: the out-of-band title + URI
// references attached by the search tool.
func collectCitations(resp *genai.GenerateContentResponse) []Citation {
	var out []Citation
	for _, cand := range resp.Candidates {
		if cand == nil || cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			out = append(out, Citation{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}
	return out
}
