package llm

import (
	"fmt"
	"os"
	"strings"

	"github.com/osintlab/crisisdash/internal/model"
)

// NewProvider creates a provider from configuration. When the config carries
// no API key the conventional environment variable for the provider is used.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "google", "":
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		return NewGeminiProvider(apiKey, cfg.Model, cfg.Timeout, cfg.MaxTokens)

	case "openai":
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		return NewOpenAIProvider(apiKey, cfg.Model, cfg.BaseURL, cfg.Timeout, cfg.MaxTokens)

	default:
		return nil, fmt.Errorf("llm: unknown provider %q (supported: gemini, openai)", cfg.Provider)
	}
}
