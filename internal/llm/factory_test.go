package llm

import (
	"strings"
	"testing"

	"github.com/osintlab/crisisdash/internal/model"
)

func TestNewProvider_Gemini(t *testing.T) {
	p, err := NewProvider(model.LLMConfig{Provider: "gemini", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "gemini" {
		t.Errorf("Expected gemini provider, got %q", p.Name())
	}
}

func TestNewProvider_DefaultsToGemini(t *testing.T) {
	p, err := NewProvider(model.LLMConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "gemini" {
		t.Errorf("Expected gemini as default provider, got %q", p.Name())
	}
}

func TestNewProvider_OpenAI(t *testing.T) {
	p, err := NewProvider(model.LLMConfig{Provider: "openai", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected openai provider, got %q", p.Name())
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(model.LLMConfig{Provider: "oracle", APIKey: "test-key"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "oracle") {
		t.Errorf("Expected provider name in error, got %v", err)
	}
}

func TestNewGeminiProvider_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	if _, err := NewProvider(model.LLMConfig{Provider: "gemini"}); err == nil {
		t.Fatal("Expected error when no API key is available")
	}
}

func TestNewGeminiProvider_DefaultModel(t *testing.T) {
	p, err := NewGeminiProvider("key", "", 0, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.model != "gemini-3-pro-preview" {
		t.Errorf("Expected default model, got %q", p.model)
	}
}
