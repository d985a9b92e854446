package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the full runtime configuration.
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Store  StoreConfig  `yaml:"store"`
	Scan   ScanConfig   `yaml:"scan"`
	Output OutputConfig `yaml:"output"`
}

// LLMConfig configures the external model provider.
type LLMConfig struct {
	// Provider name: "gemini" or "openai"
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for the provider (usually sourced from environment)
	APIKey string `yaml:"api_key"`

	// BaseURL for custom endpoints
	BaseURL string `yaml:"base_url"`

	// Timeout for one model round-trip
	Timeout time.Duration `yaml:"timeout"`

	// MaxTokens limits response length
	MaxTokens int `yaml:"max_tokens"`
}

// StoreConfig configures report persistence.
type StoreConfig struct {
	// Path to the serialized report history file
	Path string `yaml:"path"`

	// MaxHistory caps retained reports per kind; oldest are pruned on append.
	// Zero means unbounded.
	MaxHistory int `yaml:"max_history"`
}

// ScanConfig configures the analysis request pipeline. The 7-day scoring
// window is part of the data contract, not configuration.
type ScanConfig struct {
	// CacheTTL is how long a scan result may be served from cache
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// RequestsPerMinute rate-limits outbound model calls
	RequestsPerMinute float64 `yaml:"requests_per_minute"`

	// NoCache forces a fresh model round-trip
	NoCache bool `yaml:"no_cache"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		LLM: LLMConfig{
			Provider:  "gemini",
			Model:     "gemini-3-pro-preview",
			Timeout:   2 * time.Minute,
			MaxTokens: 8192,
		},
		Store: StoreConfig{
			Path:       filepath.Join(home, ".crisisdash", "reports.json"),
			MaxHistory: 200,
		},
		Scan: ScanConfig{
			CacheTTL:          30 * time.Minute,
			RequestsPerMinute: 6,
		},
	}
}
