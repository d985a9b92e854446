package cli

import (
	"time"

	"github.com/spf13/viper"

	"github.com/osintlab/crisisdash/internal/llm"
	"github.com/osintlab/crisisdash/internal/model"
	"github.com/osintlab/crisisdash/internal/pipeline"
	"github.com/osintlab/crisisdash/internal/store"
)

// buildConfig layers file/env settings from viper over the defaults, then
// applies command-level flag overrides.
func buildConfig(provider, modelName, storePath string, timeout time.Duration, noCache bool) *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.api_key"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetString("store.path"); v != "" {
		cfg.Store.Path = v
	}
	if viper.IsSet("store.max_history") {
		cfg.Store.MaxHistory = viper.GetInt("store.max_history")
	}
	if viper.IsSet("scan.requests_per_minute") {
		cfg.Scan.RequestsPerMinute = viper.GetFloat64("scan.requests_per_minute")
	}
	if v := viper.GetDuration("scan.cache_ttl"); v > 0 {
		cfg.Scan.CacheTTL = v
	}

	// Flags win over file and environment.
	if provider != "" {
		cfg.LLM.Provider = provider
	}
	if modelName != "" {
		cfg.LLM.Model = modelName
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}
	if timeout > 0 {
		cfg.LLM.Timeout = timeout
	}
	cfg.Scan.NoCache = noCache
	cfg.Output.Verbose = verbose

	return cfg
}

// openPipeline wires provider, store, and pipeline from a config.
func openPipeline(cfg *model.Config) (*pipeline.Pipeline, *store.Store, error) {
	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return nil, nil, err
	}
	st := store.Open(cfg.Store.Path, cfg.Store.MaxHistory)
	return pipeline.New(cfg, provider, st), st, nil
}
