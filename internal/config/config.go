package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY is not set")

// Config holds all process configuration. It is built once at startup and
// injected; nothing reads the environment after Load returns.
type Config struct {
	ListenAddr string

	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string
	UpstreamTimeout   time.Duration
}

// Load reads configuration from the environment. The provider API key is the
// only required value: without it every upstream call would fail, so the
// process refuses to start.
func Load() (*Config, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &Config{
		ListenAddr:        getenvDefault("LISTEN_ADDR", ":8080"),
		OpenRouterAPIKey:  apiKey,
		OpenRouterBaseURL: os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:   os.Getenv("OPENROUTER_MODEL"),
		UpstreamTimeout:   30 * time.Second,
	}

	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", raw, err)
		}
		cfg.UpstreamTimeout = d
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
