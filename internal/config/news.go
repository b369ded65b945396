// Package config holds the typed configuration loaders of the service.
// Each loader reads environment variables through pkg/config helpers, applies
// defaults and validates the result before anything is wired.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	envconfig "intelligent-news/pkg/config"
)

// DefaultSources are the publishers queried when no category is requested.
var DefaultSources = []string{"bbc-news", "cnn", "reuters", "al-jazeera-english", "the-guardian-uk"}

// DefaultBlockedSources lists aggregators whose entries are dropped as low quality.
var DefaultBlockedSources = []string{"Google News", "Yahoo Entertainment", "[Removed]"}

// NewsConfig holds configuration for talking to the news API.
type NewsConfig struct {
	// APIKey authenticates against the news API. An empty key is not a
	// startup error: every aggregation call reports it as an error payload.
	APIKey string

	// BaseURL of the news API, without the endpoint path.
	// Default: https://newsapi.org/v2
	BaseURL string

	// Timeout bounds each outbound query. Default: 10s
	Timeout time.Duration

	// PageSize is sent as pageSize on every query. Range 1-100. Default: 20
	PageSize int

	// Sources are queried one by one when the caller gives no category.
	Sources []string

	// BlockedSources are matched case-insensitively against source name and id.
	BlockedSources []string

	// DefaultCountry is added to category queries when the request has none.
	DefaultCountry string

	// RatePerSecond enables a client-side token bucket when > 0.
	RatePerSecond float64

	// Burst is the token bucket size. Default: 5
	Burst int
}

// LoadNewsConfig loads the news API configuration from environment variables.
// When NEWS_SOURCES_FILE is set, the YAML file overrides the source lists.
//
// Environment variables:
//   - NEWS_API_KEY
//   - NEWS_API_BASE_URL (default: https://newsapi.org/v2)
//   - NEWS_API_TIMEOUT (default: 10s)
//   - NEWS_API_PAGE_SIZE (default: 20)
//   - NEWS_SOURCES, NEWS_BLOCKED_SOURCES (comma separated)
//   - NEWS_DEFAULT_COUNTRY
//   - NEWS_SOURCES_FILE
//   - NEWS_API_RATE_PER_SEC (default: 0, disabled), NEWS_API_BURST (default: 5)
func LoadNewsConfig() (*NewsConfig, error) {
	cfg := &NewsConfig{
		APIKey:         envconfig.GetEnvString("NEWS_API_KEY", ""),
		BaseURL:        envconfig.GetEnvString("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
		Timeout:        envconfig.GetEnvDuration("NEWS_API_TIMEOUT", 10*time.Second),
		PageSize:       envconfig.GetEnvInt("NEWS_API_PAGE_SIZE", 20),
		Sources:        envconfig.GetEnvStringList("NEWS_SOURCES", DefaultSources),
		BlockedSources: envconfig.GetEnvStringList("NEWS_BLOCKED_SOURCES", DefaultBlockedSources),
		DefaultCountry: envconfig.GetEnvString("NEWS_DEFAULT_COUNTRY", ""),
		RatePerSecond:  envconfig.GetEnvFloat("NEWS_API_RATE_PER_SEC", 0),
		Burst:          envconfig.GetEnvInt("NEWS_API_BURST", 5),
	}

	if path := envconfig.GetEnvString("NEWS_SOURCES_FILE", ""); path != "" {
		file, err := LoadSourcesFile(path)
		if err != nil {
			return nil, fmt.Errorf("load NEWS_SOURCES_FILE: %w", err)
		}
		file.Apply(cfg)
		slog.Info("news sources loaded from file",
			slog.String("path", path),
			slog.Int("sources", len(cfg.Sources)),
			slog.Int("blocked_sources", len(cfg.BlockedSources)))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid news configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration correctness.
func (c *NewsConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("NEWS_API_BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL)
	}

	if err := envconfig.ValidateDurationRange(c.Timeout, 100*time.Millisecond, 2*time.Minute); err != nil {
		return fmt.Errorf("NEWS_API_TIMEOUT: %w", err)
	}

	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("NEWS_API_PAGE_SIZE must be between 1 and 100, got %d", c.PageSize)
	}

	if c.RatePerSecond < 0 {
		return fmt.Errorf("NEWS_API_RATE_PER_SEC cannot be negative, got %v", c.RatePerSecond)
	}

	if c.RatePerSecond > 0 && c.Burst < 1 {
		return fmt.Errorf("NEWS_API_BURST must be positive when rate limiting is enabled, got %d", c.Burst)
	}

	if len(c.DefaultCountry) != 0 && len(c.DefaultCountry) != 2 {
		return fmt.Errorf("NEWS_DEFAULT_COUNTRY must be a two-letter country code, got %q", c.DefaultCountry)
	}

	return nil
}

// HasAPIKey reports whether an API key is configured.
func (c *NewsConfig) HasAPIKey() bool {
	return c.APIKey != ""
}
