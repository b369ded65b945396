package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearNewsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NEWS_API_KEY", "NEWS_API_BASE_URL", "NEWS_API_TIMEOUT", "NEWS_API_PAGE_SIZE",
		"NEWS_SOURCES", "NEWS_BLOCKED_SOURCES", "NEWS_DEFAULT_COUNTRY", "NEWS_SOURCES_FILE",
		"NEWS_API_RATE_PER_SEC", "NEWS_API_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadNewsConfig_Defaults(t *testing.T) {
	clearNewsEnv(t)

	cfg, err := LoadNewsConfig()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.APIKey)
	assert.False(t, cfg.HasAPIKey())
	assert.Equal(t, "https://newsapi.org/v2", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, DefaultSources, cfg.Sources)
	assert.Equal(t, DefaultBlockedSources, cfg.BlockedSources)
	assert.Equal(t, "", cfg.DefaultCountry)
	assert.Zero(t, cfg.RatePerSecond)
}

func TestLoadNewsConfig_FromEnv(t *testing.T) {
	clearNewsEnv(t)
	t.Setenv("NEWS_API_KEY", "k-123")
	t.Setenv("NEWS_API_BASE_URL", "http://localhost:9999/v2")
	t.Setenv("NEWS_API_TIMEOUT", "3s")
	t.Setenv("NEWS_API_PAGE_SIZE", "50")
	t.Setenv("NEWS_SOURCES", "cnn,reuters")
	t.Setenv("NEWS_DEFAULT_COUNTRY", "us")
	t.Setenv("NEWS_API_RATE_PER_SEC", "2")

	cfg, err := LoadNewsConfig()
	require.NoError(t, err)

	assert.True(t, cfg.HasAPIKey())
	assert.Equal(t, "http://localhost:9999/v2", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, []string{"cnn", "reuters"}, cfg.Sources)
	assert.Equal(t, "us", cfg.DefaultCountry)
	assert.InDelta(t, 2.0, cfg.RatePerSecond, 0.001)
	assert.Equal(t, 5, cfg.Burst)
}

func TestNewsConfig_Validate(t *testing.T) {
	base := func() NewsConfig {
		return NewsConfig{
			BaseURL:  "https://newsapi.org/v2",
			Timeout:  10 * time.Second,
			PageSize: 20,
			Burst:    5,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*NewsConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*NewsConfig) {}},
		{name: "relative base url", mutate: func(c *NewsConfig) { c.BaseURL = "/v2" }, wantErr: "NEWS_API_BASE_URL"},
		{name: "ftp base url", mutate: func(c *NewsConfig) { c.BaseURL = "ftp://newsapi.org" }, wantErr: "NEWS_API_BASE_URL"},
		{name: "zero timeout", mutate: func(c *NewsConfig) { c.Timeout = 0 }, wantErr: "NEWS_API_TIMEOUT"},
		{name: "page size too large", mutate: func(c *NewsConfig) { c.PageSize = 101 }, wantErr: "NEWS_API_PAGE_SIZE"},
		{name: "negative rate", mutate: func(c *NewsConfig) { c.RatePerSecond = -1 }, wantErr: "NEWS_API_RATE_PER_SEC"},
		{name: "rate without burst", mutate: func(c *NewsConfig) { c.RatePerSecond = 1; c.Burst = 0 }, wantErr: "NEWS_API_BURST"},
		{name: "bad country", mutate: func(c *NewsConfig) { c.DefaultCountry = "usa" }, wantErr: "NEWS_DEFAULT_COUNTRY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadNewsConfig_SourcesFile(t *testing.T) {
	clearNewsEnv(t)

	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := `news:
  sources:
    - bbc-news
    - the-verge
  blocked_sources:
    - Some Aggregator
  default_country: gb
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("NEWS_SOURCES_FILE", path)

	cfg, err := LoadNewsConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"bbc-news", "the-verge"}, cfg.Sources)
	assert.Equal(t, []string{"Some Aggregator"}, cfg.BlockedSources)
	assert.Equal(t, "gb", cfg.DefaultCountry)
}

func TestLoadNewsConfig_SourcesFileMissing(t *testing.T) {
	clearNewsEnv(t)
	t.Setenv("NEWS_SOURCES_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadNewsConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEWS_SOURCES_FILE")
}

func TestLoadSourcesFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(*testing.T, *SourcesFile)
	}{
		{
			name: "partial file keeps other fields empty",
			yaml: "news:\n  sources: [cnn]\n",
			check: func(t *testing.T, f *SourcesFile) {
				assert.Equal(t, []string{"cnn"}, f.News.Sources)
				assert.Empty(t, f.News.BlockedSources)
			},
		},
		{
			name:    "invalid yaml",
			yaml:    "news: [unclosed",
			wantErr: true,
		},
		{
			name:    "empty source entry",
			yaml:    "news:\n  sources: [cnn, \"\"]\n",
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "f"+string(rune('a'+i))+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			f, err := LoadSourcesFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, f)
		})
	}
}
