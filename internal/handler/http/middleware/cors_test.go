package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://News.Example.com/"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestWhitelistValidator(t *testing.T) {
	v := NewWhitelistValidator([]string{"http://localhost:3000", " https://Example.com/ ", ""})

	assert.True(t, v.IsAllowed("http://localhost:3000"))
	assert.True(t, v.IsAllowed("https://example.com"))
	assert.True(t, v.IsAllowed("HTTPS://EXAMPLE.COM/"))
	assert.False(t, v.IsAllowed("http://localhost:3001"))
	assert.False(t, v.IsAllowed(""))

	wildcard := NewWhitelistValidator([]string{"*"})
	assert.True(t, wildcard.IsAllowed("https://anything.test"))
}

func TestCORS_NoOrigin(t *testing.T) {
	called := false
	h := CORS(testCORSConfig())(okHandler(&called))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/news", nil))

	assert.True(t, called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	called := false
	h := CORS(testCORSConfig())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	called := false
	h := CORS(testCORSConfig())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	req.Header.Set("Origin", "https://evil.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS(testCORSConfig())(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/news", nil)
	req.Header.Set("Origin", "https://news.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "GET, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-Request-ID", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rr.Header().Get("Access-Control-Max-Age"))
}

func TestLoadCORSConfig_Defaults(t *testing.T) {
	for _, k := range []string{"CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS",
		"CORS_ALLOW_CREDENTIALS", "CORS_MAX_AGE"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadCORSConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{DefaultAllowedOrigin}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.AllowedMethods)
	assert.True(t, cfg.AllowCredentials)
	assert.Equal(t, 86400, cfg.MaxAge)
}

func TestLoadCORSConfig_FromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CORS_ALLOWED_METHODS", "get,head")
	t.Setenv("CORS_MAX_AGE", "60")

	cfg, err := LoadCORSConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"GET", "HEAD"}, cfg.AllowedMethods)
	assert.Equal(t, 60, cfg.MaxAge)
}

func TestCORSConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CORSConfig)
		wantErr string
	}{
		{"valid", func(c *CORSConfig) {}, ""},
		{"no origins", func(c *CORSConfig) { c.AllowedOrigins = nil }, "at least one origin"},
		{"bad scheme", func(c *CORSConfig) { c.AllowedOrigins = []string{"ftp://x.test"} }, "http or https"},
		{"path", func(c *CORSConfig) { c.AllowedOrigins = []string{"https://x.test/app"} }, "must not include path"},
		{"wildcard with credentials", func(c *CORSConfig) { c.AllowedOrigins = []string{"*"} }, "wildcard"},
		{"bad method", func(c *CORSConfig) { c.AllowedMethods = []string{"TRACE"} }, "invalid HTTP method"},
		{"negative max age", func(c *CORSConfig) { c.MaxAge = -1 }, "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testCORSConfig()
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
