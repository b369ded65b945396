package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAgent string

func (s stubAgent) Provider() string { return string(s) }

func serveHealth(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    *HealthHandler
		wantCode   int
		wantStatus string
		wantNews   string
		wantAgent  string
	}{
		{
			name:       "configured without agent",
			handler:    &HealthHandler{Version: "1.2.3", NewsKeyPresent: true, NewsSourcesCount: 5},
			wantCode:   http.StatusOK,
			wantStatus: StatusHealthy,
			wantNews:   StatusHealthy,
			wantAgent:  StatusHealthy,
		},
		{
			name:       "missing news key",
			handler:    &HealthHandler{Version: "dev"},
			wantCode:   http.StatusOK,
			wantStatus: StatusDegraded,
			wantNews:   StatusDegraded,
			wantAgent:  StatusHealthy,
		},
		{
			name: "agent requested but unavailable",
			handler: &HealthHandler{
				NewsKeyPresent: true,
				AgentRequested: "openai",
				Agent:          stubAgent("none"),
			},
			wantCode:   http.StatusOK,
			wantStatus: StatusDegraded,
			wantNews:   StatusHealthy,
			wantAgent:  StatusDegraded,
		},
		{
			name: "agent active",
			handler: &HealthHandler{
				NewsKeyPresent: true,
				AgentRequested: "claude",
				Agent:          stubAgent("claude"),
			},
			wantCode:   http.StatusOK,
			wantStatus: StatusHealthy,
			wantNews:   StatusHealthy,
			wantAgent:  StatusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serveHealth(t, tt.handler)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantNews, body.Checks["news_api"].Status)
			assert.Equal(t, tt.wantAgent, body.Checks["agent"].Status)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}

func TestHealthHandler_ReportsVersion(t *testing.T) {
	_, body := serveHealth(t, &HealthHandler{Version: "v0.4.0", NewsKeyPresent: true})
	assert.Equal(t, "v0.4.0", body.Version)
}

func TestReadyHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{NewsKeyPresent: true}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", rec.Body.String())

	rec = httptest.NewRecorder()
	(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LiveHandler{}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
}
