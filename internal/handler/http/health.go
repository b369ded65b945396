package http

import (
	"net/http"
	"time"

	"intelligent-news/internal/handler/http/respond"
)

// Health statuses.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response of /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// AgentStatus reports the state of the language-model agent.
type AgentStatus interface {
	// Provider returns the active planner name, or "none".
	Provider() string
}

// HealthHandler reports whether the service can answer /news meaningfully.
//
// A missing news API key makes the service degraded rather than unhealthy:
// the process is up and answers every request with an error payload.
type HealthHandler struct {
	Version          string
	NewsKeyPresent   bool
	AgentRequested   string
	Agent            AgentStatus
	NewsSourcesCount int
}

// ServeHTTP writes the health report. It answers 200 unless a check is unhealthy.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{
		"news_api": h.checkNewsAPI(),
		"agent":    h.checkAgent(),
	}

	status := StatusHealthy
	for _, c := range checks {
		switch c.Status {
		case StatusUnhealthy:
			status = StatusUnhealthy
		case StatusDegraded:
			if status == StatusHealthy {
				status = StatusDegraded
			}
		}
	}

	code := http.StatusOK
	if status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkNewsAPI() CheckStatus {
	details := map[string]any{"sources": h.NewsSourcesCount}
	if !h.NewsKeyPresent {
		return CheckStatus{Status: StatusDegraded, Message: "NEWS_API_KEY not configured", Details: details}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// checkAgent compares the requested provider with the one actually running.
// Falling back to direct fetching is degraded, never unhealthy.
func (h *HealthHandler) checkAgent() CheckStatus {
	active := "none"
	if h.Agent != nil {
		active = h.Agent.Provider()
	}
	requested := h.AgentRequested
	if requested == "" {
		requested = "none"
	}

	details := map[string]any{"requested": requested, "active": active}
	if requested != active {
		return CheckStatus{Status: StatusDegraded, Message: "agent unavailable, fetching directly", Details: details}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// ReadyHandler answers readiness probes. The service is ready once it has a
// news API key; without one every /news call would fail.
type ReadyHandler struct {
	NewsKeyPresent bool
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if !h.NewsKeyPresent {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("news api key not configured"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler answers liveness probes.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
