// Package respond writes JSON responses and keeps secrets out of error
// messages that reach clients or logs.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes {"error": <sanitized message>}.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": SanitizeError(err)})
}

// clientSafe lists fragments of messages that may be shown to clients verbatim.
var clientSafe = []string{
	"required",
	"invalid",
	"not found",
	"not set",
	"must be",
	"unsupported",
}

// SafeError returns client errors as-is and replaces anything else, including
// every 5xx, with a generic message. The original error is logged sanitized.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code < 500 && isClientSafe(err.Error()) {
		JSON(w, code, map[string]string{"error": err.Error()})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}

func isClientSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, frag := range clientSafe {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}
