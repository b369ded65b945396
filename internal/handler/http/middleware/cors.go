// Package middleware holds HTTP middleware that needs its own configuration.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is the whitelist of permitted origins.
	// A single "*" allows any origin.
	AllowedOrigins []string

	// AllowedMethods are announced on preflight responses.
	AllowedMethods []string

	// AllowedHeaders are announced on preflight responses.
	AllowedHeaders []string

	// AllowCredentials sets Access-Control-Allow-Credentials.
	AllowCredentials bool

	// MaxAge is the preflight cache duration in seconds.
	MaxAge int

	// Logger receives rejected origins at warn level. Nil disables logging.
	Logger *slog.Logger
}

// OriginValidator decides whether an Origin header is accepted.
type OriginValidator interface {
	IsAllowed(origin string) bool
}

// WhitelistValidator accepts origins from a fixed list, ignoring case and a
// trailing slash.
type WhitelistValidator struct {
	allowAny bool
	origins  map[string]struct{}
}

// NewWhitelistValidator creates a validator for origins.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	v := &WhitelistValidator{origins: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		o = normalizeOrigin(o)
		switch o {
		case "":
			continue
		case "*":
			v.allowAny = true
		default:
			v.origins[o] = struct{}{}
		}
	}
	return v
}

// IsAllowed implements OriginValidator.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	if v.allowAny {
		return true
	}
	_, ok := v.origins[origin]
	return ok
}

func normalizeOrigin(o string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(o)), "/")
}

// CORS returns middleware that answers cross-origin requests.
//
// Requests without an Origin header pass through untouched. Disallowed
// origins are served without CORS headers so the browser blocks the
// response. Preflight requests from allowed origins get 204 and never
// reach next.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	validator := NewWhitelistValidator(config.AllowedOrigins)
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")

			if !validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method))
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
