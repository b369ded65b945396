package middleware

import (
	"fmt"
	"net/url"
	"strings"

	envconfig "intelligent-news/pkg/config"
)

// DefaultAllowedOrigin is the local frontend dev server.
const DefaultAllowedOrigin = "http://localhost:3000"

var validMethods = map[string]bool{
	"GET": true, "HEAD": true, "POST": true, "PUT": true,
	"DELETE": true, "PATCH": true, "OPTIONS": true,
}

// LoadCORSConfig loads CORS configuration from environment variables.
//
// Environment variables:
//   - CORS_ALLOWED_ORIGINS (default: http://localhost:3000)
//   - CORS_ALLOWED_METHODS (default: GET, OPTIONS)
//   - CORS_ALLOWED_HEADERS (default: Content-Type, X-Request-ID)
//   - CORS_ALLOW_CREDENTIALS (default: true)
//   - CORS_MAX_AGE (default: 86400)
func LoadCORSConfig() (*CORSConfig, error) {
	cfg := &CORSConfig{
		AllowedOrigins:   envconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{DefaultAllowedOrigin}),
		AllowedMethods:   envconfig.GetEnvStringList("CORS_ALLOWED_METHODS", []string{"GET", "OPTIONS"}),
		AllowedHeaders:   envconfig.GetEnvStringList("CORS_ALLOWED_HEADERS", []string{"Content-Type", "X-Request-ID"}),
		AllowCredentials: envconfig.GetEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           envconfig.GetEnvInt("CORS_MAX_AGE", 86400),
	}

	for i, m := range cfg.AllowedMethods {
		cfg.AllowedMethods[i] = strings.ToUpper(m)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CORS configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *CORSConfig) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one origin must be configured in CORS_ALLOWED_ORIGINS")
	}

	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			if c.AllowCredentials {
				return fmt.Errorf("wildcard origin cannot be combined with credentials")
			}
			continue
		}
		if err := validateOrigin(origin); err != nil {
			return err
		}
	}

	for _, m := range c.AllowedMethods {
		if !validMethods[m] {
			return fmt.Errorf("invalid HTTP method %q in CORS_ALLOWED_METHODS", m)
		}
	}

	if c.MaxAge < 0 {
		return fmt.Errorf("CORS_MAX_AGE must be non-negative, got: %d", c.MaxAge)
	}
	return nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
	}
	return nil
}
