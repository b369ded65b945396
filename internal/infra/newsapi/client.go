package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	topHeadlinesPath = "/top-headlines"

	// maxBodySize caps the response body read from the API.
	maxBodySize = 4 << 20
)

// Config contains configuration for the news API client.
type Config struct {
	// APIKey is sent in the X-Api-Key header.
	APIKey string

	// BaseURL is the API root, e.g. https://newsapi.org/v2.
	BaseURL string

	// Timeout bounds each request.
	Timeout time.Duration

	// PageSize is sent as pageSize when positive.
	PageSize int

	// RatePerSecond and Burst configure the shared token bucket.
	// RatePerSecond <= 0 disables it.
	RatePerSecond float64
	Burst         int
}

// Client queries the top-headlines endpoint. It is safe for concurrent use.
type Client struct {
	config      Config
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a client. A nil httpClient gets one with config.Timeout.
func NewClient(config Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Client{
		config:      config,
		httpClient:  httpClient,
		rateLimiter: NewRateLimiter(config.RatePerSecond, config.Burst),
	}
}

// HasAPIKey reports whether the client was configured with an API key.
func (c *Client) HasAPIKey() bool {
	return c.config.APIKey != ""
}

// TopHeadlines performs one top-headlines request.
//
// Returns:
//   - *StatusError for non-200 responses and error envelopes
//   - an error wrapping ErrDecode for malformed bodies
//   - any other error for transport failures and context cancellation
func (c *Client) TopHeadlines(ctx context.Context, q Query) ([]Article, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	endpoint := c.config.BaseURL + topHeadlinesPath + "?" + q.values(c.config.PageSize).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var payload response
	decodeErr := json.Unmarshal(body, &payload)

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil && payload.Message != "" {
			statusErr.Code = payload.Code
			statusErr.Message = payload.Message
		}
		return nil, statusErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, decodeErr)
	}
	if payload.Status == "error" {
		return nil, &StatusError{StatusCode: resp.StatusCode, Code: payload.Code, Message: payload.Message}
	}

	return payload.Articles, nil
}
