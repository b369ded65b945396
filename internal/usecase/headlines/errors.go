// Package headlines aggregates top headlines from the news API.
// It plans the outbound queries for a request, runs them one after another,
// drops low-quality entries and deduplicates the result by URL.
package headlines

import "errors"

// Sentinel errors for aggregation. Their messages are shown to API clients.
var (
	// ErrMissingAPIKey indicates that no news API key is configured.
	// No outbound query is attempted.
	ErrMissingAPIKey = errors.New("NEWS_API_KEY not set in environment variables")

	// ErrNoArticles indicates that every query failed or returned nothing usable.
	ErrNoArticles = errors.New("no articles found")
)
