// Package newsapi is a minimal client for the NewsAPI.org top-headlines endpoint.
//
// A request is scoped by exactly one of sources, country+category or category,
// because the upstream API rejects sources mixed with the other two.
// The API key travels in the X-Api-Key header so that it never ends up in
// URLs, transport errors or logs.
package newsapi
