// Package entity defines the core domain entities and validation logic for the application.
// The only entity is Article: a normalized headline that lives for the duration of
// a single request/response cycle.
package entity

import "strings"

// Article represents a normalized news headline returned to clients.
// URL is the identity of an article within one aggregation call.
type Article struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// RemovedPlaceholder is the marker the news API puts in every field of an
// article that was taken down after publication.
const RemovedPlaceholder = "[Removed]"

// HasDescription reports whether the article carries a usable description.
// Whitespace-only descriptions and the removal placeholder do not count.
func (a Article) HasDescription() bool {
	d := strings.TrimSpace(a.Description)
	return d != "" && d != RemovedPlaceholder
}

// Validate checks the invariants every article handed to clients must hold.
func (a Article) Validate() error {
	if strings.TrimSpace(a.URL) == "" {
		return &ValidationError{Field: "url", Message: "is required"}
	}
	if !a.HasDescription() {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	return nil
}
