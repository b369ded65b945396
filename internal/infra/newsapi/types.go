package newsapi

import (
	"net/url"
	"strconv"
)

// Query scopes.
const (
	ScopeSources  = "sources"
	ScopeCategory = "category"
)

// Query describes one top-headlines request.
// When Source is set, Country and Category are ignored.
type Query struct {
	Source   string
	Country  string
	Category string
}

// Scope returns ScopeSources for source-scoped queries and ScopeCategory otherwise.
func (q Query) Scope() string {
	if q.Source != "" {
		return ScopeSources
	}
	return ScopeCategory
}

// String renders the query for logs and span names.
func (q Query) String() string {
	if q.Source != "" {
		return "sources=" + q.Source
	}
	if q.Country != "" {
		return "country=" + q.Country + "&category=" + q.Category
	}
	return "category=" + q.Category
}

func (q Query) values(pageSize int) url.Values {
	v := url.Values{}
	switch {
	case q.Source != "":
		v.Set("sources", q.Source)
	default:
		if q.Country != "" {
			v.Set("country", q.Country)
		}
		if q.Category != "" {
			v.Set("category", q.Category)
		}
	}
	if pageSize > 0 {
		v.Set("pageSize", strconv.Itoa(pageSize))
	}
	return v
}

// Article is an article exactly as the upstream API returns it.
type Article struct {
	Source      SourceRef `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Content     string    `json:"content"`
}

// SourceRef identifies the publisher of an article. ID is empty for
// publishers the API has no identifier for.
type SourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// response is the top-headlines envelope, both for success and error bodies.
type response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
}
