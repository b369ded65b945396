package headlines

import (
	"slices"
	"strings"

	"intelligent-news/internal/infra/newsapi"
)

// DefaultCategory is used when the caller does not name a category.
const DefaultCategory = "general"

// Categories are the categories the news API understands.
var Categories = []string{"business", "entertainment", "general", "health", "science", "sports", "technology"}

// IsKnownCategory reports whether c is one of Categories, ignoring case.
func IsKnownCategory(c string) bool {
	return slices.Contains(Categories, strings.ToLower(strings.TrimSpace(c)))
}

// Filter narrows an aggregation call. The zero value asks for general headlines.
type Filter struct {
	// Category is forwarded to the category query. Empty means the caller did
	// not choose one: DefaultCategory is used and the configured sources are
	// queried as well.
	Category string

	// Country is a two-letter code added to the category query.
	Country string
}

// Normalize trims and lower-cases the filter values.
func (f Filter) Normalize() Filter {
	return Filter{
		Category: strings.ToLower(strings.TrimSpace(f.Category)),
		Country:  strings.ToLower(strings.TrimSpace(f.Country)),
	}
}

// Plan builds the ordered list of queries for f.
//
// The category query always comes first. Source-scoped queries follow only
// when f carries no explicit category, so that a requested category is never
// diluted by unrelated publisher headlines.
func Plan(f Filter, sources []string, defaultCountry string) []newsapi.Query {
	f = f.Normalize()

	category := f.Category
	if category == "" {
		category = DefaultCategory
	}
	country := f.Country
	if country == "" {
		country = strings.ToLower(defaultCountry)
	}

	queries := make([]newsapi.Query, 0, 1+len(sources))
	queries = append(queries, newsapi.Query{Country: country, Category: category})

	if f.Category != "" {
		return queries
	}
	for _, src := range sources {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		queries = append(queries, newsapi.Query{Source: src})
	}
	return queries
}
