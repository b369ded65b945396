package headlines

import (
	"strings"

	"intelligent-news/internal/domain/entity"
	"intelligent-news/internal/infra/newsapi"
)

// collector accumulates articles across queries, keeping the first
// occurrence of every URL.
type collector struct {
	blocked  map[string]struct{}
	seen     map[string]struct{}
	articles []entity.Article

	received   int
	filtered   int
	duplicates int
}

func newCollector(blocked map[string]struct{}) *collector {
	return &collector{
		blocked:  blocked,
		seen:     make(map[string]struct{}),
		articles: make([]entity.Article, 0),
	}
}

// add normalizes and appends the usable articles of one query response.
func (c *collector) add(q newsapi.Query, raw []newsapi.Article) {
	for _, r := range raw {
		c.received++

		if c.isBlocked(r.Source) {
			c.filtered++
			continue
		}

		a := normalize(q, r)
		if a.Validate() != nil {
			c.filtered++
			continue
		}

		if _, dup := c.seen[a.URL]; dup {
			c.duplicates++
			continue
		}
		c.seen[a.URL] = struct{}{}
		c.articles = append(c.articles, a)
	}
}

func (c *collector) isBlocked(src newsapi.SourceRef) bool {
	for _, v := range []string{src.Name, src.ID} {
		if v == "" {
			continue
		}
		if _, ok := c.blocked[strings.ToLower(strings.TrimSpace(v))]; ok {
			return true
		}
	}
	return false
}

// normalize maps an upstream article to the client-facing shape.
// Source-scoped queries report the queried source id.
func normalize(q newsapi.Query, r newsapi.Article) entity.Article {
	source := q.Source
	if source == "" {
		source = r.Source.ID
	}
	if source == "" {
		source = r.Source.Name
	}
	return entity.Article{
		Title:       strings.TrimSpace(r.Title),
		Source:      source,
		Description: strings.TrimSpace(r.Description),
		URL:         strings.TrimSpace(r.URL),
	}
}

func blockSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}
