// Package news serves the public headline endpoints.
package news

import "intelligent-news/internal/domain/entity"

// RootMessage is returned by GET /.
const RootMessage = "Intelligent News API. Use /news to fetch articles."

// RootDTO is the body of GET /.
type RootDTO struct {
	Message string `json:"message"`
}

// ResponseDTO is the body of GET /news. Articles is never nil so it always
// encodes as a JSON array; Error is set only when the call failed.
type ResponseDTO struct {
	Articles []entity.Article `json:"news_articles"`
	Error    string           `json:"error,omitempty"`
}
