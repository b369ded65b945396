// Package agent routes a headline request through a language model that
// chooses the arguments of the fetch_news tool, then runs the aggregation.
//
// The model adds no results of its own. When no planner is configured, or the
// planner fails, the request's own filter is used and the call falls back to
// the aggregator directly.
package agent

import (
	"context"

	"intelligent-news/internal/domain/entity"
	"intelligent-news/internal/usecase/headlines"
)

// ToolName is the name of the single tool offered to the model.
const ToolName = "fetch_news"

// ToolCall holds the arguments the model chose for fetch_news.
type ToolCall struct {
	Category string `json:"category"`
	Country  string `json:"country"`
}

// ToolPlanner asks a language model to plan one fetch_news call.
type ToolPlanner interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// PlanFetch returns the tool arguments chosen for the request filter.
	PlanFetch(ctx context.Context, f headlines.Filter) (ToolCall, error)
}

// Aggregator is the headline fetcher the agent delegates to.
type Aggregator interface {
	Aggregate(ctx context.Context, f headlines.Filter) ([]entity.Article, error)
}
