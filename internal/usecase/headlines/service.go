package headlines

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"intelligent-news/internal/domain/entity"
	"intelligent-news/internal/infra/newsapi"
	"intelligent-news/internal/observability/logging"
	"intelligent-news/internal/observability/metrics"
	"intelligent-news/internal/observability/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// HeadlineSource performs a single top-headlines query.
type HeadlineSource interface {
	TopHeadlines(ctx context.Context, q newsapi.Query) ([]newsapi.Article, error)
	HasAPIKey() bool
}

// Options configures which publishers are queried and which are dropped.
type Options struct {
	Sources        []string
	BlockedSources []string
	DefaultCountry string
}

// Service aggregates headlines. It holds no per-request state and is safe
// for concurrent use.
type Service struct {
	client  HeadlineSource
	opts    Options
	blocked map[string]struct{}
}

// NewService creates a headlines Service.
func NewService(client HeadlineSource, opts Options) *Service {
	return &Service{
		client:  client,
		opts:    opts,
		blocked: blockSet(opts.BlockedSources),
	}
}

// Stats summarizes one aggregation call.
type Stats struct {
	Queries    int
	Failed     int
	Received   int
	Filtered   int
	Duplicates int
	Returned   int
	Duration   time.Duration
}

// Aggregate runs the query plan for f sequentially and returns the
// deduplicated articles in first-seen order.
//
// Failed queries are logged and skipped. ErrMissingAPIKey is returned before
// any outbound call when no key is configured, and ErrNoArticles when nothing
// usable was collected.
func (s *Service) Aggregate(ctx context.Context, f Filter) ([]entity.Article, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	ctx, span := tracing.StartSpan(ctx, "headlines.aggregate",
		attribute.String("news.category", f.Category),
		attribute.String("news.country", f.Country))
	defer span.End()

	if !s.client.HasAPIKey() {
		metrics.RecordAggregation("missing_api_key", time.Since(start))
		tracing.RecordError(span, ErrMissingAPIKey)
		return nil, ErrMissingAPIKey
	}

	queries := Plan(f, s.opts.Sources, s.opts.DefaultCountry)
	stats := Stats{}
	c := newCollector(s.blocked)

	for _, q := range queries {
		if ctx.Err() != nil {
			break
		}
		stats.Queries++

		raw, err := s.query(ctx, q)
		if err != nil {
			stats.Failed++
			logger.Warn("news query failed",
				slog.String("query", q.String()),
				slog.Any("error", err))
			continue
		}
		c.add(q, raw)
	}

	stats.Received = c.received
	stats.Filtered = c.filtered
	stats.Duplicates = c.duplicates
	stats.Returned = len(c.articles)
	stats.Duration = time.Since(start)

	metrics.RecordArticles(metrics.StageReceived, stats.Received)
	metrics.RecordArticles(metrics.StageFiltered, stats.Filtered)
	metrics.RecordArticles(metrics.StageDuplicate, stats.Duplicates)
	metrics.RecordArticles(metrics.StageReturned, stats.Returned)

	span.SetAttributes(
		attribute.Int("news.queries", stats.Queries),
		attribute.Int("news.failed_queries", stats.Failed),
		attribute.Int("news.articles", stats.Returned))

	logger.Info("headlines aggregated",
		slog.Int("queries", stats.Queries),
		slog.Int("failed_queries", stats.Failed),
		slog.Int("received", stats.Received),
		slog.Int("filtered", stats.Filtered),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("returned", stats.Returned),
		slog.Duration("duration", stats.Duration))

	if len(c.articles) == 0 {
		err := ErrNoArticles
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("aggregate headlines: %w", ctxErr)
		}
		metrics.RecordAggregation(resultLabel(err), stats.Duration)
		tracing.RecordError(span, err)
		return nil, err
	}

	metrics.RecordAggregation("success", stats.Duration)
	return c.articles, nil
}

// query runs one outbound query inside its own span and records its outcome.
func (s *Service) query(ctx context.Context, q newsapi.Query) ([]newsapi.Article, error) {
	ctx, span := tracing.StartSpan(ctx, "newsapi.top_headlines",
		attribute.String("news.scope", q.Scope()),
		attribute.String("news.query", q.String()))
	defer span.End()

	start := time.Now()
	raw, err := s.client.TopHeadlines(ctx, q)
	metrics.RecordNewsQuery(q.Scope(), outcomeLabel(err), time.Since(start))
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("news.received", len(raw)))
	return raw, nil
}

func outcomeLabel(err error) string {
	var statusErr *newsapi.StatusError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &statusErr):
		return metrics.OutcomeHTTPError
	case errors.Is(err, newsapi.ErrDecode):
		return metrics.OutcomeDecodeError
	default:
		return metrics.OutcomeTransportError
	}
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrNoArticles):
		return "no_articles"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
