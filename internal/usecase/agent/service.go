package agent

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"intelligent-news/internal/domain/entity"
	"intelligent-news/internal/observability/logging"
	"intelligent-news/internal/observability/metrics"
	"intelligent-news/internal/usecase/headlines"
)

// ProviderNone labels the fallback path in metrics when no planner exists.
const ProviderNone = "none"

// Service plans a fetch with the model and runs it. It implements the same
// Aggregate method as headlines.Service so handlers can use either.
type Service struct {
	planner    ToolPlanner
	aggregator Aggregator
	timeout    time.Duration
}

// NewService creates an agent Service. A nil planner means the language
// model failed to initialize: every call goes straight to the aggregator.
// timeout bounds the planning step; zero disables the bound.
func NewService(planner ToolPlanner, aggregator Aggregator, timeout time.Duration) *Service {
	return &Service{
		planner:    planner,
		aggregator: aggregator,
		timeout:    timeout,
	}
}

// Provider returns the name of the configured planner, or ProviderNone.
func (s *Service) Provider() string {
	if s.planner == nil {
		return ProviderNone
	}
	return s.planner.Name()
}

// Aggregate asks the planner for fetch_news arguments and runs the
// aggregation with them. Planning failures are logged and the request's own
// filter is used instead.
func (s *Service) Aggregate(ctx context.Context, f headlines.Filter) ([]entity.Article, error) {
	logger := logging.FromContext(ctx)
	provider := s.Provider()

	if s.planner == nil {
		metrics.RecordAgentPlan(provider, true)
		logger.Debug("agent unavailable, fetching directly")
		return s.aggregator.Aggregate(ctx, f)
	}

	call, err := s.plan(ctx, f)
	if err != nil {
		metrics.RecordAgentPlan(provider, true)
		logger.Warn("agent planning failed, fetching directly",
			slog.String("provider", provider),
			slog.Any("error", err))
		return s.aggregator.Aggregate(ctx, f)
	}

	metrics.RecordAgentPlan(provider, false)
	resolved := Resolve(f, call)
	logger.Info("agent planned fetch",
		slog.String("provider", provider),
		slog.String("model_category", call.Category),
		slog.String("category", resolved.Category),
		slog.String("country", resolved.Country))

	return s.aggregator.Aggregate(ctx, resolved)
}

func (s *Service) plan(ctx context.Context, f headlines.Filter) (ToolCall, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	call, err := s.planner.PlanFetch(ctx, f)
	metrics.RecordAgentCall(s.planner.Name(), time.Since(start))
	return call, err
}

// Resolve merges the model's tool arguments into the request filter.
// Values given by the caller always win. The model's category is only used
// when it is a known news category, and its country only when it is a
// two-letter code.
func Resolve(f headlines.Filter, call ToolCall) headlines.Filter {
	out := f.Normalize()

	if out.Category == "" {
		if c := strings.ToLower(strings.TrimSpace(call.Category)); headlines.IsKnownCategory(c) && c != headlines.DefaultCategory {
			out.Category = c
		}
	}

	if out.Country == "" {
		if c := strings.ToLower(strings.TrimSpace(call.Country)); len(c) == 2 {
			out.Country = c
		}
	}

	return out
}
