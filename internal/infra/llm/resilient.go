package llm

import (
	"context"
	"fmt"
	"log/slog"

	"intelligent-news/internal/resilience/circuitbreaker"
	"intelligent-news/internal/resilience/retry"
	"intelligent-news/internal/usecase/agent"
)

// guard runs fn with retry around a circuit breaker, the way every model
// call of this package is protected.
type guard struct {
	provider       string
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

func newGuard(provider string, cbConfig circuitbreaker.Config) guard {
	return guard{
		provider:       provider,
		circuitBreaker: circuitbreaker.New(cbConfig),
		retryConfig:    retry.AgentConfig(),
	}
}

func (g guard) run(ctx context.Context, fn func() (agent.ToolCall, error)) (agent.ToolCall, error) {
	var result agent.ToolCall

	err := retry.WithBackoff(ctx, g.retryConfig, func() error {
		call, err := circuitbreaker.Run(g.circuitBreaker, fn)
		if err != nil {
			if circuitbreaker.IsRejection(err) {
				slog.Warn("circuit breaker open, request rejected",
					slog.String("service", g.circuitBreaker.Name()),
					slog.String("state", g.circuitBreaker.State().String()))
				return fmt.Errorf("%s unavailable: %w", g.provider, err)
			}
			return err
		}
		result = call
		return nil
	})
	if err != nil {
		return agent.ToolCall{}, fmt.Errorf("%s plan fetch: %w", g.provider, err)
	}
	return result, nil
}

// asHTTPError wraps err in retry.HTTPError when status is known.
func asHTTPError(status int, message string, err error) error {
	if status == 0 {
		return err
	}
	return &retry.HTTPError{StatusCode: status, Message: message, Err: err}
}
