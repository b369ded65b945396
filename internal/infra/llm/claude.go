package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"intelligent-news/internal/resilience/circuitbreaker"
	"intelligent-news/internal/usecase/agent"
	"intelligent-news/internal/usecase/headlines"
)

// ClaudeConfig configures the Claude planner.
type ClaudeConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// Claude plans fetch_news calls with the Anthropic Messages API.
type Claude struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	guard     guard
}

// NewClaude creates a Claude planner. It fails with ErrNotConfigured when
// no API key is set.
func NewClaude(cfg ClaudeConfig) (*Claude, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("claude: %w", ErrNotConfigured)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Retries are handled by the guard.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	slog.Info("initialized claude planner", slog.String("model", cfg.Model))

	return &Claude{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		guard:     newGuard("claude", circuitbreaker.ClaudeAPIConfig()),
	}, nil
}

// Name implements agent.ToolPlanner.
func (c *Claude) Name() string { return "claude" }

// PlanFetch implements agent.ToolPlanner.
func (c *Claude) PlanFetch(ctx context.Context, f headlines.Filter) (agent.ToolCall, error) {
	return c.guard.run(ctx, func() (agent.ToolCall, error) {
		return c.doPlan(ctx, f)
	})
}

func (c *Claude) doPlan(ctx context.Context, f headlines.Filter) (agent.ToolCall, error) {
	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(f))),
		},
		Tools: []anthropic.ToolUnionParam{{
			OfTool: &anthropic.ToolParam{
				Name:        agent.ToolName,
				Description: anthropic.String(toolDescription),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: toolProperties(),
				},
			},
		}},
		ToolChoice: anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: agent.ToolName},
		},
	})
	duration := time.Since(start)

	if err != nil {
		slog.WarnContext(ctx, "claude tool call failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return agent.ToolCall{}, translateClaudeError(err)
	}

	for _, block := range message.Content {
		toolUse, ok := block.AsAny().(anthropic.ToolUseBlock)
		if !ok || toolUse.Name != agent.ToolName {
			continue
		}
		call, err := parseArguments(toolUse.Input)
		if err != nil {
			return agent.ToolCall{}, err
		}
		slog.DebugContext(ctx, "claude tool call planned",
			slog.String("category", call.Category),
			slog.String("country", call.Country),
			slog.Duration("duration", duration))
		return call, nil
	}

	return agent.ToolCall{}, ErrNoToolCall
}

func translateClaudeError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return asHTTPError(apiErr.StatusCode, apiErr.Error(), err)
	}
	return fmt.Errorf("claude api error: %w", err)
}
