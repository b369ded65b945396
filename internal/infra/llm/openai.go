package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"intelligent-news/internal/resilience/circuitbreaker"
	"intelligent-news/internal/usecase/agent"
	"intelligent-news/internal/usecase/headlines"
)

// OpenAIConfig configures the OpenAI planner.
type OpenAIConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// OpenAI plans fetch_news calls with the Chat Completions API.
type OpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
	guard     guard
}

// NewOpenAI creates an OpenAI planner. It fails with ErrNotConfigured when
// no API key is set.
func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrNotConfigured)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	slog.Info("initialized openai planner", slog.String("model", cfg.Model))

	return &OpenAI{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		guard:     newGuard("openai", circuitbreaker.OpenAIAPIConfig()),
	}, nil
}

// Name implements agent.ToolPlanner.
func (o *OpenAI) Name() string { return "openai" }

// PlanFetch implements agent.ToolPlanner.
func (o *OpenAI) PlanFetch(ctx context.Context, f headlines.Filter) (agent.ToolCall, error) {
	return o.guard.run(ctx, func() (agent.ToolCall, error) {
		return o.doPlan(ctx, f)
	})
}

func (o *OpenAI) doPlan(ctx context.Context, f headlines.Filter) (agent.ToolCall, error) {
	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(f)},
		},
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        agent.ToolName,
				Description: toolDescription,
				Parameters: map[string]any{
					"type":       "object",
					"properties": toolProperties(),
				},
			},
		}},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: agent.ToolName},
		},
	})
	duration := time.Since(start)

	if err != nil {
		slog.WarnContext(ctx, "openai tool call failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return agent.ToolCall{}, translateOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return agent.ToolCall{}, fmt.Errorf("openai api returned empty response: %w", ErrNoToolCall)
	}

	for _, tc := range resp.Choices[0].Message.ToolCalls {
		if tc.Function.Name != agent.ToolName {
			continue
		}
		call, err := parseArguments([]byte(tc.Function.Arguments))
		if err != nil {
			return agent.ToolCall{}, err
		}
		slog.DebugContext(ctx, "openai tool call planned",
			slog.String("category", call.Category),
			slog.String("country", call.Country),
			slog.Duration("duration", duration))
		return call, nil
	}

	return agent.ToolCall{}, ErrNoToolCall
}

func translateOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return asHTTPError(apiErr.HTTPStatusCode, apiErr.Message, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return asHTTPError(reqErr.HTTPStatusCode, reqErr.Error(), err)
	}
	return fmt.Errorf("openai api error: %w", err)
}
