package llm

import (
	"fmt"

	"intelligent-news/internal/config"
	"intelligent-news/internal/usecase/agent"
)

// NewPlanner builds the planner selected by cfg.Provider.
// It returns a nil planner and nil error for the none provider, and a nil
// planner with an error when the selected provider cannot be initialized.
func NewPlanner(cfg *config.AgentConfig) (agent.ToolPlanner, error) {
	switch cfg.Provider {
	case config.AgentProviderNone:
		return nil, nil
	case config.AgentProviderOpenAI:
		p, err := NewOpenAI(OpenAIConfig{
			APIKey:    cfg.OpenAIAPIKey,
			Model:     cfg.OpenAIModel,
			BaseURL:   cfg.OpenAIBaseURL,
			MaxTokens: cfg.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.AgentProviderClaude:
		p, err := NewClaude(ClaudeConfig{
			APIKey:    cfg.AnthropicAPIKey,
			Model:     cfg.ClaudeModel,
			BaseURL:   cfg.AnthropicBaseURL,
			MaxTokens: cfg.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
