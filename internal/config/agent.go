package config

import (
	"fmt"
	"time"

	envconfig "intelligent-news/pkg/config"
)

// Agent providers accepted by AGENT_PROVIDER.
const (
	AgentProviderNone   = "none"
	AgentProviderOpenAI = "openai"
	AgentProviderClaude = "claude"
)

// AgentConfig holds configuration for the optional language-model agent that
// chooses the arguments of the fetch tool.
type AgentConfig struct {
	// Provider is one of none, openai, claude. Default: none
	Provider string

	// OpenAIAPIKey and OpenAIModel configure the OpenAI planner.
	OpenAIAPIKey string
	OpenAIModel  string

	// OpenAIBaseURL overrides the API endpoint (proxies, compatible servers).
	OpenAIBaseURL string

	// AnthropicAPIKey and ClaudeModel configure the Claude planner.
	AnthropicAPIKey string
	ClaudeModel     string

	// AnthropicBaseURL overrides the Messages API endpoint.
	AnthropicBaseURL string

	// MaxTokens bounds the model response. Default: 256
	MaxTokens int

	// Timeout bounds one planning call including retries. Default: 30s
	Timeout time.Duration
}

// LoadAgentConfig loads agent configuration from environment variables.
// Missing API keys are not validated here: a provider without a key fails to
// initialize and the service falls back to direct fetching.
func LoadAgentConfig() (*AgentConfig, error) {
	cfg := &AgentConfig{
		Provider:         envconfig.GetEnvString("AGENT_PROVIDER", AgentProviderNone),
		OpenAIAPIKey:     envconfig.GetEnvString("OPENAI_API_KEY", ""),
		OpenAIModel:      envconfig.GetEnvString("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:    envconfig.GetEnvString("OPENAI_BASE_URL", ""),
		AnthropicAPIKey:  envconfig.GetEnvString("ANTHROPIC_API_KEY", ""),
		ClaudeModel:      envconfig.GetEnvString("CLAUDE_MODEL", "claude-sonnet-4-5-20250929"),
		AnthropicBaseURL: envconfig.GetEnvString("ANTHROPIC_BASE_URL", ""),
		MaxTokens:        envconfig.GetEnvInt("AGENT_MAX_TOKENS", 256),
		Timeout:          envconfig.GetEnvDuration("AGENT_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration correctness.
func (c *AgentConfig) Validate() error {
	switch c.Provider {
	case AgentProviderNone, AgentProviderOpenAI, AgentProviderClaude:
	default:
		return fmt.Errorf("AGENT_PROVIDER must be one of none, openai, claude, got %q", c.Provider)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("AGENT_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}

	if err := envconfig.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("AGENT_TIMEOUT: %w", err)
	}

	return nil
}

// Enabled reports whether an agent provider was requested.
func (c *AgentConfig) Enabled() bool {
	return c.Provider != AgentProviderNone
}
