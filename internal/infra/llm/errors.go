package llm

import "errors"

var (
	// ErrNotConfigured indicates that the selected provider has no API key.
	ErrNotConfigured = errors.New("language model provider not configured")

	// ErrUnknownProvider indicates an unsupported AGENT_PROVIDER value.
	ErrUnknownProvider = errors.New("unknown language model provider")

	// ErrNoToolCall indicates that the model answered without calling fetch_news.
	ErrNoToolCall = errors.New("model did not call the fetch_news tool")
)
