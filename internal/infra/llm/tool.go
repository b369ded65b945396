package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"intelligent-news/internal/usecase/agent"
	"intelligent-news/internal/usecase/headlines"
)

const (
	toolDescription = "Fetch the latest news headlines, optionally narrowed to one category and one country."

	systemPrompt = "You are a news assistant. Always answer by calling the fetch_news tool exactly once. " +
		"Pick a category only when the user asks for one, and never invent countries."
)

// toolProperties is the JSON schema of the fetch_news arguments, shared by both providers.
func toolProperties() map[string]any {
	return map[string]any{
		"category": map[string]any{
			"type":        "string",
			"description": "News category.",
			"enum":        headlines.Categories,
		},
		"country": map[string]any{
			"type":        "string",
			"description": "Two-letter ISO 3166-1 country code, lower case.",
		},
	}
}

// userPrompt describes the incoming request to the model.
func userPrompt(f headlines.Filter) string {
	var b strings.Builder
	b.WriteString("Fetch the top news headlines")
	if f.Category != "" {
		fmt.Fprintf(&b, " in the %q category", f.Category)
	}
	if f.Country != "" {
		fmt.Fprintf(&b, " for country %q", f.Country)
	}
	b.WriteString(".")
	return b.String()
}

// parseArguments decodes fetch_news arguments. Empty input means no arguments.
func parseArguments(raw []byte) (agent.ToolCall, error) {
	var call agent.ToolCall
	if len(strings.TrimSpace(string(raw))) == 0 {
		return call, nil
	}
	if err := json.Unmarshal(raw, &call); err != nil {
		return agent.ToolCall{}, fmt.Errorf("decode %s arguments: %w", agent.ToolName, err)
	}
	return call, nil
}
