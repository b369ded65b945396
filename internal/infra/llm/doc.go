// Package llm implements agent.ToolPlanner on top of the OpenAI and Anthropic
// SDKs. Each planner offers the model a single fetch_news tool, forces it to
// call that tool and returns the parsed arguments.
//
// Calls go through a circuit breaker and a short retry loop; SDK errors are
// translated into retry.HTTPError so that rate limits and server errors are
// retried while client errors are not.
package llm
