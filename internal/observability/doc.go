// Package observability groups the logging, metrics and tracing infrastructure
// of the news service.
//
// Subpackages:
//   - logging: slog JSON logger, level parsing and request-scoped loggers
//   - metrics: Prometheus business metrics for news queries, aggregation and the agent
//   - tracing: OpenTelemetry HTTP middleware and span helpers
package observability
