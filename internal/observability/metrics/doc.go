// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the business metrics of the service:
//   - Outbound news API queries by scope and outcome
//   - Articles kept, filtered and deduplicated per aggregation
//   - Aggregation results and duration
//   - Agent planning outcomes, fallbacks and model latency
//
// HTTP request metrics live next to the HTTP middleware in internal/handler/http.
// All metrics are registered with the Prometheus default registry and exposed via /metrics.
//
// Example usage:
//
//	import "intelligent-news/internal/observability/metrics"
//
//	start := time.Now()
//	articles, err := svc.Aggregate(ctx, filter)
//	metrics.RecordAggregation(metrics.ResultFromError(err), time.Since(start))
package metrics
