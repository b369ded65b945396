package metrics

import (
	"time"
)

// Query outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)

// Article stages.
const (
	StageReceived  = "received"
	StageFiltered  = "filtered"
	StageDuplicate = "duplicate"
	StageReturned  = "returned"
)

// RecordNewsQuery records the outcome and latency of one outbound query.
func RecordNewsQuery(scope, outcome string, duration time.Duration) {
	NewsQueriesTotal.WithLabelValues(scope, outcome).Inc()
	NewsQueryDuration.WithLabelValues(scope).Observe(duration.Seconds())
}

// RecordArticles adds count articles to the given stage.
// Zero counts are skipped so that idle stages do not create series.
func RecordArticles(stage string, count int) {
	if count <= 0 {
		return
	}
	NewsArticlesTotal.WithLabelValues(stage).Add(float64(count))
}

// RecordAggregation records the result and duration of an aggregation call.
// result is typically "success", "missing_api_key" or "no_articles".
func RecordAggregation(result string, duration time.Duration) {
	AggregationsTotal.WithLabelValues(result).Inc()
	AggregationDuration.Observe(duration.Seconds())
}

// RecordAgentPlan records whether the agent produced a tool call or fell back.
func RecordAgentPlan(provider string, fallback bool) {
	outcome := "planned"
	if fallback {
		outcome = "fallback"
	}
	AgentPlansTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordAgentCall records the latency of a model call.
func RecordAgentCall(provider string, duration time.Duration) {
	AgentCallDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
