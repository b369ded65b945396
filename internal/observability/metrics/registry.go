package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// News API metrics track the outbound queries of the Fetcher.
var (
	// NewsQueriesTotal counts outbound queries by scope (sources, category) and outcome.
	NewsQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_api_queries_total",
			Help: "Total number of news API queries by scope and outcome",
		},
		[]string{"scope", "outcome"},
	)

	// NewsQueryDuration measures a single outbound query.
	NewsQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_api_query_duration_seconds",
			Help:    "Duration of a single news API query in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"scope"},
	)

	// NewsArticlesTotal counts articles per processing stage:
	// received, filtered (no description / blocked source), duplicate, returned.
	NewsArticlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_articles_total",
			Help: "Total number of articles seen by the aggregator per stage",
		},
		[]string{"stage"},
	)
)

// Aggregation metrics track whole aggregation calls.
var (
	// AggregationsTotal counts aggregation calls by result.
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_aggregations_total",
			Help: "Total number of aggregation calls by result",
		},
		[]string{"result"},
	)

	// AggregationDuration measures a complete aggregation call.
	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "news_aggregation_duration_seconds",
			Help:    "Duration of a complete aggregation call in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)
)

// Agent metrics track the language-model layer.
var (
	// AgentPlansTotal counts planning attempts by provider and outcome (planned, fallback).
	AgentPlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_plans_total",
			Help: "Total number of agent planning attempts by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	// AgentCallDuration measures the model call of a planning attempt.
	AgentCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_call_duration_seconds",
			Help:    "Time taken by the language model to choose a tool call",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"provider"},
	)
)
