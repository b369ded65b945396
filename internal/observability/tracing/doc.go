// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware starts a server span per HTTP request and propagates W3C trace
// context. StartSpan is used by the aggregation layer to create child spans
// for each aggregation and each outbound news query.
//
// No exporter is configured by default; the global no-op provider is used
// until one is installed with otel.SetTracerProvider.
package tracing
