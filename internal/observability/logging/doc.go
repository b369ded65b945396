// Package logging provides structured logging utilities with context propagation.
//
// Loggers write JSON by default (LOG_FORMAT=text switches to the text handler),
// and LOG_LEVEL selects debug, info, warn or error.
//
// Example usage:
//
//	import "intelligent-news/internal/observability/logging"
//
//	func main() {
//	    slog.SetDefault(logging.NewLogger())
//	}
//
//	func handleRequest(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("fetching headlines")
//	}
package logging
