package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intelligent-news/internal/config"
	"intelligent-news/internal/infra/llm"
	"intelligent-news/internal/infra/newsapi"
	"intelligent-news/internal/observability/logging"
	"intelligent-news/internal/observability/tracing"
	"intelligent-news/internal/usecase/agent"
	"intelligent-news/internal/usecase/headlines"
	envconfig "intelligent-news/pkg/config"

	hhttp "intelligent-news/internal/handler/http"
	"intelligent-news/internal/handler/http/middleware"
	hnews "intelligent-news/internal/handler/http/news"
	"intelligent-news/internal/handler/http/requestid"
)

const (
	defaultPort     = "8000"
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	logger := initLogger()

	newsCfg, err := config.LoadNewsConfig()
	if err != nil {
		logger.Error("failed to load news configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if !newsCfg.HasAPIKey() {
		logger.Warn("NEWS_API_KEY is not set; /news will answer with an error payload")
	}

	agentCfg, err := config.LoadAgentConfig()
	if err != nil {
		logger.Error("failed to load agent configuration", slog.Any("error", err))
		os.Exit(1)
	}

	version := envconfig.GetEnvString("VERSION", "dev")
	handler := setupServer(logger, newsCfg, agentCfg, version)

	runServer(logger, handler, version)
}

// initLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and
// installs it as the slog default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// setupServer wires the news pipeline, routes and middleware.
func setupServer(logger *slog.Logger, newsCfg *config.NewsConfig, agentCfg *config.AgentConfig, version string) http.Handler {
	client := newsapi.NewClient(newsapi.Config{
		APIKey:        newsCfg.APIKey,
		BaseURL:       newsCfg.BaseURL,
		Timeout:       newsCfg.Timeout,
		PageSize:      newsCfg.PageSize,
		RatePerSecond: newsCfg.RatePerSecond,
		Burst:         newsCfg.Burst,
	}, nil)

	fetcher := headlines.NewService(client, headlines.Options{
		Sources:        newsCfg.Sources,
		BlockedSources: newsCfg.BlockedSources,
		DefaultCountry: newsCfg.DefaultCountry,
	})

	agentSvc := setupAgent(logger, agentCfg, fetcher)

	var getter hnews.Getter = fetcher
	if agentCfg.Enabled() {
		getter = agentSvc
	}

	mux := http.NewServeMux()
	hnews.Register(mux, getter)
	mux.Handle("GET /health", &hhttp.HealthHandler{
		Version:          version,
		NewsKeyPresent:   newsCfg.HasAPIKey(),
		NewsSourcesCount: len(newsCfg.Sources),
		AgentRequested:   agentCfg.Provider,
		Agent:            agentSvc,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{NewsKeyPresent: newsCfg.HasAPIKey()})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// setupAgent builds the agent service. A planner that fails to initialize is
// logged and replaced by direct fetching.
func setupAgent(logger *slog.Logger, cfg *config.AgentConfig, fetcher *headlines.Service) *agent.Service {
	planner, err := llm.NewPlanner(cfg)
	if err != nil {
		logger.Warn("agent failed to initialize, falling back to direct fetching",
			slog.String("provider", cfg.Provider),
			slog.Any("error", err))
	}

	svc := agent.NewService(planner, fetcher, cfg.Timeout)
	if cfg.Enabled() {
		logger.Info("agent configured",
			slog.String("requested", cfg.Provider),
			slog.String("active", svc.Provider()),
			slog.Duration("timeout", cfg.Timeout))
	}
	return svc
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: CORS → Request ID → Tracing → Recovery → Logging → Body Limit → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	corsConfig.Logger = logger

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	return hhttp.Chain(handler,
		middleware.CORS(*corsConfig),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(maxBodyBytes),
		hhttp.MetricsMiddleware,
	)
}

// runServer starts the HTTP server and shuts it down gracefully on SIGINT/SIGTERM.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	addr := ":" + envconfig.GetEnvString("PORT", defaultPort)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
