package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/trivia/api/internal/config"
	"github.com/forgo/trivia/api/internal/database"
	"github.com/forgo/trivia/api/internal/handler"
	"github.com/forgo/trivia/api/internal/jobs"
	"github.com/forgo/trivia/api/internal/middleware"
	"github.com/forgo/trivia/api/internal/pagination"
	"github.com/forgo/trivia/api/internal/repository"
	"github.com/forgo/trivia/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to read .env", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	dbConfig := database.Config{
		URL:       cfg.Database.URL,
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	}
	db := database.NewSurrealDB(dbConfig)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	err = db.Connect(connectCtx)
	cancelConnect()
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("endpoint", dbConfig.Endpoint()),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories and services
	triviaRepo := repository.NewTriviaRepository(db)
	triviaService := service.NewTriviaService(service.TriviaServiceConfig{
		Repo:   triviaRepo,
		Logger: logger,
	})

	// Keep the collection size gauge current between listing requests
	if cfg.Metrics.Enabled {
		statsJob := jobs.NewCollectionStats(triviaRepo, cfg.Metrics.StatsInterval)
		statsJob.Start()
		defer statsJob.Stop()
	}

	// Initialize handlers
	triviaHandler := handler.NewTriviaHandler(triviaService, pagination.Config{
		DefaultPage:  cfg.Pagination.DefaultPage,
		DefaultLimit: cfg.Pagination.DefaultLimit,
	})
	healthHandler := handler.NewHealthHandler(db)

	gate := middleware.SharedSecret(cfg.Auth.Secret)
	if cfg.Auth.Bcrypt {
		gate = middleware.BcryptSecret(cfg.Auth.Secret)
		slog.Info("accepting bcrypt plaintext for PASS_HASH")
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)
	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", middleware.MetricsHandler())
	}

	triviaHandler.RegisterRoutes(mux, gate)

	// Everything else
	mux.HandleFunc("/", handler.NotFound)

	// Apply global middleware. Metrics must stay innermost so that it sees
	// the pattern the mux matched.
	middlewares := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	}
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		})
		defer rateLimiter.Stop()
		middlewares = append(middlewares, middleware.RateLimit(rateLimiter))
	}
	if cfg.Metrics.Enabled {
		middlewares = append(middlewares, middleware.Metrics)
	}
	wrapped := middleware.Chain(mux, middlewares...)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
