package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jogjadev/members-api/internal/config"
	"github.com/jogjadev/members-api/internal/database"
	"github.com/jogjadev/members-api/internal/handler"
	"github.com/jogjadev/members-api/internal/middleware"
	"github.com/jogjadev/members-api/internal/model"
	"github.com/jogjadev/members-api/internal/repository"
	"github.com/jogjadev/members-api/internal/service"
	"github.com/jogjadev/members-api/internal/telemetry"
)

func main() {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

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

	// Initialize trace export
	ctx := context.Background()
	shutdownTracing, err := telemetry.Init(ctx, cfg.Server.ServiceName, cfg.Telemetry)
	if err != nil {
		slog.Error("failed to initialize telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	// Initialize database connection
	db, err := database.Connect(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := db.AutoMigrate(&model.Member{}); err != nil {
		slog.Error("failed to migrate schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("connected to database",
		slog.String("driver", cfg.Database.Driver),
	)

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)

	// Initialize services
	memberService := service.NewMemberService(service.MemberServiceConfig{
		Repo: memberRepo,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		PerSecond: cfg.RateLimit.PerSecond,
		Burst:     cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	memberHandler := handler.NewMemberHandler(memberService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health(cfg.Server.ServiceName))

	// Prometheus metrics endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Member endpoints
	mux.HandleFunc("POST /v1/members", memberHandler.Create)
	mux.HandleFunc("GET /v1/members", memberHandler.List)
	mux.HandleFunc("GET /v1/members/{memberId}", memberHandler.Get)
	mux.HandleFunc("PATCH /v1/members/{memberId}", memberHandler.Update)
	mux.HandleFunc("DELETE /v1/members/{memberId}", memberHandler.Delete)

	// Apply global middleware
	chain := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Tracing,
		middleware.Metrics(mux),
	}
	if cfg.RateLimit.Enabled {
		chain = append(chain, middleware.RateLimit(rateLimiter))
	}
	chain = append(chain, middleware.Compress)
	wrapped := middleware.Chain(mux, chain...)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
