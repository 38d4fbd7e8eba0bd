// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/proper-parts/server/internal/admin"
	"github.com/proper-parts/server/internal/auth"
	"github.com/proper-parts/server/internal/config"
	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/health"
	"github.com/proper-parts/server/internal/middleware"
	"github.com/proper-parts/server/internal/payment"
	"github.com/proper-parts/server/internal/profile"
	"github.com/proper-parts/server/internal/purchase"
	"github.com/proper-parts/server/internal/review"
	"github.com/proper-parts/server/internal/server"
	"github.com/proper-parts/server/internal/tool"
	"github.com/proper-parts/server/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	store, err := core.NewStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("store connected",
		"database", cfg.Database.Name,
		"max_pool_size", cfg.Database.MaxPoolSize,
	)

	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokenManager, err := auth.NewManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"token_expire", cfg.JWT.TokenExpire,
	)

	userRepo := user.NewRepository(store.Users())
	guard := middleware.NewGuard(tokenManager, userRepo)

	toolHandler := tool.NewHandler(tool.NewRepository(store.Tools()))
	reviewHandler := review.NewHandler(review.NewRepository(store.Reviews()))
	profileHandler := profile.NewHandler(profile.NewRepository(store.Profiles()))
	userHandler := user.NewHandler(userRepo, tokenManager)

	paymentRepo := payment.NewRepository(store.Payments())
	purchaseHandler := purchase.NewHandler(
		purchase.NewRepository(store.Purchases()),
		paymentRepo,
	)

	stripeBridge := payment.NewStripeBridge(cfg.Payment)
	paymentHandler := payment.NewHandler(stripeBridge, cfg.Payment.Currency)

	healthHandler := health.NewHandler(store, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBCounts:   store.Counts,
		DBPing:     store.Ping,
		RedisStats: redis.PoolStats,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		core.OK(w, map[string]string{"message": "proper parts server running"})
	})

	toolHandler.RegisterRoutes(router, guard)
	purchaseHandler.RegisterRoutes(router, guard)
	reviewHandler.RegisterRoutes(router, guard)
	userHandler.RegisterRoutes(router, guard)
	profileHandler.RegisterRoutes(router, guard)
	paymentHandler.RegisterRoutes(router, guard)
	adminHandler.RegisterRoutes(router, guard)

	healthHandler.SetReady(true)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("store close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
