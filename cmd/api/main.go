// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/agrovia-exports/go-backend/internal/assets"
	"github.com/agrovia-exports/go-backend/internal/auth"
	"github.com/agrovia-exports/go-backend/internal/blog"
	"github.com/agrovia-exports/go-backend/internal/config"
	"github.com/agrovia-exports/go-backend/internal/core"
	"github.com/agrovia-exports/go-backend/internal/health"
	"github.com/agrovia-exports/go-backend/internal/middleware"
	"github.com/agrovia-exports/go-backend/internal/newsletter"
	"github.com/agrovia-exports/go-backend/internal/product"
	"github.com/agrovia-exports/go-backend/internal/server"
	"github.com/agrovia-exports/go-backend/internal/subscriber"
)

const (
	drainDelay = 5 * time.Second

	loginRequestsPerMinute = 5
	loginBurst             = 3

	signupRequestsPerMinute = 10
	signupBurst             = 5
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

	db, err := core.NewDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	logger.Info("mongodb connected", "database", cfg.Mongo.Database)

	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}

	// Redis is optional; without it the rate limiter runs on its
	// in-process fallback.
	var rdb *core.Redis
	if cfg.Redis.URL != "" {
		rdb, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"expiry", tokens.Expiry(),
	)

	assetStore, err := assets.NewStore(cfg.Uploads.Dir)
	if err != nil {
		return err
	}
	assetHandler := assets.NewHandler(assetStore, cfg.Uploads.MaxSizeBytes)

	authSvc := auth.NewService(tokens, cfg.Admin)
	authHandler := auth.NewHandler(
		authSvc,
		cfg.Auth.CookieName,
		cfg.App.Environment == "production",
	)

	productRepo := product.NewRepository(db.Collection(core.CollectionProducts))
	productSvc := product.NewService(productRepo, assetStore, logger)
	productHandler := product.NewHandler(productSvc)

	blogRepo := blog.NewRepository(db.Collection(core.CollectionBlogPosts))
	blogSvc := blog.NewService(blogRepo, assetStore, logger)
	blogHandler := blog.NewHandler(blogSvc)

	subscriberRepo := subscriber.NewRepository(
		db.Collection(core.CollectionSubscribers),
	)
	subscriberSvc := subscriber.NewService(subscriberRepo, logger)
	subscriberHandler := subscriber.NewHandler(subscriberSvc)

	mailer, err := newsletter.NewMailer(cfg.SMTP)
	if err != nil {
		return err
	}
	newsletterHandler := newsletter.NewHandler(mailer, subscriberSvc, logger)

	healthHandler := health.NewHandler(db, healthChecker(rdb))

	srv := server.New(server.Config{
		ServerConfig: cfg.Server,
		Logger:       logger,
	})

	router := srv.Router()

	redisClient := redisClientOf(rdb)

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	gate := middleware.NewAuthGate(authSvc, cfg.Auth.CookieName)
	authenticator := gate.Authenticator
	adminOnly := middleware.RequireAdmin

	// Login and signup get tighter buckets than the global limit.
	loginLimiter := middleware.NewRateLimiter(
		redisClient,
		middleware.RateLimitConfig{
			Limit:    middleware.PerMinute(loginRequestsPerMinute, loginBurst),
			FailOpen: true,
		},
	).Handler
	signupLimiter := middleware.NewRateLimiter(
		redisClient,
		middleware.RateLimitConfig{
			Limit:    middleware.PerMinute(signupRequestsPerMinute, signupBurst),
			FailOpen: true,
		},
	).Handler

	router.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator, loginLimiter)

		productHandler.RegisterRoutes(
			r,
			authenticator,
			adminOnly,
			assetHandler.DeleteImage,
		)
		blogHandler.RegisterRoutes(r, authenticator, adminOnly)
		subscriberHandler.RegisterRoutes(r, signupLimiter)
		newsletterHandler.RegisterRoutes(r, authenticator, adminOnly)
		assetHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

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

	healthHandler.SetShutdown(true)

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

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("mongodb close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func redisClientOf(r *core.Redis) *redis.Client {
	if r == nil {
		return nil
	}
	return r.Client
}

// healthChecker avoids handing the health handler a typed-nil Checker
// when redis is not configured.
func healthChecker(r *core.Redis) health.Checker {
	if r == nil {
		return nil
	}
	return r
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
