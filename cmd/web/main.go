// Package main is the entrypoint for the bolão landing page server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/bolao/landing/internal/backend"
	"github.com/bolao/landing/internal/cache"
	"github.com/bolao/landing/internal/config"
	"github.com/bolao/landing/internal/handler"
	"github.com/bolao/landing/internal/logging"
	"github.com/bolao/landing/internal/metrics"
	"github.com/bolao/landing/internal/middleware"
	"github.com/bolao/landing/internal/server"
	"github.com/bolao/landing/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	// Backend API client
	api, err := backend.NewClient(cfg.APIBaseURL, backend.NewHTTPClient(cfg.APITimeout))
	if err != nil {
		logger.Error("invalid backend URL",
			slog.String("error", sanitizeError(err, cfg.APIBaseURL)),
			slog.String("api_base_url", redactURL(cfg.APIBaseURL)),
		)
		os.Exit(1)
	}

	recorder := metrics.NewInMemory()

	// Landing page snapshot, loaded once. The page is never served without it.
	loadCtx, cancel := context.WithTimeout(ctx, cfg.APITimeout)
	stats, err := service.NewStatsLoader(api, recorder, logger).Load(loadCtx)
	cancel()
	if err != nil {
		logger.Error("failed to load landing page stats",
			slog.String("error", sanitizeError(err, cfg.APIBaseURL)),
			slog.String("api_base_url", redactURL(cfg.APIBaseURL)),
		)
		os.Exit(1)
	}

	// Optional cache
	var (
		cacheClient *cache.Cache
		guard       service.SubmissionGuard
		limiter     middleware.IPLimiter
		cacheHealth handler.HealthChecker
	)
	if cfg.RedisEnabled() {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		logger.Info("connected to Redis")
		guard = cacheClient.NewSubmissionGuard(cfg.SubmissionTTL)
		limiter = cacheClient
		cacheHealth = cacheClient
	} else {
		logger.Warn("REDIS_URL not set: submission tokens kept in memory, rate limiting disabled")
		guard = service.NewMemoryGuard(cfg.SubmissionTTL)
	}

	creator := service.NewPoolCreator(api, guard, recorder, logger)

	r := handler.NewRouter(handler.RouterConfig{
		Logger:        logger,
		IsDevelopment: cfg.IsDevelopment(),
		MaxBodySize:   cfg.MaxRequestBodySize,
		Page:          handler.NewPageHandler(stats, creator, logger),
		Health:        handler.NewHealthHandler(api, cacheHealth, logger),
		Metrics:       handler.NewMetricsHandler(recorder),
		CreateRateLimit: middleware.RateLimitConfig{
			Logger:        logger,
			Limiter:       limiter,
			Enabled:       cfg.RateLimitCreateEnabled,
			RatePerMinute: cfg.RateLimitCreatePerMin,
			Burst:         cfg.RateLimitCreateBurst,
		},
	})

	srv := server.New(r, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	if cacheClient != nil {
		srv.OnShutdown("redis", func(context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"api_base_url", redactURL(cfg.APIBaseURL),
		"env", cfg.AppEnv,
		"pools_count", stats.PoolsCount,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
