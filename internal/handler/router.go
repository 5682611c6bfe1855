package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bolao/landing/internal/middleware"
)

// RouterConfig wires handlers and middleware settings into the router.
type RouterConfig struct {
	Logger        *slog.Logger
	IsDevelopment bool
	MaxBodySize   int64

	Page    *PageHandler
	Health  *HealthHandler
	Metrics *MetricsHandler

	// CreateRateLimit guards POST /pools.
	CreateRateLimit middleware.RateLimitConfig
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	h := New(cfg.Logger)
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger, cfg.IsDevelopment))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment}))

	// Health endpoints
	r.Get("/healthz", cfg.Health.Healthz)
	r.Get("/readyz", cfg.Health.Readyz)
	if cfg.Metrics != nil {
		r.Get("/metrics", cfg.Metrics.Metrics)
	}

	// Landing page
	r.Get("/", cfg.Page.Home)
	r.With(
		middleware.MaxBodySize(cfg.MaxBodySize),
		middleware.RateLimitIP(cfg.CreateRateLimit),
	).Post("/pools", cfg.Page.CreatePool)
	r.Handle("/static/*", Static())

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
