package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bolao/landing/internal/cache"
	"github.com/bolao/landing/internal/middleware"
)

type denyAll struct{}

func (denyAll) CheckIPRateLimit(context.Context, string, int, int) (*cache.RateLimitResult, error) {
	return &cache.RateLimitResult{Allowed: false, RetryAfter: 30 * time.Second}, nil
}

func newTestRouter(t *testing.T, limiter middleware.IPLimiter) http.Handler {
	t.Helper()

	f := newPageFixture(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(RouterConfig{
		Logger:      logger,
		MaxBodySize: 1024,
		Page:        f.handler,
		Health:      NewHealthHandler(&mockHealthChecker{}, nil, logger),
		Metrics:     NewMetricsHandler(f.metrics),
		CreateRateLimit: middleware.RateLimitConfig{
			Logger:        logger,
			Limiter:       limiter,
			Enabled:       limiter != nil,
			RatePerMinute: 10,
			Burst:         5,
		},
	})
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/static/app.js", http.StatusOK},
		{http.MethodGet, "/static/app.css", http.StatusOK},
		{http.MethodGet, "/static/missing.js", http.StatusNotFound},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodDelete, "/", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_PageHeaders(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, middleware.ContentSecurityPolicy, rec.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_StaticIsCacheable(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "data-invite-code")
}

func TestRouter_CreatePoolRateLimited(t *testing.T) {
	r := newTestRouter(t, denyAll{})

	form := url.Values{"title": {"Copa"}}
	req := httptest.NewRequest(http.MethodPost, "/pools", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
}

func TestRouter_CreatePoolBodyLimit(t *testing.T) {
	r := newTestRouter(t, nil)

	form := url.Values{"title": {strings.Repeat("a", 4096)}}
	req := httptest.NewRequest(http.MethodPost, "/pools", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
