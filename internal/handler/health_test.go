package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockHealthChecker is a mock implementation of HealthChecker for testing.
type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Ping(ctx context.Context) error {
	return m.err
}

func TestHealthHandler_Healthz(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{err: errors.New("down")}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.Healthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got %s", response.Status)
	}
}

func TestHealthHandler_Readyz(t *testing.T) {
	tests := []struct {
		name        string
		backend     HealthChecker
		cache       HealthChecker
		wantCode    int
		wantStatus  string
		wantBackend string
		wantRedis   string
	}{
		{
			name:        "all healthy",
			backend:     &mockHealthChecker{},
			cache:       &mockHealthChecker{},
			wantCode:    http.StatusOK,
			wantStatus:  "ok",
			wantBackend: "ok",
			wantRedis:   "ok",
		},
		{
			name:        "redis not configured",
			backend:     &mockHealthChecker{},
			wantCode:    http.StatusOK,
			wantStatus:  "ok",
			wantBackend: "ok",
			wantRedis:   "not configured",
		},
		{
			name:        "backend unhealthy",
			backend:     &mockHealthChecker{err: errors.New("connection refused")},
			cache:       &mockHealthChecker{},
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  "unhealthy",
			wantBackend: "error: connection refused",
			wantRedis:   "ok",
		},
		{
			name:        "redis unhealthy",
			backend:     &mockHealthChecker{},
			cache:       &mockHealthChecker{err: errors.New("timeout")},
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  "unhealthy",
			wantBackend: "ok",
			wantRedis:   "error: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.backend, tt.cache, nil)

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			rec := httptest.NewRecorder()

			h.Readyz(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, rec.Code)
			}

			var response HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if response.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, response.Status)
			}
			if response.Checks["backend"] != tt.wantBackend {
				t.Errorf("backend check = %q, want %q", response.Checks["backend"], tt.wantBackend)
			}
			if response.Checks["redis"] != tt.wantRedis {
				t.Errorf("redis check = %q, want %q", response.Checks["redis"], tt.wantRedis)
			}
		})
	}
}
