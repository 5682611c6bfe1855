// Package testutil holds helpers shared by package tests: environment
// gating and an in-process fake of the pool backend API.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/bolao/landing/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FakeBackend serves the backend contract consumed by the landing site.
// Fields may be changed between requests; access is serialised.
type FakeBackend struct {
	*httptest.Server

	mu           sync.Mutex
	PoolsCount   int64
	GuessesCount int64
	UsersCount   int64
	LastUsers    []model.User
	// Code is returned by POST /pools. Empty means "AB12CD".
	Code string
	// FailPaths maps a request path to the status it answers with.
	FailPaths map[string]int

	created []string
}

// NewFakeBackend starts a FakeBackend closed at test cleanup.
func NewFakeBackend(t testing.TB) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{FailPaths: make(map[string]int)}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.Server.Close)
	return fb
}

// Fail makes path answer with status.
func (fb *FakeBackend) Fail(path string, status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.FailPaths[path] = status
}

// Set replaces the aggregate figures.
func (fb *FakeBackend) Set(pools, guesses, users int64, lastUsers []model.User) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.PoolsCount, fb.GuessesCount, fb.UsersCount = pools, guesses, users
	fb.LastUsers = lastUsers
}

// CreatedTitles returns the titles received by POST /pools.
func (fb *FakeBackend) CreatedTitles() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.created...)
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if status, ok := fb.FailPaths[r.URL.Path]; ok {
		http.Error(w, http.StatusText(status), status)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/pools/count":
		writeJSON(w, http.StatusOK, map[string]int64{"count": fb.PoolsCount})
	case r.Method == http.MethodGet && r.URL.Path == "/guesses/count":
		writeJSON(w, http.StatusOK, map[string]int64{"count": fb.GuessesCount})
	case r.Method == http.MethodGet && r.URL.Path == "/users/count":
		writeJSON(w, http.StatusOK, map[string]int64{"count": fb.UsersCount})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/users/last/"):
		users := fb.LastUsers
		if users == nil {
			users = []model.User{}
		}
		writeJSON(w, http.StatusOK, users)
	case r.Method == http.MethodPost && r.URL.Path == "/pools":
		var req struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "title is required"})
			return
		}
		fb.created = append(fb.created, req.Title)
		code := fb.Code
		if code == "" {
			code = "AB12CD"
		}
		writeJSON(w, http.StatusCreated, model.Pool{
			ID:    fmt.Sprintf("pool-%d", len(fb.created)),
			Title: req.Title,
			Code:  code,
		})
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
