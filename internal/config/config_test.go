package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParse_WithRequiredVars(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:3333")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:3333" {
		t.Errorf("expected APIBaseURL to be set, got %s", cfg.APIBaseURL)
	}
}

func TestParse_MissingRequired(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	os.Unsetenv("API_BASE_URL")

	_, err := Parse()
	if err == nil {
		t.Fatal("expected error for missing API_BASE_URL, got nil")
	}
}

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:3333")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 8080 {
		t.Errorf("expected default AppPort 8080, got %d", cfg.AppPort)
	}

	if cfg.APITimeout != 30*time.Second {
		t.Errorf("expected default APITimeout 30s, got %s", cfg.APITimeout)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("expected default LogFormat 'json', got %s", cfg.LogFormat)
	}

	if cfg.SubmissionTTL != 10*time.Minute {
		t.Errorf("expected default SubmissionTTL 10m, got %s", cfg.SubmissionTTL)
	}

	if cfg.RedisEnabled() {
		t.Error("expected Redis to be disabled by default")
	}
}

func TestLoad_ReadsDotenv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DotenvFile), []byte("API_BASE_URL=http://from-dotenv:3333\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		os.Unsetenv("API_BASE_URL")
	})

	// Environment wins over the file.
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.APIBaseURL != "http://from-dotenv:3333" {
		t.Errorf("expected APIBaseURL from .env, got %s", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected LOG_LEVEL from environment, got %s", cfg.LogLevel)
	}
}

func TestLoad_MissingDotenvIsFine(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("API_BASE_URL", "http://localhost:3333")

	if _, err := Load(); err != nil {
		t.Fatalf("expected no error without .env, got %v", err)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	cfg.AppEnv = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{AppEnv: "production"}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to return true")
	}

	cfg.AppEnv = "development"
	if cfg.IsProduction() {
		t.Error("expected IsProduction to return false")
	}
}
