// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DotenvFile is the optional file read before parsing the environment.
const DotenvFile = ".env"

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Backend API (pools, guesses, users)
	APIBaseURL string        `env:"API_BASE_URL,required,notEmpty"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	// Cache (Redis). Empty disables rate limiting and keeps submission
	// tokens in process memory.
	RedisURL string `env:"REDIS_URL" envDefault:""`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"40s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Pool creation rate limiting, per client IP
	RateLimitCreateEnabled bool `env:"RATE_LIMIT_CREATE_ENABLED" envDefault:"true"`
	RateLimitCreatePerMin  int  `env:"RATE_LIMIT_CREATE_PER_MIN" envDefault:"10"`
	RateLimitCreateBurst   int  `env:"RATE_LIMIT_CREATE_BURST" envDefault:"5"`

	// How long a form submission token is remembered
	SubmissionTTL time.Duration `env:"SUBMISSION_TTL" envDefault:"10m"`

	// Request body size limit in bytes (default 64KB, the form has one field)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"65536"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// RedisEnabled reports whether a Redis URL is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != ""
}

// Load reads DotenvFile if present, then parses environment variables.
// Variables already set in the environment win over the file.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	if err := godotenv.Load(DotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", DotenvFile, err)
	}
	return Parse()
}

// Parse parses environment variables only and returns a Config.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
