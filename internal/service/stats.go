// Package service provides business logic for the application.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bolao/landing/internal/metrics"
	"github.com/bolao/landing/internal/model"
)

// StatsAPI is the read side of the backend used by StatsLoader.
type StatsAPI interface {
	PoolsCount(ctx context.Context) (int64, error)
	GuessesCount(ctx context.Context) (int64, error)
	UsersCount(ctx context.Context) (int64, error)
	LastUsers(ctx context.Context, n int) ([]model.User, error)
}

// StatsLoader builds the landing page snapshot from the backend.
type StatsLoader struct {
	api     StatsAPI
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewStatsLoader creates a new StatsLoader.
func NewStatsLoader(api StatsAPI, recorder metrics.Recorder, logger *slog.Logger) *StatsLoader {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsLoader{
		api:     api,
		metrics: recorder,
		logger:  logger,
	}
}

// Load fetches the four aggregates concurrently and joins them.
// The first failing request cancels the others and fails the whole load;
// no partial snapshot is ever returned.
func (l *StatsLoader) Load(ctx context.Context) (*model.Stats, error) {
	start := time.Now()

	stats, err := l.load(ctx)
	if err != nil {
		l.metrics.IncStatsLoadFailed()
		l.logger.Error("stats_load_failed", "error", err)
		return nil, err
	}

	duration := time.Since(start)
	l.metrics.ObserveStatsLoad(duration)
	l.logger.Info("stats_loaded",
		"pools", stats.PoolsCount,
		"guesses", stats.GuessesCount,
		"users", stats.UsersCount,
		"last_users", len(stats.LastUsers),
		"duration_ms", float64(duration.Microseconds())/1000,
	)

	return stats, nil
}

func (l *StatsLoader) load(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats

	// Each goroutine owns one field; Wait orders the writes before the reads below.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := l.api.PoolsCount(gctx)
		if err != nil {
			return fmt.Errorf("load pools count: %w", err)
		}
		stats.PoolsCount = n
		return nil
	})

	g.Go(func() error {
		n, err := l.api.GuessesCount(gctx)
		if err != nil {
			return fmt.Errorf("load guesses count: %w", err)
		}
		stats.GuessesCount = n
		return nil
	})

	g.Go(func() error {
		n, err := l.api.UsersCount(gctx)
		if err != nil {
			return fmt.Errorf("load users count: %w", err)
		}
		stats.UsersCount = n
		return nil
	})

	g.Go(func() error {
		users, err := l.api.LastUsers(gctx, model.MaxLastUsers)
		if err != nil {
			return fmt.Errorf("load last users: %w", err)
		}
		stats.LastUsers = users
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !stats.Valid() {
		return nil, fmt.Errorf("%w: pools=%d guesses=%d users=%d last_users=%d",
			ErrInvalidStats, stats.PoolsCount, stats.GuessesCount, stats.UsersCount, len(stats.LastUsers))
	}

	return &stats, nil
}
