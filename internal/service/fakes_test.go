package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bolao/landing/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStatsAPI struct {
	pools, guesses, users int64
	lastUsers             []model.User

	poolsErr, guessesErr, usersErr, lastUsersErr error

	// block makes every call but the failing one wait for cancellation.
	block bool

	calls     atomic.Int32
	lastLimit atomic.Int32
}

func (f *fakeStatsAPI) wait(ctx context.Context, err error) error {
	f.calls.Add(1)
	if err != nil {
		return err
	}
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (f *fakeStatsAPI) PoolsCount(ctx context.Context) (int64, error) {
	if err := f.wait(ctx, f.poolsErr); err != nil {
		return 0, err
	}
	return f.pools, nil
}

func (f *fakeStatsAPI) GuessesCount(ctx context.Context) (int64, error) {
	if err := f.wait(ctx, f.guessesErr); err != nil {
		return 0, err
	}
	return f.guesses, nil
}

func (f *fakeStatsAPI) UsersCount(ctx context.Context) (int64, error) {
	if err := f.wait(ctx, f.usersErr); err != nil {
		return 0, err
	}
	return f.users, nil
}

func (f *fakeStatsAPI) LastUsers(ctx context.Context, n int) ([]model.User, error) {
	f.lastLimit.Store(int32(n))
	if err := f.wait(ctx, f.lastUsersErr); err != nil {
		return nil, err
	}
	return f.lastUsers, nil
}

type fakePoolAPI struct {
	mu     sync.Mutex
	titles []string
	pool   *model.Pool
	err    error

	// started and release let a test hold a call open.
	started chan struct{}
	release chan struct{}
}

func (f *fakePoolAPI) CreatePool(ctx context.Context, title string) (*model.Pool, error) {
	f.mu.Lock()
	f.titles = append(f.titles, title)
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}

	if f.err != nil {
		return nil, f.err
	}
	return f.pool, nil
}

func (f *fakePoolAPI) Titles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.titles...)
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
	errs      []error
}

func (n *fakeNotifier) NotifySuccess(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *fakeNotifier) NotifyFailure(_ context.Context, message string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
	n.errs = append(n.errs, err)
}

type brokenGuard struct{}

var errGuardDown = errors.New("guard down")

func (brokenGuard) Begin(context.Context, string) (bool, string, error) { return false, "", errGuardDown }
func (brokenGuard) Complete(context.Context, string, string) error     { return errGuardDown }
func (brokenGuard) Abort(context.Context, string) error                { return errGuardDown }
