package service

import (
	"context"
	"sync"
	"time"
)

// DefaultSubmissionTTL bounds how long a submission token is remembered.
const DefaultSubmissionTTL = 10 * time.Minute

// SubmissionGuard admits at most one pool creation per submission token.
//
// Begin returns acquired=true when the caller owns the token and must create
// the pool. When the token already completed, code holds the invite code it
// produced.
type SubmissionGuard interface {
	Begin(ctx context.Context, token string) (acquired bool, code string, err error)
	Complete(ctx context.Context, token, code string) error
	Abort(ctx context.Context, token string) error
}

type guardEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryGuard is a process-local SubmissionGuard.
// It is used when Redis is not configured and in tests.
type MemoryGuard struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]guardEntry
}

// NewMemoryGuard creates a MemoryGuard remembering tokens for ttl.
func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	if ttl <= 0 {
		ttl = DefaultSubmissionTTL
	}
	return &MemoryGuard{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]guardEntry),
	}
}

// Begin claims token unless another submission holds or completed it.
func (g *MemoryGuard) Begin(_ context.Context, token string) (bool, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.sweep(now)

	if entry, ok := g.entries[token]; ok {
		return false, entry.code, nil
	}

	g.entries[token] = guardEntry{expiresAt: now.Add(g.ttl)}
	return true, "", nil
}

// Complete records the invite code produced for token.
func (g *MemoryGuard) Complete(_ context.Context, token, code string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.entries[token] = guardEntry{code: code, expiresAt: g.now().Add(g.ttl)}
	return nil
}

// Abort forgets token so it can be submitted again.
func (g *MemoryGuard) Abort(_ context.Context, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.entries, token)
	return nil
}

// sweep drops expired entries. Caller holds mu.
func (g *MemoryGuard) sweep(now time.Time) {
	for token, entry := range g.entries {
		if !now.Before(entry.expiresAt) {
			delete(g.entries, token)
		}
	}
}
