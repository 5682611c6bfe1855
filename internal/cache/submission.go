package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	submissionKeyPrefix = "pool:submission:"
	pendingValue        = "pending"
	donePrefix          = "done:"
)

// SubmissionGuard stores pool submission tokens in Redis so that a token is
// processed once across all web instances.
type SubmissionGuard struct {
	cache *Cache
	ttl   time.Duration
}

// NewSubmissionGuard creates a guard remembering tokens for ttl.
func (c *Cache) NewSubmissionGuard(ttl time.Duration) *SubmissionGuard {
	return &SubmissionGuard{cache: c, ttl: ttl}
}

// Begin claims token with SET NX. If the token is already known it returns
// the invite code it completed with, or an empty code while it is pending.
func (g *SubmissionGuard) Begin(ctx context.Context, token string) (bool, string, error) {
	key := submissionKeyPrefix + token

	// One retry covers the key expiring between SETNX and GET.
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := g.cache.client.SetNX(ctx, key, pendingValue, g.ttl).Result()
		if err != nil {
			return false, "", fmt.Errorf("failed to claim submission: %w", err)
		}
		if ok {
			return true, "", nil
		}

		value, err := g.cache.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return false, "", fmt.Errorf("failed to read submission: %w", err)
		}

		code, done := strings.CutPrefix(value, donePrefix)
		if !done {
			return false, "", nil
		}
		return false, code, nil
	}

	return false, "", nil
}

// Complete records the invite code produced for token.
func (g *SubmissionGuard) Complete(ctx context.Context, token, code string) error {
	key := submissionKeyPrefix + token

	if err := g.cache.client.Set(ctx, key, donePrefix+code, g.ttl).Err(); err != nil {
		return fmt.Errorf("failed to complete submission: %w", err)
	}
	return nil
}

// Abort forgets token so it can be submitted again.
func (g *SubmissionGuard) Abort(ctx context.Context, token string) error {
	key := submissionKeyPrefix + token

	if err := g.cache.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to abort submission: %w", err)
	}
	return nil
}
