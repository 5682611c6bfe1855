package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuard_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g := NewMemoryGuard(time.Minute)

	acquired, code, err := g.Begin(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.Empty(t, code)

	acquired, code, err = g.Begin(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, acquired)
	assert.Empty(t, code)

	require.NoError(t, g.Complete(ctx, "t1", "AB12CD"))
	acquired, code, err = g.Begin(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, acquired)
	assert.Equal(t, "AB12CD", code)
}

func TestMemoryGuard_AbortReleasesToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g := NewMemoryGuard(time.Minute)

	_, _, _ = g.Begin(ctx, "t1")
	require.NoError(t, g.Abort(ctx, "t1"))

	acquired, _, err := g.Begin(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestMemoryGuard_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2022, 11, 20, 12, 0, 0, 0, time.UTC)
	g := NewMemoryGuard(time.Minute)
	g.now = func() time.Time { return now }

	_, _, _ = g.Begin(ctx, "t1")

	now = now.Add(2 * time.Minute)
	acquired, _, err := g.Begin(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestNewMemoryGuard_DefaultTTL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultSubmissionTTL, NewMemoryGuard(0).ttl)
}
