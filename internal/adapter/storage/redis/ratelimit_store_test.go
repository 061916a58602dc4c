package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitStore(t *testing.T) (*RateLimitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimitStore(client), mr
}

func TestRateLimitStore_AllowWithinLimit(t *testing.T) {
	store, _ := newRateLimitStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		result, err := store.Allow(ctx, "user-1:trading", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(3), result.Limit)
		assert.Equal(t, 3-i, result.Remaining)
	}
}

func TestRateLimitStore_BlocksBeyondLimit(t *testing.T) {
	store, _ := newRateLimitStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := store.Allow(ctx, "user-1:trading", 2, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "user-1:trading", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
}

func TestRateLimitStore_KeysAreIndependent(t *testing.T) {
	store, _ := newRateLimitStore(t)
	ctx := context.Background()

	_, err := store.Allow(ctx, "user-1:trading", 1, time.Minute)
	require.NoError(t, err)

	result, err := store.Allow(ctx, "user-2:trading", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestRateLimitStore_WindowExpires(t *testing.T) {
	store, mr := newRateLimitStore(t)
	ctx := context.Background()

	result, err := store.Allow(ctx, "user-1:auth", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, result.Allowed)

	// The counter key carries a TTL so stale windows do not accumulate.
	mr.FastForward(2 * time.Minute)
	assert.Empty(t, mr.Keys())
}
