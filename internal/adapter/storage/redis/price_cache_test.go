package redis

import (
	"context"
	"testing"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewPriceCache(client, 30*time.Second)
	ctx := context.Background()

	// Get before set => cache miss
	got, err := cache.Get(ctx, "sol")
	assert.NoError(t, err)
	assert.Nil(t, got)

	md := &domain.TokenMarketData{
		TokenID:               "sol",
		Price:                 178.45,
		PriceChangePercent24h: 5.2,
		Volume24h:             2_345_678_901,
		UpdatedAt:             time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, cache.Set(ctx, md))

	got, err = cache.Get(ctx, "sol")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, md.Price, got.Price)
	assert.Equal(t, md.PriceChangePercent24h, got.PriceChangePercent24h)
}

func TestPriceCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewPriceCache(client, 1*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &domain.TokenMarketData{TokenID: "jup", Price: 0.92}))

	s.FastForward(2 * time.Second)

	got, err := cache.Get(ctx, "jup")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPriceCache_KeysAreNamespaced(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewPriceCache(client, time.Minute)

	require.NoError(t, cache.Set(context.Background(), &domain.TokenMarketData{TokenID: "bonk", Price: 0.00002834}))
	assert.True(t, s.Exists("price:bonk"))
}
