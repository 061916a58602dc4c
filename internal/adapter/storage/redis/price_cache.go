package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PriceCache stores market data snapshots in Redis with a short TTL so
// repeated quote lookups within the window skip the upstream fetch.
type PriceCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewPriceCache creates a Redis-backed market data cache.
func NewPriceCache(client *goredis.Client, ttl time.Duration) *PriceCache {
	return &PriceCache{
		client: client,
		prefix: "price:",
		ttl:    ttl,
	}
}

// Get retrieves a cached snapshot. Returns nil, nil on a cache miss.
func (c *PriceCache) Get(ctx context.Context, tokenID string) (*domain.TokenMarketData, error) {
	raw, err := c.client.Get(ctx, c.prefix+tokenID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis price get: %w", err)
	}
	var md domain.TokenMarketData
	if err := json.Unmarshal(raw, &md); err != nil {
		return nil, fmt.Errorf("redis price decode: %w", err)
	}
	return &md, nil
}

// Set stores a snapshot under the cache TTL.
func (c *PriceCache) Set(ctx context.Context, md *domain.TokenMarketData) error {
	raw, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("redis price encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+md.TokenID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis price set: %w", err)
	}
	return nil
}
