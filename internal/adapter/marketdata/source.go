package marketdata

import (
	"context"

	"github.com/peterzzshi/gmgn-clone/internal/catalog"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"

	"github.com/rs/zerolog"
)

// PairFetcher fetches live market data for a token. A nil snapshot with a
// nil error means the upstream had no usable data.
type PairFetcher interface {
	MarketData(ctx context.Context, token domain.Token) (*domain.TokenMarketData, error)
}

// SnapshotCache is an optional short-TTL cache in front of the fetcher.
type SnapshotCache interface {
	Get(ctx context.Context, tokenID string) (*domain.TokenMarketData, error)
	Set(ctx context.Context, md *domain.TokenMarketData) error
}

// Source resolves market data with a cache-then-live-then-catalog chain.
// Cache may be nil, which disables it. Any upstream failure falls back to
// the catalog baseline so quote and trade paths never surface fetch errors.
type Source struct {
	fetcher PairFetcher
	cache   SnapshotCache
	log     zerolog.Logger
}

var _ ports.PriceSource = (*Source)(nil)

// NewSource creates a price source. fetcher may be nil to serve catalog
// baselines only; cache may be nil to skip caching.
func NewSource(fetcher PairFetcher, cache SnapshotCache, log zerolog.Logger) *Source {
	return &Source{fetcher: fetcher, cache: cache, log: log}
}

// MarketData returns the freshest snapshot available for a catalog token,
// or nil for a token the platform does not support.
func (s *Source) MarketData(ctx context.Context, tokenID string) (*domain.TokenMarketData, error) {
	token := catalog.TokenByID(tokenID)
	if token == nil {
		return nil, nil
	}

	if s.cache != nil {
		if md, err := s.cache.Get(ctx, tokenID); err != nil {
			s.log.Warn().Err(err).Str("token", tokenID).Msg("price cache read failed")
		} else if md != nil {
			return md, nil
		}
	}

	if s.fetcher != nil {
		md, err := s.fetcher.MarketData(ctx, *token)
		if err != nil {
			s.log.Warn().Err(err).Str("token", tokenID).Msg("live price fetch failed, using baseline")
		} else if md != nil {
			if s.cache != nil {
				if err := s.cache.Set(ctx, md); err != nil {
					s.log.Warn().Err(err).Str("token", tokenID).Msg("price cache write failed")
				}
			}
			return md, nil
		}
	}

	return catalog.FallbackMarketData(tokenID), nil
}
