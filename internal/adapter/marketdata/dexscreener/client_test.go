package dexscreener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairsBody = `{
	"pairs": [
		{
			"chainId": "solana",
			"dexId": "raydium",
			"pairAddress": "pair-low",
			"baseToken": {"address": "addr-1", "name": "Solana", "symbol": "SOL"},
			"priceUsd": "178.10",
			"volume": {"h24": 1000000},
			"priceChange": {"h24": 4.2},
			"liquidity": {"usd": 50000},
			"marketCap": 80000000000
		},
		{
			"chainId": "solana",
			"dexId": "orca",
			"pairAddress": "pair-high",
			"baseToken": {"address": "addr-1", "name": "Solana", "symbol": "SOL"},
			"priceUsd": "178.45",
			"volume": {"h24": 2000000},
			"priceChange": {"h24": 5.0},
			"liquidity": {"usd": 900000},
			"marketCap": 81000000000
		},
		{
			"chainId": "ethereum",
			"dexId": "uniswap",
			"pairAddress": "pair-eth",
			"baseToken": {"address": "addr-1", "name": "Wrapped SOL", "symbol": "SOL"},
			"priceUsd": "179.99",
			"volume": {"h24": 500},
			"priceChange": {"h24": 1.0},
			"liquidity": {"usd": 99999999},
			"marketCap": 0
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client(), zerolog.Nop())
}

func TestTokenPair_PicksHighestLiquidityOnChain(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dex/tokens/addr-1", r.URL.Path)
		w.Write([]byte(pairsBody))
	})

	pair, err := c.TokenPair(context.Background(), "addr-1", "solana")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, "pair-high", pair.PairAddress)
	assert.Equal(t, "178.45", pair.PriceUSD)
}

func TestTokenPair_ChainMatchIsCaseInsensitive(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(pairsBody))
	})

	pair, err := c.TokenPair(context.Background(), "addr-1", "Solana")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, "pair-high", pair.PairAddress)
}

func TestTokenPair_NoPairs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"pairs": null}`))
	})

	pair, err := c.TokenPair(context.Background(), "addr-1", "solana")
	assert.NoError(t, err)
	assert.Nil(t, pair)
}

func TestTokenPair_NoPairsOnChain(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(pairsBody))
	})

	pair, err := c.TokenPair(context.Background(), "addr-1", "base")
	assert.NoError(t, err)
	assert.Nil(t, pair)
}

func TestTokenPair_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	pair, err := c.TokenPair(context.Background(), "addr-1", "solana")
	assert.Error(t, err)
	assert.Nil(t, pair)
}

func TestMarketData_ConvertsPair(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(pairsBody))
	})

	md, err := c.MarketData(context.Background(), domain.Token{ID: "sol", Address: "addr-1", Chain: "solana"})
	require.NoError(t, err)
	require.NotNil(t, md)
	assert.Equal(t, "sol", md.TokenID)
	assert.Equal(t, 178.45, md.Price)
	assert.Equal(t, 5.0, md.PriceChangePercent24h)
	assert.InDelta(t, 178.45*0.05, md.PriceChange24h, 1e-9)
	assert.Equal(t, 2000000.0, md.Volume24h)
	assert.Equal(t, 900000.0, md.Liquidity)
	assert.False(t, md.UpdatedAt.IsZero())
}

func TestMarketData_UnparseablePrice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"pairs": [{"chainId": "solana", "priceUsd": "n/a", "liquidity": {"usd": 1}}]}`))
	})

	md, err := c.MarketData(context.Background(), domain.Token{ID: "sol", Address: "addr-1", Chain: "solana"})
	assert.NoError(t, err)
	assert.Nil(t, md)
}
