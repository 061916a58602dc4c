package service

import (
	"context"
	"testing"

	"github.com/peterzzshi/gmgn-clone/internal/catalog"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports/mocks"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// catalogPrices answers every catalog token with a fixed snapshot so list
// ordering is deterministic.
func catalogPrices(t *testing.T, overrides map[string]*domain.TokenMarketData) *mocks.MockPriceSource {
	t.Helper()
	ctrl := gomock.NewController(t)
	prices := mocks.NewMockPriceSource(ctrl)
	prices.EXPECT().MarketData(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tokenID string) (*domain.TokenMarketData, error) {
			if md, ok := overrides[tokenID]; ok {
				return md, nil
			}
			if _, ok := catalog.BasePrice(tokenID); !ok {
				return nil, nil
			}
			return &domain.TokenMarketData{TokenID: tokenID, Price: 1, MarketCap: 1000}, nil
		},
	).AnyTimes()
	return prices
}

func TestListTokens_ReturnsFullCatalog(t *testing.T) {
	svc := NewMarketService(catalogPrices(t, nil), zerolog.Nop())

	tokens, total, err := svc.ListTokens(context.Background(), ports.TokenListParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Tokens()), total)
	assert.Equal(t, total, len(tokens))
}

func TestListTokens_Search(t *testing.T) {
	svc := NewMarketService(catalogPrices(t, nil), zerolog.Nop())

	tokens, total, err := svc.ListTokens(context.Background(), ports.TokenListParams{Search: "jup", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, tokens, 1)
	assert.Equal(t, "JUP", tokens[0].Symbol)
}

func TestListTokens_SortByChange(t *testing.T) {
	overrides := map[string]*domain.TokenMarketData{
		"sol": {TokenID: "sol", Price: 178, PriceChangePercent24h: -3},
		"jup": {TokenID: "jup", Price: 0.9, PriceChangePercent24h: 12},
	}
	svc := NewMarketService(catalogPrices(t, overrides), zerolog.Nop())

	tokens, _, err := svc.ListTokens(context.Background(), ports.TokenListParams{
		SortBy:    "priceChangePercent24h",
		SortOrder: "desc",
		Page:      1,
		Limit:     20,
	})
	require.NoError(t, err)
	assert.Equal(t, "jup", tokens[0].ID)
	assert.Equal(t, "sol", tokens[len(tokens)-1].ID)
}

func TestListTokens_Paginates(t *testing.T) {
	svc := NewMarketService(catalogPrices(t, nil), zerolog.Nop())

	page1, total, err := svc.ListTokens(context.Background(), ports.TokenListParams{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page1, 3)
	assert.Equal(t, len(catalog.Tokens()), total)

	lastPage := (total + 2) / 3
	last, _, err := svc.ListTokens(context.Background(), ports.TokenListParams{Page: lastPage + 1, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, last)
}

func TestGetToken(t *testing.T) {
	svc := NewMarketService(catalogPrices(t, nil), zerolog.Nop())

	token, err := svc.GetToken(context.Background(), "sol")
	require.NoError(t, err)
	assert.Equal(t, "SOL", token.Symbol)
	assert.Equal(t, 1.0, token.Market.Price)

	_, err = svc.GetToken(context.Background(), "nope")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestChart_ValidatesAndClamps(t *testing.T) {
	svc := NewMarketService(catalogPrices(t, nil), zerolog.Nop())

	candles, err := svc.Chart("sol", domain.TimeFrame1h, 0)
	require.NoError(t, err)
	assert.Len(t, candles, 100)

	candles, err = svc.Chart("sol", domain.TimeFrame1m, 5)
	require.NoError(t, err)
	assert.Len(t, candles, 10)

	candles, err = svc.Chart("sol", domain.TimeFrame1d, 9999)
	require.NoError(t, err)
	assert.Len(t, candles, 500)

	_, err = svc.Chart("sol", "2h", 100)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, err = svc.Chart("nope", domain.TimeFrame1h, 100)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestTrendingGainersLosers(t *testing.T) {
	overrides := map[string]*domain.TokenMarketData{}
	for i, tok := range catalog.Tokens() {
		// alternate positive and negative movers
		change := float64(i + 1)
		if i%2 == 1 {
			change = -change
		}
		overrides[tok.ID] = &domain.TokenMarketData{TokenID: tok.ID, Price: 1, PriceChangePercent24h: change}
	}
	svc := NewMarketService(catalogPrices(t, overrides), zerolog.Nop())

	trending, err := svc.Trending(context.Background())
	require.NoError(t, err)
	assert.Len(t, trending, 5)
	assert.GreaterOrEqual(t, trending[0].Market.PriceChangePercent24h, trending[1].Market.PriceChangePercent24h)

	gainers, err := svc.Gainers(context.Background())
	require.NoError(t, err)
	for _, g := range gainers {
		assert.Greater(t, g.Market.PriceChangePercent24h, 0.0)
	}

	losers, err := svc.Losers(context.Background())
	require.NoError(t, err)
	for _, l := range losers {
		assert.Less(t, l.Market.PriceChangePercent24h, 0.0)
	}
	if len(losers) > 1 {
		assert.LessOrEqual(t, losers[0].Market.PriceChangePercent24h, losers[1].Market.PriceChangePercent24h)
	}
}
