package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/peterzzshi/gmgn-clone/internal/catalog"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	trendingSize = 5
	moversSize   = 10

	chartMinCount     = 10
	chartMaxCount     = 500
	chartDefaultCount = 100
)

// marketService implements ports.MarketService over the static catalog
// enriched with live prices.
type marketService struct {
	prices ports.PriceSource
	log    zerolog.Logger
}

// NewMarketService creates the market catalog service.
func NewMarketService(prices ports.PriceSource, log zerolog.Logger) ports.MarketService {
	return &marketService{prices: prices, log: log}
}

func (s *marketService) allWithMarket(ctx context.Context) []domain.TokenWithMarket {
	tokens := catalog.Tokens()
	out := make([]domain.TokenWithMarket, 0, len(tokens))
	for _, t := range tokens {
		md, err := s.prices.MarketData(ctx, t.ID)
		if err != nil || md == nil {
			s.log.Warn().Str("token", t.ID).Msg("no market data for catalog token")
			continue
		}
		out = append(out, domain.TokenWithMarket{Token: t, Market: *md})
	}
	return out
}

func marketField(t domain.TokenWithMarket, field string) float64 {
	switch field {
	case "volume24h":
		return t.Market.Volume24h
	case "priceChangePercent24h":
		return t.Market.PriceChangePercent24h
	default:
		return t.Market.MarketCap
	}
}

func sortTokens(tokens []domain.TokenWithMarket, field, order string) {
	sort.SliceStable(tokens, func(i, j int) bool {
		if order == "asc" {
			return marketField(tokens[i], field) < marketField(tokens[j], field)
		}
		return marketField(tokens[i], field) > marketField(tokens[j], field)
	})
}

// ListTokens searches, sorts and pages the catalog. Search matches symbol,
// name or address case-insensitively.
func (s *marketService) ListTokens(ctx context.Context, params ports.TokenListParams) ([]domain.TokenWithMarket, int, error) {
	tokens := s.allWithMarket(ctx)

	if q := strings.ToLower(strings.TrimSpace(params.Search)); q != "" {
		filtered := tokens[:0:0]
		for _, t := range tokens {
			if strings.Contains(strings.ToLower(t.Symbol), q) ||
				strings.Contains(strings.ToLower(t.Name), q) ||
				strings.Contains(strings.ToLower(t.Address), q) {
				filtered = append(filtered, t)
			}
		}
		tokens = filtered
	}

	sortBy := params.SortBy
	switch sortBy {
	case "", "marketCap", "volume24h", "priceChangePercent24h":
	default:
		sortBy = "marketCap"
	}
	sortTokens(tokens, sortBy, params.SortOrder)

	total := len(tokens)
	return pageSlice(tokens, params.Page, params.Limit), total, nil
}

func (s *marketService) GetToken(ctx context.Context, tokenID string) (*domain.TokenWithMarket, error) {
	token := catalog.TokenByID(tokenID)
	if token == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Token '%s'", tokenID))
	}

	md, err := s.prices.MarketData(ctx, tokenID)
	if err != nil || md == nil {
		return nil, apperror.InternalMsg("Failed to get market data")
	}

	return &domain.TokenWithMarket{Token: *token, Market: *md}, nil
}

// Chart generates a random-walk OHLCV series anchored at the token's base
// price. count is clamped to [10, 500].
func (s *marketService) Chart(tokenID string, timeFrame domain.TimeFrame, count int) ([]domain.OHLCV, error) {
	if catalog.TokenByID(tokenID) == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Token '%s'", tokenID))
	}
	if _, ok := domain.TimeFrameSeconds[timeFrame]; !ok {
		return nil, apperror.Validation("Invalid time frame").
			WithDetails(map[string]interface{}{"validValues": domain.ValidTimeFrames()})
	}

	if count == 0 {
		count = chartDefaultCount
	}
	if count < chartMinCount {
		count = chartMinCount
	}
	if count > chartMaxCount {
		count = chartMaxCount
	}

	return catalog.TokenChart(tokenID, timeFrame, count), nil
}

// Trending is the top movers by 24h change.
func (s *marketService) Trending(ctx context.Context) ([]domain.TokenWithMarket, error) {
	tokens := s.allWithMarket(ctx)
	sortTokens(tokens, "priceChangePercent24h", "desc")
	if len(tokens) > trendingSize {
		tokens = tokens[:trendingSize]
	}
	return tokens, nil
}

// Gainers lists tokens with a positive 24h change, best first.
func (s *marketService) Gainers(ctx context.Context) ([]domain.TokenWithMarket, error) {
	tokens := s.allWithMarket(ctx)
	sortTokens(tokens, "priceChangePercent24h", "desc")
	gainers := tokens[:0:0]
	for _, t := range tokens {
		if t.Market.PriceChangePercent24h > 0 {
			gainers = append(gainers, t)
		}
	}
	if len(gainers) > moversSize {
		gainers = gainers[:moversSize]
	}
	return gainers, nil
}

// Losers lists tokens with a negative 24h change, worst first.
func (s *marketService) Losers(ctx context.Context) ([]domain.TokenWithMarket, error) {
	tokens := s.allWithMarket(ctx)
	sortTokens(tokens, "priceChangePercent24h", "asc")
	losers := tokens[:0:0]
	for _, t := range tokens {
		if t.Market.PriceChangePercent24h < 0 {
			losers = append(losers, t)
		}
	}
	if len(losers) > moversSize {
		losers = losers[:moversSize]
	}
	return losers, nil
}

// pageSlice returns one page of items, empty past the end.
func pageSlice[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
