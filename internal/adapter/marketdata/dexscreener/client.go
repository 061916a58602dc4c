package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public DexScreener API root.
const DefaultBaseURL = "https://api.dexscreener.com/latest"

// Pair is one trading pair as reported by the DexScreener token endpoint.
type Pair struct {
	ChainID     string `json:"chainId"`
	DexID       string `json:"dexId"`
	PairAddress string `json:"pairAddress"`
	BaseToken   struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	} `json:"baseToken"`
	PriceUSD string `json:"priceUsd"`
	Volume   struct {
		H24 float64 `json:"h24"`
	} `json:"volume"`
	PriceChange struct {
		H24 float64 `json:"h24"`
	} `json:"priceChange"`
	Liquidity struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
	FDV       float64 `json:"fdv"`
	MarketCap float64 `json:"marketCap"`
}

type tokensResponse struct {
	Pairs []Pair `json:"pairs"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches live pair data from the DexScreener public API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a DexScreener API client. baseURL falls back to the
// public API when empty.
func NewClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

// TokenPair returns the highest-liquidity pair for the token on the given
// chain. A nil pair with nil error means the API had no usable data.
func (c *Client) TokenPair(ctx context.Context, tokenAddress, chainID string) (*Pair, error) {
	url := fmt.Sprintf("%s/dex/tokens/%s", c.baseURL, tokenAddress)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building dexscreener request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dexscreener pairs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dexscreener returned status %d", resp.StatusCode)
	}

	var body tokensResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding dexscreener response: %w", err)
	}

	if len(body.Pairs) == 0 {
		c.log.Warn().Str("token", tokenAddress).Msg("no DexScreener pairs found")
		return nil, nil
	}

	var best *Pair
	for i := range body.Pairs {
		p := &body.Pairs[i]
		if !strings.EqualFold(p.ChainID, chainID) {
			continue
		}
		if best == nil || p.Liquidity.USD > best.Liquidity.USD {
			best = p
		}
	}
	if best == nil {
		c.log.Warn().Str("token", tokenAddress).Str("chain", chainID).Msg("no pairs on requested chain")
		return nil, nil
	}
	return best, nil
}

// MarketData converts the best pair for a token into a market snapshot.
// A nil result with nil error means no live data is available.
func (c *Client) MarketData(ctx context.Context, token domain.Token) (*domain.TokenMarketData, error) {
	pair, err := c.TokenPair(ctx, token.Address, token.Chain)
	if err != nil || pair == nil {
		return nil, err
	}

	price, err := strconv.ParseFloat(pair.PriceUSD, 64)
	if err != nil || price <= 0 {
		c.log.Warn().Str("token", token.ID).Str("priceUsd", pair.PriceUSD).Msg("unusable DexScreener price")
		return nil, nil
	}

	return &domain.TokenMarketData{
		TokenID:               token.ID,
		Price:                 price,
		PriceChange24h:        price * pair.PriceChange.H24 / 100,
		PriceChangePercent24h: pair.PriceChange.H24,
		Volume24h:             pair.Volume.H24,
		MarketCap:             pair.MarketCap,
		Liquidity:             pair.Liquidity.USD,
		Holders:               0,
		UpdatedAt:             time.Now().UTC(),
	}, nil
}
