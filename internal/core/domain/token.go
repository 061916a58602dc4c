package domain

import "time"

// Token is the static metadata for a supported token.
type Token struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
	LogoURL  string `json:"logoUrl"`
	Chain    string `json:"chain"`
}

// TokenMarketData is a point-in-time market snapshot for one token.
type TokenMarketData struct {
	TokenID               string    `json:"tokenId"`
	Price                 float64   `json:"price"`
	PriceChange24h        float64   `json:"priceChange24h"`
	PriceChangePercent24h float64   `json:"priceChangePercent24h"`
	Volume24h             float64   `json:"volume24h"`
	MarketCap             float64   `json:"marketCap"`
	Liquidity             float64   `json:"liquidity"`
	Holders               int64     `json:"holders"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// TokenWithMarket joins token metadata with its current market snapshot.
type TokenWithMarket struct {
	Token
	Market TokenMarketData `json:"market"`
}
