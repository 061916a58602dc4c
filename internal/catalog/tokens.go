// Package catalog holds the static token catalog and the mock trader book.
// It is read-only reference data; live prices come from the market data
// adapter, which falls back to the base prices defined here.
package catalog

import (
	"math/rand"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
)

var tokens = []domain.Token{
	{
		ID:       "sol",
		Symbol:   "SOL",
		Name:     "Solana",
		Address:  "So11111111111111111111111111111111111111112",
		Decimals: 9,
		LogoURL:  "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/So11111111111111111111111111111111111111112/logo.png",
		Chain:    "solana",
	},
	{
		ID:       "bonk",
		Symbol:   "BONK",
		Name:     "Bonk",
		Address:  "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263",
		Decimals: 5,
		LogoURL:  "https://arweave.net/hQiPZOsRZXGXBJd_82PhVdlM_hACsT_q6wqwf5cSY7I",
		Chain:    "solana",
	},
	{
		ID:       "wif",
		Symbol:   "WIF",
		Name:     "dogwifhat",
		Address:  "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm",
		Decimals: 6,
		LogoURL:  "https://bafkreibk3covs5ltyqxa272uodhculbr6kea6betiez2aotjqqzlvtygt4.ipfs.nftstorage.link",
		Chain:    "solana",
	},
	{
		ID:       "jup",
		Symbol:   "JUP",
		Name:     "Jupiter",
		Address:  "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN",
		Decimals: 6,
		LogoURL:  "https://static.jup.ag/jup/icon.png",
		Chain:    "solana",
	},
	{
		ID:       "ray",
		Symbol:   "RAY",
		Name:     "Raydium",
		Address:  "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R",
		Decimals: 6,
		LogoURL:  "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R/logo.png",
		Chain:    "solana",
	},
	{
		ID:       "orca",
		Symbol:   "ORCA",
		Name:     "Orca",
		Address:  "orcaEKTdK7LKz57vaAYr9QeNsVEPfiu6QeMU1kektZE",
		Decimals: 6,
		LogoURL:  "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/orcaEKTdK7LKz57vaAYr9QeNsVEPfiu6QeMU1kektZE/logo.png",
		Chain:    "solana",
	},
	{
		ID:       "popcat",
		Symbol:   "POPCAT",
		Name:     "Popcat",
		Address:  "7GCihgDB8fe6KNjn2MYtkzZcRjQy3t9GHdC8uHYmW2hr",
		Decimals: 9,
		LogoURL:  "https://bafkreidvkvuzyslw5jh5z242lgzwzhbi2kxxnpkic5wsvyno5ikvpr7reu.ipfs.nftstorage.link",
		Chain:    "solana",
	},
	{
		ID:       "render",
		Symbol:   "RENDER",
		Name:     "Render Token",
		Address:  "rndrizKT3MK1iimdxRdWabcF7Zg7AR5T4nud4EkHBof",
		Decimals: 8,
		LogoURL:  "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/rndrizKT3MK1iimdxRdWabcF7Zg7AR5T4nud4EkHBof/logo.png",
		Chain:    "solana",
	},
}

// baseline holds the hardcoded market figures used when no live data is
// available: base price, 24h change, volume, market cap, liquidity, holders.
type baseline struct {
	price     float64
	change24h float64
	volume    float64
	marketCap float64
	liquidity float64
	holders   int64
}

var baselines = map[string]baseline{
	"sol":    {178.45, 5.23, 2_450_000_000, 82_000_000_000, 450_000_000, 2_500_000},
	"bonk":   {0.00002834, 0.00000156, 180_000_000, 1_800_000_000, 45_000_000, 850_000},
	"wif":    {2.45, -0.12, 320_000_000, 2_400_000_000, 85_000_000, 420_000},
	"jup":    {0.92, 0.04, 95_000_000, 1_250_000_000, 65_000_000, 380_000},
	"ray":    {4.78, 0.23, 42_000_000, 720_000_000, 28_000_000, 145_000},
	"orca":   {3.92, -0.08, 18_000_000, 280_000_000, 22_000_000, 95_000},
	"popcat": {0.78, 0.15, 125_000_000, 760_000_000, 32_000_000, 185_000},
	"render": {7.24, 0.42, 85_000_000, 2_800_000_000, 48_000_000, 125_000},
}

// Tokens returns the full supported-token list.
func Tokens() []domain.Token {
	out := make([]domain.Token, len(tokens))
	copy(out, tokens)
	return out
}

// TokenByID looks a token up by its catalog id.
func TokenByID(tokenID string) *domain.Token {
	for i := range tokens {
		if tokens[i].ID == tokenID {
			t := tokens[i]
			return &t
		}
	}
	return nil
}

// BasePrice returns the hardcoded reference price for a token.
func BasePrice(tokenID string) (float64, bool) {
	b, ok := baselines[tokenID]
	return b.price, ok
}

// FallbackMarketData synthesizes market data around the token's baseline
// with a small random variance, mimicking live movement.
func FallbackMarketData(tokenID string) *domain.TokenMarketData {
	b, ok := baselines[tokenID]
	if !ok {
		return nil
	}

	const variance = 0.02
	price := b.price * (1 + (rand.Float64()-0.5)*variance)
	change := b.change24h + (rand.Float64()-0.5)*2

	return &domain.TokenMarketData{
		TokenID:               tokenID,
		Price:                 price,
		PriceChange24h:        change,
		PriceChangePercent24h: change / (price - change) * 100,
		Volume24h:             b.volume * (1 + (rand.Float64()-0.5)*0.1),
		MarketCap:             b.marketCap,
		Liquidity:             b.liquidity,
		Holders:               b.holders,
		UpdatedAt:             time.Now().UTC(),
	}
}
