package domain

// Default funding for a freshly created wallet.
const (
	DefaultUSDBalance   = 10_000.0
	DefaultTokenID      = "sol"
	DefaultTokenAmount  = 5.0
	WalletHistoryLength = 100 // Cap for both transaction and order logs.
)

// AssetHolding is the quantity of one token owned by a wallet, with the
// display metadata copied from the catalog at acquisition time.
type AssetHolding struct {
	TokenID string  `json:"tokenId"`
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	LogoURL string  `json:"logoUrl"`
	Amount  float64 `json:"amount"`
}

// Wallet is a snapshot of one user's simulated cash and holdings.
// The ledger hands out copies; mutations only happen through its methods.
type Wallet struct {
	UserID       string                  `json:"userId"`
	USDBalance   float64                 `json:"usdBalance"`
	Assets       map[string]AssetHolding `json:"assets"`
	Transactions []Transaction           `json:"transactions"`
	Orders       []Order                 `json:"orders"`
}

// WalletBalance is one holding enriched with the current catalog price.
type WalletBalance struct {
	TokenID        string  `json:"tokenId"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	LogoURL        string  `json:"logoUrl"`
	Balance        float64 `json:"balance"`
	BalanceUSD     float64 `json:"balanceUsd"`
	Price          float64 `json:"price"`
	PriceChange24h float64 `json:"priceChange24h"`
}

// WalletSummary aggregates a wallet's token balances into portfolio totals.
type WalletSummary struct {
	TotalBalanceUSD   float64         `json:"totalBalanceUsd"`
	TotalPnl24h       float64         `json:"totalPnl24h"`
	TotalPnlPercent24h float64        `json:"totalPnlPercent24h"`
	Balances          []WalletBalance `json:"balances"`
	AvailableUSD      float64         `json:"availableUsd"`
}
