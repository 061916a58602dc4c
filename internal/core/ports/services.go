package ports

import (
	"context"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
)

// --- Trading ---

// PlaceOrderParams holds validated input for order placement.
type PlaceOrderParams struct {
	UserID   string
	TokenID  string
	Side     domain.OrderSide
	Type     domain.OrderType
	Amount   float64
	Price    *float64 // required for limit orders
	Slippage *float64 // percent, defaults to 0.5
}

// QuoteParams holds input for a trade quote.
type QuoteParams struct {
	TokenID string
	Side    domain.OrderSide
	Amount  float64
}

// Quote is an indicative execution estimate with a short validity window.
type Quote struct {
	TokenID        string    `json:"tokenId"`
	Side           domain.OrderSide `json:"side"`
	Amount         float64   `json:"amount"`
	Price          float64   `json:"price"`
	EstimatedPrice float64   `json:"estimatedPrice"`
	EstimatedTotal float64   `json:"estimatedTotal"`
	EstimatedFee   float64   `json:"estimatedFee"`
	Slippage       float64   `json:"slippage"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// CancelResult is the acknowledgement for an order cancellation.
type CancelResult struct {
	ID        string             `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// TradingService orchestrates order placement against the wallet ledger.
type TradingService interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*domain.Order, error)
	CancelOrder(ctx context.Context, userID, orderID string) (*CancelResult, error)
	Quote(ctx context.Context, params QuoteParams) (*Quote, error)
}

// --- Wallet projections ---

// WalletService exposes read projections and the reset operation.
type WalletService interface {
	Summary(ctx context.Context, userID string) (*domain.WalletSummary, error)
	Balances(ctx context.Context, userID string, sortOrder string) ([]domain.WalletBalance, error)
	Transactions(userID string, filter TransactionFilter) ([]domain.Transaction, int, error)
	Orders(userID string, status domain.OrderStatus, page, limit int) ([]domain.Order, int, error)
	PendingOrders(userID string) []domain.Order
	Reset(userID string) domain.Wallet
}

// --- Market catalog ---

// TokenListParams filters and pages the token list.
type TokenListParams struct {
	Search    string
	SortBy    string // marketCap, volume24h, priceChangePercent24h
	SortOrder string // asc, desc
	Page      int
	Limit     int
}

// MarketService serves the token catalog with live market data.
type MarketService interface {
	ListTokens(ctx context.Context, params TokenListParams) ([]domain.TokenWithMarket, int, error)
	GetToken(ctx context.Context, tokenID string) (*domain.TokenWithMarket, error)
	Chart(tokenID string, timeFrame domain.TimeFrame, count int) ([]domain.OHLCV, error)
	Trending(ctx context.Context) ([]domain.TokenWithMarket, error)
	Gainers(ctx context.Context) ([]domain.TokenWithMarket, error)
	Losers(ctx context.Context) ([]domain.TokenWithMarket, error)
}

// --- Copy trading ---

// TraderListParams filters and pages the trader leaderboard.
type TraderListParams struct {
	Search       string
	Tag          string
	VerifiedOnly bool
	SortBy       string // pnlPercent7d, pnlPercent30d, followers, winRate
	SortOrder    string
	Page         int
	Limit        int
}

// PositionsResult is the positions list with its aggregate summary.
type PositionsResult struct {
	Positions []domain.CopyPosition `json:"positions"`
	Summary   PositionsSummary      `json:"summary"`
}

// PositionsSummary aggregates a user's copy positions.
type PositionsSummary struct {
	Total     int     `json:"total"`
	OpenCount int     `json:"openCount"`
	TotalPnl  float64 `json:"totalPnl"`
}

// FollowResult is returned when a user starts following a trader.
type FollowResult struct {
	domain.CopySettings
	Trader domain.Trader `json:"trader"`
}

// SettingsUpdate carries the mutable copy-settings fields. Nil = unchanged.
type SettingsUpdate struct {
	IsActive        *bool
	MaxPositionSize *float64
	CopyRatio       *float64
	StopLoss        *float64
	TakeProfit      *float64
	MaxDailyTrades  *int
}

// CopyTradeService serves the trader leaderboard and follow relationships.
type CopyTradeService interface {
	ListTraders(params TraderListParams) ([]domain.Trader, int)
	GetTrader(traderID string) (*domain.Trader, error)
	TopTraders() []domain.Trader
	Positions(userID string, status string) (*PositionsResult, error)
	Follow(userID, traderID string) (*FollowResult, error)
	Unfollow(userID, traderID string) error
	UpdateSettings(userID, traderID string, update SettingsUpdate) (*domain.CopySettings, error)
}

// --- Auth ---

// RegisterParams holds input for account registration.
type RegisterParams struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Tokens is the credential pair issued on login/registration.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// Session pairs the authenticated user with their tokens.
type Session struct {
	User   domain.User `json:"user"`
	Tokens Tokens      `json:"tokens"`
}

// AuthService implements demo-grade authentication: login accepts any
// credentials, registration checks only for duplicates.
type AuthService interface {
	Login(email, password string) (*Session, error)
	Register(params RegisterParams) (*Session, error)
	Me(userID string) (*domain.User, error)
}

// TokenService issues and validates access tokens.
type TokenService interface {
	Issue(userID string) (token string, expiresIn int64, err error)
	Validate(token string) (userID string, err error)
}

// HashService hashes passwords at registration.
type HashService interface {
	Hash(password string) (string, error)
}
