package ports

import (
	"context"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
)

// PriceSource resolves current market data for a token. Implementations may
// hit the network; a nil result with nil error means no data is available.
type PriceSource interface {
	MarketData(ctx context.Context, tokenID string) (*domain.TokenMarketData, error)
}

// TransactionFilter narrows and pages a wallet's transaction log.
type TransactionFilter struct {
	Type   domain.TransactionType   // "" = all
	Status domain.TransactionStatus // "" = all
	Page   int
	Limit  int
}

// LedgerStats is a point-in-time census of the wallet store.
type LedgerStats struct {
	Users        int `json:"userCount"`
	Transactions int `json:"totalTransactions"`
}

// WalletLedger owns per-user balance and holdings state. It is the only
// path through which balances change. Insufficient balance or holdings are
// expected business outcomes reported via boolean/nil returns, never errors.
type WalletLedger interface {
	// GetOrCreate returns a snapshot of the user's wallet, creating it
	// with default funding on first touch. Creation is idempotent.
	GetOrCreate(userID string) domain.Wallet

	// USDBalance returns the current simulated cash balance.
	USDBalance(userID string) float64

	// TokenHolding returns the held quantity for a token, 0 if absent.
	TokenHolding(userID, tokenID string) float64

	// ApplyTrade debits/credits the wallet for a trade. On buy it requires
	// usdBalance >= totalUSD+fee (inclusive); on sell it requires an
	// existing holding >= amount. Returns false with no state change when
	// the requirement is not met. Token metadata is copied into the
	// holding at acquisition time.
	ApplyTrade(userID string, side domain.OrderSide, token domain.Token, amount, totalUSD, fee float64) bool

	// RecordTransaction prepends to the transaction log, evicting beyond
	// the history cap.
	RecordTransaction(userID string, tx domain.Transaction)

	// RecordOrder prepends to the order log, evicting beyond the cap.
	RecordOrder(userID string, o domain.Order)

	// UpdateOrderStatus transitions an order's status, refreshing
	// UpdatedAt and preserving all other fields. Returns nil if the order
	// is not in the user's log.
	UpdateOrderStatus(userID, orderID string, status domain.OrderStatus) *domain.Order

	// Transactions returns one page of the log, newest first, plus the
	// total matching count.
	Transactions(userID string, filter TransactionFilter) ([]domain.Transaction, int)

	// Orders returns one page of the order log, newest first, optionally
	// filtered by status ("" = all), plus the total matching count.
	Orders(userID string, status domain.OrderStatus, page, limit int) ([]domain.Order, int)

	// ListBalances projects holdings enriched with current prices, sorted
	// descending by USD value. A holding with no available price is
	// omitted. Pure read, no mutation.
	ListBalances(ctx context.Context, userID string) ([]domain.WalletBalance, error)

	// PortfolioValue is usdBalance plus the live value of all holdings.
	// A missing price contributes 0.
	PortfolioValue(ctx context.Context, userID string) (float64, error)

	// Reset deletes the wallet entirely; the next access recreates defaults.
	Reset(userID string)

	// Stats reports wallet and transaction counts across all users.
	Stats() LedgerStats
}

// UserRepository stores registered accounts.
type UserRepository interface {
	FindByID(id string) *domain.User
	FindByEmail(email string) *domain.User
	// Create adds a user; returns false if the email is already taken.
	Create(u domain.User) bool
}

// CopyTradeRepository stores per-user follow relationships and settings.
type CopyTradeRepository interface {
	// Follow stores settings for (userID, traderID), overwriting any
	// previous entry.
	Follow(userID string, settings domain.CopySettings)
	// Unfollow removes the relationship; returns false if absent.
	Unfollow(userID, traderID string) bool
	// Settings returns the stored settings, nil if the user does not
	// follow the trader.
	Settings(userID, traderID string) *domain.CopySettings
	// Update replaces the stored settings; returns false if absent.
	Update(userID string, settings domain.CopySettings) bool
}
