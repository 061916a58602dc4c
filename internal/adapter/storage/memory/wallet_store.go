// Package memory implements the process-local stores backing the platform.
// Nothing here survives a restart; a fresh process starts every user from
// the default funding.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"

	"github.com/rs/zerolog"
)

// userWallet is the mutable per-user state. Its mutex serializes every
// mutation for one user, so a balance check and the debit it guards always
// commit atomically with respect to other trades for the same user.
type userWallet struct {
	mu           sync.Mutex
	usdBalance   float64
	assets       map[string]*domain.AssetHolding
	transactions []domain.Transaction
	orders       []domain.Order
}

// WalletStore is the in-process wallet ledger. It implements
// ports.WalletLedger and is the only component allowed to mutate wallet
// state. Construct once and inject.
type WalletStore struct {
	mu      sync.RWMutex
	wallets map[string]*userWallet

	prices       ports.PriceSource
	defaultToken domain.Token
	log          zerolog.Logger
}

var _ ports.WalletLedger = (*WalletStore)(nil)

// NewWalletStore creates an empty ledger. defaultToken provides the display
// metadata for the starting holding credited to every new wallet.
func NewWalletStore(prices ports.PriceSource, defaultToken domain.Token, log zerolog.Logger) *WalletStore {
	return &WalletStore{
		wallets:      make(map[string]*userWallet),
		prices:       prices,
		defaultToken: defaultToken,
		log:          log,
	}
}

// wallet returns the live entry for a user, creating it with default
// funding on first touch.
func (s *WalletStore) wallet(userID string) *userWallet {
	s.mu.RLock()
	w, ok := s.wallets[userID]
	s.mu.RUnlock()
	if ok {
		return w
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok = s.wallets[userID]; ok {
		return w
	}

	w = &userWallet{
		usdBalance: domain.DefaultUSDBalance,
		assets: map[string]*domain.AssetHolding{
			s.defaultToken.ID: {
				TokenID: s.defaultToken.ID,
				Symbol:  s.defaultToken.Symbol,
				Name:    s.defaultToken.Name,
				LogoURL: s.defaultToken.LogoURL,
				Amount:  domain.DefaultTokenAmount,
			},
		},
	}
	s.wallets[userID] = w
	s.log.Info().Str("user_id", userID).Msg("created new wallet")
	return w
}

// GetOrCreate returns a snapshot of the user's wallet.
func (s *WalletStore) GetOrCreate(userID string) domain.Wallet {
	w := s.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot(userID)
}

// snapshot copies the wallet state. Caller must hold w.mu.
func (w *userWallet) snapshot(userID string) domain.Wallet {
	assets := make(map[string]domain.AssetHolding, len(w.assets))
	for id, a := range w.assets {
		assets[id] = *a
	}
	txs := make([]domain.Transaction, len(w.transactions))
	copy(txs, w.transactions)
	orders := make([]domain.Order, len(w.orders))
	copy(orders, w.orders)

	return domain.Wallet{
		UserID:       userID,
		USDBalance:   w.usdBalance,
		Assets:       assets,
		Transactions: txs,
		Orders:       orders,
	}
}

// USDBalance returns the current simulated cash balance.
func (s *WalletStore) USDBalance(userID string) float64 {
	w := s.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.usdBalance
}

// TokenHolding returns the held quantity for a token, 0 if absent.
func (s *WalletStore) TokenHolding(userID, tokenID string) float64 {
	w := s.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()
	if a, ok := w.assets[tokenID]; ok {
		return a.Amount
	}
	return 0
}

// ApplyTrade debits/credits the wallet for a trade. The sufficiency check
// and the mutation run under the same per-user lock; a rejected trade
// leaves the wallet untouched.
func (s *WalletStore) ApplyTrade(userID string, side domain.OrderSide, token domain.Token, amount, totalUSD, fee float64) bool {
	if amount < 0 || totalUSD < 0 || fee < 0 {
		return false
	}

	w := s.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()

	switch side {
	case domain.SideBuy:
		totalCost := totalUSD + fee
		if w.usdBalance < totalCost {
			s.log.Debug().
				Str("user_id", userID).
				Float64("balance", w.usdBalance).
				Float64("cost", totalCost).
				Msg("buy rejected: insufficient USD balance")
			return false
		}

		w.usdBalance -= totalCost
		if existing, ok := w.assets[token.ID]; ok {
			existing.Amount += amount
		} else {
			w.assets[token.ID] = &domain.AssetHolding{
				TokenID: token.ID,
				Symbol:  token.Symbol,
				Name:    token.Name,
				LogoURL: token.LogoURL,
				Amount:  amount,
			}
		}

	case domain.SideSell:
		existing, ok := w.assets[token.ID]
		if !ok || existing.Amount < amount {
			held := 0.0
			if ok {
				held = existing.Amount
			}
			s.log.Debug().
				Str("user_id", userID).
				Str("token_id", token.ID).
				Float64("held", held).
				Float64("requested", amount).
				Msg("sell rejected: insufficient token balance")
			return false
		}

		existing.Amount -= amount
		if existing.Amount <= 0 {
			delete(w.assets, token.ID)
		}
		w.usdBalance += totalUSD - fee

	default:
		return false
	}

	s.log.Debug().
		Str("user_id", userID).
		Str("side", string(side)).
		Str("token_id", token.ID).
		Float64("amount", amount).
		Float64("total_usd", totalUSD).
		Float64("fee", fee).
		Msg("trade applied")
	return true
}

// RecordTransaction prepends to the transaction log and evicts the oldest
// entries beyond the history cap.
func (s *WalletStore) RecordTransaction(userID string, tx domain.Transaction) {
	w := s.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()

	w.transactions = append([]domain.Transaction{tx}, w.transactions...)
	if len(w.transactions) > domain.WalletHistoryLength {
		w.transactions = w.transactions[:domain.WalletHistoryLength]
	}
}

// RecordOrder prepends to the order log and evicts beyond the cap.
func (s *WalletStore) RecordOrder(userID string, o domain.Order) {
	w := s.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()

	w.orders = append([]domain.Order{o}, w.orders...)
	if len(w.orders) > domain.WalletHistoryLength {
		w.orders = w.orders[:domain.WalletHistoryLength]
	}
}

// UpdateOrderStatus transitions an order's status, preserving every other
// field. Returns nil if the order is not in the user's log.
func (s *WalletStore) UpdateOrderStatus(userID, orderID string, status domain.OrderStatus) *domain.Order {
	w := s.wallet(userID)
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.orders {
		if w.orders[i].ID == orderID {
			w.orders[i].Status = status
			w.orders[i].UpdatedAt = time.Now().UTC()
			updated := w.orders[i]
			return &updated
		}
	}
	return nil
}

// Transactions returns one page of the log, newest first.
func (s *WalletStore) Transactions(userID string, filter ports.TransactionFilter) ([]domain.Transaction, int) {
	w := s.wallet(userID)
	w.mu.Lock()
	all := make([]domain.Transaction, len(w.transactions))
	copy(all, w.transactions)
	w.mu.Unlock()

	filtered := all[:0:0]
	for _, tx := range all {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		filtered = append(filtered, tx)
	}

	return pageOf(filtered, filter.Page, filter.Limit), len(filtered)
}

// Orders returns one page of the order log, newest first, optionally
// filtered by status.
func (s *WalletStore) Orders(userID string, status domain.OrderStatus, page, limit int) ([]domain.Order, int) {
	w := s.wallet(userID)
	w.mu.Lock()
	all := make([]domain.Order, len(w.orders))
	copy(all, w.orders)
	w.mu.Unlock()

	filtered := all[:0:0]
	for _, o := range all {
		if status != "" && o.Status != status {
			continue
		}
		filtered = append(filtered, o)
	}

	return pageOf(filtered, page, limit), len(filtered)
}

// ListBalances projects holdings enriched with current prices, sorted
// descending by USD value. Prices are fetched outside the wallet lock.
func (s *WalletStore) ListBalances(ctx context.Context, userID string) ([]domain.WalletBalance, error) {
	w := s.wallet(userID)
	w.mu.Lock()
	holdings := make([]domain.AssetHolding, 0, len(w.assets))
	for _, a := range w.assets {
		holdings = append(holdings, *a)
	}
	w.mu.Unlock()

	balances := make([]domain.WalletBalance, 0, len(holdings))
	for _, h := range holdings {
		md, err := s.prices.MarketData(ctx, h.TokenID)
		if err != nil || md == nil {
			continue
		}

		balances = append(balances, domain.WalletBalance{
			TokenID:        h.TokenID,
			Symbol:         h.Symbol,
			Name:           h.Name,
			LogoURL:        h.LogoURL,
			Balance:        h.Amount,
			BalanceUSD:     h.Amount * md.Price,
			Price:          md.Price,
			PriceChange24h: md.PriceChangePercent24h,
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].BalanceUSD > balances[j].BalanceUSD
	})
	return balances, nil
}

// PortfolioValue is the cash balance plus the live value of all holdings.
// Holdings without an available price contribute 0.
func (s *WalletStore) PortfolioValue(ctx context.Context, userID string) (float64, error) {
	w := s.wallet(userID)
	w.mu.Lock()
	total := w.usdBalance
	holdings := make([]domain.AssetHolding, 0, len(w.assets))
	for _, a := range w.assets {
		holdings = append(holdings, *a)
	}
	w.mu.Unlock()

	for _, h := range holdings {
		md, err := s.prices.MarketData(ctx, h.TokenID)
		if err != nil || md == nil {
			continue
		}
		total += h.Amount * md.Price
	}
	return total, nil
}

// Reset deletes the wallet entirely; the next access recreates defaults.
func (s *WalletStore) Reset(userID string) {
	s.mu.Lock()
	delete(s.wallets, userID)
	s.mu.Unlock()
	s.log.Info().Str("user_id", userID).Msg("wallet reset")
}

// Stats reports wallet and transaction counts across all users.
func (s *WalletStore) Stats() ports.LedgerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ports.LedgerStats{Users: len(s.wallets)}
	for _, w := range s.wallets {
		w.mu.Lock()
		stats.Transactions += len(w.transactions)
		w.mu.Unlock()
	}
	return stats
}

func pageOf[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(items)
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
