package service

import (
	"context"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"

	"github.com/rs/zerolog"
)

// walletService implements ports.WalletService.
type walletService struct {
	ledger ports.WalletLedger
	log    zerolog.Logger
}

// NewWalletService creates the wallet projection service.
func NewWalletService(ledger ports.WalletLedger, log zerolog.Logger) ports.WalletService {
	return &walletService{ledger: ledger, log: log}
}

// Summary aggregates token balances into portfolio totals. The 24h PnL for
// each holding is derived from its current value and price change:
// previous = value / (1 + change/100).
func (s *walletService) Summary(ctx context.Context, userID string) (*domain.WalletSummary, error) {
	balances, err := s.ledger.ListBalances(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var totalBalanceUSD, totalPnl float64
	for _, b := range balances {
		totalBalanceUSD += b.BalanceUSD
		previous := b.BalanceUSD / (1 + b.PriceChange24h/100)
		totalPnl += b.BalanceUSD - previous
	}

	var pnlPercent float64
	if totalBalanceUSD > 0 {
		pnlPercent = totalPnl / (totalBalanceUSD - totalPnl) * 100
	}

	return &domain.WalletSummary{
		TotalBalanceUSD:    totalBalanceUSD,
		TotalPnl24h:        totalPnl,
		TotalPnlPercent24h: pnlPercent,
		Balances:           balances,
		AvailableUSD:       s.ledger.USDBalance(userID),
	}, nil
}

// Balances lists price-enriched holdings. sortOrder "asc" reverses the
// ledger's default descending-by-value ordering.
func (s *walletService) Balances(ctx context.Context, userID string, sortOrder string) ([]domain.WalletBalance, error) {
	balances, err := s.ledger.ListBalances(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if sortOrder == "asc" {
		for i, j := 0, len(balances)-1; i < j; i, j = i+1, j-1 {
			balances[i], balances[j] = balances[j], balances[i]
		}
	}
	return balances, nil
}

func (s *walletService) Transactions(userID string, filter ports.TransactionFilter) ([]domain.Transaction, int, error) {
	if filter.Type != "" {
		switch filter.Type {
		case domain.TxTypeSwap, domain.TxTypeDeposit, domain.TxTypeWithdraw:
		default:
			return nil, 0, apperror.Validation("Invalid transaction type").
				WithDetails(map[string]interface{}{"validValues": []string{"swap", "deposit", "withdraw"}})
		}
	}
	if filter.Status != "" {
		switch filter.Status {
		case domain.TxStatusPending, domain.TxStatusConfirmed, domain.TxStatusFailed:
		default:
			return nil, 0, apperror.Validation("Invalid transaction status").
				WithDetails(map[string]interface{}{"validValues": []string{"pending", "confirmed", "failed"}})
		}
	}

	items, total := s.ledger.Transactions(userID, filter)
	return items, total, nil
}

func (s *walletService) Orders(userID string, status domain.OrderStatus, page, limit int) ([]domain.Order, int, error) {
	if status != "" {
		switch status {
		case domain.OrderStatusPending, domain.OrderStatusFilled, domain.OrderStatusCancelled:
		default:
			return nil, 0, apperror.Validation("Invalid order status").
				WithDetails(map[string]interface{}{"validValues": []string{"pending", "filled", "cancelled"}})
		}
	}

	items, total := s.ledger.Orders(userID, status, page, limit)
	return items, total, nil
}

// PendingOrders returns every open order without pagination.
func (s *walletService) PendingOrders(userID string) []domain.Order {
	items, _ := s.ledger.Orders(userID, domain.OrderStatusPending, 1, domain.WalletHistoryLength)
	return items
}

// Reset wipes the wallet and returns the freshly funded state.
func (s *walletService) Reset(userID string) domain.Wallet {
	s.ledger.Reset(userID)
	s.log.Info().Str("user_id", userID).Msg("wallet reset to defaults")
	return s.ledger.GetOrCreate(userID)
}
