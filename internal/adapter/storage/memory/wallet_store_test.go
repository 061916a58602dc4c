package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticPrices is a PriceSource fake with fixed quotes.
type staticPrices struct {
	quotes map[string]float64
}

func (p *staticPrices) MarketData(_ context.Context, tokenID string) (*domain.TokenMarketData, error) {
	price, ok := p.quotes[tokenID]
	if !ok {
		return nil, nil
	}
	return &domain.TokenMarketData{
		TokenID:               tokenID,
		Price:                 price,
		PriceChangePercent24h: 2.5,
	}, nil
}

var (
	solToken = domain.Token{ID: "sol", Symbol: "SOL", Name: "Solana", LogoURL: "https://example.com/sol.png"}
	jupToken = domain.Token{ID: "jup", Symbol: "JUP", Name: "Jupiter", LogoURL: "https://example.com/jup.png"}
)

func newTestStore(quotes map[string]float64) *WalletStore {
	if quotes == nil {
		quotes = map[string]float64{"sol": 178.45, "jup": 0.92}
	}
	return NewWalletStore(&staticPrices{quotes: quotes}, solToken, zerolog.Nop())
}

func TestGetOrCreate_Defaults(t *testing.T) {
	s := newTestStore(nil)

	w := s.GetOrCreate("alice")
	assert.Equal(t, domain.DefaultUSDBalance, w.USDBalance)
	require.Contains(t, w.Assets, "sol")
	assert.Equal(t, domain.DefaultTokenAmount, w.Assets["sol"].Amount)
	assert.Equal(t, "SOL", w.Assets["sol"].Symbol)
	assert.Empty(t, w.Transactions)
	assert.Empty(t, w.Orders)
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	s := newTestStore(nil)

	first := s.GetOrCreate("alice")
	require.True(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, 10, 9.2, 0.01))
	second := s.GetOrCreate("alice")

	// no duplicate default funding on the second touch
	assert.NotEqual(t, first.USDBalance, second.USDBalance)
	assert.InDelta(t, domain.DefaultUSDBalance-9.21, second.USDBalance, 1e-9)
}

func TestGetOrCreate_SnapshotIsDetached(t *testing.T) {
	s := newTestStore(nil)

	w := s.GetOrCreate("alice")
	h := w.Assets["sol"]
	h.Amount = 999
	w.Assets["sol"] = h

	assert.Equal(t, domain.DefaultTokenAmount, s.TokenHolding("alice", "sol"))
}

func TestApplyTrade_BuySuccess(t *testing.T) {
	s := newTestStore(nil)

	ok := s.ApplyTrade("alice", domain.SideBuy, jupToken, 500, 460, 0.18)
	require.True(t, ok)
	assert.InDelta(t, 9539.82, s.USDBalance("alice"), 1e-9)
	assert.Equal(t, 500.0, s.TokenHolding("alice", "jup"))
}

func TestApplyTrade_BuyInsufficientFunds(t *testing.T) {
	s := newTestStore(nil)

	// drain down to 100 USD
	require.True(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, 1, domain.DefaultUSDBalance-100, 0))
	require.InDelta(t, 100, s.USDBalance("alice"), 1e-9)

	ok := s.ApplyTrade("alice", domain.SideBuy, solToken, 1, 150, 0.15)
	assert.False(t, ok)
	assert.InDelta(t, 100, s.USDBalance("alice"), 1e-9)
	assert.Equal(t, domain.DefaultTokenAmount, s.TokenHolding("alice", "sol"))
}

func TestApplyTrade_BuyBoundaryIsInclusive(t *testing.T) {
	s := newTestStore(nil)

	// totalUSD + fee exactly equals the balance
	ok := s.ApplyTrade("alice", domain.SideBuy, jupToken, 100, domain.DefaultUSDBalance-1, 1)
	assert.True(t, ok)
	assert.InDelta(t, 0, s.USDBalance("alice"), 1e-9)
}

func TestApplyTrade_SellInsufficientHolding(t *testing.T) {
	s := newTestStore(nil)

	ok := s.ApplyTrade("alice", domain.SideSell, solToken, 6, 1000, 1)
	assert.False(t, ok)
	assert.Equal(t, domain.DefaultUSDBalance, s.USDBalance("alice"))
	assert.Equal(t, domain.DefaultTokenAmount, s.TokenHolding("alice", "sol"))
}

func TestApplyTrade_SellDrainsHoldingRemovesEntry(t *testing.T) {
	s := newTestStore(nil)

	ok := s.ApplyTrade("alice", domain.SideSell, solToken, 5, 892.25, 0.89)
	require.True(t, ok)

	w := s.GetOrCreate("alice")
	_, present := w.Assets["sol"]
	assert.False(t, present, "drained holding must be removed, not kept at zero")
	assert.InDelta(t, domain.DefaultUSDBalance+892.25-0.89, w.USDBalance, 1e-9)
}

func TestApplyTrade_RoundTripCostsTwoFees(t *testing.T) {
	s := newTestStore(nil)
	const fee = 0.46

	require.True(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, 500, 460, fee))
	require.True(t, s.ApplyTrade("alice", domain.SideSell, jupToken, 500, 460, fee))

	assert.InDelta(t, domain.DefaultUSDBalance-2*fee, s.USDBalance("alice"), 1e-9)
	assert.Equal(t, 0.0, s.TokenHolding("alice", "jup"))
}

func TestApplyTrade_RejectsNegativeInputs(t *testing.T) {
	s := newTestStore(nil)
	assert.False(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, -1, 10, 0))
	assert.False(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, 1, -10, 0))
	assert.False(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, 1, 10, -0.1))
	assert.Equal(t, domain.DefaultUSDBalance, s.USDBalance("alice"))
}

func TestApplyTrade_InvariantsUnderRandomSequence(t *testing.T) {
	s := newTestStore(nil)

	for i := 0; i < 500; i++ {
		if i%2 == 0 {
			s.ApplyTrade("alice", domain.SideBuy, jupToken, float64(i%7)*10, float64(i%13)*100, 0.5)
		} else {
			s.ApplyTrade("alice", domain.SideSell, jupToken, float64(i%5)*15, float64(i%11)*90, 0.5)
		}

		w := s.GetOrCreate("alice")
		assert.GreaterOrEqual(t, w.USDBalance, 0.0, "iteration %d", i)
		for id, a := range w.Assets {
			assert.Greater(t, a.Amount, 0.0, "holding %s at iteration %d", id, i)
		}
	}
}

func TestApplyTrade_ConcurrentBuysNeverOverdraw(t *testing.T) {
	s := newTestStore(nil)

	// 100 concurrent buys of 200 USD each against a 10k balance:
	// at most 50 may succeed.
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.ApplyTrade("alice", domain.SideBuy, jupToken, 10, 200, 0) {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, succeeded)
	assert.GreaterOrEqual(t, s.USDBalance("alice"), 0.0)
}

func TestRecordTransaction_EvictsBeyondCap(t *testing.T) {
	s := newTestStore(nil)

	for i := 1; i <= 101; i++ {
		s.RecordTransaction("alice", domain.Transaction{
			ID:     fmt.Sprintf("tx-%d", i),
			Type:   domain.TxTypeSwap,
			Status: domain.TxStatusConfirmed,
		})
	}

	all, total := s.Transactions("alice", ports.TransactionFilter{Page: 1, Limit: 200})
	assert.Equal(t, 100, total)
	require.Len(t, all, 100)
	assert.Equal(t, "tx-101", all[0].ID, "newest first")
	assert.Equal(t, "tx-2", all[99].ID, "oldest entry evicted")
}

func TestRecordOrder_EvictsBeyondCap(t *testing.T) {
	s := newTestStore(nil)

	for i := 1; i <= 105; i++ {
		s.RecordOrder("alice", domain.Order{ID: fmt.Sprintf("order-%d", i), Status: domain.OrderStatusFilled})
	}

	orders, total := s.Orders("alice", "", 1, 200)
	assert.Equal(t, 100, total)
	assert.Equal(t, "order-105", orders[0].ID)
	assert.Equal(t, "order-6", orders[99].ID)
}

func TestTransactions_FilterAndPaginate(t *testing.T) {
	s := newTestStore(nil)

	for i := 0; i < 10; i++ {
		typ := domain.TxTypeSwap
		if i%2 == 0 {
			typ = domain.TxTypeDeposit
		}
		s.RecordTransaction("alice", domain.Transaction{ID: fmt.Sprintf("tx-%d", i), Type: typ, Status: domain.TxStatusConfirmed})
	}

	swaps, total := s.Transactions("alice", ports.TransactionFilter{Type: domain.TxTypeSwap, Page: 1, Limit: 3})
	assert.Equal(t, 5, total)
	assert.Len(t, swaps, 3)

	page2, _ := s.Transactions("alice", ports.TransactionFilter{Type: domain.TxTypeSwap, Page: 2, Limit: 3})
	assert.Len(t, page2, 2)
}

func TestOrders_FilterByStatus(t *testing.T) {
	s := newTestStore(nil)

	s.RecordOrder("alice", domain.Order{ID: "o1", Status: domain.OrderStatusFilled})
	s.RecordOrder("alice", domain.Order{ID: "o2", Status: domain.OrderStatusPending})
	s.RecordOrder("alice", domain.Order{ID: "o3", Status: domain.OrderStatusPending})

	pending, total := s.Orders("alice", domain.OrderStatusPending, 1, 20)
	assert.Equal(t, 2, total)
	require.Len(t, pending, 2)
	assert.Equal(t, "o3", pending[0].ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestStore(nil)

	s.RecordOrder("alice", domain.Order{ID: "o1", Status: domain.OrderStatusPending, Amount: 50, Price: 2.6})

	updated := s.UpdateOrderStatus("alice", "o1", domain.OrderStatusCancelled)
	require.NotNil(t, updated)
	assert.Equal(t, domain.OrderStatusCancelled, updated.Status)
	assert.Equal(t, 50.0, updated.Amount, "other fields preserved")
	assert.False(t, updated.UpdatedAt.IsZero())

	assert.Nil(t, s.UpdateOrderStatus("alice", "missing", domain.OrderStatusCancelled))
	assert.Nil(t, s.UpdateOrderStatus("bob", "o1", domain.OrderStatusCancelled))
}

func TestListBalances_SortedAndEnriched(t *testing.T) {
	s := newTestStore(map[string]float64{"sol": 178.45, "jup": 0.92})

	require.True(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, 5000, 4600, 4.6))

	balances, err := s.ListBalances(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, balances, 2)
	// jup: 5000*0.92 = 4600 > sol: 5*178.45 = 892.25
	assert.Equal(t, "jup", balances[0].TokenID)
	assert.InDelta(t, 4600, balances[0].BalanceUSD, 1e-9)
	assert.Equal(t, "sol", balances[1].TokenID)
}

func TestListBalances_SkipsUnpricedHoldings(t *testing.T) {
	s := newTestStore(map[string]float64{"sol": 178.45})

	require.True(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, 10, 9.2, 0))

	balances, err := s.ListBalances(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "sol", balances[0].TokenID)
}

func TestPortfolioValue(t *testing.T) {
	s := newTestStore(map[string]float64{"sol": 100})

	v, err := s.PortfolioValue(context.Background(), "alice")
	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultUSDBalance+5*100, v, 1e-9)
}

func TestPortfolioValue_MissingPriceContributesZero(t *testing.T) {
	s := newTestStore(map[string]float64{})

	v, err := s.PortfolioValue(context.Background(), "alice")
	require.NoError(t, err)
	assert.InDelta(t, domain.DefaultUSDBalance, v, 1e-9)
}

func TestReset_RestoresDefaults(t *testing.T) {
	s := newTestStore(nil)

	require.True(t, s.ApplyTrade("alice", domain.SideBuy, jupToken, 500, 460, 0.18))
	s.RecordTransaction("alice", domain.Transaction{ID: "tx-1"})
	s.Reset("alice")

	w := s.GetOrCreate("alice")
	assert.Equal(t, domain.DefaultUSDBalance, w.USDBalance)
	assert.Equal(t, domain.DefaultTokenAmount, w.Assets["sol"].Amount)
	assert.Empty(t, w.Transactions)
}

func TestStats(t *testing.T) {
	s := newTestStore(nil)

	s.GetOrCreate("alice")
	s.GetOrCreate("bob")
	s.RecordTransaction("alice", domain.Transaction{ID: "tx-1"})
	s.RecordTransaction("bob", domain.Transaction{ID: "tx-2"})
	s.RecordTransaction("bob", domain.Transaction{ID: "tx-3"})

	stats := s.Stats()
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 3, stats.Transactions)
}
