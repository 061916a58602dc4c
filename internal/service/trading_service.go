package service

import (
	"context"
	"fmt"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/catalog"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	// feeRate is charged on the notional of every market execution.
	feeRate = 0.001
	// defaultSlippagePct applies when the caller does not specify slippage.
	defaultSlippagePct = 0.5
	// quoteValidity is how long an indicative quote remains usable.
	quoteValidity = 30 * time.Second
)

// tradingService implements ports.TradingService.
type tradingService struct {
	ledger ports.WalletLedger
	prices ports.PriceSource
	log    zerolog.Logger
}

// NewTradingService creates the order placement service.
func NewTradingService(ledger ports.WalletLedger, prices ports.PriceSource, log zerolog.Logger) ports.TradingService {
	return &tradingService{ledger: ledger, prices: prices, log: log}
}

// PlaceOrder validates and executes a trade. Market orders settle against
// the ledger immediately; limit orders are recorded as pending and never
// auto-fill.
func (s *tradingService) PlaceOrder(ctx context.Context, params ports.PlaceOrderParams) (*domain.Order, error) {
	var missing []string
	if params.TokenID == "" {
		missing = append(missing, "tokenId")
	}
	if params.Side == "" {
		missing = append(missing, "side")
	}
	if params.Type == "" {
		missing = append(missing, "type")
	}
	if params.Amount == 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return nil, apperror.MissingFields(missing)
	}

	if !params.Side.Valid() {
		return nil, apperror.Validation("Invalid order side").
			WithDetails(map[string]interface{}{"validValues": []string{"buy", "sell"}})
	}
	if !params.Type.Valid() {
		return nil, apperror.Validation("Invalid order type").
			WithDetails(map[string]interface{}{"validValues": []string{"market", "limit"}})
	}
	if params.Amount <= 0 {
		return nil, apperror.Validation("Amount must be greater than zero")
	}
	if params.Type == domain.TypeLimit && (params.Price == nil || *params.Price <= 0) {
		return nil, apperror.Validation("Price is required for limit orders")
	}

	token := catalog.TokenByID(params.TokenID)
	if token == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Token '%s'", params.TokenID))
	}

	md, err := s.prices.MarketData(ctx, params.TokenID)
	if err != nil || md == nil {
		return nil, apperror.InternalMsg("Failed to get market data")
	}

	slippage := defaultSlippagePct
	if params.Slippage != nil {
		slippage = *params.Slippage
	}
	multiplier := 1 + slippage/100
	if params.Side == domain.SideSell {
		multiplier = 1 - slippage/100
	}

	isMarket := params.Type == domain.TypeMarket
	executionPrice := md.Price * multiplier
	if !isMarket {
		executionPrice = *params.Price
	}

	listedPrice := md.Price
	if params.Price != nil {
		listedPrice = *params.Price
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:        domain.NewID("order"),
		UserID:    params.UserID,
		TokenID:   params.TokenID,
		Side:      params.Side,
		Type:      params.Type,
		Status:    domain.OrderStatusPending,
		Amount:    params.Amount,
		Price:     listedPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if isMarket {
		totalUSD := params.Amount * executionPrice
		fee := totalUSD * feeRate

		if !s.ledger.ApplyTrade(params.UserID, params.Side, *token, params.Amount, totalUSD, fee) {
			if params.Side == domain.SideBuy {
				return nil, apperror.InsufficientBalance(totalUSD+fee, s.ledger.USDBalance(params.UserID))
			}
			return nil, apperror.InsufficientBalance(params.Amount, s.ledger.TokenHolding(params.UserID, params.TokenID))
		}

		order.Status = domain.OrderStatusFilled
		order.FilledAmount = params.Amount
		order.FilledPrice = executionPrice
		order.Fee = fee

		s.ledger.RecordTransaction(params.UserID, domain.NewTransactionFromOrder(order, token.Symbol))
	}

	s.ledger.RecordOrder(params.UserID, order)

	s.log.Info().
		Str("order_id", order.ID).
		Str("user_id", params.UserID).
		Str("token", params.TokenID).
		Str("side", string(params.Side)).
		Str("type", string(params.Type)).
		Str("status", string(order.Status)).
		Float64("amount", params.Amount).
		Msg("order placed")

	return &order, nil
}

// CancelOrder marks a stored order cancelled. Unknown ids still get a
// cancelled acknowledgement; fills are never reversed.
func (s *tradingService) CancelOrder(_ context.Context, userID, orderID string) (*ports.CancelResult, error) {
	result := &ports.CancelResult{
		ID:        orderID,
		Status:    domain.OrderStatusCancelled,
		UpdatedAt: time.Now().UTC(),
	}

	if updated := s.ledger.UpdateOrderStatus(userID, orderID, domain.OrderStatusCancelled); updated != nil {
		result.UpdatedAt = updated.UpdatedAt
	}

	s.log.Info().Str("order_id", orderID).Str("user_id", userID).Msg("order cancelled")
	return result, nil
}

// Quote estimates execution for a hypothetical market order.
func (s *tradingService) Quote(ctx context.Context, params ports.QuoteParams) (*ports.Quote, error) {
	if !params.Side.Valid() {
		return nil, apperror.Validation("Invalid order side").
			WithDetails(map[string]interface{}{"validValues": []string{"buy", "sell"}})
	}
	if params.Amount <= 0 {
		return nil, apperror.Validation("Amount must be greater than zero")
	}

	token := catalog.TokenByID(params.TokenID)
	if token == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Token '%s'", params.TokenID))
	}

	md, err := s.prices.MarketData(ctx, params.TokenID)
	if err != nil || md == nil {
		return nil, apperror.InternalMsg("Failed to get market data")
	}

	multiplier := 1 + defaultSlippagePct/100
	if params.Side == domain.SideSell {
		multiplier = 1 - defaultSlippagePct/100
	}
	estimatedPrice := md.Price * multiplier
	estimatedTotal := params.Amount * estimatedPrice

	return &ports.Quote{
		TokenID:        params.TokenID,
		Side:           params.Side,
		Amount:         params.Amount,
		Price:          md.Price,
		EstimatedPrice: estimatedPrice,
		EstimatedTotal: estimatedTotal,
		EstimatedFee:   estimatedTotal * feeRate,
		Slippage:       defaultSlippagePct,
		ExpiresAt:      time.Now().UTC().Add(quoteValidity),
	}, nil
}
