package handler

import (
	"strconv"

	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/dto"
	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/middleware"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"
	"github.com/peterzzshi/gmgn-clone/pkg/response"

	"github.com/gin-gonic/gin"
)

// TradingHandler handles order placement, cancellation and quotes.
type TradingHandler struct {
	tradingSvc ports.TradingService
}

// NewTradingHandler creates a new TradingHandler.
func NewTradingHandler(tradingSvc ports.TradingService) *TradingHandler {
	return &TradingHandler{tradingSvc: tradingSvc}
}

// PlaceOrder handles POST /api/trading/order.
func (h *TradingHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	userID := middleware.UserID(c)
	if req.UserID != "" {
		userID = req.UserID
	}

	order, err := h.tradingSvc.PlaceOrder(c.Request.Context(), ports.PlaceOrderParams{
		UserID:   userID,
		TokenID:  req.TokenID,
		Side:     domain.OrderSide(req.Side),
		Type:     domain.OrderType(req.Type),
		Amount:   req.Amount,
		Price:    req.Price,
		Slippage: req.Slippage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, order)
}

// CancelOrder handles DELETE /api/trading/order/:orderId.
func (h *TradingHandler) CancelOrder(c *gin.Context) {
	result, err := h.tradingSvc.CancelOrder(c.Request.Context(), middleware.UserID(c), c.Param("orderId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKMessage(c, result, "Order cancelled successfully")
}

// Quote handles GET /api/trading/quote.
func (h *TradingHandler) Quote(c *gin.Context) {
	tokenID := c.Query("tokenId")
	side := c.Query("side")
	amount, _ := strconv.ParseFloat(c.Query("amount"), 64)
	if tokenID == "" || side == "" || amount == 0 {
		response.Error(c, apperror.Validation("Missing required parameters: tokenId, side, amount"))
		return
	}

	quote, err := h.tradingSvc.Quote(c.Request.Context(), ports.QuoteParams{
		TokenID: tokenID,
		Side:    domain.OrderSide(side),
		Amount:  amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, quote)
}
