package handler

import (
	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/middleware"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet read projections and the reset operation.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Summary handles GET /api/wallet/summary.
func (h *WalletHandler) Summary(c *gin.Context) {
	summary, err := h.walletSvc.Summary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// Balances handles GET /api/wallet/balances.
func (h *WalletHandler) Balances(c *gin.Context) {
	balances, err := h.walletSvc.Balances(c.Request.Context(), middleware.UserID(c), c.Query("order"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, balances)
}

// Transactions handles GET /api/wallet/transactions.
func (h *WalletHandler) Transactions(c *gin.Context) {
	page, limit := pageParams(c)
	filter := ports.TransactionFilter{
		Type:   domain.TransactionType(c.Query("type")),
		Status: domain.TransactionStatus(c.Query("status")),
		Page:   page,
		Limit:  limit,
	}

	txs, total, err := h.walletSvc.Transactions(middleware.UserID(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.NewPaginated(txs, page, limit, total))
}

// Orders handles GET /api/wallet/orders.
func (h *WalletHandler) Orders(c *gin.Context) {
	page, limit := pageParams(c)
	orders, total, err := h.walletSvc.Orders(middleware.UserID(c), domain.OrderStatus(c.Query("status")), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.NewPaginated(orders, page, limit, total))
}

// PendingOrders handles GET /api/wallet/orders/pending.
func (h *WalletHandler) PendingOrders(c *gin.Context) {
	response.OK(c, h.walletSvc.PendingOrders(middleware.UserID(c)))
}

// Reset handles POST /api/wallet/reset.
func (h *WalletHandler) Reset(c *gin.Context) {
	wallet := h.walletSvc.Reset(middleware.UserID(c))
	response.OKMessage(c, wallet, "Wallet reset to default balances")
}
