package handler

import (
	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/dto"
	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/middleware"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"
	"github.com/peterzzshi/gmgn-clone/pkg/response"

	"github.com/gin-gonic/gin"
)

// CopyTradeHandler serves the trader leaderboard and follow relationships.
type CopyTradeHandler struct {
	copySvc ports.CopyTradeService
}

// NewCopyTradeHandler creates a new CopyTradeHandler.
func NewCopyTradeHandler(copySvc ports.CopyTradeService) *CopyTradeHandler {
	return &CopyTradeHandler{copySvc: copySvc}
}

// ListTraders handles GET /api/copy-trade/traders.
func (h *CopyTradeHandler) ListTraders(c *gin.Context) {
	page, limit := pageParams(c)
	traders, total := h.copySvc.ListTraders(ports.TraderListParams{
		Search:       c.Query("search"),
		Tag:          c.Query("tag"),
		VerifiedOnly: c.Query("verified") == "true",
		SortBy:       c.Query("sortBy"),
		SortOrder:    c.Query("order"),
		Page:         page,
		Limit:        limit,
	})
	response.OK(c, response.NewPaginated(traders, page, limit, total))
}

// GetTrader handles GET /api/copy-trade/traders/:traderId.
func (h *CopyTradeHandler) GetTrader(c *gin.Context) {
	trader, err := h.copySvc.GetTrader(c.Param("traderId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, trader)
}

// TopTraders handles GET /api/copy-trade/top.
func (h *CopyTradeHandler) TopTraders(c *gin.Context) {
	response.OK(c, h.copySvc.TopTraders())
}

// Positions handles GET /api/copy-trade/positions.
func (h *CopyTradeHandler) Positions(c *gin.Context) {
	result, err := h.copySvc.Positions(middleware.UserID(c), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Follow handles POST /api/copy-trade/follow/:traderId.
func (h *CopyTradeHandler) Follow(c *gin.Context) {
	result, err := h.copySvc.Follow(middleware.UserID(c), c.Param("traderId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedMessage(c, result, "Successfully started following trader")
}

// Unfollow handles DELETE /api/copy-trade/follow/:traderId.
func (h *CopyTradeHandler) Unfollow(c *gin.Context) {
	if err := h.copySvc.Unfollow(middleware.UserID(c), c.Param("traderId")); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, gin.H{"traderId": c.Param("traderId")}, "Successfully stopped following trader")
}

// UpdateSettings handles PUT /api/copy-trade/settings/:traderId.
func (h *CopyTradeHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateCopySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	settings, err := h.copySvc.UpdateSettings(middleware.UserID(c), c.Param("traderId"), ports.SettingsUpdate{
		IsActive:        req.IsActive,
		MaxPositionSize: req.MaxPositionSize,
		CopyRatio:       req.CopyRatio,
		StopLoss:        req.StopLoss,
		TakeProfit:      req.TakeProfit,
		MaxDailyTrades:  req.MaxDailyTrades,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, settings, "Settings updated successfully")
}
