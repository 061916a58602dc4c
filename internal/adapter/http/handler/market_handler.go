package handler

import (
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/response"

	"github.com/gin-gonic/gin"
)

// MarketHandler serves the token catalog, live market data and charts.
type MarketHandler struct {
	marketSvc ports.MarketService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc ports.MarketService) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// ListTokens handles GET /api/market/tokens.
func (h *MarketHandler) ListTokens(c *gin.Context) {
	page, limit := pageParams(c)
	tokens, total, err := h.marketSvc.ListTokens(c.Request.Context(), ports.TokenListParams{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("order"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.NewPaginated(tokens, page, limit, total))
}

// GetToken handles GET /api/market/tokens/:tokenId.
func (h *MarketHandler) GetToken(c *gin.Context) {
	token, err := h.marketSvc.GetToken(c.Request.Context(), c.Param("tokenId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, token)
}

// Chart handles GET /api/market/tokens/:tokenId/chart.
func (h *MarketHandler) Chart(c *gin.Context) {
	timeFrame := domain.TimeFrame(c.DefaultQuery("timeframe", string(domain.TimeFrame1h)))
	count := intQuery(c, "count", 0)

	candles, err := h.marketSvc.Chart(c.Param("tokenId"), timeFrame, count)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"tokenId":   c.Param("tokenId"),
		"timeframe": timeFrame,
		"candles":   candles,
	})
}

// Trending handles GET /api/market/trending.
func (h *MarketHandler) Trending(c *gin.Context) {
	tokens, err := h.marketSvc.Trending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tokens)
}

// Gainers handles GET /api/market/gainers.
func (h *MarketHandler) Gainers(c *gin.Context) {
	tokens, err := h.marketSvc.Gainers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tokens)
}

// Losers handles GET /api/market/losers.
func (h *MarketHandler) Losers(c *gin.Context) {
	tokens, err := h.marketSvc.Losers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tokens)
}
