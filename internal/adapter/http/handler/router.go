package handler

import (
	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/middleware"
	redisStore "github.com/peterzzshi/gmgn-clone/internal/adapter/storage/redis"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TradingSvc     ports.TradingService
	WalletSvc      ports.WalletService
	MarketSvc      ports.MarketService
	CopyTradeSvc   ports.CopyTradeService
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	Ledger         ports.WalletLedger         // used by the health check census
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	AllowedOrigins []string                   // empty = allow all
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.Identity(deps.TokenSvc))

	api := r.Group("/api")

	api.GET("/health", HealthCheck(deps.Ledger))

	// Rate limit rules; noop middleware when no store is configured.
	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	tradingHandler := NewTradingHandler(deps.TradingSvc)
	trading := api.Group("/trading", rl("trading"))
	{
		trading.POST("/order", tradingHandler.PlaceOrder)
		trading.DELETE("/order/:orderId", tradingHandler.CancelOrder)
		trading.GET("/quote", tradingHandler.Quote)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := api.Group("/wallet", rl("wallet"))
	{
		wallet.GET("/summary", walletHandler.Summary)
		wallet.GET("/balances", walletHandler.Balances)
		wallet.GET("/transactions", walletHandler.Transactions)
		wallet.GET("/orders", walletHandler.Orders)
		wallet.GET("/orders/pending", walletHandler.PendingOrders)
		wallet.POST("/reset", walletHandler.Reset)
	}

	marketHandler := NewMarketHandler(deps.MarketSvc)
	market := api.Group("/market", rl("market"))
	{
		market.GET("/tokens", marketHandler.ListTokens)
		market.GET("/tokens/:tokenId", marketHandler.GetToken)
		market.GET("/tokens/:tokenId/chart", marketHandler.Chart)
		market.GET("/trending", marketHandler.Trending)
		market.GET("/gainers", marketHandler.Gainers)
		market.GET("/losers", marketHandler.Losers)
	}

	copyHandler := NewCopyTradeHandler(deps.CopyTradeSvc)
	copyTrade := api.Group("/copy-trade", rl("copy_trade"))
	{
		copyTrade.GET("/traders", copyHandler.ListTraders)
		copyTrade.GET("/traders/:traderId", copyHandler.GetTrader)
		copyTrade.GET("/top", copyHandler.TopTraders)
		copyTrade.GET("/positions", copyHandler.Positions)
		copyTrade.POST("/follow/:traderId", copyHandler.Follow)
		copyTrade.DELETE("/follow/:traderId", copyHandler.Unfollow)
		copyTrade.PUT("/settings/:traderId", copyHandler.UpdateSettings)
	}

	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := api.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.RequireAuth(deps.TokenSvc), authHandler.Me)
	}

	return r
}
