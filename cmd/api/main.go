package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterzzshi/gmgn-clone/config"
	httpHandler "github.com/peterzzshi/gmgn-clone/internal/adapter/http/handler"
	"github.com/peterzzshi/gmgn-clone/internal/adapter/marketdata"
	"github.com/peterzzshi/gmgn-clone/internal/adapter/marketdata/dexscreener"
	"github.com/peterzzshi/gmgn-clone/internal/adapter/storage/memory"
	redisStorage "github.com/peterzzshi/gmgn-clone/internal/adapter/storage/redis"
	"github.com/peterzzshi/gmgn-clone/internal/catalog"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/service"
	"github.com/peterzzshi/gmgn-clone/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Int("port", cfg.Server.Port).
		Bool("live_data", cfg.Market.LiveData).
		Msg("Starting GMGN clone API")

	ctx := context.Background()

	// Optional Redis price cache and rate limiter
	var priceCache marketdata.SnapshotCache
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		priceCache = redisStorage.NewPriceCache(rdb, cfg.Market.CacheTTL)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		log.Info().Msg("Redis price cache and rate limiting enabled")
	}

	// Optional DexScreener live feed
	var fetcher marketdata.PairFetcher
	if cfg.Market.LiveData {
		fetcher = dexscreener.NewClient(cfg.Market.DexScreenerURL, &http.Client{Timeout: cfg.Market.Timeout}, log)
	}
	prices := marketdata.NewSource(fetcher, priceCache, log)

	// In-memory stores
	sol := catalog.TokenByID(domain.DefaultTokenID)
	if sol == nil {
		log.Fatal().Str("token", domain.DefaultTokenID).Msg("Default token missing from catalog")
	}
	ledger := memory.NewWalletStore(prices, *sol, log)
	users := memory.NewUserStore()
	follows := memory.NewCopyStore()

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	hashSvc := service.NewArgon2HashService()

	// Business services
	tradingSvc := service.NewTradingService(ledger, prices, log)
	walletSvc := service.NewWalletService(ledger, log)
	marketSvc := service.NewMarketService(prices, log)
	copySvc := service.NewCopyTradeService(follows, log)
	authSvc := service.NewAuthService(users, tokenSvc, hashSvc, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TradingSvc:     tradingSvc,
		WalletSvc:      walletSvc,
		MarketSvc:      marketSvc,
		CopyTradeSvc:   copySvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		Ledger:         ledger,
		RateLimitStore: rateLimitStore,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	})

	// HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
