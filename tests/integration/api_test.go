package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "github.com/peterzzshi/gmgn-clone/internal/adapter/http/handler"
	"github.com/peterzzshi/gmgn-clone/internal/adapter/marketdata"
	"github.com/peterzzshi/gmgn-clone/internal/adapter/storage/memory"
	redisStorage "github.com/peterzzshi/gmgn-clone/internal/adapter/storage/redis"
	"github.com/peterzzshi/gmgn-clone/internal/catalog"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/service"
	"github.com/peterzzshi/gmgn-clone/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack: real HTTP layer, middleware,
// handlers, services and in-memory stores, with a deterministic price feed
// cached through miniredis. No network calls leave the process.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	ledger *memory.WalletStore
}

// staticFetcher serves fixed prices so trade math is reproducible.
type staticFetcher struct {
	prices map[string]float64
}

func (f *staticFetcher) MarketData(_ context.Context, token domain.Token) (*domain.TokenMarketData, error) {
	price, ok := f.prices[token.ID]
	if !ok {
		return nil, nil
	}
	return &domain.TokenMarketData{
		TokenID:               token.ID,
		Price:                 price,
		PriceChangePercent24h: 5,
		PriceChange24h:        price * 0.05,
		Volume24h:             1_000_000,
		MarketCap:             50_000_000,
		Liquidity:             2_000_000,
		UpdatedAt:             time.Now(),
	}, nil
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := logger.New("error", false)

	fetcher := &staticFetcher{prices: map[string]float64{
		"sol": 100, "jup": 2, "bonk": 0.00002,
	}}
	cache := redisStorage.NewPriceCache(rdb, 30*time.Second)
	prices := marketdata.NewSource(fetcher, cache, log)

	sol := catalog.TokenByID(domain.DefaultTokenID)
	require.NotNil(t, sol)
	ledger := memory.NewWalletStore(prices, *sol, log)
	users := memory.NewUserStore()
	follows := memory.NewCopyStore()

	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", time.Hour, "test-issuer")
	hashSvc := service.NewArgon2HashService()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TradingSvc:   service.NewTradingService(ledger, prices, log),
		WalletSvc:    service.NewWalletService(ledger, log),
		MarketSvc:    service.NewMarketService(prices, log),
		CopyTradeSvc: service.NewCopyTradeService(follows, log),
		AuthSvc:      service.NewAuthService(users, tokenSvc, hashSvc, log),
		TokenSvc:     tokenSvc,
		Ledger:       ledger,
		Logger:       log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{server: server, redis: mr, ledger: ledger}
}

func (a *testApp) get(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func (a *testApp) post(t *testing.T, path, body string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(a.server.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (a *testApp) do(t *testing.T, method, path, body string, header map[string]string) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("")
	} else {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/api/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", data(t, body)["status"])
}

func TestWalletLazyCreationAndSummary(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/api/wallet/summary?userId=fresh-user")
	require.Equal(t, http.StatusOK, status)
	d := data(t, body)

	assert.Equal(t, 10000.0, d["availableUsd"])
	// 5 SOL at 100 USD
	assert.Equal(t, 500.0, d["totalBalanceUsd"])

	balances := d["balances"].([]interface{})
	require.Len(t, balances, 1)
	sol := balances[0].(map[string]interface{})
	assert.Equal(t, "sol", sol["tokenId"])
	assert.Equal(t, 5.0, sol["balance"])
	assert.Equal(t, 100.0, sol["price"])
}

func TestTradingFlow(t *testing.T) {
	app := newTestApp(t)
	user := "trader-flow"

	// Market buy: 100 JUP at 2 USD, 0.5% slippage, 0.1% fee.
	status, body := app.post(t, "/api/trading/order",
		fmt.Sprintf(`{"userId":%q,"tokenId":"jup","side":"buy","type":"market","amount":100}`, user))
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	order := data(t, body)
	assert.Equal(t, "filled", order["status"])
	assert.InDelta(t, 2.01, order["filledPrice"].(float64), 1e-9)
	assert.InDelta(t, 0.201, order["fee"].(float64), 1e-9)

	// Wallet reflects the fill.
	status, body = app.get(t, "/api/wallet/summary?userId="+user)
	require.Equal(t, http.StatusOK, status)
	d := data(t, body)
	assert.InDelta(t, 10000-201-0.201, d["availableUsd"].(float64), 1e-9)

	// Transaction was recorded.
	status, body = app.get(t, "/api/wallet/transactions?userId="+user)
	require.Equal(t, http.StatusOK, status)
	items := data(t, body)["items"].([]interface{})
	require.Len(t, items, 1)
	tx := items[0].(map[string]interface{})
	assert.Equal(t, "swap", tx["type"])
	assert.Equal(t, "jup", tx["tokenId"])

	// Sell back more than held is rejected and changes nothing.
	status, body = app.post(t, "/api/trading/order",
		fmt.Sprintf(`{"userId":%q,"tokenId":"jup","side":"sell","type":"market","amount":500}`, user))
	assert.Equal(t, http.StatusBadRequest, status)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "INSUFFICIENT_BALANCE", errBody["code"])

	// Limit order rests as pending.
	status, body = app.post(t, "/api/trading/order",
		fmt.Sprintf(`{"userId":%q,"tokenId":"jup","side":"buy","type":"limit","amount":10,"price":1.5}`, user))
	require.Equal(t, http.StatusCreated, status)
	limitID := data(t, body)["id"].(string)
	assert.Equal(t, "pending", data(t, body)["status"])

	status, body = app.get(t, "/api/wallet/orders/pending?userId="+user)
	require.Equal(t, http.StatusOK, status)
	pending := body["data"].([]interface{})
	require.Len(t, pending, 1)
	assert.Equal(t, limitID, pending[0].(map[string]interface{})["id"])

	// Cancel it.
	status, body = app.do(t, http.MethodDelete, "/api/trading/order/"+limitID+"?userId="+user, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cancelled", data(t, body)["status"])

	status, body = app.get(t, "/api/wallet/orders/pending?userId="+user)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])

	// Reset restores defaults.
	status, body = app.post(t, "/api/wallet/reset?userId="+user, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 10000.0, data(t, body)["usdBalance"])
}

func TestQuote(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/api/trading/quote?tokenId=sol&side=sell&amount=2")
	require.Equal(t, http.StatusOK, status)
	d := data(t, body)
	assert.Equal(t, 100.0, d["price"])
	assert.InDelta(t, 99.5, d["estimatedPrice"].(float64), 1e-9)
	assert.InDelta(t, 199.0, d["estimatedTotal"].(float64), 1e-9)
	assert.InDelta(t, 0.199, d["estimatedFee"].(float64), 1e-9)
}

func TestMarketEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/api/market/tokens?page=1&limit=3")
	require.Equal(t, http.StatusOK, status)
	d := data(t, body)
	assert.Len(t, d["items"], 3)
	pagination := d["pagination"].(map[string]interface{})
	assert.Equal(t, float64(len(catalog.Tokens())), pagination["total"])

	status, body = app.get(t, "/api/market/tokens/jup")
	require.Equal(t, http.StatusOK, status)
	token := data(t, body)
	assert.Equal(t, "JUP", token["symbol"])
	market := token["market"].(map[string]interface{})
	assert.Equal(t, 2.0, market["price"])

	status, _ = app.get(t, "/api/market/tokens/unknown")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = app.get(t, "/api/market/tokens/sol/chart?timeframe=5m&count=50")
	require.Equal(t, http.StatusOK, status)
	candles := data(t, body)["candles"].([]interface{})
	assert.Len(t, candles, 50)

	status, _ = app.get(t, "/api/market/tokens/sol/chart?timeframe=3m")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = app.get(t, "/api/market/trending")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 5)
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	// Register a new account.
	status, body := app.post(t, "/api/auth/register",
		`{"email":"new@example.com","password":"secret1","confirmPassword":"secret1"}`)
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	session := data(t, body)
	tokens := session["tokens"].(map[string]interface{})
	access := tokens["accessToken"].(string)
	require.NotEmpty(t, access)

	// Bearer token resolves /auth/me.
	status, body = app.do(t, http.MethodGet, "/api/auth/me", "", map[string]string{
		"Authorization": "Bearer " + access,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "new@example.com", data(t, body)["email"])

	// No token is rejected.
	status, _ = app.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Duplicate registration conflicts.
	status, body = app.post(t, "/api/auth/register",
		`{"email":"new@example.com","password":"secret1","confirmPassword":"secret1"}`)
	assert.Equal(t, http.StatusConflict, status)

	// Login accepts any password for a known account.
	status, body = app.post(t, "/api/auth/login", `{"email":"new@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusOK, status)

	// Login with an unknown email creates the account on the fly.
	status, body = app.post(t, "/api/auth/login", `{"email":"walkin@example.com","password":"x"}`)
	require.Equal(t, http.StatusOK, status)
	user := data(t, body)["user"].(map[string]interface{})
	assert.Equal(t, "walkin@example.com", user["email"])
}

func TestCopyTradeFlow(t *testing.T) {
	app := newTestApp(t)
	user := "copier-1"

	status, body := app.get(t, "/api/copy-trade/traders")
	require.Equal(t, http.StatusOK, status)
	items := data(t, body)["items"].([]interface{})
	require.NotEmpty(t, items)
	traderID := items[0].(map[string]interface{})["id"].(string)

	// Follow activates default settings.
	status, body = app.post(t, "/api/copy-trade/follow/"+traderID+"?userId="+user, "")
	require.Equal(t, http.StatusCreated, status)
	d := data(t, body)
	assert.Equal(t, true, d["isActive"])
	assert.Equal(t, 0.1, d["copyRatio"])

	// Partial settings update.
	status, body = app.do(t, http.MethodPut, "/api/copy-trade/settings/"+traderID+"?userId="+user,
		`{"copyRatio":0.3}`, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0.3, data(t, body)["copyRatio"])

	// Unfollow acknowledges.
	status, _ = app.do(t, http.MethodDelete, "/api/copy-trade/follow/"+traderID+"?userId="+user, "", nil)
	assert.Equal(t, http.StatusOK, status)

	// Top traders come back ranked.
	status, body = app.get(t, "/api/copy-trade/top")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 5)
}
