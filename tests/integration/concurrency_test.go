package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentBuys fires 100 concurrent market buys against one wallet
// and verifies the ledger never overdraws. Each buy costs
// amount*price*(1+slippage) plus the 0.1% fee; with 10,000 USD of funding
// only a fixed number of them can clear.
func TestConcurrentBuys(t *testing.T) {
	app := newTestApp(t)
	user := "concurrent-buyer"

	// Materialize the wallet up front so every goroutine races on the same
	// funded balance.
	status, _ := app.get(t, "/api/wallet/summary?userId="+user)
	require.Equal(t, http.StatusOK, status)

	// 2 SOL at 100 USD with 0.5% slippage: 201 USD notional, 0.201 fee.
	perTrade := 2 * 100 * 1.005 * 1.001
	wantSuccesses := int(10_000 / perTrade)

	const attempts = 100
	var successes, rejections int64
	var wg sync.WaitGroup
	body := []byte(`{"userId":"` + user + `","tokenId":"sol","side":"buy","type":"market","amount":2}`)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(app.server.URL+"/api/trading/order", "application/json", bytes.NewReader(body))
			if err != nil {
				t.Error(err)
				return
			}
			defer resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusCreated:
				atomic.AddInt64(&successes, 1)
			case http.StatusBadRequest:
				var out map[string]interface{}
				if err := json.NewDecoder(resp.Body).Decode(&out); err == nil {
					if errBody, ok := out["error"].(map[string]interface{}); ok && errBody["code"] == "INSUFFICIENT_BALANCE" {
						atomic.AddInt64(&rejections, 1)
					}
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(wantSuccesses), successes)
	assert.Equal(t, int64(attempts-wantSuccesses), rejections)

	// Final balance matches exactly the trades that cleared.
	status, summary := app.get(t, "/api/wallet/summary?userId="+user)
	require.Equal(t, http.StatusOK, status)
	available := data(t, summary)["availableUsd"].(float64)
	assert.InDelta(t, 10_000-float64(wantSuccesses)*perTrade, available, 1e-6)
	assert.GreaterOrEqual(t, available, 0.0)
}

// TestConcurrentWalletCreation checks that racing first touches produce a
// single wallet with default funding, not double credits.
func TestConcurrentWalletCreation(t *testing.T) {
	app := newTestApp(t)
	user := "race-creator"

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(app.server.URL + "/api/wallet/summary?userId=" + user)
			if err != nil {
				t.Error(err)
				return
			}
			resp.Body.Close()
		}()
	}
	wg.Wait()

	status, body := app.get(t, "/api/wallet/summary?userId="+user)
	require.Equal(t, http.StatusOK, status)
	d := data(t, body)
	assert.Equal(t, 10_000.0, d["availableUsd"])
	assert.Equal(t, 500.0, d["totalBalanceUsd"])
}
