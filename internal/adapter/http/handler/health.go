package handler

import (
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/adapter/http/dto"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/response"

	"github.com/gin-gonic/gin"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// HealthCheck reports process liveness and a census of the in-memory ledger.
func HealthCheck(ledger ports.WalletLedger) gin.HandlerFunc {
	started := time.Now()
	return func(c *gin.Context) {
		var stats ports.LedgerStats
		if ledger != nil {
			stats = ledger.Stats()
		}
		response.OK(c, dto.HealthResponse{
			Status:       "ok",
			UptimeSec:    time.Since(started).Seconds(),
			Version:      Version,
			UserCount:    stats.Users,
			Transactions: stats.Transactions,
		})
	}
}
