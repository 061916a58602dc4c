package domain

import "time"

// Trader is a mock trader profile shown on the copy-trade leaderboard.
type Trader struct {
	ID           string   `json:"id"`
	Address      string   `json:"address"`
	DisplayName  string   `json:"displayName"`
	AvatarURL    string   `json:"avatarUrl"`
	Bio          string   `json:"bio"`
	Followers    int      `json:"followers"`
	Pnl7d        float64  `json:"pnl7d"`
	Pnl30d       float64  `json:"pnl30d"`
	PnlPercent7d float64  `json:"pnlPercent7d"`
	PnlPercent30d float64 `json:"pnlPercent30d"`
	WinRate      float64  `json:"winRate"`
	TotalTrades  int      `json:"totalTrades"`
	AvgHoldTime  int64    `json:"avgHoldTime"` // seconds
	IsVerified   bool     `json:"isVerified"`
	Tags         []string `json:"tags"`
}

// PositionStatus is the lifecycle state of a copy position.
type PositionStatus string

const (
	PositionOpen   PositionStatus = "open"
	PositionClosed PositionStatus = "closed"
)

// CopyPosition is a position opened by mirroring a trader.
type CopyPosition struct {
	ID           string         `json:"id"`
	TraderID     string         `json:"traderId"`
	UserID       string         `json:"userId"`
	TokenID      string         `json:"tokenId"`
	EntryPrice   float64        `json:"entryPrice"`
	CurrentPrice float64        `json:"currentPrice"`
	Amount       float64        `json:"amount"`
	Pnl          float64        `json:"pnl"`
	PnlPercent   float64        `json:"pnlPercent"`
	Status       PositionStatus `json:"status"`
	OpenedAt     time.Time      `json:"openedAt"`
	ClosedAt     *time.Time     `json:"closedAt"`
}

// CopySettings controls how a user's wallet mirrors a trader.
type CopySettings struct {
	TraderID        string  `json:"traderId"`
	IsActive        bool    `json:"isActive"`
	MaxPositionSize float64 `json:"maxPositionSize"`
	CopyRatio       float64 `json:"copyRatio"`
	StopLoss        float64 `json:"stopLoss"`
	TakeProfit      float64 `json:"takeProfit"`
	MaxDailyTrades  int     `json:"maxDailyTrades"`
}

// DefaultCopySettings returns the settings applied when a user first
// follows a trader.
func DefaultCopySettings(traderID string) CopySettings {
	return CopySettings{
		TraderID:        traderID,
		IsActive:        false,
		MaxPositionSize: 100,
		CopyRatio:       0.1,
		StopLoss:        10,
		TakeProfit:      50,
		MaxDailyTrades:  10,
	}
}
