package dto

// PlaceOrderRequest is the request body for order placement. Field
// validation happens in the trading service so error responses carry
// the accepted values.
type PlaceOrderRequest struct {
	UserID   string   `json:"userId"`
	TokenID  string   `json:"tokenId"`
	Side     string   `json:"side"`
	Type     string   `json:"type"`
	Amount   float64  `json:"amount"`
	Price    *float64 `json:"price,omitempty"`
	Slippage *float64 `json:"slippage,omitempty"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for registration.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateCopySettingsRequest carries partial copy-settings changes.
// Absent fields leave the stored value unchanged.
type UpdateCopySettingsRequest struct {
	IsActive        *bool    `json:"isActive,omitempty"`
	MaxPositionSize *float64 `json:"maxPositionSize,omitempty"`
	CopyRatio       *float64 `json:"copyRatio,omitempty"`
	StopLoss        *float64 `json:"stopLoss,omitempty"`
	TakeProfit      *float64 `json:"takeProfit,omitempty"`
	MaxDailyTrades  *int     `json:"maxDailyTrades,omitempty"`
}

// HealthResponse reports process health.
type HealthResponse struct {
	Status       string  `json:"status"`
	UptimeSec    float64 `json:"uptimeSec"`
	Version      string  `json:"version"`
	UserCount    int     `json:"userCount"`
	Transactions int     `json:"totalTransactions"`
}
