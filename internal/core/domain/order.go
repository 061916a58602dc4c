package domain

import "time"

// OrderSide is the direction of a trade.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// Valid reports whether the side is one of buy/sell.
func (s OrderSide) Valid() bool {
	return s == SideBuy || s == SideSell
}

// OrderType distinguishes immediate execution from resting orders.
type OrderType string

const (
	TypeMarket OrderType = "market"
	TypeLimit  OrderType = "limit"
)

// Valid reports whether the type is one of market/limit.
func (t OrderType) Valid() bool {
	return t == TypeMarket || t == TypeLimit
}

// OrderStatus is the lifecycle state of an order.
// pending -> filled (market orders, immediately) or
// pending -> cancelled (explicit cancel). filled and cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFilled    OrderStatus = "filled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is immutable after creation except for the status transition,
// which also refreshes UpdatedAt.
type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	TokenID      string      `json:"tokenId"`
	Side         OrderSide   `json:"side"`
	Type         OrderType   `json:"type"`
	Status       OrderStatus `json:"status"`
	Amount       float64     `json:"amount"`
	Price        float64     `json:"price"`
	FilledAmount float64     `json:"filledAmount"`
	FilledPrice  float64     `json:"filledPrice"`
	Fee          float64     `json:"fee"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// IsTerminal returns true if the order can no longer change state.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusFilled || o.Status == OrderStatusCancelled
}
