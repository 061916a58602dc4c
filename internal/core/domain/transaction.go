package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a balance-affecting event.
type TransactionType string

const (
	TxTypeSwap     TransactionType = "swap"
	TxTypeDeposit  TransactionType = "deposit"
	TxTypeWithdraw TransactionType = "withdraw"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "pending"
	TxStatusConfirmed TransactionStatus = "confirmed"
	TxStatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only record of a completed balance-affecting
// event. Amount and AmountUSD are signed: positive for an acquisition,
// negative for a disposal.
type Transaction struct {
	ID        string            `json:"id"`
	Type      TransactionType   `json:"type"`
	TokenID   string            `json:"tokenId"`
	Symbol    string            `json:"symbol"`
	Amount    float64           `json:"amount"`
	AmountUSD float64           `json:"amountUsd"`
	Fee       float64           `json:"fee"`
	TxHash    string            `json:"txHash"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewTransactionFromOrder builds the ledger record for a filled order.
func NewTransactionFromOrder(o Order, symbol string) Transaction {
	total := o.FilledAmount * o.FilledPrice
	amount := o.FilledAmount
	amountUSD := total
	if o.Side == SideSell {
		amount = -amount
		amountUSD = -amountUSD
	}

	return Transaction{
		ID:        NewID("tx"),
		Type:      TxTypeSwap,
		TokenID:   o.TokenID,
		Symbol:    symbol,
		Amount:    amount,
		AmountUSD: amountUSD,
		Fee:       o.Fee,
		TxHash:    NewTxHash(),
		Status:    TxStatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTxHash generates a synthetic transaction hash.
func NewTxHash() string {
	return "0x" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
