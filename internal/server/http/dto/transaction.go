package dto

import "time"

// TransactionRequest describes an income/expense entry payload. Amount is in
// minor currency units; Date is a calendar day (RFC 3339 date).
type TransactionRequest struct {
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// TransactionResponse mirrors a stored ledger entry.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BalanceResponse aggregates the wallet and points balances.
type BalanceResponse struct {
	Balance int64 `json:"balance"`
	Points  int64 `json:"points"`
}
