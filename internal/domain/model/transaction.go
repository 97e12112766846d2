package model

import "time"

// TransactionKind describes direction of a money ledger entry.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "income"
	TransactionExpense TransactionKind = "expense"
)

// Transaction is a single income or expense entry. Amount is an integer in
// minor currency units and is always positive; the kind carries the sign.
type Transaction struct {
	ID          int64
	UserID      int64
	Kind        TransactionKind
	Category    string
	Amount      int64
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// Signed returns the contribution of the transaction to the wallet balance.
func (t Transaction) Signed() int64 {
	if t.Kind == TransactionExpense {
		return -t.Amount
	}
	return t.Amount
}

// DateOf normalizes a timestamp to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
