package model

import "time"

// WithdrawalStatus describes the points-to-cash request lifecycle.
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// WithdrawalRequest converts points to cash subject to approval. Points are
// debited when the request is created; a rejection refunds them exactly once,
// guarded by Refunded.
type WithdrawalRequest struct {
	ID              int64
	UserID          int64
	Reference       string
	Status          WithdrawalStatus
	Points          int64
	CashAmount      int64
	Method          string
	Account         string
	RequestedAt     time.Time
	ProcessedAt     *time.Time
	RejectionReason *string
	Refunded        bool
}

// FloorToExchangeUnit rounds points down to the exchange granularity.
func FloorToExchangeUnit(points, unit int64) int64 {
	if unit <= 0 {
		return points
	}
	return points / unit * unit
}
