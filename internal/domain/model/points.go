package model

import "time"

// PointSource names the engine event that produced a point entry.
type PointSource string

const (
	PointSourceCheckIn      PointSource = "check_in"
	PointSourceReferral     PointSource = "referral"
	PointSourceAdTask       PointSource = "ad_task"
	PointSourceWithdrawal   PointSource = "withdrawal"
	PointSourceRefund       PointSource = "refund"
	PointSourceSubscription PointSource = "subscription"
)

// PointDirection marks whether an entry credits or debits the account.
type PointDirection string

const (
	PointEarned   PointDirection = "earned"
	PointSpent    PointDirection = "spent"
	PointRefunded PointDirection = "refunded"
)

// PointEntry is an append-only record of a points mutation. The account
// balance must equal the running signed sum of all entries.
type PointEntry struct {
	ID         int64
	UserID     int64
	Source     PointSource
	Direction  PointDirection
	Points     int64
	RequestID  *int64
	RecordedAt time.Time
}

// Signed returns the entry contribution to the account balance.
func (e PointEntry) Signed() int64 {
	if e.Direction == PointSpent {
		return -e.Points
	}
	return e.Points
}

// BalanceSummary aggregates the user's money and points balances.
type BalanceSummary struct {
	Wallet int64
	Points int64
}
