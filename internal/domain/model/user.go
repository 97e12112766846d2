package model

import "time"

// User owns one finance ledger and one points account. ReferralCode is the
// shareable code other users may register with; ReferredBy links back to the
// referrer when one exists.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	ReferralCode string
	ReferredBy   *int64
	CreatedAt    time.Time
}
