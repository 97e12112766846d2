package model

import "time"

// Notification is a user-facing alert. DedupKey, when present, acts as a
// natural idempotency key: a second create with the same key is a no-op.
type Notification struct {
	ID          int64
	UserID      int64
	DedupKey    *string
	Title       string
	Description string
	Read        bool
	Link        *string
	CreatedAt   time.Time
}
