package dto

import "time"

// PointEntryResponse mirrors one row of the points history log.
type PointEntryResponse struct {
	Source     string    `json:"source"`
	Direction  string    `json:"direction"`
	Points     int64     `json:"points"`
	RequestID  *int64    `json:"request_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// AdTaskRequest claims a completed ad-task reward by its network token.
type AdTaskRequest struct {
	Token string `json:"token"`
}

// AdTaskResponse reports the credited reward.
type AdTaskResponse struct {
	Points int64 `json:"points"`
}

// SubscriptionRequest spends points on a subscription plan.
type SubscriptionRequest struct {
	Plan   string `json:"plan"`
	Points int64  `json:"points"`
}
