package dto

import "time"

// NotificationResponse mirrors a stored alert.
type NotificationResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Read        bool      `json:"read"`
	Link        *string   `json:"link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
