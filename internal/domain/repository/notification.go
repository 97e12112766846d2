package repository

import (
	"context"
	"time"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// NotificationRepository creates alerts idempotently. With a dedup key the
// key is unique per user; without one an identical title/description created
// inside the window suppresses the new alert. Create reports whether a row
// was actually inserted.
type NotificationRepository interface {
	Create(ctx context.Context, userID int64, n model.Notification, window time.Duration) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
}
