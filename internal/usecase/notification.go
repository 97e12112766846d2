package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/domain/repository"
)

// NotificationUseCase creates alerts idempotently and serves the inbox.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	dedupWindow   time.Duration
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(n repository.NotificationRepository, dedupWindow time.Duration) *NotificationUseCase {
	if dedupWindow <= 0 {
		dedupWindow = 24 * time.Hour
	}
	return &NotificationUseCase{notifications: n, dedupWindow: dedupWindow}
}

// Notify creates an alert unless an equivalent one already exists. With a
// dedup key equivalence is exact key match; without one it is identical
// title and description inside the dedup window. Returns whether a new
// alert was stored, so retried callers can tell a hit from a miss.
func (u *NotificationUseCase) Notify(ctx context.Context, userID int64, title, description string, link *string, dedupKey string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, domainErrors.ErrInvalidAmount
	}

	n := model.Notification{
		Title:       title,
		Description: description,
		Link:        link,
	}
	if key := strings.TrimSpace(dedupKey); key != "" {
		n.DedupKey = &key
	}
	return u.notifications.Create(ctx, userID, n, u.dedupWindow)
}

// Inbox returns the user's notifications newest-first.
func (u *NotificationUseCase) Inbox(ctx context.Context, userID int64) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, userID)
}

// MarkRead flags a single notification as read.
func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return u.notifications.MarkRead(ctx, userID, notificationID)
}
