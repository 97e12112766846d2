package usecase

import (
	"context"
	"testing"
	"time"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	testhelpers "github.com/finpoint/finpoint/internal/test"
)

func TestNotificationUseCaseNotifyValidation(t *testing.T) {
	uc := NewNotificationUseCase(&testhelpers.NotificationRepositoryStub{}, time.Hour)

	if _, err := uc.Notify(context.Background(), 1, "   ", "body", nil, ""); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected blank title rejection, got %v", err)
	}
}

func TestNotificationUseCaseNotifyKeyedDedup(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	uc := NewNotificationUseCase(repo, time.Hour)

	created, err := uc.Notify(context.Background(), 1, "Repayment due: alex", "100 remaining", nil, "debt-due:1:2025-06-10")
	if err != nil {
		t.Fatalf("notify returned error: %v", err)
	}
	if !created {
		t.Fatal("expected first notify to create a row")
	}

	created, err = uc.Notify(context.Background(), 1, "Repayment due: alex", "100 remaining", nil, "debt-due:1:2025-06-10")
	if err != nil {
		t.Fatalf("second notify returned error: %v", err)
	}
	if created {
		t.Fatal("expected duplicate key to be suppressed")
	}
	if len(repo.Items) != 1 {
		t.Fatalf("expected one stored alert, got %d", len(repo.Items))
	}
}

func TestNotificationUseCaseNotifyTrimsKey(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	uc := NewNotificationUseCase(repo, time.Hour)

	if _, err := uc.Notify(context.Background(), 1, "hello", "", nil, "  "); err != nil {
		t.Fatalf("notify returned error: %v", err)
	}
	if repo.Items[0].DedupKey != nil {
		t.Fatalf("expected no dedup key for blank input, got %q", *repo.Items[0].DedupKey)
	}
}

func TestNotificationUseCaseDefaultWindow(t *testing.T) {
	var gotWindow time.Duration
	repo := &testhelpers.NotificationRepositoryStub{CreateFn: func(ctx context.Context, userID int64, n model.Notification, window time.Duration) (bool, error) {
		gotWindow = window
		return true, nil
	}}
	uc := NewNotificationUseCase(repo, 0)

	if _, err := uc.Notify(context.Background(), 1, "hello", "", nil, ""); err != nil {
		t.Fatalf("notify returned error: %v", err)
	}
	if gotWindow != 24*time.Hour {
		t.Fatalf("expected 24h default window, got %v", gotWindow)
	}
}

func TestNotificationUseCaseInboxAndMarkRead(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	uc := NewNotificationUseCase(repo, time.Hour)

	if _, err := uc.Notify(context.Background(), 1, "hello", "", nil, ""); err != nil {
		t.Fatalf("notify returned error: %v", err)
	}

	inbox, err := uc.Inbox(context.Background(), 1)
	if err != nil {
		t.Fatalf("inbox returned error: %v", err)
	}
	if len(inbox) != 1 || inbox[0].Read {
		t.Fatalf("unexpected inbox: %+v", inbox)
	}

	if err := uc.MarkRead(context.Background(), 1, inbox[0].ID); err != nil {
		t.Fatalf("mark read returned error: %v", err)
	}
	if err := uc.MarkRead(context.Background(), 1, 999); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
