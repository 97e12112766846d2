package repository

import (
	"context"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// WithdrawalRepository manages the points-to-cash request lifecycle. Create
// debits the points account and stores the pending request atomically;
// MarkRejected flips the status and refunds exactly once under the refunded
// guard, all in one storage transaction.
type WithdrawalRepository interface {
	Create(ctx context.Context, userID int64, req model.WithdrawalRequest) (*model.WithdrawalRequest, error)
	Get(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error)
	MarkApproved(ctx context.Context, requestID int64) (*model.WithdrawalRequest, error)
	MarkRejected(ctx context.Context, requestID int64, reason string) (*model.WithdrawalRequest, error)
}
