package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/domain/repository"
)

// exchangeUnit is the points granularity of the cash exchange: cash is
// quoted per 100 points and requests are floored to a multiple of it
// before anything is deducted.
const exchangeUnit = 100

// WithdrawalPolicy carries the configurable withdrawal rules.
type WithdrawalPolicy struct {
	// MinPoints is the smallest floored request the engine accepts.
	MinPoints int64
	// RatePer100 is the cash value, in minor currency units, of 100 points.
	RatePer100 int64
}

// WithdrawalUseCase drives the points-to-cash request state machine.
type WithdrawalUseCase struct {
	withdrawals repository.WithdrawalRepository
	points      repository.PointsRepository
	policy      WithdrawalPolicy
}

// NewWithdrawalUseCase constructs WithdrawalUseCase.
func NewWithdrawalUseCase(w repository.WithdrawalRepository, p repository.PointsRepository, policy WithdrawalPolicy) *WithdrawalUseCase {
	return &WithdrawalUseCase{withdrawals: w, points: p, policy: policy}
}

// Request floors the requested points to the exchange granularity, checks
// the threshold and the balance, then atomically debits the floored points
// and stores the pending request. The cash amount is always computed from
// the floored count.
func (u *WithdrawalUseCase) Request(ctx context.Context, userID int64, points int64, method, account string) (*model.WithdrawalRequest, error) {
	if points <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	method = strings.TrimSpace(method)
	account = strings.TrimSpace(account)
	if method == "" || account == "" {
		return nil, domainErrors.ErrInvalidAmount
	}

	floored := model.FloorToExchangeUnit(points, exchangeUnit)
	if floored < u.policy.MinPoints {
		return nil, domainErrors.ErrBelowMinimumThreshold
	}

	balance, err := u.points.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if floored > balance {
		return nil, domainErrors.ErrInsufficientPoints
	}

	req := model.WithdrawalRequest{
		Reference:  uuid.NewString(),
		Status:     model.WithdrawalPending,
		Points:     floored,
		CashAmount: floored / exchangeUnit * u.policy.RatePer100,
		Method:     method,
		Account:    account,
	}
	return u.withdrawals.Create(ctx, userID, req)
}

// Approve finishes a request with no further balance effect. Approving an
// already approved request is a no-op. A request owned by another user is
// reported as not found.
func (u *WithdrawalUseCase) Approve(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error) {
	if _, err := u.withdrawals.Get(ctx, userID, requestID); err != nil {
		return nil, err
	}
	return u.withdrawals.MarkApproved(ctx, requestID)
}

// Reject finishes a pending request and refunds its points exactly once.
// A request owned by another user is reported as not found.
func (u *WithdrawalUseCase) Reject(ctx context.Context, userID, requestID int64, reason string) (*model.WithdrawalRequest, error) {
	if _, err := u.withdrawals.Get(ctx, userID, requestID); err != nil {
		return nil, err
	}
	return u.withdrawals.MarkRejected(ctx, requestID, reason)
}

// Get fetches a request owned by the user.
func (u *WithdrawalUseCase) Get(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error) {
	return u.withdrawals.Get(ctx, userID, requestID)
}

// History returns requests newest-first.
func (u *WithdrawalUseCase) History(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	return u.withdrawals.ListByUser(ctx, userID)
}
