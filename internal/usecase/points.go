package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/domain/repository"
)

// AdTaskVerifier checks an ad-task token against the external network.
type AdTaskVerifier interface {
	Verify(ctx context.Context, token string) (*model.AdTask, error)
}

// PointsUseCase manages the reward-points economy.
type PointsUseCase struct {
	points repository.PointsRepository
	adnet  AdTaskVerifier
}

// NewPointsUseCase constructs PointsUseCase.
func NewPointsUseCase(points repository.PointsRepository, adnet AdTaskVerifier) *PointsUseCase {
	return &PointsUseCase{points: points, adnet: adnet}
}

// Earn credits points from an engine event.
func (u *PointsUseCase) Earn(ctx context.Context, userID int64, points int64, source model.PointSource) error {
	if points <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.points.Earn(ctx, userID, points, source)
}

// Spend debits points, failing when the balance cannot cover them.
func (u *PointsUseCase) Spend(ctx context.Context, userID int64, points int64, source model.PointSource) error {
	if points <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.points.Spend(ctx, userID, points, source)
}

// Balance returns the current points balance.
func (u *PointsUseCase) Balance(ctx context.Context, userID int64) (int64, error) {
	return u.points.Balance(ctx, userID)
}

// History returns the append-only points log newest-first.
func (u *PointsUseCase) History(ctx context.Context, userID int64) ([]model.PointEntry, error) {
	return u.points.History(ctx, userID)
}

// CompleteAdTask verifies the task token with the ad network and credits the
// reward. Each token is claimable once; replays fail with ErrAlreadyExists.
func (u *PointsUseCase) CompleteAdTask(ctx context.Context, userID int64, token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, domainErrors.ErrAdTaskInvalid
	}

	task, err := u.adnet.Verify(ctx, token)
	if err != nil {
		return 0, err
	}

	switch task.Status {
	case model.AdTaskCompleted:
	case model.AdTaskPending:
		return 0, domainErrors.ErrAdTaskNotCompleted
	default:
		return 0, domainErrors.ErrAdTaskInvalid
	}
	if task.Reward <= 0 {
		return 0, domainErrors.ErrAdTaskInvalid
	}

	if err := u.points.ClaimAdReward(ctx, userID, token, task.Reward); err != nil {
		return 0, err
	}
	return task.Reward, nil
}

// PurchaseSubscription spends points on a subscription plan. The plan
// catalog lives outside the engine; only the point cost matters here.
func (u *PointsUseCase) PurchaseSubscription(ctx context.Context, userID int64, plan string, points int64) error {
	if strings.TrimSpace(plan) == "" || points <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return u.points.Spend(ctx, userID, points, model.PointSourceSubscription)
}
