package repository

import (
	"context"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// PointsRepository mutates the points account exclusively through signed
// history entries; the account row and the entry commit together so the
// balance always equals the signed sum of the log.
type PointsRepository interface {
	Earn(ctx context.Context, userID int64, points int64, source model.PointSource) error
	Spend(ctx context.Context, userID int64, points int64, source model.PointSource) error
	Refund(ctx context.Context, userID int64, points int64, source model.PointSource, requestID int64) error
	Balance(ctx context.Context, userID int64) (int64, error)
	History(ctx context.Context, userID int64) ([]model.PointEntry, error)

	// ClaimAdReward credits an ad-task reward at most once per task token.
	// A repeated claim fails with ErrAlreadyExists.
	ClaimAdReward(ctx context.Context, userID int64, token string, points int64) error
}
