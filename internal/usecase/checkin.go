package usecase

import (
	"context"
	"time"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/domain/repository"
)

// streakWindow bounds how much history the streak walk ever needs: a streak
// longer than this is capped by the reward rule anyway.
const streakWindow = 366

// CheckInPolicy carries the configurable daily-reward rules.
type CheckInPolicy struct {
	BaseReward    int64
	MaxStreakDays int
}

// CheckInUseCase derives streaks and performs daily check-ins.
type CheckInUseCase struct {
	checkIns repository.CheckInRepository
	policy   CheckInPolicy
}

// NewCheckInUseCase constructs CheckInUseCase.
func NewCheckInUseCase(checkIns repository.CheckInRepository, policy CheckInPolicy) *CheckInUseCase {
	return &CheckInUseCase{checkIns: checkIns, policy: policy}
}

// Status reports the current streak and whether today is already covered.
func (u *CheckInUseCase) Status(ctx context.Context, userID int64, now time.Time) (*model.StreakSummary, error) {
	history, err := u.checkIns.ListRecent(ctx, userID, streakWindow)
	if err != nil {
		return nil, err
	}
	summary := model.ComputeStreak(history, now)
	return &summary, nil
}

// CheckIn records today's check-in and credits the streak-scaled reward in
// one unit. A second check-in on the same day fails with
// ErrAlreadyCheckedIn, both here and on the storage unique constraint.
func (u *CheckInUseCase) CheckIn(ctx context.Context, userID int64, now time.Time) (*model.CheckIn, error) {
	history, err := u.checkIns.ListRecent(ctx, userID, streakWindow)
	if err != nil {
		return nil, err
	}

	summary := model.ComputeStreak(history, now)
	if summary.CheckedInToday {
		return nil, domainErrors.ErrAlreadyCheckedIn
	}

	reward := model.CheckInReward(summary.Streak, u.policy.MaxStreakDays, u.policy.BaseReward)
	return u.checkIns.Create(ctx, userID, model.DateOf(now), reward)
}
