package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/finpoint/finpoint/internal/config"
	"github.com/finpoint/finpoint/internal/domain/repository"
	pkgAuth "github.com/finpoint/finpoint/internal/pkg/auth"
)

type authParams struct {
	fx.In

	Users  repository.UserRepository
	Points repository.PointsRepository
	Hasher pkgAuth.PasswordHasher
	Tokens pkgAuth.Strategy
	Config *config.Config
	Logger *slog.Logger
}

type notificationParams struct {
	fx.In

	Notifications repository.NotificationRepository
	Config        *config.Config
}

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	func(cfg *config.Config) WithdrawalPolicy {
		return WithdrawalPolicy{MinPoints: cfg.MinWithdrawPoints, RatePer100: cfg.ExchangeRatePer100}
	},
	func(cfg *config.Config) CheckInPolicy {
		return CheckInPolicy{BaseReward: cfg.CheckInBaseReward, MaxStreakDays: cfg.MaxStreakDays}
	},
	func(p authParams) *AuthUseCase {
		return NewAuthUseCase(p.Users, p.Points, p.Hasher, p.Tokens, p.Config.ReferralReward, p.Logger)
	},
	NewLedgerUseCase,
	NewDebtUseCase,
	NewPointsUseCase,
	NewWithdrawalUseCase,
	NewCheckInUseCase,
	func(p notificationParams) *NotificationUseCase {
		return NewNotificationUseCase(p.Notifications, p.Config.NotificationDedupWindow)
	},
)
