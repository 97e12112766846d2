package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/domain/repository"
	pkgAuth "github.com/finpoint/finpoint/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle, token management, and referral
// rewards on sign-up.
type AuthUseCase struct {
	users          repository.UserRepository
	points         repository.PointsRepository
	hasher         pkgAuth.PasswordHasher
	tokens         pkgAuth.Strategy
	referralReward int64
	logger         *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, points repository.PointsRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, referralReward int64, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, points: points, hasher: hasher, tokens: strategy, referralReward: referralReward, logger: logger}
}

// Register creates a new user and returns an auth token. When a known
// referral code is supplied the referrer earns the referral reward; an
// unknown code is ignored rather than failing the sign-up.
func (u *AuthUseCase) Register(ctx context.Context, login, password, referralCode string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	var referredBy *int64
	var referrer *model.User
	if code := strings.TrimSpace(referralCode); code != "" {
		referrer, err = u.users.GetByReferralCode(ctx, code)
		if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", err
		}
		if referrer != nil {
			referredBy = &referrer.ID
		}
	}

	usr, err := u.users.Create(ctx, login, hash, uuid.NewString(), referredBy)
	if err != nil {
		return nil, "", err
	}

	// The account is committed at this point; a failed referral credit
	// must not surface as a registration failure.
	if referrer != nil && u.referralReward > 0 {
		if err := u.points.Earn(ctx, referrer.ID, u.referralReward, model.PointSourceReferral); err != nil {
			u.logger.Warn("referral credit failed",
				slog.Int64("referrer", referrer.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the user ID from a token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
