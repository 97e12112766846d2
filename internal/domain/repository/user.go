package repository

import (
	"context"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, login, passwordHash, referralCode string, referredBy *int64) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByReferralCode(ctx context.Context, code string) (*model.User, error)
}
