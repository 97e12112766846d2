package postgres

import (
	"context"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
)

const userColumns = `id, login, password_hash, referral_code, referred_by, created_at`

func (r *userRepository) Create(ctx context.Context, login, passwordHash, referralCode string, referredBy *int64) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, referral_code, referred_by)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	u := model.User{Login: login, PasswordHash: passwordHash, ReferralCode: referralCode, ReferredBy: referredBy}
	if err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, referralCode, referredBy).Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE login=$1`, login)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByReferralCode(ctx context.Context, code string) (*model.User, error) {
	return r.getBy(ctx, `SELECT `+userColumns+` FROM users WHERE referral_code=$1`, code)
}

func (r *userRepository) getBy(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.ReferralCode, &u.ReferredBy, &u.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, mapError(err)
	}
	return &u, nil
}
