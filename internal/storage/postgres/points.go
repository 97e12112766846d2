package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
)

// lockPointsTx mirrors lockWalletTx for the points aggregate.
func lockPointsTx(ctx context.Context, tx pgx.Tx, userID int64) (int64, error) {
	if _, err := tx.Exec(ctx, `INSERT INTO point_accounts (user_id, balance) VALUES ($1, 0) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		return 0, mapError(err)
	}
	var balance int64
	if err := tx.QueryRow(ctx, `SELECT balance FROM point_accounts WHERE user_id=$1 FOR UPDATE`, userID).Scan(&balance); err != nil {
		return 0, mapError(err)
	}
	return balance, nil
}

// creditPointsTx appends a positive history entry and moves the aggregate in
// the same unit, keeping balance == signed sum of the log.
func creditPointsTx(ctx context.Context, tx pgx.Tx, userID, points int64, source model.PointSource, direction model.PointDirection, requestID *int64) error {
	if _, err := lockPointsTx(ctx, tx, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE point_accounts SET balance = balance + $2 WHERE user_id=$1`, userID, points); err != nil {
		return mapError(err)
	}
	const insert = `INSERT INTO point_entries (user_id, source, direction, points, request_id) VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, insert, userID, source, direction, points, requestID); err != nil {
		return mapError(err)
	}
	return nil
}

// debitPointsTx is the spending counterpart; it rejects debits the locked
// balance cannot cover.
func debitPointsTx(ctx context.Context, tx pgx.Tx, userID, points int64, source model.PointSource, requestID *int64) error {
	balance, err := lockPointsTx(ctx, tx, userID)
	if err != nil {
		return err
	}
	if balance < points {
		return domainErrors.ErrInsufficientPoints
	}
	if _, err := tx.Exec(ctx, `UPDATE point_accounts SET balance = balance - $2 WHERE user_id=$1`, userID, points); err != nil {
		return mapError(err)
	}
	const insert = `INSERT INTO point_entries (user_id, source, direction, points, request_id) VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, insert, userID, source, model.PointSpent, points, requestID); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *pointsRepository) Earn(ctx context.Context, userID int64, points int64, source model.PointSource) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return creditPointsTx(ctx, tx, userID, points, source, model.PointEarned, nil)
	})
	return mapError(err)
}

func (r *pointsRepository) Spend(ctx context.Context, userID int64, points int64, source model.PointSource) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return debitPointsTx(ctx, tx, userID, points, source, nil)
	})
	return mapError(err)
}

func (r *pointsRepository) Refund(ctx context.Context, userID int64, points int64, source model.PointSource, requestID int64) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return creditPointsTx(ctx, tx, userID, points, source, model.PointRefunded, &requestID)
	})
	return mapError(err)
}

func (r *pointsRepository) Balance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := r.storage.pool.QueryRow(ctx, `SELECT balance FROM point_accounts WHERE user_id=$1`, userID).Scan(&balance)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, mapError(err)
	}
	return balance, nil
}

func (r *pointsRepository) History(ctx context.Context, userID int64) ([]model.PointEntry, error) {
	const query = `SELECT id, user_id, source, direction, points, request_id, recorded_at
                   FROM point_entries WHERE user_id=$1 ORDER BY recorded_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.PointEntry
	for rows.Next() {
		var e model.PointEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Source, &e.Direction, &e.Points, &e.RequestID, &e.RecordedAt); err != nil {
			return nil, mapError(err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *pointsRepository) ClaimAdReward(ctx context.Context, userID int64, token string, points int64) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// The token is the idempotency key: a replayed claim hits the
		// primary key and nothing is credited twice.
		tag, err := tx.Exec(ctx, `INSERT INTO ad_claims (token, user_id, points) VALUES ($1, $2, $3) ON CONFLICT (token) DO NOTHING`, token, userID, points)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrAlreadyExists
		}
		return creditPointsTx(ctx, tx, userID, points, model.PointSourceAdTask, model.PointEarned, nil)
	})
	return mapError(err)
}
