package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
)

func (r *checkInRepository) Create(ctx context.Context, userID int64, day time.Time, points int64) (*model.CheckIn, error) {
	rec := model.CheckIn{UserID: userID, Day: day, Points: points}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO check_ins (user_id, day, points) VALUES ($1, $2, $3)
                        ON CONFLICT (user_id, day) DO NOTHING
                        RETURNING id, created_at`
		err := tx.QueryRow(ctx, insert, userID, day, points).Scan(&rec.ID, &rec.CreatedAt)
		if err != nil {
			if isNoRows(err) {
				return domainErrors.ErrAlreadyCheckedIn
			}
			return err
		}
		return creditPointsTx(ctx, tx, userID, points, model.PointSourceCheckIn, model.PointEarned, nil)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &rec, nil
}

func (r *checkInRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]model.CheckIn, error) {
	const query = `SELECT id, user_id, day, points, created_at
                   FROM check_ins WHERE user_id=$1 ORDER BY day DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.CheckIn
	for rows.Next() {
		var c model.CheckIn
		if err := rows.Scan(&c.ID, &c.UserID, &c.Day, &c.Points, &c.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}
