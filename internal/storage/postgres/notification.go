package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
)

func (r *notificationRepository) Create(ctx context.Context, userID int64, n model.Notification, window time.Duration) (bool, error) {
	n.UserID = userID
	n.Read = false

	if n.DedupKey != nil {
		const insert = `INSERT INTO notifications (user_id, dedup_key, title, description, link)
                        VALUES ($1, $2, $3, $4, $5)
                        ON CONFLICT (user_id, dedup_key) DO NOTHING`
		tag, err := r.storage.pool.Exec(ctx, insert, userID, *n.DedupKey, n.Title, n.Description, n.Link)
		if err != nil {
			return false, mapError(err)
		}
		return tag.RowsAffected() > 0, nil
	}

	// Keyless creates fall back to content equality inside the window.
	// Under read committed two concurrent creates can both pass the
	// existence check; callers that need a hard guarantee supply a dedup
	// key and rely on the unique constraint instead.
	created := false
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lookup = `SELECT EXISTS (
                            SELECT 1 FROM notifications
                            WHERE user_id=$1 AND dedup_key IS NULL AND title=$2 AND description=$3
                              AND created_at > NOW() - make_interval(secs => $4)
                        )`
		var exists bool
		if err := tx.QueryRow(ctx, lookup, userID, n.Title, n.Description, window.Seconds()).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}

		const insert = `INSERT INTO notifications (user_id, title, description, link) VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insert, userID, n.Title, n.Description, n.Link); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, mapError(err)
	}
	return created, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const query = `SELECT id, user_id, dedup_key, title, description, read, link, created_at
                   FROM notifications WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.DedupKey, &n.Title, &n.Description, &n.Read, &n.Link, &n.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE notifications SET read=TRUE WHERE id=$1 AND user_id=$2`, notificationID, userID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
