package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
)

const withdrawalColumns = `id, user_id, reference, status, points, cash_amount, method, account, requested_at, processed_at, rejection_reason, refunded`

func scanWithdrawal(row pgx.Row) (*model.WithdrawalRequest, error) {
	var w model.WithdrawalRequest
	err := row.Scan(&w.ID, &w.UserID, &w.Reference, &w.Status, &w.Points, &w.CashAmount, &w.Method, &w.Account, &w.RequestedAt, &w.ProcessedAt, &w.RejectionReason, &w.Refunded)
	if err != nil {
		if isNoRows(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, mapError(err)
	}
	return &w, nil
}

func (r *withdrawalRepository) Create(ctx context.Context, userID int64, req model.WithdrawalRequest) (*model.WithdrawalRequest, error) {
	req.UserID = userID
	req.Status = model.WithdrawalPending
	req.Refunded = false

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO withdrawal_requests (user_id, reference, status, points, cash_amount, method, account)
                        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, requested_at`
		if err := tx.QueryRow(ctx, insert, userID, req.Reference, req.Status, req.Points, req.CashAmount, req.Method, req.Account).
			Scan(&req.ID, &req.RequestedAt); err != nil {
			return err
		}
		// Points leave the account in the same unit as the request row: a
		// pending request without the debit, or the debit without a
		// request, can never be observed.
		return debitPointsTx(ctx, tx, userID, req.Points, model.PointSourceWithdrawal, &req.ID)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &req, nil
}

func (r *withdrawalRepository) Get(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id=$1 AND user_id=$2`
	return scanWithdrawal(r.storage.pool.QueryRow(ctx, query, requestID, userID))
}

func (r *withdrawalRepository) ListByUser(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE user_id=$1 ORDER BY requested_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.WithdrawalRequest
	for rows.Next() {
		var w model.WithdrawalRequest
		if err := rows.Scan(&w.ID, &w.UserID, &w.Reference, &w.Status, &w.Points, &w.CashAmount, &w.Method, &w.Account, &w.RequestedAt, &w.ProcessedAt, &w.RejectionReason, &w.Refunded); err != nil {
			return nil, mapError(err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (r *withdrawalRepository) MarkApproved(ctx context.Context, requestID int64) (*model.WithdrawalRequest, error) {
	var approved *model.WithdrawalRequest
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id=$1 FOR UPDATE`
		req, err := scanWithdrawal(tx.QueryRow(ctx, query, requestID))
		if err != nil {
			return err
		}

		switch req.Status {
		case model.WithdrawalApproved:
			// Retried approval: terminal state already reached.
			approved = req
			return nil
		case model.WithdrawalRejected:
			return domainErrors.ErrInvalidTransition
		}

		const update = `UPDATE withdrawal_requests SET status=$2, processed_at=NOW() WHERE id=$1 RETURNING processed_at`
		if err := tx.QueryRow(ctx, update, req.ID, model.WithdrawalApproved).Scan(&req.ProcessedAt); err != nil {
			return err
		}
		req.Status = model.WithdrawalApproved
		approved = req
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return approved, nil
}

func (r *withdrawalRepository) MarkRejected(ctx context.Context, requestID int64, reason string) (*model.WithdrawalRequest, error) {
	var rejected *model.WithdrawalRequest
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id=$1 FOR UPDATE`
		req, err := scanWithdrawal(tx.QueryRow(ctx, query, requestID))
		if err != nil {
			return err
		}

		if req.Status != model.WithdrawalPending {
			return domainErrors.ErrInvalidTransition
		}

		const update = `UPDATE withdrawal_requests SET status=$2, rejection_reason=$3, processed_at=NOW() WHERE id=$1 RETURNING processed_at`
		if err := tx.QueryRow(ctx, update, req.ID, model.WithdrawalRejected, reason).Scan(&req.ProcessedAt); err != nil {
			return err
		}
		req.Status = model.WithdrawalRejected
		req.RejectionReason = &reason

		// The refunded flag is checked and flipped under the same row lock
		// as the status, so the refund applies exactly once even when the
		// caller retries.
		if !req.Refunded {
			if err := creditPointsTx(ctx, tx, req.UserID, req.Points, model.PointSourceRefund, model.PointRefunded, &req.ID); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `UPDATE withdrawal_requests SET refunded=TRUE WHERE id=$1`, req.ID); err != nil {
				return err
			}
			req.Refunded = true
		}

		rejected = req
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return rejected, nil
}
