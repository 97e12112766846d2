package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
)

// lockWalletTx creates the wallet row on first touch and takes a row lock
// on it, returning the current balance. Every cash mutation goes through
// this lock so concurrent writers serialize on the aggregate.
func lockWalletTx(ctx context.Context, tx pgx.Tx, userID int64) (int64, error) {
	if _, err := tx.Exec(ctx, `INSERT INTO wallets (user_id, balance) VALUES ($1, 0) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		return 0, mapError(err)
	}
	var balance int64
	if err := tx.QueryRow(ctx, `SELECT balance FROM wallets WHERE user_id=$1 FOR UPDATE`, userID).Scan(&balance); err != nil {
		return 0, mapError(err)
	}
	return balance, nil
}

// applyCashFlowTx records one transaction and moves the wallet aggregate in
// the same unit. Expenses that exceed the locked balance are rejected before
// anything is written.
func applyCashFlowTx(ctx context.Context, tx pgx.Tx, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error) {
	balance, err := lockWalletTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	delta := amount
	if kind == model.TransactionExpense {
		if balance < amount {
			return nil, domainErrors.ErrInsufficientBalance
		}
		delta = -amount
	}

	if _, err := tx.Exec(ctx, `UPDATE wallets SET balance = balance + $2 WHERE user_id=$1`, userID, delta); err != nil {
		return nil, mapError(err)
	}

	t := model.Transaction{
		UserID:      userID,
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
	}
	const insert = `INSERT INTO transactions (user_id, kind, category, amount, occurred_on, description)
                    VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insert, userID, kind, category, amount, date, description).Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &t, nil
}

func (r *ledgerRepository) Record(ctx context.Context, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error) {
	var created *model.Transaction
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = applyCashFlowTx(ctx, tx, userID, kind, category, amount, date, description)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

func (r *ledgerRepository) Balance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := r.storage.pool.QueryRow(ctx, `SELECT balance FROM wallets WHERE user_id=$1`, userID).Scan(&balance)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, mapError(err)
	}
	return balance, nil
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	const query = `SELECT id, user_id, kind, category, amount, occurred_on, description, created_at
                   FROM transactions WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Kind, &t.Category, &t.Amount, &t.Date, &t.Description, &t.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}
