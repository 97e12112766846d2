package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
)

const debtColumns = `id, user_id, kind, counterparty, amount, paid_amount, status, incurred_on, repay_by, description, created_at`

func scanDebtNote(row pgx.Row) (*model.DebtNote, error) {
	var n model.DebtNote
	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Counterparty, &n.Amount, &n.PaidAmount, &n.Status, &n.Date, &n.RepaymentDate, &n.Description, &n.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, mapError(err)
	}
	return &n, nil
}

// mirrorOnCreate returns the cash-flow transaction recorded alongside note
// creation. Shop dues are credit purchases and move no cash at creation.
func mirrorOnCreate(n model.DebtNote) (model.TransactionKind, string, bool) {
	switch n.Type {
	case model.DebtLent:
		return model.TransactionExpense, "debt given", true
	case model.DebtBorrowed:
		return model.TransactionIncome, "debt taken", true
	default:
		return "", "", false
	}
}

// mirrorOnPayment returns the cash-flow transaction recorded when a note is
// paid down: collecting a lent note is income, repaying a borrowed note or a
// shop due is an expense.
func mirrorOnPayment(t model.DebtType) (model.TransactionKind, string) {
	if t == model.DebtLent {
		return model.TransactionIncome, "debt recovered"
	}
	if t == model.DebtBorrowed {
		return model.TransactionExpense, "debt repayment"
	}
	return model.TransactionExpense, "due payment"
}

func (r *debtRepository) Create(ctx context.Context, userID int64, note model.DebtNote) (*model.DebtNote, error) {
	note.UserID = userID
	note.PaidAmount = 0
	note.Status = model.DebtUnpaid

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if kind, category, ok := mirrorOnCreate(note); ok {
			desc := fmt.Sprintf("%s: %s", category, note.Counterparty)
			if _, err := applyCashFlowTx(ctx, tx, userID, kind, category, note.Amount, note.Date, desc); err != nil {
				return err
			}
		}

		const insert = `INSERT INTO debt_notes (user_id, kind, counterparty, amount, paid_amount, status, incurred_on, repay_by, description)
                        VALUES ($1, $2, $3, $4, 0, $5, $6, $7, $8) RETURNING id, created_at`
		return tx.QueryRow(ctx, insert, userID, note.Type, note.Counterparty, note.Amount, note.Status, note.Date, note.RepaymentDate, note.Description).
			Scan(&note.ID, &note.CreatedAt)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &note, nil
}

func (r *debtRepository) Get(ctx context.Context, userID, noteID int64) (*model.DebtNote, error) {
	query := `SELECT ` + debtColumns + ` FROM debt_notes WHERE id=$1 AND user_id=$2`
	return scanDebtNote(r.storage.pool.QueryRow(ctx, query, noteID, userID))
}

func (r *debtRepository) ListByUser(ctx context.Context, userID int64) ([]model.DebtNote, error) {
	query := `SELECT ` + debtColumns + ` FROM debt_notes WHERE user_id=$1 ORDER BY incurred_on DESC, id DESC`
	return r.queryNotes(ctx, query, userID)
}

func (r *debtRepository) ApplyPayment(ctx context.Context, userID, noteID int64, amount int64, date time.Time) (*model.DebtNote, error) {
	var updated *model.DebtNote
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + debtColumns + ` FROM debt_notes WHERE id=$1 AND user_id=$2 FOR UPDATE`
		note, err := scanDebtNote(tx.QueryRow(ctx, query, noteID, userID))
		if err != nil {
			return err
		}

		if amount <= 0 || amount > note.Outstanding() {
			return domainErrors.ErrInvalidPaymentAmount
		}

		kind, category := mirrorOnPayment(note.Type)
		desc := fmt.Sprintf("%s: %s", category, note.Counterparty)
		if _, err := applyCashFlowTx(ctx, tx, userID, kind, category, amount, date, desc); err != nil {
			return err
		}

		note.PaidAmount += amount
		note.Status = model.DeriveDebtStatus(note.Amount, note.PaidAmount)
		if _, err := tx.Exec(ctx, `UPDATE debt_notes SET paid_amount=$2, status=$3 WHERE id=$1`, note.ID, note.PaidAmount, note.Status); err != nil {
			return err
		}

		updated = note
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (r *debtRepository) SettleCounterparty(ctx context.Context, userID int64, counterparty string, amount int64, date time.Time) ([]model.DebtNote, error) {
	var settled []model.DebtNote
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// Oldest dues first; equal dates settle in insertion order.
		query := `SELECT ` + debtColumns + ` FROM debt_notes
                  WHERE user_id=$1 AND counterparty=$2 AND kind=$3 AND status <> $4
                  ORDER BY incurred_on, id
                  FOR UPDATE`
		rows, err := tx.Query(ctx, query, userID, counterparty, model.DebtShopDue, model.DebtPaid)
		if err != nil {
			return err
		}
		defer rows.Close()

		var notes []model.DebtNote
		for rows.Next() {
			var n model.DebtNote
			if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Counterparty, &n.Amount, &n.PaidAmount, &n.Status, &n.Date, &n.RepaymentDate, &n.Description, &n.CreatedAt); err != nil {
				return err
			}
			notes = append(notes, n)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		plan, leftover := model.AllocatePayment(notes, amount)
		if len(plan) == 0 || leftover > 0 {
			return domainErrors.ErrInvalidPaymentAmount
		}

		desc := fmt.Sprintf("due payment: %s", counterparty)
		if _, err := applyCashFlowTx(ctx, tx, userID, model.TransactionExpense, "due payment", amount, date, desc); err != nil {
			return err
		}

		byID := make(map[int64]*model.DebtNote, len(notes))
		for i := range notes {
			byID[notes[i].ID] = &notes[i]
		}
		for _, alloc := range plan {
			note := byID[alloc.NoteID]
			note.PaidAmount += alloc.Amount
			note.Status = model.DeriveDebtStatus(note.Amount, note.PaidAmount)
			if _, err := tx.Exec(ctx, `UPDATE debt_notes SET paid_amount=$2, status=$3 WHERE id=$1`, note.ID, note.PaidAmount, note.Status); err != nil {
				return err
			}
			settled = append(settled, *note)
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return settled, nil
}

func (r *debtRepository) ListDueSoon(ctx context.Context, deadline time.Time, limit int) ([]model.DebtNote, error) {
	query := `SELECT ` + debtColumns + ` FROM debt_notes
              WHERE status <> 'paid' AND repay_by IS NOT NULL AND repay_by <= $1
              ORDER BY repay_by, id LIMIT $2`
	return r.queryNotes(ctx, query, deadline, limit)
}

func (r *debtRepository) queryNotes(ctx context.Context, query string, args ...any) ([]model.DebtNote, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var result []model.DebtNote
	for rows.Next() {
		var n model.DebtNote
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Counterparty, &n.Amount, &n.PaidAmount, &n.Status, &n.Date, &n.RepaymentDate, &n.Description, &n.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return result, nil
}
