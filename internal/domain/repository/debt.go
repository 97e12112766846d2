package repository

import (
	"context"
	"time"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// DebtRepository persists debt notes and applies settlements. Every mutation
// that moves cash also writes the mirror ledger transaction and wallet update
// inside the same storage transaction.
type DebtRepository interface {
	// Create stores the note and, for lent/borrowed, the mirror cash-flow
	// transaction. Lending more than the wallet holds fails with
	// ErrInsufficientBalance.
	Create(ctx context.Context, userID int64, note model.DebtNote) (*model.DebtNote, error)
	Get(ctx context.Context, userID, noteID int64) (*model.DebtNote, error)
	ListByUser(ctx context.Context, userID int64) ([]model.DebtNote, error)

	// ApplyPayment settles part of a single note. The amount must already be
	// validated as positive; exceeding the outstanding remainder fails with
	// ErrInvalidPaymentAmount.
	ApplyPayment(ctx context.Context, userID, noteID int64, amount int64, date time.Time) (*model.DebtNote, error)

	// SettleCounterparty allocates one aggregate payment across the
	// counterparty's outstanding notes oldest-first and writes a single
	// mirror transaction. All note mutations commit together or not at all.
	SettleCounterparty(ctx context.Context, userID int64, counterparty string, amount int64, date time.Time) ([]model.DebtNote, error)

	// ListDueSoon returns unpaid notes across all users whose repayment date
	// falls on or before the deadline. Used by the reminder worker.
	ListDueSoon(ctx context.Context, deadline time.Time, limit int) ([]model.DebtNote, error)
}
