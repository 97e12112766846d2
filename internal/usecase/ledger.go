package usecase

import (
	"context"
	"time"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/domain/repository"
)

// LedgerUseCase manages income/expense bookkeeping and the wallet balance.
type LedgerUseCase struct {
	ledger repository.LedgerRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(ledger repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledger: ledger}
}

// Record validates and stores a single transaction. Expenses exceeding the
// current balance are rejected before anything is written.
func (u *LedgerUseCase) Record(ctx context.Context, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error) {
	if kind != model.TransactionIncome && kind != model.TransactionExpense {
		return nil, domainErrors.ErrInvalidAmount
	}
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.ledger.Record(ctx, userID, kind, category, amount, model.DateOf(date), description)
}

// Balance returns the current spendable balance.
func (u *LedgerUseCase) Balance(ctx context.Context, userID int64) (int64, error) {
	return u.ledger.Balance(ctx, userID)
}

// History returns transactions newest-first.
func (u *LedgerUseCase) History(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return u.ledger.ListByUser(ctx, userID)
}
