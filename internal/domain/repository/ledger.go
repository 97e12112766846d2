package repository

import (
	"context"
	"time"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// LedgerRepository manages income/expense transactions and the authoritative
// wallet aggregate. Record commits the transaction row and the wallet update
// as one unit and rejects expenses that would drive the wallet negative.
type LedgerRepository interface {
	Record(ctx context.Context, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error)
	Balance(ctx context.Context, userID int64) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error)
}
