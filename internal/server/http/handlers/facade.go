package handlers

import (
	"context"
	"time"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password, referralCode string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// LedgerFacade exposes the money ledger operations.
type LedgerFacade interface {
	RecordTransaction(ctx context.Context, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error)
	Transactions(ctx context.Context, userID int64) ([]model.Transaction, error)
	Balances(ctx context.Context, userID int64) (*model.BalanceSummary, error)
}

// DebtFacade exposes debt note creation and settlement.
type DebtFacade interface {
	CreateDebtNote(ctx context.Context, userID int64, debtType model.DebtType, counterparty string, amount int64, date time.Time, repaymentDate *time.Time, description string) (*model.DebtNote, error)
	PayDebt(ctx context.Context, userID, noteID int64, amount int64, date time.Time) (*model.DebtNote, error)
	SettleCounterparty(ctx context.Context, userID int64, counterparty string, amount int64, date time.Time) ([]model.DebtNote, error)
	Debts(ctx context.Context, userID int64) ([]model.DebtNote, error)
}

// PointsFacade exposes the points ledger operations.
type PointsFacade interface {
	PointsHistory(ctx context.Context, userID int64) ([]model.PointEntry, error)
	CompleteAdTask(ctx context.Context, userID int64, token string) (int64, error)
	PurchaseSubscription(ctx context.Context, userID int64, plan string, points int64) error
}

// WithdrawalFacade exposes the points-to-cash lifecycle.
type WithdrawalFacade interface {
	RequestWithdrawal(ctx context.Context, userID int64, points int64, method, account string) (*model.WithdrawalRequest, error)
	ApproveWithdrawal(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error)
	RejectWithdrawal(ctx context.Context, userID, requestID int64, reason string) (*model.WithdrawalRequest, error)
	Withdrawals(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error)
}

// CheckInFacade exposes the daily check-in operations.
type CheckInFacade interface {
	CheckInStatus(ctx context.Context, userID int64, now time.Time) (*model.StreakSummary, error)
	CheckIn(ctx context.Context, userID int64, now time.Time) (*model.CheckIn, error)
}

// NotificationFacade exposes the user inbox.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID int64) error
}

// FinanceFacade aggregates the full set of operations used across handlers.
type FinanceFacade interface {
	AuthFacade
	LedgerFacade
	DebtFacade
	PointsFacade
	WithdrawalFacade
	CheckInFacade
	NotificationFacade
}
