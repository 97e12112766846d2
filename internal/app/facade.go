package app

import (
	"context"
	"time"

	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/usecase"
)

// FinanceFacade aggregates the engine use cases behind one surface consumed
// by the HTTP handlers and the reminder worker.
type FinanceFacade struct {
	auth          *usecase.AuthUseCase
	ledger        *usecase.LedgerUseCase
	debts         *usecase.DebtUseCase
	points        *usecase.PointsUseCase
	withdrawals   *usecase.WithdrawalUseCase
	checkIns      *usecase.CheckInUseCase
	notifications *usecase.NotificationUseCase
}

// NewFinanceFacade constructs FinanceFacade.
func NewFinanceFacade(
	auth *usecase.AuthUseCase,
	ledger *usecase.LedgerUseCase,
	debts *usecase.DebtUseCase,
	points *usecase.PointsUseCase,
	withdrawals *usecase.WithdrawalUseCase,
	checkIns *usecase.CheckInUseCase,
	notifications *usecase.NotificationUseCase,
) *FinanceFacade {
	return &FinanceFacade{
		auth:          auth,
		ledger:        ledger,
		debts:         debts,
		points:        points,
		withdrawals:   withdrawals,
		checkIns:      checkIns,
		notifications: notifications,
	}
}

func (f *FinanceFacade) Register(ctx context.Context, login, password, referralCode string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, referralCode)
	return token, err
}

func (f *FinanceFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *FinanceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *FinanceFacade) RecordTransaction(ctx context.Context, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error) {
	return f.ledger.Record(ctx, userID, kind, category, amount, date, description)
}

func (f *FinanceFacade) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return f.ledger.History(ctx, userID)
}

// Balances returns the wallet and points balances together.
func (f *FinanceFacade) Balances(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	wallet, err := f.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	points, err := f.points.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.BalanceSummary{Wallet: wallet, Points: points}, nil
}

func (f *FinanceFacade) CreateDebtNote(ctx context.Context, userID int64, debtType model.DebtType, counterparty string, amount int64, date time.Time, repaymentDate *time.Time, description string) (*model.DebtNote, error) {
	return f.debts.Create(ctx, userID, debtType, counterparty, amount, date, repaymentDate, description)
}

func (f *FinanceFacade) PayDebt(ctx context.Context, userID, noteID int64, amount int64, date time.Time) (*model.DebtNote, error) {
	return f.debts.Pay(ctx, userID, noteID, amount, date)
}

func (f *FinanceFacade) SettleCounterparty(ctx context.Context, userID int64, counterparty string, amount int64, date time.Time) ([]model.DebtNote, error) {
	return f.debts.Settle(ctx, userID, counterparty, amount, date)
}

func (f *FinanceFacade) Debts(ctx context.Context, userID int64) ([]model.DebtNote, error) {
	return f.debts.ListByUser(ctx, userID)
}

func (f *FinanceFacade) DebtsDueSoon(ctx context.Context, deadline time.Time, limit int) ([]model.DebtNote, error) {
	return f.debts.DueSoon(ctx, deadline, limit)
}

func (f *FinanceFacade) PointsHistory(ctx context.Context, userID int64) ([]model.PointEntry, error) {
	return f.points.History(ctx, userID)
}

func (f *FinanceFacade) CompleteAdTask(ctx context.Context, userID int64, token string) (int64, error) {
	return f.points.CompleteAdTask(ctx, userID, token)
}

func (f *FinanceFacade) PurchaseSubscription(ctx context.Context, userID int64, plan string, points int64) error {
	return f.points.PurchaseSubscription(ctx, userID, plan, points)
}

func (f *FinanceFacade) RequestWithdrawal(ctx context.Context, userID int64, points int64, method, account string) (*model.WithdrawalRequest, error) {
	return f.withdrawals.Request(ctx, userID, points, method, account)
}

func (f *FinanceFacade) ApproveWithdrawal(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error) {
	return f.withdrawals.Approve(ctx, userID, requestID)
}

func (f *FinanceFacade) RejectWithdrawal(ctx context.Context, userID, requestID int64, reason string) (*model.WithdrawalRequest, error) {
	return f.withdrawals.Reject(ctx, userID, requestID, reason)
}

func (f *FinanceFacade) Withdrawals(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	return f.withdrawals.History(ctx, userID)
}

func (f *FinanceFacade) CheckInStatus(ctx context.Context, userID int64, now time.Time) (*model.StreakSummary, error) {
	return f.checkIns.Status(ctx, userID, now)
}

func (f *FinanceFacade) CheckIn(ctx context.Context, userID int64, now time.Time) (*model.CheckIn, error) {
	return f.checkIns.CheckIn(ctx, userID, now)
}

func (f *FinanceFacade) Notify(ctx context.Context, userID int64, title, description string, link *string, dedupKey string) (bool, error) {
	return f.notifications.Notify(ctx, userID, title, description, link, dedupKey)
}

func (f *FinanceFacade) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	return f.notifications.Inbox(ctx, userID)
}

func (f *FinanceFacade) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	return f.notifications.MarkRead(ctx, userID, notificationID)
}
