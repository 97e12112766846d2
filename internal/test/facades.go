package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// LedgerFacadeStub provides controllable behaviour for ledger endpoints.
type LedgerFacadeStub struct {
	RecordFn       func(context.Context, int64, model.TransactionKind, string, int64, time.Time, string) (*model.Transaction, error)
	TransactionsFn func(context.Context, int64) ([]model.Transaction, error)
	BalancesFn     func(context.Context, int64) (*model.BalanceSummary, error)
}

// RecordTransaction delegates to the override or echoes the request.
func (s LedgerFacadeStub) RecordTransaction(ctx context.Context, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, userID, kind, category, amount, date, description)
	}
	return &model.Transaction{ID: 1, UserID: userID, Kind: kind, Category: category, Amount: amount, Date: date, Description: description}, nil
}

// Transactions returns predefined entries for the user.
func (s LedgerFacadeStub) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, userID)
	}
	return []model.Transaction{{ID: 1, Kind: model.TransactionIncome, Amount: 100}}, nil
}

// Balances returns stored summary or default data.
func (s LedgerFacadeStub) Balances(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	if s.BalancesFn != nil {
		return s.BalancesFn(ctx, userID)
	}
	return &model.BalanceSummary{Wallet: 1000, Points: 50}, nil
}

// DebtFacadeStub simulates debt note operations.
type DebtFacadeStub struct {
	CreateFn func(context.Context, int64, model.DebtType, string, int64, time.Time, *time.Time, string) (*model.DebtNote, error)
	PayFn    func(context.Context, int64, int64, int64, time.Time) (*model.DebtNote, error)
	SettleFn func(context.Context, int64, string, int64, time.Time) ([]model.DebtNote, error)
	DebtsFn  func(context.Context, int64) ([]model.DebtNote, error)
}

// CreateDebtNote executes configured creation handler.
func (s DebtFacadeStub) CreateDebtNote(ctx context.Context, userID int64, debtType model.DebtType, counterparty string, amount int64, date time.Time, repaymentDate *time.Time, description string) (*model.DebtNote, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, debtType, counterparty, amount, date, repaymentDate, description)
	}
	return &model.DebtNote{ID: 1, UserID: userID, Type: debtType, Counterparty: counterparty, Amount: amount, Status: model.DebtUnpaid, Date: date, RepaymentDate: repaymentDate, Description: description}, nil
}

// PayDebt executes configured payment handler.
func (s DebtFacadeStub) PayDebt(ctx context.Context, userID, noteID int64, amount int64, date time.Time) (*model.DebtNote, error) {
	if s.PayFn != nil {
		return s.PayFn(ctx, userID, noteID, amount, date)
	}
	return &model.DebtNote{ID: noteID, UserID: userID, PaidAmount: amount, Status: model.DebtPartiallyPaid}, nil
}

// SettleCounterparty executes configured settlement handler.
func (s DebtFacadeStub) SettleCounterparty(ctx context.Context, userID int64, counterparty string, amount int64, date time.Time) ([]model.DebtNote, error) {
	if s.SettleFn != nil {
		return s.SettleFn(ctx, userID, counterparty, amount, date)
	}
	return []model.DebtNote{{ID: 1, Counterparty: counterparty, Status: model.DebtPaid}}, nil
}

// Debts returns preconfigured notes.
func (s DebtFacadeStub) Debts(ctx context.Context, userID int64) ([]model.DebtNote, error) {
	if s.DebtsFn != nil {
		return s.DebtsFn(ctx, userID)
	}
	return []model.DebtNote{{ID: 1, Counterparty: "alex", Amount: 100}}, nil
}

// PointsFacadeStub simulates points ledger operations.
type PointsFacadeStub struct {
	HistoryFn      func(context.Context, int64) ([]model.PointEntry, error)
	AdTaskFn       func(context.Context, int64, string) (int64, error)
	SubscriptionFn func(context.Context, int64, string, int64) error
}

// PointsHistory returns preconfigured entries.
func (s PointsFacadeStub) PointsHistory(ctx context.Context, userID int64) ([]model.PointEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.PointEntry{{Source: model.PointSourceCheckIn, Direction: model.PointEarned, Points: 5}}, nil
}

// CompleteAdTask executes configured claim handler.
func (s PointsFacadeStub) CompleteAdTask(ctx context.Context, userID int64, token string) (int64, error) {
	if s.AdTaskFn != nil {
		return s.AdTaskFn(ctx, userID, token)
	}
	return 10, nil
}

// PurchaseSubscription executes configured purchase handler.
func (s PointsFacadeStub) PurchaseSubscription(ctx context.Context, userID int64, plan string, points int64) error {
	if s.SubscriptionFn != nil {
		return s.SubscriptionFn(ctx, userID, plan, points)
	}
	return nil
}

// WithdrawalFacadeStub simulates points-to-cash operations.
type WithdrawalFacadeStub struct {
	RequestFn     func(context.Context, int64, int64, string, string) (*model.WithdrawalRequest, error)
	ApproveFn     func(context.Context, int64, int64) (*model.WithdrawalRequest, error)
	RejectFn      func(context.Context, int64, int64, string) (*model.WithdrawalRequest, error)
	WithdrawalsFn func(context.Context, int64) ([]model.WithdrawalRequest, error)
}

// RequestWithdrawal executes configured request handler.
func (s WithdrawalFacadeStub) RequestWithdrawal(ctx context.Context, userID int64, points int64, method, account string) (*model.WithdrawalRequest, error) {
	if s.RequestFn != nil {
		return s.RequestFn(ctx, userID, points, method, account)
	}
	return &model.WithdrawalRequest{ID: 1, UserID: userID, Status: model.WithdrawalPending, Points: points, Method: method, Account: account}, nil
}

// ApproveWithdrawal executes configured approval handler.
func (s WithdrawalFacadeStub) ApproveWithdrawal(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, userID, requestID)
	}
	return &model.WithdrawalRequest{ID: requestID, UserID: userID, Status: model.WithdrawalApproved}, nil
}

// RejectWithdrawal executes configured rejection handler.
func (s WithdrawalFacadeStub) RejectWithdrawal(ctx context.Context, userID, requestID int64, reason string) (*model.WithdrawalRequest, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, userID, requestID, reason)
	}
	return &model.WithdrawalRequest{ID: requestID, UserID: userID, Status: model.WithdrawalRejected, RejectionReason: &reason, Refunded: true}, nil
}

// Withdrawals returns preconfigured history.
func (s WithdrawalFacadeStub) Withdrawals(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	if s.WithdrawalsFn != nil {
		return s.WithdrawalsFn(ctx, userID)
	}
	return []model.WithdrawalRequest{{ID: 1, Status: model.WithdrawalPending, Points: 100}}, nil
}

// CheckInFacadeStub simulates daily check-in operations.
type CheckInFacadeStub struct {
	StatusFn  func(context.Context, int64, time.Time) (*model.StreakSummary, error)
	CheckInFn func(context.Context, int64, time.Time) (*model.CheckIn, error)
}

// CheckInStatus returns the configured streak summary.
func (s CheckInFacadeStub) CheckInStatus(ctx context.Context, userID int64, now time.Time) (*model.StreakSummary, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, userID, now)
	}
	return &model.StreakSummary{Streak: 1, CheckedInToday: false}, nil
}

// CheckIn executes the configured check-in handler.
func (s CheckInFacadeStub) CheckIn(ctx context.Context, userID int64, now time.Time) (*model.CheckIn, error) {
	if s.CheckInFn != nil {
		return s.CheckInFn(ctx, userID, now)
	}
	return &model.CheckIn{ID: 1, UserID: userID, Day: model.DateOf(now), Points: 5}, nil
}

// NotificationFacadeStub simulates the inbox surface.
type NotificationFacadeStub struct {
	NotificationsFn func(context.Context, int64) ([]model.Notification, error)
	MarkReadFn      func(context.Context, int64, int64) error
}

// Notifications returns preconfigured alerts.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx, userID)
	}
	return []model.Notification{{ID: 1, Title: "hello"}}, nil
}

// MarkNotificationRead executes the configured handler.
func (s NotificationFacadeStub) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, userID, notificationID)
	}
	return nil
}

// FinanceFacadeStub aggregates facade dependencies for HTTP layer tests.
type FinanceFacadeStub struct {
	AuthFacadeStub
	LedgerFacadeStub
	DebtFacadeStub
	PointsFacadeStub
	WithdrawalFacadeStub
	CheckInFacadeStub
	NotificationFacadeStub
}

// NotifyCall stores information about Notify invocations.
type NotifyCall struct {
	UserID      int64
	Title       string
	Description string
	DedupKey    string
}

// WorkerFacadeStub mimics worker interactions with the finance facade.
type WorkerFacadeStub struct {
	Batches       [][]model.DebtNote
	DueSoonFn     func(context.Context, time.Time, int) ([]model.DebtNote, error)
	NotifyFn      func(context.Context, int64, string, string, *string, string) (bool, error)
	Notifies      []NotifyCall
	mu            sync.Mutex
	dueCallsCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// DebtsDueSoon returns batches from configured queue.
func (s *WorkerFacadeStub) DebtsDueSoon(ctx context.Context, deadline time.Time, limit int) ([]model.DebtNote, error) {
	if s.DueSoonFn != nil {
		return s.DueSoonFn(ctx, deadline, limit)
	}
	call := atomic.AddInt32(&s.dueCallsCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// Notify records reminder pushes.
func (s *WorkerFacadeStub) Notify(ctx context.Context, userID int64, title, description string, link *string, dedupKey string) (bool, error) {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, userID, title, description, link, dedupKey)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notifies = append(s.Notifies, NotifyCall{UserID: userID, Title: title, Description: description, DedupKey: dedupKey})
	return true, nil
}

// AdTaskVerifierStub resolves ad-task tokens for tests.
type AdTaskVerifierStub struct {
	VerifyFn func(context.Context, string) (*model.AdTask, error)
	Task     *model.AdTask
	Err      error
}

// Verify returns the configured response or a completed default task.
func (s AdTaskVerifierStub) Verify(ctx context.Context, token string) (*model.AdTask, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Task != nil {
		return s.Task, nil
	}
	return &model.AdTask{Token: token, Status: model.AdTaskCompleted, Reward: 10}, nil
}
