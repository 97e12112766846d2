package test

import (
	"context"
	"time"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users  map[string]*model.User
	ByID   map[int64]*model.User
	ByCode map[string]*model.User
	Next   int64
	Err    error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users:  make(map[string]*model.User),
		ByID:   make(map[int64]*model.User),
		ByCode: make(map[string]*model.User),
		Next:   1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash, referralCode string, referredBy *int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if s.ByCode == nil {
		s.ByCode = make(map[string]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, ReferralCode: referralCode, ReferredBy: referredBy}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	s.ByCode[referralCode] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByReferralCode fetches user by shareable code or returns not found.
func (s *UserRepositoryStub) GetByReferralCode(ctx context.Context, code string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByCode[code]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// LedgerRecordCall captures one Record invocation.
type LedgerRecordCall struct {
	UserID      int64
	Kind        model.TransactionKind
	Category    string
	Amount      int64
	Date        time.Time
	Description string
}

// LedgerRepositoryStub lets tests control ledger behaviour.
type LedgerRepositoryStub struct {
	RecordFn   func(context.Context, int64, model.TransactionKind, string, int64, time.Time, string) (*model.Transaction, error)
	BalanceFn  func(context.Context, int64) (int64, error)
	ListFn     func(context.Context, int64) ([]model.Transaction, error)
	Recorded   []LedgerRecordCall
	BalanceVal int64
	Items      []model.Transaction
}

// Record tracks invocations and returns configured responses.
func (s *LedgerRepositoryStub) Record(ctx context.Context, userID int64, kind model.TransactionKind, category string, amount int64, date time.Time, description string) (*model.Transaction, error) {
	s.Recorded = append(s.Recorded, LedgerRecordCall{userID, kind, category, amount, date, description})
	if s.RecordFn != nil {
		return s.RecordFn(ctx, userID, kind, category, amount, date, description)
	}
	return &model.Transaction{ID: int64(len(s.Recorded)), UserID: userID, Kind: kind, Category: category, Amount: amount, Date: date, Description: description}, nil
}

// Balance returns configured wallet balance.
func (s *LedgerRepositoryStub) Balance(ctx context.Context, userID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return s.BalanceVal, nil
}

// ListByUser returns transactions from configured slice.
func (s *LedgerRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.Items, nil
}

// DebtRepositoryStub allows tests to customize behaviour.
type DebtRepositoryStub struct {
	CreateFn             func(context.Context, int64, model.DebtNote) (*model.DebtNote, error)
	GetFn                func(context.Context, int64, int64) (*model.DebtNote, error)
	ListByUserFn         func(context.Context, int64) ([]model.DebtNote, error)
	ApplyPaymentFn       func(context.Context, int64, int64, int64, time.Time) (*model.DebtNote, error)
	SettleCounterpartyFn func(context.Context, int64, string, int64, time.Time) ([]model.DebtNote, error)
	ListDueSoonFn        func(context.Context, time.Time, int) ([]model.DebtNote, error)
	Notes                []model.DebtNote
	DueSoon              []model.DebtNote
}

// Create returns configured response or echoes the note.
func (s *DebtRepositoryStub) Create(ctx context.Context, userID int64, note model.DebtNote) (*model.DebtNote, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, note)
	}
	note.ID = int64(len(s.Notes) + 1)
	note.UserID = userID
	s.Notes = append(s.Notes, note)
	return &note, nil
}

// Get returns matched note either via override or stored slice.
func (s *DebtRepositoryStub) Get(ctx context.Context, userID, noteID int64) (*model.DebtNote, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, noteID)
	}
	for _, n := range s.Notes {
		if n.ID == noteID && n.UserID == userID {
			note := n
			return &note, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns notes from configured slice.
func (s *DebtRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.DebtNote, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Notes, nil
}

// ApplyPayment executes the override when provided.
func (s *DebtRepositoryStub) ApplyPayment(ctx context.Context, userID, noteID int64, amount int64, date time.Time) (*model.DebtNote, error) {
	if s.ApplyPaymentFn != nil {
		return s.ApplyPaymentFn(ctx, userID, noteID, amount, date)
	}
	return nil, domainErrors.ErrNotFound
}

// SettleCounterparty executes the override when provided.
func (s *DebtRepositoryStub) SettleCounterparty(ctx context.Context, userID int64, counterparty string, amount int64, date time.Time) ([]model.DebtNote, error) {
	if s.SettleCounterpartyFn != nil {
		return s.SettleCounterpartyFn(ctx, userID, counterparty, amount, date)
	}
	return nil, nil
}

// ListDueSoon returns the configured due-soon batch.
func (s *DebtRepositoryStub) ListDueSoon(ctx context.Context, deadline time.Time, limit int) ([]model.DebtNote, error) {
	if s.ListDueSoonFn != nil {
		return s.ListDueSoonFn(ctx, deadline, limit)
	}
	return s.DueSoon, nil
}

// PointsMutation captures one points account change.
type PointsMutation struct {
	UserID    int64
	Points    int64
	Source    model.PointSource
	RequestID int64
}

// PointsRepositoryStub keeps an in-memory points account for tests.
type PointsRepositoryStub struct {
	EarnFn        func(context.Context, int64, int64, model.PointSource) error
	SpendFn       func(context.Context, int64, int64, model.PointSource) error
	RefundFn      func(context.Context, int64, int64, model.PointSource, int64) error
	BalanceFn     func(context.Context, int64) (int64, error)
	HistoryFn     func(context.Context, int64) ([]model.PointEntry, error)
	ClaimFn       func(context.Context, int64, string, int64) error
	BalanceVal    int64
	Entries       []model.PointEntry
	Earned        []PointsMutation
	Spent         []PointsMutation
	Refunded      []PointsMutation
	ClaimedTokens map[string]bool
}

// Earn credits points into the stub account.
func (s *PointsRepositoryStub) Earn(ctx context.Context, userID int64, points int64, source model.PointSource) error {
	if s.EarnFn != nil {
		return s.EarnFn(ctx, userID, points, source)
	}
	s.Earned = append(s.Earned, PointsMutation{UserID: userID, Points: points, Source: source})
	s.BalanceVal += points
	return nil
}

// Spend debits points, honouring the stub balance.
func (s *PointsRepositoryStub) Spend(ctx context.Context, userID int64, points int64, source model.PointSource) error {
	if s.SpendFn != nil {
		return s.SpendFn(ctx, userID, points, source)
	}
	if points > s.BalanceVal {
		return domainErrors.ErrInsufficientPoints
	}
	s.Spent = append(s.Spent, PointsMutation{UserID: userID, Points: points, Source: source})
	s.BalanceVal -= points
	return nil
}

// Refund credits previously spent points back.
func (s *PointsRepositoryStub) Refund(ctx context.Context, userID int64, points int64, source model.PointSource, requestID int64) error {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, userID, points, source, requestID)
	}
	s.Refunded = append(s.Refunded, PointsMutation{UserID: userID, Points: points, Source: source, RequestID: requestID})
	s.BalanceVal += points
	return nil
}

// Balance returns the stub balance.
func (s *PointsRepositoryStub) Balance(ctx context.Context, userID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return s.BalanceVal, nil
}

// History returns configured entries.
func (s *PointsRepositoryStub) History(ctx context.Context, userID int64) ([]model.PointEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return s.Entries, nil
}

// ClaimAdReward credits a reward once per token.
func (s *PointsRepositoryStub) ClaimAdReward(ctx context.Context, userID int64, token string, points int64) error {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, userID, token, points)
	}
	if s.ClaimedTokens == nil {
		s.ClaimedTokens = make(map[string]bool)
	}
	if s.ClaimedTokens[token] {
		return domainErrors.ErrAlreadyExists
	}
	s.ClaimedTokens[token] = true
	s.BalanceVal += points
	return nil
}

// WithdrawalRepositoryStub stores withdrawal requests for tests.
type WithdrawalRepositoryStub struct {
	CreateFn       func(context.Context, int64, model.WithdrawalRequest) (*model.WithdrawalRequest, error)
	GetFn          func(context.Context, int64, int64) (*model.WithdrawalRequest, error)
	ListFn         func(context.Context, int64) ([]model.WithdrawalRequest, error)
	MarkApprovedFn func(context.Context, int64) (*model.WithdrawalRequest, error)
	MarkRejectedFn func(context.Context, int64, string) (*model.WithdrawalRequest, error)
	Items          []model.WithdrawalRequest
}

// Create stores the request and assigns an identifier.
func (s *WithdrawalRepositoryStub) Create(ctx context.Context, userID int64, req model.WithdrawalRequest) (*model.WithdrawalRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, req)
	}
	req.ID = int64(len(s.Items) + 1)
	req.UserID = userID
	s.Items = append(s.Items, req)
	return &req, nil
}

// Get returns a stored request or not found.
func (s *WithdrawalRepositoryStub) Get(ctx context.Context, userID, requestID int64) (*model.WithdrawalRequest, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, requestID)
	}
	for _, r := range s.Items {
		if r.ID == requestID && r.UserID == userID {
			req := r
			return &req, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns configured requests.
func (s *WithdrawalRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.WithdrawalRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.Items, nil
}

// MarkApproved executes the override when provided.
func (s *WithdrawalRepositoryStub) MarkApproved(ctx context.Context, requestID int64) (*model.WithdrawalRequest, error) {
	if s.MarkApprovedFn != nil {
		return s.MarkApprovedFn(ctx, requestID)
	}
	return nil, domainErrors.ErrNotFound
}

// MarkRejected executes the override when provided.
func (s *WithdrawalRepositoryStub) MarkRejected(ctx context.Context, requestID int64, reason string) (*model.WithdrawalRequest, error) {
	if s.MarkRejectedFn != nil {
		return s.MarkRejectedFn(ctx, requestID, reason)
	}
	return nil, domainErrors.ErrNotFound
}

// CheckInRepositoryStub stores check-ins newest-first for tests.
type CheckInRepositoryStub struct {
	CreateFn     func(context.Context, int64, time.Time, int64) (*model.CheckIn, error)
	ListRecentFn func(context.Context, int64, int) ([]model.CheckIn, error)
	History      []model.CheckIn
	Created      []model.CheckIn
}

// Create records the check-in unless the day is already taken.
func (s *CheckInRepositoryStub) Create(ctx context.Context, userID int64, day time.Time, points int64) (*model.CheckIn, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, day, points)
	}
	for _, c := range s.History {
		if c.Day.Equal(day) {
			return nil, domainErrors.ErrAlreadyCheckedIn
		}
	}
	rec := model.CheckIn{ID: int64(len(s.Created) + 1), UserID: userID, Day: day, Points: points}
	s.Created = append(s.Created, rec)
	s.History = append([]model.CheckIn{rec}, s.History...)
	return &rec, nil
}

// ListRecent returns the configured newest-first history.
func (s *CheckInRepositoryStub) ListRecent(ctx context.Context, userID int64, limit int) ([]model.CheckIn, error) {
	if s.ListRecentFn != nil {
		return s.ListRecentFn(ctx, userID, limit)
	}
	if limit < len(s.History) {
		return s.History[:limit], nil
	}
	return s.History, nil
}

// NotificationRepositoryStub keeps alerts in-memory with key dedup.
type NotificationRepositoryStub struct {
	CreateFn   func(context.Context, int64, model.Notification, time.Duration) (bool, error)
	ListFn     func(context.Context, int64) ([]model.Notification, error)
	MarkReadFn func(context.Context, int64, int64) error
	Items      []model.Notification
}

// Create inserts the alert unless its dedup key is already present.
func (s *NotificationRepositoryStub) Create(ctx context.Context, userID int64, n model.Notification, window time.Duration) (bool, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, n, window)
	}
	if n.DedupKey != nil {
		for _, existing := range s.Items {
			if existing.UserID == userID && existing.DedupKey != nil && *existing.DedupKey == *n.DedupKey {
				return false, nil
			}
		}
	}
	n.ID = int64(len(s.Items) + 1)
	n.UserID = userID
	s.Items = append(s.Items, n)
	return true, nil
}

// ListByUser returns stored alerts for the user.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	var out []model.Notification
	for _, n := range s.Items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// MarkRead flips the read flag on a stored alert.
func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, userID, notificationID int64) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, userID, notificationID)
	}
	for i := range s.Items {
		if s.Items[i].ID == notificationID && s.Items[i].UserID == userID {
			s.Items[i].Read = true
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
