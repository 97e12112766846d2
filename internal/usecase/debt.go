package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/domain/model"
	"github.com/finpoint/finpoint/internal/domain/repository"
)

// DebtUseCase encapsulates debt/due bookkeeping and settlement.
type DebtUseCase struct {
	debts repository.DebtRepository
}

// NewDebtUseCase constructs DebtUseCase.
func NewDebtUseCase(debts repository.DebtRepository) *DebtUseCase {
	return &DebtUseCase{debts: debts}
}

// Create records a lent/borrowed/shop-due note. The storage layer writes the
// mirror cash-flow transaction in the same unit, so lending without funds
// fails with ErrInsufficientBalance.
func (u *DebtUseCase) Create(ctx context.Context, userID int64, debtType model.DebtType, counterparty string, amount int64, date time.Time, repaymentDate *time.Time, description string) (*model.DebtNote, error) {
	switch debtType {
	case model.DebtLent, model.DebtBorrowed, model.DebtShopDue:
	default:
		return nil, domainErrors.ErrInvalidAmount
	}
	counterparty = strings.TrimSpace(counterparty)
	if counterparty == "" || amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	note := model.DebtNote{
		Type:          debtType,
		Counterparty:  counterparty,
		Amount:        amount,
		Status:        model.DebtUnpaid,
		Date:          model.DateOf(date),
		RepaymentDate: repaymentDate,
		Description:   description,
	}
	return u.debts.Create(ctx, userID, note)
}

// Pay settles part of a single note.
func (u *DebtUseCase) Pay(ctx context.Context, userID, noteID int64, amount int64, date time.Time) (*model.DebtNote, error) {
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidPaymentAmount
	}
	return u.debts.ApplyPayment(ctx, userID, noteID, amount, model.DateOf(date))
}

// Settle pays down everything owed to a counterparty, oldest note first.
func (u *DebtUseCase) Settle(ctx context.Context, userID int64, counterparty string, amount int64, date time.Time) ([]model.DebtNote, error) {
	counterparty = strings.TrimSpace(counterparty)
	if counterparty == "" {
		return nil, domainErrors.ErrInvalidPaymentAmount
	}
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidPaymentAmount
	}
	return u.debts.SettleCounterparty(ctx, userID, counterparty, amount, model.DateOf(date))
}

// Get fetches a single note.
func (u *DebtUseCase) Get(ctx context.Context, userID, noteID int64) (*model.DebtNote, error) {
	return u.debts.Get(ctx, userID, noteID)
}

// ListByUser returns all notes for the user.
func (u *DebtUseCase) ListByUser(ctx context.Context, userID int64) ([]model.DebtNote, error) {
	return u.debts.ListByUser(ctx, userID)
}

// DueSoon returns unpaid notes whose repayment date is inside the window.
func (u *DebtUseCase) DueSoon(ctx context.Context, deadline time.Time, limit int) ([]model.DebtNote, error) {
	return u.debts.ListDueSoon(ctx, deadline, limit)
}
