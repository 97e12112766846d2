package model

import "time"

// DebtType classifies who owes whom.
type DebtType string

const (
	DebtLent     DebtType = "lent"
	DebtBorrowed DebtType = "borrowed"
	DebtShopDue  DebtType = "shop_due"
)

// DebtStatus is derived from (Amount, PaidAmount) and never set directly.
type DebtStatus string

const (
	DebtUnpaid        DebtStatus = "unpaid"
	DebtPartiallyPaid DebtStatus = "partially_paid"
	DebtPaid          DebtStatus = "paid"
)

// DebtNote records money lent to a person, borrowed from a person, or owed
// to a shop. Once PaidAmount > 0 the note is a financial record and is never
// deleted.
type DebtNote struct {
	ID            int64
	UserID        int64
	Type          DebtType
	Counterparty  string
	Amount        int64
	PaidAmount    int64
	Status        DebtStatus
	Date          time.Time
	RepaymentDate *time.Time
	Description   string
	CreatedAt     time.Time
}

// Outstanding returns the unpaid remainder of the note.
func (n DebtNote) Outstanding() int64 {
	return n.Amount - n.PaidAmount
}

// DeriveDebtStatus computes the note status from its amounts.
// Invariant: 0 <= paid <= amount.
func DeriveDebtStatus(amount, paid int64) DebtStatus {
	switch {
	case paid == amount:
		return DebtPaid
	case paid > 0:
		return DebtPartiallyPaid
	default:
		return DebtUnpaid
	}
}

// PaymentAllocation is one slice of an aggregate payment assigned to a note.
type PaymentAllocation struct {
	NoteID int64
	Amount int64
}

// AllocatePayment distributes an aggregate payment across outstanding notes
// oldest-first. Notes must already be ordered by date ascending with ties in
// insertion order; fully paid notes are skipped. Allocation stops when the
// payment is exhausted. The leftover amount that could not be placed is
// returned alongside the plan.
func AllocatePayment(notes []DebtNote, amount int64) ([]PaymentAllocation, int64) {
	remaining := amount
	var plan []PaymentAllocation
	for _, n := range notes {
		if remaining <= 0 {
			break
		}
		outstanding := n.Outstanding()
		if outstanding <= 0 {
			continue
		}
		portion := outstanding
		if remaining < portion {
			portion = remaining
		}
		plan = append(plan, PaymentAllocation{NoteID: n.ID, Amount: portion})
		remaining -= portion
	}
	return plan, remaining
}
