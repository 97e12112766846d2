package dto

import "time"

// DebtNoteRequest describes a new lent/borrowed/shop-due record.
type DebtNoteRequest struct {
	Type          string `json:"type"`
	Counterparty  string `json:"counterparty"`
	Amount        int64  `json:"amount"`
	Date          string `json:"date"`
	RepaymentDate string `json:"repayment_date,omitempty"`
	Description   string `json:"description,omitempty"`
}

// DebtPaymentRequest describes a partial payment against one note.
type DebtPaymentRequest struct {
	Amount int64  `json:"amount"`
	Date   string `json:"date"`
}

// SettlementRequest pays down everything owed to a counterparty.
type SettlementRequest struct {
	Counterparty string `json:"counterparty"`
	Amount       int64  `json:"amount"`
	Date         string `json:"date"`
}

// DebtNoteResponse mirrors a stored debt note.
type DebtNoteResponse struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type"`
	Counterparty  string    `json:"counterparty"`
	Amount        int64     `json:"amount"`
	PaidAmount    int64     `json:"paid_amount"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	RepaymentDate string    `json:"repayment_date,omitempty"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
