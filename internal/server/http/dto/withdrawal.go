package dto

import "time"

// WithdrawRequest describes a points-to-cash request payload.
type WithdrawRequest struct {
	Points  int64  `json:"points"`
	Method  string `json:"method"`
	Account string `json:"account"`
}

// RejectRequest carries the rejection reason.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// WithdrawalResponse mirrors a withdrawal request.
type WithdrawalResponse struct {
	ID              int64      `json:"id"`
	Reference       string     `json:"reference"`
	Status          string     `json:"status"`
	Points          int64      `json:"points"`
	CashAmount      int64      `json:"cash_amount"`
	Method          string     `json:"method"`
	Account         string     `json:"account"`
	RequestedAt     time.Time  `json:"requested_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	Refunded        bool       `json:"refunded"`
}
