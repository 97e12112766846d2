package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Money ledger and debt settlement.
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInsufficientBalance  = errors.New("insufficient balance")

	// Points economy.
	ErrInsufficientPoints    = errors.New("insufficient points")
	ErrBelowMinimumThreshold = errors.New("below minimum withdrawal threshold")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrAlreadyCheckedIn      = errors.New("already checked in today")
	ErrAdTaskNotCompleted    = errors.New("ad task not completed")
	ErrAdTaskInvalid         = errors.New("ad task invalid")

	// Storage-level concurrent conflict; callers retry from a fresh read.
	ErrStorageConflict = errors.New("storage conflict")
)
