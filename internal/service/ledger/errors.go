package ledger

import "errors"

var (
	ErrNonPositiveAmount = errors.New("entry amount must be positive")
	ErrInvalidEntryType  = errors.New("entry type must be credit or debit")
	ErrMissingEmployee   = errors.New("entry requires an employee id")
	ErrWalletNotFound    = errors.New("tip wallet not found")
)
