package chargeback

import "errors"

var (
	ErrNoTipTransactions = errors.New("no tip transactions found for payment")
	ErrDebtNotFound      = errors.New("tip debt not found")
	ErrDebtAlreadyClosed = errors.New("tip debt already resolved")
)
