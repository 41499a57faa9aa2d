package ledger

import (
	"context"

	"github.com/google/uuid"
)

// EntryType is the sign of a ledger entry. Amounts are always positive;
// the type decides whether the balance goes up or down.
type EntryType string

const (
	EntryCredit EntryType = "credit"
	EntryDebit  EntryType = "debit"
)

// SourceType tags why an entry exists. group_distribution and direct_tip
// are the two tip-distribution types; adjustment and chargeback are
// correction entries.
type SourceType string

const (
	SourceGroupDistribution SourceType = "group_distribution"
	SourceDirectTip         SourceType = "direct_tip"
	SourceAdjustment        SourceType = "adjustment"
	SourceChargeback        SourceType = "chargeback"
)

// IsTipDistribution reports whether s is one of the types used when a
// collected tip is first credited out to employees.
func (s SourceType) IsTipDistribution() bool {
	return s == SourceGroupDistribution || s == SourceDirectTip
}

// PostEntryInput describes one entry to append.
type PostEntryInput struct {
	LocationID   uuid.UUID
	EmployeeID   uuid.UUID
	AmountCents  int64 // must be positive
	Type         EntryType
	SourceType   SourceType
	SourceID     *uuid.UUID
	OrderID      *uuid.UUID
	AdjustmentID *uuid.UUID
	Memo         string
}

// Validate checks the posting contract before any write happens.
func (in PostEntryInput) Validate() error {
	if in.AmountCents <= 0 {
		return ErrNonPositiveAmount
	}
	if in.Type != EntryCredit && in.Type != EntryDebit {
		return ErrInvalidEntryType
	}
	if in.EmployeeID == (uuid.UUID{}) {
		return ErrMissingEmployee
	}
	return nil
}

// PostedEntry is the result of a successful append.
type PostedEntry struct {
	ID           uuid.UUID `json:"id"`
	AmountCents  int64     `json:"amount_cents"`
	BalanceAfter int64     `json:"balance_after"`
}

// Poster is the ledger posting primitive. Each PostEntry call is atomic:
// it appends one immutable entry and updates the cached balance together,
// or does neither. Callers must not wrap it in an outer transaction.
type Poster interface {
	PostEntry(ctx context.Context, in PostEntryInput) (*PostedEntry, error)
	GetBalance(ctx context.Context, employeeID uuid.UUID) (int64, error)
}
