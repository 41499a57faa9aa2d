// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LocationSetting is the predicate function for locationsetting builders.
type LocationSetting func(*sql.Selector)

// OrderOwner is the predicate function for orderowner builders.
type OrderOwner func(*sql.Selector)

// OrderOwnership is the predicate function for orderownership builders.
type OrderOwnership func(*sql.Selector)

// TipAdjustment is the predicate function for tipadjustment builders.
type TipAdjustment func(*sql.Selector)

// TipDebt is the predicate function for tipdebt builders.
type TipDebt func(*sql.Selector)

// TipGroup is the predicate function for tipgroup builders.
type TipGroup func(*sql.Selector)

// TipGroupSegment is the predicate function for tipgroupsegment builders.
type TipGroupSegment func(*sql.Selector)

// TipLedgerEntry is the predicate function for tipledgerentry builders.
type TipLedgerEntry func(*sql.Selector)

// TipTransaction is the predicate function for tiptransaction builders.
type TipTransaction func(*sql.Selector)

// TipWallet is the predicate function for tipwallet builders.
type TipWallet func(*sql.Selector)
