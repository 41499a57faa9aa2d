package allocation

import "errors"

var (
	ErrNegativeTotal    = errors.New("tip total cannot be negative")
	ErrEmptySplit       = errors.New("split has no members")
	ErrNegativeFraction = errors.New("split fraction cannot be negative")

	ErrGroupNotFound     = errors.New("tip group not found")
	ErrSegmentNotFound   = errors.New("tip group segment not found")
	ErrNoActiveOwnership = errors.New("order has no active ownership")
	ErrNoOwners          = errors.New("order ownership has no owners")
)
