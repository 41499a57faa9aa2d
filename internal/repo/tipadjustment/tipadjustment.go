// Code generated by ent, DO NOT EDIT.

package tipadjustment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tipadjustment type in the database.
	Label = "tip_adjustment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLocationID holds the string denoting the location_id field in the database.
	FieldLocationID = "location_id"
	// FieldAdjustmentType holds the string denoting the adjustment_type field in the database.
	FieldAdjustmentType = "adjustment_type"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldBefore holds the string denoting the before field in the database.
	FieldBefore = "before"
	// FieldAfter holds the string denoting the after field in the database.
	FieldAfter = "after"
	// FieldAutoTriggered holds the string denoting the auto_triggered field in the database.
	FieldAutoTriggered = "auto_triggered"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldOrderID holds the string denoting the order_id field in the database.
	FieldOrderID = "order_id"
	// FieldRequestedBy holds the string denoting the requested_by field in the database.
	FieldRequestedBy = "requested_by"
	// Table holds the table name of the tipadjustment in the database.
	Table = "tip_adjustments"
)

// Columns holds all SQL columns for tipadjustment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldLocationID,
	FieldAdjustmentType,
	FieldReason,
	FieldBefore,
	FieldAfter,
	FieldAutoTriggered,
	FieldGroupID,
	FieldOrderID,
	FieldRequestedBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
	// DefaultAutoTriggered holds the default value on creation for the "auto_triggered" field.
	DefaultAutoTriggered bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// AdjustmentType defines the type for the "adjustment_type" enum field.
type AdjustmentType string

// AdjustmentType values.
const (
	AdjustmentTypeGroupMembership AdjustmentType = "group_membership"
	AdjustmentTypeOwnershipSplit  AdjustmentType = "ownership_split"
	AdjustmentTypeClockFix        AdjustmentType = "clock_fix"
	AdjustmentTypeManualOverride  AdjustmentType = "manual_override"
	AdjustmentTypeTipAmount       AdjustmentType = "tip_amount"
)

func (at AdjustmentType) String() string {
	return string(at)
}

// AdjustmentTypeValidator is a validator for the "adjustment_type" field enum values. It is called by the builders before save.
func AdjustmentTypeValidator(at AdjustmentType) error {
	switch at {
	case AdjustmentTypeGroupMembership, AdjustmentTypeOwnershipSplit, AdjustmentTypeClockFix, AdjustmentTypeManualOverride, AdjustmentTypeTipAmount:
		return nil
	default:
		return fmt.Errorf("tipadjustment: invalid enum value for adjustment_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the TipAdjustment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLocationID orders the results by the location_id field.
func ByLocationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationID, opts...).ToFunc()
}

// ByAdjustmentType orders the results by the adjustment_type field.
func ByAdjustmentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdjustmentType, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByAutoTriggered orders the results by the auto_triggered field.
func ByAutoTriggered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoTriggered, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByOrderID orders the results by the order_id field.
func ByOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderID, opts...).ToFunc()
}

// ByRequestedBy orders the results by the requested_by field.
func ByRequestedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedBy, opts...).ToFunc()
}
