// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
	"github.com/google/uuid"
)

// TipLedgerEntry is the model entity for the TipLedgerEntry schema.
type TipLedgerEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LocationID holds the value of the "location_id" field.
	LocationID uuid.UUID `json:"location_id,omitempty"`
	// EmployeeID holds the value of the "employee_id" field.
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	// EntryType holds the value of the "entry_type" field.
	EntryType tipledgerentry.EntryType `json:"entry_type,omitempty"`
	// Amount in cents, always positive; sign carried by entry_type
	AmountCents int64 `json:"amount_cents,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType tipledgerentry.SourceType `json:"source_type,omitempty"`
	// ID of the originating record (tip transaction or adjustment)
	SourceID *uuid.UUID `json:"source_id,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID *uuid.UUID `json:"order_id,omitempty"`
	// FK → tip_adjustments.id for corrective entries
	AdjustmentID *uuid.UUID `json:"adjustment_id,omitempty"`
	// Memo holds the value of the "memo" field.
	Memo string `json:"memo,omitempty"`
	// Employee tip balance before this entry
	BalanceBefore int64 `json:"balance_before,omitempty"`
	// Employee tip balance after this entry
	BalanceAfter int64 `json:"balance_after,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TipLedgerEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tipledgerentry.FieldSourceID, tipledgerentry.FieldOrderID, tipledgerentry.FieldAdjustmentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case tipledgerentry.FieldAmountCents, tipledgerentry.FieldBalanceBefore, tipledgerentry.FieldBalanceAfter:
			values[i] = new(sql.NullInt64)
		case tipledgerentry.FieldEntryType, tipledgerentry.FieldSourceType, tipledgerentry.FieldMemo:
			values[i] = new(sql.NullString)
		case tipledgerentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case tipledgerentry.FieldID, tipledgerentry.FieldLocationID, tipledgerentry.FieldEmployeeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TipLedgerEntry fields.
func (_m *TipLedgerEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tipledgerentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tipledgerentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tipledgerentry.FieldLocationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value != nil {
				_m.LocationID = *value
			}
		case tipledgerentry.FieldEmployeeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field employee_id", values[i])
			} else if value != nil {
				_m.EmployeeID = *value
			}
		case tipledgerentry.FieldEntryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_type", values[i])
			} else if value.Valid {
				_m.EntryType = tipledgerentry.EntryType(value.String)
			}
		case tipledgerentry.FieldAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_cents", values[i])
			} else if value.Valid {
				_m.AmountCents = value.Int64
			}
		case tipledgerentry.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = tipledgerentry.SourceType(value.String)
			}
		case tipledgerentry.FieldSourceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = new(uuid.UUID)
				*_m.SourceID = *value.S.(*uuid.UUID)
			}
		case tipledgerentry.FieldOrderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = new(uuid.UUID)
				*_m.OrderID = *value.S.(*uuid.UUID)
			}
		case tipledgerentry.FieldAdjustmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field adjustment_id", values[i])
			} else if value.Valid {
				_m.AdjustmentID = new(uuid.UUID)
				*_m.AdjustmentID = *value.S.(*uuid.UUID)
			}
		case tipledgerentry.FieldMemo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memo", values[i])
			} else if value.Valid {
				_m.Memo = value.String
			}
		case tipledgerentry.FieldBalanceBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field balance_before", values[i])
			} else if value.Valid {
				_m.BalanceBefore = value.Int64
			}
		case tipledgerentry.FieldBalanceAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field balance_after", values[i])
			} else if value.Valid {
				_m.BalanceAfter = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TipLedgerEntry.
// This includes values selected through modifiers, order, etc.
func (_m *TipLedgerEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TipLedgerEntry.
// Note that you need to call TipLedgerEntry.Unwrap() before calling this method if this TipLedgerEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TipLedgerEntry) Update() *TipLedgerEntryUpdateOne {
	return NewTipLedgerEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TipLedgerEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TipLedgerEntry) Unwrap() *TipLedgerEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TipLedgerEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TipLedgerEntry) String() string {
	var builder strings.Builder
	builder.WriteString("TipLedgerEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationID))
	builder.WriteString(", ")
	builder.WriteString("employee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmployeeID))
	builder.WriteString(", ")
	builder.WriteString("entry_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntryType))
	builder.WriteString(", ")
	builder.WriteString("amount_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountCents))
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	if v := _m.SourceID; v != nil {
		builder.WriteString("source_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OrderID; v != nil {
		builder.WriteString("order_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AdjustmentID; v != nil {
		builder.WriteString("adjustment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("memo=")
	builder.WriteString(_m.Memo)
	builder.WriteString(", ")
	builder.WriteString("balance_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.BalanceBefore))
	builder.WriteString(", ")
	builder.WriteString("balance_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.BalanceAfter))
	builder.WriteByte(')')
	return builder.String()
}

// TipLedgerEntries is a parsable slice of TipLedgerEntry.
type TipLedgerEntries []*TipLedgerEntry
