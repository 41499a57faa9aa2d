// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tiptransaction"
	"github.com/google/uuid"
)

// TipTransaction is the model entity for the TipTransaction schema.
type TipTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → locations.id
	LocationID uuid.UUID `json:"location_id,omitempty"`
	// Total collected tip in cents (always positive)
	AmountCents int64 `json:"amount_cents,omitempty"`
	// Source holds the value of the "source" field.
	Source tiptransaction.Source `json:"source,omitempty"`
	// FK → orders.id (direct tips)
	OrderID *uuid.UUID `json:"order_id,omitempty"`
	// FK → payments.id (the payment that carried the tip)
	PaymentID *uuid.UUID `json:"payment_id,omitempty"`
	// FK → tip_groups.id when the tip is pooled
	GroupID *uuid.UUID `json:"group_id,omitempty"`
	// FK → tip_group_segments.id (the split in force at collection time)
	SegmentID *uuid.UUID `json:"segment_id,omitempty"`
	// When the tip was collected, as reported by the POS
	CollectedAt  time.Time `json:"collected_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TipTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tiptransaction.FieldOrderID, tiptransaction.FieldPaymentID, tiptransaction.FieldGroupID, tiptransaction.FieldSegmentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case tiptransaction.FieldAmountCents:
			values[i] = new(sql.NullInt64)
		case tiptransaction.FieldSource:
			values[i] = new(sql.NullString)
		case tiptransaction.FieldCreatedAt, tiptransaction.FieldUpdatedAt, tiptransaction.FieldDeletedAt, tiptransaction.FieldCollectedAt:
			values[i] = new(sql.NullTime)
		case tiptransaction.FieldID, tiptransaction.FieldLocationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TipTransaction fields.
func (_m *TipTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tiptransaction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tiptransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tiptransaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tiptransaction.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case tiptransaction.FieldLocationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value != nil {
				_m.LocationID = *value
			}
		case tiptransaction.FieldAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_cents", values[i])
			} else if value.Valid {
				_m.AmountCents = value.Int64
			}
		case tiptransaction.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = tiptransaction.Source(value.String)
			}
		case tiptransaction.FieldOrderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = new(uuid.UUID)
				*_m.OrderID = *value.S.(*uuid.UUID)
			}
		case tiptransaction.FieldPaymentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field payment_id", values[i])
			} else if value.Valid {
				_m.PaymentID = new(uuid.UUID)
				*_m.PaymentID = *value.S.(*uuid.UUID)
			}
		case tiptransaction.FieldGroupID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = new(uuid.UUID)
				*_m.GroupID = *value.S.(*uuid.UUID)
			}
		case tiptransaction.FieldSegmentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field segment_id", values[i])
			} else if value.Valid {
				_m.SegmentID = new(uuid.UUID)
				*_m.SegmentID = *value.S.(*uuid.UUID)
			}
		case tiptransaction.FieldCollectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collected_at", values[i])
			} else if value.Valid {
				_m.CollectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TipTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *TipTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TipTransaction.
// Note that you need to call TipTransaction.Unwrap() before calling this method if this TipTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TipTransaction) Update() *TipTransactionUpdateOne {
	return NewTipTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TipTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TipTransaction) Unwrap() *TipTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TipTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TipTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("TipTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationID))
	builder.WriteString(", ")
	builder.WriteString("amount_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountCents))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	if v := _m.OrderID; v != nil {
		builder.WriteString("order_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PaymentID; v != nil {
		builder.WriteString("payment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GroupID; v != nil {
		builder.WriteString("group_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SegmentID; v != nil {
		builder.WriteString("segment_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("collected_at=")
	builder.WriteString(_m.CollectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TipTransactions is a parsable slice of TipTransaction.
type TipTransactions []*TipTransaction
