// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipdebt"
	"github.com/google/uuid"
)

// TipDebt is the model entity for the TipDebt schema.
type TipDebt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// LocationID holds the value of the "location_id" field.
	LocationID uuid.UUID `json:"location_id,omitempty"`
	// EmployeeID holds the value of the "employee_id" field.
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	// The voided/refunded payment that produced this debt
	PaymentID uuid.UUID `json:"payment_id,omitempty"`
	// Total originally credited to the employee for this payment
	OriginalAmountCents int64 `json:"original_amount_cents,omitempty"`
	// Portion still uncollected
	RemainingCents int64 `json:"remaining_cents,omitempty"`
	// Status holds the value of the "status" field.
	Status tipdebt.Status `json:"status,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TipDebt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tipdebt.FieldOriginalAmountCents, tipdebt.FieldRemainingCents:
			values[i] = new(sql.NullInt64)
		case tipdebt.FieldStatus:
			values[i] = new(sql.NullString)
		case tipdebt.FieldCreatedAt, tipdebt.FieldUpdatedAt, tipdebt.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		case tipdebt.FieldID, tipdebt.FieldLocationID, tipdebt.FieldEmployeeID, tipdebt.FieldPaymentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TipDebt fields.
func (_m *TipDebt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tipdebt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tipdebt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tipdebt.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tipdebt.FieldLocationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value != nil {
				_m.LocationID = *value
			}
		case tipdebt.FieldEmployeeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field employee_id", values[i])
			} else if value != nil {
				_m.EmployeeID = *value
			}
		case tipdebt.FieldPaymentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field payment_id", values[i])
			} else if value != nil {
				_m.PaymentID = *value
			}
		case tipdebt.FieldOriginalAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field original_amount_cents", values[i])
			} else if value.Valid {
				_m.OriginalAmountCents = value.Int64
			}
		case tipdebt.FieldRemainingCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining_cents", values[i])
			} else if value.Valid {
				_m.RemainingCents = value.Int64
			}
		case tipdebt.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = tipdebt.Status(value.String)
			}
		case tipdebt.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TipDebt.
// This includes values selected through modifiers, order, etc.
func (_m *TipDebt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TipDebt.
// Note that you need to call TipDebt.Unwrap() before calling this method if this TipDebt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TipDebt) Update() *TipDebtUpdateOne {
	return NewTipDebtClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TipDebt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TipDebt) Unwrap() *TipDebt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TipDebt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TipDebt) String() string {
	var builder strings.Builder
	builder.WriteString("TipDebt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationID))
	builder.WriteString(", ")
	builder.WriteString("employee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmployeeID))
	builder.WriteString(", ")
	builder.WriteString("payment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentID))
	builder.WriteString(", ")
	builder.WriteString("original_amount_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalAmountCents))
	builder.WriteString(", ")
	builder.WriteString("remaining_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemainingCents))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TipDebts is a parsable slice of TipDebt.
type TipDebts []*TipDebt
