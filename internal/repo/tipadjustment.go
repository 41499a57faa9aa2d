// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
	"github.com/google/uuid"
)

// TipAdjustment is the model entity for the TipAdjustment schema.
type TipAdjustment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LocationID holds the value of the "location_id" field.
	LocationID uuid.UUID `json:"location_id,omitempty"`
	// AdjustmentType holds the value of the "adjustment_type" field.
	AdjustmentType tipadjustment.AdjustmentType `json:"adjustment_type,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Per-employee cent totals before the correction (employee id → cents)
	Before map[string]int64 `json:"before,omitempty"`
	// Per-employee cent totals after the correction (employee id → cents)
	After map[string]int64 `json:"after,omitempty"`
	// True when fired by an event worker rather than a manager
	AutoTriggered bool `json:"auto_triggered,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID *uuid.UUID `json:"group_id,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID *uuid.UUID `json:"order_id,omitempty"`
	// Manager who requested the action, when not auto-triggered
	RequestedBy  *uuid.UUID `json:"requested_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TipAdjustment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tipadjustment.FieldGroupID, tipadjustment.FieldOrderID, tipadjustment.FieldRequestedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case tipadjustment.FieldBefore, tipadjustment.FieldAfter:
			values[i] = new([]byte)
		case tipadjustment.FieldAutoTriggered:
			values[i] = new(sql.NullBool)
		case tipadjustment.FieldAdjustmentType, tipadjustment.FieldReason:
			values[i] = new(sql.NullString)
		case tipadjustment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case tipadjustment.FieldID, tipadjustment.FieldLocationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TipAdjustment fields.
func (_m *TipAdjustment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tipadjustment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tipadjustment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tipadjustment.FieldLocationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value != nil {
				_m.LocationID = *value
			}
		case tipadjustment.FieldAdjustmentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field adjustment_type", values[i])
			} else if value.Valid {
				_m.AdjustmentType = tipadjustment.AdjustmentType(value.String)
			}
		case tipadjustment.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case tipadjustment.FieldBefore:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field before", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Before); err != nil {
					return fmt.Errorf("unmarshal field before: %w", err)
				}
			}
		case tipadjustment.FieldAfter:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field after", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.After); err != nil {
					return fmt.Errorf("unmarshal field after: %w", err)
				}
			}
		case tipadjustment.FieldAutoTriggered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_triggered", values[i])
			} else if value.Valid {
				_m.AutoTriggered = value.Bool
			}
		case tipadjustment.FieldGroupID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = new(uuid.UUID)
				*_m.GroupID = *value.S.(*uuid.UUID)
			}
		case tipadjustment.FieldOrderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = new(uuid.UUID)
				*_m.OrderID = *value.S.(*uuid.UUID)
			}
		case tipadjustment.FieldRequestedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value.Valid {
				_m.RequestedBy = new(uuid.UUID)
				*_m.RequestedBy = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TipAdjustment.
// This includes values selected through modifiers, order, etc.
func (_m *TipAdjustment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TipAdjustment.
// Note that you need to call TipAdjustment.Unwrap() before calling this method if this TipAdjustment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TipAdjustment) Update() *TipAdjustmentUpdateOne {
	return NewTipAdjustmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TipAdjustment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TipAdjustment) Unwrap() *TipAdjustment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TipAdjustment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TipAdjustment) String() string {
	var builder strings.Builder
	builder.WriteString("TipAdjustment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationID))
	builder.WriteString(", ")
	builder.WriteString("adjustment_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdjustmentType))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("before=")
	builder.WriteString(fmt.Sprintf("%v", _m.Before))
	builder.WriteString(", ")
	builder.WriteString("after=")
	builder.WriteString(fmt.Sprintf("%v", _m.After))
	builder.WriteString(", ")
	builder.WriteString("auto_triggered=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoTriggered))
	builder.WriteString(", ")
	if v := _m.GroupID; v != nil {
		builder.WriteString("group_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OrderID; v != nil {
		builder.WriteString("order_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RequestedBy; v != nil {
		builder.WriteString("requested_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TipAdjustments is a parsable slice of TipAdjustment.
type TipAdjustments []*TipAdjustment
