// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderowner"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderownership"
	"github.com/google/uuid"
)

// OrderOwner is the model entity for the OrderOwner schema.
type OrderOwner struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → order_ownerships.id
	OwnershipID uuid.UUID `json:"ownership_id,omitempty"`
	// EmployeeID holds the value of the "employee_id" field.
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	// Ownership share 0-100; shares on one record sum to 100
	SharePercent float64 `json:"share_percent,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderOwnerQuery when eager-loading is set.
	Edges        OrderOwnerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderOwnerEdges holds the relations/edges for other nodes in the graph.
type OrderOwnerEdges struct {
	// Ownership holds the value of the ownership edge.
	Ownership *OrderOwnership `json:"ownership,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnershipOrErr returns the Ownership value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrderOwnerEdges) OwnershipOrErr() (*OrderOwnership, error) {
	if e.Ownership != nil {
		return e.Ownership, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: orderownership.Label}
	}
	return nil, &NotLoadedError{edge: "ownership"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrderOwner) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orderowner.FieldSharePercent:
			values[i] = new(sql.NullFloat64)
		case orderowner.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case orderowner.FieldID, orderowner.FieldOwnershipID, orderowner.FieldEmployeeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrderOwner fields.
func (_m *OrderOwner) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orderowner.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case orderowner.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case orderowner.FieldOwnershipID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field ownership_id", values[i])
			} else if value != nil {
				_m.OwnershipID = *value
			}
		case orderowner.FieldEmployeeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field employee_id", values[i])
			} else if value != nil {
				_m.EmployeeID = *value
			}
		case orderowner.FieldSharePercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field share_percent", values[i])
			} else if value.Valid {
				_m.SharePercent = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrderOwner.
// This includes values selected through modifiers, order, etc.
func (_m *OrderOwner) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwnership queries the "ownership" edge of the OrderOwner entity.
func (_m *OrderOwner) QueryOwnership() *OrderOwnershipQuery {
	return NewOrderOwnerClient(_m.config).QueryOwnership(_m)
}

// Update returns a builder for updating this OrderOwner.
// Note that you need to call OrderOwner.Unwrap() before calling this method if this OrderOwner
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrderOwner) Update() *OrderOwnerUpdateOne {
	return NewOrderOwnerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrderOwner entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrderOwner) Unwrap() *OrderOwner {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: OrderOwner is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrderOwner) String() string {
	var builder strings.Builder
	builder.WriteString("OrderOwner(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ownership_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnershipID))
	builder.WriteString(", ")
	builder.WriteString("employee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmployeeID))
	builder.WriteString(", ")
	builder.WriteString("share_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.SharePercent))
	builder.WriteByte(')')
	return builder.String()
}

// OrderOwners is a parsable slice of OrderOwner.
type OrderOwners []*OrderOwner
