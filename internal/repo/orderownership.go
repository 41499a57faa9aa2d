// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderownership"
	"github.com/google/uuid"
)

// OrderOwnership is the model entity for the OrderOwnership schema.
type OrderOwnership struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID uuid.UUID `json:"order_id,omitempty"`
	// LocationID holds the value of the "location_id" field.
	LocationID uuid.UUID `json:"location_id,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderOwnershipQuery when eager-loading is set.
	Edges        OrderOwnershipEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderOwnershipEdges holds the relations/edges for other nodes in the graph.
type OrderOwnershipEdges struct {
	// Owners holds the value of the owners edge.
	Owners []*OrderOwner `json:"owners,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnersOrErr returns the Owners value or an error if the edge
// was not loaded in eager-loading.
func (e OrderOwnershipEdges) OwnersOrErr() ([]*OrderOwner, error) {
	if e.loadedTypes[0] {
		return e.Owners, nil
	}
	return nil, &NotLoadedError{edge: "owners"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrderOwnership) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orderownership.FieldIsActive:
			values[i] = new(sql.NullBool)
		case orderownership.FieldCreatedAt, orderownership.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case orderownership.FieldID, orderownership.FieldOrderID, orderownership.FieldLocationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrderOwnership fields.
func (_m *OrderOwnership) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orderownership.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case orderownership.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case orderownership.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case orderownership.FieldOrderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value != nil {
				_m.OrderID = *value
			}
		case orderownership.FieldLocationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field location_id", values[i])
			} else if value != nil {
				_m.LocationID = *value
			}
		case orderownership.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrderOwnership.
// This includes values selected through modifiers, order, etc.
func (_m *OrderOwnership) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwners queries the "owners" edge of the OrderOwnership entity.
func (_m *OrderOwnership) QueryOwners() *OrderOwnerQuery {
	return NewOrderOwnershipClient(_m.config).QueryOwners(_m)
}

// Update returns a builder for updating this OrderOwnership.
// Note that you need to call OrderOwnership.Unwrap() before calling this method if this OrderOwnership
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrderOwnership) Update() *OrderOwnershipUpdateOne {
	return NewOrderOwnershipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrderOwnership entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrderOwnership) Unwrap() *OrderOwnership {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: OrderOwnership is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrderOwnership) String() string {
	var builder strings.Builder
	builder.WriteString("OrderOwnership(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("order_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderID))
	builder.WriteString(", ")
	builder.WriteString("location_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LocationID))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// OrderOwnerships is a parsable slice of OrderOwnership.
type OrderOwnerships []*OrderOwnership
