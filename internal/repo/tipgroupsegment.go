// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroup"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroupsegment"
	"github.com/google/uuid"
)

// TipGroupSegment is the model entity for the TipGroupSegment schema.
type TipGroupSegment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → tip_groups.id
	GroupID uuid.UUID `json:"group_id,omitempty"`
	// employee id → fraction of the pool; fractions sum to 1
	Split map[string]float64 `json:"split,omitempty"`
	// StartsAt holds the value of the "starts_at" field.
	StartsAt time.Time `json:"starts_at,omitempty"`
	// Open-ended while the segment is current
	EndsAt *time.Time `json:"ends_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TipGroupSegmentQuery when eager-loading is set.
	Edges        TipGroupSegmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TipGroupSegmentEdges holds the relations/edges for other nodes in the graph.
type TipGroupSegmentEdges struct {
	// Group holds the value of the group edge.
	Group *TipGroup `json:"group,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TipGroupSegmentEdges) GroupOrErr() (*TipGroup, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tipgroup.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TipGroupSegment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tipgroupsegment.FieldSplit:
			values[i] = new([]byte)
		case tipgroupsegment.FieldCreatedAt, tipgroupsegment.FieldUpdatedAt, tipgroupsegment.FieldStartsAt, tipgroupsegment.FieldEndsAt:
			values[i] = new(sql.NullTime)
		case tipgroupsegment.FieldID, tipgroupsegment.FieldGroupID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TipGroupSegment fields.
func (_m *TipGroupSegment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tipgroupsegment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tipgroupsegment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tipgroupsegment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tipgroupsegment.FieldGroupID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value != nil {
				_m.GroupID = *value
			}
		case tipgroupsegment.FieldSplit:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field split", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Split); err != nil {
					return fmt.Errorf("unmarshal field split: %w", err)
				}
			}
		case tipgroupsegment.FieldStartsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field starts_at", values[i])
			} else if value.Valid {
				_m.StartsAt = value.Time
			}
		case tipgroupsegment.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = new(time.Time)
				*_m.EndsAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TipGroupSegment.
// This includes values selected through modifiers, order, etc.
func (_m *TipGroupSegment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the TipGroupSegment entity.
func (_m *TipGroupSegment) QueryGroup() *TipGroupQuery {
	return NewTipGroupSegmentClient(_m.config).QueryGroup(_m)
}

// Update returns a builder for updating this TipGroupSegment.
// Note that you need to call TipGroupSegment.Unwrap() before calling this method if this TipGroupSegment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TipGroupSegment) Update() *TipGroupSegmentUpdateOne {
	return NewTipGroupSegmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TipGroupSegment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TipGroupSegment) Unwrap() *TipGroupSegment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TipGroupSegment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TipGroupSegment) String() string {
	var builder strings.Builder
	builder.WriteString("TipGroupSegment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("group_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupID))
	builder.WriteString(", ")
	builder.WriteString("split=")
	builder.WriteString(fmt.Sprintf("%v", _m.Split))
	builder.WriteString(", ")
	builder.WriteString("starts_at=")
	builder.WriteString(_m.StartsAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndsAt; v != nil {
		builder.WriteString("ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TipGroupSegments is a parsable slice of TipGroupSegment.
type TipGroupSegments []*TipGroupSegment
