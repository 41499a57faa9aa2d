// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderowner"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderownership"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// OrderOwnershipUpdate is the builder for updating OrderOwnership entities.
type OrderOwnershipUpdate struct {
	config
	hooks    []Hook
	mutation *OrderOwnershipMutation
}

// Where appends a list predicates to the OrderOwnershipUpdate builder.
func (_u *OrderOwnershipUpdate) Where(ps ...predicate.OrderOwnership) *OrderOwnershipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderOwnershipUpdate) SetUpdatedAt(v time.Time) *OrderOwnershipUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderOwnershipUpdate) SetOrderID(v uuid.UUID) *OrderOwnershipUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderOwnershipUpdate) SetNillableOrderID(v *uuid.UUID) *OrderOwnershipUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *OrderOwnershipUpdate) SetLocationID(v uuid.UUID) *OrderOwnershipUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *OrderOwnershipUpdate) SetNillableLocationID(v *uuid.UUID) *OrderOwnershipUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *OrderOwnershipUpdate) SetIsActive(v bool) *OrderOwnershipUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *OrderOwnershipUpdate) SetNillableIsActive(v *bool) *OrderOwnershipUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddOwnerIDs adds the "owners" edge to the OrderOwner entity by IDs.
func (_u *OrderOwnershipUpdate) AddOwnerIDs(ids ...uuid.UUID) *OrderOwnershipUpdate {
	_u.mutation.AddOwnerIDs(ids...)
	return _u
}

// AddOwners adds the "owners" edges to the OrderOwner entity.
func (_u *OrderOwnershipUpdate) AddOwners(v ...*OrderOwner) *OrderOwnershipUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOwnerIDs(ids...)
}

// Mutation returns the OrderOwnershipMutation object of the builder.
func (_u *OrderOwnershipUpdate) Mutation() *OrderOwnershipMutation {
	return _u.mutation
}

// ClearOwners clears all "owners" edges to the OrderOwner entity.
func (_u *OrderOwnershipUpdate) ClearOwners() *OrderOwnershipUpdate {
	_u.mutation.ClearOwners()
	return _u
}

// RemoveOwnerIDs removes the "owners" edge to OrderOwner entities by IDs.
func (_u *OrderOwnershipUpdate) RemoveOwnerIDs(ids ...uuid.UUID) *OrderOwnershipUpdate {
	_u.mutation.RemoveOwnerIDs(ids...)
	return _u
}

// RemoveOwners removes "owners" edges to OrderOwner entities.
func (_u *OrderOwnershipUpdate) RemoveOwners(v ...*OrderOwner) *OrderOwnershipUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOwnerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderOwnershipUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderOwnershipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderOwnershipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderOwnershipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderOwnershipUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := orderownership.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *OrderOwnershipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(orderownership.Table, orderownership.Columns, sqlgraph.NewFieldSpec(orderownership.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(orderownership.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(orderownership.FieldOrderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(orderownership.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(orderownership.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.OwnersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderownership.OwnersTable,
			Columns: []string{orderownership.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOwnersIDs(); len(nodes) > 0 && !_u.mutation.OwnersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderownership.OwnersTable,
			Columns: []string{orderownership.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderownership.OwnersTable,
			Columns: []string{orderownership.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderownership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderOwnershipUpdateOne is the builder for updating a single OrderOwnership entity.
type OrderOwnershipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderOwnershipMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderOwnershipUpdateOne) SetUpdatedAt(v time.Time) *OrderOwnershipUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderOwnershipUpdateOne) SetOrderID(v uuid.UUID) *OrderOwnershipUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderOwnershipUpdateOne) SetNillableOrderID(v *uuid.UUID) *OrderOwnershipUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *OrderOwnershipUpdateOne) SetLocationID(v uuid.UUID) *OrderOwnershipUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *OrderOwnershipUpdateOne) SetNillableLocationID(v *uuid.UUID) *OrderOwnershipUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *OrderOwnershipUpdateOne) SetIsActive(v bool) *OrderOwnershipUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *OrderOwnershipUpdateOne) SetNillableIsActive(v *bool) *OrderOwnershipUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddOwnerIDs adds the "owners" edge to the OrderOwner entity by IDs.
func (_u *OrderOwnershipUpdateOne) AddOwnerIDs(ids ...uuid.UUID) *OrderOwnershipUpdateOne {
	_u.mutation.AddOwnerIDs(ids...)
	return _u
}

// AddOwners adds the "owners" edges to the OrderOwner entity.
func (_u *OrderOwnershipUpdateOne) AddOwners(v ...*OrderOwner) *OrderOwnershipUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOwnerIDs(ids...)
}

// Mutation returns the OrderOwnershipMutation object of the builder.
func (_u *OrderOwnershipUpdateOne) Mutation() *OrderOwnershipMutation {
	return _u.mutation
}

// ClearOwners clears all "owners" edges to the OrderOwner entity.
func (_u *OrderOwnershipUpdateOne) ClearOwners() *OrderOwnershipUpdateOne {
	_u.mutation.ClearOwners()
	return _u
}

// RemoveOwnerIDs removes the "owners" edge to OrderOwner entities by IDs.
func (_u *OrderOwnershipUpdateOne) RemoveOwnerIDs(ids ...uuid.UUID) *OrderOwnershipUpdateOne {
	_u.mutation.RemoveOwnerIDs(ids...)
	return _u
}

// RemoveOwners removes "owners" edges to OrderOwner entities.
func (_u *OrderOwnershipUpdateOne) RemoveOwners(v ...*OrderOwner) *OrderOwnershipUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOwnerIDs(ids...)
}

// Where appends a list predicates to the OrderOwnershipUpdate builder.
func (_u *OrderOwnershipUpdateOne) Where(ps ...predicate.OrderOwnership) *OrderOwnershipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderOwnershipUpdateOne) Select(field string, fields ...string) *OrderOwnershipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderOwnership entity.
func (_u *OrderOwnershipUpdateOne) Save(ctx context.Context) (*OrderOwnership, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderOwnershipUpdateOne) SaveX(ctx context.Context) *OrderOwnership {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderOwnershipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderOwnershipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderOwnershipUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := orderownership.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *OrderOwnershipUpdateOne) sqlSave(ctx context.Context) (_node *OrderOwnership, err error) {
	_spec := sqlgraph.NewUpdateSpec(orderownership.Table, orderownership.Columns, sqlgraph.NewFieldSpec(orderownership.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OrderOwnership.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderownership.FieldID)
		for _, f := range fields {
			if !orderownership.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != orderownership.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(orderownership.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(orderownership.FieldOrderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(orderownership.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(orderownership.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.OwnersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderownership.OwnersTable,
			Columns: []string{orderownership.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOwnersIDs(); len(nodes) > 0 && !_u.mutation.OwnersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderownership.OwnersTable,
			Columns: []string{orderownership.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderownership.OwnersTable,
			Columns: []string{orderownership.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrderOwnership{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderownership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
