// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderowner"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderownership"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// OrderOwnerUpdate is the builder for updating OrderOwner entities.
type OrderOwnerUpdate struct {
	config
	hooks    []Hook
	mutation *OrderOwnerMutation
}

// Where appends a list predicates to the OrderOwnerUpdate builder.
func (_u *OrderOwnerUpdate) Where(ps ...predicate.OrderOwner) *OrderOwnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnershipID sets the "ownership_id" field.
func (_u *OrderOwnerUpdate) SetOwnershipID(v uuid.UUID) *OrderOwnerUpdate {
	_u.mutation.SetOwnershipID(v)
	return _u
}

// SetNillableOwnershipID sets the "ownership_id" field if the given value is not nil.
func (_u *OrderOwnerUpdate) SetNillableOwnershipID(v *uuid.UUID) *OrderOwnerUpdate {
	if v != nil {
		_u.SetOwnershipID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *OrderOwnerUpdate) SetEmployeeID(v uuid.UUID) *OrderOwnerUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *OrderOwnerUpdate) SetNillableEmployeeID(v *uuid.UUID) *OrderOwnerUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetSharePercent sets the "share_percent" field.
func (_u *OrderOwnerUpdate) SetSharePercent(v float64) *OrderOwnerUpdate {
	_u.mutation.ResetSharePercent()
	_u.mutation.SetSharePercent(v)
	return _u
}

// SetNillableSharePercent sets the "share_percent" field if the given value is not nil.
func (_u *OrderOwnerUpdate) SetNillableSharePercent(v *float64) *OrderOwnerUpdate {
	if v != nil {
		_u.SetSharePercent(*v)
	}
	return _u
}

// AddSharePercent adds value to the "share_percent" field.
func (_u *OrderOwnerUpdate) AddSharePercent(v float64) *OrderOwnerUpdate {
	_u.mutation.AddSharePercent(v)
	return _u
}

// SetOwnership sets the "ownership" edge to the OrderOwnership entity.
func (_u *OrderOwnerUpdate) SetOwnership(v *OrderOwnership) *OrderOwnerUpdate {
	return _u.SetOwnershipID(v.ID)
}

// Mutation returns the OrderOwnerMutation object of the builder.
func (_u *OrderOwnerUpdate) Mutation() *OrderOwnerMutation {
	return _u.mutation
}

// ClearOwnership clears the "ownership" edge to the OrderOwnership entity.
func (_u *OrderOwnerUpdate) ClearOwnership() *OrderOwnerUpdate {
	_u.mutation.ClearOwnership()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderOwnerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderOwnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderOwnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderOwnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderOwnerUpdate) check() error {
	if _u.mutation.OwnershipCleared() && len(_u.mutation.OwnershipIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "OrderOwner.ownership"`)
	}
	return nil
}

func (_u *OrderOwnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderowner.Table, orderowner.Columns, sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmployeeID(); ok {
		_spec.SetField(orderowner.FieldEmployeeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SharePercent(); ok {
		_spec.SetField(orderowner.FieldSharePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSharePercent(); ok {
		_spec.AddField(orderowner.FieldSharePercent, field.TypeFloat64, value)
	}
	if _u.mutation.OwnershipCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderowner.OwnershipTable,
			Columns: []string{orderowner.OwnershipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderownership.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnershipIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderowner.OwnershipTable,
			Columns: []string{orderowner.OwnershipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderownership.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderowner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderOwnerUpdateOne is the builder for updating a single OrderOwner entity.
type OrderOwnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderOwnerMutation
}

// SetOwnershipID sets the "ownership_id" field.
func (_u *OrderOwnerUpdateOne) SetOwnershipID(v uuid.UUID) *OrderOwnerUpdateOne {
	_u.mutation.SetOwnershipID(v)
	return _u
}

// SetNillableOwnershipID sets the "ownership_id" field if the given value is not nil.
func (_u *OrderOwnerUpdateOne) SetNillableOwnershipID(v *uuid.UUID) *OrderOwnerUpdateOne {
	if v != nil {
		_u.SetOwnershipID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *OrderOwnerUpdateOne) SetEmployeeID(v uuid.UUID) *OrderOwnerUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *OrderOwnerUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *OrderOwnerUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetSharePercent sets the "share_percent" field.
func (_u *OrderOwnerUpdateOne) SetSharePercent(v float64) *OrderOwnerUpdateOne {
	_u.mutation.ResetSharePercent()
	_u.mutation.SetSharePercent(v)
	return _u
}

// SetNillableSharePercent sets the "share_percent" field if the given value is not nil.
func (_u *OrderOwnerUpdateOne) SetNillableSharePercent(v *float64) *OrderOwnerUpdateOne {
	if v != nil {
		_u.SetSharePercent(*v)
	}
	return _u
}

// AddSharePercent adds value to the "share_percent" field.
func (_u *OrderOwnerUpdateOne) AddSharePercent(v float64) *OrderOwnerUpdateOne {
	_u.mutation.AddSharePercent(v)
	return _u
}

// SetOwnership sets the "ownership" edge to the OrderOwnership entity.
func (_u *OrderOwnerUpdateOne) SetOwnership(v *OrderOwnership) *OrderOwnerUpdateOne {
	return _u.SetOwnershipID(v.ID)
}

// Mutation returns the OrderOwnerMutation object of the builder.
func (_u *OrderOwnerUpdateOne) Mutation() *OrderOwnerMutation {
	return _u.mutation
}

// ClearOwnership clears the "ownership" edge to the OrderOwnership entity.
func (_u *OrderOwnerUpdateOne) ClearOwnership() *OrderOwnerUpdateOne {
	_u.mutation.ClearOwnership()
	return _u
}

// Where appends a list predicates to the OrderOwnerUpdate builder.
func (_u *OrderOwnerUpdateOne) Where(ps ...predicate.OrderOwner) *OrderOwnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderOwnerUpdateOne) Select(field string, fields ...string) *OrderOwnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderOwner entity.
func (_u *OrderOwnerUpdateOne) Save(ctx context.Context) (*OrderOwner, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderOwnerUpdateOne) SaveX(ctx context.Context) *OrderOwner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderOwnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderOwnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderOwnerUpdateOne) check() error {
	if _u.mutation.OwnershipCleared() && len(_u.mutation.OwnershipIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "OrderOwner.ownership"`)
	}
	return nil
}

func (_u *OrderOwnerUpdateOne) sqlSave(ctx context.Context) (_node *OrderOwner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderowner.Table, orderowner.Columns, sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OrderOwner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderowner.FieldID)
		for _, f := range fields {
			if !orderowner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != orderowner.FieldID {
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
	if value, ok := _u.mutation.EmployeeID(); ok {
		_spec.SetField(orderowner.FieldEmployeeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SharePercent(); ok {
		_spec.SetField(orderowner.FieldSharePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSharePercent(); ok {
		_spec.AddField(orderowner.FieldSharePercent, field.TypeFloat64, value)
	}
	if _u.mutation.OwnershipCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderowner.OwnershipTable,
			Columns: []string{orderowner.OwnershipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderownership.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnershipIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderowner.OwnershipTable,
			Columns: []string{orderowner.OwnershipColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderownership.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrderOwner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderowner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
