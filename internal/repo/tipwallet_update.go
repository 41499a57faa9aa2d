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
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipwallet"
	"github.com/google/uuid"
)

// TipWalletUpdate is the builder for updating TipWallet entities.
type TipWalletUpdate struct {
	config
	hooks    []Hook
	mutation *TipWalletMutation
}

// Where appends a list predicates to the TipWalletUpdate builder.
func (_u *TipWalletUpdate) Where(ps ...predicate.TipWallet) *TipWalletUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipWalletUpdate) SetUpdatedAt(v time.Time) *TipWalletUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *TipWalletUpdate) SetEmployeeID(v uuid.UUID) *TipWalletUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *TipWalletUpdate) SetNillableEmployeeID(v *uuid.UUID) *TipWalletUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipWalletUpdate) SetLocationID(v uuid.UUID) *TipWalletUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipWalletUpdate) SetNillableLocationID(v *uuid.UUID) *TipWalletUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetBalanceCents sets the "balance_cents" field.
func (_u *TipWalletUpdate) SetBalanceCents(v int64) *TipWalletUpdate {
	_u.mutation.ResetBalanceCents()
	_u.mutation.SetBalanceCents(v)
	return _u
}

// SetNillableBalanceCents sets the "balance_cents" field if the given value is not nil.
func (_u *TipWalletUpdate) SetNillableBalanceCents(v *int64) *TipWalletUpdate {
	if v != nil {
		_u.SetBalanceCents(*v)
	}
	return _u
}

// AddBalanceCents adds value to the "balance_cents" field.
func (_u *TipWalletUpdate) AddBalanceCents(v int64) *TipWalletUpdate {
	_u.mutation.AddBalanceCents(v)
	return _u
}

// Mutation returns the TipWalletMutation object of the builder.
func (_u *TipWalletUpdate) Mutation() *TipWalletMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TipWalletUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipWalletUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TipWalletUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipWalletUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipWalletUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tipwallet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TipWalletUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tipwallet.Table, tipwallet.Columns, sqlgraph.NewFieldSpec(tipwallet.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tipwallet.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmployeeID(); ok {
		_spec.SetField(tipwallet.FieldEmployeeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tipwallet.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BalanceCents(); ok {
		_spec.SetField(tipwallet.FieldBalanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBalanceCents(); ok {
		_spec.AddField(tipwallet.FieldBalanceCents, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipwallet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TipWalletUpdateOne is the builder for updating a single TipWallet entity.
type TipWalletUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TipWalletMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipWalletUpdateOne) SetUpdatedAt(v time.Time) *TipWalletUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *TipWalletUpdateOne) SetEmployeeID(v uuid.UUID) *TipWalletUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *TipWalletUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *TipWalletUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipWalletUpdateOne) SetLocationID(v uuid.UUID) *TipWalletUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipWalletUpdateOne) SetNillableLocationID(v *uuid.UUID) *TipWalletUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetBalanceCents sets the "balance_cents" field.
func (_u *TipWalletUpdateOne) SetBalanceCents(v int64) *TipWalletUpdateOne {
	_u.mutation.ResetBalanceCents()
	_u.mutation.SetBalanceCents(v)
	return _u
}

// SetNillableBalanceCents sets the "balance_cents" field if the given value is not nil.
func (_u *TipWalletUpdateOne) SetNillableBalanceCents(v *int64) *TipWalletUpdateOne {
	if v != nil {
		_u.SetBalanceCents(*v)
	}
	return _u
}

// AddBalanceCents adds value to the "balance_cents" field.
func (_u *TipWalletUpdateOne) AddBalanceCents(v int64) *TipWalletUpdateOne {
	_u.mutation.AddBalanceCents(v)
	return _u
}

// Mutation returns the TipWalletMutation object of the builder.
func (_u *TipWalletUpdateOne) Mutation() *TipWalletMutation {
	return _u.mutation
}

// Where appends a list predicates to the TipWalletUpdate builder.
func (_u *TipWalletUpdateOne) Where(ps ...predicate.TipWallet) *TipWalletUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TipWalletUpdateOne) Select(field string, fields ...string) *TipWalletUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TipWallet entity.
func (_u *TipWalletUpdateOne) Save(ctx context.Context) (*TipWallet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipWalletUpdateOne) SaveX(ctx context.Context) *TipWallet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TipWalletUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipWalletUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipWalletUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tipwallet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TipWalletUpdateOne) sqlSave(ctx context.Context) (_node *TipWallet, err error) {
	_spec := sqlgraph.NewUpdateSpec(tipwallet.Table, tipwallet.Columns, sqlgraph.NewFieldSpec(tipwallet.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TipWallet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tipwallet.FieldID)
		for _, f := range fields {
			if !tipwallet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tipwallet.FieldID {
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
		_spec.SetField(tipwallet.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmployeeID(); ok {
		_spec.SetField(tipwallet.FieldEmployeeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tipwallet.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BalanceCents(); ok {
		_spec.SetField(tipwallet.FieldBalanceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBalanceCents(); ok {
		_spec.AddField(tipwallet.FieldBalanceCents, field.TypeInt64, value)
	}
	_node = &TipWallet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipwallet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
