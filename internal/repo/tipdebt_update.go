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
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipdebt"
	"github.com/google/uuid"
)

// TipDebtUpdate is the builder for updating TipDebt entities.
type TipDebtUpdate struct {
	config
	hooks    []Hook
	mutation *TipDebtMutation
}

// Where appends a list predicates to the TipDebtUpdate builder.
func (_u *TipDebtUpdate) Where(ps ...predicate.TipDebt) *TipDebtUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipDebtUpdate) SetUpdatedAt(v time.Time) *TipDebtUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipDebtUpdate) SetLocationID(v uuid.UUID) *TipDebtUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipDebtUpdate) SetNillableLocationID(v *uuid.UUID) *TipDebtUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *TipDebtUpdate) SetEmployeeID(v uuid.UUID) *TipDebtUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *TipDebtUpdate) SetNillableEmployeeID(v *uuid.UUID) *TipDebtUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetPaymentID sets the "payment_id" field.
func (_u *TipDebtUpdate) SetPaymentID(v uuid.UUID) *TipDebtUpdate {
	_u.mutation.SetPaymentID(v)
	return _u
}

// SetNillablePaymentID sets the "payment_id" field if the given value is not nil.
func (_u *TipDebtUpdate) SetNillablePaymentID(v *uuid.UUID) *TipDebtUpdate {
	if v != nil {
		_u.SetPaymentID(*v)
	}
	return _u
}

// SetOriginalAmountCents sets the "original_amount_cents" field.
func (_u *TipDebtUpdate) SetOriginalAmountCents(v int64) *TipDebtUpdate {
	_u.mutation.ResetOriginalAmountCents()
	_u.mutation.SetOriginalAmountCents(v)
	return _u
}

// SetNillableOriginalAmountCents sets the "original_amount_cents" field if the given value is not nil.
func (_u *TipDebtUpdate) SetNillableOriginalAmountCents(v *int64) *TipDebtUpdate {
	if v != nil {
		_u.SetOriginalAmountCents(*v)
	}
	return _u
}

// AddOriginalAmountCents adds value to the "original_amount_cents" field.
func (_u *TipDebtUpdate) AddOriginalAmountCents(v int64) *TipDebtUpdate {
	_u.mutation.AddOriginalAmountCents(v)
	return _u
}

// SetRemainingCents sets the "remaining_cents" field.
func (_u *TipDebtUpdate) SetRemainingCents(v int64) *TipDebtUpdate {
	_u.mutation.ResetRemainingCents()
	_u.mutation.SetRemainingCents(v)
	return _u
}

// SetNillableRemainingCents sets the "remaining_cents" field if the given value is not nil.
func (_u *TipDebtUpdate) SetNillableRemainingCents(v *int64) *TipDebtUpdate {
	if v != nil {
		_u.SetRemainingCents(*v)
	}
	return _u
}

// AddRemainingCents adds value to the "remaining_cents" field.
func (_u *TipDebtUpdate) AddRemainingCents(v int64) *TipDebtUpdate {
	_u.mutation.AddRemainingCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TipDebtUpdate) SetStatus(v tipdebt.Status) *TipDebtUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TipDebtUpdate) SetNillableStatus(v *tipdebt.Status) *TipDebtUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *TipDebtUpdate) SetResolvedAt(v time.Time) *TipDebtUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *TipDebtUpdate) SetNillableResolvedAt(v *time.Time) *TipDebtUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *TipDebtUpdate) ClearResolvedAt() *TipDebtUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the TipDebtMutation object of the builder.
func (_u *TipDebtUpdate) Mutation() *TipDebtMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TipDebtUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipDebtUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TipDebtUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipDebtUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipDebtUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tipdebt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipDebtUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tipdebt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TipDebt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TipDebtUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipdebt.Table, tipdebt.Columns, sqlgraph.NewFieldSpec(tipdebt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tipdebt.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tipdebt.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EmployeeID(); ok {
		_spec.SetField(tipdebt.FieldEmployeeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PaymentID(); ok {
		_spec.SetField(tipdebt.FieldPaymentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OriginalAmountCents(); ok {
		_spec.SetField(tipdebt.FieldOriginalAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOriginalAmountCents(); ok {
		_spec.AddField(tipdebt.FieldOriginalAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RemainingCents(); ok {
		_spec.SetField(tipdebt.FieldRemainingCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRemainingCents(); ok {
		_spec.AddField(tipdebt.FieldRemainingCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tipdebt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(tipdebt.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(tipdebt.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipdebt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TipDebtUpdateOne is the builder for updating a single TipDebt entity.
type TipDebtUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TipDebtMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipDebtUpdateOne) SetUpdatedAt(v time.Time) *TipDebtUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipDebtUpdateOne) SetLocationID(v uuid.UUID) *TipDebtUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipDebtUpdateOne) SetNillableLocationID(v *uuid.UUID) *TipDebtUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *TipDebtUpdateOne) SetEmployeeID(v uuid.UUID) *TipDebtUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *TipDebtUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *TipDebtUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetPaymentID sets the "payment_id" field.
func (_u *TipDebtUpdateOne) SetPaymentID(v uuid.UUID) *TipDebtUpdateOne {
	_u.mutation.SetPaymentID(v)
	return _u
}

// SetNillablePaymentID sets the "payment_id" field if the given value is not nil.
func (_u *TipDebtUpdateOne) SetNillablePaymentID(v *uuid.UUID) *TipDebtUpdateOne {
	if v != nil {
		_u.SetPaymentID(*v)
	}
	return _u
}

// SetOriginalAmountCents sets the "original_amount_cents" field.
func (_u *TipDebtUpdateOne) SetOriginalAmountCents(v int64) *TipDebtUpdateOne {
	_u.mutation.ResetOriginalAmountCents()
	_u.mutation.SetOriginalAmountCents(v)
	return _u
}

// SetNillableOriginalAmountCents sets the "original_amount_cents" field if the given value is not nil.
func (_u *TipDebtUpdateOne) SetNillableOriginalAmountCents(v *int64) *TipDebtUpdateOne {
	if v != nil {
		_u.SetOriginalAmountCents(*v)
	}
	return _u
}

// AddOriginalAmountCents adds value to the "original_amount_cents" field.
func (_u *TipDebtUpdateOne) AddOriginalAmountCents(v int64) *TipDebtUpdateOne {
	_u.mutation.AddOriginalAmountCents(v)
	return _u
}

// SetRemainingCents sets the "remaining_cents" field.
func (_u *TipDebtUpdateOne) SetRemainingCents(v int64) *TipDebtUpdateOne {
	_u.mutation.ResetRemainingCents()
	_u.mutation.SetRemainingCents(v)
	return _u
}

// SetNillableRemainingCents sets the "remaining_cents" field if the given value is not nil.
func (_u *TipDebtUpdateOne) SetNillableRemainingCents(v *int64) *TipDebtUpdateOne {
	if v != nil {
		_u.SetRemainingCents(*v)
	}
	return _u
}

// AddRemainingCents adds value to the "remaining_cents" field.
func (_u *TipDebtUpdateOne) AddRemainingCents(v int64) *TipDebtUpdateOne {
	_u.mutation.AddRemainingCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TipDebtUpdateOne) SetStatus(v tipdebt.Status) *TipDebtUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TipDebtUpdateOne) SetNillableStatus(v *tipdebt.Status) *TipDebtUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *TipDebtUpdateOne) SetResolvedAt(v time.Time) *TipDebtUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *TipDebtUpdateOne) SetNillableResolvedAt(v *time.Time) *TipDebtUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *TipDebtUpdateOne) ClearResolvedAt() *TipDebtUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the TipDebtMutation object of the builder.
func (_u *TipDebtUpdateOne) Mutation() *TipDebtMutation {
	return _u.mutation
}

// Where appends a list predicates to the TipDebtUpdate builder.
func (_u *TipDebtUpdateOne) Where(ps ...predicate.TipDebt) *TipDebtUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TipDebtUpdateOne) Select(field string, fields ...string) *TipDebtUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TipDebt entity.
func (_u *TipDebtUpdateOne) Save(ctx context.Context) (*TipDebt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipDebtUpdateOne) SaveX(ctx context.Context) *TipDebt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TipDebtUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipDebtUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipDebtUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tipdebt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipDebtUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tipdebt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TipDebt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TipDebtUpdateOne) sqlSave(ctx context.Context) (_node *TipDebt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipdebt.Table, tipdebt.Columns, sqlgraph.NewFieldSpec(tipdebt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TipDebt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tipdebt.FieldID)
		for _, f := range fields {
			if !tipdebt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tipdebt.FieldID {
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
		_spec.SetField(tipdebt.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tipdebt.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EmployeeID(); ok {
		_spec.SetField(tipdebt.FieldEmployeeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PaymentID(); ok {
		_spec.SetField(tipdebt.FieldPaymentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OriginalAmountCents(); ok {
		_spec.SetField(tipdebt.FieldOriginalAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOriginalAmountCents(); ok {
		_spec.AddField(tipdebt.FieldOriginalAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RemainingCents(); ok {
		_spec.SetField(tipdebt.FieldRemainingCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRemainingCents(); ok {
		_spec.AddField(tipdebt.FieldRemainingCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tipdebt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(tipdebt.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(tipdebt.FieldResolvedAt, field.TypeTime)
	}
	_node = &TipDebt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipdebt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
