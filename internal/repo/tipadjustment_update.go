// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
	"github.com/google/uuid"
)

// TipAdjustmentUpdate is the builder for updating TipAdjustment entities.
type TipAdjustmentUpdate struct {
	config
	hooks    []Hook
	mutation *TipAdjustmentMutation
}

// Where appends a list predicates to the TipAdjustmentUpdate builder.
func (_u *TipAdjustmentUpdate) Where(ps ...predicate.TipAdjustment) *TipAdjustmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipAdjustmentUpdate) SetLocationID(v uuid.UUID) *TipAdjustmentUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipAdjustmentUpdate) SetNillableLocationID(v *uuid.UUID) *TipAdjustmentUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_u *TipAdjustmentUpdate) SetAdjustmentType(v tipadjustment.AdjustmentType) *TipAdjustmentUpdate {
	_u.mutation.SetAdjustmentType(v)
	return _u
}

// SetNillableAdjustmentType sets the "adjustment_type" field if the given value is not nil.
func (_u *TipAdjustmentUpdate) SetNillableAdjustmentType(v *tipadjustment.AdjustmentType) *TipAdjustmentUpdate {
	if v != nil {
		_u.SetAdjustmentType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TipAdjustmentUpdate) SetReason(v string) *TipAdjustmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TipAdjustmentUpdate) SetNillableReason(v *string) *TipAdjustmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetBefore sets the "before" field.
func (_u *TipAdjustmentUpdate) SetBefore(v map[string]int64) *TipAdjustmentUpdate {
	_u.mutation.SetBefore(v)
	return _u
}

// ClearBefore clears the value of the "before" field.
func (_u *TipAdjustmentUpdate) ClearBefore() *TipAdjustmentUpdate {
	_u.mutation.ClearBefore()
	return _u
}

// SetAfter sets the "after" field.
func (_u *TipAdjustmentUpdate) SetAfter(v map[string]int64) *TipAdjustmentUpdate {
	_u.mutation.SetAfter(v)
	return _u
}

// ClearAfter clears the value of the "after" field.
func (_u *TipAdjustmentUpdate) ClearAfter() *TipAdjustmentUpdate {
	_u.mutation.ClearAfter()
	return _u
}

// SetAutoTriggered sets the "auto_triggered" field.
func (_u *TipAdjustmentUpdate) SetAutoTriggered(v bool) *TipAdjustmentUpdate {
	_u.mutation.SetAutoTriggered(v)
	return _u
}

// SetNillableAutoTriggered sets the "auto_triggered" field if the given value is not nil.
func (_u *TipAdjustmentUpdate) SetNillableAutoTriggered(v *bool) *TipAdjustmentUpdate {
	if v != nil {
		_u.SetAutoTriggered(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *TipAdjustmentUpdate) SetGroupID(v uuid.UUID) *TipAdjustmentUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *TipAdjustmentUpdate) SetNillableGroupID(v *uuid.UUID) *TipAdjustmentUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *TipAdjustmentUpdate) ClearGroupID() *TipAdjustmentUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *TipAdjustmentUpdate) SetOrderID(v uuid.UUID) *TipAdjustmentUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *TipAdjustmentUpdate) SetNillableOrderID(v *uuid.UUID) *TipAdjustmentUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *TipAdjustmentUpdate) ClearOrderID() *TipAdjustmentUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *TipAdjustmentUpdate) SetRequestedBy(v uuid.UUID) *TipAdjustmentUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *TipAdjustmentUpdate) SetNillableRequestedBy(v *uuid.UUID) *TipAdjustmentUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *TipAdjustmentUpdate) ClearRequestedBy() *TipAdjustmentUpdate {
	_u.mutation.ClearRequestedBy()
	return _u
}

// Mutation returns the TipAdjustmentMutation object of the builder.
func (_u *TipAdjustmentUpdate) Mutation() *TipAdjustmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TipAdjustmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipAdjustmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TipAdjustmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipAdjustmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipAdjustmentUpdate) check() error {
	if v, ok := _u.mutation.AdjustmentType(); ok {
		if err := tipadjustment.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`repo: validator failed for field "TipAdjustment.adjustment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := tipadjustment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "TipAdjustment.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *TipAdjustmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipadjustment.Table, tipadjustment.Columns, sqlgraph.NewFieldSpec(tipadjustment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tipadjustment.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AdjustmentType(); ok {
		_spec.SetField(tipadjustment.FieldAdjustmentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(tipadjustment.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Before(); ok {
		_spec.SetField(tipadjustment.FieldBefore, field.TypeJSON, value)
	}
	if _u.mutation.BeforeCleared() {
		_spec.ClearField(tipadjustment.FieldBefore, field.TypeJSON)
	}
	if value, ok := _u.mutation.After(); ok {
		_spec.SetField(tipadjustment.FieldAfter, field.TypeJSON, value)
	}
	if _u.mutation.AfterCleared() {
		_spec.ClearField(tipadjustment.FieldAfter, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoTriggered(); ok {
		_spec.SetField(tipadjustment.FieldAutoTriggered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(tipadjustment.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(tipadjustment.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(tipadjustment.FieldOrderID, field.TypeUUID, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(tipadjustment.FieldOrderID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(tipadjustment.FieldRequestedBy, field.TypeUUID, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(tipadjustment.FieldRequestedBy, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipadjustment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TipAdjustmentUpdateOne is the builder for updating a single TipAdjustment entity.
type TipAdjustmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TipAdjustmentMutation
}

// SetLocationID sets the "location_id" field.
func (_u *TipAdjustmentUpdateOne) SetLocationID(v uuid.UUID) *TipAdjustmentUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipAdjustmentUpdateOne) SetNillableLocationID(v *uuid.UUID) *TipAdjustmentUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_u *TipAdjustmentUpdateOne) SetAdjustmentType(v tipadjustment.AdjustmentType) *TipAdjustmentUpdateOne {
	_u.mutation.SetAdjustmentType(v)
	return _u
}

// SetNillableAdjustmentType sets the "adjustment_type" field if the given value is not nil.
func (_u *TipAdjustmentUpdateOne) SetNillableAdjustmentType(v *tipadjustment.AdjustmentType) *TipAdjustmentUpdateOne {
	if v != nil {
		_u.SetAdjustmentType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TipAdjustmentUpdateOne) SetReason(v string) *TipAdjustmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TipAdjustmentUpdateOne) SetNillableReason(v *string) *TipAdjustmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetBefore sets the "before" field.
func (_u *TipAdjustmentUpdateOne) SetBefore(v map[string]int64) *TipAdjustmentUpdateOne {
	_u.mutation.SetBefore(v)
	return _u
}

// ClearBefore clears the value of the "before" field.
func (_u *TipAdjustmentUpdateOne) ClearBefore() *TipAdjustmentUpdateOne {
	_u.mutation.ClearBefore()
	return _u
}

// SetAfter sets the "after" field.
func (_u *TipAdjustmentUpdateOne) SetAfter(v map[string]int64) *TipAdjustmentUpdateOne {
	_u.mutation.SetAfter(v)
	return _u
}

// ClearAfter clears the value of the "after" field.
func (_u *TipAdjustmentUpdateOne) ClearAfter() *TipAdjustmentUpdateOne {
	_u.mutation.ClearAfter()
	return _u
}

// SetAutoTriggered sets the "auto_triggered" field.
func (_u *TipAdjustmentUpdateOne) SetAutoTriggered(v bool) *TipAdjustmentUpdateOne {
	_u.mutation.SetAutoTriggered(v)
	return _u
}

// SetNillableAutoTriggered sets the "auto_triggered" field if the given value is not nil.
func (_u *TipAdjustmentUpdateOne) SetNillableAutoTriggered(v *bool) *TipAdjustmentUpdateOne {
	if v != nil {
		_u.SetAutoTriggered(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *TipAdjustmentUpdateOne) SetGroupID(v uuid.UUID) *TipAdjustmentUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *TipAdjustmentUpdateOne) SetNillableGroupID(v *uuid.UUID) *TipAdjustmentUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *TipAdjustmentUpdateOne) ClearGroupID() *TipAdjustmentUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *TipAdjustmentUpdateOne) SetOrderID(v uuid.UUID) *TipAdjustmentUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *TipAdjustmentUpdateOne) SetNillableOrderID(v *uuid.UUID) *TipAdjustmentUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *TipAdjustmentUpdateOne) ClearOrderID() *TipAdjustmentUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *TipAdjustmentUpdateOne) SetRequestedBy(v uuid.UUID) *TipAdjustmentUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *TipAdjustmentUpdateOne) SetNillableRequestedBy(v *uuid.UUID) *TipAdjustmentUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *TipAdjustmentUpdateOne) ClearRequestedBy() *TipAdjustmentUpdateOne {
	_u.mutation.ClearRequestedBy()
	return _u
}

// Mutation returns the TipAdjustmentMutation object of the builder.
func (_u *TipAdjustmentUpdateOne) Mutation() *TipAdjustmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the TipAdjustmentUpdate builder.
func (_u *TipAdjustmentUpdateOne) Where(ps ...predicate.TipAdjustment) *TipAdjustmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TipAdjustmentUpdateOne) Select(field string, fields ...string) *TipAdjustmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TipAdjustment entity.
func (_u *TipAdjustmentUpdateOne) Save(ctx context.Context) (*TipAdjustment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipAdjustmentUpdateOne) SaveX(ctx context.Context) *TipAdjustment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TipAdjustmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipAdjustmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipAdjustmentUpdateOne) check() error {
	if v, ok := _u.mutation.AdjustmentType(); ok {
		if err := tipadjustment.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`repo: validator failed for field "TipAdjustment.adjustment_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := tipadjustment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "TipAdjustment.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *TipAdjustmentUpdateOne) sqlSave(ctx context.Context) (_node *TipAdjustment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipadjustment.Table, tipadjustment.Columns, sqlgraph.NewFieldSpec(tipadjustment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TipAdjustment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tipadjustment.FieldID)
		for _, f := range fields {
			if !tipadjustment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tipadjustment.FieldID {
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
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tipadjustment.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AdjustmentType(); ok {
		_spec.SetField(tipadjustment.FieldAdjustmentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(tipadjustment.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Before(); ok {
		_spec.SetField(tipadjustment.FieldBefore, field.TypeJSON, value)
	}
	if _u.mutation.BeforeCleared() {
		_spec.ClearField(tipadjustment.FieldBefore, field.TypeJSON)
	}
	if value, ok := _u.mutation.After(); ok {
		_spec.SetField(tipadjustment.FieldAfter, field.TypeJSON, value)
	}
	if _u.mutation.AfterCleared() {
		_spec.ClearField(tipadjustment.FieldAfter, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoTriggered(); ok {
		_spec.SetField(tipadjustment.FieldAutoTriggered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(tipadjustment.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(tipadjustment.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(tipadjustment.FieldOrderID, field.TypeUUID, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(tipadjustment.FieldOrderID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(tipadjustment.FieldRequestedBy, field.TypeUUID, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(tipadjustment.FieldRequestedBy, field.TypeUUID)
	}
	_node = &TipAdjustment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipadjustment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
