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
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroup"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroupsegment"
	"github.com/google/uuid"
)

// TipGroupSegmentUpdate is the builder for updating TipGroupSegment entities.
type TipGroupSegmentUpdate struct {
	config
	hooks    []Hook
	mutation *TipGroupSegmentMutation
}

// Where appends a list predicates to the TipGroupSegmentUpdate builder.
func (_u *TipGroupSegmentUpdate) Where(ps ...predicate.TipGroupSegment) *TipGroupSegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipGroupSegmentUpdate) SetUpdatedAt(v time.Time) *TipGroupSegmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *TipGroupSegmentUpdate) SetGroupID(v uuid.UUID) *TipGroupSegmentUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *TipGroupSegmentUpdate) SetNillableGroupID(v *uuid.UUID) *TipGroupSegmentUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetSplit sets the "split" field.
func (_u *TipGroupSegmentUpdate) SetSplit(v map[string]float64) *TipGroupSegmentUpdate {
	_u.mutation.SetSplit(v)
	return _u
}

// ClearSplit clears the value of the "split" field.
func (_u *TipGroupSegmentUpdate) ClearSplit() *TipGroupSegmentUpdate {
	_u.mutation.ClearSplit()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *TipGroupSegmentUpdate) SetStartsAt(v time.Time) *TipGroupSegmentUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *TipGroupSegmentUpdate) SetNillableStartsAt(v *time.Time) *TipGroupSegmentUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *TipGroupSegmentUpdate) SetEndsAt(v time.Time) *TipGroupSegmentUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *TipGroupSegmentUpdate) SetNillableEndsAt(v *time.Time) *TipGroupSegmentUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *TipGroupSegmentUpdate) ClearEndsAt() *TipGroupSegmentUpdate {
	_u.mutation.ClearEndsAt()
	return _u
}

// SetGroup sets the "group" edge to the TipGroup entity.
func (_u *TipGroupSegmentUpdate) SetGroup(v *TipGroup) *TipGroupSegmentUpdate {
	return _u.SetGroupID(v.ID)
}

// Mutation returns the TipGroupSegmentMutation object of the builder.
func (_u *TipGroupSegmentUpdate) Mutation() *TipGroupSegmentMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the TipGroup entity.
func (_u *TipGroupSegmentUpdate) ClearGroup() *TipGroupSegmentUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TipGroupSegmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipGroupSegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TipGroupSegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipGroupSegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipGroupSegmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tipgroupsegment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipGroupSegmentUpdate) check() error {
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TipGroupSegment.group"`)
	}
	return nil
}

func (_u *TipGroupSegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipgroupsegment.Table, tipgroupsegment.Columns, sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tipgroupsegment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Split(); ok {
		_spec.SetField(tipgroupsegment.FieldSplit, field.TypeJSON, value)
	}
	if _u.mutation.SplitCleared() {
		_spec.ClearField(tipgroupsegment.FieldSplit, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(tipgroupsegment.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(tipgroupsegment.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(tipgroupsegment.FieldEndsAt, field.TypeTime)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tipgroupsegment.GroupTable,
			Columns: []string{tipgroupsegment.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tipgroupsegment.GroupTable,
			Columns: []string{tipgroupsegment.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipgroupsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TipGroupSegmentUpdateOne is the builder for updating a single TipGroupSegment entity.
type TipGroupSegmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TipGroupSegmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipGroupSegmentUpdateOne) SetUpdatedAt(v time.Time) *TipGroupSegmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *TipGroupSegmentUpdateOne) SetGroupID(v uuid.UUID) *TipGroupSegmentUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *TipGroupSegmentUpdateOne) SetNillableGroupID(v *uuid.UUID) *TipGroupSegmentUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetSplit sets the "split" field.
func (_u *TipGroupSegmentUpdateOne) SetSplit(v map[string]float64) *TipGroupSegmentUpdateOne {
	_u.mutation.SetSplit(v)
	return _u
}

// ClearSplit clears the value of the "split" field.
func (_u *TipGroupSegmentUpdateOne) ClearSplit() *TipGroupSegmentUpdateOne {
	_u.mutation.ClearSplit()
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *TipGroupSegmentUpdateOne) SetStartsAt(v time.Time) *TipGroupSegmentUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *TipGroupSegmentUpdateOne) SetNillableStartsAt(v *time.Time) *TipGroupSegmentUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *TipGroupSegmentUpdateOne) SetEndsAt(v time.Time) *TipGroupSegmentUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *TipGroupSegmentUpdateOne) SetNillableEndsAt(v *time.Time) *TipGroupSegmentUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *TipGroupSegmentUpdateOne) ClearEndsAt() *TipGroupSegmentUpdateOne {
	_u.mutation.ClearEndsAt()
	return _u
}

// SetGroup sets the "group" edge to the TipGroup entity.
func (_u *TipGroupSegmentUpdateOne) SetGroup(v *TipGroup) *TipGroupSegmentUpdateOne {
	return _u.SetGroupID(v.ID)
}

// Mutation returns the TipGroupSegmentMutation object of the builder.
func (_u *TipGroupSegmentUpdateOne) Mutation() *TipGroupSegmentMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the TipGroup entity.
func (_u *TipGroupSegmentUpdateOne) ClearGroup() *TipGroupSegmentUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// Where appends a list predicates to the TipGroupSegmentUpdate builder.
func (_u *TipGroupSegmentUpdateOne) Where(ps ...predicate.TipGroupSegment) *TipGroupSegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TipGroupSegmentUpdateOne) Select(field string, fields ...string) *TipGroupSegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TipGroupSegment entity.
func (_u *TipGroupSegmentUpdateOne) Save(ctx context.Context) (*TipGroupSegment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipGroupSegmentUpdateOne) SaveX(ctx context.Context) *TipGroupSegment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TipGroupSegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipGroupSegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipGroupSegmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tipgroupsegment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipGroupSegmentUpdateOne) check() error {
	if _u.mutation.GroupCleared() && len(_u.mutation.GroupIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TipGroupSegment.group"`)
	}
	return nil
}

func (_u *TipGroupSegmentUpdateOne) sqlSave(ctx context.Context) (_node *TipGroupSegment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipgroupsegment.Table, tipgroupsegment.Columns, sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TipGroupSegment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tipgroupsegment.FieldID)
		for _, f := range fields {
			if !tipgroupsegment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tipgroupsegment.FieldID {
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
		_spec.SetField(tipgroupsegment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Split(); ok {
		_spec.SetField(tipgroupsegment.FieldSplit, field.TypeJSON, value)
	}
	if _u.mutation.SplitCleared() {
		_spec.ClearField(tipgroupsegment.FieldSplit, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(tipgroupsegment.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(tipgroupsegment.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(tipgroupsegment.FieldEndsAt, field.TypeTime)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tipgroupsegment.GroupTable,
			Columns: []string{tipgroupsegment.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tipgroupsegment.GroupTable,
			Columns: []string{tipgroupsegment.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TipGroupSegment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipgroupsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
