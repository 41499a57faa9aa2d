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

// TipGroupUpdate is the builder for updating TipGroup entities.
type TipGroupUpdate struct {
	config
	hooks    []Hook
	mutation *TipGroupMutation
}

// Where appends a list predicates to the TipGroupUpdate builder.
func (_u *TipGroupUpdate) Where(ps ...predicate.TipGroup) *TipGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipGroupUpdate) SetUpdatedAt(v time.Time) *TipGroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TipGroupUpdate) SetDeletedAt(v time.Time) *TipGroupUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TipGroupUpdate) SetNillableDeletedAt(v *time.Time) *TipGroupUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TipGroupUpdate) ClearDeletedAt() *TipGroupUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipGroupUpdate) SetLocationID(v uuid.UUID) *TipGroupUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipGroupUpdate) SetNillableLocationID(v *uuid.UUID) *TipGroupUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TipGroupUpdate) SetName(v string) *TipGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TipGroupUpdate) SetNillableName(v *string) *TipGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddSegmentIDs adds the "segments" edge to the TipGroupSegment entity by IDs.
func (_u *TipGroupUpdate) AddSegmentIDs(ids ...uuid.UUID) *TipGroupUpdate {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TipGroupSegment entity.
func (_u *TipGroupUpdate) AddSegments(v ...*TipGroupSegment) *TipGroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the TipGroupMutation object of the builder.
func (_u *TipGroupUpdate) Mutation() *TipGroupMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the TipGroupSegment entity.
func (_u *TipGroupUpdate) ClearSegments() *TipGroupUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TipGroupSegment entities by IDs.
func (_u *TipGroupUpdate) RemoveSegmentIDs(ids ...uuid.UUID) *TipGroupUpdate {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TipGroupSegment entities.
func (_u *TipGroupUpdate) RemoveSegments(v ...*TipGroupSegment) *TipGroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TipGroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TipGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipGroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tipgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipGroupUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tipgroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "TipGroup.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TipGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipgroup.Table, tipgroup.Columns, sqlgraph.NewFieldSpec(tipgroup.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tipgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(tipgroup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(tipgroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tipgroup.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tipgroup.FieldName, field.TypeString, value)
	}
	if _u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tipgroup.SegmentsTable,
			Columns: []string{tipgroup.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tipgroup.SegmentsTable,
			Columns: []string{tipgroup.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tipgroup.SegmentsTable,
			Columns: []string{tipgroup.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TipGroupUpdateOne is the builder for updating a single TipGroup entity.
type TipGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TipGroupMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipGroupUpdateOne) SetUpdatedAt(v time.Time) *TipGroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TipGroupUpdateOne) SetDeletedAt(v time.Time) *TipGroupUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TipGroupUpdateOne) SetNillableDeletedAt(v *time.Time) *TipGroupUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TipGroupUpdateOne) ClearDeletedAt() *TipGroupUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipGroupUpdateOne) SetLocationID(v uuid.UUID) *TipGroupUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipGroupUpdateOne) SetNillableLocationID(v *uuid.UUID) *TipGroupUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TipGroupUpdateOne) SetName(v string) *TipGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TipGroupUpdateOne) SetNillableName(v *string) *TipGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddSegmentIDs adds the "segments" edge to the TipGroupSegment entity by IDs.
func (_u *TipGroupUpdateOne) AddSegmentIDs(ids ...uuid.UUID) *TipGroupUpdateOne {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TipGroupSegment entity.
func (_u *TipGroupUpdateOne) AddSegments(v ...*TipGroupSegment) *TipGroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the TipGroupMutation object of the builder.
func (_u *TipGroupUpdateOne) Mutation() *TipGroupMutation {
	return _u.mutation
}

// ClearSegments clears all "segments" edges to the TipGroupSegment entity.
func (_u *TipGroupUpdateOne) ClearSegments() *TipGroupUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TipGroupSegment entities by IDs.
func (_u *TipGroupUpdateOne) RemoveSegmentIDs(ids ...uuid.UUID) *TipGroupUpdateOne {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TipGroupSegment entities.
func (_u *TipGroupUpdateOne) RemoveSegments(v ...*TipGroupSegment) *TipGroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Where appends a list predicates to the TipGroupUpdate builder.
func (_u *TipGroupUpdateOne) Where(ps ...predicate.TipGroup) *TipGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TipGroupUpdateOne) Select(field string, fields ...string) *TipGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TipGroup entity.
func (_u *TipGroupUpdateOne) Save(ctx context.Context) (*TipGroup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipGroupUpdateOne) SaveX(ctx context.Context) *TipGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TipGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipGroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tipgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tipgroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "TipGroup.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TipGroupUpdateOne) sqlSave(ctx context.Context) (_node *TipGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tipgroup.Table, tipgroup.Columns, sqlgraph.NewFieldSpec(tipgroup.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TipGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tipgroup.FieldID)
		for _, f := range fields {
			if !tipgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tipgroup.FieldID {
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
		_spec.SetField(tipgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(tipgroup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(tipgroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tipgroup.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tipgroup.FieldName, field.TypeString, value)
	}
	if _u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tipgroup.SegmentsTable,
			Columns: []string{tipgroup.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tipgroup.SegmentsTable,
			Columns: []string{tipgroup.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tipgroup.SegmentsTable,
			Columns: []string{tipgroup.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TipGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
