// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroup"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroupsegment"
	"github.com/google/uuid"
)

// TipGroupSegmentCreate is the builder for creating a TipGroupSegment entity.
type TipGroupSegmentCreate struct {
	config
	mutation *TipGroupSegmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TipGroupSegmentCreate) SetCreatedAt(v time.Time) *TipGroupSegmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TipGroupSegmentCreate) SetNillableCreatedAt(v *time.Time) *TipGroupSegmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TipGroupSegmentCreate) SetUpdatedAt(v time.Time) *TipGroupSegmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TipGroupSegmentCreate) SetNillableUpdatedAt(v *time.Time) *TipGroupSegmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *TipGroupSegmentCreate) SetGroupID(v uuid.UUID) *TipGroupSegmentCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetSplit sets the "split" field.
func (_c *TipGroupSegmentCreate) SetSplit(v map[string]float64) *TipGroupSegmentCreate {
	_c.mutation.SetSplit(v)
	return _c
}

// SetStartsAt sets the "starts_at" field.
func (_c *TipGroupSegmentCreate) SetStartsAt(v time.Time) *TipGroupSegmentCreate {
	_c.mutation.SetStartsAt(v)
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *TipGroupSegmentCreate) SetEndsAt(v time.Time) *TipGroupSegmentCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_c *TipGroupSegmentCreate) SetNillableEndsAt(v *time.Time) *TipGroupSegmentCreate {
	if v != nil {
		_c.SetEndsAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TipGroupSegmentCreate) SetID(v uuid.UUID) *TipGroupSegmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TipGroupSegmentCreate) SetNillableID(v *uuid.UUID) *TipGroupSegmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetGroup sets the "group" edge to the TipGroup entity.
func (_c *TipGroupSegmentCreate) SetGroup(v *TipGroup) *TipGroupSegmentCreate {
	return _c.SetGroupID(v.ID)
}

// Mutation returns the TipGroupSegmentMutation object of the builder.
func (_c *TipGroupSegmentCreate) Mutation() *TipGroupSegmentMutation {
	return _c.mutation
}

// Save creates the TipGroupSegment in the database.
func (_c *TipGroupSegmentCreate) Save(ctx context.Context) (*TipGroupSegment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TipGroupSegmentCreate) SaveX(ctx context.Context) *TipGroupSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipGroupSegmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipGroupSegmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TipGroupSegmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tipgroupsegment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tipgroupsegment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tipgroupsegment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TipGroupSegmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TipGroupSegment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TipGroupSegment.updated_at"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`repo: missing required field "TipGroupSegment.group_id"`)}
	}
	if _, ok := _c.mutation.StartsAt(); !ok {
		return &ValidationError{Name: "starts_at", err: errors.New(`repo: missing required field "TipGroupSegment.starts_at"`)}
	}
	if len(_c.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`repo: missing required edge "TipGroupSegment.group"`)}
	}
	return nil
}

func (_c *TipGroupSegmentCreate) sqlSave(ctx context.Context) (*TipGroupSegment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TipGroupSegmentCreate) createSpec() (*TipGroupSegment, *sqlgraph.CreateSpec) {
	var (
		_node = &TipGroupSegment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tipgroupsegment.Table, sqlgraph.NewFieldSpec(tipgroupsegment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tipgroupsegment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tipgroupsegment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Split(); ok {
		_spec.SetField(tipgroupsegment.FieldSplit, field.TypeJSON, value)
		_node.Split = value
	}
	if value, ok := _c.mutation.StartsAt(); ok {
		_spec.SetField(tipgroupsegment.FieldStartsAt, field.TypeTime, value)
		_node.StartsAt = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(tipgroupsegment.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = &value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
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
		_node.GroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TipGroupSegmentCreateBulk is the builder for creating many TipGroupSegment entities in bulk.
type TipGroupSegmentCreateBulk struct {
	config
	err      error
	builders []*TipGroupSegmentCreate
}

// Save creates the TipGroupSegment entities in the database.
func (_c *TipGroupSegmentCreateBulk) Save(ctx context.Context) ([]*TipGroupSegment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TipGroupSegment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TipGroupSegmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TipGroupSegmentCreateBulk) SaveX(ctx context.Context) []*TipGroupSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipGroupSegmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipGroupSegmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
