// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
	"github.com/google/uuid"
)

// TipAdjustmentCreate is the builder for creating a TipAdjustment entity.
type TipAdjustmentCreate struct {
	config
	mutation *TipAdjustmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TipAdjustmentCreate) SetCreatedAt(v time.Time) *TipAdjustmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TipAdjustmentCreate) SetNillableCreatedAt(v *time.Time) *TipAdjustmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *TipAdjustmentCreate) SetLocationID(v uuid.UUID) *TipAdjustmentCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetAdjustmentType sets the "adjustment_type" field.
func (_c *TipAdjustmentCreate) SetAdjustmentType(v tipadjustment.AdjustmentType) *TipAdjustmentCreate {
	_c.mutation.SetAdjustmentType(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *TipAdjustmentCreate) SetReason(v string) *TipAdjustmentCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetBefore sets the "before" field.
func (_c *TipAdjustmentCreate) SetBefore(v map[string]int64) *TipAdjustmentCreate {
	_c.mutation.SetBefore(v)
	return _c
}

// SetAfter sets the "after" field.
func (_c *TipAdjustmentCreate) SetAfter(v map[string]int64) *TipAdjustmentCreate {
	_c.mutation.SetAfter(v)
	return _c
}

// SetAutoTriggered sets the "auto_triggered" field.
func (_c *TipAdjustmentCreate) SetAutoTriggered(v bool) *TipAdjustmentCreate {
	_c.mutation.SetAutoTriggered(v)
	return _c
}

// SetNillableAutoTriggered sets the "auto_triggered" field if the given value is not nil.
func (_c *TipAdjustmentCreate) SetNillableAutoTriggered(v *bool) *TipAdjustmentCreate {
	if v != nil {
		_c.SetAutoTriggered(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *TipAdjustmentCreate) SetGroupID(v uuid.UUID) *TipAdjustmentCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *TipAdjustmentCreate) SetNillableGroupID(v *uuid.UUID) *TipAdjustmentCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *TipAdjustmentCreate) SetOrderID(v uuid.UUID) *TipAdjustmentCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *TipAdjustmentCreate) SetNillableOrderID(v *uuid.UUID) *TipAdjustmentCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *TipAdjustmentCreate) SetRequestedBy(v uuid.UUID) *TipAdjustmentCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_c *TipAdjustmentCreate) SetNillableRequestedBy(v *uuid.UUID) *TipAdjustmentCreate {
	if v != nil {
		_c.SetRequestedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TipAdjustmentCreate) SetID(v uuid.UUID) *TipAdjustmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TipAdjustmentCreate) SetNillableID(v *uuid.UUID) *TipAdjustmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TipAdjustmentMutation object of the builder.
func (_c *TipAdjustmentCreate) Mutation() *TipAdjustmentMutation {
	return _c.mutation
}

// Save creates the TipAdjustment in the database.
func (_c *TipAdjustmentCreate) Save(ctx context.Context) (*TipAdjustment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TipAdjustmentCreate) SaveX(ctx context.Context) *TipAdjustment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipAdjustmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipAdjustmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TipAdjustmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tipadjustment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.AutoTriggered(); !ok {
		v := tipadjustment.DefaultAutoTriggered
		_c.mutation.SetAutoTriggered(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tipadjustment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TipAdjustmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TipAdjustment.created_at"`)}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`repo: missing required field "TipAdjustment.location_id"`)}
	}
	if _, ok := _c.mutation.AdjustmentType(); !ok {
		return &ValidationError{Name: "adjustment_type", err: errors.New(`repo: missing required field "TipAdjustment.adjustment_type"`)}
	}
	if v, ok := _c.mutation.AdjustmentType(); ok {
		if err := tipadjustment.AdjustmentTypeValidator(v); err != nil {
			return &ValidationError{Name: "adjustment_type", err: fmt.Errorf(`repo: validator failed for field "TipAdjustment.adjustment_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`repo: missing required field "TipAdjustment.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := tipadjustment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "TipAdjustment.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoTriggered(); !ok {
		return &ValidationError{Name: "auto_triggered", err: errors.New(`repo: missing required field "TipAdjustment.auto_triggered"`)}
	}
	return nil
}

func (_c *TipAdjustmentCreate) sqlSave(ctx context.Context) (*TipAdjustment, error) {
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

func (_c *TipAdjustmentCreate) createSpec() (*TipAdjustment, *sqlgraph.CreateSpec) {
	var (
		_node = &TipAdjustment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tipadjustment.Table, sqlgraph.NewFieldSpec(tipadjustment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tipadjustment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LocationID(); ok {
		_spec.SetField(tipadjustment.FieldLocationID, field.TypeUUID, value)
		_node.LocationID = value
	}
	if value, ok := _c.mutation.AdjustmentType(); ok {
		_spec.SetField(tipadjustment.FieldAdjustmentType, field.TypeEnum, value)
		_node.AdjustmentType = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(tipadjustment.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Before(); ok {
		_spec.SetField(tipadjustment.FieldBefore, field.TypeJSON, value)
		_node.Before = value
	}
	if value, ok := _c.mutation.After(); ok {
		_spec.SetField(tipadjustment.FieldAfter, field.TypeJSON, value)
		_node.After = value
	}
	if value, ok := _c.mutation.AutoTriggered(); ok {
		_spec.SetField(tipadjustment.FieldAutoTriggered, field.TypeBool, value)
		_node.AutoTriggered = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(tipadjustment.FieldGroupID, field.TypeUUID, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(tipadjustment.FieldOrderID, field.TypeUUID, value)
		_node.OrderID = &value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(tipadjustment.FieldRequestedBy, field.TypeUUID, value)
		_node.RequestedBy = &value
	}
	return _node, _spec
}

// TipAdjustmentCreateBulk is the builder for creating many TipAdjustment entities in bulk.
type TipAdjustmentCreateBulk struct {
	config
	err      error
	builders []*TipAdjustmentCreate
}

// Save creates the TipAdjustment entities in the database.
func (_c *TipAdjustmentCreateBulk) Save(ctx context.Context) ([]*TipAdjustment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TipAdjustment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TipAdjustmentMutation)
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
func (_c *TipAdjustmentCreateBulk) SaveX(ctx context.Context) []*TipAdjustment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipAdjustmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipAdjustmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
