// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/locationsetting"
	"github.com/google/uuid"
)

// LocationSettingCreate is the builder for creating a LocationSetting entity.
type LocationSettingCreate struct {
	config
	mutation *LocationSettingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *LocationSettingCreate) SetCreatedAt(v time.Time) *LocationSettingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LocationSettingCreate) SetNillableCreatedAt(v *time.Time) *LocationSettingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LocationSettingCreate) SetUpdatedAt(v time.Time) *LocationSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LocationSettingCreate) SetNillableUpdatedAt(v *time.Time) *LocationSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *LocationSettingCreate) SetLocationID(v uuid.UUID) *LocationSettingCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetSettings sets the "settings" field.
func (_c *LocationSettingCreate) SetSettings(v []byte) *LocationSettingCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LocationSettingCreate) SetID(v uuid.UUID) *LocationSettingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LocationSettingCreate) SetNillableID(v *uuid.UUID) *LocationSettingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LocationSettingMutation object of the builder.
func (_c *LocationSettingCreate) Mutation() *LocationSettingMutation {
	return _c.mutation
}

// Save creates the LocationSetting in the database.
func (_c *LocationSettingCreate) Save(ctx context.Context) (*LocationSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LocationSettingCreate) SaveX(ctx context.Context) *LocationSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocationSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocationSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LocationSettingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := locationsetting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := locationsetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := locationsetting.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LocationSettingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LocationSetting.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "LocationSetting.updated_at"`)}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`repo: missing required field "LocationSetting.location_id"`)}
	}
	return nil
}

func (_c *LocationSettingCreate) sqlSave(ctx context.Context) (*LocationSetting, error) {
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

func (_c *LocationSettingCreate) createSpec() (*LocationSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &LocationSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(locationsetting.Table, sqlgraph.NewFieldSpec(locationsetting.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(locationsetting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(locationsetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LocationID(); ok {
		_spec.SetField(locationsetting.FieldLocationID, field.TypeUUID, value)
		_node.LocationID = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(locationsetting.FieldSettings, field.TypeBytes, value)
		_node.Settings = value
	}
	return _node, _spec
}

// LocationSettingCreateBulk is the builder for creating many LocationSetting entities in bulk.
type LocationSettingCreateBulk struct {
	config
	err      error
	builders []*LocationSettingCreate
}

// Save creates the LocationSetting entities in the database.
func (_c *LocationSettingCreateBulk) Save(ctx context.Context) ([]*LocationSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LocationSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LocationSettingMutation)
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
func (_c *LocationSettingCreateBulk) SaveX(ctx context.Context) []*LocationSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocationSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocationSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
