// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipwallet"
	"github.com/google/uuid"
)

// TipWalletCreate is the builder for creating a TipWallet entity.
type TipWalletCreate struct {
	config
	mutation *TipWalletMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TipWalletCreate) SetCreatedAt(v time.Time) *TipWalletCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TipWalletCreate) SetNillableCreatedAt(v *time.Time) *TipWalletCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TipWalletCreate) SetUpdatedAt(v time.Time) *TipWalletCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TipWalletCreate) SetNillableUpdatedAt(v *time.Time) *TipWalletCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *TipWalletCreate) SetEmployeeID(v uuid.UUID) *TipWalletCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *TipWalletCreate) SetLocationID(v uuid.UUID) *TipWalletCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetBalanceCents sets the "balance_cents" field.
func (_c *TipWalletCreate) SetBalanceCents(v int64) *TipWalletCreate {
	_c.mutation.SetBalanceCents(v)
	return _c
}

// SetNillableBalanceCents sets the "balance_cents" field if the given value is not nil.
func (_c *TipWalletCreate) SetNillableBalanceCents(v *int64) *TipWalletCreate {
	if v != nil {
		_c.SetBalanceCents(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TipWalletCreate) SetID(v uuid.UUID) *TipWalletCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TipWalletCreate) SetNillableID(v *uuid.UUID) *TipWalletCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TipWalletMutation object of the builder.
func (_c *TipWalletCreate) Mutation() *TipWalletMutation {
	return _c.mutation
}

// Save creates the TipWallet in the database.
func (_c *TipWalletCreate) Save(ctx context.Context) (*TipWallet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TipWalletCreate) SaveX(ctx context.Context) *TipWallet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipWalletCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipWalletCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TipWalletCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tipwallet.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tipwallet.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.BalanceCents(); !ok {
		v := tipwallet.DefaultBalanceCents
		_c.mutation.SetBalanceCents(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tipwallet.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TipWalletCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TipWallet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TipWallet.updated_at"`)}
	}
	if _, ok := _c.mutation.EmployeeID(); !ok {
		return &ValidationError{Name: "employee_id", err: errors.New(`repo: missing required field "TipWallet.employee_id"`)}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`repo: missing required field "TipWallet.location_id"`)}
	}
	if _, ok := _c.mutation.BalanceCents(); !ok {
		return &ValidationError{Name: "balance_cents", err: errors.New(`repo: missing required field "TipWallet.balance_cents"`)}
	}
	return nil
}

func (_c *TipWalletCreate) sqlSave(ctx context.Context) (*TipWallet, error) {
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

func (_c *TipWalletCreate) createSpec() (*TipWallet, *sqlgraph.CreateSpec) {
	var (
		_node = &TipWallet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tipwallet.Table, sqlgraph.NewFieldSpec(tipwallet.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tipwallet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tipwallet.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EmployeeID(); ok {
		_spec.SetField(tipwallet.FieldEmployeeID, field.TypeUUID, value)
		_node.EmployeeID = value
	}
	if value, ok := _c.mutation.LocationID(); ok {
		_spec.SetField(tipwallet.FieldLocationID, field.TypeUUID, value)
		_node.LocationID = value
	}
	if value, ok := _c.mutation.BalanceCents(); ok {
		_spec.SetField(tipwallet.FieldBalanceCents, field.TypeInt64, value)
		_node.BalanceCents = value
	}
	return _node, _spec
}

// TipWalletCreateBulk is the builder for creating many TipWallet entities in bulk.
type TipWalletCreateBulk struct {
	config
	err      error
	builders []*TipWalletCreate
}

// Save creates the TipWallet entities in the database.
func (_c *TipWalletCreateBulk) Save(ctx context.Context) ([]*TipWallet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TipWallet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TipWalletMutation)
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
func (_c *TipWalletCreateBulk) SaveX(ctx context.Context) []*TipWallet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipWalletCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipWalletCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
