// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderowner"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderownership"
	"github.com/google/uuid"
)

// OrderOwnerCreate is the builder for creating a OrderOwner entity.
type OrderOwnerCreate struct {
	config
	mutation *OrderOwnerMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderOwnerCreate) SetCreatedAt(v time.Time) *OrderOwnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderOwnerCreate) SetNillableCreatedAt(v *time.Time) *OrderOwnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOwnershipID sets the "ownership_id" field.
func (_c *OrderOwnerCreate) SetOwnershipID(v uuid.UUID) *OrderOwnerCreate {
	_c.mutation.SetOwnershipID(v)
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *OrderOwnerCreate) SetEmployeeID(v uuid.UUID) *OrderOwnerCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetSharePercent sets the "share_percent" field.
func (_c *OrderOwnerCreate) SetSharePercent(v float64) *OrderOwnerCreate {
	_c.mutation.SetSharePercent(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OrderOwnerCreate) SetID(v uuid.UUID) *OrderOwnerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderOwnerCreate) SetNillableID(v *uuid.UUID) *OrderOwnerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwnership sets the "ownership" edge to the OrderOwnership entity.
func (_c *OrderOwnerCreate) SetOwnership(v *OrderOwnership) *OrderOwnerCreate {
	return _c.SetOwnershipID(v.ID)
}

// Mutation returns the OrderOwnerMutation object of the builder.
func (_c *OrderOwnerCreate) Mutation() *OrderOwnerMutation {
	return _c.mutation
}

// Save creates the OrderOwner in the database.
func (_c *OrderOwnerCreate) Save(ctx context.Context) (*OrderOwner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderOwnerCreate) SaveX(ctx context.Context) *OrderOwner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderOwnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderOwnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderOwnerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orderowner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := orderowner.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderOwnerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "OrderOwner.created_at"`)}
	}
	if _, ok := _c.mutation.OwnershipID(); !ok {
		return &ValidationError{Name: "ownership_id", err: errors.New(`repo: missing required field "OrderOwner.ownership_id"`)}
	}
	if _, ok := _c.mutation.EmployeeID(); !ok {
		return &ValidationError{Name: "employee_id", err: errors.New(`repo: missing required field "OrderOwner.employee_id"`)}
	}
	if _, ok := _c.mutation.SharePercent(); !ok {
		return &ValidationError{Name: "share_percent", err: errors.New(`repo: missing required field "OrderOwner.share_percent"`)}
	}
	if len(_c.mutation.OwnershipIDs()) == 0 {
		return &ValidationError{Name: "ownership", err: errors.New(`repo: missing required edge "OrderOwner.ownership"`)}
	}
	return nil
}

func (_c *OrderOwnerCreate) sqlSave(ctx context.Context) (*OrderOwner, error) {
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

func (_c *OrderOwnerCreate) createSpec() (*OrderOwner, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderOwner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderowner.Table, sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orderowner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EmployeeID(); ok {
		_spec.SetField(orderowner.FieldEmployeeID, field.TypeUUID, value)
		_node.EmployeeID = value
	}
	if value, ok := _c.mutation.SharePercent(); ok {
		_spec.SetField(orderowner.FieldSharePercent, field.TypeFloat64, value)
		_node.SharePercent = value
	}
	if nodes := _c.mutation.OwnershipIDs(); len(nodes) > 0 {
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
		_node.OwnershipID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderOwnerCreateBulk is the builder for creating many OrderOwner entities in bulk.
type OrderOwnerCreateBulk struct {
	config
	err      error
	builders []*OrderOwnerCreate
}

// Save creates the OrderOwner entities in the database.
func (_c *OrderOwnerCreateBulk) Save(ctx context.Context) ([]*OrderOwner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderOwner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderOwnerMutation)
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
func (_c *OrderOwnerCreateBulk) SaveX(ctx context.Context) []*OrderOwner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderOwnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderOwnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
