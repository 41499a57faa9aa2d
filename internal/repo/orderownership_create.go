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

// OrderOwnershipCreate is the builder for creating a OrderOwnership entity.
type OrderOwnershipCreate struct {
	config
	mutation *OrderOwnershipMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderOwnershipCreate) SetCreatedAt(v time.Time) *OrderOwnershipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderOwnershipCreate) SetNillableCreatedAt(v *time.Time) *OrderOwnershipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrderOwnershipCreate) SetUpdatedAt(v time.Time) *OrderOwnershipCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrderOwnershipCreate) SetNillableUpdatedAt(v *time.Time) *OrderOwnershipCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *OrderOwnershipCreate) SetOrderID(v uuid.UUID) *OrderOwnershipCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *OrderOwnershipCreate) SetLocationID(v uuid.UUID) *OrderOwnershipCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *OrderOwnershipCreate) SetIsActive(v bool) *OrderOwnershipCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *OrderOwnershipCreate) SetNillableIsActive(v *bool) *OrderOwnershipCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderOwnershipCreate) SetID(v uuid.UUID) *OrderOwnershipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderOwnershipCreate) SetNillableID(v *uuid.UUID) *OrderOwnershipCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddOwnerIDs adds the "owners" edge to the OrderOwner entity by IDs.
func (_c *OrderOwnershipCreate) AddOwnerIDs(ids ...uuid.UUID) *OrderOwnershipCreate {
	_c.mutation.AddOwnerIDs(ids...)
	return _c
}

// AddOwners adds the "owners" edges to the OrderOwner entity.
func (_c *OrderOwnershipCreate) AddOwners(v ...*OrderOwner) *OrderOwnershipCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOwnerIDs(ids...)
}

// Mutation returns the OrderOwnershipMutation object of the builder.
func (_c *OrderOwnershipCreate) Mutation() *OrderOwnershipMutation {
	return _c.mutation
}

// Save creates the OrderOwnership in the database.
func (_c *OrderOwnershipCreate) Save(ctx context.Context) (*OrderOwnership, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderOwnershipCreate) SaveX(ctx context.Context) *OrderOwnership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderOwnershipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderOwnershipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderOwnershipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orderownership.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := orderownership.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := orderownership.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := orderownership.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderOwnershipCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "OrderOwnership.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "OrderOwnership.updated_at"`)}
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`repo: missing required field "OrderOwnership.order_id"`)}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`repo: missing required field "OrderOwnership.location_id"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "OrderOwnership.is_active"`)}
	}
	return nil
}

func (_c *OrderOwnershipCreate) sqlSave(ctx context.Context) (*OrderOwnership, error) {
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

func (_c *OrderOwnershipCreate) createSpec() (*OrderOwnership, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderOwnership{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderownership.Table, sqlgraph.NewFieldSpec(orderownership.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orderownership.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(orderownership.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(orderownership.FieldOrderID, field.TypeUUID, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.LocationID(); ok {
		_spec.SetField(orderownership.FieldLocationID, field.TypeUUID, value)
		_node.LocationID = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(orderownership.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.OwnersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderownership.OwnersTable,
			Columns: []string{orderownership.OwnersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderowner.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderOwnershipCreateBulk is the builder for creating many OrderOwnership entities in bulk.
type OrderOwnershipCreateBulk struct {
	config
	err      error
	builders []*OrderOwnershipCreate
}

// Save creates the OrderOwnership entities in the database.
func (_c *OrderOwnershipCreateBulk) Save(ctx context.Context) ([]*OrderOwnership, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderOwnership, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderOwnershipMutation)
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
func (_c *OrderOwnershipCreateBulk) SaveX(ctx context.Context) []*OrderOwnership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderOwnershipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderOwnershipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
