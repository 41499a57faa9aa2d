// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipdebt"
	"github.com/google/uuid"
)

// TipDebtCreate is the builder for creating a TipDebt entity.
type TipDebtCreate struct {
	config
	mutation *TipDebtMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TipDebtCreate) SetCreatedAt(v time.Time) *TipDebtCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TipDebtCreate) SetNillableCreatedAt(v *time.Time) *TipDebtCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TipDebtCreate) SetUpdatedAt(v time.Time) *TipDebtCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TipDebtCreate) SetNillableUpdatedAt(v *time.Time) *TipDebtCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *TipDebtCreate) SetLocationID(v uuid.UUID) *TipDebtCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *TipDebtCreate) SetEmployeeID(v uuid.UUID) *TipDebtCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetPaymentID sets the "payment_id" field.
func (_c *TipDebtCreate) SetPaymentID(v uuid.UUID) *TipDebtCreate {
	_c.mutation.SetPaymentID(v)
	return _c
}

// SetOriginalAmountCents sets the "original_amount_cents" field.
func (_c *TipDebtCreate) SetOriginalAmountCents(v int64) *TipDebtCreate {
	_c.mutation.SetOriginalAmountCents(v)
	return _c
}

// SetRemainingCents sets the "remaining_cents" field.
func (_c *TipDebtCreate) SetRemainingCents(v int64) *TipDebtCreate {
	_c.mutation.SetRemainingCents(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TipDebtCreate) SetStatus(v tipdebt.Status) *TipDebtCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TipDebtCreate) SetNillableStatus(v *tipdebt.Status) *TipDebtCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *TipDebtCreate) SetResolvedAt(v time.Time) *TipDebtCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *TipDebtCreate) SetNillableResolvedAt(v *time.Time) *TipDebtCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TipDebtCreate) SetID(v uuid.UUID) *TipDebtCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TipDebtCreate) SetNillableID(v *uuid.UUID) *TipDebtCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TipDebtMutation object of the builder.
func (_c *TipDebtCreate) Mutation() *TipDebtMutation {
	return _c.mutation
}

// Save creates the TipDebt in the database.
func (_c *TipDebtCreate) Save(ctx context.Context) (*TipDebt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TipDebtCreate) SaveX(ctx context.Context) *TipDebt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipDebtCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipDebtCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TipDebtCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tipdebt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tipdebt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := tipdebt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tipdebt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TipDebtCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TipDebt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TipDebt.updated_at"`)}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`repo: missing required field "TipDebt.location_id"`)}
	}
	if _, ok := _c.mutation.EmployeeID(); !ok {
		return &ValidationError{Name: "employee_id", err: errors.New(`repo: missing required field "TipDebt.employee_id"`)}
	}
	if _, ok := _c.mutation.PaymentID(); !ok {
		return &ValidationError{Name: "payment_id", err: errors.New(`repo: missing required field "TipDebt.payment_id"`)}
	}
	if _, ok := _c.mutation.OriginalAmountCents(); !ok {
		return &ValidationError{Name: "original_amount_cents", err: errors.New(`repo: missing required field "TipDebt.original_amount_cents"`)}
	}
	if _, ok := _c.mutation.RemainingCents(); !ok {
		return &ValidationError{Name: "remaining_cents", err: errors.New(`repo: missing required field "TipDebt.remaining_cents"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "TipDebt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tipdebt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TipDebt.status": %w`, err)}
		}
	}
	return nil
}

func (_c *TipDebtCreate) sqlSave(ctx context.Context) (*TipDebt, error) {
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

func (_c *TipDebtCreate) createSpec() (*TipDebt, *sqlgraph.CreateSpec) {
	var (
		_node = &TipDebt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tipdebt.Table, sqlgraph.NewFieldSpec(tipdebt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tipdebt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tipdebt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LocationID(); ok {
		_spec.SetField(tipdebt.FieldLocationID, field.TypeUUID, value)
		_node.LocationID = value
	}
	if value, ok := _c.mutation.EmployeeID(); ok {
		_spec.SetField(tipdebt.FieldEmployeeID, field.TypeUUID, value)
		_node.EmployeeID = value
	}
	if value, ok := _c.mutation.PaymentID(); ok {
		_spec.SetField(tipdebt.FieldPaymentID, field.TypeUUID, value)
		_node.PaymentID = value
	}
	if value, ok := _c.mutation.OriginalAmountCents(); ok {
		_spec.SetField(tipdebt.FieldOriginalAmountCents, field.TypeInt64, value)
		_node.OriginalAmountCents = value
	}
	if value, ok := _c.mutation.RemainingCents(); ok {
		_spec.SetField(tipdebt.FieldRemainingCents, field.TypeInt64, value)
		_node.RemainingCents = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tipdebt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(tipdebt.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// TipDebtCreateBulk is the builder for creating many TipDebt entities in bulk.
type TipDebtCreateBulk struct {
	config
	err      error
	builders []*TipDebtCreate
}

// Save creates the TipDebt entities in the database.
func (_c *TipDebtCreateBulk) Save(ctx context.Context) ([]*TipDebt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TipDebt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TipDebtMutation)
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
func (_c *TipDebtCreateBulk) SaveX(ctx context.Context) []*TipDebt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipDebtCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipDebtCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
