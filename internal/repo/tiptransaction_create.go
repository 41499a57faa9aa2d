// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tiptransaction"
	"github.com/google/uuid"
)

// TipTransactionCreate is the builder for creating a TipTransaction entity.
type TipTransactionCreate struct {
	config
	mutation *TipTransactionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TipTransactionCreate) SetCreatedAt(v time.Time) *TipTransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillableCreatedAt(v *time.Time) *TipTransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TipTransactionCreate) SetUpdatedAt(v time.Time) *TipTransactionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillableUpdatedAt(v *time.Time) *TipTransactionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *TipTransactionCreate) SetDeletedAt(v time.Time) *TipTransactionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillableDeletedAt(v *time.Time) *TipTransactionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *TipTransactionCreate) SetLocationID(v uuid.UUID) *TipTransactionCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *TipTransactionCreate) SetAmountCents(v int64) *TipTransactionCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *TipTransactionCreate) SetSource(v tiptransaction.Source) *TipTransactionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillableSource(v *tiptransaction.Source) *TipTransactionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *TipTransactionCreate) SetOrderID(v uuid.UUID) *TipTransactionCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillableOrderID(v *uuid.UUID) *TipTransactionCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetPaymentID sets the "payment_id" field.
func (_c *TipTransactionCreate) SetPaymentID(v uuid.UUID) *TipTransactionCreate {
	_c.mutation.SetPaymentID(v)
	return _c
}

// SetNillablePaymentID sets the "payment_id" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillablePaymentID(v *uuid.UUID) *TipTransactionCreate {
	if v != nil {
		_c.SetPaymentID(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *TipTransactionCreate) SetGroupID(v uuid.UUID) *TipTransactionCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillableGroupID(v *uuid.UUID) *TipTransactionCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetSegmentID sets the "segment_id" field.
func (_c *TipTransactionCreate) SetSegmentID(v uuid.UUID) *TipTransactionCreate {
	_c.mutation.SetSegmentID(v)
	return _c
}

// SetNillableSegmentID sets the "segment_id" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillableSegmentID(v *uuid.UUID) *TipTransactionCreate {
	if v != nil {
		_c.SetSegmentID(*v)
	}
	return _c
}

// SetCollectedAt sets the "collected_at" field.
func (_c *TipTransactionCreate) SetCollectedAt(v time.Time) *TipTransactionCreate {
	_c.mutation.SetCollectedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TipTransactionCreate) SetID(v uuid.UUID) *TipTransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TipTransactionCreate) SetNillableID(v *uuid.UUID) *TipTransactionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TipTransactionMutation object of the builder.
func (_c *TipTransactionCreate) Mutation() *TipTransactionMutation {
	return _c.mutation
}

// Save creates the TipTransaction in the database.
func (_c *TipTransactionCreate) Save(ctx context.Context) (*TipTransaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TipTransactionCreate) SaveX(ctx context.Context) *TipTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipTransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipTransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TipTransactionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tiptransaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tiptransaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := tiptransaction.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tiptransaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TipTransactionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TipTransaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TipTransaction.updated_at"`)}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`repo: missing required field "TipTransaction.location_id"`)}
	}
	if _, ok := _c.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`repo: missing required field "TipTransaction.amount_cents"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`repo: missing required field "TipTransaction.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := tiptransaction.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "TipTransaction.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CollectedAt(); !ok {
		return &ValidationError{Name: "collected_at", err: errors.New(`repo: missing required field "TipTransaction.collected_at"`)}
	}
	return nil
}

func (_c *TipTransactionCreate) sqlSave(ctx context.Context) (*TipTransaction, error) {
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

func (_c *TipTransactionCreate) createSpec() (*TipTransaction, *sqlgraph.CreateSpec) {
	var (
		_node = &TipTransaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tiptransaction.Table, sqlgraph.NewFieldSpec(tiptransaction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tiptransaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tiptransaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(tiptransaction.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.LocationID(); ok {
		_spec.SetField(tiptransaction.FieldLocationID, field.TypeUUID, value)
		_node.LocationID = value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(tiptransaction.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(tiptransaction.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(tiptransaction.FieldOrderID, field.TypeUUID, value)
		_node.OrderID = &value
	}
	if value, ok := _c.mutation.PaymentID(); ok {
		_spec.SetField(tiptransaction.FieldPaymentID, field.TypeUUID, value)
		_node.PaymentID = &value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(tiptransaction.FieldGroupID, field.TypeUUID, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.SegmentID(); ok {
		_spec.SetField(tiptransaction.FieldSegmentID, field.TypeUUID, value)
		_node.SegmentID = &value
	}
	if value, ok := _c.mutation.CollectedAt(); ok {
		_spec.SetField(tiptransaction.FieldCollectedAt, field.TypeTime, value)
		_node.CollectedAt = value
	}
	return _node, _spec
}

// TipTransactionCreateBulk is the builder for creating many TipTransaction entities in bulk.
type TipTransactionCreateBulk struct {
	config
	err      error
	builders []*TipTransactionCreate
}

// Save creates the TipTransaction entities in the database.
func (_c *TipTransactionCreateBulk) Save(ctx context.Context) ([]*TipTransaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TipTransaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TipTransactionMutation)
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
func (_c *TipTransactionCreateBulk) SaveX(ctx context.Context) []*TipTransaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipTransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipTransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
