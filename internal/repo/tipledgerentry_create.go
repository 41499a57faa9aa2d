// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
	"github.com/google/uuid"
)

// TipLedgerEntryCreate is the builder for creating a TipLedgerEntry entity.
type TipLedgerEntryCreate struct {
	config
	mutation *TipLedgerEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TipLedgerEntryCreate) SetCreatedAt(v time.Time) *TipLedgerEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TipLedgerEntryCreate) SetNillableCreatedAt(v *time.Time) *TipLedgerEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLocationID sets the "location_id" field.
func (_c *TipLedgerEntryCreate) SetLocationID(v uuid.UUID) *TipLedgerEntryCreate {
	_c.mutation.SetLocationID(v)
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *TipLedgerEntryCreate) SetEmployeeID(v uuid.UUID) *TipLedgerEntryCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetEntryType sets the "entry_type" field.
func (_c *TipLedgerEntryCreate) SetEntryType(v tipledgerentry.EntryType) *TipLedgerEntryCreate {
	_c.mutation.SetEntryType(v)
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *TipLedgerEntryCreate) SetAmountCents(v int64) *TipLedgerEntryCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *TipLedgerEntryCreate) SetSourceType(v tipledgerentry.SourceType) *TipLedgerEntryCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *TipLedgerEntryCreate) SetSourceID(v uuid.UUID) *TipLedgerEntryCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *TipLedgerEntryCreate) SetNillableSourceID(v *uuid.UUID) *TipLedgerEntryCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *TipLedgerEntryCreate) SetOrderID(v uuid.UUID) *TipLedgerEntryCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *TipLedgerEntryCreate) SetNillableOrderID(v *uuid.UUID) *TipLedgerEntryCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetAdjustmentID sets the "adjustment_id" field.
func (_c *TipLedgerEntryCreate) SetAdjustmentID(v uuid.UUID) *TipLedgerEntryCreate {
	_c.mutation.SetAdjustmentID(v)
	return _c
}

// SetNillableAdjustmentID sets the "adjustment_id" field if the given value is not nil.
func (_c *TipLedgerEntryCreate) SetNillableAdjustmentID(v *uuid.UUID) *TipLedgerEntryCreate {
	if v != nil {
		_c.SetAdjustmentID(*v)
	}
	return _c
}

// SetMemo sets the "memo" field.
func (_c *TipLedgerEntryCreate) SetMemo(v string) *TipLedgerEntryCreate {
	_c.mutation.SetMemo(v)
	return _c
}

// SetNillableMemo sets the "memo" field if the given value is not nil.
func (_c *TipLedgerEntryCreate) SetNillableMemo(v *string) *TipLedgerEntryCreate {
	if v != nil {
		_c.SetMemo(*v)
	}
	return _c
}

// SetBalanceBefore sets the "balance_before" field.
func (_c *TipLedgerEntryCreate) SetBalanceBefore(v int64) *TipLedgerEntryCreate {
	_c.mutation.SetBalanceBefore(v)
	return _c
}

// SetBalanceAfter sets the "balance_after" field.
func (_c *TipLedgerEntryCreate) SetBalanceAfter(v int64) *TipLedgerEntryCreate {
	_c.mutation.SetBalanceAfter(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TipLedgerEntryCreate) SetID(v uuid.UUID) *TipLedgerEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TipLedgerEntryCreate) SetNillableID(v *uuid.UUID) *TipLedgerEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TipLedgerEntryMutation object of the builder.
func (_c *TipLedgerEntryCreate) Mutation() *TipLedgerEntryMutation {
	return _c.mutation
}

// Save creates the TipLedgerEntry in the database.
func (_c *TipLedgerEntryCreate) Save(ctx context.Context) (*TipLedgerEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TipLedgerEntryCreate) SaveX(ctx context.Context) *TipLedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipLedgerEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipLedgerEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TipLedgerEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tipledgerentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tipledgerentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TipLedgerEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TipLedgerEntry.created_at"`)}
	}
	if _, ok := _c.mutation.LocationID(); !ok {
		return &ValidationError{Name: "location_id", err: errors.New(`repo: missing required field "TipLedgerEntry.location_id"`)}
	}
	if _, ok := _c.mutation.EmployeeID(); !ok {
		return &ValidationError{Name: "employee_id", err: errors.New(`repo: missing required field "TipLedgerEntry.employee_id"`)}
	}
	if _, ok := _c.mutation.EntryType(); !ok {
		return &ValidationError{Name: "entry_type", err: errors.New(`repo: missing required field "TipLedgerEntry.entry_type"`)}
	}
	if v, ok := _c.mutation.EntryType(); ok {
		if err := tipledgerentry.EntryTypeValidator(v); err != nil {
			return &ValidationError{Name: "entry_type", err: fmt.Errorf(`repo: validator failed for field "TipLedgerEntry.entry_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountCents(); !ok {
		return &ValidationError{Name: "amount_cents", err: errors.New(`repo: missing required field "TipLedgerEntry.amount_cents"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`repo: missing required field "TipLedgerEntry.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := tipledgerentry.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`repo: validator failed for field "TipLedgerEntry.source_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Memo(); ok {
		if err := tipledgerentry.MemoValidator(v); err != nil {
			return &ValidationError{Name: "memo", err: fmt.Errorf(`repo: validator failed for field "TipLedgerEntry.memo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BalanceBefore(); !ok {
		return &ValidationError{Name: "balance_before", err: errors.New(`repo: missing required field "TipLedgerEntry.balance_before"`)}
	}
	if _, ok := _c.mutation.BalanceAfter(); !ok {
		return &ValidationError{Name: "balance_after", err: errors.New(`repo: missing required field "TipLedgerEntry.balance_after"`)}
	}
	return nil
}

func (_c *TipLedgerEntryCreate) sqlSave(ctx context.Context) (*TipLedgerEntry, error) {
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

func (_c *TipLedgerEntryCreate) createSpec() (*TipLedgerEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &TipLedgerEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tipledgerentry.Table, sqlgraph.NewFieldSpec(tipledgerentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tipledgerentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LocationID(); ok {
		_spec.SetField(tipledgerentry.FieldLocationID, field.TypeUUID, value)
		_node.LocationID = value
	}
	if value, ok := _c.mutation.EmployeeID(); ok {
		_spec.SetField(tipledgerentry.FieldEmployeeID, field.TypeUUID, value)
		_node.EmployeeID = value
	}
	if value, ok := _c.mutation.EntryType(); ok {
		_spec.SetField(tipledgerentry.FieldEntryType, field.TypeEnum, value)
		_node.EntryType = value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(tipledgerentry.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(tipledgerentry.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(tipledgerentry.FieldSourceID, field.TypeUUID, value)
		_node.SourceID = &value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(tipledgerentry.FieldOrderID, field.TypeUUID, value)
		_node.OrderID = &value
	}
	if value, ok := _c.mutation.AdjustmentID(); ok {
		_spec.SetField(tipledgerentry.FieldAdjustmentID, field.TypeUUID, value)
		_node.AdjustmentID = &value
	}
	if value, ok := _c.mutation.Memo(); ok {
		_spec.SetField(tipledgerentry.FieldMemo, field.TypeString, value)
		_node.Memo = value
	}
	if value, ok := _c.mutation.BalanceBefore(); ok {
		_spec.SetField(tipledgerentry.FieldBalanceBefore, field.TypeInt64, value)
		_node.BalanceBefore = value
	}
	if value, ok := _c.mutation.BalanceAfter(); ok {
		_spec.SetField(tipledgerentry.FieldBalanceAfter, field.TypeInt64, value)
		_node.BalanceAfter = value
	}
	return _node, _spec
}

// TipLedgerEntryCreateBulk is the builder for creating many TipLedgerEntry entities in bulk.
type TipLedgerEntryCreateBulk struct {
	config
	err      error
	builders []*TipLedgerEntryCreate
}

// Save creates the TipLedgerEntry entities in the database.
func (_c *TipLedgerEntryCreateBulk) Save(ctx context.Context) ([]*TipLedgerEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TipLedgerEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TipLedgerEntryMutation)
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
func (_c *TipLedgerEntryCreateBulk) SaveX(ctx context.Context) []*TipLedgerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TipLedgerEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TipLedgerEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
