// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
)

// TipLedgerEntryUpdate is the builder for updating TipLedgerEntry entities.
type TipLedgerEntryUpdate struct {
	config
	hooks    []Hook
	mutation *TipLedgerEntryMutation
}

// Where appends a list predicates to the TipLedgerEntryUpdate builder.
func (_u *TipLedgerEntryUpdate) Where(ps ...predicate.TipLedgerEntry) *TipLedgerEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TipLedgerEntryMutation object of the builder.
func (_u *TipLedgerEntryUpdate) Mutation() *TipLedgerEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TipLedgerEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipLedgerEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TipLedgerEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipLedgerEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TipLedgerEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tipledgerentry.Table, tipledgerentry.Columns, sqlgraph.NewFieldSpec(tipledgerentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(tipledgerentry.FieldSourceID, field.TypeUUID)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(tipledgerentry.FieldOrderID, field.TypeUUID)
	}
	if _u.mutation.AdjustmentIDCleared() {
		_spec.ClearField(tipledgerentry.FieldAdjustmentID, field.TypeUUID)
	}
	if _u.mutation.MemoCleared() {
		_spec.ClearField(tipledgerentry.FieldMemo, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TipLedgerEntryUpdateOne is the builder for updating a single TipLedgerEntry entity.
type TipLedgerEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TipLedgerEntryMutation
}

// Mutation returns the TipLedgerEntryMutation object of the builder.
func (_u *TipLedgerEntryUpdateOne) Mutation() *TipLedgerEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TipLedgerEntryUpdate builder.
func (_u *TipLedgerEntryUpdateOne) Where(ps ...predicate.TipLedgerEntry) *TipLedgerEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TipLedgerEntryUpdateOne) Select(field string, fields ...string) *TipLedgerEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TipLedgerEntry entity.
func (_u *TipLedgerEntryUpdateOne) Save(ctx context.Context) (*TipLedgerEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipLedgerEntryUpdateOne) SaveX(ctx context.Context) *TipLedgerEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TipLedgerEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipLedgerEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TipLedgerEntryUpdateOne) sqlSave(ctx context.Context) (_node *TipLedgerEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(tipledgerentry.Table, tipledgerentry.Columns, sqlgraph.NewFieldSpec(tipledgerentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TipLedgerEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tipledgerentry.FieldID)
		for _, f := range fields {
			if !tipledgerentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tipledgerentry.FieldID {
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
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(tipledgerentry.FieldSourceID, field.TypeUUID)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(tipledgerentry.FieldOrderID, field.TypeUUID)
	}
	if _u.mutation.AdjustmentIDCleared() {
		_spec.ClearField(tipledgerentry.FieldAdjustmentID, field.TypeUUID)
	}
	if _u.mutation.MemoCleared() {
		_spec.ClearField(tipledgerentry.FieldMemo, field.TypeString)
	}
	_node = &TipLedgerEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tipledgerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
