// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
)

// TipAdjustmentDelete is the builder for deleting a TipAdjustment entity.
type TipAdjustmentDelete struct {
	config
	hooks    []Hook
	mutation *TipAdjustmentMutation
}

// Where appends a list predicates to the TipAdjustmentDelete builder.
func (_d *TipAdjustmentDelete) Where(ps ...predicate.TipAdjustment) *TipAdjustmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TipAdjustmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TipAdjustmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TipAdjustmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(tipadjustment.Table, sqlgraph.NewFieldSpec(tipadjustment.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TipAdjustmentDeleteOne is the builder for deleting a single TipAdjustment entity.
type TipAdjustmentDeleteOne struct {
	_d *TipAdjustmentDelete
}

// Where appends a list predicates to the TipAdjustmentDelete builder.
func (_d *TipAdjustmentDeleteOne) Where(ps ...predicate.TipAdjustment) *TipAdjustmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TipAdjustmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{tipadjustment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TipAdjustmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
