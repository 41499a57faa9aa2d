// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/locationsetting"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
)

// LocationSettingDelete is the builder for deleting a LocationSetting entity.
type LocationSettingDelete struct {
	config
	hooks    []Hook
	mutation *LocationSettingMutation
}

// Where appends a list predicates to the LocationSettingDelete builder.
func (_d *LocationSettingDelete) Where(ps ...predicate.LocationSetting) *LocationSettingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LocationSettingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LocationSettingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LocationSettingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(locationsetting.Table, sqlgraph.NewFieldSpec(locationsetting.FieldID, field.TypeUUID))
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

// LocationSettingDeleteOne is the builder for deleting a single LocationSetting entity.
type LocationSettingDeleteOne struct {
	_d *LocationSettingDelete
}

// Where appends a list predicates to the LocationSettingDelete builder.
func (_d *LocationSettingDeleteOne) Where(ps ...predicate.LocationSetting) *LocationSettingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LocationSettingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{locationsetting.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LocationSettingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
