// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/locationsetting"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// LocationSettingUpdate is the builder for updating LocationSetting entities.
type LocationSettingUpdate struct {
	config
	hooks    []Hook
	mutation *LocationSettingMutation
}

// Where appends a list predicates to the LocationSettingUpdate builder.
func (_u *LocationSettingUpdate) Where(ps ...predicate.LocationSetting) *LocationSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LocationSettingUpdate) SetUpdatedAt(v time.Time) *LocationSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *LocationSettingUpdate) SetLocationID(v uuid.UUID) *LocationSettingUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *LocationSettingUpdate) SetNillableLocationID(v *uuid.UUID) *LocationSettingUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *LocationSettingUpdate) SetSettings(v []byte) *LocationSettingUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *LocationSettingUpdate) ClearSettings() *LocationSettingUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// Mutation returns the LocationSettingMutation object of the builder.
func (_u *LocationSettingUpdate) Mutation() *LocationSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LocationSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LocationSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LocationSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := locationsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LocationSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(locationsetting.Table, locationsetting.Columns, sqlgraph.NewFieldSpec(locationsetting.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(locationsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(locationsetting.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(locationsetting.FieldSettings, field.TypeBytes, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(locationsetting.FieldSettings, field.TypeBytes)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{locationsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LocationSettingUpdateOne is the builder for updating a single LocationSetting entity.
type LocationSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocationSettingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LocationSettingUpdateOne) SetUpdatedAt(v time.Time) *LocationSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *LocationSettingUpdateOne) SetLocationID(v uuid.UUID) *LocationSettingUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *LocationSettingUpdateOne) SetNillableLocationID(v *uuid.UUID) *LocationSettingUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *LocationSettingUpdateOne) SetSettings(v []byte) *LocationSettingUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *LocationSettingUpdateOne) ClearSettings() *LocationSettingUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// Mutation returns the LocationSettingMutation object of the builder.
func (_u *LocationSettingUpdateOne) Mutation() *LocationSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the LocationSettingUpdate builder.
func (_u *LocationSettingUpdateOne) Where(ps ...predicate.LocationSetting) *LocationSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LocationSettingUpdateOne) Select(field string, fields ...string) *LocationSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LocationSetting entity.
func (_u *LocationSettingUpdateOne) Save(ctx context.Context) (*LocationSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocationSettingUpdateOne) SaveX(ctx context.Context) *LocationSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LocationSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocationSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LocationSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := locationsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LocationSettingUpdateOne) sqlSave(ctx context.Context) (_node *LocationSetting, err error) {
	_spec := sqlgraph.NewUpdateSpec(locationsetting.Table, locationsetting.Columns, sqlgraph.NewFieldSpec(locationsetting.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LocationSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, locationsetting.FieldID)
		for _, f := range fields {
			if !locationsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != locationsetting.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(locationsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(locationsetting.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(locationsetting.FieldSettings, field.TypeBytes, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(locationsetting.FieldSettings, field.TypeBytes)
	}
	_node = &LocationSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{locationsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
