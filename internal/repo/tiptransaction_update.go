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
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tiptransaction"
	"github.com/google/uuid"
)

// TipTransactionUpdate is the builder for updating TipTransaction entities.
type TipTransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TipTransactionMutation
}

// Where appends a list predicates to the TipTransactionUpdate builder.
func (_u *TipTransactionUpdate) Where(ps ...predicate.TipTransaction) *TipTransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipTransactionUpdate) SetUpdatedAt(v time.Time) *TipTransactionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TipTransactionUpdate) SetDeletedAt(v time.Time) *TipTransactionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillableDeletedAt(v *time.Time) *TipTransactionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TipTransactionUpdate) ClearDeletedAt() *TipTransactionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipTransactionUpdate) SetLocationID(v uuid.UUID) *TipTransactionUpdate {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillableLocationID(v *uuid.UUID) *TipTransactionUpdate {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *TipTransactionUpdate) SetAmountCents(v int64) *TipTransactionUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillableAmountCents(v *int64) *TipTransactionUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *TipTransactionUpdate) AddAmountCents(v int64) *TipTransactionUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TipTransactionUpdate) SetSource(v tiptransaction.Source) *TipTransactionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillableSource(v *tiptransaction.Source) *TipTransactionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *TipTransactionUpdate) SetOrderID(v uuid.UUID) *TipTransactionUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillableOrderID(v *uuid.UUID) *TipTransactionUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *TipTransactionUpdate) ClearOrderID() *TipTransactionUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetPaymentID sets the "payment_id" field.
func (_u *TipTransactionUpdate) SetPaymentID(v uuid.UUID) *TipTransactionUpdate {
	_u.mutation.SetPaymentID(v)
	return _u
}

// SetNillablePaymentID sets the "payment_id" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillablePaymentID(v *uuid.UUID) *TipTransactionUpdate {
	if v != nil {
		_u.SetPaymentID(*v)
	}
	return _u
}

// ClearPaymentID clears the value of the "payment_id" field.
func (_u *TipTransactionUpdate) ClearPaymentID() *TipTransactionUpdate {
	_u.mutation.ClearPaymentID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *TipTransactionUpdate) SetGroupID(v uuid.UUID) *TipTransactionUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillableGroupID(v *uuid.UUID) *TipTransactionUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *TipTransactionUpdate) ClearGroupID() *TipTransactionUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetSegmentID sets the "segment_id" field.
func (_u *TipTransactionUpdate) SetSegmentID(v uuid.UUID) *TipTransactionUpdate {
	_u.mutation.SetSegmentID(v)
	return _u
}

// SetNillableSegmentID sets the "segment_id" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillableSegmentID(v *uuid.UUID) *TipTransactionUpdate {
	if v != nil {
		_u.SetSegmentID(*v)
	}
	return _u
}

// ClearSegmentID clears the value of the "segment_id" field.
func (_u *TipTransactionUpdate) ClearSegmentID() *TipTransactionUpdate {
	_u.mutation.ClearSegmentID()
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *TipTransactionUpdate) SetCollectedAt(v time.Time) *TipTransactionUpdate {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *TipTransactionUpdate) SetNillableCollectedAt(v *time.Time) *TipTransactionUpdate {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// Mutation returns the TipTransactionMutation object of the builder.
func (_u *TipTransactionUpdate) Mutation() *TipTransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TipTransactionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipTransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TipTransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipTransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipTransactionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tiptransaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipTransactionUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := tiptransaction.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "TipTransaction.source": %w`, err)}
		}
	}
	return nil
}

func (_u *TipTransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tiptransaction.Table, tiptransaction.Columns, sqlgraph.NewFieldSpec(tiptransaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tiptransaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(tiptransaction.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(tiptransaction.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tiptransaction.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(tiptransaction.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(tiptransaction.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(tiptransaction.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(tiptransaction.FieldOrderID, field.TypeUUID, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(tiptransaction.FieldOrderID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PaymentID(); ok {
		_spec.SetField(tiptransaction.FieldPaymentID, field.TypeUUID, value)
	}
	if _u.mutation.PaymentIDCleared() {
		_spec.ClearField(tiptransaction.FieldPaymentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(tiptransaction.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(tiptransaction.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SegmentID(); ok {
		_spec.SetField(tiptransaction.FieldSegmentID, field.TypeUUID, value)
	}
	if _u.mutation.SegmentIDCleared() {
		_spec.ClearField(tiptransaction.FieldSegmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(tiptransaction.FieldCollectedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tiptransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TipTransactionUpdateOne is the builder for updating a single TipTransaction entity.
type TipTransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TipTransactionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TipTransactionUpdateOne) SetUpdatedAt(v time.Time) *TipTransactionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TipTransactionUpdateOne) SetDeletedAt(v time.Time) *TipTransactionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillableDeletedAt(v *time.Time) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TipTransactionUpdateOne) ClearDeletedAt() *TipTransactionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetLocationID sets the "location_id" field.
func (_u *TipTransactionUpdateOne) SetLocationID(v uuid.UUID) *TipTransactionUpdateOne {
	_u.mutation.SetLocationID(v)
	return _u
}

// SetNillableLocationID sets the "location_id" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillableLocationID(v *uuid.UUID) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetLocationID(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *TipTransactionUpdateOne) SetAmountCents(v int64) *TipTransactionUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillableAmountCents(v *int64) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *TipTransactionUpdateOne) AddAmountCents(v int64) *TipTransactionUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *TipTransactionUpdateOne) SetSource(v tiptransaction.Source) *TipTransactionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillableSource(v *tiptransaction.Source) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *TipTransactionUpdateOne) SetOrderID(v uuid.UUID) *TipTransactionUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillableOrderID(v *uuid.UUID) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *TipTransactionUpdateOne) ClearOrderID() *TipTransactionUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetPaymentID sets the "payment_id" field.
func (_u *TipTransactionUpdateOne) SetPaymentID(v uuid.UUID) *TipTransactionUpdateOne {
	_u.mutation.SetPaymentID(v)
	return _u
}

// SetNillablePaymentID sets the "payment_id" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillablePaymentID(v *uuid.UUID) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetPaymentID(*v)
	}
	return _u
}

// ClearPaymentID clears the value of the "payment_id" field.
func (_u *TipTransactionUpdateOne) ClearPaymentID() *TipTransactionUpdateOne {
	_u.mutation.ClearPaymentID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *TipTransactionUpdateOne) SetGroupID(v uuid.UUID) *TipTransactionUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillableGroupID(v *uuid.UUID) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *TipTransactionUpdateOne) ClearGroupID() *TipTransactionUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetSegmentID sets the "segment_id" field.
func (_u *TipTransactionUpdateOne) SetSegmentID(v uuid.UUID) *TipTransactionUpdateOne {
	_u.mutation.SetSegmentID(v)
	return _u
}

// SetNillableSegmentID sets the "segment_id" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillableSegmentID(v *uuid.UUID) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetSegmentID(*v)
	}
	return _u
}

// ClearSegmentID clears the value of the "segment_id" field.
func (_u *TipTransactionUpdateOne) ClearSegmentID() *TipTransactionUpdateOne {
	_u.mutation.ClearSegmentID()
	return _u
}

// SetCollectedAt sets the "collected_at" field.
func (_u *TipTransactionUpdateOne) SetCollectedAt(v time.Time) *TipTransactionUpdateOne {
	_u.mutation.SetCollectedAt(v)
	return _u
}

// SetNillableCollectedAt sets the "collected_at" field if the given value is not nil.
func (_u *TipTransactionUpdateOne) SetNillableCollectedAt(v *time.Time) *TipTransactionUpdateOne {
	if v != nil {
		_u.SetCollectedAt(*v)
	}
	return _u
}

// Mutation returns the TipTransactionMutation object of the builder.
func (_u *TipTransactionUpdateOne) Mutation() *TipTransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TipTransactionUpdate builder.
func (_u *TipTransactionUpdateOne) Where(ps ...predicate.TipTransaction) *TipTransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TipTransactionUpdateOne) Select(field string, fields ...string) *TipTransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TipTransaction entity.
func (_u *TipTransactionUpdateOne) Save(ctx context.Context) (*TipTransaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TipTransactionUpdateOne) SaveX(ctx context.Context) *TipTransaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TipTransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TipTransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TipTransactionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tiptransaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TipTransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := tiptransaction.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "TipTransaction.source": %w`, err)}
		}
	}
	return nil
}

func (_u *TipTransactionUpdateOne) sqlSave(ctx context.Context) (_node *TipTransaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tiptransaction.Table, tiptransaction.Columns, sqlgraph.NewFieldSpec(tiptransaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TipTransaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tiptransaction.FieldID)
		for _, f := range fields {
			if !tiptransaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tiptransaction.FieldID {
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
		_spec.SetField(tiptransaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(tiptransaction.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(tiptransaction.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LocationID(); ok {
		_spec.SetField(tiptransaction.FieldLocationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(tiptransaction.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(tiptransaction.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(tiptransaction.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(tiptransaction.FieldOrderID, field.TypeUUID, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(tiptransaction.FieldOrderID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PaymentID(); ok {
		_spec.SetField(tiptransaction.FieldPaymentID, field.TypeUUID, value)
	}
	if _u.mutation.PaymentIDCleared() {
		_spec.ClearField(tiptransaction.FieldPaymentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(tiptransaction.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(tiptransaction.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SegmentID(); ok {
		_spec.SetField(tiptransaction.FieldSegmentID, field.TypeUUID, value)
	}
	if _u.mutation.SegmentIDCleared() {
		_spec.ClearField(tiptransaction.FieldSegmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CollectedAt(); ok {
		_spec.SetField(tiptransaction.FieldCollectedAt, field.TypeTime, value)
	}
	_node = &TipTransaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tiptransaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
