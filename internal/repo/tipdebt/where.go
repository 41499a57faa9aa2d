// Code generated by ent, DO NOT EDIT.

package tipdebt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldUpdatedAt, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldLocationID, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldEmployeeID, v))
}

// PaymentID applies equality check predicate on the "payment_id" field. It's identical to PaymentIDEQ.
func PaymentID(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldPaymentID, v))
}

// OriginalAmountCents applies equality check predicate on the "original_amount_cents" field. It's identical to OriginalAmountCentsEQ.
func OriginalAmountCents(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldOriginalAmountCents, v))
}

// RemainingCents applies equality check predicate on the "remaining_cents" field. It's identical to RemainingCentsEQ.
func RemainingCents(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldRemainingCents, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldUpdatedAt, v))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldLocationID, vs...))
}

// LocationIDGT applies the GT predicate on the "location_id" field.
func LocationIDGT(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldLocationID, v))
}

// LocationIDGTE applies the GTE predicate on the "location_id" field.
func LocationIDGTE(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldLocationID, v))
}

// LocationIDLT applies the LT predicate on the "location_id" field.
func LocationIDLT(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldLocationID, v))
}

// LocationIDLTE applies the LTE predicate on the "location_id" field.
func LocationIDLTE(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldLocationID, v))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDGT applies the GT predicate on the "employee_id" field.
func EmployeeIDGT(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldEmployeeID, v))
}

// EmployeeIDGTE applies the GTE predicate on the "employee_id" field.
func EmployeeIDGTE(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldEmployeeID, v))
}

// EmployeeIDLT applies the LT predicate on the "employee_id" field.
func EmployeeIDLT(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldEmployeeID, v))
}

// EmployeeIDLTE applies the LTE predicate on the "employee_id" field.
func EmployeeIDLTE(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldEmployeeID, v))
}

// PaymentIDEQ applies the EQ predicate on the "payment_id" field.
func PaymentIDEQ(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldPaymentID, v))
}

// PaymentIDNEQ applies the NEQ predicate on the "payment_id" field.
func PaymentIDNEQ(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldPaymentID, v))
}

// PaymentIDIn applies the In predicate on the "payment_id" field.
func PaymentIDIn(vs ...uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldPaymentID, vs...))
}

// PaymentIDNotIn applies the NotIn predicate on the "payment_id" field.
func PaymentIDNotIn(vs ...uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldPaymentID, vs...))
}

// PaymentIDGT applies the GT predicate on the "payment_id" field.
func PaymentIDGT(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldPaymentID, v))
}

// PaymentIDGTE applies the GTE predicate on the "payment_id" field.
func PaymentIDGTE(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldPaymentID, v))
}

// PaymentIDLT applies the LT predicate on the "payment_id" field.
func PaymentIDLT(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldPaymentID, v))
}

// PaymentIDLTE applies the LTE predicate on the "payment_id" field.
func PaymentIDLTE(v uuid.UUID) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldPaymentID, v))
}

// OriginalAmountCentsEQ applies the EQ predicate on the "original_amount_cents" field.
func OriginalAmountCentsEQ(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldOriginalAmountCents, v))
}

// OriginalAmountCentsNEQ applies the NEQ predicate on the "original_amount_cents" field.
func OriginalAmountCentsNEQ(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldOriginalAmountCents, v))
}

// OriginalAmountCentsIn applies the In predicate on the "original_amount_cents" field.
func OriginalAmountCentsIn(vs ...int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldOriginalAmountCents, vs...))
}

// OriginalAmountCentsNotIn applies the NotIn predicate on the "original_amount_cents" field.
func OriginalAmountCentsNotIn(vs ...int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldOriginalAmountCents, vs...))
}

// OriginalAmountCentsGT applies the GT predicate on the "original_amount_cents" field.
func OriginalAmountCentsGT(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldOriginalAmountCents, v))
}

// OriginalAmountCentsGTE applies the GTE predicate on the "original_amount_cents" field.
func OriginalAmountCentsGTE(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldOriginalAmountCents, v))
}

// OriginalAmountCentsLT applies the LT predicate on the "original_amount_cents" field.
func OriginalAmountCentsLT(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldOriginalAmountCents, v))
}

// OriginalAmountCentsLTE applies the LTE predicate on the "original_amount_cents" field.
func OriginalAmountCentsLTE(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldOriginalAmountCents, v))
}

// RemainingCentsEQ applies the EQ predicate on the "remaining_cents" field.
func RemainingCentsEQ(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldRemainingCents, v))
}

// RemainingCentsNEQ applies the NEQ predicate on the "remaining_cents" field.
func RemainingCentsNEQ(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldRemainingCents, v))
}

// RemainingCentsIn applies the In predicate on the "remaining_cents" field.
func RemainingCentsIn(vs ...int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldRemainingCents, vs...))
}

// RemainingCentsNotIn applies the NotIn predicate on the "remaining_cents" field.
func RemainingCentsNotIn(vs ...int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldRemainingCents, vs...))
}

// RemainingCentsGT applies the GT predicate on the "remaining_cents" field.
func RemainingCentsGT(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldRemainingCents, v))
}

// RemainingCentsGTE applies the GTE predicate on the "remaining_cents" field.
func RemainingCentsGTE(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldRemainingCents, v))
}

// RemainingCentsLT applies the LT predicate on the "remaining_cents" field.
func RemainingCentsLT(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldRemainingCents, v))
}

// RemainingCentsLTE applies the LTE predicate on the "remaining_cents" field.
func RemainingCentsLTE(v int64) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldRemainingCents, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.TipDebt {
	return predicate.TipDebt(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.TipDebt {
	return predicate.TipDebt(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.TipDebt {
	return predicate.TipDebt(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TipDebt) predicate.TipDebt {
	return predicate.TipDebt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TipDebt) predicate.TipDebt {
	return predicate.TipDebt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TipDebt) predicate.TipDebt {
	return predicate.TipDebt(sql.NotPredicates(p))
}
