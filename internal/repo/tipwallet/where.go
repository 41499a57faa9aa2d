// Code generated by ent, DO NOT EDIT.

package tipwallet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldEmployeeID, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldLocationID, v))
}

// BalanceCents applies equality check predicate on the "balance_cents" field. It's identical to BalanceCentsEQ.
func BalanceCents(v int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldBalanceCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLTE(FieldUpdatedAt, v))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDGT applies the GT predicate on the "employee_id" field.
func EmployeeIDGT(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGT(FieldEmployeeID, v))
}

// EmployeeIDGTE applies the GTE predicate on the "employee_id" field.
func EmployeeIDGTE(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGTE(FieldEmployeeID, v))
}

// EmployeeIDLT applies the LT predicate on the "employee_id" field.
func EmployeeIDLT(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLT(FieldEmployeeID, v))
}

// EmployeeIDLTE applies the LTE predicate on the "employee_id" field.
func EmployeeIDLTE(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLTE(FieldEmployeeID, v))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNotIn(FieldLocationID, vs...))
}

// LocationIDGT applies the GT predicate on the "location_id" field.
func LocationIDGT(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGT(FieldLocationID, v))
}

// LocationIDGTE applies the GTE predicate on the "location_id" field.
func LocationIDGTE(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGTE(FieldLocationID, v))
}

// LocationIDLT applies the LT predicate on the "location_id" field.
func LocationIDLT(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLT(FieldLocationID, v))
}

// LocationIDLTE applies the LTE predicate on the "location_id" field.
func LocationIDLTE(v uuid.UUID) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLTE(FieldLocationID, v))
}

// BalanceCentsEQ applies the EQ predicate on the "balance_cents" field.
func BalanceCentsEQ(v int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldEQ(FieldBalanceCents, v))
}

// BalanceCentsNEQ applies the NEQ predicate on the "balance_cents" field.
func BalanceCentsNEQ(v int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNEQ(FieldBalanceCents, v))
}

// BalanceCentsIn applies the In predicate on the "balance_cents" field.
func BalanceCentsIn(vs ...int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldIn(FieldBalanceCents, vs...))
}

// BalanceCentsNotIn applies the NotIn predicate on the "balance_cents" field.
func BalanceCentsNotIn(vs ...int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldNotIn(FieldBalanceCents, vs...))
}

// BalanceCentsGT applies the GT predicate on the "balance_cents" field.
func BalanceCentsGT(v int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGT(FieldBalanceCents, v))
}

// BalanceCentsGTE applies the GTE predicate on the "balance_cents" field.
func BalanceCentsGTE(v int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldGTE(FieldBalanceCents, v))
}

// BalanceCentsLT applies the LT predicate on the "balance_cents" field.
func BalanceCentsLT(v int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLT(FieldBalanceCents, v))
}

// BalanceCentsLTE applies the LTE predicate on the "balance_cents" field.
func BalanceCentsLTE(v int64) predicate.TipWallet {
	return predicate.TipWallet(sql.FieldLTE(FieldBalanceCents, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TipWallet) predicate.TipWallet {
	return predicate.TipWallet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TipWallet) predicate.TipWallet {
	return predicate.TipWallet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TipWallet) predicate.TipWallet {
	return predicate.TipWallet(sql.NotPredicates(p))
}
