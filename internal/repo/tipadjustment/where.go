// Code generated by ent, DO NOT EDIT.

package tipadjustment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldCreatedAt, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldLocationID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldReason, v))
}

// AutoTriggered applies equality check predicate on the "auto_triggered" field. It's identical to AutoTriggeredEQ.
func AutoTriggered(v bool) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldAutoTriggered, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldGroupID, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldOrderID, v))
}

// RequestedBy applies equality check predicate on the "requested_by" field. It's identical to RequestedByEQ.
func RequestedBy(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldRequestedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLTE(FieldCreatedAt, v))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotIn(FieldLocationID, vs...))
}

// LocationIDGT applies the GT predicate on the "location_id" field.
func LocationIDGT(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGT(FieldLocationID, v))
}

// LocationIDGTE applies the GTE predicate on the "location_id" field.
func LocationIDGTE(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGTE(FieldLocationID, v))
}

// LocationIDLT applies the LT predicate on the "location_id" field.
func LocationIDLT(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLT(FieldLocationID, v))
}

// LocationIDLTE applies the LTE predicate on the "location_id" field.
func LocationIDLTE(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLTE(FieldLocationID, v))
}

// AdjustmentTypeEQ applies the EQ predicate on the "adjustment_type" field.
func AdjustmentTypeEQ(v AdjustmentType) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldAdjustmentType, v))
}

// AdjustmentTypeNEQ applies the NEQ predicate on the "adjustment_type" field.
func AdjustmentTypeNEQ(v AdjustmentType) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldAdjustmentType, v))
}

// AdjustmentTypeIn applies the In predicate on the "adjustment_type" field.
func AdjustmentTypeIn(vs ...AdjustmentType) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIn(FieldAdjustmentType, vs...))
}

// AdjustmentTypeNotIn applies the NotIn predicate on the "adjustment_type" field.
func AdjustmentTypeNotIn(vs ...AdjustmentType) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotIn(FieldAdjustmentType, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldContainsFold(FieldReason, v))
}

// BeforeIsNil applies the IsNil predicate on the "before" field.
func BeforeIsNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIsNull(FieldBefore))
}

// BeforeNotNil applies the NotNil predicate on the "before" field.
func BeforeNotNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotNull(FieldBefore))
}

// AfterIsNil applies the IsNil predicate on the "after" field.
func AfterIsNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIsNull(FieldAfter))
}

// AfterNotNil applies the NotNil predicate on the "after" field.
func AfterNotNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotNull(FieldAfter))
}

// AutoTriggeredEQ applies the EQ predicate on the "auto_triggered" field.
func AutoTriggeredEQ(v bool) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldAutoTriggered, v))
}

// AutoTriggeredNEQ applies the NEQ predicate on the "auto_triggered" field.
func AutoTriggeredNEQ(v bool) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldAutoTriggered, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDIsNil applies the IsNil predicate on the "group_id" field.
func GroupIDIsNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIsNull(FieldGroupID))
}

// GroupIDNotNil applies the NotNil predicate on the "group_id" field.
func GroupIDNotNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotNull(FieldGroupID))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotNull(FieldOrderID))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestedByGT applies the GT predicate on the "requested_by" field.
func RequestedByGT(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGT(FieldRequestedBy, v))
}

// RequestedByGTE applies the GTE predicate on the "requested_by" field.
func RequestedByGTE(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldGTE(FieldRequestedBy, v))
}

// RequestedByLT applies the LT predicate on the "requested_by" field.
func RequestedByLT(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLT(FieldRequestedBy, v))
}

// RequestedByLTE applies the LTE predicate on the "requested_by" field.
func RequestedByLTE(v uuid.UUID) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldLTE(FieldRequestedBy, v))
}

// RequestedByIsNil applies the IsNil predicate on the "requested_by" field.
func RequestedByIsNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldIsNull(FieldRequestedBy))
}

// RequestedByNotNil applies the NotNil predicate on the "requested_by" field.
func RequestedByNotNil() predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.FieldNotNull(FieldRequestedBy))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TipAdjustment) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TipAdjustment) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TipAdjustment) predicate.TipAdjustment {
	return predicate.TipAdjustment(sql.NotPredicates(p))
}
