// Code generated by ent, DO NOT EDIT.

package tiptransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldDeletedAt, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldLocationID, v))
}

// AmountCents applies equality check predicate on the "amount_cents" field. It's identical to AmountCentsEQ.
func AmountCents(v int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldAmountCents, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldOrderID, v))
}

// PaymentID applies equality check predicate on the "payment_id" field. It's identical to PaymentIDEQ.
func PaymentID(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldPaymentID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldGroupID, v))
}

// SegmentID applies equality check predicate on the "segment_id" field. It's identical to SegmentIDEQ.
func SegmentID(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldSegmentID, v))
}

// CollectedAt applies equality check predicate on the "collected_at" field. It's identical to CollectedAtEQ.
func CollectedAt(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldCollectedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotNull(FieldDeletedAt))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldLocationID, vs...))
}

// LocationIDGT applies the GT predicate on the "location_id" field.
func LocationIDGT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldLocationID, v))
}

// LocationIDGTE applies the GTE predicate on the "location_id" field.
func LocationIDGTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldLocationID, v))
}

// LocationIDLT applies the LT predicate on the "location_id" field.
func LocationIDLT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldLocationID, v))
}

// LocationIDLTE applies the LTE predicate on the "location_id" field.
func LocationIDLTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldLocationID, v))
}

// AmountCentsEQ applies the EQ predicate on the "amount_cents" field.
func AmountCentsEQ(v int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldAmountCents, v))
}

// AmountCentsNEQ applies the NEQ predicate on the "amount_cents" field.
func AmountCentsNEQ(v int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldAmountCents, v))
}

// AmountCentsIn applies the In predicate on the "amount_cents" field.
func AmountCentsIn(vs ...int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldAmountCents, vs...))
}

// AmountCentsNotIn applies the NotIn predicate on the "amount_cents" field.
func AmountCentsNotIn(vs ...int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldAmountCents, vs...))
}

// AmountCentsGT applies the GT predicate on the "amount_cents" field.
func AmountCentsGT(v int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldAmountCents, v))
}

// AmountCentsGTE applies the GTE predicate on the "amount_cents" field.
func AmountCentsGTE(v int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldAmountCents, v))
}

// AmountCentsLT applies the LT predicate on the "amount_cents" field.
func AmountCentsLT(v int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldAmountCents, v))
}

// AmountCentsLTE applies the LTE predicate on the "amount_cents" field.
func AmountCentsLTE(v int64) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldAmountCents, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldSource, vs...))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotNull(FieldOrderID))
}

// PaymentIDEQ applies the EQ predicate on the "payment_id" field.
func PaymentIDEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldPaymentID, v))
}

// PaymentIDNEQ applies the NEQ predicate on the "payment_id" field.
func PaymentIDNEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldPaymentID, v))
}

// PaymentIDIn applies the In predicate on the "payment_id" field.
func PaymentIDIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldPaymentID, vs...))
}

// PaymentIDNotIn applies the NotIn predicate on the "payment_id" field.
func PaymentIDNotIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldPaymentID, vs...))
}

// PaymentIDGT applies the GT predicate on the "payment_id" field.
func PaymentIDGT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldPaymentID, v))
}

// PaymentIDGTE applies the GTE predicate on the "payment_id" field.
func PaymentIDGTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldPaymentID, v))
}

// PaymentIDLT applies the LT predicate on the "payment_id" field.
func PaymentIDLT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldPaymentID, v))
}

// PaymentIDLTE applies the LTE predicate on the "payment_id" field.
func PaymentIDLTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldPaymentID, v))
}

// PaymentIDIsNil applies the IsNil predicate on the "payment_id" field.
func PaymentIDIsNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIsNull(FieldPaymentID))
}

// PaymentIDNotNil applies the NotNil predicate on the "payment_id" field.
func PaymentIDNotNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotNull(FieldPaymentID))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDIsNil applies the IsNil predicate on the "group_id" field.
func GroupIDIsNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIsNull(FieldGroupID))
}

// GroupIDNotNil applies the NotNil predicate on the "group_id" field.
func GroupIDNotNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotNull(FieldGroupID))
}

// SegmentIDEQ applies the EQ predicate on the "segment_id" field.
func SegmentIDEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldSegmentID, v))
}

// SegmentIDNEQ applies the NEQ predicate on the "segment_id" field.
func SegmentIDNEQ(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldSegmentID, v))
}

// SegmentIDIn applies the In predicate on the "segment_id" field.
func SegmentIDIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldSegmentID, vs...))
}

// SegmentIDNotIn applies the NotIn predicate on the "segment_id" field.
func SegmentIDNotIn(vs ...uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldSegmentID, vs...))
}

// SegmentIDGT applies the GT predicate on the "segment_id" field.
func SegmentIDGT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldSegmentID, v))
}

// SegmentIDGTE applies the GTE predicate on the "segment_id" field.
func SegmentIDGTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldSegmentID, v))
}

// SegmentIDLT applies the LT predicate on the "segment_id" field.
func SegmentIDLT(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldSegmentID, v))
}

// SegmentIDLTE applies the LTE predicate on the "segment_id" field.
func SegmentIDLTE(v uuid.UUID) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldSegmentID, v))
}

// SegmentIDIsNil applies the IsNil predicate on the "segment_id" field.
func SegmentIDIsNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIsNull(FieldSegmentID))
}

// SegmentIDNotNil applies the NotNil predicate on the "segment_id" field.
func SegmentIDNotNil() predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotNull(FieldSegmentID))
}

// CollectedAtEQ applies the EQ predicate on the "collected_at" field.
func CollectedAtEQ(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldEQ(FieldCollectedAt, v))
}

// CollectedAtNEQ applies the NEQ predicate on the "collected_at" field.
func CollectedAtNEQ(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNEQ(FieldCollectedAt, v))
}

// CollectedAtIn applies the In predicate on the "collected_at" field.
func CollectedAtIn(vs ...time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldIn(FieldCollectedAt, vs...))
}

// CollectedAtNotIn applies the NotIn predicate on the "collected_at" field.
func CollectedAtNotIn(vs ...time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldNotIn(FieldCollectedAt, vs...))
}

// CollectedAtGT applies the GT predicate on the "collected_at" field.
func CollectedAtGT(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGT(FieldCollectedAt, v))
}

// CollectedAtGTE applies the GTE predicate on the "collected_at" field.
func CollectedAtGTE(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldGTE(FieldCollectedAt, v))
}

// CollectedAtLT applies the LT predicate on the "collected_at" field.
func CollectedAtLT(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLT(FieldCollectedAt, v))
}

// CollectedAtLTE applies the LTE predicate on the "collected_at" field.
func CollectedAtLTE(v time.Time) predicate.TipTransaction {
	return predicate.TipTransaction(sql.FieldLTE(FieldCollectedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TipTransaction) predicate.TipTransaction {
	return predicate.TipTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TipTransaction) predicate.TipTransaction {
	return predicate.TipTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TipTransaction) predicate.TipTransaction {
	return predicate.TipTransaction(sql.NotPredicates(p))
}
