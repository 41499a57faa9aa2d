// Code generated by ent, DO NOT EDIT.

package tipledgerentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// LocationID applies equality check predicate on the "location_id" field. It's identical to LocationIDEQ.
func LocationID(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldLocationID, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldEmployeeID, v))
}

// AmountCents applies equality check predicate on the "amount_cents" field. It's identical to AmountCentsEQ.
func AmountCents(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldAmountCents, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldSourceID, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldOrderID, v))
}

// AdjustmentID applies equality check predicate on the "adjustment_id" field. It's identical to AdjustmentIDEQ.
func AdjustmentID(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldAdjustmentID, v))
}

// Memo applies equality check predicate on the "memo" field. It's identical to MemoEQ.
func Memo(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldMemo, v))
}

// BalanceBefore applies equality check predicate on the "balance_before" field. It's identical to BalanceBeforeEQ.
func BalanceBefore(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldBalanceBefore, v))
}

// BalanceAfter applies equality check predicate on the "balance_after" field. It's identical to BalanceAfterEQ.
func BalanceAfter(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldBalanceAfter, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// LocationIDEQ applies the EQ predicate on the "location_id" field.
func LocationIDEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldLocationID, v))
}

// LocationIDNEQ applies the NEQ predicate on the "location_id" field.
func LocationIDNEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldLocationID, v))
}

// LocationIDIn applies the In predicate on the "location_id" field.
func LocationIDIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldLocationID, vs...))
}

// LocationIDNotIn applies the NotIn predicate on the "location_id" field.
func LocationIDNotIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldLocationID, vs...))
}

// LocationIDGT applies the GT predicate on the "location_id" field.
func LocationIDGT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldLocationID, v))
}

// LocationIDGTE applies the GTE predicate on the "location_id" field.
func LocationIDGTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldLocationID, v))
}

// LocationIDLT applies the LT predicate on the "location_id" field.
func LocationIDLT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldLocationID, v))
}

// LocationIDLTE applies the LTE predicate on the "location_id" field.
func LocationIDLTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldLocationID, v))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDGT applies the GT predicate on the "employee_id" field.
func EmployeeIDGT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldEmployeeID, v))
}

// EmployeeIDGTE applies the GTE predicate on the "employee_id" field.
func EmployeeIDGTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldEmployeeID, v))
}

// EmployeeIDLT applies the LT predicate on the "employee_id" field.
func EmployeeIDLT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldEmployeeID, v))
}

// EmployeeIDLTE applies the LTE predicate on the "employee_id" field.
func EmployeeIDLTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldEmployeeID, v))
}

// EntryTypeEQ applies the EQ predicate on the "entry_type" field.
func EntryTypeEQ(v EntryType) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldEntryType, v))
}

// EntryTypeNEQ applies the NEQ predicate on the "entry_type" field.
func EntryTypeNEQ(v EntryType) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldEntryType, v))
}

// EntryTypeIn applies the In predicate on the "entry_type" field.
func EntryTypeIn(vs ...EntryType) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldEntryType, vs...))
}

// EntryTypeNotIn applies the NotIn predicate on the "entry_type" field.
func EntryTypeNotIn(vs ...EntryType) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldEntryType, vs...))
}

// AmountCentsEQ applies the EQ predicate on the "amount_cents" field.
func AmountCentsEQ(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldAmountCents, v))
}

// AmountCentsNEQ applies the NEQ predicate on the "amount_cents" field.
func AmountCentsNEQ(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldAmountCents, v))
}

// AmountCentsIn applies the In predicate on the "amount_cents" field.
func AmountCentsIn(vs ...int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldAmountCents, vs...))
}

// AmountCentsNotIn applies the NotIn predicate on the "amount_cents" field.
func AmountCentsNotIn(vs ...int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldAmountCents, vs...))
}

// AmountCentsGT applies the GT predicate on the "amount_cents" field.
func AmountCentsGT(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldAmountCents, v))
}

// AmountCentsGTE applies the GTE predicate on the "amount_cents" field.
func AmountCentsGTE(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldAmountCents, v))
}

// AmountCentsLT applies the LT predicate on the "amount_cents" field.
func AmountCentsLT(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldAmountCents, v))
}

// AmountCentsLTE applies the LTE predicate on the "amount_cents" field.
func AmountCentsLTE(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldAmountCents, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDIsNil applies the IsNil predicate on the "source_id" field.
func SourceIDIsNil() predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIsNull(FieldSourceID))
}

// SourceIDNotNil applies the NotNil predicate on the "source_id" field.
func SourceIDNotNil() predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotNull(FieldSourceID))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotNull(FieldOrderID))
}

// AdjustmentIDEQ applies the EQ predicate on the "adjustment_id" field.
func AdjustmentIDEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldAdjustmentID, v))
}

// AdjustmentIDNEQ applies the NEQ predicate on the "adjustment_id" field.
func AdjustmentIDNEQ(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldAdjustmentID, v))
}

// AdjustmentIDIn applies the In predicate on the "adjustment_id" field.
func AdjustmentIDIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldAdjustmentID, vs...))
}

// AdjustmentIDNotIn applies the NotIn predicate on the "adjustment_id" field.
func AdjustmentIDNotIn(vs ...uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldAdjustmentID, vs...))
}

// AdjustmentIDGT applies the GT predicate on the "adjustment_id" field.
func AdjustmentIDGT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldAdjustmentID, v))
}

// AdjustmentIDGTE applies the GTE predicate on the "adjustment_id" field.
func AdjustmentIDGTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldAdjustmentID, v))
}

// AdjustmentIDLT applies the LT predicate on the "adjustment_id" field.
func AdjustmentIDLT(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldAdjustmentID, v))
}

// AdjustmentIDLTE applies the LTE predicate on the "adjustment_id" field.
func AdjustmentIDLTE(v uuid.UUID) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldAdjustmentID, v))
}

// AdjustmentIDIsNil applies the IsNil predicate on the "adjustment_id" field.
func AdjustmentIDIsNil() predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIsNull(FieldAdjustmentID))
}

// AdjustmentIDNotNil applies the NotNil predicate on the "adjustment_id" field.
func AdjustmentIDNotNil() predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotNull(FieldAdjustmentID))
}

// MemoEQ applies the EQ predicate on the "memo" field.
func MemoEQ(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldMemo, v))
}

// MemoNEQ applies the NEQ predicate on the "memo" field.
func MemoNEQ(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldMemo, v))
}

// MemoIn applies the In predicate on the "memo" field.
func MemoIn(vs ...string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldMemo, vs...))
}

// MemoNotIn applies the NotIn predicate on the "memo" field.
func MemoNotIn(vs ...string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldMemo, vs...))
}

// MemoGT applies the GT predicate on the "memo" field.
func MemoGT(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldMemo, v))
}

// MemoGTE applies the GTE predicate on the "memo" field.
func MemoGTE(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldMemo, v))
}

// MemoLT applies the LT predicate on the "memo" field.
func MemoLT(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldMemo, v))
}

// MemoLTE applies the LTE predicate on the "memo" field.
func MemoLTE(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldMemo, v))
}

// MemoContains applies the Contains predicate on the "memo" field.
func MemoContains(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldContains(FieldMemo, v))
}

// MemoHasPrefix applies the HasPrefix predicate on the "memo" field.
func MemoHasPrefix(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldHasPrefix(FieldMemo, v))
}

// MemoHasSuffix applies the HasSuffix predicate on the "memo" field.
func MemoHasSuffix(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldHasSuffix(FieldMemo, v))
}

// MemoIsNil applies the IsNil predicate on the "memo" field.
func MemoIsNil() predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIsNull(FieldMemo))
}

// MemoNotNil applies the NotNil predicate on the "memo" field.
func MemoNotNil() predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotNull(FieldMemo))
}

// MemoEqualFold applies the EqualFold predicate on the "memo" field.
func MemoEqualFold(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEqualFold(FieldMemo, v))
}

// MemoContainsFold applies the ContainsFold predicate on the "memo" field.
func MemoContainsFold(v string) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldContainsFold(FieldMemo, v))
}

// BalanceBeforeEQ applies the EQ predicate on the "balance_before" field.
func BalanceBeforeEQ(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldBalanceBefore, v))
}

// BalanceBeforeNEQ applies the NEQ predicate on the "balance_before" field.
func BalanceBeforeNEQ(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldBalanceBefore, v))
}

// BalanceBeforeIn applies the In predicate on the "balance_before" field.
func BalanceBeforeIn(vs ...int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldBalanceBefore, vs...))
}

// BalanceBeforeNotIn applies the NotIn predicate on the "balance_before" field.
func BalanceBeforeNotIn(vs ...int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldBalanceBefore, vs...))
}

// BalanceBeforeGT applies the GT predicate on the "balance_before" field.
func BalanceBeforeGT(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldBalanceBefore, v))
}

// BalanceBeforeGTE applies the GTE predicate on the "balance_before" field.
func BalanceBeforeGTE(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldBalanceBefore, v))
}

// BalanceBeforeLT applies the LT predicate on the "balance_before" field.
func BalanceBeforeLT(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldBalanceBefore, v))
}

// BalanceBeforeLTE applies the LTE predicate on the "balance_before" field.
func BalanceBeforeLTE(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldBalanceBefore, v))
}

// BalanceAfterEQ applies the EQ predicate on the "balance_after" field.
func BalanceAfterEQ(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldEQ(FieldBalanceAfter, v))
}

// BalanceAfterNEQ applies the NEQ predicate on the "balance_after" field.
func BalanceAfterNEQ(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNEQ(FieldBalanceAfter, v))
}

// BalanceAfterIn applies the In predicate on the "balance_after" field.
func BalanceAfterIn(vs ...int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldIn(FieldBalanceAfter, vs...))
}

// BalanceAfterNotIn applies the NotIn predicate on the "balance_after" field.
func BalanceAfterNotIn(vs ...int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldNotIn(FieldBalanceAfter, vs...))
}

// BalanceAfterGT applies the GT predicate on the "balance_after" field.
func BalanceAfterGT(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGT(FieldBalanceAfter, v))
}

// BalanceAfterGTE applies the GTE predicate on the "balance_after" field.
func BalanceAfterGTE(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldGTE(FieldBalanceAfter, v))
}

// BalanceAfterLT applies the LT predicate on the "balance_after" field.
func BalanceAfterLT(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLT(FieldBalanceAfter, v))
}

// BalanceAfterLTE applies the LTE predicate on the "balance_after" field.
func BalanceAfterLTE(v int64) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.FieldLTE(FieldBalanceAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TipLedgerEntry) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TipLedgerEntry) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TipLedgerEntry) predicate.TipLedgerEntry {
	return predicate.TipLedgerEntry(sql.NotPredicates(p))
}
