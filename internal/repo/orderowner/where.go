// Code generated by ent, DO NOT EDIT.

package orderowner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnershipID applies equality check predicate on the "ownership_id" field. It's identical to OwnershipIDEQ.
func OwnershipID(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldOwnershipID, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldEmployeeID, v))
}

// SharePercent applies equality check predicate on the "share_percent" field. It's identical to SharePercentEQ.
func SharePercent(v float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldSharePercent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldLTE(FieldCreatedAt, v))
}

// OwnershipIDEQ applies the EQ predicate on the "ownership_id" field.
func OwnershipIDEQ(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldOwnershipID, v))
}

// OwnershipIDNEQ applies the NEQ predicate on the "ownership_id" field.
func OwnershipIDNEQ(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNEQ(FieldOwnershipID, v))
}

// OwnershipIDIn applies the In predicate on the "ownership_id" field.
func OwnershipIDIn(vs ...uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldIn(FieldOwnershipID, vs...))
}

// OwnershipIDNotIn applies the NotIn predicate on the "ownership_id" field.
func OwnershipIDNotIn(vs ...uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNotIn(FieldOwnershipID, vs...))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDGT applies the GT predicate on the "employee_id" field.
func EmployeeIDGT(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldGT(FieldEmployeeID, v))
}

// EmployeeIDGTE applies the GTE predicate on the "employee_id" field.
func EmployeeIDGTE(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldGTE(FieldEmployeeID, v))
}

// EmployeeIDLT applies the LT predicate on the "employee_id" field.
func EmployeeIDLT(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldLT(FieldEmployeeID, v))
}

// EmployeeIDLTE applies the LTE predicate on the "employee_id" field.
func EmployeeIDLTE(v uuid.UUID) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldLTE(FieldEmployeeID, v))
}

// SharePercentEQ applies the EQ predicate on the "share_percent" field.
func SharePercentEQ(v float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldEQ(FieldSharePercent, v))
}

// SharePercentNEQ applies the NEQ predicate on the "share_percent" field.
func SharePercentNEQ(v float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNEQ(FieldSharePercent, v))
}

// SharePercentIn applies the In predicate on the "share_percent" field.
func SharePercentIn(vs ...float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldIn(FieldSharePercent, vs...))
}

// SharePercentNotIn applies the NotIn predicate on the "share_percent" field.
func SharePercentNotIn(vs ...float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldNotIn(FieldSharePercent, vs...))
}

// SharePercentGT applies the GT predicate on the "share_percent" field.
func SharePercentGT(v float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldGT(FieldSharePercent, v))
}

// SharePercentGTE applies the GTE predicate on the "share_percent" field.
func SharePercentGTE(v float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldGTE(FieldSharePercent, v))
}

// SharePercentLT applies the LT predicate on the "share_percent" field.
func SharePercentLT(v float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldLT(FieldSharePercent, v))
}

// SharePercentLTE applies the LTE predicate on the "share_percent" field.
func SharePercentLTE(v float64) predicate.OrderOwner {
	return predicate.OrderOwner(sql.FieldLTE(FieldSharePercent, v))
}

// HasOwnership applies the HasEdge predicate on the "ownership" edge.
func HasOwnership() predicate.OrderOwner {
	return predicate.OrderOwner(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnershipTable, OwnershipColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnershipWith applies the HasEdge predicate on the "ownership" edge with a given conditions (other predicates).
func HasOwnershipWith(preds ...predicate.OrderOwnership) predicate.OrderOwner {
	return predicate.OrderOwner(func(s *sql.Selector) {
		step := newOwnershipStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrderOwner) predicate.OrderOwner {
	return predicate.OrderOwner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrderOwner) predicate.OrderOwner {
	return predicate.OrderOwner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrderOwner) predicate.OrderOwner {
	return predicate.OrderOwner(sql.NotPredicates(p))
}
