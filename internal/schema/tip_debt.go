package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TipDebt tracks the uncollectible remainder of a capped chargeback: the
// part of a reversed credit that could not be recovered from the
// employee's balance. Invariant: debited + remaining == original credit.
type TipDebt struct {
	ent.Schema
}

func (TipDebt) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TipDebt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("location_id", uuid.UUID{}),

		field.UUID("employee_id", uuid.UUID{}),

		field.UUID("payment_id", uuid.UUID{}).
			Comment("The voided/refunded payment that produced this debt"),

		field.Int64("original_amount_cents").
			Comment("Total originally credited to the employee for this payment"),

		field.Int64("remaining_cents").
			Comment("Portion still uncollected"),

		field.Enum("status").
			Values("open", "resolved").
			Default("open"),

		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

func (TipDebt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("employee_id", "status"),
		index.Fields("payment_id"),
		index.Fields("location_id", "status"),
	}
}
