package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TipWallet caches an employee's current tip balance. It is owned and
// mutated exclusively by the ledger posting primitive; the cached value
// always equals the signed sum of the employee's ledger entries.
type TipWallet struct {
	ent.Schema
}

func (TipWallet) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TipWallet) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("employee_id", uuid.UUID{}).
			Unique(),

		field.UUID("location_id", uuid.UUID{}),

		field.Int64("balance_cents").
			Default(0).
			Comment("Current tip balance in cents; may go negative when the location allows it"),
	}
}

func (TipWallet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("location_id"),
	}
}
