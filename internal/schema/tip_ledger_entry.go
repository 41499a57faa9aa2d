package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TipLedgerEntry is one immutable signed record against an employee's tip
// balance. Corrections are new entries; existing entries are never edited.
type TipLedgerEntry struct {
	ent.Schema
}

func (TipLedgerEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (TipLedgerEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("location_id", uuid.UUID{}).
			Immutable(),

		field.UUID("employee_id", uuid.UUID{}).
			Immutable(),

		field.Enum("entry_type").
			Values("credit", "debit").
			Immutable(),

		field.Int64("amount_cents").
			Immutable().
			Comment("Amount in cents, always positive; sign carried by entry_type"),

		field.Enum("source_type").
			Values("group_distribution", "direct_tip", "adjustment", "chargeback").
			Immutable(),

		field.UUID("source_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("ID of the originating record (tip transaction or adjustment)"),

		field.UUID("order_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),

		field.UUID("adjustment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("FK → tip_adjustments.id for corrective entries"),

		field.String("memo").
			MaxLen(500).
			Optional().
			Immutable(),

		field.Int64("balance_before").
			Immutable().
			Comment("Employee tip balance before this entry"),

		field.Int64("balance_after").
			Immutable().
			Comment("Employee tip balance after this entry"),
	}
}

func (TipLedgerEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("employee_id", "created_at"),
		index.Fields("source_type", "source_id"),
		index.Fields("order_id"),
		index.Fields("adjustment_id"),
	}
}
