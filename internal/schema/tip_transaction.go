package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TipTransaction records one tip-collection event on an order or payment.
// It is soft-deleted when the underlying payment is charged back; the row
// itself is never removed so audits can reconstruct history.
type TipTransaction struct {
	ent.Schema
}

func (TipTransaction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (TipTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("location_id", uuid.UUID{}).
			Comment("FK → locations.id"),

		field.Int64("amount_cents").
			Comment("Total collected tip in cents (always positive)"),

		field.Enum("source").
			Values("card", "cash", "auto_gratuity").
			Default("card"),

		field.UUID("order_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → orders.id (direct tips)"),

		field.UUID("payment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → payments.id (the payment that carried the tip)"),

		field.UUID("group_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → tip_groups.id when the tip is pooled"),

		field.UUID("segment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → tip_group_segments.id (the split in force at collection time)"),

		field.Time("collected_at").
			Comment("When the tip was collected, as reported by the POS"),
	}
}

func (TipTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("payment_id"),
		index.Fields("group_id", "segment_id"),
		index.Fields("order_id"),
		index.Fields("location_id", "collected_at"),
	}
}
