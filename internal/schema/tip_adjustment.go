package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TipAdjustment is the audit record of one corrective or manual
// balance-changing action. Exactly one is written per reconciliation or
// manual call, before any ledger entries it explains.
type TipAdjustment struct {
	ent.Schema
}

func (TipAdjustment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (TipAdjustment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("location_id", uuid.UUID{}),

		field.Enum("adjustment_type").
			Values("group_membership", "ownership_split", "clock_fix", "manual_override", "tip_amount"),

		field.String("reason").
			MaxLen(500),

		field.JSON("before", map[string]int64{}).
			Optional().
			Comment("Per-employee cent totals before the correction (employee id → cents)"),

		field.JSON("after", map[string]int64{}).
			Optional().
			Comment("Per-employee cent totals after the correction (employee id → cents)"),

		field.Bool("auto_triggered").
			Default(false).
			Comment("True when fired by an event worker rather than a manager"),

		field.UUID("group_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("order_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("requested_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Manager who requested the action, when not auto-triggered"),
	}
}

func (TipAdjustment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("location_id", "adjustment_type", "created_at"),
		index.Fields("group_id"),
		index.Fields("order_id"),
	}
}
