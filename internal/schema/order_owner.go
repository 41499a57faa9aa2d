package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OrderOwner is one employee's share of an order's tips.
type OrderOwner struct {
	ent.Schema
}

func (OrderOwner) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (OrderOwner) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("ownership_id", uuid.UUID{}).
			Comment("FK → order_ownerships.id"),

		field.UUID("employee_id", uuid.UUID{}),

		field.Float("share_percent").
			Comment("Ownership share 0-100; shares on one record sum to 100"),
	}
}

func (OrderOwner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ownership", OrderOwnership.Type).
			Ref("owners").
			Unique().
			Required().
			Field("ownership_id"),
	}
}

func (OrderOwner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ownership_id", "employee_id").Unique(),
	}
}
