package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OrderOwnership records who owns the tips on an order. An order has at
// most one active ownership record; transfers deactivate the old record
// and append a new one.
type OrderOwnership struct {
	ent.Schema
}

func (OrderOwnership) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (OrderOwnership) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("order_id", uuid.UUID{}),

		field.UUID("location_id", uuid.UUID{}),

		field.Bool("is_active").
			Default(true),
	}
}

func (OrderOwnership) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("owners", OrderOwner.Type),
	}
}

func (OrderOwnership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "is_active"),
	}
}
