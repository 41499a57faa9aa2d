package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TipGroup is a pooled-tip group (e.g. the bar staff on a shift).
type TipGroup struct {
	ent.Schema
}

func (TipGroup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (TipGroup) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("location_id", uuid.UUID{}),

		field.String("name").
			MaxLen(200),
	}
}

func (TipGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("segments", TipGroupSegment.Type),
	}
}

func (TipGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("location_id"),
	}
}
