package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TipGroupSegment is one time-boxed membership split of a tip group.
// Segments are appended when membership changes, never edited in place,
// so past distributions stay reproducible.
type TipGroupSegment struct {
	ent.Schema
}

func (TipGroupSegment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TipGroupSegment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("group_id", uuid.UUID{}).
			Comment("FK → tip_groups.id"),

		field.JSON("split", map[string]float64{}).
			Optional().
			Comment("employee id → fraction of the pool; fractions sum to 1"),

		field.Time("starts_at"),

		field.Time("ends_at").
			Optional().
			Nillable().
			Comment("Open-ended while the segment is current"),
	}
}

func (TipGroupSegment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", TipGroup.Type).
			Ref("segments").
			Unique().
			Required().
			Field("group_id"),
	}
}

func (TipGroupSegment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id", "starts_at"),
	}
}
