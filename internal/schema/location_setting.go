package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// LocationSetting holds a location's settings blob. The tips section is
// read by the chargeback engine; missing or malformed settings fall back
// to documented defaults rather than failing the operation.
type LocationSetting struct {
	ent.Schema
}

func (LocationSetting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (LocationSetting) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("location_id", uuid.UUID{}).
			Unique(),

		field.Bytes("settings").
			Optional().
			Comment("Raw JSON settings blob as stored by the admin console"),
	}
}
