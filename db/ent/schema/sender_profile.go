package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SenderProfile is written by the historical scanner, one row per external
// sender with enough volume to profile.
type SenderProfile struct{ ent.Schema }

func (SenderProfile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sender_profiles"},
	}
}

func (SenderProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("email").NotEmpty().Unique(),
		field.String("domain").Default(""),
		field.String("category").Default("cliente"),
		field.String("typical_urgency").Default("media"),
		field.String("typical_intent").Default("otro"),
		field.Int("emails_analyzed").NonNegative().Default(0),
		field.Float("confidence").Min(0).Max(1).Default(0),
		field.Time("last_seen").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SenderProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain"),
	}
}
