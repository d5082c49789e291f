package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// ThreadPattern is written by the historical scanner for multi-message threads.
type ThreadPattern struct{ ent.Schema }

func (ThreadPattern) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "thread_patterns"},
	}
}

func (ThreadPattern) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("thread_id").NotEmpty().Unique(),
		field.Int("total_messages").NonNegative().Default(0),
		field.Int("internal_participants").NonNegative().Default(0),
		field.Int("external_participants").NonNegative().Default(0),
		field.Bool("has_forward").Default(false),
		field.Bool("has_attachments").Default(false),
		field.String("complexity").Default("baja"),
	}
}
