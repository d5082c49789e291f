package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// LearnedRule is a sender-level heuristic generated when historical behavior
// is consistent enough to pre-assign urgency.
type LearnedRule struct{ ent.Schema }

func (LearnedRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "learned_rules"},
	}
}

func (LearnedRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("rule_name").NotEmpty().Unique(),
		field.String("sender_email").NotEmpty(),
		field.String("urgency").NotEmpty(),
		field.Float("confidence").Min(0).Max(1),
		field.Int("times_triggered").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now),
	}
}
