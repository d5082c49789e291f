package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/fvillarroel/cobertor-bot/constants"
	"github.com/fvillarroel/cobertor-bot/utils"
)

type Alert struct{ ent.Schema }

func (Alert) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "alerts"},
	}
}

func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("tipo").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.AlertTypeUrgentTask),
				string(constants.AlertTypeProcessingError),
				string(constants.AlertTypeInfo),
			)),
		field.String("titulo").NotEmpty().MaxLen(255),
		field.String("descripcion").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// soft references, nulled out when the target row goes away
		field.UUID("task_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("email_id", uuid.UUID{}).Optional().Nillable(),
		field.String("severidad").
			Default(string(constants.SeverityMedium)).
			Validate(utils.EnumValidator(
				string(constants.SeverityLow),
				string(constants.SeverityMedium),
				string(constants.SeverityHigh),
				string(constants.SeverityCritical),
			)),
		field.Bool("leida").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("email", EmailMessage.Type).
			Ref("alerts").
			Field("email_id").
			Unique(),
		edge.From("task", Task.Type).
			Ref("alerts").
			Field("task_id").
			Unique(),
	}
}

func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("leida"),
		index.Fields("tipo"),
		index.Fields("created_at"),
	}
}
