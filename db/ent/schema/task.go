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

type Task struct{ ent.Schema }

func (Task) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tasks"},
	}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so queries can filter without loading the edge
		field.UUID("email_id", uuid.UUID{}),
		field.String("codigo_cobertor").Optional().Nillable().MaxLen(100),
		field.String("cuartel").Optional().Nillable().MaxLen(50),
		field.Int("hileras").Optional().Nillable().NonNegative(),
		field.Float("largo_metros").Optional().Nillable().Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		field.String("prioridad").
			Default(string(constants.PriorityNormal)).
			Validate(utils.EnumValidator(
				string(constants.PriorityLow),
				string(constants.PriorityNormal),
				string(constants.PriorityHigh),
			)),
		field.String("estado").
			Default(string(constants.TaskStatusPending)).
			Validate(utils.EnumValidator(constants.TaskStatuses...)),
		field.String("descripcion").Optional().Nillable().MaxLen(100),
		field.String("notas").Optional().Nillable().MaxLen(500).
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("origen").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.OriginTabularAttachment),
				string(constants.OriginDocumentAttachment),
				string(constants.OriginNarrativeText),
				string(constants.OriginFallbackReview),
			)),
		field.Bool("urgente").Default(false),
		field.Time("fecha_solicitud").Default(time.Now),
		field.Time("fecha_completada").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY tasks -> ONE email (FK: tasks.email_id)
		edge.From("email", EmailMessage.Type).
			Ref("tasks").
			Field("email_id").
			Required().
			Unique(),
		edge.To("alerts", Alert.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email_id"),
		index.Fields("estado"),
		index.Fields("prioridad"),
		index.Fields("codigo_cobertor"),
	}
}
