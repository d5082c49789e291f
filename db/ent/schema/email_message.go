package schema

import (
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

type EmailMessage struct{ ent.Schema }

func (EmailMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "email_messages"},
	}
}

func (EmailMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// provider message id; the unique constraint here is the pipeline's
		// idempotency mechanism, do not pre-check before insert.
		field.String("message_id").NotEmpty().Unique(),
		field.String("thread_id").Optional().Nillable(),
		field.String("sender_email").NotEmpty(),
		field.String("sender_name").Optional().Nillable(),
		field.String("subject").Default(""),
		field.Text("body_text").Default(""),
		field.Text("body_html").Default(""),
		field.Time("received_at"),
		field.Time("processed_at").Optional().Nillable(),
		field.Bool("has_attachments").Default(false),
		field.Int("attachment_count").NonNegative().Default(0),
		field.String("status").
			Default(string(constants.EmailStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.EmailStatusPending),
				string(constants.EmailStatusProcessing),
				string(constants.EmailStatusProcessed),
				string(constants.EmailStatusNoData),
				string(constants.EmailStatusError),
			)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (EmailMessage) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE email -> MANY tasks / attachments (cascade on delete).
		// The edge is named adjuntos so its predicates stay clear of the
		// has_attachments column.
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("adjuntos", Attachment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// alerts only reference the email; they survive its deletion
		edge.To("alerts", Alert.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (EmailMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("received_at"),
		index.Fields("status"),
	}
}
