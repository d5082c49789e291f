package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/fvillarroel/cobertor-bot/constants"
	"github.com/fvillarroel/cobertor-bot/utils"
)

type Attachment struct{ ent.Schema }

func (Attachment) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attachments"},
	}
}

func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("email_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("mime_type").Optional().Nillable(),
		field.Int("size_bytes").NonNegative().Default(0),
		field.String("format").Optional().Nillable().
			Validate(utils.EnumValidator(constants.AttachmentFormats...)),
		field.Int("extracted_count").NonNegative().Default(0),
		// audit snapshot of the extractor output, persisted even when empty
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Attachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("email", EmailMessage.Type).
			Ref("adjuntos").
			Field("email_id").
			Required().
			Unique(),
	}
}

func (Attachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email_id"),
	}
}
