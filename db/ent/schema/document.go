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

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("user_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("category").Optional(),
		field.String("tags").Optional(), // JSON-encoded string list
		field.String("file_path").NotEmpty().Immutable(),
		field.String("file_ext").NotEmpty(),
		field.String("content_type").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("file_kind").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.FileKinds...)),
		field.Time("uploaded_at").Default(time.Now),

		// OCR stage state machine.
		field.String("ocr_status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ocr_error").Optional().Nillable(),

		// Summary stage state machine, gated by ocr_status == completed.
		field.String("summary_status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		field.String("summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("summary_error").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("documents").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "uploaded_at"),
		index.Fields("user_id", "ocr_status"),
	}
}
