package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/entity"
)

type Expense struct{ ent.Schema }

func (Expense) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "expenses"},
	}
}

func (Expense) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.Time("tx_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("vendor").NotEmpty(),
		field.Float("amount").
			Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		// "---" while a placeholder is awaiting extraction, ISO 4217 otherwise.
		field.String("currency_code").NotEmpty().MaxLen(3),
		field.String("category").
			Default(string(constants.Other)),
		field.String("location").Optional(),
		field.String("details").Optional(),
		field.String("image_path").Optional(),
		field.String("status").
			Default(string(constants.StatusCompleted)),
		field.Float("converted_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("base_currency_at_time").
			Optional().Nillable().MaxLen(3),
		field.Bool("is_manual").Default(false),
		field.JSON("items", []entity.LineItem{}).Optional(),
		field.JSON("manual_metadata", &entity.ManualMetadata{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Expense) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY expenses -> ONE user (FK: expenses.user_id)
		edge.From("user", User.Type).
			Ref("expenses").
			Field("user_id").
			Required().
			Unique(),
	}
}
