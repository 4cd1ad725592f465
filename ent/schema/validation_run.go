package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationRun records the outcome of validating one model document.
type ValidationRun struct {
	ent.Schema
}

func (ValidationRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Run UUID"),
		field.String("batch_id").
			Immutable().
			Comment("UUID shared by all runs of one invocation"),
		field.Int64("timestamp").
			Immutable().
			Comment("UTC wall-clock time in Unix nanoseconds"),
		field.String("source").
			Comment("Path of the validated document"),
		field.String("digest").
			Default("").
			Comment("Hex SHA-256 of the document bytes"),
		field.String("model_kind").
			Default("").
			Comment("Model kind declared by the document"),
		field.Bool("valid").
			Comment("Whether the document was accepted"),
		field.String("error_kind").
			Default("").
			Comment("Stable error label if rejected"),
		field.String("message").
			Default("").
			Comment("Error message if rejected"),
		field.Int64("duration_us").
			Default(0).
			Comment("Wall-clock validation time"),
	}
}

func (ValidationRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("batch_id"),
		index.Fields("valid"),
	}
}
