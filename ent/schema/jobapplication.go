package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// JobApplication holds the schema definition for the JobApplication entity.
type JobApplication struct {
	ent.Schema
}

// Fields of the JobApplication.
func (JobApplication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("job_id", uuid.UUID{}).StorageKey("job_id").Immutable(),
		field.UUID("applicant_id", uuid.UUID{}).StorageKey("applicant_id").Immutable(),

		field.Text("cover_letter").Optional().MaxLen(4000),
		field.String("resume_path").Optional(),

		field.Enum("status").
			Values("Pending", "Accepted", "Rejected", "Cancelled").
			Default("Pending"),

		field.Time("applied_at").Immutable().Default(time.Now),
	}
}

func (JobApplication) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_application"},
	}
}

// Indexes of the JobApplication.
func (JobApplication) Indexes() []ent.Index {
	return []ent.Index{
		// One application per (job, applicant) pair, regardless of status.
		index.Fields("job_id", "applicant_id").Unique(),
	}
}

// Edges of the JobApplication.
func (JobApplication) Edges() []ent.Edge {
	return []ent.Edge{
		// Application belongs to an applicant (User). Required edge.
		edge.From("applicant", User.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("applicant_id"),

		// Application is for a specific Job. Required edge.
		edge.From("job", Job.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("job_id"),
	}
}
