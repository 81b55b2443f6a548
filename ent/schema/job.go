package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("employer_id", uuid.UUID{}).StorageKey("employer_id").Immutable(),

		field.String("title").NotEmpty().MaxLen(200),
		field.Text("description").NotEmpty(),
		field.String("location").Optional().MaxLen(200),

		// Salary bounds are independently optional and non-negative.
		// No min<=max ordering is enforced here.
		field.Float("salary_min").Optional().Nillable().Min(0),
		field.Float("salary_max").Optional().Nillable().Min(0),

		// Inactive jobs stay out of public listings but remain visible
		// to the owning employer.
		field.Bool("is_active").Default(true),

		field.Time("created_at").Immutable().Default(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// Job belongs to an employer profile. Required edge.
		edge.From("employer", EmployerProfile.Type).
			Ref("jobs").
			Required().
			Unique().
			Immutable().
			Field("employer_id"),

		// Job has multiple applications; deleting the job deletes them.
		edge.To("applications", JobApplication.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
