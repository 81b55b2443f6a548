package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// EmployerProfile holds the schema definition for the EmployerProfile entity.
type EmployerProfile struct {
	ent.Schema
}

// Fields of the EmployerProfile.
func (EmployerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		// One profile per user, enforced by the unique edge below.
		field.UUID("user_id", uuid.UUID{}).StorageKey("user_id").Unique().Immutable(),

		field.String("company_name"),
		field.String("description").Optional(),
		field.String("website").Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
	}
}

func (EmployerProfile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "employer_profile"},
	}
}

// Edges of the EmployerProfile.
func (EmployerProfile) Edges() []ent.Edge {
	return []ent.Edge{
		// Profile belongs to exactly one user.
		edge.From("user", User.Type).
			Ref("employer_profile").
			Required().
			Unique().
			Immutable().
			Field("user_id"),

		// Profile owns jobs; deleting the profile deletes its jobs.
		edge.To("jobs", Job.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
