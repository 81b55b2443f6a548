package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("email").Unique().NotEmpty(),

		// Mark as Sensitive to prevent logging
		field.Text("password_hash").Sensitive().NotEmpty(),

		// Role is a fixed two-member set assigned at registration.
		field.Enum("role").
			Values("Employer", "Worker").
			Default("Worker").
			Immutable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// An Employer-role user owns at most one profile. Deleting the user
		// takes the profile (and its jobs) with it.
		edge.To("employer_profile", EmployerProfile.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),

		// Applications reference the applicant and must survive as history:
		// user deletion is restricted while applications exist.
		edge.To("applications", JobApplication.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}
