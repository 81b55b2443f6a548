// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/user"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// EmployerProfile is the model entity for the EmployerProfile schema.
type EmployerProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Website holds the value of the "website" field.
	Website string `json:"website,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmployerProfileQuery when eager-loading is set.
	Edges        EmployerProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmployerProfileEdges holds the relations/edges for other nodes in the graph.
type EmployerProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmployerProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e EmployerProfileEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmployerProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case employerprofile.FieldCompanyName, employerprofile.FieldDescription, employerprofile.FieldWebsite:
			values[i] = new(sql.NullString)
		case employerprofile.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case employerprofile.FieldID, employerprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmployerProfile fields.
func (ep *EmployerProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case employerprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ep.ID = *value
			}
		case employerprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				ep.UserID = *value
			}
		case employerprofile.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				ep.CompanyName = value.String
			}
		case employerprofile.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				ep.Description = value.String
			}
		case employerprofile.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				ep.Website = value.String
			}
		case employerprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ep.CreatedAt = value.Time
			}
		default:
			ep.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmployerProfile.
// This includes values selected through modifiers, order, etc.
func (ep *EmployerProfile) Value(name string) (ent.Value, error) {
	return ep.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the EmployerProfile entity.
func (ep *EmployerProfile) QueryUser() *UserQuery {
	return NewEmployerProfileClient(ep.config).QueryUser(ep)
}

// QueryJobs queries the "jobs" edge of the EmployerProfile entity.
func (ep *EmployerProfile) QueryJobs() *JobQuery {
	return NewEmployerProfileClient(ep.config).QueryJobs(ep)
}

// Update returns a builder for updating this EmployerProfile.
// Note that you need to call EmployerProfile.Unwrap() before calling this method if this EmployerProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (ep *EmployerProfile) Update() *EmployerProfileUpdateOne {
	return NewEmployerProfileClient(ep.config).UpdateOne(ep)
}

// Unwrap unwraps the EmployerProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ep *EmployerProfile) Unwrap() *EmployerProfile {
	_tx, ok := ep.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmployerProfile is not a transactional entity")
	}
	ep.config.driver = _tx.drv
	return ep
}

// String implements the fmt.Stringer.
func (ep *EmployerProfile) String() string {
	var builder strings.Builder
	builder.WriteString("EmployerProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ep.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ep.UserID))
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(ep.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(ep.Description)
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(ep.Website)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ep.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmployerProfiles is a parsable slice of EmployerProfile.
type EmployerProfiles []*EmployerProfile
