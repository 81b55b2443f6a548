// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/job"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmployerID holds the value of the "employer_id" field.
	EmployerID uuid.UUID `json:"employer_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// SalaryMin holds the value of the "salary_min" field.
	SalaryMin *float64 `json:"salary_min,omitempty"`
	// SalaryMax holds the value of the "salary_max" field.
	SalaryMax *float64 `json:"salary_max,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// Employer holds the value of the employer edge.
	Employer *EmployerProfile `json:"employer,omitempty"`
	// Applications holds the value of the applications edge.
	Applications []*JobApplication `json:"applications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EmployerOrErr returns the Employer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobEdges) EmployerOrErr() (*EmployerProfile, error) {
	if e.Employer != nil {
		return e.Employer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: employerprofile.Label}
	}
	return nil, &NotLoadedError{edge: "employer"}
}

// ApplicationsOrErr returns the Applications value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) ApplicationsOrErr() ([]*JobApplication, error) {
	if e.loadedTypes[1] {
		return e.Applications, nil
	}
	return nil, &NotLoadedError{edge: "applications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldIsActive:
			values[i] = new(sql.NullBool)
		case job.FieldSalaryMin, job.FieldSalaryMax:
			values[i] = new(sql.NullFloat64)
		case job.FieldTitle, job.FieldDescription, job.FieldLocation:
			values[i] = new(sql.NullString)
		case job.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case job.FieldID, job.FieldEmployerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (j *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				j.ID = *value
			}
		case job.FieldEmployerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field employer_id", values[i])
			} else if value != nil {
				j.EmployerID = *value
			}
		case job.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				j.Title = value.String
			}
		case job.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				j.Description = value.String
			}
		case job.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				j.Location = value.String
			}
		case job.FieldSalaryMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field salary_min", values[i])
			} else if value.Valid {
				j.SalaryMin = new(float64)
				*j.SalaryMin = value.Float64
			}
		case job.FieldSalaryMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field salary_max", values[i])
			} else if value.Valid {
				j.SalaryMax = new(float64)
				*j.SalaryMax = value.Float64
			}
		case job.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				j.IsActive = value.Bool
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				j.CreatedAt = value.Time
			}
		default:
			j.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (j *Job) Value(name string) (ent.Value, error) {
	return j.selectValues.Get(name)
}

// QueryEmployer queries the "employer" edge of the Job entity.
func (j *Job) QueryEmployer() *EmployerProfileQuery {
	return NewJobClient(j.config).QueryEmployer(j)
}

// QueryApplications queries the "applications" edge of the Job entity.
func (j *Job) QueryApplications() *JobApplicationQuery {
	return NewJobClient(j.config).QueryApplications(j)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (j *Job) Update() *JobUpdateOne {
	return NewJobClient(j.config).UpdateOne(j)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (j *Job) Unwrap() *Job {
	_tx, ok := j.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	j.config.driver = _tx.drv
	return j
}

// String implements the fmt.Stringer.
func (j *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", j.ID))
	builder.WriteString("employer_id=")
	builder.WriteString(fmt.Sprintf("%v", j.EmployerID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(j.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(j.Description)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(j.Location)
	builder.WriteString(", ")
	if v := j.SalaryMin; v != nil {
		builder.WriteString("salary_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := j.SalaryMax; v != nil {
		builder.WriteString("salary_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", j.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(j.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
