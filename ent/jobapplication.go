// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"job-board-api/ent/job"
	"job-board-api/ent/jobapplication"
	"job-board-api/ent/user"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// JobApplication is the model entity for the JobApplication schema.
type JobApplication struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// ApplicantID holds the value of the "applicant_id" field.
	ApplicantID uuid.UUID `json:"applicant_id,omitempty"`
	// CoverLetter holds the value of the "cover_letter" field.
	CoverLetter string `json:"cover_letter,omitempty"`
	// ResumePath holds the value of the "resume_path" field.
	ResumePath string `json:"resume_path,omitempty"`
	// Status holds the value of the "status" field.
	Status jobapplication.Status `json:"status,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt time.Time `json:"applied_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobApplicationQuery when eager-loading is set.
	Edges        JobApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobApplicationEdges holds the relations/edges for other nodes in the graph.
type JobApplicationEdges struct {
	// Applicant holds the value of the applicant edge.
	Applicant *User `json:"applicant,omitempty"`
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobApplicationEdges) ApplicantOrErr() (*User, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobApplicationEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobApplication) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobapplication.FieldCoverLetter, jobapplication.FieldResumePath, jobapplication.FieldStatus:
			values[i] = new(sql.NullString)
		case jobapplication.FieldAppliedAt:
			values[i] = new(sql.NullTime)
		case jobapplication.FieldID, jobapplication.FieldJobID, jobapplication.FieldApplicantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobApplication fields.
func (ja *JobApplication) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobapplication.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ja.ID = *value
			}
		case jobapplication.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				ja.JobID = *value
			}
		case jobapplication.FieldApplicantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field applicant_id", values[i])
			} else if value != nil {
				ja.ApplicantID = *value
			}
		case jobapplication.FieldCoverLetter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_letter", values[i])
			} else if value.Valid {
				ja.CoverLetter = value.String
			}
		case jobapplication.FieldResumePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resume_path", values[i])
			} else if value.Valid {
				ja.ResumePath = value.String
			}
		case jobapplication.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ja.Status = jobapplication.Status(value.String)
			}
		case jobapplication.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				ja.AppliedAt = value.Time
			}
		default:
			ja.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobApplication.
// This includes values selected through modifiers, order, etc.
func (ja *JobApplication) Value(name string) (ent.Value, error) {
	return ja.selectValues.Get(name)
}

// QueryApplicant queries the "applicant" edge of the JobApplication entity.
func (ja *JobApplication) QueryApplicant() *UserQuery {
	return NewJobApplicationClient(ja.config).QueryApplicant(ja)
}

// QueryJob queries the "job" edge of the JobApplication entity.
func (ja *JobApplication) QueryJob() *JobQuery {
	return NewJobApplicationClient(ja.config).QueryJob(ja)
}

// Update returns a builder for updating this JobApplication.
// Note that you need to call JobApplication.Unwrap() before calling this method if this JobApplication
// was returned from a transaction, and the transaction was committed or rolled back.
func (ja *JobApplication) Update() *JobApplicationUpdateOne {
	return NewJobApplicationClient(ja.config).UpdateOne(ja)
}

// Unwrap unwraps the JobApplication entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ja *JobApplication) Unwrap() *JobApplication {
	_tx, ok := ja.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobApplication is not a transactional entity")
	}
	ja.config.driver = _tx.drv
	return ja
}

// String implements the fmt.Stringer.
func (ja *JobApplication) String() string {
	var builder strings.Builder
	builder.WriteString("JobApplication(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ja.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", ja.JobID))
	builder.WriteString(", ")
	builder.WriteString("applicant_id=")
	builder.WriteString(fmt.Sprintf("%v", ja.ApplicantID))
	builder.WriteString(", ")
	builder.WriteString("cover_letter=")
	builder.WriteString(ja.CoverLetter)
	builder.WriteString(", ")
	builder.WriteString("resume_path=")
	builder.WriteString(ja.ResumePath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", ja.Status))
	builder.WriteString(", ")
	builder.WriteString("applied_at=")
	builder.WriteString(ja.AppliedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobApplications is a parsable slice of JobApplication.
type JobApplications []*JobApplication
