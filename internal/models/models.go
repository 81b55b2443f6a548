package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
//
// Roles are a fixed set assigned once at registration; nothing creates
// roles at runtime.
type Role string

const (
	RoleEmployer Role = "Employer"
	RoleWorker   Role = "Worker"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleEmployer, RoleWorker:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "Pending"
	ApplicationStatusAccepted  ApplicationStatus = "Accepted"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
	ApplicationStatusCancelled ApplicationStatus = "Cancelled" // applicant-initiated, Pending only
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusCancelled:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// User represents an authenticated account in the system
type User struct {
	ID uuid.UUID `json:"id" db:"id"`

	Email string `json:"email" db:"email"`

	PasswordHash string `json:"-" db:"password_hash"`

	// Assigned at registration, immutable afterwards.
	Role Role `json:"role" db:"role"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EmployerProfile is the company-side identity owning job postings.
// Exactly one per Employer-role user.
type EmployerProfile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	CompanyName string    `json:"company_name" db:"company_name"`
	Description string    `json:"description,omitempty" db:"description"`
	Website     string    `json:"website,omitempty" db:"website"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Job represents a posting with an active/inactive visibility flag.
type Job struct {
	ID          uuid.UUID `json:"id" db:"id"`
	EmployerID  uuid.UUID `json:"employer_id" db:"employer_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location,omitempty" db:"location"`
	SalaryMin   *float64  `json:"salary_min,omitempty" db:"salary_min"` // Pointer for NULLable column
	SalaryMax   *float64  `json:"salary_max,omitempty" db:"salary_max"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// JobApplication represents a worker's request against a Job, with a
// lifecycle status.
type JobApplication struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	CoverLetter string            `json:"cover_letter,omitempty" db:"cover_letter"`
	ResumePath  string            `json:"resume_path,omitempty" db:"resume_path"`
	Status      ApplicationStatus `json:"status" db:"status"`
	AppliedAt   time.Time         `json:"applied_at" db:"applied_at"`
}
