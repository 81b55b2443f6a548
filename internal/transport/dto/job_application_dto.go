package dto

import (
	"time"

	"job-board-api/internal/models"

	"github.com/google/uuid"
)

// ApplyToJobRequest defines the structure for applying to a job.
type ApplyToJobRequest struct {
	JobID       uuid.UUID `json:"-" validate:"required"` // From path
	ApplicantID uuid.UUID `json:"-"`                     // Set from user context
	CoverLetter string    `json:"cover_letter" validate:"omitempty,max=4000"`
	ResumePath  string    `json:"resume_path" validate:"omitempty,max=500"`
}

// CreateJobApplicationRequest is used internally by the ApplyToJob service method.
type CreateJobApplicationRequest struct {
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	CoverLetter string    `json:"cover_letter"`
	ResumePath  string    `json:"resume_path"`
}

// GetJobApplicationByIDRequest defines the structure for fetching one application.
type GetJobApplicationByIDRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context for auth check
}

// ListJobApplicationsByJobRequest defines parameters for the employer's
// applicant listing.
type ListJobApplicationsByJobRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context for auth check
	Limit  int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ListJobApplicationsByApplicantRequest defines parameters for listing the
// acting user's own applications.
type ListJobApplicationsByApplicantRequest struct {
	ApplicantID uuid.UUID `json:"-" validate:"required"` // Set from user context
	Limit       int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset      int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// SetApplicationStatusRequest carries the raw status token from the employer.
// The token is normalized case-insensitively by the service
// (accept/accepted, reject/rejected, pending).
type SetApplicationStatusRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"`      // From path
	UserID        uuid.UUID `json:"-"`                          // Set from user context (must be the job's employer)
	Status        string    `json:"status" validate:"required"` // Raw token
}

// CancelApplicationRequest defines the structure for the applicant-side cancel.
type CancelApplicationRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context (must be the applicant)
}

// JobApplicationResponse defines the application data returned to the client.
type JobApplicationResponse struct {
	ID          uuid.UUID                `json:"id"`
	JobID       uuid.UUID                `json:"job_id"`
	ApplicantID uuid.UUID                `json:"applicant_id"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	ResumePath  string                   `json:"resume_path,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"applied_at"`
}
