package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
// Salary bounds are independently optional and non-negative; no min<=max
// ordering is validated.
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"omitempty,max=200"`
	SalaryMin   *float64 `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax   *float64 `json:"salary_max,omitempty" validate:"omitempty,gte=0"`

	UserID     uuid.UUID `json:"-"` // Acting user, set from auth context
	EmployerID uuid.UUID `json:"-"` // Set internally by the service from the acting user's profile
}

// GetJobByIDRequest defines the structure for getting a job by ID.
// ViewerID is uuid.Nil for anonymous requests; inactive jobs are only
// visible when the viewer owns them.
type GetJobByIDRequest struct {
	ID       uuid.UUID `json:"-" validate:"required"`
	ViewerID uuid.UUID `json:"-"`
}

// ListActiveJobsRequest defines parameters for the public listing.
type ListActiveJobsRequest struct {
	Limit    int    `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset   int    `form:"offset,default=0" validate:"omitempty,gte=0"`
	Location string `form:"location" validate:"omitempty,max=200"`
}

// ListJobsByEmployerRequest defines parameters for the employer's manage
// listing (all jobs, including inactive).
type ListJobsByEmployerRequest struct {
	EmployerID uuid.UUID `json:"-"` // Set internally by the service
	UserID     uuid.UUID `json:"-"` // Acting user, set from auth context
	Limit      int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset     int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ToggleJobActiveRequest defines the structure for flipping a job's
// active flag.
type ToggleJobActiveRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from auth context, must own the job
}

// --- Job Response DTOs ---

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	EmployerID  uuid.UUID `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	SalaryMin   *float64  `json:"salary_min,omitempty"`
	SalaryMax   *float64  `json:"salary_max,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
