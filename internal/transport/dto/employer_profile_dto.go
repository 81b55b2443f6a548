package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateEmployerProfileRequest is used internally by the registration flow.
type CreateEmployerProfileRequest struct {
	UserID      uuid.UUID `json:"-" validate:"required"`
	CompanyName string    `json:"company_name" validate:"omitempty,max=200"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	Website     string    `json:"website" validate:"omitempty,url,max=200"`
}

// UpdateEmployerProfileRequest defines the structure for editing a profile.
type UpdateEmployerProfileRequest struct {
	ID          uuid.UUID `json:"-" validate:"required"`
	UserID      uuid.UUID `json:"-"` // Set from user context for ownership check
	CompanyName *string   `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Website     *string   `json:"website,omitempty" validate:"omitempty,url,max=200"`
}

// EmployerProfileResponse defines the profile data returned to the client.
type EmployerProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
