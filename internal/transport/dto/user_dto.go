package dto

import (
	"time"

	"job-board-api/internal/models"

	"github.com/google/uuid"
)

// --- User Request DTOs ---

// RegisterRequest defines the structure for the registration endpoint.
// Role is a token, "Employer" or "Worker"; anything else defaults to Worker
// to mirror the registration form's two-option select.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=100"`
	Role        string `json:"role" validate:"omitempty,oneof=Employer Worker"`
	CompanyName string `json:"company_name" validate:"omitempty,max=200"` // Employer registrations only
}

// CreateUserRequest is used internally by the registration flow. The password
// is already hashed by the time it reaches the repository.
type CreateUserRequest struct {
	Email        string      `json:"email" validate:"required,email"`
	PasswordHash string      `json:"-"`
	Role         models.Role `json:"role" validate:"required,oneof=Employer Worker"`
}

// LoginRequest defines the structure for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest defines the structure for rotating a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest defines the structure for revoking a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// GetUserByIdRequest defines the structure for getting a user by ID.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// GetUserByEmailRequest defines the structure for getting a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// --- User Response DTOs ---

// UserResponse defines the standard user data returned to the client.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TokenPairResponse is returned by login and refresh.
type TokenPairResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}
