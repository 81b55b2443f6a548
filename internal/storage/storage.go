package storage

//go:generate mockgen -source=storage.go -destination=../mocks/mock_storage.go -package=mock_storage

import (
	"context"
	"time"

	"job-board-api/ent"
	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	WithTx(tx *ent.Tx) UserRepository
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
}

// EmployerProfileRepository defines the interface for employer profile data operations.
type EmployerProfileRepository interface {
	WithTx(tx *ent.Tx) EmployerProfileRepository
	Create(ctx context.Context, req *dto.CreateEmployerProfileRequest) (*models.EmployerProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.EmployerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.EmployerProfile, error)
	Update(ctx context.Context, req *dto.UpdateEmployerProfileRequest) (*models.EmployerProfile, error)
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	WithTx(tx *ent.Tx) JobRepository
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListActive(ctx context.Context, req *dto.ListActiveJobsRequest) ([]*models.Job, error)
	ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*models.Job, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Job, error)
}

// JobApplicationRepository defines the interface for job application data operations.
type JobApplicationRepository interface {
	WithTx(tx *ent.Tx) JobApplicationRepository
	Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.JobApplication, error)
	ListByJob(ctx context.Context, req *dto.ListJobApplicationsByJobRequest) ([]*models.JobApplication, error)
	ListByApplicant(ctx context.Context, req *dto.ListJobApplicationsByApplicantRequest) ([]*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error)
}

// TokenStore persists opaque refresh tokens with a TTL.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}
