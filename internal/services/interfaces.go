package services

import (
	"context"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"
)

// UserService defines the interface for registration and session logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error) // Returns user, access token, refresh token
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*models.User, string, string, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListActiveJobs(ctx context.Context, req *dto.ListActiveJobsRequest) ([]*models.Job, error)
	ListJobsByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*models.Job, error)
	ToggleJobActive(ctx context.Context, req *dto.ToggleJobActiveRequest) (*models.Job, error)
}

// JobApplicationService defines the interface for job application business logic.
type JobApplicationService interface {
	ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error)
	GetApplicationByID(ctx context.Context, req *dto.GetJobApplicationByIDRequest) (*models.JobApplication, error)
	ListApplicationsByJob(ctx context.Context, req *dto.ListJobApplicationsByJobRequest) ([]*models.JobApplication, error)
	ListApplicationsByApplicant(ctx context.Context, req *dto.ListJobApplicationsByApplicantRequest) ([]*models.JobApplication, error)
	SetApplicationStatus(ctx context.Context, req *dto.SetApplicationStatusRequest) (*models.JobApplication, error)
	CancelApplication(ctx context.Context, req *dto.CancelApplicationRequest) (*models.JobApplication, error)
}
