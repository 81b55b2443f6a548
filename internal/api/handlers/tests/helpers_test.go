package handlers_test

import (
	"context"
	"time"

	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func generateTestToken(userID uuid.UUID, role models.Role, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &services.AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// MockJobService is a mock implementation of services.JobService
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListActiveJobs(ctx context.Context, req *dto.ListActiveJobsRequest) ([]*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobService) ListJobsByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobService) ToggleJobActive(ctx context.Context, req *dto.ToggleJobActiveRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

var _ services.JobService = (*MockJobService)(nil)

// MockJobApplicationService is a mock implementation of services.JobApplicationService
type MockJobApplicationService struct {
	mock.Mock
}

func (m *MockJobApplicationService) ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) GetApplicationByID(ctx context.Context, req *dto.GetJobApplicationByIDRequest) (*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) ListApplicationsByJob(ctx context.Context, req *dto.ListJobApplicationsByJobRequest) ([]*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) ListApplicationsByApplicant(ctx context.Context, req *dto.ListJobApplicationsByApplicantRequest) ([]*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) SetApplicationStatus(ctx context.Context, req *dto.SetApplicationStatusRequest) (*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) CancelApplication(ctx context.Context, req *dto.CancelApplicationRequest) (*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

var _ services.JobApplicationService = (*MockJobApplicationService)(nil)
