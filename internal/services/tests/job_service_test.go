package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "job-board-api/internal/mocks"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a float64
func ptrFloat64(f float64) *float64 { return &f }

func setupJobServiceTest(t *testing.T) (context.Context, services.JobService, *mock_storage.MockJobRepository, *mock_storage.MockEmployerProfileRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockProfileRepo := mock_storage.NewMockEmployerProfileRepository(ctrl)
	jobService := services.NewJobService(mockJobRepo, mockProfileRepo)
	ctx := context.Background()
	return ctx, jobService, mockJobRepo, mockProfileRepo, ctrl
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: userID, CompanyName: "Acme"}
	req := &dto.CreateJobRequest{
		Title:       "Backend Developer",
		Description: "Build APIs",
		Location:    "Lisbon",
		SalaryMin:   ptrFloat64(50000),
		SalaryMax:   ptrFloat64(70000),
		UserID:      userID,
	}

	expectedJob := &models.Job{
		ID:          uuid.New(),
		EmployerID:  profile.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		IsActive:    true,
	}

	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(profile, nil).Times(1)
	mockJobRepo.EXPECT().Create(ctx, req).Return(expectedJob, nil).Times(1)

	job, err := jobService.CreateJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedJob, job)
	assert.Equal(t, profile.ID, req.EmployerID, "service should resolve the employer ID from the profile")
}

func TestJobService_CreateJob_NoProfile_Forbidden(t *testing.T) {
	ctx, jobService, _, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	req := &dto.CreateJobRequest{Title: "Backend Developer", Description: "Build APIs", UserID: userID}

	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, storage.ErrNotFound).Times(1)
	// No Create expectation: the repo must not be reached.

	_, err := jobService.CreateJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobService_GetJobByID_ActiveVisibleToAnyone(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	req := &dto.GetJobByIDRequest{ID: jobID}
	expectedJob := &models.Job{ID: jobID, EmployerID: uuid.New(), Title: "Backend Developer", IsActive: true}

	mockJobRepo.EXPECT().GetByID(ctx, req).Return(expectedJob, nil).Times(1)

	job, err := jobService.GetJobByID(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedJob, job)
}

func TestJobService_GetJobByID_InactiveHiddenFromAnonymous(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	jobID := uuid.New()
	req := &dto.GetJobByIDRequest{ID: jobID} // ViewerID stays uuid.Nil
	inactiveJob := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: false}

	mockJobRepo.EXPECT().GetByID(ctx, req).Return(inactiveJob, nil).Times(1)

	_, err := jobService.GetJobByID(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound), "inactive jobs must surface as not found, not forbidden")
}

func TestJobService_GetJobByID_InactiveVisibleToOwner(t *testing.T) {
	ctx, jobService, mockJobRepo, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: ownerID}
	jobID := uuid.New()
	req := &dto.GetJobByIDRequest{ID: jobID, ViewerID: ownerID}
	inactiveJob := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: false}

	mockJobRepo.EXPECT().GetByID(ctx, req).Return(inactiveJob, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, ownerID).Return(profile, nil).Times(1)

	job, err := jobService.GetJobByID(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, inactiveJob, job)
}

func TestJobService_GetJobByID_InactiveHiddenFromOtherEmployer(t *testing.T) {
	ctx, jobService, mockJobRepo, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	viewerID := uuid.New()
	viewerProfile := &models.EmployerProfile{ID: uuid.New(), UserID: viewerID}
	jobID := uuid.New()
	req := &dto.GetJobByIDRequest{ID: jobID, ViewerID: viewerID}
	inactiveJob := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: false}

	mockJobRepo.EXPECT().GetByID(ctx, req).Return(inactiveJob, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, viewerID).Return(viewerProfile, nil).Times(1)

	_, err := jobService.GetJobByID(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestJobService_GetJobByID_NotFound(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	req := &dto.GetJobByIDRequest{ID: uuid.New()}

	mockJobRepo.EXPECT().GetByID(ctx, req).Return(nil, storage.ErrNotFound).Times(1)

	_, err := jobService.GetJobByID(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestJobService_ListActiveJobs_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	req := &dto.ListActiveJobsRequest{Limit: 10, Offset: 0}
	expectedJobs := []*models.Job{
		{ID: uuid.New(), Title: "Backend Developer", IsActive: true},
		{ID: uuid.New(), Title: "Gardener", IsActive: true},
	}

	mockJobRepo.EXPECT().ListActive(ctx, req).Return(expectedJobs, nil).Times(1)

	jobs, err := jobService.ListActiveJobs(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedJobs, jobs)
}

func TestJobService_ListJobsByEmployer_ResolvesProfile(t *testing.T) {
	ctx, jobService, mockJobRepo, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: userID}
	req := &dto.ListJobsByEmployerRequest{UserID: userID, Limit: 10}
	expectedJobs := []*models.Job{
		{ID: uuid.New(), EmployerID: profile.ID, IsActive: true},
		{ID: uuid.New(), EmployerID: profile.ID, IsActive: false}, // inactive jobs included
	}

	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(profile, nil).Times(1)
	mockJobRepo.EXPECT().ListByEmployer(ctx, req).Return(expectedJobs, nil).Times(1)

	jobs, err := jobService.ListJobsByEmployer(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedJobs, jobs)
	assert.Equal(t, profile.ID, req.EmployerID)
}

func TestJobService_ToggleJobActive_FlipsFlag(t *testing.T) {
	ctx, jobService, mockJobRepo, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: userID}
	jobID := uuid.New()
	activeJob := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: true}
	toggledJob := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: false}

	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(profile, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(activeJob, nil).Times(1)
	mockJobRepo.EXPECT().SetActive(ctx, jobID, false).Return(toggledJob, nil).Times(1)

	job, err := jobService.ToggleJobActive(ctx, &dto.ToggleJobActiveRequest{ID: jobID, UserID: userID})

	require.NoError(t, err)
	assert.False(t, job.IsActive)
}

func TestJobService_ToggleJobActive_ReactivatesInactive(t *testing.T) {
	ctx, jobService, mockJobRepo, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: userID}
	jobID := uuid.New()
	inactiveJob := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: false}
	toggledJob := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: true}

	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(profile, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(inactiveJob, nil).Times(1)
	mockJobRepo.EXPECT().SetActive(ctx, jobID, true).Return(toggledJob, nil).Times(1)

	job, err := jobService.ToggleJobActive(ctx, &dto.ToggleJobActiveRequest{ID: jobID, UserID: userID})

	require.NoError(t, err)
	assert.True(t, job.IsActive)
}

func TestJobService_ToggleJobActive_Forbidden_NotOwner(t *testing.T) {
	ctx, jobService, mockJobRepo, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: userID}
	jobID := uuid.New()
	othersJob := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: true}

	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(profile, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(othersJob, nil).Times(1)
	// No SetActive expectation: the update must never happen.

	_, err := jobService.ToggleJobActive(ctx, &dto.ToggleJobActiveRequest{ID: jobID, UserID: userID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobService_ToggleJobActive_JobNotFound(t *testing.T) {
	ctx, jobService, mockJobRepo, mockProfileRepo, ctrl := setupJobServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: userID}
	jobID := uuid.New()

	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(profile, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(nil, storage.ErrNotFound).Times(1)

	_, err := jobService.ToggleJobActive(ctx, &dto.ToggleJobActiveRequest{ID: jobID, UserID: userID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
