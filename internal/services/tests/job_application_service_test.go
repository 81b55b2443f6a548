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

func setupApplicationServiceTest(t *testing.T) (context.Context, services.JobApplicationService, *mock_storage.MockJobApplicationRepository, *mock_storage.MockJobRepository, *mock_storage.MockEmployerProfileRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockAppRepo := mock_storage.NewMockJobApplicationRepository(ctrl)
	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockProfileRepo := mock_storage.NewMockEmployerProfileRepository(ctrl)
	appService := services.NewJobApplicationService(mockAppRepo, mockJobRepo, mockProfileRepo)
	ctx := context.Background()
	return ctx, appService, mockAppRepo, mockJobRepo, mockProfileRepo, ctrl
}

func TestJobApplicationService_ApplyToJob_Success(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	applicantID := uuid.New()
	jobID := uuid.New()
	activeJob := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: true}
	req := &dto.ApplyToJobRequest{JobID: jobID, ApplicantID: applicantID, CoverLetter: "I can start Monday."}

	expectedApp := &models.JobApplication{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(activeJob, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, applicantID).Return(nil, storage.ErrNotFound).Times(1)
	mockAppRepo.EXPECT().GetByJobAndApplicant(ctx, jobID, applicantID).Return(nil, storage.ErrNotFound).Times(1)
	mockAppRepo.EXPECT().Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: req.CoverLetter,
	}).Return(expectedApp, nil).Times(1)

	app, err := appService.ApplyToJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, applicantID, app.ApplicantID)
}

func TestJobApplicationService_ApplyToJob_InactiveJob_NotFound(t *testing.T) {
	ctx, appService, _, mockJobRepo, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	applicantID := uuid.New()
	jobID := uuid.New()
	inactiveJob := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: false}

	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(inactiveJob, nil).Times(1)

	_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: jobID, ApplicantID: applicantID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound), "inactive jobs must not take applications")
}

func TestJobApplicationService_ApplyToJob_OwnJob_Forbidden(t *testing.T) {
	ctx, appService, _, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	employerUserID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: employerUserID}
	jobID := uuid.New()
	ownJob := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: true}

	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(ownJob, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, employerUserID).Return(profile, nil).Times(1)

	_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: jobID, ApplicantID: employerUserID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_ApplyToJob_Duplicate_Conflict(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	applicantID := uuid.New()
	jobID := uuid.New()
	activeJob := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: true}
	// A cancelled application still blocks re-application.
	existing := &models.JobApplication{ID: uuid.New(), JobID: jobID, ApplicantID: applicantID, Status: models.ApplicationStatusCancelled}

	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(activeJob, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, applicantID).Return(nil, storage.ErrNotFound).Times(1)
	mockAppRepo.EXPECT().GetByJobAndApplicant(ctx, jobID, applicantID).Return(existing, nil).Times(1)

	_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: jobID, ApplicantID: applicantID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestJobApplicationService_GetApplicationByID_ApplicantAllowed(t *testing.T) {
	ctx, appService, mockAppRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	applicantID := uuid.New()
	appID := uuid.New()
	application := &models.JobApplication{ID: appID, JobID: uuid.New(), ApplicantID: applicantID, Status: models.ApplicationStatusPending}

	mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)

	result, err := appService.GetApplicationByID(ctx, &dto.GetJobApplicationByIDRequest{ID: appID, UserID: applicantID})

	require.NoError(t, err)
	assert.Equal(t, application, result)
}

func TestJobApplicationService_GetApplicationByID_OwningEmployerAllowed(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	employerUserID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: employerUserID}
	jobID := uuid.New()
	appID := uuid.New()
	application := &models.JobApplication{ID: appID, JobID: jobID, ApplicantID: uuid.New(), Status: models.ApplicationStatusPending}
	job := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: true}

	mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, employerUserID).Return(profile, nil).Times(1)

	result, err := appService.GetApplicationByID(ctx, &dto.GetJobApplicationByIDRequest{ID: appID, UserID: employerUserID})

	require.NoError(t, err)
	assert.Equal(t, application, result)
}

func TestJobApplicationService_GetApplicationByID_StrangerForbidden(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	strangerID := uuid.New()
	jobID := uuid.New()
	appID := uuid.New()
	application := &models.JobApplication{ID: appID, JobID: jobID, ApplicantID: uuid.New(), Status: models.ApplicationStatusPending}
	job := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: true}

	mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, strangerID).Return(nil, storage.ErrNotFound).Times(1)

	_, err := appService.GetApplicationByID(ctx, &dto.GetJobApplicationByIDRequest{ID: appID, UserID: strangerID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_ListApplicationsByJob_OwnerOnly(t *testing.T) {
	ctx, appService, _, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: userID}
	jobID := uuid.New()
	othersJob := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: true}
	req := &dto.ListJobApplicationsByJobRequest{JobID: jobID, UserID: userID, Limit: 10}

	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(othersJob, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(profile, nil).Times(1)

	_, err := appService.ListApplicationsByJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_SetApplicationStatus_TokenNormalization(t *testing.T) {
	testCases := []struct {
		token    string
		expected models.ApplicationStatus
	}{
		{"accept", models.ApplicationStatusAccepted},
		{"Accepted", models.ApplicationStatusAccepted},
		{"REJECT", models.ApplicationStatusRejected},
		{"rejected", models.ApplicationStatusRejected},
		{" pending ", models.ApplicationStatusPending},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			ctx, appService, mockAppRepo, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
			defer ctrl.Finish()

			employerUserID := uuid.New()
			profile := &models.EmployerProfile{ID: uuid.New(), UserID: employerUserID}
			jobID := uuid.New()
			appID := uuid.New()
			application := &models.JobApplication{ID: appID, JobID: jobID, ApplicantID: uuid.New(), Status: models.ApplicationStatusPending}
			job := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: true}
			updated := &models.JobApplication{ID: appID, JobID: jobID, ApplicantID: application.ApplicantID, Status: tc.expected}

			mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)
			mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Times(1)
			mockProfileRepo.EXPECT().GetByUserID(ctx, employerUserID).Return(profile, nil).Times(1)
			mockAppRepo.EXPECT().UpdateStatus(ctx, appID, tc.expected).Return(updated, nil).Times(1)

			result, err := appService.SetApplicationStatus(ctx, &dto.SetApplicationStatusRequest{
				ApplicationID: appID,
				UserID:        employerUserID,
				Status:        tc.token,
			})

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Status)
		})
	}
}

func TestJobApplicationService_SetApplicationStatus_UnknownToken(t *testing.T) {
	ctx, appService, _, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	// The token is rejected before any repository call happens.
	for _, token := range []string{"cancelled", "approve", "", "maybe"} {
		_, err := appService.SetApplicationStatus(ctx, &dto.SetApplicationStatusRequest{
			ApplicationID: uuid.New(),
			UserID:        uuid.New(),
			Status:        token,
		})
		require.Error(t, err, "token %q should be rejected", token)
		assert.True(t, errors.Is(err, services.ErrInvalidArgument), "token %q", token)
	}
}

func TestJobApplicationService_SetApplicationStatus_OverwritesPriorDecision(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	employerUserID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: employerUserID}
	jobID := uuid.New()
	appID := uuid.New()
	// Already accepted; the employer changes their mind.
	application := &models.JobApplication{ID: appID, JobID: jobID, ApplicantID: uuid.New(), Status: models.ApplicationStatusAccepted}
	job := &models.Job{ID: jobID, EmployerID: profile.ID, IsActive: true}
	updated := &models.JobApplication{ID: appID, JobID: jobID, ApplicantID: application.ApplicantID, Status: models.ApplicationStatusRejected}

	mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, employerUserID).Return(profile, nil).Times(1)
	mockAppRepo.EXPECT().UpdateStatus(ctx, appID, models.ApplicationStatusRejected).Return(updated, nil).Times(1)

	result, err := appService.SetApplicationStatus(ctx, &dto.SetApplicationStatusRequest{
		ApplicationID: appID,
		UserID:        employerUserID,
		Status:        "reject",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, result.Status)
}

func TestJobApplicationService_SetApplicationStatus_Forbidden_NotOwner(t *testing.T) {
	ctx, appService, mockAppRepo, mockJobRepo, mockProfileRepo, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	profile := &models.EmployerProfile{ID: uuid.New(), UserID: userID}
	jobID := uuid.New()
	appID := uuid.New()
	application := &models.JobApplication{ID: appID, JobID: jobID, ApplicantID: uuid.New(), Status: models.ApplicationStatusPending}
	othersJob := &models.Job{ID: jobID, EmployerID: uuid.New(), IsActive: true}

	mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(ctx, &dto.GetJobByIDRequest{ID: jobID}).Return(othersJob, nil).Times(1)
	mockProfileRepo.EXPECT().GetByUserID(ctx, userID).Return(profile, nil).Times(1)
	// No UpdateStatus expectation.

	_, err := appService.SetApplicationStatus(ctx, &dto.SetApplicationStatusRequest{
		ApplicationID: appID,
		UserID:        userID,
		Status:        "accept",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_CancelApplication_Success(t *testing.T) {
	ctx, appService, mockAppRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	applicantID := uuid.New()
	appID := uuid.New()
	application := &models.JobApplication{ID: appID, JobID: uuid.New(), ApplicantID: applicantID, Status: models.ApplicationStatusPending}
	cancelled := &models.JobApplication{ID: appID, JobID: application.JobID, ApplicantID: applicantID, Status: models.ApplicationStatusCancelled}

	mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)
	mockAppRepo.EXPECT().UpdateStatus(ctx, appID, models.ApplicationStatusCancelled).Return(cancelled, nil).Times(1)

	result, err := appService.CancelApplication(ctx, &dto.CancelApplicationRequest{ApplicationID: appID, UserID: applicantID})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusCancelled, result.Status)
}

func TestJobApplicationService_CancelApplication_Forbidden_NotApplicant(t *testing.T) {
	ctx, appService, mockAppRepo, _, _, ctrl := setupApplicationServiceTest(t)
	defer ctrl.Finish()

	appID := uuid.New()
	application := &models.JobApplication{ID: appID, JobID: uuid.New(), ApplicantID: uuid.New(), Status: models.ApplicationStatusPending}

	mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)

	_, err := appService.CancelApplication(ctx, &dto.CancelApplicationRequest{ApplicationID: appID, UserID: uuid.New()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_CancelApplication_AlreadyDecided_InvalidState(t *testing.T) {
	for _, status := range []models.ApplicationStatus{models.ApplicationStatusAccepted, models.ApplicationStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			ctx, appService, mockAppRepo, _, _, ctrl := setupApplicationServiceTest(t)
			defer ctrl.Finish()

			applicantID := uuid.New()
			appID := uuid.New()
			application := &models.JobApplication{ID: appID, JobID: uuid.New(), ApplicantID: applicantID, Status: status}

			mockAppRepo.EXPECT().GetByID(ctx, appID).Return(application, nil).Times(1)
			// No UpdateStatus expectation: decided applications cannot be cancelled.

			_, err := appService.CancelApplication(ctx, &dto.CancelApplicationRequest{ApplicationID: appID, UserID: applicantID})

			require.Error(t, err)
			assert.True(t, errors.Is(err, services.ErrInvalidState))
		})
	}
}
