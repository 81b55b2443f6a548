package integration_tests

import (
	"context"
	"errors"
	"testing"

	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage/postgres"
	"job-board-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApplicationService(t *testing.T) (context.Context, services.JobApplicationService) {
	t.Helper()
	client, _ := getTestClients(t)
	ctx := context.Background()
	cleanupTables(ctx, t, client, "job_application", "jobs", "employer_profile", "users")

	appRepo := postgres.NewJobApplicationRepo(client)
	jobRepo := postgres.NewJobRepo(client)
	profileRepo := postgres.NewEmployerProfileRepo(client)
	return ctx, services.NewJobApplicationService(appRepo, jobRepo, profileRepo)
}

func TestJobApplicationService_Integration_ApplyToJob(t *testing.T) {
	ctx, appService := setupApplicationService(t)

	_, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	worker := createTestUser(t, ctx, testDB, "worker@example.com", models.RoleWorker)
	job := createTestJob(t, ctx, testDB, profile.ID, "Backend Developer", true)

	app, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{
		JobID:       job.ID,
		ApplicantID: worker.ID,
		CoverLetter: "I can start Monday.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, worker.ID, app.ApplicantID)
	assert.False(t, app.AppliedAt.IsZero())

	// A second application from the same worker is rejected.
	_, err = appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: worker.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestJobApplicationService_Integration_ApplyToInactiveJob(t *testing.T) {
	ctx, appService := setupApplicationService(t)

	_, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	worker := createTestUser(t, ctx, testDB, "worker@example.com", models.RoleWorker)
	job := createTestJob(t, ctx, testDB, profile.ID, "Backend Developer", false)

	_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: worker.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestJobApplicationService_Integration_ApplyToOwnJob(t *testing.T) {
	ctx, appService := setupApplicationService(t)

	employer, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	job := createTestJob(t, ctx, testDB, profile.ID, "Backend Developer", true)

	_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: employer.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_Integration_SetApplicationStatus(t *testing.T) {
	ctx, appService := setupApplicationService(t)

	employer, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	worker := createTestUser(t, ctx, testDB, "worker@example.com", models.RoleWorker)
	job := createTestJob(t, ctx, testDB, profile.ID, "Backend Developer", true)

	app, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: worker.ID})
	require.NoError(t, err)

	// Accept with a short token
	accepted, err := appService.SetApplicationStatus(ctx, &dto.SetApplicationStatusRequest{
		ApplicationID: app.ID,
		UserID:        employer.ID,
		Status:        "accept",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, accepted.Status)

	// The employer can revisit the decision
	rejected, err := appService.SetApplicationStatus(ctx, &dto.SetApplicationStatusRequest{
		ApplicationID: app.ID,
		UserID:        employer.ID,
		Status:        "Rejected",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, rejected.Status)

	// The worker cannot decide their own application
	_, err = appService.SetApplicationStatus(ctx, &dto.SetApplicationStatusRequest{
		ApplicationID: app.ID,
		UserID:        worker.ID,
		Status:        "accept",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_Integration_CancelApplication(t *testing.T) {
	ctx, appService := setupApplicationService(t)

	employer, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	worker := createTestUser(t, ctx, testDB, "worker@example.com", models.RoleWorker)
	job := createTestJob(t, ctx, testDB, profile.ID, "Backend Developer", true)

	app, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: worker.ID})
	require.NoError(t, err)

	cancelled, err := appService.CancelApplication(ctx, &dto.CancelApplicationRequest{ApplicationID: app.ID, UserID: worker.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusCancelled, cancelled.Status)

	// Cancelled applications still block re-application.
	_, err = appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: worker.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))

	// And the employer still sees the cancelled entry in the listing.
	apps, err := appService.ListApplicationsByJob(ctx, &dto.ListJobApplicationsByJobRequest{
		JobID:  job.ID,
		UserID: employer.ID,
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationStatusCancelled, apps[0].Status)
}

func TestJobApplicationService_Integration_CancelAfterDecisionFails(t *testing.T) {
	ctx, appService := setupApplicationService(t)

	employer, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	worker := createTestUser(t, ctx, testDB, "worker@example.com", models.RoleWorker)
	job := createTestJob(t, ctx, testDB, profile.ID, "Backend Developer", true)

	app, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: job.ID, ApplicantID: worker.ID})
	require.NoError(t, err)

	_, err = appService.SetApplicationStatus(ctx, &dto.SetApplicationStatusRequest{
		ApplicationID: app.ID,
		UserID:        employer.ID,
		Status:        "accept",
	})
	require.NoError(t, err)

	_, err = appService.CancelApplication(ctx, &dto.CancelApplicationRequest{ApplicationID: app.ID, UserID: worker.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
}

func TestJobApplicationService_Integration_ListApplicationsByApplicant(t *testing.T) {
	ctx, appService := setupApplicationService(t)

	_, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	worker := createTestUser(t, ctx, testDB, "worker@example.com", models.RoleWorker)
	jobA := createTestJob(t, ctx, testDB, profile.ID, "Role A", true)
	jobB := createTestJob(t, ctx, testDB, profile.ID, "Role B", true)

	_, err := appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: jobA.ID, ApplicantID: worker.ID})
	require.NoError(t, err)
	_, err = appService.ApplyToJob(ctx, &dto.ApplyToJobRequest{JobID: jobB.ID, ApplicantID: worker.ID})
	require.NoError(t, err)

	apps, err := appService.ListApplicationsByApplicant(ctx, &dto.ListJobApplicationsByApplicantRequest{
		ApplicantID: worker.ID,
		Limit:       10,
	})
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}
