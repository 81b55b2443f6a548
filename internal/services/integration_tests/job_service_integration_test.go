package integration_tests

import (
	"context"
	"errors"
	"testing"

	"job-board-api/internal/services"
	"job-board-api/internal/storage/postgres"
	"job-board-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJobService(t *testing.T) (context.Context, services.JobService) {
	t.Helper()
	client, _ := getTestClients(t)
	ctx := context.Background()
	cleanupTables(ctx, t, client, "job_application", "jobs", "employer_profile", "users")

	jobRepo := postgres.NewJobRepo(client)
	profileRepo := postgres.NewEmployerProfileRepo(client)
	return ctx, services.NewJobService(jobRepo, profileRepo)
}

func TestJobService_Integration_CreateJobAndGetByID(t *testing.T) {
	ctx, jobService := setupJobService(t)

	user, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")

	created, err := jobService.CreateJob(ctx, &dto.CreateJobRequest{
		Title:       "Backend Developer",
		Description: "Build APIs",
		Location:    "Lisbon",
		SalaryMin:   ptrFloat64(50000),
		SalaryMax:   ptrFloat64(70000),
		UserID:      user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, created.EmployerID)
	assert.True(t, created.IsActive, "new postings start active")

	fetched, err := jobService.GetJobByID(ctx, &dto.GetJobByIDRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Backend Developer", fetched.Title)
	require.NotNil(t, fetched.SalaryMin)
	assert.Equal(t, 50000.0, *fetched.SalaryMin)
}

func TestJobService_Integration_CreateJob_WorkerForbidden(t *testing.T) {
	ctx, jobService := setupJobService(t)

	worker := createTestUser(t, ctx, testDB, "worker@example.com", "Worker")

	_, err := jobService.CreateJob(ctx, &dto.CreateJobRequest{
		Title:       "Backend Developer",
		Description: "Build APIs",
		UserID:      worker.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobService_Integration_ToggleJobActive(t *testing.T) {
	ctx, jobService := setupJobService(t)

	user, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	job := createTestJob(t, ctx, testDB, profile.ID, "Backend Developer", true)

	toggled, err := jobService.ToggleJobActive(ctx, &dto.ToggleJobActiveRequest{ID: job.ID, UserID: user.ID})
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	// Hidden from anonymous viewers once inactive
	_, err = jobService.GetJobByID(ctx, &dto.GetJobByIDRequest{ID: job.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))

	// Still visible to its owner
	visible, err := jobService.GetJobByID(ctx, &dto.GetJobByIDRequest{ID: job.ID, ViewerID: user.ID})
	require.NoError(t, err)
	assert.False(t, visible.IsActive)

	// Toggling again reactivates
	reactivated, err := jobService.ToggleJobActive(ctx, &dto.ToggleJobActiveRequest{ID: job.ID, UserID: user.ID})
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
}

func TestJobService_Integration_ToggleJobActive_NotOwner(t *testing.T) {
	ctx, jobService := setupJobService(t)

	_, ownerProfile := createTestEmployer(t, ctx, testDB, "owner@example.com", "Acme")
	other, _ := createTestEmployer(t, ctx, testDB, "other@example.com", "Globex")
	job := createTestJob(t, ctx, testDB, ownerProfile.ID, "Backend Developer", true)

	_, err := jobService.ToggleJobActive(ctx, &dto.ToggleJobActiveRequest{ID: job.ID, UserID: other.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobService_Integration_ListActiveJobs_ExcludesInactive(t *testing.T) {
	ctx, jobService := setupJobService(t)

	_, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	active := createTestJob(t, ctx, testDB, profile.ID, "Active role", true)
	createTestJob(t, ctx, testDB, profile.ID, "Hidden role", false)

	jobs, err := jobService.ListActiveJobs(ctx, &dto.ListActiveJobsRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, active.ID, jobs[0].ID)
}

func TestJobService_Integration_ListJobsByEmployer_IncludesInactive(t *testing.T) {
	ctx, jobService := setupJobService(t)

	user, profile := createTestEmployer(t, ctx, testDB, "employer@example.com", "Acme")
	createTestJob(t, ctx, testDB, profile.ID, "Active role", true)
	createTestJob(t, ctx, testDB, profile.ID, "Hidden role", false)

	jobs, err := jobService.ListJobsByEmployer(ctx, &dto.ListJobsByEmployerRequest{UserID: user.ID, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, jobs, 2, "the manage listing includes inactive postings")
}
