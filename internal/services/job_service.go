package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	jobRepo     storage.JobRepository
	profileRepo storage.EmployerProfileRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, profileRepo storage.EmployerProfileRepository) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

// requireProfile resolves the acting user's employer profile. A user without
// one cannot perform any employer-side action, regardless of role claims.
func (s *jobService) requireProfile(ctx context.Context, userID uuid.UUID) (*models.EmployerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("JobService: user %s has no employer profile", userID)
			return nil, fmt.Errorf("%w: an employer profile is required", ErrForbidden)
		}
		return nil, mapRepoError(err, fmt.Sprintf("fetching employer profile for user %s", userID))
	}
	return profile, nil
}

// CreateJob creates a new active posting owned by the acting user's
// employer profile.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	profile, err := s.requireProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	req.EmployerID = profile.ID

	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		log.Printf("CreateJob: Error creating job for employer %s: %v", profile.ID, err)
		return nil, mapRepoError(err, "creating job")
	}

	log.Printf("Job %s created by employer %s", job.ID, profile.ID)
	return job, nil
}

// GetJobByID retrieves a job. Inactive jobs are hidden from everyone except
// the owning employer, surfacing as NotFound rather than Forbidden so their
// existence is not leaked.
func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}

	if job.IsActive {
		return job, nil
	}

	if req.ViewerID != uuid.Nil {
		profile, err := s.profileRepo.GetByUserID(ctx, req.ViewerID)
		if err == nil && profile.ID == job.EmployerID {
			return job, nil
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, mapRepoError(err, fmt.Sprintf("fetching employer profile for user %s", req.ViewerID))
		}
	}

	log.Printf("GetJobByID: hiding inactive job %s from viewer %s", job.ID, req.ViewerID)
	return nil, fmt.Errorf("%w: fetching job %s", ErrNotFound, req.ID)
}

// ListActiveJobs returns the public listing, newest first.
func (s *jobService) ListActiveJobs(ctx context.Context, req *dto.ListActiveJobsRequest) ([]*models.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx, req)
	if err != nil {
		log.Printf("ListActiveJobs: Error listing active jobs: %v", err)
		return nil, mapRepoError(err, "listing active jobs")
	}
	return jobs, nil
}

// ListJobsByEmployer returns the acting employer's own jobs, including
// inactive ones, newest first.
func (s *jobService) ListJobsByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*models.Job, error) {
	profile, err := s.requireProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	req.EmployerID = profile.ID

	jobs, err := s.jobRepo.ListByEmployer(ctx, req)
	if err != nil {
		log.Printf("ListJobsByEmployer: Error listing jobs for employer %s: %v", profile.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing jobs for employer %s", profile.ID))
	}
	return jobs, nil
}

// ToggleJobActive flips the posting's visibility flag. Owner only.
func (s *jobService) ToggleJobActive(ctx context.Context, req *dto.ToggleJobActiveRequest) (*models.Job, error) {
	profile, err := s.requireProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	jobReq := dto.GetJobByIDRequest{ID: req.ID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for toggle", req.ID))
	}

	if job.EmployerID != profile.ID {
		log.Printf("ToggleJobActive: Forbidden attempt by user %s on job %s owned by %s", req.UserID, job.ID, job.EmployerID)
		return nil, ErrForbidden
	}

	updatedJob, err := s.jobRepo.SetActive(ctx, job.ID, !job.IsActive)
	if err != nil {
		log.Printf("ToggleJobActive: Error updating job %s: %v", job.ID, err)
		return nil, mapRepoError(err, "toggling job active flag")
	}

	log.Printf("Job %s active flag set to %t by employer %s", updatedJob.ID, updatedJob.IsActive, profile.ID)
	return updatedJob, nil
}
