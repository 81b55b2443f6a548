package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"
)

type jobApplicationService struct {
	appRepo     storage.JobApplicationRepository
	jobRepo     storage.JobRepository
	profileRepo storage.EmployerProfileRepository
}

// NewJobApplicationService creates a new instance of JobApplicationService.
func NewJobApplicationService(
	appRepo storage.JobApplicationRepository,
	jobRepo storage.JobRepository,
	profileRepo storage.EmployerProfileRepository,
) JobApplicationService {
	return &jobApplicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

// ApplyToJob creates a new Pending application for the acting user against
// an active job.
func (s *jobApplicationService) ApplyToJob(ctx context.Context, req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	// 1. Fetch the Job; inactive jobs are not applicable-to and surface as NotFound
	jobReq := dto.GetJobByIDRequest{ID: req.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}
	if !job.IsActive {
		log.Printf("ApplyToJob: Attempt to apply to inactive job %s", job.ID)
		return nil, fmt.Errorf("%w: fetching job %s for application", ErrNotFound, req.JobID)
	}

	// 2. An employer cannot apply to their own posting
	profile, err := s.profileRepo.GetByUserID(ctx, req.ApplicantID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, fmt.Sprintf("fetching employer profile for user %s", req.ApplicantID))
	}
	if err == nil && profile.ID == job.EmployerID {
		log.Printf("ApplyToJob: Employer %s attempted to apply to own job %s", profile.ID, job.ID)
		return nil, fmt.Errorf("%w: employer cannot apply to their own job", ErrForbidden)
	}

	// 3. One application per (job, applicant) pair, regardless of status.
	// A Cancelled application still blocks re-application.
	existing, err := s.appRepo.GetByJobAndApplicant(ctx, req.JobID, req.ApplicantID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, fmt.Sprintf("checking existing application for job %s", req.JobID))
	}
	if existing != nil {
		log.Printf("ApplyToJob: User %s already applied to job %s (status %s)", req.ApplicantID, req.JobID, existing.Status)
		return nil, fmt.Errorf("%w: already applied to job", ErrConflict)
	}

	// 4. Create the application using the repository
	createReq := dto.CreateJobApplicationRequest{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		CoverLetter: req.CoverLetter,
		ResumePath:  req.ResumePath,
	}
	application, err := s.appRepo.Create(ctx, &createReq)
	if err != nil {
		log.Printf("ApplyToJob: Error creating application in repo: %v", err)
		return nil, mapRepoError(err, "creating application")
	}

	return application, nil
}

// GetApplicationByID retrieves an application, checking authorization.
// User must be the applicant or the job's employer.
func (s *jobApplicationService) GetApplicationByID(ctx context.Context, req *dto.GetJobApplicationByIDRequest) (*models.JobApplication, error) {
	application, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		log.Printf("GetApplicationByID: Error fetching application %s: %v", req.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}

	if application.ApplicantID == req.UserID {
		return application, nil
	}

	// Not the applicant; allow only the owning employer through.
	jobReq := dto.GetJobByIDRequest{ID: application.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		// Should not happen if the application exists, but handle defensively
		log.Printf("GetApplicationByID: Error fetching job %s associated with application %s: %v", application.JobID, req.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching associated job %s", application.JobID))
	}

	profile, err := s.profileRepo.GetByUserID(ctx, req.UserID)
	if err != nil || profile.ID != job.EmployerID {
		log.Printf("GetApplicationByID: Forbidden attempt by user %s on application %s", req.UserID, req.ID)
		return nil, ErrForbidden
	}

	return application, nil
}

// ListApplicationsByApplicant retrieves applications for the requesting user.
func (s *jobApplicationService) ListApplicationsByApplicant(ctx context.Context, req *dto.ListJobApplicationsByApplicantRequest) ([]*models.JobApplication, error) {
	applications, err := s.appRepo.ListByApplicant(ctx, req)
	if err != nil {
		log.Printf("ListApplicationsByApplicant: Error listing applications for user %s: %v", req.ApplicantID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for applicant %s", req.ApplicantID))
	}
	return applications, nil
}

// ListApplicationsByJob retrieves applications for a specific job, checking
// that the requester owns the posting.
func (s *jobApplicationService) ListApplicationsByJob(ctx context.Context, req *dto.ListJobApplicationsByJobRequest) ([]*models.JobApplication, error) {
	jobReq := dto.GetJobByIDRequest{ID: req.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for listing applications", req.JobID))
	}

	profile, err := s.profileRepo.GetByUserID(ctx, req.UserID)
	if err != nil || profile.ID != job.EmployerID {
		log.Printf("ListApplicationsByJob: Forbidden attempt by user %s to list applications for job %s", req.UserID, req.JobID)
		return nil, ErrForbidden
	}

	applications, err := s.appRepo.ListByJob(ctx, req)
	if err != nil {
		log.Printf("ListApplicationsByJob: Error listing applications for job %s: %v", req.JobID, err)
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for job %s", req.JobID))
	}
	return applications, nil
}

// SetApplicationStatus lets the owning employer set an application to
// Pending, Accepted or Rejected from a raw status token. The overwrite is
// unconditional: decisions may be revisited in either direction. Only the
// applicant-side cancel is gated by state.
func (s *jobApplicationService) SetApplicationStatus(ctx context.Context, req *dto.SetApplicationStatusRequest) (*models.JobApplication, error) {
	status, err := normalizeStatusToken(req.Status)
	if err != nil {
		return nil, err
	}

	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		log.Printf("SetApplicationStatus: Error fetching application %s: %v", req.ApplicationID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	jobReq := dto.GetJobByIDRequest{ID: application.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		// Should not happen if the application exists, but handle defensively
		log.Printf("SetApplicationStatus: Error fetching job %s for application %s: %v", application.JobID, req.ApplicationID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching associated job %s", application.JobID))
	}

	profile, err := s.profileRepo.GetByUserID(ctx, req.UserID)
	if err != nil || profile.ID != job.EmployerID {
		log.Printf("SetApplicationStatus: Forbidden attempt by user %s on application %s", req.UserID, req.ApplicationID)
		return nil, ErrForbidden
	}

	updatedApp, err := s.appRepo.UpdateStatus(ctx, application.ID, status)
	if err != nil {
		log.Printf("SetApplicationStatus: Error updating application status for %s: %v", application.ID, err)
		return nil, mapRepoError(err, "updating application status")
	}

	log.Printf("Job application %s set to %s by employer %s", updatedApp.ID, status, profile.ID)
	return updatedApp, nil
}

// CancelApplication lets the applicant cancel their own application while it
// is still Pending. Accepted and Rejected are terminal from the applicant's
// perspective.
func (s *jobApplicationService) CancelApplication(ctx context.Context, req *dto.CancelApplicationRequest) (*models.JobApplication, error) {
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		log.Printf("CancelApplication: Error fetching application %s: %v", req.ApplicationID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	if application.ApplicantID != req.UserID {
		log.Printf("CancelApplication: Forbidden attempt by user %s on application %s owned by %s", req.UserID, req.ApplicationID, application.ApplicantID)
		return nil, ErrForbidden
	}

	if application.Status == models.ApplicationStatusAccepted || application.Status == models.ApplicationStatusRejected {
		log.Printf("CancelApplication: Attempt to cancel processed application %s (status %s)", application.ID, application.Status)
		return nil, fmt.Errorf("%w: application already processed, current status: %s", ErrInvalidState, application.Status)
	}

	updatedApp, err := s.appRepo.UpdateStatus(ctx, application.ID, models.ApplicationStatusCancelled)
	if err != nil {
		log.Printf("CancelApplication: Error updating application status for %s: %v", application.ID, err)
		return nil, mapRepoError(err, "cancelling application")
	}

	log.Printf("Job application %s cancelled by applicant %s", updatedApp.ID, req.UserID)
	return updatedApp, nil
}
