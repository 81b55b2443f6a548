package postgres

import (
	"context"
	"fmt"
	"log"

	"job-board-api/ent"
	entapp "job-board-api/ent/jobapplication"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

// JobApplicationRepo implements the storage.JobApplicationRepository interface using Ent.
type JobApplicationRepo struct {
	client *ent.Client
}

// NewJobApplicationRepo creates a new JobApplicationRepo.
func NewJobApplicationRepo(client *ent.Client) *JobApplicationRepo {
	return &JobApplicationRepo{client: client}
}

func (r *JobApplicationRepo) WithTx(tx *ent.Tx) storage.JobApplicationRepository {
	return &JobApplicationRepo{client: tx.Client()}
}

// Compile-time check to ensure JobApplicationRepo implements JobApplicationRepository
var _ storage.JobApplicationRepository = (*JobApplicationRepo)(nil)

func mapEntJobApplication(a *ent.JobApplication) *models.JobApplication {
	return &models.JobApplication{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		CoverLetter: a.CoverLetter,
		ResumePath:  a.ResumePath,
		Status:      models.ApplicationStatus(a.Status),
		AppliedAt:   a.AppliedAt,
	}
}

func mapEntJobApplications(entApps []*ent.JobApplication) []*models.JobApplication {
	apps := make([]*models.JobApplication, 0, len(entApps))
	for _, a := range entApps {
		apps = append(apps, mapEntJobApplication(a))
	}
	return apps
}

func (r *JobApplicationRepo) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	createQuery := r.client.JobApplication.Create().
		SetJobID(req.JobID).
		SetApplicantID(req.ApplicantID).
		SetStatus(entapp.StatusPending)

	if req.CoverLetter != "" {
		createQuery = createQuery.SetCoverLetter(req.CoverLetter)
	}
	if req.ResumePath != "" {
		createQuery = createQuery.SetResumePath(req.ResumePath)
	}

	createdApp, err := createQuery.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating job application (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create job application: unique constraint or foreign key violation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job application: %v\n", err)
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}

	log.Printf("Job application created successfully with ID: %s", createdApp.ID)
	return mapEntJobApplication(createdApp), nil
}

func (r *JobApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	a, err := r.client.JobApplication.Get(ctx, id)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Job application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving job application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job application by ID %s: %w", id, err)
	}

	return mapEntJobApplication(a), nil
}

func (r *JobApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.JobApplication, error) {
	a, err := r.client.JobApplication.Query().
		Where(entapp.JobID(jobID), entapp.ApplicantID(applicantID)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error querying job application for job %s and applicant %s: %v\n", jobID, applicantID, err)
		return nil, fmt.Errorf("failed to get job application by job and applicant: %w", err)
	}

	return mapEntJobApplication(a), nil
}

func (r *JobApplicationRepo) ListByJob(ctx context.Context, req *dto.ListJobApplicationsByJobRequest) ([]*models.JobApplication, error) {
	entApps, err := r.client.JobApplication.Query().
		Where(entapp.JobID(req.JobID)).
		Order(ent.Desc(entapp.FieldAppliedAt)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying job applications by job ID %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to list job applications by job: %w", err)
	}

	return mapEntJobApplications(entApps), nil
}

func (r *JobApplicationRepo) ListByApplicant(ctx context.Context, req *dto.ListJobApplicationsByApplicantRequest) ([]*models.JobApplication, error) {
	entApps, err := r.client.JobApplication.Query().
		Where(entapp.ApplicantID(req.ApplicantID)).
		Order(ent.Desc(entapp.FieldAppliedAt)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying job applications by applicant ID %s: %v\n", req.ApplicantID, err)
		return nil, fmt.Errorf("failed to list job applications by applicant: %w", err)
	}

	return mapEntJobApplications(entApps), nil
}

func (r *JobApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error) {
	updatedApp, err := r.client.JobApplication.UpdateOneID(id).
		SetStatus(entapp.Status(status)).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Job application not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job application status for ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update job application status: %w", err)
	}

	return mapEntJobApplication(updatedApp), nil
}
