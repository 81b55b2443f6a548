package postgres

import (
	"context"
	"fmt"
	"log"

	"job-board-api/ent"
	entjob "job-board-api/ent/job"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

// JobRepo implements the storage.JobRepository interface using Ent.
type JobRepo struct {
	client *ent.Client
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(client *ent.Client) *JobRepo {
	return &JobRepo{client: client}
}

func (r *JobRepo) WithTx(tx *ent.Tx) storage.JobRepository {
	return &JobRepo{client: tx.Client()}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func mapEntJob(j *ent.Job) *models.Job {
	return &models.Job{
		ID:          j.ID,
		EmployerID:  j.EmployerID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		IsActive:    j.IsActive,
		CreatedAt:   j.CreatedAt,
	}
}

func mapEntJobs(entJobs []*ent.Job) []*models.Job {
	jobs := make([]*models.Job, 0, len(entJobs))
	for _, j := range entJobs {
		jobs = append(jobs, mapEntJob(j))
	}
	return jobs
}

func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	createQuery := r.client.Job.Create().
		SetEmployerID(req.EmployerID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetIsActive(true)

	if req.Location != "" {
		createQuery = createQuery.SetLocation(req.Location)
	}
	if req.SalaryMin != nil {
		createQuery = createQuery.SetSalaryMin(*req.SalaryMin)
	}
	if req.SalaryMax != nil {
		createQuery = createQuery.SetSalaryMax(*req.SalaryMax)
	}

	createdJob, err := createQuery.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating job (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create job: foreign key violation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", createdJob.ID)
	return mapEntJob(createdJob), nil
}

func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	j, err := r.client.Job.Get(ctx, req.ID)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Job not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}

	return mapEntJob(j), nil
}

func (r *JobRepo) ListActive(ctx context.Context, req *dto.ListActiveJobsRequest) ([]*models.Job, error) {
	listQuery := r.client.Job.Query().
		Where(entjob.IsActive(true)).
		Order(ent.Desc(entjob.FieldCreatedAt)).
		Limit(req.Limit).
		Offset(req.Offset)

	if req.Location != "" {
		listQuery = listQuery.Where(entjob.LocationContainsFold(req.Location))
	}

	entJobs, err := listQuery.All(ctx)
	if err != nil {
		log.Printf("Error querying active jobs: %v\n", err)
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}

	return mapEntJobs(entJobs), nil
}

func (r *JobRepo) ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*models.Job, error) {
	entJobs, err := r.client.Job.Query().
		Where(entjob.EmployerID(req.EmployerID)).
		Order(ent.Desc(entjob.FieldCreatedAt)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying jobs by employer ID %s: %v\n", req.EmployerID, err)
		return nil, fmt.Errorf("failed to list jobs by employer: %w", err)
	}

	return mapEntJobs(entJobs), nil
}

func (r *JobRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Job, error) {
	updatedJob, err := r.client.Job.UpdateOneID(id).
		SetIsActive(active).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Job not found for active update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job active flag for ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update job active flag: %w", err)
	}

	return mapEntJob(updatedJob), nil
}
