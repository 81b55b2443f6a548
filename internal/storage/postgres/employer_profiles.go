package postgres

import (
	"context"
	"fmt"
	"log"

	"job-board-api/ent"
	entprofile "job-board-api/ent/employerprofile"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
)

// EmployerProfileRepo implements the storage.EmployerProfileRepository interface using Ent.
type EmployerProfileRepo struct {
	client *ent.Client
}

// NewEmployerProfileRepo creates a new EmployerProfileRepo.
func NewEmployerProfileRepo(client *ent.Client) *EmployerProfileRepo {
	return &EmployerProfileRepo{client: client}
}

func (r *EmployerProfileRepo) WithTx(tx *ent.Tx) storage.EmployerProfileRepository {
	return &EmployerProfileRepo{client: tx.Client()}
}

// Compile-time check to ensure EmployerProfileRepo implements EmployerProfileRepository
var _ storage.EmployerProfileRepository = (*EmployerProfileRepo)(nil)

func mapEntEmployerProfile(p *ent.EmployerProfile) *models.EmployerProfile {
	return &models.EmployerProfile{
		ID:          p.ID,
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Description: p.Description,
		Website:     p.Website,
		CreatedAt:   p.CreatedAt,
	}
}

func (r *EmployerProfileRepo) Create(ctx context.Context, req *dto.CreateEmployerProfileRequest) (*models.EmployerProfile, error) {
	createdProfile, err := r.client.EmployerProfile.Create().
		SetUserID(req.UserID).
		SetCompanyName(req.CompanyName).
		SetDescription(req.Description).
		SetWebsite(req.Website).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating employer profile (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create employer profile: one profile per user: %w", storage.ErrConflict)
		}
		log.Printf("Error creating employer profile: %v\n", err)
		return nil, fmt.Errorf("failed to create employer profile: %w", err)
	}

	log.Printf("Employer profile created successfully with ID: %s", createdProfile.ID)
	return mapEntEmployerProfile(createdProfile), nil
}

func (r *EmployerProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.EmployerProfile, error) {
	p, err := r.client.EmployerProfile.Get(ctx, id)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Employer profile not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving employer profile by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get employer profile by ID %s: %w", id, err)
	}

	return mapEntEmployerProfile(p), nil
}

func (r *EmployerProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.EmployerProfile, error) {
	p, err := r.client.EmployerProfile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving employer profile for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to get employer profile for user %s: %w", userID, err)
	}

	return mapEntEmployerProfile(p), nil
}

func (r *EmployerProfileRepo) Update(ctx context.Context, req *dto.UpdateEmployerProfileRequest) (*models.EmployerProfile, error) {
	updateQuery := r.client.EmployerProfile.UpdateOneID(req.ID)
	if req.CompanyName != nil {
		updateQuery = updateQuery.SetCompanyName(*req.CompanyName)
	}
	if req.Description != nil {
		updateQuery = updateQuery.SetDescription(*req.Description)
	}
	if req.Website != nil {
		updateQuery = updateQuery.SetWebsite(*req.Website)
	}

	updatedProfile, err := updateQuery.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Employer profile not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating employer profile %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update employer profile: %w", err)
	}

	return mapEntEmployerProfile(updatedProfile), nil
}
