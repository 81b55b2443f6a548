package postgres

import (
	"context"
	"fmt"
	"log"

	"job-board-api/ent"
	entuser "job-board-api/ent/user"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"
)

// UserRepo implements the storage.UserRepository interface using Ent.
type UserRepo struct {
	client *ent.Client
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *ent.Client) *UserRepo {
	return &UserRepo{client: client}
}

func (r *UserRepo) WithTx(tx *ent.Tx) storage.UserRepository {
	return &UserRepo{client: tx.Client()}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func mapEntUser(u *ent.User) *models.User {
	return &models.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         models.Role(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	createdUser, err := r.client.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(req.PasswordHash).
		SetRole(entuser.Role(req.Role)).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating user (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create user: %w", storage.ErrDuplicateEmail)
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", createdUser.ID)
	return mapEntUser(createdUser), nil
}

func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	u, err := r.client.User.Get(ctx, req.ID)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}

	return mapEntUser(u), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	u, err := r.client.User.Query().
		Where(entuser.Email(req.Email)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving user by email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mapEntUser(u), nil
}
