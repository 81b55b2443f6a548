package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-board-api/ent"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthClaims are the JWT claims carried by access tokens. Subject is the
// user id; Role gates employer/worker-only routes without a DB round trip.
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type userService struct {
	db                *ent.Client
	userRepo          storage.UserRepository
	profileRepo       storage.EmployerProfileRepository
	tokens            storage.TokenStore
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	db *ent.Client,
	userRepo storage.UserRepository,
	profileRepo storage.EmployerProfileRepository,
	tokens storage.TokenStore,
	jwtSecret string,
	jwtExpiration time.Duration,
	refreshExpiration time.Duration,
) UserService {
	return &userService{
		db:                db,
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		tokens:            tokens,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

// Register creates a new account with a fixed role. For Employer
// registrations the user row and its employer profile are written in a
// single transaction so a partial failure leaves no orphaned profile.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	// Role tokens outside the fixed set fall back to Worker, mirroring the
	// two-option registration form.
	role := models.RoleWorker
	if req.Role == string(models.RoleEmployer) {
		role = models.RoleEmployer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Register: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	// --- Transaction Start ---
	tx, err := s.db.Tx(ctx)
	if err != nil {
		log.Printf("Register: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if anything fails

	txUserRepo := s.userRepo.WithTx(tx)
	txProfileRepo := s.profileRepo.WithTx(tx)
	// --- End Transaction Setup ---

	createReq := dto.CreateUserRequest{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	user, err := txUserRepo.Create(ctx, &createReq)
	if err != nil {
		return nil, mapRepoError(err, "creating user")
	}

	if role == models.RoleEmployer {
		profileReq := dto.CreateEmployerProfileRequest{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
		}
		if _, err := txProfileRepo.Create(ctx, &profileReq); err != nil {
			log.Printf("Register: Error creating employer profile for user %s: %v", user.ID, err)
			return nil, mapRepoError(err, "creating employer profile")
		}
	}

	// --- Commit Transaction ---
	if err := tx.Commit(); err != nil {
		log.Printf("Register: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing registration: %w", err)
	}
	// --- End Transaction ---

	log.Printf("User %s registered with role %s", user.ID, role)
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.userRepo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh rotates a refresh token and issues a fresh pair.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*models.User, string, string, error) {
	userID, err := s.tokens.Get(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Refresh: Error looking up refresh token: %v", err)
		return nil, "", "", fmt.Errorf("internal error during refresh: %w", err)
	}

	// Rotate: the presented token is single-use.
	if err := s.tokens.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("Refresh: Error deleting used refresh token: %v", err)
		return nil, "", "", fmt.Errorf("internal error during refresh: %w", err)
	}

	idReq := dto.GetUserByIdRequest{ID: userID}
	user, err := s.userRepo.GetByID(ctx, &idReq)
	if err != nil {
		return nil, "", "", mapRepoError(err, fmt.Sprintf("fetching user %s for refresh", userID))
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Logout revokes the presented refresh token. The access token simply
// expires; there is no denylist.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.tokens.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("Logout: Error deleting refresh token: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *userService) issueTokenPair(ctx context.Context, user *models.User) (string, string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.tokens.Save(ctx, refreshToken, user.ID, s.refreshExpiration); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", user.ID, err)
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}
