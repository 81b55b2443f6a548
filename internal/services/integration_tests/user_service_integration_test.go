package integration_tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage/postgres"
	"job-board-api/internal/storage/redisstore"
	"job-board-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A password that satisfies the registration policy: 2 uppercase, 3 digits,
// 3 symbols, at least 8 characters.
const validPassword = "ABsecret123!?."

func setupUserService(t *testing.T, needsRedis bool) (context.Context, services.UserService) {
	t.Helper()
	client, redisClient := getTestClients(t)
	if needsRedis && redisClient == nil {
		t.Skip("TEST_REDIS_URL not set or unreachable; skipping token test")
	}
	ctx := context.Background()
	cleanupTables(ctx, t, client, "job_application", "jobs", "employer_profile", "users")
	cleanupRedis(t, redisClient)

	userRepo := postgres.NewUserRepo(client)
	profileRepo := postgres.NewEmployerProfileRepo(client)
	var tokens *redisstore.TokenStore
	if redisClient != nil {
		tokens = redisstore.NewTokenStore(redisClient)
	}
	return ctx, services.NewUserService(client, userRepo, profileRepo, tokens, "integration-secret", 15*time.Minute, time.Hour)
}

func TestUserService_Integration_RegisterWorker(t *testing.T) {
	ctx, userService := setupUserService(t, false)

	user, err := userService.Register(ctx, &dto.RegisterRequest{
		Email:    "worker@example.com",
		Password: validPassword,
		Role:     "Worker",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleWorker, user.Role)

	// No employer profile is created for workers.
	profileRepo := postgres.NewEmployerProfileRepo(testDB)
	_, err = profileRepo.GetByUserID(ctx, user.ID)
	require.Error(t, err)
}

func TestUserService_Integration_RegisterEmployerCreatesProfile(t *testing.T) {
	ctx, userService := setupUserService(t, false)

	user, err := userService.Register(ctx, &dto.RegisterRequest{
		Email:       "employer@example.com",
		Password:    validPassword,
		Role:        "Employer",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployer, user.Role)

	profileRepo := postgres.NewEmployerProfileRepo(testDB)
	profile, err := profileRepo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", profile.CompanyName)
}

func TestUserService_Integration_RegisterUnknownRoleDefaultsToWorker(t *testing.T) {
	ctx, userService := setupUserService(t, false)

	user, err := userService.Register(ctx, &dto.RegisterRequest{
		Email:    "someone@example.com",
		Password: validPassword,
		Role:     "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleWorker, user.Role)
}

func TestUserService_Integration_RegisterDuplicateEmail(t *testing.T) {
	ctx, userService := setupUserService(t, false)

	_, err := userService.Register(ctx, &dto.RegisterRequest{Email: "dup@example.com", Password: validPassword})
	require.NoError(t, err)

	_, err = userService.Register(ctx, &dto.RegisterRequest{Email: "dup@example.com", Password: validPassword})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestUserService_Integration_LoginRefreshLogout(t *testing.T) {
	ctx, userService := setupUserService(t, true)

	_, err := userService.Register(ctx, &dto.RegisterRequest{Email: "worker@example.com", Password: validPassword})
	require.NoError(t, err)

	// Login
	user, accessToken, refreshToken, err := userService.Login(ctx, &dto.LoginRequest{
		Email:    "worker@example.com",
		Password: validPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, "worker@example.com", user.Email)

	// Wrong password
	_, _, _, err = userService.Login(ctx, &dto.LoginRequest{Email: "worker@example.com", Password: "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))

	// Refresh rotates the token
	_, _, newRefreshToken, err := userService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: refreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, refreshToken, newRefreshToken)

	// The old token no longer works
	_, _, _, err = userService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))

	// Logout revokes the new token
	require.NoError(t, userService.Logout(ctx, &dto.LogoutRequest{RefreshToken: newRefreshToken}))
	_, _, _, err = userService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: newRefreshToken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}
