package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_storage "job-board-api/internal/mocks"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func setupUserServiceTest(t *testing.T) (context.Context, services.UserService, *mock_storage.MockUserRepository, *mock_storage.MockEmployerProfileRepository, *mock_storage.MockTokenStore, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockProfileRepo := mock_storage.NewMockEmployerProfileRepository(ctrl)
	mockTokens := mock_storage.NewMockTokenStore(ctrl)
	// The ent client is only needed for the registration transaction, which
	// these tests never reach.
	userService := services.NewUserService(nil, mockUserRepo, mockProfileRepo, mockTokens, testJWTSecret, 15*time.Minute, 24*time.Hour)
	ctx := context.Background()
	return ctx, userService, mockUserRepo, mockProfileRepo, mockTokens, ctrl
}

func TestUserService_Register_PasswordPolicy(t *testing.T) {
	testCases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1!"},
		{"missing uppercase", "abcdefg123!!!"},
		{"only one uppercase", "Abcdefg123!!!"},
		{"missing digits", "ABcdefgh!!!"},
		{"only two digits", "ABcdefgh12!!!"},
		{"missing symbols", "ABcdefgh123"},
		{"only two symbols", "ABcdefgh123!!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, userService, _, _, _, ctrl := setupUserServiceTest(t)
			defer ctrl.Finish()

			_, err := userService.Register(ctx, &dto.RegisterRequest{
				Email:    "user@example.com",
				Password: tc.password,
				Role:     "Worker",
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, services.ErrInvalidArgument))
		})
	}
}

func TestUserService_Register_PasswordPolicy_ReportsAllProblems(t *testing.T) {
	ctx, userService, _, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	_, err := userService.Register(ctx, &dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "abc",
	})

	require.Error(t, err)
	// Every failed rule appears in a single error message.
	assert.Contains(t, err.Error(), "characters")
	assert.Contains(t, err.Error(), "uppercase")
	assert.Contains(t, err.Error(), "digits")
	assert.Contains(t, err.Error(), "symbols")
}

func TestUserService_Login_Success(t *testing.T) {
	ctx, userService, mockUserRepo, _, mockTokens, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	password := "SEcret123!!!"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "worker@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleWorker,
	}

	mockUserRepo.EXPECT().GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: user.Email}).Return(user, nil).Times(1)
	mockTokens.EXPECT().Save(ctx, gomock.Any(), user.ID, 24*time.Hour).Return(nil).Times(1)

	loggedIn, accessToken, refreshToken, err := userService.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: password})

	require.NoError(t, err)
	assert.Equal(t, user, loggedIn)
	assert.NotEmpty(t, refreshToken)

	// The access token carries the user ID and role.
	claims := &services.AuthClaims{}
	parsed, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, string(models.RoleWorker), claims.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx, userService, mockUserRepo, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("SEcret123!!!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), Email: "worker@example.com", PasswordHash: string(hash), Role: models.RoleWorker}

	mockUserRepo.EXPECT().GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: user.Email}).Return(user, nil).Times(1)

	_, _, _, err = userService.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	ctx, userService, mockUserRepo, _, _, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	mockUserRepo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, storage.ErrNotFound).Times(1)

	_, _, _, err := userService.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	require.Error(t, err)
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	ctx, userService, mockUserRepo, _, mockTokens, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "worker@example.com", Role: models.RoleWorker}
	oldToken := uuid.NewString()

	mockTokens.EXPECT().Get(ctx, oldToken).Return(user.ID, nil).Times(1)
	mockTokens.EXPECT().Delete(ctx, oldToken).Return(nil).Times(1)
	mockUserRepo.EXPECT().GetByID(ctx, &dto.GetUserByIdRequest{ID: user.ID}).Return(user, nil).Times(1)
	mockTokens.EXPECT().Save(ctx, gomock.Any(), user.ID, 24*time.Hour).Return(nil).Times(1)

	refreshed, accessToken, newToken, err := userService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: oldToken})

	require.NoError(t, err)
	assert.Equal(t, user, refreshed)
	assert.NotEmpty(t, accessToken)
	assert.NotEqual(t, oldToken, newToken, "the presented refresh token is single-use")
}

func TestUserService_Refresh_UnknownToken(t *testing.T) {
	ctx, userService, _, _, mockTokens, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	mockTokens.EXPECT().Get(ctx, "bogus").Return(uuid.Nil, storage.ErrNotFound).Times(1)

	_, _, _, err := userService.Refresh(ctx, &dto.RefreshRequest{RefreshToken: "bogus"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Logout_DeletesToken(t *testing.T) {
	ctx, userService, _, _, mockTokens, ctrl := setupUserServiceTest(t)
	defer ctrl.Finish()

	token := uuid.NewString()
	mockTokens.EXPECT().Delete(ctx, token).Return(nil).Times(1)

	err := userService.Logout(ctx, &dto.LogoutRequest{RefreshToken: token})

	require.NoError(t, err)
}
