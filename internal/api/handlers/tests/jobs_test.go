package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/api/routes"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "route-test-secret"

func setupJobRouter(t *testing.T) (*gin.Engine, *MockJobService, *MockJobApplicationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockJobService := new(MockJobService)
	mockAppService := new(MockJobApplicationService)
	validate := validator.New()

	jobHandler := handlers.NewJobHandler(mockJobService, validate)
	appHandler := handlers.NewJobApplicationHandler(mockAppService, validate)

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	routes.RegisterJobRoutes(
		apiV1,
		jobHandler,
		appHandler,
		middleware.JWTAuthMiddleware(testSecret),
		middleware.OptionalJWTAuthMiddleware(testSecret),
	)
	routes.RegisterJobApplicationRoutes(apiV1, appHandler, middleware.JWTAuthMiddleware(testSecret))
	return router, mockJobService, mockAppService
}

func TestJobRoutes_ListJobs_Public(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	expectedJobs := []*models.Job{
		{ID: uuid.New(), Title: "Backend Developer", IsActive: true},
	}
	mockJobService.On("ListActiveJobs", mock.Anything, mock.Anything).Return(expectedJobs, nil).Once()

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var responses []dto.JobResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
	require.Len(t, responses, 1)
	assert.Equal(t, expectedJobs[0].ID, responses[0].ID)
	mockJobService.AssertExpectations(t)
}

func TestJobRoutes_CreateJob_RequiresToken(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	body, _ := json.Marshal(dto.CreateJobRequest{Title: "Backend Developer", Description: "Build APIs"})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	mockJobService.AssertNotCalled(t, "CreateJob")
}

func TestJobRoutes_CreateJob_WorkerForbidden(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	token, err := generateTestToken(uuid.New(), models.RoleWorker, testSecret, time.Minute)
	require.NoError(t, err)

	body, _ := json.Marshal(dto.CreateJobRequest{Title: "Backend Developer", Description: "Build APIs"})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	mockJobService.AssertNotCalled(t, "CreateJob")
}

func TestJobRoutes_CreateJob_EmployerSuccess(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	userID := uuid.New()
	token, err := generateTestToken(userID, models.RoleEmployer, testSecret, time.Minute)
	require.NoError(t, err)

	createdJob := &models.Job{ID: uuid.New(), EmployerID: uuid.New(), Title: "Backend Developer", Description: "Build APIs", IsActive: true}
	mockJobService.On("CreateJob", mock.Anything, mock.MatchedBy(func(req *dto.CreateJobRequest) bool {
		return req.UserID == userID && req.Title == "Backend Developer"
	})).Return(createdJob, nil).Once()

	body, _ := json.Marshal(dto.CreateJobRequest{Title: "Backend Developer", Description: "Build APIs"})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response dto.JobResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, createdJob.ID, response.ID)
	mockJobService.AssertExpectations(t)
}

func TestJobRoutes_CreateJob_MissingTitle_BadRequest(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	token, err := generateTestToken(uuid.New(), models.RoleEmployer, testSecret, time.Minute)
	require.NoError(t, err)

	body, _ := json.Marshal(dto.CreateJobRequest{Description: "Build APIs"})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockJobService.AssertNotCalled(t, "CreateJob")
}

func TestJobRoutes_GetJobByID_AnonymousWorks(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, Title: "Backend Developer", IsActive: true}
	mockJobService.On("GetJobByID", mock.Anything, mock.MatchedBy(func(req *dto.GetJobByIDRequest) bool {
		return req.ID == jobID && req.ViewerID == uuid.Nil
	})).Return(job, nil).Once()

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID.String(), nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockJobService.AssertExpectations(t)
}

func TestJobRoutes_GetJobByID_PassesViewerIdentity(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	userID := uuid.New()
	token, err := generateTestToken(userID, models.RoleEmployer, testSecret, time.Minute)
	require.NoError(t, err)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, Title: "Backend Developer", IsActive: false}
	mockJobService.On("GetJobByID", mock.Anything, mock.MatchedBy(func(req *dto.GetJobByIDRequest) bool {
		return req.ID == jobID && req.ViewerID == userID
	})).Return(job, nil).Once()

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID.String(), nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockJobService.AssertExpectations(t)
}

func TestJobRoutes_GetJobByID_NotFound(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	jobID := uuid.New()
	mockJobService.On("GetJobByID", mock.Anything, mock.Anything).Return(nil, services.ErrNotFound).Once()

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID.String(), nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestJobRoutes_ApplyToJob_Conflict(t *testing.T) {
	router, _, mockAppService := setupJobRouter(t)

	token, err := generateTestToken(uuid.New(), models.RoleWorker, testSecret, time.Minute)
	require.NoError(t, err)

	jobID := uuid.New()
	mockAppService.On("ApplyToJob", mock.Anything, mock.Anything).Return(nil, services.ErrConflict).Once()

	body, _ := json.Marshal(dto.ApplyToJobRequest{CoverLetter: "Hi"})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/apply", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	mockAppService.AssertExpectations(t)
}

func TestJobRoutes_SetApplicationStatus_WorkerForbidden(t *testing.T) {
	router, _, mockAppService := setupJobRouter(t)

	token, err := generateTestToken(uuid.New(), models.RoleWorker, testSecret, time.Minute)
	require.NoError(t, err)

	body, _ := json.Marshal(dto.SetApplicationStatusRequest{Status: "accept"})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+uuid.NewString()+"/status", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	mockAppService.AssertNotCalled(t, "SetApplicationStatus")
}

func TestJobRoutes_CancelApplication_InvalidStateConflict(t *testing.T) {
	router, _, mockAppService := setupJobRouter(t)

	token, err := generateTestToken(uuid.New(), models.RoleWorker, testSecret, time.Minute)
	require.NoError(t, err)

	mockAppService.On("CancelApplication", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidState).Once()

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+uuid.NewString()+"/cancel", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	mockAppService.AssertExpectations(t)
}

func TestJobRoutes_ExpiredToken_Unauthorized(t *testing.T) {
	router, mockJobService, _ := setupJobRouter(t)

	token, err := generateTestToken(uuid.New(), models.RoleEmployer, testSecret, -time.Minute)
	require.NoError(t, err)

	body, _ := json.Marshal(dto.CreateJobRequest{Title: "Backend Developer", Description: "Build APIs"})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	mockJobService.AssertNotCalled(t, "CreateJob")
}
