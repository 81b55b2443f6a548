package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// ListJobs godoc
// @Summary      List active jobs
// @Description  Retrieves the public board of active job postings, newest first. Supports pagination and an optional location filter.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Param        location query string false "Location filter (exact match)"
// @Success      200 {array}   dto.JobResponse "Successfully retrieved jobs"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid query parameters"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListActiveJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.service.ListActiveJobs(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing active jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, MapJobModelToJobResponse(job))
	}
	c.JSON(http.StatusOK, responses)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Retrieves details for a specific job. Inactive jobs are only visible to the employer who owns them; everyone else sees a 404.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Successfully retrieved job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	// Anonymous viewers have no identity; the service treats uuid.Nil as
	// "not the owner".
	req := dto.GetJobByIDRequest{ID: jobID}
	if viewerID, err := middleware.GetUserIDFromContext(c); err == nil {
		req.ViewerID = viewerID
	}

	job, err := h.service.GetJobByID(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Error fetching job by ID %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Adds a new job posting owned by the acting employer's profile. The job starts active.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - No employer profile"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	req.UserID = userID

	createdJob, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "An employer profile is required to post jobs"})
		} else if errors.Is(err, services.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error creating job: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(createdJob))
}

// ListMyJobs godoc
// @Summary      List the acting employer's jobs
// @Description  Retrieves all jobs posted by the acting employer, including inactive ones, newest first.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.JobResponse "Successfully retrieved jobs"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - No employer profile"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/my [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListJobsByEmployerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	req.UserID = userID

	jobs, err := h.service.ListJobsByEmployer(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "An employer profile is required"})
		} else {
			log.Printf("Error listing jobs for employer %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		}
		return
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, MapJobModelToJobResponse(job))
	}
	c.JSON(http.StatusOK, responses)
}

// ToggleJobActive godoc
// @Summary      Toggle a job's active flag
// @Description  Flips the job between active and inactive. Only the employer who owns the job may toggle it. Existing applications are unaffected.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Job updated"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/active [patch]
// @Security     BearerAuth
func (h *JobHandler) ToggleJobActive(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.ToggleJobActiveRequest{ID: jobID, UserID: userID}

	job, err := h.service.ToggleJobActive(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this job"})
		} else {
			log.Printf("Error toggling job %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}
