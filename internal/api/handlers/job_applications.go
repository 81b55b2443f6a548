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

// JobApplicationHandler holds dependencies for application operations.
type JobApplicationHandler struct {
	service   services.JobApplicationService
	validator *validator.Validate
}

// NewJobApplicationHandler creates a new JobApplicationHandler.
func NewJobApplicationHandler(service services.JobApplicationService, validate *validator.Validate) *JobApplicationHandler {
	return &JobApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submits an application to an active job. A user may apply to a given job at most once, and employers cannot apply to their own jobs.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        application body      dto.ApplyToJobRequest true  "Application details"
// @Success      201 {object}  dto.JobApplicationResponse "Application submitted"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Cannot apply to own job"
// @Failure      404 {object}  map[string]string "Job Not Found or inactive"
// @Failure      409 {object}  map[string]string "Conflict - Already applied"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *JobApplicationHandler) ApplyToJob(c *gin.Context) {
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

	var req dto.ApplyToJobRequest
	// Body is optional; an empty application (no cover letter) is allowed.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}
	}
	req.JobID = jobID
	req.ApplicantID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.ApplyToJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot apply to your own job"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already applied to this job"})
		} else {
			log.Printf("Error applying to job %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapJobApplicationModelToResponse(app))
}

// ListApplicationsByJob godoc
// @Summary      List applications for a job
// @Description  Retrieves the applications submitted to one of the acting employer's jobs, newest first.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.JobApplicationResponse "Successfully retrieved applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the job's owner"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) ListApplicationsByJob(c *gin.Context) {
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

	var req dto.ListJobApplicationsByJobRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	apps, err := h.service.ListApplicationsByJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this job"})
		} else {
			log.Printf("Error listing applications for job %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		}
		return
	}

	responses := make([]dto.JobApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, MapJobApplicationModelToResponse(app))
	}
	c.JSON(http.StatusOK, responses)
}

// ListMyApplications godoc
// @Summary      List the acting user's applications
// @Description  Retrieves all applications submitted by the acting user, newest first.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.JobApplicationResponse "Successfully retrieved applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListJobApplicationsByApplicantRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.ApplicantID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	apps, err := h.service.ListApplicationsByApplicant(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error listing applications for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	responses := make([]dto.JobApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, MapJobApplicationModelToResponse(app))
	}
	c.JSON(http.StatusOK, responses)
}

// GetApplicationByID godoc
// @Summary      Get an application by ID
// @Description  Retrieves a single application. Visible only to the applicant and the employer who owns the job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.JobApplicationResponse "Successfully retrieved application"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *JobApplicationHandler) GetApplicationByID(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	appID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.GetJobApplicationByIDRequest{ID: appID, UserID: userID}

	app, err := h.service.GetApplicationByID(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot view this application"})
		} else {
			log.Printf("Error fetching application %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(app))
}

// SetApplicationStatus godoc
// @Summary      Accept or reject an application
// @Description  Sets an application's status. Only the employer who owns the job may decide. Tokens accept/accepted, reject/rejected, and pending are recognized case-insensitively; the decision may be revised at any time.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Param        decision body      dto.SetApplicationStatusRequest true  "Status token"
// @Success      200 {object}  dto.JobApplicationResponse "Application updated"
// @Failure      400 {object}  map[string]string "Bad Request - Unrecognized status token"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the job's owner"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *JobApplicationHandler) SetApplicationStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	appID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.SetApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.SetApplicationStatus(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own the job for this application"})
		} else {
			log.Printf("Error updating application %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(app))
}

// CancelApplication godoc
// @Summary      Cancel an application
// @Description  Withdraws a pending application. Only the applicant may cancel, and only while the application is still pending.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  dto.JobApplicationResponse "Application cancelled"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the applicant"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      409 {object}  map[string]string "Conflict - Application already decided"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/cancel [patch]
// @Security     BearerAuth
func (h *JobApplicationHandler) CancelApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	idStr := c.Param("id")
	appID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.CancelApplicationRequest{ApplicationID: appID, UserID: userID}

	app, err := h.service.CancelApplication(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only cancel your own applications"})
		} else if errors.Is(err, services.ErrInvalidState) {
			c.JSON(http.StatusConflict, gin.H{"error": "Only pending applications can be cancelled"})
		} else {
			log.Printf("Error cancelling application %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(app))
}
