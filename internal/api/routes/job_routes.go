package routes

import (
	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs. The public board
// routes stay open; management routes require an Employer token and applying
// requires any authenticated user.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface,
	appHandler handlers.JobApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
	optionalAuthMiddleware gin.HandlerFunc,
) {
	requireEmployer := middleware.RequireRole(models.RoleEmployer)

	jobs := rg.Group("/jobs")
	{
		// Public board
		jobs.GET("", jobHandler.ListJobs)
		// Optional auth so an owner can see their own inactive job
		jobs.GET("/:id", optionalAuthMiddleware, jobHandler.GetJobByID)

		// Employer management
		jobs.POST("", authMiddleware, requireEmployer, jobHandler.CreateJob)
		jobs.GET("/my", authMiddleware, requireEmployer, jobHandler.ListMyJobs)
		jobs.PATCH("/:id/active", authMiddleware, requireEmployer, jobHandler.ToggleJobActive)
		jobs.GET("/:id/applications", authMiddleware, requireEmployer, appHandler.ListApplicationsByJob)

		// Any authenticated user can apply; ownership rules are enforced by
		// the service layer.
		jobs.POST("/:id/apply", authMiddleware, appHandler.ApplyToJob)
	}
}
