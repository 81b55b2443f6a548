package routes

import (
	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobApplicationRoutes registers routes addressed by application ID.
// All of them require authentication; the service layer decides whether the
// acting user is the applicant or the owning employer.
func RegisterJobApplicationRoutes(
	rg *gin.RouterGroup,
	appHandler handlers.JobApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	apps := rg.Group("/applications")
	apps.Use(authMiddleware)
	{
		apps.GET("/my", middleware.RequireRole(models.RoleWorker), appHandler.ListMyApplications)
		apps.GET("/:id", appHandler.GetApplicationByID)
		apps.PATCH("/:id/status", middleware.RequireRole(models.RoleEmployer), appHandler.SetApplicationStatus)
		apps.PATCH("/:id/cancel", appHandler.CancelApplication)
	}
}
