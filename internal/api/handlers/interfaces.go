package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the auth routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	ListMyJobs(c *gin.Context)
	ToggleJobActive(c *gin.Context)
}

// JobApplicationHandlerInterface defines the methods needed by the application routes.
type JobApplicationHandlerInterface interface {
	ApplyToJob(c *gin.Context)
	ListApplicationsByJob(c *gin.Context)
	ListMyApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	SetApplicationStatus(c *gin.Context)
	CancelApplication(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ JobApplicationHandlerInterface = (*JobApplicationHandler)(nil)
