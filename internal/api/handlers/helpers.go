package handlers

import (
	"fmt"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"

	"github.com/go-playground/validator"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be %s or greater", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of [%s]", fieldName, fieldError.Param())
		case "url":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid URL", fieldName)
		}
	}
	return errorsMap
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapProfileModelToResponse converts a models.EmployerProfile to a dto.EmployerProfileResponse
func MapProfileModelToResponse(profile *models.EmployerProfile) dto.EmployerProfileResponse {
	return dto.EmployerProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		CompanyName: profile.CompanyName,
		Description: profile.Description,
		Website:     profile.Website,
		CreatedAt:   profile.CreatedAt,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		EmployerID:  job.EmployerID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		SalaryMin:   job.SalaryMin,
		SalaryMax:   job.SalaryMax,
		IsActive:    job.IsActive,
		CreatedAt:   job.CreatedAt,
	}
}

// MapJobApplicationModelToResponse converts a models.JobApplication to a dto.JobApplicationResponse
func MapJobApplicationModelToResponse(app *models.JobApplication) dto.JobApplicationResponse {
	return dto.JobApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		CoverLetter: app.CoverLetter,
		ResumePath:  app.ResumePath,
		Status:      app.Status,
		AppliedAt:   app.AppliedAt,
	}
}
