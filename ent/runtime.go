// Code generated by ent, DO NOT EDIT.

package ent

import (
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/job"
	"job-board-api/ent/jobapplication"
	"job-board-api/ent/schema"
	"job-board-api/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	employerprofileFields := schema.EmployerProfile{}.Fields()
	_ = employerprofileFields
	// employerprofileDescCreatedAt is the schema descriptor for created_at field.
	employerprofileDescCreatedAt := employerprofileFields[5].Descriptor()
	// employerprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	employerprofile.DefaultCreatedAt = employerprofileDescCreatedAt.Default.(func() time.Time)
	// employerprofileDescID is the schema descriptor for id field.
	employerprofileDescID := employerprofileFields[0].Descriptor()
	// employerprofile.DefaultID holds the default value on creation for the id field.
	employerprofile.DefaultID = employerprofileDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescTitle is the schema descriptor for title field.
	jobDescTitle := jobFields[2].Descriptor()
	// job.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	job.TitleValidator = func() func(string) error {
		validators := jobDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescDescription is the schema descriptor for description field.
	jobDescDescription := jobFields[3].Descriptor()
	// job.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	job.DescriptionValidator = jobDescDescription.Validators[0].(func(string) error)
	// jobDescLocation is the schema descriptor for location field.
	jobDescLocation := jobFields[4].Descriptor()
	// job.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	job.LocationValidator = jobDescLocation.Validators[0].(func(string) error)
	// jobDescSalaryMin is the schema descriptor for salary_min field.
	jobDescSalaryMin := jobFields[5].Descriptor()
	// job.SalaryMinValidator is a validator for the "salary_min" field. It is called by the builders before save.
	job.SalaryMinValidator = jobDescSalaryMin.Validators[0].(func(float64) error)
	// jobDescSalaryMax is the schema descriptor for salary_max field.
	jobDescSalaryMax := jobFields[6].Descriptor()
	// job.SalaryMaxValidator is a validator for the "salary_max" field. It is called by the builders before save.
	job.SalaryMaxValidator = jobDescSalaryMax.Validators[0].(func(float64) error)
	// jobDescIsActive is the schema descriptor for is_active field.
	jobDescIsActive := jobFields[7].Descriptor()
	// job.DefaultIsActive holds the default value on creation for the is_active field.
	job.DefaultIsActive = jobDescIsActive.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[8].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	jobapplicationFields := schema.JobApplication{}.Fields()
	_ = jobapplicationFields
	// jobapplicationDescCoverLetter is the schema descriptor for cover_letter field.
	jobapplicationDescCoverLetter := jobapplicationFields[3].Descriptor()
	// jobapplication.CoverLetterValidator is a validator for the "cover_letter" field. It is called by the builders before save.
	jobapplication.CoverLetterValidator = jobapplicationDescCoverLetter.Validators[0].(func(string) error)
	// jobapplicationDescAppliedAt is the schema descriptor for applied_at field.
	jobapplicationDescAppliedAt := jobapplicationFields[6].Descriptor()
	// jobapplication.DefaultAppliedAt holds the default value on creation for the applied_at field.
	jobapplication.DefaultAppliedAt = jobapplicationDescAppliedAt.Default.(func() time.Time)
	// jobapplicationDescID is the schema descriptor for id field.
	jobapplicationDescID := jobapplicationFields[0].Descriptor()
	// jobapplication.DefaultID holds the default value on creation for the id field.
	jobapplication.DefaultID = jobapplicationDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
