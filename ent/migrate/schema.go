// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EmployerProfileColumns holds the columns for the "employer_profile" table.
	EmployerProfileColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// EmployerProfileTable holds the schema information for the "employer_profile" table.
	EmployerProfileTable = &schema.Table{
		Name:       "employer_profile",
		Columns:    EmployerProfileColumns,
		PrimaryKey: []*schema.Column{EmployerProfileColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "employer_profile_users_employer_profile",
				Columns:    []*schema.Column{EmployerProfileColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "salary_min", Type: field.TypeFloat64, Nullable: true},
		{Name: "salary_max", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "employer_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_employer_profile_jobs",
				Columns:    []*schema.Column{JobsColumns[8]},
				RefColumns: []*schema.Column{EmployerProfileColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// JobApplicationColumns holds the columns for the "job_application" table.
	JobApplicationColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "cover_letter", Type: field.TypeString, Nullable: true, Size: 4000},
		{Name: "resume_path", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Pending", "Accepted", "Rejected", "Cancelled"}, Default: "Pending"},
		{Name: "applied_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "applicant_id", Type: field.TypeUUID},
	}
	// JobApplicationTable holds the schema information for the "job_application" table.
	JobApplicationTable = &schema.Table{
		Name:       "job_application",
		Columns:    JobApplicationColumns,
		PrimaryKey: []*schema.Column{JobApplicationColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_application_jobs_applications",
				Columns:    []*schema.Column{JobApplicationColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "job_application_users_applications",
				Columns:    []*schema.Column{JobApplicationColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobapplication_job_id_applicant_id",
				Unique:  true,
				Columns: []*schema.Column{JobApplicationColumns[5], JobApplicationColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString, Size: 2147483647},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"Employer", "Worker"}, Default: "Worker"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EmployerProfileTable,
		JobsTable,
		JobApplicationTable,
		UsersTable,
	}
)

func init() {
	EmployerProfileTable.ForeignKeys[0].RefTable = UsersTable
	EmployerProfileTable.Annotation = &entsql.Annotation{
		Table: "employer_profile",
	}
	JobsTable.ForeignKeys[0].RefTable = EmployerProfileTable
	JobApplicationTable.ForeignKeys[0].RefTable = JobsTable
	JobApplicationTable.ForeignKeys[1].RefTable = UsersTable
	JobApplicationTable.Annotation = &entsql.Annotation{
		Table: "job_application",
	}
}
