// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmployerID holds the string denoting the employer_id field in the database.
	FieldEmployerID = "employer_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldSalaryMin holds the string denoting the salary_min field in the database.
	FieldSalaryMin = "salary_min"
	// FieldSalaryMax holds the string denoting the salary_max field in the database.
	FieldSalaryMax = "salary_max"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEmployer holds the string denoting the employer edge name in mutations.
	EdgeEmployer = "employer"
	// EdgeApplications holds the string denoting the applications edge name in mutations.
	EdgeApplications = "applications"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// EmployerTable is the table that holds the employer relation/edge.
	EmployerTable = "jobs"
	// EmployerInverseTable is the table name for the EmployerProfile entity.
	// It exists in this package in order to avoid circular dependency with the "employerprofile" package.
	EmployerInverseTable = "employer_profile"
	// EmployerColumn is the table column denoting the employer relation/edge.
	EmployerColumn = "employer_id"
	// ApplicationsTable is the table that holds the applications relation/edge.
	ApplicationsTable = "job_application"
	// ApplicationsInverseTable is the table name for the JobApplication entity.
	// It exists in this package in order to avoid circular dependency with the "jobapplication" package.
	ApplicationsInverseTable = "job_application"
	// ApplicationsColumn is the table column denoting the applications relation/edge.
	ApplicationsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldEmployerID,
	FieldTitle,
	FieldDescription,
	FieldLocation,
	FieldSalaryMin,
	FieldSalaryMax,
	FieldIsActive,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// LocationValidator is a validator for the "location" field. It is called by the builders before save.
	LocationValidator func(string) error
	// SalaryMinValidator is a validator for the "salary_min" field. It is called by the builders before save.
	SalaryMinValidator func(float64) error
	// SalaryMaxValidator is a validator for the "salary_max" field. It is called by the builders before save.
	SalaryMaxValidator func(float64) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmployerID orders the results by the employer_id field.
func ByEmployerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployerID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// BySalaryMin orders the results by the salary_min field.
func BySalaryMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalaryMin, opts...).ToFunc()
}

// BySalaryMax orders the results by the salary_max field.
func BySalaryMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalaryMax, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEmployerField orders the results by employer field.
func ByEmployerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmployerStep(), sql.OrderByField(field, opts...))
	}
}

// ByApplicationsCount orders the results by applications count.
func ByApplicationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApplicationsStep(), opts...)
	}
}

// ByApplications orders the results by applications terms.
func ByApplications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEmployerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmployerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EmployerTable, EmployerColumn),
	)
}
func newApplicationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
	)
}
