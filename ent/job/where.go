// Code generated by ent, DO NOT EDIT.

package job

import (
	"job-board-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// EmployerID applies equality check predicate on the "employer_id" field. It's identical to EmployerIDEQ.
func EmployerID(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEmployerID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDescription, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLocation, v))
}

// SalaryMin applies equality check predicate on the "salary_min" field. It's identical to SalaryMinEQ.
func SalaryMin(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSalaryMin, v))
}

// SalaryMax applies equality check predicate on the "salary_max" field. It's identical to SalaryMaxEQ.
func SalaryMax(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSalaryMax, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// EmployerIDEQ applies the EQ predicate on the "employer_id" field.
func EmployerIDEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEmployerID, v))
}

// EmployerIDNEQ applies the NEQ predicate on the "employer_id" field.
func EmployerIDNEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEmployerID, v))
}

// EmployerIDIn applies the In predicate on the "employer_id" field.
func EmployerIDIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEmployerID, vs...))
}

// EmployerIDNotIn applies the NotIn predicate on the "employer_id" field.
func EmployerIDNotIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEmployerID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldDescription, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLocation, v))
}

// SalaryMinEQ applies the EQ predicate on the "salary_min" field.
func SalaryMinEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSalaryMin, v))
}

// SalaryMinNEQ applies the NEQ predicate on the "salary_min" field.
func SalaryMinNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSalaryMin, v))
}

// SalaryMinIn applies the In predicate on the "salary_min" field.
func SalaryMinIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSalaryMin, vs...))
}

// SalaryMinNotIn applies the NotIn predicate on the "salary_min" field.
func SalaryMinNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSalaryMin, vs...))
}

// SalaryMinGT applies the GT predicate on the "salary_min" field.
func SalaryMinGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSalaryMin, v))
}

// SalaryMinGTE applies the GTE predicate on the "salary_min" field.
func SalaryMinGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSalaryMin, v))
}

// SalaryMinLT applies the LT predicate on the "salary_min" field.
func SalaryMinLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSalaryMin, v))
}

// SalaryMinLTE applies the LTE predicate on the "salary_min" field.
func SalaryMinLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSalaryMin, v))
}

// SalaryMinIsNil applies the IsNil predicate on the "salary_min" field.
func SalaryMinIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSalaryMin))
}

// SalaryMinNotNil applies the NotNil predicate on the "salary_min" field.
func SalaryMinNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSalaryMin))
}

// SalaryMaxEQ applies the EQ predicate on the "salary_max" field.
func SalaryMaxEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSalaryMax, v))
}

// SalaryMaxNEQ applies the NEQ predicate on the "salary_max" field.
func SalaryMaxNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSalaryMax, v))
}

// SalaryMaxIn applies the In predicate on the "salary_max" field.
func SalaryMaxIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSalaryMax, vs...))
}

// SalaryMaxNotIn applies the NotIn predicate on the "salary_max" field.
func SalaryMaxNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSalaryMax, vs...))
}

// SalaryMaxGT applies the GT predicate on the "salary_max" field.
func SalaryMaxGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSalaryMax, v))
}

// SalaryMaxGTE applies the GTE predicate on the "salary_max" field.
func SalaryMaxGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSalaryMax, v))
}

// SalaryMaxLT applies the LT predicate on the "salary_max" field.
func SalaryMaxLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSalaryMax, v))
}

// SalaryMaxLTE applies the LTE predicate on the "salary_max" field.
func SalaryMaxLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSalaryMax, v))
}

// SalaryMaxIsNil applies the IsNil predicate on the "salary_max" field.
func SalaryMaxIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSalaryMax))
}

// SalaryMaxNotNil applies the NotNil predicate on the "salary_max" field.
func SalaryMaxNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSalaryMax))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEmployer applies the HasEdge predicate on the "employer" edge.
func HasEmployer() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmployerTable, EmployerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmployerWith applies the HasEdge predicate on the "employer" edge with a given conditions (other predicates).
func HasEmployerWith(preds ...predicate.EmployerProfile) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newEmployerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApplications applies the HasEdge predicate on the "applications" edge.
func HasApplications() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApplicationsTable, ApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicationsWith applies the HasEdge predicate on the "applications" edge with a given conditions (other predicates).
func HasApplicationsWith(preds ...predicate.JobApplication) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
