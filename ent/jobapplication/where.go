// Code generated by ent, DO NOT EDIT.

package jobapplication

import (
	"job-board-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldJobID, v))
}

// ApplicantID applies equality check predicate on the "applicant_id" field. It's identical to ApplicantIDEQ.
func ApplicantID(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldApplicantID, v))
}

// CoverLetter applies equality check predicate on the "cover_letter" field. It's identical to CoverLetterEQ.
func CoverLetter(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCoverLetter, v))
}

// ResumePath applies equality check predicate on the "resume_path" field. It's identical to ResumePathEQ.
func ResumePath(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldResumePath, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldAppliedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldJobID, vs...))
}

// ApplicantIDEQ applies the EQ predicate on the "applicant_id" field.
func ApplicantIDEQ(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldApplicantID, v))
}

// ApplicantIDNEQ applies the NEQ predicate on the "applicant_id" field.
func ApplicantIDNEQ(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldApplicantID, v))
}

// ApplicantIDIn applies the In predicate on the "applicant_id" field.
func ApplicantIDIn(vs ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldApplicantID, vs...))
}

// ApplicantIDNotIn applies the NotIn predicate on the "applicant_id" field.
func ApplicantIDNotIn(vs ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldApplicantID, vs...))
}

// CoverLetterEQ applies the EQ predicate on the "cover_letter" field.
func CoverLetterEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCoverLetter, v))
}

// CoverLetterNEQ applies the NEQ predicate on the "cover_letter" field.
func CoverLetterNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCoverLetter, v))
}

// CoverLetterIn applies the In predicate on the "cover_letter" field.
func CoverLetterIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCoverLetter, vs...))
}

// CoverLetterNotIn applies the NotIn predicate on the "cover_letter" field.
func CoverLetterNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCoverLetter, vs...))
}

// CoverLetterGT applies the GT predicate on the "cover_letter" field.
func CoverLetterGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCoverLetter, v))
}

// CoverLetterGTE applies the GTE predicate on the "cover_letter" field.
func CoverLetterGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCoverLetter, v))
}

// CoverLetterLT applies the LT predicate on the "cover_letter" field.
func CoverLetterLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCoverLetter, v))
}

// CoverLetterLTE applies the LTE predicate on the "cover_letter" field.
func CoverLetterLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCoverLetter, v))
}

// CoverLetterContains applies the Contains predicate on the "cover_letter" field.
func CoverLetterContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldCoverLetter, v))
}

// CoverLetterHasPrefix applies the HasPrefix predicate on the "cover_letter" field.
func CoverLetterHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldCoverLetter, v))
}

// CoverLetterHasSuffix applies the HasSuffix predicate on the "cover_letter" field.
func CoverLetterHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldCoverLetter, v))
}

// CoverLetterIsNil applies the IsNil predicate on the "cover_letter" field.
func CoverLetterIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldCoverLetter))
}

// CoverLetterNotNil applies the NotNil predicate on the "cover_letter" field.
func CoverLetterNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldCoverLetter))
}

// CoverLetterEqualFold applies the EqualFold predicate on the "cover_letter" field.
func CoverLetterEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldCoverLetter, v))
}

// CoverLetterContainsFold applies the ContainsFold predicate on the "cover_letter" field.
func CoverLetterContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldCoverLetter, v))
}

// ResumePathEQ applies the EQ predicate on the "resume_path" field.
func ResumePathEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldResumePath, v))
}

// ResumePathNEQ applies the NEQ predicate on the "resume_path" field.
func ResumePathNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldResumePath, v))
}

// ResumePathIn applies the In predicate on the "resume_path" field.
func ResumePathIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldResumePath, vs...))
}

// ResumePathNotIn applies the NotIn predicate on the "resume_path" field.
func ResumePathNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldResumePath, vs...))
}

// ResumePathGT applies the GT predicate on the "resume_path" field.
func ResumePathGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldResumePath, v))
}

// ResumePathGTE applies the GTE predicate on the "resume_path" field.
func ResumePathGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldResumePath, v))
}

// ResumePathLT applies the LT predicate on the "resume_path" field.
func ResumePathLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldResumePath, v))
}

// ResumePathLTE applies the LTE predicate on the "resume_path" field.
func ResumePathLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldResumePath, v))
}

// ResumePathContains applies the Contains predicate on the "resume_path" field.
func ResumePathContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldResumePath, v))
}

// ResumePathHasPrefix applies the HasPrefix predicate on the "resume_path" field.
func ResumePathHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldResumePath, v))
}

// ResumePathHasSuffix applies the HasSuffix predicate on the "resume_path" field.
func ResumePathHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldResumePath, v))
}

// ResumePathIsNil applies the IsNil predicate on the "resume_path" field.
func ResumePathIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldResumePath))
}

// ResumePathNotNil applies the NotNil predicate on the "resume_path" field.
func ResumePathNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldResumePath))
}

// ResumePathEqualFold applies the EqualFold predicate on the "resume_path" field.
func ResumePathEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldResumePath, v))
}

// ResumePathContainsFold applies the ContainsFold predicate on the "resume_path" field.
func ResumePathContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldResumePath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldStatus, vs...))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldAppliedAt, v))
}

// HasApplicant applies the HasEdge predicate on the "applicant" edge.
func HasApplicant() predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicantWith applies the HasEdge predicate on the "applicant" edge with a given conditions (other predicates).
func HasApplicantWith(preds ...predicate.User) predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := newApplicantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobApplication) predicate.JobApplication {
	return predicate.JobApplication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobApplication) predicate.JobApplication {
	return predicate.JobApplication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobApplication) predicate.JobApplication {
	return predicate.JobApplication(sql.NotPredicates(p))
}
