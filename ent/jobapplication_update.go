// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"job-board-api/ent/jobapplication"
	"job-board-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// JobApplicationUpdate is the builder for updating JobApplication entities.
type JobApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *JobApplicationMutation
}

// Where appends a list predicates to the JobApplicationUpdate builder.
func (jau *JobApplicationUpdate) Where(ps ...predicate.JobApplication) *JobApplicationUpdate {
	jau.mutation.Where(ps...)
	return jau
}

// SetCoverLetter sets the "cover_letter" field.
func (jau *JobApplicationUpdate) SetCoverLetter(s string) *JobApplicationUpdate {
	jau.mutation.SetCoverLetter(s)
	return jau
}

// SetNillableCoverLetter sets the "cover_letter" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableCoverLetter(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetCoverLetter(*s)
	}
	return jau
}

// ClearCoverLetter clears the value of the "cover_letter" field.
func (jau *JobApplicationUpdate) ClearCoverLetter() *JobApplicationUpdate {
	jau.mutation.ClearCoverLetter()
	return jau
}

// SetResumePath sets the "resume_path" field.
func (jau *JobApplicationUpdate) SetResumePath(s string) *JobApplicationUpdate {
	jau.mutation.SetResumePath(s)
	return jau
}

// SetNillableResumePath sets the "resume_path" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableResumePath(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetResumePath(*s)
	}
	return jau
}

// ClearResumePath clears the value of the "resume_path" field.
func (jau *JobApplicationUpdate) ClearResumePath() *JobApplicationUpdate {
	jau.mutation.ClearResumePath()
	return jau
}

// SetStatus sets the "status" field.
func (jau *JobApplicationUpdate) SetStatus(j jobapplication.Status) *JobApplicationUpdate {
	jau.mutation.SetStatus(j)
	return jau
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableStatus(j *jobapplication.Status) *JobApplicationUpdate {
	if j != nil {
		jau.SetStatus(*j)
	}
	return jau
}

// Mutation returns the JobApplicationMutation object of the builder.
func (jau *JobApplicationUpdate) Mutation() *JobApplicationMutation {
	return jau.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (jau *JobApplicationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, jau.sqlSave, jau.mutation, jau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (jau *JobApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := jau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (jau *JobApplicationUpdate) Exec(ctx context.Context) error {
	_, err := jau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jau *JobApplicationUpdate) ExecX(ctx context.Context) {
	if err := jau.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jau *JobApplicationUpdate) check() error {
	if v, ok := jau.mutation.CoverLetter(); ok {
		if err := jobapplication.CoverLetterValidator(v); err != nil {
			return &ValidationError{Name: "cover_letter", err: fmt.Errorf(`ent: validator failed for field "JobApplication.cover_letter": %w`, err)}
		}
	}
	if v, ok := jau.mutation.Status(); ok {
		if err := jobapplication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobApplication.status": %w`, err)}
		}
	}
	if jau.mutation.ApplicantCleared() && len(jau.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobApplication.applicant"`)
	}
	if jau.mutation.JobCleared() && len(jau.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobApplication.job"`)
	}
	return nil
}

func (jau *JobApplicationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := jau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobapplication.Table, jobapplication.Columns, sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID))
	if ps := jau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := jau.mutation.CoverLetter(); ok {
		_spec.SetField(jobapplication.FieldCoverLetter, field.TypeString, value)
	}
	if jau.mutation.CoverLetterCleared() {
		_spec.ClearField(jobapplication.FieldCoverLetter, field.TypeString)
	}
	if value, ok := jau.mutation.ResumePath(); ok {
		_spec.SetField(jobapplication.FieldResumePath, field.TypeString, value)
	}
	if jau.mutation.ResumePathCleared() {
		_spec.ClearField(jobapplication.FieldResumePath, field.TypeString)
	}
	if value, ok := jau.mutation.Status(); ok {
		_spec.SetField(jobapplication.FieldStatus, field.TypeEnum, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, jau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	jau.mutation.done = true
	return n, nil
}

// JobApplicationUpdateOne is the builder for updating a single JobApplication entity.
type JobApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobApplicationMutation
}

// SetCoverLetter sets the "cover_letter" field.
func (jauo *JobApplicationUpdateOne) SetCoverLetter(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetCoverLetter(s)
	return jauo
}

// SetNillableCoverLetter sets the "cover_letter" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableCoverLetter(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetCoverLetter(*s)
	}
	return jauo
}

// ClearCoverLetter clears the value of the "cover_letter" field.
func (jauo *JobApplicationUpdateOne) ClearCoverLetter() *JobApplicationUpdateOne {
	jauo.mutation.ClearCoverLetter()
	return jauo
}

// SetResumePath sets the "resume_path" field.
func (jauo *JobApplicationUpdateOne) SetResumePath(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetResumePath(s)
	return jauo
}

// SetNillableResumePath sets the "resume_path" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableResumePath(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetResumePath(*s)
	}
	return jauo
}

// ClearResumePath clears the value of the "resume_path" field.
func (jauo *JobApplicationUpdateOne) ClearResumePath() *JobApplicationUpdateOne {
	jauo.mutation.ClearResumePath()
	return jauo
}

// SetStatus sets the "status" field.
func (jauo *JobApplicationUpdateOne) SetStatus(j jobapplication.Status) *JobApplicationUpdateOne {
	jauo.mutation.SetStatus(j)
	return jauo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableStatus(j *jobapplication.Status) *JobApplicationUpdateOne {
	if j != nil {
		jauo.SetStatus(*j)
	}
	return jauo
}

// Mutation returns the JobApplicationMutation object of the builder.
func (jauo *JobApplicationUpdateOne) Mutation() *JobApplicationMutation {
	return jauo.mutation
}

// Where appends a list predicates to the JobApplicationUpdate builder.
func (jauo *JobApplicationUpdateOne) Where(ps ...predicate.JobApplication) *JobApplicationUpdateOne {
	jauo.mutation.Where(ps...)
	return jauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (jauo *JobApplicationUpdateOne) Select(field string, fields ...string) *JobApplicationUpdateOne {
	jauo.fields = append([]string{field}, fields...)
	return jauo
}

// Save executes the query and returns the updated JobApplication entity.
func (jauo *JobApplicationUpdateOne) Save(ctx context.Context) (*JobApplication, error) {
	return withHooks(ctx, jauo.sqlSave, jauo.mutation, jauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (jauo *JobApplicationUpdateOne) SaveX(ctx context.Context) *JobApplication {
	node, err := jauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (jauo *JobApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := jauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jauo *JobApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := jauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jauo *JobApplicationUpdateOne) check() error {
	if v, ok := jauo.mutation.CoverLetter(); ok {
		if err := jobapplication.CoverLetterValidator(v); err != nil {
			return &ValidationError{Name: "cover_letter", err: fmt.Errorf(`ent: validator failed for field "JobApplication.cover_letter": %w`, err)}
		}
	}
	if v, ok := jauo.mutation.Status(); ok {
		if err := jobapplication.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobApplication.status": %w`, err)}
		}
	}
	if jauo.mutation.ApplicantCleared() && len(jauo.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobApplication.applicant"`)
	}
	if jauo.mutation.JobCleared() && len(jauo.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobApplication.job"`)
	}
	return nil
}

func (jauo *JobApplicationUpdateOne) sqlSave(ctx context.Context) (_node *JobApplication, err error) {
	if err := jauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobapplication.Table, jobapplication.Columns, sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID))
	id, ok := jauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobApplication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := jauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobapplication.FieldID)
		for _, f := range fields {
			if !jobapplication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobapplication.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := jauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := jauo.mutation.CoverLetter(); ok {
		_spec.SetField(jobapplication.FieldCoverLetter, field.TypeString, value)
	}
	if jauo.mutation.CoverLetterCleared() {
		_spec.ClearField(jobapplication.FieldCoverLetter, field.TypeString)
	}
	if value, ok := jauo.mutation.ResumePath(); ok {
		_spec.SetField(jobapplication.FieldResumePath, field.TypeString, value)
	}
	if jauo.mutation.ResumePathCleared() {
		_spec.ClearField(jobapplication.FieldResumePath, field.TypeString)
	}
	if value, ok := jauo.mutation.Status(); ok {
		_spec.SetField(jobapplication.FieldStatus, field.TypeEnum, value)
	}
	_node = &JobApplication{config: jauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, jauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	jauo.mutation.done = true
	return _node, nil
}
