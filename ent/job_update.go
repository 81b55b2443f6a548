// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"job-board-api/ent/job"
	"job-board-api/ent/jobapplication"
	"job-board-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (ju *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	ju.mutation.Where(ps...)
	return ju
}

// SetTitle sets the "title" field.
func (ju *JobUpdate) SetTitle(s string) *JobUpdate {
	ju.mutation.SetTitle(s)
	return ju
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ju *JobUpdate) SetNillableTitle(s *string) *JobUpdate {
	if s != nil {
		ju.SetTitle(*s)
	}
	return ju
}

// SetDescription sets the "description" field.
func (ju *JobUpdate) SetDescription(s string) *JobUpdate {
	ju.mutation.SetDescription(s)
	return ju
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ju *JobUpdate) SetNillableDescription(s *string) *JobUpdate {
	if s != nil {
		ju.SetDescription(*s)
	}
	return ju
}

// SetLocation sets the "location" field.
func (ju *JobUpdate) SetLocation(s string) *JobUpdate {
	ju.mutation.SetLocation(s)
	return ju
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (ju *JobUpdate) SetNillableLocation(s *string) *JobUpdate {
	if s != nil {
		ju.SetLocation(*s)
	}
	return ju
}

// ClearLocation clears the value of the "location" field.
func (ju *JobUpdate) ClearLocation() *JobUpdate {
	ju.mutation.ClearLocation()
	return ju
}

// SetSalaryMin sets the "salary_min" field.
func (ju *JobUpdate) SetSalaryMin(f float64) *JobUpdate {
	ju.mutation.ResetSalaryMin()
	ju.mutation.SetSalaryMin(f)
	return ju
}

// SetNillableSalaryMin sets the "salary_min" field if the given value is not nil.
func (ju *JobUpdate) SetNillableSalaryMin(f *float64) *JobUpdate {
	if f != nil {
		ju.SetSalaryMin(*f)
	}
	return ju
}

// AddSalaryMin adds f to the "salary_min" field.
func (ju *JobUpdate) AddSalaryMin(f float64) *JobUpdate {
	ju.mutation.AddSalaryMin(f)
	return ju
}

// ClearSalaryMin clears the value of the "salary_min" field.
func (ju *JobUpdate) ClearSalaryMin() *JobUpdate {
	ju.mutation.ClearSalaryMin()
	return ju
}

// SetSalaryMax sets the "salary_max" field.
func (ju *JobUpdate) SetSalaryMax(f float64) *JobUpdate {
	ju.mutation.ResetSalaryMax()
	ju.mutation.SetSalaryMax(f)
	return ju
}

// SetNillableSalaryMax sets the "salary_max" field if the given value is not nil.
func (ju *JobUpdate) SetNillableSalaryMax(f *float64) *JobUpdate {
	if f != nil {
		ju.SetSalaryMax(*f)
	}
	return ju
}

// AddSalaryMax adds f to the "salary_max" field.
func (ju *JobUpdate) AddSalaryMax(f float64) *JobUpdate {
	ju.mutation.AddSalaryMax(f)
	return ju
}

// ClearSalaryMax clears the value of the "salary_max" field.
func (ju *JobUpdate) ClearSalaryMax() *JobUpdate {
	ju.mutation.ClearSalaryMax()
	return ju
}

// SetIsActive sets the "is_active" field.
func (ju *JobUpdate) SetIsActive(b bool) *JobUpdate {
	ju.mutation.SetIsActive(b)
	return ju
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ju *JobUpdate) SetNillableIsActive(b *bool) *JobUpdate {
	if b != nil {
		ju.SetIsActive(*b)
	}
	return ju
}

// AddApplicationIDs adds the "applications" edge to the JobApplication entity by IDs.
func (ju *JobUpdate) AddApplicationIDs(ids ...uuid.UUID) *JobUpdate {
	ju.mutation.AddApplicationIDs(ids...)
	return ju
}

// AddApplications adds the "applications" edges to the JobApplication entity.
func (ju *JobUpdate) AddApplications(j ...*JobApplication) *JobUpdate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return ju.AddApplicationIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (ju *JobUpdate) Mutation() *JobMutation {
	return ju.mutation
}

// ClearApplications clears all "applications" edges to the JobApplication entity.
func (ju *JobUpdate) ClearApplications() *JobUpdate {
	ju.mutation.ClearApplications()
	return ju
}

// RemoveApplicationIDs removes the "applications" edge to JobApplication entities by IDs.
func (ju *JobUpdate) RemoveApplicationIDs(ids ...uuid.UUID) *JobUpdate {
	ju.mutation.RemoveApplicationIDs(ids...)
	return ju
}

// RemoveApplications removes "applications" edges to JobApplication entities.
func (ju *JobUpdate) RemoveApplications(j ...*JobApplication) *JobUpdate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return ju.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ju *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ju.sqlSave, ju.mutation, ju.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ju *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := ju.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ju *JobUpdate) Exec(ctx context.Context) error {
	_, err := ju.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ju *JobUpdate) ExecX(ctx context.Context) {
	if err := ju.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ju *JobUpdate) check() error {
	if v, ok := ju.mutation.Title(); ok {
		if err := job.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Job.title": %w`, err)}
		}
	}
	if v, ok := ju.mutation.Description(); ok {
		if err := job.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Job.description": %w`, err)}
		}
	}
	if v, ok := ju.mutation.Location(); ok {
		if err := job.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Job.location": %w`, err)}
		}
	}
	if v, ok := ju.mutation.SalaryMin(); ok {
		if err := job.SalaryMinValidator(v); err != nil {
			return &ValidationError{Name: "salary_min", err: fmt.Errorf(`ent: validator failed for field "Job.salary_min": %w`, err)}
		}
	}
	if v, ok := ju.mutation.SalaryMax(); ok {
		if err := job.SalaryMaxValidator(v); err != nil {
			return &ValidationError{Name: "salary_max", err: fmt.Errorf(`ent: validator failed for field "Job.salary_max": %w`, err)}
		}
	}
	if ju.mutation.EmployerCleared() && len(ju.mutation.EmployerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.employer"`)
	}
	return nil
}

func (ju *JobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ju.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := ju.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ju.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := ju.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if value, ok := ju.mutation.Location(); ok {
		_spec.SetField(job.FieldLocation, field.TypeString, value)
	}
	if ju.mutation.LocationCleared() {
		_spec.ClearField(job.FieldLocation, field.TypeString)
	}
	if value, ok := ju.mutation.SalaryMin(); ok {
		_spec.SetField(job.FieldSalaryMin, field.TypeFloat64, value)
	}
	if value, ok := ju.mutation.AddedSalaryMin(); ok {
		_spec.AddField(job.FieldSalaryMin, field.TypeFloat64, value)
	}
	if ju.mutation.SalaryMinCleared() {
		_spec.ClearField(job.FieldSalaryMin, field.TypeFloat64)
	}
	if value, ok := ju.mutation.SalaryMax(); ok {
		_spec.SetField(job.FieldSalaryMax, field.TypeFloat64, value)
	}
	if value, ok := ju.mutation.AddedSalaryMax(); ok {
		_spec.AddField(job.FieldSalaryMax, field.TypeFloat64, value)
	}
	if ju.mutation.SalaryMaxCleared() {
		_spec.ClearField(job.FieldSalaryMax, field.TypeFloat64)
	}
	if value, ok := ju.mutation.IsActive(); ok {
		_spec.SetField(job.FieldIsActive, field.TypeBool, value)
	}
	if ju.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ju.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !ju.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ju.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ju.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ju.mutation.done = true
	return n, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetTitle sets the "title" field.
func (juo *JobUpdateOne) SetTitle(s string) *JobUpdateOne {
	juo.mutation.SetTitle(s)
	return juo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableTitle(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetTitle(*s)
	}
	return juo
}

// SetDescription sets the "description" field.
func (juo *JobUpdateOne) SetDescription(s string) *JobUpdateOne {
	juo.mutation.SetDescription(s)
	return juo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableDescription(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetDescription(*s)
	}
	return juo
}

// SetLocation sets the "location" field.
func (juo *JobUpdateOne) SetLocation(s string) *JobUpdateOne {
	juo.mutation.SetLocation(s)
	return juo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableLocation(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetLocation(*s)
	}
	return juo
}

// ClearLocation clears the value of the "location" field.
func (juo *JobUpdateOne) ClearLocation() *JobUpdateOne {
	juo.mutation.ClearLocation()
	return juo
}

// SetSalaryMin sets the "salary_min" field.
func (juo *JobUpdateOne) SetSalaryMin(f float64) *JobUpdateOne {
	juo.mutation.ResetSalaryMin()
	juo.mutation.SetSalaryMin(f)
	return juo
}

// SetNillableSalaryMin sets the "salary_min" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableSalaryMin(f *float64) *JobUpdateOne {
	if f != nil {
		juo.SetSalaryMin(*f)
	}
	return juo
}

// AddSalaryMin adds f to the "salary_min" field.
func (juo *JobUpdateOne) AddSalaryMin(f float64) *JobUpdateOne {
	juo.mutation.AddSalaryMin(f)
	return juo
}

// ClearSalaryMin clears the value of the "salary_min" field.
func (juo *JobUpdateOne) ClearSalaryMin() *JobUpdateOne {
	juo.mutation.ClearSalaryMin()
	return juo
}

// SetSalaryMax sets the "salary_max" field.
func (juo *JobUpdateOne) SetSalaryMax(f float64) *JobUpdateOne {
	juo.mutation.ResetSalaryMax()
	juo.mutation.SetSalaryMax(f)
	return juo
}

// SetNillableSalaryMax sets the "salary_max" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableSalaryMax(f *float64) *JobUpdateOne {
	if f != nil {
		juo.SetSalaryMax(*f)
	}
	return juo
}

// AddSalaryMax adds f to the "salary_max" field.
func (juo *JobUpdateOne) AddSalaryMax(f float64) *JobUpdateOne {
	juo.mutation.AddSalaryMax(f)
	return juo
}

// ClearSalaryMax clears the value of the "salary_max" field.
func (juo *JobUpdateOne) ClearSalaryMax() *JobUpdateOne {
	juo.mutation.ClearSalaryMax()
	return juo
}

// SetIsActive sets the "is_active" field.
func (juo *JobUpdateOne) SetIsActive(b bool) *JobUpdateOne {
	juo.mutation.SetIsActive(b)
	return juo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableIsActive(b *bool) *JobUpdateOne {
	if b != nil {
		juo.SetIsActive(*b)
	}
	return juo
}

// AddApplicationIDs adds the "applications" edge to the JobApplication entity by IDs.
func (juo *JobUpdateOne) AddApplicationIDs(ids ...uuid.UUID) *JobUpdateOne {
	juo.mutation.AddApplicationIDs(ids...)
	return juo
}

// AddApplications adds the "applications" edges to the JobApplication entity.
func (juo *JobUpdateOne) AddApplications(j ...*JobApplication) *JobUpdateOne {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return juo.AddApplicationIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (juo *JobUpdateOne) Mutation() *JobMutation {
	return juo.mutation
}

// ClearApplications clears all "applications" edges to the JobApplication entity.
func (juo *JobUpdateOne) ClearApplications() *JobUpdateOne {
	juo.mutation.ClearApplications()
	return juo
}

// RemoveApplicationIDs removes the "applications" edge to JobApplication entities by IDs.
func (juo *JobUpdateOne) RemoveApplicationIDs(ids ...uuid.UUID) *JobUpdateOne {
	juo.mutation.RemoveApplicationIDs(ids...)
	return juo
}

// RemoveApplications removes "applications" edges to JobApplication entities.
func (juo *JobUpdateOne) RemoveApplications(j ...*JobApplication) *JobUpdateOne {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return juo.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (juo *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	juo.mutation.Where(ps...)
	return juo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (juo *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	juo.fields = append([]string{field}, fields...)
	return juo
}

// Save executes the query and returns the updated Job entity.
func (juo *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, juo.sqlSave, juo.mutation, juo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (juo *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := juo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (juo *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := juo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (juo *JobUpdateOne) ExecX(ctx context.Context) {
	if err := juo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (juo *JobUpdateOne) check() error {
	if v, ok := juo.mutation.Title(); ok {
		if err := job.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Job.title": %w`, err)}
		}
	}
	if v, ok := juo.mutation.Description(); ok {
		if err := job.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Job.description": %w`, err)}
		}
	}
	if v, ok := juo.mutation.Location(); ok {
		if err := job.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Job.location": %w`, err)}
		}
	}
	if v, ok := juo.mutation.SalaryMin(); ok {
		if err := job.SalaryMinValidator(v); err != nil {
			return &ValidationError{Name: "salary_min", err: fmt.Errorf(`ent: validator failed for field "Job.salary_min": %w`, err)}
		}
	}
	if v, ok := juo.mutation.SalaryMax(); ok {
		if err := job.SalaryMaxValidator(v); err != nil {
			return &ValidationError{Name: "salary_max", err: fmt.Errorf(`ent: validator failed for field "Job.salary_max": %w`, err)}
		}
	}
	if juo.mutation.EmployerCleared() && len(juo.mutation.EmployerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.employer"`)
	}
	return nil
}

func (juo *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := juo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := juo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := juo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := juo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := juo.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
	}
	if value, ok := juo.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
	}
	if value, ok := juo.mutation.Location(); ok {
		_spec.SetField(job.FieldLocation, field.TypeString, value)
	}
	if juo.mutation.LocationCleared() {
		_spec.ClearField(job.FieldLocation, field.TypeString)
	}
	if value, ok := juo.mutation.SalaryMin(); ok {
		_spec.SetField(job.FieldSalaryMin, field.TypeFloat64, value)
	}
	if value, ok := juo.mutation.AddedSalaryMin(); ok {
		_spec.AddField(job.FieldSalaryMin, field.TypeFloat64, value)
	}
	if juo.mutation.SalaryMinCleared() {
		_spec.ClearField(job.FieldSalaryMin, field.TypeFloat64)
	}
	if value, ok := juo.mutation.SalaryMax(); ok {
		_spec.SetField(job.FieldSalaryMax, field.TypeFloat64, value)
	}
	if value, ok := juo.mutation.AddedSalaryMax(); ok {
		_spec.AddField(job.FieldSalaryMax, field.TypeFloat64, value)
	}
	if juo.mutation.SalaryMaxCleared() {
		_spec.ClearField(job.FieldSalaryMax, field.TypeFloat64)
	}
	if value, ok := juo.mutation.IsActive(); ok {
		_spec.SetField(job.FieldIsActive, field.TypeBool, value)
	}
	if juo.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := juo.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !juo.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := juo.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.ApplicationsTable,
			Columns: []string{job.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: juo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, juo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	juo.mutation.done = true
	return _node, nil
}
