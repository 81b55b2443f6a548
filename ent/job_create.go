// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/job"
	"job-board-api/ent/jobapplication"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetEmployerID sets the "employer_id" field.
func (jc *JobCreate) SetEmployerID(u uuid.UUID) *JobCreate {
	jc.mutation.SetEmployerID(u)
	return jc
}

// SetTitle sets the "title" field.
func (jc *JobCreate) SetTitle(s string) *JobCreate {
	jc.mutation.SetTitle(s)
	return jc
}

// SetDescription sets the "description" field.
func (jc *JobCreate) SetDescription(s string) *JobCreate {
	jc.mutation.SetDescription(s)
	return jc
}

// SetLocation sets the "location" field.
func (jc *JobCreate) SetLocation(s string) *JobCreate {
	jc.mutation.SetLocation(s)
	return jc
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (jc *JobCreate) SetNillableLocation(s *string) *JobCreate {
	if s != nil {
		jc.SetLocation(*s)
	}
	return jc
}

// SetSalaryMin sets the "salary_min" field.
func (jc *JobCreate) SetSalaryMin(f float64) *JobCreate {
	jc.mutation.SetSalaryMin(f)
	return jc
}

// SetNillableSalaryMin sets the "salary_min" field if the given value is not nil.
func (jc *JobCreate) SetNillableSalaryMin(f *float64) *JobCreate {
	if f != nil {
		jc.SetSalaryMin(*f)
	}
	return jc
}

// SetSalaryMax sets the "salary_max" field.
func (jc *JobCreate) SetSalaryMax(f float64) *JobCreate {
	jc.mutation.SetSalaryMax(f)
	return jc
}

// SetNillableSalaryMax sets the "salary_max" field if the given value is not nil.
func (jc *JobCreate) SetNillableSalaryMax(f *float64) *JobCreate {
	if f != nil {
		jc.SetSalaryMax(*f)
	}
	return jc
}

// SetIsActive sets the "is_active" field.
func (jc *JobCreate) SetIsActive(b bool) *JobCreate {
	jc.mutation.SetIsActive(b)
	return jc
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (jc *JobCreate) SetNillableIsActive(b *bool) *JobCreate {
	if b != nil {
		jc.SetIsActive(*b)
	}
	return jc
}

// SetCreatedAt sets the "created_at" field.
func (jc *JobCreate) SetCreatedAt(t time.Time) *JobCreate {
	jc.mutation.SetCreatedAt(t)
	return jc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (jc *JobCreate) SetNillableCreatedAt(t *time.Time) *JobCreate {
	if t != nil {
		jc.SetCreatedAt(*t)
	}
	return jc
}

// SetID sets the "id" field.
func (jc *JobCreate) SetID(u uuid.UUID) *JobCreate {
	jc.mutation.SetID(u)
	return jc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (jc *JobCreate) SetNillableID(u *uuid.UUID) *JobCreate {
	if u != nil {
		jc.SetID(*u)
	}
	return jc
}

// SetEmployer sets the "employer" edge to the EmployerProfile entity.
func (jc *JobCreate) SetEmployer(e *EmployerProfile) *JobCreate {
	return jc.SetEmployerID(e.ID)
}

// AddApplicationIDs adds the "applications" edge to the JobApplication entity by IDs.
func (jc *JobCreate) AddApplicationIDs(ids ...uuid.UUID) *JobCreate {
	jc.mutation.AddApplicationIDs(ids...)
	return jc
}

// AddApplications adds the "applications" edges to the JobApplication entity.
func (jc *JobCreate) AddApplications(j ...*JobApplication) *JobCreate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return jc.AddApplicationIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (jc *JobCreate) Mutation() *JobMutation {
	return jc.mutation
}

// Save creates the Job in the database.
func (jc *JobCreate) Save(ctx context.Context) (*Job, error) {
	jc.defaults()
	return withHooks(ctx, jc.sqlSave, jc.mutation, jc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (jc *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := jc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jc *JobCreate) Exec(ctx context.Context) error {
	_, err := jc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jc *JobCreate) ExecX(ctx context.Context) {
	if err := jc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (jc *JobCreate) defaults() {
	if _, ok := jc.mutation.IsActive(); !ok {
		v := job.DefaultIsActive
		jc.mutation.SetIsActive(v)
	}
	if _, ok := jc.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		jc.mutation.SetCreatedAt(v)
	}
	if _, ok := jc.mutation.ID(); !ok {
		v := job.DefaultID()
		jc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jc *JobCreate) check() error {
	if _, ok := jc.mutation.EmployerID(); !ok {
		return &ValidationError{Name: "employer_id", err: errors.New(`ent: missing required field "Job.employer_id"`)}
	}
	if _, ok := jc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Job.title"`)}
	}
	if v, ok := jc.mutation.Title(); ok {
		if err := job.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Job.title": %w`, err)}
		}
	}
	if _, ok := jc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Job.description"`)}
	}
	if v, ok := jc.mutation.Description(); ok {
		if err := job.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Job.description": %w`, err)}
		}
	}
	if v, ok := jc.mutation.Location(); ok {
		if err := job.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Job.location": %w`, err)}
		}
	}
	if v, ok := jc.mutation.SalaryMin(); ok {
		if err := job.SalaryMinValidator(v); err != nil {
			return &ValidationError{Name: "salary_min", err: fmt.Errorf(`ent: validator failed for field "Job.salary_min": %w`, err)}
		}
	}
	if v, ok := jc.mutation.SalaryMax(); ok {
		if err := job.SalaryMaxValidator(v); err != nil {
			return &ValidationError{Name: "salary_max", err: fmt.Errorf(`ent: validator failed for field "Job.salary_max": %w`, err)}
		}
	}
	if _, ok := jc.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Job.is_active"`)}
	}
	if _, ok := jc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if len(jc.mutation.EmployerIDs()) == 0 {
		return &ValidationError{Name: "employer", err: errors.New(`ent: missing required edge "Job.employer"`)}
	}
	return nil
}

func (jc *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := jc.check(); err != nil {
		return nil, err
	}
	_node, _spec := jc.createSpec()
	if err := sqlgraph.CreateNode(ctx, jc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	jc.mutation.id = &_node.ID
	jc.mutation.done = true
	return _node, nil
}

func (jc *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: jc.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	)
	if id, ok := jc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := jc.mutation.Title(); ok {
		_spec.SetField(job.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := jc.mutation.Description(); ok {
		_spec.SetField(job.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := jc.mutation.Location(); ok {
		_spec.SetField(job.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := jc.mutation.SalaryMin(); ok {
		_spec.SetField(job.FieldSalaryMin, field.TypeFloat64, value)
		_node.SalaryMin = &value
	}
	if value, ok := jc.mutation.SalaryMax(); ok {
		_spec.SetField(job.FieldSalaryMax, field.TypeFloat64, value)
		_node.SalaryMax = &value
	}
	if value, ok := jc.mutation.IsActive(); ok {
		_spec.SetField(job.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := jc.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := jc.mutation.EmployerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.EmployerTable,
			Columns: []string{job.EmployerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(employerprofile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EmployerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := jc.mutation.ApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (jcb *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if jcb.err != nil {
		return nil, jcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(jcb.builders))
	nodes := make([]*Job, len(jcb.builders))
	mutators := make([]Mutator, len(jcb.builders))
	for i := range jcb.builders {
		func(i int, root context.Context) {
			builder := jcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, jcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, jcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, jcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (jcb *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := jcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jcb *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := jcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jcb *JobCreateBulk) ExecX(ctx context.Context) {
	if err := jcb.Exec(ctx); err != nil {
		panic(err)
	}
}
