// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/job"
	"job-board-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// EmployerProfileUpdate is the builder for updating EmployerProfile entities.
type EmployerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *EmployerProfileMutation
}

// Where appends a list predicates to the EmployerProfileUpdate builder.
func (epu *EmployerProfileUpdate) Where(ps ...predicate.EmployerProfile) *EmployerProfileUpdate {
	epu.mutation.Where(ps...)
	return epu
}

// SetCompanyName sets the "company_name" field.
func (epu *EmployerProfileUpdate) SetCompanyName(s string) *EmployerProfileUpdate {
	epu.mutation.SetCompanyName(s)
	return epu
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (epu *EmployerProfileUpdate) SetNillableCompanyName(s *string) *EmployerProfileUpdate {
	if s != nil {
		epu.SetCompanyName(*s)
	}
	return epu
}

// SetDescription sets the "description" field.
func (epu *EmployerProfileUpdate) SetDescription(s string) *EmployerProfileUpdate {
	epu.mutation.SetDescription(s)
	return epu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (epu *EmployerProfileUpdate) SetNillableDescription(s *string) *EmployerProfileUpdate {
	if s != nil {
		epu.SetDescription(*s)
	}
	return epu
}

// ClearDescription clears the value of the "description" field.
func (epu *EmployerProfileUpdate) ClearDescription() *EmployerProfileUpdate {
	epu.mutation.ClearDescription()
	return epu
}

// SetWebsite sets the "website" field.
func (epu *EmployerProfileUpdate) SetWebsite(s string) *EmployerProfileUpdate {
	epu.mutation.SetWebsite(s)
	return epu
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (epu *EmployerProfileUpdate) SetNillableWebsite(s *string) *EmployerProfileUpdate {
	if s != nil {
		epu.SetWebsite(*s)
	}
	return epu
}

// ClearWebsite clears the value of the "website" field.
func (epu *EmployerProfileUpdate) ClearWebsite() *EmployerProfileUpdate {
	epu.mutation.ClearWebsite()
	return epu
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (epu *EmployerProfileUpdate) AddJobIDs(ids ...uuid.UUID) *EmployerProfileUpdate {
	epu.mutation.AddJobIDs(ids...)
	return epu
}

// AddJobs adds the "jobs" edges to the Job entity.
func (epu *EmployerProfileUpdate) AddJobs(j ...*Job) *EmployerProfileUpdate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return epu.AddJobIDs(ids...)
}

// Mutation returns the EmployerProfileMutation object of the builder.
func (epu *EmployerProfileUpdate) Mutation() *EmployerProfileMutation {
	return epu.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (epu *EmployerProfileUpdate) ClearJobs() *EmployerProfileUpdate {
	epu.mutation.ClearJobs()
	return epu
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (epu *EmployerProfileUpdate) RemoveJobIDs(ids ...uuid.UUID) *EmployerProfileUpdate {
	epu.mutation.RemoveJobIDs(ids...)
	return epu
}

// RemoveJobs removes "jobs" edges to Job entities.
func (epu *EmployerProfileUpdate) RemoveJobs(j ...*Job) *EmployerProfileUpdate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return epu.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (epu *EmployerProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, epu.sqlSave, epu.mutation, epu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (epu *EmployerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := epu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (epu *EmployerProfileUpdate) Exec(ctx context.Context) error {
	_, err := epu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (epu *EmployerProfileUpdate) ExecX(ctx context.Context) {
	if err := epu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (epu *EmployerProfileUpdate) check() error {
	if epu.mutation.UserCleared() && len(epu.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmployerProfile.user"`)
	}
	return nil
}

func (epu *EmployerProfileUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := epu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(employerprofile.Table, employerprofile.Columns, sqlgraph.NewFieldSpec(employerprofile.FieldID, field.TypeUUID))
	if ps := epu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := epu.mutation.CompanyName(); ok {
		_spec.SetField(employerprofile.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := epu.mutation.Description(); ok {
		_spec.SetField(employerprofile.FieldDescription, field.TypeString, value)
	}
	if epu.mutation.DescriptionCleared() {
		_spec.ClearField(employerprofile.FieldDescription, field.TypeString)
	}
	if value, ok := epu.mutation.Website(); ok {
		_spec.SetField(employerprofile.FieldWebsite, field.TypeString, value)
	}
	if epu.mutation.WebsiteCleared() {
		_spec.ClearField(employerprofile.FieldWebsite, field.TypeString)
	}
	if epu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employerprofile.JobsTable,
			Columns: []string{employerprofile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := epu.mutation.RemovedJobsIDs(); len(nodes) > 0 && !epu.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employerprofile.JobsTable,
			Columns: []string{employerprofile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := epu.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employerprofile.JobsTable,
			Columns: []string{employerprofile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, epu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	epu.mutation.done = true
	return n, nil
}

// EmployerProfileUpdateOne is the builder for updating a single EmployerProfile entity.
type EmployerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmployerProfileMutation
}

// SetCompanyName sets the "company_name" field.
func (epuo *EmployerProfileUpdateOne) SetCompanyName(s string) *EmployerProfileUpdateOne {
	epuo.mutation.SetCompanyName(s)
	return epuo
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (epuo *EmployerProfileUpdateOne) SetNillableCompanyName(s *string) *EmployerProfileUpdateOne {
	if s != nil {
		epuo.SetCompanyName(*s)
	}
	return epuo
}

// SetDescription sets the "description" field.
func (epuo *EmployerProfileUpdateOne) SetDescription(s string) *EmployerProfileUpdateOne {
	epuo.mutation.SetDescription(s)
	return epuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (epuo *EmployerProfileUpdateOne) SetNillableDescription(s *string) *EmployerProfileUpdateOne {
	if s != nil {
		epuo.SetDescription(*s)
	}
	return epuo
}

// ClearDescription clears the value of the "description" field.
func (epuo *EmployerProfileUpdateOne) ClearDescription() *EmployerProfileUpdateOne {
	epuo.mutation.ClearDescription()
	return epuo
}

// SetWebsite sets the "website" field.
func (epuo *EmployerProfileUpdateOne) SetWebsite(s string) *EmployerProfileUpdateOne {
	epuo.mutation.SetWebsite(s)
	return epuo
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (epuo *EmployerProfileUpdateOne) SetNillableWebsite(s *string) *EmployerProfileUpdateOne {
	if s != nil {
		epuo.SetWebsite(*s)
	}
	return epuo
}

// ClearWebsite clears the value of the "website" field.
func (epuo *EmployerProfileUpdateOne) ClearWebsite() *EmployerProfileUpdateOne {
	epuo.mutation.ClearWebsite()
	return epuo
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (epuo *EmployerProfileUpdateOne) AddJobIDs(ids ...uuid.UUID) *EmployerProfileUpdateOne {
	epuo.mutation.AddJobIDs(ids...)
	return epuo
}

// AddJobs adds the "jobs" edges to the Job entity.
func (epuo *EmployerProfileUpdateOne) AddJobs(j ...*Job) *EmployerProfileUpdateOne {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return epuo.AddJobIDs(ids...)
}

// Mutation returns the EmployerProfileMutation object of the builder.
func (epuo *EmployerProfileUpdateOne) Mutation() *EmployerProfileMutation {
	return epuo.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (epuo *EmployerProfileUpdateOne) ClearJobs() *EmployerProfileUpdateOne {
	epuo.mutation.ClearJobs()
	return epuo
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (epuo *EmployerProfileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *EmployerProfileUpdateOne {
	epuo.mutation.RemoveJobIDs(ids...)
	return epuo
}

// RemoveJobs removes "jobs" edges to Job entities.
func (epuo *EmployerProfileUpdateOne) RemoveJobs(j ...*Job) *EmployerProfileUpdateOne {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return epuo.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the EmployerProfileUpdate builder.
func (epuo *EmployerProfileUpdateOne) Where(ps ...predicate.EmployerProfile) *EmployerProfileUpdateOne {
	epuo.mutation.Where(ps...)
	return epuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (epuo *EmployerProfileUpdateOne) Select(field string, fields ...string) *EmployerProfileUpdateOne {
	epuo.fields = append([]string{field}, fields...)
	return epuo
}

// Save executes the query and returns the updated EmployerProfile entity.
func (epuo *EmployerProfileUpdateOne) Save(ctx context.Context) (*EmployerProfile, error) {
	return withHooks(ctx, epuo.sqlSave, epuo.mutation, epuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (epuo *EmployerProfileUpdateOne) SaveX(ctx context.Context) *EmployerProfile {
	node, err := epuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (epuo *EmployerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := epuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (epuo *EmployerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := epuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (epuo *EmployerProfileUpdateOne) check() error {
	if epuo.mutation.UserCleared() && len(epuo.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmployerProfile.user"`)
	}
	return nil
}

func (epuo *EmployerProfileUpdateOne) sqlSave(ctx context.Context) (_node *EmployerProfile, err error) {
	if err := epuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employerprofile.Table, employerprofile.Columns, sqlgraph.NewFieldSpec(employerprofile.FieldID, field.TypeUUID))
	id, ok := epuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmployerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := epuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, employerprofile.FieldID)
		for _, f := range fields {
			if !employerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != employerprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := epuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := epuo.mutation.CompanyName(); ok {
		_spec.SetField(employerprofile.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := epuo.mutation.Description(); ok {
		_spec.SetField(employerprofile.FieldDescription, field.TypeString, value)
	}
	if epuo.mutation.DescriptionCleared() {
		_spec.ClearField(employerprofile.FieldDescription, field.TypeString)
	}
	if value, ok := epuo.mutation.Website(); ok {
		_spec.SetField(employerprofile.FieldWebsite, field.TypeString, value)
	}
	if epuo.mutation.WebsiteCleared() {
		_spec.ClearField(employerprofile.FieldWebsite, field.TypeString)
	}
	if epuo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employerprofile.JobsTable,
			Columns: []string{employerprofile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := epuo.mutation.RemovedJobsIDs(); len(nodes) > 0 && !epuo.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employerprofile.JobsTable,
			Columns: []string{employerprofile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := epuo.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employerprofile.JobsTable,
			Columns: []string{employerprofile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EmployerProfile{config: epuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, epuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	epuo.mutation.done = true
	return _node, nil
}
