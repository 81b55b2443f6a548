// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/job"
	"job-board-api/ent/user"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// EmployerProfileCreate is the builder for creating a EmployerProfile entity.
type EmployerProfileCreate struct {
	config
	mutation *EmployerProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (epc *EmployerProfileCreate) SetUserID(u uuid.UUID) *EmployerProfileCreate {
	epc.mutation.SetUserID(u)
	return epc
}

// SetCompanyName sets the "company_name" field.
func (epc *EmployerProfileCreate) SetCompanyName(s string) *EmployerProfileCreate {
	epc.mutation.SetCompanyName(s)
	return epc
}

// SetDescription sets the "description" field.
func (epc *EmployerProfileCreate) SetDescription(s string) *EmployerProfileCreate {
	epc.mutation.SetDescription(s)
	return epc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (epc *EmployerProfileCreate) SetNillableDescription(s *string) *EmployerProfileCreate {
	if s != nil {
		epc.SetDescription(*s)
	}
	return epc
}

// SetWebsite sets the "website" field.
func (epc *EmployerProfileCreate) SetWebsite(s string) *EmployerProfileCreate {
	epc.mutation.SetWebsite(s)
	return epc
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (epc *EmployerProfileCreate) SetNillableWebsite(s *string) *EmployerProfileCreate {
	if s != nil {
		epc.SetWebsite(*s)
	}
	return epc
}

// SetCreatedAt sets the "created_at" field.
func (epc *EmployerProfileCreate) SetCreatedAt(t time.Time) *EmployerProfileCreate {
	epc.mutation.SetCreatedAt(t)
	return epc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (epc *EmployerProfileCreate) SetNillableCreatedAt(t *time.Time) *EmployerProfileCreate {
	if t != nil {
		epc.SetCreatedAt(*t)
	}
	return epc
}

// SetID sets the "id" field.
func (epc *EmployerProfileCreate) SetID(u uuid.UUID) *EmployerProfileCreate {
	epc.mutation.SetID(u)
	return epc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (epc *EmployerProfileCreate) SetNillableID(u *uuid.UUID) *EmployerProfileCreate {
	if u != nil {
		epc.SetID(*u)
	}
	return epc
}

// SetUser sets the "user" edge to the User entity.
func (epc *EmployerProfileCreate) SetUser(u *User) *EmployerProfileCreate {
	return epc.SetUserID(u.ID)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (epc *EmployerProfileCreate) AddJobIDs(ids ...uuid.UUID) *EmployerProfileCreate {
	epc.mutation.AddJobIDs(ids...)
	return epc
}

// AddJobs adds the "jobs" edges to the Job entity.
func (epc *EmployerProfileCreate) AddJobs(j ...*Job) *EmployerProfileCreate {
	ids := make([]uuid.UUID, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return epc.AddJobIDs(ids...)
}

// Mutation returns the EmployerProfileMutation object of the builder.
func (epc *EmployerProfileCreate) Mutation() *EmployerProfileMutation {
	return epc.mutation
}

// Save creates the EmployerProfile in the database.
func (epc *EmployerProfileCreate) Save(ctx context.Context) (*EmployerProfile, error) {
	epc.defaults()
	return withHooks(ctx, epc.sqlSave, epc.mutation, epc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (epc *EmployerProfileCreate) SaveX(ctx context.Context) *EmployerProfile {
	v, err := epc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (epc *EmployerProfileCreate) Exec(ctx context.Context) error {
	_, err := epc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (epc *EmployerProfileCreate) ExecX(ctx context.Context) {
	if err := epc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (epc *EmployerProfileCreate) defaults() {
	if _, ok := epc.mutation.CreatedAt(); !ok {
		v := employerprofile.DefaultCreatedAt()
		epc.mutation.SetCreatedAt(v)
	}
	if _, ok := epc.mutation.ID(); !ok {
		v := employerprofile.DefaultID()
		epc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (epc *EmployerProfileCreate) check() error {
	if _, ok := epc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EmployerProfile.user_id"`)}
	}
	if _, ok := epc.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "EmployerProfile.company_name"`)}
	}
	if _, ok := epc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EmployerProfile.created_at"`)}
	}
	if len(epc.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "EmployerProfile.user"`)}
	}
	return nil
}

func (epc *EmployerProfileCreate) sqlSave(ctx context.Context) (*EmployerProfile, error) {
	if err := epc.check(); err != nil {
		return nil, err
	}
	_node, _spec := epc.createSpec()
	if err := sqlgraph.CreateNode(ctx, epc.driver, _spec); err != nil {
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
	epc.mutation.id = &_node.ID
	epc.mutation.done = true
	return _node, nil
}

func (epc *EmployerProfileCreate) createSpec() (*EmployerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &EmployerProfile{config: epc.config}
		_spec = sqlgraph.NewCreateSpec(employerprofile.Table, sqlgraph.NewFieldSpec(employerprofile.FieldID, field.TypeUUID))
	)
	if id, ok := epc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := epc.mutation.CompanyName(); ok {
		_spec.SetField(employerprofile.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := epc.mutation.Description(); ok {
		_spec.SetField(employerprofile.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := epc.mutation.Website(); ok {
		_spec.SetField(employerprofile.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := epc.mutation.CreatedAt(); ok {
		_spec.SetField(employerprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := epc.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   employerprofile.UserTable,
			Columns: []string{employerprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := epc.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EmployerProfileCreateBulk is the builder for creating many EmployerProfile entities in bulk.
type EmployerProfileCreateBulk struct {
	config
	err      error
	builders []*EmployerProfileCreate
}

// Save creates the EmployerProfile entities in the database.
func (epcb *EmployerProfileCreateBulk) Save(ctx context.Context) ([]*EmployerProfile, error) {
	if epcb.err != nil {
		return nil, epcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(epcb.builders))
	nodes := make([]*EmployerProfile, len(epcb.builders))
	mutators := make([]Mutator, len(epcb.builders))
	for i := range epcb.builders {
		func(i int, root context.Context) {
			builder := epcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmployerProfileMutation)
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
					_, err = mutators[i+1].Mutate(root, epcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, epcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, epcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (epcb *EmployerProfileCreateBulk) SaveX(ctx context.Context) []*EmployerProfile {
	v, err := epcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (epcb *EmployerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := epcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (epcb *EmployerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := epcb.Exec(ctx); err != nil {
		panic(err)
	}
}
