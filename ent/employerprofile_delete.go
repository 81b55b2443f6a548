// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EmployerProfileDelete is the builder for deleting a EmployerProfile entity.
type EmployerProfileDelete struct {
	config
	hooks    []Hook
	mutation *EmployerProfileMutation
}

// Where appends a list predicates to the EmployerProfileDelete builder.
func (epd *EmployerProfileDelete) Where(ps ...predicate.EmployerProfile) *EmployerProfileDelete {
	epd.mutation.Where(ps...)
	return epd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (epd *EmployerProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, epd.sqlExec, epd.mutation, epd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (epd *EmployerProfileDelete) ExecX(ctx context.Context) int {
	n, err := epd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (epd *EmployerProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(employerprofile.Table, sqlgraph.NewFieldSpec(employerprofile.FieldID, field.TypeUUID))
	if ps := epd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, epd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	epd.mutation.done = true
	return affected, err
}

// EmployerProfileDeleteOne is the builder for deleting a single EmployerProfile entity.
type EmployerProfileDeleteOne struct {
	epd *EmployerProfileDelete
}

// Where appends a list predicates to the EmployerProfileDelete builder.
func (epdo *EmployerProfileDeleteOne) Where(ps ...predicate.EmployerProfile) *EmployerProfileDeleteOne {
	epdo.epd.mutation.Where(ps...)
	return epdo
}

// Exec executes the deletion query.
func (epdo *EmployerProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := epdo.epd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{employerprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (epdo *EmployerProfileDeleteOne) ExecX(ctx context.Context) {
	if err := epdo.Exec(ctx); err != nil {
		panic(err)
	}
}
