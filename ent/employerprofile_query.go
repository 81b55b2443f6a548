// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/job"
	"job-board-api/ent/predicate"
	"job-board-api/ent/user"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// EmployerProfileQuery is the builder for querying EmployerProfile entities.
type EmployerProfileQuery struct {
	config
	ctx        *QueryContext
	order      []employerprofile.OrderOption
	inters     []Interceptor
	predicates []predicate.EmployerProfile
	withUser   *UserQuery
	withJobs   *JobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EmployerProfileQuery builder.
func (epq *EmployerProfileQuery) Where(ps ...predicate.EmployerProfile) *EmployerProfileQuery {
	epq.predicates = append(epq.predicates, ps...)
	return epq
}

// Limit the number of records to be returned by this query.
func (epq *EmployerProfileQuery) Limit(limit int) *EmployerProfileQuery {
	epq.ctx.Limit = &limit
	return epq
}

// Offset to start from.
func (epq *EmployerProfileQuery) Offset(offset int) *EmployerProfileQuery {
	epq.ctx.Offset = &offset
	return epq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (epq *EmployerProfileQuery) Unique(unique bool) *EmployerProfileQuery {
	epq.ctx.Unique = &unique
	return epq
}

// Order specifies how the records should be ordered.
func (epq *EmployerProfileQuery) Order(o ...employerprofile.OrderOption) *EmployerProfileQuery {
	epq.order = append(epq.order, o...)
	return epq
}

// QueryUser chains the current query on the "user" edge.
func (epq *EmployerProfileQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: epq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := epq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := epq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(employerprofile.Table, employerprofile.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, employerprofile.UserTable, employerprofile.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(epq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryJobs chains the current query on the "jobs" edge.
func (epq *EmployerProfileQuery) QueryJobs() *JobQuery {
	query := (&JobClient{config: epq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := epq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := epq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(employerprofile.Table, employerprofile.FieldID, selector),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, employerprofile.JobsTable, employerprofile.JobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(epq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EmployerProfile entity from the query.
// Returns a *NotFoundError when no EmployerProfile was found.
func (epq *EmployerProfileQuery) First(ctx context.Context) (*EmployerProfile, error) {
	nodes, err := epq.Limit(1).All(setContextOp(ctx, epq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{employerprofile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (epq *EmployerProfileQuery) FirstX(ctx context.Context) *EmployerProfile {
	node, err := epq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EmployerProfile ID from the query.
// Returns a *NotFoundError when no EmployerProfile ID was found.
func (epq *EmployerProfileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = epq.Limit(1).IDs(setContextOp(ctx, epq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{employerprofile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (epq *EmployerProfileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := epq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EmployerProfile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EmployerProfile entity is found.
// Returns a *NotFoundError when no EmployerProfile entities are found.
func (epq *EmployerProfileQuery) Only(ctx context.Context) (*EmployerProfile, error) {
	nodes, err := epq.Limit(2).All(setContextOp(ctx, epq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{employerprofile.Label}
	default:
		return nil, &NotSingularError{employerprofile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (epq *EmployerProfileQuery) OnlyX(ctx context.Context) *EmployerProfile {
	node, err := epq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EmployerProfile ID in the query.
// Returns a *NotSingularError when more than one EmployerProfile ID is found.
// Returns a *NotFoundError when no entities are found.
func (epq *EmployerProfileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = epq.Limit(2).IDs(setContextOp(ctx, epq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{employerprofile.Label}
	default:
		err = &NotSingularError{employerprofile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (epq *EmployerProfileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := epq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EmployerProfiles.
func (epq *EmployerProfileQuery) All(ctx context.Context) ([]*EmployerProfile, error) {
	ctx = setContextOp(ctx, epq.ctx, ent.OpQueryAll)
	if err := epq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EmployerProfile, *EmployerProfileQuery]()
	return withInterceptors[[]*EmployerProfile](ctx, epq, qr, epq.inters)
}

// AllX is like All, but panics if an error occurs.
func (epq *EmployerProfileQuery) AllX(ctx context.Context) []*EmployerProfile {
	nodes, err := epq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EmployerProfile IDs.
func (epq *EmployerProfileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if epq.ctx.Unique == nil && epq.path != nil {
		epq.Unique(true)
	}
	ctx = setContextOp(ctx, epq.ctx, ent.OpQueryIDs)
	if err = epq.Select(employerprofile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (epq *EmployerProfileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := epq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (epq *EmployerProfileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, epq.ctx, ent.OpQueryCount)
	if err := epq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, epq, querierCount[*EmployerProfileQuery](), epq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (epq *EmployerProfileQuery) CountX(ctx context.Context) int {
	count, err := epq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (epq *EmployerProfileQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, epq.ctx, ent.OpQueryExist)
	switch _, err := epq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (epq *EmployerProfileQuery) ExistX(ctx context.Context) bool {
	exist, err := epq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EmployerProfileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (epq *EmployerProfileQuery) Clone() *EmployerProfileQuery {
	if epq == nil {
		return nil
	}
	return &EmployerProfileQuery{
		config:     epq.config,
		ctx:        epq.ctx.Clone(),
		order:      append([]employerprofile.OrderOption{}, epq.order...),
		inters:     append([]Interceptor{}, epq.inters...),
		predicates: append([]predicate.EmployerProfile{}, epq.predicates...),
		withUser:   epq.withUser.Clone(),
		withJobs:   epq.withJobs.Clone(),
		// clone intermediate query.
		sql:  epq.sql.Clone(),
		path: epq.path,
	}
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (epq *EmployerProfileQuery) WithUser(opts ...func(*UserQuery)) *EmployerProfileQuery {
	query := (&UserClient{config: epq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	epq.withUser = query
	return epq
}

// WithJobs tells the query-builder to eager-load the nodes that are connected to
// the "jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (epq *EmployerProfileQuery) WithJobs(opts ...func(*JobQuery)) *EmployerProfileQuery {
	query := (&JobClient{config: epq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	epq.withJobs = query
	return epq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID uuid.UUID `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EmployerProfile.Query().
//		GroupBy(employerprofile.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (epq *EmployerProfileQuery) GroupBy(field string, fields ...string) *EmployerProfileGroupBy {
	epq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EmployerProfileGroupBy{build: epq}
	grbuild.flds = &epq.ctx.Fields
	grbuild.label = employerprofile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID uuid.UUID `json:"user_id,omitempty"`
//	}
//
//	client.EmployerProfile.Query().
//		Select(employerprofile.FieldUserID).
//		Scan(ctx, &v)
func (epq *EmployerProfileQuery) Select(fields ...string) *EmployerProfileSelect {
	epq.ctx.Fields = append(epq.ctx.Fields, fields...)
	sbuild := &EmployerProfileSelect{EmployerProfileQuery: epq}
	sbuild.label = employerprofile.Label
	sbuild.flds, sbuild.scan = &epq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EmployerProfileSelect configured with the given aggregations.
func (epq *EmployerProfileQuery) Aggregate(fns ...AggregateFunc) *EmployerProfileSelect {
	return epq.Select().Aggregate(fns...)
}

func (epq *EmployerProfileQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range epq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, epq); err != nil {
				return err
			}
		}
	}
	for _, f := range epq.ctx.Fields {
		if !employerprofile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if epq.path != nil {
		prev, err := epq.path(ctx)
		if err != nil {
			return err
		}
		epq.sql = prev
	}
	return nil
}

func (epq *EmployerProfileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EmployerProfile, error) {
	var (
		nodes       = []*EmployerProfile{}
		_spec       = epq.querySpec()
		loadedTypes = [2]bool{
			epq.withUser != nil,
			epq.withJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EmployerProfile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EmployerProfile{config: epq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, epq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := epq.withUser; query != nil {
		if err := epq.loadUser(ctx, query, nodes, nil,
			func(n *EmployerProfile, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	if query := epq.withJobs; query != nil {
		if err := epq.loadJobs(ctx, query, nodes,
			func(n *EmployerProfile) { n.Edges.Jobs = []*Job{} },
			func(n *EmployerProfile, e *Job) { n.Edges.Jobs = append(n.Edges.Jobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (epq *EmployerProfileQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*EmployerProfile, init func(*EmployerProfile), assign func(*EmployerProfile, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*EmployerProfile)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (epq *EmployerProfileQuery) loadJobs(ctx context.Context, query *JobQuery, nodes []*EmployerProfile, init func(*EmployerProfile), assign func(*EmployerProfile, *Job)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*EmployerProfile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(job.FieldEmployerID)
	}
	query.Where(predicate.Job(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(employerprofile.JobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EmployerID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "employer_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (epq *EmployerProfileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := epq.querySpec()
	_spec.Node.Columns = epq.ctx.Fields
	if len(epq.ctx.Fields) > 0 {
		_spec.Unique = epq.ctx.Unique != nil && *epq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, epq.driver, _spec)
}

func (epq *EmployerProfileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(employerprofile.Table, employerprofile.Columns, sqlgraph.NewFieldSpec(employerprofile.FieldID, field.TypeUUID))
	_spec.From = epq.sql
	if unique := epq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if epq.path != nil {
		_spec.Unique = true
	}
	if fields := epq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, employerprofile.FieldID)
		for i := range fields {
			if fields[i] != employerprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if epq.withUser != nil {
			_spec.Node.AddColumnOnce(employerprofile.FieldUserID)
		}
	}
	if ps := epq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := epq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := epq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := epq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (epq *EmployerProfileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(epq.driver.Dialect())
	t1 := builder.Table(employerprofile.Table)
	columns := epq.ctx.Fields
	if len(columns) == 0 {
		columns = employerprofile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if epq.sql != nil {
		selector = epq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if epq.ctx.Unique != nil && *epq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range epq.predicates {
		p(selector)
	}
	for _, p := range epq.order {
		p(selector)
	}
	if offset := epq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := epq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// EmployerProfileGroupBy is the group-by builder for EmployerProfile entities.
type EmployerProfileGroupBy struct {
	selector
	build *EmployerProfileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (epgb *EmployerProfileGroupBy) Aggregate(fns ...AggregateFunc) *EmployerProfileGroupBy {
	epgb.fns = append(epgb.fns, fns...)
	return epgb
}

// Scan applies the selector query and scans the result into the given value.
func (epgb *EmployerProfileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, epgb.build.ctx, ent.OpQueryGroupBy)
	if err := epgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmployerProfileQuery, *EmployerProfileGroupBy](ctx, epgb.build, epgb, epgb.build.inters, v)
}

func (epgb *EmployerProfileGroupBy) sqlScan(ctx context.Context, root *EmployerProfileQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(epgb.fns))
	for _, fn := range epgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*epgb.flds)+len(epgb.fns))
		for _, f := range *epgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*epgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := epgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EmployerProfileSelect is the builder for selecting fields of EmployerProfile entities.
type EmployerProfileSelect struct {
	*EmployerProfileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (eps *EmployerProfileSelect) Aggregate(fns ...AggregateFunc) *EmployerProfileSelect {
	eps.fns = append(eps.fns, fns...)
	return eps
}

// Scan applies the selector query and scans the result into the given value.
func (eps *EmployerProfileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, eps.ctx, ent.OpQuerySelect)
	if err := eps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EmployerProfileQuery, *EmployerProfileSelect](ctx, eps.EmployerProfileQuery, eps, eps.inters, v)
}

func (eps *EmployerProfileSelect) sqlScan(ctx context.Context, root *EmployerProfileQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(eps.fns))
	for _, fn := range eps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*eps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := eps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
