// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"job-board-api/ent/employerprofile"
	"job-board-api/ent/job"
	"job-board-api/ent/jobapplication"
	"job-board-api/ent/predicate"
	"job-board-api/ent/user"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEmployerProfile = "EmployerProfile"
	TypeJob             = "Job"
	TypeJobApplication  = "JobApplication"
	TypeUser            = "User"
)

// EmployerProfileMutation represents an operation that mutates the EmployerProfile nodes in the graph.
type EmployerProfileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	company_name  *string
	description   *string
	website       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*EmployerProfile, error)
	predicates    []predicate.EmployerProfile
}

var _ ent.Mutation = (*EmployerProfileMutation)(nil)

// employerprofileOption allows management of the mutation configuration using functional options.
type employerprofileOption func(*EmployerProfileMutation)

// newEmployerProfileMutation creates new mutation for the EmployerProfile entity.
func newEmployerProfileMutation(c config, op Op, opts ...employerprofileOption) *EmployerProfileMutation {
	m := &EmployerProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeEmployerProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmployerProfileID sets the ID field of the mutation.
func withEmployerProfileID(id uuid.UUID) employerprofileOption {
	return func(m *EmployerProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *EmployerProfile
		)
		m.oldValue = func(ctx context.Context) (*EmployerProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmployerProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmployerProfile sets the old EmployerProfile of the mutation.
func withEmployerProfile(node *EmployerProfile) employerprofileOption {
	return func(m *EmployerProfileMutation) {
		m.oldValue = func(context.Context) (*EmployerProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmployerProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmployerProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmployerProfile entities.
func (m *EmployerProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmployerProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmployerProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmployerProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *EmployerProfileMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EmployerProfileMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the EmployerProfile entity.
// If the EmployerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployerProfileMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EmployerProfileMutation) ResetUserID() {
	m.user = nil
}

// SetCompanyName sets the "company_name" field.
func (m *EmployerProfileMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *EmployerProfileMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the EmployerProfile entity.
// If the EmployerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployerProfileMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *EmployerProfileMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetDescription sets the "description" field.
func (m *EmployerProfileMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EmployerProfileMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the EmployerProfile entity.
// If the EmployerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployerProfileMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EmployerProfileMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[employerprofile.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EmployerProfileMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[employerprofile.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EmployerProfileMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, employerprofile.FieldDescription)
}

// SetWebsite sets the "website" field.
func (m *EmployerProfileMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *EmployerProfileMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the EmployerProfile entity.
// If the EmployerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployerProfileMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *EmployerProfileMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[employerprofile.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *EmployerProfileMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[employerprofile.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *EmployerProfileMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, employerprofile.FieldWebsite)
}

// SetCreatedAt sets the "created_at" field.
func (m *EmployerProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmployerProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmployerProfile entity.
// If the EmployerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmployerProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmployerProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *EmployerProfileMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[employerprofile.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *EmployerProfileMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *EmployerProfileMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *EmployerProfileMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *EmployerProfileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *EmployerProfileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *EmployerProfileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *EmployerProfileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *EmployerProfileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *EmployerProfileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *EmployerProfileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the EmployerProfileMutation builder.
func (m *EmployerProfileMutation) Where(ps ...predicate.EmployerProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmployerProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmployerProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmployerProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmployerProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmployerProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmployerProfile).
func (m *EmployerProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmployerProfileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user != nil {
		fields = append(fields, employerprofile.FieldUserID)
	}
	if m.company_name != nil {
		fields = append(fields, employerprofile.FieldCompanyName)
	}
	if m.description != nil {
		fields = append(fields, employerprofile.FieldDescription)
	}
	if m.website != nil {
		fields = append(fields, employerprofile.FieldWebsite)
	}
	if m.created_at != nil {
		fields = append(fields, employerprofile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmployerProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case employerprofile.FieldUserID:
		return m.UserID()
	case employerprofile.FieldCompanyName:
		return m.CompanyName()
	case employerprofile.FieldDescription:
		return m.Description()
	case employerprofile.FieldWebsite:
		return m.Website()
	case employerprofile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmployerProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case employerprofile.FieldUserID:
		return m.OldUserID(ctx)
	case employerprofile.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case employerprofile.FieldDescription:
		return m.OldDescription(ctx)
	case employerprofile.FieldWebsite:
		return m.OldWebsite(ctx)
	case employerprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EmployerProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmployerProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case employerprofile.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case employerprofile.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case employerprofile.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case employerprofile.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case employerprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EmployerProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmployerProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmployerProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmployerProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmployerProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmployerProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(employerprofile.FieldDescription) {
		fields = append(fields, employerprofile.FieldDescription)
	}
	if m.FieldCleared(employerprofile.FieldWebsite) {
		fields = append(fields, employerprofile.FieldWebsite)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmployerProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmployerProfileMutation) ClearField(name string) error {
	switch name {
	case employerprofile.FieldDescription:
		m.ClearDescription()
		return nil
	case employerprofile.FieldWebsite:
		m.ClearWebsite()
		return nil
	}
	return fmt.Errorf("unknown EmployerProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmployerProfileMutation) ResetField(name string) error {
	switch name {
	case employerprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case employerprofile.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case employerprofile.FieldDescription:
		m.ResetDescription()
		return nil
	case employerprofile.FieldWebsite:
		m.ResetWebsite()
		return nil
	case employerprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EmployerProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmployerProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, employerprofile.EdgeUser)
	}
	if m.jobs != nil {
		edges = append(edges, employerprofile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmployerProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case employerprofile.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case employerprofile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmployerProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, employerprofile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmployerProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case employerprofile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmployerProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, employerprofile.EdgeUser)
	}
	if m.clearedjobs {
		edges = append(edges, employerprofile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmployerProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case employerprofile.EdgeUser:
		return m.cleareduser
	case employerprofile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmployerProfileMutation) ClearEdge(name string) error {
	switch name {
	case employerprofile.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown EmployerProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmployerProfileMutation) ResetEdge(name string) error {
	switch name {
	case employerprofile.EdgeUser:
		m.ResetUser()
		return nil
	case employerprofile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown EmployerProfile edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	title               *string
	description         *string
	location            *string
	salary_min          *float64
	addsalary_min       *float64
	salary_max          *float64
	addsalary_max       *float64
	is_active           *bool
	created_at          *time.Time
	clearedFields       map[string]struct{}
	employer            *uuid.UUID
	clearedemployer     bool
	applications        map[uuid.UUID]struct{}
	removedapplications map[uuid.UUID]struct{}
	clearedapplications bool
	done                bool
	oldValue            func(context.Context) (*Job, error)
	predicates          []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmployerID sets the "employer_id" field.
func (m *JobMutation) SetEmployerID(u uuid.UUID) {
	m.employer = &u
}

// EmployerID returns the value of the "employer_id" field in the mutation.
func (m *JobMutation) EmployerID() (r uuid.UUID, exists bool) {
	v := m.employer
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployerID returns the old "employer_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEmployerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployerID: %w", err)
	}
	return oldValue.EmployerID, nil
}

// ResetEmployerID resets all changes to the "employer_id" field.
func (m *JobMutation) ResetEmployerID() {
	m.employer = nil
}

// SetTitle sets the "title" field.
func (m *JobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *JobMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *JobMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *JobMutation) ResetDescription() {
	m.description = nil
}

// SetLocation sets the "location" field.
func (m *JobMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *JobMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *JobMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[job.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *JobMutation) LocationCleared() bool {
	_, ok := m.clearedFields[job.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *JobMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, job.FieldLocation)
}

// SetSalaryMin sets the "salary_min" field.
func (m *JobMutation) SetSalaryMin(f float64) {
	m.salary_min = &f
	m.addsalary_min = nil
}

// SalaryMin returns the value of the "salary_min" field in the mutation.
func (m *JobMutation) SalaryMin() (r float64, exists bool) {
	v := m.salary_min
	if v == nil {
		return
	}
	return *v, true
}

// OldSalaryMin returns the old "salary_min" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSalaryMin(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalaryMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalaryMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalaryMin: %w", err)
	}
	return oldValue.SalaryMin, nil
}

// AddSalaryMin adds f to the "salary_min" field.
func (m *JobMutation) AddSalaryMin(f float64) {
	if m.addsalary_min != nil {
		*m.addsalary_min += f
	} else {
		m.addsalary_min = &f
	}
}

// AddedSalaryMin returns the value that was added to the "salary_min" field in this mutation.
func (m *JobMutation) AddedSalaryMin() (r float64, exists bool) {
	v := m.addsalary_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearSalaryMin clears the value of the "salary_min" field.
func (m *JobMutation) ClearSalaryMin() {
	m.salary_min = nil
	m.addsalary_min = nil
	m.clearedFields[job.FieldSalaryMin] = struct{}{}
}

// SalaryMinCleared returns if the "salary_min" field was cleared in this mutation.
func (m *JobMutation) SalaryMinCleared() bool {
	_, ok := m.clearedFields[job.FieldSalaryMin]
	return ok
}

// ResetSalaryMin resets all changes to the "salary_min" field.
func (m *JobMutation) ResetSalaryMin() {
	m.salary_min = nil
	m.addsalary_min = nil
	delete(m.clearedFields, job.FieldSalaryMin)
}

// SetSalaryMax sets the "salary_max" field.
func (m *JobMutation) SetSalaryMax(f float64) {
	m.salary_max = &f
	m.addsalary_max = nil
}

// SalaryMax returns the value of the "salary_max" field in the mutation.
func (m *JobMutation) SalaryMax() (r float64, exists bool) {
	v := m.salary_max
	if v == nil {
		return
	}
	return *v, true
}

// OldSalaryMax returns the old "salary_max" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSalaryMax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalaryMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalaryMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalaryMax: %w", err)
	}
	return oldValue.SalaryMax, nil
}

// AddSalaryMax adds f to the "salary_max" field.
func (m *JobMutation) AddSalaryMax(f float64) {
	if m.addsalary_max != nil {
		*m.addsalary_max += f
	} else {
		m.addsalary_max = &f
	}
}

// AddedSalaryMax returns the value that was added to the "salary_max" field in this mutation.
func (m *JobMutation) AddedSalaryMax() (r float64, exists bool) {
	v := m.addsalary_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearSalaryMax clears the value of the "salary_max" field.
func (m *JobMutation) ClearSalaryMax() {
	m.salary_max = nil
	m.addsalary_max = nil
	m.clearedFields[job.FieldSalaryMax] = struct{}{}
}

// SalaryMaxCleared returns if the "salary_max" field was cleared in this mutation.
func (m *JobMutation) SalaryMaxCleared() bool {
	_, ok := m.clearedFields[job.FieldSalaryMax]
	return ok
}

// ResetSalaryMax resets all changes to the "salary_max" field.
func (m *JobMutation) ResetSalaryMax() {
	m.salary_max = nil
	m.addsalary_max = nil
	delete(m.clearedFields, job.FieldSalaryMax)
}

// SetIsActive sets the "is_active" field.
func (m *JobMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *JobMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *JobMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEmployer clears the "employer" edge to the EmployerProfile entity.
func (m *JobMutation) ClearEmployer() {
	m.clearedemployer = true
	m.clearedFields[job.FieldEmployerID] = struct{}{}
}

// EmployerCleared reports if the "employer" edge to the EmployerProfile entity was cleared.
func (m *JobMutation) EmployerCleared() bool {
	return m.clearedemployer
}

// EmployerIDs returns the "employer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmployerID instead. It exists only for internal usage by the builders.
func (m *JobMutation) EmployerIDs() (ids []uuid.UUID) {
	if id := m.employer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmployer resets all changes to the "employer" edge.
func (m *JobMutation) ResetEmployer() {
	m.employer = nil
	m.clearedemployer = false
}

// AddApplicationIDs adds the "applications" edge to the JobApplication entity by ids.
func (m *JobMutation) AddApplicationIDs(ids ...uuid.UUID) {
	if m.applications == nil {
		m.applications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the JobApplication entity.
func (m *JobMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the JobApplication entity was cleared.
func (m *JobMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the JobApplication entity by IDs.
func (m *JobMutation) RemoveApplicationIDs(ids ...uuid.UUID) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the JobApplication entity.
func (m *JobMutation) RemovedApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *JobMutation) ApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *JobMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.employer != nil {
		fields = append(fields, job.FieldEmployerID)
	}
	if m.title != nil {
		fields = append(fields, job.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, job.FieldDescription)
	}
	if m.location != nil {
		fields = append(fields, job.FieldLocation)
	}
	if m.salary_min != nil {
		fields = append(fields, job.FieldSalaryMin)
	}
	if m.salary_max != nil {
		fields = append(fields, job.FieldSalaryMax)
	}
	if m.is_active != nil {
		fields = append(fields, job.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldEmployerID:
		return m.EmployerID()
	case job.FieldTitle:
		return m.Title()
	case job.FieldDescription:
		return m.Description()
	case job.FieldLocation:
		return m.Location()
	case job.FieldSalaryMin:
		return m.SalaryMin()
	case job.FieldSalaryMax:
		return m.SalaryMax()
	case job.FieldIsActive:
		return m.IsActive()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldEmployerID:
		return m.OldEmployerID(ctx)
	case job.FieldTitle:
		return m.OldTitle(ctx)
	case job.FieldDescription:
		return m.OldDescription(ctx)
	case job.FieldLocation:
		return m.OldLocation(ctx)
	case job.FieldSalaryMin:
		return m.OldSalaryMin(ctx)
	case job.FieldSalaryMax:
		return m.OldSalaryMax(ctx)
	case job.FieldIsActive:
		return m.OldIsActive(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldEmployerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployerID(v)
		return nil
	case job.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case job.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case job.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case job.FieldSalaryMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalaryMin(v)
		return nil
	case job.FieldSalaryMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalaryMax(v)
		return nil
	case job.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addsalary_min != nil {
		fields = append(fields, job.FieldSalaryMin)
	}
	if m.addsalary_max != nil {
		fields = append(fields, job.FieldSalaryMax)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldSalaryMin:
		return m.AddedSalaryMin()
	case job.FieldSalaryMax:
		return m.AddedSalaryMax()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldSalaryMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSalaryMin(v)
		return nil
	case job.FieldSalaryMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSalaryMax(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldLocation) {
		fields = append(fields, job.FieldLocation)
	}
	if m.FieldCleared(job.FieldSalaryMin) {
		fields = append(fields, job.FieldSalaryMin)
	}
	if m.FieldCleared(job.FieldSalaryMax) {
		fields = append(fields, job.FieldSalaryMax)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldLocation:
		m.ClearLocation()
		return nil
	case job.FieldSalaryMin:
		m.ClearSalaryMin()
		return nil
	case job.FieldSalaryMax:
		m.ClearSalaryMax()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldEmployerID:
		m.ResetEmployerID()
		return nil
	case job.FieldTitle:
		m.ResetTitle()
		return nil
	case job.FieldDescription:
		m.ResetDescription()
		return nil
	case job.FieldLocation:
		m.ResetLocation()
		return nil
	case job.FieldSalaryMin:
		m.ResetSalaryMin()
		return nil
	case job.FieldSalaryMax:
		m.ResetSalaryMax()
		return nil
	case job.FieldIsActive:
		m.ResetIsActive()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.employer != nil {
		edges = append(edges, job.EdgeEmployer)
	}
	if m.applications != nil {
		edges = append(edges, job.EdgeApplications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeEmployer:
		if id := m.employer; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedapplications != nil {
		edges = append(edges, job.EdgeApplications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemployer {
		edges = append(edges, job.EdgeEmployer)
	}
	if m.clearedapplications {
		edges = append(edges, job.EdgeApplications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeEmployer:
		return m.clearedemployer
	case job.EdgeApplications:
		return m.clearedapplications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeEmployer:
		m.ClearEmployer()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeEmployer:
		m.ResetEmployer()
		return nil
	case job.EdgeApplications:
		m.ResetApplications()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobApplicationMutation represents an operation that mutates the JobApplication nodes in the graph.
type JobApplicationMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	cover_letter     *string
	resume_path      *string
	status           *jobapplication.Status
	applied_at       *time.Time
	clearedFields    map[string]struct{}
	applicant        *uuid.UUID
	clearedapplicant bool
	job              *uuid.UUID
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*JobApplication, error)
	predicates       []predicate.JobApplication
}

var _ ent.Mutation = (*JobApplicationMutation)(nil)

// jobapplicationOption allows management of the mutation configuration using functional options.
type jobapplicationOption func(*JobApplicationMutation)

// newJobApplicationMutation creates new mutation for the JobApplication entity.
func newJobApplicationMutation(c config, op Op, opts ...jobapplicationOption) *JobApplicationMutation {
	m := &JobApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeJobApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobApplicationID sets the ID field of the mutation.
func withJobApplicationID(id uuid.UUID) jobapplicationOption {
	return func(m *JobApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *JobApplication
		)
		m.oldValue = func(ctx context.Context) (*JobApplication, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobApplication.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobApplication sets the old JobApplication of the mutation.
func withJobApplication(node *JobApplication) jobapplicationOption {
	return func(m *JobApplicationMutation) {
		m.oldValue = func(context.Context) (*JobApplication, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobApplication entities.
func (m *JobApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobApplication.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobApplicationMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobApplicationMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobApplicationMutation) ResetJobID() {
	m.job = nil
}

// SetApplicantID sets the "applicant_id" field.
func (m *JobApplicationMutation) SetApplicantID(u uuid.UUID) {
	m.applicant = &u
}

// ApplicantID returns the value of the "applicant_id" field in the mutation.
func (m *JobApplicationMutation) ApplicantID() (r uuid.UUID, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicantID returns the old "applicant_id" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldApplicantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicantID: %w", err)
	}
	return oldValue.ApplicantID, nil
}

// ResetApplicantID resets all changes to the "applicant_id" field.
func (m *JobApplicationMutation) ResetApplicantID() {
	m.applicant = nil
}

// SetCoverLetter sets the "cover_letter" field.
func (m *JobApplicationMutation) SetCoverLetter(s string) {
	m.cover_letter = &s
}

// CoverLetter returns the value of the "cover_letter" field in the mutation.
func (m *JobApplicationMutation) CoverLetter() (r string, exists bool) {
	v := m.cover_letter
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverLetter returns the old "cover_letter" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCoverLetter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverLetter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverLetter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverLetter: %w", err)
	}
	return oldValue.CoverLetter, nil
}

// ClearCoverLetter clears the value of the "cover_letter" field.
func (m *JobApplicationMutation) ClearCoverLetter() {
	m.cover_letter = nil
	m.clearedFields[jobapplication.FieldCoverLetter] = struct{}{}
}

// CoverLetterCleared returns if the "cover_letter" field was cleared in this mutation.
func (m *JobApplicationMutation) CoverLetterCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldCoverLetter]
	return ok
}

// ResetCoverLetter resets all changes to the "cover_letter" field.
func (m *JobApplicationMutation) ResetCoverLetter() {
	m.cover_letter = nil
	delete(m.clearedFields, jobapplication.FieldCoverLetter)
}

// SetResumePath sets the "resume_path" field.
func (m *JobApplicationMutation) SetResumePath(s string) {
	m.resume_path = &s
}

// ResumePath returns the value of the "resume_path" field in the mutation.
func (m *JobApplicationMutation) ResumePath() (r string, exists bool) {
	v := m.resume_path
	if v == nil {
		return
	}
	return *v, true
}

// OldResumePath returns the old "resume_path" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldResumePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumePath: %w", err)
	}
	return oldValue.ResumePath, nil
}

// ClearResumePath clears the value of the "resume_path" field.
func (m *JobApplicationMutation) ClearResumePath() {
	m.resume_path = nil
	m.clearedFields[jobapplication.FieldResumePath] = struct{}{}
}

// ResumePathCleared returns if the "resume_path" field was cleared in this mutation.
func (m *JobApplicationMutation) ResumePathCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldResumePath]
	return ok
}

// ResetResumePath resets all changes to the "resume_path" field.
func (m *JobApplicationMutation) ResetResumePath() {
	m.resume_path = nil
	delete(m.clearedFields, jobapplication.FieldResumePath)
}

// SetStatus sets the "status" field.
func (m *JobApplicationMutation) SetStatus(j jobapplication.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobApplicationMutation) Status() (r jobapplication.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldStatus(ctx context.Context) (v jobapplication.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *JobApplicationMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *JobApplicationMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldAppliedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *JobApplicationMutation) ResetAppliedAt() {
	m.applied_at = nil
}

// ClearApplicant clears the "applicant" edge to the User entity.
func (m *JobApplicationMutation) ClearApplicant() {
	m.clearedapplicant = true
	m.clearedFields[jobapplication.FieldApplicantID] = struct{}{}
}

// ApplicantCleared reports if the "applicant" edge to the User entity was cleared.
func (m *JobApplicationMutation) ApplicantCleared() bool {
	return m.clearedapplicant
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *JobApplicationMutation) ApplicantIDs() (ids []uuid.UUID) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *JobApplicationMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobApplicationMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobapplication.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobApplicationMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobApplicationMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobApplicationMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobApplicationMutation builder.
func (m *JobApplicationMutation) Where(ps ...predicate.JobApplication) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobApplication, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobApplication).
func (m *JobApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobApplicationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job != nil {
		fields = append(fields, jobapplication.FieldJobID)
	}
	if m.applicant != nil {
		fields = append(fields, jobapplication.FieldApplicantID)
	}
	if m.cover_letter != nil {
		fields = append(fields, jobapplication.FieldCoverLetter)
	}
	if m.resume_path != nil {
		fields = append(fields, jobapplication.FieldResumePath)
	}
	if m.status != nil {
		fields = append(fields, jobapplication.FieldStatus)
	}
	if m.applied_at != nil {
		fields = append(fields, jobapplication.FieldAppliedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobapplication.FieldJobID:
		return m.JobID()
	case jobapplication.FieldApplicantID:
		return m.ApplicantID()
	case jobapplication.FieldCoverLetter:
		return m.CoverLetter()
	case jobapplication.FieldResumePath:
		return m.ResumePath()
	case jobapplication.FieldStatus:
		return m.Status()
	case jobapplication.FieldAppliedAt:
		return m.AppliedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobapplication.FieldJobID:
		return m.OldJobID(ctx)
	case jobapplication.FieldApplicantID:
		return m.OldApplicantID(ctx)
	case jobapplication.FieldCoverLetter:
		return m.OldCoverLetter(ctx)
	case jobapplication.FieldResumePath:
		return m.OldResumePath(ctx)
	case jobapplication.FieldStatus:
		return m.OldStatus(ctx)
	case jobapplication.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobApplication field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobapplication.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobapplication.FieldApplicantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicantID(v)
		return nil
	case jobapplication.FieldCoverLetter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverLetter(v)
		return nil
	case jobapplication.FieldResumePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumePath(v)
		return nil
	case jobapplication.FieldStatus:
		v, ok := value.(jobapplication.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobapplication.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobApplication field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobApplicationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobApplicationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobApplication numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobapplication.FieldCoverLetter) {
		fields = append(fields, jobapplication.FieldCoverLetter)
	}
	if m.FieldCleared(jobapplication.FieldResumePath) {
		fields = append(fields, jobapplication.FieldResumePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobApplicationMutation) ClearField(name string) error {
	switch name {
	case jobapplication.FieldCoverLetter:
		m.ClearCoverLetter()
		return nil
	case jobapplication.FieldResumePath:
		m.ClearResumePath()
		return nil
	}
	return fmt.Errorf("unknown JobApplication nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobApplicationMutation) ResetField(name string) error {
	switch name {
	case jobapplication.FieldJobID:
		m.ResetJobID()
		return nil
	case jobapplication.FieldApplicantID:
		m.ResetApplicantID()
		return nil
	case jobapplication.FieldCoverLetter:
		m.ResetCoverLetter()
		return nil
	case jobapplication.FieldResumePath:
		m.ResetResumePath()
		return nil
	case jobapplication.FieldStatus:
		m.ResetStatus()
		return nil
	case jobapplication.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	}
	return fmt.Errorf("unknown JobApplication field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.applicant != nil {
		edges = append(edges, jobapplication.EdgeApplicant)
	}
	if m.job != nil {
		edges = append(edges, jobapplication.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobapplication.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	case jobapplication.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobApplicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapplicant {
		edges = append(edges, jobapplication.EdgeApplicant)
	}
	if m.clearedjob {
		edges = append(edges, jobapplication.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case jobapplication.EdgeApplicant:
		return m.clearedapplicant
	case jobapplication.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobApplicationMutation) ClearEdge(name string) error {
	switch name {
	case jobapplication.EdgeApplicant:
		m.ClearApplicant()
		return nil
	case jobapplication.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobApplication unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobApplicationMutation) ResetEdge(name string) error {
	switch name {
	case jobapplication.EdgeApplicant:
		m.ResetApplicant()
		return nil
	case jobapplication.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobApplication edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	email                   *string
	password_hash           *string
	role                    *user.Role
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	employer_profile        *uuid.UUID
	clearedemployer_profile bool
	applications            map[uuid.UUID]struct{}
	removedapplications     map[uuid.UUID]struct{}
	clearedapplications     bool
	done                    bool
	oldValue                func(context.Context) (*User, error)
	predicates              []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmployerProfileID sets the "employer_profile" edge to the EmployerProfile entity by id.
func (m *UserMutation) SetEmployerProfileID(id uuid.UUID) {
	m.employer_profile = &id
}

// ClearEmployerProfile clears the "employer_profile" edge to the EmployerProfile entity.
func (m *UserMutation) ClearEmployerProfile() {
	m.clearedemployer_profile = true
}

// EmployerProfileCleared reports if the "employer_profile" edge to the EmployerProfile entity was cleared.
func (m *UserMutation) EmployerProfileCleared() bool {
	return m.clearedemployer_profile
}

// EmployerProfileID returns the "employer_profile" edge ID in the mutation.
func (m *UserMutation) EmployerProfileID() (id uuid.UUID, exists bool) {
	if m.employer_profile != nil {
		return *m.employer_profile, true
	}
	return
}

// EmployerProfileIDs returns the "employer_profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmployerProfileID instead. It exists only for internal usage by the builders.
func (m *UserMutation) EmployerProfileIDs() (ids []uuid.UUID) {
	if id := m.employer_profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmployerProfile resets all changes to the "employer_profile" edge.
func (m *UserMutation) ResetEmployerProfile() {
	m.employer_profile = nil
	m.clearedemployer_profile = false
}

// AddApplicationIDs adds the "applications" edge to the JobApplication entity by ids.
func (m *UserMutation) AddApplicationIDs(ids ...uuid.UUID) {
	if m.applications == nil {
		m.applications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the JobApplication entity.
func (m *UserMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the JobApplication entity was cleared.
func (m *UserMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the JobApplication entity by IDs.
func (m *UserMutation) RemoveApplicationIDs(ids ...uuid.UUID) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the JobApplication entity.
func (m *UserMutation) RemovedApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *UserMutation) ApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *UserMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.employer_profile != nil {
		edges = append(edges, user.EdgeEmployerProfile)
	}
	if m.applications != nil {
		edges = append(edges, user.EdgeApplications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeEmployerProfile:
		if id := m.employer_profile; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedapplications != nil {
		edges = append(edges, user.EdgeApplications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemployer_profile {
		edges = append(edges, user.EdgeEmployerProfile)
	}
	if m.clearedapplications {
		edges = append(edges, user.EdgeApplications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeEmployerProfile:
		return m.clearedemployer_profile
	case user.EdgeApplications:
		return m.clearedapplications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeEmployerProfile:
		m.ClearEmployerProfile()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeEmployerProfile:
		m.ResetEmployerProfile()
		return nil
	case user.EdgeApplications:
		m.ResetApplications()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
