// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fvillarroel/cobertor-bot/gen/ent/threadpattern"
	"github.com/google/uuid"
)

// ThreadPatternCreate is the builder for creating a ThreadPattern entity.
type ThreadPatternCreate struct {
	config
	mutation *ThreadPatternMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetThreadID sets the "thread_id" field.
func (_c *ThreadPatternCreate) SetThreadID(v string) *ThreadPatternCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetTotalMessages sets the "total_messages" field.
func (_c *ThreadPatternCreate) SetTotalMessages(v int) *ThreadPatternCreate {
	_c.mutation.SetTotalMessages(v)
	return _c
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_c *ThreadPatternCreate) SetNillableTotalMessages(v *int) *ThreadPatternCreate {
	if v != nil {
		_c.SetTotalMessages(*v)
	}
	return _c
}

// SetInternalParticipants sets the "internal_participants" field.
func (_c *ThreadPatternCreate) SetInternalParticipants(v int) *ThreadPatternCreate {
	_c.mutation.SetInternalParticipants(v)
	return _c
}

// SetNillableInternalParticipants sets the "internal_participants" field if the given value is not nil.
func (_c *ThreadPatternCreate) SetNillableInternalParticipants(v *int) *ThreadPatternCreate {
	if v != nil {
		_c.SetInternalParticipants(*v)
	}
	return _c
}

// SetExternalParticipants sets the "external_participants" field.
func (_c *ThreadPatternCreate) SetExternalParticipants(v int) *ThreadPatternCreate {
	_c.mutation.SetExternalParticipants(v)
	return _c
}

// SetNillableExternalParticipants sets the "external_participants" field if the given value is not nil.
func (_c *ThreadPatternCreate) SetNillableExternalParticipants(v *int) *ThreadPatternCreate {
	if v != nil {
		_c.SetExternalParticipants(*v)
	}
	return _c
}

// SetHasForward sets the "has_forward" field.
func (_c *ThreadPatternCreate) SetHasForward(v bool) *ThreadPatternCreate {
	_c.mutation.SetHasForward(v)
	return _c
}

// SetNillableHasForward sets the "has_forward" field if the given value is not nil.
func (_c *ThreadPatternCreate) SetNillableHasForward(v *bool) *ThreadPatternCreate {
	if v != nil {
		_c.SetHasForward(*v)
	}
	return _c
}

// SetHasAttachments sets the "has_attachments" field.
func (_c *ThreadPatternCreate) SetHasAttachments(v bool) *ThreadPatternCreate {
	_c.mutation.SetHasAttachments(v)
	return _c
}

// SetNillableHasAttachments sets the "has_attachments" field if the given value is not nil.
func (_c *ThreadPatternCreate) SetNillableHasAttachments(v *bool) *ThreadPatternCreate {
	if v != nil {
		_c.SetHasAttachments(*v)
	}
	return _c
}

// SetComplexity sets the "complexity" field.
func (_c *ThreadPatternCreate) SetComplexity(v string) *ThreadPatternCreate {
	_c.mutation.SetComplexity(v)
	return _c
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_c *ThreadPatternCreate) SetNillableComplexity(v *string) *ThreadPatternCreate {
	if v != nil {
		_c.SetComplexity(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ThreadPatternCreate) SetID(v uuid.UUID) *ThreadPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ThreadPatternCreate) SetNillableID(v *uuid.UUID) *ThreadPatternCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ThreadPatternMutation object of the builder.
func (_c *ThreadPatternCreate) Mutation() *ThreadPatternMutation {
	return _c.mutation
}

// Save creates the ThreadPattern in the database.
func (_c *ThreadPatternCreate) Save(ctx context.Context) (*ThreadPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThreadPatternCreate) SaveX(ctx context.Context) *ThreadPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThreadPatternCreate) defaults() {
	if _, ok := _c.mutation.TotalMessages(); !ok {
		v := threadpattern.DefaultTotalMessages
		_c.mutation.SetTotalMessages(v)
	}
	if _, ok := _c.mutation.InternalParticipants(); !ok {
		v := threadpattern.DefaultInternalParticipants
		_c.mutation.SetInternalParticipants(v)
	}
	if _, ok := _c.mutation.ExternalParticipants(); !ok {
		v := threadpattern.DefaultExternalParticipants
		_c.mutation.SetExternalParticipants(v)
	}
	if _, ok := _c.mutation.HasForward(); !ok {
		v := threadpattern.DefaultHasForward
		_c.mutation.SetHasForward(v)
	}
	if _, ok := _c.mutation.HasAttachments(); !ok {
		v := threadpattern.DefaultHasAttachments
		_c.mutation.SetHasAttachments(v)
	}
	if _, ok := _c.mutation.Complexity(); !ok {
		v := threadpattern.DefaultComplexity
		_c.mutation.SetComplexity(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := threadpattern.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThreadPatternCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "ThreadPattern.thread_id"`)}
	}
	if v, ok := _c.mutation.ThreadID(); ok {
		if err := threadpattern.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.thread_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalMessages(); !ok {
		return &ValidationError{Name: "total_messages", err: errors.New(`ent: missing required field "ThreadPattern.total_messages"`)}
	}
	if v, ok := _c.mutation.TotalMessages(); ok {
		if err := threadpattern.TotalMessagesValidator(v); err != nil {
			return &ValidationError{Name: "total_messages", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.total_messages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InternalParticipants(); !ok {
		return &ValidationError{Name: "internal_participants", err: errors.New(`ent: missing required field "ThreadPattern.internal_participants"`)}
	}
	if v, ok := _c.mutation.InternalParticipants(); ok {
		if err := threadpattern.InternalParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "internal_participants", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.internal_participants": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalParticipants(); !ok {
		return &ValidationError{Name: "external_participants", err: errors.New(`ent: missing required field "ThreadPattern.external_participants"`)}
	}
	if v, ok := _c.mutation.ExternalParticipants(); ok {
		if err := threadpattern.ExternalParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "external_participants", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.external_participants": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasForward(); !ok {
		return &ValidationError{Name: "has_forward", err: errors.New(`ent: missing required field "ThreadPattern.has_forward"`)}
	}
	if _, ok := _c.mutation.HasAttachments(); !ok {
		return &ValidationError{Name: "has_attachments", err: errors.New(`ent: missing required field "ThreadPattern.has_attachments"`)}
	}
	if _, ok := _c.mutation.Complexity(); !ok {
		return &ValidationError{Name: "complexity", err: errors.New(`ent: missing required field "ThreadPattern.complexity"`)}
	}
	return nil
}

func (_c *ThreadPatternCreate) sqlSave(ctx context.Context) (*ThreadPattern, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
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
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThreadPatternCreate) createSpec() (*ThreadPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &ThreadPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(threadpattern.Table, sqlgraph.NewFieldSpec(threadpattern.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(threadpattern.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.TotalMessages(); ok {
		_spec.SetField(threadpattern.FieldTotalMessages, field.TypeInt, value)
		_node.TotalMessages = value
	}
	if value, ok := _c.mutation.InternalParticipants(); ok {
		_spec.SetField(threadpattern.FieldInternalParticipants, field.TypeInt, value)
		_node.InternalParticipants = value
	}
	if value, ok := _c.mutation.ExternalParticipants(); ok {
		_spec.SetField(threadpattern.FieldExternalParticipants, field.TypeInt, value)
		_node.ExternalParticipants = value
	}
	if value, ok := _c.mutation.HasForward(); ok {
		_spec.SetField(threadpattern.FieldHasForward, field.TypeBool, value)
		_node.HasForward = value
	}
	if value, ok := _c.mutation.HasAttachments(); ok {
		_spec.SetField(threadpattern.FieldHasAttachments, field.TypeBool, value)
		_node.HasAttachments = value
	}
	if value, ok := _c.mutation.Complexity(); ok {
		_spec.SetField(threadpattern.FieldComplexity, field.TypeString, value)
		_node.Complexity = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ThreadPattern.Create().
//		SetThreadID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadPatternUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadPatternCreate) OnConflict(opts ...sql.ConflictOption) *ThreadPatternUpsertOne {
	_c.conflict = opts
	return &ThreadPatternUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ThreadPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadPatternCreate) OnConflictColumns(columns ...string) *ThreadPatternUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadPatternUpsertOne{
		create: _c,
	}
}

type (
	// ThreadPatternUpsertOne is the builder for "upsert"-ing
	//  one ThreadPattern node.
	ThreadPatternUpsertOne struct {
		create *ThreadPatternCreate
	}

	// ThreadPatternUpsert is the "OnConflict" setter.
	ThreadPatternUpsert struct {
		*sql.UpdateSet
	}
)

// SetThreadID sets the "thread_id" field.
func (u *ThreadPatternUpsert) SetThreadID(v string) *ThreadPatternUpsert {
	u.Set(threadpattern.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *ThreadPatternUpsert) UpdateThreadID() *ThreadPatternUpsert {
	u.SetExcluded(threadpattern.FieldThreadID)
	return u
}

// SetTotalMessages sets the "total_messages" field.
func (u *ThreadPatternUpsert) SetTotalMessages(v int) *ThreadPatternUpsert {
	u.Set(threadpattern.FieldTotalMessages, v)
	return u
}

// UpdateTotalMessages sets the "total_messages" field to the value that was provided on create.
func (u *ThreadPatternUpsert) UpdateTotalMessages() *ThreadPatternUpsert {
	u.SetExcluded(threadpattern.FieldTotalMessages)
	return u
}

// AddTotalMessages adds v to the "total_messages" field.
func (u *ThreadPatternUpsert) AddTotalMessages(v int) *ThreadPatternUpsert {
	u.Add(threadpattern.FieldTotalMessages, v)
	return u
}

// SetInternalParticipants sets the "internal_participants" field.
func (u *ThreadPatternUpsert) SetInternalParticipants(v int) *ThreadPatternUpsert {
	u.Set(threadpattern.FieldInternalParticipants, v)
	return u
}

// UpdateInternalParticipants sets the "internal_participants" field to the value that was provided on create.
func (u *ThreadPatternUpsert) UpdateInternalParticipants() *ThreadPatternUpsert {
	u.SetExcluded(threadpattern.FieldInternalParticipants)
	return u
}

// AddInternalParticipants adds v to the "internal_participants" field.
func (u *ThreadPatternUpsert) AddInternalParticipants(v int) *ThreadPatternUpsert {
	u.Add(threadpattern.FieldInternalParticipants, v)
	return u
}

// SetExternalParticipants sets the "external_participants" field.
func (u *ThreadPatternUpsert) SetExternalParticipants(v int) *ThreadPatternUpsert {
	u.Set(threadpattern.FieldExternalParticipants, v)
	return u
}

// UpdateExternalParticipants sets the "external_participants" field to the value that was provided on create.
func (u *ThreadPatternUpsert) UpdateExternalParticipants() *ThreadPatternUpsert {
	u.SetExcluded(threadpattern.FieldExternalParticipants)
	return u
}

// AddExternalParticipants adds v to the "external_participants" field.
func (u *ThreadPatternUpsert) AddExternalParticipants(v int) *ThreadPatternUpsert {
	u.Add(threadpattern.FieldExternalParticipants, v)
	return u
}

// SetHasForward sets the "has_forward" field.
func (u *ThreadPatternUpsert) SetHasForward(v bool) *ThreadPatternUpsert {
	u.Set(threadpattern.FieldHasForward, v)
	return u
}

// UpdateHasForward sets the "has_forward" field to the value that was provided on create.
func (u *ThreadPatternUpsert) UpdateHasForward() *ThreadPatternUpsert {
	u.SetExcluded(threadpattern.FieldHasForward)
	return u
}

// SetHasAttachments sets the "has_attachments" field.
func (u *ThreadPatternUpsert) SetHasAttachments(v bool) *ThreadPatternUpsert {
	u.Set(threadpattern.FieldHasAttachments, v)
	return u
}

// UpdateHasAttachments sets the "has_attachments" field to the value that was provided on create.
func (u *ThreadPatternUpsert) UpdateHasAttachments() *ThreadPatternUpsert {
	u.SetExcluded(threadpattern.FieldHasAttachments)
	return u
}

// SetComplexity sets the "complexity" field.
func (u *ThreadPatternUpsert) SetComplexity(v string) *ThreadPatternUpsert {
	u.Set(threadpattern.FieldComplexity, v)
	return u
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *ThreadPatternUpsert) UpdateComplexity() *ThreadPatternUpsert {
	u.SetExcluded(threadpattern.FieldComplexity)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ThreadPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(threadpattern.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThreadPatternUpsertOne) UpdateNewValues() *ThreadPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(threadpattern.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ThreadPattern.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ThreadPatternUpsertOne) Ignore() *ThreadPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadPatternUpsertOne) DoNothing() *ThreadPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadPatternCreate.OnConflict
// documentation for more info.
func (u *ThreadPatternUpsertOne) Update(set func(*ThreadPatternUpsert)) *ThreadPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *ThreadPatternUpsertOne) SetThreadID(v string) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *ThreadPatternUpsertOne) UpdateThreadID() *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateThreadID()
	})
}

// SetTotalMessages sets the "total_messages" field.
func (u *ThreadPatternUpsertOne) SetTotalMessages(v int) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetTotalMessages(v)
	})
}

// AddTotalMessages adds v to the "total_messages" field.
func (u *ThreadPatternUpsertOne) AddTotalMessages(v int) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.AddTotalMessages(v)
	})
}

// UpdateTotalMessages sets the "total_messages" field to the value that was provided on create.
func (u *ThreadPatternUpsertOne) UpdateTotalMessages() *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateTotalMessages()
	})
}

// SetInternalParticipants sets the "internal_participants" field.
func (u *ThreadPatternUpsertOne) SetInternalParticipants(v int) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetInternalParticipants(v)
	})
}

// AddInternalParticipants adds v to the "internal_participants" field.
func (u *ThreadPatternUpsertOne) AddInternalParticipants(v int) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.AddInternalParticipants(v)
	})
}

// UpdateInternalParticipants sets the "internal_participants" field to the value that was provided on create.
func (u *ThreadPatternUpsertOne) UpdateInternalParticipants() *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateInternalParticipants()
	})
}

// SetExternalParticipants sets the "external_participants" field.
func (u *ThreadPatternUpsertOne) SetExternalParticipants(v int) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetExternalParticipants(v)
	})
}

// AddExternalParticipants adds v to the "external_participants" field.
func (u *ThreadPatternUpsertOne) AddExternalParticipants(v int) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.AddExternalParticipants(v)
	})
}

// UpdateExternalParticipants sets the "external_participants" field to the value that was provided on create.
func (u *ThreadPatternUpsertOne) UpdateExternalParticipants() *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateExternalParticipants()
	})
}

// SetHasForward sets the "has_forward" field.
func (u *ThreadPatternUpsertOne) SetHasForward(v bool) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetHasForward(v)
	})
}

// UpdateHasForward sets the "has_forward" field to the value that was provided on create.
func (u *ThreadPatternUpsertOne) UpdateHasForward() *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateHasForward()
	})
}

// SetHasAttachments sets the "has_attachments" field.
func (u *ThreadPatternUpsertOne) SetHasAttachments(v bool) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetHasAttachments(v)
	})
}

// UpdateHasAttachments sets the "has_attachments" field to the value that was provided on create.
func (u *ThreadPatternUpsertOne) UpdateHasAttachments() *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateHasAttachments()
	})
}

// SetComplexity sets the "complexity" field.
func (u *ThreadPatternUpsertOne) SetComplexity(v string) *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetComplexity(v)
	})
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *ThreadPatternUpsertOne) UpdateComplexity() *ThreadPatternUpsertOne {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateComplexity()
	})
}

// Exec executes the query.
func (u *ThreadPatternUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadPatternCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadPatternUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ThreadPatternUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ThreadPatternUpsertOne.ID is not supported by MySQL driver. Use ThreadPatternUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ThreadPatternUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ThreadPatternCreateBulk is the builder for creating many ThreadPattern entities in bulk.
type ThreadPatternCreateBulk struct {
	config
	err      error
	builders []*ThreadPatternCreate
	conflict []sql.ConflictOption
}

// Save creates the ThreadPattern entities in the database.
func (_c *ThreadPatternCreateBulk) Save(ctx context.Context) ([]*ThreadPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThreadPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThreadPatternMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ThreadPatternCreateBulk) SaveX(ctx context.Context) []*ThreadPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ThreadPattern.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ThreadPatternUpsert) {
//			SetThreadID(v+v).
//		}).
//		Exec(ctx)
func (_c *ThreadPatternCreateBulk) OnConflict(opts ...sql.ConflictOption) *ThreadPatternUpsertBulk {
	_c.conflict = opts
	return &ThreadPatternUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ThreadPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ThreadPatternCreateBulk) OnConflictColumns(columns ...string) *ThreadPatternUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ThreadPatternUpsertBulk{
		create: _c,
	}
}

// ThreadPatternUpsertBulk is the builder for "upsert"-ing
// a bulk of ThreadPattern nodes.
type ThreadPatternUpsertBulk struct {
	create *ThreadPatternCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ThreadPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(threadpattern.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ThreadPatternUpsertBulk) UpdateNewValues() *ThreadPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(threadpattern.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ThreadPattern.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ThreadPatternUpsertBulk) Ignore() *ThreadPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ThreadPatternUpsertBulk) DoNothing() *ThreadPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ThreadPatternCreateBulk.OnConflict
// documentation for more info.
func (u *ThreadPatternUpsertBulk) Update(set func(*ThreadPatternUpsert)) *ThreadPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ThreadPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *ThreadPatternUpsertBulk) SetThreadID(v string) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *ThreadPatternUpsertBulk) UpdateThreadID() *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateThreadID()
	})
}

// SetTotalMessages sets the "total_messages" field.
func (u *ThreadPatternUpsertBulk) SetTotalMessages(v int) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetTotalMessages(v)
	})
}

// AddTotalMessages adds v to the "total_messages" field.
func (u *ThreadPatternUpsertBulk) AddTotalMessages(v int) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.AddTotalMessages(v)
	})
}

// UpdateTotalMessages sets the "total_messages" field to the value that was provided on create.
func (u *ThreadPatternUpsertBulk) UpdateTotalMessages() *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateTotalMessages()
	})
}

// SetInternalParticipants sets the "internal_participants" field.
func (u *ThreadPatternUpsertBulk) SetInternalParticipants(v int) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetInternalParticipants(v)
	})
}

// AddInternalParticipants adds v to the "internal_participants" field.
func (u *ThreadPatternUpsertBulk) AddInternalParticipants(v int) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.AddInternalParticipants(v)
	})
}

// UpdateInternalParticipants sets the "internal_participants" field to the value that was provided on create.
func (u *ThreadPatternUpsertBulk) UpdateInternalParticipants() *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateInternalParticipants()
	})
}

// SetExternalParticipants sets the "external_participants" field.
func (u *ThreadPatternUpsertBulk) SetExternalParticipants(v int) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetExternalParticipants(v)
	})
}

// AddExternalParticipants adds v to the "external_participants" field.
func (u *ThreadPatternUpsertBulk) AddExternalParticipants(v int) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.AddExternalParticipants(v)
	})
}

// UpdateExternalParticipants sets the "external_participants" field to the value that was provided on create.
func (u *ThreadPatternUpsertBulk) UpdateExternalParticipants() *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateExternalParticipants()
	})
}

// SetHasForward sets the "has_forward" field.
func (u *ThreadPatternUpsertBulk) SetHasForward(v bool) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetHasForward(v)
	})
}

// UpdateHasForward sets the "has_forward" field to the value that was provided on create.
func (u *ThreadPatternUpsertBulk) UpdateHasForward() *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateHasForward()
	})
}

// SetHasAttachments sets the "has_attachments" field.
func (u *ThreadPatternUpsertBulk) SetHasAttachments(v bool) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetHasAttachments(v)
	})
}

// UpdateHasAttachments sets the "has_attachments" field to the value that was provided on create.
func (u *ThreadPatternUpsertBulk) UpdateHasAttachments() *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateHasAttachments()
	})
}

// SetComplexity sets the "complexity" field.
func (u *ThreadPatternUpsertBulk) SetComplexity(v string) *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.SetComplexity(v)
	})
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *ThreadPatternUpsertBulk) UpdateComplexity() *ThreadPatternUpsertBulk {
	return u.Update(func(s *ThreadPatternUpsert) {
		s.UpdateComplexity()
	})
}

// Exec executes the query.
func (u *ThreadPatternUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ThreadPatternCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ThreadPatternCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ThreadPatternUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
