// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fvillarroel/cobertor-bot/gen/ent/senderprofile"
	"github.com/google/uuid"
)

// SenderProfileCreate is the builder for creating a SenderProfile entity.
type SenderProfileCreate struct {
	config
	mutation *SenderProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEmail sets the "email" field.
func (_c *SenderProfileCreate) SetEmail(v string) *SenderProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *SenderProfileCreate) SetDomain(v string) *SenderProfileCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *SenderProfileCreate) SetNillableDomain(v *string) *SenderProfileCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *SenderProfileCreate) SetCategory(v string) *SenderProfileCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *SenderProfileCreate) SetNillableCategory(v *string) *SenderProfileCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetTypicalUrgency sets the "typical_urgency" field.
func (_c *SenderProfileCreate) SetTypicalUrgency(v string) *SenderProfileCreate {
	_c.mutation.SetTypicalUrgency(v)
	return _c
}

// SetNillableTypicalUrgency sets the "typical_urgency" field if the given value is not nil.
func (_c *SenderProfileCreate) SetNillableTypicalUrgency(v *string) *SenderProfileCreate {
	if v != nil {
		_c.SetTypicalUrgency(*v)
	}
	return _c
}

// SetTypicalIntent sets the "typical_intent" field.
func (_c *SenderProfileCreate) SetTypicalIntent(v string) *SenderProfileCreate {
	_c.mutation.SetTypicalIntent(v)
	return _c
}

// SetNillableTypicalIntent sets the "typical_intent" field if the given value is not nil.
func (_c *SenderProfileCreate) SetNillableTypicalIntent(v *string) *SenderProfileCreate {
	if v != nil {
		_c.SetTypicalIntent(*v)
	}
	return _c
}

// SetEmailsAnalyzed sets the "emails_analyzed" field.
func (_c *SenderProfileCreate) SetEmailsAnalyzed(v int) *SenderProfileCreate {
	_c.mutation.SetEmailsAnalyzed(v)
	return _c
}

// SetNillableEmailsAnalyzed sets the "emails_analyzed" field if the given value is not nil.
func (_c *SenderProfileCreate) SetNillableEmailsAnalyzed(v *int) *SenderProfileCreate {
	if v != nil {
		_c.SetEmailsAnalyzed(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *SenderProfileCreate) SetConfidence(v float64) *SenderProfileCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *SenderProfileCreate) SetNillableConfidence(v *float64) *SenderProfileCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *SenderProfileCreate) SetLastSeen(v time.Time) *SenderProfileCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *SenderProfileCreate) SetNillableLastSeen(v *time.Time) *SenderProfileCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SenderProfileCreate) SetID(v uuid.UUID) *SenderProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SenderProfileCreate) SetNillableID(v *uuid.UUID) *SenderProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SenderProfileMutation object of the builder.
func (_c *SenderProfileCreate) Mutation() *SenderProfileMutation {
	return _c.mutation
}

// Save creates the SenderProfile in the database.
func (_c *SenderProfileCreate) Save(ctx context.Context) (*SenderProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SenderProfileCreate) SaveX(ctx context.Context) *SenderProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SenderProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SenderProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SenderProfileCreate) defaults() {
	if _, ok := _c.mutation.Domain(); !ok {
		v := senderprofile.DefaultDomain
		_c.mutation.SetDomain(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := senderprofile.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.TypicalUrgency(); !ok {
		v := senderprofile.DefaultTypicalUrgency
		_c.mutation.SetTypicalUrgency(v)
	}
	if _, ok := _c.mutation.TypicalIntent(); !ok {
		v := senderprofile.DefaultTypicalIntent
		_c.mutation.SetTypicalIntent(v)
	}
	if _, ok := _c.mutation.EmailsAnalyzed(); !ok {
		v := senderprofile.DefaultEmailsAnalyzed
		_c.mutation.SetEmailsAnalyzed(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := senderprofile.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := senderprofile.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := senderprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SenderProfileCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "SenderProfile.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := senderprofile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "SenderProfile.domain"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "SenderProfile.category"`)}
	}
	if _, ok := _c.mutation.TypicalUrgency(); !ok {
		return &ValidationError{Name: "typical_urgency", err: errors.New(`ent: missing required field "SenderProfile.typical_urgency"`)}
	}
	if _, ok := _c.mutation.TypicalIntent(); !ok {
		return &ValidationError{Name: "typical_intent", err: errors.New(`ent: missing required field "SenderProfile.typical_intent"`)}
	}
	if _, ok := _c.mutation.EmailsAnalyzed(); !ok {
		return &ValidationError{Name: "emails_analyzed", err: errors.New(`ent: missing required field "SenderProfile.emails_analyzed"`)}
	}
	if v, ok := _c.mutation.EmailsAnalyzed(); ok {
		if err := senderprofile.EmailsAnalyzedValidator(v); err != nil {
			return &ValidationError{Name: "emails_analyzed", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.emails_analyzed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "SenderProfile.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := senderprofile.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "SenderProfile.last_seen"`)}
	}
	return nil
}

func (_c *SenderProfileCreate) sqlSave(ctx context.Context) (*SenderProfile, error) {
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

func (_c *SenderProfileCreate) createSpec() (*SenderProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &SenderProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(senderprofile.Table, sqlgraph.NewFieldSpec(senderprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(senderprofile.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(senderprofile.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(senderprofile.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.TypicalUrgency(); ok {
		_spec.SetField(senderprofile.FieldTypicalUrgency, field.TypeString, value)
		_node.TypicalUrgency = value
	}
	if value, ok := _c.mutation.TypicalIntent(); ok {
		_spec.SetField(senderprofile.FieldTypicalIntent, field.TypeString, value)
		_node.TypicalIntent = value
	}
	if value, ok := _c.mutation.EmailsAnalyzed(); ok {
		_spec.SetField(senderprofile.FieldEmailsAnalyzed, field.TypeInt, value)
		_node.EmailsAnalyzed = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(senderprofile.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(senderprofile.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SenderProfile.Create().
//		SetEmail(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SenderProfileUpsert) {
//			SetEmail(v+v).
//		}).
//		Exec(ctx)
func (_c *SenderProfileCreate) OnConflict(opts ...sql.ConflictOption) *SenderProfileUpsertOne {
	_c.conflict = opts
	return &SenderProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SenderProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SenderProfileCreate) OnConflictColumns(columns ...string) *SenderProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SenderProfileUpsertOne{
		create: _c,
	}
}

type (
	// SenderProfileUpsertOne is the builder for "upsert"-ing
	//  one SenderProfile node.
	SenderProfileUpsertOne struct {
		create *SenderProfileCreate
	}

	// SenderProfileUpsert is the "OnConflict" setter.
	SenderProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmail sets the "email" field.
func (u *SenderProfileUpsert) SetEmail(v string) *SenderProfileUpsert {
	u.Set(senderprofile.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *SenderProfileUpsert) UpdateEmail() *SenderProfileUpsert {
	u.SetExcluded(senderprofile.FieldEmail)
	return u
}

// SetDomain sets the "domain" field.
func (u *SenderProfileUpsert) SetDomain(v string) *SenderProfileUpsert {
	u.Set(senderprofile.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *SenderProfileUpsert) UpdateDomain() *SenderProfileUpsert {
	u.SetExcluded(senderprofile.FieldDomain)
	return u
}

// SetCategory sets the "category" field.
func (u *SenderProfileUpsert) SetCategory(v string) *SenderProfileUpsert {
	u.Set(senderprofile.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *SenderProfileUpsert) UpdateCategory() *SenderProfileUpsert {
	u.SetExcluded(senderprofile.FieldCategory)
	return u
}

// SetTypicalUrgency sets the "typical_urgency" field.
func (u *SenderProfileUpsert) SetTypicalUrgency(v string) *SenderProfileUpsert {
	u.Set(senderprofile.FieldTypicalUrgency, v)
	return u
}

// UpdateTypicalUrgency sets the "typical_urgency" field to the value that was provided on create.
func (u *SenderProfileUpsert) UpdateTypicalUrgency() *SenderProfileUpsert {
	u.SetExcluded(senderprofile.FieldTypicalUrgency)
	return u
}

// SetTypicalIntent sets the "typical_intent" field.
func (u *SenderProfileUpsert) SetTypicalIntent(v string) *SenderProfileUpsert {
	u.Set(senderprofile.FieldTypicalIntent, v)
	return u
}

// UpdateTypicalIntent sets the "typical_intent" field to the value that was provided on create.
func (u *SenderProfileUpsert) UpdateTypicalIntent() *SenderProfileUpsert {
	u.SetExcluded(senderprofile.FieldTypicalIntent)
	return u
}

// SetEmailsAnalyzed sets the "emails_analyzed" field.
func (u *SenderProfileUpsert) SetEmailsAnalyzed(v int) *SenderProfileUpsert {
	u.Set(senderprofile.FieldEmailsAnalyzed, v)
	return u
}

// UpdateEmailsAnalyzed sets the "emails_analyzed" field to the value that was provided on create.
func (u *SenderProfileUpsert) UpdateEmailsAnalyzed() *SenderProfileUpsert {
	u.SetExcluded(senderprofile.FieldEmailsAnalyzed)
	return u
}

// AddEmailsAnalyzed adds v to the "emails_analyzed" field.
func (u *SenderProfileUpsert) AddEmailsAnalyzed(v int) *SenderProfileUpsert {
	u.Add(senderprofile.FieldEmailsAnalyzed, v)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *SenderProfileUpsert) SetConfidence(v float64) *SenderProfileUpsert {
	u.Set(senderprofile.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *SenderProfileUpsert) UpdateConfidence() *SenderProfileUpsert {
	u.SetExcluded(senderprofile.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *SenderProfileUpsert) AddConfidence(v float64) *SenderProfileUpsert {
	u.Add(senderprofile.FieldConfidence, v)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *SenderProfileUpsert) SetLastSeen(v time.Time) *SenderProfileUpsert {
	u.Set(senderprofile.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *SenderProfileUpsert) UpdateLastSeen() *SenderProfileUpsert {
	u.SetExcluded(senderprofile.FieldLastSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SenderProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(senderprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SenderProfileUpsertOne) UpdateNewValues() *SenderProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(senderprofile.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SenderProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SenderProfileUpsertOne) Ignore() *SenderProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SenderProfileUpsertOne) DoNothing() *SenderProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SenderProfileCreate.OnConflict
// documentation for more info.
func (u *SenderProfileUpsertOne) Update(set func(*SenderProfileUpsert)) *SenderProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SenderProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *SenderProfileUpsertOne) SetEmail(v string) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *SenderProfileUpsertOne) UpdateEmail() *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateEmail()
	})
}

// SetDomain sets the "domain" field.
func (u *SenderProfileUpsertOne) SetDomain(v string) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *SenderProfileUpsertOne) UpdateDomain() *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateDomain()
	})
}

// SetCategory sets the "category" field.
func (u *SenderProfileUpsertOne) SetCategory(v string) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *SenderProfileUpsertOne) UpdateCategory() *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateCategory()
	})
}

// SetTypicalUrgency sets the "typical_urgency" field.
func (u *SenderProfileUpsertOne) SetTypicalUrgency(v string) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetTypicalUrgency(v)
	})
}

// UpdateTypicalUrgency sets the "typical_urgency" field to the value that was provided on create.
func (u *SenderProfileUpsertOne) UpdateTypicalUrgency() *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateTypicalUrgency()
	})
}

// SetTypicalIntent sets the "typical_intent" field.
func (u *SenderProfileUpsertOne) SetTypicalIntent(v string) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetTypicalIntent(v)
	})
}

// UpdateTypicalIntent sets the "typical_intent" field to the value that was provided on create.
func (u *SenderProfileUpsertOne) UpdateTypicalIntent() *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateTypicalIntent()
	})
}

// SetEmailsAnalyzed sets the "emails_analyzed" field.
func (u *SenderProfileUpsertOne) SetEmailsAnalyzed(v int) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetEmailsAnalyzed(v)
	})
}

// AddEmailsAnalyzed adds v to the "emails_analyzed" field.
func (u *SenderProfileUpsertOne) AddEmailsAnalyzed(v int) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.AddEmailsAnalyzed(v)
	})
}

// UpdateEmailsAnalyzed sets the "emails_analyzed" field to the value that was provided on create.
func (u *SenderProfileUpsertOne) UpdateEmailsAnalyzed() *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateEmailsAnalyzed()
	})
}

// SetConfidence sets the "confidence" field.
func (u *SenderProfileUpsertOne) SetConfidence(v float64) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *SenderProfileUpsertOne) AddConfidence(v float64) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *SenderProfileUpsertOne) UpdateConfidence() *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateConfidence()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *SenderProfileUpsertOne) SetLastSeen(v time.Time) *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *SenderProfileUpsertOne) UpdateLastSeen() *SenderProfileUpsertOne {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *SenderProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SenderProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SenderProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SenderProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SenderProfileUpsertOne.ID is not supported by MySQL driver. Use SenderProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SenderProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SenderProfileCreateBulk is the builder for creating many SenderProfile entities in bulk.
type SenderProfileCreateBulk struct {
	config
	err      error
	builders []*SenderProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the SenderProfile entities in the database.
func (_c *SenderProfileCreateBulk) Save(ctx context.Context) ([]*SenderProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SenderProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SenderProfileMutation)
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
func (_c *SenderProfileCreateBulk) SaveX(ctx context.Context) []*SenderProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SenderProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SenderProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SenderProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SenderProfileUpsert) {
//			SetEmail(v+v).
//		}).
//		Exec(ctx)
func (_c *SenderProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *SenderProfileUpsertBulk {
	_c.conflict = opts
	return &SenderProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SenderProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SenderProfileCreateBulk) OnConflictColumns(columns ...string) *SenderProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SenderProfileUpsertBulk{
		create: _c,
	}
}

// SenderProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of SenderProfile nodes.
type SenderProfileUpsertBulk struct {
	create *SenderProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SenderProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(senderprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SenderProfileUpsertBulk) UpdateNewValues() *SenderProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(senderprofile.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SenderProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SenderProfileUpsertBulk) Ignore() *SenderProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SenderProfileUpsertBulk) DoNothing() *SenderProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SenderProfileCreateBulk.OnConflict
// documentation for more info.
func (u *SenderProfileUpsertBulk) Update(set func(*SenderProfileUpsert)) *SenderProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SenderProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *SenderProfileUpsertBulk) SetEmail(v string) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *SenderProfileUpsertBulk) UpdateEmail() *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateEmail()
	})
}

// SetDomain sets the "domain" field.
func (u *SenderProfileUpsertBulk) SetDomain(v string) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *SenderProfileUpsertBulk) UpdateDomain() *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateDomain()
	})
}

// SetCategory sets the "category" field.
func (u *SenderProfileUpsertBulk) SetCategory(v string) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *SenderProfileUpsertBulk) UpdateCategory() *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateCategory()
	})
}

// SetTypicalUrgency sets the "typical_urgency" field.
func (u *SenderProfileUpsertBulk) SetTypicalUrgency(v string) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetTypicalUrgency(v)
	})
}

// UpdateTypicalUrgency sets the "typical_urgency" field to the value that was provided on create.
func (u *SenderProfileUpsertBulk) UpdateTypicalUrgency() *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateTypicalUrgency()
	})
}

// SetTypicalIntent sets the "typical_intent" field.
func (u *SenderProfileUpsertBulk) SetTypicalIntent(v string) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetTypicalIntent(v)
	})
}

// UpdateTypicalIntent sets the "typical_intent" field to the value that was provided on create.
func (u *SenderProfileUpsertBulk) UpdateTypicalIntent() *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateTypicalIntent()
	})
}

// SetEmailsAnalyzed sets the "emails_analyzed" field.
func (u *SenderProfileUpsertBulk) SetEmailsAnalyzed(v int) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetEmailsAnalyzed(v)
	})
}

// AddEmailsAnalyzed adds v to the "emails_analyzed" field.
func (u *SenderProfileUpsertBulk) AddEmailsAnalyzed(v int) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.AddEmailsAnalyzed(v)
	})
}

// UpdateEmailsAnalyzed sets the "emails_analyzed" field to the value that was provided on create.
func (u *SenderProfileUpsertBulk) UpdateEmailsAnalyzed() *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateEmailsAnalyzed()
	})
}

// SetConfidence sets the "confidence" field.
func (u *SenderProfileUpsertBulk) SetConfidence(v float64) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *SenderProfileUpsertBulk) AddConfidence(v float64) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *SenderProfileUpsertBulk) UpdateConfidence() *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateConfidence()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *SenderProfileUpsertBulk) SetLastSeen(v time.Time) *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *SenderProfileUpsertBulk) UpdateLastSeen() *SenderProfileUpsertBulk {
	return u.Update(func(s *SenderProfileUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *SenderProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SenderProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SenderProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SenderProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
