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
	"github.com/fvillarroel/cobertor-bot/gen/ent/learnedrule"
	"github.com/google/uuid"
)

// LearnedRuleCreate is the builder for creating a LearnedRule entity.
type LearnedRuleCreate struct {
	config
	mutation *LearnedRuleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRuleName sets the "rule_name" field.
func (_c *LearnedRuleCreate) SetRuleName(v string) *LearnedRuleCreate {
	_c.mutation.SetRuleName(v)
	return _c
}

// SetSenderEmail sets the "sender_email" field.
func (_c *LearnedRuleCreate) SetSenderEmail(v string) *LearnedRuleCreate {
	_c.mutation.SetSenderEmail(v)
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *LearnedRuleCreate) SetUrgency(v string) *LearnedRuleCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *LearnedRuleCreate) SetConfidence(v float64) *LearnedRuleCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetTimesTriggered sets the "times_triggered" field.
func (_c *LearnedRuleCreate) SetTimesTriggered(v int) *LearnedRuleCreate {
	_c.mutation.SetTimesTriggered(v)
	return _c
}

// SetNillableTimesTriggered sets the "times_triggered" field if the given value is not nil.
func (_c *LearnedRuleCreate) SetNillableTimesTriggered(v *int) *LearnedRuleCreate {
	if v != nil {
		_c.SetTimesTriggered(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnedRuleCreate) SetCreatedAt(v time.Time) *LearnedRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnedRuleCreate) SetNillableCreatedAt(v *time.Time) *LearnedRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearnedRuleCreate) SetID(v uuid.UUID) *LearnedRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LearnedRuleCreate) SetNillableID(v *uuid.UUID) *LearnedRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LearnedRuleMutation object of the builder.
func (_c *LearnedRuleCreate) Mutation() *LearnedRuleMutation {
	return _c.mutation
}

// Save creates the LearnedRule in the database.
func (_c *LearnedRuleCreate) Save(ctx context.Context) (*LearnedRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnedRuleCreate) SaveX(ctx context.Context) *LearnedRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnedRuleCreate) defaults() {
	if _, ok := _c.mutation.TimesTriggered(); !ok {
		v := learnedrule.DefaultTimesTriggered
		_c.mutation.SetTimesTriggered(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnedrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := learnedrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnedRuleCreate) check() error {
	if _, ok := _c.mutation.RuleName(); !ok {
		return &ValidationError{Name: "rule_name", err: errors.New(`ent: missing required field "LearnedRule.rule_name"`)}
	}
	if v, ok := _c.mutation.RuleName(); ok {
		if err := learnedrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.rule_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SenderEmail(); !ok {
		return &ValidationError{Name: "sender_email", err: errors.New(`ent: missing required field "LearnedRule.sender_email"`)}
	}
	if v, ok := _c.mutation.SenderEmail(); ok {
		if err := learnedrule.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.sender_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`ent: missing required field "LearnedRule.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := learnedrule.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "LearnedRule.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := learnedrule.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimesTriggered(); !ok {
		return &ValidationError{Name: "times_triggered", err: errors.New(`ent: missing required field "LearnedRule.times_triggered"`)}
	}
	if v, ok := _c.mutation.TimesTriggered(); ok {
		if err := learnedrule.TimesTriggeredValidator(v); err != nil {
			return &ValidationError{Name: "times_triggered", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.times_triggered": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnedRule.created_at"`)}
	}
	return nil
}

func (_c *LearnedRuleCreate) sqlSave(ctx context.Context) (*LearnedRule, error) {
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

func (_c *LearnedRuleCreate) createSpec() (*LearnedRule, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnedRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnedrule.Table, sqlgraph.NewFieldSpec(learnedrule.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RuleName(); ok {
		_spec.SetField(learnedrule.FieldRuleName, field.TypeString, value)
		_node.RuleName = value
	}
	if value, ok := _c.mutation.SenderEmail(); ok {
		_spec.SetField(learnedrule.FieldSenderEmail, field.TypeString, value)
		_node.SenderEmail = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(learnedrule.FieldUrgency, field.TypeString, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(learnedrule.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.TimesTriggered(); ok {
		_spec.SetField(learnedrule.FieldTimesTriggered, field.TypeInt, value)
		_node.TimesTriggered = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnedrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearnedRule.Create().
//		SetRuleName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnedRuleUpsert) {
//			SetRuleName(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnedRuleCreate) OnConflict(opts ...sql.ConflictOption) *LearnedRuleUpsertOne {
	_c.conflict = opts
	return &LearnedRuleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearnedRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnedRuleCreate) OnConflictColumns(columns ...string) *LearnedRuleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnedRuleUpsertOne{
		create: _c,
	}
}

type (
	// LearnedRuleUpsertOne is the builder for "upsert"-ing
	//  one LearnedRule node.
	LearnedRuleUpsertOne struct {
		create *LearnedRuleCreate
	}

	// LearnedRuleUpsert is the "OnConflict" setter.
	LearnedRuleUpsert struct {
		*sql.UpdateSet
	}
)

// SetRuleName sets the "rule_name" field.
func (u *LearnedRuleUpsert) SetRuleName(v string) *LearnedRuleUpsert {
	u.Set(learnedrule.FieldRuleName, v)
	return u
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *LearnedRuleUpsert) UpdateRuleName() *LearnedRuleUpsert {
	u.SetExcluded(learnedrule.FieldRuleName)
	return u
}

// SetSenderEmail sets the "sender_email" field.
func (u *LearnedRuleUpsert) SetSenderEmail(v string) *LearnedRuleUpsert {
	u.Set(learnedrule.FieldSenderEmail, v)
	return u
}

// UpdateSenderEmail sets the "sender_email" field to the value that was provided on create.
func (u *LearnedRuleUpsert) UpdateSenderEmail() *LearnedRuleUpsert {
	u.SetExcluded(learnedrule.FieldSenderEmail)
	return u
}

// SetUrgency sets the "urgency" field.
func (u *LearnedRuleUpsert) SetUrgency(v string) *LearnedRuleUpsert {
	u.Set(learnedrule.FieldUrgency, v)
	return u
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *LearnedRuleUpsert) UpdateUrgency() *LearnedRuleUpsert {
	u.SetExcluded(learnedrule.FieldUrgency)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *LearnedRuleUpsert) SetConfidence(v float64) *LearnedRuleUpsert {
	u.Set(learnedrule.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LearnedRuleUpsert) UpdateConfidence() *LearnedRuleUpsert {
	u.SetExcluded(learnedrule.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *LearnedRuleUpsert) AddConfidence(v float64) *LearnedRuleUpsert {
	u.Add(learnedrule.FieldConfidence, v)
	return u
}

// SetTimesTriggered sets the "times_triggered" field.
func (u *LearnedRuleUpsert) SetTimesTriggered(v int) *LearnedRuleUpsert {
	u.Set(learnedrule.FieldTimesTriggered, v)
	return u
}

// UpdateTimesTriggered sets the "times_triggered" field to the value that was provided on create.
func (u *LearnedRuleUpsert) UpdateTimesTriggered() *LearnedRuleUpsert {
	u.SetExcluded(learnedrule.FieldTimesTriggered)
	return u
}

// AddTimesTriggered adds v to the "times_triggered" field.
func (u *LearnedRuleUpsert) AddTimesTriggered(v int) *LearnedRuleUpsert {
	u.Add(learnedrule.FieldTimesTriggered, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *LearnedRuleUpsert) SetCreatedAt(v time.Time) *LearnedRuleUpsert {
	u.Set(learnedrule.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LearnedRuleUpsert) UpdateCreatedAt() *LearnedRuleUpsert {
	u.SetExcluded(learnedrule.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LearnedRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(learnedrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LearnedRuleUpsertOne) UpdateNewValues() *LearnedRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(learnedrule.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearnedRule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LearnedRuleUpsertOne) Ignore() *LearnedRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnedRuleUpsertOne) DoNothing() *LearnedRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnedRuleCreate.OnConflict
// documentation for more info.
func (u *LearnedRuleUpsertOne) Update(set func(*LearnedRuleUpsert)) *LearnedRuleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnedRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetRuleName sets the "rule_name" field.
func (u *LearnedRuleUpsertOne) SetRuleName(v string) *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetRuleName(v)
	})
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *LearnedRuleUpsertOne) UpdateRuleName() *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateRuleName()
	})
}

// SetSenderEmail sets the "sender_email" field.
func (u *LearnedRuleUpsertOne) SetSenderEmail(v string) *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetSenderEmail(v)
	})
}

// UpdateSenderEmail sets the "sender_email" field to the value that was provided on create.
func (u *LearnedRuleUpsertOne) UpdateSenderEmail() *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateSenderEmail()
	})
}

// SetUrgency sets the "urgency" field.
func (u *LearnedRuleUpsertOne) SetUrgency(v string) *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetUrgency(v)
	})
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *LearnedRuleUpsertOne) UpdateUrgency() *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateUrgency()
	})
}

// SetConfidence sets the "confidence" field.
func (u *LearnedRuleUpsertOne) SetConfidence(v float64) *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *LearnedRuleUpsertOne) AddConfidence(v float64) *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LearnedRuleUpsertOne) UpdateConfidence() *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateConfidence()
	})
}

// SetTimesTriggered sets the "times_triggered" field.
func (u *LearnedRuleUpsertOne) SetTimesTriggered(v int) *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetTimesTriggered(v)
	})
}

// AddTimesTriggered adds v to the "times_triggered" field.
func (u *LearnedRuleUpsertOne) AddTimesTriggered(v int) *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.AddTimesTriggered(v)
	})
}

// UpdateTimesTriggered sets the "times_triggered" field to the value that was provided on create.
func (u *LearnedRuleUpsertOne) UpdateTimesTriggered() *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateTimesTriggered()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *LearnedRuleUpsertOne) SetCreatedAt(v time.Time) *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LearnedRuleUpsertOne) UpdateCreatedAt() *LearnedRuleUpsertOne {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *LearnedRuleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnedRuleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnedRuleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LearnedRuleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LearnedRuleUpsertOne.ID is not supported by MySQL driver. Use LearnedRuleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LearnedRuleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LearnedRuleCreateBulk is the builder for creating many LearnedRule entities in bulk.
type LearnedRuleCreateBulk struct {
	config
	err      error
	builders []*LearnedRuleCreate
	conflict []sql.ConflictOption
}

// Save creates the LearnedRule entities in the database.
func (_c *LearnedRuleCreateBulk) Save(ctx context.Context) ([]*LearnedRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnedRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnedRuleMutation)
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
func (_c *LearnedRuleCreateBulk) SaveX(ctx context.Context) []*LearnedRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearnedRule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnedRuleUpsert) {
//			SetRuleName(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnedRuleCreateBulk) OnConflict(opts ...sql.ConflictOption) *LearnedRuleUpsertBulk {
	_c.conflict = opts
	return &LearnedRuleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearnedRule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnedRuleCreateBulk) OnConflictColumns(columns ...string) *LearnedRuleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnedRuleUpsertBulk{
		create: _c,
	}
}

// LearnedRuleUpsertBulk is the builder for "upsert"-ing
// a bulk of LearnedRule nodes.
type LearnedRuleUpsertBulk struct {
	create *LearnedRuleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LearnedRule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(learnedrule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LearnedRuleUpsertBulk) UpdateNewValues() *LearnedRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(learnedrule.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearnedRule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LearnedRuleUpsertBulk) Ignore() *LearnedRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnedRuleUpsertBulk) DoNothing() *LearnedRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnedRuleCreateBulk.OnConflict
// documentation for more info.
func (u *LearnedRuleUpsertBulk) Update(set func(*LearnedRuleUpsert)) *LearnedRuleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnedRuleUpsert{UpdateSet: update})
	}))
	return u
}

// SetRuleName sets the "rule_name" field.
func (u *LearnedRuleUpsertBulk) SetRuleName(v string) *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetRuleName(v)
	})
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *LearnedRuleUpsertBulk) UpdateRuleName() *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateRuleName()
	})
}

// SetSenderEmail sets the "sender_email" field.
func (u *LearnedRuleUpsertBulk) SetSenderEmail(v string) *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetSenderEmail(v)
	})
}

// UpdateSenderEmail sets the "sender_email" field to the value that was provided on create.
func (u *LearnedRuleUpsertBulk) UpdateSenderEmail() *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateSenderEmail()
	})
}

// SetUrgency sets the "urgency" field.
func (u *LearnedRuleUpsertBulk) SetUrgency(v string) *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetUrgency(v)
	})
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *LearnedRuleUpsertBulk) UpdateUrgency() *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateUrgency()
	})
}

// SetConfidence sets the "confidence" field.
func (u *LearnedRuleUpsertBulk) SetConfidence(v float64) *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *LearnedRuleUpsertBulk) AddConfidence(v float64) *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *LearnedRuleUpsertBulk) UpdateConfidence() *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateConfidence()
	})
}

// SetTimesTriggered sets the "times_triggered" field.
func (u *LearnedRuleUpsertBulk) SetTimesTriggered(v int) *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetTimesTriggered(v)
	})
}

// AddTimesTriggered adds v to the "times_triggered" field.
func (u *LearnedRuleUpsertBulk) AddTimesTriggered(v int) *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.AddTimesTriggered(v)
	})
}

// UpdateTimesTriggered sets the "times_triggered" field to the value that was provided on create.
func (u *LearnedRuleUpsertBulk) UpdateTimesTriggered() *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateTimesTriggered()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *LearnedRuleUpsertBulk) SetCreatedAt(v time.Time) *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *LearnedRuleUpsertBulk) UpdateCreatedAt() *LearnedRuleUpsertBulk {
	return u.Update(func(s *LearnedRuleUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *LearnedRuleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LearnedRuleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnedRuleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnedRuleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
