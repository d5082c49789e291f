// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/fvillarroel/cobertor-bot/gen/ent/senderprofile"
)

// SenderProfileUpdate is the builder for updating SenderProfile entities.
type SenderProfileUpdate struct {
	config
	hooks    []Hook
	mutation *SenderProfileMutation
}

// Where appends a list predicates to the SenderProfileUpdate builder.
func (_u *SenderProfileUpdate) Where(ps ...predicate.SenderProfile) *SenderProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *SenderProfileUpdate) SetEmail(v string) *SenderProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SenderProfileUpdate) SetNillableEmail(v *string) *SenderProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *SenderProfileUpdate) SetDomain(v string) *SenderProfileUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *SenderProfileUpdate) SetNillableDomain(v *string) *SenderProfileUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *SenderProfileUpdate) SetCategory(v string) *SenderProfileUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SenderProfileUpdate) SetNillableCategory(v *string) *SenderProfileUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTypicalUrgency sets the "typical_urgency" field.
func (_u *SenderProfileUpdate) SetTypicalUrgency(v string) *SenderProfileUpdate {
	_u.mutation.SetTypicalUrgency(v)
	return _u
}

// SetNillableTypicalUrgency sets the "typical_urgency" field if the given value is not nil.
func (_u *SenderProfileUpdate) SetNillableTypicalUrgency(v *string) *SenderProfileUpdate {
	if v != nil {
		_u.SetTypicalUrgency(*v)
	}
	return _u
}

// SetTypicalIntent sets the "typical_intent" field.
func (_u *SenderProfileUpdate) SetTypicalIntent(v string) *SenderProfileUpdate {
	_u.mutation.SetTypicalIntent(v)
	return _u
}

// SetNillableTypicalIntent sets the "typical_intent" field if the given value is not nil.
func (_u *SenderProfileUpdate) SetNillableTypicalIntent(v *string) *SenderProfileUpdate {
	if v != nil {
		_u.SetTypicalIntent(*v)
	}
	return _u
}

// SetEmailsAnalyzed sets the "emails_analyzed" field.
func (_u *SenderProfileUpdate) SetEmailsAnalyzed(v int) *SenderProfileUpdate {
	_u.mutation.ResetEmailsAnalyzed()
	_u.mutation.SetEmailsAnalyzed(v)
	return _u
}

// SetNillableEmailsAnalyzed sets the "emails_analyzed" field if the given value is not nil.
func (_u *SenderProfileUpdate) SetNillableEmailsAnalyzed(v *int) *SenderProfileUpdate {
	if v != nil {
		_u.SetEmailsAnalyzed(*v)
	}
	return _u
}

// AddEmailsAnalyzed adds value to the "emails_analyzed" field.
func (_u *SenderProfileUpdate) AddEmailsAnalyzed(v int) *SenderProfileUpdate {
	_u.mutation.AddEmailsAnalyzed(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SenderProfileUpdate) SetConfidence(v float64) *SenderProfileUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SenderProfileUpdate) SetNillableConfidence(v *float64) *SenderProfileUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SenderProfileUpdate) AddConfidence(v float64) *SenderProfileUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *SenderProfileUpdate) SetLastSeen(v time.Time) *SenderProfileUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the SenderProfileMutation object of the builder.
func (_u *SenderProfileUpdate) Mutation() *SenderProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SenderProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SenderProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SenderProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SenderProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SenderProfileUpdate) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := senderprofile.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SenderProfileUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := senderprofile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmailsAnalyzed(); ok {
		if err := senderprofile.EmailsAnalyzedValidator(v); err != nil {
			return &ValidationError{Name: "emails_analyzed", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.emails_analyzed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := senderprofile.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *SenderProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(senderprofile.Table, senderprofile.Columns, sqlgraph.NewFieldSpec(senderprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(senderprofile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(senderprofile.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(senderprofile.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypicalUrgency(); ok {
		_spec.SetField(senderprofile.FieldTypicalUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypicalIntent(); ok {
		_spec.SetField(senderprofile.FieldTypicalIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmailsAnalyzed(); ok {
		_spec.SetField(senderprofile.FieldEmailsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmailsAnalyzed(); ok {
		_spec.AddField(senderprofile.FieldEmailsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(senderprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(senderprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(senderprofile.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{senderprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SenderProfileUpdateOne is the builder for updating a single SenderProfile entity.
type SenderProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SenderProfileMutation
}

// SetEmail sets the "email" field.
func (_u *SenderProfileUpdateOne) SetEmail(v string) *SenderProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SenderProfileUpdateOne) SetNillableEmail(v *string) *SenderProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *SenderProfileUpdateOne) SetDomain(v string) *SenderProfileUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *SenderProfileUpdateOne) SetNillableDomain(v *string) *SenderProfileUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *SenderProfileUpdateOne) SetCategory(v string) *SenderProfileUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SenderProfileUpdateOne) SetNillableCategory(v *string) *SenderProfileUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTypicalUrgency sets the "typical_urgency" field.
func (_u *SenderProfileUpdateOne) SetTypicalUrgency(v string) *SenderProfileUpdateOne {
	_u.mutation.SetTypicalUrgency(v)
	return _u
}

// SetNillableTypicalUrgency sets the "typical_urgency" field if the given value is not nil.
func (_u *SenderProfileUpdateOne) SetNillableTypicalUrgency(v *string) *SenderProfileUpdateOne {
	if v != nil {
		_u.SetTypicalUrgency(*v)
	}
	return _u
}

// SetTypicalIntent sets the "typical_intent" field.
func (_u *SenderProfileUpdateOne) SetTypicalIntent(v string) *SenderProfileUpdateOne {
	_u.mutation.SetTypicalIntent(v)
	return _u
}

// SetNillableTypicalIntent sets the "typical_intent" field if the given value is not nil.
func (_u *SenderProfileUpdateOne) SetNillableTypicalIntent(v *string) *SenderProfileUpdateOne {
	if v != nil {
		_u.SetTypicalIntent(*v)
	}
	return _u
}

// SetEmailsAnalyzed sets the "emails_analyzed" field.
func (_u *SenderProfileUpdateOne) SetEmailsAnalyzed(v int) *SenderProfileUpdateOne {
	_u.mutation.ResetEmailsAnalyzed()
	_u.mutation.SetEmailsAnalyzed(v)
	return _u
}

// SetNillableEmailsAnalyzed sets the "emails_analyzed" field if the given value is not nil.
func (_u *SenderProfileUpdateOne) SetNillableEmailsAnalyzed(v *int) *SenderProfileUpdateOne {
	if v != nil {
		_u.SetEmailsAnalyzed(*v)
	}
	return _u
}

// AddEmailsAnalyzed adds value to the "emails_analyzed" field.
func (_u *SenderProfileUpdateOne) AddEmailsAnalyzed(v int) *SenderProfileUpdateOne {
	_u.mutation.AddEmailsAnalyzed(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *SenderProfileUpdateOne) SetConfidence(v float64) *SenderProfileUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *SenderProfileUpdateOne) SetNillableConfidence(v *float64) *SenderProfileUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *SenderProfileUpdateOne) AddConfidence(v float64) *SenderProfileUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *SenderProfileUpdateOne) SetLastSeen(v time.Time) *SenderProfileUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the SenderProfileMutation object of the builder.
func (_u *SenderProfileUpdateOne) Mutation() *SenderProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the SenderProfileUpdate builder.
func (_u *SenderProfileUpdateOne) Where(ps ...predicate.SenderProfile) *SenderProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SenderProfileUpdateOne) Select(field string, fields ...string) *SenderProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SenderProfile entity.
func (_u *SenderProfileUpdateOne) Save(ctx context.Context) (*SenderProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SenderProfileUpdateOne) SaveX(ctx context.Context) *SenderProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SenderProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SenderProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SenderProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := senderprofile.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SenderProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := senderprofile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmailsAnalyzed(); ok {
		if err := senderprofile.EmailsAnalyzedValidator(v); err != nil {
			return &ValidationError{Name: "emails_analyzed", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.emails_analyzed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := senderprofile.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "SenderProfile.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *SenderProfileUpdateOne) sqlSave(ctx context.Context) (_node *SenderProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(senderprofile.Table, senderprofile.Columns, sqlgraph.NewFieldSpec(senderprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SenderProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, senderprofile.FieldID)
		for _, f := range fields {
			if !senderprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != senderprofile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(senderprofile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(senderprofile.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(senderprofile.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypicalUrgency(); ok {
		_spec.SetField(senderprofile.FieldTypicalUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.TypicalIntent(); ok {
		_spec.SetField(senderprofile.FieldTypicalIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmailsAnalyzed(); ok {
		_spec.SetField(senderprofile.FieldEmailsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmailsAnalyzed(); ok {
		_spec.AddField(senderprofile.FieldEmailsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(senderprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(senderprofile.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(senderprofile.FieldLastSeen, field.TypeTime, value)
	}
	_node = &SenderProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{senderprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
