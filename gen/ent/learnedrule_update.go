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
	"github.com/fvillarroel/cobertor-bot/gen/ent/learnedrule"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
)

// LearnedRuleUpdate is the builder for updating LearnedRule entities.
type LearnedRuleUpdate struct {
	config
	hooks    []Hook
	mutation *LearnedRuleMutation
}

// Where appends a list predicates to the LearnedRuleUpdate builder.
func (_u *LearnedRuleUpdate) Where(ps ...predicate.LearnedRule) *LearnedRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *LearnedRuleUpdate) SetRuleName(v string) *LearnedRuleUpdate {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *LearnedRuleUpdate) SetNillableRuleName(v *string) *LearnedRuleUpdate {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetSenderEmail sets the "sender_email" field.
func (_u *LearnedRuleUpdate) SetSenderEmail(v string) *LearnedRuleUpdate {
	_u.mutation.SetSenderEmail(v)
	return _u
}

// SetNillableSenderEmail sets the "sender_email" field if the given value is not nil.
func (_u *LearnedRuleUpdate) SetNillableSenderEmail(v *string) *LearnedRuleUpdate {
	if v != nil {
		_u.SetSenderEmail(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *LearnedRuleUpdate) SetUrgency(v string) *LearnedRuleUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *LearnedRuleUpdate) SetNillableUrgency(v *string) *LearnedRuleUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LearnedRuleUpdate) SetConfidence(v float64) *LearnedRuleUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LearnedRuleUpdate) SetNillableConfidence(v *float64) *LearnedRuleUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LearnedRuleUpdate) AddConfidence(v float64) *LearnedRuleUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTimesTriggered sets the "times_triggered" field.
func (_u *LearnedRuleUpdate) SetTimesTriggered(v int) *LearnedRuleUpdate {
	_u.mutation.ResetTimesTriggered()
	_u.mutation.SetTimesTriggered(v)
	return _u
}

// SetNillableTimesTriggered sets the "times_triggered" field if the given value is not nil.
func (_u *LearnedRuleUpdate) SetNillableTimesTriggered(v *int) *LearnedRuleUpdate {
	if v != nil {
		_u.SetTimesTriggered(*v)
	}
	return _u
}

// AddTimesTriggered adds value to the "times_triggered" field.
func (_u *LearnedRuleUpdate) AddTimesTriggered(v int) *LearnedRuleUpdate {
	_u.mutation.AddTimesTriggered(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LearnedRuleUpdate) SetCreatedAt(v time.Time) *LearnedRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LearnedRuleUpdate) SetNillableCreatedAt(v *time.Time) *LearnedRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the LearnedRuleMutation object of the builder.
func (_u *LearnedRuleUpdate) Mutation() *LearnedRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnedRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnedRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedRuleUpdate) check() error {
	if v, ok := _u.mutation.RuleName(); ok {
		if err := learnedrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.rule_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SenderEmail(); ok {
		if err := learnedrule.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.sender_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := learnedrule.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := learnedrule.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimesTriggered(); ok {
		if err := learnedrule.TimesTriggeredValidator(v); err != nil {
			return &ValidationError{Name: "times_triggered", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.times_triggered": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnedrule.Table, learnedrule.Columns, sqlgraph.NewFieldSpec(learnedrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(learnedrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderEmail(); ok {
		_spec.SetField(learnedrule.FieldSenderEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(learnedrule.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(learnedrule.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(learnedrule.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimesTriggered(); ok {
		_spec.SetField(learnedrule.FieldTimesTriggered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesTriggered(); ok {
		_spec.AddField(learnedrule.FieldTimesTriggered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(learnedrule.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnedrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnedRuleUpdateOne is the builder for updating a single LearnedRule entity.
type LearnedRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnedRuleMutation
}

// SetRuleName sets the "rule_name" field.
func (_u *LearnedRuleUpdateOne) SetRuleName(v string) *LearnedRuleUpdateOne {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *LearnedRuleUpdateOne) SetNillableRuleName(v *string) *LearnedRuleUpdateOne {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetSenderEmail sets the "sender_email" field.
func (_u *LearnedRuleUpdateOne) SetSenderEmail(v string) *LearnedRuleUpdateOne {
	_u.mutation.SetSenderEmail(v)
	return _u
}

// SetNillableSenderEmail sets the "sender_email" field if the given value is not nil.
func (_u *LearnedRuleUpdateOne) SetNillableSenderEmail(v *string) *LearnedRuleUpdateOne {
	if v != nil {
		_u.SetSenderEmail(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *LearnedRuleUpdateOne) SetUrgency(v string) *LearnedRuleUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *LearnedRuleUpdateOne) SetNillableUrgency(v *string) *LearnedRuleUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LearnedRuleUpdateOne) SetConfidence(v float64) *LearnedRuleUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LearnedRuleUpdateOne) SetNillableConfidence(v *float64) *LearnedRuleUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LearnedRuleUpdateOne) AddConfidence(v float64) *LearnedRuleUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTimesTriggered sets the "times_triggered" field.
func (_u *LearnedRuleUpdateOne) SetTimesTriggered(v int) *LearnedRuleUpdateOne {
	_u.mutation.ResetTimesTriggered()
	_u.mutation.SetTimesTriggered(v)
	return _u
}

// SetNillableTimesTriggered sets the "times_triggered" field if the given value is not nil.
func (_u *LearnedRuleUpdateOne) SetNillableTimesTriggered(v *int) *LearnedRuleUpdateOne {
	if v != nil {
		_u.SetTimesTriggered(*v)
	}
	return _u
}

// AddTimesTriggered adds value to the "times_triggered" field.
func (_u *LearnedRuleUpdateOne) AddTimesTriggered(v int) *LearnedRuleUpdateOne {
	_u.mutation.AddTimesTriggered(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LearnedRuleUpdateOne) SetCreatedAt(v time.Time) *LearnedRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LearnedRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *LearnedRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the LearnedRuleMutation object of the builder.
func (_u *LearnedRuleUpdateOne) Mutation() *LearnedRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnedRuleUpdate builder.
func (_u *LearnedRuleUpdateOne) Where(ps ...predicate.LearnedRule) *LearnedRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnedRuleUpdateOne) Select(field string, fields ...string) *LearnedRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnedRule entity.
func (_u *LearnedRuleUpdateOne) Save(ctx context.Context) (*LearnedRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedRuleUpdateOne) SaveX(ctx context.Context) *LearnedRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnedRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedRuleUpdateOne) check() error {
	if v, ok := _u.mutation.RuleName(); ok {
		if err := learnedrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.rule_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SenderEmail(); ok {
		if err := learnedrule.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.sender_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := learnedrule.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := learnedrule.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimesTriggered(); ok {
		if err := learnedrule.TimesTriggeredValidator(v); err != nil {
			return &ValidationError{Name: "times_triggered", err: fmt.Errorf(`ent: validator failed for field "LearnedRule.times_triggered": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedRuleUpdateOne) sqlSave(ctx context.Context) (_node *LearnedRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnedrule.Table, learnedrule.Columns, sqlgraph.NewFieldSpec(learnedrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnedRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnedrule.FieldID)
		for _, f := range fields {
			if !learnedrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnedrule.FieldID {
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
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(learnedrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderEmail(); ok {
		_spec.SetField(learnedrule.FieldSenderEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(learnedrule.FieldUrgency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(learnedrule.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(learnedrule.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimesTriggered(); ok {
		_spec.SetField(learnedrule.FieldTimesTriggered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesTriggered(); ok {
		_spec.AddField(learnedrule.FieldTimesTriggered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(learnedrule.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &LearnedRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnedrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
