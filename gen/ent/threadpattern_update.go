// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/fvillarroel/cobertor-bot/gen/ent/threadpattern"
)

// ThreadPatternUpdate is the builder for updating ThreadPattern entities.
type ThreadPatternUpdate struct {
	config
	hooks    []Hook
	mutation *ThreadPatternMutation
}

// Where appends a list predicates to the ThreadPatternUpdate builder.
func (_u *ThreadPatternUpdate) Where(ps ...predicate.ThreadPattern) *ThreadPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *ThreadPatternUpdate) SetThreadID(v string) *ThreadPatternUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ThreadPatternUpdate) SetNillableThreadID(v *string) *ThreadPatternUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetTotalMessages sets the "total_messages" field.
func (_u *ThreadPatternUpdate) SetTotalMessages(v int) *ThreadPatternUpdate {
	_u.mutation.ResetTotalMessages()
	_u.mutation.SetTotalMessages(v)
	return _u
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_u *ThreadPatternUpdate) SetNillableTotalMessages(v *int) *ThreadPatternUpdate {
	if v != nil {
		_u.SetTotalMessages(*v)
	}
	return _u
}

// AddTotalMessages adds value to the "total_messages" field.
func (_u *ThreadPatternUpdate) AddTotalMessages(v int) *ThreadPatternUpdate {
	_u.mutation.AddTotalMessages(v)
	return _u
}

// SetInternalParticipants sets the "internal_participants" field.
func (_u *ThreadPatternUpdate) SetInternalParticipants(v int) *ThreadPatternUpdate {
	_u.mutation.ResetInternalParticipants()
	_u.mutation.SetInternalParticipants(v)
	return _u
}

// SetNillableInternalParticipants sets the "internal_participants" field if the given value is not nil.
func (_u *ThreadPatternUpdate) SetNillableInternalParticipants(v *int) *ThreadPatternUpdate {
	if v != nil {
		_u.SetInternalParticipants(*v)
	}
	return _u
}

// AddInternalParticipants adds value to the "internal_participants" field.
func (_u *ThreadPatternUpdate) AddInternalParticipants(v int) *ThreadPatternUpdate {
	_u.mutation.AddInternalParticipants(v)
	return _u
}

// SetExternalParticipants sets the "external_participants" field.
func (_u *ThreadPatternUpdate) SetExternalParticipants(v int) *ThreadPatternUpdate {
	_u.mutation.ResetExternalParticipants()
	_u.mutation.SetExternalParticipants(v)
	return _u
}

// SetNillableExternalParticipants sets the "external_participants" field if the given value is not nil.
func (_u *ThreadPatternUpdate) SetNillableExternalParticipants(v *int) *ThreadPatternUpdate {
	if v != nil {
		_u.SetExternalParticipants(*v)
	}
	return _u
}

// AddExternalParticipants adds value to the "external_participants" field.
func (_u *ThreadPatternUpdate) AddExternalParticipants(v int) *ThreadPatternUpdate {
	_u.mutation.AddExternalParticipants(v)
	return _u
}

// SetHasForward sets the "has_forward" field.
func (_u *ThreadPatternUpdate) SetHasForward(v bool) *ThreadPatternUpdate {
	_u.mutation.SetHasForward(v)
	return _u
}

// SetNillableHasForward sets the "has_forward" field if the given value is not nil.
func (_u *ThreadPatternUpdate) SetNillableHasForward(v *bool) *ThreadPatternUpdate {
	if v != nil {
		_u.SetHasForward(*v)
	}
	return _u
}

// SetHasAttachments sets the "has_attachments" field.
func (_u *ThreadPatternUpdate) SetHasAttachments(v bool) *ThreadPatternUpdate {
	_u.mutation.SetHasAttachments(v)
	return _u
}

// SetNillableHasAttachments sets the "has_attachments" field if the given value is not nil.
func (_u *ThreadPatternUpdate) SetNillableHasAttachments(v *bool) *ThreadPatternUpdate {
	if v != nil {
		_u.SetHasAttachments(*v)
	}
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *ThreadPatternUpdate) SetComplexity(v string) *ThreadPatternUpdate {
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *ThreadPatternUpdate) SetNillableComplexity(v *string) *ThreadPatternUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// Mutation returns the ThreadPatternMutation object of the builder.
func (_u *ThreadPatternUpdate) Mutation() *ThreadPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThreadPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThreadPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreadPatternUpdate) check() error {
	if v, ok := _u.mutation.ThreadID(); ok {
		if err := threadpattern.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.thread_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalMessages(); ok {
		if err := threadpattern.TotalMessagesValidator(v); err != nil {
			return &ValidationError{Name: "total_messages", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.total_messages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InternalParticipants(); ok {
		if err := threadpattern.InternalParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "internal_participants", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.internal_participants": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalParticipants(); ok {
		if err := threadpattern.ExternalParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "external_participants", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.external_participants": %w`, err)}
		}
	}
	return nil
}

func (_u *ThreadPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(threadpattern.Table, threadpattern.Columns, sqlgraph.NewFieldSpec(threadpattern.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(threadpattern.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalMessages(); ok {
		_spec.SetField(threadpattern.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMessages(); ok {
		_spec.AddField(threadpattern.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InternalParticipants(); ok {
		_spec.SetField(threadpattern.FieldInternalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInternalParticipants(); ok {
		_spec.AddField(threadpattern.FieldInternalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExternalParticipants(); ok {
		_spec.SetField(threadpattern.FieldExternalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExternalParticipants(); ok {
		_spec.AddField(threadpattern.FieldExternalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasForward(); ok {
		_spec.SetField(threadpattern.FieldHasForward, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasAttachments(); ok {
		_spec.SetField(threadpattern.FieldHasAttachments, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(threadpattern.FieldComplexity, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{threadpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThreadPatternUpdateOne is the builder for updating a single ThreadPattern entity.
type ThreadPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThreadPatternMutation
}

// SetThreadID sets the "thread_id" field.
func (_u *ThreadPatternUpdateOne) SetThreadID(v string) *ThreadPatternUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *ThreadPatternUpdateOne) SetNillableThreadID(v *string) *ThreadPatternUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// SetTotalMessages sets the "total_messages" field.
func (_u *ThreadPatternUpdateOne) SetTotalMessages(v int) *ThreadPatternUpdateOne {
	_u.mutation.ResetTotalMessages()
	_u.mutation.SetTotalMessages(v)
	return _u
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_u *ThreadPatternUpdateOne) SetNillableTotalMessages(v *int) *ThreadPatternUpdateOne {
	if v != nil {
		_u.SetTotalMessages(*v)
	}
	return _u
}

// AddTotalMessages adds value to the "total_messages" field.
func (_u *ThreadPatternUpdateOne) AddTotalMessages(v int) *ThreadPatternUpdateOne {
	_u.mutation.AddTotalMessages(v)
	return _u
}

// SetInternalParticipants sets the "internal_participants" field.
func (_u *ThreadPatternUpdateOne) SetInternalParticipants(v int) *ThreadPatternUpdateOne {
	_u.mutation.ResetInternalParticipants()
	_u.mutation.SetInternalParticipants(v)
	return _u
}

// SetNillableInternalParticipants sets the "internal_participants" field if the given value is not nil.
func (_u *ThreadPatternUpdateOne) SetNillableInternalParticipants(v *int) *ThreadPatternUpdateOne {
	if v != nil {
		_u.SetInternalParticipants(*v)
	}
	return _u
}

// AddInternalParticipants adds value to the "internal_participants" field.
func (_u *ThreadPatternUpdateOne) AddInternalParticipants(v int) *ThreadPatternUpdateOne {
	_u.mutation.AddInternalParticipants(v)
	return _u
}

// SetExternalParticipants sets the "external_participants" field.
func (_u *ThreadPatternUpdateOne) SetExternalParticipants(v int) *ThreadPatternUpdateOne {
	_u.mutation.ResetExternalParticipants()
	_u.mutation.SetExternalParticipants(v)
	return _u
}

// SetNillableExternalParticipants sets the "external_participants" field if the given value is not nil.
func (_u *ThreadPatternUpdateOne) SetNillableExternalParticipants(v *int) *ThreadPatternUpdateOne {
	if v != nil {
		_u.SetExternalParticipants(*v)
	}
	return _u
}

// AddExternalParticipants adds value to the "external_participants" field.
func (_u *ThreadPatternUpdateOne) AddExternalParticipants(v int) *ThreadPatternUpdateOne {
	_u.mutation.AddExternalParticipants(v)
	return _u
}

// SetHasForward sets the "has_forward" field.
func (_u *ThreadPatternUpdateOne) SetHasForward(v bool) *ThreadPatternUpdateOne {
	_u.mutation.SetHasForward(v)
	return _u
}

// SetNillableHasForward sets the "has_forward" field if the given value is not nil.
func (_u *ThreadPatternUpdateOne) SetNillableHasForward(v *bool) *ThreadPatternUpdateOne {
	if v != nil {
		_u.SetHasForward(*v)
	}
	return _u
}

// SetHasAttachments sets the "has_attachments" field.
func (_u *ThreadPatternUpdateOne) SetHasAttachments(v bool) *ThreadPatternUpdateOne {
	_u.mutation.SetHasAttachments(v)
	return _u
}

// SetNillableHasAttachments sets the "has_attachments" field if the given value is not nil.
func (_u *ThreadPatternUpdateOne) SetNillableHasAttachments(v *bool) *ThreadPatternUpdateOne {
	if v != nil {
		_u.SetHasAttachments(*v)
	}
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *ThreadPatternUpdateOne) SetComplexity(v string) *ThreadPatternUpdateOne {
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *ThreadPatternUpdateOne) SetNillableComplexity(v *string) *ThreadPatternUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// Mutation returns the ThreadPatternMutation object of the builder.
func (_u *ThreadPatternUpdateOne) Mutation() *ThreadPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the ThreadPatternUpdate builder.
func (_u *ThreadPatternUpdateOne) Where(ps ...predicate.ThreadPattern) *ThreadPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThreadPatternUpdateOne) Select(field string, fields ...string) *ThreadPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThreadPattern entity.
func (_u *ThreadPatternUpdateOne) Save(ctx context.Context) (*ThreadPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreadPatternUpdateOne) SaveX(ctx context.Context) *ThreadPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThreadPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreadPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreadPatternUpdateOne) check() error {
	if v, ok := _u.mutation.ThreadID(); ok {
		if err := threadpattern.ThreadIDValidator(v); err != nil {
			return &ValidationError{Name: "thread_id", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.thread_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalMessages(); ok {
		if err := threadpattern.TotalMessagesValidator(v); err != nil {
			return &ValidationError{Name: "total_messages", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.total_messages": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InternalParticipants(); ok {
		if err := threadpattern.InternalParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "internal_participants", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.internal_participants": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalParticipants(); ok {
		if err := threadpattern.ExternalParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "external_participants", err: fmt.Errorf(`ent: validator failed for field "ThreadPattern.external_participants": %w`, err)}
		}
	}
	return nil
}

func (_u *ThreadPatternUpdateOne) sqlSave(ctx context.Context) (_node *ThreadPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(threadpattern.Table, threadpattern.Columns, sqlgraph.NewFieldSpec(threadpattern.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThreadPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, threadpattern.FieldID)
		for _, f := range fields {
			if !threadpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != threadpattern.FieldID {
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
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(threadpattern.FieldThreadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalMessages(); ok {
		_spec.SetField(threadpattern.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMessages(); ok {
		_spec.AddField(threadpattern.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InternalParticipants(); ok {
		_spec.SetField(threadpattern.FieldInternalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInternalParticipants(); ok {
		_spec.AddField(threadpattern.FieldInternalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExternalParticipants(); ok {
		_spec.SetField(threadpattern.FieldExternalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExternalParticipants(); ok {
		_spec.AddField(threadpattern.FieldExternalParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasForward(); ok {
		_spec.SetField(threadpattern.FieldHasForward, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasAttachments(); ok {
		_spec.SetField(threadpattern.FieldHasAttachments, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(threadpattern.FieldComplexity, field.TypeString, value)
	}
	_node = &ThreadPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{threadpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
