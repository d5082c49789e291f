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
	"github.com/fvillarroel/cobertor-bot/gen/ent/alert"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/google/uuid"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTipo sets the "tipo" field.
func (_u *AlertUpdate) SetTipo(v string) *AlertUpdate {
	_u.mutation.SetTipo(v)
	return _u
}

// SetNillableTipo sets the "tipo" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableTipo(v *string) *AlertUpdate {
	if v != nil {
		_u.SetTipo(*v)
	}
	return _u
}

// SetTitulo sets the "titulo" field.
func (_u *AlertUpdate) SetTitulo(v string) *AlertUpdate {
	_u.mutation.SetTitulo(v)
	return _u
}

// SetNillableTitulo sets the "titulo" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableTitulo(v *string) *AlertUpdate {
	if v != nil {
		_u.SetTitulo(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *AlertUpdate) SetDescripcion(v string) *AlertUpdate {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableDescripcion(v *string) *AlertUpdate {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (_u *AlertUpdate) ClearDescripcion() *AlertUpdate {
	_u.mutation.ClearDescripcion()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AlertUpdate) SetTaskID(v uuid.UUID) *AlertUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableTaskID(v *uuid.UUID) *AlertUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *AlertUpdate) ClearTaskID() *AlertUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *AlertUpdate) SetEmailID(v uuid.UUID) *AlertUpdate {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableEmailID(v *uuid.UUID) *AlertUpdate {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// ClearEmailID clears the value of the "email_id" field.
func (_u *AlertUpdate) ClearEmailID() *AlertUpdate {
	_u.mutation.ClearEmailID()
	return _u
}

// SetSeveridad sets the "severidad" field.
func (_u *AlertUpdate) SetSeveridad(v string) *AlertUpdate {
	_u.mutation.SetSeveridad(v)
	return _u
}

// SetNillableSeveridad sets the "severidad" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSeveridad(v *string) *AlertUpdate {
	if v != nil {
		_u.SetSeveridad(*v)
	}
	return _u
}

// SetLeida sets the "leida" field.
func (_u *AlertUpdate) SetLeida(v bool) *AlertUpdate {
	_u.mutation.SetLeida(v)
	return _u
}

// SetNillableLeida sets the "leida" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableLeida(v *bool) *AlertUpdate {
	if v != nil {
		_u.SetLeida(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AlertUpdate) SetCreatedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableCreatedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_u *AlertUpdate) SetEmail(v *EmailMessage) *AlertUpdate {
	return _u.SetEmailID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AlertUpdate) SetTask(v *Task) *AlertUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (_u *AlertUpdate) ClearEmail() *AlertUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AlertUpdate) ClearTask() *AlertUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.Tipo(); ok {
		if err := alert.TipoValidator(v); err != nil {
			return &ValidationError{Name: "tipo", err: fmt.Errorf(`ent: validator failed for field "Alert.tipo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Titulo(); ok {
		if err := alert.TituloValidator(v); err != nil {
			return &ValidationError{Name: "titulo", err: fmt.Errorf(`ent: validator failed for field "Alert.titulo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severidad(); ok {
		if err := alert.SeveridadValidator(v); err != nil {
			return &ValidationError{Name: "severidad", err: fmt.Errorf(`ent: validator failed for field "Alert.severidad": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tipo(); ok {
		_spec.SetField(alert.FieldTipo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Titulo(); ok {
		_spec.SetField(alert.FieldTitulo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(alert.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.DescripcionCleared() {
		_spec.ClearField(alert.FieldDescripcion, field.TypeString)
	}
	if value, ok := _u.mutation.Severidad(); ok {
		_spec.SetField(alert.FieldSeveridad, field.TypeString, value)
	}
	if value, ok := _u.mutation.Leida(); ok {
		_spec.SetField(alert.FieldLeida, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(alert.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.EmailTable,
			Columns: []string{alert.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.EmailTable,
			Columns: []string{alert.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.TaskTable,
			Columns: []string{alert.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.TaskTable,
			Columns: []string{alert.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetTipo sets the "tipo" field.
func (_u *AlertUpdateOne) SetTipo(v string) *AlertUpdateOne {
	_u.mutation.SetTipo(v)
	return _u
}

// SetNillableTipo sets the "tipo" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableTipo(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetTipo(*v)
	}
	return _u
}

// SetTitulo sets the "titulo" field.
func (_u *AlertUpdateOne) SetTitulo(v string) *AlertUpdateOne {
	_u.mutation.SetTitulo(v)
	return _u
}

// SetNillableTitulo sets the "titulo" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableTitulo(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetTitulo(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *AlertUpdateOne) SetDescripcion(v string) *AlertUpdateOne {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableDescripcion(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (_u *AlertUpdateOne) ClearDescripcion() *AlertUpdateOne {
	_u.mutation.ClearDescripcion()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AlertUpdateOne) SetTaskID(v uuid.UUID) *AlertUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableTaskID(v *uuid.UUID) *AlertUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *AlertUpdateOne) ClearTaskID() *AlertUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *AlertUpdateOne) SetEmailID(v uuid.UUID) *AlertUpdateOne {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableEmailID(v *uuid.UUID) *AlertUpdateOne {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// ClearEmailID clears the value of the "email_id" field.
func (_u *AlertUpdateOne) ClearEmailID() *AlertUpdateOne {
	_u.mutation.ClearEmailID()
	return _u
}

// SetSeveridad sets the "severidad" field.
func (_u *AlertUpdateOne) SetSeveridad(v string) *AlertUpdateOne {
	_u.mutation.SetSeveridad(v)
	return _u
}

// SetNillableSeveridad sets the "severidad" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSeveridad(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetSeveridad(*v)
	}
	return _u
}

// SetLeida sets the "leida" field.
func (_u *AlertUpdateOne) SetLeida(v bool) *AlertUpdateOne {
	_u.mutation.SetLeida(v)
	return _u
}

// SetNillableLeida sets the "leida" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableLeida(v *bool) *AlertUpdateOne {
	if v != nil {
		_u.SetLeida(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AlertUpdateOne) SetCreatedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableCreatedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_u *AlertUpdateOne) SetEmail(v *EmailMessage) *AlertUpdateOne {
	return _u.SetEmailID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AlertUpdateOne) SetTask(v *Task) *AlertUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (_u *AlertUpdateOne) ClearEmail() *AlertUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AlertUpdateOne) ClearTask() *AlertUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.Tipo(); ok {
		if err := alert.TipoValidator(v); err != nil {
			return &ValidationError{Name: "tipo", err: fmt.Errorf(`ent: validator failed for field "Alert.tipo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Titulo(); ok {
		if err := alert.TituloValidator(v); err != nil {
			return &ValidationError{Name: "titulo", err: fmt.Errorf(`ent: validator failed for field "Alert.titulo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severidad(); ok {
		if err := alert.SeveridadValidator(v); err != nil {
			return &ValidationError{Name: "severidad", err: fmt.Errorf(`ent: validator failed for field "Alert.severidad": %w`, err)}
		}
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
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
	if value, ok := _u.mutation.Tipo(); ok {
		_spec.SetField(alert.FieldTipo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Titulo(); ok {
		_spec.SetField(alert.FieldTitulo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(alert.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.DescripcionCleared() {
		_spec.ClearField(alert.FieldDescripcion, field.TypeString)
	}
	if value, ok := _u.mutation.Severidad(); ok {
		_spec.SetField(alert.FieldSeveridad, field.TypeString, value)
	}
	if value, ok := _u.mutation.Leida(); ok {
		_spec.SetField(alert.FieldLeida, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(alert.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.EmailTable,
			Columns: []string{alert.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.EmailTable,
			Columns: []string{alert.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.TaskTable,
			Columns: []string{alert.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.TaskTable,
			Columns: []string{alert.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
