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

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *TaskUpdate) SetEmailID(v uuid.UUID) *TaskUpdate {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEmailID(v *uuid.UUID) *TaskUpdate {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetCodigoCobertor sets the "codigo_cobertor" field.
func (_u *TaskUpdate) SetCodigoCobertor(v string) *TaskUpdate {
	_u.mutation.SetCodigoCobertor(v)
	return _u
}

// SetNillableCodigoCobertor sets the "codigo_cobertor" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCodigoCobertor(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCodigoCobertor(*v)
	}
	return _u
}

// ClearCodigoCobertor clears the value of the "codigo_cobertor" field.
func (_u *TaskUpdate) ClearCodigoCobertor() *TaskUpdate {
	_u.mutation.ClearCodigoCobertor()
	return _u
}

// SetCuartel sets the "cuartel" field.
func (_u *TaskUpdate) SetCuartel(v string) *TaskUpdate {
	_u.mutation.SetCuartel(v)
	return _u
}

// SetNillableCuartel sets the "cuartel" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCuartel(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCuartel(*v)
	}
	return _u
}

// ClearCuartel clears the value of the "cuartel" field.
func (_u *TaskUpdate) ClearCuartel() *TaskUpdate {
	_u.mutation.ClearCuartel()
	return _u
}

// SetHileras sets the "hileras" field.
func (_u *TaskUpdate) SetHileras(v int) *TaskUpdate {
	_u.mutation.ResetHileras()
	_u.mutation.SetHileras(v)
	return _u
}

// SetNillableHileras sets the "hileras" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableHileras(v *int) *TaskUpdate {
	if v != nil {
		_u.SetHileras(*v)
	}
	return _u
}

// AddHileras adds value to the "hileras" field.
func (_u *TaskUpdate) AddHileras(v int) *TaskUpdate {
	_u.mutation.AddHileras(v)
	return _u
}

// ClearHileras clears the value of the "hileras" field.
func (_u *TaskUpdate) ClearHileras() *TaskUpdate {
	_u.mutation.ClearHileras()
	return _u
}

// SetLargoMetros sets the "largo_metros" field.
func (_u *TaskUpdate) SetLargoMetros(v float64) *TaskUpdate {
	_u.mutation.ResetLargoMetros()
	_u.mutation.SetLargoMetros(v)
	return _u
}

// SetNillableLargoMetros sets the "largo_metros" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLargoMetros(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetLargoMetros(*v)
	}
	return _u
}

// AddLargoMetros adds value to the "largo_metros" field.
func (_u *TaskUpdate) AddLargoMetros(v float64) *TaskUpdate {
	_u.mutation.AddLargoMetros(v)
	return _u
}

// ClearLargoMetros clears the value of the "largo_metros" field.
func (_u *TaskUpdate) ClearLargoMetros() *TaskUpdate {
	_u.mutation.ClearLargoMetros()
	return _u
}

// SetPrioridad sets the "prioridad" field.
func (_u *TaskUpdate) SetPrioridad(v string) *TaskUpdate {
	_u.mutation.SetPrioridad(v)
	return _u
}

// SetNillablePrioridad sets the "prioridad" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrioridad(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPrioridad(*v)
	}
	return _u
}

// SetEstado sets the "estado" field.
func (_u *TaskUpdate) SetEstado(v string) *TaskUpdate {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstado(v *string) *TaskUpdate {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *TaskUpdate) SetDescripcion(v string) *TaskUpdate {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescripcion(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (_u *TaskUpdate) ClearDescripcion() *TaskUpdate {
	_u.mutation.ClearDescripcion()
	return _u
}

// SetNotas sets the "notas" field.
func (_u *TaskUpdate) SetNotas(v string) *TaskUpdate {
	_u.mutation.SetNotas(v)
	return _u
}

// SetNillableNotas sets the "notas" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableNotas(v *string) *TaskUpdate {
	if v != nil {
		_u.SetNotas(*v)
	}
	return _u
}

// ClearNotas clears the value of the "notas" field.
func (_u *TaskUpdate) ClearNotas() *TaskUpdate {
	_u.mutation.ClearNotas()
	return _u
}

// SetOrigen sets the "origen" field.
func (_u *TaskUpdate) SetOrigen(v string) *TaskUpdate {
	_u.mutation.SetOrigen(v)
	return _u
}

// SetNillableOrigen sets the "origen" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOrigen(v *string) *TaskUpdate {
	if v != nil {
		_u.SetOrigen(*v)
	}
	return _u
}

// SetUrgente sets the "urgente" field.
func (_u *TaskUpdate) SetUrgente(v bool) *TaskUpdate {
	_u.mutation.SetUrgente(v)
	return _u
}

// SetNillableUrgente sets the "urgente" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableUrgente(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetUrgente(*v)
	}
	return _u
}

// SetFechaSolicitud sets the "fecha_solicitud" field.
func (_u *TaskUpdate) SetFechaSolicitud(v time.Time) *TaskUpdate {
	_u.mutation.SetFechaSolicitud(v)
	return _u
}

// SetNillableFechaSolicitud sets the "fecha_solicitud" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFechaSolicitud(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetFechaSolicitud(*v)
	}
	return _u
}

// SetFechaCompletada sets the "fecha_completada" field.
func (_u *TaskUpdate) SetFechaCompletada(v time.Time) *TaskUpdate {
	_u.mutation.SetFechaCompletada(v)
	return _u
}

// SetNillableFechaCompletada sets the "fecha_completada" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFechaCompletada(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetFechaCompletada(*v)
	}
	return _u
}

// ClearFechaCompletada clears the value of the "fecha_completada" field.
func (_u *TaskUpdate) ClearFechaCompletada() *TaskUpdate {
	_u.mutation.ClearFechaCompletada()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaskUpdate) SetCreatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_u *TaskUpdate) SetEmail(v *EmailMessage) *TaskUpdate {
	return _u.SetEmailID(v.ID)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *TaskUpdate) AddAlertIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *TaskUpdate) AddAlerts(v ...*Alert) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (_u *TaskUpdate) ClearEmail() *TaskUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *TaskUpdate) ClearAlerts() *TaskUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *TaskUpdate) RemoveAlertIDs(ids ...uuid.UUID) *TaskUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *TaskUpdate) RemoveAlerts(v ...*Alert) *TaskUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.CodigoCobertor(); ok {
		if err := task.CodigoCobertorValidator(v); err != nil {
			return &ValidationError{Name: "codigo_cobertor", err: fmt.Errorf(`ent: validator failed for field "Task.codigo_cobertor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cuartel(); ok {
		if err := task.CuartelValidator(v); err != nil {
			return &ValidationError{Name: "cuartel", err: fmt.Errorf(`ent: validator failed for field "Task.cuartel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hileras(); ok {
		if err := task.HilerasValidator(v); err != nil {
			return &ValidationError{Name: "hileras", err: fmt.Errorf(`ent: validator failed for field "Task.hileras": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LargoMetros(); ok {
		if err := task.LargoMetrosValidator(v); err != nil {
			return &ValidationError{Name: "largo_metros", err: fmt.Errorf(`ent: validator failed for field "Task.largo_metros": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prioridad(); ok {
		if err := task.PrioridadValidator(v); err != nil {
			return &ValidationError{Name: "prioridad", err: fmt.Errorf(`ent: validator failed for field "Task.prioridad": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Estado(); ok {
		if err := task.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Task.estado": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Descripcion(); ok {
		if err := task.DescripcionValidator(v); err != nil {
			return &ValidationError{Name: "descripcion", err: fmt.Errorf(`ent: validator failed for field "Task.descripcion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notas(); ok {
		if err := task.NotasValidator(v); err != nil {
			return &ValidationError{Name: "notas", err: fmt.Errorf(`ent: validator failed for field "Task.notas": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origen(); ok {
		if err := task.OrigenValidator(v); err != nil {
			return &ValidationError{Name: "origen", err: fmt.Errorf(`ent: validator failed for field "Task.origen": %w`, err)}
		}
	}
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.email"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CodigoCobertor(); ok {
		_spec.SetField(task.FieldCodigoCobertor, field.TypeString, value)
	}
	if _u.mutation.CodigoCobertorCleared() {
		_spec.ClearField(task.FieldCodigoCobertor, field.TypeString)
	}
	if value, ok := _u.mutation.Cuartel(); ok {
		_spec.SetField(task.FieldCuartel, field.TypeString, value)
	}
	if _u.mutation.CuartelCleared() {
		_spec.ClearField(task.FieldCuartel, field.TypeString)
	}
	if value, ok := _u.mutation.Hileras(); ok {
		_spec.SetField(task.FieldHileras, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHileras(); ok {
		_spec.AddField(task.FieldHileras, field.TypeInt, value)
	}
	if _u.mutation.HilerasCleared() {
		_spec.ClearField(task.FieldHileras, field.TypeInt)
	}
	if value, ok := _u.mutation.LargoMetros(); ok {
		_spec.SetField(task.FieldLargoMetros, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLargoMetros(); ok {
		_spec.AddField(task.FieldLargoMetros, field.TypeFloat64, value)
	}
	if _u.mutation.LargoMetrosCleared() {
		_spec.ClearField(task.FieldLargoMetros, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Prioridad(); ok {
		_spec.SetField(task.FieldPrioridad, field.TypeString, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(task.FieldEstado, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(task.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.DescripcionCleared() {
		_spec.ClearField(task.FieldDescripcion, field.TypeString)
	}
	if value, ok := _u.mutation.Notas(); ok {
		_spec.SetField(task.FieldNotas, field.TypeString, value)
	}
	if _u.mutation.NotasCleared() {
		_spec.ClearField(task.FieldNotas, field.TypeString)
	}
	if value, ok := _u.mutation.Origen(); ok {
		_spec.SetField(task.FieldOrigen, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgente(); ok {
		_spec.SetField(task.FieldUrgente, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FechaSolicitud(); ok {
		_spec.SetField(task.FieldFechaSolicitud, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaCompletada(); ok {
		_spec.SetField(task.FieldFechaCompletada, field.TypeTime, value)
	}
	if _u.mutation.FechaCompletadaCleared() {
		_spec.ClearField(task.FieldFechaCompletada, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.EmailTable,
			Columns: []string{task.EmailColumn},
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
			Table:   task.EmailTable,
			Columns: []string{task.EmailColumn},
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
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AlertsTable,
			Columns: []string{task.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AlertsTable,
			Columns: []string{task.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AlertsTable,
			Columns: []string{task.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetEmailID sets the "email_id" field.
func (_u *TaskUpdateOne) SetEmailID(v uuid.UUID) *TaskUpdateOne {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEmailID(v *uuid.UUID) *TaskUpdateOne {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetCodigoCobertor sets the "codigo_cobertor" field.
func (_u *TaskUpdateOne) SetCodigoCobertor(v string) *TaskUpdateOne {
	_u.mutation.SetCodigoCobertor(v)
	return _u
}

// SetNillableCodigoCobertor sets the "codigo_cobertor" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCodigoCobertor(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCodigoCobertor(*v)
	}
	return _u
}

// ClearCodigoCobertor clears the value of the "codigo_cobertor" field.
func (_u *TaskUpdateOne) ClearCodigoCobertor() *TaskUpdateOne {
	_u.mutation.ClearCodigoCobertor()
	return _u
}

// SetCuartel sets the "cuartel" field.
func (_u *TaskUpdateOne) SetCuartel(v string) *TaskUpdateOne {
	_u.mutation.SetCuartel(v)
	return _u
}

// SetNillableCuartel sets the "cuartel" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCuartel(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCuartel(*v)
	}
	return _u
}

// ClearCuartel clears the value of the "cuartel" field.
func (_u *TaskUpdateOne) ClearCuartel() *TaskUpdateOne {
	_u.mutation.ClearCuartel()
	return _u
}

// SetHileras sets the "hileras" field.
func (_u *TaskUpdateOne) SetHileras(v int) *TaskUpdateOne {
	_u.mutation.ResetHileras()
	_u.mutation.SetHileras(v)
	return _u
}

// SetNillableHileras sets the "hileras" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableHileras(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetHileras(*v)
	}
	return _u
}

// AddHileras adds value to the "hileras" field.
func (_u *TaskUpdateOne) AddHileras(v int) *TaskUpdateOne {
	_u.mutation.AddHileras(v)
	return _u
}

// ClearHileras clears the value of the "hileras" field.
func (_u *TaskUpdateOne) ClearHileras() *TaskUpdateOne {
	_u.mutation.ClearHileras()
	return _u
}

// SetLargoMetros sets the "largo_metros" field.
func (_u *TaskUpdateOne) SetLargoMetros(v float64) *TaskUpdateOne {
	_u.mutation.ResetLargoMetros()
	_u.mutation.SetLargoMetros(v)
	return _u
}

// SetNillableLargoMetros sets the "largo_metros" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLargoMetros(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetLargoMetros(*v)
	}
	return _u
}

// AddLargoMetros adds value to the "largo_metros" field.
func (_u *TaskUpdateOne) AddLargoMetros(v float64) *TaskUpdateOne {
	_u.mutation.AddLargoMetros(v)
	return _u
}

// ClearLargoMetros clears the value of the "largo_metros" field.
func (_u *TaskUpdateOne) ClearLargoMetros() *TaskUpdateOne {
	_u.mutation.ClearLargoMetros()
	return _u
}

// SetPrioridad sets the "prioridad" field.
func (_u *TaskUpdateOne) SetPrioridad(v string) *TaskUpdateOne {
	_u.mutation.SetPrioridad(v)
	return _u
}

// SetNillablePrioridad sets the "prioridad" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrioridad(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPrioridad(*v)
	}
	return _u
}

// SetEstado sets the "estado" field.
func (_u *TaskUpdateOne) SetEstado(v string) *TaskUpdateOne {
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstado(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// SetDescripcion sets the "descripcion" field.
func (_u *TaskUpdateOne) SetDescripcion(v string) *TaskUpdateOne {
	_u.mutation.SetDescripcion(v)
	return _u
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescripcion(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescripcion(*v)
	}
	return _u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (_u *TaskUpdateOne) ClearDescripcion() *TaskUpdateOne {
	_u.mutation.ClearDescripcion()
	return _u
}

// SetNotas sets the "notas" field.
func (_u *TaskUpdateOne) SetNotas(v string) *TaskUpdateOne {
	_u.mutation.SetNotas(v)
	return _u
}

// SetNillableNotas sets the "notas" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableNotas(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetNotas(*v)
	}
	return _u
}

// ClearNotas clears the value of the "notas" field.
func (_u *TaskUpdateOne) ClearNotas() *TaskUpdateOne {
	_u.mutation.ClearNotas()
	return _u
}

// SetOrigen sets the "origen" field.
func (_u *TaskUpdateOne) SetOrigen(v string) *TaskUpdateOne {
	_u.mutation.SetOrigen(v)
	return _u
}

// SetNillableOrigen sets the "origen" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOrigen(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetOrigen(*v)
	}
	return _u
}

// SetUrgente sets the "urgente" field.
func (_u *TaskUpdateOne) SetUrgente(v bool) *TaskUpdateOne {
	_u.mutation.SetUrgente(v)
	return _u
}

// SetNillableUrgente sets the "urgente" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableUrgente(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetUrgente(*v)
	}
	return _u
}

// SetFechaSolicitud sets the "fecha_solicitud" field.
func (_u *TaskUpdateOne) SetFechaSolicitud(v time.Time) *TaskUpdateOne {
	_u.mutation.SetFechaSolicitud(v)
	return _u
}

// SetNillableFechaSolicitud sets the "fecha_solicitud" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFechaSolicitud(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetFechaSolicitud(*v)
	}
	return _u
}

// SetFechaCompletada sets the "fecha_completada" field.
func (_u *TaskUpdateOne) SetFechaCompletada(v time.Time) *TaskUpdateOne {
	_u.mutation.SetFechaCompletada(v)
	return _u
}

// SetNillableFechaCompletada sets the "fecha_completada" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFechaCompletada(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetFechaCompletada(*v)
	}
	return _u
}

// ClearFechaCompletada clears the value of the "fecha_completada" field.
func (_u *TaskUpdateOne) ClearFechaCompletada() *TaskUpdateOne {
	_u.mutation.ClearFechaCompletada()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaskUpdateOne) SetCreatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_u *TaskUpdateOne) SetEmail(v *EmailMessage) *TaskUpdateOne {
	return _u.SetEmailID(v.ID)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *TaskUpdateOne) AddAlertIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *TaskUpdateOne) AddAlerts(v ...*Alert) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (_u *TaskUpdateOne) ClearEmail() *TaskUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *TaskUpdateOne) ClearAlerts() *TaskUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *TaskUpdateOne) RemoveAlertIDs(ids ...uuid.UUID) *TaskUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *TaskUpdateOne) RemoveAlerts(v ...*Alert) *TaskUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.CodigoCobertor(); ok {
		if err := task.CodigoCobertorValidator(v); err != nil {
			return &ValidationError{Name: "codigo_cobertor", err: fmt.Errorf(`ent: validator failed for field "Task.codigo_cobertor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cuartel(); ok {
		if err := task.CuartelValidator(v); err != nil {
			return &ValidationError{Name: "cuartel", err: fmt.Errorf(`ent: validator failed for field "Task.cuartel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hileras(); ok {
		if err := task.HilerasValidator(v); err != nil {
			return &ValidationError{Name: "hileras", err: fmt.Errorf(`ent: validator failed for field "Task.hileras": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LargoMetros(); ok {
		if err := task.LargoMetrosValidator(v); err != nil {
			return &ValidationError{Name: "largo_metros", err: fmt.Errorf(`ent: validator failed for field "Task.largo_metros": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prioridad(); ok {
		if err := task.PrioridadValidator(v); err != nil {
			return &ValidationError{Name: "prioridad", err: fmt.Errorf(`ent: validator failed for field "Task.prioridad": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Estado(); ok {
		if err := task.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Task.estado": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Descripcion(); ok {
		if err := task.DescripcionValidator(v); err != nil {
			return &ValidationError{Name: "descripcion", err: fmt.Errorf(`ent: validator failed for field "Task.descripcion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notas(); ok {
		if err := task.NotasValidator(v); err != nil {
			return &ValidationError{Name: "notas", err: fmt.Errorf(`ent: validator failed for field "Task.notas": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origen(); ok {
		if err := task.OrigenValidator(v); err != nil {
			return &ValidationError{Name: "origen", err: fmt.Errorf(`ent: validator failed for field "Task.origen": %w`, err)}
		}
	}
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.email"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.CodigoCobertor(); ok {
		_spec.SetField(task.FieldCodigoCobertor, field.TypeString, value)
	}
	if _u.mutation.CodigoCobertorCleared() {
		_spec.ClearField(task.FieldCodigoCobertor, field.TypeString)
	}
	if value, ok := _u.mutation.Cuartel(); ok {
		_spec.SetField(task.FieldCuartel, field.TypeString, value)
	}
	if _u.mutation.CuartelCleared() {
		_spec.ClearField(task.FieldCuartel, field.TypeString)
	}
	if value, ok := _u.mutation.Hileras(); ok {
		_spec.SetField(task.FieldHileras, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHileras(); ok {
		_spec.AddField(task.FieldHileras, field.TypeInt, value)
	}
	if _u.mutation.HilerasCleared() {
		_spec.ClearField(task.FieldHileras, field.TypeInt)
	}
	if value, ok := _u.mutation.LargoMetros(); ok {
		_spec.SetField(task.FieldLargoMetros, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLargoMetros(); ok {
		_spec.AddField(task.FieldLargoMetros, field.TypeFloat64, value)
	}
	if _u.mutation.LargoMetrosCleared() {
		_spec.ClearField(task.FieldLargoMetros, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Prioridad(); ok {
		_spec.SetField(task.FieldPrioridad, field.TypeString, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(task.FieldEstado, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descripcion(); ok {
		_spec.SetField(task.FieldDescripcion, field.TypeString, value)
	}
	if _u.mutation.DescripcionCleared() {
		_spec.ClearField(task.FieldDescripcion, field.TypeString)
	}
	if value, ok := _u.mutation.Notas(); ok {
		_spec.SetField(task.FieldNotas, field.TypeString, value)
	}
	if _u.mutation.NotasCleared() {
		_spec.ClearField(task.FieldNotas, field.TypeString)
	}
	if value, ok := _u.mutation.Origen(); ok {
		_spec.SetField(task.FieldOrigen, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgente(); ok {
		_spec.SetField(task.FieldUrgente, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FechaSolicitud(); ok {
		_spec.SetField(task.FieldFechaSolicitud, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FechaCompletada(); ok {
		_spec.SetField(task.FieldFechaCompletada, field.TypeTime, value)
	}
	if _u.mutation.FechaCompletadaCleared() {
		_spec.ClearField(task.FieldFechaCompletada, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.EmailTable,
			Columns: []string{task.EmailColumn},
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
			Table:   task.EmailTable,
			Columns: []string{task.EmailColumn},
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
	if _u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AlertsTable,
			Columns: []string{task.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AlertsTable,
			Columns: []string{task.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AlertsTable,
			Columns: []string{task.AlertsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
