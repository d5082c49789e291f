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
	"github.com/fvillarroel/cobertor-bot/gen/ent/alert"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/google/uuid"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEmailID sets the "email_id" field.
func (_c *TaskCreate) SetEmailID(v uuid.UUID) *TaskCreate {
	_c.mutation.SetEmailID(v)
	return _c
}

// SetCodigoCobertor sets the "codigo_cobertor" field.
func (_c *TaskCreate) SetCodigoCobertor(v string) *TaskCreate {
	_c.mutation.SetCodigoCobertor(v)
	return _c
}

// SetNillableCodigoCobertor sets the "codigo_cobertor" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCodigoCobertor(v *string) *TaskCreate {
	if v != nil {
		_c.SetCodigoCobertor(*v)
	}
	return _c
}

// SetCuartel sets the "cuartel" field.
func (_c *TaskCreate) SetCuartel(v string) *TaskCreate {
	_c.mutation.SetCuartel(v)
	return _c
}

// SetNillableCuartel sets the "cuartel" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCuartel(v *string) *TaskCreate {
	if v != nil {
		_c.SetCuartel(*v)
	}
	return _c
}

// SetHileras sets the "hileras" field.
func (_c *TaskCreate) SetHileras(v int) *TaskCreate {
	_c.mutation.SetHileras(v)
	return _c
}

// SetNillableHileras sets the "hileras" field if the given value is not nil.
func (_c *TaskCreate) SetNillableHileras(v *int) *TaskCreate {
	if v != nil {
		_c.SetHileras(*v)
	}
	return _c
}

// SetLargoMetros sets the "largo_metros" field.
func (_c *TaskCreate) SetLargoMetros(v float64) *TaskCreate {
	_c.mutation.SetLargoMetros(v)
	return _c
}

// SetNillableLargoMetros sets the "largo_metros" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLargoMetros(v *float64) *TaskCreate {
	if v != nil {
		_c.SetLargoMetros(*v)
	}
	return _c
}

// SetPrioridad sets the "prioridad" field.
func (_c *TaskCreate) SetPrioridad(v string) *TaskCreate {
	_c.mutation.SetPrioridad(v)
	return _c
}

// SetNillablePrioridad sets the "prioridad" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePrioridad(v *string) *TaskCreate {
	if v != nil {
		_c.SetPrioridad(*v)
	}
	return _c
}

// SetEstado sets the "estado" field.
func (_c *TaskCreate) SetEstado(v string) *TaskCreate {
	_c.mutation.SetEstado(v)
	return _c
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEstado(v *string) *TaskCreate {
	if v != nil {
		_c.SetEstado(*v)
	}
	return _c
}

// SetDescripcion sets the "descripcion" field.
func (_c *TaskCreate) SetDescripcion(v string) *TaskCreate {
	_c.mutation.SetDescripcion(v)
	return _c
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescripcion(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescripcion(*v)
	}
	return _c
}

// SetNotas sets the "notas" field.
func (_c *TaskCreate) SetNotas(v string) *TaskCreate {
	_c.mutation.SetNotas(v)
	return _c
}

// SetNillableNotas sets the "notas" field if the given value is not nil.
func (_c *TaskCreate) SetNillableNotas(v *string) *TaskCreate {
	if v != nil {
		_c.SetNotas(*v)
	}
	return _c
}

// SetOrigen sets the "origen" field.
func (_c *TaskCreate) SetOrigen(v string) *TaskCreate {
	_c.mutation.SetOrigen(v)
	return _c
}

// SetUrgente sets the "urgente" field.
func (_c *TaskCreate) SetUrgente(v bool) *TaskCreate {
	_c.mutation.SetUrgente(v)
	return _c
}

// SetNillableUrgente sets the "urgente" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUrgente(v *bool) *TaskCreate {
	if v != nil {
		_c.SetUrgente(*v)
	}
	return _c
}

// SetFechaSolicitud sets the "fecha_solicitud" field.
func (_c *TaskCreate) SetFechaSolicitud(v time.Time) *TaskCreate {
	_c.mutation.SetFechaSolicitud(v)
	return _c
}

// SetNillableFechaSolicitud sets the "fecha_solicitud" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFechaSolicitud(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetFechaSolicitud(*v)
	}
	return _c
}

// SetFechaCompletada sets the "fecha_completada" field.
func (_c *TaskCreate) SetFechaCompletada(v time.Time) *TaskCreate {
	_c.mutation.SetFechaCompletada(v)
	return _c
}

// SetNillableFechaCompletada sets the "fecha_completada" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFechaCompletada(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetFechaCompletada(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v uuid.UUID) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableID(v *uuid.UUID) *TaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_c *TaskCreate) SetEmail(v *EmailMessage) *TaskCreate {
	return _c.SetEmailID(v.ID)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_c *TaskCreate) AddAlertIDs(ids ...uuid.UUID) *TaskCreate {
	_c.mutation.AddAlertIDs(ids...)
	return _c
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_c *TaskCreate) AddAlerts(v ...*Alert) *TaskCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Prioridad(); !ok {
		v := task.DefaultPrioridad
		_c.mutation.SetPrioridad(v)
	}
	if _, ok := _c.mutation.Estado(); !ok {
		v := task.DefaultEstado
		_c.mutation.SetEstado(v)
	}
	if _, ok := _c.mutation.Urgente(); !ok {
		v := task.DefaultUrgente
		_c.mutation.SetUrgente(v)
	}
	if _, ok := _c.mutation.FechaSolicitud(); !ok {
		v := task.DefaultFechaSolicitud()
		_c.mutation.SetFechaSolicitud(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := task.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.EmailID(); !ok {
		return &ValidationError{Name: "email_id", err: errors.New(`ent: missing required field "Task.email_id"`)}
	}
	if v, ok := _c.mutation.CodigoCobertor(); ok {
		if err := task.CodigoCobertorValidator(v); err != nil {
			return &ValidationError{Name: "codigo_cobertor", err: fmt.Errorf(`ent: validator failed for field "Task.codigo_cobertor": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Cuartel(); ok {
		if err := task.CuartelValidator(v); err != nil {
			return &ValidationError{Name: "cuartel", err: fmt.Errorf(`ent: validator failed for field "Task.cuartel": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Hileras(); ok {
		if err := task.HilerasValidator(v); err != nil {
			return &ValidationError{Name: "hileras", err: fmt.Errorf(`ent: validator failed for field "Task.hileras": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LargoMetros(); ok {
		if err := task.LargoMetrosValidator(v); err != nil {
			return &ValidationError{Name: "largo_metros", err: fmt.Errorf(`ent: validator failed for field "Task.largo_metros": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prioridad(); !ok {
		return &ValidationError{Name: "prioridad", err: errors.New(`ent: missing required field "Task.prioridad"`)}
	}
	if v, ok := _c.mutation.Prioridad(); ok {
		if err := task.PrioridadValidator(v); err != nil {
			return &ValidationError{Name: "prioridad", err: fmt.Errorf(`ent: validator failed for field "Task.prioridad": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Estado(); !ok {
		return &ValidationError{Name: "estado", err: errors.New(`ent: missing required field "Task.estado"`)}
	}
	if v, ok := _c.mutation.Estado(); ok {
		if err := task.EstadoValidator(v); err != nil {
			return &ValidationError{Name: "estado", err: fmt.Errorf(`ent: validator failed for field "Task.estado": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Descripcion(); ok {
		if err := task.DescripcionValidator(v); err != nil {
			return &ValidationError{Name: "descripcion", err: fmt.Errorf(`ent: validator failed for field "Task.descripcion": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Notas(); ok {
		if err := task.NotasValidator(v); err != nil {
			return &ValidationError{Name: "notas", err: fmt.Errorf(`ent: validator failed for field "Task.notas": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Origen(); !ok {
		return &ValidationError{Name: "origen", err: errors.New(`ent: missing required field "Task.origen"`)}
	}
	if v, ok := _c.mutation.Origen(); ok {
		if err := task.OrigenValidator(v); err != nil {
			return &ValidationError{Name: "origen", err: fmt.Errorf(`ent: validator failed for field "Task.origen": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgente(); !ok {
		return &ValidationError{Name: "urgente", err: errors.New(`ent: missing required field "Task.urgente"`)}
	}
	if _, ok := _c.mutation.FechaSolicitud(); !ok {
		return &ValidationError{Name: "fecha_solicitud", err: errors.New(`ent: missing required field "Task.fecha_solicitud"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	if len(_c.mutation.EmailIDs()) == 0 {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required edge "Task.email"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CodigoCobertor(); ok {
		_spec.SetField(task.FieldCodigoCobertor, field.TypeString, value)
		_node.CodigoCobertor = &value
	}
	if value, ok := _c.mutation.Cuartel(); ok {
		_spec.SetField(task.FieldCuartel, field.TypeString, value)
		_node.Cuartel = &value
	}
	if value, ok := _c.mutation.Hileras(); ok {
		_spec.SetField(task.FieldHileras, field.TypeInt, value)
		_node.Hileras = &value
	}
	if value, ok := _c.mutation.LargoMetros(); ok {
		_spec.SetField(task.FieldLargoMetros, field.TypeFloat64, value)
		_node.LargoMetros = &value
	}
	if value, ok := _c.mutation.Prioridad(); ok {
		_spec.SetField(task.FieldPrioridad, field.TypeString, value)
		_node.Prioridad = value
	}
	if value, ok := _c.mutation.Estado(); ok {
		_spec.SetField(task.FieldEstado, field.TypeString, value)
		_node.Estado = value
	}
	if value, ok := _c.mutation.Descripcion(); ok {
		_spec.SetField(task.FieldDescripcion, field.TypeString, value)
		_node.Descripcion = &value
	}
	if value, ok := _c.mutation.Notas(); ok {
		_spec.SetField(task.FieldNotas, field.TypeString, value)
		_node.Notas = &value
	}
	if value, ok := _c.mutation.Origen(); ok {
		_spec.SetField(task.FieldOrigen, field.TypeString, value)
		_node.Origen = value
	}
	if value, ok := _c.mutation.Urgente(); ok {
		_spec.SetField(task.FieldUrgente, field.TypeBool, value)
		_node.Urgente = value
	}
	if value, ok := _c.mutation.FechaSolicitud(); ok {
		_spec.SetField(task.FieldFechaSolicitud, field.TypeTime, value)
		_node.FechaSolicitud = value
	}
	if value, ok := _c.mutation.FechaCompletada(); ok {
		_spec.SetField(task.FieldFechaCompletada, field.TypeTime, value)
		_node.FechaCompletada = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EmailIDs(); len(nodes) > 0 {
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
		_node.EmailID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetEmailID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetEmailID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmailID sets the "email_id" field.
func (u *TaskUpsert) SetEmailID(v uuid.UUID) *TaskUpsert {
	u.Set(task.FieldEmailID, v)
	return u
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEmailID() *TaskUpsert {
	u.SetExcluded(task.FieldEmailID)
	return u
}

// SetCodigoCobertor sets the "codigo_cobertor" field.
func (u *TaskUpsert) SetCodigoCobertor(v string) *TaskUpsert {
	u.Set(task.FieldCodigoCobertor, v)
	return u
}

// UpdateCodigoCobertor sets the "codigo_cobertor" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCodigoCobertor() *TaskUpsert {
	u.SetExcluded(task.FieldCodigoCobertor)
	return u
}

// ClearCodigoCobertor clears the value of the "codigo_cobertor" field.
func (u *TaskUpsert) ClearCodigoCobertor() *TaskUpsert {
	u.SetNull(task.FieldCodigoCobertor)
	return u
}

// SetCuartel sets the "cuartel" field.
func (u *TaskUpsert) SetCuartel(v string) *TaskUpsert {
	u.Set(task.FieldCuartel, v)
	return u
}

// UpdateCuartel sets the "cuartel" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCuartel() *TaskUpsert {
	u.SetExcluded(task.FieldCuartel)
	return u
}

// ClearCuartel clears the value of the "cuartel" field.
func (u *TaskUpsert) ClearCuartel() *TaskUpsert {
	u.SetNull(task.FieldCuartel)
	return u
}

// SetHileras sets the "hileras" field.
func (u *TaskUpsert) SetHileras(v int) *TaskUpsert {
	u.Set(task.FieldHileras, v)
	return u
}

// UpdateHileras sets the "hileras" field to the value that was provided on create.
func (u *TaskUpsert) UpdateHileras() *TaskUpsert {
	u.SetExcluded(task.FieldHileras)
	return u
}

// AddHileras adds v to the "hileras" field.
func (u *TaskUpsert) AddHileras(v int) *TaskUpsert {
	u.Add(task.FieldHileras, v)
	return u
}

// ClearHileras clears the value of the "hileras" field.
func (u *TaskUpsert) ClearHileras() *TaskUpsert {
	u.SetNull(task.FieldHileras)
	return u
}

// SetLargoMetros sets the "largo_metros" field.
func (u *TaskUpsert) SetLargoMetros(v float64) *TaskUpsert {
	u.Set(task.FieldLargoMetros, v)
	return u
}

// UpdateLargoMetros sets the "largo_metros" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLargoMetros() *TaskUpsert {
	u.SetExcluded(task.FieldLargoMetros)
	return u
}

// AddLargoMetros adds v to the "largo_metros" field.
func (u *TaskUpsert) AddLargoMetros(v float64) *TaskUpsert {
	u.Add(task.FieldLargoMetros, v)
	return u
}

// ClearLargoMetros clears the value of the "largo_metros" field.
func (u *TaskUpsert) ClearLargoMetros() *TaskUpsert {
	u.SetNull(task.FieldLargoMetros)
	return u
}

// SetPrioridad sets the "prioridad" field.
func (u *TaskUpsert) SetPrioridad(v string) *TaskUpsert {
	u.Set(task.FieldPrioridad, v)
	return u
}

// UpdatePrioridad sets the "prioridad" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePrioridad() *TaskUpsert {
	u.SetExcluded(task.FieldPrioridad)
	return u
}

// SetEstado sets the "estado" field.
func (u *TaskUpsert) SetEstado(v string) *TaskUpsert {
	u.Set(task.FieldEstado, v)
	return u
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEstado() *TaskUpsert {
	u.SetExcluded(task.FieldEstado)
	return u
}

// SetDescripcion sets the "descripcion" field.
func (u *TaskUpsert) SetDescripcion(v string) *TaskUpsert {
	u.Set(task.FieldDescripcion, v)
	return u
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescripcion() *TaskUpsert {
	u.SetExcluded(task.FieldDescripcion)
	return u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *TaskUpsert) ClearDescripcion() *TaskUpsert {
	u.SetNull(task.FieldDescripcion)
	return u
}

// SetNotas sets the "notas" field.
func (u *TaskUpsert) SetNotas(v string) *TaskUpsert {
	u.Set(task.FieldNotas, v)
	return u
}

// UpdateNotas sets the "notas" field to the value that was provided on create.
func (u *TaskUpsert) UpdateNotas() *TaskUpsert {
	u.SetExcluded(task.FieldNotas)
	return u
}

// ClearNotas clears the value of the "notas" field.
func (u *TaskUpsert) ClearNotas() *TaskUpsert {
	u.SetNull(task.FieldNotas)
	return u
}

// SetOrigen sets the "origen" field.
func (u *TaskUpsert) SetOrigen(v string) *TaskUpsert {
	u.Set(task.FieldOrigen, v)
	return u
}

// UpdateOrigen sets the "origen" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOrigen() *TaskUpsert {
	u.SetExcluded(task.FieldOrigen)
	return u
}

// SetUrgente sets the "urgente" field.
func (u *TaskUpsert) SetUrgente(v bool) *TaskUpsert {
	u.Set(task.FieldUrgente, v)
	return u
}

// UpdateUrgente sets the "urgente" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUrgente() *TaskUpsert {
	u.SetExcluded(task.FieldUrgente)
	return u
}

// SetFechaSolicitud sets the "fecha_solicitud" field.
func (u *TaskUpsert) SetFechaSolicitud(v time.Time) *TaskUpsert {
	u.Set(task.FieldFechaSolicitud, v)
	return u
}

// UpdateFechaSolicitud sets the "fecha_solicitud" field to the value that was provided on create.
func (u *TaskUpsert) UpdateFechaSolicitud() *TaskUpsert {
	u.SetExcluded(task.FieldFechaSolicitud)
	return u
}

// SetFechaCompletada sets the "fecha_completada" field.
func (u *TaskUpsert) SetFechaCompletada(v time.Time) *TaskUpsert {
	u.Set(task.FieldFechaCompletada, v)
	return u
}

// UpdateFechaCompletada sets the "fecha_completada" field to the value that was provided on create.
func (u *TaskUpsert) UpdateFechaCompletada() *TaskUpsert {
	u.SetExcluded(task.FieldFechaCompletada)
	return u
}

// ClearFechaCompletada clears the value of the "fecha_completada" field.
func (u *TaskUpsert) ClearFechaCompletada() *TaskUpsert {
	u.SetNull(task.FieldFechaCompletada)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *TaskUpsert) SetCreatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCreatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmailID sets the "email_id" field.
func (u *TaskUpsertOne) SetEmailID(v uuid.UUID) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEmailID(v)
	})
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEmailID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEmailID()
	})
}

// SetCodigoCobertor sets the "codigo_cobertor" field.
func (u *TaskUpsertOne) SetCodigoCobertor(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCodigoCobertor(v)
	})
}

// UpdateCodigoCobertor sets the "codigo_cobertor" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCodigoCobertor() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCodigoCobertor()
	})
}

// ClearCodigoCobertor clears the value of the "codigo_cobertor" field.
func (u *TaskUpsertOne) ClearCodigoCobertor() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCodigoCobertor()
	})
}

// SetCuartel sets the "cuartel" field.
func (u *TaskUpsertOne) SetCuartel(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCuartel(v)
	})
}

// UpdateCuartel sets the "cuartel" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCuartel() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCuartel()
	})
}

// ClearCuartel clears the value of the "cuartel" field.
func (u *TaskUpsertOne) ClearCuartel() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCuartel()
	})
}

// SetHileras sets the "hileras" field.
func (u *TaskUpsertOne) SetHileras(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetHileras(v)
	})
}

// AddHileras adds v to the "hileras" field.
func (u *TaskUpsertOne) AddHileras(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddHileras(v)
	})
}

// UpdateHileras sets the "hileras" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateHileras() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateHileras()
	})
}

// ClearHileras clears the value of the "hileras" field.
func (u *TaskUpsertOne) ClearHileras() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearHileras()
	})
}

// SetLargoMetros sets the "largo_metros" field.
func (u *TaskUpsertOne) SetLargoMetros(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLargoMetros(v)
	})
}

// AddLargoMetros adds v to the "largo_metros" field.
func (u *TaskUpsertOne) AddLargoMetros(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddLargoMetros(v)
	})
}

// UpdateLargoMetros sets the "largo_metros" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLargoMetros() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLargoMetros()
	})
}

// ClearLargoMetros clears the value of the "largo_metros" field.
func (u *TaskUpsertOne) ClearLargoMetros() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLargoMetros()
	})
}

// SetPrioridad sets the "prioridad" field.
func (u *TaskUpsertOne) SetPrioridad(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPrioridad(v)
	})
}

// UpdatePrioridad sets the "prioridad" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePrioridad() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePrioridad()
	})
}

// SetEstado sets the "estado" field.
func (u *TaskUpsertOne) SetEstado(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstado(v)
	})
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEstado() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstado()
	})
}

// SetDescripcion sets the "descripcion" field.
func (u *TaskUpsertOne) SetDescripcion(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescripcion(v)
	})
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescripcion() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescripcion()
	})
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *TaskUpsertOne) ClearDescripcion() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescripcion()
	})
}

// SetNotas sets the "notas" field.
func (u *TaskUpsertOne) SetNotas(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetNotas(v)
	})
}

// UpdateNotas sets the "notas" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateNotas() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateNotas()
	})
}

// ClearNotas clears the value of the "notas" field.
func (u *TaskUpsertOne) ClearNotas() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearNotas()
	})
}

// SetOrigen sets the "origen" field.
func (u *TaskUpsertOne) SetOrigen(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOrigen(v)
	})
}

// UpdateOrigen sets the "origen" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOrigen() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOrigen()
	})
}

// SetUrgente sets the "urgente" field.
func (u *TaskUpsertOne) SetUrgente(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUrgente(v)
	})
}

// UpdateUrgente sets the "urgente" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUrgente() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUrgente()
	})
}

// SetFechaSolicitud sets the "fecha_solicitud" field.
func (u *TaskUpsertOne) SetFechaSolicitud(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetFechaSolicitud(v)
	})
}

// UpdateFechaSolicitud sets the "fecha_solicitud" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateFechaSolicitud() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFechaSolicitud()
	})
}

// SetFechaCompletada sets the "fecha_completada" field.
func (u *TaskUpsertOne) SetFechaCompletada(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetFechaCompletada(v)
	})
}

// UpdateFechaCompletada sets the "fecha_completada" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateFechaCompletada() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFechaCompletada()
	})
}

// ClearFechaCompletada clears the value of the "fecha_completada" field.
func (u *TaskUpsertOne) ClearFechaCompletada() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFechaCompletada()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TaskUpsertOne) SetCreatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCreatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetEmailID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmailID sets the "email_id" field.
func (u *TaskUpsertBulk) SetEmailID(v uuid.UUID) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEmailID(v)
	})
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEmailID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEmailID()
	})
}

// SetCodigoCobertor sets the "codigo_cobertor" field.
func (u *TaskUpsertBulk) SetCodigoCobertor(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCodigoCobertor(v)
	})
}

// UpdateCodigoCobertor sets the "codigo_cobertor" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCodigoCobertor() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCodigoCobertor()
	})
}

// ClearCodigoCobertor clears the value of the "codigo_cobertor" field.
func (u *TaskUpsertBulk) ClearCodigoCobertor() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCodigoCobertor()
	})
}

// SetCuartel sets the "cuartel" field.
func (u *TaskUpsertBulk) SetCuartel(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCuartel(v)
	})
}

// UpdateCuartel sets the "cuartel" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCuartel() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCuartel()
	})
}

// ClearCuartel clears the value of the "cuartel" field.
func (u *TaskUpsertBulk) ClearCuartel() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCuartel()
	})
}

// SetHileras sets the "hileras" field.
func (u *TaskUpsertBulk) SetHileras(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetHileras(v)
	})
}

// AddHileras adds v to the "hileras" field.
func (u *TaskUpsertBulk) AddHileras(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddHileras(v)
	})
}

// UpdateHileras sets the "hileras" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateHileras() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateHileras()
	})
}

// ClearHileras clears the value of the "hileras" field.
func (u *TaskUpsertBulk) ClearHileras() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearHileras()
	})
}

// SetLargoMetros sets the "largo_metros" field.
func (u *TaskUpsertBulk) SetLargoMetros(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLargoMetros(v)
	})
}

// AddLargoMetros adds v to the "largo_metros" field.
func (u *TaskUpsertBulk) AddLargoMetros(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddLargoMetros(v)
	})
}

// UpdateLargoMetros sets the "largo_metros" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLargoMetros() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLargoMetros()
	})
}

// ClearLargoMetros clears the value of the "largo_metros" field.
func (u *TaskUpsertBulk) ClearLargoMetros() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLargoMetros()
	})
}

// SetPrioridad sets the "prioridad" field.
func (u *TaskUpsertBulk) SetPrioridad(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPrioridad(v)
	})
}

// UpdatePrioridad sets the "prioridad" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePrioridad() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePrioridad()
	})
}

// SetEstado sets the "estado" field.
func (u *TaskUpsertBulk) SetEstado(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstado(v)
	})
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEstado() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstado()
	})
}

// SetDescripcion sets the "descripcion" field.
func (u *TaskUpsertBulk) SetDescripcion(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescripcion(v)
	})
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescripcion() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescripcion()
	})
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *TaskUpsertBulk) ClearDescripcion() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescripcion()
	})
}

// SetNotas sets the "notas" field.
func (u *TaskUpsertBulk) SetNotas(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetNotas(v)
	})
}

// UpdateNotas sets the "notas" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateNotas() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateNotas()
	})
}

// ClearNotas clears the value of the "notas" field.
func (u *TaskUpsertBulk) ClearNotas() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearNotas()
	})
}

// SetOrigen sets the "origen" field.
func (u *TaskUpsertBulk) SetOrigen(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOrigen(v)
	})
}

// UpdateOrigen sets the "origen" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOrigen() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOrigen()
	})
}

// SetUrgente sets the "urgente" field.
func (u *TaskUpsertBulk) SetUrgente(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUrgente(v)
	})
}

// UpdateUrgente sets the "urgente" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUrgente() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUrgente()
	})
}

// SetFechaSolicitud sets the "fecha_solicitud" field.
func (u *TaskUpsertBulk) SetFechaSolicitud(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetFechaSolicitud(v)
	})
}

// UpdateFechaSolicitud sets the "fecha_solicitud" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateFechaSolicitud() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFechaSolicitud()
	})
}

// SetFechaCompletada sets the "fecha_completada" field.
func (u *TaskUpsertBulk) SetFechaCompletada(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetFechaCompletada(v)
	})
}

// UpdateFechaCompletada sets the "fecha_completada" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateFechaCompletada() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFechaCompletada()
	})
}

// ClearFechaCompletada clears the value of the "fecha_completada" field.
func (u *TaskUpsertBulk) ClearFechaCompletada() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFechaCompletada()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TaskUpsertBulk) SetCreatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCreatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
