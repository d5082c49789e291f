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

// AlertCreate is the builder for creating a Alert entity.
type AlertCreate struct {
	config
	mutation *AlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTipo sets the "tipo" field.
func (_c *AlertCreate) SetTipo(v string) *AlertCreate {
	_c.mutation.SetTipo(v)
	return _c
}

// SetTitulo sets the "titulo" field.
func (_c *AlertCreate) SetTitulo(v string) *AlertCreate {
	_c.mutation.SetTitulo(v)
	return _c
}

// SetDescripcion sets the "descripcion" field.
func (_c *AlertCreate) SetDescripcion(v string) *AlertCreate {
	_c.mutation.SetDescripcion(v)
	return _c
}

// SetNillableDescripcion sets the "descripcion" field if the given value is not nil.
func (_c *AlertCreate) SetNillableDescripcion(v *string) *AlertCreate {
	if v != nil {
		_c.SetDescripcion(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *AlertCreate) SetTaskID(v uuid.UUID) *AlertCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *AlertCreate) SetNillableTaskID(v *uuid.UUID) *AlertCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetEmailID sets the "email_id" field.
func (_c *AlertCreate) SetEmailID(v uuid.UUID) *AlertCreate {
	_c.mutation.SetEmailID(v)
	return _c
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_c *AlertCreate) SetNillableEmailID(v *uuid.UUID) *AlertCreate {
	if v != nil {
		_c.SetEmailID(*v)
	}
	return _c
}

// SetSeveridad sets the "severidad" field.
func (_c *AlertCreate) SetSeveridad(v string) *AlertCreate {
	_c.mutation.SetSeveridad(v)
	return _c
}

// SetNillableSeveridad sets the "severidad" field if the given value is not nil.
func (_c *AlertCreate) SetNillableSeveridad(v *string) *AlertCreate {
	if v != nil {
		_c.SetSeveridad(*v)
	}
	return _c
}

// SetLeida sets the "leida" field.
func (_c *AlertCreate) SetLeida(v bool) *AlertCreate {
	_c.mutation.SetLeida(v)
	return _c
}

// SetNillableLeida sets the "leida" field if the given value is not nil.
func (_c *AlertCreate) SetNillableLeida(v *bool) *AlertCreate {
	if v != nil {
		_c.SetLeida(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertCreate) SetCreatedAt(v time.Time) *AlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableCreatedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertCreate) SetID(v uuid.UUID) *AlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AlertCreate) SetNillableID(v *uuid.UUID) *AlertCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_c *AlertCreate) SetEmail(v *EmailMessage) *AlertCreate {
	return _c.SetEmailID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_c *AlertCreate) SetTask(v *Task) *AlertCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_c *AlertCreate) Mutation() *AlertMutation {
	return _c.mutation
}

// Save creates the Alert in the database.
func (_c *AlertCreate) Save(ctx context.Context) (*Alert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertCreate) SaveX(ctx context.Context) *Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertCreate) defaults() {
	if _, ok := _c.mutation.Severidad(); !ok {
		v := alert.DefaultSeveridad
		_c.mutation.SetSeveridad(v)
	}
	if _, ok := _c.mutation.Leida(); !ok {
		v := alert.DefaultLeida
		_c.mutation.SetLeida(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := alert.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertCreate) check() error {
	if _, ok := _c.mutation.Tipo(); !ok {
		return &ValidationError{Name: "tipo", err: errors.New(`ent: missing required field "Alert.tipo"`)}
	}
	if v, ok := _c.mutation.Tipo(); ok {
		if err := alert.TipoValidator(v); err != nil {
			return &ValidationError{Name: "tipo", err: fmt.Errorf(`ent: validator failed for field "Alert.tipo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Titulo(); !ok {
		return &ValidationError{Name: "titulo", err: errors.New(`ent: missing required field "Alert.titulo"`)}
	}
	if v, ok := _c.mutation.Titulo(); ok {
		if err := alert.TituloValidator(v); err != nil {
			return &ValidationError{Name: "titulo", err: fmt.Errorf(`ent: validator failed for field "Alert.titulo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severidad(); !ok {
		return &ValidationError{Name: "severidad", err: errors.New(`ent: missing required field "Alert.severidad"`)}
	}
	if v, ok := _c.mutation.Severidad(); ok {
		if err := alert.SeveridadValidator(v); err != nil {
			return &ValidationError{Name: "severidad", err: fmt.Errorf(`ent: validator failed for field "Alert.severidad": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Leida(); !ok {
		return &ValidationError{Name: "leida", err: errors.New(`ent: missing required field "Alert.leida"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Alert.created_at"`)}
	}
	return nil
}

func (_c *AlertCreate) sqlSave(ctx context.Context) (*Alert, error) {
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

func (_c *AlertCreate) createSpec() (*Alert, *sqlgraph.CreateSpec) {
	var (
		_node = &Alert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alert.Table, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Tipo(); ok {
		_spec.SetField(alert.FieldTipo, field.TypeString, value)
		_node.Tipo = value
	}
	if value, ok := _c.mutation.Titulo(); ok {
		_spec.SetField(alert.FieldTitulo, field.TypeString, value)
		_node.Titulo = value
	}
	if value, ok := _c.mutation.Descripcion(); ok {
		_spec.SetField(alert.FieldDescripcion, field.TypeString, value)
		_node.Descripcion = &value
	}
	if value, ok := _c.mutation.Severidad(); ok {
		_spec.SetField(alert.FieldSeveridad, field.TypeString, value)
		_node.Severidad = value
	}
	if value, ok := _c.mutation.Leida(); ok {
		_spec.SetField(alert.FieldLeida, field.TypeBool, value)
		_node.Leida = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EmailIDs(); len(nodes) > 0 {
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
		_node.EmailID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.Create().
//		SetTipo(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetTipo(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreate) OnConflict(opts ...sql.ConflictOption) *AlertUpsertOne {
	_c.conflict = opts
	return &AlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreate) OnConflictColumns(columns ...string) *AlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertOne{
		create: _c,
	}
}

type (
	// AlertUpsertOne is the builder for "upsert"-ing
	//  one Alert node.
	AlertUpsertOne struct {
		create *AlertCreate
	}

	// AlertUpsert is the "OnConflict" setter.
	AlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetTipo sets the "tipo" field.
func (u *AlertUpsert) SetTipo(v string) *AlertUpsert {
	u.Set(alert.FieldTipo, v)
	return u
}

// UpdateTipo sets the "tipo" field to the value that was provided on create.
func (u *AlertUpsert) UpdateTipo() *AlertUpsert {
	u.SetExcluded(alert.FieldTipo)
	return u
}

// SetTitulo sets the "titulo" field.
func (u *AlertUpsert) SetTitulo(v string) *AlertUpsert {
	u.Set(alert.FieldTitulo, v)
	return u
}

// UpdateTitulo sets the "titulo" field to the value that was provided on create.
func (u *AlertUpsert) UpdateTitulo() *AlertUpsert {
	u.SetExcluded(alert.FieldTitulo)
	return u
}

// SetDescripcion sets the "descripcion" field.
func (u *AlertUpsert) SetDescripcion(v string) *AlertUpsert {
	u.Set(alert.FieldDescripcion, v)
	return u
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *AlertUpsert) UpdateDescripcion() *AlertUpsert {
	u.SetExcluded(alert.FieldDescripcion)
	return u
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *AlertUpsert) ClearDescripcion() *AlertUpsert {
	u.SetNull(alert.FieldDescripcion)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *AlertUpsert) SetTaskID(v uuid.UUID) *AlertUpsert {
	u.Set(alert.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AlertUpsert) UpdateTaskID() *AlertUpsert {
	u.SetExcluded(alert.FieldTaskID)
	return u
}

// ClearTaskID clears the value of the "task_id" field.
func (u *AlertUpsert) ClearTaskID() *AlertUpsert {
	u.SetNull(alert.FieldTaskID)
	return u
}

// SetEmailID sets the "email_id" field.
func (u *AlertUpsert) SetEmailID(v uuid.UUID) *AlertUpsert {
	u.Set(alert.FieldEmailID, v)
	return u
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *AlertUpsert) UpdateEmailID() *AlertUpsert {
	u.SetExcluded(alert.FieldEmailID)
	return u
}

// ClearEmailID clears the value of the "email_id" field.
func (u *AlertUpsert) ClearEmailID() *AlertUpsert {
	u.SetNull(alert.FieldEmailID)
	return u
}

// SetSeveridad sets the "severidad" field.
func (u *AlertUpsert) SetSeveridad(v string) *AlertUpsert {
	u.Set(alert.FieldSeveridad, v)
	return u
}

// UpdateSeveridad sets the "severidad" field to the value that was provided on create.
func (u *AlertUpsert) UpdateSeveridad() *AlertUpsert {
	u.SetExcluded(alert.FieldSeveridad)
	return u
}

// SetLeida sets the "leida" field.
func (u *AlertUpsert) SetLeida(v bool) *AlertUpsert {
	u.Set(alert.FieldLeida, v)
	return u
}

// UpdateLeida sets the "leida" field to the value that was provided on create.
func (u *AlertUpsert) UpdateLeida() *AlertUpsert {
	u.SetExcluded(alert.FieldLeida)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AlertUpsert) SetCreatedAt(v time.Time) *AlertUpsert {
	u.Set(alert.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AlertUpsert) UpdateCreatedAt() *AlertUpsert {
	u.SetExcluded(alert.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertUpsertOne) UpdateNewValues() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(alert.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlertUpsertOne) Ignore() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertOne) DoNothing() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreate.OnConflict
// documentation for more info.
func (u *AlertUpsertOne) Update(set func(*AlertUpsert)) *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetTipo sets the "tipo" field.
func (u *AlertUpsertOne) SetTipo(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetTipo(v)
	})
}

// UpdateTipo sets the "tipo" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateTipo() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTipo()
	})
}

// SetTitulo sets the "titulo" field.
func (u *AlertUpsertOne) SetTitulo(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetTitulo(v)
	})
}

// UpdateTitulo sets the "titulo" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateTitulo() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTitulo()
	})
}

// SetDescripcion sets the "descripcion" field.
func (u *AlertUpsertOne) SetDescripcion(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetDescripcion(v)
	})
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateDescripcion() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateDescripcion()
	})
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *AlertUpsertOne) ClearDescripcion() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearDescripcion()
	})
}

// SetTaskID sets the "task_id" field.
func (u *AlertUpsertOne) SetTaskID(v uuid.UUID) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateTaskID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *AlertUpsertOne) ClearTaskID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearTaskID()
	})
}

// SetEmailID sets the "email_id" field.
func (u *AlertUpsertOne) SetEmailID(v uuid.UUID) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetEmailID(v)
	})
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateEmailID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateEmailID()
	})
}

// ClearEmailID clears the value of the "email_id" field.
func (u *AlertUpsertOne) ClearEmailID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearEmailID()
	})
}

// SetSeveridad sets the "severidad" field.
func (u *AlertUpsertOne) SetSeveridad(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetSeveridad(v)
	})
}

// UpdateSeveridad sets the "severidad" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateSeveridad() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSeveridad()
	})
}

// SetLeida sets the "leida" field.
func (u *AlertUpsertOne) SetLeida(v bool) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetLeida(v)
	})
}

// UpdateLeida sets the "leida" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateLeida() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateLeida()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AlertUpsertOne) SetCreatedAt(v time.Time) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateCreatedAt() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlertUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AlertUpsertOne.ID is not supported by MySQL driver. Use AlertUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlertUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlertCreateBulk is the builder for creating many Alert entities in bulk.
type AlertCreateBulk struct {
	config
	err      error
	builders []*AlertCreate
	conflict []sql.ConflictOption
}

// Save creates the Alert entities in the database.
func (_c *AlertCreateBulk) Save(ctx context.Context) ([]*Alert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Alert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertMutation)
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
func (_c *AlertCreateBulk) SaveX(ctx context.Context) []*Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetTipo(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlertUpsertBulk {
	_c.conflict = opts
	return &AlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflictColumns(columns ...string) *AlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertBulk{
		create: _c,
	}
}

// AlertUpsertBulk is the builder for "upsert"-ing
// a bulk of Alert nodes.
type AlertUpsertBulk struct {
	create *AlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertUpsertBulk) UpdateNewValues() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(alert.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlertUpsertBulk) Ignore() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertBulk) DoNothing() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreateBulk.OnConflict
// documentation for more info.
func (u *AlertUpsertBulk) Update(set func(*AlertUpsert)) *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetTipo sets the "tipo" field.
func (u *AlertUpsertBulk) SetTipo(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetTipo(v)
	})
}

// UpdateTipo sets the "tipo" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateTipo() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTipo()
	})
}

// SetTitulo sets the "titulo" field.
func (u *AlertUpsertBulk) SetTitulo(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetTitulo(v)
	})
}

// UpdateTitulo sets the "titulo" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateTitulo() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTitulo()
	})
}

// SetDescripcion sets the "descripcion" field.
func (u *AlertUpsertBulk) SetDescripcion(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetDescripcion(v)
	})
}

// UpdateDescripcion sets the "descripcion" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateDescripcion() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateDescripcion()
	})
}

// ClearDescripcion clears the value of the "descripcion" field.
func (u *AlertUpsertBulk) ClearDescripcion() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearDescripcion()
	})
}

// SetTaskID sets the "task_id" field.
func (u *AlertUpsertBulk) SetTaskID(v uuid.UUID) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateTaskID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *AlertUpsertBulk) ClearTaskID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearTaskID()
	})
}

// SetEmailID sets the "email_id" field.
func (u *AlertUpsertBulk) SetEmailID(v uuid.UUID) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetEmailID(v)
	})
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateEmailID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateEmailID()
	})
}

// ClearEmailID clears the value of the "email_id" field.
func (u *AlertUpsertBulk) ClearEmailID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearEmailID()
	})
}

// SetSeveridad sets the "severidad" field.
func (u *AlertUpsertBulk) SetSeveridad(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetSeveridad(v)
	})
}

// UpdateSeveridad sets the "severidad" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateSeveridad() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSeveridad()
	})
}

// SetLeida sets the "leida" field.
func (u *AlertUpsertBulk) SetLeida(v bool) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetLeida(v)
	})
}

// UpdateLeida sets the "leida" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateLeida() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateLeida()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AlertUpsertBulk) SetCreatedAt(v time.Time) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateCreatedAt() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
