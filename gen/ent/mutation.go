// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/alert"
	"github.com/fvillarroel/cobertor-bot/gen/ent/attachment"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/learnedrule"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/fvillarroel/cobertor-bot/gen/ent/senderprofile"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/fvillarroel/cobertor-bot/gen/ent/threadpattern"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert         = "Alert"
	TypeAttachment    = "Attachment"
	TypeEmailMessage  = "EmailMessage"
	TypeLearnedRule   = "LearnedRule"
	TypeSenderProfile = "SenderProfile"
	TypeTask          = "Task"
	TypeThreadPattern = "ThreadPattern"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	tipo          *string
	titulo        *string
	descripcion   *string
	severidad     *string
	leida         *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	email         *uuid.UUID
	clearedemail  bool
	task          *uuid.UUID
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Alert, error)
	predicates    []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id uuid.UUID) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTipo sets the "tipo" field.
func (m *AlertMutation) SetTipo(s string) {
	m.tipo = &s
}

// Tipo returns the value of the "tipo" field in the mutation.
func (m *AlertMutation) Tipo() (r string, exists bool) {
	v := m.tipo
	if v == nil {
		return
	}
	return *v, true
}

// OldTipo returns the old "tipo" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldTipo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipo: %w", err)
	}
	return oldValue.Tipo, nil
}

// ResetTipo resets all changes to the "tipo" field.
func (m *AlertMutation) ResetTipo() {
	m.tipo = nil
}

// SetTitulo sets the "titulo" field.
func (m *AlertMutation) SetTitulo(s string) {
	m.titulo = &s
}

// Titulo returns the value of the "titulo" field in the mutation.
func (m *AlertMutation) Titulo() (r string, exists bool) {
	v := m.titulo
	if v == nil {
		return
	}
	return *v, true
}

// OldTitulo returns the old "titulo" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldTitulo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitulo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitulo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitulo: %w", err)
	}
	return oldValue.Titulo, nil
}

// ResetTitulo resets all changes to the "titulo" field.
func (m *AlertMutation) ResetTitulo() {
	m.titulo = nil
}

// SetDescripcion sets the "descripcion" field.
func (m *AlertMutation) SetDescripcion(s string) {
	m.descripcion = &s
}

// Descripcion returns the value of the "descripcion" field in the mutation.
func (m *AlertMutation) Descripcion() (r string, exists bool) {
	v := m.descripcion
	if v == nil {
		return
	}
	return *v, true
}

// OldDescripcion returns the old "descripcion" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldDescripcion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescripcion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescripcion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescripcion: %w", err)
	}
	return oldValue.Descripcion, nil
}

// ClearDescripcion clears the value of the "descripcion" field.
func (m *AlertMutation) ClearDescripcion() {
	m.descripcion = nil
	m.clearedFields[alert.FieldDescripcion] = struct{}{}
}

// DescripcionCleared returns if the "descripcion" field was cleared in this mutation.
func (m *AlertMutation) DescripcionCleared() bool {
	_, ok := m.clearedFields[alert.FieldDescripcion]
	return ok
}

// ResetDescripcion resets all changes to the "descripcion" field.
func (m *AlertMutation) ResetDescripcion() {
	m.descripcion = nil
	delete(m.clearedFields, alert.FieldDescripcion)
}

// SetTaskID sets the "task_id" field.
func (m *AlertMutation) SetTaskID(u uuid.UUID) {
	m.task = &u
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AlertMutation) TaskID() (r uuid.UUID, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldTaskID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *AlertMutation) ClearTaskID() {
	m.task = nil
	m.clearedFields[alert.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *AlertMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[alert.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AlertMutation) ResetTaskID() {
	m.task = nil
	delete(m.clearedFields, alert.FieldTaskID)
}

// SetEmailID sets the "email_id" field.
func (m *AlertMutation) SetEmailID(u uuid.UUID) {
	m.email = &u
}

// EmailID returns the value of the "email_id" field in the mutation.
func (m *AlertMutation) EmailID() (r uuid.UUID, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailID returns the old "email_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldEmailID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailID: %w", err)
	}
	return oldValue.EmailID, nil
}

// ClearEmailID clears the value of the "email_id" field.
func (m *AlertMutation) ClearEmailID() {
	m.email = nil
	m.clearedFields[alert.FieldEmailID] = struct{}{}
}

// EmailIDCleared returns if the "email_id" field was cleared in this mutation.
func (m *AlertMutation) EmailIDCleared() bool {
	_, ok := m.clearedFields[alert.FieldEmailID]
	return ok
}

// ResetEmailID resets all changes to the "email_id" field.
func (m *AlertMutation) ResetEmailID() {
	m.email = nil
	delete(m.clearedFields, alert.FieldEmailID)
}

// SetSeveridad sets the "severidad" field.
func (m *AlertMutation) SetSeveridad(s string) {
	m.severidad = &s
}

// Severidad returns the value of the "severidad" field in the mutation.
func (m *AlertMutation) Severidad() (r string, exists bool) {
	v := m.severidad
	if v == nil {
		return
	}
	return *v, true
}

// OldSeveridad returns the old "severidad" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSeveridad(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeveridad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeveridad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeveridad: %w", err)
	}
	return oldValue.Severidad, nil
}

// ResetSeveridad resets all changes to the "severidad" field.
func (m *AlertMutation) ResetSeveridad() {
	m.severidad = nil
}

// SetLeida sets the "leida" field.
func (m *AlertMutation) SetLeida(b bool) {
	m.leida = &b
}

// Leida returns the value of the "leida" field in the mutation.
func (m *AlertMutation) Leida() (r bool, exists bool) {
	v := m.leida
	if v == nil {
		return
	}
	return *v, true
}

// OldLeida returns the old "leida" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldLeida(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeida is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeida requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeida: %w", err)
	}
	return oldValue.Leida, nil
}

// ResetLeida resets all changes to the "leida" field.
func (m *AlertMutation) ResetLeida() {
	m.leida = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (m *AlertMutation) ClearEmail() {
	m.clearedemail = true
	m.clearedFields[alert.FieldEmailID] = struct{}{}
}

// EmailCleared reports if the "email" edge to the EmailMessage entity was cleared.
func (m *AlertMutation) EmailCleared() bool {
	return m.EmailIDCleared() || m.clearedemail
}

// EmailIDs returns the "email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmailID instead. It exists only for internal usage by the builders.
func (m *AlertMutation) EmailIDs() (ids []uuid.UUID) {
	if id := m.email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmail resets all changes to the "email" edge.
func (m *AlertMutation) ResetEmail() {
	m.email = nil
	m.clearedemail = false
}

// ClearTask clears the "task" edge to the Task entity.
func (m *AlertMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[alert.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *AlertMutation) TaskCleared() bool {
	return m.TaskIDCleared() || m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *AlertMutation) TaskIDs() (ids []uuid.UUID) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *AlertMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tipo != nil {
		fields = append(fields, alert.FieldTipo)
	}
	if m.titulo != nil {
		fields = append(fields, alert.FieldTitulo)
	}
	if m.descripcion != nil {
		fields = append(fields, alert.FieldDescripcion)
	}
	if m.task != nil {
		fields = append(fields, alert.FieldTaskID)
	}
	if m.email != nil {
		fields = append(fields, alert.FieldEmailID)
	}
	if m.severidad != nil {
		fields = append(fields, alert.FieldSeveridad)
	}
	if m.leida != nil {
		fields = append(fields, alert.FieldLeida)
	}
	if m.created_at != nil {
		fields = append(fields, alert.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldTipo:
		return m.Tipo()
	case alert.FieldTitulo:
		return m.Titulo()
	case alert.FieldDescripcion:
		return m.Descripcion()
	case alert.FieldTaskID:
		return m.TaskID()
	case alert.FieldEmailID:
		return m.EmailID()
	case alert.FieldSeveridad:
		return m.Severidad()
	case alert.FieldLeida:
		return m.Leida()
	case alert.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldTipo:
		return m.OldTipo(ctx)
	case alert.FieldTitulo:
		return m.OldTitulo(ctx)
	case alert.FieldDescripcion:
		return m.OldDescripcion(ctx)
	case alert.FieldTaskID:
		return m.OldTaskID(ctx)
	case alert.FieldEmailID:
		return m.OldEmailID(ctx)
	case alert.FieldSeveridad:
		return m.OldSeveridad(ctx)
	case alert.FieldLeida:
		return m.OldLeida(ctx)
	case alert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldTipo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipo(v)
		return nil
	case alert.FieldTitulo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitulo(v)
		return nil
	case alert.FieldDescripcion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescripcion(v)
		return nil
	case alert.FieldTaskID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case alert.FieldEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailID(v)
		return nil
	case alert.FieldSeveridad:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeveridad(v)
		return nil
	case alert.FieldLeida:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeida(v)
		return nil
	case alert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldDescripcion) {
		fields = append(fields, alert.FieldDescripcion)
	}
	if m.FieldCleared(alert.FieldTaskID) {
		fields = append(fields, alert.FieldTaskID)
	}
	if m.FieldCleared(alert.FieldEmailID) {
		fields = append(fields, alert.FieldEmailID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldDescripcion:
		m.ClearDescripcion()
		return nil
	case alert.FieldTaskID:
		m.ClearTaskID()
		return nil
	case alert.FieldEmailID:
		m.ClearEmailID()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldTipo:
		m.ResetTipo()
		return nil
	case alert.FieldTitulo:
		m.ResetTitulo()
		return nil
	case alert.FieldDescripcion:
		m.ResetDescripcion()
		return nil
	case alert.FieldTaskID:
		m.ResetTaskID()
		return nil
	case alert.FieldEmailID:
		m.ResetEmailID()
		return nil
	case alert.FieldSeveridad:
		m.ResetSeveridad()
		return nil
	case alert.FieldLeida:
		m.ResetLeida()
		return nil
	case alert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.email != nil {
		edges = append(edges, alert.EdgeEmail)
	}
	if m.task != nil {
		edges = append(edges, alert.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alert.EdgeEmail:
		if id := m.email; id != nil {
			return []ent.Value{*id}
		}
	case alert.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemail {
		edges = append(edges, alert.EdgeEmail)
	}
	if m.clearedtask {
		edges = append(edges, alert.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	switch name {
	case alert.EdgeEmail:
		return m.clearedemail
	case alert.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	switch name {
	case alert.EdgeEmail:
		m.ClearEmail()
		return nil
	case alert.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	switch name {
	case alert.EdgeEmail:
		m.ResetEmail()
		return nil
	case alert.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Alert edge %s", name)
}

// AttachmentMutation represents an operation that mutates the Attachment nodes in the graph.
type AttachmentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	filename             *string
	mime_type            *string
	size_bytes           *int
	addsize_bytes        *int
	format               *string
	extracted_count      *int
	addextracted_count   *int
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	created_at           *time.Time
	clearedFields        map[string]struct{}
	email                *uuid.UUID
	clearedemail         bool
	done                 bool
	oldValue             func(context.Context) (*Attachment, error)
	predicates           []predicate.Attachment
}

var _ ent.Mutation = (*AttachmentMutation)(nil)

// attachmentOption allows management of the mutation configuration using functional options.
type attachmentOption func(*AttachmentMutation)

// newAttachmentMutation creates new mutation for the Attachment entity.
func newAttachmentMutation(c config, op Op, opts ...attachmentOption) *AttachmentMutation {
	m := &AttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttachmentID sets the ID field of the mutation.
func withAttachmentID(id uuid.UUID) attachmentOption {
	return func(m *AttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Attachment
		)
		m.oldValue = func(ctx context.Context) (*Attachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttachment sets the old Attachment of the mutation.
func withAttachment(node *Attachment) attachmentOption {
	return func(m *AttachmentMutation) {
		m.oldValue = func(context.Context) (*Attachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attachment entities.
func (m *AttachmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttachmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttachmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmailID sets the "email_id" field.
func (m *AttachmentMutation) SetEmailID(u uuid.UUID) {
	m.email = &u
}

// EmailID returns the value of the "email_id" field in the mutation.
func (m *AttachmentMutation) EmailID() (r uuid.UUID, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailID returns the old "email_id" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldEmailID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailID: %w", err)
	}
	return oldValue.EmailID, nil
}

// ResetEmailID resets all changes to the "email_id" field.
func (m *AttachmentMutation) ResetEmailID() {
	m.email = nil
}

// SetFilename sets the "filename" field.
func (m *AttachmentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *AttachmentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *AttachmentMutation) ResetFilename() {
	m.filename = nil
}

// SetMimeType sets the "mime_type" field.
func (m *AttachmentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *AttachmentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *AttachmentMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[attachment.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *AttachmentMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[attachment.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *AttachmentMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, attachment.FieldMimeType)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *AttachmentMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *AttachmentMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *AttachmentMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *AttachmentMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *AttachmentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetFormat sets the "format" field.
func (m *AttachmentMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *AttachmentMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldFormat(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ClearFormat clears the value of the "format" field.
func (m *AttachmentMutation) ClearFormat() {
	m.format = nil
	m.clearedFields[attachment.FieldFormat] = struct{}{}
}

// FormatCleared returns if the "format" field was cleared in this mutation.
func (m *AttachmentMutation) FormatCleared() bool {
	_, ok := m.clearedFields[attachment.FieldFormat]
	return ok
}

// ResetFormat resets all changes to the "format" field.
func (m *AttachmentMutation) ResetFormat() {
	m.format = nil
	delete(m.clearedFields, attachment.FieldFormat)
}

// SetExtractedCount sets the "extracted_count" field.
func (m *AttachmentMutation) SetExtractedCount(i int) {
	m.extracted_count = &i
	m.addextracted_count = nil
}

// ExtractedCount returns the value of the "extracted_count" field in the mutation.
func (m *AttachmentMutation) ExtractedCount() (r int, exists bool) {
	v := m.extracted_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedCount returns the old "extracted_count" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldExtractedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedCount: %w", err)
	}
	return oldValue.ExtractedCount, nil
}

// AddExtractedCount adds i to the "extracted_count" field.
func (m *AttachmentMutation) AddExtractedCount(i int) {
	if m.addextracted_count != nil {
		*m.addextracted_count += i
	} else {
		m.addextracted_count = &i
	}
}

// AddedExtractedCount returns the value that was added to the "extracted_count" field in this mutation.
func (m *AttachmentMutation) AddedExtractedCount() (r int, exists bool) {
	v := m.addextracted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractedCount resets all changes to the "extracted_count" field.
func (m *AttachmentMutation) ResetExtractedCount() {
	m.extracted_count = nil
	m.addextracted_count = nil
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *AttachmentMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *AttachmentMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *AttachmentMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *AttachmentMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *AttachmentMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[attachment.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *AttachmentMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[attachment.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *AttachmentMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, attachment.FieldExtractedJSON)
}

// SetCreatedAt sets the "created_at" field.
func (m *AttachmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttachmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttachmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (m *AttachmentMutation) ClearEmail() {
	m.clearedemail = true
	m.clearedFields[attachment.FieldEmailID] = struct{}{}
}

// EmailCleared reports if the "email" edge to the EmailMessage entity was cleared.
func (m *AttachmentMutation) EmailCleared() bool {
	return m.clearedemail
}

// EmailIDs returns the "email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmailID instead. It exists only for internal usage by the builders.
func (m *AttachmentMutation) EmailIDs() (ids []uuid.UUID) {
	if id := m.email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmail resets all changes to the "email" edge.
func (m *AttachmentMutation) ResetEmail() {
	m.email = nil
	m.clearedemail = false
}

// Where appends a list predicates to the AttachmentMutation builder.
func (m *AttachmentMutation) Where(ps ...predicate.Attachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attachment).
func (m *AttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttachmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.email != nil {
		fields = append(fields, attachment.FieldEmailID)
	}
	if m.filename != nil {
		fields = append(fields, attachment.FieldFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, attachment.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	if m.format != nil {
		fields = append(fields, attachment.FieldFormat)
	}
	if m.extracted_count != nil {
		fields = append(fields, attachment.FieldExtractedCount)
	}
	if m.extracted_json != nil {
		fields = append(fields, attachment.FieldExtractedJSON)
	}
	if m.created_at != nil {
		fields = append(fields, attachment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldEmailID:
		return m.EmailID()
	case attachment.FieldFilename:
		return m.Filename()
	case attachment.FieldMimeType:
		return m.MimeType()
	case attachment.FieldSizeBytes:
		return m.SizeBytes()
	case attachment.FieldFormat:
		return m.Format()
	case attachment.FieldExtractedCount:
		return m.ExtractedCount()
	case attachment.FieldExtractedJSON:
		return m.ExtractedJSON()
	case attachment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attachment.FieldEmailID:
		return m.OldEmailID(ctx)
	case attachment.FieldFilename:
		return m.OldFilename(ctx)
	case attachment.FieldMimeType:
		return m.OldMimeType(ctx)
	case attachment.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case attachment.FieldFormat:
		return m.OldFormat(ctx)
	case attachment.FieldExtractedCount:
		return m.OldExtractedCount(ctx)
	case attachment.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case attachment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailID(v)
		return nil
	case attachment.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case attachment.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case attachment.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case attachment.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case attachment.FieldExtractedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedCount(v)
		return nil
	case attachment.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case attachment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttachmentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, attachment.FieldSizeBytes)
	}
	if m.addextracted_count != nil {
		fields = append(fields, attachment.FieldExtractedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttachmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldSizeBytes:
		return m.AddedSizeBytes()
	case attachment.FieldExtractedCount:
		return m.AddedExtractedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	case attachment.FieldExtractedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedCount(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttachmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attachment.FieldMimeType) {
		fields = append(fields, attachment.FieldMimeType)
	}
	if m.FieldCleared(attachment.FieldFormat) {
		fields = append(fields, attachment.FieldFormat)
	}
	if m.FieldCleared(attachment.FieldExtractedJSON) {
		fields = append(fields, attachment.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttachmentMutation) ClearField(name string) error {
	switch name {
	case attachment.FieldMimeType:
		m.ClearMimeType()
		return nil
	case attachment.FieldFormat:
		m.ClearFormat()
		return nil
	case attachment.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown Attachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttachmentMutation) ResetField(name string) error {
	switch name {
	case attachment.FieldEmailID:
		m.ResetEmailID()
		return nil
	case attachment.FieldFilename:
		m.ResetFilename()
		return nil
	case attachment.FieldMimeType:
		m.ResetMimeType()
		return nil
	case attachment.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case attachment.FieldFormat:
		m.ResetFormat()
		return nil
	case attachment.FieldExtractedCount:
		m.ResetExtractedCount()
		return nil
	case attachment.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case attachment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.email != nil {
		edges = append(edges, attachment.EdgeEmail)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attachment.EdgeEmail:
		if id := m.email; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedemail {
		edges = append(edges, attachment.EdgeEmail)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case attachment.EdgeEmail:
		return m.clearedemail
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttachmentMutation) ClearEdge(name string) error {
	switch name {
	case attachment.EdgeEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown Attachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttachmentMutation) ResetEdge(name string) error {
	switch name {
	case attachment.EdgeEmail:
		m.ResetEmail()
		return nil
	}
	return fmt.Errorf("unknown Attachment edge %s", name)
}

// EmailMessageMutation represents an operation that mutates the EmailMessage nodes in the graph.
type EmailMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	message_id          *string
	thread_id           *string
	sender_email        *string
	sender_name         *string
	subject             *string
	body_text           *string
	body_html           *string
	received_at         *time.Time
	processed_at        *time.Time
	has_attachments     *bool
	attachment_count    *int
	addattachment_count *int
	status              *string
	error_message       *string
	clearedFields       map[string]struct{}
	tasks               map[uuid.UUID]struct{}
	removedtasks        map[uuid.UUID]struct{}
	clearedtasks        bool
	adjuntos            map[uuid.UUID]struct{}
	removedadjuntos     map[uuid.UUID]struct{}
	clearedadjuntos     bool
	alerts              map[uuid.UUID]struct{}
	removedalerts       map[uuid.UUID]struct{}
	clearedalerts       bool
	done                bool
	oldValue            func(context.Context) (*EmailMessage, error)
	predicates          []predicate.EmailMessage
}

var _ ent.Mutation = (*EmailMessageMutation)(nil)

// emailmessageOption allows management of the mutation configuration using functional options.
type emailmessageOption func(*EmailMessageMutation)

// newEmailMessageMutation creates new mutation for the EmailMessage entity.
func newEmailMessageMutation(c config, op Op, opts ...emailmessageOption) *EmailMessageMutation {
	m := &EmailMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailMessageID sets the ID field of the mutation.
func withEmailMessageID(id uuid.UUID) emailmessageOption {
	return func(m *EmailMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailMessage
		)
		m.oldValue = func(ctx context.Context) (*EmailMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailMessage sets the old EmailMessage of the mutation.
func withEmailMessage(node *EmailMessage) emailmessageOption {
	return func(m *EmailMessageMutation) {
		m.oldValue = func(context.Context) (*EmailMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailMessage entities.
func (m *EmailMessageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailMessageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailMessageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *EmailMessageMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *EmailMessageMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *EmailMessageMutation) ResetMessageID() {
	m.message_id = nil
}

// SetThreadID sets the "thread_id" field.
func (m *EmailMessageMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *EmailMessageMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *EmailMessageMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[emailmessage.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *EmailMessageMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *EmailMessageMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, emailmessage.FieldThreadID)
}

// SetSenderEmail sets the "sender_email" field.
func (m *EmailMessageMutation) SetSenderEmail(s string) {
	m.sender_email = &s
}

// SenderEmail returns the value of the "sender_email" field in the mutation.
func (m *EmailMessageMutation) SenderEmail() (r string, exists bool) {
	v := m.sender_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderEmail returns the old "sender_email" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldSenderEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderEmail: %w", err)
	}
	return oldValue.SenderEmail, nil
}

// ResetSenderEmail resets all changes to the "sender_email" field.
func (m *EmailMessageMutation) ResetSenderEmail() {
	m.sender_email = nil
}

// SetSenderName sets the "sender_name" field.
func (m *EmailMessageMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *EmailMessageMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldSenderName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ClearSenderName clears the value of the "sender_name" field.
func (m *EmailMessageMutation) ClearSenderName() {
	m.sender_name = nil
	m.clearedFields[emailmessage.FieldSenderName] = struct{}{}
}

// SenderNameCleared returns if the "sender_name" field was cleared in this mutation.
func (m *EmailMessageMutation) SenderNameCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldSenderName]
	return ok
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *EmailMessageMutation) ResetSenderName() {
	m.sender_name = nil
	delete(m.clearedFields, emailmessage.FieldSenderName)
}

// SetSubject sets the "subject" field.
func (m *EmailMessageMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EmailMessageMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *EmailMessageMutation) ResetSubject() {
	m.subject = nil
}

// SetBodyText sets the "body_text" field.
func (m *EmailMessageMutation) SetBodyText(s string) {
	m.body_text = &s
}

// BodyText returns the value of the "body_text" field in the mutation.
func (m *EmailMessageMutation) BodyText() (r string, exists bool) {
	v := m.body_text
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyText returns the old "body_text" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldBodyText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyText: %w", err)
	}
	return oldValue.BodyText, nil
}

// ResetBodyText resets all changes to the "body_text" field.
func (m *EmailMessageMutation) ResetBodyText() {
	m.body_text = nil
}

// SetBodyHTML sets the "body_html" field.
func (m *EmailMessageMutation) SetBodyHTML(s string) {
	m.body_html = &s
}

// BodyHTML returns the value of the "body_html" field in the mutation.
func (m *EmailMessageMutation) BodyHTML() (r string, exists bool) {
	v := m.body_html
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyHTML returns the old "body_html" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldBodyHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyHTML: %w", err)
	}
	return oldValue.BodyHTML, nil
}

// ResetBodyHTML resets all changes to the "body_html" field.
func (m *EmailMessageMutation) ResetBodyHTML() {
	m.body_html = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *EmailMessageMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *EmailMessageMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *EmailMessageMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *EmailMessageMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *EmailMessageMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *EmailMessageMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[emailmessage.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *EmailMessageMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *EmailMessageMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, emailmessage.FieldProcessedAt)
}

// SetHasAttachments sets the "has_attachments" field.
func (m *EmailMessageMutation) SetHasAttachments(b bool) {
	m.has_attachments = &b
}

// HasAttachments returns the value of the "has_attachments" field in the mutation.
func (m *EmailMessageMutation) HasAttachments() (r bool, exists bool) {
	v := m.has_attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldHasAttachments returns the old "has_attachments" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldHasAttachments(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasAttachments: %w", err)
	}
	return oldValue.HasAttachments, nil
}

// ResetHasAttachments resets all changes to the "has_attachments" field.
func (m *EmailMessageMutation) ResetHasAttachments() {
	m.has_attachments = nil
}

// SetAttachmentCount sets the "attachment_count" field.
func (m *EmailMessageMutation) SetAttachmentCount(i int) {
	m.attachment_count = &i
	m.addattachment_count = nil
}

// AttachmentCount returns the value of the "attachment_count" field in the mutation.
func (m *EmailMessageMutation) AttachmentCount() (r int, exists bool) {
	v := m.attachment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachmentCount returns the old "attachment_count" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldAttachmentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachmentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachmentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachmentCount: %w", err)
	}
	return oldValue.AttachmentCount, nil
}

// AddAttachmentCount adds i to the "attachment_count" field.
func (m *EmailMessageMutation) AddAttachmentCount(i int) {
	if m.addattachment_count != nil {
		*m.addattachment_count += i
	} else {
		m.addattachment_count = &i
	}
}

// AddedAttachmentCount returns the value that was added to the "attachment_count" field in this mutation.
func (m *EmailMessageMutation) AddedAttachmentCount() (r int, exists bool) {
	v := m.addattachment_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttachmentCount resets all changes to the "attachment_count" field.
func (m *EmailMessageMutation) ResetAttachmentCount() {
	m.attachment_count = nil
	m.addattachment_count = nil
}

// SetStatus sets the "status" field.
func (m *EmailMessageMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *EmailMessageMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EmailMessageMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *EmailMessageMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *EmailMessageMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the EmailMessage entity.
// If the EmailMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailMessageMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *EmailMessageMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[emailmessage.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *EmailMessageMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[emailmessage.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *EmailMessageMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, emailmessage.FieldErrorMessage)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *EmailMessageMutation) AddTaskIDs(ids ...uuid.UUID) {
	if m.tasks == nil {
		m.tasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *EmailMessageMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *EmailMessageMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *EmailMessageMutation) RemoveTaskIDs(ids ...uuid.UUID) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *EmailMessageMutation) RemovedTasksIDs() (ids []uuid.UUID) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *EmailMessageMutation) TasksIDs() (ids []uuid.UUID) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *EmailMessageMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddAdjuntoIDs adds the "adjuntos" edge to the Attachment entity by ids.
func (m *EmailMessageMutation) AddAdjuntoIDs(ids ...uuid.UUID) {
	if m.adjuntos == nil {
		m.adjuntos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.adjuntos[ids[i]] = struct{}{}
	}
}

// ClearAdjuntos clears the "adjuntos" edge to the Attachment entity.
func (m *EmailMessageMutation) ClearAdjuntos() {
	m.clearedadjuntos = true
}

// AdjuntosCleared reports if the "adjuntos" edge to the Attachment entity was cleared.
func (m *EmailMessageMutation) AdjuntosCleared() bool {
	return m.clearedadjuntos
}

// RemoveAdjuntoIDs removes the "adjuntos" edge to the Attachment entity by IDs.
func (m *EmailMessageMutation) RemoveAdjuntoIDs(ids ...uuid.UUID) {
	if m.removedadjuntos == nil {
		m.removedadjuntos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.adjuntos, ids[i])
		m.removedadjuntos[ids[i]] = struct{}{}
	}
}

// RemovedAdjuntos returns the removed IDs of the "adjuntos" edge to the Attachment entity.
func (m *EmailMessageMutation) RemovedAdjuntosIDs() (ids []uuid.UUID) {
	for id := range m.removedadjuntos {
		ids = append(ids, id)
	}
	return
}

// AdjuntosIDs returns the "adjuntos" edge IDs in the mutation.
func (m *EmailMessageMutation) AdjuntosIDs() (ids []uuid.UUID) {
	for id := range m.adjuntos {
		ids = append(ids, id)
	}
	return
}

// ResetAdjuntos resets all changes to the "adjuntos" edge.
func (m *EmailMessageMutation) ResetAdjuntos() {
	m.adjuntos = nil
	m.clearedadjuntos = false
	m.removedadjuntos = nil
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by ids.
func (m *EmailMessageMutation) AddAlertIDs(ids ...uuid.UUID) {
	if m.alerts == nil {
		m.alerts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the Alert entity.
func (m *EmailMessageMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the Alert entity was cleared.
func (m *EmailMessageMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the Alert entity by IDs.
func (m *EmailMessageMutation) RemoveAlertIDs(ids ...uuid.UUID) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the Alert entity.
func (m *EmailMessageMutation) RemovedAlertsIDs() (ids []uuid.UUID) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *EmailMessageMutation) AlertsIDs() (ids []uuid.UUID) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *EmailMessageMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// Where appends a list predicates to the EmailMessageMutation builder.
func (m *EmailMessageMutation) Where(ps ...predicate.EmailMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailMessage).
func (m *EmailMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailMessageMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.message_id != nil {
		fields = append(fields, emailmessage.FieldMessageID)
	}
	if m.thread_id != nil {
		fields = append(fields, emailmessage.FieldThreadID)
	}
	if m.sender_email != nil {
		fields = append(fields, emailmessage.FieldSenderEmail)
	}
	if m.sender_name != nil {
		fields = append(fields, emailmessage.FieldSenderName)
	}
	if m.subject != nil {
		fields = append(fields, emailmessage.FieldSubject)
	}
	if m.body_text != nil {
		fields = append(fields, emailmessage.FieldBodyText)
	}
	if m.body_html != nil {
		fields = append(fields, emailmessage.FieldBodyHTML)
	}
	if m.received_at != nil {
		fields = append(fields, emailmessage.FieldReceivedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, emailmessage.FieldProcessedAt)
	}
	if m.has_attachments != nil {
		fields = append(fields, emailmessage.FieldHasAttachments)
	}
	if m.attachment_count != nil {
		fields = append(fields, emailmessage.FieldAttachmentCount)
	}
	if m.status != nil {
		fields = append(fields, emailmessage.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, emailmessage.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailmessage.FieldMessageID:
		return m.MessageID()
	case emailmessage.FieldThreadID:
		return m.ThreadID()
	case emailmessage.FieldSenderEmail:
		return m.SenderEmail()
	case emailmessage.FieldSenderName:
		return m.SenderName()
	case emailmessage.FieldSubject:
		return m.Subject()
	case emailmessage.FieldBodyText:
		return m.BodyText()
	case emailmessage.FieldBodyHTML:
		return m.BodyHTML()
	case emailmessage.FieldReceivedAt:
		return m.ReceivedAt()
	case emailmessage.FieldProcessedAt:
		return m.ProcessedAt()
	case emailmessage.FieldHasAttachments:
		return m.HasAttachments()
	case emailmessage.FieldAttachmentCount:
		return m.AttachmentCount()
	case emailmessage.FieldStatus:
		return m.Status()
	case emailmessage.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailmessage.FieldMessageID:
		return m.OldMessageID(ctx)
	case emailmessage.FieldThreadID:
		return m.OldThreadID(ctx)
	case emailmessage.FieldSenderEmail:
		return m.OldSenderEmail(ctx)
	case emailmessage.FieldSenderName:
		return m.OldSenderName(ctx)
	case emailmessage.FieldSubject:
		return m.OldSubject(ctx)
	case emailmessage.FieldBodyText:
		return m.OldBodyText(ctx)
	case emailmessage.FieldBodyHTML:
		return m.OldBodyHTML(ctx)
	case emailmessage.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case emailmessage.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case emailmessage.FieldHasAttachments:
		return m.OldHasAttachments(ctx)
	case emailmessage.FieldAttachmentCount:
		return m.OldAttachmentCount(ctx)
	case emailmessage.FieldStatus:
		return m.OldStatus(ctx)
	case emailmessage.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown EmailMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailmessage.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case emailmessage.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case emailmessage.FieldSenderEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderEmail(v)
		return nil
	case emailmessage.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case emailmessage.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case emailmessage.FieldBodyText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyText(v)
		return nil
	case emailmessage.FieldBodyHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyHTML(v)
		return nil
	case emailmessage.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case emailmessage.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case emailmessage.FieldHasAttachments:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasAttachments(v)
		return nil
	case emailmessage.FieldAttachmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachmentCount(v)
		return nil
	case emailmessage.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case emailmessage.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown EmailMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailMessageMutation) AddedFields() []string {
	var fields []string
	if m.addattachment_count != nil {
		fields = append(fields, emailmessage.FieldAttachmentCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case emailmessage.FieldAttachmentCount:
		return m.AddedAttachmentCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case emailmessage.FieldAttachmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttachmentCount(v)
		return nil
	}
	return fmt.Errorf("unknown EmailMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(emailmessage.FieldThreadID) {
		fields = append(fields, emailmessage.FieldThreadID)
	}
	if m.FieldCleared(emailmessage.FieldSenderName) {
		fields = append(fields, emailmessage.FieldSenderName)
	}
	if m.FieldCleared(emailmessage.FieldProcessedAt) {
		fields = append(fields, emailmessage.FieldProcessedAt)
	}
	if m.FieldCleared(emailmessage.FieldErrorMessage) {
		fields = append(fields, emailmessage.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailMessageMutation) ClearField(name string) error {
	switch name {
	case emailmessage.FieldThreadID:
		m.ClearThreadID()
		return nil
	case emailmessage.FieldSenderName:
		m.ClearSenderName()
		return nil
	case emailmessage.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case emailmessage.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown EmailMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailMessageMutation) ResetField(name string) error {
	switch name {
	case emailmessage.FieldMessageID:
		m.ResetMessageID()
		return nil
	case emailmessage.FieldThreadID:
		m.ResetThreadID()
		return nil
	case emailmessage.FieldSenderEmail:
		m.ResetSenderEmail()
		return nil
	case emailmessage.FieldSenderName:
		m.ResetSenderName()
		return nil
	case emailmessage.FieldSubject:
		m.ResetSubject()
		return nil
	case emailmessage.FieldBodyText:
		m.ResetBodyText()
		return nil
	case emailmessage.FieldBodyHTML:
		m.ResetBodyHTML()
		return nil
	case emailmessage.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case emailmessage.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case emailmessage.FieldHasAttachments:
		m.ResetHasAttachments()
		return nil
	case emailmessage.FieldAttachmentCount:
		m.ResetAttachmentCount()
		return nil
	case emailmessage.FieldStatus:
		m.ResetStatus()
		return nil
	case emailmessage.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown EmailMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.tasks != nil {
		edges = append(edges, emailmessage.EdgeTasks)
	}
	if m.adjuntos != nil {
		edges = append(edges, emailmessage.EdgeAdjuntos)
	}
	if m.alerts != nil {
		edges = append(edges, emailmessage.EdgeAlerts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case emailmessage.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case emailmessage.EdgeAdjuntos:
		ids := make([]ent.Value, 0, len(m.adjuntos))
		for id := range m.adjuntos {
			ids = append(ids, id)
		}
		return ids
	case emailmessage.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtasks != nil {
		edges = append(edges, emailmessage.EdgeTasks)
	}
	if m.removedadjuntos != nil {
		edges = append(edges, emailmessage.EdgeAdjuntos)
	}
	if m.removedalerts != nil {
		edges = append(edges, emailmessage.EdgeAlerts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailMessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case emailmessage.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case emailmessage.EdgeAdjuntos:
		ids := make([]ent.Value, 0, len(m.removedadjuntos))
		for id := range m.removedadjuntos {
			ids = append(ids, id)
		}
		return ids
	case emailmessage.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtasks {
		edges = append(edges, emailmessage.EdgeTasks)
	}
	if m.clearedadjuntos {
		edges = append(edges, emailmessage.EdgeAdjuntos)
	}
	if m.clearedalerts {
		edges = append(edges, emailmessage.EdgeAlerts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case emailmessage.EdgeTasks:
		return m.clearedtasks
	case emailmessage.EdgeAdjuntos:
		return m.clearedadjuntos
	case emailmessage.EdgeAlerts:
		return m.clearedalerts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailMessageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailMessageMutation) ResetEdge(name string) error {
	switch name {
	case emailmessage.EdgeTasks:
		m.ResetTasks()
		return nil
	case emailmessage.EdgeAdjuntos:
		m.ResetAdjuntos()
		return nil
	case emailmessage.EdgeAlerts:
		m.ResetAlerts()
		return nil
	}
	return fmt.Errorf("unknown EmailMessage edge %s", name)
}

// LearnedRuleMutation represents an operation that mutates the LearnedRule nodes in the graph.
type LearnedRuleMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	rule_name          *string
	sender_email       *string
	urgency            *string
	confidence         *float64
	addconfidence      *float64
	times_triggered    *int
	addtimes_triggered *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*LearnedRule, error)
	predicates         []predicate.LearnedRule
}

var _ ent.Mutation = (*LearnedRuleMutation)(nil)

// learnedruleOption allows management of the mutation configuration using functional options.
type learnedruleOption func(*LearnedRuleMutation)

// newLearnedRuleMutation creates new mutation for the LearnedRule entity.
func newLearnedRuleMutation(c config, op Op, opts ...learnedruleOption) *LearnedRuleMutation {
	m := &LearnedRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnedRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnedRuleID sets the ID field of the mutation.
func withLearnedRuleID(id uuid.UUID) learnedruleOption {
	return func(m *LearnedRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnedRule
		)
		m.oldValue = func(ctx context.Context) (*LearnedRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnedRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnedRule sets the old LearnedRule of the mutation.
func withLearnedRule(node *LearnedRule) learnedruleOption {
	return func(m *LearnedRuleMutation) {
		m.oldValue = func(context.Context) (*LearnedRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnedRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnedRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LearnedRule entities.
func (m *LearnedRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnedRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnedRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnedRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleName sets the "rule_name" field.
func (m *LearnedRuleMutation) SetRuleName(s string) {
	m.rule_name = &s
}

// RuleName returns the value of the "rule_name" field in the mutation.
func (m *LearnedRuleMutation) RuleName() (r string, exists bool) {
	v := m.rule_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleName returns the old "rule_name" field's value of the LearnedRule entity.
// If the LearnedRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedRuleMutation) OldRuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleName: %w", err)
	}
	return oldValue.RuleName, nil
}

// ResetRuleName resets all changes to the "rule_name" field.
func (m *LearnedRuleMutation) ResetRuleName() {
	m.rule_name = nil
}

// SetSenderEmail sets the "sender_email" field.
func (m *LearnedRuleMutation) SetSenderEmail(s string) {
	m.sender_email = &s
}

// SenderEmail returns the value of the "sender_email" field in the mutation.
func (m *LearnedRuleMutation) SenderEmail() (r string, exists bool) {
	v := m.sender_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderEmail returns the old "sender_email" field's value of the LearnedRule entity.
// If the LearnedRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedRuleMutation) OldSenderEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderEmail: %w", err)
	}
	return oldValue.SenderEmail, nil
}

// ResetSenderEmail resets all changes to the "sender_email" field.
func (m *LearnedRuleMutation) ResetSenderEmail() {
	m.sender_email = nil
}

// SetUrgency sets the "urgency" field.
func (m *LearnedRuleMutation) SetUrgency(s string) {
	m.urgency = &s
}

// Urgency returns the value of the "urgency" field in the mutation.
func (m *LearnedRuleMutation) Urgency() (r string, exists bool) {
	v := m.urgency
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgency returns the old "urgency" field's value of the LearnedRule entity.
// If the LearnedRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedRuleMutation) OldUrgency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgency: %w", err)
	}
	return oldValue.Urgency, nil
}

// ResetUrgency resets all changes to the "urgency" field.
func (m *LearnedRuleMutation) ResetUrgency() {
	m.urgency = nil
}

// SetConfidence sets the "confidence" field.
func (m *LearnedRuleMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *LearnedRuleMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the LearnedRule entity.
// If the LearnedRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedRuleMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *LearnedRuleMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *LearnedRuleMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *LearnedRuleMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTimesTriggered sets the "times_triggered" field.
func (m *LearnedRuleMutation) SetTimesTriggered(i int) {
	m.times_triggered = &i
	m.addtimes_triggered = nil
}

// TimesTriggered returns the value of the "times_triggered" field in the mutation.
func (m *LearnedRuleMutation) TimesTriggered() (r int, exists bool) {
	v := m.times_triggered
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesTriggered returns the old "times_triggered" field's value of the LearnedRule entity.
// If the LearnedRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedRuleMutation) OldTimesTriggered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesTriggered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesTriggered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesTriggered: %w", err)
	}
	return oldValue.TimesTriggered, nil
}

// AddTimesTriggered adds i to the "times_triggered" field.
func (m *LearnedRuleMutation) AddTimesTriggered(i int) {
	if m.addtimes_triggered != nil {
		*m.addtimes_triggered += i
	} else {
		m.addtimes_triggered = &i
	}
}

// AddedTimesTriggered returns the value that was added to the "times_triggered" field in this mutation.
func (m *LearnedRuleMutation) AddedTimesTriggered() (r int, exists bool) {
	v := m.addtimes_triggered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesTriggered resets all changes to the "times_triggered" field.
func (m *LearnedRuleMutation) ResetTimesTriggered() {
	m.times_triggered = nil
	m.addtimes_triggered = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnedRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnedRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LearnedRule entity.
// If the LearnedRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnedRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LearnedRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LearnedRuleMutation builder.
func (m *LearnedRuleMutation) Where(ps ...predicate.LearnedRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnedRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnedRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnedRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnedRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnedRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnedRule).
func (m *LearnedRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnedRuleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.rule_name != nil {
		fields = append(fields, learnedrule.FieldRuleName)
	}
	if m.sender_email != nil {
		fields = append(fields, learnedrule.FieldSenderEmail)
	}
	if m.urgency != nil {
		fields = append(fields, learnedrule.FieldUrgency)
	}
	if m.confidence != nil {
		fields = append(fields, learnedrule.FieldConfidence)
	}
	if m.times_triggered != nil {
		fields = append(fields, learnedrule.FieldTimesTriggered)
	}
	if m.created_at != nil {
		fields = append(fields, learnedrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnedRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnedrule.FieldRuleName:
		return m.RuleName()
	case learnedrule.FieldSenderEmail:
		return m.SenderEmail()
	case learnedrule.FieldUrgency:
		return m.Urgency()
	case learnedrule.FieldConfidence:
		return m.Confidence()
	case learnedrule.FieldTimesTriggered:
		return m.TimesTriggered()
	case learnedrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnedRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnedrule.FieldRuleName:
		return m.OldRuleName(ctx)
	case learnedrule.FieldSenderEmail:
		return m.OldSenderEmail(ctx)
	case learnedrule.FieldUrgency:
		return m.OldUrgency(ctx)
	case learnedrule.FieldConfidence:
		return m.OldConfidence(ctx)
	case learnedrule.FieldTimesTriggered:
		return m.OldTimesTriggered(ctx)
	case learnedrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnedRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnedRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnedrule.FieldRuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleName(v)
		return nil
	case learnedrule.FieldSenderEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderEmail(v)
		return nil
	case learnedrule.FieldUrgency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgency(v)
		return nil
	case learnedrule.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case learnedrule.FieldTimesTriggered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesTriggered(v)
		return nil
	case learnedrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnedRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnedRuleMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, learnedrule.FieldConfidence)
	}
	if m.addtimes_triggered != nil {
		fields = append(fields, learnedrule.FieldTimesTriggered)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnedRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnedrule.FieldConfidence:
		return m.AddedConfidence()
	case learnedrule.FieldTimesTriggered:
		return m.AddedTimesTriggered()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnedRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnedrule.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case learnedrule.FieldTimesTriggered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesTriggered(v)
		return nil
	}
	return fmt.Errorf("unknown LearnedRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnedRuleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnedRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnedRuleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LearnedRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnedRuleMutation) ResetField(name string) error {
	switch name {
	case learnedrule.FieldRuleName:
		m.ResetRuleName()
		return nil
	case learnedrule.FieldSenderEmail:
		m.ResetSenderEmail()
		return nil
	case learnedrule.FieldUrgency:
		m.ResetUrgency()
		return nil
	case learnedrule.FieldConfidence:
		m.ResetConfidence()
		return nil
	case learnedrule.FieldTimesTriggered:
		m.ResetTimesTriggered()
		return nil
	case learnedrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnedRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnedRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnedRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnedRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnedRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnedRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnedRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnedRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnedRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnedRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnedRule edge %s", name)
}

// SenderProfileMutation represents an operation that mutates the SenderProfile nodes in the graph.
type SenderProfileMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	email              *string
	domain             *string
	category           *string
	typical_urgency    *string
	typical_intent     *string
	emails_analyzed    *int
	addemails_analyzed *int
	confidence         *float64
	addconfidence      *float64
	last_seen          *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SenderProfile, error)
	predicates         []predicate.SenderProfile
}

var _ ent.Mutation = (*SenderProfileMutation)(nil)

// senderprofileOption allows management of the mutation configuration using functional options.
type senderprofileOption func(*SenderProfileMutation)

// newSenderProfileMutation creates new mutation for the SenderProfile entity.
func newSenderProfileMutation(c config, op Op, opts ...senderprofileOption) *SenderProfileMutation {
	m := &SenderProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeSenderProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSenderProfileID sets the ID field of the mutation.
func withSenderProfileID(id uuid.UUID) senderprofileOption {
	return func(m *SenderProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *SenderProfile
		)
		m.oldValue = func(ctx context.Context) (*SenderProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SenderProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSenderProfile sets the old SenderProfile of the mutation.
func withSenderProfile(node *SenderProfile) senderprofileOption {
	return func(m *SenderProfileMutation) {
		m.oldValue = func(context.Context) (*SenderProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SenderProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SenderProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SenderProfile entities.
func (m *SenderProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SenderProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SenderProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SenderProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *SenderProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *SenderProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the SenderProfile entity.
// If the SenderProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderProfileMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *SenderProfileMutation) ResetEmail() {
	m.email = nil
}

// SetDomain sets the "domain" field.
func (m *SenderProfileMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *SenderProfileMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the SenderProfile entity.
// If the SenderProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderProfileMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *SenderProfileMutation) ResetDomain() {
	m.domain = nil
}

// SetCategory sets the "category" field.
func (m *SenderProfileMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *SenderProfileMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the SenderProfile entity.
// If the SenderProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderProfileMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *SenderProfileMutation) ResetCategory() {
	m.category = nil
}

// SetTypicalUrgency sets the "typical_urgency" field.
func (m *SenderProfileMutation) SetTypicalUrgency(s string) {
	m.typical_urgency = &s
}

// TypicalUrgency returns the value of the "typical_urgency" field in the mutation.
func (m *SenderProfileMutation) TypicalUrgency() (r string, exists bool) {
	v := m.typical_urgency
	if v == nil {
		return
	}
	return *v, true
}

// OldTypicalUrgency returns the old "typical_urgency" field's value of the SenderProfile entity.
// If the SenderProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderProfileMutation) OldTypicalUrgency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypicalUrgency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypicalUrgency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypicalUrgency: %w", err)
	}
	return oldValue.TypicalUrgency, nil
}

// ResetTypicalUrgency resets all changes to the "typical_urgency" field.
func (m *SenderProfileMutation) ResetTypicalUrgency() {
	m.typical_urgency = nil
}

// SetTypicalIntent sets the "typical_intent" field.
func (m *SenderProfileMutation) SetTypicalIntent(s string) {
	m.typical_intent = &s
}

// TypicalIntent returns the value of the "typical_intent" field in the mutation.
func (m *SenderProfileMutation) TypicalIntent() (r string, exists bool) {
	v := m.typical_intent
	if v == nil {
		return
	}
	return *v, true
}

// OldTypicalIntent returns the old "typical_intent" field's value of the SenderProfile entity.
// If the SenderProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderProfileMutation) OldTypicalIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypicalIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypicalIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypicalIntent: %w", err)
	}
	return oldValue.TypicalIntent, nil
}

// ResetTypicalIntent resets all changes to the "typical_intent" field.
func (m *SenderProfileMutation) ResetTypicalIntent() {
	m.typical_intent = nil
}

// SetEmailsAnalyzed sets the "emails_analyzed" field.
func (m *SenderProfileMutation) SetEmailsAnalyzed(i int) {
	m.emails_analyzed = &i
	m.addemails_analyzed = nil
}

// EmailsAnalyzed returns the value of the "emails_analyzed" field in the mutation.
func (m *SenderProfileMutation) EmailsAnalyzed() (r int, exists bool) {
	v := m.emails_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailsAnalyzed returns the old "emails_analyzed" field's value of the SenderProfile entity.
// If the SenderProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderProfileMutation) OldEmailsAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailsAnalyzed: %w", err)
	}
	return oldValue.EmailsAnalyzed, nil
}

// AddEmailsAnalyzed adds i to the "emails_analyzed" field.
func (m *SenderProfileMutation) AddEmailsAnalyzed(i int) {
	if m.addemails_analyzed != nil {
		*m.addemails_analyzed += i
	} else {
		m.addemails_analyzed = &i
	}
}

// AddedEmailsAnalyzed returns the value that was added to the "emails_analyzed" field in this mutation.
func (m *SenderProfileMutation) AddedEmailsAnalyzed() (r int, exists bool) {
	v := m.addemails_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetEmailsAnalyzed resets all changes to the "emails_analyzed" field.
func (m *SenderProfileMutation) ResetEmailsAnalyzed() {
	m.emails_analyzed = nil
	m.addemails_analyzed = nil
}

// SetConfidence sets the "confidence" field.
func (m *SenderProfileMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *SenderProfileMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the SenderProfile entity.
// If the SenderProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderProfileMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *SenderProfileMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *SenderProfileMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *SenderProfileMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *SenderProfileMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *SenderProfileMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the SenderProfile entity.
// If the SenderProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SenderProfileMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *SenderProfileMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the SenderProfileMutation builder.
func (m *SenderProfileMutation) Where(ps ...predicate.SenderProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SenderProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SenderProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SenderProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SenderProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SenderProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SenderProfile).
func (m *SenderProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SenderProfileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.email != nil {
		fields = append(fields, senderprofile.FieldEmail)
	}
	if m.domain != nil {
		fields = append(fields, senderprofile.FieldDomain)
	}
	if m.category != nil {
		fields = append(fields, senderprofile.FieldCategory)
	}
	if m.typical_urgency != nil {
		fields = append(fields, senderprofile.FieldTypicalUrgency)
	}
	if m.typical_intent != nil {
		fields = append(fields, senderprofile.FieldTypicalIntent)
	}
	if m.emails_analyzed != nil {
		fields = append(fields, senderprofile.FieldEmailsAnalyzed)
	}
	if m.confidence != nil {
		fields = append(fields, senderprofile.FieldConfidence)
	}
	if m.last_seen != nil {
		fields = append(fields, senderprofile.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SenderProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case senderprofile.FieldEmail:
		return m.Email()
	case senderprofile.FieldDomain:
		return m.Domain()
	case senderprofile.FieldCategory:
		return m.Category()
	case senderprofile.FieldTypicalUrgency:
		return m.TypicalUrgency()
	case senderprofile.FieldTypicalIntent:
		return m.TypicalIntent()
	case senderprofile.FieldEmailsAnalyzed:
		return m.EmailsAnalyzed()
	case senderprofile.FieldConfidence:
		return m.Confidence()
	case senderprofile.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SenderProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case senderprofile.FieldEmail:
		return m.OldEmail(ctx)
	case senderprofile.FieldDomain:
		return m.OldDomain(ctx)
	case senderprofile.FieldCategory:
		return m.OldCategory(ctx)
	case senderprofile.FieldTypicalUrgency:
		return m.OldTypicalUrgency(ctx)
	case senderprofile.FieldTypicalIntent:
		return m.OldTypicalIntent(ctx)
	case senderprofile.FieldEmailsAnalyzed:
		return m.OldEmailsAnalyzed(ctx)
	case senderprofile.FieldConfidence:
		return m.OldConfidence(ctx)
	case senderprofile.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown SenderProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SenderProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case senderprofile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case senderprofile.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case senderprofile.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case senderprofile.FieldTypicalUrgency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypicalUrgency(v)
		return nil
	case senderprofile.FieldTypicalIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypicalIntent(v)
		return nil
	case senderprofile.FieldEmailsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailsAnalyzed(v)
		return nil
	case senderprofile.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case senderprofile.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown SenderProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SenderProfileMutation) AddedFields() []string {
	var fields []string
	if m.addemails_analyzed != nil {
		fields = append(fields, senderprofile.FieldEmailsAnalyzed)
	}
	if m.addconfidence != nil {
		fields = append(fields, senderprofile.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SenderProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case senderprofile.FieldEmailsAnalyzed:
		return m.AddedEmailsAnalyzed()
	case senderprofile.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SenderProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case senderprofile.FieldEmailsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmailsAnalyzed(v)
		return nil
	case senderprofile.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown SenderProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SenderProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SenderProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SenderProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SenderProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SenderProfileMutation) ResetField(name string) error {
	switch name {
	case senderprofile.FieldEmail:
		m.ResetEmail()
		return nil
	case senderprofile.FieldDomain:
		m.ResetDomain()
		return nil
	case senderprofile.FieldCategory:
		m.ResetCategory()
		return nil
	case senderprofile.FieldTypicalUrgency:
		m.ResetTypicalUrgency()
		return nil
	case senderprofile.FieldTypicalIntent:
		m.ResetTypicalIntent()
		return nil
	case senderprofile.FieldEmailsAnalyzed:
		m.ResetEmailsAnalyzed()
		return nil
	case senderprofile.FieldConfidence:
		m.ResetConfidence()
		return nil
	case senderprofile.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown SenderProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SenderProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SenderProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SenderProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SenderProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SenderProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SenderProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SenderProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SenderProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SenderProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SenderProfile edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	codigo_cobertor  *string
	cuartel          *string
	hileras          *int
	addhileras       *int
	largo_metros     *float64
	addlargo_metros  *float64
	prioridad        *string
	estado           *string
	descripcion      *string
	notas            *string
	origen           *string
	urgente          *bool
	fecha_solicitud  *time.Time
	fecha_completada *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	email            *uuid.UUID
	clearedemail     bool
	alerts           map[uuid.UUID]struct{}
	removedalerts    map[uuid.UUID]struct{}
	clearedalerts    bool
	done             bool
	oldValue         func(context.Context) (*Task, error)
	predicates       []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id uuid.UUID) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmailID sets the "email_id" field.
func (m *TaskMutation) SetEmailID(u uuid.UUID) {
	m.email = &u
}

// EmailID returns the value of the "email_id" field in the mutation.
func (m *TaskMutation) EmailID() (r uuid.UUID, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailID returns the old "email_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEmailID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailID: %w", err)
	}
	return oldValue.EmailID, nil
}

// ResetEmailID resets all changes to the "email_id" field.
func (m *TaskMutation) ResetEmailID() {
	m.email = nil
}

// SetCodigoCobertor sets the "codigo_cobertor" field.
func (m *TaskMutation) SetCodigoCobertor(s string) {
	m.codigo_cobertor = &s
}

// CodigoCobertor returns the value of the "codigo_cobertor" field in the mutation.
func (m *TaskMutation) CodigoCobertor() (r string, exists bool) {
	v := m.codigo_cobertor
	if v == nil {
		return
	}
	return *v, true
}

// OldCodigoCobertor returns the old "codigo_cobertor" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCodigoCobertor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodigoCobertor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodigoCobertor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodigoCobertor: %w", err)
	}
	return oldValue.CodigoCobertor, nil
}

// ClearCodigoCobertor clears the value of the "codigo_cobertor" field.
func (m *TaskMutation) ClearCodigoCobertor() {
	m.codigo_cobertor = nil
	m.clearedFields[task.FieldCodigoCobertor] = struct{}{}
}

// CodigoCobertorCleared returns if the "codigo_cobertor" field was cleared in this mutation.
func (m *TaskMutation) CodigoCobertorCleared() bool {
	_, ok := m.clearedFields[task.FieldCodigoCobertor]
	return ok
}

// ResetCodigoCobertor resets all changes to the "codigo_cobertor" field.
func (m *TaskMutation) ResetCodigoCobertor() {
	m.codigo_cobertor = nil
	delete(m.clearedFields, task.FieldCodigoCobertor)
}

// SetCuartel sets the "cuartel" field.
func (m *TaskMutation) SetCuartel(s string) {
	m.cuartel = &s
}

// Cuartel returns the value of the "cuartel" field in the mutation.
func (m *TaskMutation) Cuartel() (r string, exists bool) {
	v := m.cuartel
	if v == nil {
		return
	}
	return *v, true
}

// OldCuartel returns the old "cuartel" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCuartel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCuartel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCuartel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCuartel: %w", err)
	}
	return oldValue.Cuartel, nil
}

// ClearCuartel clears the value of the "cuartel" field.
func (m *TaskMutation) ClearCuartel() {
	m.cuartel = nil
	m.clearedFields[task.FieldCuartel] = struct{}{}
}

// CuartelCleared returns if the "cuartel" field was cleared in this mutation.
func (m *TaskMutation) CuartelCleared() bool {
	_, ok := m.clearedFields[task.FieldCuartel]
	return ok
}

// ResetCuartel resets all changes to the "cuartel" field.
func (m *TaskMutation) ResetCuartel() {
	m.cuartel = nil
	delete(m.clearedFields, task.FieldCuartel)
}

// SetHileras sets the "hileras" field.
func (m *TaskMutation) SetHileras(i int) {
	m.hileras = &i
	m.addhileras = nil
}

// Hileras returns the value of the "hileras" field in the mutation.
func (m *TaskMutation) Hileras() (r int, exists bool) {
	v := m.hileras
	if v == nil {
		return
	}
	return *v, true
}

// OldHileras returns the old "hileras" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHileras(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHileras is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHileras requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHileras: %w", err)
	}
	return oldValue.Hileras, nil
}

// AddHileras adds i to the "hileras" field.
func (m *TaskMutation) AddHileras(i int) {
	if m.addhileras != nil {
		*m.addhileras += i
	} else {
		m.addhileras = &i
	}
}

// AddedHileras returns the value that was added to the "hileras" field in this mutation.
func (m *TaskMutation) AddedHileras() (r int, exists bool) {
	v := m.addhileras
	if v == nil {
		return
	}
	return *v, true
}

// ClearHileras clears the value of the "hileras" field.
func (m *TaskMutation) ClearHileras() {
	m.hileras = nil
	m.addhileras = nil
	m.clearedFields[task.FieldHileras] = struct{}{}
}

// HilerasCleared returns if the "hileras" field was cleared in this mutation.
func (m *TaskMutation) HilerasCleared() bool {
	_, ok := m.clearedFields[task.FieldHileras]
	return ok
}

// ResetHileras resets all changes to the "hileras" field.
func (m *TaskMutation) ResetHileras() {
	m.hileras = nil
	m.addhileras = nil
	delete(m.clearedFields, task.FieldHileras)
}

// SetLargoMetros sets the "largo_metros" field.
func (m *TaskMutation) SetLargoMetros(f float64) {
	m.largo_metros = &f
	m.addlargo_metros = nil
}

// LargoMetros returns the value of the "largo_metros" field in the mutation.
func (m *TaskMutation) LargoMetros() (r float64, exists bool) {
	v := m.largo_metros
	if v == nil {
		return
	}
	return *v, true
}

// OldLargoMetros returns the old "largo_metros" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLargoMetros(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLargoMetros is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLargoMetros requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLargoMetros: %w", err)
	}
	return oldValue.LargoMetros, nil
}

// AddLargoMetros adds f to the "largo_metros" field.
func (m *TaskMutation) AddLargoMetros(f float64) {
	if m.addlargo_metros != nil {
		*m.addlargo_metros += f
	} else {
		m.addlargo_metros = &f
	}
}

// AddedLargoMetros returns the value that was added to the "largo_metros" field in this mutation.
func (m *TaskMutation) AddedLargoMetros() (r float64, exists bool) {
	v := m.addlargo_metros
	if v == nil {
		return
	}
	return *v, true
}

// ClearLargoMetros clears the value of the "largo_metros" field.
func (m *TaskMutation) ClearLargoMetros() {
	m.largo_metros = nil
	m.addlargo_metros = nil
	m.clearedFields[task.FieldLargoMetros] = struct{}{}
}

// LargoMetrosCleared returns if the "largo_metros" field was cleared in this mutation.
func (m *TaskMutation) LargoMetrosCleared() bool {
	_, ok := m.clearedFields[task.FieldLargoMetros]
	return ok
}

// ResetLargoMetros resets all changes to the "largo_metros" field.
func (m *TaskMutation) ResetLargoMetros() {
	m.largo_metros = nil
	m.addlargo_metros = nil
	delete(m.clearedFields, task.FieldLargoMetros)
}

// SetPrioridad sets the "prioridad" field.
func (m *TaskMutation) SetPrioridad(s string) {
	m.prioridad = &s
}

// Prioridad returns the value of the "prioridad" field in the mutation.
func (m *TaskMutation) Prioridad() (r string, exists bool) {
	v := m.prioridad
	if v == nil {
		return
	}
	return *v, true
}

// OldPrioridad returns the old "prioridad" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrioridad(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrioridad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrioridad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrioridad: %w", err)
	}
	return oldValue.Prioridad, nil
}

// ResetPrioridad resets all changes to the "prioridad" field.
func (m *TaskMutation) ResetPrioridad() {
	m.prioridad = nil
}

// SetEstado sets the "estado" field.
func (m *TaskMutation) SetEstado(s string) {
	m.estado = &s
}

// Estado returns the value of the "estado" field in the mutation.
func (m *TaskMutation) Estado() (r string, exists bool) {
	v := m.estado
	if v == nil {
		return
	}
	return *v, true
}

// OldEstado returns the old "estado" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstado(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstado: %w", err)
	}
	return oldValue.Estado, nil
}

// ResetEstado resets all changes to the "estado" field.
func (m *TaskMutation) ResetEstado() {
	m.estado = nil
}

// SetDescripcion sets the "descripcion" field.
func (m *TaskMutation) SetDescripcion(s string) {
	m.descripcion = &s
}

// Descripcion returns the value of the "descripcion" field in the mutation.
func (m *TaskMutation) Descripcion() (r string, exists bool) {
	v := m.descripcion
	if v == nil {
		return
	}
	return *v, true
}

// OldDescripcion returns the old "descripcion" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescripcion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescripcion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescripcion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescripcion: %w", err)
	}
	return oldValue.Descripcion, nil
}

// ClearDescripcion clears the value of the "descripcion" field.
func (m *TaskMutation) ClearDescripcion() {
	m.descripcion = nil
	m.clearedFields[task.FieldDescripcion] = struct{}{}
}

// DescripcionCleared returns if the "descripcion" field was cleared in this mutation.
func (m *TaskMutation) DescripcionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescripcion]
	return ok
}

// ResetDescripcion resets all changes to the "descripcion" field.
func (m *TaskMutation) ResetDescripcion() {
	m.descripcion = nil
	delete(m.clearedFields, task.FieldDescripcion)
}

// SetNotas sets the "notas" field.
func (m *TaskMutation) SetNotas(s string) {
	m.notas = &s
}

// Notas returns the value of the "notas" field in the mutation.
func (m *TaskMutation) Notas() (r string, exists bool) {
	v := m.notas
	if v == nil {
		return
	}
	return *v, true
}

// OldNotas returns the old "notas" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldNotas(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotas: %w", err)
	}
	return oldValue.Notas, nil
}

// ClearNotas clears the value of the "notas" field.
func (m *TaskMutation) ClearNotas() {
	m.notas = nil
	m.clearedFields[task.FieldNotas] = struct{}{}
}

// NotasCleared returns if the "notas" field was cleared in this mutation.
func (m *TaskMutation) NotasCleared() bool {
	_, ok := m.clearedFields[task.FieldNotas]
	return ok
}

// ResetNotas resets all changes to the "notas" field.
func (m *TaskMutation) ResetNotas() {
	m.notas = nil
	delete(m.clearedFields, task.FieldNotas)
}

// SetOrigen sets the "origen" field.
func (m *TaskMutation) SetOrigen(s string) {
	m.origen = &s
}

// Origen returns the value of the "origen" field in the mutation.
func (m *TaskMutation) Origen() (r string, exists bool) {
	v := m.origen
	if v == nil {
		return
	}
	return *v, true
}

// OldOrigen returns the old "origen" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOrigen(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrigen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrigen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrigen: %w", err)
	}
	return oldValue.Origen, nil
}

// ResetOrigen resets all changes to the "origen" field.
func (m *TaskMutation) ResetOrigen() {
	m.origen = nil
}

// SetUrgente sets the "urgente" field.
func (m *TaskMutation) SetUrgente(b bool) {
	m.urgente = &b
}

// Urgente returns the value of the "urgente" field in the mutation.
func (m *TaskMutation) Urgente() (r bool, exists bool) {
	v := m.urgente
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgente returns the old "urgente" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUrgente(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgente is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgente requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgente: %w", err)
	}
	return oldValue.Urgente, nil
}

// ResetUrgente resets all changes to the "urgente" field.
func (m *TaskMutation) ResetUrgente() {
	m.urgente = nil
}

// SetFechaSolicitud sets the "fecha_solicitud" field.
func (m *TaskMutation) SetFechaSolicitud(t time.Time) {
	m.fecha_solicitud = &t
}

// FechaSolicitud returns the value of the "fecha_solicitud" field in the mutation.
func (m *TaskMutation) FechaSolicitud() (r time.Time, exists bool) {
	v := m.fecha_solicitud
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaSolicitud returns the old "fecha_solicitud" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFechaSolicitud(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaSolicitud is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaSolicitud requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaSolicitud: %w", err)
	}
	return oldValue.FechaSolicitud, nil
}

// ResetFechaSolicitud resets all changes to the "fecha_solicitud" field.
func (m *TaskMutation) ResetFechaSolicitud() {
	m.fecha_solicitud = nil
}

// SetFechaCompletada sets the "fecha_completada" field.
func (m *TaskMutation) SetFechaCompletada(t time.Time) {
	m.fecha_completada = &t
}

// FechaCompletada returns the value of the "fecha_completada" field in the mutation.
func (m *TaskMutation) FechaCompletada() (r time.Time, exists bool) {
	v := m.fecha_completada
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaCompletada returns the old "fecha_completada" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFechaCompletada(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaCompletada is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaCompletada requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaCompletada: %w", err)
	}
	return oldValue.FechaCompletada, nil
}

// ClearFechaCompletada clears the value of the "fecha_completada" field.
func (m *TaskMutation) ClearFechaCompletada() {
	m.fecha_completada = nil
	m.clearedFields[task.FieldFechaCompletada] = struct{}{}
}

// FechaCompletadaCleared returns if the "fecha_completada" field was cleared in this mutation.
func (m *TaskMutation) FechaCompletadaCleared() bool {
	_, ok := m.clearedFields[task.FieldFechaCompletada]
	return ok
}

// ResetFechaCompletada resets all changes to the "fecha_completada" field.
func (m *TaskMutation) ResetFechaCompletada() {
	m.fecha_completada = nil
	delete(m.clearedFields, task.FieldFechaCompletada)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (m *TaskMutation) ClearEmail() {
	m.clearedemail = true
	m.clearedFields[task.FieldEmailID] = struct{}{}
}

// EmailCleared reports if the "email" edge to the EmailMessage entity was cleared.
func (m *TaskMutation) EmailCleared() bool {
	return m.clearedemail
}

// EmailIDs returns the "email" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmailID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) EmailIDs() (ids []uuid.UUID) {
	if id := m.email; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmail resets all changes to the "email" edge.
func (m *TaskMutation) ResetEmail() {
	m.email = nil
	m.clearedemail = false
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by ids.
func (m *TaskMutation) AddAlertIDs(ids ...uuid.UUID) {
	if m.alerts == nil {
		m.alerts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the Alert entity.
func (m *TaskMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the Alert entity was cleared.
func (m *TaskMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the Alert entity by IDs.
func (m *TaskMutation) RemoveAlertIDs(ids ...uuid.UUID) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the Alert entity.
func (m *TaskMutation) RemovedAlertsIDs() (ids []uuid.UUID) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *TaskMutation) AlertsIDs() (ids []uuid.UUID) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *TaskMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.email != nil {
		fields = append(fields, task.FieldEmailID)
	}
	if m.codigo_cobertor != nil {
		fields = append(fields, task.FieldCodigoCobertor)
	}
	if m.cuartel != nil {
		fields = append(fields, task.FieldCuartel)
	}
	if m.hileras != nil {
		fields = append(fields, task.FieldHileras)
	}
	if m.largo_metros != nil {
		fields = append(fields, task.FieldLargoMetros)
	}
	if m.prioridad != nil {
		fields = append(fields, task.FieldPrioridad)
	}
	if m.estado != nil {
		fields = append(fields, task.FieldEstado)
	}
	if m.descripcion != nil {
		fields = append(fields, task.FieldDescripcion)
	}
	if m.notas != nil {
		fields = append(fields, task.FieldNotas)
	}
	if m.origen != nil {
		fields = append(fields, task.FieldOrigen)
	}
	if m.urgente != nil {
		fields = append(fields, task.FieldUrgente)
	}
	if m.fecha_solicitud != nil {
		fields = append(fields, task.FieldFechaSolicitud)
	}
	if m.fecha_completada != nil {
		fields = append(fields, task.FieldFechaCompletada)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldEmailID:
		return m.EmailID()
	case task.FieldCodigoCobertor:
		return m.CodigoCobertor()
	case task.FieldCuartel:
		return m.Cuartel()
	case task.FieldHileras:
		return m.Hileras()
	case task.FieldLargoMetros:
		return m.LargoMetros()
	case task.FieldPrioridad:
		return m.Prioridad()
	case task.FieldEstado:
		return m.Estado()
	case task.FieldDescripcion:
		return m.Descripcion()
	case task.FieldNotas:
		return m.Notas()
	case task.FieldOrigen:
		return m.Origen()
	case task.FieldUrgente:
		return m.Urgente()
	case task.FieldFechaSolicitud:
		return m.FechaSolicitud()
	case task.FieldFechaCompletada:
		return m.FechaCompletada()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldEmailID:
		return m.OldEmailID(ctx)
	case task.FieldCodigoCobertor:
		return m.OldCodigoCobertor(ctx)
	case task.FieldCuartel:
		return m.OldCuartel(ctx)
	case task.FieldHileras:
		return m.OldHileras(ctx)
	case task.FieldLargoMetros:
		return m.OldLargoMetros(ctx)
	case task.FieldPrioridad:
		return m.OldPrioridad(ctx)
	case task.FieldEstado:
		return m.OldEstado(ctx)
	case task.FieldDescripcion:
		return m.OldDescripcion(ctx)
	case task.FieldNotas:
		return m.OldNotas(ctx)
	case task.FieldOrigen:
		return m.OldOrigen(ctx)
	case task.FieldUrgente:
		return m.OldUrgente(ctx)
	case task.FieldFechaSolicitud:
		return m.OldFechaSolicitud(ctx)
	case task.FieldFechaCompletada:
		return m.OldFechaCompletada(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldEmailID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailID(v)
		return nil
	case task.FieldCodigoCobertor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodigoCobertor(v)
		return nil
	case task.FieldCuartel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCuartel(v)
		return nil
	case task.FieldHileras:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHileras(v)
		return nil
	case task.FieldLargoMetros:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLargoMetros(v)
		return nil
	case task.FieldPrioridad:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrioridad(v)
		return nil
	case task.FieldEstado:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstado(v)
		return nil
	case task.FieldDescripcion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescripcion(v)
		return nil
	case task.FieldNotas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotas(v)
		return nil
	case task.FieldOrigen:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrigen(v)
		return nil
	case task.FieldUrgente:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgente(v)
		return nil
	case task.FieldFechaSolicitud:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaSolicitud(v)
		return nil
	case task.FieldFechaCompletada:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaCompletada(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addhileras != nil {
		fields = append(fields, task.FieldHileras)
	}
	if m.addlargo_metros != nil {
		fields = append(fields, task.FieldLargoMetros)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldHileras:
		return m.AddedHileras()
	case task.FieldLargoMetros:
		return m.AddedLargoMetros()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldHileras:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHileras(v)
		return nil
	case task.FieldLargoMetros:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLargoMetros(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldCodigoCobertor) {
		fields = append(fields, task.FieldCodigoCobertor)
	}
	if m.FieldCleared(task.FieldCuartel) {
		fields = append(fields, task.FieldCuartel)
	}
	if m.FieldCleared(task.FieldHileras) {
		fields = append(fields, task.FieldHileras)
	}
	if m.FieldCleared(task.FieldLargoMetros) {
		fields = append(fields, task.FieldLargoMetros)
	}
	if m.FieldCleared(task.FieldDescripcion) {
		fields = append(fields, task.FieldDescripcion)
	}
	if m.FieldCleared(task.FieldNotas) {
		fields = append(fields, task.FieldNotas)
	}
	if m.FieldCleared(task.FieldFechaCompletada) {
		fields = append(fields, task.FieldFechaCompletada)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldCodigoCobertor:
		m.ClearCodigoCobertor()
		return nil
	case task.FieldCuartel:
		m.ClearCuartel()
		return nil
	case task.FieldHileras:
		m.ClearHileras()
		return nil
	case task.FieldLargoMetros:
		m.ClearLargoMetros()
		return nil
	case task.FieldDescripcion:
		m.ClearDescripcion()
		return nil
	case task.FieldNotas:
		m.ClearNotas()
		return nil
	case task.FieldFechaCompletada:
		m.ClearFechaCompletada()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldEmailID:
		m.ResetEmailID()
		return nil
	case task.FieldCodigoCobertor:
		m.ResetCodigoCobertor()
		return nil
	case task.FieldCuartel:
		m.ResetCuartel()
		return nil
	case task.FieldHileras:
		m.ResetHileras()
		return nil
	case task.FieldLargoMetros:
		m.ResetLargoMetros()
		return nil
	case task.FieldPrioridad:
		m.ResetPrioridad()
		return nil
	case task.FieldEstado:
		m.ResetEstado()
		return nil
	case task.FieldDescripcion:
		m.ResetDescripcion()
		return nil
	case task.FieldNotas:
		m.ResetNotas()
		return nil
	case task.FieldOrigen:
		m.ResetOrigen()
		return nil
	case task.FieldUrgente:
		m.ResetUrgente()
		return nil
	case task.FieldFechaSolicitud:
		m.ResetFechaSolicitud()
		return nil
	case task.FieldFechaCompletada:
		m.ResetFechaCompletada()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.email != nil {
		edges = append(edges, task.EdgeEmail)
	}
	if m.alerts != nil {
		edges = append(edges, task.EdgeAlerts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEmail:
		if id := m.email; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedalerts != nil {
		edges = append(edges, task.EdgeAlerts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemail {
		edges = append(edges, task.EdgeEmail)
	}
	if m.clearedalerts {
		edges = append(edges, task.EdgeAlerts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeEmail:
		return m.clearedemail
	case task.EdgeAlerts:
		return m.clearedalerts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeEmail:
		m.ResetEmail()
		return nil
	case task.EdgeAlerts:
		m.ResetAlerts()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// ThreadPatternMutation represents an operation that mutates the ThreadPattern nodes in the graph.
type ThreadPatternMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	thread_id                *string
	total_messages           *int
	addtotal_messages        *int
	internal_participants    *int
	addinternal_participants *int
	external_participants    *int
	addexternal_participants *int
	has_forward              *bool
	has_attachments          *bool
	complexity               *string
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*ThreadPattern, error)
	predicates               []predicate.ThreadPattern
}

var _ ent.Mutation = (*ThreadPatternMutation)(nil)

// threadpatternOption allows management of the mutation configuration using functional options.
type threadpatternOption func(*ThreadPatternMutation)

// newThreadPatternMutation creates new mutation for the ThreadPattern entity.
func newThreadPatternMutation(c config, op Op, opts ...threadpatternOption) *ThreadPatternMutation {
	m := &ThreadPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeThreadPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreadPatternID sets the ID field of the mutation.
func withThreadPatternID(id uuid.UUID) threadpatternOption {
	return func(m *ThreadPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *ThreadPattern
		)
		m.oldValue = func(ctx context.Context) (*ThreadPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThreadPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThreadPattern sets the old ThreadPattern of the mutation.
func withThreadPattern(node *ThreadPattern) threadpatternOption {
	return func(m *ThreadPatternMutation) {
		m.oldValue = func(context.Context) (*ThreadPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreadPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreadPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ThreadPattern entities.
func (m *ThreadPatternMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreadPatternMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreadPatternMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThreadPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetThreadID sets the "thread_id" field.
func (m *ThreadPatternMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *ThreadPatternMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the ThreadPattern entity.
// If the ThreadPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadPatternMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *ThreadPatternMutation) ResetThreadID() {
	m.thread_id = nil
}

// SetTotalMessages sets the "total_messages" field.
func (m *ThreadPatternMutation) SetTotalMessages(i int) {
	m.total_messages = &i
	m.addtotal_messages = nil
}

// TotalMessages returns the value of the "total_messages" field in the mutation.
func (m *ThreadPatternMutation) TotalMessages() (r int, exists bool) {
	v := m.total_messages
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMessages returns the old "total_messages" field's value of the ThreadPattern entity.
// If the ThreadPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadPatternMutation) OldTotalMessages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMessages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMessages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMessages: %w", err)
	}
	return oldValue.TotalMessages, nil
}

// AddTotalMessages adds i to the "total_messages" field.
func (m *ThreadPatternMutation) AddTotalMessages(i int) {
	if m.addtotal_messages != nil {
		*m.addtotal_messages += i
	} else {
		m.addtotal_messages = &i
	}
}

// AddedTotalMessages returns the value that was added to the "total_messages" field in this mutation.
func (m *ThreadPatternMutation) AddedTotalMessages() (r int, exists bool) {
	v := m.addtotal_messages
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMessages resets all changes to the "total_messages" field.
func (m *ThreadPatternMutation) ResetTotalMessages() {
	m.total_messages = nil
	m.addtotal_messages = nil
}

// SetInternalParticipants sets the "internal_participants" field.
func (m *ThreadPatternMutation) SetInternalParticipants(i int) {
	m.internal_participants = &i
	m.addinternal_participants = nil
}

// InternalParticipants returns the value of the "internal_participants" field in the mutation.
func (m *ThreadPatternMutation) InternalParticipants() (r int, exists bool) {
	v := m.internal_participants
	if v == nil {
		return
	}
	return *v, true
}

// OldInternalParticipants returns the old "internal_participants" field's value of the ThreadPattern entity.
// If the ThreadPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadPatternMutation) OldInternalParticipants(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInternalParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInternalParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInternalParticipants: %w", err)
	}
	return oldValue.InternalParticipants, nil
}

// AddInternalParticipants adds i to the "internal_participants" field.
func (m *ThreadPatternMutation) AddInternalParticipants(i int) {
	if m.addinternal_participants != nil {
		*m.addinternal_participants += i
	} else {
		m.addinternal_participants = &i
	}
}

// AddedInternalParticipants returns the value that was added to the "internal_participants" field in this mutation.
func (m *ThreadPatternMutation) AddedInternalParticipants() (r int, exists bool) {
	v := m.addinternal_participants
	if v == nil {
		return
	}
	return *v, true
}

// ResetInternalParticipants resets all changes to the "internal_participants" field.
func (m *ThreadPatternMutation) ResetInternalParticipants() {
	m.internal_participants = nil
	m.addinternal_participants = nil
}

// SetExternalParticipants sets the "external_participants" field.
func (m *ThreadPatternMutation) SetExternalParticipants(i int) {
	m.external_participants = &i
	m.addexternal_participants = nil
}

// ExternalParticipants returns the value of the "external_participants" field in the mutation.
func (m *ThreadPatternMutation) ExternalParticipants() (r int, exists bool) {
	v := m.external_participants
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalParticipants returns the old "external_participants" field's value of the ThreadPattern entity.
// If the ThreadPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadPatternMutation) OldExternalParticipants(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalParticipants: %w", err)
	}
	return oldValue.ExternalParticipants, nil
}

// AddExternalParticipants adds i to the "external_participants" field.
func (m *ThreadPatternMutation) AddExternalParticipants(i int) {
	if m.addexternal_participants != nil {
		*m.addexternal_participants += i
	} else {
		m.addexternal_participants = &i
	}
}

// AddedExternalParticipants returns the value that was added to the "external_participants" field in this mutation.
func (m *ThreadPatternMutation) AddedExternalParticipants() (r int, exists bool) {
	v := m.addexternal_participants
	if v == nil {
		return
	}
	return *v, true
}

// ResetExternalParticipants resets all changes to the "external_participants" field.
func (m *ThreadPatternMutation) ResetExternalParticipants() {
	m.external_participants = nil
	m.addexternal_participants = nil
}

// SetHasForward sets the "has_forward" field.
func (m *ThreadPatternMutation) SetHasForward(b bool) {
	m.has_forward = &b
}

// HasForward returns the value of the "has_forward" field in the mutation.
func (m *ThreadPatternMutation) HasForward() (r bool, exists bool) {
	v := m.has_forward
	if v == nil {
		return
	}
	return *v, true
}

// OldHasForward returns the old "has_forward" field's value of the ThreadPattern entity.
// If the ThreadPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadPatternMutation) OldHasForward(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasForward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasForward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasForward: %w", err)
	}
	return oldValue.HasForward, nil
}

// ResetHasForward resets all changes to the "has_forward" field.
func (m *ThreadPatternMutation) ResetHasForward() {
	m.has_forward = nil
}

// SetHasAttachments sets the "has_attachments" field.
func (m *ThreadPatternMutation) SetHasAttachments(b bool) {
	m.has_attachments = &b
}

// HasAttachments returns the value of the "has_attachments" field in the mutation.
func (m *ThreadPatternMutation) HasAttachments() (r bool, exists bool) {
	v := m.has_attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldHasAttachments returns the old "has_attachments" field's value of the ThreadPattern entity.
// If the ThreadPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadPatternMutation) OldHasAttachments(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasAttachments: %w", err)
	}
	return oldValue.HasAttachments, nil
}

// ResetHasAttachments resets all changes to the "has_attachments" field.
func (m *ThreadPatternMutation) ResetHasAttachments() {
	m.has_attachments = nil
}

// SetComplexity sets the "complexity" field.
func (m *ThreadPatternMutation) SetComplexity(s string) {
	m.complexity = &s
}

// Complexity returns the value of the "complexity" field in the mutation.
func (m *ThreadPatternMutation) Complexity() (r string, exists bool) {
	v := m.complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexity returns the old "complexity" field's value of the ThreadPattern entity.
// If the ThreadPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreadPatternMutation) OldComplexity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexity: %w", err)
	}
	return oldValue.Complexity, nil
}

// ResetComplexity resets all changes to the "complexity" field.
func (m *ThreadPatternMutation) ResetComplexity() {
	m.complexity = nil
}

// Where appends a list predicates to the ThreadPatternMutation builder.
func (m *ThreadPatternMutation) Where(ps ...predicate.ThreadPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreadPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreadPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThreadPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreadPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreadPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThreadPattern).
func (m *ThreadPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreadPatternMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.thread_id != nil {
		fields = append(fields, threadpattern.FieldThreadID)
	}
	if m.total_messages != nil {
		fields = append(fields, threadpattern.FieldTotalMessages)
	}
	if m.internal_participants != nil {
		fields = append(fields, threadpattern.FieldInternalParticipants)
	}
	if m.external_participants != nil {
		fields = append(fields, threadpattern.FieldExternalParticipants)
	}
	if m.has_forward != nil {
		fields = append(fields, threadpattern.FieldHasForward)
	}
	if m.has_attachments != nil {
		fields = append(fields, threadpattern.FieldHasAttachments)
	}
	if m.complexity != nil {
		fields = append(fields, threadpattern.FieldComplexity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreadPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case threadpattern.FieldThreadID:
		return m.ThreadID()
	case threadpattern.FieldTotalMessages:
		return m.TotalMessages()
	case threadpattern.FieldInternalParticipants:
		return m.InternalParticipants()
	case threadpattern.FieldExternalParticipants:
		return m.ExternalParticipants()
	case threadpattern.FieldHasForward:
		return m.HasForward()
	case threadpattern.FieldHasAttachments:
		return m.HasAttachments()
	case threadpattern.FieldComplexity:
		return m.Complexity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreadPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case threadpattern.FieldThreadID:
		return m.OldThreadID(ctx)
	case threadpattern.FieldTotalMessages:
		return m.OldTotalMessages(ctx)
	case threadpattern.FieldInternalParticipants:
		return m.OldInternalParticipants(ctx)
	case threadpattern.FieldExternalParticipants:
		return m.OldExternalParticipants(ctx)
	case threadpattern.FieldHasForward:
		return m.OldHasForward(ctx)
	case threadpattern.FieldHasAttachments:
		return m.OldHasAttachments(ctx)
	case threadpattern.FieldComplexity:
		return m.OldComplexity(ctx)
	}
	return nil, fmt.Errorf("unknown ThreadPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case threadpattern.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case threadpattern.FieldTotalMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMessages(v)
		return nil
	case threadpattern.FieldInternalParticipants:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInternalParticipants(v)
		return nil
	case threadpattern.FieldExternalParticipants:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalParticipants(v)
		return nil
	case threadpattern.FieldHasForward:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasForward(v)
		return nil
	case threadpattern.FieldHasAttachments:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasAttachments(v)
		return nil
	case threadpattern.FieldComplexity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexity(v)
		return nil
	}
	return fmt.Errorf("unknown ThreadPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreadPatternMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_messages != nil {
		fields = append(fields, threadpattern.FieldTotalMessages)
	}
	if m.addinternal_participants != nil {
		fields = append(fields, threadpattern.FieldInternalParticipants)
	}
	if m.addexternal_participants != nil {
		fields = append(fields, threadpattern.FieldExternalParticipants)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreadPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case threadpattern.FieldTotalMessages:
		return m.AddedTotalMessages()
	case threadpattern.FieldInternalParticipants:
		return m.AddedInternalParticipants()
	case threadpattern.FieldExternalParticipants:
		return m.AddedExternalParticipants()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreadPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case threadpattern.FieldTotalMessages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMessages(v)
		return nil
	case threadpattern.FieldInternalParticipants:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInternalParticipants(v)
		return nil
	case threadpattern.FieldExternalParticipants:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExternalParticipants(v)
		return nil
	}
	return fmt.Errorf("unknown ThreadPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreadPatternMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreadPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreadPatternMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ThreadPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreadPatternMutation) ResetField(name string) error {
	switch name {
	case threadpattern.FieldThreadID:
		m.ResetThreadID()
		return nil
	case threadpattern.FieldTotalMessages:
		m.ResetTotalMessages()
		return nil
	case threadpattern.FieldInternalParticipants:
		m.ResetInternalParticipants()
		return nil
	case threadpattern.FieldExternalParticipants:
		m.ResetExternalParticipants()
		return nil
	case threadpattern.FieldHasForward:
		m.ResetHasForward()
		return nil
	case threadpattern.FieldHasAttachments:
		m.ResetHasAttachments()
		return nil
	case threadpattern.FieldComplexity:
		m.ResetComplexity()
		return nil
	}
	return fmt.Errorf("unknown ThreadPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreadPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreadPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreadPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreadPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreadPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreadPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreadPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ThreadPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreadPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ThreadPattern edge %s", name)
}
