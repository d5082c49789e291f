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
	"github.com/fvillarroel/cobertor-bot/gen/ent/attachment"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/google/uuid"
)

// EmailMessageCreate is the builder for creating a EmailMessage entity.
type EmailMessageCreate struct {
	config
	mutation *EmailMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMessageID sets the "message_id" field.
func (_c *EmailMessageCreate) SetMessageID(v string) *EmailMessageCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *EmailMessageCreate) SetThreadID(v string) *EmailMessageCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableThreadID(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetSenderEmail sets the "sender_email" field.
func (_c *EmailMessageCreate) SetSenderEmail(v string) *EmailMessageCreate {
	_c.mutation.SetSenderEmail(v)
	return _c
}

// SetSenderName sets the "sender_name" field.
func (_c *EmailMessageCreate) SetSenderName(v string) *EmailMessageCreate {
	_c.mutation.SetSenderName(v)
	return _c
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableSenderName(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetSenderName(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *EmailMessageCreate) SetSubject(v string) *EmailMessageCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableSubject(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBodyText sets the "body_text" field.
func (_c *EmailMessageCreate) SetBodyText(v string) *EmailMessageCreate {
	_c.mutation.SetBodyText(v)
	return _c
}

// SetNillableBodyText sets the "body_text" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableBodyText(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetBodyText(*v)
	}
	return _c
}

// SetBodyHTML sets the "body_html" field.
func (_c *EmailMessageCreate) SetBodyHTML(v string) *EmailMessageCreate {
	_c.mutation.SetBodyHTML(v)
	return _c
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableBodyHTML(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetBodyHTML(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *EmailMessageCreate) SetReceivedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *EmailMessageCreate) SetProcessedAt(v time.Time) *EmailMessageCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableProcessedAt(v *time.Time) *EmailMessageCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetHasAttachments sets the "has_attachments" field.
func (_c *EmailMessageCreate) SetHasAttachments(v bool) *EmailMessageCreate {
	_c.mutation.SetHasAttachments(v)
	return _c
}

// SetNillableHasAttachments sets the "has_attachments" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableHasAttachments(v *bool) *EmailMessageCreate {
	if v != nil {
		_c.SetHasAttachments(*v)
	}
	return _c
}

// SetAttachmentCount sets the "attachment_count" field.
func (_c *EmailMessageCreate) SetAttachmentCount(v int) *EmailMessageCreate {
	_c.mutation.SetAttachmentCount(v)
	return _c
}

// SetNillableAttachmentCount sets the "attachment_count" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableAttachmentCount(v *int) *EmailMessageCreate {
	if v != nil {
		_c.SetAttachmentCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EmailMessageCreate) SetStatus(v string) *EmailMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableStatus(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EmailMessageCreate) SetErrorMessage(v string) *EmailMessageCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableErrorMessage(v *string) *EmailMessageCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmailMessageCreate) SetID(v uuid.UUID) *EmailMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmailMessageCreate) SetNillableID(v *uuid.UUID) *EmailMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *EmailMessageCreate) AddTaskIDs(ids ...uuid.UUID) *EmailMessageCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *EmailMessageCreate) AddTasks(v ...*Task) *EmailMessageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddAdjuntoIDs adds the "adjuntos" edge to the Attachment entity by IDs.
func (_c *EmailMessageCreate) AddAdjuntoIDs(ids ...uuid.UUID) *EmailMessageCreate {
	_c.mutation.AddAdjuntoIDs(ids...)
	return _c
}

// AddAdjuntos adds the "adjuntos" edges to the Attachment entity.
func (_c *EmailMessageCreate) AddAdjuntos(v ...*Attachment) *EmailMessageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAdjuntoIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_c *EmailMessageCreate) AddAlertIDs(ids ...uuid.UUID) *EmailMessageCreate {
	_c.mutation.AddAlertIDs(ids...)
	return _c
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_c *EmailMessageCreate) AddAlerts(v ...*Alert) *EmailMessageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertIDs(ids...)
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_c *EmailMessageCreate) Mutation() *EmailMessageMutation {
	return _c.mutation
}

// Save creates the EmailMessage in the database.
func (_c *EmailMessageCreate) Save(ctx context.Context) (*EmailMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmailMessageCreate) SaveX(ctx context.Context) *EmailMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmailMessageCreate) defaults() {
	if _, ok := _c.mutation.Subject(); !ok {
		v := emailmessage.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.BodyText(); !ok {
		v := emailmessage.DefaultBodyText
		_c.mutation.SetBodyText(v)
	}
	if _, ok := _c.mutation.BodyHTML(); !ok {
		v := emailmessage.DefaultBodyHTML
		_c.mutation.SetBodyHTML(v)
	}
	if _, ok := _c.mutation.HasAttachments(); !ok {
		v := emailmessage.DefaultHasAttachments
		_c.mutation.SetHasAttachments(v)
	}
	if _, ok := _c.mutation.AttachmentCount(); !ok {
		v := emailmessage.DefaultAttachmentCount
		_c.mutation.SetAttachmentCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := emailmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := emailmessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmailMessageCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "EmailMessage.message_id"`)}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := emailmessage.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SenderEmail(); !ok {
		return &ValidationError{Name: "sender_email", err: errors.New(`ent: missing required field "EmailMessage.sender_email"`)}
	}
	if v, ok := _c.mutation.SenderEmail(); ok {
		if err := emailmessage.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.sender_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "EmailMessage.subject"`)}
	}
	if _, ok := _c.mutation.BodyText(); !ok {
		return &ValidationError{Name: "body_text", err: errors.New(`ent: missing required field "EmailMessage.body_text"`)}
	}
	if _, ok := _c.mutation.BodyHTML(); !ok {
		return &ValidationError{Name: "body_html", err: errors.New(`ent: missing required field "EmailMessage.body_html"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "EmailMessage.received_at"`)}
	}
	if _, ok := _c.mutation.HasAttachments(); !ok {
		return &ValidationError{Name: "has_attachments", err: errors.New(`ent: missing required field "EmailMessage.has_attachments"`)}
	}
	if _, ok := _c.mutation.AttachmentCount(); !ok {
		return &ValidationError{Name: "attachment_count", err: errors.New(`ent: missing required field "EmailMessage.attachment_count"`)}
	}
	if v, ok := _c.mutation.AttachmentCount(); ok {
		if err := emailmessage.AttachmentCountValidator(v); err != nil {
			return &ValidationError{Name: "attachment_count", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.attachment_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EmailMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := emailmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_c *EmailMessageCreate) sqlSave(ctx context.Context) (*EmailMessage, error) {
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

func (_c *EmailMessageCreate) createSpec() (*EmailMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &EmailMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(emailmessage.Table, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(emailmessage.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(emailmessage.FieldThreadID, field.TypeString, value)
		_node.ThreadID = &value
	}
	if value, ok := _c.mutation.SenderEmail(); ok {
		_spec.SetField(emailmessage.FieldSenderEmail, field.TypeString, value)
		_node.SenderEmail = value
	}
	if value, ok := _c.mutation.SenderName(); ok {
		_spec.SetField(emailmessage.FieldSenderName, field.TypeString, value)
		_node.SenderName = &value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.BodyText(); ok {
		_spec.SetField(emailmessage.FieldBodyText, field.TypeString, value)
		_node.BodyText = value
	}
	if value, ok := _c.mutation.BodyHTML(); ok {
		_spec.SetField(emailmessage.FieldBodyHTML, field.TypeString, value)
		_node.BodyHTML = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(emailmessage.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(emailmessage.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.HasAttachments(); ok {
		_spec.SetField(emailmessage.FieldHasAttachments, field.TypeBool, value)
		_node.HasAttachments = value
	}
	if value, ok := _c.mutation.AttachmentCount(); ok {
		_spec.SetField(emailmessage.FieldAttachmentCount, field.TypeInt, value)
		_node.AttachmentCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(emailmessage.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(emailmessage.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.TasksTable,
			Columns: []string{emailmessage.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AdjuntosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.AdjuntosTable,
			Columns: []string{emailmessage.AdjuntosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   emailmessage.AlertsTable,
			Columns: []string{emailmessage.AlertsColumn},
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
//	client.EmailMessage.Create().
//		SetMessageID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailMessageUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailMessageCreate) OnConflict(opts ...sql.ConflictOption) *EmailMessageUpsertOne {
	_c.conflict = opts
	return &EmailMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailMessageCreate) OnConflictColumns(columns ...string) *EmailMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailMessageUpsertOne{
		create: _c,
	}
}

type (
	// EmailMessageUpsertOne is the builder for "upsert"-ing
	//  one EmailMessage node.
	EmailMessageUpsertOne struct {
		create *EmailMessageCreate
	}

	// EmailMessageUpsert is the "OnConflict" setter.
	EmailMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageID sets the "message_id" field.
func (u *EmailMessageUpsert) SetMessageID(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldMessageID, v)
	return u
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateMessageID() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldMessageID)
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *EmailMessageUpsert) SetThreadID(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateThreadID() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldThreadID)
	return u
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EmailMessageUpsert) ClearThreadID() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldThreadID)
	return u
}

// SetSenderEmail sets the "sender_email" field.
func (u *EmailMessageUpsert) SetSenderEmail(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldSenderEmail, v)
	return u
}

// UpdateSenderEmail sets the "sender_email" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateSenderEmail() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldSenderEmail)
	return u
}

// SetSenderName sets the "sender_name" field.
func (u *EmailMessageUpsert) SetSenderName(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldSenderName, v)
	return u
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateSenderName() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldSenderName)
	return u
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *EmailMessageUpsert) ClearSenderName() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldSenderName)
	return u
}

// SetSubject sets the "subject" field.
func (u *EmailMessageUpsert) SetSubject(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateSubject() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldSubject)
	return u
}

// SetBodyText sets the "body_text" field.
func (u *EmailMessageUpsert) SetBodyText(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldBodyText, v)
	return u
}

// UpdateBodyText sets the "body_text" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateBodyText() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldBodyText)
	return u
}

// SetBodyHTML sets the "body_html" field.
func (u *EmailMessageUpsert) SetBodyHTML(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldBodyHTML, v)
	return u
}

// UpdateBodyHTML sets the "body_html" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateBodyHTML() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldBodyHTML)
	return u
}

// SetReceivedAt sets the "received_at" field.
func (u *EmailMessageUpsert) SetReceivedAt(v time.Time) *EmailMessageUpsert {
	u.Set(emailmessage.FieldReceivedAt, v)
	return u
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateReceivedAt() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldReceivedAt)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *EmailMessageUpsert) SetProcessedAt(v time.Time) *EmailMessageUpsert {
	u.Set(emailmessage.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateProcessedAt() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *EmailMessageUpsert) ClearProcessedAt() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldProcessedAt)
	return u
}

// SetHasAttachments sets the "has_attachments" field.
func (u *EmailMessageUpsert) SetHasAttachments(v bool) *EmailMessageUpsert {
	u.Set(emailmessage.FieldHasAttachments, v)
	return u
}

// UpdateHasAttachments sets the "has_attachments" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateHasAttachments() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldHasAttachments)
	return u
}

// SetAttachmentCount sets the "attachment_count" field.
func (u *EmailMessageUpsert) SetAttachmentCount(v int) *EmailMessageUpsert {
	u.Set(emailmessage.FieldAttachmentCount, v)
	return u
}

// UpdateAttachmentCount sets the "attachment_count" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateAttachmentCount() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldAttachmentCount)
	return u
}

// AddAttachmentCount adds v to the "attachment_count" field.
func (u *EmailMessageUpsert) AddAttachmentCount(v int) *EmailMessageUpsert {
	u.Add(emailmessage.FieldAttachmentCount, v)
	return u
}

// SetStatus sets the "status" field.
func (u *EmailMessageUpsert) SetStatus(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateStatus() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *EmailMessageUpsert) SetErrorMessage(v string) *EmailMessageUpsert {
	u.Set(emailmessage.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EmailMessageUpsert) UpdateErrorMessage() *EmailMessageUpsert {
	u.SetExcluded(emailmessage.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EmailMessageUpsert) ClearErrorMessage() *EmailMessageUpsert {
	u.SetNull(emailmessage.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailMessageUpsertOne) UpdateNewValues() *EmailMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(emailmessage.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmailMessageUpsertOne) Ignore() *EmailMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailMessageUpsertOne) DoNothing() *EmailMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailMessageCreate.OnConflict
// documentation for more info.
func (u *EmailMessageUpsertOne) Update(set func(*EmailMessageUpsert)) *EmailMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *EmailMessageUpsertOne) SetMessageID(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateMessageID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateMessageID()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *EmailMessageUpsertOne) SetThreadID(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateThreadID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EmailMessageUpsertOne) ClearThreadID() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearThreadID()
	})
}

// SetSenderEmail sets the "sender_email" field.
func (u *EmailMessageUpsertOne) SetSenderEmail(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSenderEmail(v)
	})
}

// UpdateSenderEmail sets the "sender_email" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateSenderEmail() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSenderEmail()
	})
}

// SetSenderName sets the "sender_name" field.
func (u *EmailMessageUpsertOne) SetSenderName(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSenderName(v)
	})
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateSenderName() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSenderName()
	})
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *EmailMessageUpsertOne) ClearSenderName() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearSenderName()
	})
}

// SetSubject sets the "subject" field.
func (u *EmailMessageUpsertOne) SetSubject(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateSubject() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSubject()
	})
}

// SetBodyText sets the "body_text" field.
func (u *EmailMessageUpsertOne) SetBodyText(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetBodyText(v)
	})
}

// UpdateBodyText sets the "body_text" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateBodyText() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateBodyText()
	})
}

// SetBodyHTML sets the "body_html" field.
func (u *EmailMessageUpsertOne) SetBodyHTML(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetBodyHTML(v)
	})
}

// UpdateBodyHTML sets the "body_html" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateBodyHTML() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateBodyHTML()
	})
}

// SetReceivedAt sets the "received_at" field.
func (u *EmailMessageUpsertOne) SetReceivedAt(v time.Time) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetReceivedAt(v)
	})
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateReceivedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateReceivedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *EmailMessageUpsertOne) SetProcessedAt(v time.Time) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateProcessedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *EmailMessageUpsertOne) ClearProcessedAt() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearProcessedAt()
	})
}

// SetHasAttachments sets the "has_attachments" field.
func (u *EmailMessageUpsertOne) SetHasAttachments(v bool) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetHasAttachments(v)
	})
}

// UpdateHasAttachments sets the "has_attachments" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateHasAttachments() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateHasAttachments()
	})
}

// SetAttachmentCount sets the "attachment_count" field.
func (u *EmailMessageUpsertOne) SetAttachmentCount(v int) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetAttachmentCount(v)
	})
}

// AddAttachmentCount adds v to the "attachment_count" field.
func (u *EmailMessageUpsertOne) AddAttachmentCount(v int) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.AddAttachmentCount(v)
	})
}

// UpdateAttachmentCount sets the "attachment_count" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateAttachmentCount() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateAttachmentCount()
	})
}

// SetStatus sets the "status" field.
func (u *EmailMessageUpsertOne) SetStatus(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateStatus() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *EmailMessageUpsertOne) SetErrorMessage(v string) *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EmailMessageUpsertOne) UpdateErrorMessage() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EmailMessageUpsertOne) ClearErrorMessage() *EmailMessageUpsertOne {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *EmailMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmailMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmailMessageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EmailMessageUpsertOne.ID is not supported by MySQL driver. Use EmailMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmailMessageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmailMessageCreateBulk is the builder for creating many EmailMessage entities in bulk.
type EmailMessageCreateBulk struct {
	config
	err      error
	builders []*EmailMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the EmailMessage entities in the database.
func (_c *EmailMessageCreateBulk) Save(ctx context.Context) ([]*EmailMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmailMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmailMessageMutation)
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
func (_c *EmailMessageCreateBulk) SaveX(ctx context.Context) []*EmailMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmailMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmailMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmailMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmailMessageUpsert) {
//			SetMessageID(v+v).
//		}).
//		Exec(ctx)
func (_c *EmailMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmailMessageUpsertBulk {
	_c.conflict = opts
	return &EmailMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmailMessageCreateBulk) OnConflictColumns(columns ...string) *EmailMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmailMessageUpsertBulk{
		create: _c,
	}
}

// EmailMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of EmailMessage nodes.
type EmailMessageUpsertBulk struct {
	create *EmailMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(emailmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmailMessageUpsertBulk) UpdateNewValues() *EmailMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(emailmessage.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmailMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmailMessageUpsertBulk) Ignore() *EmailMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmailMessageUpsertBulk) DoNothing() *EmailMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmailMessageCreateBulk.OnConflict
// documentation for more info.
func (u *EmailMessageUpsertBulk) Update(set func(*EmailMessageUpsert)) *EmailMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmailMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageID sets the "message_id" field.
func (u *EmailMessageUpsertBulk) SetMessageID(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetMessageID(v)
	})
}

// UpdateMessageID sets the "message_id" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateMessageID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateMessageID()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *EmailMessageUpsertBulk) SetThreadID(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateThreadID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *EmailMessageUpsertBulk) ClearThreadID() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearThreadID()
	})
}

// SetSenderEmail sets the "sender_email" field.
func (u *EmailMessageUpsertBulk) SetSenderEmail(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSenderEmail(v)
	})
}

// UpdateSenderEmail sets the "sender_email" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateSenderEmail() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSenderEmail()
	})
}

// SetSenderName sets the "sender_name" field.
func (u *EmailMessageUpsertBulk) SetSenderName(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSenderName(v)
	})
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateSenderName() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSenderName()
	})
}

// ClearSenderName clears the value of the "sender_name" field.
func (u *EmailMessageUpsertBulk) ClearSenderName() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearSenderName()
	})
}

// SetSubject sets the "subject" field.
func (u *EmailMessageUpsertBulk) SetSubject(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateSubject() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateSubject()
	})
}

// SetBodyText sets the "body_text" field.
func (u *EmailMessageUpsertBulk) SetBodyText(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetBodyText(v)
	})
}

// UpdateBodyText sets the "body_text" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateBodyText() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateBodyText()
	})
}

// SetBodyHTML sets the "body_html" field.
func (u *EmailMessageUpsertBulk) SetBodyHTML(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetBodyHTML(v)
	})
}

// UpdateBodyHTML sets the "body_html" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateBodyHTML() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateBodyHTML()
	})
}

// SetReceivedAt sets the "received_at" field.
func (u *EmailMessageUpsertBulk) SetReceivedAt(v time.Time) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetReceivedAt(v)
	})
}

// UpdateReceivedAt sets the "received_at" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateReceivedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateReceivedAt()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *EmailMessageUpsertBulk) SetProcessedAt(v time.Time) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateProcessedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *EmailMessageUpsertBulk) ClearProcessedAt() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearProcessedAt()
	})
}

// SetHasAttachments sets the "has_attachments" field.
func (u *EmailMessageUpsertBulk) SetHasAttachments(v bool) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetHasAttachments(v)
	})
}

// UpdateHasAttachments sets the "has_attachments" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateHasAttachments() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateHasAttachments()
	})
}

// SetAttachmentCount sets the "attachment_count" field.
func (u *EmailMessageUpsertBulk) SetAttachmentCount(v int) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetAttachmentCount(v)
	})
}

// AddAttachmentCount adds v to the "attachment_count" field.
func (u *EmailMessageUpsertBulk) AddAttachmentCount(v int) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.AddAttachmentCount(v)
	})
}

// UpdateAttachmentCount sets the "attachment_count" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateAttachmentCount() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateAttachmentCount()
	})
}

// SetStatus sets the "status" field.
func (u *EmailMessageUpsertBulk) SetStatus(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateStatus() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *EmailMessageUpsertBulk) SetErrorMessage(v string) *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *EmailMessageUpsertBulk) UpdateErrorMessage() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *EmailMessageUpsertBulk) ClearErrorMessage() *EmailMessageUpsertBulk {
	return u.Update(func(s *EmailMessageUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *EmailMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EmailMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmailMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmailMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
