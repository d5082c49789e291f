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
	"github.com/fvillarroel/cobertor-bot/gen/ent/attachment"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/google/uuid"
)

// EmailMessageUpdate is the builder for updating EmailMessage entities.
type EmailMessageUpdate struct {
	config
	hooks    []Hook
	mutation *EmailMessageMutation
}

// Where appends a list predicates to the EmailMessageUpdate builder.
func (_u *EmailMessageUpdate) Where(ps ...predicate.EmailMessage) *EmailMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *EmailMessageUpdate) SetMessageID(v string) *EmailMessageUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableMessageID(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *EmailMessageUpdate) SetThreadID(v string) *EmailMessageUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableThreadID(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *EmailMessageUpdate) ClearThreadID() *EmailMessageUpdate {
	_u.mutation.ClearThreadID()
	return _u
}

// SetSenderEmail sets the "sender_email" field.
func (_u *EmailMessageUpdate) SetSenderEmail(v string) *EmailMessageUpdate {
	_u.mutation.SetSenderEmail(v)
	return _u
}

// SetNillableSenderEmail sets the "sender_email" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableSenderEmail(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetSenderEmail(*v)
	}
	return _u
}

// SetSenderName sets the "sender_name" field.
func (_u *EmailMessageUpdate) SetSenderName(v string) *EmailMessageUpdate {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableSenderName(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// ClearSenderName clears the value of the "sender_name" field.
func (_u *EmailMessageUpdate) ClearSenderName() *EmailMessageUpdate {
	_u.mutation.ClearSenderName()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailMessageUpdate) SetSubject(v string) *EmailMessageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableSubject(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBodyText sets the "body_text" field.
func (_u *EmailMessageUpdate) SetBodyText(v string) *EmailMessageUpdate {
	_u.mutation.SetBodyText(v)
	return _u
}

// SetNillableBodyText sets the "body_text" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableBodyText(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetBodyText(*v)
	}
	return _u
}

// SetBodyHTML sets the "body_html" field.
func (_u *EmailMessageUpdate) SetBodyHTML(v string) *EmailMessageUpdate {
	_u.mutation.SetBodyHTML(v)
	return _u
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableBodyHTML(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetBodyHTML(*v)
	}
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *EmailMessageUpdate) SetReceivedAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableReceivedAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *EmailMessageUpdate) SetProcessedAt(v time.Time) *EmailMessageUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableProcessedAt(v *time.Time) *EmailMessageUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *EmailMessageUpdate) ClearProcessedAt() *EmailMessageUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetHasAttachments sets the "has_attachments" field.
func (_u *EmailMessageUpdate) SetHasAttachments(v bool) *EmailMessageUpdate {
	_u.mutation.SetHasAttachments(v)
	return _u
}

// SetNillableHasAttachments sets the "has_attachments" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableHasAttachments(v *bool) *EmailMessageUpdate {
	if v != nil {
		_u.SetHasAttachments(*v)
	}
	return _u
}

// SetAttachmentCount sets the "attachment_count" field.
func (_u *EmailMessageUpdate) SetAttachmentCount(v int) *EmailMessageUpdate {
	_u.mutation.ResetAttachmentCount()
	_u.mutation.SetAttachmentCount(v)
	return _u
}

// SetNillableAttachmentCount sets the "attachment_count" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableAttachmentCount(v *int) *EmailMessageUpdate {
	if v != nil {
		_u.SetAttachmentCount(*v)
	}
	return _u
}

// AddAttachmentCount adds value to the "attachment_count" field.
func (_u *EmailMessageUpdate) AddAttachmentCount(v int) *EmailMessageUpdate {
	_u.mutation.AddAttachmentCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmailMessageUpdate) SetStatus(v string) *EmailMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableStatus(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EmailMessageUpdate) SetErrorMessage(v string) *EmailMessageUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EmailMessageUpdate) SetNillableErrorMessage(v *string) *EmailMessageUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EmailMessageUpdate) ClearErrorMessage() *EmailMessageUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *EmailMessageUpdate) AddTaskIDs(ids ...uuid.UUID) *EmailMessageUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *EmailMessageUpdate) AddTasks(v ...*Task) *EmailMessageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddAdjuntoIDs adds the "adjuntos" edge to the Attachment entity by IDs.
func (_u *EmailMessageUpdate) AddAdjuntoIDs(ids ...uuid.UUID) *EmailMessageUpdate {
	_u.mutation.AddAdjuntoIDs(ids...)
	return _u
}

// AddAdjuntos adds the "adjuntos" edges to the Attachment entity.
func (_u *EmailMessageUpdate) AddAdjuntos(v ...*Attachment) *EmailMessageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAdjuntoIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *EmailMessageUpdate) AddAlertIDs(ids ...uuid.UUID) *EmailMessageUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *EmailMessageUpdate) AddAlerts(v ...*Alert) *EmailMessageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_u *EmailMessageUpdate) Mutation() *EmailMessageMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *EmailMessageUpdate) ClearTasks() *EmailMessageUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *EmailMessageUpdate) RemoveTaskIDs(ids ...uuid.UUID) *EmailMessageUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *EmailMessageUpdate) RemoveTasks(v ...*Task) *EmailMessageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearAdjuntos clears all "adjuntos" edges to the Attachment entity.
func (_u *EmailMessageUpdate) ClearAdjuntos() *EmailMessageUpdate {
	_u.mutation.ClearAdjuntos()
	return _u
}

// RemoveAdjuntoIDs removes the "adjuntos" edge to Attachment entities by IDs.
func (_u *EmailMessageUpdate) RemoveAdjuntoIDs(ids ...uuid.UUID) *EmailMessageUpdate {
	_u.mutation.RemoveAdjuntoIDs(ids...)
	return _u
}

// RemoveAdjuntos removes "adjuntos" edges to Attachment entities.
func (_u *EmailMessageUpdate) RemoveAdjuntos(v ...*Attachment) *EmailMessageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAdjuntoIDs(ids...)
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *EmailMessageUpdate) ClearAlerts() *EmailMessageUpdate {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *EmailMessageUpdate) RemoveAlertIDs(ids ...uuid.UUID) *EmailMessageUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *EmailMessageUpdate) RemoveAlerts(v ...*Alert) *EmailMessageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmailMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmailMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailMessageUpdate) check() error {
	if v, ok := _u.mutation.MessageID(); ok {
		if err := emailmessage.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.message_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SenderEmail(); ok {
		if err := emailmessage.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.sender_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttachmentCount(); ok {
		if err := emailmessage.AttachmentCountValidator(v); err != nil {
			return &ValidationError{Name: "attachment_count", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.attachment_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := emailmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailmessage.Table, emailmessage.Columns, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(emailmessage.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(emailmessage.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(emailmessage.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.SenderEmail(); ok {
		_spec.SetField(emailmessage.FieldSenderEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(emailmessage.FieldSenderName, field.TypeString, value)
	}
	if _u.mutation.SenderNameCleared() {
		_spec.ClearField(emailmessage.FieldSenderName, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyText(); ok {
		_spec.SetField(emailmessage.FieldBodyText, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyHTML(); ok {
		_spec.SetField(emailmessage.FieldBodyHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(emailmessage.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(emailmessage.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(emailmessage.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HasAttachments(); ok {
		_spec.SetField(emailmessage.FieldHasAttachments, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttachmentCount(); ok {
		_spec.SetField(emailmessage.FieldAttachmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttachmentCount(); ok {
		_spec.AddField(emailmessage.FieldAttachmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(emailmessage.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(emailmessage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(emailmessage.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AdjuntosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAdjuntosIDs(); len(nodes) > 0 && !_u.mutation.AdjuntosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdjuntosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmailMessageUpdateOne is the builder for updating a single EmailMessage entity.
type EmailMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmailMessageMutation
}

// SetMessageID sets the "message_id" field.
func (_u *EmailMessageUpdateOne) SetMessageID(v string) *EmailMessageUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableMessageID(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *EmailMessageUpdateOne) SetThreadID(v string) *EmailMessageUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableThreadID(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *EmailMessageUpdateOne) ClearThreadID() *EmailMessageUpdateOne {
	_u.mutation.ClearThreadID()
	return _u
}

// SetSenderEmail sets the "sender_email" field.
func (_u *EmailMessageUpdateOne) SetSenderEmail(v string) *EmailMessageUpdateOne {
	_u.mutation.SetSenderEmail(v)
	return _u
}

// SetNillableSenderEmail sets the "sender_email" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableSenderEmail(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetSenderEmail(*v)
	}
	return _u
}

// SetSenderName sets the "sender_name" field.
func (_u *EmailMessageUpdateOne) SetSenderName(v string) *EmailMessageUpdateOne {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableSenderName(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// ClearSenderName clears the value of the "sender_name" field.
func (_u *EmailMessageUpdateOne) ClearSenderName() *EmailMessageUpdateOne {
	_u.mutation.ClearSenderName()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *EmailMessageUpdateOne) SetSubject(v string) *EmailMessageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableSubject(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetBodyText sets the "body_text" field.
func (_u *EmailMessageUpdateOne) SetBodyText(v string) *EmailMessageUpdateOne {
	_u.mutation.SetBodyText(v)
	return _u
}

// SetNillableBodyText sets the "body_text" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableBodyText(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetBodyText(*v)
	}
	return _u
}

// SetBodyHTML sets the "body_html" field.
func (_u *EmailMessageUpdateOne) SetBodyHTML(v string) *EmailMessageUpdateOne {
	_u.mutation.SetBodyHTML(v)
	return _u
}

// SetNillableBodyHTML sets the "body_html" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableBodyHTML(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetBodyHTML(*v)
	}
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *EmailMessageUpdateOne) SetReceivedAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableReceivedAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *EmailMessageUpdateOne) SetProcessedAt(v time.Time) *EmailMessageUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableProcessedAt(v *time.Time) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *EmailMessageUpdateOne) ClearProcessedAt() *EmailMessageUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetHasAttachments sets the "has_attachments" field.
func (_u *EmailMessageUpdateOne) SetHasAttachments(v bool) *EmailMessageUpdateOne {
	_u.mutation.SetHasAttachments(v)
	return _u
}

// SetNillableHasAttachments sets the "has_attachments" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableHasAttachments(v *bool) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetHasAttachments(*v)
	}
	return _u
}

// SetAttachmentCount sets the "attachment_count" field.
func (_u *EmailMessageUpdateOne) SetAttachmentCount(v int) *EmailMessageUpdateOne {
	_u.mutation.ResetAttachmentCount()
	_u.mutation.SetAttachmentCount(v)
	return _u
}

// SetNillableAttachmentCount sets the "attachment_count" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableAttachmentCount(v *int) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetAttachmentCount(*v)
	}
	return _u
}

// AddAttachmentCount adds value to the "attachment_count" field.
func (_u *EmailMessageUpdateOne) AddAttachmentCount(v int) *EmailMessageUpdateOne {
	_u.mutation.AddAttachmentCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EmailMessageUpdateOne) SetStatus(v string) *EmailMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableStatus(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EmailMessageUpdateOne) SetErrorMessage(v string) *EmailMessageUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EmailMessageUpdateOne) SetNillableErrorMessage(v *string) *EmailMessageUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EmailMessageUpdateOne) ClearErrorMessage() *EmailMessageUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *EmailMessageUpdateOne) AddTaskIDs(ids ...uuid.UUID) *EmailMessageUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *EmailMessageUpdateOne) AddTasks(v ...*Task) *EmailMessageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddAdjuntoIDs adds the "adjuntos" edge to the Attachment entity by IDs.
func (_u *EmailMessageUpdateOne) AddAdjuntoIDs(ids ...uuid.UUID) *EmailMessageUpdateOne {
	_u.mutation.AddAdjuntoIDs(ids...)
	return _u
}

// AddAdjuntos adds the "adjuntos" edges to the Attachment entity.
func (_u *EmailMessageUpdateOne) AddAdjuntos(v ...*Attachment) *EmailMessageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAdjuntoIDs(ids...)
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by IDs.
func (_u *EmailMessageUpdateOne) AddAlertIDs(ids ...uuid.UUID) *EmailMessageUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlerts adds the "alerts" edges to the Alert entity.
func (_u *EmailMessageUpdateOne) AddAlerts(v ...*Alert) *EmailMessageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// Mutation returns the EmailMessageMutation object of the builder.
func (_u *EmailMessageUpdateOne) Mutation() *EmailMessageMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *EmailMessageUpdateOne) ClearTasks() *EmailMessageUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *EmailMessageUpdateOne) RemoveTaskIDs(ids ...uuid.UUID) *EmailMessageUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *EmailMessageUpdateOne) RemoveTasks(v ...*Task) *EmailMessageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearAdjuntos clears all "adjuntos" edges to the Attachment entity.
func (_u *EmailMessageUpdateOne) ClearAdjuntos() *EmailMessageUpdateOne {
	_u.mutation.ClearAdjuntos()
	return _u
}

// RemoveAdjuntoIDs removes the "adjuntos" edge to Attachment entities by IDs.
func (_u *EmailMessageUpdateOne) RemoveAdjuntoIDs(ids ...uuid.UUID) *EmailMessageUpdateOne {
	_u.mutation.RemoveAdjuntoIDs(ids...)
	return _u
}

// RemoveAdjuntos removes "adjuntos" edges to Attachment entities.
func (_u *EmailMessageUpdateOne) RemoveAdjuntos(v ...*Attachment) *EmailMessageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAdjuntoIDs(ids...)
}

// ClearAlerts clears all "alerts" edges to the Alert entity.
func (_u *EmailMessageUpdateOne) ClearAlerts() *EmailMessageUpdateOne {
	_u.mutation.ClearAlerts()
	return _u
}

// RemoveAlertIDs removes the "alerts" edge to Alert entities by IDs.
func (_u *EmailMessageUpdateOne) RemoveAlertIDs(ids ...uuid.UUID) *EmailMessageUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlerts removes "alerts" edges to Alert entities.
func (_u *EmailMessageUpdateOne) RemoveAlerts(v ...*Alert) *EmailMessageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// Where appends a list predicates to the EmailMessageUpdate builder.
func (_u *EmailMessageUpdateOne) Where(ps ...predicate.EmailMessage) *EmailMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmailMessageUpdateOne) Select(field string, fields ...string) *EmailMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmailMessage entity.
func (_u *EmailMessageUpdateOne) Save(ctx context.Context) (*EmailMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmailMessageUpdateOne) SaveX(ctx context.Context) *EmailMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmailMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmailMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmailMessageUpdateOne) check() error {
	if v, ok := _u.mutation.MessageID(); ok {
		if err := emailmessage.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.message_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SenderEmail(); ok {
		if err := emailmessage.SenderEmailValidator(v); err != nil {
			return &ValidationError{Name: "sender_email", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.sender_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttachmentCount(); ok {
		if err := emailmessage.AttachmentCountValidator(v); err != nil {
			return &ValidationError{Name: "attachment_count", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.attachment_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := emailmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EmailMessage.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EmailMessageUpdateOne) sqlSave(ctx context.Context) (_node *EmailMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(emailmessage.Table, emailmessage.Columns, sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmailMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, emailmessage.FieldID)
		for _, f := range fields {
			if !emailmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != emailmessage.FieldID {
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
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(emailmessage.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(emailmessage.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(emailmessage.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.SenderEmail(); ok {
		_spec.SetField(emailmessage.FieldSenderEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(emailmessage.FieldSenderName, field.TypeString, value)
	}
	if _u.mutation.SenderNameCleared() {
		_spec.ClearField(emailmessage.FieldSenderName, field.TypeString)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(emailmessage.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyText(); ok {
		_spec.SetField(emailmessage.FieldBodyText, field.TypeString, value)
	}
	if value, ok := _u.mutation.BodyHTML(); ok {
		_spec.SetField(emailmessage.FieldBodyHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(emailmessage.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(emailmessage.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(emailmessage.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HasAttachments(); ok {
		_spec.SetField(emailmessage.FieldHasAttachments, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttachmentCount(); ok {
		_spec.SetField(emailmessage.FieldAttachmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttachmentCount(); ok {
		_spec.AddField(emailmessage.FieldAttachmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(emailmessage.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(emailmessage.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(emailmessage.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AdjuntosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAdjuntosIDs(); len(nodes) > 0 && !_u.mutation.AdjuntosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdjuntosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertsIDs(); len(nodes) > 0 && !_u.mutation.AlertsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EmailMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{emailmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
