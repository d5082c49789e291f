// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/google/uuid"
)

// EmailMessage is the model entity for the EmailMessage schema.
type EmailMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID string `json:"message_id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID *string `json:"thread_id,omitempty"`
	// SenderEmail holds the value of the "sender_email" field.
	SenderEmail string `json:"sender_email,omitempty"`
	// SenderName holds the value of the "sender_name" field.
	SenderName *string `json:"sender_name,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// BodyText holds the value of the "body_text" field.
	BodyText string `json:"body_text,omitempty"`
	// BodyHTML holds the value of the "body_html" field.
	BodyHTML string `json:"body_html,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// HasAttachments holds the value of the "has_attachments" field.
	HasAttachments bool `json:"has_attachments,omitempty"`
	// AttachmentCount holds the value of the "attachment_count" field.
	AttachmentCount int `json:"attachment_count,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailMessageQuery when eager-loading is set.
	Edges        EmailMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailMessageEdges holds the relations/edges for other nodes in the graph.
type EmailMessageEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Adjuntos holds the value of the adjuntos edge.
	Adjuntos []*Attachment `json:"adjuntos,omitempty"`
	// Alerts holds the value of the alerts edge.
	Alerts []*Alert `json:"alerts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e EmailMessageEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// AdjuntosOrErr returns the Adjuntos value or an error if the edge
// was not loaded in eager-loading.
func (e EmailMessageEdges) AdjuntosOrErr() ([]*Attachment, error) {
	if e.loadedTypes[1] {
		return e.Adjuntos, nil
	}
	return nil, &NotLoadedError{edge: "adjuntos"}
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e EmailMessageEdges) AlertsOrErr() ([]*Alert, error) {
	if e.loadedTypes[2] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailmessage.FieldHasAttachments:
			values[i] = new(sql.NullBool)
		case emailmessage.FieldAttachmentCount:
			values[i] = new(sql.NullInt64)
		case emailmessage.FieldMessageID, emailmessage.FieldThreadID, emailmessage.FieldSenderEmail, emailmessage.FieldSenderName, emailmessage.FieldSubject, emailmessage.FieldBodyText, emailmessage.FieldBodyHTML, emailmessage.FieldStatus, emailmessage.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case emailmessage.FieldReceivedAt, emailmessage.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case emailmessage.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailMessage fields.
func (_m *EmailMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailmessage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case emailmessage.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case emailmessage.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = new(string)
				*_m.ThreadID = value.String
			}
		case emailmessage.FieldSenderEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_email", values[i])
			} else if value.Valid {
				_m.SenderEmail = value.String
			}
		case emailmessage.FieldSenderName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_name", values[i])
			} else if value.Valid {
				_m.SenderName = new(string)
				*_m.SenderName = value.String
			}
		case emailmessage.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case emailmessage.FieldBodyText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_text", values[i])
			} else if value.Valid {
				_m.BodyText = value.String
			}
		case emailmessage.FieldBodyHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body_html", values[i])
			} else if value.Valid {
				_m.BodyHTML = value.String
			}
		case emailmessage.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case emailmessage.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case emailmessage.FieldHasAttachments:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_attachments", values[i])
			} else if value.Valid {
				_m.HasAttachments = value.Bool
			}
		case emailmessage.FieldAttachmentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attachment_count", values[i])
			} else if value.Valid {
				_m.AttachmentCount = int(value.Int64)
			}
		case emailmessage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case emailmessage.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmailMessage.
// This includes values selected through modifiers, order, etc.
func (_m *EmailMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the EmailMessage entity.
func (_m *EmailMessage) QueryTasks() *TaskQuery {
	return NewEmailMessageClient(_m.config).QueryTasks(_m)
}

// QueryAdjuntos queries the "adjuntos" edge of the EmailMessage entity.
func (_m *EmailMessage) QueryAdjuntos() *AttachmentQuery {
	return NewEmailMessageClient(_m.config).QueryAdjuntos(_m)
}

// QueryAlerts queries the "alerts" edge of the EmailMessage entity.
func (_m *EmailMessage) QueryAlerts() *AlertQuery {
	return NewEmailMessageClient(_m.config).QueryAlerts(_m)
}

// Update returns a builder for updating this EmailMessage.
// Note that you need to call EmailMessage.Unwrap() before calling this method if this EmailMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailMessage) Update() *EmailMessageUpdateOne {
	return NewEmailMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailMessage) Unwrap() *EmailMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailMessage) String() string {
	var builder strings.Builder
	builder.WriteString("EmailMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	if v := _m.ThreadID; v != nil {
		builder.WriteString("thread_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sender_email=")
	builder.WriteString(_m.SenderEmail)
	builder.WriteString(", ")
	if v := _m.SenderName; v != nil {
		builder.WriteString("sender_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("body_text=")
	builder.WriteString(_m.BodyText)
	builder.WriteString(", ")
	builder.WriteString("body_html=")
	builder.WriteString(_m.BodyHTML)
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("has_attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasAttachments))
	builder.WriteString(", ")
	builder.WriteString("attachment_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttachmentCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// EmailMessages is a parsable slice of EmailMessage.
type EmailMessages []*EmailMessage
