// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/alert"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/google/uuid"
)

// Alert is the model entity for the Alert schema.
type Alert struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Tipo holds the value of the "tipo" field.
	Tipo string `json:"tipo,omitempty"`
	// Titulo holds the value of the "titulo" field.
	Titulo string `json:"titulo,omitempty"`
	// Descripcion holds the value of the "descripcion" field.
	Descripcion *string `json:"descripcion,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID *uuid.UUID `json:"task_id,omitempty"`
	// EmailID holds the value of the "email_id" field.
	EmailID *uuid.UUID `json:"email_id,omitempty"`
	// Severidad holds the value of the "severidad" field.
	Severidad string `json:"severidad,omitempty"`
	// Leida holds the value of the "leida" field.
	Leida bool `json:"leida,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertQuery when eager-loading is set.
	Edges        AlertEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertEdges holds the relations/edges for other nodes in the graph.
type AlertEdges struct {
	// Email holds the value of the email edge.
	Email *EmailMessage `json:"email,omitempty"`
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EmailOrErr returns the Email value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AlertEdges) EmailOrErr() (*EmailMessage, error) {
	if e.Email != nil {
		return e.Email, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: emailmessage.Label}
	}
	return nil, &NotLoadedError{edge: "email"}
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AlertEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Alert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alert.FieldTaskID, alert.FieldEmailID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case alert.FieldLeida:
			values[i] = new(sql.NullBool)
		case alert.FieldTipo, alert.FieldTitulo, alert.FieldDescripcion, alert.FieldSeveridad:
			values[i] = new(sql.NullString)
		case alert.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case alert.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Alert fields.
func (_m *Alert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alert.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case alert.FieldTipo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo", values[i])
			} else if value.Valid {
				_m.Tipo = value.String
			}
		case alert.FieldTitulo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field titulo", values[i])
			} else if value.Valid {
				_m.Titulo = value.String
			}
		case alert.FieldDescripcion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field descripcion", values[i])
			} else if value.Valid {
				_m.Descripcion = new(string)
				*_m.Descripcion = value.String
			}
		case alert.FieldTaskID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(uuid.UUID)
				*_m.TaskID = *value.S.(*uuid.UUID)
			}
		case alert.FieldEmailID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field email_id", values[i])
			} else if value.Valid {
				_m.EmailID = new(uuid.UUID)
				*_m.EmailID = *value.S.(*uuid.UUID)
			}
		case alert.FieldSeveridad:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severidad", values[i])
			} else if value.Valid {
				_m.Severidad = value.String
			}
		case alert.FieldLeida:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field leida", values[i])
			} else if value.Valid {
				_m.Leida = value.Bool
			}
		case alert.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Alert.
// This includes values selected through modifiers, order, etc.
func (_m *Alert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmail queries the "email" edge of the Alert entity.
func (_m *Alert) QueryEmail() *EmailMessageQuery {
	return NewAlertClient(_m.config).QueryEmail(_m)
}

// QueryTask queries the "task" edge of the Alert entity.
func (_m *Alert) QueryTask() *TaskQuery {
	return NewAlertClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this Alert.
// Note that you need to call Alert.Unwrap() before calling this method if this Alert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Alert) Update() *AlertUpdateOne {
	return NewAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Alert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Alert) Unwrap() *Alert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Alert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Alert) String() string {
	var builder strings.Builder
	builder.WriteString("Alert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tipo=")
	builder.WriteString(_m.Tipo)
	builder.WriteString(", ")
	builder.WriteString("titulo=")
	builder.WriteString(_m.Titulo)
	builder.WriteString(", ")
	if v := _m.Descripcion; v != nil {
		builder.WriteString("descripcion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EmailID; v != nil {
		builder.WriteString("email_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("severidad=")
	builder.WriteString(_m.Severidad)
	builder.WriteString(", ")
	builder.WriteString("leida=")
	builder.WriteString(fmt.Sprintf("%v", _m.Leida))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Alerts is a parsable slice of Alert.
type Alerts []*Alert
