// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/google/uuid"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmailID holds the value of the "email_id" field.
	EmailID uuid.UUID `json:"email_id,omitempty"`
	// CodigoCobertor holds the value of the "codigo_cobertor" field.
	CodigoCobertor *string `json:"codigo_cobertor,omitempty"`
	// Cuartel holds the value of the "cuartel" field.
	Cuartel *string `json:"cuartel,omitempty"`
	// Hileras holds the value of the "hileras" field.
	Hileras *int `json:"hileras,omitempty"`
	// LargoMetros holds the value of the "largo_metros" field.
	LargoMetros *float64 `json:"largo_metros,omitempty"`
	// Prioridad holds the value of the "prioridad" field.
	Prioridad string `json:"prioridad,omitempty"`
	// Estado holds the value of the "estado" field.
	Estado string `json:"estado,omitempty"`
	// Descripcion holds the value of the "descripcion" field.
	Descripcion *string `json:"descripcion,omitempty"`
	// Notas holds the value of the "notas" field.
	Notas *string `json:"notas,omitempty"`
	// Origen holds the value of the "origen" field.
	Origen string `json:"origen,omitempty"`
	// Urgente holds the value of the "urgente" field.
	Urgente bool `json:"urgente,omitempty"`
	// FechaSolicitud holds the value of the "fecha_solicitud" field.
	FechaSolicitud time.Time `json:"fecha_solicitud,omitempty"`
	// FechaCompletada holds the value of the "fecha_completada" field.
	FechaCompletada *time.Time `json:"fecha_completada,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Email holds the value of the email edge.
	Email *EmailMessage `json:"email,omitempty"`
	// Alerts holds the value of the alerts edge.
	Alerts []*Alert `json:"alerts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EmailOrErr returns the Email value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) EmailOrErr() (*EmailMessage, error) {
	if e.Email != nil {
		return e.Email, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: emailmessage.Label}
	}
	return nil, &NotLoadedError{edge: "email"}
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AlertsOrErr() ([]*Alert, error) {
	if e.loadedTypes[1] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldUrgente:
			values[i] = new(sql.NullBool)
		case task.FieldLargoMetros:
			values[i] = new(sql.NullFloat64)
		case task.FieldHileras:
			values[i] = new(sql.NullInt64)
		case task.FieldCodigoCobertor, task.FieldCuartel, task.FieldPrioridad, task.FieldEstado, task.FieldDescripcion, task.FieldNotas, task.FieldOrigen:
			values[i] = new(sql.NullString)
		case task.FieldFechaSolicitud, task.FieldFechaCompletada, task.FieldCreatedAt, task.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case task.FieldID, task.FieldEmailID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case task.FieldEmailID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field email_id", values[i])
			} else if value != nil {
				_m.EmailID = *value
			}
		case task.FieldCodigoCobertor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field codigo_cobertor", values[i])
			} else if value.Valid {
				_m.CodigoCobertor = new(string)
				*_m.CodigoCobertor = value.String
			}
		case task.FieldCuartel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cuartel", values[i])
			} else if value.Valid {
				_m.Cuartel = new(string)
				*_m.Cuartel = value.String
			}
		case task.FieldHileras:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hileras", values[i])
			} else if value.Valid {
				_m.Hileras = new(int)
				*_m.Hileras = int(value.Int64)
			}
		case task.FieldLargoMetros:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field largo_metros", values[i])
			} else if value.Valid {
				_m.LargoMetros = new(float64)
				*_m.LargoMetros = value.Float64
			}
		case task.FieldPrioridad:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prioridad", values[i])
			} else if value.Valid {
				_m.Prioridad = value.String
			}
		case task.FieldEstado:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estado", values[i])
			} else if value.Valid {
				_m.Estado = value.String
			}
		case task.FieldDescripcion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field descripcion", values[i])
			} else if value.Valid {
				_m.Descripcion = new(string)
				*_m.Descripcion = value.String
			}
		case task.FieldNotas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notas", values[i])
			} else if value.Valid {
				_m.Notas = new(string)
				*_m.Notas = value.String
			}
		case task.FieldOrigen:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origen", values[i])
			} else if value.Valid {
				_m.Origen = value.String
			}
		case task.FieldUrgente:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field urgente", values[i])
			} else if value.Valid {
				_m.Urgente = value.Bool
			}
		case task.FieldFechaSolicitud:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_solicitud", values[i])
			} else if value.Valid {
				_m.FechaSolicitud = value.Time
			}
		case task.FieldFechaCompletada:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_completada", values[i])
			} else if value.Valid {
				_m.FechaCompletada = new(time.Time)
				*_m.FechaCompletada = value.Time
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmail queries the "email" edge of the Task entity.
func (_m *Task) QueryEmail() *EmailMessageQuery {
	return NewTaskClient(_m.config).QueryEmail(_m)
}

// QueryAlerts queries the "alerts" edge of the Task entity.
func (_m *Task) QueryAlerts() *AlertQuery {
	return NewTaskClient(_m.config).QueryAlerts(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailID))
	builder.WriteString(", ")
	if v := _m.CodigoCobertor; v != nil {
		builder.WriteString("codigo_cobertor=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Cuartel; v != nil {
		builder.WriteString("cuartel=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Hileras; v != nil {
		builder.WriteString("hileras=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LargoMetros; v != nil {
		builder.WriteString("largo_metros=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("prioridad=")
	builder.WriteString(_m.Prioridad)
	builder.WriteString(", ")
	builder.WriteString("estado=")
	builder.WriteString(_m.Estado)
	builder.WriteString(", ")
	if v := _m.Descripcion; v != nil {
		builder.WriteString("descripcion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notas; v != nil {
		builder.WriteString("notas=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("origen=")
	builder.WriteString(_m.Origen)
	builder.WriteString(", ")
	builder.WriteString("urgente=")
	builder.WriteString(fmt.Sprintf("%v", _m.Urgente))
	builder.WriteString(", ")
	builder.WriteString("fecha_solicitud=")
	builder.WriteString(_m.FechaSolicitud.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FechaCompletada; v != nil {
		builder.WriteString("fecha_completada=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
