// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmailID holds the string denoting the email_id field in the database.
	FieldEmailID = "email_id"
	// FieldCodigoCobertor holds the string denoting the codigo_cobertor field in the database.
	FieldCodigoCobertor = "codigo_cobertor"
	// FieldCuartel holds the string denoting the cuartel field in the database.
	FieldCuartel = "cuartel"
	// FieldHileras holds the string denoting the hileras field in the database.
	FieldHileras = "hileras"
	// FieldLargoMetros holds the string denoting the largo_metros field in the database.
	FieldLargoMetros = "largo_metros"
	// FieldPrioridad holds the string denoting the prioridad field in the database.
	FieldPrioridad = "prioridad"
	// FieldEstado holds the string denoting the estado field in the database.
	FieldEstado = "estado"
	// FieldDescripcion holds the string denoting the descripcion field in the database.
	FieldDescripcion = "descripcion"
	// FieldNotas holds the string denoting the notas field in the database.
	FieldNotas = "notas"
	// FieldOrigen holds the string denoting the origen field in the database.
	FieldOrigen = "origen"
	// FieldUrgente holds the string denoting the urgente field in the database.
	FieldUrgente = "urgente"
	// FieldFechaSolicitud holds the string denoting the fecha_solicitud field in the database.
	FieldFechaSolicitud = "fecha_solicitud"
	// FieldFechaCompletada holds the string denoting the fecha_completada field in the database.
	FieldFechaCompletada = "fecha_completada"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEmail holds the string denoting the email edge name in mutations.
	EdgeEmail = "email"
	// EdgeAlerts holds the string denoting the alerts edge name in mutations.
	EdgeAlerts = "alerts"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// EmailTable is the table that holds the email relation/edge.
	EmailTable = "tasks"
	// EmailInverseTable is the table name for the EmailMessage entity.
	// It exists in this package in order to avoid circular dependency with the "emailmessage" package.
	EmailInverseTable = "email_messages"
	// EmailColumn is the table column denoting the email relation/edge.
	EmailColumn = "email_id"
	// AlertsTable is the table that holds the alerts relation/edge.
	AlertsTable = "alerts"
	// AlertsInverseTable is the table name for the Alert entity.
	// It exists in this package in order to avoid circular dependency with the "alert" package.
	AlertsInverseTable = "alerts"
	// AlertsColumn is the table column denoting the alerts relation/edge.
	AlertsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldEmailID,
	FieldCodigoCobertor,
	FieldCuartel,
	FieldHileras,
	FieldLargoMetros,
	FieldPrioridad,
	FieldEstado,
	FieldDescripcion,
	FieldNotas,
	FieldOrigen,
	FieldUrgente,
	FieldFechaSolicitud,
	FieldFechaCompletada,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CodigoCobertorValidator is a validator for the "codigo_cobertor" field. It is called by the builders before save.
	CodigoCobertorValidator func(string) error
	// CuartelValidator is a validator for the "cuartel" field. It is called by the builders before save.
	CuartelValidator func(string) error
	// HilerasValidator is a validator for the "hileras" field. It is called by the builders before save.
	HilerasValidator func(int) error
	// LargoMetrosValidator is a validator for the "largo_metros" field. It is called by the builders before save.
	LargoMetrosValidator func(float64) error
	// DefaultPrioridad holds the default value on creation for the "prioridad" field.
	DefaultPrioridad string
	// PrioridadValidator is a validator for the "prioridad" field. It is called by the builders before save.
	PrioridadValidator func(string) error
	// DefaultEstado holds the default value on creation for the "estado" field.
	DefaultEstado string
	// EstadoValidator is a validator for the "estado" field. It is called by the builders before save.
	EstadoValidator func(string) error
	// DescripcionValidator is a validator for the "descripcion" field. It is called by the builders before save.
	DescripcionValidator func(string) error
	// NotasValidator is a validator for the "notas" field. It is called by the builders before save.
	NotasValidator func(string) error
	// OrigenValidator is a validator for the "origen" field. It is called by the builders before save.
	OrigenValidator func(string) error
	// DefaultUrgente holds the default value on creation for the "urgente" field.
	DefaultUrgente bool
	// DefaultFechaSolicitud holds the default value on creation for the "fecha_solicitud" field.
	DefaultFechaSolicitud func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmailID orders the results by the email_id field.
func ByEmailID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailID, opts...).ToFunc()
}

// ByCodigoCobertor orders the results by the codigo_cobertor field.
func ByCodigoCobertor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCodigoCobertor, opts...).ToFunc()
}

// ByCuartel orders the results by the cuartel field.
func ByCuartel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCuartel, opts...).ToFunc()
}

// ByHileras orders the results by the hileras field.
func ByHileras(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHileras, opts...).ToFunc()
}

// ByLargoMetros orders the results by the largo_metros field.
func ByLargoMetros(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLargoMetros, opts...).ToFunc()
}

// ByPrioridad orders the results by the prioridad field.
func ByPrioridad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrioridad, opts...).ToFunc()
}

// ByEstado orders the results by the estado field.
func ByEstado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstado, opts...).ToFunc()
}

// ByDescripcion orders the results by the descripcion field.
func ByDescripcion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescripcion, opts...).ToFunc()
}

// ByNotas orders the results by the notas field.
func ByNotas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotas, opts...).ToFunc()
}

// ByOrigen orders the results by the origen field.
func ByOrigen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigen, opts...).ToFunc()
}

// ByUrgente orders the results by the urgente field.
func ByUrgente(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgente, opts...).ToFunc()
}

// ByFechaSolicitud orders the results by the fecha_solicitud field.
func ByFechaSolicitud(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaSolicitud, opts...).ToFunc()
}

// ByFechaCompletada orders the results by the fecha_completada field.
func ByFechaCompletada(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaCompletada, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEmailField orders the results by email field.
func ByEmailField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmailStep(), sql.OrderByField(field, opts...))
	}
}

// ByAlertsCount orders the results by alerts count.
func ByAlertsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertsStep(), opts...)
	}
}

// ByAlerts orders the results by alerts terms.
func ByAlerts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEmailStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmailInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
	)
}
func newAlertsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
	)
}
