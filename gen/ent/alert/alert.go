// Code generated by ent, DO NOT EDIT.

package alert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the alert type in the database.
	Label = "alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTipo holds the string denoting the tipo field in the database.
	FieldTipo = "tipo"
	// FieldTitulo holds the string denoting the titulo field in the database.
	FieldTitulo = "titulo"
	// FieldDescripcion holds the string denoting the descripcion field in the database.
	FieldDescripcion = "descripcion"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldEmailID holds the string denoting the email_id field in the database.
	FieldEmailID = "email_id"
	// FieldSeveridad holds the string denoting the severidad field in the database.
	FieldSeveridad = "severidad"
	// FieldLeida holds the string denoting the leida field in the database.
	FieldLeida = "leida"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEmail holds the string denoting the email edge name in mutations.
	EdgeEmail = "email"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// Table holds the table name of the alert in the database.
	Table = "alerts"
	// EmailTable is the table that holds the email relation/edge.
	EmailTable = "alerts"
	// EmailInverseTable is the table name for the EmailMessage entity.
	// It exists in this package in order to avoid circular dependency with the "emailmessage" package.
	EmailInverseTable = "email_messages"
	// EmailColumn is the table column denoting the email relation/edge.
	EmailColumn = "email_id"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "alerts"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for alert fields.
var Columns = []string{
	FieldID,
	FieldTipo,
	FieldTitulo,
	FieldDescripcion,
	FieldTaskID,
	FieldEmailID,
	FieldSeveridad,
	FieldLeida,
	FieldCreatedAt,
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
	// TipoValidator is a validator for the "tipo" field. It is called by the builders before save.
	TipoValidator func(string) error
	// TituloValidator is a validator for the "titulo" field. It is called by the builders before save.
	TituloValidator func(string) error
	// DefaultSeveridad holds the default value on creation for the "severidad" field.
	DefaultSeveridad string
	// SeveridadValidator is a validator for the "severidad" field. It is called by the builders before save.
	SeveridadValidator func(string) error
	// DefaultLeida holds the default value on creation for the "leida" field.
	DefaultLeida bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Alert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTipo orders the results by the tipo field.
func ByTipo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipo, opts...).ToFunc()
}

// ByTitulo orders the results by the titulo field.
func ByTitulo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitulo, opts...).ToFunc()
}

// ByDescripcion orders the results by the descripcion field.
func ByDescripcion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescripcion, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByEmailID orders the results by the email_id field.
func ByEmailID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailID, opts...).ToFunc()
}

// BySeveridad orders the results by the severidad field.
func BySeveridad(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeveridad, opts...).ToFunc()
}

// ByLeida orders the results by the leida field.
func ByLeida(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeida, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEmailField orders the results by email field.
func ByEmailField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmailStep(), sql.OrderByField(field, opts...))
	}
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newEmailStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmailInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
	)
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
