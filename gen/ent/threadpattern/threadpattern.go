// Code generated by ent, DO NOT EDIT.

package threadpattern

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the threadpattern type in the database.
	Label = "thread_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldTotalMessages holds the string denoting the total_messages field in the database.
	FieldTotalMessages = "total_messages"
	// FieldInternalParticipants holds the string denoting the internal_participants field in the database.
	FieldInternalParticipants = "internal_participants"
	// FieldExternalParticipants holds the string denoting the external_participants field in the database.
	FieldExternalParticipants = "external_participants"
	// FieldHasForward holds the string denoting the has_forward field in the database.
	FieldHasForward = "has_forward"
	// FieldHasAttachments holds the string denoting the has_attachments field in the database.
	FieldHasAttachments = "has_attachments"
	// FieldComplexity holds the string denoting the complexity field in the database.
	FieldComplexity = "complexity"
	// Table holds the table name of the threadpattern in the database.
	Table = "thread_patterns"
)

// Columns holds all SQL columns for threadpattern fields.
var Columns = []string{
	FieldID,
	FieldThreadID,
	FieldTotalMessages,
	FieldInternalParticipants,
	FieldExternalParticipants,
	FieldHasForward,
	FieldHasAttachments,
	FieldComplexity,
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
	// ThreadIDValidator is a validator for the "thread_id" field. It is called by the builders before save.
	ThreadIDValidator func(string) error
	// DefaultTotalMessages holds the default value on creation for the "total_messages" field.
	DefaultTotalMessages int
	// TotalMessagesValidator is a validator for the "total_messages" field. It is called by the builders before save.
	TotalMessagesValidator func(int) error
	// DefaultInternalParticipants holds the default value on creation for the "internal_participants" field.
	DefaultInternalParticipants int
	// InternalParticipantsValidator is a validator for the "internal_participants" field. It is called by the builders before save.
	InternalParticipantsValidator func(int) error
	// DefaultExternalParticipants holds the default value on creation for the "external_participants" field.
	DefaultExternalParticipants int
	// ExternalParticipantsValidator is a validator for the "external_participants" field. It is called by the builders before save.
	ExternalParticipantsValidator func(int) error
	// DefaultHasForward holds the default value on creation for the "has_forward" field.
	DefaultHasForward bool
	// DefaultHasAttachments holds the default value on creation for the "has_attachments" field.
	DefaultHasAttachments bool
	// DefaultComplexity holds the default value on creation for the "complexity" field.
	DefaultComplexity string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ThreadPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByTotalMessages orders the results by the total_messages field.
func ByTotalMessages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMessages, opts...).ToFunc()
}

// ByInternalParticipants orders the results by the internal_participants field.
func ByInternalParticipants(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInternalParticipants, opts...).ToFunc()
}

// ByExternalParticipants orders the results by the external_participants field.
func ByExternalParticipants(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalParticipants, opts...).ToFunc()
}

// ByHasForward orders the results by the has_forward field.
func ByHasForward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasForward, opts...).ToFunc()
}

// ByHasAttachments orders the results by the has_attachments field.
func ByHasAttachments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasAttachments, opts...).ToFunc()
}

// ByComplexity orders the results by the complexity field.
func ByComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComplexity, opts...).ToFunc()
}
