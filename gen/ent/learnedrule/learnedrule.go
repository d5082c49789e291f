// Code generated by ent, DO NOT EDIT.

package learnedrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the learnedrule type in the database.
	Label = "learned_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRuleName holds the string denoting the rule_name field in the database.
	FieldRuleName = "rule_name"
	// FieldSenderEmail holds the string denoting the sender_email field in the database.
	FieldSenderEmail = "sender_email"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTimesTriggered holds the string denoting the times_triggered field in the database.
	FieldTimesTriggered = "times_triggered"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the learnedrule in the database.
	Table = "learned_rules"
)

// Columns holds all SQL columns for learnedrule fields.
var Columns = []string{
	FieldID,
	FieldRuleName,
	FieldSenderEmail,
	FieldUrgency,
	FieldConfidence,
	FieldTimesTriggered,
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
	// RuleNameValidator is a validator for the "rule_name" field. It is called by the builders before save.
	RuleNameValidator func(string) error
	// SenderEmailValidator is a validator for the "sender_email" field. It is called by the builders before save.
	SenderEmailValidator func(string) error
	// UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	UrgencyValidator func(string) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultTimesTriggered holds the default value on creation for the "times_triggered" field.
	DefaultTimesTriggered int
	// TimesTriggeredValidator is a validator for the "times_triggered" field. It is called by the builders before save.
	TimesTriggeredValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LearnedRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRuleName orders the results by the rule_name field.
func ByRuleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleName, opts...).ToFunc()
}

// BySenderEmail orders the results by the sender_email field.
func BySenderEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSenderEmail, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTimesTriggered orders the results by the times_triggered field.
func ByTimesTriggered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesTriggered, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
