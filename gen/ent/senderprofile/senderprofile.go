// Code generated by ent, DO NOT EDIT.

package senderprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the senderprofile type in the database.
	Label = "sender_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTypicalUrgency holds the string denoting the typical_urgency field in the database.
	FieldTypicalUrgency = "typical_urgency"
	// FieldTypicalIntent holds the string denoting the typical_intent field in the database.
	FieldTypicalIntent = "typical_intent"
	// FieldEmailsAnalyzed holds the string denoting the emails_analyzed field in the database.
	FieldEmailsAnalyzed = "emails_analyzed"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the senderprofile in the database.
	Table = "sender_profiles"
)

// Columns holds all SQL columns for senderprofile fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldDomain,
	FieldCategory,
	FieldTypicalUrgency,
	FieldTypicalIntent,
	FieldEmailsAnalyzed,
	FieldConfidence,
	FieldLastSeen,
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
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultDomain holds the default value on creation for the "domain" field.
	DefaultDomain string
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultTypicalUrgency holds the default value on creation for the "typical_urgency" field.
	DefaultTypicalUrgency string
	// DefaultTypicalIntent holds the default value on creation for the "typical_intent" field.
	DefaultTypicalIntent string
	// DefaultEmailsAnalyzed holds the default value on creation for the "emails_analyzed" field.
	DefaultEmailsAnalyzed int
	// EmailsAnalyzedValidator is a validator for the "emails_analyzed" field. It is called by the builders before save.
	EmailsAnalyzedValidator func(int) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// UpdateDefaultLastSeen holds the default value on update for the "last_seen" field.
	UpdateDefaultLastSeen func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SenderProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByTypicalUrgency orders the results by the typical_urgency field.
func ByTypicalUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypicalUrgency, opts...).ToFunc()
}

// ByTypicalIntent orders the results by the typical_intent field.
func ByTypicalIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypicalIntent, opts...).ToFunc()
}

// ByEmailsAnalyzed orders the results by the emails_analyzed field.
func ByEmailsAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailsAnalyzed, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
