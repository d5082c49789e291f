// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/threadpattern"
	"github.com/google/uuid"
)

// ThreadPattern is the model entity for the ThreadPattern schema.
type ThreadPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID string `json:"thread_id,omitempty"`
	// TotalMessages holds the value of the "total_messages" field.
	TotalMessages int `json:"total_messages,omitempty"`
	// InternalParticipants holds the value of the "internal_participants" field.
	InternalParticipants int `json:"internal_participants,omitempty"`
	// ExternalParticipants holds the value of the "external_participants" field.
	ExternalParticipants int `json:"external_participants,omitempty"`
	// HasForward holds the value of the "has_forward" field.
	HasForward bool `json:"has_forward,omitempty"`
	// HasAttachments holds the value of the "has_attachments" field.
	HasAttachments bool `json:"has_attachments,omitempty"`
	// Complexity holds the value of the "complexity" field.
	Complexity   string `json:"complexity,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ThreadPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case threadpattern.FieldHasForward, threadpattern.FieldHasAttachments:
			values[i] = new(sql.NullBool)
		case threadpattern.FieldTotalMessages, threadpattern.FieldInternalParticipants, threadpattern.FieldExternalParticipants:
			values[i] = new(sql.NullInt64)
		case threadpattern.FieldThreadID, threadpattern.FieldComplexity:
			values[i] = new(sql.NullString)
		case threadpattern.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ThreadPattern fields.
func (_m *ThreadPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case threadpattern.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case threadpattern.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case threadpattern.FieldTotalMessages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_messages", values[i])
			} else if value.Valid {
				_m.TotalMessages = int(value.Int64)
			}
		case threadpattern.FieldInternalParticipants:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field internal_participants", values[i])
			} else if value.Valid {
				_m.InternalParticipants = int(value.Int64)
			}
		case threadpattern.FieldExternalParticipants:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field external_participants", values[i])
			} else if value.Valid {
				_m.ExternalParticipants = int(value.Int64)
			}
		case threadpattern.FieldHasForward:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_forward", values[i])
			} else if value.Valid {
				_m.HasForward = value.Bool
			}
		case threadpattern.FieldHasAttachments:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_attachments", values[i])
			} else if value.Valid {
				_m.HasAttachments = value.Bool
			}
		case threadpattern.FieldComplexity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field complexity", values[i])
			} else if value.Valid {
				_m.Complexity = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ThreadPattern.
// This includes values selected through modifiers, order, etc.
func (_m *ThreadPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ThreadPattern.
// Note that you need to call ThreadPattern.Unwrap() before calling this method if this ThreadPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ThreadPattern) Update() *ThreadPatternUpdateOne {
	return NewThreadPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ThreadPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ThreadPattern) Unwrap() *ThreadPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ThreadPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ThreadPattern) String() string {
	var builder strings.Builder
	builder.WriteString("ThreadPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("total_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMessages))
	builder.WriteString(", ")
	builder.WriteString("internal_participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.InternalParticipants))
	builder.WriteString(", ")
	builder.WriteString("external_participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExternalParticipants))
	builder.WriteString(", ")
	builder.WriteString("has_forward=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasForward))
	builder.WriteString(", ")
	builder.WriteString("has_attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasAttachments))
	builder.WriteString(", ")
	builder.WriteString("complexity=")
	builder.WriteString(_m.Complexity)
	builder.WriteByte(')')
	return builder.String()
}

// ThreadPatterns is a parsable slice of ThreadPattern.
type ThreadPatterns []*ThreadPattern
