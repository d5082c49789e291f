// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/learnedrule"
	"github.com/google/uuid"
)

// LearnedRule is the model entity for the LearnedRule schema.
type LearnedRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RuleName holds the value of the "rule_name" field.
	RuleName string `json:"rule_name,omitempty"`
	// SenderEmail holds the value of the "sender_email" field.
	SenderEmail string `json:"sender_email,omitempty"`
	// Urgency holds the value of the "urgency" field.
	Urgency string `json:"urgency,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// TimesTriggered holds the value of the "times_triggered" field.
	TimesTriggered int `json:"times_triggered,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnedRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnedrule.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case learnedrule.FieldTimesTriggered:
			values[i] = new(sql.NullInt64)
		case learnedrule.FieldRuleName, learnedrule.FieldSenderEmail, learnedrule.FieldUrgency:
			values[i] = new(sql.NullString)
		case learnedrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case learnedrule.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnedRule fields.
func (_m *LearnedRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnedrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case learnedrule.FieldRuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_name", values[i])
			} else if value.Valid {
				_m.RuleName = value.String
			}
		case learnedrule.FieldSenderEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender_email", values[i])
			} else if value.Valid {
				_m.SenderEmail = value.String
			}
		case learnedrule.FieldUrgency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field urgency", values[i])
			} else if value.Valid {
				_m.Urgency = value.String
			}
		case learnedrule.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case learnedrule.FieldTimesTriggered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_triggered", values[i])
			} else if value.Valid {
				_m.TimesTriggered = int(value.Int64)
			}
		case learnedrule.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LearnedRule.
// This includes values selected through modifiers, order, etc.
func (_m *LearnedRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnedRule.
// Note that you need to call LearnedRule.Unwrap() before calling this method if this LearnedRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnedRule) Update() *LearnedRuleUpdateOne {
	return NewLearnedRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnedRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnedRule) Unwrap() *LearnedRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnedRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnedRule) String() string {
	var builder strings.Builder
	builder.WriteString("LearnedRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("rule_name=")
	builder.WriteString(_m.RuleName)
	builder.WriteString(", ")
	builder.WriteString("sender_email=")
	builder.WriteString(_m.SenderEmail)
	builder.WriteString(", ")
	builder.WriteString("urgency=")
	builder.WriteString(_m.Urgency)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("times_triggered=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesTriggered))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnedRules is a parsable slice of LearnedRule.
type LearnedRules []*LearnedRule
