// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/senderprofile"
	"github.com/google/uuid"
)

// SenderProfile is the model entity for the SenderProfile schema.
type SenderProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// TypicalUrgency holds the value of the "typical_urgency" field.
	TypicalUrgency string `json:"typical_urgency,omitempty"`
	// TypicalIntent holds the value of the "typical_intent" field.
	TypicalIntent string `json:"typical_intent,omitempty"`
	// EmailsAnalyzed holds the value of the "emails_analyzed" field.
	EmailsAnalyzed int `json:"emails_analyzed,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SenderProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case senderprofile.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case senderprofile.FieldEmailsAnalyzed:
			values[i] = new(sql.NullInt64)
		case senderprofile.FieldEmail, senderprofile.FieldDomain, senderprofile.FieldCategory, senderprofile.FieldTypicalUrgency, senderprofile.FieldTypicalIntent:
			values[i] = new(sql.NullString)
		case senderprofile.FieldLastSeen:
			values[i] = new(sql.NullTime)
		case senderprofile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SenderProfile fields.
func (_m *SenderProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case senderprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case senderprofile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case senderprofile.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case senderprofile.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case senderprofile.FieldTypicalUrgency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field typical_urgency", values[i])
			} else if value.Valid {
				_m.TypicalUrgency = value.String
			}
		case senderprofile.FieldTypicalIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field typical_intent", values[i])
			} else if value.Valid {
				_m.TypicalIntent = value.String
			}
		case senderprofile.FieldEmailsAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field emails_analyzed", values[i])
			} else if value.Valid {
				_m.EmailsAnalyzed = int(value.Int64)
			}
		case senderprofile.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case senderprofile.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SenderProfile.
// This includes values selected through modifiers, order, etc.
func (_m *SenderProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SenderProfile.
// Note that you need to call SenderProfile.Unwrap() before calling this method if this SenderProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SenderProfile) Update() *SenderProfileUpdateOne {
	return NewSenderProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SenderProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SenderProfile) Unwrap() *SenderProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SenderProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SenderProfile) String() string {
	var builder strings.Builder
	builder.WriteString("SenderProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("typical_urgency=")
	builder.WriteString(_m.TypicalUrgency)
	builder.WriteString(", ")
	builder.WriteString("typical_intent=")
	builder.WriteString(_m.TypicalIntent)
	builder.WriteString(", ")
	builder.WriteString("emails_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SenderProfiles is a parsable slice of SenderProfile.
type SenderProfiles []*SenderProfile
