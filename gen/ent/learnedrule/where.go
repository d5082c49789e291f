// Code generated by ent, DO NOT EDIT.

package learnedrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLTE(FieldID, id))
}

// RuleName applies equality check predicate on the "rule_name" field. It's identical to RuleNameEQ.
func RuleName(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldRuleName, v))
}

// SenderEmail applies equality check predicate on the "sender_email" field. It's identical to SenderEmailEQ.
func SenderEmail(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldSenderEmail, v))
}

// Urgency applies equality check predicate on the "urgency" field. It's identical to UrgencyEQ.
func Urgency(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldUrgency, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldConfidence, v))
}

// TimesTriggered applies equality check predicate on the "times_triggered" field. It's identical to TimesTriggeredEQ.
func TimesTriggered(v int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldTimesTriggered, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldCreatedAt, v))
}

// RuleNameEQ applies the EQ predicate on the "rule_name" field.
func RuleNameEQ(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldRuleName, v))
}

// RuleNameNEQ applies the NEQ predicate on the "rule_name" field.
func RuleNameNEQ(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNEQ(FieldRuleName, v))
}

// RuleNameIn applies the In predicate on the "rule_name" field.
func RuleNameIn(vs ...string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldIn(FieldRuleName, vs...))
}

// RuleNameNotIn applies the NotIn predicate on the "rule_name" field.
func RuleNameNotIn(vs ...string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNotIn(FieldRuleName, vs...))
}

// RuleNameGT applies the GT predicate on the "rule_name" field.
func RuleNameGT(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGT(FieldRuleName, v))
}

// RuleNameGTE applies the GTE predicate on the "rule_name" field.
func RuleNameGTE(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGTE(FieldRuleName, v))
}

// RuleNameLT applies the LT predicate on the "rule_name" field.
func RuleNameLT(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLT(FieldRuleName, v))
}

// RuleNameLTE applies the LTE predicate on the "rule_name" field.
func RuleNameLTE(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLTE(FieldRuleName, v))
}

// RuleNameContains applies the Contains predicate on the "rule_name" field.
func RuleNameContains(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldContains(FieldRuleName, v))
}

// RuleNameHasPrefix applies the HasPrefix predicate on the "rule_name" field.
func RuleNameHasPrefix(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldHasPrefix(FieldRuleName, v))
}

// RuleNameHasSuffix applies the HasSuffix predicate on the "rule_name" field.
func RuleNameHasSuffix(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldHasSuffix(FieldRuleName, v))
}

// RuleNameEqualFold applies the EqualFold predicate on the "rule_name" field.
func RuleNameEqualFold(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEqualFold(FieldRuleName, v))
}

// RuleNameContainsFold applies the ContainsFold predicate on the "rule_name" field.
func RuleNameContainsFold(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldContainsFold(FieldRuleName, v))
}

// SenderEmailEQ applies the EQ predicate on the "sender_email" field.
func SenderEmailEQ(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldSenderEmail, v))
}

// SenderEmailNEQ applies the NEQ predicate on the "sender_email" field.
func SenderEmailNEQ(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNEQ(FieldSenderEmail, v))
}

// SenderEmailIn applies the In predicate on the "sender_email" field.
func SenderEmailIn(vs ...string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldIn(FieldSenderEmail, vs...))
}

// SenderEmailNotIn applies the NotIn predicate on the "sender_email" field.
func SenderEmailNotIn(vs ...string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNotIn(FieldSenderEmail, vs...))
}

// SenderEmailGT applies the GT predicate on the "sender_email" field.
func SenderEmailGT(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGT(FieldSenderEmail, v))
}

// SenderEmailGTE applies the GTE predicate on the "sender_email" field.
func SenderEmailGTE(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGTE(FieldSenderEmail, v))
}

// SenderEmailLT applies the LT predicate on the "sender_email" field.
func SenderEmailLT(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLT(FieldSenderEmail, v))
}

// SenderEmailLTE applies the LTE predicate on the "sender_email" field.
func SenderEmailLTE(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLTE(FieldSenderEmail, v))
}

// SenderEmailContains applies the Contains predicate on the "sender_email" field.
func SenderEmailContains(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldContains(FieldSenderEmail, v))
}

// SenderEmailHasPrefix applies the HasPrefix predicate on the "sender_email" field.
func SenderEmailHasPrefix(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldHasPrefix(FieldSenderEmail, v))
}

// SenderEmailHasSuffix applies the HasSuffix predicate on the "sender_email" field.
func SenderEmailHasSuffix(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldHasSuffix(FieldSenderEmail, v))
}

// SenderEmailEqualFold applies the EqualFold predicate on the "sender_email" field.
func SenderEmailEqualFold(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEqualFold(FieldSenderEmail, v))
}

// SenderEmailContainsFold applies the ContainsFold predicate on the "sender_email" field.
func SenderEmailContainsFold(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldContainsFold(FieldSenderEmail, v))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNotIn(FieldUrgency, vs...))
}

// UrgencyGT applies the GT predicate on the "urgency" field.
func UrgencyGT(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGT(FieldUrgency, v))
}

// UrgencyGTE applies the GTE predicate on the "urgency" field.
func UrgencyGTE(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGTE(FieldUrgency, v))
}

// UrgencyLT applies the LT predicate on the "urgency" field.
func UrgencyLT(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLT(FieldUrgency, v))
}

// UrgencyLTE applies the LTE predicate on the "urgency" field.
func UrgencyLTE(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLTE(FieldUrgency, v))
}

// UrgencyContains applies the Contains predicate on the "urgency" field.
func UrgencyContains(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldContains(FieldUrgency, v))
}

// UrgencyHasPrefix applies the HasPrefix predicate on the "urgency" field.
func UrgencyHasPrefix(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldHasPrefix(FieldUrgency, v))
}

// UrgencyHasSuffix applies the HasSuffix predicate on the "urgency" field.
func UrgencyHasSuffix(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldHasSuffix(FieldUrgency, v))
}

// UrgencyEqualFold applies the EqualFold predicate on the "urgency" field.
func UrgencyEqualFold(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEqualFold(FieldUrgency, v))
}

// UrgencyContainsFold applies the ContainsFold predicate on the "urgency" field.
func UrgencyContainsFold(v string) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldContainsFold(FieldUrgency, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLTE(FieldConfidence, v))
}

// TimesTriggeredEQ applies the EQ predicate on the "times_triggered" field.
func TimesTriggeredEQ(v int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldTimesTriggered, v))
}

// TimesTriggeredNEQ applies the NEQ predicate on the "times_triggered" field.
func TimesTriggeredNEQ(v int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNEQ(FieldTimesTriggered, v))
}

// TimesTriggeredIn applies the In predicate on the "times_triggered" field.
func TimesTriggeredIn(vs ...int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldIn(FieldTimesTriggered, vs...))
}

// TimesTriggeredNotIn applies the NotIn predicate on the "times_triggered" field.
func TimesTriggeredNotIn(vs ...int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNotIn(FieldTimesTriggered, vs...))
}

// TimesTriggeredGT applies the GT predicate on the "times_triggered" field.
func TimesTriggeredGT(v int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGT(FieldTimesTriggered, v))
}

// TimesTriggeredGTE applies the GTE predicate on the "times_triggered" field.
func TimesTriggeredGTE(v int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGTE(FieldTimesTriggered, v))
}

// TimesTriggeredLT applies the LT predicate on the "times_triggered" field.
func TimesTriggeredLT(v int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLT(FieldTimesTriggered, v))
}

// TimesTriggeredLTE applies the LTE predicate on the "times_triggered" field.
func TimesTriggeredLTE(v int) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLTE(FieldTimesTriggered, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearnedRule {
	return predicate.LearnedRule(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnedRule) predicate.LearnedRule {
	return predicate.LearnedRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnedRule) predicate.LearnedRule {
	return predicate.LearnedRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnedRule) predicate.LearnedRule {
	return predicate.LearnedRule(sql.NotPredicates(p))
}
