// Code generated by ent, DO NOT EDIT.

package senderprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldEmail, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldDomain, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldCategory, v))
}

// TypicalUrgency applies equality check predicate on the "typical_urgency" field. It's identical to TypicalUrgencyEQ.
func TypicalUrgency(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldTypicalUrgency, v))
}

// TypicalIntent applies equality check predicate on the "typical_intent" field. It's identical to TypicalIntentEQ.
func TypicalIntent(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldTypicalIntent, v))
}

// EmailsAnalyzed applies equality check predicate on the "emails_analyzed" field. It's identical to EmailsAnalyzedEQ.
func EmailsAnalyzed(v int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldEmailsAnalyzed, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldConfidence, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldLastSeen, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContainsFold(FieldEmail, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContainsFold(FieldDomain, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContainsFold(FieldCategory, v))
}

// TypicalUrgencyEQ applies the EQ predicate on the "typical_urgency" field.
func TypicalUrgencyEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldTypicalUrgency, v))
}

// TypicalUrgencyNEQ applies the NEQ predicate on the "typical_urgency" field.
func TypicalUrgencyNEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldTypicalUrgency, v))
}

// TypicalUrgencyIn applies the In predicate on the "typical_urgency" field.
func TypicalUrgencyIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldTypicalUrgency, vs...))
}

// TypicalUrgencyNotIn applies the NotIn predicate on the "typical_urgency" field.
func TypicalUrgencyNotIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldTypicalUrgency, vs...))
}

// TypicalUrgencyGT applies the GT predicate on the "typical_urgency" field.
func TypicalUrgencyGT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldTypicalUrgency, v))
}

// TypicalUrgencyGTE applies the GTE predicate on the "typical_urgency" field.
func TypicalUrgencyGTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldTypicalUrgency, v))
}

// TypicalUrgencyLT applies the LT predicate on the "typical_urgency" field.
func TypicalUrgencyLT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldTypicalUrgency, v))
}

// TypicalUrgencyLTE applies the LTE predicate on the "typical_urgency" field.
func TypicalUrgencyLTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldTypicalUrgency, v))
}

// TypicalUrgencyContains applies the Contains predicate on the "typical_urgency" field.
func TypicalUrgencyContains(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContains(FieldTypicalUrgency, v))
}

// TypicalUrgencyHasPrefix applies the HasPrefix predicate on the "typical_urgency" field.
func TypicalUrgencyHasPrefix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasPrefix(FieldTypicalUrgency, v))
}

// TypicalUrgencyHasSuffix applies the HasSuffix predicate on the "typical_urgency" field.
func TypicalUrgencyHasSuffix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasSuffix(FieldTypicalUrgency, v))
}

// TypicalUrgencyEqualFold applies the EqualFold predicate on the "typical_urgency" field.
func TypicalUrgencyEqualFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEqualFold(FieldTypicalUrgency, v))
}

// TypicalUrgencyContainsFold applies the ContainsFold predicate on the "typical_urgency" field.
func TypicalUrgencyContainsFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContainsFold(FieldTypicalUrgency, v))
}

// TypicalIntentEQ applies the EQ predicate on the "typical_intent" field.
func TypicalIntentEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldTypicalIntent, v))
}

// TypicalIntentNEQ applies the NEQ predicate on the "typical_intent" field.
func TypicalIntentNEQ(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldTypicalIntent, v))
}

// TypicalIntentIn applies the In predicate on the "typical_intent" field.
func TypicalIntentIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldTypicalIntent, vs...))
}

// TypicalIntentNotIn applies the NotIn predicate on the "typical_intent" field.
func TypicalIntentNotIn(vs ...string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldTypicalIntent, vs...))
}

// TypicalIntentGT applies the GT predicate on the "typical_intent" field.
func TypicalIntentGT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldTypicalIntent, v))
}

// TypicalIntentGTE applies the GTE predicate on the "typical_intent" field.
func TypicalIntentGTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldTypicalIntent, v))
}

// TypicalIntentLT applies the LT predicate on the "typical_intent" field.
func TypicalIntentLT(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldTypicalIntent, v))
}

// TypicalIntentLTE applies the LTE predicate on the "typical_intent" field.
func TypicalIntentLTE(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldTypicalIntent, v))
}

// TypicalIntentContains applies the Contains predicate on the "typical_intent" field.
func TypicalIntentContains(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContains(FieldTypicalIntent, v))
}

// TypicalIntentHasPrefix applies the HasPrefix predicate on the "typical_intent" field.
func TypicalIntentHasPrefix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasPrefix(FieldTypicalIntent, v))
}

// TypicalIntentHasSuffix applies the HasSuffix predicate on the "typical_intent" field.
func TypicalIntentHasSuffix(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldHasSuffix(FieldTypicalIntent, v))
}

// TypicalIntentEqualFold applies the EqualFold predicate on the "typical_intent" field.
func TypicalIntentEqualFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEqualFold(FieldTypicalIntent, v))
}

// TypicalIntentContainsFold applies the ContainsFold predicate on the "typical_intent" field.
func TypicalIntentContainsFold(v string) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldContainsFold(FieldTypicalIntent, v))
}

// EmailsAnalyzedEQ applies the EQ predicate on the "emails_analyzed" field.
func EmailsAnalyzedEQ(v int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldEmailsAnalyzed, v))
}

// EmailsAnalyzedNEQ applies the NEQ predicate on the "emails_analyzed" field.
func EmailsAnalyzedNEQ(v int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldEmailsAnalyzed, v))
}

// EmailsAnalyzedIn applies the In predicate on the "emails_analyzed" field.
func EmailsAnalyzedIn(vs ...int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldEmailsAnalyzed, vs...))
}

// EmailsAnalyzedNotIn applies the NotIn predicate on the "emails_analyzed" field.
func EmailsAnalyzedNotIn(vs ...int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldEmailsAnalyzed, vs...))
}

// EmailsAnalyzedGT applies the GT predicate on the "emails_analyzed" field.
func EmailsAnalyzedGT(v int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldEmailsAnalyzed, v))
}

// EmailsAnalyzedGTE applies the GTE predicate on the "emails_analyzed" field.
func EmailsAnalyzedGTE(v int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldEmailsAnalyzed, v))
}

// EmailsAnalyzedLT applies the LT predicate on the "emails_analyzed" field.
func EmailsAnalyzedLT(v int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldEmailsAnalyzed, v))
}

// EmailsAnalyzedLTE applies the LTE predicate on the "emails_analyzed" field.
func EmailsAnalyzedLTE(v int) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldEmailsAnalyzed, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldConfidence, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.SenderProfile {
	return predicate.SenderProfile(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SenderProfile) predicate.SenderProfile {
	return predicate.SenderProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SenderProfile) predicate.SenderProfile {
	return predicate.SenderProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SenderProfile) predicate.SenderProfile {
	return predicate.SenderProfile(sql.NotPredicates(p))
}
