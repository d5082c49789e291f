// Code generated by ent, DO NOT EDIT.

package threadpattern

import (
	"entgo.io/ent/dialect/sql"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLTE(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldThreadID, v))
}

// TotalMessages applies equality check predicate on the "total_messages" field. It's identical to TotalMessagesEQ.
func TotalMessages(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldTotalMessages, v))
}

// InternalParticipants applies equality check predicate on the "internal_participants" field. It's identical to InternalParticipantsEQ.
func InternalParticipants(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldInternalParticipants, v))
}

// ExternalParticipants applies equality check predicate on the "external_participants" field. It's identical to ExternalParticipantsEQ.
func ExternalParticipants(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldExternalParticipants, v))
}

// HasForward applies equality check predicate on the "has_forward" field. It's identical to HasForwardEQ.
func HasForward(v bool) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldHasForward, v))
}

// HasAttachments applies equality check predicate on the "has_attachments" field. It's identical to HasAttachmentsEQ.
func HasAttachments(v bool) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldHasAttachments, v))
}

// Complexity applies equality check predicate on the "complexity" field. It's identical to ComplexityEQ.
func Complexity(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldComplexity, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldContainsFold(FieldThreadID, v))
}

// TotalMessagesEQ applies the EQ predicate on the "total_messages" field.
func TotalMessagesEQ(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldTotalMessages, v))
}

// TotalMessagesNEQ applies the NEQ predicate on the "total_messages" field.
func TotalMessagesNEQ(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNEQ(FieldTotalMessages, v))
}

// TotalMessagesIn applies the In predicate on the "total_messages" field.
func TotalMessagesIn(vs ...int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldIn(FieldTotalMessages, vs...))
}

// TotalMessagesNotIn applies the NotIn predicate on the "total_messages" field.
func TotalMessagesNotIn(vs ...int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNotIn(FieldTotalMessages, vs...))
}

// TotalMessagesGT applies the GT predicate on the "total_messages" field.
func TotalMessagesGT(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGT(FieldTotalMessages, v))
}

// TotalMessagesGTE applies the GTE predicate on the "total_messages" field.
func TotalMessagesGTE(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGTE(FieldTotalMessages, v))
}

// TotalMessagesLT applies the LT predicate on the "total_messages" field.
func TotalMessagesLT(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLT(FieldTotalMessages, v))
}

// TotalMessagesLTE applies the LTE predicate on the "total_messages" field.
func TotalMessagesLTE(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLTE(FieldTotalMessages, v))
}

// InternalParticipantsEQ applies the EQ predicate on the "internal_participants" field.
func InternalParticipantsEQ(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldInternalParticipants, v))
}

// InternalParticipantsNEQ applies the NEQ predicate on the "internal_participants" field.
func InternalParticipantsNEQ(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNEQ(FieldInternalParticipants, v))
}

// InternalParticipantsIn applies the In predicate on the "internal_participants" field.
func InternalParticipantsIn(vs ...int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldIn(FieldInternalParticipants, vs...))
}

// InternalParticipantsNotIn applies the NotIn predicate on the "internal_participants" field.
func InternalParticipantsNotIn(vs ...int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNotIn(FieldInternalParticipants, vs...))
}

// InternalParticipantsGT applies the GT predicate on the "internal_participants" field.
func InternalParticipantsGT(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGT(FieldInternalParticipants, v))
}

// InternalParticipantsGTE applies the GTE predicate on the "internal_participants" field.
func InternalParticipantsGTE(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGTE(FieldInternalParticipants, v))
}

// InternalParticipantsLT applies the LT predicate on the "internal_participants" field.
func InternalParticipantsLT(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLT(FieldInternalParticipants, v))
}

// InternalParticipantsLTE applies the LTE predicate on the "internal_participants" field.
func InternalParticipantsLTE(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLTE(FieldInternalParticipants, v))
}

// ExternalParticipantsEQ applies the EQ predicate on the "external_participants" field.
func ExternalParticipantsEQ(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldExternalParticipants, v))
}

// ExternalParticipantsNEQ applies the NEQ predicate on the "external_participants" field.
func ExternalParticipantsNEQ(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNEQ(FieldExternalParticipants, v))
}

// ExternalParticipantsIn applies the In predicate on the "external_participants" field.
func ExternalParticipantsIn(vs ...int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldIn(FieldExternalParticipants, vs...))
}

// ExternalParticipantsNotIn applies the NotIn predicate on the "external_participants" field.
func ExternalParticipantsNotIn(vs ...int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNotIn(FieldExternalParticipants, vs...))
}

// ExternalParticipantsGT applies the GT predicate on the "external_participants" field.
func ExternalParticipantsGT(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGT(FieldExternalParticipants, v))
}

// ExternalParticipantsGTE applies the GTE predicate on the "external_participants" field.
func ExternalParticipantsGTE(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGTE(FieldExternalParticipants, v))
}

// ExternalParticipantsLT applies the LT predicate on the "external_participants" field.
func ExternalParticipantsLT(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLT(FieldExternalParticipants, v))
}

// ExternalParticipantsLTE applies the LTE predicate on the "external_participants" field.
func ExternalParticipantsLTE(v int) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLTE(FieldExternalParticipants, v))
}

// HasForwardEQ applies the EQ predicate on the "has_forward" field.
func HasForwardEQ(v bool) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldHasForward, v))
}

// HasForwardNEQ applies the NEQ predicate on the "has_forward" field.
func HasForwardNEQ(v bool) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNEQ(FieldHasForward, v))
}

// HasAttachmentsEQ applies the EQ predicate on the "has_attachments" field.
func HasAttachmentsEQ(v bool) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldHasAttachments, v))
}

// HasAttachmentsNEQ applies the NEQ predicate on the "has_attachments" field.
func HasAttachmentsNEQ(v bool) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNEQ(FieldHasAttachments, v))
}

// ComplexityEQ applies the EQ predicate on the "complexity" field.
func ComplexityEQ(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEQ(FieldComplexity, v))
}

// ComplexityNEQ applies the NEQ predicate on the "complexity" field.
func ComplexityNEQ(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNEQ(FieldComplexity, v))
}

// ComplexityIn applies the In predicate on the "complexity" field.
func ComplexityIn(vs ...string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldIn(FieldComplexity, vs...))
}

// ComplexityNotIn applies the NotIn predicate on the "complexity" field.
func ComplexityNotIn(vs ...string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldNotIn(FieldComplexity, vs...))
}

// ComplexityGT applies the GT predicate on the "complexity" field.
func ComplexityGT(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGT(FieldComplexity, v))
}

// ComplexityGTE applies the GTE predicate on the "complexity" field.
func ComplexityGTE(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldGTE(FieldComplexity, v))
}

// ComplexityLT applies the LT predicate on the "complexity" field.
func ComplexityLT(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLT(FieldComplexity, v))
}

// ComplexityLTE applies the LTE predicate on the "complexity" field.
func ComplexityLTE(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldLTE(FieldComplexity, v))
}

// ComplexityContains applies the Contains predicate on the "complexity" field.
func ComplexityContains(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldContains(FieldComplexity, v))
}

// ComplexityHasPrefix applies the HasPrefix predicate on the "complexity" field.
func ComplexityHasPrefix(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldHasPrefix(FieldComplexity, v))
}

// ComplexityHasSuffix applies the HasSuffix predicate on the "complexity" field.
func ComplexityHasSuffix(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldHasSuffix(FieldComplexity, v))
}

// ComplexityEqualFold applies the EqualFold predicate on the "complexity" field.
func ComplexityEqualFold(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldEqualFold(FieldComplexity, v))
}

// ComplexityContainsFold applies the ContainsFold predicate on the "complexity" field.
func ComplexityContainsFold(v string) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.FieldContainsFold(FieldComplexity, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ThreadPattern) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ThreadPattern) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ThreadPattern) predicate.ThreadPattern {
	return predicate.ThreadPattern(sql.NotPredicates(p))
}
