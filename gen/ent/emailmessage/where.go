// Code generated by ent, DO NOT EDIT.

package emailmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldID, id))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldMessageID, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldThreadID, v))
}

// SenderEmail applies equality check predicate on the "sender_email" field. It's identical to SenderEmailEQ.
func SenderEmail(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSenderEmail, v))
}

// SenderName applies equality check predicate on the "sender_name" field. It's identical to SenderNameEQ.
func SenderName(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSenderName, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSubject, v))
}

// BodyText applies equality check predicate on the "body_text" field. It's identical to BodyTextEQ.
func BodyText(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldBodyText, v))
}

// BodyHTML applies equality check predicate on the "body_html" field. It's identical to BodyHTMLEQ.
func BodyHTML(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldBodyHTML, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldReceivedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldProcessedAt, v))
}

// HasAttachments applies equality check predicate on the "has_attachments" field. It's identical to HasAttachmentsEQ.
func HasAttachments(v bool) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldHasAttachments, v))
}

// AttachmentCount applies equality check predicate on the "attachment_count" field. It's identical to AttachmentCountEQ.
func AttachmentCount(v int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldAttachmentCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldErrorMessage, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldMessageID, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDIsNil applies the IsNil predicate on the "thread_id" field.
func ThreadIDIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldThreadID))
}

// ThreadIDNotNil applies the NotNil predicate on the "thread_id" field.
func ThreadIDNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldThreadID))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldThreadID, v))
}

// SenderEmailEQ applies the EQ predicate on the "sender_email" field.
func SenderEmailEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSenderEmail, v))
}

// SenderEmailNEQ applies the NEQ predicate on the "sender_email" field.
func SenderEmailNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldSenderEmail, v))
}

// SenderEmailIn applies the In predicate on the "sender_email" field.
func SenderEmailIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldSenderEmail, vs...))
}

// SenderEmailNotIn applies the NotIn predicate on the "sender_email" field.
func SenderEmailNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldSenderEmail, vs...))
}

// SenderEmailGT applies the GT predicate on the "sender_email" field.
func SenderEmailGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldSenderEmail, v))
}

// SenderEmailGTE applies the GTE predicate on the "sender_email" field.
func SenderEmailGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldSenderEmail, v))
}

// SenderEmailLT applies the LT predicate on the "sender_email" field.
func SenderEmailLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldSenderEmail, v))
}

// SenderEmailLTE applies the LTE predicate on the "sender_email" field.
func SenderEmailLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldSenderEmail, v))
}

// SenderEmailContains applies the Contains predicate on the "sender_email" field.
func SenderEmailContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldSenderEmail, v))
}

// SenderEmailHasPrefix applies the HasPrefix predicate on the "sender_email" field.
func SenderEmailHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldSenderEmail, v))
}

// SenderEmailHasSuffix applies the HasSuffix predicate on the "sender_email" field.
func SenderEmailHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldSenderEmail, v))
}

// SenderEmailEqualFold applies the EqualFold predicate on the "sender_email" field.
func SenderEmailEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldSenderEmail, v))
}

// SenderEmailContainsFold applies the ContainsFold predicate on the "sender_email" field.
func SenderEmailContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldSenderEmail, v))
}

// SenderNameEQ applies the EQ predicate on the "sender_name" field.
func SenderNameEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSenderName, v))
}

// SenderNameNEQ applies the NEQ predicate on the "sender_name" field.
func SenderNameNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldSenderName, v))
}

// SenderNameIn applies the In predicate on the "sender_name" field.
func SenderNameIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldSenderName, vs...))
}

// SenderNameNotIn applies the NotIn predicate on the "sender_name" field.
func SenderNameNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldSenderName, vs...))
}

// SenderNameGT applies the GT predicate on the "sender_name" field.
func SenderNameGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldSenderName, v))
}

// SenderNameGTE applies the GTE predicate on the "sender_name" field.
func SenderNameGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldSenderName, v))
}

// SenderNameLT applies the LT predicate on the "sender_name" field.
func SenderNameLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldSenderName, v))
}

// SenderNameLTE applies the LTE predicate on the "sender_name" field.
func SenderNameLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldSenderName, v))
}

// SenderNameContains applies the Contains predicate on the "sender_name" field.
func SenderNameContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldSenderName, v))
}

// SenderNameHasPrefix applies the HasPrefix predicate on the "sender_name" field.
func SenderNameHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldSenderName, v))
}

// SenderNameHasSuffix applies the HasSuffix predicate on the "sender_name" field.
func SenderNameHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldSenderName, v))
}

// SenderNameIsNil applies the IsNil predicate on the "sender_name" field.
func SenderNameIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldSenderName))
}

// SenderNameNotNil applies the NotNil predicate on the "sender_name" field.
func SenderNameNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldSenderName))
}

// SenderNameEqualFold applies the EqualFold predicate on the "sender_name" field.
func SenderNameEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldSenderName, v))
}

// SenderNameContainsFold applies the ContainsFold predicate on the "sender_name" field.
func SenderNameContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldSenderName, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldSubject, v))
}

// BodyTextEQ applies the EQ predicate on the "body_text" field.
func BodyTextEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldBodyText, v))
}

// BodyTextNEQ applies the NEQ predicate on the "body_text" field.
func BodyTextNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldBodyText, v))
}

// BodyTextIn applies the In predicate on the "body_text" field.
func BodyTextIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldBodyText, vs...))
}

// BodyTextNotIn applies the NotIn predicate on the "body_text" field.
func BodyTextNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldBodyText, vs...))
}

// BodyTextGT applies the GT predicate on the "body_text" field.
func BodyTextGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldBodyText, v))
}

// BodyTextGTE applies the GTE predicate on the "body_text" field.
func BodyTextGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldBodyText, v))
}

// BodyTextLT applies the LT predicate on the "body_text" field.
func BodyTextLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldBodyText, v))
}

// BodyTextLTE applies the LTE predicate on the "body_text" field.
func BodyTextLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldBodyText, v))
}

// BodyTextContains applies the Contains predicate on the "body_text" field.
func BodyTextContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldBodyText, v))
}

// BodyTextHasPrefix applies the HasPrefix predicate on the "body_text" field.
func BodyTextHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldBodyText, v))
}

// BodyTextHasSuffix applies the HasSuffix predicate on the "body_text" field.
func BodyTextHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldBodyText, v))
}

// BodyTextEqualFold applies the EqualFold predicate on the "body_text" field.
func BodyTextEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldBodyText, v))
}

// BodyTextContainsFold applies the ContainsFold predicate on the "body_text" field.
func BodyTextContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldBodyText, v))
}

// BodyHTMLEQ applies the EQ predicate on the "body_html" field.
func BodyHTMLEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldBodyHTML, v))
}

// BodyHTMLNEQ applies the NEQ predicate on the "body_html" field.
func BodyHTMLNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldBodyHTML, v))
}

// BodyHTMLIn applies the In predicate on the "body_html" field.
func BodyHTMLIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldBodyHTML, vs...))
}

// BodyHTMLNotIn applies the NotIn predicate on the "body_html" field.
func BodyHTMLNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldBodyHTML, vs...))
}

// BodyHTMLGT applies the GT predicate on the "body_html" field.
func BodyHTMLGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldBodyHTML, v))
}

// BodyHTMLGTE applies the GTE predicate on the "body_html" field.
func BodyHTMLGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldBodyHTML, v))
}

// BodyHTMLLT applies the LT predicate on the "body_html" field.
func BodyHTMLLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldBodyHTML, v))
}

// BodyHTMLLTE applies the LTE predicate on the "body_html" field.
func BodyHTMLLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldBodyHTML, v))
}

// BodyHTMLContains applies the Contains predicate on the "body_html" field.
func BodyHTMLContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldBodyHTML, v))
}

// BodyHTMLHasPrefix applies the HasPrefix predicate on the "body_html" field.
func BodyHTMLHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldBodyHTML, v))
}

// BodyHTMLHasSuffix applies the HasSuffix predicate on the "body_html" field.
func BodyHTMLHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldBodyHTML, v))
}

// BodyHTMLEqualFold applies the EqualFold predicate on the "body_html" field.
func BodyHTMLEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldBodyHTML, v))
}

// BodyHTMLContainsFold applies the ContainsFold predicate on the "body_html" field.
func BodyHTMLContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldBodyHTML, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldReceivedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldProcessedAt))
}

// HasAttachmentsEQ applies the EQ predicate on the "has_attachments" field.
func HasAttachmentsEQ(v bool) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldHasAttachments, v))
}

// HasAttachmentsNEQ applies the NEQ predicate on the "has_attachments" field.
func HasAttachmentsNEQ(v bool) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldHasAttachments, v))
}

// AttachmentCountEQ applies the EQ predicate on the "attachment_count" field.
func AttachmentCountEQ(v int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldAttachmentCount, v))
}

// AttachmentCountNEQ applies the NEQ predicate on the "attachment_count" field.
func AttachmentCountNEQ(v int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldAttachmentCount, v))
}

// AttachmentCountIn applies the In predicate on the "attachment_count" field.
func AttachmentCountIn(vs ...int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldAttachmentCount, vs...))
}

// AttachmentCountNotIn applies the NotIn predicate on the "attachment_count" field.
func AttachmentCountNotIn(vs ...int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldAttachmentCount, vs...))
}

// AttachmentCountGT applies the GT predicate on the "attachment_count" field.
func AttachmentCountGT(v int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldAttachmentCount, v))
}

// AttachmentCountGTE applies the GTE predicate on the "attachment_count" field.
func AttachmentCountGTE(v int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldAttachmentCount, v))
}

// AttachmentCountLT applies the LT predicate on the "attachment_count" field.
func AttachmentCountLT(v int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldAttachmentCount, v))
}

// AttachmentCountLTE applies the LTE predicate on the "attachment_count" field.
func AttachmentCountLTE(v int) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldAttachmentCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.EmailMessage {
	return predicate.EmailMessage(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAdjuntos applies the HasEdge predicate on the "adjuntos" edge.
func HasAdjuntos() predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AdjuntosTable, AdjuntosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAdjuntosWith applies the HasEdge predicate on the "adjuntos" edge with a given conditions (other predicates).
func HasAdjuntosWith(preds ...predicate.Attachment) predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := newAdjuntosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAlerts applies the HasEdge predicate on the "alerts" edge.
func HasAlerts() predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertsWith applies the HasEdge predicate on the "alerts" edge with a given conditions (other predicates).
func HasAlertsWith(preds ...predicate.Alert) predicate.EmailMessage {
	return predicate.EmailMessage(func(s *sql.Selector) {
		step := newAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailMessage) predicate.EmailMessage {
	return predicate.EmailMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailMessage) predicate.EmailMessage {
	return predicate.EmailMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailMessage) predicate.EmailMessage {
	return predicate.EmailMessage(sql.NotPredicates(p))
}
