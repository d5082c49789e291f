// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fvillarroel/cobertor-bot/db/ent/schema"
	"github.com/fvillarroel/cobertor-bot/gen/ent/alert"
	"github.com/fvillarroel/cobertor-bot/gen/ent/attachment"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/learnedrule"
	"github.com/fvillarroel/cobertor-bot/gen/ent/senderprofile"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/fvillarroel/cobertor-bot/gen/ent/threadpattern"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescTipo is the schema descriptor for tipo field.
	alertDescTipo := alertFields[1].Descriptor()
	// alert.TipoValidator is a validator for the "tipo" field. It is called by the builders before save.
	alert.TipoValidator = func() func(string) error {
		validators := alertDescTipo.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(tipo string) error {
			for _, fn := range fns {
				if err := fn(tipo); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// alertDescTitulo is the schema descriptor for titulo field.
	alertDescTitulo := alertFields[2].Descriptor()
	// alert.TituloValidator is a validator for the "titulo" field. It is called by the builders before save.
	alert.TituloValidator = func() func(string) error {
		validators := alertDescTitulo.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(titulo string) error {
			for _, fn := range fns {
				if err := fn(titulo); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// alertDescSeveridad is the schema descriptor for severidad field.
	alertDescSeveridad := alertFields[6].Descriptor()
	// alert.DefaultSeveridad holds the default value on creation for the severidad field.
	alert.DefaultSeveridad = alertDescSeveridad.Default.(string)
	// alert.SeveridadValidator is a validator for the "severidad" field. It is called by the builders before save.
	alert.SeveridadValidator = alertDescSeveridad.Validators[0].(func(string) error)
	// alertDescLeida is the schema descriptor for leida field.
	alertDescLeida := alertFields[7].Descriptor()
	// alert.DefaultLeida holds the default value on creation for the leida field.
	alert.DefaultLeida = alertDescLeida.Default.(bool)
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertFields[8].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	// alertDescID is the schema descriptor for id field.
	alertDescID := alertFields[0].Descriptor()
	// alert.DefaultID holds the default value on creation for the id field.
	alert.DefaultID = alertDescID.Default.(func() uuid.UUID)
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescFilename is the schema descriptor for filename field.
	attachmentDescFilename := attachmentFields[2].Descriptor()
	// attachment.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	attachment.FilenameValidator = attachmentDescFilename.Validators[0].(func(string) error)
	// attachmentDescSizeBytes is the schema descriptor for size_bytes field.
	attachmentDescSizeBytes := attachmentFields[4].Descriptor()
	// attachment.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	attachment.DefaultSizeBytes = attachmentDescSizeBytes.Default.(int)
	// attachment.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	attachment.SizeBytesValidator = attachmentDescSizeBytes.Validators[0].(func(int) error)
	// attachmentDescFormat is the schema descriptor for format field.
	attachmentDescFormat := attachmentFields[5].Descriptor()
	// attachment.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	attachment.FormatValidator = attachmentDescFormat.Validators[0].(func(string) error)
	// attachmentDescExtractedCount is the schema descriptor for extracted_count field.
	attachmentDescExtractedCount := attachmentFields[6].Descriptor()
	// attachment.DefaultExtractedCount holds the default value on creation for the extracted_count field.
	attachment.DefaultExtractedCount = attachmentDescExtractedCount.Default.(int)
	// attachment.ExtractedCountValidator is a validator for the "extracted_count" field. It is called by the builders before save.
	attachment.ExtractedCountValidator = attachmentDescExtractedCount.Validators[0].(func(int) error)
	// attachmentDescCreatedAt is the schema descriptor for created_at field.
	attachmentDescCreatedAt := attachmentFields[8].Descriptor()
	// attachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	attachment.DefaultCreatedAt = attachmentDescCreatedAt.Default.(func() time.Time)
	// attachmentDescID is the schema descriptor for id field.
	attachmentDescID := attachmentFields[0].Descriptor()
	// attachment.DefaultID holds the default value on creation for the id field.
	attachment.DefaultID = attachmentDescID.Default.(func() uuid.UUID)
	emailmessageFields := schema.EmailMessage{}.Fields()
	_ = emailmessageFields
	// emailmessageDescMessageID is the schema descriptor for message_id field.
	emailmessageDescMessageID := emailmessageFields[1].Descriptor()
	// emailmessage.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	emailmessage.MessageIDValidator = emailmessageDescMessageID.Validators[0].(func(string) error)
	// emailmessageDescSenderEmail is the schema descriptor for sender_email field.
	emailmessageDescSenderEmail := emailmessageFields[3].Descriptor()
	// emailmessage.SenderEmailValidator is a validator for the "sender_email" field. It is called by the builders before save.
	emailmessage.SenderEmailValidator = emailmessageDescSenderEmail.Validators[0].(func(string) error)
	// emailmessageDescSubject is the schema descriptor for subject field.
	emailmessageDescSubject := emailmessageFields[5].Descriptor()
	// emailmessage.DefaultSubject holds the default value on creation for the subject field.
	emailmessage.DefaultSubject = emailmessageDescSubject.Default.(string)
	// emailmessageDescBodyText is the schema descriptor for body_text field.
	emailmessageDescBodyText := emailmessageFields[6].Descriptor()
	// emailmessage.DefaultBodyText holds the default value on creation for the body_text field.
	emailmessage.DefaultBodyText = emailmessageDescBodyText.Default.(string)
	// emailmessageDescBodyHTML is the schema descriptor for body_html field.
	emailmessageDescBodyHTML := emailmessageFields[7].Descriptor()
	// emailmessage.DefaultBodyHTML holds the default value on creation for the body_html field.
	emailmessage.DefaultBodyHTML = emailmessageDescBodyHTML.Default.(string)
	// emailmessageDescHasAttachments is the schema descriptor for has_attachments field.
	emailmessageDescHasAttachments := emailmessageFields[10].Descriptor()
	// emailmessage.DefaultHasAttachments holds the default value on creation for the has_attachments field.
	emailmessage.DefaultHasAttachments = emailmessageDescHasAttachments.Default.(bool)
	// emailmessageDescAttachmentCount is the schema descriptor for attachment_count field.
	emailmessageDescAttachmentCount := emailmessageFields[11].Descriptor()
	// emailmessage.DefaultAttachmentCount holds the default value on creation for the attachment_count field.
	emailmessage.DefaultAttachmentCount = emailmessageDescAttachmentCount.Default.(int)
	// emailmessage.AttachmentCountValidator is a validator for the "attachment_count" field. It is called by the builders before save.
	emailmessage.AttachmentCountValidator = emailmessageDescAttachmentCount.Validators[0].(func(int) error)
	// emailmessageDescStatus is the schema descriptor for status field.
	emailmessageDescStatus := emailmessageFields[12].Descriptor()
	// emailmessage.DefaultStatus holds the default value on creation for the status field.
	emailmessage.DefaultStatus = emailmessageDescStatus.Default.(string)
	// emailmessage.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	emailmessage.StatusValidator = emailmessageDescStatus.Validators[0].(func(string) error)
	// emailmessageDescID is the schema descriptor for id field.
	emailmessageDescID := emailmessageFields[0].Descriptor()
	// emailmessage.DefaultID holds the default value on creation for the id field.
	emailmessage.DefaultID = emailmessageDescID.Default.(func() uuid.UUID)
	learnedruleFields := schema.LearnedRule{}.Fields()
	_ = learnedruleFields
	// learnedruleDescRuleName is the schema descriptor for rule_name field.
	learnedruleDescRuleName := learnedruleFields[1].Descriptor()
	// learnedrule.RuleNameValidator is a validator for the "rule_name" field. It is called by the builders before save.
	learnedrule.RuleNameValidator = learnedruleDescRuleName.Validators[0].(func(string) error)
	// learnedruleDescSenderEmail is the schema descriptor for sender_email field.
	learnedruleDescSenderEmail := learnedruleFields[2].Descriptor()
	// learnedrule.SenderEmailValidator is a validator for the "sender_email" field. It is called by the builders before save.
	learnedrule.SenderEmailValidator = learnedruleDescSenderEmail.Validators[0].(func(string) error)
	// learnedruleDescUrgency is the schema descriptor for urgency field.
	learnedruleDescUrgency := learnedruleFields[3].Descriptor()
	// learnedrule.UrgencyValidator is a validator for the "urgency" field. It is called by the builders before save.
	learnedrule.UrgencyValidator = learnedruleDescUrgency.Validators[0].(func(string) error)
	// learnedruleDescConfidence is the schema descriptor for confidence field.
	learnedruleDescConfidence := learnedruleFields[4].Descriptor()
	// learnedrule.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	learnedrule.ConfidenceValidator = func() func(float64) error {
		validators := learnedruleDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// learnedruleDescTimesTriggered is the schema descriptor for times_triggered field.
	learnedruleDescTimesTriggered := learnedruleFields[5].Descriptor()
	// learnedrule.DefaultTimesTriggered holds the default value on creation for the times_triggered field.
	learnedrule.DefaultTimesTriggered = learnedruleDescTimesTriggered.Default.(int)
	// learnedrule.TimesTriggeredValidator is a validator for the "times_triggered" field. It is called by the builders before save.
	learnedrule.TimesTriggeredValidator = learnedruleDescTimesTriggered.Validators[0].(func(int) error)
	// learnedruleDescCreatedAt is the schema descriptor for created_at field.
	learnedruleDescCreatedAt := learnedruleFields[6].Descriptor()
	// learnedrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnedrule.DefaultCreatedAt = learnedruleDescCreatedAt.Default.(func() time.Time)
	// learnedruleDescID is the schema descriptor for id field.
	learnedruleDescID := learnedruleFields[0].Descriptor()
	// learnedrule.DefaultID holds the default value on creation for the id field.
	learnedrule.DefaultID = learnedruleDescID.Default.(func() uuid.UUID)
	senderprofileFields := schema.SenderProfile{}.Fields()
	_ = senderprofileFields
	// senderprofileDescEmail is the schema descriptor for email field.
	senderprofileDescEmail := senderprofileFields[1].Descriptor()
	// senderprofile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	senderprofile.EmailValidator = senderprofileDescEmail.Validators[0].(func(string) error)
	// senderprofileDescDomain is the schema descriptor for domain field.
	senderprofileDescDomain := senderprofileFields[2].Descriptor()
	// senderprofile.DefaultDomain holds the default value on creation for the domain field.
	senderprofile.DefaultDomain = senderprofileDescDomain.Default.(string)
	// senderprofileDescCategory is the schema descriptor for category field.
	senderprofileDescCategory := senderprofileFields[3].Descriptor()
	// senderprofile.DefaultCategory holds the default value on creation for the category field.
	senderprofile.DefaultCategory = senderprofileDescCategory.Default.(string)
	// senderprofileDescTypicalUrgency is the schema descriptor for typical_urgency field.
	senderprofileDescTypicalUrgency := senderprofileFields[4].Descriptor()
	// senderprofile.DefaultTypicalUrgency holds the default value on creation for the typical_urgency field.
	senderprofile.DefaultTypicalUrgency = senderprofileDescTypicalUrgency.Default.(string)
	// senderprofileDescTypicalIntent is the schema descriptor for typical_intent field.
	senderprofileDescTypicalIntent := senderprofileFields[5].Descriptor()
	// senderprofile.DefaultTypicalIntent holds the default value on creation for the typical_intent field.
	senderprofile.DefaultTypicalIntent = senderprofileDescTypicalIntent.Default.(string)
	// senderprofileDescEmailsAnalyzed is the schema descriptor for emails_analyzed field.
	senderprofileDescEmailsAnalyzed := senderprofileFields[6].Descriptor()
	// senderprofile.DefaultEmailsAnalyzed holds the default value on creation for the emails_analyzed field.
	senderprofile.DefaultEmailsAnalyzed = senderprofileDescEmailsAnalyzed.Default.(int)
	// senderprofile.EmailsAnalyzedValidator is a validator for the "emails_analyzed" field. It is called by the builders before save.
	senderprofile.EmailsAnalyzedValidator = senderprofileDescEmailsAnalyzed.Validators[0].(func(int) error)
	// senderprofileDescConfidence is the schema descriptor for confidence field.
	senderprofileDescConfidence := senderprofileFields[7].Descriptor()
	// senderprofile.DefaultConfidence holds the default value on creation for the confidence field.
	senderprofile.DefaultConfidence = senderprofileDescConfidence.Default.(float64)
	// senderprofile.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	senderprofile.ConfidenceValidator = func() func(float64) error {
		validators := senderprofileDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// senderprofileDescLastSeen is the schema descriptor for last_seen field.
	senderprofileDescLastSeen := senderprofileFields[8].Descriptor()
	// senderprofile.DefaultLastSeen holds the default value on creation for the last_seen field.
	senderprofile.DefaultLastSeen = senderprofileDescLastSeen.Default.(func() time.Time)
	// senderprofile.UpdateDefaultLastSeen holds the default value on update for the last_seen field.
	senderprofile.UpdateDefaultLastSeen = senderprofileDescLastSeen.UpdateDefault.(func() time.Time)
	// senderprofileDescID is the schema descriptor for id field.
	senderprofileDescID := senderprofileFields[0].Descriptor()
	// senderprofile.DefaultID holds the default value on creation for the id field.
	senderprofile.DefaultID = senderprofileDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCodigoCobertor is the schema descriptor for codigo_cobertor field.
	taskDescCodigoCobertor := taskFields[2].Descriptor()
	// task.CodigoCobertorValidator is a validator for the "codigo_cobertor" field. It is called by the builders before save.
	task.CodigoCobertorValidator = taskDescCodigoCobertor.Validators[0].(func(string) error)
	// taskDescCuartel is the schema descriptor for cuartel field.
	taskDescCuartel := taskFields[3].Descriptor()
	// task.CuartelValidator is a validator for the "cuartel" field. It is called by the builders before save.
	task.CuartelValidator = taskDescCuartel.Validators[0].(func(string) error)
	// taskDescHileras is the schema descriptor for hileras field.
	taskDescHileras := taskFields[4].Descriptor()
	// task.HilerasValidator is a validator for the "hileras" field. It is called by the builders before save.
	task.HilerasValidator = taskDescHileras.Validators[0].(func(int) error)
	// taskDescLargoMetros is the schema descriptor for largo_metros field.
	taskDescLargoMetros := taskFields[5].Descriptor()
	// task.LargoMetrosValidator is a validator for the "largo_metros" field. It is called by the builders before save.
	task.LargoMetrosValidator = taskDescLargoMetros.Validators[0].(func(float64) error)
	// taskDescPrioridad is the schema descriptor for prioridad field.
	taskDescPrioridad := taskFields[6].Descriptor()
	// task.DefaultPrioridad holds the default value on creation for the prioridad field.
	task.DefaultPrioridad = taskDescPrioridad.Default.(string)
	// task.PrioridadValidator is a validator for the "prioridad" field. It is called by the builders before save.
	task.PrioridadValidator = taskDescPrioridad.Validators[0].(func(string) error)
	// taskDescEstado is the schema descriptor for estado field.
	taskDescEstado := taskFields[7].Descriptor()
	// task.DefaultEstado holds the default value on creation for the estado field.
	task.DefaultEstado = taskDescEstado.Default.(string)
	// task.EstadoValidator is a validator for the "estado" field. It is called by the builders before save.
	task.EstadoValidator = taskDescEstado.Validators[0].(func(string) error)
	// taskDescDescripcion is the schema descriptor for descripcion field.
	taskDescDescripcion := taskFields[8].Descriptor()
	// task.DescripcionValidator is a validator for the "descripcion" field. It is called by the builders before save.
	task.DescripcionValidator = taskDescDescripcion.Validators[0].(func(string) error)
	// taskDescNotas is the schema descriptor for notas field.
	taskDescNotas := taskFields[9].Descriptor()
	// task.NotasValidator is a validator for the "notas" field. It is called by the builders before save.
	task.NotasValidator = taskDescNotas.Validators[0].(func(string) error)
	// taskDescOrigen is the schema descriptor for origen field.
	taskDescOrigen := taskFields[10].Descriptor()
	// task.OrigenValidator is a validator for the "origen" field. It is called by the builders before save.
	task.OrigenValidator = func() func(string) error {
		validators := taskDescOrigen.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(origen string) error {
			for _, fn := range fns {
				if err := fn(origen); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescUrgente is the schema descriptor for urgente field.
	taskDescUrgente := taskFields[11].Descriptor()
	// task.DefaultUrgente holds the default value on creation for the urgente field.
	task.DefaultUrgente = taskDescUrgente.Default.(bool)
	// taskDescFechaSolicitud is the schema descriptor for fecha_solicitud field.
	taskDescFechaSolicitud := taskFields[12].Descriptor()
	// task.DefaultFechaSolicitud holds the default value on creation for the fecha_solicitud field.
	task.DefaultFechaSolicitud = taskDescFechaSolicitud.Default.(func() time.Time)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[15].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	threadpatternFields := schema.ThreadPattern{}.Fields()
	_ = threadpatternFields
	// threadpatternDescThreadID is the schema descriptor for thread_id field.
	threadpatternDescThreadID := threadpatternFields[1].Descriptor()
	// threadpattern.ThreadIDValidator is a validator for the "thread_id" field. It is called by the builders before save.
	threadpattern.ThreadIDValidator = threadpatternDescThreadID.Validators[0].(func(string) error)
	// threadpatternDescTotalMessages is the schema descriptor for total_messages field.
	threadpatternDescTotalMessages := threadpatternFields[2].Descriptor()
	// threadpattern.DefaultTotalMessages holds the default value on creation for the total_messages field.
	threadpattern.DefaultTotalMessages = threadpatternDescTotalMessages.Default.(int)
	// threadpattern.TotalMessagesValidator is a validator for the "total_messages" field. It is called by the builders before save.
	threadpattern.TotalMessagesValidator = threadpatternDescTotalMessages.Validators[0].(func(int) error)
	// threadpatternDescInternalParticipants is the schema descriptor for internal_participants field.
	threadpatternDescInternalParticipants := threadpatternFields[3].Descriptor()
	// threadpattern.DefaultInternalParticipants holds the default value on creation for the internal_participants field.
	threadpattern.DefaultInternalParticipants = threadpatternDescInternalParticipants.Default.(int)
	// threadpattern.InternalParticipantsValidator is a validator for the "internal_participants" field. It is called by the builders before save.
	threadpattern.InternalParticipantsValidator = threadpatternDescInternalParticipants.Validators[0].(func(int) error)
	// threadpatternDescExternalParticipants is the schema descriptor for external_participants field.
	threadpatternDescExternalParticipants := threadpatternFields[4].Descriptor()
	// threadpattern.DefaultExternalParticipants holds the default value on creation for the external_participants field.
	threadpattern.DefaultExternalParticipants = threadpatternDescExternalParticipants.Default.(int)
	// threadpattern.ExternalParticipantsValidator is a validator for the "external_participants" field. It is called by the builders before save.
	threadpattern.ExternalParticipantsValidator = threadpatternDescExternalParticipants.Validators[0].(func(int) error)
	// threadpatternDescHasForward is the schema descriptor for has_forward field.
	threadpatternDescHasForward := threadpatternFields[5].Descriptor()
	// threadpattern.DefaultHasForward holds the default value on creation for the has_forward field.
	threadpattern.DefaultHasForward = threadpatternDescHasForward.Default.(bool)
	// threadpatternDescHasAttachments is the schema descriptor for has_attachments field.
	threadpatternDescHasAttachments := threadpatternFields[6].Descriptor()
	// threadpattern.DefaultHasAttachments holds the default value on creation for the has_attachments field.
	threadpattern.DefaultHasAttachments = threadpatternDescHasAttachments.Default.(bool)
	// threadpatternDescComplexity is the schema descriptor for complexity field.
	threadpatternDescComplexity := threadpatternFields[7].Descriptor()
	// threadpattern.DefaultComplexity holds the default value on creation for the complexity field.
	threadpattern.DefaultComplexity = threadpatternDescComplexity.Default.(string)
	// threadpatternDescID is the schema descriptor for id field.
	threadpatternDescID := threadpatternFields[0].Descriptor()
	// threadpattern.DefaultID holds the default value on creation for the id field.
	threadpattern.DefaultID = threadpatternDescID.Default.(func() uuid.UUID)
}
