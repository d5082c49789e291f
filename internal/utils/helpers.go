package utils

import (
	"time"

	"github.com/fvillarroel/cobertor-bot/gen/ent"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
)

// ToEmailMessage converts an ent row into the transfer shape.
func ToEmailMessage(e *ent.EmailMessage) *entity.EmailMessage {
	if e == nil {
		return nil
	}
	return &entity.EmailMessage{
		ID:              e.ID,
		MessageID:       e.MessageID,
		ThreadID:        e.ThreadID,
		SenderEmail:     e.SenderEmail,
		SenderName:      e.SenderName,
		Subject:         e.Subject,
		BodyText:        e.BodyText,
		BodyHTML:        e.BodyHTML,
		ReceivedAt:      e.ReceivedAt,
		ProcessedAt:     e.ProcessedAt,
		HasAttachments:  e.HasAttachments,
		AttachmentCount: e.AttachmentCount,
		Status:          e.Status,
		ErrorMessage:    e.ErrorMessage,
	}
}

func ToTask(t *ent.Task) *entity.Task {
	if t == nil {
		return nil
	}
	return &entity.Task{
		ID:              t.ID,
		EmailID:         t.EmailID,
		CodigoCobertor:  t.CodigoCobertor,
		Cuartel:         t.Cuartel,
		Hileras:         t.Hileras,
		LargoMetros:     t.LargoMetros,
		Prioridad:       t.Prioridad,
		Estado:          t.Estado,
		Descripcion:     t.Descripcion,
		Notas:           t.Notas,
		Origen:          t.Origen,
		Urgente:         t.Urgente,
		FechaSolicitud:  t.FechaSolicitud,
		FechaCompletada: t.FechaCompletada,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func ToAttachment(a *ent.Attachment) *entity.Attachment {
	if a == nil {
		return nil
	}
	return &entity.Attachment{
		ID:             a.ID,
		EmailID:        a.EmailID,
		Filename:       a.Filename,
		MimeType:       a.MimeType,
		SizeBytes:      a.SizeBytes,
		Format:         a.Format,
		ExtractedCount: a.ExtractedCount,
		ExtractedJSON:  a.ExtractedJSON,
		CreatedAt:      a.CreatedAt,
	}
}

func ToAlert(a *ent.Alert) *entity.Alert {
	if a == nil {
		return nil
	}
	return &entity.Alert{
		ID:          a.ID,
		Tipo:        a.Tipo,
		Titulo:      a.Titulo,
		Descripcion: a.Descripcion,
		TaskID:      a.TaskID,
		EmailID:     a.EmailID,
		Severidad:   a.Severidad,
		Leida:       a.Leida,
		CreatedAt:   a.CreatedAt,
	}
}

func ToSenderProfile(p *ent.SenderProfile) *entity.SenderProfile {
	if p == nil {
		return nil
	}
	return &entity.SenderProfile{
		Email:          p.Email,
		Domain:         p.Domain,
		Category:       p.Category,
		TypicalUrgency: p.TypicalUrgency,
		TypicalIntent:  p.TypicalIntent,
		EmailsAnalyzed: p.EmailsAnalyzed,
		Confidence:     p.Confidence,
		LastSeen:       p.LastSeen,
	}
}

// ParseYMD parses a YYYY-MM-DD date string.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
