package utils

import (
	"time"

	cobertorpb "github.com/fvillarroel/cobertor-bot/gen/proto/cobertor/v1"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
)

// ToPBEmail converts the transfer shape into its wire form.
func ToPBEmail(e *entity.EmailMessage) *cobertorpb.EmailMessage {
	if e == nil {
		return nil
	}
	return &cobertorpb.EmailMessage{
		Id:              e.ID.String(),
		MessageId:       e.MessageID,
		ThreadId:        e.ThreadID,
		SenderEmail:     e.SenderEmail,
		SenderName:      e.SenderName,
		Subject:         e.Subject,
		ReceivedAt:      e.ReceivedAt.Format(time.RFC3339),
		ProcessedAt:     formatTimePtr(e.ProcessedAt),
		HasAttachments:  e.HasAttachments,
		AttachmentCount: int32(e.AttachmentCount),
		Status:          e.Status,
		ErrorMessage:    e.ErrorMessage,
	}
}

func ToPBTask(t *entity.Task) *cobertorpb.Task {
	if t == nil {
		return nil
	}
	return &cobertorpb.Task{
		Id:              t.ID.String(),
		EmailId:         t.EmailID.String(),
		CodigoCobertor:  t.CodigoCobertor,
		Cuartel:         t.Cuartel,
		Hileras:         intPtrTo32(t.Hileras),
		LargoMetros:     t.LargoMetros,
		Prioridad:       t.Prioridad,
		Estado:          t.Estado,
		Descripcion:     t.Descripcion,
		Notas:           t.Notas,
		Origen:          t.Origen,
		Urgente:         t.Urgente,
		FechaSolicitud:  t.FechaSolicitud.Format(time.RFC3339),
		FechaCompletada: formatTimePtr(t.FechaCompletada),
	}
}

func ToPBAttachment(a *entity.Attachment) *cobertorpb.Attachment {
	if a == nil {
		return nil
	}
	return &cobertorpb.Attachment{
		Id:             a.ID.String(),
		EmailId:        a.EmailID.String(),
		Filename:       a.Filename,
		MimeType:       a.MimeType,
		SizeBytes:      int32(a.SizeBytes),
		Format:         a.Format,
		ExtractedCount: int32(a.ExtractedCount),
	}
}

func ToPBAlert(a *entity.Alert) *cobertorpb.Alert {
	if a == nil {
		return nil
	}
	pb := &cobertorpb.Alert{
		Id:          a.ID.String(),
		Tipo:        a.Tipo,
		Titulo:      a.Titulo,
		Descripcion: a.Descripcion,
		Severidad:   a.Severidad,
		Leida:       a.Leida,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	if a.TaskID != nil {
		s := a.TaskID.String()
		pb.TaskId = &s
	}
	if a.EmailID != nil {
		s := a.EmailID.String()
		pb.EmailId = &s
	}
	return pb
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func intPtrTo32(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
