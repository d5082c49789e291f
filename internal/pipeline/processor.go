package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/fvillarroel/cobertor-bot/constants"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
	"github.com/fvillarroel/cobertor-bot/internal/extract"
	"github.com/fvillarroel/cobertor-bot/internal/llm"
	"github.com/fvillarroel/cobertor-bot/internal/mail"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
)

// MinBodyLength is the default threshold below which body text is considered
// to carry no narrative signal.
const MinBodyLength = 20

// NarrativeExtractor is the reasoning-call collaborator.
type NarrativeExtractor interface {
	ExtractTask(ctx context.Context, text, subject string) (extract.TaskRecord, error)
}

// TabularExtractor turns spreadsheet attachments into task records.
type TabularExtractor interface {
	Extract(filename string, data []byte) []extract.TaskRecord
}

// DocumentExtractor pulls text out of page-based attachments.
type DocumentExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) []extract.TaskRecord
}

// Result reports what one message produced.
type Result struct {
	Success              bool
	Duplicate            bool
	TasksCreated         int
	AttachmentsProcessed int
	Err                  error
}

// Processor drives the per-message state machine: received -> processing ->
// processed | no_data | error. All rows for one message share one unit of
// work; a mid-message failure rolls everything back and leaves only a
// standalone error alert.
type Processor struct {
	store     repository.Store
	mailc     mail.Client
	tabular   TabularExtractor
	document  DocumentExtractor
	narrative NarrativeExtractor
	minBody   int
	logger    *slog.Logger
}

func NewProcessor(
	store repository.Store,
	mailc mail.Client,
	tabular TabularExtractor,
	document DocumentExtractor,
	narrative NarrativeExtractor,
	minBody int,
	logger *slog.Logger,
) *Processor {
	if minBody <= 0 {
		minBody = MinBodyLength
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		store:     store,
		mailc:     mailc,
		tabular:   tabular,
		document:  document,
		narrative: narrative,
		minBody:   minBody,
		logger:    logger,
	}
}

// ProcessMessage runs one message end to end.
func (p *Processor) ProcessMessage(ctx context.Context, msg mail.Message) Result {
	log := p.logger.With("message_id", msg.ID, "subject", truncate(msg.Subject, 50))
	log.Info("pipeline.message.start", "attachments", len(msg.Attachments))

	uow, err := p.store.Begin(ctx)
	if err != nil {
		return p.failMessage(ctx, log, msg, nil, fmt.Errorf("begin unit of work: %w", err))
	}

	emailID, err := uow.InsertEmail(ctx, &entity.EmailMessage{
		MessageID:       msg.ID,
		ThreadID:        nilIfEmpty(msg.ThreadID),
		SenderEmail:     msg.SenderEmail,
		SenderName:      nilIfEmpty(msg.SenderName),
		Subject:         msg.Subject,
		BodyText:        msg.BodyText,
		BodyHTML:        msg.BodyHTML,
		ReceivedAt:      msg.ReceivedAt,
		HasAttachments:  msg.HasAttachments,
		AttachmentCount: msg.AttachmentCount,
		Status:          string(constants.EmailStatusProcessing),
	})
	if errors.Is(err, repository.ErrDuplicateMessage) {
		_ = uow.Rollback()
		log.Info("pipeline.message.duplicate")
		// already captured on a previous run; just stop it from reappearing
		p.markSeen(ctx, log, msg.ID)
		return Result{Success: true, Duplicate: true}
	}
	if err != nil {
		return p.failMessage(ctx, log, msg, uow, fmt.Errorf("insert email: %w", err))
	}

	var records []extract.TaskRecord
	attachmentsProcessed := 0

	for _, att := range msg.Attachments {
		recs, err := p.processAttachment(ctx, log, uow, emailID, msg.Subject, att)
		if err != nil {
			// one bad attachment never takes down the message
			log.Error("pipeline.attachment.failed", "filename", att.Filename, "error", err)
			continue
		}
		if recs != nil {
			attachmentsProcessed++
			records = append(records, recs...)
		}
	}

	body := strings.TrimSpace(msg.BodyText)
	if len(body) > p.minBody {
		rec, err := p.narrative.ExtractTask(ctx, body, msg.Subject)
		switch {
		case err == nil:
			records = append(records, rec)
		case errors.Is(err, llm.ErrNoData):
			log.Info("pipeline.narrative.no_data")
			records = append(records, fallbackRecord(msg.Subject, body))
		default:
			// transport or quota failure; recoverable for the batch, fatal
			// for this one message
			return p.failMessage(ctx, log, msg, uow, fmt.Errorf("narrative extraction: %w", err))
		}
	}

	tasksCreated := 0
	urgentCount := 0
	for _, rec := range records {
		if _, err := uow.InsertTask(ctx, recordToTask(emailID, rec)); err != nil {
			return p.failMessage(ctx, log, msg, uow, fmt.Errorf("insert task: %w", err))
		}
		tasksCreated++
		if rec.Urgente {
			urgentCount++
		}
	}

	status := constants.EmailStatusNoData
	if tasksCreated > 0 {
		status = constants.EmailStatusProcessed
	}
	if err := uow.SetEmailStatus(ctx, emailID, status, nil); err != nil {
		return p.failMessage(ctx, log, msg, uow, fmt.Errorf("update email status: %w", err))
	}

	if urgentCount > 0 {
		desc := fmt.Sprintf("%d tarea(s) urgente(s) detectada(s)", urgentCount)
		_, err := uow.InsertAlert(ctx, &entity.Alert{
			Tipo:        string(constants.AlertTypeUrgentTask),
			Titulo:      "Tarea urgente: " + truncate(msg.Subject, 50),
			Descripcion: &desc,
			EmailID:     &emailID,
			Severidad:   string(constants.SeverityHigh),
		})
		if err != nil {
			return p.failMessage(ctx, log, msg, uow, fmt.Errorf("insert urgent alert: %w", err))
		}
	}

	if err := uow.Commit(); err != nil {
		return p.failMessage(ctx, log, msg, nil, fmt.Errorf("commit: %w", err))
	}

	// acknowledgement is best-effort; a failure means one redundant (and
	// idempotent) reprocessing attempt next batch
	p.markSeen(ctx, log, msg.ID)

	log.Info("pipeline.message.ok",
		"status", status,
		"tasks", tasksCreated,
		"attachments", attachmentsProcessed,
		"urgent", urgentCount,
	)
	return Result{
		Success:              true,
		TasksCreated:         tasksCreated,
		AttachmentsProcessed: attachmentsProcessed,
	}
}

// processAttachment extracts records from one attachment and persists its
// metadata row. A nil, nil return means the attachment type is unsupported.
func (p *Processor) processAttachment(ctx context.Context, log *slog.Logger, uow repository.UnitOfWork, emailID uuid.UUID, subject string, att mail.Attachment) ([]extract.TaskRecord, error) {
	format := constants.FormatForFilename(att.Filename)
	if format == "" {
		log.Warn("pipeline.attachment.unsupported", "filename", att.Filename)
		return nil, nil
	}

	var records []extract.TaskRecord
	switch format {
	case constants.FormatTabular:
		records = p.tabular.Extract(att.Filename, att.Data)
	case constants.FormatDocument:
		for _, rec := range p.document.Extract(ctx, att.Filename, att.Data) {
			if !rec.NeedsNarrative {
				records = append(records, rec)
				continue
			}
			parsed, err := p.narrative.ExtractTask(ctx, rec.FullText, subject)
			if err != nil {
				if errors.Is(err, llm.ErrNoData) {
					log.Info("pipeline.attachment.narrative_no_data", "filename", att.Filename)
					continue
				}
				return nil, err
			}
			parsed.Origen = constants.OriginDocumentAttachment
			records = append(records, parsed)
		}
	}

	snapshot, err := json.Marshal(recordsSnapshot(records))
	if err != nil {
		snapshot = nil
	}
	fmtStr := string(format)
	if _, err := uow.InsertAttachment(ctx, &entity.Attachment{
		EmailID:        emailID,
		Filename:       att.Filename,
		MimeType:       nilIfEmpty(att.MimeType),
		SizeBytes:      att.Size,
		Format:         &fmtStr,
		ExtractedCount: len(records),
		ExtractedJSON:  snapshot,
	}); err != nil {
		return nil, err
	}

	log.Info("pipeline.attachment.ok", "filename", att.Filename, "format", format, "records", len(records))
	return records, nil
}

// failMessage rolls back the open unit of work and records a standalone
// error alert with its own connection, so the alert survives the rollback.
// The email row itself is gone with the rollback; status-wise the message is
// unchanged from any prior run.
func (p *Processor) failMessage(ctx context.Context, log *slog.Logger, msg mail.Message, uow repository.UnitOfWork, cause error) Result {
	log.Error("pipeline.message.failed", "error", cause)
	if uow != nil {
		if err := uow.Rollback(); err != nil {
			log.Error("pipeline.rollback.failed", "error", err)
		}
	}

	desc := cause.Error()
	if _, err := p.store.SaveAlert(ctx, &entity.Alert{
		Tipo:        string(constants.AlertTypeProcessingError),
		Titulo:      "Error procesando: " + truncate(msg.Subject, 50),
		Descripcion: &desc,
		Severidad:   string(constants.SeverityMedium),
	}); err != nil {
		log.Error("pipeline.error_alert.failed", "error", err)
	}
	return Result{Err: cause}
}

func (p *Processor) markSeen(ctx context.Context, log *slog.Logger, messageID string) {
	if err := p.mailc.MarkSeen(ctx, messageID); err != nil {
		log.Warn("pipeline.mark_seen.failed", "error", err)
	}
}

// fallbackRecord is the generic review task created when the body looked
// meaningful but nothing could be extracted from it.
func fallbackRecord(subject, body string) extract.TaskRecord {
	desc := "Revisar email: " + truncate(subject, 80)
	notas := "Email requiere revisión manual. Contenido: " + truncate(body, 200) + "..."
	urgente := constants.SubjectIsUrgent(subject)
	prioridad := constants.PriorityNormal
	if urgente {
		prioridad = constants.PriorityHigh
	}
	return extract.TaskRecord{
		Prioridad:   string(prioridad),
		Descripcion: &desc,
		Notas:       &notas,
		Urgente:     urgente,
		Origen:      constants.OriginFallbackReview,
	}
}

func recordToTask(emailID uuid.UUID, rec extract.TaskRecord) *entity.Task {
	prioridad := rec.Prioridad
	if prioridad == "" {
		prioridad = string(constants.PriorityNormal)
	}
	return &entity.Task{
		EmailID:        emailID,
		CodigoCobertor: rec.CodigoCobertor,
		Cuartel:        rec.Cuartel,
		Hileras:        rec.Hileras,
		LargoMetros:    rec.LargoMetros,
		Prioridad:      prioridad,
		Estado:         string(constants.TaskStatusPending),
		Descripcion:    rec.Descripcion,
		Notas:          rec.Notas,
		Origen:         string(rec.Origen),
		Urgente:        rec.Urgente,
	}
}

// recordsSnapshot strips the bulky narrative fields before the audit
// snapshot goes into the attachment row.
func recordsSnapshot(records []extract.TaskRecord) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, map[string]any{
			"codigo_cobertor": r.CodigoCobertor,
			"cuartel":         r.Cuartel,
			"hileras":         r.Hileras,
			"largo_metros":    r.LargoMetros,
			"prioridad":       r.Prioridad,
			"origen":          r.Origen,
			"urgente":         r.Urgente,
		})
	}
	return out
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// truncate cuts s at max bytes, backing up so a multibyte rune is never
// split.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
