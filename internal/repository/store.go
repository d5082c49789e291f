package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fvillarroel/cobertor-bot/constants"
	"github.com/fvillarroel/cobertor-bot/gen/ent"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
)

// ErrDuplicateMessage reports that an email with the same provider message
// id already exists. The unique constraint on message_id is the only
// duplicate check; callers must not pre-query.
var ErrDuplicateMessage = errors.New("repository: duplicate message id")

// Store opens unit-of-work boundaries and performs the few writes that must
// happen outside any transaction.
type Store interface {
	Begin(ctx context.Context) (UnitOfWork, error)

	// SaveAlert writes an alert with its own connection, independent of any
	// open unit of work. Used for error alerts after a rollback.
	SaveAlert(ctx context.Context, a *entity.Alert) (uuid.UUID, error)
}

// UnitOfWork is the transactional scope for one message: either every row
// for the message lands, or none do.
type UnitOfWork interface {
	InsertEmail(ctx context.Context, m *entity.EmailMessage) (uuid.UUID, error)
	SetEmailStatus(ctx context.Context, id uuid.UUID, status constants.EmailStatus, errMsg *string) error
	InsertTask(ctx context.Context, t *entity.Task) (uuid.UUID, error)
	InsertAttachment(ctx context.Context, a *entity.Attachment) (uuid.UUID, error)
	InsertAlert(ctx context.Context, a *entity.Alert) (uuid.UUID, error)
	Commit() error
	Rollback() error
}

type entStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStore(client *ent.Client, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &entStore{client: client, logger: logger}
}

func (s *entStore) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		s.logger.Error("failed to open transaction", "error", err)
		return nil, err
	}
	return &entUnitOfWork{tx: tx, logger: s.logger}, nil
}

func (s *entStore) SaveAlert(ctx context.Context, a *entity.Alert) (uuid.UUID, error) {
	row, err := s.client.Alert.Create().
		SetTipo(a.Tipo).
		SetTitulo(a.Titulo).
		SetNillableDescripcion(a.Descripcion).
		SetNillableTaskID(a.TaskID).
		SetNillableEmailID(a.EmailID).
		SetSeveridad(a.Severidad).
		SetLeida(a.Leida).
		Save(ctx)
	if err != nil {
		s.logger.Error("failed to save alert", "tipo", a.Tipo, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

type entUnitOfWork struct {
	tx     *ent.Tx
	logger *slog.Logger
}

func (u *entUnitOfWork) InsertEmail(ctx context.Context, m *entity.EmailMessage) (uuid.UUID, error) {
	row, err := u.tx.EmailMessage.Create().
		SetMessageID(m.MessageID).
		SetNillableThreadID(m.ThreadID).
		SetSenderEmail(m.SenderEmail).
		SetNillableSenderName(m.SenderName).
		SetSubject(m.Subject).
		SetBodyText(m.BodyText).
		SetBodyHTML(m.BodyHTML).
		SetReceivedAt(m.ReceivedAt).
		SetHasAttachments(m.HasAttachments).
		SetAttachmentCount(m.AttachmentCount).
		SetStatus(m.Status).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return uuid.Nil, ErrDuplicateMessage
		}
		u.logger.Error("failed to insert email", "message_id", m.MessageID, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (u *entUnitOfWork) SetEmailStatus(ctx context.Context, id uuid.UUID, status constants.EmailStatus, errMsg *string) error {
	upd := u.tx.EmailMessage.UpdateOneID(id).
		SetStatus(string(status)).
		SetNillableErrorMessage(errMsg)
	if status == constants.EmailStatusProcessed || status == constants.EmailStatusNoData {
		upd = upd.SetProcessedAt(time.Now())
	}
	if _, err := upd.Save(ctx); err != nil {
		u.logger.Error("failed to update email status", "email_id", id, "status", status, "error", err)
		return err
	}
	return nil
}

func (u *entUnitOfWork) InsertTask(ctx context.Context, t *entity.Task) (uuid.UUID, error) {
	row, err := u.tx.Task.Create().
		SetEmailID(t.EmailID).
		SetNillableCodigoCobertor(t.CodigoCobertor).
		SetNillableCuartel(t.Cuartel).
		SetNillableHileras(t.Hileras).
		SetNillableLargoMetros(t.LargoMetros).
		SetPrioridad(t.Prioridad).
		SetEstado(t.Estado).
		SetNillableDescripcion(t.Descripcion).
		SetNillableNotas(t.Notas).
		SetOrigen(t.Origen).
		SetUrgente(t.Urgente).
		Save(ctx)
	if err != nil {
		u.logger.Error("failed to insert task", "email_id", t.EmailID, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (u *entUnitOfWork) InsertAttachment(ctx context.Context, a *entity.Attachment) (uuid.UUID, error) {
	create := u.tx.Attachment.Create().
		SetEmailID(a.EmailID).
		SetFilename(a.Filename).
		SetNillableMimeType(a.MimeType).
		SetSizeBytes(a.SizeBytes).
		SetNillableFormat(a.Format).
		SetExtractedCount(a.ExtractedCount)
	if a.ExtractedJSON != nil {
		create = create.SetExtractedJSON(a.ExtractedJSON)
	}
	row, err := create.Save(ctx)
	if err != nil {
		u.logger.Error("failed to insert attachment", "email_id", a.EmailID, "filename", a.Filename, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (u *entUnitOfWork) InsertAlert(ctx context.Context, a *entity.Alert) (uuid.UUID, error) {
	row, err := u.tx.Alert.Create().
		SetTipo(a.Tipo).
		SetTitulo(a.Titulo).
		SetNillableDescripcion(a.Descripcion).
		SetNillableTaskID(a.TaskID).
		SetNillableEmailID(a.EmailID).
		SetSeveridad(a.Severidad).
		SetLeida(a.Leida).
		Save(ctx)
	if err != nil {
		u.logger.Error("failed to insert alert", "tipo", a.Tipo, "error", err)
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (u *entUnitOfWork) Commit() error {
	return u.tx.Commit()
}

func (u *entUnitOfWork) Rollback() error {
	return u.tx.Rollback()
}
