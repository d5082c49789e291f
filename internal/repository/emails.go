package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fvillarroel/cobertor-bot/gen/ent"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
	"github.com/fvillarroel/cobertor-bot/internal/utils"
)

// EmailDetail is one email with everything the pipeline derived from it.
type EmailDetail struct {
	Email       *entity.EmailMessage
	Tasks       []*entity.Task
	Attachments []*entity.Attachment
}

type EmailRepository interface {
	ListEmails(ctx context.Context, status *string, limit, offset int) ([]*entity.EmailMessage, error)
	GetEmail(ctx context.Context, id uuid.UUID) (*EmailDetail, error)
}

type emailRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEmailRepository(client *ent.Client, logger *slog.Logger) EmailRepository {
	return &emailRepository{client: client, logger: logger}
}

func (r *emailRepository) ListEmails(ctx context.Context, status *string, limit, offset int) ([]*entity.EmailMessage, error) {
	q := r.client.EmailMessage.Query()
	if status != nil && *status != "" {
		q = q.Where(emailmessage.Status(*status))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(ent.Desc(emailmessage.FieldReceivedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list emails", "error", err)
		return nil, err
	}

	result := make([]*entity.EmailMessage, len(rows))
	for i, row := range rows {
		result[i] = utils.ToEmailMessage(row)
	}
	return result, nil
}

func (r *emailRepository) GetEmail(ctx context.Context, id uuid.UUID) (*EmailDetail, error) {
	row, err := r.client.EmailMessage.Query().
		Where(emailmessage.ID(id)).
		WithTasks().
		WithAdjuntos().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get email", "email_id", id, "error", err)
		return nil, err
	}

	detail := &EmailDetail{Email: utils.ToEmailMessage(row)}
	for _, t := range row.Edges.Tasks {
		detail.Tasks = append(detail.Tasks, utils.ToTask(t))
	}
	for _, a := range row.Edges.Adjuntos {
		detail.Attachments = append(detail.Attachments, utils.ToAttachment(a))
	}
	return detail, nil
}
