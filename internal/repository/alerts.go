package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fvillarroel/cobertor-bot/gen/ent"
	entalert "github.com/fvillarroel/cobertor-bot/gen/ent/alert"
	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
	"github.com/fvillarroel/cobertor-bot/internal/utils"
)

type AlertRepository interface {
	ListAlerts(ctx context.Context, unreadOnly bool, limit, offset int) ([]*entity.Alert, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*entity.Alert, error)
}

type alertRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAlertRepository(client *ent.Client, logger *slog.Logger) AlertRepository {
	return &alertRepository{client: client, logger: logger}
}

func (r *alertRepository) ListAlerts(ctx context.Context, unreadOnly bool, limit, offset int) ([]*entity.Alert, error) {
	q := r.client.Alert.Query()
	if unreadOnly {
		q = q.Where(entalert.Leida(false))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(ent.Desc(entalert.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list alerts", "error", err)
		return nil, err
	}

	result := make([]*entity.Alert, len(rows))
	for i, row := range rows {
		result[i] = utils.ToAlert(row)
	}
	return result, nil
}

func (r *alertRepository) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	row, err := r.client.Alert.UpdateOneID(id).SetLeida(true).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to mark alert read", "alert_id", id, "error", err)
		return nil, err
	}
	return utils.ToAlert(row), nil
}
