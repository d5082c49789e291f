package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fvillarroel/cobertor-bot/constants"
	"github.com/fvillarroel/cobertor-bot/gen/ent"
	enttask "github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
	"github.com/fvillarroel/cobertor-bot/internal/utils"
)

// TaskFilter narrows ListTasks. Zero values mean "no filter".
type TaskFilter struct {
	Estado    string
	Prioridad string
	Codigo    string
	Urgente   *bool
	Limit     int
	Offset    int
}

type TaskRepository interface {
	ListTasks(ctx context.Context, filter TaskFilter) ([]*entity.Task, error)
	SetEstado(ctx context.Context, id uuid.UUID, estado string) (*entity.Task, error)
}

type taskRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTaskRepository(client *ent.Client, logger *slog.Logger) TaskRepository {
	return &taskRepository{client: client, logger: logger}
}

func (r *taskRepository) ListTasks(ctx context.Context, filter TaskFilter) ([]*entity.Task, error) {
	q := r.client.Task.Query()
	if filter.Estado != "" {
		q = q.Where(enttask.Estado(filter.Estado))
	}
	if filter.Prioridad != "" {
		q = q.Where(enttask.Prioridad(filter.Prioridad))
	}
	if filter.Codigo != "" {
		q = q.Where(enttask.CodigoCobertorContainsFold(filter.Codigo))
	}
	if filter.Urgente != nil {
		q = q.Where(enttask.Urgente(*filter.Urgente))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	rows, err := q.Order(ent.Desc(enttask.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list tasks", "error", err)
		return nil, err
	}

	result := make([]*entity.Task, len(rows))
	for i, row := range rows {
		result[i] = utils.ToTask(row)
	}
	return result, nil
}

// SetEstado transitions a task. Moving into done stamps fecha_completada;
// moving out of done clears it again.
func (r *taskRepository) SetEstado(ctx context.Context, id uuid.UUID, estado string) (*entity.Task, error) {
	if !constants.IsValidTaskStatus(estado) {
		return nil, common.NewAppError("INVALID_ESTADO", "unknown task estado: "+estado, common.ErrInvalidInput)
	}

	upd := r.client.Task.UpdateOneID(id).SetEstado(estado)
	if estado == string(constants.TaskStatusDone) {
		upd = upd.SetFechaCompletada(time.Now())
	} else {
		upd = upd.ClearFechaCompletada()
	}

	row, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update task estado", "task_id", id, "estado", estado, "error", err)
		return nil, err
	}
	return utils.ToTask(row), nil
}
