package repository

import (
	"context"
	"log/slog"

	"github.com/fvillarroel/cobertor-bot/gen/ent"
	entalert "github.com/fvillarroel/cobertor-bot/gen/ent/alert"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	enttask "github.com/fvillarroel/cobertor-bot/gen/ent/task"
)

// Stats is the dashboard summary: row counts grouped by the states that
// matter operationally.
type Stats struct {
	EmailsByStatus map[string]int
	TasksByEstado  map[string]int
	UrgentTasks    int
	UnreadAlerts   int
}

type StatsRepository interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statsRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStatsRepository(client *ent.Client, logger *slog.Logger) StatsRepository {
	return &statsRepository{client: client, logger: logger}
}

func (r *statsRepository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		EmailsByStatus: make(map[string]int),
		TasksByEstado:  make(map[string]int),
	}

	var emailGroups []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.client.EmailMessage.Query().
		GroupBy(emailmessage.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &emailGroups)
	if err != nil {
		r.logger.Error("failed to group emails by status", "error", err)
		return nil, err
	}
	for _, g := range emailGroups {
		stats.EmailsByStatus[g.Status] = g.Count
	}

	var taskGroups []struct {
		Estado string `json:"estado"`
		Count  int    `json:"count"`
	}
	err = r.client.Task.Query().
		GroupBy(enttask.FieldEstado).
		Aggregate(ent.Count()).
		Scan(ctx, &taskGroups)
	if err != nil {
		r.logger.Error("failed to group tasks by estado", "error", err)
		return nil, err
	}
	for _, g := range taskGroups {
		stats.TasksByEstado[g.Estado] = g.Count
	}

	urgent, err := r.client.Task.Query().Where(enttask.Urgente(true)).Count(ctx)
	if err != nil {
		r.logger.Error("failed to count urgent tasks", "error", err)
		return nil, err
	}
	stats.UrgentTasks = urgent

	unread, err := r.client.Alert.Query().Where(entalert.Leida(false)).Count(ctx)
	if err != nil {
		r.logger.Error("failed to count unread alerts", "error", err)
		return nil, err
	}
	stats.UnreadAlerts = unread

	return stats, nil
}
