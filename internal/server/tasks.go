package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fvillarroel/cobertor-bot/constants"
	cobertorpb "github.com/fvillarroel/cobertor-bot/gen/proto/cobertor/v1"
	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
	"github.com/fvillarroel/cobertor-bot/internal/utils"
)

type TasksService struct {
	cobertorpb.UnimplementedTasksServiceServer
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

func NewTasksService(taskRepo repository.TaskRepository, logger *slog.Logger) *TasksService {
	return &TasksService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (s *TasksService) ListTasks(ctx context.Context, req *cobertorpb.ListTasksRequest) (*cobertorpb.ListTasksResponse, error) {
	filter := repository.TaskFilter{
		Estado:    strings.TrimSpace(req.GetEstado()),
		Prioridad: strings.TrimSpace(req.GetPrioridad()),
		Codigo:    strings.TrimSpace(req.GetCodigo()),
		Limit:     int(req.GetLimit()),
		Offset:    int(req.GetOffset()),
	}
	if req.Urgente != nil {
		filter.Urgente = req.Urgente
	}
	if filter.Estado != "" && !constants.IsValidTaskStatus(filter.Estado) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown estado: %q", filter.Estado)
	}

	tasks, err := s.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, status.Errorf(codes.Internal, "list tasks: %v", err)
	}

	out := make([]*cobertorpb.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, utils.ToPBTask(t))
	}
	return &cobertorpb.ListTasksResponse{Tasks: out}, nil
}

func (s *TasksService) SetTaskState(ctx context.Context, req *cobertorpb.SetTaskStateRequest) (*cobertorpb.SetTaskStateResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		s.logger.Error("invalid task id", "id", req.GetId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	estado := strings.TrimSpace(req.GetEstado())
	if !constants.IsValidTaskStatus(estado) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown estado: %q", estado)
	}

	task, err := s.taskRepo.SetEstado(ctx, id, estado)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		s.logger.Error("failed to set task estado", "task_id", id, "estado", estado, "error", err)
		return nil, status.Errorf(codes.Internal, "set task estado: %v", err)
	}

	s.logger.Info("task estado updated", "task_id", id, "estado", estado)
	return &cobertorpb.SetTaskStateResponse{Task: utils.ToPBTask(task)}, nil
}
