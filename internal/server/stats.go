package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cobertorpb "github.com/fvillarroel/cobertor-bot/gen/proto/cobertor/v1"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
)

type StatsService struct {
	cobertorpb.UnimplementedStatsServiceServer
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

func NewStatsService(statsRepo repository.StatsRepository, logger *slog.Logger) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (s *StatsService) GetStats(ctx context.Context, _ *cobertorpb.GetStatsRequest) (*cobertorpb.GetStatsResponse, error) {
	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		s.logger.Error("failed to get stats", "error", err)
		return nil, status.Errorf(codes.Internal, "get stats: %v", err)
	}

	resp := &cobertorpb.GetStatsResponse{
		EmailsByStatus: make(map[string]int32, len(stats.EmailsByStatus)),
		TasksByEstado:  make(map[string]int32, len(stats.TasksByEstado)),
		UrgentTasks:    int32(stats.UrgentTasks),
		UnreadAlerts:   int32(stats.UnreadAlerts),
	}
	for k, v := range stats.EmailsByStatus {
		resp.EmailsByStatus[k] = int32(v)
	}
	for k, v := range stats.TasksByEstado {
		resp.TasksByEstado[k] = int32(v)
	}
	return resp, nil
}
