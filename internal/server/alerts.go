package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cobertorpb "github.com/fvillarroel/cobertor-bot/gen/proto/cobertor/v1"
	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
	"github.com/fvillarroel/cobertor-bot/internal/utils"
)

type AlertsService struct {
	cobertorpb.UnimplementedAlertsServiceServer
	alertRepo repository.AlertRepository
	logger    *slog.Logger
}

func NewAlertsService(alertRepo repository.AlertRepository, logger *slog.Logger) *AlertsService {
	return &AlertsService{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (s *AlertsService) ListAlerts(ctx context.Context, req *cobertorpb.ListAlertsRequest) (*cobertorpb.ListAlertsResponse, error) {
	alerts, err := s.alertRepo.ListAlerts(ctx, req.GetUnreadOnly(), int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list alerts", "error", err)
		return nil, status.Errorf(codes.Internal, "list alerts: %v", err)
	}

	out := make([]*cobertorpb.Alert, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, utils.ToPBAlert(a))
	}
	return &cobertorpb.ListAlertsResponse{Alerts: out}, nil
}

func (s *AlertsService) MarkAlertRead(ctx context.Context, req *cobertorpb.MarkAlertReadRequest) (*cobertorpb.MarkAlertReadResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		s.logger.Error("invalid alert id", "id", req.GetId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	alert, err := s.alertRepo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "alert not found")
		}
		s.logger.Error("failed to mark alert read", "alert_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "mark alert read: %v", err)
	}
	return &cobertorpb.MarkAlertReadResponse{Alert: utils.ToPBAlert(alert)}, nil
}
