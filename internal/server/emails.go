package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cobertorpb "github.com/fvillarroel/cobertor-bot/gen/proto/cobertor/v1"
	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
	"github.com/fvillarroel/cobertor-bot/internal/utils"
)

type EmailsService struct {
	cobertorpb.UnimplementedEmailsServiceServer
	emailRepo repository.EmailRepository
	logger    *slog.Logger
}

func NewEmailsService(emailRepo repository.EmailRepository, logger *slog.Logger) *EmailsService {
	return &EmailsService{
		emailRepo: emailRepo,
		logger:    logger,
	}
}

func (s *EmailsService) ListEmails(ctx context.Context, req *cobertorpb.ListEmailsRequest) (*cobertorpb.ListEmailsResponse, error) {
	var st *string
	if v := strings.TrimSpace(req.GetStatus()); v != "" {
		st = &v
	}

	emails, err := s.emailRepo.ListEmails(ctx, st, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list emails", "error", err)
		return nil, status.Errorf(codes.Internal, "list emails: %v", err)
	}

	out := make([]*cobertorpb.EmailMessage, 0, len(emails))
	for _, e := range emails {
		out = append(out, utils.ToPBEmail(e))
	}
	return &cobertorpb.ListEmailsResponse{Emails: out}, nil
}

func (s *EmailsService) GetEmail(ctx context.Context, req *cobertorpb.GetEmailRequest) (*cobertorpb.GetEmailResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		s.logger.Error("invalid email id", "id", req.GetId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	detail, err := s.emailRepo.GetEmail(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "email not found")
		}
		s.logger.Error("failed to get email", "email_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get email: %v", err)
	}

	resp := &cobertorpb.GetEmailResponse{Email: utils.ToPBEmail(detail.Email)}
	for _, t := range detail.Tasks {
		resp.Tasks = append(resp.Tasks, utils.ToPBTask(t))
	}
	for _, a := range detail.Attachments {
		resp.Attachments = append(resp.Attachments, utils.ToPBAttachment(a))
	}
	return resp, nil
}
