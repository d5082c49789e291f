package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	cobertorpb "github.com/fvillarroel/cobertor-bot/gen/proto/cobertor/v1"
	"github.com/fvillarroel/cobertor-bot/internal/common"
	"github.com/fvillarroel/cobertor-bot/internal/extract"
	"github.com/fvillarroel/cobertor-bot/internal/llm"
	"github.com/fvillarroel/cobertor-bot/internal/llm/openai"
	"github.com/fvillarroel/cobertor-bot/internal/mail"
	"github.com/fvillarroel/cobertor-bot/internal/pipeline"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
	"github.com/fvillarroel/cobertor-bot/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(client, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	cobertorpb.RegisterEmailsServiceServer(grpcServer, server.NewEmailsService(repository.NewEmailRepository(client, logger), logger))
	cobertorpb.RegisterTasksServiceServer(grpcServer, server.NewTasksService(repository.NewTaskRepository(client, logger), logger))
	cobertorpb.RegisterAlertsServiceServer(grpcServer, server.NewAlertsService(repository.NewAlertRepository(client, logger), logger))
	cobertorpb.RegisterStatsServiceServer(grpcServer, server.NewStatsService(repository.NewStatsRepository(client, logger), logger))

	// Background polling: with an interval set, the daemon also drives the
	// extraction pipeline instead of leaving it to the CLI or cron.
	if interval := pollInterval(); interval > 0 {
		mailc := mail.NewGmailClient(mail.GmailConfig{
			AccessToken: cfg.Mail.AccessToken,
			BaseURL:     cfg.Mail.BaseURL,
			Label:       cfg.Mail.Label,
			Timeout:     cfg.Mail.Timeout,
		}, logger)
		gen := openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		processor := pipeline.NewProcessor(
			repository.NewStore(client, logger),
			mailc,
			extract.NewTabularExtractor(logger),
			extract.NewDocumentTextExtractor(extract.DocumentConfig{Pdftotext: cfg.Pipeline.Pdftotext}, logger),
			llm.NewExtractor(gen, logger),
			cfg.Pipeline.MinBodyLength,
			logger,
		)
		batch := pipeline.NewBatch(mailc, processor, logger)

		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			logger.Info("polling enabled", "interval", interval.String())
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if _, err := batch.ProcessNewMessages(ctx, cfg.Pipeline.BatchSize); err != nil {
						logger.Error("poll batch failed", "error", err)
					}
				}
			}
		}()
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

func pollInterval() time.Duration {
	v := os.Getenv("POLL_INTERVAL")
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid POLL_INTERVAL, polling disabled", "value", v, "error", err)
		return 0
	}
	return d
}
