package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/fvillarroel/cobertor-bot/internal/mail"
)

// BatchStats aggregates one polling run.
type BatchStats struct {
	EmailsProcessed      int
	TasksCreated         int
	AttachmentsProcessed int
	Duplicates           int
	Errors               int
	StartedAt            time.Time
	Duration             time.Duration
}

// Batch fetches unread labeled mail and runs each message through the
// processor. One failed message is counted and skipped; the batch never
// aborts because of it.
type Batch struct {
	mailc     mail.Client
	processor *Processor
	logger    *slog.Logger
}

func NewBatch(mailc mail.Client, processor *Processor, logger *slog.Logger) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{mailc: mailc, processor: processor, logger: logger}
}

func (b *Batch) ProcessNewMessages(ctx context.Context, max int) (BatchStats, error) {
	stats := BatchStats{StartedAt: time.Now()}
	defer func() { stats.Duration = time.Since(stats.StartedAt) }()

	msgs, err := b.mailc.FetchUnseen(ctx, max)
	if err != nil {
		b.logger.Error("batch.fetch.failed", "error", err)
		return stats, err
	}
	if len(msgs) == 0 {
		b.logger.Info("batch.empty")
		return stats, nil
	}

	b.logger.Info("batch.start", "messages", len(msgs), "max", max)

	for _, msg := range msgs {
		if err := ctx.Err(); err != nil {
			b.logger.Warn("batch.cancelled", "processed", stats.EmailsProcessed)
			return stats, err
		}

		res := b.processor.ProcessMessage(ctx, msg)
		switch {
		case res.Duplicate:
			stats.Duplicates++
		case res.Success:
			stats.EmailsProcessed++
			stats.TasksCreated += res.TasksCreated
			stats.AttachmentsProcessed += res.AttachmentsProcessed
		default:
			stats.Errors++
		}
	}

	b.logger.Info("batch.done",
		"emails_processed", stats.EmailsProcessed,
		"tasks_created", stats.TasksCreated,
		"attachments_processed", stats.AttachmentsProcessed,
		"duplicates", stats.Duplicates,
		"errors", stats.Errors,
		"elapsed_ms", time.Since(stats.StartedAt).Milliseconds(),
	)
	return stats, nil
}
