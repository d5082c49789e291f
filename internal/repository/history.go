package repository

import (
	"context"
	"log/slog"

	"github.com/fvillarroel/cobertor-bot/gen/ent"
	"github.com/fvillarroel/cobertor-bot/gen/ent/learnedrule"
	"github.com/fvillarroel/cobertor-bot/gen/ent/senderprofile"
	"github.com/fvillarroel/cobertor-bot/gen/ent/threadpattern"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
	"github.com/fvillarroel/cobertor-bot/internal/utils"
)

// HistoryRepository persists what the historical scanner learns. Every
// write is an upsert keyed on the natural identifier so rescans converge
// instead of duplicating.
type HistoryRepository interface {
	UpsertSenderProfile(ctx context.Context, p *entity.SenderProfile) error
	UpsertThreadPattern(ctx context.Context, p *entity.ThreadPattern) error
	UpsertLearnedRule(ctx context.Context, rule *entity.LearnedRule) error
	ListSenderProfiles(ctx context.Context, limit int) ([]*entity.SenderProfile, error)
}

type historyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewHistoryRepository(client *ent.Client, logger *slog.Logger) HistoryRepository {
	return &historyRepository{client: client, logger: logger}
}

func (r *historyRepository) UpsertSenderProfile(ctx context.Context, p *entity.SenderProfile) error {
	err := r.client.SenderProfile.Create().
		SetEmail(p.Email).
		SetDomain(p.Domain).
		SetCategory(p.Category).
		SetTypicalUrgency(p.TypicalUrgency).
		SetTypicalIntent(p.TypicalIntent).
		SetEmailsAnalyzed(p.EmailsAnalyzed).
		SetConfidence(p.Confidence).
		SetLastSeen(p.LastSeen).
		OnConflictColumns(senderprofile.FieldEmail).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert sender profile", "email", p.Email, "error", err)
	}
	return err
}

func (r *historyRepository) UpsertThreadPattern(ctx context.Context, p *entity.ThreadPattern) error {
	err := r.client.ThreadPattern.Create().
		SetThreadID(p.ThreadID).
		SetTotalMessages(p.TotalMessages).
		SetInternalParticipants(p.InternalParticipants).
		SetExternalParticipants(p.ExternalParticipants).
		SetHasForward(p.HasForward).
		SetHasAttachments(p.HasAttachments).
		SetComplexity(p.Complexity).
		OnConflictColumns(threadpattern.FieldThreadID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert thread pattern", "thread_id", p.ThreadID, "error", err)
	}
	return err
}

func (r *historyRepository) UpsertLearnedRule(ctx context.Context, rule *entity.LearnedRule) error {
	err := r.client.LearnedRule.Create().
		SetRuleName(rule.RuleName).
		SetSenderEmail(rule.SenderEmail).
		SetUrgency(rule.Urgency).
		SetConfidence(rule.Confidence).
		OnConflictColumns(learnedrule.FieldRuleName).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert learned rule", "rule_name", rule.RuleName, "error", err)
	}
	return err
}

func (r *historyRepository) ListSenderProfiles(ctx context.Context, limit int) ([]*entity.SenderProfile, error) {
	q := r.client.SenderProfile.Query().Order(ent.Desc(senderprofile.FieldEmailsAnalyzed))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list sender profiles", "error", err)
		return nil, err
	}
	result := make([]*entity.SenderProfile, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSenderProfile(row)
	}
	return result, nil
}
