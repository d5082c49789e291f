package history

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fvillarroel/cobertor-bot/internal/entity"
	"github.com/fvillarroel/cobertor-bot/internal/mail"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
)

// Keyword buckets for subject classification. Order matters: the first
// bucket with a hit wins.
var urgencyBuckets = []struct {
	level    string
	keywords []string
}{
	{"critica", []string{"urgente", "emergencia", "inmediato", "hoy mismo", "ahora", "ya"}},
	{"alta", []string{"pronto", "prioritario", "importante", "necesario", "asap"}},
	{"media", []string{"cuando puedas", "esta semana", "revisar"}},
	{"baja", []string{"info", "informativo", "fyi", "para conocimiento"}},
}

var intentBuckets = []struct {
	intent   string
	keywords []string
}{
	{"cotizacion", []string{"cotización", "cotizar", "precio", "cuánto cuesta", "presupuesto"}},
	{"orden_compra", []string{"orden de compra", "oc", "pedido", "comprar"}},
	{"reclamo", []string{"reclamo", "problema", "error", "mal", "incorrecto", "queja"}},
	{"soporte", []string{"ayuda", "soporte", "apoyo", "consulta", "duda"}},
	{"seguimiento", []string{"seguimiento", "estado", "avance", "progreso"}},
	{"urgente", []string{"urgente", "emergencia", "inmediato", "crítico"}},
}

// Profile thresholds: below minProfileEmails a sender stays unprofiled;
// a rule needs minRuleEmails plus a dominant urgency share.
const (
	minProfileEmails  = 3
	minRuleEmails     = 5
	minRuleShare      = 0.7
	minThreadMessages = 2
)

type Config struct {
	Months         int
	MaxMessages    int
	InternalDomain string
}

// ScanStats summarizes one historical analysis run.
type ScanStats struct {
	EmailsAnalyzed  int
	SendersProfiled int
	ThreadsAnalyzed int
	RulesGenerated  int
	Duration        time.Duration
}

// Scanner mines past labeled correspondence into sender profiles, thread
// patterns and heuristic rules.
type Scanner struct {
	mailc  mail.Client
	repo   repository.HistoryRepository
	cfg    Config
	logger *slog.Logger
}

func NewScanner(mailc mail.Client, repo repository.HistoryRepository, cfg Config, logger *slog.Logger) *Scanner {
	if cfg.Months <= 0 {
		cfg.Months = 6
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = 500
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{mailc: mailc, repo: repo, cfg: cfg, logger: logger}
}

type senderAccum struct {
	total          int
	urgencyCounts  map[string]int
	intentCounts   map[string]int
	hasAttachments int
}

type threadAccum struct {
	messages       int
	participants   map[string]struct{}
	internalCount  int
	externalCount  int
	hasForward     bool
	hasAttachments bool
}

// Run fetches history going back cfg.Months and persists everything it
// learns. Upserts make rescans converge rather than duplicate.
func (s *Scanner) Run(ctx context.Context) (ScanStats, error) {
	start := time.Now()
	stats := ScanStats{}
	defer func() { stats.Duration = time.Since(start) }()

	since := time.Now().AddDate(0, -s.cfg.Months, 0)
	s.logger.Info("history.scan.start", "since", since.Format("2006-01-02"), "max", s.cfg.MaxMessages)

	msgs, err := s.mailc.FetchSince(ctx, since, s.cfg.MaxMessages)
	if err != nil {
		s.logger.Error("history.scan.fetch_failed", "error", err)
		return stats, err
	}

	senders := make(map[string]*senderAccum)
	threads := make(map[string]*threadAccum)

	for _, msg := range msgs {
		stats.EmailsAnalyzed++
		isInternal := s.cfg.InternalDomain != "" && strings.Contains(msg.SenderEmail, s.cfg.InternalDomain)

		if !isInternal {
			acc := senders[msg.SenderEmail]
			if acc == nil {
				acc = &senderAccum{
					urgencyCounts: make(map[string]int),
					intentCounts:  make(map[string]int),
				}
				senders[msg.SenderEmail] = acc
			}
			subject := strings.ToLower(msg.Subject)
			acc.total++
			acc.urgencyCounts[detectUrgency(subject)]++
			acc.intentCounts[detectIntent(subject)]++
			if msg.HasAttachments {
				acc.hasAttachments++
			}
		}

		tacc := threads[msg.ThreadID]
		if tacc == nil {
			tacc = &threadAccum{participants: make(map[string]struct{})}
			threads[msg.ThreadID] = tacc
		}
		tacc.messages++
		tacc.participants[msg.SenderEmail] = struct{}{}
		if isInternal {
			tacc.internalCount++
		} else {
			tacc.externalCount++
		}
		if strings.Contains(strings.ToLower(msg.Subject), "fwd") {
			tacc.hasForward = true
		}
		if msg.HasAttachments {
			tacc.hasAttachments = true
		}
	}

	if err := s.saveSenderProfiles(ctx, senders, &stats); err != nil {
		return stats, err
	}
	if err := s.saveThreadPatterns(ctx, threads, &stats); err != nil {
		return stats, err
	}
	if err := s.generateRules(ctx, senders, &stats); err != nil {
		return stats, err
	}

	s.logger.Info("history.scan.done",
		"emails_analyzed", stats.EmailsAnalyzed,
		"senders_profiled", stats.SendersProfiled,
		"threads_analyzed", stats.ThreadsAnalyzed,
		"rules_generated", stats.RulesGenerated,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return stats, nil
}

func (s *Scanner) saveSenderProfiles(ctx context.Context, senders map[string]*senderAccum, stats *ScanStats) error {
	for email, acc := range senders {
		if acc.total < minProfileEmails {
			continue
		}

		urgency, urgencyCount := mostCommon(acc.urgencyCounts)
		intent, _ := mostCommon(acc.intentCounts)

		// confidence scales with both consistency and volume
		share := float64(urgencyCount) / float64(acc.total)
		confidence := share * float64(acc.total) / 10
		if confidence > 1 {
			confidence = 1
		}

		domain := ""
		if i := strings.LastIndex(email, "@"); i >= 0 {
			domain = email[i+1:]
		}
		category := "cliente"
		if strings.Contains(strings.ToLower(domain), "proveedor") {
			category = "proveedor"
		}

		err := s.repo.UpsertSenderProfile(ctx, &entity.SenderProfile{
			Email:          email,
			Domain:         domain,
			Category:       category,
			TypicalUrgency: urgency,
			TypicalIntent:  intent,
			EmailsAnalyzed: acc.total,
			Confidence:     confidence,
			LastSeen:       time.Now(),
		})
		if err != nil {
			return err
		}
		stats.SendersProfiled++
	}
	return nil
}

func (s *Scanner) saveThreadPatterns(ctx context.Context, threads map[string]*threadAccum, stats *ScanStats) error {
	for threadID, acc := range threads {
		if threadID == "" || acc.messages < minThreadMessages {
			continue
		}

		complexity := "baja"
		switch {
		case acc.messages > 10 || len(acc.participants) > 5:
			complexity = "alta"
		case acc.messages > 5 || len(acc.participants) > 3:
			complexity = "media"
		}

		err := s.repo.UpsertThreadPattern(ctx, &entity.ThreadPattern{
			ThreadID:             threadID,
			TotalMessages:        acc.messages,
			InternalParticipants: acc.internalCount,
			ExternalParticipants: acc.externalCount,
			HasForward:           acc.hasForward,
			HasAttachments:       acc.hasAttachments,
			Complexity:           complexity,
		})
		if err != nil {
			return err
		}
		stats.ThreadsAnalyzed++
	}
	return nil
}

func (s *Scanner) generateRules(ctx context.Context, senders map[string]*senderAccum, stats *ScanStats) error {
	for email, acc := range senders {
		if acc.total < minRuleEmails {
			continue
		}
		urgency, count := mostCommon(acc.urgencyCounts)
		share := float64(count) / float64(acc.total)
		if share <= minRuleShare {
			continue
		}

		err := s.repo.UpsertLearnedRule(ctx, &entity.LearnedRule{
			RuleName:    "Auto: " + email,
			SenderEmail: email,
			Urgency:     urgency,
			Confidence:  share,
		})
		if err != nil {
			return err
		}
		stats.RulesGenerated++
	}
	return nil
}

func detectUrgency(subject string) string {
	for _, b := range urgencyBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(subject, kw) {
				return b.level
			}
		}
	}
	return "media"
}

func detectIntent(subject string) string {
	for _, b := range intentBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(subject, kw) {
				return b.intent
			}
		}
	}
	return "otro"
}

func mostCommon(counts map[string]int) (string, int) {
	best, bestN := "", -1
	for k, n := range counts {
		if n > bestN {
			best, bestN = k, n
		}
	}
	return best, bestN
}
