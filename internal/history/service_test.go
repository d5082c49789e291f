package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvillarroel/cobertor-bot/internal/entity"
	"github.com/fvillarroel/cobertor-bot/internal/mail"
)

type fakeHistoryMail struct {
	messages []mail.Message
	since    time.Time
	max      int
}

func (f *fakeHistoryMail) FetchUnseen(context.Context, int) ([]mail.Message, error) {
	return nil, nil
}

func (f *fakeHistoryMail) FetchSince(_ context.Context, since time.Time, max int) ([]mail.Message, error) {
	f.since = since
	f.max = max
	return f.messages, nil
}

func (f *fakeHistoryMail) MarkSeen(context.Context, string) error { return nil }

type fakeHistoryRepo struct {
	profiles []*entity.SenderProfile
	patterns []*entity.ThreadPattern
	rules    []*entity.LearnedRule
}

func (f *fakeHistoryRepo) UpsertSenderProfile(_ context.Context, p *entity.SenderProfile) error {
	f.profiles = append(f.profiles, p)
	return nil
}

func (f *fakeHistoryRepo) UpsertThreadPattern(_ context.Context, p *entity.ThreadPattern) error {
	f.patterns = append(f.patterns, p)
	return nil
}

func (f *fakeHistoryRepo) UpsertLearnedRule(_ context.Context, r *entity.LearnedRule) error {
	f.rules = append(f.rules, r)
	return nil
}

func (f *fakeHistoryRepo) ListSenderProfiles(context.Context, int) ([]*entity.SenderProfile, error) {
	return f.profiles, nil
}

func historyMsg(id, sender, thread, subject string) mail.Message {
	return mail.Message{
		ID:          id,
		ThreadID:    thread,
		SenderEmail: sender,
		Subject:     subject,
		ReceivedAt:  time.Now(),
	}
}

func TestScannerProfilesConsistentSender(t *testing.T) {
	mailc := &fakeHistoryMail{messages: []mail.Message{
		historyMsg("1", "campo@fundo.cl", "t1", "URGENTE reparar cobertor"),
		historyMsg("2", "campo@fundo.cl", "t2", "Emergencia en cuartel 4"),
		historyMsg("3", "campo@fundo.cl", "t3", "Revisar hoy mismo"),
	}}
	repo := &fakeHistoryRepo{}

	sc := NewScanner(mailc, repo, Config{Months: 6, MaxMessages: 500}, nil)
	stats, err := sc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.EmailsAnalyzed)
	assert.Equal(t, 1, stats.SendersProfiled)
	require.Len(t, repo.profiles, 1)

	p := repo.profiles[0]
	assert.Equal(t, "campo@fundo.cl", p.Email)
	assert.Equal(t, "fundo.cl", p.Domain)
	assert.Equal(t, "cliente", p.Category)
	assert.Equal(t, "critica", p.TypicalUrgency)
	assert.Equal(t, 3, p.EmailsAnalyzed)
	// 3 of 3 critica: share 1.0 scaled by volume 3/10
	assert.InDelta(t, 0.3, p.Confidence, 0.001)

	// three emails are below the rule threshold
	assert.Empty(t, repo.rules)
}

func TestScannerSkipsLowVolumeSenders(t *testing.T) {
	mailc := &fakeHistoryMail{messages: []mail.Message{
		historyMsg("1", "a@x.cl", "t1", "consulta"),
		historyMsg("2", "b@y.cl", "t2", "consulta"),
	}}
	repo := &fakeHistoryRepo{}

	sc := NewScanner(mailc, repo, Config{}, nil)
	stats, err := sc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.EmailsAnalyzed)
	assert.Zero(t, stats.SendersProfiled)
	assert.Empty(t, repo.profiles)
}

func TestScannerGeneratesRuleForDominantUrgency(t *testing.T) {
	var msgs []mail.Message
	for i := 0; i < 5; i++ {
		msgs = append(msgs, historyMsg(fmt.Sprintf("u%d", i), "jefe@fundo.cl", fmt.Sprintf("t%d", i), "URGENTE pedido"))
	}
	msgs = append(msgs, historyMsg("n1", "jefe@fundo.cl", "tn", "info mensual"))
	mailc := &fakeHistoryMail{messages: msgs}
	repo := &fakeHistoryRepo{}

	sc := NewScanner(mailc, repo, Config{}, nil)
	stats, err := sc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.RulesGenerated)
	require.Len(t, repo.rules, 1)
	rule := repo.rules[0]
	assert.Equal(t, "Auto: jefe@fundo.cl", rule.RuleName)
	assert.Equal(t, "jefe@fundo.cl", rule.SenderEmail)
	assert.Equal(t, "critica", rule.Urgency)
	// 5 of 6 urgent
	assert.InDelta(t, 5.0/6.0, rule.Confidence, 0.001)
}

func TestScannerNoRuleWithoutDominantShare(t *testing.T) {
	msgs := []mail.Message{
		historyMsg("1", "mix@x.cl", "t1", "urgente"),
		historyMsg("2", "mix@x.cl", "t2", "urgente"),
		historyMsg("3", "mix@x.cl", "t3", "info"),
		historyMsg("4", "mix@x.cl", "t4", "info"),
		historyMsg("5", "mix@x.cl", "t5", "revisar"),
	}
	mailc := &fakeHistoryMail{messages: msgs}
	repo := &fakeHistoryRepo{}

	sc := NewScanner(mailc, repo, Config{}, nil)
	stats, err := sc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.SendersProfiled)
	assert.Zero(t, stats.RulesGenerated)
}

func TestScannerThreadPatterns(t *testing.T) {
	msgs := []mail.Message{
		historyMsg("1", "a@x.cl", "hilo-1", "pedido"),
		historyMsg("2", "b@interno.cl", "hilo-1", "Fwd: pedido"),
		historyMsg("3", "c@x.cl", "hilo-1", "Re: pedido"),
		// single-message thread is ignored
		historyMsg("4", "d@y.cl", "hilo-2", "hola"),
	}
	msgs[2].HasAttachments = true
	mailc := &fakeHistoryMail{messages: msgs}
	repo := &fakeHistoryRepo{}

	sc := NewScanner(mailc, repo, Config{InternalDomain: "interno.cl"}, nil)
	stats, err := sc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ThreadsAnalyzed)
	require.Len(t, repo.patterns, 1)

	p := repo.patterns[0]
	assert.Equal(t, "hilo-1", p.ThreadID)
	assert.Equal(t, 3, p.TotalMessages)
	assert.Equal(t, 1, p.InternalParticipants)
	assert.Equal(t, 2, p.ExternalParticipants)
	assert.True(t, p.HasForward)
	assert.True(t, p.HasAttachments)
	assert.Equal(t, "baja", p.Complexity)
}

func TestScannerInternalSendersNotProfiled(t *testing.T) {
	mailc := &fakeHistoryMail{messages: []mail.Message{
		historyMsg("1", "admin@interno.cl", "t1", "urgente"),
		historyMsg("2", "admin@interno.cl", "t2", "urgente"),
		historyMsg("3", "admin@interno.cl", "t3", "urgente"),
	}}
	repo := &fakeHistoryRepo{}

	sc := NewScanner(mailc, repo, Config{InternalDomain: "interno.cl"}, nil)
	stats, err := sc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.EmailsAnalyzed)
	assert.Zero(t, stats.SendersProfiled)
}

func TestScannerFetchWindow(t *testing.T) {
	mailc := &fakeHistoryMail{}
	sc := NewScanner(mailc, &fakeHistoryRepo{}, Config{Months: 3, MaxMessages: 200}, nil)

	_, err := sc.Run(context.Background())
	require.NoError(t, err)

	expected := time.Now().AddDate(0, -3, 0)
	assert.WithinDuration(t, expected, mailc.since, time.Minute)
	assert.Equal(t, 200, mailc.max)
}

func TestDetectUrgencyOrder(t *testing.T) {
	cases := []struct {
		subject string
		want    string
	}{
		{"urgente y prioritario", "critica"},
		{"tema prioritario", "alta"},
		{"revisar planilla", "media"},
		{"fyi para conocimiento", "baja"},
		{"sin palabra clave", "media"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, detectUrgency(tc.subject), tc.subject)
	}
}

func TestDetectIntent(t *testing.T) {
	assert.Equal(t, "cotizacion", detectIntent("solicito cotización de cobertores"))
	assert.Equal(t, "reclamo", detectIntent("reclamo por entrega"))
	assert.Equal(t, "otro", detectIntent("saludos cordiales"))
}
