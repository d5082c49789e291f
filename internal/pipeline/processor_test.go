package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvillarroel/cobertor-bot/constants"
	"github.com/fvillarroel/cobertor-bot/internal/entity"
	"github.com/fvillarroel/cobertor-bot/internal/extract"
	"github.com/fvillarroel/cobertor-bot/internal/llm"
	"github.com/fvillarroel/cobertor-bot/internal/mail"
	"github.com/fvillarroel/cobertor-bot/internal/repository"
)

// fakeStore simulates the transactional store in memory: staged rows only
// become visible on Commit, Rollback discards them.
type fakeStore struct {
	emails      []*entity.EmailMessage
	tasks       []*entity.Task
	attachments []*entity.Attachment
	alerts      []*entity.Alert
	statuses    map[uuid.UUID]string

	standaloneAlerts []*entity.Alert
	seenMessageIDs   map[string]bool

	failTaskInsert bool
	beginErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		statuses:       make(map[uuid.UUID]string),
		seenMessageIDs: make(map[string]bool),
	}
}

func (s *fakeStore) Begin(context.Context) (repository.UnitOfWork, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return &fakeUOW{store: s}, nil
}

func (s *fakeStore) SaveAlert(_ context.Context, a *entity.Alert) (uuid.UUID, error) {
	a.ID = uuid.New()
	s.standaloneAlerts = append(s.standaloneAlerts, a)
	return a.ID, nil
}

type fakeUOW struct {
	store *fakeStore

	emails      []*entity.EmailMessage
	tasks       []*entity.Task
	attachments []*entity.Attachment
	alerts      []*entity.Alert
	statuses    map[uuid.UUID]string

	committed  bool
	rolledBack bool
}

func (u *fakeUOW) InsertEmail(_ context.Context, m *entity.EmailMessage) (uuid.UUID, error) {
	if u.store.seenMessageIDs[m.MessageID] {
		return uuid.Nil, repository.ErrDuplicateMessage
	}
	for _, e := range u.store.emails {
		if e.MessageID == m.MessageID {
			return uuid.Nil, repository.ErrDuplicateMessage
		}
	}
	m.ID = uuid.New()
	u.emails = append(u.emails, m)
	return m.ID, nil
}

func (u *fakeUOW) SetEmailStatus(_ context.Context, id uuid.UUID, status constants.EmailStatus, _ *string) error {
	if u.statuses == nil {
		u.statuses = make(map[uuid.UUID]string)
	}
	u.statuses[id] = string(status)
	return nil
}

func (u *fakeUOW) InsertTask(_ context.Context, t *entity.Task) (uuid.UUID, error) {
	if u.store.failTaskInsert {
		return uuid.Nil, errors.New("simulated persistence failure")
	}
	t.ID = uuid.New()
	u.tasks = append(u.tasks, t)
	return t.ID, nil
}

func (u *fakeUOW) InsertAttachment(_ context.Context, a *entity.Attachment) (uuid.UUID, error) {
	a.ID = uuid.New()
	u.attachments = append(u.attachments, a)
	return a.ID, nil
}

func (u *fakeUOW) InsertAlert(_ context.Context, a *entity.Alert) (uuid.UUID, error) {
	a.ID = uuid.New()
	u.alerts = append(u.alerts, a)
	return a.ID, nil
}

func (u *fakeUOW) Commit() error {
	u.committed = true
	u.store.emails = append(u.store.emails, u.emails...)
	u.store.tasks = append(u.store.tasks, u.tasks...)
	u.store.attachments = append(u.store.attachments, u.attachments...)
	u.store.alerts = append(u.store.alerts, u.alerts...)
	for id, st := range u.statuses {
		u.store.statuses[id] = st
	}
	return nil
}

func (u *fakeUOW) Rollback() error {
	u.rolledBack = true
	return nil
}

type fakeMail struct {
	unseen  []mail.Message
	seenIDs []string
	seenErr error
}

func (m *fakeMail) FetchUnseen(context.Context, int) ([]mail.Message, error) {
	return m.unseen, nil
}

func (m *fakeMail) FetchSince(context.Context, time.Time, int) ([]mail.Message, error) {
	return nil, nil
}

func (m *fakeMail) MarkSeen(_ context.Context, id string) error {
	if m.seenErr != nil {
		return m.seenErr
	}
	m.seenIDs = append(m.seenIDs, id)
	return nil
}

type fakeTabular struct {
	records []extract.TaskRecord
}

func (f *fakeTabular) Extract(string, []byte) []extract.TaskRecord { return f.records }

type fakeDocument struct {
	records []extract.TaskRecord
}

func (f *fakeDocument) Extract(context.Context, string, []byte) []extract.TaskRecord {
	return f.records
}

type fakeNarrative struct {
	record extract.TaskRecord
	err    error
	calls  int
}

func (f *fakeNarrative) ExtractTask(context.Context, string, string) (extract.TaskRecord, error) {
	f.calls++
	return f.record, f.err
}

func strPtr(s string) *string   { return &s }
func intPtr(n int) *int         { return &n }
func f64Ptr(f float64) *float64 { return &f }

func newTestProcessor(store *fakeStore, mailc *fakeMail, tab *fakeTabular, doc *fakeDocument, nar *fakeNarrative) *Processor {
	return NewProcessor(store, mailc, tab, doc, nar, MinBodyLength, nil)
}

func TestProcessMessageTabularAttachment(t *testing.T) {
	store := newFakeStore()
	mailc := &fakeMail{}
	tab := &fakeTabular{records: []extract.TaskRecord{{
		CodigoCobertor: strPtr("COB-001"),
		Cuartel:        strPtr("15"),
		Hileras:        intPtr(8),
		LargoMetros:    f64Ptr(120.5),
		Prioridad:      string(constants.PriorityHigh),
		Urgente:        true,
		Origen:         constants.OriginTabularAttachment,
	}}}
	nar := &fakeNarrative{err: llm.ErrNoData}

	p := newTestProcessor(store, mailc, tab, &fakeDocument{}, nar)
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:          "msg-1",
		SenderEmail: "campo@cliente.cl",
		Subject:     "Pedido cobertores",
		BodyText:    "corto",
		ReceivedAt:  time.Now(),
		Attachments: []mail.Attachment{{Filename: "pedidos.xlsx", Data: []byte("x")}},
	})

	require.True(t, res.Success)
	assert.Equal(t, 1, res.TasksCreated)
	assert.Equal(t, 1, res.AttachmentsProcessed)

	require.Len(t, store.emails, 1)
	assert.Equal(t, string(constants.EmailStatusProcessed), store.statuses[store.emails[0].ID])

	require.Len(t, store.tasks, 1)
	task := store.tasks[0]
	assert.Equal(t, "COB-001", *task.CodigoCobertor)
	assert.Equal(t, "15", *task.Cuartel)
	assert.Equal(t, 8, *task.Hileras)
	assert.InDelta(t, 120.5, *task.LargoMetros, 0.001)
	assert.Equal(t, string(constants.PriorityHigh), task.Prioridad)
	assert.Equal(t, string(constants.TaskStatusPending), task.Estado)
	assert.Equal(t, store.emails[0].ID, task.EmailID)

	require.Len(t, store.alerts, 1)
	assert.Equal(t, string(constants.AlertTypeUrgentTask), store.alerts[0].Tipo)
	assert.Equal(t, string(constants.SeverityHigh), store.alerts[0].Severidad)

	require.Len(t, store.attachments, 1)
	assert.Equal(t, 1, store.attachments[0].ExtractedCount)

	assert.Equal(t, []string{"msg-1"}, mailc.seenIDs)
	// short body never reaches the reasoning call
	assert.Equal(t, 0, nar.calls)
}

func TestProcessMessageShortBodyNoData(t *testing.T) {
	store := newFakeStore()
	mailc := &fakeMail{}
	nar := &fakeNarrative{}

	p := newTestProcessor(store, mailc, &fakeTabular{}, &fakeDocument{}, nar)
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:          "msg-2",
		SenderEmail: "a@b.cl",
		Subject:     "hola",
		BodyText:    "gracias",
		ReceivedAt:  time.Now(),
	})

	require.True(t, res.Success)
	assert.Zero(t, res.TasksCreated)
	require.Len(t, store.emails, 1)
	assert.Equal(t, string(constants.EmailStatusNoData), store.statuses[store.emails[0].ID])
	assert.Empty(t, store.tasks)
	assert.Empty(t, store.alerts)
	assert.Equal(t, 0, nar.calls)
	assert.Equal(t, []string{"msg-2"}, mailc.seenIDs)
}

func TestProcessMessageDuplicateIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.seenMessageIDs["msg-3"] = true
	mailc := &fakeMail{}

	p := newTestProcessor(store, mailc, &fakeTabular{}, &fakeDocument{}, &fakeNarrative{})
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:         "msg-3",
		Subject:    "repetido",
		ReceivedAt: time.Now(),
	})

	assert.True(t, res.Success)
	assert.True(t, res.Duplicate)
	assert.Empty(t, store.emails)
	assert.Empty(t, store.tasks)
	assert.Equal(t, []string{"msg-3"}, mailc.seenIDs)
}

func TestProcessMessagePersistenceFailureRollsBack(t *testing.T) {
	store := newFakeStore()
	store.failTaskInsert = true
	mailc := &fakeMail{}
	tab := &fakeTabular{records: []extract.TaskRecord{{
		CodigoCobertor: strPtr("COB-009"),
		Origen:         constants.OriginTabularAttachment,
	}}}

	p := newTestProcessor(store, mailc, tab, &fakeDocument{}, &fakeNarrative{err: llm.ErrNoData})
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:          "msg-4",
		Subject:     "falla",
		BodyText:    "",
		ReceivedAt:  time.Now(),
		Attachments: []mail.Attachment{{Filename: "datos.xlsx", Data: []byte("x")}},
	})

	require.Error(t, res.Err)
	assert.False(t, res.Success)

	// nothing from the failed unit of work is visible
	assert.Empty(t, store.emails)
	assert.Empty(t, store.tasks)
	assert.Empty(t, store.attachments)
	assert.Empty(t, store.alerts)

	// exactly one standalone error alert survives the rollback
	require.Len(t, store.standaloneAlerts, 1)
	assert.Equal(t, string(constants.AlertTypeProcessingError), store.standaloneAlerts[0].Tipo)
	assert.Equal(t, string(constants.SeverityMedium), store.standaloneAlerts[0].Severidad)

	// a failed message stays unread for the next run
	assert.Empty(t, mailc.seenIDs)
}

func TestProcessMessageNarrativeFallback(t *testing.T) {
	store := newFakeStore()
	mailc := &fakeMail{}
	nar := &fakeNarrative{err: llm.ErrNoData}

	p := newTestProcessor(store, mailc, &fakeTabular{}, &fakeDocument{}, nar)
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:         "msg-5",
		Subject:    "URGENTE revisar cuartel",
		BodyText:   "texto largo sin estructura reconocible para extraer datos",
		ReceivedAt: time.Now(),
	})

	require.True(t, res.Success)
	assert.Equal(t, 1, nar.calls)
	require.Len(t, store.tasks, 1)

	task := store.tasks[0]
	assert.Equal(t, string(constants.OriginFallbackReview), task.Origen)
	assert.True(t, task.Urgente)
	assert.Equal(t, string(constants.PriorityHigh), task.Prioridad)
	assert.Contains(t, *task.Descripcion, "Revisar email")

	require.Len(t, store.alerts, 1)
	assert.Equal(t, string(constants.AlertTypeUrgentTask), store.alerts[0].Tipo)
	assert.Equal(t, string(constants.EmailStatusProcessed), store.statuses[store.emails[0].ID])
}

func TestProcessMessageNarrativeTransportErrorFails(t *testing.T) {
	store := newFakeStore()
	mailc := &fakeMail{}
	nar := &fakeNarrative{err: errors.New("status 429")}

	p := newTestProcessor(store, mailc, &fakeTabular{}, &fakeDocument{}, nar)
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:         "msg-6",
		Subject:    "pedido",
		BodyText:   "texto con suficiente largo para la llamada de extracción",
		ReceivedAt: time.Now(),
	})

	require.Error(t, res.Err)
	assert.Empty(t, store.emails)
	require.Len(t, store.standaloneAlerts, 1)
	assert.Empty(t, mailc.seenIDs)
}

func TestProcessMessageDocumentAttachment(t *testing.T) {
	store := newFakeStore()
	mailc := &fakeMail{}
	doc := &fakeDocument{records: []extract.TaskRecord{{
		FullText:       "Solicito cobertor COB-020 cuartel 9",
		NeedsNarrative: true,
		Origen:         constants.OriginDocumentAttachment,
	}}}
	nar := &fakeNarrative{record: extract.TaskRecord{
		CodigoCobertor: strPtr("COB-020"),
		Cuartel:        strPtr("9"),
		Prioridad:      string(constants.PriorityNormal),
		Origen:         constants.OriginNarrativeText,
	}}

	p := newTestProcessor(store, mailc, &fakeTabular{}, doc, nar)
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:          "msg-7",
		Subject:     "orden adjunta",
		BodyText:    "",
		ReceivedAt:  time.Now(),
		Attachments: []mail.Attachment{{Filename: "orden.pdf", Data: []byte("%PDF")}},
	})

	require.True(t, res.Success)
	require.Len(t, store.tasks, 1)
	assert.Equal(t, "COB-020", *store.tasks[0].CodigoCobertor)
	// document-sourced narrative records carry the document origin
	assert.Equal(t, string(constants.OriginDocumentAttachment), store.tasks[0].Origen)
	assert.Equal(t, 1, nar.calls)
}

func TestProcessMessageUrgentAlertCountsOnlyUrgent(t *testing.T) {
	store := newFakeStore()
	mailc := &fakeMail{}
	tab := &fakeTabular{records: []extract.TaskRecord{
		{
			CodigoCobertor: strPtr("COB-001"),
			Prioridad:      string(constants.PriorityHigh),
			Urgente:        true,
			Origen:         constants.OriginTabularAttachment,
		},
		{
			CodigoCobertor: strPtr("COB-002"),
			Prioridad:      string(constants.PriorityNormal),
			Origen:         constants.OriginTabularAttachment,
		},
	}}

	p := newTestProcessor(store, mailc, tab, &fakeDocument{}, &fakeNarrative{err: llm.ErrNoData})
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:          "msg-10",
		Subject:     "pedido mixto",
		BodyText:    "",
		ReceivedAt:  time.Now(),
		Attachments: []mail.Attachment{{Filename: "mixto.xlsx", Data: []byte("x")}},
	})

	require.True(t, res.Success)
	assert.Equal(t, 2, res.TasksCreated)
	require.Len(t, store.alerts, 1)
	require.NotNil(t, store.alerts[0].Descripcion)
	assert.Equal(t, "1 tarea(s) urgente(s) detectada(s)", *store.alerts[0].Descripcion)
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	assert.Equal(t, "se", truncate("señal", 3))
	assert.Equal(t, "señ", truncate("señal", 4))
	assert.Equal(t, "corto", truncate("corto", 50))

	subject := strings.Repeat("ú", 30)
	cut := truncate(subject, 51)
	assert.True(t, utf8.ValidString(cut))
	assert.LessOrEqual(t, len(cut), 51)
}

func TestProcessMessageUnsupportedAttachment(t *testing.T) {
	store := newFakeStore()
	mailc := &fakeMail{}

	p := newTestProcessor(store, mailc, &fakeTabular{}, &fakeDocument{}, &fakeNarrative{})
	res := p.ProcessMessage(context.Background(), mail.Message{
		ID:          "msg-8",
		Subject:     "foto",
		BodyText:    "",
		ReceivedAt:  time.Now(),
		Attachments: []mail.Attachment{{Filename: "foto.png", Data: []byte("x")}},
	})

	require.True(t, res.Success)
	assert.Zero(t, res.AttachmentsProcessed)
	assert.Empty(t, store.attachments)
	assert.Equal(t, string(constants.EmailStatusNoData), store.statuses[store.emails[0].ID])
}

func TestBatchAggregatesResults(t *testing.T) {
	store := newFakeStore()
	store.seenMessageIDs["dup-1"] = true
	mailc := &fakeMail{unseen: []mail.Message{
		{ID: "new-1", Subject: "a", BodyText: "", ReceivedAt: time.Now()},
		{ID: "dup-1", Subject: "b", BodyText: "", ReceivedAt: time.Now()},
	}}

	p := newTestProcessor(store, mailc, &fakeTabular{}, &fakeDocument{}, &fakeNarrative{err: llm.ErrNoData})
	batch := NewBatch(mailc, p, nil)

	stats, err := batch.ProcessNewMessages(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.EmailsProcessed)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Zero(t, stats.Errors)
}
