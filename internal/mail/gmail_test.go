package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b64url(s string) string {
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(s))
}

// gmailFixture serves the handful of endpoints the client touches and
// records what it was asked for.
type gmailFixture struct {
	t *testing.T

	listResponse    string
	messageResponse map[string]string
	attachmentData  map[string]string

	listQuery   string
	modifyCalls []string
	modifyBody  string
	authHeader  string
}

func (f *gmailFixture) handler(w http.ResponseWriter, r *http.Request) {
	f.authHeader = r.Header.Get("Authorization")

	switch {
	case r.URL.Path == "/users/me/messages" && r.Method == http.MethodGet:
		f.listQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, f.listResponse)
	case strings.HasSuffix(r.URL.Path, "/modify") && r.Method == http.MethodPost:
		parts := strings.Split(r.URL.Path, "/")
		f.modifyCalls = append(f.modifyCalls, parts[len(parts)-2])
		body, _ := io.ReadAll(r.Body)
		f.modifyBody = string(body)
		fmt.Fprint(w, `{}`)
	case strings.Contains(r.URL.Path, "/attachments/"):
		parts := strings.Split(r.URL.Path, "/")
		id := parts[len(parts)-1]
		data, ok := f.attachmentData[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"data": data})
	default:
		parts := strings.Split(strings.SplitN(r.URL.Path, "?", 2)[0], "/")
		id := parts[len(parts)-1]
		resp, ok := f.messageResponse[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, resp)
	}
}

func newGmailFixture(t *testing.T) (*gmailFixture, *GmailClient) {
	f := &gmailFixture{
		t:               t,
		messageResponse: make(map[string]string),
		attachmentData:  make(map[string]string),
	}
	srv := httptest.NewServer(http.HandlerFunc(f.handler))
	t.Cleanup(srv.Close)

	client := NewGmailClient(GmailConfig{
		AccessToken: "test-token",
		BaseURL:     srv.URL,
		Label:       "cobertores",
	}, nil)
	return f, client
}

func TestFetchUnseenParsesFullMessage(t *testing.T) {
	f, client := newGmailFixture(t)
	f.listResponse = `{"messages":[{"id":"m1"}]}`
	f.messageResponse["m1"] = fmt.Sprintf(`{
		"id": "m1",
		"threadId": "th1",
		"labelIds": ["UNREAD", "Label_7"],
		"payload": {
			"mimeType": "multipart/mixed",
			"headers": [
				{"name": "From", "value": "Juan Pérez <juan@fundo.cl>"},
				{"name": "Subject", "value": "Pedido cobertores cuartel 4"},
				{"name": "Date", "value": "Mon, 10 Aug 2026 09:30:00 -0400"}
			],
			"parts": [
				{"mimeType": "text/plain", "body": {"data": %q}},
				{"mimeType": "text/html", "body": {"data": %q}},
				{
					"mimeType": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
					"filename": "pedidos.xlsx",
					"body": {"attachmentId": "att-9", "size": 4096}
				}
			]
		}
	}`, b64url("Necesito 8 hileras"), b64url("<p>Necesito 8 hileras</p>"))
	f.attachmentData["att-9"] = b64url("xlsx-bytes")

	msgs, err := client.FetchUnseen(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	msg := msgs[0]
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "th1", msg.ThreadID)
	assert.Equal(t, "juan@fundo.cl", msg.SenderEmail)
	assert.Equal(t, "Juan Pérez", msg.SenderName)
	assert.Equal(t, "Pedido cobertores cuartel 4", msg.Subject)
	assert.Equal(t, "Necesito 8 hileras", msg.BodyText)
	assert.Equal(t, "<p>Necesito 8 hileras</p>", msg.BodyHTML)
	assert.Equal(t, []string{"UNREAD", "Label_7"}, msg.Labels)

	expected := time.Date(2026, 8, 10, 9, 30, 0, 0, time.FixedZone("", -4*3600))
	assert.True(t, msg.ReceivedAt.Equal(expected))

	require.Len(t, msg.Attachments, 1)
	att := msg.Attachments[0]
	assert.Equal(t, "pedidos.xlsx", att.Filename)
	assert.Equal(t, 4096, att.Size)
	assert.Equal(t, []byte("xlsx-bytes"), att.Data)
	assert.True(t, msg.HasAttachments)
	assert.Equal(t, 1, msg.AttachmentCount)

	assert.Equal(t, "label:cobertores is:unread", f.listQuery)
	assert.Equal(t, "Bearer test-token", f.authHeader)
}

func TestFetchUnseenInlineAttachmentData(t *testing.T) {
	f, client := newGmailFixture(t)
	f.listResponse = `{"messages":[{"id":"m2"}]}`
	f.messageResponse["m2"] = fmt.Sprintf(`{
		"id": "m2",
		"threadId": "th2",
		"payload": {
			"mimeType": "multipart/mixed",
			"headers": [{"name": "From", "value": "ana@fundo.cl"}],
			"parts": [
				{"mimeType": "text/csv", "filename": "datos.csv", "body": {"data": %q, "size": 11}}
			]
		}
	}`, b64url("codigo,fila"))

	msgs, err := client.FetchUnseen(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].Attachments, 1)
	assert.Equal(t, []byte("codigo,fila"), msgs[0].Attachments[0].Data)
}

func TestFetchUnseenEmpty(t *testing.T) {
	f, client := newGmailFixture(t)
	f.listResponse = `{}`

	msgs, err := client.FetchUnseen(context.Background(), 50)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestFetchUnseenSkipsBrokenMessage(t *testing.T) {
	f, client := newGmailFixture(t)
	f.listResponse = `{"messages":[{"id":"bad"},{"id":"good"}]}`
	f.messageResponse["good"] = `{
		"id": "good",
		"threadId": "th3",
		"payload": {
			"mimeType": "text/plain",
			"headers": [{"name": "From", "value": "x@y.cl"}],
			"body": {"data": "` + b64url("hola") + `"}
		}
	}`

	msgs, err := client.FetchUnseen(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "good", msgs[0].ID)
	assert.Equal(t, "hola", msgs[0].BodyText)
}

func TestFetchSinceQuery(t *testing.T) {
	f, client := newGmailFixture(t)
	f.listResponse = `{}`

	since := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	_, err := client.FetchSince(context.Background(), since, 100)
	require.NoError(t, err)
	assert.Equal(t, "label:cobertores after:2026/02/15", f.listQuery)
}

func TestMarkSeenRemovesUnreadLabel(t *testing.T) {
	f, client := newGmailFixture(t)

	err := client.MarkSeen(context.Background(), "m9")
	require.NoError(t, err)
	assert.Equal(t, []string{"m9"}, f.modifyCalls)
	assert.JSONEq(t, `{"removeLabelIds":["UNREAD"]}`, f.modifyBody)
}

func TestMarkSeenSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewGmailClient(GmailConfig{AccessToken: "expired", BaseURL: srv.URL, Label: "cobertores"}, nil)
	err := client.MarkSeen(context.Background(), "m1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestSenderParsing(t *testing.T) {
	assert.Equal(t, "juan@fundo.cl", senderAddress("Juan <juan@fundo.cl>"))
	assert.Equal(t, "Juan", senderName("Juan <juan@fundo.cl>"))
	assert.Equal(t, "plain@fundo.cl", senderAddress("plain@fundo.cl"))
	assert.Equal(t, "plain@fundo.cl", senderName("plain@fundo.cl"))
	assert.Equal(t, "Mesa Central", senderName(`"Mesa Central" <mesa@fundo.cl>`))
}
