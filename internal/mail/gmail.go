package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
	"time"
)

// GmailConfig configures the Gmail REST client. Auth is a bearer access
// token supplied by the operator; token refresh happens outside this
// process.
type GmailConfig struct {
	AccessToken string
	BaseURL     string        // default https://gmail.googleapis.com/gmail/v1
	Label       string        // messages outside this label are invisible to us
	Timeout     time.Duration // http client timeout
}

// GmailClient implements Client over the Gmail REST API.
type GmailClient struct {
	cfg        GmailConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewGmailClient(cfg GmailConfig, logger *slog.Logger) *GmailClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://gmail.googleapis.com/gmail/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GmailClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

func (c *GmailClient) FetchUnseen(ctx context.Context, max int) ([]Message, error) {
	query := fmt.Sprintf("label:%s is:unread", c.cfg.Label)
	return c.fetchByQuery(ctx, query, max)
}

func (c *GmailClient) FetchSince(ctx context.Context, since time.Time, max int) ([]Message, error) {
	query := fmt.Sprintf("label:%s after:%s", c.cfg.Label, since.Format("2006/01/02"))
	return c.fetchByQuery(ctx, query, max)
}

func (c *GmailClient) MarkSeen(ctx context.Context, messageID string) error {
	body := map[string]any{"removeLabelIds": []string{"UNREAD"}}
	path := fmt.Sprintf("/users/me/messages/%s/modify", url.PathEscape(messageID))
	if _, err := c.do(ctx, http.MethodPost, path, body); err != nil {
		return fmt.Errorf("mark seen %s: %w", messageID, err)
	}
	return nil
}

func (c *GmailClient) fetchByQuery(ctx context.Context, query string, max int) ([]Message, error) {
	start := time.Now()

	path := fmt.Sprintf("/users/me/messages?q=%s&maxResults=%d", url.QueryEscape(query), max)
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	var list struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode message list: %w", err)
	}
	if len(list.Messages) == 0 {
		c.log.Info("mail.fetch.empty", "query", query)
		return nil, nil
	}

	msgs := make([]Message, 0, len(list.Messages))
	for _, m := range list.Messages {
		msg, err := c.fetchMessage(ctx, m.ID)
		if err != nil {
			// one broken message does not block the batch
			c.log.Error("mail.fetch.message_failed", "message_id", m.ID, "error", err)
			continue
		}
		msgs = append(msgs, msg)
	}

	c.log.Info("mail.fetch.ok",
		"query", query,
		"listed", len(list.Messages),
		"fetched", len(msgs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return msgs, nil
}

// gmailPart mirrors the recursive MIME payload shape in the API response.
type gmailPart struct {
	MimeType string `json:"mimeType"`
	Filename string `json:"filename"`
	Body     struct {
		AttachmentID string `json:"attachmentId"`
		Size         int    `json:"size"`
		Data         string `json:"data"`
	} `json:"body"`
	Parts []gmailPart `json:"parts"`
}

func (c *GmailClient) fetchMessage(ctx context.Context, id string) (Message, error) {
	path := fmt.Sprintf("/users/me/messages/%s?format=full", url.PathEscape(id))
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return Message{}, err
	}

	var full struct {
		ID       string   `json:"id"`
		ThreadID string   `json:"threadId"`
		LabelIDs []string `json:"labelIds"`
		Payload  struct {
			gmailPart
			Headers []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"headers"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(raw, &full); err != nil {
		return Message{}, fmt.Errorf("decode message %s: %w", id, err)
	}

	headers := make(map[string]string, len(full.Payload.Headers))
	for _, h := range full.Payload.Headers {
		headers[h.Name] = h.Value
	}

	received := time.Now()
	if t, err := mail.ParseDate(headers["Date"]); err == nil {
		received = t
	}

	from := headers["From"]
	msg := Message{
		ID:          full.ID,
		ThreadID:    full.ThreadID,
		SenderEmail: senderAddress(from),
		SenderName:  senderName(from),
		Subject:     headers["Subject"],
		BodyText:    extractBody(full.Payload.gmailPart, "text/plain"),
		BodyHTML:    extractBody(full.Payload.gmailPart, "text/html"),
		ReceivedAt:  received,
		Labels:      full.LabelIDs,
	}

	for _, part := range flattenParts(full.Payload.gmailPart) {
		if part.Filename == "" {
			continue
		}
		att := Attachment{
			Filename: part.Filename,
			MimeType: part.MimeType,
			Size:     part.Body.Size,
		}
		if part.Body.AttachmentID != "" {
			data, err := c.downloadAttachment(ctx, full.ID, part.Body.AttachmentID)
			if err != nil {
				c.log.Error("mail.attachment.download_failed",
					"message_id", full.ID, "filename", part.Filename, "error", err)
				continue
			}
			att.Data = data
		} else if part.Body.Data != "" {
			data, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(part.Body.Data)
			if err != nil {
				c.log.Error("mail.attachment.decode_failed",
					"message_id", full.ID, "filename", part.Filename, "error", err)
				continue
			}
			att.Data = data
		}
		msg.Attachments = append(msg.Attachments, att)
	}
	msg.HasAttachments = len(msg.Attachments) > 0
	msg.AttachmentCount = len(msg.Attachments)

	return msg, nil
}

func (c *GmailClient) downloadAttachment(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	path := fmt.Sprintf("/users/me/messages/%s/attachments/%s",
		url.PathEscape(messageID), url.PathEscape(attachmentID))
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var att struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal(raw, &att); err != nil {
		return nil, fmt.Errorf("decode attachment: %w", err)
	}
	return base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(att.Data)
}

func (c *GmailClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gmail http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("gmail response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read gmail response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gmail status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

// extractBody walks the MIME tree for the first part of the wanted type.
func extractBody(p gmailPart, mimeType string) string {
	if p.MimeType == mimeType && p.Body.Data != "" {
		data, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(p.Body.Data)
		if err != nil {
			return ""
		}
		return string(data)
	}
	for _, part := range p.Parts {
		if s := extractBody(part, mimeType); s != "" {
			return s
		}
	}
	return ""
}

func flattenParts(p gmailPart) []gmailPart {
	out := []gmailPart{p}
	for _, part := range p.Parts {
		out = append(out, flattenParts(part)...)
	}
	return out
}

// senderName pulls the display name out of a From header, stripping quotes.
func senderName(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil && addr.Name != "" {
		return addr.Name
	}
	if i := strings.Index(from, "<"); i > 0 {
		return strings.Trim(strings.TrimSpace(from[:i]), `"'`)
	}
	return from
}

func senderAddress(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil {
		return addr.Address
	}
	return from
}
