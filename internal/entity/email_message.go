package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailMessage represents a captured email for data transfer between layers.
type EmailMessage struct {
	ID              uuid.UUID  `json:"id"`
	MessageID       string     `json:"message_id"`
	ThreadID        *string    `json:"thread_id,omitempty"`
	SenderEmail     string     `json:"sender_email"`
	SenderName      *string    `json:"sender_name,omitempty"`
	Subject         string     `json:"subject"`
	BodyText        string     `json:"body_text"`
	BodyHTML        string     `json:"body_html"`
	ReceivedAt      time.Time  `json:"received_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	HasAttachments  bool       `json:"has_attachments"`
	AttachmentCount int        `json:"attachment_count"`
	Status          string     `json:"status"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
}
