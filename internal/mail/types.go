package mail

import "time"

// Message is one raw email as handed to the pipeline: headers, both body
// renderings and the attachment blobs already downloaded.
type Message struct {
	ID              string // provider message id, the idempotency key
	ThreadID        string
	SenderEmail     string
	SenderName      string
	Subject         string
	BodyText        string
	BodyHTML        string
	ReceivedAt      time.Time
	Labels          []string
	Attachments     []Attachment
	HasAttachments  bool
	AttachmentCount int
}

// Attachment carries one downloaded attachment payload.
type Attachment struct {
	Filename string
	MimeType string
	Size     int
	Data     []byte
}
