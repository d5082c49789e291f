package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Attachment represents processed attachment metadata for data transfer
// between layers. ExtractedJSON is an audit snapshot of what the extractor
// produced, kept even when zero records came out.
type Attachment struct {
	ID             uuid.UUID       `json:"id"`
	EmailID        uuid.UUID       `json:"email_id"`
	Filename       string          `json:"filename"`
	MimeType       *string         `json:"mime_type,omitempty"`
	SizeBytes      int             `json:"size_bytes"`
	Format         *string         `json:"format,omitempty"`
	ExtractedCount int             `json:"extracted_count"`
	ExtractedJSON  json.RawMessage `json:"extracted_json,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
