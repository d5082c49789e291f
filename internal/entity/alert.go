package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert represents a dashboard notification. Task/email references are
// soft links: the alert survives deletion of either via null-out.
type Alert struct {
	ID          uuid.UUID  `json:"id"`
	Tipo        string     `json:"tipo"`
	Titulo      string     `json:"titulo"`
	Descripcion *string    `json:"descripcion,omitempty"`
	TaskID      *uuid.UUID `json:"task_id,omitempty"`
	EmailID     *uuid.UUID `json:"email_id,omitempty"`
	Severidad   string     `json:"severidad"`
	Leida       bool       `json:"leida"`
	CreatedAt   time.Time  `json:"created_at"`
}
