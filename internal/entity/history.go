package entity

import "time"

// SenderProfile aggregates per-sender behavior learned from historical mail.
type SenderProfile struct {
	Email          string    `json:"email"`
	Domain         string    `json:"domain"`
	Category       string    `json:"category"`
	TypicalUrgency string    `json:"typical_urgency"`
	TypicalIntent  string    `json:"typical_intent"`
	EmailsAnalyzed int       `json:"emails_analyzed"`
	Confidence     float64   `json:"confidence"`
	LastSeen       time.Time `json:"last_seen"`
}

// ThreadPattern summarizes one historical conversation thread.
type ThreadPattern struct {
	ThreadID             string `json:"thread_id"`
	TotalMessages        int    `json:"total_messages"`
	InternalParticipants int    `json:"internal_participants"`
	ExternalParticipants int    `json:"external_participants"`
	HasForward           bool   `json:"has_forward"`
	HasAttachments       bool   `json:"has_attachments"`
	Complexity           string `json:"complexity"`
}

// LearnedRule is a heuristic generated from sender statistics: when a sender's
// urgency is consistent enough, new mail from them gets that urgency up front.
type LearnedRule struct {
	RuleName    string  `json:"rule_name"`
	SenderEmail string  `json:"sender_email"`
	Urgency     string  `json:"urgency"`
	Confidence  float64 `json:"confidence"`
}
