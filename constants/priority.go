package constants

import "strings"

// Priority is the three-bucket priority for tasks. Values are stored as-is.
type Priority string

const (
	PriorityLow    Priority = "baja"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "alta"
)

// Keyword buckets shared by every extractor. Substring match against a
// lowercased value; high wins over low.
var (
	HighPriorityWords = []string{"alta", "high", "urgent", "urgente", "critica", "crítica", "critical", "critico", "crítico", "prioritario", "inmediato"}
	LowPriorityWords  = []string{"baja", "low", "no urgente"}
)

// NormalizePriority maps a raw priority label to one of the three buckets.
// High-keywords take precedence over low-keywords; everything else is normal.
func NormalizePriority(raw string) Priority {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return PriorityNormal
	}
	if ContainsPriorityWord(v, HighPriorityWords) {
		return PriorityHigh
	}
	if ContainsPriorityWord(v, LowPriorityWords) {
		return PriorityLow
	}
	return PriorityNormal
}

// ContainsPriorityWord reports whether any keyword occurs in the lowercased text.
func ContainsPriorityWord(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// SubjectIsUrgent is the fallback-task rule: urgency keywords in the subject
// force high priority even when nothing else could be extracted.
func SubjectIsUrgent(subject string) bool {
	return ContainsPriorityWord(strings.ToLower(subject), HighPriorityWords)
}
