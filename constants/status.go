package constants

// EmailStatus is the canonical lifecycle status for rows in email_messages.
type EmailStatus string

// Stable values (store these exact strings in DB).
const (
	EmailStatusPending    EmailStatus = "pending"    // captured, not yet picked up
	EmailStatusProcessing EmailStatus = "processing" // pipeline is working on it
	EmailStatusProcessed  EmailStatus = "processed"  // at least one task created
	EmailStatusNoData     EmailStatus = "no_data"    // completed with zero tasks
	EmailStatusError      EmailStatus = "error"      // unit of work rolled back
)

// TaskStatus is the lifecycle of a task, independent of the owning email.
// Only the dashboard mutates this after creation.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// TaskStatuses holds the allowed values for Task.estado.
var TaskStatuses = []string{
	string(TaskStatusPending),
	string(TaskStatusInProgress),
	string(TaskStatusDone),
	string(TaskStatusCancelled),
}

// IsValidTaskStatus reports whether s is an allowed Task.estado value.
func IsValidTaskStatus(s string) bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// AlertType classifies alert rows.
type AlertType string

const (
	AlertTypeUrgentTask      AlertType = "tarea_urgente"
	AlertTypeProcessingError AlertType = "error_procesamiento"
	AlertTypeInfo            AlertType = "informativa"
)

// AlertSeverity grades an alert for the dashboard.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "baja"
	SeverityMedium   AlertSeverity = "media"
	SeverityHigh     AlertSeverity = "alta"
	SeverityCritical AlertSeverity = "critica"
)
