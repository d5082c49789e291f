package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task represents one extracted work order for data transfer between layers.
type Task struct {
	ID              uuid.UUID  `json:"id"`
	EmailID         uuid.UUID  `json:"email_id"`
	CodigoCobertor  *string    `json:"codigo_cobertor,omitempty"`
	Cuartel         *string    `json:"cuartel,omitempty"`
	Hileras         *int       `json:"hileras,omitempty"`
	LargoMetros     *float64   `json:"largo_metros,omitempty"`
	Prioridad       string     `json:"prioridad"`
	Estado          string     `json:"estado"`
	Descripcion     *string    `json:"descripcion,omitempty"`
	Notas           *string    `json:"notas,omitempty"`
	Origen          string     `json:"origen"`
	Urgente         bool       `json:"urgente"`
	FechaSolicitud  time.Time  `json:"fecha_solicitud"`
	FechaCompletada *time.Time `json:"fecha_completada,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
