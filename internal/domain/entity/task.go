package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una tarea.
const (
	TaskStatusNew        = "new"
	TaskStatusInProgress = "in_progress"
	TaskStatusBlocked    = "blocked"
	TaskStatusDone       = "done"
)

// ValidTaskStatus indica si el estado de tarea es conocido.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusBlocked, TaskStatusDone:
		return true
	}
	return false
}

// Task representa una tarea de un proyecto, opcionalmente asignada a un usuario.
// RequiredSkills lista nombres de habilidades separadas por coma (para sugerencias).
type Task struct {
	ID             string
	ProjectID      string
	Title          string
	Description    string
	AssigneeID     string // vacío = sin asignar
	Status         string
	Priority       string
	Deadline       *time.Time
	TimeEstimate   decimal.Decimal // horas estimadas
	RequiredSkills string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
