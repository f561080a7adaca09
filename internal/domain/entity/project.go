package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto. Las transiciones son actualizaciones libres de campo,
// no una máquina de estados vigilada.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)

// Prioridades comunes a Project y Task.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidProjectStatus indica si el estado de proyecto es conocido.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// ValidPriority indica si la prioridad es conocida.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Project representa un proyecto con manager responsable y presupuesto.
type Project struct {
	ID          string
	Name        string
	Description string
	ManagerID   string
	Deadline    *time.Time
	Priority    string
	Budget      decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectTag etiqueta de un proyecto. Única por (project_id, tag); el set
// se reemplaza completo en cada actualización del proyecto.
type ProjectTag struct {
	ID        string
	ProjectID string
	Tag       string
	CreatedAt time.Time
}
