package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectResponse salida de un proyecto con tags y manager resuelto.
type ProjectResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	ManagerID   string           `json:"manager_id"`
	Manager     *UserResponse    `json:"manager,omitempty"`
	Deadline    *time.Time       `json:"deadline,omitempty"`
	Priority    string           `json:"priority"`
	Budget      decimal.Decimal  `json:"budget"`
	Status      string           `json:"status"`
	Tags        []string         `json:"tags"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CreateProjectRequest alta de proyecto. ManagerID vacío = el actor.
type CreateProjectRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ManagerID   string           `json:"manager_id"`
	Deadline    *time.Time       `json:"deadline"`
	Priority    string           `json:"priority"`
	Budget      *decimal.Decimal `json:"budget"`
	Status      string           `json:"status"`
	Tags        []string         `json:"tags"`
}

// UpdateProjectRequest actualización parcial. Punteros: nil = sin cambio.
// Tags nil = conservar; no nil = reemplazo completo del set.
type UpdateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	ManagerID   *string          `json:"manager_id"` // solo admin
	Deadline    *time.Time       `json:"deadline"`
	Priority    *string          `json:"priority"`
	Budget      *decimal.Decimal `json:"budget"`
	Status      *string          `json:"status"`
	Tags        []string         `json:"tags"`
}

// ProjectListFilters filtros de query para GET /api/projects.
type ProjectListFilters struct {
	Status    string `query:"status"`
	ManagerID string `query:"manager_id"`
	Search    string `query:"search"`
}
