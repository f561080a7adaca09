package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskResponse salida de una tarea con asignado resuelto.
type TaskResponse struct {
	ID             string           `json:"id"`
	ProjectID      string           `json:"project_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	AssigneeID     string           `json:"assignee_id,omitempty"`
	Assignee       *UserResponse    `json:"assignee,omitempty"`
	Status         string           `json:"status"`
	Priority       string           `json:"priority"`
	Deadline       *time.Time       `json:"deadline,omitempty"`
	TimeEstimate   decimal.Decimal  `json:"time_estimate"`
	RequiredSkills string           `json:"required_skills,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// CreateTaskRequest alta de tarea. Status default "new", priority "medium".
type CreateTaskRequest struct {
	ProjectID      string           `json:"project_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	AssigneeID     string           `json:"assignee_id"`
	Status         string           `json:"status"`
	Priority       string           `json:"priority"`
	Deadline       *time.Time       `json:"deadline"`
	TimeEstimate   *decimal.Decimal `json:"time_estimate"`
	RequiredSkills string           `json:"required_skills"`
}

// UpdateTaskRequest actualización completa (admin / manager del proyecto).
type UpdateTaskRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	AssigneeID     *string          `json:"assignee_id"`
	Status         *string          `json:"status"`
	Priority       *string          `json:"priority"`
	Deadline       *time.Time       `json:"deadline"`
	TimeEstimate   *decimal.Decimal `json:"time_estimate"`
	RequiredSkills *string          `json:"required_skills"`
}

// UpdateTaskStatusRequest actualización restringida del asignado (team_member):
// el contrato de campos permitidos es explícito en el tipo, no un filtrado ad hoc.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskListFilters filtros de query para GET /api/tasks.
type TaskListFilters struct {
	ProjectID  string `query:"project_id"`
	Status     string `query:"status"`
	AssigneeID string `query:"assignee_id"`
}

// TimesheetResponse salida de un registro de horas.
type TimesheetResponse struct {
	ID        string          `json:"id"`
	TaskID    string          `json:"task_id"`
	UserID    string          `json:"user_id"`
	User      *UserResponse   `json:"user,omitempty"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Hours     decimal.Decimal `json:"hours"`
	Billable  bool            `json:"billable"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateTimesheetRequest alta de horas sobre una tarea. UserID vacío = el actor.
type CreateTimesheetRequest struct {
	UserID   string          `json:"user_id"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Hours    decimal.Decimal `json:"hours"`
	Billable *bool           `json:"billable"`
}
