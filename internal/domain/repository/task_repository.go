package repository

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// TaskFilter filtros de listado de tareas.
type TaskFilter struct {
	ProjectID  string
	Status     string
	AssigneeID string
	ManagerID  string // tareas de proyectos gestionados por este usuario
}

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(t *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	// List orden created_at DESC.
	List(f TaskFilter) ([]*entity.Task, error)
	Update(t *entity.Task) error
	Delete(id string) error
	// HasAssigned indica si el usuario tiene alguna tarea asignada en el proyecto.
	HasAssigned(projectID, userID string) (bool, error)
}

// TimesheetRepository define el puerto de persistencia para Timesheet.
// No hay Update: fecha y horas son inmutables tras la creación.
type TimesheetRepository interface {
	Create(t *entity.Timesheet) error
	// ListByTask orden date DESC.
	ListByTask(taskID string) ([]*entity.Timesheet, error)
	// ListByProject todas las horas de tareas del proyecto (para analítica).
	ListByProject(projectID string) ([]*entity.Timesheet, error)
}
