package repository

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// ProjectFilter filtros de listado de proyectos. Los campos de recorte por rol
// (ManagerID, AssigneeID) los fija el caso de uso a partir del policy.Scope.
type ProjectFilter struct {
	Status     string
	ManagerID  string
	AssigneeID string // proyectos con al menos una tarea asignada a este usuario
	Search     string // substring sobre name y description
}

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(p *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	// List orden created_at DESC.
	List(f ProjectFilter) ([]*entity.Project, error)
	Update(p *entity.Project) error
	// Delete devuelve domain.ErrConflict si el proyecto sigue referenciado por
	// órdenes, facturas o gastos (FK RESTRICT). Tareas y tags caen en cascada.
	Delete(id string) error
}

// ProjectTagRepository define el puerto para las etiquetas de proyecto.
type ProjectTagRepository interface {
	Create(t *entity.ProjectTag) error
	ListByProject(projectID string) ([]*entity.ProjectTag, error)
	DeleteByProject(projectID string) error
}
