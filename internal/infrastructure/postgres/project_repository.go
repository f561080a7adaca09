package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación del puerto ProjectRepository sobre PostgreSQL (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador de persistencia para proyectos.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, name, description, manager_id, deadline, priority, budget, status, created_at, updated_at`

// Create persiste un nuevo proyecto.
func (r *ProjectRepo) Create(p *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.ManagerID, p.Deadline,
		p.Priority, p.Budget, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.ManagerID, &p.Deadline,
		&p.Priority, &p.Budget, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// List proyectos según el filtro, orden created_at DESC. AssigneeID recorta a
// proyectos con al menos una tarea asignada a ese usuario.
func (r *ProjectRepo) List(f repository.ProjectFilter) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var where []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.Status != "" {
		where = append(where, "status = "+next(f.Status))
	}
	if f.ManagerID != "" {
		where = append(where, "manager_id = "+next(f.ManagerID))
	}
	if f.AssigneeID != "" {
		where = append(where, "id IN (SELECT project_id FROM tasks WHERE assignee_id = "+next(f.AssigneeID)+")")
	}
	if f.Search != "" {
		p := next("%" + f.Search + "%")
		where = append(where, "(name ILIKE "+p+" OR description ILIKE "+p+")")
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.ManagerID, &p.Deadline,
			&p.Priority, &p.Budget, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// Update actualiza un proyecto existente.
func (r *ProjectRepo) Update(p *entity.Project) error {
	query := `
		UPDATE projects SET name = $2, description = $3, manager_id = $4, deadline = $5,
			priority = $6, budget = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.ManagerID, p.Deadline,
		p.Priority, p.Budget, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete elimina un proyecto. Tareas y etiquetas caen en cascada; las tablas
// financieras tienen RESTRICT, así que un proyecto aún referenciado devuelve
// domain.ErrConflict.
func (r *ProjectRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete project: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.ProjectTagRepository = (*ProjectTagRepo)(nil)

// ProjectTagRepo implementación del puerto ProjectTagRepository sobre PostgreSQL.
type ProjectTagRepo struct {
	q Querier
}

// NewProjectTagRepository construye el adaptador de etiquetas de proyecto.
func NewProjectTagRepository(q Querier) *ProjectTagRepo {
	return &ProjectTagRepo{q: q}
}

// Create inserta una etiqueta. Única por (project_id, tag).
func (r *ProjectTagRepo) Create(t *entity.ProjectTag) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO project_tags (id, project_id, tag, created_at) VALUES ($1, $2, $3, $4)`,
		t.ID, t.ProjectID, t.Tag, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project tag: %w", err)
	}
	return nil
}

// ListByProject etiquetas de un proyecto, orden alfabético.
func (r *ProjectTagRepo) ListByProject(projectID string) ([]*entity.ProjectTag, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, project_id, tag, created_at FROM project_tags WHERE project_id = $1 ORDER BY tag`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list project tags: %w", err)
	}
	defer rows.Close()

	var tags []*entity.ProjectTag
	for rows.Next() {
		var t entity.ProjectTag
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Tag, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project tag: %w", err)
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

// DeleteByProject borra todas las etiquetas del proyecto (reemplazo completo).
func (r *ProjectTagRepo) DeleteByProject(projectID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM project_tags WHERE project_id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("delete project tags: %w", err)
	}
	return nil
}
