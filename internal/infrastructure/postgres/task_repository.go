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

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, project_id, title, description, assignee_id, status, priority, deadline, time_estimate, required_skills, created_at, updated_at`

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(t *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.ProjectID, t.Title, t.Description, nullIfEmpty(t.AssigneeID),
		t.Status, t.Priority, t.Deadline, t.TimeEstimate, nullIfEmpty(t.RequiredSkills),
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List tareas según el filtro, orden created_at DESC. ManagerID recorta a
// tareas de proyectos gestionados por ese usuario.
func (r *TaskRepo) List(f repository.TaskFilter) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var where []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.ProjectID != "" {
		where = append(where, "project_id = "+next(f.ProjectID))
	}
	if f.Status != "" {
		where = append(where, "status = "+next(f.Status))
	}
	if f.AssigneeID != "" {
		where = append(where, "assignee_id = "+next(f.AssigneeID))
	}
	if f.ManagerID != "" {
		where = append(where, "project_id IN (SELECT id FROM projects WHERE manager_id = "+next(f.ManagerID)+")")
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
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update actualiza una tarea existente.
func (r *TaskRepo) Update(t *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, assignee_id = $4, status = $5,
			priority = $6, deadline = $7, time_estimate = $8, required_skills = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Title, t.Description, nullIfEmpty(t.AssigneeID), t.Status,
		t.Priority, t.Deadline, t.TimeEstimate, nullIfEmpty(t.RequiredSkills), t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarea (sus timesheets caen en cascada).
func (r *TaskRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HasAssigned indica si el usuario tiene alguna tarea asignada en el proyecto.
func (r *TaskRepo) HasAssigned(projectID, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE project_id = $1 AND assignee_id = $2)`,
		projectID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has assigned task: %w", err)
	}
	return exists, nil
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	var assignee, skills *string
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &assignee, &t.Status,
		&t.Priority, &t.Deadline, &t.TimeEstimate, &skills, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if assignee != nil {
		t.AssigneeID = *assignee
	}
	if skills != nil {
		t.RequiredSkills = *skills
	}
	return &t, nil
}
