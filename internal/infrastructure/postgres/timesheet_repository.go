package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

var _ repository.TimesheetRepository = (*TimesheetRepo)(nil)

// TimesheetRepo implementación del puerto TimesheetRepository sobre PostgreSQL.
// Sin Update: las horas registradas son inmutables.
type TimesheetRepo struct {
	q Querier
}

// NewTimesheetRepository construye el adaptador de persistencia para timesheets.
func NewTimesheetRepository(q Querier) *TimesheetRepo {
	return &TimesheetRepo{q: q}
}

// Create persiste un registro de horas.
func (r *TimesheetRepo) Create(t *entity.Timesheet) error {
	query := `
		INSERT INTO timesheets (id, task_id, user_id, date, hours, billable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.TaskID, t.UserID, t.Date, t.Hours, t.Billable, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert timesheet: %w", err)
	}
	return nil
}

// ListByTask horas de una tarea, orden date DESC.
func (r *TimesheetRepo) ListByTask(taskID string) ([]*entity.Timesheet, error) {
	query := `
		SELECT id, task_id, user_id, date, hours, billable, created_at, updated_at
		FROM timesheets WHERE task_id = $1 ORDER BY date DESC`
	return r.list(query, taskID)
}

// ListByProject todas las horas registradas sobre tareas del proyecto.
func (r *TimesheetRepo) ListByProject(projectID string) ([]*entity.Timesheet, error) {
	query := `
		SELECT ts.id, ts.task_id, ts.user_id, ts.date, ts.hours, ts.billable, ts.created_at, ts.updated_at
		FROM timesheets ts
		JOIN tasks t ON t.id = ts.task_id
		WHERE t.project_id = $1
		ORDER BY ts.date DESC`
	return r.list(query, projectID)
}

func (r *TimesheetRepo) list(query string, arg any) ([]*entity.Timesheet, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []*entity.Timesheet
	for rows.Next() {
		var t entity.Timesheet
		if err := rows.Scan(
			&t.ID, &t.TaskID, &t.UserID, &t.Date, &t.Hours, &t.Billable, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan timesheet: %w", err)
		}
		sheets = append(sheets, &t)
	}
	return sheets, rows.Err()
}
