package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/application/usecase"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

var (
	actorAdmin   = policy.Actor{ID: "u-admin", Role: entity.RoleAdmin}
	actorManager = policy.Actor{ID: "u-pm", Role: entity.RoleProjectManager}
	actorMember  = policy.Actor{ID: "u-tm", Role: entity.RoleTeamMember}
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTaskRepo struct{ tasks map[string]*entity.Task }

func newFakeTaskRepo(tasks ...*entity.Task) *fakeTaskRepo {
	r := &fakeTaskRepo{tasks: map[string]*entity.Task{}}
	for _, t := range tasks {
		cp := *t
		r.tasks[t.ID] = &cp
	}
	return r
}

func (r *fakeTaskRepo) Create(t *entity.Task) error { cp := *t; r.tasks[t.ID] = &cp; return nil }
func (r *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	if t, ok := r.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeTaskRepo) List(f repository.TaskFilter) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if f.ProjectID != "" && t.ProjectID != f.ProjectID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.AssigneeID != "" && t.AssigneeID != f.AssigneeID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
func (r *fakeTaskRepo) Update(t *entity.Task) error { cp := *t; r.tasks[t.ID] = &cp; return nil }
func (r *fakeTaskRepo) Delete(id string) error      { delete(r.tasks, id); return nil }
func (r *fakeTaskRepo) HasAssigned(projectID, userID string) (bool, error) {
	for _, t := range r.tasks {
		if t.ProjectID == projectID && t.AssigneeID == userID {
			return true, nil
		}
	}
	return false, nil
}

type fakeProjectRepo struct{ projects map[string]*entity.Project }

func newFakeProjectRepo(projects ...*entity.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{projects: map[string]*entity.Project{}}
	for _, p := range projects {
		r.projects[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) Create(p *entity.Project) error             { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) { return r.projects[id], nil }
func (r *fakeProjectRepo) List(repository.ProjectFilter) ([]*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectRepo) Update(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectRepo) Delete(id string) error         { delete(r.projects, id); return nil }

type fakeTimesheetRepo struct{ entries []*entity.Timesheet }

func (r *fakeTimesheetRepo) Create(t *entity.Timesheet) error {
	cp := *t
	r.entries = append(r.entries, &cp)
	return nil
}
func (r *fakeTimesheetRepo) ListByTask(taskID string) ([]*entity.Timesheet, error) {
	var out []*entity.Timesheet
	for _, ts := range r.entries {
		if ts.TaskID == taskID {
			out = append(out, ts)
		}
	}
	return out, nil
}
func (r *fakeTimesheetRepo) ListByProject(string) ([]*entity.Timesheet, error) {
	return r.entries, nil
}

type fakeUserRepo struct{ users map[string]*entity.User }

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List(string) ([]*entity.User, error)     { return nil, nil }
func (r *fakeUserRepo) Delete(id string) error                  { delete(r.users, id); return nil }

func newTaskFixture() (*usecase.TaskUseCase, *fakeTaskRepo) {
	projects := newFakeProjectRepo(
		&entity.Project{ID: "p1", Name: "Plataforma", ManagerID: "u-pm"},
		&entity.Project{ID: "p2", Name: "Migración", ManagerID: "otro-pm"},
	)
	users := newFakeUserRepo(
		&entity.User{ID: "u-tm", FirstName: "Carlos", Role: entity.RoleTeamMember},
		&entity.User{ID: "u-pm", FirstName: "Laura", Role: entity.RoleProjectManager},
	)
	tasks := newFakeTaskRepo(&entity.Task{
		ID: "t1", ProjectID: "p1", Title: "Diseñar esquema",
		AssigneeID: "u-tm", Status: entity.TaskStatusNew, Priority: entity.PriorityMedium,
	})
	uc := usecase.NewTaskUseCase(tasks, projects, &fakeTimesheetRepo{}, users)
	return uc, tasks
}

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskCreate_Defaults(t *testing.T) {
	uc, _ := newTaskFixture()

	out, err := uc.Create(actorManager, dto.CreateTaskRequest{
		ProjectID: "p1", Title: "Nueva tarea",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusNew, out.Status)
	assert.Equal(t, entity.PriorityMedium, out.Priority)
}

func TestTaskCreate_ManagerSoloEnSusProyectos(t *testing.T) {
	uc, _ := newTaskFixture()

	_, err := uc.Create(actorManager, dto.CreateTaskRequest{ProjectID: "p2", Title: "Ajena"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(actorMember, dto.CreateTaskRequest{ProjectID: "p1", Title: "Prohibida"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "team_member no crea tareas")
}

func TestTaskCreate_AsignadoInexistente(t *testing.T) {
	uc, _ := newTaskFixture()

	_, err := uc.Create(actorAdmin, dto.CreateTaskRequest{
		ProjectID: "p1", Title: "Sin dueño", AssigneeID: "fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskUpdateStatus_AsignadoMueveSuTarea(t *testing.T) {
	uc, _ := newTaskFixture()

	out, err := uc.UpdateStatus(actorMember, "t1", dto.UpdateTaskStatusRequest{
		Status: entity.TaskStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, out.Status)
}

func TestTaskUpdateStatus_NoAsignadoRecibe403(t *testing.T) {
	uc, _ := newTaskFixture()

	otro := policy.Actor{ID: "otro-tm", Role: entity.RoleTeamMember}
	_, err := uc.UpdateStatus(otro, "t1", dto.UpdateTaskStatusRequest{
		Status: entity.TaskStatusDone,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTaskUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _ := newTaskFixture()

	_, err := uc.UpdateStatus(actorMember, "t1", dto.UpdateTaskStatusRequest{
		Status: "archivada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskUpdate_ManagerEdicionCompleta(t *testing.T) {
	uc, _ := newTaskFixture()

	out, err := uc.Update(actorManager, "t1", dto.UpdateTaskRequest{
		Title:    str("Diseñar esquema v2"),
		Priority: str(entity.PriorityHigh),
	})
	require.NoError(t, err)
	assert.Equal(t, "Diseñar esquema v2", out.Title)
	assert.Equal(t, entity.PriorityHigh, out.Priority)
}

func TestTaskUpdate_ManagerAjenoRecibe403(t *testing.T) {
	uc, _ := newTaskFixture()

	otro := policy.Actor{ID: "otro-pm", Role: entity.RoleProjectManager}
	_, err := uc.Update(otro, "t1", dto.UpdateTaskRequest{Title: str("Intruso")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Timesheets
// ──────────────────────────────────────────────────────────────────────────────

func TestAddTimesheet_RegistraHoras(t *testing.T) {
	uc, _ := newTaskFixture()

	out, err := uc.AddTimesheet(actorMember, "t1", dto.CreateTimesheetRequest{
		Date:  "2026-08-20",
		Hours: decimal.NewFromInt(6),
	})
	require.NoError(t, err)
	assert.Equal(t, "u-tm", out.UserID, "user_id vacío = el actor")
	assert.Equal(t, "2026-08-20", out.Date)
	assert.True(t, out.Billable, "billable default true")
}

func TestAddTimesheet_HorasFueraDeRango(t *testing.T) {
	uc, _ := newTaskFixture()

	_, err := uc.AddTimesheet(actorMember, "t1", dto.CreateTimesheetRequest{
		Date: "2026-08-20", Hours: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddTimesheet(actorMember, "t1", dto.CreateTimesheetRequest{
		Date: "2026-08-20", Hours: decimal.NewFromInt(25),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddTimesheet_FechaInvalida(t *testing.T) {
	uc, _ := newTaskFixture()

	_, err := uc.AddTimesheet(actorMember, "t1", dto.CreateTimesheetRequest{
		Date: "20/08/2026", Hours: decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddTimesheet_TareaInexistente(t *testing.T) {
	uc, _ := newTaskFixture()

	_, err := uc.AddTimesheet(actorMember, "t-fantasma", dto.CreateTimesheetRequest{
		Date: "2026-08-20", Hours: decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / List
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskDelete_Autorizacion(t *testing.T) {
	uc, _ := newTaskFixture()

	assert.ErrorIs(t, uc.Delete(actorMember, "t1"), domain.ErrForbidden)

	otro := policy.Actor{ID: "otro-pm", Role: entity.RoleProjectManager}
	assert.ErrorIs(t, uc.Delete(otro, "t1"), domain.ErrForbidden)

	assert.NoError(t, uc.Delete(actorManager, "t1"))
	assert.ErrorIs(t, uc.Delete(actorManager, "t1"), domain.ErrNotFound)
}

func TestTaskList_TeamMemberSoloAsignadas(t *testing.T) {
	uc, tasks := newTaskFixture()
	require.NoError(t, tasks.Create(&entity.Task{
		ID: "t2", ProjectID: "p1", Title: "De otro",
		AssigneeID: "otro-tm", Status: entity.TaskStatusNew, Priority: entity.PriorityLow,
	}))

	out, err := uc.List(actorMember, dto.TaskListFilters{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "t1", out[0].ID)
}
