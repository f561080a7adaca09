package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// dateLayout formato de fecha de los timesheets (solo día).
const dateLayout = "2006-01-02"

// maxTimesheetHours tope de horas por registro (un día).
var maxTimesheetHours = decimal.NewFromInt(24)

// TaskUseCase CRUD de tareas y registro de horas. La edición por team_member
// entra por UpdateStatus (DTO restringido); Update exige manager o admin.
type TaskUseCase struct {
	taskRepo      repository.TaskRepository
	projectRepo   repository.ProjectRepository
	timesheetRepo repository.TimesheetRepository
	userRepo      repository.UserRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	timesheetRepo repository.TimesheetRepository,
	userRepo repository.UserRepository,
) *TaskUseCase {
	return &TaskUseCase{
		taskRepo:      taskRepo,
		projectRepo:   projectRepo,
		timesheetRepo: timesheetRepo,
		userRepo:      userRepo,
	}
}

// List tareas visibles para el actor, con filtros opcionales de query.
func (uc *TaskUseCase) List(actor policy.Actor, f dto.TaskListFilters) ([]dto.TaskResponse, error) {
	filter := repository.TaskFilter{
		ProjectID: f.ProjectID,
		Status:    f.Status,
	}
	scope := policy.TaskScope(actor)
	switch {
	case scope.AssigneeID != "":
		filter.AssigneeID = scope.AssigneeID
	case scope.ManagerID != "":
		filter.ManagerID = scope.ManagerID
	}
	if f.AssigneeID != "" && policy.CanFilterByUser(actor) {
		filter.AssigneeID = f.AssigneeID
	}

	tasks, err := uc.taskRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp, err := uc.toResponse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Get una tarea por ID. 404 si no existe; 403 si el rol no la alcanza.
func (uc *TaskUseCase) Get(actor policy.Actor, id string) (*dto.TaskResponse, error) {
	t, err := uc.getVisible(actor, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(t)
}

// Create crea una tarea (admin o project_manager). Defaults: status new,
// priority medium.
func (uc *TaskUseCase) Create(actor policy.Actor, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if !policy.CanCreateTask(actor) {
		return nil, domain.ErrForbidden
	}
	if in.ProjectID == "" || in.Title == "" {
		return nil, fmt.Errorf("%w: project_id y title son requeridos", domain.ErrInvalidInput)
	}
	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: el proyecto no existe", domain.ErrInvalidInput)
	}
	if actor.Role == entity.RoleProjectManager && project.ManagerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	status := in.Status
	if status == "" {
		status = entity.TaskStatusNew
	}
	if !entity.ValidTaskStatus(status) {
		return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, status)
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: priority desconocida %q", domain.ErrInvalidInput, priority)
	}
	estimate := decimal.Zero
	if in.TimeEstimate != nil {
		if in.TimeEstimate.IsNegative() {
			return nil, fmt.Errorf("%w: time_estimate no puede ser negativo", domain.ErrInvalidInput)
		}
		estimate = *in.TimeEstimate
	}
	if in.AssigneeID != "" {
		assignee, err := uc.userRepo.GetByID(in.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, fmt.Errorf("%w: el asignado no existe", domain.ErrInvalidInput)
		}
	}

	now := time.Now()
	t := &entity.Task{
		ID:             uuid.New().String(),
		ProjectID:      in.ProjectID,
		Title:          in.Title,
		Description:    in.Description,
		AssigneeID:     in.AssigneeID,
		Status:         status,
		Priority:       priority,
		Deadline:       in.Deadline,
		TimeEstimate:   estimate,
		RequiredSkills: in.RequiredSkills,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.taskRepo.Create(t); err != nil {
		return nil, err
	}
	return uc.toResponse(t)
}

// Update edición completa de una tarea: admin, o el manager del proyecto.
// El asignado team_member debe entrar por UpdateStatus.
func (uc *TaskUseCase) Update(actor policy.Actor, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	t, level, err := uc.getWithLevel(actor, id)
	if err != nil {
		return nil, err
	}
	if level != policy.UpdateFull {
		return nil, domain.ErrForbidden
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: title no puede quedar vacío", domain.ErrInvalidInput)
		}
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.AssigneeID != nil {
		t.AssigneeID = *in.AssigneeID
	}
	if in.Status != nil {
		if !entity.ValidTaskStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, *in.Status)
		}
		t.Status = *in.Status
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, fmt.Errorf("%w: priority desconocida %q", domain.ErrInvalidInput, *in.Priority)
		}
		t.Priority = *in.Priority
	}
	if in.Deadline != nil {
		t.Deadline = in.Deadline
	}
	if in.TimeEstimate != nil {
		if in.TimeEstimate.IsNegative() {
			return nil, fmt.Errorf("%w: time_estimate no puede ser negativo", domain.ErrInvalidInput)
		}
		t.TimeEstimate = *in.TimeEstimate
	}
	if in.RequiredSkills != nil {
		t.RequiredSkills = *in.RequiredSkills
	}
	t.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(t); err != nil {
		return nil, err
	}
	return uc.toResponse(t)
}

// UpdateStatus edición restringida del asignado: solo el campo status.
// El tablero de tareas del cliente dispara esta operación al soltar una tarjeta.
func (uc *TaskUseCase) UpdateStatus(actor policy.Actor, id string, in dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error) {
	t, level, err := uc.getWithLevel(actor, id)
	if err != nil {
		return nil, err
	}
	if level == policy.UpdateNone {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidTaskStatus(in.Status) {
		return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	t.Status = in.Status
	t.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(t); err != nil {
		return nil, err
	}
	return uc.toResponse(t)
}

// Delete borra una tarea (admin o manager del proyecto); sus horas caen en cascada.
func (uc *TaskUseCase) Delete(actor policy.Actor, id string) error {
	t, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	project, err := uc.projectRepo.GetByID(t.ProjectID)
	if err != nil {
		return err
	}
	managerID := ""
	if project != nil {
		managerID = project.ManagerID
	}
	if !policy.CanDeleteTask(actor, managerID) {
		return domain.ErrForbidden
	}
	return uc.taskRepo.Delete(id)
}

// AddTimesheet registra horas sobre una tarea. UserID vacío = el actor.
// Horas en (0, 24]; la fecha es YYYY-MM-DD.
func (uc *TaskUseCase) AddTimesheet(actor policy.Actor, taskID string, in dto.CreateTimesheetRequest) (*dto.TimesheetResponse, error) {
	t, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	userID := in.UserID
	if userID == "" {
		userID = actor.ID
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: el usuario no existe", domain.ErrInvalidInput)
	}
	if !in.Hours.IsPositive() || in.Hours.GreaterThan(maxTimesheetHours) {
		return nil, fmt.Errorf("%w: hours debe estar entre 0 y 24", domain.ErrInvalidInput)
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	billable := true
	if in.Billable != nil {
		billable = *in.Billable
	}

	now := time.Now()
	ts := &entity.Timesheet{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		UserID:    userID,
		Date:      date,
		Hours:     in.Hours,
		Billable:  billable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.timesheetRepo.Create(ts); err != nil {
		return nil, err
	}
	return uc.toTimesheetResponse(ts)
}

// ListTimesheets horas de una tarea, orden date DESC.
func (uc *TaskUseCase) ListTimesheets(actor policy.Actor, taskID string) ([]dto.TimesheetResponse, error) {
	t, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.timesheetRepo.ListByTask(taskID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimesheetResponse, 0, len(list))
	for _, ts := range list {
		resp, err := uc.toTimesheetResponse(ts)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// getVisible carga la tarea y verifica visibilidad de lectura.
func (uc *TaskUseCase) getVisible(actor policy.Actor, id string) (*entity.Task, error) {
	t, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	switch actor.Role {
	case entity.RoleTeamMember:
		if t.AssigneeID != actor.ID {
			return nil, domain.ErrForbidden
		}
	case entity.RoleProjectManager:
		project, err := uc.projectRepo.GetByID(t.ProjectID)
		if err != nil {
			return nil, err
		}
		if project == nil || project.ManagerID != actor.ID {
			return nil, domain.ErrForbidden
		}
	}
	return t, nil
}

// getWithLevel carga la tarea y calcula el nivel de edición del actor.
func (uc *TaskUseCase) getWithLevel(actor policy.Actor, id string) (*entity.Task, policy.UpdateLevel, error) {
	t, err := uc.taskRepo.GetByID(id)
	if err != nil {
		return nil, policy.UpdateNone, err
	}
	if t == nil {
		return nil, policy.UpdateNone, domain.ErrNotFound
	}
	project, err := uc.projectRepo.GetByID(t.ProjectID)
	if err != nil {
		return nil, policy.UpdateNone, err
	}
	managerID := ""
	if project != nil {
		managerID = project.ManagerID
	}
	return t, policy.TaskUpdateLevel(actor, t.AssigneeID, managerID), nil
}

func (uc *TaskUseCase) toResponse(t *entity.Task) (*dto.TaskResponse, error) {
	var assignee *dto.UserResponse
	if t.AssigneeID != "" {
		u, err := uc.userRepo.GetByID(t.AssigneeID)
		if err != nil {
			return nil, err
		}
		assignee = dto.NewUserResponse(u)
	}
	return &dto.TaskResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Title:          t.Title,
		Description:    t.Description,
		AssigneeID:     t.AssigneeID,
		Assignee:       assignee,
		Status:         t.Status,
		Priority:       t.Priority,
		Deadline:       t.Deadline,
		TimeEstimate:   t.TimeEstimate,
		RequiredSkills: t.RequiredSkills,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}, nil
}

func (uc *TaskUseCase) toTimesheetResponse(ts *entity.Timesheet) (*dto.TimesheetResponse, error) {
	u, err := uc.userRepo.GetByID(ts.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.TimesheetResponse{
		ID:        ts.ID,
		TaskID:    ts.TaskID,
		UserID:    ts.UserID,
		User:      dto.NewUserResponse(u),
		Date:      ts.Date.Format(dateLayout),
		Hours:     ts.Hours,
		Billable:  ts.Billable,
		CreatedAt: ts.CreatedAt,
	}, nil
}
