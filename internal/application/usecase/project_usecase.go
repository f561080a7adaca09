package usecase

import (
	"context"
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

// ProjectUseCase CRUD de proyectos con recorte por rol y reemplazo atómico de tags.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	tagRepo     repository.ProjectTagRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
	txRunner    ProjectTxRunner
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(
	projectRepo repository.ProjectRepository,
	tagRepo repository.ProjectTagRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	txRunner ProjectTxRunner,
) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		tagRepo:     tagRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		txRunner:    txRunner,
	}
}

// List proyectos visibles para el actor. El recorte por rol se aplica en la
// consulta (policy.Scope → filtro), no filtrando después: un conjunto
// permitido vacío devuelve lista vacía.
func (uc *ProjectUseCase) List(actor policy.Actor, f dto.ProjectListFilters) ([]dto.ProjectResponse, error) {
	filter := repository.ProjectFilter{
		Status: f.Status,
		Search: f.Search,
	}
	scope := policy.ProjectScope(actor)
	switch {
	case scope.ManagerID != "":
		filter.ManagerID = scope.ManagerID
	case scope.AssigneeID != "":
		filter.AssigneeID = scope.AssigneeID
	default:
		// sin recorte; el filtro explícito manager_id solo aplica a roles amplios
		if f.ManagerID != "" && policy.CanFilterByUser(actor) {
			filter.ManagerID = f.ManagerID
		}
	}

	projects, err := uc.projectRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Get un proyecto por ID. 404 si no existe; 403 si existe pero el rol no lo alcanza.
func (uc *ProjectUseCase) Get(actor policy.Actor, id string) (*dto.ProjectResponse, error) {
	p, err := uc.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	hasTask := false
	if actor.Role == entity.RoleTeamMember {
		hasTask, err = uc.taskRepo.HasAssigned(id, actor.ID)
		if err != nil {
			return nil, err
		}
	}
	if !policy.CanViewProject(actor, p.ManagerID, hasTask) {
		return nil, domain.ErrForbidden
	}
	return uc.toResponse(p)
}

// Create crea un proyecto. Solo admin y project_manager crean proyectos;
// el manager es el actor salvo que un admin indique otro en ManagerID.
func (uc *ProjectUseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if !policy.CanCreateProject(actor) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPlanning
	}
	if !entity.ValidProjectStatus(status) {
		return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, status)
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: priority desconocida %q", domain.ErrInvalidInput, priority)
	}
	budget := decimal.Zero
	if in.Budget != nil {
		if in.Budget.IsNegative() {
			return nil, fmt.Errorf("%w: budget no puede ser negativo", domain.ErrInvalidInput)
		}
		budget = *in.Budget
	}
	// Solo admin asigna otro manager; un project_manager siempre crea
	// proyectos a su nombre, venga lo que venga en el cuerpo.
	managerID := actor.ID
	if actor.Role == entity.RoleAdmin && in.ManagerID != "" {
		managerID = in.ManagerID
	}

	now := time.Now()
	p := &entity.Project{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		ManagerID:   managerID,
		Deadline:    in.Deadline,
		Priority:    priority,
		Budget:      budget,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.txRunner.RunProjectTags(ctx, func(
		projectRepo repository.ProjectRepository,
		tagRepo repository.ProjectTagRepository,
	) error {
		if err := projectRepo.Create(p); err != nil {
			return err
		}
		return insertTags(tagRepo, p.ID, in.Tags, now)
	}); err != nil {
		return nil, err
	}
	return uc.toResponse(p)
}

// Update actualiza campos del proyecto. Solo admin puede reasignar el manager;
// para otros roles el campo manager_id se ignora en silencio. Tags no nil
// reemplaza el set completo dentro de la misma transacción.
func (uc *ProjectUseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanManageProject(actor, p.ManagerID) {
		return nil, domain.ErrForbidden
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ManagerID != nil && policy.CanChangeProjectManager(actor) {
		p.ManagerID = *in.ManagerID
	}
	if in.Deadline != nil {
		p.Deadline = in.Deadline
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return nil, fmt.Errorf("%w: priority desconocida %q", domain.ErrInvalidInput, *in.Priority)
		}
		p.Priority = *in.Priority
	}
	if in.Budget != nil {
		if in.Budget.IsNegative() {
			return nil, fmt.Errorf("%w: budget no puede ser negativo", domain.ErrInvalidInput)
		}
		p.Budget = *in.Budget
	}
	if in.Status != nil {
		if !entity.ValidProjectStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, *in.Status)
		}
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()

	if err := uc.txRunner.RunProjectTags(ctx, func(
		projectRepo repository.ProjectRepository,
		tagRepo repository.ProjectTagRepository,
	) error {
		if err := projectRepo.Update(p); err != nil {
			return err
		}
		if in.Tags == nil {
			return nil
		}
		// Reemplazo completo: borrar el set actual e insertar el nuevo.
		if err := tagRepo.DeleteByProject(p.ID); err != nil {
			return err
		}
		return insertTags(tagRepo, p.ID, in.Tags, p.UpdatedAt)
	}); err != nil {
		return nil, err
	}
	return uc.toResponse(p)
}

// Delete borra un proyecto: tareas y horas caen en cascada; si sigue
// referenciado por órdenes, facturas o gastos el repo devuelve ErrConflict.
func (uc *ProjectUseCase) Delete(actor policy.Actor, id string) error {
	p, err := uc.projectRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if !policy.CanManageProject(actor, p.ManagerID) {
		return domain.ErrForbidden
	}
	return uc.projectRepo.Delete(id)
}

func insertTags(tagRepo repository.ProjectTagRepository, projectID string, tags []string, now time.Time) error {
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		if err := tagRepo.Create(&entity.ProjectTag{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			Tag:       tag,
			CreatedAt: now,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProjectUseCase) toResponse(p *entity.Project) (*dto.ProjectResponse, error) {
	tags, err := uc.tagRepo.ListByProject(p.ID)
	if err != nil {
		return nil, err
	}
	tagNames := make([]string, 0, len(tags))
	for _, t := range tags {
		tagNames = append(tagNames, t.Tag)
	}
	manager, err := uc.userRepo.GetByID(p.ManagerID)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ManagerID:   p.ManagerID,
		Manager:     dto.NewUserResponse(manager),
		Deadline:    p.Deadline,
		Priority:    p.Priority,
		Budget:      p.Budget,
		Status:      p.Status,
		Tags:        tagNames,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}
