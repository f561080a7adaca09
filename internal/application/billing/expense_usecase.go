package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// ExpenseUseCase gastos. Cualquier autenticado crea; la edición depende del
// rol y de la propiedad: team_member edita lo propio antes de aprobación y
// nunca el state, el manager aprueba/rechaza dentro de sus proyectos,
// admin y sales_finance sin restricción.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, projectRepo: projectRepo, userRepo: userRepo}
}

// List gastos visibles para el actor, recortados por el policy.Scope.
// El filtro user_id explícito solo lo honran los roles amplios.
func (uc *ExpenseUseCase) List(actor policy.Actor, filters dto.ExpenseListFilters) ([]dto.ExpenseResponse, error) {
	f := repository.ExpenseFilter{ProjectID: filters.ProjectID, State: filters.State}
	scope := policy.ExpenseScope(actor)
	switch {
	case scope.All:
	case scope.ManagerID != "":
		f.ManagerID = scope.ManagerID
	default:
		f.UserID = scope.UserID
	}
	if filters.UserID != "" && policy.CanFilterByUser(actor) {
		f.UserID = filters.UserID
	}
	expenses, err := uc.expenseRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, uc.toResponse(e))
	}
	return out, nil
}

// Get un gasto por ID, 403 fuera de la visibilidad del actor.
func (uc *ExpenseUseCase) Get(actor policy.Actor, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleSalesFinance:
	case entity.RoleProjectManager:
		p, err := uc.projectRepo.GetByID(e.ProjectID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.ManagerID != actor.ID {
			return nil, domain.ErrForbidden
		}
	default:
		if e.UserID != actor.ID {
			return nil, domain.ErrForbidden
		}
	}
	resp := uc.toResponse(e)
	return &resp, nil
}

// Create alta de gasto. user_id vacío = el propio actor.
func (uc *ExpenseUseCase) Create(actor policy.Actor, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.ProjectID == "" {
		return nil, fmt.Errorf("%w: project_id es requerido", domain.ErrInvalidInput)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
	}
	p, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: proyecto no encontrado", domain.ErrNotFound)
	}
	userID := in.UserID
	if userID == "" {
		userID = actor.ID
	}
	if userID != actor.ID {
		u, err := uc.userRepo.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, fmt.Errorf("%w: usuario no encontrado", domain.ErrNotFound)
		}
	}
	billable := false
	if in.Billable != nil {
		billable = *in.Billable
	}

	now := time.Now()
	e := &entity.Expense{
		ID:          uuid.New().String(),
		ProjectID:   in.ProjectID,
		UserID:      userID,
		Amount:      in.Amount,
		Description: in.Description,
		Billable:    billable,
		ReceiptURL:  in.ReceiptURL,
		State:       entity.ExpenseStatePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.expenseRepo.Create(e); err != nil {
		return nil, err
	}
	resp := uc.toResponse(e)
	return &resp, nil
}

// Update actualización parcial según el nivel del actor. Con nivel
// UpdateOwnFields el campo state se descarta sin error.
func (uc *ExpenseUseCase) Update(actor policy.Actor, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.projectRepo.GetByID(e.ProjectID)
	if err != nil {
		return nil, err
	}
	managerID := ""
	if p != nil {
		managerID = p.ManagerID
	}
	level := policy.ExpenseUpdateLevel(actor, e.UserID, e.State, managerID)
	if level == policy.UpdateNone {
		return nil, domain.ErrForbidden
	}

	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
		}
		e.Amount = *in.Amount
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Billable != nil {
		e.Billable = *in.Billable
	}
	if in.ReceiptURL != nil {
		e.ReceiptURL = *in.ReceiptURL
	}
	if in.State != nil && level == policy.UpdateFull {
		if !entity.ValidExpenseState(*in.State) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.State)
		}
		e.State = *in.State
	}
	e.UpdatedAt = time.Now()
	if err := uc.expenseRepo.Update(e); err != nil {
		return nil, err
	}
	resp := uc.toResponse(e)
	return &resp, nil
}

// Delete baja de gasto: solo admin y sales_finance.
func (uc *ExpenseUseCase) Delete(actor policy.Actor, id string) error {
	if !policy.CanManageFinancials(actor) {
		return domain.ErrForbidden
	}
	e, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(id)
}

func (uc *ExpenseUseCase) toResponse(e *entity.Expense) dto.ExpenseResponse {
	resp := dto.ExpenseResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Description: e.Description,
		Billable:    e.Billable,
		ReceiptURL:  e.ReceiptURL,
		State:       e.State,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if u, err := uc.userRepo.GetByID(e.UserID); err == nil && u != nil {
		resp.User = dto.NewUserResponse(u)
	}
	return resp
}
