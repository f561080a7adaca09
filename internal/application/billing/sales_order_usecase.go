package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/policy"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// SalesOrderUseCase órdenes de venta. Todas las operaciones son exclusivas
// de admin y sales_finance.
type SalesOrderUseCase struct {
	orderRepo   repository.SalesOrderRepository
	projectRepo repository.ProjectRepository
}

// NewSalesOrderUseCase construye el caso de uso.
func NewSalesOrderUseCase(orderRepo repository.SalesOrderRepository, projectRepo repository.ProjectRepository) *SalesOrderUseCase {
	return &SalesOrderUseCase{orderRepo: orderRepo, projectRepo: projectRepo}
}

// List órdenes de venta, filtros opcionales por proyecto y estado.
func (uc *SalesOrderUseCase) List(actor policy.Actor, filters dto.OrderListFilters) ([]dto.SalesOrderResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	orders, err := uc.orderRepo.List(repository.OrderFilter{ProjectID: filters.ProjectID, State: filters.State})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toSalesOrderResponse(o))
	}
	return out, nil
}

// Get una orden de venta por ID.
func (uc *SalesOrderUseCase) Get(actor policy.Actor, id string) (*dto.SalesOrderResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSalesOrderResponse(o)
	return &resp, nil
}

// Create alta de orden de venta contra un proyecto existente.
func (uc *SalesOrderUseCase) Create(actor policy.Actor, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	customer := strings.TrimSpace(in.CustomerName)
	if in.ProjectID == "" || customer == "" {
		return nil, fmt.Errorf("%w: project_id y customer_name son requeridos", domain.ErrInvalidInput)
	}
	p, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: proyecto no encontrado", domain.ErrNotFound)
	}
	amount := decimal.Zero
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return nil, fmt.Errorf("%w: total_amount no puede ser negativo", domain.ErrInvalidInput)
		}
		amount = *in.TotalAmount
	}
	state := in.State
	if state == "" {
		state = entity.OrderStateDraft
	}
	if !entity.ValidSalesOrderState(state) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, state)
	}

	now := time.Now()
	o := &entity.SalesOrder{
		ID:           uuid.New().String(),
		ProjectID:    in.ProjectID,
		CustomerName: customer,
		Description:  in.Description,
		TotalAmount:  amount,
		State:        state,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orderRepo.Create(o); err != nil {
		return nil, err
	}
	resp := toSalesOrderResponse(o)
	return &resp, nil
}

// Update actualización parcial de la orden.
func (uc *SalesOrderUseCase) Update(actor policy.Actor, id string, in dto.UpdateOrderRequest) (*dto.SalesOrderResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerName != nil {
		o.CustomerName = strings.TrimSpace(*in.CustomerName)
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return nil, fmt.Errorf("%w: total_amount no puede ser negativo", domain.ErrInvalidInput)
		}
		o.TotalAmount = *in.TotalAmount
	}
	if in.State != nil {
		if !entity.ValidSalesOrderState(*in.State) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.State)
		}
		o.State = *in.State
	}
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	resp := toSalesOrderResponse(o)
	return &resp, nil
}

// Delete baja de la orden de venta.
func (uc *SalesOrderUseCase) Delete(actor policy.Actor, id string) error {
	if !policy.CanManageFinancials(actor) {
		return domain.ErrForbidden
	}
	o, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

func toSalesOrderResponse(o *entity.SalesOrder) dto.SalesOrderResponse {
	return dto.SalesOrderResponse{
		ID:           o.ID,
		ProjectID:    o.ProjectID,
		CustomerName: o.CustomerName,
		Description:  o.Description,
		TotalAmount:  o.TotalAmount,
		State:        o.State,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
