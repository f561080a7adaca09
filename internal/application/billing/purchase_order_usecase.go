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

// PurchaseOrderUseCase órdenes de compra. Mismo gate que las de venta:
// solo admin y sales_finance.
type PurchaseOrderUseCase struct {
	orderRepo   repository.PurchaseOrderRepository
	projectRepo repository.ProjectRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(orderRepo repository.PurchaseOrderRepository, projectRepo repository.ProjectRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{orderRepo: orderRepo, projectRepo: projectRepo}
}

// List órdenes de compra, filtros opcionales por proyecto y estado.
func (uc *PurchaseOrderUseCase) List(actor policy.Actor, filters dto.OrderListFilters) ([]dto.PurchaseOrderResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	orders, err := uc.orderRepo.List(repository.OrderFilter{ProjectID: filters.ProjectID, State: filters.State})
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toPurchaseOrderResponse(o))
	}
	return out, nil
}

// Get una orden de compra por ID.
func (uc *PurchaseOrderUseCase) Get(actor policy.Actor, id string) (*dto.PurchaseOrderResponse, error) {
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
	resp := toPurchaseOrderResponse(o)
	return &resp, nil
}

// Create alta de orden de compra contra un proyecto existente.
func (uc *PurchaseOrderUseCase) Create(actor policy.Actor, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	vendor := strings.TrimSpace(in.VendorName)
	if in.ProjectID == "" || vendor == "" {
		return nil, fmt.Errorf("%w: project_id y vendor_name son requeridos", domain.ErrInvalidInput)
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
	if !entity.ValidPurchaseOrderState(state) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, state)
	}

	now := time.Now()
	o := &entity.PurchaseOrder{
		ID:          uuid.New().String(),
		ProjectID:   in.ProjectID,
		VendorName:  vendor,
		Description: in.Description,
		TotalAmount: amount,
		State:       state,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.Create(o); err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(o)
	return &resp, nil
}

// Update actualización parcial de la orden.
func (uc *PurchaseOrderUseCase) Update(actor policy.Actor, id string, in dto.UpdateOrderRequest) (*dto.PurchaseOrderResponse, error) {
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
	if in.VendorName != nil {
		o.VendorName = strings.TrimSpace(*in.VendorName)
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
		if !entity.ValidPurchaseOrderState(*in.State) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.State)
		}
		o.State = *in.State
	}
	o.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(o); err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(o)
	return &resp, nil
}

// Delete baja de la orden de compra.
func (uc *PurchaseOrderUseCase) Delete(actor policy.Actor, id string) error {
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

func toPurchaseOrderResponse(o *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	return dto.PurchaseOrderResponse{
		ID:          o.ID,
		ProjectID:   o.ProjectID,
		VendorName:  o.VendorName,
		Description: o.Description,
		TotalAmount: o.TotalAmount,
		State:       o.State,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
