package billing

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

// VendorBillUseCase facturas de proveedor: solo admin y sales_finance.
// Igual que Invoice, una orden de compra vinculada manda sobre el caller.
type VendorBillUseCase struct {
	billRepo    repository.VendorBillRepository
	orderRepo   repository.PurchaseOrderRepository
	projectRepo repository.ProjectRepository
}

// NewVendorBillUseCase construye el caso de uso.
func NewVendorBillUseCase(billRepo repository.VendorBillRepository, orderRepo repository.PurchaseOrderRepository, projectRepo repository.ProjectRepository) *VendorBillUseCase {
	return &VendorBillUseCase{billRepo: billRepo, orderRepo: orderRepo, projectRepo: projectRepo}
}

// List facturas de proveedor, filtros opcionales por proyecto y estado.
func (uc *VendorBillUseCase) List(actor policy.Actor, filters dto.OrderListFilters) ([]dto.VendorBillResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	bills, err := uc.billRepo.List(repository.InvoiceFilter{ProjectID: filters.ProjectID, State: filters.State})
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorBillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, toVendorBillResponse(b))
	}
	return out, nil
}

// Get una factura de proveedor por ID.
func (uc *VendorBillUseCase) Get(actor policy.Actor, id string) (*dto.VendorBillResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	b, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	resp := toVendorBillResponse(b)
	return &resp, nil
}

// Create alta de factura de proveedor. Con purchase_order_id presente,
// project_id y amount se copian de la orden.
func (uc *VendorBillUseCase) Create(actor policy.Actor, in dto.CreateVendorBillRequest) (*dto.VendorBillResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	projectID := in.ProjectID
	amount := decimal.Zero
	if in.Amount != nil {
		amount = *in.Amount
	}
	if in.PurchaseOrderID != "" {
		order, err := uc.orderRepo.GetByID(in.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, fmt.Errorf("%w: orden de compra no encontrada", domain.ErrNotFound)
		}
		projectID = order.ProjectID
		amount = order.TotalAmount
	}
	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id es requerido", domain.ErrInvalidInput)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
	}
	p, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: proyecto no encontrado", domain.ErrNotFound)
	}
	state := in.State
	if state == "" {
		state = entity.InvoiceStateDraft
	}
	if !entity.ValidInvoiceState(state) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, state)
	}

	now := time.Now()
	b := &entity.VendorBill{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		PurchaseOrderID: in.PurchaseOrderID,
		Number:          in.BillNumber,
		Amount:          amount,
		State:           state,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.billRepo.Create(b); err != nil {
		return nil, err
	}
	resp := toVendorBillResponse(b)
	return &resp, nil
}

// Update actualización parcial (amount, state).
func (uc *VendorBillUseCase) Update(actor policy.Actor, id string, in dto.UpdateInvoiceRequest) (*dto.VendorBillResponse, error) {
	if !policy.CanManageFinancials(actor) {
		return nil, domain.ErrForbidden
	}
	b, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
		}
		b.Amount = *in.Amount
	}
	if in.State != nil {
		if !entity.ValidInvoiceState(*in.State) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.State)
		}
		b.State = *in.State
	}
	b.UpdatedAt = time.Now()
	if err := uc.billRepo.Update(b); err != nil {
		return nil, err
	}
	resp := toVendorBillResponse(b)
	return &resp, nil
}

// Delete baja de la factura de proveedor.
func (uc *VendorBillUseCase) Delete(actor policy.Actor, id string) error {
	if !policy.CanManageFinancials(actor) {
		return domain.ErrForbidden
	}
	b, err := uc.billRepo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.billRepo.Delete(id)
}

func toVendorBillResponse(b *entity.VendorBill) dto.VendorBillResponse {
	return dto.VendorBillResponse{
		ID:              b.ID,
		ProjectID:       b.ProjectID,
		PurchaseOrderID: b.PurchaseOrderID,
		BillNumber:      b.Number,
		Amount:          b.Amount,
		State:           b.State,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
