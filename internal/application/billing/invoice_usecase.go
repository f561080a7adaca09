package billing

import (
	"errors"
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

// maxNumberAttempts reintentos de generación del consecutivo ante colisión
// de número bajo creación concurrente.
const maxNumberAttempts = 5

// InvoiceUseCase facturas de cliente. admin y sales_finance operan sobre
// todas; un project_manager puede crear y actualizar facturas de sus
// propios proyectos y listar solo esas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.SalesOrderRepository
	projectRepo repository.ProjectRepository
	pdf         InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, orderRepo repository.SalesOrderRepository, projectRepo repository.ProjectRepository, pdf InvoicePDFGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, orderRepo: orderRepo, projectRepo: projectRepo, pdf: pdf}
}

// List facturas visibles para el actor. Un project_manager ve solo las de
// sus proyectos; team_member obtiene lista vacía.
func (uc *InvoiceUseCase) List(actor policy.Actor, filters dto.OrderListFilters) ([]dto.InvoiceResponse, error) {
	f := repository.InvoiceFilter{ProjectID: filters.ProjectID, State: filters.State}
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleSalesFinance:
	case entity.RoleProjectManager:
		f.ManagerID = actor.ID
	default:
		return []dto.InvoiceResponse{}, nil
	}
	invoices, err := uc.invoiceRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// Get una factura por ID, 403 si existe pero está fuera de la visibilidad.
func (uc *InvoiceUseCase) Get(actor policy.Actor, id string) (*dto.InvoiceResponse, error) {
	inv, _, err := uc.getVisible(actor, id)
	if err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

// Create alta de factura. Si viene sales_order_id, project_id y amount se
// copian de la orden ignorando lo que mande el caller. Sin invoice_number
// se genera el consecutivo INV-<año>-<seq> con reintento ante colisión.
func (uc *InvoiceUseCase) Create(actor policy.Actor, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	projectID := in.ProjectID
	amount := decimal.Zero
	if in.Amount != nil {
		amount = *in.Amount
	}

	if in.SalesOrderID != "" {
		order, err := uc.orderRepo.GetByID(in.SalesOrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, fmt.Errorf("%w: orden de venta no encontrada", domain.ErrNotFound)
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
	if !policy.CanCreateInvoice(actor, p.ManagerID) {
		return nil, domain.ErrForbidden
	}

	state := in.State
	if state == "" {
		state = entity.InvoiceStateDraft
	}
	if !entity.ValidInvoiceState(state) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, state)
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		SalesOrderID: in.SalesOrderID,
		Number:       in.InvoiceNumber,
		Amount:       amount,
		State:        state,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if inv.Number != "" {
		if err := uc.invoiceRepo.Create(inv); err != nil {
			return nil, err
		}
		resp := toInvoiceResponse(inv)
		return &resp, nil
	}

	// Consecutivo basado en el conteo actual. Dos creaciones simultáneas
	// pueden calcular el mismo número; la restricción de unicidad lo detecta
	// y aquí se recalcula, en vez de propagar el 409 al caller.
	var lastErr error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		count, err := uc.invoiceRepo.Count()
		if err != nil {
			return nil, err
		}
		inv.Number = fmt.Sprintf("INV-%d-%03d", now.Year(), count+1)
		err = uc.invoiceRepo.Create(inv)
		if err == nil {
			resp := toInvoiceResponse(inv)
			return &resp, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no se pudo generar un número de factura único: %w", lastErr)
}

// Update actualización parcial (amount, state). project_manager solo sobre
// facturas de sus proyectos.
func (uc *InvoiceUseCase) Update(actor policy.Actor, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, p, err := uc.getVisible(actor, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanCreateInvoice(actor, p.ManagerID) {
		return nil, domain.ErrForbidden
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
		}
		inv.Amount = *in.Amount
	}
	if in.State != nil {
		if !entity.ValidInvoiceState(*in.State) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.State)
		}
		inv.State = *in.State
	}
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

// Delete baja de factura: solo admin y sales_finance.
func (uc *InvoiceUseCase) Delete(actor policy.Actor, id string) error {
	if !policy.CanManageFinancials(actor) {
		return domain.ErrForbidden
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// DownloadPDF genera y devuelve el PDF de la factura, con el nombre de
// archivo sugerido. Misma visibilidad que Get.
func (uc *InvoiceUseCase) DownloadPDF(actor policy.Actor, id string) ([]byte, string, error) {
	inv, p, err := uc.getVisible(actor, id)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.Generate(inv, p)
	if err != nil {
		return nil, "", fmt.Errorf("generando PDF de la factura %s: %w", inv.Number, err)
	}
	return doc, fmt.Sprintf("%s.pdf", inv.Number), nil
}

// getVisible carga la factura y su proyecto, aplicando la visibilidad por rol:
// 404 si no existe, 403 si existe fuera del alcance del actor.
func (uc *InvoiceUseCase) getVisible(actor policy.Actor, id string) (*entity.Invoice, *entity.Project, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	p, err := uc.projectRepo.GetByID(inv.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, domain.ErrNotFound
	}
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleSalesFinance:
	case entity.RoleProjectManager:
		if p.ManagerID != actor.ID {
			return nil, nil, domain.ErrForbidden
		}
	default:
		return nil, nil, domain.ErrForbidden
	}
	return inv, p, nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID,
		ProjectID:     inv.ProjectID,
		SalesOrderID:  inv.SalesOrderID,
		InvoiceNumber: inv.Number,
		Amount:        inv.Amount,
		State:         inv.State,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
