package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/billing"
	"github.com/tu-usuario/projectflow/internal/application/dto"
)

// VendorBillHandler maneja facturas de proveedor.
type VendorBillHandler struct {
	uc *billing.VendorBillUseCase
}

func NewVendorBillHandler(uc *billing.VendorBillUseCase) *VendorBillHandler {
	return &VendorBillHandler{uc: uc}
}

// List GET /api/vendor-bills
func (h *VendorBillHandler) List(c *fiber.Ctx) error {
	var f dto.OrderListFilters
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, "filtros inválidos")
	}
	out, err := h.uc.List(GetActor(c), f)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Get GET /api/vendor-bills/:id
func (h *VendorBillHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Create POST /api/vendor-bills
func (h *VendorBillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorBillRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/vendor-bills/:id
func (h *VendorBillHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Delete DELETE /api/vendor-bills/:id
func (h *VendorBillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "factura de proveedor eliminada")
}
