package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/billing"
	"github.com/tu-usuario/projectflow/internal/application/dto"
)

// SalesOrderHandler maneja órdenes de venta.
type SalesOrderHandler struct {
	uc *billing.SalesOrderUseCase
}

func NewSalesOrderHandler(uc *billing.SalesOrderUseCase) *SalesOrderHandler {
	return &SalesOrderHandler{uc: uc}
}

// List GET /api/sales-orders
func (h *SalesOrderHandler) List(c *fiber.Ctx) error {
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

// Get GET /api/sales-orders/:id
func (h *SalesOrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Create POST /api/sales-orders
func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/sales-orders/:id
func (h *SalesOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Delete DELETE /api/sales-orders/:id
func (h *SalesOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "orden de venta eliminada")
}

// PurchaseOrderHandler maneja órdenes de compra.
type PurchaseOrderHandler struct {
	uc *billing.PurchaseOrderUseCase
}

func NewPurchaseOrderHandler(uc *billing.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// List GET /api/purchase-orders
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
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

// Get GET /api/purchase-orders/:id
func (h *PurchaseOrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Create POST /api/purchase-orders
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/purchase-orders/:id
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Delete DELETE /api/purchase-orders/:id
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "orden de compra eliminada")
}
