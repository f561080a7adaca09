package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/billing"
	"github.com/tu-usuario/projectflow/internal/application/dto"
)

// ExpenseHandler maneja gastos y su ciclo de aprobación.
type ExpenseHandler struct {
	uc *billing.ExpenseUseCase
}

func NewExpenseHandler(uc *billing.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List GET /api/expenses
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var f dto.ExpenseListFilters
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, "filtros inválidos")
	}
	out, err := h.uc.List(GetActor(c), f)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Get GET /api/expenses/:id
func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Create POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/expenses/:id
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Delete DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "gasto eliminado")
}
