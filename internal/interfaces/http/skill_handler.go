package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/application/usecase"
)

// SkillHandler maneja habilidades de usuarios y sugerencias de asignación.
type SkillHandler struct {
	uc *usecase.SkillUseCase
}

func NewSkillHandler(uc *usecase.SkillUseCase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

// ListAll GET /api/skills/all — catálogo de nombres registrados.
func (h *SkillHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAllNames()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// ListByUser GET /api/skills/users/:id
func (h *SkillHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Add POST /api/skills/users/:id
func (h *SkillHandler) Add(c *fiber.Ctx) error {
	var in dto.AddSkillRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Add(GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Remove DELETE /api/skills/users/:id/:skillId
func (h *SkillHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(GetActor(c), c.Params("id"), c.Params("skillId")); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "habilidad eliminada")
}

// Suggest GET /api/skills/suggestions?required_skills=go,sql
func (h *SkillHandler) Suggest(c *fiber.Ctx) error {
	out, err := h.uc.Suggest(c.Query("required_skills"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
