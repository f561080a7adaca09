package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/application/usecase"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
)

// TaskHandler maneja tareas y sus registros de horas.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// List GET /api/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	var f dto.TaskListFilters
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, "filtros inválidos")
	}
	out, err := h.uc.List(GetActor(c), f)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Update PUT /api/tasks/:id
//
// Un team_member solo puede mover el estado de sus tareas asignadas; el
// resto de campos del cuerpo se ignoran para ese rol.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor.Role == entity.RoleTeamMember {
		var in dto.UpdateTaskStatusRequest
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "cuerpo inválido")
		}
		out, err := h.uc.UpdateStatus(actor, c.Params("id"), in)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, out)
	}

	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(actor, c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "tarea eliminada")
}

// AddTimesheet POST /api/tasks/:id/timesheets
func (h *TaskHandler) AddTimesheet(c *fiber.Ctx) error {
	var in dto.CreateTimesheetRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.AddTimesheet(GetActor(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// ListTimesheets GET /api/tasks/:id/timesheets
func (h *TaskHandler) ListTimesheets(c *fiber.Ctx) error {
	out, err := h.uc.ListTimesheets(GetActor(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
