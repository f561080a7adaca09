package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/analytics"
)

// AnalyticsHandler expone los indicadores financieros de proyectos.
type AnalyticsHandler struct {
	uc *analytics.SummaryUseCase
}

func NewAnalyticsHandler(uc *analytics.SummaryUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// ProjectSummary GET /api/analytics/project/:id/summary
func (h *AnalyticsHandler) ProjectSummary(c *fiber.Ctx) error {
	out, err := h.uc.ProjectSummary(GetActor(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
