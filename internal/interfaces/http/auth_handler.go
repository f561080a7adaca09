package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/auth"
	"github.com/tu-usuario/projectflow/internal/application/dto"
)

// AuthHandler maneja registro, login, refresh, logout y perfil propio.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, out)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Refresh POST /api/auth/refresh — rota el refresh token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.RefreshToken == "" {
		return badRequest(c, "refreshToken es requerido")
	}
	out, err := h.uc.Refresh(in.RefreshToken)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}

// Logout POST /api/auth/logout — revoca el refresh token; idempotente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.Logout(in.RefreshToken); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "sesión cerrada")
}

// Me GET /api/auth/me — usuario autenticado actual.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, out)
}
