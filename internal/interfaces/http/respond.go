package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
)

// statusFor mapea errores sentinela del dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// fail responde el envelope de error con el status derivado del sentinela.
// Los errores internos no exponen detalle al caller.
func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "error interno del servidor"
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		msg = "Invalid credentials"
	}
	return c.Status(status).JSON(dto.Err(msg))
}

// badRequest respuesta 400 con mensaje explícito (cuerpos malformados).
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Err(msg))
}

// ok respuesta 200 con datos.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

// created respuesta 201 con datos.
func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

// okMessage respuesta 200 solo con mensaje (deletes, logout).
func okMessage(c *fiber.Ctx, msg string) error {
	return c.JSON(dto.OKMessage(msg))
}
