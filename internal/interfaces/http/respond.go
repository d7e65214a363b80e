package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dahill/invoice-api/internal/application/dto"
)

// ok responde 200 con data en el sobre estándar.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.Response{Success: true, Data: data})
}

// okMessage responde con mensaje y data opcional.
func okMessage(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// fail responde un error con mensaje (sin detalle de campos).
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message})
}

// failValidation responde 400 con la lista completa de violaciones.
func failValidation(c *fiber.Ctx, errs []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Message: "Validation errors",
		Errors:  errs,
	})
}
