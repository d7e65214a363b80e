package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dahill/invoice-api/internal/application/auth"
	"github.com/dahill/invoice-api/internal/application/dto"
	"github.com/dahill/invoice-api/internal/domain"
)

// AuthHandler maneja registro y login (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := ValidateRequest(in); errs != nil {
		return failValidation(c, errs)
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return fail(c, fiber.StatusConflict, "Username or email already registered")
		}
		return err
	}
	return okMessage(c, fiber.StatusCreated, "User registered successfully", fiber.Map{"user": user})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := ValidateRequest(in); errs != nil {
		return failValidation(c, errs)
	}
	result, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}
	return ok(c, result)
}
