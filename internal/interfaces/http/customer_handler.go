package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dahill/invoice-api/internal/application/billing"
	"github.com/dahill/invoice-api/internal/application/dto"
	"github.com/dahill/invoice-api/internal/domain"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// customerID lee el :id del path; un id no numérico no resuelve a ningún
// cliente, así que se trata como not found.
func customerID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return int64(id), true
}

// List GET /api/customers?page=1&limit=10&search=
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	search := c.Query("search")

	data, err := h.uc.List(c.Context(), page, limit, search)
	if err != nil {
		return err
	}
	return ok(c, data)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, valid := customerID(c)
	if !valid {
		return fail(c, fiber.StatusNotFound, "Customer not found")
	}
	customer, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return ok(c, fiber.Map{"customer": customer})
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := ValidateRequest(in); errs != nil {
		return failValidation(c, errs)
	}
	customer, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return okMessage(c, fiber.StatusCreated, "Customer created successfully", fiber.Map{"customer": customer})
}

// Update PUT /api/customers/:id — reemplazo completo de campos.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, valid := customerID(c)
	if !valid {
		return fail(c, fiber.StatusNotFound, "Customer not found")
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := ValidateRequest(in); errs != nil {
		return failValidation(c, errs)
	}
	customer, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return okMessage(c, fiber.StatusOK, "Customer updated successfully", fiber.Map{"customer": customer})
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, valid := customerID(c)
	if !valid {
		return fail(c, fiber.StatusNotFound, "Customer not found")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return h.mapError(c, err)
	}
	return okMessage(c, fiber.StatusOK, "Customer deleted successfully", nil)
}

// mapError traduce errores de dominio a respuestas HTTP; lo demás sube al
// error handler global sin filtrar detalles internos.
func (h *CustomerHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return fail(c, fiber.StatusNotFound, "Customer not found")
	case errors.Is(err, domain.ErrCustomerHasInvoices):
		return fail(c, fiber.StatusBadRequest, "Cannot delete customer with existing invoices")
	default:
		return err
	}
}
