package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dahill/invoice-api/internal/application/billing"
	"github.com/dahill/invoice-api/internal/application/dto"
	"github.com/dahill/invoice-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

func invoiceID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return int64(id), true
}

// List GET /api/invoices?page=1&limit=10&search=&customerId=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	search := c.Query("search")
	customerID := int64(c.QueryInt("customerId", 0))

	data, err := h.uc.List(c.Context(), page, limit, search, customerID)
	if err != nil {
		return err
	}
	return ok(c, data)
}

// Stats GET /api/invoices/stats
func (h *InvoiceHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return err
	}
	return ok(c, stats)
}

// GetByID GET /api/invoices/:id — detalle con el cliente completo.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, valid := invoiceID(c)
	if !valid {
		return fail(c, fiber.StatusNotFound, "Invoice not found")
	}
	invoice, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return ok(c, fiber.Map{"invoice": invoice})
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := ValidateRequest(in); errs != nil {
		return failValidation(c, errs)
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return okMessage(c, fiber.StatusCreated, "Invoice created successfully", fiber.Map{"invoice": invoice})
}

// Update PUT /api/invoices/:id — reemplazo completo; el cliente se revalida
// aunque no haya cambiado.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, valid := invoiceID(c)
	if !valid {
		return fail(c, fiber.StatusNotFound, "Invoice not found")
	}
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := ValidateRequest(in); errs != nil {
		return failValidation(c, errs)
	}
	invoice, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return okMessage(c, fiber.StatusOK, "Invoice updated successfully", fiber.Map{"invoice": invoice})
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, valid := invoiceID(c)
	if !valid {
		return fail(c, fiber.StatusNotFound, "Invoice not found")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return h.mapError(c, err)
	}
	return okMessage(c, fiber.StatusOK, "Invoice deleted successfully", nil)
}

// Download GET /api/invoices/:id/download — PDF como attachment.
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	id, valid := invoiceID(c)
	if !valid {
		return fail(c, fiber.StatusNotFound, "Invoice not found")
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(pdfBytes)
}

// mapError traduce errores de dominio a respuestas HTTP. El not-found de
// cliente y el de factura llevan mensajes distintos: el caller debe saber
// cuál de las dos entidades no resolvió.
func (h *InvoiceHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return fail(c, fiber.StatusNotFound, "Invoice not found")
	case errors.Is(err, domain.ErrCustomerNotFound):
		return fail(c, fiber.StatusNotFound, "Customer not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "Validation errors")
	default:
		return err
	}
}
