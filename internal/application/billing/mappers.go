package billing

import (
	"github.com/dahill/invoice-api/internal/application/dto"
	"github.com/dahill/invoice-api/internal/domain/entity"
)

// Mapeos entidad -> DTO. Cada proyección es un conjunto de campos con nombre:
// la forma del payload es un parámetro de la llamada, no un efecto del ORM.

// toCustomerResponse registro completo del cliente, sin facturas.
func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		JobLocation: c.JobLocation,
		CreatedAt:   c.CreatedAt,
	}
}

// toCustomerSummary proyección {id, name, email, phone} para listados de facturas.
func toCustomerSummary(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

// toInvoiceSummary proyección {id, amount, date} para clientes listados.
func toInvoiceSummary(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:     inv.ID,
		Amount: inv.Amount,
		Date:   inv.Date,
	}
}

// toInvoiceResponse todos los campos propios de la factura, sin el cliente.
func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:          inv.ID,
		Date:        inv.Date,
		Description: inv.Description,
		Amount:      inv.Amount,
		Note:        inv.Note,
		CustomerID:  inv.CustomerID,
		CreatedAt:   inv.CreatedAt,
	}
}
