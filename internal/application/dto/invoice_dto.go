package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRequest body para POST y PUT /api/invoices. Date acepta fecha
// calendario ISO (2024-01-15) o timestamp RFC 3339; Amount acepta número o
// string y debe ser positivo.
type InvoiceRequest struct {
	Date        string          `json:"date" validate:"required,isodate"`
	Description string          `json:"description" validate:"required,min=5,max=500"`
	Amount      decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Note        string          `json:"note" validate:"omitempty,max=1000"`
	CustomerID  int64           `json:"customerId" validate:"required,min=1"`
}

// InvoiceResponse factura en respuestas. Según la proyección: el resumen
// dentro de un cliente listado solo llena {ID, Amount, Date}; en listados de
// facturas Customer es el resumen {id, name, email, phone}; en el detalle es
// el registro completo.
type InvoiceResponse struct {
	ID          int64             `json:"id"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	Note        string            `json:"note,omitempty"`
	CustomerID  int64             `json:"customerId,omitzero"`
	CreatedAt   time.Time         `json:"createdAt,omitzero"`
	Customer    *CustomerResponse `json:"customer,omitempty"`
}

// InvoiceListResponse data de GET /api/invoices.
type InvoiceListResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Pagination Pagination        `json:"pagination"`
}

// InvoiceStatsResponse data de GET /api/invoices/stats.
type InvoiceStatsResponse struct {
	TotalInvoices  int64             `json:"totalInvoices"`
	TotalAmount    decimal.Decimal   `json:"totalAmount"`
	RecentInvoices []InvoiceResponse `json:"recentInvoices"`
}
