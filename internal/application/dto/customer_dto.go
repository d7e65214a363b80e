package dto

import "time"

// CustomerRequest body para POST y PUT /api/customers. Las mismas reglas
// aplican a create y update (semántica de reemplazo completo).
type CustomerRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Address     string `json:"address" validate:"omitempty,max=500"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	JobLocation string `json:"jobLocation" validate:"omitempty,max=200"`
}

// CustomerResponse cliente en respuestas. El mismo tipo sirve para las dos
// proyecciones: el resumen dentro de una factura solo llena ID, Name, Email y
// Phone (el resto se omite con omitempty/omitzero).
type CustomerResponse struct {
	ID          int64             `json:"id,omitzero"`
	Name        string            `json:"name"`
	Address     string            `json:"address,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Email       string            `json:"email,omitempty"`
	JobLocation string            `json:"jobLocation,omitempty"`
	CreatedAt   time.Time         `json:"createdAt,omitzero"`
	Invoices    []InvoiceResponse `json:"invoices,omitempty"`
}

// CustomerListResponse data de GET /api/customers.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination Pagination         `json:"pagination"`
}
