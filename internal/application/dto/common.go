package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como número JSON (2500.00), no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Response es el sobre estándar de la API: {success, message?, data?, errors?}.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError es una violación de validación (campo, mensaje).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination metadatos de página en respuestas de listado.
// Pages = ceil(Total/Limit).
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination calcula el bloque de paginación con techo entero.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
