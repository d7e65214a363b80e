package domain

import "errors"

// Errores de dominio (sin dependencias externas). Customer e Invoice tienen
// su propio "not found" porque la API reporta cuál de las dos entidades no
// resolvió el id.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrCustomerHasInvoices = errors.New("cannot delete customer with existing invoices")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUserExists          = errors.New("username or email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
)
