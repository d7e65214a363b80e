package entity

import "time"

// Customer representa un cliente de la empresa. Es el padre de la relación
// uno-a-muchos con Invoice: un cliente no puede eliminarse mientras tenga
// facturas asociadas.
type Customer struct {
	ID          int64
	Name        string
	Address     string // opcional
	Phone       string // opcional
	Email       string // opcional
	JobLocation string // opcional
	CreatedAt   time.Time

	// Invoices se carga solo cuando la consulta lo pide (proyección);
	// en listados llega con {ID, Amount, Date}, en el detalle completo.
	Invoices []*Invoice
}
