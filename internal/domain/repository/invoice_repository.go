package repository

import (
	"context"

	"github.com/dahill/invoice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceFilter es el predicado estructurado para listados de facturas.
// Search aplica substring case-insensitive sobre {description, note} y,
// a través de la relación, sobre el nombre del cliente. CustomerID > 0
// restringe a las facturas de un solo cliente.
type InvoiceFilter struct {
	Search     string
	CustomerID int64
}

// InvoiceRepository define el puerto de persistencia para Invoice, incluidas
// las agregaciones del endpoint de estadísticas.
type InvoiceRepository interface {
	// Create persiste la factura y completa ID y CreatedAt.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID carga la factura sin el cliente.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// GetByIDWithCustomer carga la factura con el registro completo del cliente.
	GetByIDWithCustomer(ctx context.Context, id int64) (*entity.Invoice, error)
	// List devuelve una página ordenada por fecha de factura descendente
	// (empates por orden de inserción); cada factura trae el resumen del
	// cliente {ID, Name, Email, Phone}.
	List(ctx context.Context, filter InvoiceFilter, limit, offset int) ([]*entity.Invoice, error)
	// Count cuenta las filas que matchean el filtro.
	Count(ctx context.Context, filter InvoiceFilter) (int64, error)
	// CountByCustomer cuenta las facturas de un cliente (guard de integridad
	// referencial del delete de Customer).
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
	// SumAmount suma el monto de todas las facturas; cero si no hay ninguna.
	SumAmount(ctx context.Context) (decimal.Decimal, error)
	// ListRecent devuelve las n facturas más recientes por fecha, cada una
	// solo con el nombre del cliente.
	ListRecent(ctx context.Context, n int) ([]*entity.Invoice, error)
	// Update reemplaza todos los campos escribibles de la factura.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id int64) error
}
