package repository

import (
	"context"

	"github.com/dahill/invoice-api/internal/domain/entity"
)

// CustomerFilter es el predicado estructurado para listados de clientes.
// Search aplica un match de substring case-insensitive sobre
// {name, email, phone} combinado con OR.
type CustomerFilter struct {
	Search string
}

// CustomerRepository define el puerto de persistencia para Customer.
// Los métodos GetBy* devuelven (nil, nil) cuando no hay fila; el caso de uso
// decide si eso es un NotFound.
type CustomerRepository interface {
	// Create persiste el cliente y completa ID y CreatedAt.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID carga el cliente sin relaciones.
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// GetByIDWithInvoices carga el cliente con todas sus facturas
	// ordenadas por fecha descendente.
	GetByIDWithInvoices(ctx context.Context, id int64) (*entity.Customer, error)
	// List devuelve una página ordenada por created_at descendente (empates
	// por orden de inserción); cada cliente trae el resumen de sus facturas
	// {ID, Amount, Date}.
	List(ctx context.Context, filter CustomerFilter, limit, offset int) ([]*entity.Customer, error)
	// Count cuenta las filas que matchean el filtro.
	Count(ctx context.Context, filter CustomerFilter) (int64, error)
	// Update reemplaza todos los campos escribibles del cliente.
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}
