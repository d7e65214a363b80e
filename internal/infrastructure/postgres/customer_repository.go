package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dahill/invoice-api/internal/domain"
	"github.com/dahill/invoice-api/internal/domain/entity"
	"github.com/dahill/invoice-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, COALESCE(address, ''), COALESCE(phone, ''),
	COALESCE(email, ''), COALESCE(job_location, ''), created_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// customerWhere traduce el filtro a un WHERE parametrizado. El search es un
// substring case-insensitive combinado con OR sobre name, email y phone.
func customerWhere(f repository.CustomerFilter) (string, []any) {
	if f.Search == "" {
		return "", nil
	}
	pattern := "%" + f.Search + "%"
	return " WHERE (name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1)", []any{pattern}
}

// Create persiste un nuevo cliente y completa ID y CreatedAt.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, address, phone, email, job_location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		c.Name, nullIfEmpty(c.Address), nullIfEmpty(c.Phone), nullIfEmpty(c.Email), nullIfEmpty(c.JobLocation),
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, sin relaciones. (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.JobLocation, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByIDWithInvoices obtiene el cliente con todas sus facturas ordenadas por
// fecha descendente (empates por orden de inserción).
func (r *CustomerRepo) GetByIDWithInvoices(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	query := `
		SELECT id, date, description, amount, COALESCE(note, ''), customer_id, created_at
		FROM invoices WHERE customer_id = $1
		ORDER BY date DESC, id`
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list customer invoices: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.Date, &inv.Description, &inv.Amount, &inv.Note, &inv.CustomerID, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		c.Invoices = append(c.Invoices, &inv)
	}
	return c, rows.Err()
}

// List devuelve una página de clientes ordenada por created_at descendente.
// Cada cliente trae el resumen de sus facturas {ID, Amount, Date}.
func (r *CustomerRepo) List(ctx context.Context, f repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	where, args := customerWhere(f)
	query := fmt.Sprintf(`SELECT `+customerColumns+` FROM customers%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	byID := make(map[int64]*entity.Customer)
	var ids []int64
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.JobLocation, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
		byID[c.ID] = &c
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.attachInvoiceSummaries(ctx, byID, ids); err != nil {
		return nil, err
	}
	return list, nil
}

// attachInvoiceSummaries carga la proyección {ID, Amount, Date} de las
// facturas de la página en una sola consulta.
func (r *CustomerRepo) attachInvoiceSummaries(ctx context.Context, byID map[int64]*entity.Customer, ids []int64) error {
	query := `
		SELECT id, customer_id, amount, date
		FROM invoices WHERE customer_id = ANY($1)
		ORDER BY date DESC, id`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("list invoice summaries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Date); err != nil {
			return fmt.Errorf("scan invoice summary: %w", err)
		}
		if c, ok := byID[inv.CustomerID]; ok {
			c.Invoices = append(c.Invoices, &inv)
		}
	}
	return rows.Err()
}

// Count cuenta los clientes que matchean el filtro.
func (r *CustomerRepo) Count(ctx context.Context, f repository.CustomerFilter) (int64, error) {
	where, args := customerWhere(f)
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// Update reemplaza todos los campos escribibles del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, address = $3, phone = $4, email = $5, job_location = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, nullIfEmpty(c.Address), nullIfEmpty(c.Phone), nullIfEmpty(c.Email), nullIfEmpty(c.JobLocation),
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. La FK de invoices actúa como respaldo del
// guard de integridad referencial del caso de uso.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerHasInvoices
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
