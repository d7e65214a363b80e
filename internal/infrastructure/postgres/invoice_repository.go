package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dahill/invoice-api/internal/domain"
	"github.com/dahill/invoice-api/internal/domain/entity"
	"github.com/dahill/invoice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `i.id, i.date, i.description, i.amount, COALESCE(i.note, ''),
	i.customer_id, i.created_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// invoiceWhere traduce el filtro a un WHERE parametrizado. Las consultas de
// listado siempre llevan el JOIN a customers, así el search puede alcanzar el
// nombre del cliente a través de la relación.
func invoiceWhere(f repository.InvoiceFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(i.description ILIKE $%d OR i.note ILIKE $%d OR c.name ILIKE $%d)",
			len(args), len(args), len(args)))
	}
	if f.CustomerID > 0 {
		args = append(args, f.CustomerID)
		conds = append(conds, fmt.Sprintf("i.customer_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}

// Create persiste la factura y completa ID y CreatedAt.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (date, description, amount, note, customer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		inv.Date, inv.Description, inv.Amount, nullIfEmpty(inv.Note), inv.CustomerID,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID, sin el cliente. (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Date, &inv.Description, &inv.Amount, &inv.Note, &inv.CustomerID, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetByIDWithCustomer obtiene la factura con el registro completo del cliente.
func (r *InvoiceRepo) GetByIDWithCustomer(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `,
			c.id, c.name, COALESCE(c.address, ''), COALESCE(c.phone, ''),
			COALESCE(c.email, ''), COALESCE(c.job_location, ''), c.created_at
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.id = $1`
	var inv entity.Invoice
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Date, &inv.Description, &inv.Amount, &inv.Note, &inv.CustomerID, &inv.CreatedAt,
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.JobLocation, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice with customer: %w", err)
	}
	inv.Customer = &c
	return &inv, nil
}

// List devuelve una página de facturas ordenada por fecha descendente, cada
// una con el resumen del cliente {ID, Name, Email, Phone}.
func (r *InvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, error) {
	where, args := invoiceWhere(f)
	query := fmt.Sprintf(`
		SELECT `+invoiceColumns+`,
			c.id, c.name, COALESCE(c.email, ''), COALESCE(c.phone, '')
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id%s
		ORDER BY i.date DESC, i.id LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var c entity.Customer
		if err := rows.Scan(
			&inv.ID, &inv.Date, &inv.Description, &inv.Amount, &inv.Note, &inv.CustomerID, &inv.CreatedAt,
			&c.ID, &c.Name, &c.Email, &c.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.Customer = &c
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Count cuenta las facturas que matchean el filtro. Lleva el mismo JOIN que
// List para que el search por nombre de cliente cuente igual que lista.
func (r *InvoiceRepo) Count(ctx context.Context, f repository.InvoiceFilter) (int64, error) {
	where, args := invoiceWhere(f)
	query := `SELECT COUNT(*) FROM invoices i JOIN customers c ON c.id = i.customer_id` + where
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return total, nil
}

// CountByCustomer cuenta las facturas de un cliente.
func (r *InvoiceRepo) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE customer_id = $1`, customerID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count invoices by customer: %w", err)
	}
	return total, nil
}

// SumAmount suma los montos de todas las facturas; cero si no hay ninguna.
func (r *InvoiceRepo) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM invoices`).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum invoice amounts: %w", err)
	}
	return sum, nil
}

// ListRecent devuelve las n facturas más recientes, cada una solo con el
// nombre del cliente.
func (r *InvoiceRepo) ListRecent(ctx context.Context, n int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `, c.name
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC, i.id LIMIT $1`
	rows, err := r.q.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("list recent invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var c entity.Customer
		if err := rows.Scan(
			&inv.ID, &inv.Date, &inv.Description, &inv.Amount, &inv.Note, &inv.CustomerID, &inv.CreatedAt,
			&c.Name,
		); err != nil {
			return nil, fmt.Errorf("scan recent invoice: %w", err)
		}
		inv.Customer = &c
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos escribibles de la factura.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET date = $2, description = $3, amount = $4, note = $5, customer_id = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.Date, inv.Description, inv.Amount, nullIfEmpty(inv.Note), inv.CustomerID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// Delete elimina una factura por ID. Las facturas son hoja: no hay guard.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
