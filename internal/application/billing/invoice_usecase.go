package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dahill/invoice-api/internal/application/dto"
	"github.com/dahill/invoice-api/internal/domain"
	"github.com/dahill/invoice-api/internal/domain/entity"
	"github.com/dahill/invoice-api/internal/domain/repository"
)

const recentInvoicesCount = 5 // facturas en el widget de estadísticas

// InvoiceUseCase casos de uso CRUD y estadísticas de facturas. Resuelve
// CustomerID contra el repositorio de clientes en cada escritura.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, customers repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, customers: customers}
}

// parseInvoiceDate acepta fecha calendario ISO (2024-01-15) o timestamp
// RFC 3339. La compuerta de validación ya rechazó otros formatos.
func parseInvoiceDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// List devuelve una página de facturas, cada una con el resumen de su
// cliente. customerID > 0 restringe a un solo cliente. Página y total se
// consultan en paralelo.
func (uc *InvoiceUseCase) List(ctx context.Context, page, limit int, search string, customerID int64) (*dto.InvoiceListResponse, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit
	filter := repository.InvoiceFilter{Search: search, CustomerID: customerID}

	type listResult struct {
		items []*entity.Invoice
		err   error
	}
	type countResult struct {
		total int64
		err   error
	}
	listCh := make(chan listResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		items, err := uc.invoices.List(ctx, filter, limit, offset)
		listCh <- listResult{items, err}
	}()
	go func() {
		total, err := uc.invoices.Count(ctx, filter)
		countCh <- countResult{total, err}
	}()

	lr := <-listCh
	cr := <-countCh
	if lr.err != nil {
		return nil, lr.err
	}
	if cr.err != nil {
		return nil, cr.err
	}

	invoices := make([]dto.InvoiceResponse, 0, len(lr.items))
	for _, inv := range lr.items {
		out := toInvoiceResponse(inv)
		if inv.Customer != nil {
			out.Customer = toCustomerSummary(inv.Customer)
		}
		invoices = append(invoices, out)
	}
	return &dto.InvoiceListResponse{
		Invoices:   invoices,
		Pagination: dto.NewPagination(page, limit, cr.total),
	}, nil
}

// GetByID devuelve la factura con el registro completo del cliente.
// ErrInvoiceNotFound si el id no resuelve.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByIDWithCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	out := toInvoiceResponse(inv)
	if inv.Customer != nil {
		full := toCustomerResponse(inv.Customer)
		out.Customer = &full
	}
	return &out, nil
}

// Create crea una factura. CustomerID debe resolver a un cliente existente;
// si no, ErrCustomerNotFound (distinto del not-found de factura) y no se
// escribe nada.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	date, err := parseInvoiceDate(in.Date)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	inv := &entity.Invoice{
		Date:        date,
		Description: in.Description,
		Amount:      in.Amount,
		Note:        in.Note,
		CustomerID:  in.CustomerID,
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	out := toInvoiceResponse(inv)
	out.Customer = toCustomerSummary(customer)
	return &out, nil
}

// Update reemplaza todos los campos escribibles de la factura. CustomerID se
// revalida aunque no haya cambiado, para mantener un único camino de
// validación.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	date, err := parseInvoiceDate(in.Date)
	if err != nil {
		return nil, err
	}
	existing, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	inv := &entity.Invoice{
		ID:          id,
		Date:        date,
		Description: in.Description,
		Amount:      in.Amount,
		Note:        in.Note,
		CustomerID:  in.CustomerID,
		CreatedAt:   existing.CreatedAt, // inmutable
	}
	if err := uc.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}
	out := toInvoiceResponse(inv)
	out.Customer = toCustomerSummary(customer)
	return &out, nil
}

// Delete elimina la factura. Las facturas son hoja: una vez encontrada, la
// eliminación es incondicional.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrInvoiceNotFound
	}
	return uc.invoices.Delete(ctx, id)
}

// Stats devuelve en una sola respuesta el total de facturas, la suma de
// montos (cero si no hay facturas) y las 5 más recientes con el nombre del
// cliente. Las tres lecturas corren en paralelo; el fallo de cualquiera
// aborta el request.
func (uc *InvoiceUseCase) Stats(ctx context.Context) (*dto.InvoiceStatsResponse, error) {
	type countResult struct {
		total int64
		err   error
	}
	type sumResult struct {
		sum decimal.Decimal
		err error
	}
	type recentResult struct {
		items []*entity.Invoice
		err   error
	}
	countCh := make(chan countResult, 1)
	sumCh := make(chan sumResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		total, err := uc.invoices.Count(ctx, repository.InvoiceFilter{})
		countCh <- countResult{total, err}
	}()
	go func() {
		sum, err := uc.invoices.SumAmount(ctx)
		sumCh <- sumResult{sum, err}
	}()
	go func() {
		items, err := uc.invoices.ListRecent(ctx, recentInvoicesCount)
		recentCh <- recentResult{items, err}
	}()

	count := <-countCh
	sum := <-sumCh
	recent := <-recentCh
	if count.err != nil {
		return nil, count.err
	}
	if sum.err != nil {
		return nil, sum.err
	}
	if recent.err != nil {
		return nil, recent.err
	}

	recentOut := make([]dto.InvoiceResponse, 0, len(recent.items))
	for _, inv := range recent.items {
		out := toInvoiceResponse(inv)
		if inv.Customer != nil {
			out.Customer = &dto.CustomerResponse{Name: inv.Customer.Name}
		}
		recentOut = append(recentOut, out)
	}
	return &dto.InvoiceStatsResponse{
		TotalInvoices:  count.total,
		TotalAmount:    sum.sum,
		RecentInvoices: recentOut,
	}, nil
}
