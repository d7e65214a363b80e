package billing

import (
	"context"

	"github.com/dahill/invoice-api/internal/application/dto"
	"github.com/dahill/invoice-api/internal/domain"
	"github.com/dahill/invoice-api/internal/domain/entity"
	"github.com/dahill/invoice-api/internal/domain/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePage coerciona page y limit a enteros positivos antes de usarlos:
// page inválido cae a 1, limit inválido cae al default y se acota al máximo.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// CustomerUseCase casos de uso CRUD de clientes. Necesita el repositorio de
// facturas para el guard de integridad referencial del delete.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, invoices: invoices}
}

// List devuelve una página de clientes con sus resúmenes de factura y el
// bloque de paginación. La página y el conteo total se consultan en paralelo;
// el fallo de cualquiera aborta el request.
func (uc *CustomerUseCase) List(ctx context.Context, page, limit int, search string) (*dto.CustomerListResponse, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit
	filter := repository.CustomerFilter{Search: search}

	type listResult struct {
		items []*entity.Customer
		err   error
	}
	type countResult struct {
		total int64
		err   error
	}
	listCh := make(chan listResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		items, err := uc.customers.List(ctx, filter, limit, offset)
		listCh <- listResult{items, err}
	}()
	go func() {
		total, err := uc.customers.Count(ctx, filter)
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

	customers := make([]dto.CustomerResponse, 0, len(lr.items))
	for _, c := range lr.items {
		out := toCustomerResponse(c)
		out.Invoices = make([]dto.InvoiceResponse, 0, len(c.Invoices))
		for _, inv := range c.Invoices {
			out.Invoices = append(out.Invoices, toInvoiceSummary(inv))
		}
		customers = append(customers, out)
	}
	return &dto.CustomerListResponse{
		Customers:  customers,
		Pagination: dto.NewPagination(page, limit, cr.total),
	}, nil
}

// GetByID devuelve el cliente con todas sus facturas ordenadas por fecha
// descendente. ErrCustomerNotFound si el id no resuelve.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByIDWithInvoices(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	out := toCustomerResponse(c)
	out.Invoices = make([]dto.InvoiceResponse, 0, len(c.Invoices))
	for _, inv := range c.Invoices {
		out.Invoices = append(out.Invoices, toInvoiceResponse(inv))
	}
	return &out, nil
}

// Create crea un cliente. La validación de campos ya ocurrió en la compuerta
// de entrada; aquí solo se persiste.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c := &entity.Customer{
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		JobLocation: in.JobLocation,
	}
	if err := uc.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// Update reemplaza todos los campos escribibles del cliente (sin merge
// parcial). ErrCustomerNotFound si el id no resuelve.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrCustomerNotFound
	}
	c := &entity.Customer{
		ID:          id,
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		JobLocation: in.JobLocation,
		CreatedAt:   existing.CreatedAt, // inmutable
	}
	if err := uc.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// Delete elimina un cliente. Falla con ErrCustomerHasInvoices mientras el
// cliente tenga al menos una factura: el guard se aplica en el servicio, no
// se delega al cascade de la base.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrCustomerNotFound
	}
	owned, err := uc.invoices.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if owned > 0 {
		return domain.ErrCustomerHasInvoices
	}
	return uc.customers.Delete(ctx, id)
}
