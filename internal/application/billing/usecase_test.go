package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dahill/invoice-api/internal/application/dto"
	"github.com/dahill/invoice-api/internal/domain"
	"github.com/dahill/invoice-api/internal/domain/entity"
	"github.com/dahill/invoice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorio: cada método delega en un campo función, lo que permite
// armar solo el comportamiento que el caso necesita.
// ──────────────────────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	create             func(ctx context.Context, c *entity.Customer) error
	getByID            func(ctx context.Context, id int64) (*entity.Customer, error)
	getByIDWithInvoice func(ctx context.Context, id int64) (*entity.Customer, error)
	list               func(ctx context.Context, f repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error)
	count              func(ctx context.Context, f repository.CustomerFilter) (int64, error)
	update             func(ctx context.Context, c *entity.Customer) error
	delete             func(ctx context.Context, id int64) error
}

func (s *stubCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	return s.create(ctx, c)
}
func (s *stubCustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	return s.getByID(ctx, id)
}
func (s *stubCustomerRepo) GetByIDWithInvoices(ctx context.Context, id int64) (*entity.Customer, error) {
	return s.getByIDWithInvoice(ctx, id)
}
func (s *stubCustomerRepo) List(ctx context.Context, f repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
	return s.list(ctx, f, limit, offset)
}
func (s *stubCustomerRepo) Count(ctx context.Context, f repository.CustomerFilter) (int64, error) {
	return s.count(ctx, f)
}
func (s *stubCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	return s.update(ctx, c)
}
func (s *stubCustomerRepo) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

type stubInvoiceRepo struct {
	create             func(ctx context.Context, inv *entity.Invoice) error
	getByID            func(ctx context.Context, id int64) (*entity.Invoice, error)
	getByIDWithCliente func(ctx context.Context, id int64) (*entity.Invoice, error)
	list               func(ctx context.Context, f repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, error)
	count              func(ctx context.Context, f repository.InvoiceFilter) (int64, error)
	countByCustomer    func(ctx context.Context, customerID int64) (int64, error)
	sumAmount          func(ctx context.Context) (decimal.Decimal, error)
	listRecent         func(ctx context.Context, n int) ([]*entity.Invoice, error)
	update             func(ctx context.Context, inv *entity.Invoice) error
	delete             func(ctx context.Context, id int64) error
}

func (s *stubInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	return s.create(ctx, inv)
}
func (s *stubInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	return s.getByID(ctx, id)
}
func (s *stubInvoiceRepo) GetByIDWithCustomer(ctx context.Context, id int64) (*entity.Invoice, error) {
	return s.getByIDWithCliente(ctx, id)
}
func (s *stubInvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, error) {
	return s.list(ctx, f, limit, offset)
}
func (s *stubInvoiceRepo) Count(ctx context.Context, f repository.InvoiceFilter) (int64, error) {
	return s.count(ctx, f)
}
func (s *stubInvoiceRepo) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	return s.countByCustomer(ctx, customerID)
}
func (s *stubInvoiceRepo) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	return s.sumAmount(ctx)
}
func (s *stubInvoiceRepo) ListRecent(ctx context.Context, n int) ([]*entity.Invoice, error) {
	return s.listRecent(ctx, n)
}
func (s *stubInvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	return s.update(ctx, inv)
}
func (s *stubInvoiceRepo) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

// ── normalizePage ─────────────────────────────────────────────────────────────

func TestNormalizePage_CoercionDeValores(t *testing.T) {
	cases := []struct {
		nombre              string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"valores validos se respetan", 3, 25, 3, 25},
		{"page cero cae a 1", 0, 10, 1, 10},
		{"page negativo cae a 1", -5, 10, 1, 10},
		{"limit cero cae al default", 1, 0, 1, 10},
		{"limit negativo cae al default", 1, -1, 1, 10},
		{"limit excesivo se acota al maximo", 1, 5000, 1, 100},
		{"limit en el maximo pasa intacto", 1, 100, 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			page, limit := normalizePage(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

// ── parseInvoiceDate ──────────────────────────────────────────────────────────

func TestParseInvoiceDate_Formatos(t *testing.T) {
	d, err := parseInvoiceDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = parseInvoiceDate("2024-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = parseInvoiceDate("15/01/2024")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Guard de integridad referencial en el delete de Customer ──────────────────

func TestCustomerDelete_ConFacturas_FallaSinTocarElRepo(t *testing.T) {
	deleted := false
	customers := &stubCustomerRepo{
		getByID: func(_ context.Context, id int64) (*entity.Customer, error) {
			return &entity.Customer{ID: id, Name: "John Smith"}, nil
		},
		delete: func(_ context.Context, _ int64) error {
			deleted = true
			return nil
		},
	}
	invoices := &stubInvoiceRepo{
		countByCustomer: func(_ context.Context, _ int64) (int64, error) { return 3, nil },
	}

	uc := NewCustomerUseCase(customers, invoices)
	err := uc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrCustomerHasInvoices)
	assert.False(t, deleted, "el delete nunca debe llegar al repositorio con facturas vivas")
}

func TestCustomerDelete_SinFacturas_Procede(t *testing.T) {
	deleted := false
	customers := &stubCustomerRepo{
		getByID: func(_ context.Context, id int64) (*entity.Customer, error) {
			return &entity.Customer{ID: id, Name: "John Smith"}, nil
		},
		delete: func(_ context.Context, _ int64) error {
			deleted = true
			return nil
		},
	}
	invoices := &stubInvoiceRepo{
		countByCustomer: func(_ context.Context, _ int64) (int64, error) { return 0, nil },
	}

	uc := NewCustomerUseCase(customers, invoices)
	require.NoError(t, uc.Delete(context.Background(), 1))
	assert.True(t, deleted)
}

func TestCustomerDelete_Inexistente_RetornaNotFound(t *testing.T) {
	customers := &stubCustomerRepo{
		getByID: func(_ context.Context, _ int64) (*entity.Customer, error) { return nil, nil },
	}
	uc := NewCustomerUseCase(customers, &stubInvoiceRepo{})
	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// ── Invoice writes revalidan el cliente ───────────────────────────────────────

func TestInvoiceCreate_ClienteInexistente_NoEscribe(t *testing.T) {
	created := false
	customers := &stubCustomerRepo{
		getByID: func(_ context.Context, _ int64) (*entity.Customer, error) { return nil, nil },
	}
	invoices := &stubInvoiceRepo{
		create: func(_ context.Context, _ *entity.Invoice) error {
			created = true
			return nil
		},
	}

	uc := NewInvoiceUseCase(invoices, customers)
	_, err := uc.Create(context.Background(), validInvoiceInput())

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.False(t, created, "nada debe escribirse cuando el cliente no resuelve")
}

func TestInvoiceUpdate_PreservaCreatedAt(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var saved *entity.Invoice
	customers := &stubCustomerRepo{
		getByID: func(_ context.Context, id int64) (*entity.Customer, error) {
			return &entity.Customer{ID: id, Name: "John Smith"}, nil
		},
	}
	invoices := &stubInvoiceRepo{
		getByID: func(_ context.Context, id int64) (*entity.Invoice, error) {
			return &entity.Invoice{ID: id, CreatedAt: createdAt}, nil
		},
		update: func(_ context.Context, inv *entity.Invoice) error {
			saved = inv
			return nil
		},
	}

	uc := NewInvoiceUseCase(invoices, customers)
	_, err := uc.Update(context.Background(), 7, validInvoiceInput())

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, createdAt, saved.CreatedAt, "CreatedAt no cambia en updates")
	assert.Equal(t, int64(7), saved.ID)
}

// ── Stats: fan-out paralelo y propagación de errores ──────────────────────────

func TestStats_AgregaLasTresLecturas(t *testing.T) {
	invoices := &stubInvoiceRepo{
		count: func(_ context.Context, _ repository.InvoiceFilter) (int64, error) { return 6, nil },
		sumAmount: func(_ context.Context) (decimal.Decimal, error) {
			return decimal.NewFromFloat(10450.75), nil
		},
		listRecent: func(_ context.Context, n int) ([]*entity.Invoice, error) {
			assert.Equal(t, 5, n)
			return []*entity.Invoice{
				{ID: 6, Description: "Quarterly report design", Customer: &entity.Customer{Name: "Sarah Johnson"}},
			}, nil
		},
	}

	uc := NewInvoiceUseCase(invoices, &stubCustomerRepo{})
	stats, err := uc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalInvoices)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromFloat(10450.75)))
	require.Len(t, stats.RecentInvoices, 1)
	require.NotNil(t, stats.RecentInvoices[0].Customer)
	assert.Equal(t, "Sarah Johnson", stats.RecentInvoices[0].Customer.Name)
}

func TestStats_FalloDeCualquierLectura_AbortaElRequest(t *testing.T) {
	boom := errors.New("conexion perdida")
	invoices := &stubInvoiceRepo{
		count: func(_ context.Context, _ repository.InvoiceFilter) (int64, error) { return 0, nil },
		sumAmount: func(_ context.Context) (decimal.Decimal, error) {
			return decimal.Zero, boom
		},
		listRecent: func(_ context.Context, _ int) ([]*entity.Invoice, error) { return nil, nil },
	}

	uc := NewInvoiceUseCase(invoices, &stubCustomerRepo{})
	_, err := uc.Stats(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ── List: paralelismo de página y conteo ──────────────────────────────────────

func TestCustomerList_PaginacionCalculada(t *testing.T) {
	invoices := &stubInvoiceRepo{}
	customers := &stubCustomerRepo{
		list: func(_ context.Context, f repository.CustomerFilter, limit, offset int) ([]*entity.Customer, error) {
			assert.Equal(t, "john", f.Search)
			assert.Equal(t, 5, limit)
			assert.Equal(t, 5, offset, "offset = (page-1)*limit")
			return []*entity.Customer{{ID: 6, Name: "Customer 6"}}, nil
		},
		count: func(_ context.Context, _ repository.CustomerFilter) (int64, error) { return 13, nil },
	}

	uc := NewCustomerUseCase(customers, invoices)
	out, err := uc.List(context.Background(), 2, 5, "john")

	require.NoError(t, err)
	assert.Equal(t, 2, out.Pagination.Page)
	assert.Equal(t, int64(13), out.Pagination.Total)
	assert.Equal(t, 3, out.Pagination.Pages)
	require.Len(t, out.Customers, 1)
	assert.NotNil(t, out.Customers[0].Invoices, "el listado siempre lleva el arreglo de resúmenes")
}

func validInvoiceInput() dto.InvoiceRequest {
	return dto.InvoiceRequest{
		Date:        "2024-01-15",
		Description: "Website Development Services",
		Amount:      decimal.NewFromFloat(2500.00),
		Note:        "Initial payment for website development project",
		CustomerID:  1,
	}
}
