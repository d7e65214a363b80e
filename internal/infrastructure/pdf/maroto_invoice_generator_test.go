package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dahill/invoice-api/internal/domain/entity"
	"github.com/dahill/invoice-api/internal/infrastructure/pdf"
)

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:          1,
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "Website Development Services",
		Amount:      decimal.NewFromFloat(2500.00),
		Note:        "Initial payment for website development project",
		CustomerID:  1,
		Customer: &entity.Customer{
			ID:          1,
			Name:        "John Smith",
			Address:     "123 Main Street, New York, NY 10001",
			Phone:       "+1-555-0123",
			Email:       "john.smith@email.com",
			JobLocation: "Manhattan Office Building",
		},
	}
}

func TestGenerateInvoicePDF_ProduceDocumentoValido(t *testing.T) {
	g := pdf.NewMarotoInvoiceGenerator()
	g.Now = func() string { return "Jan 20, 2024" }

	doc, err := g.GenerateInvoicePDF(context.Background(), testInvoice())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")),
		"los bytes deben empezar con la firma PDF")
	assert.Greater(t, len(doc), 1000, "un documento A4 real no es trivialmente pequeño")
}

func TestGenerateInvoicePDF_CamposOpcionalesVacios(t *testing.T) {
	// Un cliente con solo nombre no debe romper el layout: los campos vacíos
	// se imprimen como N/A.
	inv := testInvoice()
	inv.Note = ""
	inv.Customer = &entity.Customer{ID: 2, Name: "Sarah Johnson"}

	g := pdf.NewMarotoInvoiceGenerator()
	doc, err := g.GenerateInvoicePDF(context.Background(), inv)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateInvoicePDF_SinCliente_RetornaError(t *testing.T) {
	inv := testInvoice()
	inv.Customer = nil

	g := pdf.NewMarotoInvoiceGenerator()
	_, err := g.GenerateInvoicePDF(context.Background(), inv)

	assert.Error(t, err, "la factura debe llegar con el cliente cargado")
}

func TestGenerateInvoicePDF_Determinista(t *testing.T) {
	// Con el reloj inyectado, el mismo input produce el mismo documento.
	g := pdf.NewMarotoInvoiceGenerator()
	g.Now = func() string { return "Jan 20, 2024" }

	doc1, err1 := g.GenerateInvoicePDF(context.Background(), testInvoice())
	doc2, err2 := g.GenerateInvoicePDF(context.Background(), testInvoice())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, len(doc1), len(doc2), "el mismo input debe producir documentos del mismo tamaño")
}
