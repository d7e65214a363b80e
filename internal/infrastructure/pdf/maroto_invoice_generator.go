// Package pdf implementa el documento descargable de una factura usando
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: INVOICE #<id>  │  Fecha de la factura              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Dirección / Tel / Email / Job Location    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Descripción + Monto + Nota                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Generated on <fecha>                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dahill/invoice-api/internal/application/billing"
	"github.com/dahill/invoice-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// amountPrinter formatea montos con separador de miles ($2,500.00).
var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// MarotoInvoiceGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct {
	// Now se inyecta en tests para que el footer sea determinista.
	Now func() string
}

// NewMarotoInvoiceGenerator construye el generador.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator {
	return &MarotoInvoiceGenerator{}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. La factura debe
// traer el cliente completo cargado.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.Invoice) ([]byte, error) {
	if invoice.Customer == nil {
		return nil, fmt.Errorf("pdf: la factura no trae el cliente cargado")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Invoice #%d", invoice.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRows(invoice.Customer)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(invoice)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(g.now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoInvoiceGenerator) now() string {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now().Format("Jan 2, 2006")
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: INVOICE #<id> (izq) y fecha de la factura (der).
func headerRow(invoice *entity.Invoice) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(fmt.Sprintf("INVOICE #%d", invoice.ID), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Date: "+invoice.Date.Format("Jan 2, 2006"), props.Text{
				Size: 10, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// customerRows bloque del cliente, N/A para los campos opcionales vacíos.
func customerRows(c *entity.Customer) []core.Row {
	return []core.Row{
		labelValueRow("Customer", c.Name),
		labelValueRow("Address", orNA(c.Address)),
		labelValueRow("Phone", orNA(c.Phone)),
		labelValueRow("Email", orNA(c.Email)),
		labelValueRow("Job Location", orNA(c.JobLocation)),
	}
}

// detailRows descripción, monto y nota de la factura.
func detailRows(inv *entity.Invoice) []core.Row {
	amount, _ := inv.Amount.Float64()
	return []core.Row{
		labelValueRow("Description", inv.Description),
		row.New(8).Add(
			col.New(3).Add(text.New("Amount:", props.Text{Style: fontstyle.Bold, Size: 10})),
			col.New(9).Add(text.New(amountPrinter.Sprintf("$%.2f", amount), props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary,
			})),
		),
		labelValueRow("Note", orNA(inv.Note)),
	}
}

func footerRow(generatedOn string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Generated on: "+generatedOn, props.Text{Size: 8, Color: colorGray}),
		),
	)
}

func labelValueRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(3).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(9).Add(text.New(value, props.Text{Size: 9})),
	)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
