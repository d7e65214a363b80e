package billing

import (
	"context"
	"fmt"

	"github.com/dahill/invoice-api/internal/domain"
	"github.com/dahill/invoice-api/internal/domain/repository"
)

// PDFUseCase genera el documento descargable de una factura.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoices repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, generator: generator}
}

// DownloadInvoicePDF carga la factura con su cliente y genera el PDF.
//
// Retorna:
//   - (pdfBytes, "invoice-<id>.pdf", nil) si todo sale bien.
//   - domain.ErrInvoiceNotFound si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, id int64) ([]byte, string, error) {
	inv, err := uc.invoices.GetByIDWithCustomer(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrInvoiceNotFound
	}
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice-%d.pdf", inv.ID), nil
}
