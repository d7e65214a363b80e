package billing

import (
	"context"

	"github.com/dahill/invoice-api/internal/domain/entity"
)

// InvoicePDFGenerator genera el documento descargable de una factura. La
// factura llega con el registro completo del cliente cargado. El contrato
// observable es el layout de campos; la codificación concreta (Maroto hoy)
// es reemplazable.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}
