package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura. La relación con Customer es obligatoria:
// CustomerID se revalida en cada escritura, no solo al crear.
type Invoice struct {
	ID          int64
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Note        string // opcional
	CustomerID  int64
	CreatedAt   time.Time

	// Customer se carga según la proyección de la consulta: resumen
	// {ID, Name, Email, Phone} en listados, registro completo en el detalle.
	Customer *Customer
}
