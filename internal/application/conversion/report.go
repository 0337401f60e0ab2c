package conversion

import (
	"time"

	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/internal/domain/payord"
)

// Report datos de un lote listos para los generadores de reporte.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Payer       entity.Payer
	BuyerTIN    string
	Mismatch    bool
	Warning     string
	Orders      []entity.PaymentOrder
	Summary     payord.Summary
}

// SummaryLine resumen listo para mostrar: "3 pagos, 1,234.50 AMD".
func (r *Report) SummaryLine() string {
	return SummaryLine(r.Summary)
}
