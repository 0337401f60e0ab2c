package payord

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/pkg/money"
)

// Summary cantidad de pagos y suma de sus montos, derivados solo de las órdenes emitidas.
type Summary struct {
	Count int
	Total decimal.Decimal
}

// Summarize recalcula el resumen leyendo de vuelta el AMOUNT de cada orden.
func Summarize(orders []entity.PaymentOrder) Summary {
	total := decimal.Zero
	for _, o := range orders {
		d, err := decimal.NewFromString(o.Amount)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	return Summary{Count: len(orders), Total: total}
}

// TotalDisplay total con separador de miles, ej: "1,234.50".
func (s Summary) TotalDisplay() string {
	return money.FormatDisplay(s.Total)
}
