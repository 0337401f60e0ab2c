// Package payord arma el lote de órdenes de pago: numeración DOCNUM, datos del pagador y resumen.
package payord

import (
	"fmt"
	"time"

	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// Builder asigna el DOCNUM a cada borrador en orden de emisión. Un Builder por lote.
// DOCNUM = ordinal de 2 dígitos (1-based) + HHMM del momento de construcción.
type Builder struct {
	payer  entity.Payer
	stamp  string
	next   int
	orders []entity.PaymentOrder
}

// NewBuilder crea el builder del lote; now fija el sufijo HHMM para todas las órdenes.
func NewBuilder(payer entity.Payer, now time.Time) *Builder {
	return &Builder{payer: payer, stamp: now.Format("1504"), next: 1}
}

// Emit crea la orden final a partir del borrador y avanza el contador.
func (b *Builder) Emit(d entity.PaymentDraft) entity.PaymentOrder {
	o := entity.PaymentOrder{
		SequenceID:         fmt.Sprintf("%02d%s", b.next, b.stamp),
		PayerAccount:       b.payer.Account,
		PayerTaxCode:       b.payer.TaxCode,
		BeneficiaryAccount: d.BeneficiaryAccount,
		BeneficiaryName:    d.BeneficiaryName,
		Amount:             d.Amount,
		Currency:           taxservice.CurrencyAMD,
		Details:            d.Details,
		InvoiceNumbers:     d.InvoiceNumbers,
	}
	b.next++
	b.orders = append(b.orders, o)
	return o
}

// Orders devuelve las órdenes emitidas hasta el momento (copia).
func (b *Builder) Orders() []entity.PaymentOrder {
	out := make([]entity.PaymentOrder, len(b.orders))
	copy(out, b.orders)
	return out
}
