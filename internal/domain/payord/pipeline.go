package payord

import (
	"time"

	"github.com/jhoicas/payord-api/internal/domain/details"
	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/internal/domain/netting"
	"github.com/jhoicas/payord-api/pkg/money"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// Batch resultado de procesar un lote de facturas.
type Batch struct {
	Orders  []entity.PaymentOrder
	Groups  []netting.Group
	Summary Summary
}

// Pipeline ejecuta compensación → reglas DETAILS → numeración → resumen sobre un lote.
// No guarda estado entre ejecuciones: el conjunto de consumidas y el contador son de cada Run.
type Pipeline struct {
	netting *netting.Engine
	rules   *details.Registry
}

// NewPipeline construye el pipeline con sus motores.
func NewPipeline(engine *netting.Engine, rules *details.Registry) *Pipeline {
	return &Pipeline{netting: engine, rules: rules}
}

// Run procesa el lote. La compensación termina completa antes de empezar el paso ordinario.
func (p *Pipeline) Run(records []entity.InvoiceRecord, payer entity.Payer, now time.Time) Batch {
	records = withDocumentIndex(records)
	consumed := netting.NewConsumedSet()
	builder := NewBuilder(payer, now)

	netted := p.netting.Run(records, consumed)
	for _, d := range netted.Drafts {
		builder.Emit(d)
	}

	for _, inv := range records {
		if consumed.Has(inv.Index) {
			continue
		}
		builder.Emit(p.ordinaryDraft(inv))
	}

	orders := builder.Orders()
	return Batch{
		Orders:  orders,
		Groups:  netted.Groups,
		Summary: Summarize(orders),
	}
}

// ordinaryDraft paga la factura completa. El nombre del proveedor va sin limpiar y el monto truncado a un decimal.
func (p *Pipeline) ordinaryDraft(inv entity.InvoiceRecord) entity.PaymentDraft {
	return entity.PaymentDraft{
		BeneficiaryAccount: taxservice.CleanBankAccount(inv.SupplierBankAccount),
		BeneficiaryName:    inv.SupplierName,
		Amount:             money.FormatTruncated(inv.TotalText),
		Details:            p.rules.Details(inv),
		InvoiceNumbers:     []string{inv.InvoiceNumber()},
	}
}

// withDocumentIndex copia el lote fijando Index a la posición en el documento.
func withDocumentIndex(records []entity.InvoiceRecord) []entity.InvoiceRecord {
	out := make([]entity.InvoiceRecord, len(records))
	for i, r := range records {
		r.Index = i
		out[i] = r
	}
	return out
}
