// Package netting implementa la compensación de facturas de ajuste contra las facturas base del mismo proveedor.
//
// Por cada factura de ajuste (en orden del documento):
//
//	candidatas = otras facturas con el mismo TIN + cuenta del proveedor (sin filtrar por tipo ni por consumidas)
//	ordenar ascendente por monto (estable)
//	mientras quede más de una y suma - menor >= ajuste: la menor pasa a remanente
//	mientras haya más de MaxNettedInvoices: la menor pasa a remanente
//	neto = suma - ajuste  → una orden agregada + una orden por cada remanente
package netting

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/pkg/money"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// Group resultado de compensar una factura de ajuste.
type Group struct {
	Adjustment entity.InvoiceRecord
	Matched    []entity.InvoiceRecord // ascendente por monto; 1..MaxNettedInvoices
	Remainder  []entity.InvoiceRecord // candidatas excluidas, se pagan completas
	Net        decimal.Decimal        // suma(Matched) - Adjustment.Total; puede ser negativo
}

// Result órdenes producidas por la compensación, en orden de emisión.
type Result struct {
	Groups []Group
	Drafts []entity.PaymentDraft
}

// Engine motor de compensación (servicio de dominio sin estado).
type Engine struct {
	maxMatched int
}

// NewEngine crea el motor con el límite de referencias por pago del banco.
func NewEngine() *Engine {
	return &Engine{maxMatched: taxservice.MaxNettedInvoices}
}

// Run compensa todas las facturas de ajuste del lote y marca en consumed las facturas participantes.
// Las candidatas se buscan sobre todo el lote: una factura marcada por un ajuste anterior sigue siendo
// candidata para los siguientes.
func (e *Engine) Run(records []entity.InvoiceRecord, consumed ConsumedSet) Result {
	var res Result
	for i := range records {
		adj := records[i]
		if !adj.IsAdjustment {
			continue
		}
		candidates := findCandidates(records, i)
		if len(candidates) == 0 {
			continue
		}
		g := e.net(adj, candidates)
		res.Groups = append(res.Groups, g)
		res.Drafts = append(res.Drafts, aggregatedDraft(g))
		for _, r := range g.Remainder {
			res.Drafts = append(res.Drafts, remainderDraft(r))
		}

		consumed.Add(adj.Index)
		for _, m := range g.Matched {
			consumed.Add(m.Index)
		}
		for _, r := range g.Remainder {
			consumed.Add(r.Index)
		}
	}
	return res
}

func findCandidates(records []entity.InvoiceRecord, adjIdx int) []entity.InvoiceRecord {
	adj := records[adjIdx]
	var out []entity.InvoiceRecord
	for j, r := range records {
		if j == adjIdx {
			continue
		}
		if r.SameSupplier(adj) {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) net(adj entity.InvoiceRecord, candidates []entity.InvoiceRecord) Group {
	matched := make([]entity.InvoiceRecord, len(candidates))
	copy(matched, candidates)
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].Total.LessThan(matched[b].Total)
	})

	sum := decimal.Zero
	for _, m := range matched {
		sum = sum.Add(m.Total)
	}

	var remainder []entity.InvoiceRecord
	for len(matched) > 1 && sum.Sub(matched[0].Total).GreaterThanOrEqual(adj.Total) {
		sum = sum.Sub(matched[0].Total)
		remainder = append(remainder, matched[0])
		matched = matched[1:]
	}
	for len(matched) > e.maxMatched {
		sum = sum.Sub(matched[0].Total)
		remainder = append(remainder, matched[0])
		matched = matched[1:]
	}

	return Group{
		Adjustment: adj,
		Matched:    matched,
		Remainder:  remainder,
		Net:        sum.Sub(adj.Total),
	}
}

// aggregatedDraft orden única por el neto: facturas compensadas + la de ajuste en DETAILS.
func aggregatedDraft(g Group) entity.PaymentDraft {
	numbers := make([]string, 0, len(g.Matched)+1)
	for _, m := range g.Matched {
		numbers = append(numbers, m.InvoiceNumber())
	}
	numbers = append(numbers, g.Adjustment.InvoiceNumber())

	first := g.Matched[0]
	return entity.PaymentDraft{
		BeneficiaryAccount: taxservice.CleanBankAccount(first.SupplierBankAccount),
		BeneficiaryName:    taxservice.StripQuoteGlyphs(first.SupplierName),
		Amount:             money.FormatFixed(g.Net),
		Details:            strings.Join(numbers, ", "),
		InvoiceNumbers:     numbers,
	}
}

func remainderDraft(r entity.InvoiceRecord) entity.PaymentDraft {
	return entity.PaymentDraft{
		BeneficiaryAccount: taxservice.CleanBankAccount(r.SupplierBankAccount),
		BeneficiaryName:    taxservice.StripQuoteGlyphs(r.SupplierName),
		Amount:             money.FormatFixed(r.Total),
		Details:            r.InvoiceNumber(),
		InvoiceNumbers:     []string{r.InvoiceNumber()},
	}
}
