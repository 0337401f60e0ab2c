package details

import (
	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// Registry tabla de reglas indexada por TIN del proveedor.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry crea un registro vacío.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry registra las reglas de las contrapartes conocidas.
// Los patrones terminan en ":" porque la referencia siempre precede a los dos puntos en el texto.
// \s de RE2 es solo ASCII; \p{Zs} cubre el espacio de no separación (U+00A0) que emite el servicio.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(taxservice.TINSupplierIndicating, NewPatternRule(SourceSupplier, `նշելով[\s\p{Zs}]*([^\s\p{Zs}]+)`))
	r.Register(taxservice.TINSubscriberCard, NewPatternRule(SourceBuyer, `(Բաժանորդի քարտի համար[\s\p{Zs}]*[0-9]+):`))
	r.Register(taxservice.TINCardNumber, NewPatternRule(SourceBuyer, `(Քարտի համար[\s\p{Zs}]*[\d-]+):`))
	r.Register(taxservice.TINGeneralInfoVerbatim, &VerbatimRule{Source: SourceGeneralInfo})
	r.Register(taxservice.TINSubscriberNumber, NewPatternRule(SourceBuyer, "(Բաժանորդի համարը`[\\s\\p{Zs}]*[0-9]+):"))
	return r
}

// Register asocia (o reemplaza) la regla de un TIN.
func (r *Registry) Register(tin string, rule Rule) {
	r.rules[tin] = rule
}

// Lookup devuelve la regla registrada para el TIN.
func (r *Registry) Lookup(tin string) (Rule, bool) {
	rule, ok := r.rules[tin]
	return rule, ok
}

// Details devuelve "<referencia>, <serie+número>" si la regla del proveedor encuentra referencia;
// en cualquier otro caso solo el número de factura.
func (r *Registry) Details(inv entity.InvoiceRecord) string {
	serial := inv.InvoiceNumber()
	rule, ok := r.rules[inv.SupplierTIN]
	if !ok {
		return serial
	}
	text, ok := rule.Locate(inv)
	if !ok {
		return serial
	}
	ref, ok := rule.Extract(text)
	if !ok {
		return serial
	}
	return ref + ", " + serial
}
