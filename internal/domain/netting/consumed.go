package netting

// ConsumedSet registra las facturas (por InvoiceRecord.Index) ya cubiertas por una orden de compensación.
// La crea cada ejecución del lote y la comparten la compensación y el procesamiento ordinario.
type ConsumedSet map[int]struct{}

// NewConsumedSet crea un conjunto vacío.
func NewConsumedSet() ConsumedSet {
	return make(ConsumedSet)
}

// Add marca las facturas como consumidas.
func (s ConsumedSet) Add(indexes ...int) {
	for _, i := range indexes {
		s[i] = struct{}{}
	}
}

// Has indica si la factura ya fue consumida.
func (s ConsumedSet) Has(index int) bool {
	_, ok := s[index]
	return ok
}

// Len cantidad de facturas consumidas.
func (s ConsumedSet) Len() int { return len(s) }
