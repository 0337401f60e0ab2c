package entity

// PaymentDraft es una orden de pago producida por el motor de compensación o por el motor de reglas,
// aún sin número de documento ni datos del pagador.
type PaymentDraft struct {
	BeneficiaryAccount string
	BeneficiaryName    string
	Amount             string // monto ya formateado
	Details            string
	InvoiceNumbers     []string // facturas de origen referenciadas por Details
}

// PaymentOrder es la orden de pago final del archivo bancario. La crea el Builder y no se modifica.
type PaymentOrder struct {
	SequenceID         string // DOCNUM
	PayerAccount       string
	PayerTaxCode       string
	BeneficiaryAccount string
	BeneficiaryName    string
	Amount             string
	Currency           string
	Details            string
	InvoiceNumbers     []string
}
