package entity

// Payer identidad del pagador del lote (cuenta y código tributario).
type Payer struct {
	Name    string
	Account string
	TaxCode string
}
