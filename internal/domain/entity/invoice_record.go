package entity

import "github.com/shopspring/decimal"

// InvoiceRecord representa una factura ya normalizada desde el documento del Servicio Tributario.
// Se construye una vez por el normalizador y no se modifica después.
type InvoiceRecord struct {
	Index               int // posición en el documento (0-based); identifica la factura dentro del lote
	SupplierTIN         string
	SupplierBankAccount string // tal cual viene (puede tener espacios de formato)
	SupplierName        string // tal cual viene (puede tener comillas decorativas)
	BuyerTIN            string
	Series              string
	Number              string
	TotalText           string          // texto original de GoodsInfo/Total/TotalPrice
	Total               decimal.Decimal // TotalText parseado; cero si no es numérico
	IsAdjustment        bool

	SupplierAdditionalData    string
	BuyerAdditionalData       string
	GeneralInfoAdditionalData string
}

// InvoiceNumber devuelve serie + número (ej: "ԱԱ12345678").
func (r InvoiceRecord) InvoiceNumber() string {
	return r.Series + r.Number
}

// SameSupplier indica si ambas facturas tienen el mismo TIN y la misma cuenta bancaria del proveedor.
func (r InvoiceRecord) SameSupplier(other InvoiceRecord) bool {
	return r.SupplierTIN == other.SupplierTIN && r.SupplierBankAccount == other.SupplierBankAccount
}

// InvoiceBatch es el documento de entrada ya normalizado.
type InvoiceBatch struct {
	BuyerTIN string // primer BuyerInfo/Taxpayer/TIN del documento (para validar el pagador)
	Records  []InvoiceRecord
}
