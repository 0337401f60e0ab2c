package dto

import "github.com/shopspring/decimal"

// ConvertRequest campos del formulario multipart (además del archivo `file`).
type ConvertRequest struct {
	Payer        string `form:"payer"`
	PayerAccount string `form:"payer_account"`
	PayerTaxCode string `form:"payer_tax_code"`
}

// PaymentOrderResponse una orden de pago tal como se escribirá en el XML del banco.
type PaymentOrderResponse struct {
	DocNum             string   `json:"docnum"`
	PayerAccount       string   `json:"payer_account"`
	TaxCode            string   `json:"tax_code"`
	BeneficiaryAccount string   `json:"beneficiary_account"`
	Beneficiary        string   `json:"beneficiary"`
	Amount             string   `json:"amount"`
	Currency           string   `json:"currency"`
	Details            string   `json:"details"`
	InvoiceNumbers     []string `json:"invoice_numbers"`
}

// SummaryResponse cantidad y total de los pagos emitidos.
type SummaryResponse struct {
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

// PreviewResponse resultado de la conversión sin descargar el XML.
type PreviewResponse struct {
	RunID         string                 `json:"run_id"`
	BuyerTIN      string                 `json:"buyer_tin"`
	PayerMismatch bool                   `json:"payer_mismatch"`
	Warning       string                 `json:"warning,omitempty"`
	Summary       SummaryResponse        `json:"summary"`
	Orders        []PaymentOrderResponse `json:"orders"`
}
