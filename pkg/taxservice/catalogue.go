// Package taxservice reúne las constantes del formato de factura del Servicio Tributario de Armenia
// (tp3/invoice) y del archivo de importación bancaria, más las reglas de identidad de contribuyentes.
package taxservice

// Namespace del documento de facturas exportado por el Servicio Tributario.
const NamespaceInvoice = "http://www.taxservice.am/tp3/invoice/definitions"

// Marcadores de factura de ajuste (GeneralInfo/AdjustmentAccount y GeneralInfo/AdjustmentDiffFlag).
const (
	AdjustmentAccountTrue  = "true"
	AdjustmentDiffNegative = "-1"
)

// Moneda única del archivo de pagos.
const CurrencyAMD = "AMD"

// TIN de contrapartes con reglas propias de extracción del campo DETAILS.
const (
	TINSupplierIndicating  = "00024873" // referencia después de "նշելով"
	TINSubscriberCard      = "01520882" // "Բաժանորդի քարտի համար NNN:"
	TINCardNumber          = "02655115" // "Քարտի համար NNN-NNN:"
	TINGeneralInfoVerbatim = "02500052" // GeneralInfo/AdditionalData completo
	TINSubscriberNumber    = "00046317" // "Բաժանորդի համարը` NNN:"
)

// Documento de importación bancaria (As_Import-Export_File).
const (
	ExportRootTag      = "As_Import-Export_File"
	PayOrdTag          = "PayOrd"
	PayOrdBlockCaption = "Documents (Payment Inside of RA)"
)

// Atributos de cada PayOrd, en el orden en que los espera el banco.
const (
	AttrDocNum      = "DOCNUM"
	AttrPayerAcc    = "PAYERACC"
	AttrTaxCode     = "TAXCODE"
	AttrBenAcc      = "BENACC"
	AttrBeneficiary = "BENEFICIARY"
	AttrAmount      = "AMOUNT"
	AttrCurrency    = "CURRENCY"
	AttrDetails     = "DETAILS"
)

// Límites del banco receptor.
const (
	BenAccMaxLen      = 16
	MaxNettedInvoices = 9
)
