// Package taxxml normaliza el documento de facturas del Servicio Tributario (tp3/invoice) a InvoiceRecord.
// Los paths no usan prefijo de namespace: etree compara solo el nombre local.
package taxxml

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/payord-api/internal/domain"
	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/pkg/money"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// Paths relativos a cada tp:SignableData.
const (
	pathInvoice            = ".//SignableData"
	pathAdjustmentAccount  = ".//GeneralInfo/AdjustmentAccount"
	pathAdjustmentDiff     = ".//GeneralInfo/AdjustmentDiffFlag"
	pathGeneralAdditional  = ".//GeneralInfo/AdditionalData"
	pathSupplierTIN        = ".//SupplierInfo/Taxpayer/TIN"
	pathSupplierName       = ".//SupplierInfo/Taxpayer/Name"
	pathSupplierBank       = ".//SupplierInfo/Taxpayer/BankAccount/BankAccountNumber"
	pathSupplierAdditional = ".//SupplierInfo/Taxpayer/AdditionalData"
	pathBuyerTIN           = ".//BuyerInfo/Taxpayer/TIN"
	pathBuyerAdditional    = ".//BuyerInfo/Taxpayer/AdditionalData"
	pathSeries             = ".//InvoiceNumber/Series"
	pathNumber             = ".//InvoiceNumber/Number"
	pathTotalPrice         = ".//GoodsInfo/Total/TotalPrice"
)

// Reader implementa conversion.InvoiceSource sobre etree.
type Reader struct{}

// NewReader crea el lector.
func NewReader() *Reader {
	return &Reader{}
}

// Read parsea el documento. Solo falla si el XML no es legible; los campos faltantes quedan vacíos o en cero.
func (r *Reader) Read(data []byte) (*entity.InvoiceBatch, error) {
	data, err := toUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: documento sin raíz", domain.ErrInvalidDocument)
	}

	batch := &entity.InvoiceBatch{BuyerTIN: text(&doc.Element, pathBuyerTIN)}
	for i, el := range doc.FindElements(pathInvoice) {
		batch.Records = append(batch.Records, normalize(i, el))
	}
	return batch, nil
}

func normalize(idx int, el *etree.Element) entity.InvoiceRecord {
	totalText := text(el, pathTotalPrice)
	if totalText == "" {
		totalText = "0"
	}
	total, _ := money.Parse(totalText)
	adjAccount := text(el, pathAdjustmentAccount)
	adjDiff := text(el, pathAdjustmentDiff)

	return entity.InvoiceRecord{
		Index:                     idx,
		SupplierTIN:               text(el, pathSupplierTIN),
		SupplierBankAccount:       text(el, pathSupplierBank),
		SupplierName:              text(el, pathSupplierName),
		BuyerTIN:                  text(el, pathBuyerTIN),
		Series:                    text(el, pathSeries),
		Number:                    text(el, pathNumber),
		TotalText:                 totalText,
		Total:                     total,
		IsAdjustment:              strings.EqualFold(adjAccount, taxservice.AdjustmentAccountTrue) && adjDiff == taxservice.AdjustmentDiffNegative,
		SupplierAdditionalData:    text(el, pathSupplierAdditional),
		BuyerAdditionalData:       text(el, pathBuyerAdditional),
		GeneralInfoAdditionalData: text(el, pathGeneralAdditional),
	}
}

// text devuelve el texto recortado del primer elemento que coincide con path, o "".
func text(el *etree.Element, path string) string {
	found := el.FindElement(path)
	if found == nil {
		return ""
	}
	return strings.TrimSpace(found.Text())
}

// toUTF8 transcodifica documentos UTF-16 (detectados por BOM) a UTF-8.
func toUTF8(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, []byte{0xFF, 0xFE}) && !bytes.HasPrefix(data, []byte{0xFE, 0xFF}) {
		return data, nil
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("taxxml: transcodificar UTF-16: %w", err)
	}
	return out, nil
}

// charsetReader acepta la declaración utf-16 de un documento ya transcodificado por toUTF8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "utf-8", "utf8", "utf-16", "utf16", "utf-16le", "utf-16be":
		return input, nil
	}
	return nil, fmt.Errorf("taxxml: codificación no soportada %q", label)
}
