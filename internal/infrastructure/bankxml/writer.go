// Package bankxml serializa las órdenes de pago al formato de importación del banco
// (As_Import-Export_File / PayOrd).
package bankxml

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/unicode"

	"github.com/jhoicas/payord-api/internal/domain"
	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// Encoding de salida soportado.
type Encoding string

const (
	EncodingUTF16 Encoding = "utf-16"
	EncodingUTF8  Encoding = "utf-8"
)

// ParseEncoding valida la etiqueta configurada.
func ParseEncoding(label string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(label))) {
	case "", EncodingUTF16, "utf16":
		return EncodingUTF16, nil
	case EncodingUTF8, "utf8":
		return EncodingUTF8, nil
	}
	return "", fmt.Errorf("%w: codificación de salida %q", domain.ErrUnsupportedFormat, label)
}

// Writer implementa conversion.PaymentDocumentWriter.
type Writer struct {
	encoding Encoding
}

// NewWriter crea el serializador. UTF-16 es el formato que espera el banco.
func NewWriter(enc Encoding) *Writer {
	if enc == "" {
		enc = EncodingUTF16
	}
	return &Writer{encoding: enc}
}

// ContentType devuelve el MIME del documento generado.
func (w *Writer) ContentType() string {
	return "application/xml; charset=" + string(w.encoding)
}

// Write genera el documento completo. Un lote vacío produce el bloque PayOrd sin hijos.
func (w *Writer) Write(orders []entity.PaymentOrder) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", fmt.Sprintf(`version="1.0" encoding="%s"`, strings.ToUpper(string(w.encoding))))

	root := doc.CreateElement(taxservice.ExportRootTag)
	block := root.CreateElement(taxservice.PayOrdTag)
	block.CreateAttr("CAPTION", taxservice.PayOrdBlockCaption)

	for _, o := range orders {
		el := block.CreateElement(taxservice.PayOrdTag)
		// el orden de atributos es parte del formato
		el.CreateAttr(taxservice.AttrDocNum, o.SequenceID)
		el.CreateAttr(taxservice.AttrPayerAcc, o.PayerAccount)
		el.CreateAttr(taxservice.AttrTaxCode, o.PayerTaxCode)
		el.CreateAttr(taxservice.AttrBenAcc, o.BeneficiaryAccount)
		el.CreateAttr(taxservice.AttrBeneficiary, o.BeneficiaryName)
		el.CreateAttr(taxservice.AttrAmount, o.Amount)
		el.CreateAttr(taxservice.AttrCurrency, o.Currency)
		el.CreateAttr(taxservice.AttrDetails, o.Details)
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("bankxml: serializar: %w", err)
	}
	if w.encoding == EncodingUTF8 {
		return raw, nil
	}
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("bankxml: codificar UTF-16: %w", err)
	}
	return out, nil
}
