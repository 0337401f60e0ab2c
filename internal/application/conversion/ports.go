package conversion

import (
	"context"

	"github.com/jhoicas/payord-api/internal/domain/entity"
)

// InvoiceSource normaliza el documento de facturas recibido.
type InvoiceSource interface {
	Read(data []byte) (*entity.InvoiceBatch, error)
}

// PaymentDocumentWriter serializa las órdenes al documento de importación del banco.
type PaymentDocumentWriter interface {
	Write(orders []entity.PaymentOrder) ([]byte, error)
	ContentType() string
}

// ReportGenerator renderiza un lote procesado para lectura humana (PDF, XLSX).
type ReportGenerator interface {
	Generate(ctx context.Context, report *Report) ([]byte, error)
	ContentType() string
	Extension() string
}
