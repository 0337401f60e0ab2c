// Package conversion orquesta la conversión de un documento de facturas en órdenes de pago.
package conversion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/payord-api/internal/domain"
	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/internal/domain/netting"
	"github.com/jhoicas/payord-api/internal/domain/payord"
	"github.com/jhoicas/payord-api/pkg/logger"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// Input una solicitud de conversión.
type Input struct {
	Document []byte
	Payer    PayerSelection
}

// Result lote convertido junto con el documento de importación ya serializado.
type Result struct {
	RunID       string
	GeneratedAt time.Time
	Payer       entity.Payer
	BuyerTIN    string
	Mismatch    bool
	Orders      []entity.PaymentOrder
	Groups      []netting.Group
	Summary     payord.Summary
	Document    []byte
	ContentType string
	Filename    string
}

// Warning texto de advertencia cuando el pagador no coincide con el comprador del documento.
func (r *Result) Warning() string {
	if !r.Mismatch {
		return ""
	}
	return fmt.Sprintf("el TIN del comprador %s no coincide con el código tributario del pagador %s", r.BuyerTIN, r.Payer.TaxCode)
}

// Report datos del lote para los generadores de reporte.
func (r *Result) Report() *Report {
	return &Report{
		RunID:       r.RunID,
		GeneratedAt: r.GeneratedAt,
		Payer:       r.Payer,
		BuyerTIN:    r.BuyerTIN,
		Mismatch:    r.Mismatch,
		Warning:     r.Warning(),
		Orders:      r.Orders,
		Summary:     r.Summary,
	}
}

// UseCase convierte documentos de facturas. Cada ejecución es independiente.
type UseCase struct {
	source   InvoiceSource
	writer   PaymentDocumentWriter
	pipeline *payord.Pipeline
	payers   *PayerRegistry
	reports  map[string]ReportGenerator
	log      *logger.Logger
	now      func() time.Time
	filename string
}

// Option ajusta el caso de uso.
type Option func(*UseCase)

// WithClock reemplaza el reloj usado para el sello HHMM.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// WithReport registra un generador bajo un formato (pdf, xlsx).
func WithReport(format string, g ReportGenerator) Option {
	return func(uc *UseCase) { uc.reports[strings.ToLower(format)] = g }
}

// WithFilename nombre del documento de salida.
func WithFilename(name string) Option {
	return func(uc *UseCase) {
		if name != "" {
			uc.filename = name
		}
	}
}

// NewUseCase construye el caso de uso inyectando sus dependencias.
func NewUseCase(
	source InvoiceSource,
	writer PaymentDocumentWriter,
	pipeline *payord.Pipeline,
	payers *PayerRegistry,
	log *logger.Logger,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		source:   source,
		writer:   writer,
		pipeline: pipeline,
		payers:   payers,
		reports:  make(map[string]ReportGenerator),
		log:      log,
		now:      time.Now,
		filename: "output.xml",
	}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// Payers perfiles de pagador disponibles.
func (uc *UseCase) Payers() []entity.Payer {
	return uc.payers.List()
}

// Convert procesa el documento y serializa las órdenes.
//
// Retorna:
//   - domain.ErrInvalidInput     si falta el documento o el pagador está incompleto.
//   - domain.ErrPayerNotFound    si el perfil pedido no existe.
//   - domain.ErrInvalidDocument  si el XML no es legible.
//
// La discrepancia de identidad del pagador no es error: queda en Result.Mismatch.
func (uc *UseCase) Convert(ctx context.Context, in Input) (*Result, error) {
	if len(in.Document) == 0 {
		return nil, fmt.Errorf("%w: documento vacío", domain.ErrInvalidInput)
	}
	payer, err := uc.payers.Resolve(in.Payer)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch, err := uc.source.Read(in.Document)
	if err != nil {
		return nil, fmt.Errorf("conversion: leer facturas: %w", err)
	}

	now := uc.now()
	out := uc.pipeline.Run(batch.Records, payer, now)

	doc, err := uc.writer.Write(out.Orders)
	if err != nil {
		return nil, fmt.Errorf("conversion: escribir órdenes: %w", err)
	}

	res := &Result{
		RunID:       uuid.NewString(),
		GeneratedAt: now,
		Payer:       payer,
		BuyerTIN:    batch.BuyerTIN,
		Mismatch:    !taxservice.MatchesPayer(batch.BuyerTIN, payer.TaxCode),
		Orders:      out.Orders,
		Groups:      out.Groups,
		Summary:     out.Summary,
		Document:    doc,
		ContentType: uc.writer.ContentType(),
		Filename:    uc.filename,
	}

	if res.Mismatch {
		uc.log.Warn().
			Str("run_id", res.RunID).
			Str("buyer_tin", res.BuyerTIN).
			Str("payer_tax_code", payer.TaxCode).
			Msg("el comprador del documento no coincide con el pagador")
	}
	uc.log.Info().
		Str("run_id", res.RunID).
		Str("payer_tax_code", payer.TaxCode).
		Int("invoices", len(batch.Records)).
		Int("netting_groups", len(out.Groups)).
		Int("payments", res.Summary.Count).
		Str("total", res.Summary.TotalDisplay()).
		Bool("payer_mismatch", res.Mismatch).
		Msg("lote convertido")

	return res, nil
}

// RenderReport convierte el documento y genera el reporte en el formato pedido.
func (uc *UseCase) RenderReport(ctx context.Context, in Input, format string) (data []byte, contentType, filename string, err error) {
	if err := uc.SupportsReport(format); err != nil {
		return nil, "", "", err
	}
	res, err := uc.Convert(ctx, in)
	if err != nil {
		return nil, "", "", err
	}
	return uc.Render(ctx, res, format)
}

// Render genera el reporte de un lote ya convertido.
func (uc *UseCase) Render(ctx context.Context, res *Result, format string) (data []byte, contentType, filename string, err error) {
	gen, err := uc.generator(format)
	if err != nil {
		return nil, "", "", err
	}
	data, err = gen.Generate(ctx, res.Report())
	if err != nil {
		return nil, "", "", fmt.Errorf("conversion: generar reporte: %w", err)
	}
	filename = fmt.Sprintf("payord_%s.%s", res.GeneratedAt.Format("20060102_1504"), gen.Extension())
	return data, gen.ContentType(), filename, nil
}

// SupportsReport falla con domain.ErrUnsupportedFormat si no hay generador para el formato.
func (uc *UseCase) SupportsReport(format string) error {
	_, err := uc.generator(format)
	return err
}

func (uc *UseCase) generator(format string) (ReportGenerator, error) {
	gen, ok := uc.reports[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: reporte %q", domain.ErrUnsupportedFormat, format)
	}
	return gen, nil
}

// SummaryLine resumen para mostrar: "3 pagos, 1,234.50 AMD".
func SummaryLine(s payord.Summary) string {
	return fmt.Sprintf("%d pagos, %s %s", s.Count, s.TotalDisplay(), taxservice.CurrencyAMD)
}
