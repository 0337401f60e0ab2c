// Package pdf renderiza el reporte de un lote de órdenes de pago.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Pagador + Cuenta / TAXCODE  │  Run + Fecha          │
//	│  ADVERTENCIA (solo si el comprador no coincide)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: DOCNUM | Cuenta | Beneficiario | Monto | Detalles    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: cantidad de pagos / TOTAL AMD                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	_ "embed"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/payord-api/internal/application/conversion"
	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 40, Blue: 30}
)

// ── Fuente ────────────────────────────────────────────────────────────────────

// fontFamily fuente UTF-8 embebida; las fuentes estándar de PDF no tienen glifos armenios.
const fontFamily = "dejavu"

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa conversion.ReportGenerator usando Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// ContentType MIME del reporte.
func (g *ReportGenerator) ContentType() string { return "application/pdf" }

// Extension extensión de archivo del reporte.
func (g *ReportGenerator) Extension() string { return "pdf" }

// Generate genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) Generate(_ context.Context, r *conversion.Report) ([]byte, error) {
	fonts, err := repository.New().
		AddUTF8FontFromBytes(fontFamily, fontstyle.Normal, fontRegular).
		AddUTF8FontFromBytes(fontFamily, fontstyle.Bold, fontBold).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuentes: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithCustomFonts(fonts).
		WithDefaultFont(&props.Font{Family: fontFamily, Size: 9}).
		WithTitle("Órdenes de pago", true).
		WithAuthor(nonEmpty(r.Payer.Name, r.Payer.TaxCode), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	if r.Mismatch {
		m.AddRows(warningRow(r.Warning))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Orders)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: pagador (izq) y corrida + fecha (der).
func headerRow(r *conversion.Report) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.Payer.Name, "Pagador"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Cuenta: %s   |   TAXCODE: %s", r.Payer.Account, r.Payer.TaxCode), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ÓRDENES DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.RunID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Fecha: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func warningRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("ADVERTENCIA: "+msg, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWarning, Top: 2,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(taxservice.AttrDocNum, 1, align.Left),
		h("Cuenta beneficiario", 3, align.Left),
		h("Beneficiario", 3, align.Left),
		h("Monto", 2, align.Right),
		h("Detalles", 3, align.Left),
	)
}

// tableRows: una fila por orden, en orden de emisión.
func tableRows(orders []entity.PaymentOrder) []core.Row {
	result := make([]core.Row, 0, len(orders))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, o := range orders {
		result = append(result, row.New(7).Add(
			cell(o.SequenceID, 1, align.Left),
			cell(o.BeneficiaryAccount, 3, align.Left),
			cell(o.BeneficiaryName, 3, align.Left),
			cell(o.Amount, 2, align.Right),
			cell(o.Details, 3, align.Left),
		))
	}
	return result
}

func summaryRow(r *conversion.Report) core.Row {
	bold := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(bold("Pagos:"), text.New(fmt.Sprintf("%d", r.Summary.Count), props.Text{Size: 9, Align: align.Right, Top: 6, Right: 1})),
		col.New(3).Add(bold("TOTAL:"), text.New(r.Summary.TotalDisplay()+" "+taxservice.CurrencyAMD, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 6, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
