// Package xlsx renderiza el reporte de un lote de órdenes de pago como hoja de cálculo.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/payord-api/internal/application/conversion"
	"github.com/jhoicas/payord-api/pkg/taxservice"
)

// Hojas del libro.
const (
	SheetOrders  = "Ordenes"
	SheetSummary = "Resumen"
)

var orderHeader = []interface{}{
	taxservice.AttrDocNum, taxservice.AttrPayerAcc, taxservice.AttrTaxCode, taxservice.AttrBenAcc,
	taxservice.AttrBeneficiary, taxservice.AttrAmount, taxservice.AttrCurrency, taxservice.AttrDetails,
}

// ReportGenerator implementa conversion.ReportGenerator con excelize.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// ContentType MIME del libro.
func (g *ReportGenerator) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension extensión de archivo del reporte.
func (g *ReportGenerator) Extension() string { return "xlsx" }

// Generate escribe una hoja con las órdenes (mismas columnas que el XML del banco) y otra con el resumen.
func (g *ReportGenerator) Generate(_ context.Context, r *conversion.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetOrders); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := writeOrders(f, r); err != nil {
		return nil, err
	}
	if err := writeSummary(f, r); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func writeOrders(f *excelize.File, r *conversion.Report) error {
	if err := f.SetSheetRow(SheetOrders, "A1", &orderHeader); err != nil {
		return fmt.Errorf("xlsx: cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetCellStyle(SheetOrders, "A1", "H1", bold); err != nil {
		return fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	amountFmt := "#,##0.00"
	amount, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
	if err != nil {
		return fmt.Errorf("xlsx: estilo monto: %w", err)
	}

	for i, o := range r.Orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		values := []interface{}{
			o.SequenceID, o.PayerAccount, o.PayerTaxCode, o.BeneficiaryAccount,
			o.BeneficiaryName, amountValue(o.Amount), o.Currency, o.Details,
		}
		if err := f.SetSheetRow(SheetOrders, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
		amountCell, _ := excelize.CoordinatesToCellName(6, i+2)
		if err := f.SetCellStyle(SheetOrders, amountCell, amountCell, amount); err != nil {
			return fmt.Errorf("xlsx: estilo fila %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(SheetOrders, "A", "G", 18); err != nil {
		return fmt.Errorf("xlsx: ancho columnas: %w", err)
	}
	return f.SetColWidth(SheetOrders, "H", "H", 60)
}

func writeSummary(f *excelize.File, r *conversion.Report) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	rows := [][]interface{}{
		{"Run", r.RunID},
		{"Fecha", r.GeneratedAt.Format("2006-01-02 15:04")},
		{"Pagador", r.Payer.Name},
		{taxservice.AttrPayerAcc, r.Payer.Account},
		{taxservice.AttrTaxCode, r.Payer.TaxCode},
		{"Comprador", r.BuyerTIN},
		{"Pagos", r.Summary.Count},
		{"Total", r.Summary.TotalDisplay() + " " + taxservice.CurrencyAMD},
	}
	if r.Mismatch {
		rows = append(rows, []interface{}{"Advertencia", r.Warning})
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetSummary, cell, &rows[i]); err != nil {
			return fmt.Errorf("xlsx: resumen fila %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(SheetSummary, "A", "B", 24)
}

// amountValue escribe el monto como número; si no es numérico se conserva el texto.
func amountValue(s string) interface{} {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.InexactFloat64()
}
