package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/payord-api/internal/application/conversion"
)

func newConvertCommand(deps Deps) *cobra.Command {
	var (
		in, out, report     string
		payer, acc, taxCode string
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convierte un documento de facturas en el XML de órdenes de pago",
		Example: `  payord convert --in invoices.xml --payer "Importante LLC"
  payord convert --in invoices.xml --out pagos.xml --account 1570075735510200 --tax-code 1800232459
  payord convert --in invoices.xml --payer CJ --report resumen.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// El formato del reporte se valida antes de escribir el XML.
			format := strings.TrimPrefix(strings.ToLower(filepath.Ext(report)), ".")
			if report != "" {
				if err := deps.Conversion.SupportsReport(format); err != nil {
					return fmt.Errorf("--report %s: %w", report, err)
				}
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("leer %s: %w", in, err)
			}
			input := conversion.Input{
				Document: data,
				Payer:    conversion.PayerSelection{Name: payer, Account: acc, TaxCode: taxCode},
			}

			res, err := deps.Conversion.Convert(cmd.Context(), input)
			if err != nil {
				return err
			}
			if out == "" {
				out = res.Filename
			}
			if err := os.WriteFile(out, res.Document, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}

			w := cmd.OutOrStdout()
			if res.Mismatch {
				fmt.Fprintln(w, "ADVERTENCIA:", res.Warning())
			}
			fmt.Fprintf(w, "%s → %s\n", conversion.SummaryLine(res.Summary), out)

			if report == "" {
				return nil
			}
			rep, _, _, err := deps.Conversion.Render(cmd.Context(), res, format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(report, rep, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", report, err)
			}
			fmt.Fprintln(w, "reporte:", report)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in, "in", "", "documento de facturas (XML tp3)")
	f.StringVar(&out, "out", "", "XML de salida (por defecto PAYORD_OUTPUT_FILENAME)")
	f.StringVar(&payer, "payer", "", "perfil de pagador")
	f.StringVar(&acc, "account", "", "cuenta del pagador (sobrescribe el perfil)")
	f.StringVar(&taxCode, "tax-code", "", "código tributario del pagador (sobrescribe el perfil)")
	f.StringVar(&report, "report", "", "reporte adicional; el formato sale de la extensión (.pdf, .xlsx)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
