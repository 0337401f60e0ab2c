// Package cli define los comandos de `payord`:
//
//	payord
//	├── convert   documento de facturas → XML de importación del banco
//	├── payers    perfiles de pagador disponibles
//	├── token     emite un JWT para la API
//	└── version
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/payord-api/internal/application/conversion"
	"github.com/jhoicas/payord-api/pkg/config"
)

// Version y BuildDate se fijan con ldflags.
var (
	Version   = "dev"
	BuildDate = "unknown"
)

// Deps dependencias compartidas por los comandos.
type Deps struct {
	Config     *config.Config
	Conversion *conversion.UseCase
}

// NewRootCommand arma el árbol de comandos. La salida va a cmd.OutOrStdout().
func NewRootCommand(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "payord",
		Short:         "Convierte facturas del Servicio Tributario en órdenes de pago bancarias",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newConvertCommand(deps),
		newPayersCommand(deps),
		newTokenCommand(deps),
		newVersionCommand(),
	)
	return root
}
