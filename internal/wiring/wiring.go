// Package wiring arma el caso de uso de conversión a partir de la configuración; lo comparten la API y la CLI.
package wiring

import (
	"fmt"
	"time"

	"github.com/jhoicas/payord-api/internal/application/conversion"
	"github.com/jhoicas/payord-api/internal/domain/details"
	"github.com/jhoicas/payord-api/internal/domain/entity"
	"github.com/jhoicas/payord-api/internal/domain/netting"
	"github.com/jhoicas/payord-api/internal/domain/payord"
	"github.com/jhoicas/payord-api/internal/infrastructure/bankxml"
	infrapdf "github.com/jhoicas/payord-api/internal/infrastructure/pdf"
	"github.com/jhoicas/payord-api/internal/infrastructure/taxxml"
	infraxlsx "github.com/jhoicas/payord-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/payord-api/pkg/config"
	"github.com/jhoicas/payord-api/pkg/logger"
)

// NewConversion construye el caso de uso con lector, escritor, reportes y registro de pagadores.
func NewConversion(cfg *config.Config, log *logger.Logger, now func() time.Time) (*conversion.UseCase, error) {
	enc, err := bankxml.ParseEncoding(cfg.PayOrd.OutputEncoding)
	if err != nil {
		return nil, fmt.Errorf("wiring: %w", err)
	}
	profiles, err := config.LoadPayers(cfg.PayOrd.PayersFile)
	if err != nil {
		return nil, fmt.Errorf("wiring: %w", err)
	}
	payers := make([]entity.Payer, 0, len(profiles))
	for _, p := range profiles {
		payers = append(payers, entity.Payer{Name: p.Name, Account: p.Account, TaxCode: p.TaxCode})
	}

	opts := []conversion.Option{
		conversion.WithFilename(cfg.PayOrd.OutputFilename),
		conversion.WithReport("pdf", infrapdf.NewReportGenerator()),
		conversion.WithReport("xlsx", infraxlsx.NewReportGenerator()),
	}
	if now != nil {
		opts = append(opts, conversion.WithClock(now))
	}

	return conversion.NewUseCase(
		taxxml.NewReader(),
		bankxml.NewWriter(enc),
		payord.NewPipeline(netting.NewEngine(), details.DefaultRegistry()),
		conversion.NewPayerRegistry(payers),
		log,
		opts...,
	), nil
}
