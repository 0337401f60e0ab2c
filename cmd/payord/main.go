package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/payord-api/internal/interfaces/cli"
	"github.com/jhoicas/payord-api/internal/wiring"
	"github.com/jhoicas/payord-api/pkg/config"
	"github.com/jhoicas/payord-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	// Los eventos van a stderr para no mezclarse con la salida del comando.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	uc, err := wiring.NewConversion(cfg, log, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("armar conversión")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Deps{Config: cfg, Conversion: uc})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
