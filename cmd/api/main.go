package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpRouter "github.com/jhoicas/payord-api/internal/interfaces/http"
	"github.com/jhoicas/payord-api/internal/wiring"
	"github.com/jhoicas/payord-api/pkg/config"
	"github.com/jhoicas/payord-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("jwt", cfg.JWT.Enabled()).
		Str("output_encoding", cfg.PayOrd.OutputEncoding).
		Msg("iniciando aplicación")

	conversionUC, err := wiring.NewConversion(cfg, log, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("armar conversión")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.PayOrd.MaxUploadBytes(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.PayOrd.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.PayOrd.SwaggerFile,
			Path:     "docs",
			Title:    "PayOrd API",
		}))
	} else if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", cfg.PayOrd.SwaggerFile).Msg("swagger no disponible")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Conversion:  conversionUC,
		ServiceName: cfg.App.Name,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
