package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payord-api/internal/application/conversion"
	"github.com/jhoicas/payord-api/internal/application/dto"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Conversion  *conversion.UseCase
	ServiceName string
	JWTSecret   string // vacío = rutas de conversión sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	api := app.Group("/api")

	payerHandler := NewPayerHandler(deps.Conversion)
	api.Get("/payers", payerHandler.List)

	orders := api.Group("/payment-orders")
	if deps.JWTSecret != "" {
		orders.Use(AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin, RoleOperator))
	}
	orderHandler := NewPaymentOrderHandler(deps.Conversion)
	orders.Post("/", orderHandler.Convert)
	orders.Post("/preview", orderHandler.Preview)
	orders.Post("/report", orderHandler.Report)
}
