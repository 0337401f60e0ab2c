package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payord-api/internal/application/conversion"
	"github.com/jhoicas/payord-api/internal/application/dto"
)

// PayerHandler expone los perfiles de pagador configurados.
type PayerHandler struct {
	uc *conversion.UseCase
}

// NewPayerHandler construye el handler.
func NewPayerHandler(uc *conversion.UseCase) *PayerHandler {
	return &PayerHandler{uc: uc}
}

// List GET /api/payers
func (h *PayerHandler) List(c *fiber.Ctx) error {
	payers := h.uc.Payers()
	out := dto.PayerListResponse{Items: make([]dto.PayerResponse, 0, len(payers))}
	for _, p := range payers {
		out.Items = append(out.Items, dto.PayerResponse{Name: p.Name, Account: p.Account, TaxCode: p.TaxCode})
	}
	return c.JSON(out)
}
