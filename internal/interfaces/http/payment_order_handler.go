package http

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payord-api/internal/application/conversion"
	"github.com/jhoicas/payord-api/internal/application/dto"
	"github.com/jhoicas/payord-api/internal/domain"
	"github.com/jhoicas/payord-api/internal/domain/entity"
)

// Headers de respuesta de la conversión.
const (
	HeaderRunID         = "X-Run-ID"
	HeaderPaymentCount  = "X-Payment-Count"
	HeaderPaymentTotal  = "X-Payment-Total"
	HeaderPayerMismatch = "X-Payer-Mismatch"
)

// PaymentOrderHandler convierte documentos de facturas subidos como multipart.
type PaymentOrderHandler struct {
	uc *conversion.UseCase
}

// NewPaymentOrderHandler construye el handler.
func NewPaymentOrderHandler(uc *conversion.UseCase) *PaymentOrderHandler {
	return &PaymentOrderHandler{uc: uc}
}

// Convert devuelve el XML de importación del banco como adjunto.
// POST /api/payment-orders
func (h *PaymentOrderHandler) Convert(c *fiber.Ctx) error {
	in, err := readInput(c)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.Convert(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(HeaderRunID, res.RunID)
	c.Set(HeaderPaymentCount, strconv.Itoa(res.Summary.Count))
	c.Set(HeaderPaymentTotal, res.Summary.TotalDisplay())
	c.Set(HeaderPayerMismatch, strconv.FormatBool(res.Mismatch))
	c.Attachment(res.Filename)
	c.Set(fiber.HeaderContentType, res.ContentType)
	return c.Status(fiber.StatusOK).Send(res.Document)
}

// Preview devuelve las órdenes y el resumen en JSON.
// POST /api/payment-orders/preview
func (h *PaymentOrderHandler) Preview(c *fiber.Ctx) error {
	in, err := readInput(c)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.Convert(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	out := dto.PreviewResponse{
		RunID:         res.RunID,
		BuyerTIN:      res.BuyerTIN,
		PayerMismatch: res.Mismatch,
		Warning:       res.Warning(),
		Summary: dto.SummaryResponse{
			Count:        res.Summary.Count,
			Total:        res.Summary.Total,
			TotalDisplay: conversion.SummaryLine(res.Summary),
		},
		Orders: make([]dto.PaymentOrderResponse, 0, len(res.Orders)),
	}
	for _, o := range res.Orders {
		out.Orders = append(out.Orders, toOrderResponse(o))
	}
	c.Set(HeaderRunID, res.RunID)
	return c.Status(fiber.StatusOK).JSON(out)
}

// Report genera el reporte del lote.
// POST /api/payment-orders/report?format=pdf|xlsx
func (h *PaymentOrderHandler) Report(c *fiber.Ctx) error {
	in, err := readInput(c)
	if err != nil {
		return writeError(c, err)
	}
	data, contentType, filename, err := h.uc.RenderReport(c.UserContext(), in, c.Query("format", "pdf"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(fiber.StatusOK).Send(data)
}

// readInput lee el archivo `file` y la selección de pagador del formulario.
func readInput(c *fiber.Ctx) (conversion.Input, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return conversion.Input{}, fmt.Errorf("%w: campo file requerido", domain.ErrInvalidInput)
	}
	f, err := fh.Open()
	if err != nil {
		return conversion.Input{}, fmt.Errorf("http: abrir archivo: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return conversion.Input{}, fmt.Errorf("http: leer archivo: %w", err)
	}

	var form dto.ConvertRequest
	if err := c.BodyParser(&form); err != nil {
		return conversion.Input{}, fmt.Errorf("%w: formulario inválido", domain.ErrInvalidInput)
	}
	return conversion.Input{
		Document: data,
		Payer: conversion.PayerSelection{
			Name:    form.Payer,
			Account: form.PayerAccount,
			TaxCode: form.PayerTaxCode,
		},
	}, nil
}

func toOrderResponse(o entity.PaymentOrder) dto.PaymentOrderResponse {
	return dto.PaymentOrderResponse{
		DocNum:             o.SequenceID,
		PayerAccount:       o.PayerAccount,
		TaxCode:            o.PayerTaxCode,
		BeneficiaryAccount: o.BeneficiaryAccount,
		Beneficiary:        o.BeneficiaryName,
		Amount:             o.Amount,
		Currency:           o.Currency,
		Details:            o.Details,
		InvoiceNumbers:     o.InvoiceNumbers,
	}
}
