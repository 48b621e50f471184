package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/application/units"
)

// UnitsHandler expone la resolución de unidades disponibles, la conversión de
// cantidades y la tabla de conversión imprimible.
type UnitsHandler struct {
	availability *units.AvailabilityUseCase
	conversion   *units.ConversionUseCase
	chart        *units.ChartUseCase
}

// NewUnitsHandler construye el handler.
func NewUnitsHandler(availability *units.AvailabilityUseCase, conversion *units.ConversionUseCase, chart *units.ChartUseCase) *UnitsHandler {
	return &UnitsHandler{availability: availability, conversion: conversion, chart: chart}
}

// SKUUnits godoc
// @Summary      Unidades disponibles para un SKU, con procedencia
// @Tags         units
// @Produce      json
// @Param        skuId  path  string  true  "ID del SKU"
// @Success      200    {object}  dto.AvailableUnitsResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/skus/{skuId}/units [get]
func (h *UnitsHandler) SKUUnits(c *fiber.Ctx) error {
	out, err := h.availability.ForSKU(c.Params("skuId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ItemUnits godoc
// @Summary      Unidades disponibles para un Item
// @Tags         units
// @Produce      json
// @Param        itemId  path  string  true  "ID del item"
// @Success      200     {object}  dto.AvailableUnitsResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/items/{itemId}/units [get]
func (h *UnitsHandler) ItemUnits(c *fiber.Ctx) error {
	out, err := h.availability.ForItem(c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ConvertForSKU godoc
// @Summary      Convertir una cantidad entre unidades del SKU
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        skuId  path  string              true  "ID del SKU"
// @Param        body   body  dto.ConvertRequest  true  "Conversión"
// @Success      200    {object}  dto.ConvertResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/skus/{skuId}/convert [post]
func (h *UnitsHandler) ConvertForSKU(c *fiber.Ctx) error {
	in, err := parseConvertRequest(c)
	if err != nil {
		return err
	}
	out, err := h.conversion.ForSKU(c.Params("skuId"), *in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ConvertForItem godoc
// @Summary      Convertir una cantidad entre unidades del Item
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        itemId  path  string              true  "ID del item"
// @Param        body    body  dto.ConvertRequest  true  "Conversión"
// @Success      200     {object}  dto.ConvertResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      422     {object}  dto.ErrorResponse
// @Router       /api/items/{itemId}/convert [post]
func (h *UnitsHandler) ConvertForItem(c *fiber.Ctx) error {
	in, err := parseConvertRequest(c)
	if err != nil {
		return err
	}
	out, err := h.conversion.ForItem(c.Params("itemId"), *in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ItemChart godoc
// @Summary      Tabla de conversión del Item en PDF
// @Tags         units
// @Produce      application/pdf
// @Param        itemId  path  string  true  "ID del item"
// @Success      200     {file}  binary
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/items/{itemId}/units/chart [get]
func (h *UnitsHandler) ItemChart(c *fiber.Ctx) error {
	pdfBytes, err := h.chart.ItemChartPDF(c.Context(), c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="unidades.pdf"`)
	return c.Send(pdfBytes)
}

func parseConvertRequest(c *fiber.Ctx) (*dto.ConvertRequest, error) {
	var in dto.ConvertRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FromUnit == "" || in.ToUnit == "" {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from_unit y to_unit son requeridos"})
	}
	// Cantidad ausente queda en cero: cero convierte a cero en cualquier unidad.
	return &in, nil
}
