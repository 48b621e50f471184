package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/application/units"
)

// OverrideHandler maneja las peticiones HTTP de overrides de unidad para un
// scope. Se instancia una vez para Items y otra para SKUs con el mismo código,
// igual que el caso de uso al que delega.
type OverrideHandler struct {
	uc         *units.OverrideUseCase
	ownerParam string // "itemId" | "skuId"
}

// NewOverrideHandler construye el handler para un scope.
func NewOverrideHandler(uc *units.OverrideUseCase, ownerParam string) *OverrideHandler {
	return &OverrideHandler{uc: uc, ownerParam: ownerParam}
}

// Create godoc
// @Summary      Registrar una unidad no-base para el propietario
// @Tags         overrides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        ownerId  path  string                     true  "ID del propietario"
// @Param        body     body  dto.CreateOverrideRequest  true  "Datos del override"
// @Success      201      {object}  dto.OverrideResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Router       /api/items/{ownerId}/unit-overrides [post]
func (h *OverrideHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UnitCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unit_code es requerido"})
	}
	out, err := h.uc.Create(c.Context(), c.Params(h.ownerParam), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar overrides del propietario (unidad más pequeña primero)
// @Tags         overrides
// @Produce      json
// @Param        ownerId  path  string  true  "ID del propietario"
// @Success      200      {object}  dto.OverrideListResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/items/{ownerId}/unit-overrides [get]
func (h *OverrideHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Params(h.ownerParam))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un override concreto
// @Tags         overrides
// @Produce      json
// @Param        ownerId  path  string  true  "ID del propietario"
// @Param        code     path  string  true  "Código de la unidad"
// @Success      200      {object}  dto.OverrideResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/items/{ownerId}/unit-overrides/{code} [get]
func (h *OverrideHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params(h.ownerParam), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar un override (la clave no cambia)
// @Tags         overrides
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        ownerId  path  string                     true  "ID del propietario"
// @Param        code     path  string                     true  "Código de la unidad"
// @Param        body     body  dto.UpdateOverrideRequest  true  "Campos a modificar"
// @Success      200      {object}  dto.OverrideResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/items/{ownerId}/unit-overrides/{code} [put]
func (h *OverrideHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params(h.ownerParam), c.Params("code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un override
// @Tags         overrides
// @Security     Bearer
// @Param        ownerId  path  string  true  "ID del propietario"
// @Param        code     path  string  true  "Código de la unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{ownerId}/unit-overrides/{code} [delete]
func (h *OverrideHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params(h.ownerParam), c.Params("code")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
