package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/application/units"
	"github.com/shopspring/decimal"
)

// UOMHandler maneja las peticiones HTTP del catálogo de unidades.
type UOMHandler struct {
	uc *units.CatalogUseCase
}

// NewUOMHandler construye el handler.
func NewUOMHandler(uc *units.CatalogUseCase) *UOMHandler {
	return &UOMHandler{uc: uc}
}

// Create godoc
// @Summary      Crear unidad de medida
// @Tags         uoms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUOMRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UOMResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/uoms [post]
func (h *UOMHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUOMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar el catálogo de unidades
// @Tags         uoms
// @Produce      json
// @Success      200  {object}  dto.UOMListResponse
// @Router       /api/uoms [get]
func (h *UOMHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Obtener unidad por código
// @Tags         uoms
// @Produce      json
// @Param        code  path  string  true  "Código de la unidad"
// @Success      200   {object}  dto.UOMResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/uoms/{code} [get]
func (h *UOMHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.Lookup(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar unidad
// @Tags         uoms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string                true  "Código de la unidad"
// @Param        body  body  dto.UpdateUOMRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UOMResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/uoms/{code} [put]
func (h *UOMHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUOMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar unidad no referenciada
// @Tags         uoms
// @Security     Bearer
// @Param        code  path  string  true  "Código de la unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/uoms/{code} [delete]
func (h *UOMHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("code")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListClasses godoc
// @Summary      Listar clases de magnitud
// @Tags         uoms
// @Produce      json
// @Success      200  {array}  dto.UOMClassResponse
// @Router       /api/uom-classes [get]
func (h *UOMHandler) ListClasses(c *fiber.Ctx) error {
	out, err := h.uc.ListClasses()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToClassBase godoc
// @Summary      Llevar una cantidad a la base de su clase (factor de catálogo)
// @Tags         uoms
// @Produce      json
// @Param        code  path   string  true  "Código de la unidad"
// @Param        qty   query  string  true  "Cantidad"
// @Success      200   {object}  dto.ClassBaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/uoms/{code}/class-base [get]
func (h *UOMHandler) ToClassBase(c *fiber.Ctx) error {
	qty, err := decimal.NewFromString(c.Query("qty", "1"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "qty inválido"})
	}
	out, err := h.uc.ToClassBase(c.Params("code"), qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
