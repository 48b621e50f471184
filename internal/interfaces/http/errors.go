package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/domain"
)

// respondError mapea los errores de dominio del motor a códigos HTTP.
// Cualquier error fuera de la taxonomía cerrada es un 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "item no encontrado"})
	case errors.Is(err, domain.ErrSkuNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SKU_NOT_FOUND", Message: "sku no encontrado"})
	case errors.Is(err, domain.ErrUnitNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNIT_NOT_FOUND", Message: "unidad no encontrada en el catálogo"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidOverride):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_OVERRIDE", Message: "la unidad base del propietario no se puede registrar como override"})
	case errors.Is(err, domain.ErrInvalidFactor):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_FACTOR", Message: "el factor debe ser mayor que cero"})
	case errors.Is(err, domain.ErrDuplicateOverride):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_OVERRIDE", Message: "ya existe un override para esa unidad"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrDefaultConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DEFAULT_CONFLICT", Message: "el propietario ya tiene una unidad de transacción por defecto"})
	case errors.Is(err, domain.ErrUnitNotAvailable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNIT_NOT_AVAILABLE", Message: "la unidad no está disponible para el propietario"})
	case errors.Is(err, domain.ErrUnitReferenced):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNIT_REFERENCED", Message: "la unidad está referenciada por overrides"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
