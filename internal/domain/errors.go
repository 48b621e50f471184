package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El integrador (capa HTTP u otro transporte) los mapea a códigos de cara al usuario.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrItemNotFound      = errors.New("item no encontrado")
	ErrSkuNotFound       = errors.New("sku no encontrado")
	ErrUnitNotFound      = errors.New("unidad de medida no encontrada en el catálogo")
	ErrInvalidOverride   = errors.New("la unidad base del propietario no se puede registrar como override")
	ErrInvalidFactor     = errors.New("el factor de conversión debe ser mayor que cero")
	ErrDuplicateOverride = errors.New("ya existe un override para esa unidad")
	ErrDefaultConflict   = errors.New("el propietario ya tiene una unidad de transacción por defecto")
	ErrUnitNotAvailable  = errors.New("la unidad no está disponible para el propietario")
	ErrUnitReferenced    = errors.New("la unidad está referenciada por overrides y no se puede eliminar")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
)
