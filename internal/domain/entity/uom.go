package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UOM representa una unidad de medida del catálogo (ej. PCS, BOX, DOZ).
// Es dato de referencia: inmutable una vez referenciada por un override.
type UOM struct {
	Code        string // código único (PK), siempre en mayúsculas
	Name        string
	Description string
	ClassCode   string // clase de magnitud a la que pertenece (count, length, ...)
	SortOrder   int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UOMClass agrupa unidades físicamente comparables entre sí.
type UOMClass struct {
	Code string
	Name string
}

// UOMConversion factor de catálogo de una unidad hacia la unidad base de su clase.
// Es matemática de catálogo entre unidades de la misma clase; los overrides por
// Item/SKU llevan su propio factor y no pasan por aquí.
type UOMConversion struct {
	ClassCode string
	UnitCode  string
	Factor    decimal.Decimal // hacia la unidad base de la clase
}
