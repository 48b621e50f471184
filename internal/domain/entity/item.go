package entity

import "time"

// Item artículo padre del catálogo. El motor UOM solo necesita su identidad y
// su unidad base; el resto del maestro de artículos vive en otro servicio.
type Item struct {
	ID           string
	Code         string
	Name         string
	BaseUnitCode string // unidad en la que se expresa el stock propio del item
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SKU variante vendible de un Item. Puede compartir la unidad base del Item o
// declarar la suya propia; esa igualdad decide si hereda las unidades del Item.
type SKU struct {
	ID           string
	ItemID       string
	Code         string
	Name         string
	BaseUnitCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
