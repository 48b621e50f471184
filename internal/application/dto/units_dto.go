package dto

import "github.com/shopspring/decimal"

// AvailableUnitResponse entrada del set de unidades resuelto para un propietario.
type AvailableUnitResponse struct {
	UnitCode   string          `json:"unit_code"`
	UnitName   string          `json:"unit_name"`
	Provenance string          `json:"provenance"` // BASE | ITEM | SKU_OVERRIDE
	Factor     decimal.Decimal `json:"factor"`
	Precision  int32           `json:"precision"`
}

// AvailableUnitsResponse salida de la resolución de unidades disponibles.
type AvailableUnitsResponse struct {
	OwnerID      string                  `json:"owner_id"`
	Scope        string                  `json:"scope"`
	BaseUnitCode string                  `json:"base_unit_code"`
	Units        []AvailableUnitResponse `json:"units"`
}

// ConvertRequest entrada para convertir una cantidad entre unidades del propietario.
type ConvertRequest struct {
	FromUnit string          `json:"from_unit" validate:"required"`
	ToUnit   string          `json:"to_unit" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ConvertResponse resultado redondeado a la precisión de la unidad destino.
type ConvertResponse struct {
	OwnerID  string          `json:"owner_id"`
	Scope    string          `json:"scope"`
	FromUnit string          `json:"from_unit"`
	ToUnit   string          `json:"to_unit"`
	Quantity decimal.Decimal `json:"quantity"`
	Result   decimal.Decimal `json:"result"`
}
