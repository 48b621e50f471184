package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerScope distingue a quién pertenece un override: Item o SKU.
type OwnerScope string

const (
	ScopeItem OwnerScope = "ITEM"
	ScopeSKU  OwnerScope = "SKU"
)

// UnitOverride unidad no-base registrada para un Item o SKU concreto, con su
// factor de conversión hacia la unidad base de ese propietario.
// Clave lógica: (OwnerID, UnitCode) dentro de cada scope. La unidad base del
// propietario nunca se almacena como override: su factor 1 es implícito.
type UnitOverride struct {
	ID          string
	Scope       OwnerScope
	OwnerID     string          // item_id o sku_id según scope
	UnitCode    string
	Factor      decimal.Decimal // hacia la unidad base del propietario, > 0
	Precision   int32           // decimales al redondear cantidades en esta unidad
	Description string

	// Flags de uso
	IsDefaultTransaction bool // a lo sumo uno por propietario
	IsPurchasing         bool
	IsSales              bool
	IsManufacturing      bool
	Active               bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultPrecision decimales por defecto para overrides y para la unidad base.
const DefaultPrecision int32 = 2
