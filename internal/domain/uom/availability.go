// Package uom contiene los servicios de dominio puros del motor de unidades:
// el conjunto de unidades disponibles de un propietario y la aritmética de
// conversión de cantidades. Sin I/O: las capas superiores cargan los datos.
package uom

import (
	"sort"

	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Provenance indica por qué una unidad aparece en el set disponible de un SKU.
type Provenance string

const (
	ProvenanceBase        Provenance = "BASE"         // unidad base del propietario (factor 1 implícito)
	ProvenanceItem        Provenance = "ITEM"         // heredada de un override del Item
	ProvenanceSkuOverride Provenance = "SKU_OVERRIDE" // override propio del SKU
)

// AvailableUnit entrada del set resuelto de unidades de un propietario.
type AvailableUnit struct {
	UnitCode   string
	UnitName   string
	Provenance Provenance
	Factor     decimal.Decimal // hacia la unidad base del propietario
	Precision  int32
}

// ResolveForSKU calcula el set completo y deduplicado de unidades usables por un
// SKU. La regla central del subsistema: si el SKU comparte la unidad base de su
// Item hereda los overrides del Item (los del SKU tapan a los del Item con el
// mismo código); si declara una unidad base propia, queda fuera de la herencia
// y solo cuenta con su base y sus propios overrides.
func ResolveForSKU(item *entity.Item, sku *entity.SKU, itemOverrides, skuOverrides []*entity.UnitOverride, unitName func(code string) string) []AvailableUnit {
	out := []AvailableUnit{{
		UnitCode:   sku.BaseUnitCode,
		UnitName:   unitName(sku.BaseUnitCode),
		Provenance: ProvenanceBase,
		Factor:     decimal.NewFromInt(1),
		Precision:  entity.DefaultPrecision,
	}}

	if item.BaseUnitCode == sku.BaseUnitCode {
		shadowed := make(map[string]bool, len(skuOverrides))
		for _, ov := range skuOverrides {
			shadowed[ov.UnitCode] = true
		}
		for _, ov := range itemOverrides {
			if shadowed[ov.UnitCode] {
				continue
			}
			out = append(out, fromOverride(ov, ProvenanceItem, unitName))
		}
	}
	for _, ov := range skuOverrides {
		out = append(out, fromOverride(ov, ProvenanceSkuOverride, unitName))
	}

	sortUnits(out)
	return out
}

// ResolveForItem es el análogo a nivel Item: su unidad base más sus overrides.
func ResolveForItem(item *entity.Item, overrides []*entity.UnitOverride, unitName func(code string) string) []AvailableUnit {
	out := []AvailableUnit{{
		UnitCode:   item.BaseUnitCode,
		UnitName:   unitName(item.BaseUnitCode),
		Provenance: ProvenanceBase,
		Factor:     decimal.NewFromInt(1),
		Precision:  entity.DefaultPrecision,
	}}
	for _, ov := range overrides {
		out = append(out, fromOverride(ov, ProvenanceItem, unitName))
	}
	sortUnits(out)
	return out
}

// FindUnit busca una unidad en el set resuelto por código.
func FindUnit(units []AvailableUnit, code string) (AvailableUnit, bool) {
	for _, u := range units {
		if u.UnitCode == code {
			return u, true
		}
	}
	return AvailableUnit{}, false
}

func fromOverride(ov *entity.UnitOverride, p Provenance, unitName func(code string) string) AvailableUnit {
	return AvailableUnit{
		UnitCode:   ov.UnitCode,
		UnitName:   unitName(ov.UnitCode),
		Provenance: p,
		Factor:     ov.Factor,
		Precision:  ov.Precision,
	}
}

// sortUnits ordena base primero y después por factor ascendente (unidad más
// pequeña primero), con el código como desempate estable.
func sortUnits(units []AvailableUnit) {
	sort.SliceStable(units, func(i, j int) bool {
		if (units[i].Provenance == ProvenanceBase) != (units[j].Provenance == ProvenanceBase) {
			return units[i].Provenance == ProvenanceBase
		}
		if !units[i].Factor.Equal(units[j].Factor) {
			return units[i].Factor.LessThan(units[j].Factor)
		}
		return units[i].UnitCode < units[j].UnitCode
	})
}
