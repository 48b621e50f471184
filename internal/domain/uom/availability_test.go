package uom_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/uom"
)

var unitNames = map[string]string{
	"PCS": "Piezas",
	"BOX": "Caja",
	"DOZ": "Docena",
}

func lookupName(code string) string {
	if n, ok := unitNames[code]; ok {
		return n
	}
	return code
}

func override(scope entity.OwnerScope, ownerID, code, factor string) *entity.UnitOverride {
	return &entity.UnitOverride{
		Scope:     scope,
		OwnerID:   ownerID,
		UnitCode:  code,
		Factor:    dec(factor),
		Precision: entity.DefaultPrecision,
		Active:    true,
	}
}

// Escenario A: el SKU comparte la unidad base del Item (PCS). Ambos registran
// DOZ; la fila del SKU tapa a la del Item. Resultado: base + DOZ del SKU.
func TestResolveForSKU_BaseCompartida(t *testing.T) {
	item := &entity.Item{ID: "item-1", BaseUnitCode: "PCS"}
	sku := &entity.SKU{ID: "sku-1", ItemID: "item-1", BaseUnitCode: "PCS"}
	itemOvs := []*entity.UnitOverride{override(entity.ScopeItem, "item-1", "DOZ", "12")}
	skuOvs := []*entity.UnitOverride{override(entity.ScopeSKU, "sku-1", "DOZ", "12")}

	got := uom.ResolveForSKU(item, sku, itemOvs, skuOvs, lookupName)

	require.Len(t, got, 2)
	assert.Equal(t, "PCS", got[0].UnitCode)
	assert.Equal(t, uom.ProvenanceBase, got[0].Provenance)
	assert.True(t, got[0].Factor.Equal(decimal.NewFromInt(1)))

	assert.Equal(t, "DOZ", got[1].UnitCode)
	assert.Equal(t, uom.ProvenanceSkuOverride, got[1].Provenance, "el DOZ del SKU debe tapar al del Item")
	assert.True(t, got[1].Factor.Equal(dec("12")))
}

// Escenario B: el SKU declara su propia base (BOX ≠ PCS). Los overrides del
// Item se ignoran por completo: el SKU quedó fuera de la herencia.
func TestResolveForSKU_BasePropia(t *testing.T) {
	item := &entity.Item{ID: "item-1", BaseUnitCode: "PCS"}
	sku := &entity.SKU{ID: "sku-1", ItemID: "item-1", BaseUnitCode: "BOX"}
	itemOvs := []*entity.UnitOverride{override(entity.ScopeItem, "item-1", "DOZ", "12")}

	got := uom.ResolveForSKU(item, sku, itemOvs, nil, lookupName)

	require.Len(t, got, 1)
	assert.Equal(t, "BOX", got[0].UnitCode)
	assert.Equal(t, "Caja", got[0].UnitName)
	assert.Equal(t, uom.ProvenanceBase, got[0].Provenance)
	assert.True(t, got[0].Factor.Equal(decimal.NewFromInt(1)))
}

// Los overrides del Item que el SKU no tapa se heredan con procedencia ITEM,
// y el set va ordenado base primero y después por factor ascendente.
func TestResolveForSKU_HerenciaYOrden(t *testing.T) {
	item := &entity.Item{ID: "item-1", BaseUnitCode: "PCS"}
	sku := &entity.SKU{ID: "sku-1", ItemID: "item-1", BaseUnitCode: "PCS"}
	itemOvs := []*entity.UnitOverride{
		override(entity.ScopeItem, "item-1", "CASE", "144"),
		override(entity.ScopeItem, "item-1", "DOZ", "12"),
	}
	skuOvs := []*entity.UnitOverride{override(entity.ScopeSKU, "sku-1", "BOX", "24")}

	got := uom.ResolveForSKU(item, sku, itemOvs, skuOvs, lookupName)

	require.Len(t, got, 4)
	codes := []string{got[0].UnitCode, got[1].UnitCode, got[2].UnitCode, got[3].UnitCode}
	assert.Equal(t, []string{"PCS", "DOZ", "BOX", "CASE"}, codes)
	assert.Equal(t, uom.ProvenanceItem, got[1].Provenance)
	assert.Equal(t, uom.ProvenanceSkuOverride, got[2].Provenance)
	assert.Equal(t, uom.ProvenanceItem, got[3].Provenance)

	// Ningún código puede repetirse en el set resuelto.
	seen := map[string]bool{}
	for _, u := range got {
		assert.False(t, seen[u.UnitCode], "código duplicado %s", u.UnitCode)
		seen[u.UnitCode] = true
	}
}

func TestResolveForItem(t *testing.T) {
	item := &entity.Item{ID: "item-1", BaseUnitCode: "PCS"}
	ovs := []*entity.UnitOverride{override(entity.ScopeItem, "item-1", "DOZ", "12")}

	got := uom.ResolveForItem(item, ovs, lookupName)

	require.Len(t, got, 2)
	assert.Equal(t, "PCS", got[0].UnitCode)
	assert.Equal(t, uom.ProvenanceBase, got[0].Provenance)
	assert.Equal(t, "DOZ", got[1].UnitCode)
	assert.Equal(t, uom.ProvenanceItem, got[1].Provenance)
}

func TestFindUnit(t *testing.T) {
	units := uom.ResolveForItem(&entity.Item{ID: "i", BaseUnitCode: "PCS"}, nil, lookupName)
	u, ok := uom.FindUnit(units, "PCS")
	require.True(t, ok)
	assert.Equal(t, "PCS", u.UnitCode)

	_, ok = uom.FindUnit(units, "DOZ")
	assert.False(t, ok)
}
