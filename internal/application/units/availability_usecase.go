package units

import (
	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
	domuom "github.com/jhoicas/uom-engine/internal/domain/uom"
)

// AvailabilityUseCase resuelve el set de unidades disponibles de un SKU o Item.
// Aquí vive la regla de herencia: un SKU que comparte la unidad base de su Item
// hereda las unidades del Item (las propias tapan a las homónimas); un SKU con
// base propia queda fuera de la herencia.
type AvailabilityUseCase struct {
	items         repository.ItemRepository
	skus          repository.SKURepository
	itemOverrides repository.UnitOverrideRepository
	skuOverrides  repository.UnitOverrideRepository
	uoms          repository.UOMRepository
}

// NewAvailabilityUseCase construye el resolver.
func NewAvailabilityUseCase(
	items repository.ItemRepository,
	skus repository.SKURepository,
	itemOverrides repository.UnitOverrideRepository,
	skuOverrides repository.UnitOverrideRepository,
	uoms repository.UOMRepository,
) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		items:         items,
		skus:          skus,
		itemOverrides: itemOverrides,
		skuOverrides:  skuOverrides,
		uoms:          uoms,
	}
}

// ForSKU devuelve el set completo, deduplicado y etiquetado por procedencia.
func (uc *AvailabilityUseCase) ForSKU(skuID string) (*dto.AvailableUnitsResponse, error) {
	sku, units, err := uc.resolveSKU(skuID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableUnitsResponse{
		OwnerID:      sku.ID,
		Scope:        string(entity.ScopeSKU),
		BaseUnitCode: sku.BaseUnitCode,
		Units:        toUnitResponses(units),
	}, nil
}

// ForItem análogo a nivel Item: su base implícita más sus propios overrides.
func (uc *AvailabilityUseCase) ForItem(itemID string) (*dto.AvailableUnitsResponse, error) {
	item, units, err := uc.resolveItem(itemID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableUnitsResponse{
		OwnerID:      item.ID,
		Scope:        string(entity.ScopeItem),
		BaseUnitCode: item.BaseUnitCode,
		Units:        toUnitResponses(units),
	}, nil
}

// resolveSKU carga SKU e Item padre y delega la combinación al dominio.
// La ausencia del Item padre es una violación de invariante de datos; se
// comprueba igualmente y se reporta como ErrItemNotFound.
func (uc *AvailabilityUseCase) resolveSKU(skuID string) (*entity.SKU, []domuom.AvailableUnit, error) {
	sku, err := uc.skus.GetByID(skuID)
	if err != nil {
		return nil, nil, err
	}
	if sku == nil {
		return nil, nil, domain.ErrSkuNotFound
	}
	item, err := uc.items.GetByID(sku.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.ErrItemNotFound
	}

	skuOvs, err := uc.skuOverrides.ListByOwner(sku.ID)
	if err != nil {
		return nil, nil, err
	}
	var itemOvs []*entity.UnitOverride
	if item.BaseUnitCode == sku.BaseUnitCode {
		if itemOvs, err = uc.itemOverrides.ListByOwner(item.ID); err != nil {
			return nil, nil, err
		}
	}
	return sku, domuom.ResolveForSKU(item, sku, itemOvs, skuOvs, uc.unitName), nil
}

func (uc *AvailabilityUseCase) resolveItem(itemID string) (*entity.Item, []domuom.AvailableUnit, error) {
	item, err := uc.items.GetByID(itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.ErrItemNotFound
	}
	ovs, err := uc.itemOverrides.ListByOwner(item.ID)
	if err != nil {
		return nil, nil, err
	}
	return item, domuom.ResolveForItem(item, ovs, uc.unitName), nil
}

// unitName nombre de catálogo de la unidad; si el código no está catalogado
// (posible para unidades base heredadas de datos legados) se usa el código.
func (uc *AvailabilityUseCase) unitName(code string) string {
	u, err := uc.uoms.GetByCode(code)
	if err != nil || u == nil {
		return code
	}
	return u.Name
}

func toUnitResponses(units []domuom.AvailableUnit) []dto.AvailableUnitResponse {
	out := make([]dto.AvailableUnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, dto.AvailableUnitResponse{
			UnitCode:   u.UnitCode,
			UnitName:   u.UnitName,
			Provenance: string(u.Provenance),
			Factor:     u.Factor,
			Precision:  u.Precision,
		})
	}
	return out
}
