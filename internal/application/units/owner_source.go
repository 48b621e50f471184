package units

import (
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
)

// ItemOwnerSource adapta el repositorio de Items al puerto OwnerSource.
type ItemOwnerSource struct {
	items repository.ItemRepository
}

// NewItemOwnerSource construye el adaptador.
func NewItemOwnerSource(items repository.ItemRepository) *ItemOwnerSource {
	return &ItemOwnerSource{items: items}
}

// BaseUnitCode devuelve la unidad base del Item o ErrItemNotFound.
func (s *ItemOwnerSource) BaseUnitCode(ownerID string) (string, error) {
	item, err := s.items.GetByID(ownerID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", domain.ErrItemNotFound
	}
	return item.BaseUnitCode, nil
}

// SkuOwnerSource adapta el repositorio de SKUs al puerto OwnerSource.
type SkuOwnerSource struct {
	skus repository.SKURepository
}

// NewSkuOwnerSource construye el adaptador.
func NewSkuOwnerSource(skus repository.SKURepository) *SkuOwnerSource {
	return &SkuOwnerSource{skus: skus}
}

// BaseUnitCode devuelve la unidad base del SKU o ErrSkuNotFound.
func (s *SkuOwnerSource) BaseUnitCode(ownerID string) (string, error) {
	sku, err := s.skus.GetByID(ownerID)
	if err != nil {
		return "", err
	}
	if sku == nil {
		return "", domain.ErrSkuNotFound
	}
	return sku.BaseUnitCode, nil
}
