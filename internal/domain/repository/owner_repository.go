package repository

import "github.com/jhoicas/uom-engine/internal/domain/entity"

// ItemRepository lectura del maestro de artículos. El motor UOM no crea ni
// modifica items; son datos de un colaborador externo.
type ItemRepository interface {
	GetByID(id string) (*entity.Item, error)
}

// SKURepository lectura de SKUs (misma nota que ItemRepository).
type SKURepository interface {
	GetByID(id string) (*entity.SKU, error)
}
