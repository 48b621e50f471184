package repository

import "github.com/jhoicas/uom-engine/internal/domain/entity"

// UOMRepository define el puerto de persistencia para el catálogo de unidades (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type UOMRepository interface {
	Create(u *entity.UOM) error
	GetByCode(code string) (*entity.UOM, error)
	List() ([]*entity.UOM, error)
	Update(u *entity.UOM) error
	Delete(code string) error
	// IsReferenced indica si algún override (de Item o de SKU) usa la unidad.
	IsReferenced(code string) (bool, error)
	ListClasses() ([]*entity.UOMClass, error)
	// GetClassFactor factor de catálogo de la unidad hacia la base de su clase.
	GetClassFactor(classCode, unitCode string) (*entity.UOMConversion, error)
}
