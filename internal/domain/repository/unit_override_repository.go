package repository

import "github.com/jhoicas/uom-engine/internal/domain/entity"

// UnitOverrideRepository puerto de persistencia para los overrides de unidad.
// Es agnóstico del scope: la implementación se instancia una vez contra la
// tabla de Item y otra contra la de SKU, con la misma lógica.
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type UnitOverrideRepository interface {
	Create(ov *entity.UnitOverride) error
	FindOne(ownerID, unitCode string) (*entity.UnitOverride, error)
	// ListByOwner devuelve los overrides del propietario ordenados por factor ascendente.
	ListByOwner(ownerID string) ([]*entity.UnitOverride, error)
	Update(ov *entity.UnitOverride) error
	Delete(ownerID, unitCode string) error
	// FindDefault devuelve el override con default-transaction activo, si existe.
	FindDefault(ownerID string) (*entity.UnitOverride, error)
}
