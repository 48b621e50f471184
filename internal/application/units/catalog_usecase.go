package units

import (
	"time"

	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
	domuom "github.com/jhoicas/uom-engine/internal/domain/uom"
	"github.com/shopspring/decimal"
)

// CatalogUseCase mantenimiento y consulta del catálogo de unidades.
// El catálogo es dato de referencia: los overrides lo consultan, nunca lo mutan.
type CatalogUseCase struct {
	uoms repository.UOMRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(uoms repository.UOMRepository) *CatalogUseCase {
	return &CatalogUseCase{uoms: uoms}
}

// Lookup busca una unidad por código.
func (uc *CatalogUseCase) Lookup(code string) (*dto.UOMResponse, error) {
	u, err := uc.uoms.GetByCode(domuom.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnitNotFound
	}
	return toUOMResponse(u), nil
}

// List devuelve el catálogo completo ordenado por sort_order.
func (uc *CatalogUseCase) List() (*dto.UOMListResponse, error) {
	list, err := uc.uoms.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UOMResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUOMResponse(u))
	}
	return &dto.UOMListResponse{Items: items}, nil
}

// ListClasses devuelve las clases de magnitud.
func (uc *CatalogUseCase) ListClasses() ([]dto.UOMClassResponse, error) {
	classes, err := uc.uoms.ListClasses()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UOMClassResponse, 0, len(classes))
	for _, c := range classes {
		out = append(out, dto.UOMClassResponse{Code: c.Code, Name: c.Name})
	}
	return out, nil
}

// Create da de alta una unidad en el catálogo.
func (uc *CatalogUseCase) Create(in dto.CreateUOMRequest) (*dto.UOMResponse, error) {
	code := domuom.NormalizeCode(in.Code)
	if code == "" || in.Name == "" || in.ClassCode == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.uoms.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	u := &entity.UOM{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
		ClassCode:   in.ClassCode,
		SortOrder:   in.SortOrder,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.uoms.Create(u); err != nil {
		return nil, err
	}
	return toUOMResponse(u), nil
}

// Update patch parcial de una unidad; el código y la clase no cambian.
func (uc *CatalogUseCase) Update(code string, in dto.UpdateUOMRequest) (*dto.UOMResponse, error) {
	u, err := uc.uoms.GetByCode(domuom.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnitNotFound
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Description != nil {
		u.Description = *in.Description
	}
	if in.SortOrder != nil {
		u.SortOrder = *in.SortOrder
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	u.UpdatedAt = time.Now()
	if err := uc.uoms.Update(u); err != nil {
		return nil, err
	}
	return toUOMResponse(u), nil
}

// Delete elimina una unidad no referenciada. Una unidad con overrides que la
// usan es inmutable frente a borrado.
func (uc *CatalogUseCase) Delete(code string) error {
	norm := domuom.NormalizeCode(code)
	u, err := uc.uoms.GetByCode(norm)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUnitNotFound
	}
	referenced, err := uc.uoms.IsReferenced(norm)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrUnitReferenced
	}
	return uc.uoms.Delete(norm)
}

// ToClassBase lleva una cantidad a la unidad base de la clase de la unidad,
// con el factor de catálogo. Matemática entre unidades comparables, separada
// de los factores por propietario.
func (uc *CatalogUseCase) ToClassBase(code string, qty decimal.Decimal) (*dto.ClassBaseResponse, error) {
	norm := domuom.NormalizeCode(code)
	u, err := uc.uoms.GetByCode(norm)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnitNotFound
	}
	conv, err := uc.uoms.GetClassFactor(u.ClassCode, norm)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, domain.ErrUnitNotAvailable
	}
	base, err := domuom.ToClassBase(qty, conv.Factor)
	if err != nil {
		return nil, err
	}
	return &dto.ClassBaseResponse{
		UnitCode:  norm,
		ClassCode: u.ClassCode,
		Quantity:  qty,
		BaseValue: base,
	}, nil
}

func toUOMResponse(u *entity.UOM) *dto.UOMResponse {
	if u == nil {
		return nil
	}
	return &dto.UOMResponse{
		Code:        u.Code,
		Name:        u.Name,
		Description: u.Description,
		ClassCode:   u.ClassCode,
		SortOrder:   u.SortOrder,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
