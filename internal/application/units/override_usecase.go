package units

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
	domuom "github.com/jhoicas/uom-engine/internal/domain/uom"
	"github.com/shopspring/decimal"
)

// OverrideUseCase store de overrides de unidad para UN scope (Item o SKU).
// La lógica es idéntica en ambos scopes; se construyen dos instancias con
// distinto OwnerSource y repositorio en lugar de duplicar el servicio.
type OverrideUseCase struct {
	scope  entity.OwnerScope
	owners OwnerSource
	uoms   repository.UOMRepository
	repo   repository.UnitOverrideRepository
	tx     OverrideTxRunner
}

// NewOverrideUseCase construye el store para un scope concreto.
func NewOverrideUseCase(scope entity.OwnerScope, owners OwnerSource, uoms repository.UOMRepository, repo repository.UnitOverrideRepository, tx OverrideTxRunner) *OverrideUseCase {
	return &OverrideUseCase{scope: scope, owners: owners, uoms: uoms, repo: repo, tx: tx}
}

// Create registra una unidad no-base para el propietario.
// La unidad base no es registrable: su factor 1 es implícito y no se almacena.
func (uc *OverrideUseCase) Create(ctx context.Context, ownerID string, in dto.CreateOverrideRequest) (*dto.OverrideResponse, error) {
	code := domuom.NormalizeCode(in.UnitCode)

	base, err := uc.owners.BaseUnitCode(ownerID)
	if err != nil {
		return nil, err
	}
	if code == base {
		return nil, domain.ErrInvalidOverride
	}
	u, err := uc.uoms.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnitNotFound
	}
	if in.Factor.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidFactor
	}
	existing, err := uc.repo.FindOne(ownerID, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateOverride
	}

	precision := entity.DefaultPrecision
	if in.Precision != nil {
		if *in.Precision < 0 {
			return nil, domain.ErrInvalidInput
		}
		precision = *in.Precision
	}
	now := time.Now()
	ov := &entity.UnitOverride{
		ID:                   uuid.New().String(),
		Scope:                uc.scope,
		OwnerID:              ownerID,
		UnitCode:             code,
		Factor:               in.Factor,
		Precision:            precision,
		Description:          in.Description,
		IsDefaultTransaction: in.IsDefaultTransaction,
		IsPurchasing:         in.IsPurchasing,
		IsSales:              in.IsSales,
		IsManufacturing:      in.IsManufacturing,
		Active:               true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if ov.IsDefaultTransaction {
		// Check y escritura bajo la misma transacción serializable: dos
		// escritores no pueden dejar dos defaults para el mismo propietario.
		err = uc.tx.Run(ctx, func(repo repository.UnitOverrideRepository) error {
			current, err := repo.FindDefault(ownerID)
			if err != nil {
				return err
			}
			if current != nil {
				return domain.ErrDefaultConflict
			}
			return repo.Create(ov)
		})
	} else {
		err = uc.repo.Create(ov)
	}
	if err != nil {
		return nil, err
	}
	return toOverrideResponse(ov), nil
}

// Update aplica un patch parcial; la clave (propietario, unidad) no cambia.
func (uc *OverrideUseCase) Update(ctx context.Context, ownerID, unitCode string, in dto.UpdateOverrideRequest) (*dto.OverrideResponse, error) {
	code := domuom.NormalizeCode(unitCode)
	if in.Factor != nil && in.Factor.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidFactor
	}
	if in.Precision != nil && *in.Precision < 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.UnitOverride
	apply := func(repo repository.UnitOverrideRepository) error {
		ov, err := repo.FindOne(ownerID, code)
		if err != nil {
			return err
		}
		if ov == nil {
			return domain.ErrNotFound
		}
		if in.Factor != nil {
			ov.Factor = *in.Factor
		}
		if in.Precision != nil {
			ov.Precision = *in.Precision
		}
		if in.Description != nil {
			ov.Description = *in.Description
		}
		if in.IsPurchasing != nil {
			ov.IsPurchasing = *in.IsPurchasing
		}
		if in.IsSales != nil {
			ov.IsSales = *in.IsSales
		}
		if in.IsManufacturing != nil {
			ov.IsManufacturing = *in.IsManufacturing
		}
		if in.Active != nil {
			ov.Active = *in.Active
		}
		if in.IsDefaultTransaction != nil {
			if *in.IsDefaultTransaction && !ov.IsDefaultTransaction {
				current, err := repo.FindDefault(ownerID)
				if err != nil {
					return err
				}
				if current != nil && current.UnitCode != ov.UnitCode {
					return domain.ErrDefaultConflict
				}
			}
			ov.IsDefaultTransaction = *in.IsDefaultTransaction
		}
		ov.UpdatedAt = time.Now()
		if err := repo.Update(ov); err != nil {
			return err
		}
		out = ov
		return nil
	}

	var err error
	if in.IsDefaultTransaction != nil && *in.IsDefaultTransaction {
		err = uc.tx.Run(ctx, apply)
	} else {
		err = apply(uc.repo)
	}
	if err != nil {
		return nil, err
	}
	return toOverrideResponse(out), nil
}

// Remove elimina el override. Sin chequeo de integridad contra documentos
// históricos: eso es responsabilidad del colaborador transaccional.
func (uc *OverrideUseCase) Remove(ownerID, unitCode string) error {
	code := domuom.NormalizeCode(unitCode)
	ov, err := uc.repo.FindOne(ownerID, code)
	if err != nil {
		return err
	}
	if ov == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ownerID, code)
}

// List devuelve los overrides del propietario, unidad más pequeña primero.
func (uc *OverrideUseCase) List(ownerID string) (*dto.OverrideListResponse, error) {
	if _, err := uc.owners.BaseUnitCode(ownerID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OverrideResponse, 0, len(list))
	for _, ov := range list {
		items = append(items, *toOverrideResponse(ov))
	}
	return &dto.OverrideListResponse{OwnerID: ownerID, Items: items}, nil
}

// Get devuelve un override concreto.
func (uc *OverrideUseCase) Get(ownerID, unitCode string) (*dto.OverrideResponse, error) {
	ov, err := uc.repo.FindOne(ownerID, domuom.NormalizeCode(unitCode))
	if err != nil {
		return nil, err
	}
	if ov == nil {
		return nil, domain.ErrNotFound
	}
	return toOverrideResponse(ov), nil
}

func toOverrideResponse(ov *entity.UnitOverride) *dto.OverrideResponse {
	if ov == nil {
		return nil
	}
	return &dto.OverrideResponse{
		ID:                   ov.ID,
		Scope:                string(ov.Scope),
		OwnerID:              ov.OwnerID,
		UnitCode:             ov.UnitCode,
		Factor:               ov.Factor,
		Precision:            ov.Precision,
		Description:          ov.Description,
		IsDefaultTransaction: ov.IsDefaultTransaction,
		IsPurchasing:         ov.IsPurchasing,
		IsSales:              ov.IsSales,
		IsManufacturing:      ov.IsManufacturing,
		Active:               ov.Active,
		CreatedAt:            ov.CreatedAt,
		UpdatedAt:            ov.UpdatedAt,
	}
}
