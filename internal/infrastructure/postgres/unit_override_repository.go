package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
)

var _ repository.UnitOverrideRepository = (*UnitOverrideRepo)(nil)

// UnitOverrideRepo implementación única del puerto UnitOverrideRepository.
// Las tablas de Item y SKU son estructuralmente idénticas; el repo se
// parametriza con la tabla y la columna de propietario en vez de duplicarse.
type UnitOverrideRepo struct {
	q        Querier
	scope    entity.OwnerScope
	table    string
	ownerCol string
}

// NewItemUnitOverrideRepository adaptador sobre item_unit_overrides. Pasar pool o tx (Querier).
func NewItemUnitOverrideRepository(q Querier) *UnitOverrideRepo {
	return &UnitOverrideRepo{q: q, scope: entity.ScopeItem, table: "item_unit_overrides", ownerCol: "item_id"}
}

// NewSkuUnitOverrideRepository adaptador sobre sku_unit_overrides. Pasar pool o tx (Querier).
func NewSkuUnitOverrideRepository(q Querier) *UnitOverrideRepo {
	return &UnitOverrideRepo{q: q, scope: entity.ScopeSKU, table: "sku_unit_overrides", ownerCol: "sku_id"}
}

func (r *UnitOverrideRepo) columns() string {
	return fmt.Sprintf(`id, %s, unit_code, factor, rounding_precision, description,
		is_default_transaction, is_purchasing, is_sales, is_manufacturing, active, created_at, updated_at`, r.ownerCol)
}

// Create persiste un override nuevo.
func (r *UnitOverrideRepo) Create(ov *entity.UnitOverride) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`, r.table, r.columns())
	_, err := r.q.Exec(context.Background(), query,
		ov.ID, ov.OwnerID, ov.UnitCode, ov.Factor, ov.Precision, ov.Description,
		ov.IsDefaultTransaction, ov.IsPurchasing, ov.IsSales, ov.IsManufacturing,
		ov.Active, ov.CreatedAt, ov.UpdatedAt,
	)
	if err != nil {
		return r.mapWriteError(err, "insert override")
	}
	return nil
}

// FindOne obtiene el override de (propietario, unidad). (nil, nil) si no existe.
func (r *UnitOverrideRepo) FindOne(ownerID, unitCode string) (*entity.UnitOverride, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND unit_code = $2`, r.columns(), r.table, r.ownerCol)
	ov, err := r.scanOne(r.q.QueryRow(context.Background(), query, ownerID, unitCode))
	if err != nil {
		return nil, fmt.Errorf("get override: %w", err)
	}
	return ov, nil
}

// ListByOwner devuelve los overrides del propietario por factor ascendente
// (unidad más pequeña primero), con el código como desempate.
func (r *UnitOverrideRepo) ListByOwner(ownerID string) ([]*entity.UnitOverride, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY factor, unit_code`, r.columns(), r.table, r.ownerCol)
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer rows.Close()

	var out []*entity.UnitOverride
	for rows.Next() {
		ov, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		out = append(out, ov)
	}
	return out, rows.Err()
}

// Update actualiza los campos mutables; la clave (propietario, unidad) no cambia.
func (r *UnitOverrideRepo) Update(ov *entity.UnitOverride) error {
	query := fmt.Sprintf(`
		UPDATE %s SET factor = $3, rounding_precision = $4, description = $5,
			is_default_transaction = $6, is_purchasing = $7, is_sales = $8,
			is_manufacturing = $9, active = $10, updated_at = $11
		WHERE %s = $1 AND unit_code = $2`, r.table, r.ownerCol)
	cmd, err := r.q.Exec(context.Background(), query,
		ov.OwnerID, ov.UnitCode, ov.Factor, ov.Precision, ov.Description,
		ov.IsDefaultTransaction, ov.IsPurchasing, ov.IsSales, ov.IsManufacturing,
		ov.Active, ov.UpdatedAt,
	)
	if err != nil {
		return r.mapWriteError(err, "update override")
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el override de (propietario, unidad).
func (r *UnitOverrideRepo) Delete(ownerID, unitCode string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND unit_code = $2`, r.table, r.ownerCol)
	cmd, err := r.q.Exec(context.Background(), query, ownerID, unitCode)
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindDefault devuelve el override con default-transaction activo del propietario, si existe.
func (r *UnitOverrideRepo) FindDefault(ownerID string) (*entity.UnitOverride, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND is_default_transaction`, r.columns(), r.table, r.ownerCol)
	ov, err := r.scanOne(r.q.QueryRow(context.Background(), query, ownerID))
	if err != nil {
		return nil, fmt.Errorf("get default override: %w", err)
	}
	return ov, nil
}

func (r *UnitOverrideRepo) scanOne(row pgx.Row) (*entity.UnitOverride, error) {
	ov := entity.UnitOverride{Scope: r.scope}
	err := row.Scan(
		&ov.ID, &ov.OwnerID, &ov.UnitCode, &ov.Factor, &ov.Precision, &ov.Description,
		&ov.IsDefaultTransaction, &ov.IsPurchasing, &ov.IsSales, &ov.IsManufacturing,
		&ov.Active, &ov.CreatedAt, &ov.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ov, nil
}

func (r *UnitOverrideRepo) scanRow(rows pgx.Rows) (*entity.UnitOverride, error) {
	ov := entity.UnitOverride{Scope: r.scope}
	err := rows.Scan(
		&ov.ID, &ov.OwnerID, &ov.UnitCode, &ov.Factor, &ov.Precision, &ov.Description,
		&ov.IsDefaultTransaction, &ov.IsPurchasing, &ov.IsSales, &ov.IsManufacturing,
		&ov.Active, &ov.CreatedAt, &ov.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ov, nil
}

// mapWriteError distingue los dos índices únicos de la tabla: la clave
// compuesta (owner, unit) produce ErrDuplicateOverride; el índice parcial
// sobre is_default_transaction produce ErrDefaultConflict. El índice parcial
// es el respaldo físico del invariante "un default por propietario".
func (r *UnitOverrideRepo) mapWriteError(err error, op string) error {
	if isUniqueViolation(err) {
		if strings.Contains(constraintName(err), "default") {
			return domain.ErrDefaultConflict
		}
		return domain.ErrDuplicateOverride
	}
	return fmt.Errorf("%s: %w", op, err)
}
