package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
)

var _ repository.UOMRepository = (*UOMRepo)(nil)

// UOMRepo implementación del puerto UOMRepository sobre PostgreSQL (usable con pool o tx).
type UOMRepo struct {
	q Querier
}

// NewUOMRepository construye el adaptador de persistencia del catálogo. Pasar pool o tx (Querier).
func NewUOMRepository(q Querier) *UOMRepo {
	return &UOMRepo{q: q}
}

const uomColumns = `code, name, description, class_code, sort_order, active, created_at, updated_at`

// Create persiste una unidad nueva en el catálogo.
func (r *UOMRepo) Create(u *entity.UOM) error {
	query := `
		INSERT INTO uoms (code, name, description, class_code, sort_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.Code, u.Name, u.Description, u.ClassCode, u.SortOrder, u.Active, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert uom: %w", err)
	}
	return nil
}

// GetByCode obtiene una unidad por código. (nil, nil) si no existe.
func (r *UOMRepo) GetByCode(code string) (*entity.UOM, error) {
	query := `SELECT ` + uomColumns + ` FROM uoms WHERE code = $1`
	var u entity.UOM
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&u.Code, &u.Name, &u.Description, &u.ClassCode, &u.SortOrder, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get uom: %w", err)
	}
	return &u, nil
}

// List devuelve el catálogo ordenado por sort_order y código.
func (r *UOMRepo) List() ([]*entity.UOM, error) {
	query := `SELECT ` + uomColumns + ` FROM uoms ORDER BY sort_order, code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list uoms: %w", err)
	}
	defer rows.Close()

	var out []*entity.UOM
	for rows.Next() {
		var u entity.UOM
		if err := rows.Scan(&u.Code, &u.Name, &u.Description, &u.ClassCode, &u.SortOrder, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan uom: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Update actualiza nombre, descripción, orden y flag de la unidad. El código y la clase no cambian.
func (r *UOMRepo) Update(u *entity.UOM) error {
	query := `
		UPDATE uoms SET name = $2, description = $3, sort_order = $4, active = $5, updated_at = $6
		WHERE code = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		u.Code, u.Name, u.Description, u.SortOrder, u.Active, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update uom: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

// Delete elimina la unidad del catálogo. El chequeo de referencias lo hace el caso de uso.
func (r *UOMRepo) Delete(code string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM uoms WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete uom: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

// IsReferenced indica si la unidad aparece en algún override de Item o de SKU.
func (r *UOMRepo) IsReferenced(code string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM item_unit_overrides WHERE unit_code = $1)
		    OR EXISTS (SELECT 1 FROM sku_unit_overrides WHERE unit_code = $1)`
	var referenced bool
	if err := r.q.QueryRow(context.Background(), query, code).Scan(&referenced); err != nil {
		return false, fmt.Errorf("uom references: %w", err)
	}
	return referenced, nil
}

// ListClasses devuelve las clases de magnitud.
func (r *UOMRepo) ListClasses() ([]*entity.UOMClass, error) {
	rows, err := r.q.Query(context.Background(), `SELECT code, name FROM uom_classes ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list uom classes: %w", err)
	}
	defer rows.Close()

	var out []*entity.UOMClass
	for rows.Next() {
		var c entity.UOMClass
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scan uom class: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// GetClassFactor factor de catálogo de la unidad hacia la base de su clase. (nil, nil) si no hay fila.
func (r *UOMRepo) GetClassFactor(classCode, unitCode string) (*entity.UOMConversion, error) {
	query := `SELECT class_code, unit_code, factor FROM uom_conversions WHERE class_code = $1 AND unit_code = $2`
	var conv entity.UOMConversion
	err := r.q.QueryRow(context.Background(), query, classCode, unitCode).Scan(
		&conv.ClassCode, &conv.UnitCode, &conv.Factor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class factor: %w", err)
	}
	return &conv, nil
}
