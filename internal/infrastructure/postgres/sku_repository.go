package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo lectura de SKUs (misma nota que ItemRepo: tabla de un colaborador externo).
type SKURepo struct {
	q Querier
}

// NewSKURepository construye el adaptador. Pasar pool o tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

// GetByID obtiene un SKU por ID. (nil, nil) si no existe.
func (r *SKURepo) GetByID(id string) (*entity.SKU, error) {
	query := `
		SELECT id, item_id, code, name, base_unit_code, created_at, updated_at
		FROM skus WHERE id = $1`
	var s entity.SKU
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ItemID, &s.Code, &s.Name, &s.BaseUnitCode, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}
