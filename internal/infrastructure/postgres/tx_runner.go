package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/uom-engine/internal/application/units"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
)

var _ units.OverrideTxRunner = (*OverrideTxRunner)(nil)

// OverrideTxRunner ejecuta callbacks sobre el repo de overrides de un scope
// dentro de una transacción serializable. El aislamiento serializable junto
// con el índice parcial único cierran la ventana check-then-act del
// invariante de unidad por defecto.
type OverrideTxRunner struct {
	pool  *pgxpool.Pool
	scope entity.OwnerScope
}

// NewOverrideTxRunner construye el runner para un scope.
func NewOverrideTxRunner(pool *pgxpool.Pool, scope entity.OwnerScope) *OverrideTxRunner {
	return &OverrideTxRunner{pool: pool, scope: scope}
}

// Run inicia la transacción, ejecuta fn con el repo atado a la tx y hace Commit o Rollback.
func (r *OverrideTxRunner) Run(ctx context.Context, fn func(repo repository.UnitOverrideRepository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var repo repository.UnitOverrideRepository
	if r.scope == entity.ScopeItem {
		repo = NewItemUnitOverrideRepository(tx)
	} else {
		repo = NewSkuUnitOverrideRepository(tx)
	}

	if err := fn(repo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("commit transaction (reintentable): %w", err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
