// Package units contiene los casos de uso del motor de unidades de medida:
// el store de overrides (Item y SKU con una sola implementación), la
// resolución de unidades disponibles, la conversión de cantidades y el
// mantenimiento del catálogo.
package units

import (
	"context"

	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
	domuom "github.com/jhoicas/uom-engine/internal/domain/uom"
)

// OwnerSource capacidad mínima que el store de overrides exige de un
// propietario: existir y tener unidad base. Se implementa una vez sobre el
// repositorio de Items y otra sobre el de SKUs, de modo que las reglas de
// negocio de ambos scopes no puedan divergir.
type OwnerSource interface {
	// BaseUnitCode devuelve la unidad base del propietario.
	// Falla con domain.ErrItemNotFound / domain.ErrSkuNotFound si no existe.
	BaseUnitCode(ownerID string) (string, error)
}

// OverrideTxRunner ejecuta fn dentro de una transacción serializable con un
// repositorio de overrides atado a ella. Cierra la ventana check-then-act del
// invariante de unidad por defecto frente a escritores concurrentes.
type OverrideTxRunner interface {
	Run(ctx context.Context, fn func(repo repository.UnitOverrideRepository) error) error
}

// ChartPDFGenerator renderiza la tabla de conversión de un Item como PDF imprimible.
type ChartPDFGenerator interface {
	GenerateChart(ctx context.Context, item *entity.Item, units []domuom.AvailableUnit) ([]byte, error)
}
