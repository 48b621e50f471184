package units

import (
	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	domuom "github.com/jhoicas/uom-engine/internal/domain/uom"
	"github.com/shopspring/decimal"
)

// ConversionUseCase convierte cantidades entre unidades del set resuelto de un
// propietario, redondeando a la precisión de la unidad destino.
type ConversionUseCase struct {
	availability *AvailabilityUseCase
}

// NewConversionUseCase construye el motor de conversión.
func NewConversionUseCase(availability *AvailabilityUseCase) *ConversionUseCase {
	return &ConversionUseCase{availability: availability}
}

// ForSKU convierte una cantidad entre dos unidades disponibles para el SKU.
func (uc *ConversionUseCase) ForSKU(skuID string, in dto.ConvertRequest) (*dto.ConvertResponse, error) {
	return uc.convert(string(entity.ScopeSKU), skuID, in, func(id string) ([]domuom.AvailableUnit, error) {
		_, units, err := uc.availability.resolveSKU(id)
		return units, err
	})
}

// ForItem convierte contra el set del Item: sus overrides más su base implícita.
func (uc *ConversionUseCase) ForItem(itemID string, in dto.ConvertRequest) (*dto.ConvertResponse, error) {
	return uc.convert(string(entity.ScopeItem), itemID, in, func(id string) ([]domuom.AvailableUnit, error) {
		_, units, err := uc.availability.resolveItem(id)
		return units, err
	})
}

func (uc *ConversionUseCase) convert(scope, ownerID string, in dto.ConvertRequest, resolve func(id string) ([]domuom.AvailableUnit, error)) (*dto.ConvertResponse, error) {
	from := domuom.NormalizeCode(in.FromUnit)
	to := domuom.NormalizeCode(in.ToUnit)

	// Cortocircuito de unidad idéntica: se devuelve la cantidad tal cual sin
	// tocar la persistencia. Convierte incluso códigos nunca registrados;
	// comportamiento contractual, no un descuido.
	if from == to {
		return uc.response(scope, ownerID, from, to, in.Quantity, in.Quantity), nil
	}

	units, err := resolve(ownerID)
	if err != nil {
		return nil, err
	}
	fromUnit, ok := domuom.FindUnit(units, from)
	if !ok {
		return nil, domain.ErrUnitNotAvailable
	}
	toUnit, ok := domuom.FindUnit(units, to)
	if !ok {
		return nil, domain.ErrUnitNotAvailable
	}

	result, err := domuom.Convert(in.Quantity, fromUnit.Factor, toUnit.Factor, toUnit.Precision)
	if err != nil {
		return nil, err
	}
	return uc.response(scope, ownerID, from, to, in.Quantity, result), nil
}

func (uc *ConversionUseCase) response(scope, ownerID, from, to string, qty, result decimal.Decimal) *dto.ConvertResponse {
	return &dto.ConvertResponse{
		OwnerID:  ownerID,
		Scope:    scope,
		FromUnit: from,
		ToUnit:   to,
		Quantity: qty,
		Result:   result,
	}
}
