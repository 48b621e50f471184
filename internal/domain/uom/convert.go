package uom

import (
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Convert traduce una cantidad entre dos unidades del mismo propietario usando
// sus factores hacia la unidad base:
//
//	base = cantidad × factorOrigen
//	destino = base ÷ factorDestino
//
// El resultado se redondea a los decimales de la unidad DESTINO con redondeo
// mitad-lejos-de-cero (Decimal.Round). Un factor no positivo almacenado viola
// el invariante del store; se rechaza explícitamente en lugar de dividir.
func Convert(quantity, fromFactor, toFactor decimal.Decimal, toPrecision int32) (decimal.Decimal, error) {
	if fromFactor.LessThanOrEqual(decimal.Zero) || toFactor.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, domain.ErrInvalidFactor
	}
	base := quantity.Mul(fromFactor)
	return base.Div(toFactor).Round(toPrecision), nil
}

// ToClassBase convierte una cantidad a la unidad base de su clase usando un
// factor de catálogo (UOMConversion). Misma aritmética, sin redondeo por
// precisión de propietario: el catálogo no conoce precisiones.
func ToClassBase(quantity, factor decimal.Decimal) (decimal.Decimal, error) {
	if factor.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, domain.ErrInvalidFactor
	}
	return quantity.Mul(factor), nil
}
