package uom_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/uom"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Escenario canónico: DOZ (factor 12) a CASE (factor 144, 0 decimales).
// 12 DOZ → 144 en base → 1 CASE exacto.
func TestConvert_DozACase(t *testing.T) {
	got, err := uom.Convert(dec("12"), dec("12"), dec("144"), 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1")), "12 DOZ deben ser exactamente 1 CASE, se obtuvo %s", got)
}

func TestConvert_RedondeaALaPrecisionDestino(t *testing.T) {
	// 1 unidad base a una unidad de factor 3: 1/3 = 0.333... → 0.33 con 2 decimales.
	got, err := uom.Convert(dec("1"), dec("1"), dec("3"), 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("0.33")), "se obtuvo %s", got)
}

// El modo de redondeo es mitad-lejos-de-cero, también para negativos.
func TestConvert_MitadLejosDeCero(t *testing.T) {
	cases := []struct {
		qty       string
		precision int32
		want      string
	}{
		{"2.345", 2, "2.35"},
		{"-2.345", 2, "-2.35"},
		{"0.5", 0, "1"},
		{"-0.5", 0, "-1"},
		{"1.25", 1, "1.3"},
	}
	for _, tc := range cases {
		got, err := uom.Convert(dec(tc.qty), dec("1"), dec("1"), tc.precision)
		require.NoError(t, err)
		assert.True(t, got.Equal(dec(tc.want)), "convert(%s, prec %d) = %s, se esperaba %s", tc.qty, tc.precision, got, tc.want)
	}
}

func TestConvert_CeroYNegativos(t *testing.T) {
	got, err := uom.Convert(decimal.Zero, dec("12"), dec("144"), 2)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "cero convierte a cero en cualquier unidad")

	// Las cantidades negativas no se rechazan aquí: convierten proporcionalmente.
	got, err = uom.Convert(dec("-24"), dec("12"), dec("144"), 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("-2")), "se obtuvo %s", got)
}

// Un factor no positivo almacenado viola el invariante del store; la
// conversión debe fallar explícitamente, nunca producir Inf/NaN.
func TestConvert_FactorInvalido(t *testing.T) {
	_, err := uom.Convert(dec("5"), decimal.Zero, dec("12"), 2)
	assert.ErrorIs(t, err, domain.ErrInvalidFactor)

	_, err = uom.Convert(dec("5"), dec("12"), dec("-1"), 2)
	assert.ErrorIs(t, err, domain.ErrInvalidFactor)
}

// Ley de ida y vuelta: convertir A→B→A recupera la cantidad dentro de la
// tolerancia combinada de ambas precisiones.
func TestConvert_IdaYVuelta(t *testing.T) {
	const p1, p2 = int32(2), int32(2)
	tolerance := dec("0.01") // max(10^-p1, 10^-p2)

	for _, qty := range []string{"0", "1", "7", "36", "100.5"} {
		there, err := uom.Convert(dec(qty), dec("12"), dec("144"), p2)
		require.NoError(t, err)
		back, err := uom.Convert(there, dec("144"), dec("12"), p1)
		require.NoError(t, err)

		diff := back.Sub(dec(qty)).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"ida y vuelta de %s se desvió %s (> %s)", qty, diff, tolerance)
	}
}

func TestToClassBase(t *testing.T) {
	got, err := uom.ToClassBase(dec("2.5"), dec("1000"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("2500")), "2.5 kg deben ser 2500 g, se obtuvo %s", got)

	_, err = uom.ToClassBase(dec("1"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidFactor)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "DOZ", uom.NormalizeCode("  doz "))
	assert.Equal(t, "BOX", uom.NormalizeCode("Box"))
	assert.Equal(t, "PCS", uom.NormalizeCode("PCS"))
}
