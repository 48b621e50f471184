package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/uom-engine/internal/application/dto"
	"github.com/jhoicas/uom-engine/internal/application/units"
	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
)

func newConversionFixture(t *testing.T) (*units.ConversionUseCase, availabilityFixture) {
	t.Helper()
	f := newAvailabilityFixture(t)
	return units.NewConversionUseCase(f.uc), f
}

func TestConversionForSKU_DozACase(t *testing.T) {
	uc, f := newConversionFixture(t)
	seedOverride(t, f.itemOverrides, entity.ScopeItem, "item-1", "DOZ", "12")
	seedOverride(t, f.itemOverrides, entity.ScopeItem, "item-1", "CASE", "144")

	out, err := uc.ForSKU("sku-shared", dto.ConvertRequest{
		FromUnit: "doz", ToUnit: "case", Quantity: dec("12"),
	})
	require.NoError(t, err)

	// 12 DOZ son 144 PCS, es decir 1 CASE.
	assert.Equal(t, "DOZ", out.FromUnit)
	assert.Equal(t, "CASE", out.ToUnit)
	assert.True(t, out.Result.Equal(dec("1")), "result = %s", out.Result)
	assert.Equal(t, string(entity.ScopeSKU), out.Scope)
}

func TestConversionForSKU_DesdeYHaciaBase(t *testing.T) {
	uc, f := newConversionFixture(t)
	seedOverride(t, f.skuOverrides, entity.ScopeSKU, "sku-shared", "DOZ", "12")

	out, err := uc.ForSKU("sku-shared", dto.ConvertRequest{
		FromUnit: "DOZ", ToUnit: "PCS", Quantity: dec("2"),
	})
	require.NoError(t, err)
	assert.True(t, out.Result.Equal(dec("24")))

	out, err = uc.ForSKU("sku-shared", dto.ConvertRequest{
		FromUnit: "PCS", ToUnit: "DOZ", Quantity: dec("30"),
	})
	require.NoError(t, err)
	assert.True(t, out.Result.Equal(dec("2.5")))
}

func TestConversion_CortocircuitoMismaUnidad(t *testing.T) {
	uc, _ := newConversionFixture(t)

	// Misma unidad: la cantidad vuelve tal cual aunque el código no exista
	// ni en el catálogo ni en el set del propietario.
	out, err := uc.ForSKU("sku-shared", dto.ConvertRequest{
		FromUnit: "zz", ToUnit: "ZZ", Quantity: dec("7.777"),
	})
	require.NoError(t, err)
	assert.True(t, out.Result.Equal(dec("7.777")))
	assert.Equal(t, "ZZ", out.FromUnit)
	assert.Equal(t, "ZZ", out.ToUnit)

	// El cortocircuito ni siquiera exige que el propietario exista.
	_, err = uc.ForSKU("no-existe", dto.ConvertRequest{
		FromUnit: "PCS", ToUnit: "PCS", Quantity: dec("1"),
	})
	assert.NoError(t, err)
}

func TestConversion_UnidadNoDisponible(t *testing.T) {
	uc, f := newConversionFixture(t)
	seedOverride(t, f.itemOverrides, entity.ScopeItem, "item-1", "DOZ", "12")

	// CASE existe en catálogo pero el propietario no lo tiene registrado.
	_, err := uc.ForSKU("sku-shared", dto.ConvertRequest{
		FromUnit: "DOZ", ToUnit: "CASE", Quantity: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrUnitNotAvailable)

	_, err = uc.ForSKU("sku-shared", dto.ConvertRequest{
		FromUnit: "CASE", ToUnit: "DOZ", Quantity: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrUnitNotAvailable)

	// Los overrides del Item no aplican a un SKU con base propia.
	_, err = uc.ForSKU("sku-own", dto.ConvertRequest{
		FromUnit: "DOZ", ToUnit: "BOX", Quantity: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrUnitNotAvailable)
}

func TestConversion_FactorCorrupto(t *testing.T) {
	uc, f := newConversionFixture(t)
	// Un factor cero persistido por fuera del API no debe producir NaN ni
	// división por cero: la conversión lo rechaza.
	require.NoError(t, f.itemOverrides.Create(&entity.UnitOverride{
		ID: "corrupto", Scope: entity.ScopeItem, OwnerID: "item-1",
		UnitCode: "DOZ", Factor: dec("0"), Precision: 2, Active: true,
	}))

	_, err := uc.ForItem("item-1", dto.ConvertRequest{
		FromUnit: "PCS", ToUnit: "DOZ", Quantity: dec("12"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFactor)
}

func TestConversionForItem(t *testing.T) {
	uc, f := newConversionFixture(t)
	seedOverride(t, f.itemOverrides, entity.ScopeItem, "item-1", "BOX", "24")

	out, err := uc.ForItem("item-1", dto.ConvertRequest{
		FromUnit: "BOX", ToUnit: "PCS", Quantity: dec("3"),
	})
	require.NoError(t, err)
	assert.True(t, out.Result.Equal(dec("72")))
	assert.Equal(t, string(entity.ScopeItem), out.Scope)

	_, err = uc.ForItem("no-existe", dto.ConvertRequest{
		FromUnit: "BOX", ToUnit: "PCS", Quantity: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestConversion_RedondeoADestino(t *testing.T) {
	uc, f := newConversionFixture(t)
	seedOverride(t, f.itemOverrides, entity.ScopeItem, "item-1", "DOZ", "12")
	seedOverride(t, f.itemOverrides, entity.ScopeItem, "item-1", "BOX", "24")

	// 5 PCS en DOZ: 0.41666... redondeado a la precisión del destino (2).
	out, err := uc.ForItem("item-1", dto.ConvertRequest{
		FromUnit: "PCS", ToUnit: "DOZ", Quantity: dec("5"),
	})
	require.NoError(t, err)
	assert.True(t, out.Result.Equal(dec("0.42")), "result = %s", out.Result)
}
