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

func TestCatalogCreateLookup(t *testing.T) {
	uoms := newFakeUOMRepo()
	uc := units.NewCatalogUseCase(uoms)

	out, err := uc.Create(dto.CreateUOMRequest{
		Code: "doz", Name: "Docena", ClassCode: "count", SortOrder: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "DOZ", out.Code)
	assert.True(t, out.Active)

	got, err := uc.Lookup("doz")
	require.NoError(t, err)
	assert.Equal(t, "Docena", got.Name)

	_, err = uc.Lookup("PALLET")
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)

	// El alta es idempotente solo en el sentido de rechazar el duplicado.
	_, err = uc.Create(dto.CreateUOMRequest{Code: "DOZ", Name: "Docena", ClassCode: "count"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateUOMRequest{Code: "", Name: "Sin código", ClassCode: "count"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogUpdate(t *testing.T) {
	uoms := newFakeUOMRepo("DOZ")
	uc := units.NewCatalogUseCase(uoms)

	name := "Docena comercial"
	active := false
	out, err := uc.Update("doz", dto.UpdateUOMRequest{Name: &name, Active: &active})
	require.NoError(t, err)
	assert.Equal(t, "Docena comercial", out.Name)
	assert.False(t, out.Active)

	_, err = uc.Update("PALLET", dto.UpdateUOMRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)
}

func TestCatalogDelete(t *testing.T) {
	uoms := newFakeUOMRepo("DOZ", "BOX")
	uoms.referenced["BOX"] = true
	uc := units.NewCatalogUseCase(uoms)

	require.NoError(t, uc.Delete("doz"))
	assert.ErrorIs(t, uc.Delete("DOZ"), domain.ErrUnitNotFound)

	// Una unidad usada por algún override no se puede borrar.
	assert.ErrorIs(t, uc.Delete("BOX"), domain.ErrUnitReferenced)
}

func TestCatalogToClassBase(t *testing.T) {
	uoms := newFakeUOMRepo("MM", "M")
	uoms.units["MM"].ClassCode = "length"
	uoms.units["M"].ClassCode = "length"
	uoms.classFactors[classKey{"length", "MM"}] = &entity.UOMConversion{
		ClassCode: "length", UnitCode: "MM", Factor: dec("0.001"),
	}
	uc := units.NewCatalogUseCase(uoms)

	out, err := uc.ToClassBase("mm", dec("2500"))
	require.NoError(t, err)
	assert.Equal(t, "MM", out.UnitCode)
	assert.Equal(t, "length", out.ClassCode)
	assert.True(t, out.BaseValue.Equal(dec("2.5")), "base = %s", out.BaseValue)

	// Unidad sin factor de clase cargado.
	_, err = uc.ToClassBase("M", dec("1"))
	assert.ErrorIs(t, err, domain.ErrUnitNotAvailable)

	_, err = uc.ToClassBase("KG", dec("1"))
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)
}
