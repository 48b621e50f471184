package units_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/uom-engine/internal/domain"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores de PostgreSQL: (nil, nil) sin fila, y los dos índices únicos
// de overrides (clave compuesta e índice parcial del default).
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type ovKey struct{ owner, unit string }

type fakeOverrideRepo struct {
	rows map[ovKey]*entity.UnitOverride
}

var _ repository.UnitOverrideRepository = (*fakeOverrideRepo)(nil)

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{rows: make(map[ovKey]*entity.UnitOverride)}
}

func (f *fakeOverrideRepo) Create(ov *entity.UnitOverride) error {
	k := ovKey{ov.OwnerID, ov.UnitCode}
	if _, ok := f.rows[k]; ok {
		return domain.ErrDuplicateOverride
	}
	if ov.IsDefaultTransaction {
		if d, _ := f.FindDefault(ov.OwnerID); d != nil {
			return domain.ErrDefaultConflict
		}
	}
	cp := *ov
	f.rows[k] = &cp
	return nil
}

func (f *fakeOverrideRepo) FindOne(ownerID, unitCode string) (*entity.UnitOverride, error) {
	if ov, ok := f.rows[ovKey{ownerID, unitCode}]; ok {
		cp := *ov
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeOverrideRepo) ListByOwner(ownerID string) ([]*entity.UnitOverride, error) {
	var out []*entity.UnitOverride
	for _, ov := range f.rows {
		if ov.OwnerID == ownerID {
			cp := *ov
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Factor.Equal(out[j].Factor) {
			return out[i].Factor.LessThan(out[j].Factor)
		}
		return out[i].UnitCode < out[j].UnitCode
	})
	return out, nil
}

func (f *fakeOverrideRepo) Update(ov *entity.UnitOverride) error {
	k := ovKey{ov.OwnerID, ov.UnitCode}
	if _, ok := f.rows[k]; !ok {
		return domain.ErrNotFound
	}
	if ov.IsDefaultTransaction {
		if d, _ := f.FindDefault(ov.OwnerID); d != nil && d.UnitCode != ov.UnitCode {
			return domain.ErrDefaultConflict
		}
	}
	cp := *ov
	f.rows[k] = &cp
	return nil
}

func (f *fakeOverrideRepo) Delete(ownerID, unitCode string) error {
	k := ovKey{ownerID, unitCode}
	if _, ok := f.rows[k]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rows, k)
	return nil
}

func (f *fakeOverrideRepo) FindDefault(ownerID string) (*entity.UnitOverride, error) {
	for _, ov := range f.rows {
		if ov.OwnerID == ownerID && ov.IsDefaultTransaction {
			cp := *ov
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente sobre el repo compartido:
// los tests de casos de uso no ejercitan el aislamiento, solo la lógica.
type fakeTxRunner struct {
	repo repository.UnitOverrideRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repo repository.UnitOverrideRepository) error) error {
	return fn(f.repo)
}

type classKey struct{ class, unit string }

type fakeUOMRepo struct {
	units        map[string]*entity.UOM
	classes      []*entity.UOMClass
	classFactors map[classKey]*entity.UOMConversion
	referenced   map[string]bool
}

var _ repository.UOMRepository = (*fakeUOMRepo)(nil)

func newFakeUOMRepo(codes ...string) *fakeUOMRepo {
	f := &fakeUOMRepo{
		units:        make(map[string]*entity.UOM),
		classFactors: make(map[classKey]*entity.UOMConversion),
		referenced:   make(map[string]bool),
	}
	for _, c := range codes {
		f.units[c] = &entity.UOM{Code: c, Name: "Unidad " + c, ClassCode: "count", Active: true}
	}
	return f
}

func (f *fakeUOMRepo) Create(u *entity.UOM) error {
	if _, ok := f.units[u.Code]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	f.units[u.Code] = &cp
	return nil
}

func (f *fakeUOMRepo) GetByCode(code string) (*entity.UOM, error) {
	if u, ok := f.units[code]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUOMRepo) List() ([]*entity.UOM, error) {
	var out []*entity.UOM
	for _, u := range f.units {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (f *fakeUOMRepo) Update(u *entity.UOM) error {
	if _, ok := f.units[u.Code]; !ok {
		return domain.ErrUnitNotFound
	}
	cp := *u
	f.units[u.Code] = &cp
	return nil
}

func (f *fakeUOMRepo) Delete(code string) error {
	if _, ok := f.units[code]; !ok {
		return domain.ErrUnitNotFound
	}
	delete(f.units, code)
	return nil
}

func (f *fakeUOMRepo) IsReferenced(code string) (bool, error) {
	return f.referenced[code], nil
}

func (f *fakeUOMRepo) ListClasses() ([]*entity.UOMClass, error) {
	return f.classes, nil
}

func (f *fakeUOMRepo) GetClassFactor(classCode, unitCode string) (*entity.UOMConversion, error) {
	if conv, ok := f.classFactors[classKey{classCode, unitCode}]; ok {
		cp := *conv
		return &cp, nil
	}
	return nil, nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)

func (f *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	if it, ok := f.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

type fakeSkuRepo struct {
	skus map[string]*entity.SKU
}

var _ repository.SKURepository = (*fakeSkuRepo)(nil)

func (f *fakeSkuRepo) GetByID(id string) (*entity.SKU, error) {
	if s, ok := f.skus[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}
