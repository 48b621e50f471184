// Package memory contiene adaptadores en memoria de los puertos de dominio.
package memory

import (
	"sync"

	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/domain/repository"
)

var _ repository.UOMRepository = (*CatalogCache)(nil)

// CatalogCache decorador de solo lectura sobre el repositorio de catálogo.
// El catálogo es dato de referencia estable y GetByCode es el camino caliente
// del resolver y de la conversión; se cachea por código y se invalida en cada
// escritura. Los fallos de lookup no se cachean.
type CatalogCache struct {
	inner repository.UOMRepository

	mu     sync.RWMutex
	byCode map[string]entity.UOM
}

// NewCatalogCache construye el decorador.
func NewCatalogCache(inner repository.UOMRepository) *CatalogCache {
	return &CatalogCache{inner: inner, byCode: make(map[string]entity.UOM)}
}

// GetByCode lee de la caché y delega solo en fallo.
func (c *CatalogCache) GetByCode(code string) (*entity.UOM, error) {
	c.mu.RLock()
	if u, ok := c.byCode[code]; ok {
		c.mu.RUnlock()
		cp := u
		return &cp, nil
	}
	c.mu.RUnlock()

	u, err := c.inner.GetByCode(code)
	if err != nil || u == nil {
		return u, err
	}
	c.mu.Lock()
	c.byCode[code] = *u
	c.mu.Unlock()
	cp := *u
	return &cp, nil
}

// Create delega e invalida la entrada.
func (c *CatalogCache) Create(u *entity.UOM) error {
	if err := c.inner.Create(u); err != nil {
		return err
	}
	c.invalidate(u.Code)
	return nil
}

// Update delega e invalida la entrada.
func (c *CatalogCache) Update(u *entity.UOM) error {
	if err := c.inner.Update(u); err != nil {
		return err
	}
	c.invalidate(u.Code)
	return nil
}

// Delete delega e invalida la entrada.
func (c *CatalogCache) Delete(code string) error {
	if err := c.inner.Delete(code); err != nil {
		return err
	}
	c.invalidate(code)
	return nil
}

// List siempre delega: el listado completo no es camino caliente.
func (c *CatalogCache) List() ([]*entity.UOM, error) { return c.inner.List() }

// IsReferenced siempre delega: depende de las tablas de overrides.
func (c *CatalogCache) IsReferenced(code string) (bool, error) { return c.inner.IsReferenced(code) }

// ListClasses siempre delega.
func (c *CatalogCache) ListClasses() ([]*entity.UOMClass, error) { return c.inner.ListClasses() }

// GetClassFactor siempre delega.
func (c *CatalogCache) GetClassFactor(classCode, unitCode string) (*entity.UOMConversion, error) {
	return c.inner.GetClassFactor(classCode, unitCode)
}

func (c *CatalogCache) invalidate(code string) {
	c.mu.Lock()
	delete(c.byCode, code)
	c.mu.Unlock()
}
