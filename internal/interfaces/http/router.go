package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/uom-engine/internal/application/units"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC      *units.CatalogUseCase
	ItemOverrides  *units.OverrideUseCase
	SkuOverrides   *units.OverrideUseCase
	AvailabilityUC *units.AvailabilityUseCase
	ConversionUC   *units.ConversionUseCase
	ChartUC        *units.ChartUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Las lecturas son públicas; toda
// escritura sobre catálogo u overrides exige Bearer Token con rol operativo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	auth := AuthMiddleware(deps.JWTSecret)
	operator := RequireRole("admin", "operador")

	// Catálogo de unidades
	uomHandler := NewUOMHandler(deps.CatalogUC)
	uoms := api.Group("/uoms")
	uoms.Get("/", uomHandler.List)
	uoms.Post("/", auth, operator, uomHandler.Create)
	uoms.Get("/:code", uomHandler.GetByCode)
	uoms.Put("/:code", auth, operator, uomHandler.Update)
	uoms.Delete("/:code", auth, operator, uomHandler.Delete)
	uoms.Get("/:code/class-base", uomHandler.ToClassBase)
	api.Get("/uom-classes", uomHandler.ListClasses)

	unitsHandler := NewUnitsHandler(deps.AvailabilityUC, deps.ConversionUC, deps.ChartUC)

	// Overrides por Item
	itemHandler := NewOverrideHandler(deps.ItemOverrides, "itemId")
	items := api.Group("/items/:itemId")
	items.Post("/unit-overrides", auth, operator, itemHandler.Create)
	items.Get("/unit-overrides", itemHandler.List)
	items.Get("/unit-overrides/:code", itemHandler.Get)
	items.Put("/unit-overrides/:code", auth, operator, itemHandler.Update)
	items.Delete("/unit-overrides/:code", auth, operator, itemHandler.Delete)
	items.Get("/units", unitsHandler.ItemUnits)
	items.Get("/units/chart", unitsHandler.ItemChart)
	items.Post("/convert", unitsHandler.ConvertForItem)

	// Overrides por SKU + resolución y conversión
	skuHandler := NewOverrideHandler(deps.SkuOverrides, "skuId")
	skus := api.Group("/skus/:skuId")
	skus.Post("/unit-overrides", auth, operator, skuHandler.Create)
	skus.Get("/unit-overrides", skuHandler.List)
	skus.Get("/unit-overrides/:code", skuHandler.Get)
	skus.Put("/unit-overrides/:code", auth, operator, skuHandler.Update)
	skus.Delete("/unit-overrides/:code", auth, operator, skuHandler.Delete)
	skus.Get("/units", unitsHandler.SKUUnits)
	skus.Post("/convert", unitsHandler.ConvertForSKU)
}
