package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/uom-engine/internal/application/units"
	"github.com/jhoicas/uom-engine/internal/domain/entity"
	"github.com/jhoicas/uom-engine/internal/infrastructure/memory"
	"github.com/jhoicas/uom-engine/internal/infrastructure/pdf"
	"github.com/jhoicas/uom-engine/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/uom-engine/internal/interfaces/http"
	"github.com/jhoicas/uom-engine/pkg/config"
	"github.com/jhoicas/uom-engine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios. El catálogo se decora con la caché en memoria: es dato de
	// referencia y GetByCode es el camino caliente de resolver y conversión.
	uomRepo := memory.NewCatalogCache(postgres.NewUOMRepository(pool))
	itemRepo := postgres.NewItemRepository(pool)
	skuRepo := postgres.NewSKURepository(pool)
	itemOverrideRepo := postgres.NewItemUnitOverrideRepository(pool)
	skuOverrideRepo := postgres.NewSkuUnitOverrideRepository(pool)

	// Un solo store de overrides, instanciado por scope.
	itemOverridesUC := units.NewOverrideUseCase(
		entity.ScopeItem,
		units.NewItemOwnerSource(itemRepo),
		uomRepo,
		itemOverrideRepo,
		postgres.NewOverrideTxRunner(pool, entity.ScopeItem),
	)
	skuOverridesUC := units.NewOverrideUseCase(
		entity.ScopeSKU,
		units.NewSkuOwnerSource(skuRepo),
		uomRepo,
		skuOverrideRepo,
		postgres.NewOverrideTxRunner(pool, entity.ScopeSKU),
	)

	catalogUC := units.NewCatalogUseCase(uomRepo)
	availabilityUC := units.NewAvailabilityUseCase(itemRepo, skuRepo, itemOverrideRepo, skuOverrideRepo, uomRepo)
	conversionUC := units.NewConversionUseCase(availabilityUC)
	chartUC := units.NewChartUseCase(availabilityUC, pdf.NewMarotoChartGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "UOM Engine API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:      catalogUC,
		ItemOverrides:  itemOverridesUC,
		SkuOverrides:   skuOverridesUC,
		AvailabilityUC: availabilityUC,
		ConversionUC:   conversionUC,
		ChartUC:        chartUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("servidor detenido")
}
