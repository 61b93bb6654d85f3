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

	appalerts "github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/stock-alerts-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-alerts-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-alerts-api/internal/interfaces/http"
	"github.com/jhoicas/stock-alerts-api/pkg/config"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
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
		Int("lookback_days", cfg.Alerts.LookbackDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, stockRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)

	// Reporte de alertas: reloj real y ventana configurable vía ALERTS_LOOKBACK_DAYS.
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	alertUC := appalerts.NewLowStockAlertUseCase(alertRepo, pdfGenerator, cfg.Alerts.LookbackDays, time.Now)

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
		Title:    "Stock Alerts API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		WarehouseUC: warehouseUC,
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		AlertUC:     alertUC,
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

	log.Info().Msg("aplicación detenida")
}
