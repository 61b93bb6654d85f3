package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	AlertUC     AlertGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Alertas de stock bajo (núcleo del servicio)
	alertHandler := NewAlertHandler(deps.AlertUC)
	companies.Get("/:companyID/alerts/low-stock", alertHandler.GetLowStock)
	companies.Get("/:companyID/alerts/low-stock/pdf", alertHandler.GetLowStockPDF)

	// Warehouses (anidadas en la empresa + acceso directo por id)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	companies.Post("/:companyID/warehouses", warehouseHandler.Create)
	companies.Get("/:companyID/warehouses", warehouseHandler.List)
	warehouses := api.Group("/warehouses")
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/stock", warehouseHandler.ListStock)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	companies.Post("/:companyID/products", productHandler.Create)
	companies.Get("/:companyID/products", productHandler.List)
	products := api.Group("/products")
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Suppliers y vínculo producto-proveedor
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	companies.Post("/:companyID/suppliers", supplierHandler.Create)
	companies.Get("/:companyID/suppliers", supplierHandler.List)
	suppliers := api.Group("/suppliers")
	suppliers.Get("/:id", supplierHandler.GetByID)
	products.Get("/:id/suppliers", supplierHandler.ListLinks)
	products.Put("/:id/primary-supplier", supplierHandler.SetPrimary)
}
