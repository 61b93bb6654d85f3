package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertSupplierDTO proveedor primario adjunto a una alerta.
type AlertSupplierDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (bodega, producto).
// Invariantes del reporte: 0 < CurrentStock < Threshold y el producto tuvo
// al menos una venta dentro de la ventana de ventas recientes.
type LowStockAlertDTO struct {
	ProductID         string            `json:"product_id"`
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	WarehouseID       string            `json:"warehouse_id"`
	WarehouseName     string            `json:"warehouse_name"`
	CurrentStock      int64             `json:"current_stock"`
	Threshold         int64             `json:"threshold"`
	AvgDailySales     decimal.Decimal   `json:"avg_daily_sales"`     // unidades/día en la ventana, 2 decimales
	DaysUntilStockout *int64            `json:"days_until_stockout"` // null si no hay velocidad de venta
	Supplier          *AlertSupplierDTO `json:"supplier"`            // null si no hay proveedor primario
}

// LowStockAlertReportDTO respuesta completa del reporte de stock bajo.
type LowStockAlertReportDTO struct {
	CompanyID    string             `json:"company_id"`
	GeneratedAt  time.Time          `json:"generated_at"`
	LookbackDays int                `json:"lookback_days"`
	Items        []LowStockAlertDTO `json:"items"`
}
