package repository

import (
	"context"
	"time"
)

// LowStockRow resultado crudo (fila aplanada del join) de la consulta de stock bajo.
// Lo produce la DB; el use case lo convierte en DTO anidado.
//
// Garantías de la consulta para toda fila devuelta:
//   - 0 < Quantity < Threshold
//   - el producto tiene al menos una venta con created_at >= since
//   - los campos Supplier* son nil cuando el producto no tiene proveedor primario
type LowStockRow struct {
	ProductID        string
	ProductName      string
	SKU              string
	WarehouseID      string
	WarehouseName    string
	Quantity         int64 // stock actual en la bodega
	Threshold        int64 // low_stock_threshold del producto
	RecentSalesTotal int64 // SUM(quantity) de ventas desde `since`; 0 nunca ocurre por el filtro EXISTS
	SupplierID       *string
	SupplierName     *string
	SupplierEmail    *string
}

// AlertRepository define las consultas de lectura del reporte de stock bajo.
// Las implementaciones son read-only (no modifican datos).
type AlertRepository interface {
	// GetLowStockRows devuelve las filas (bodega, producto) de la empresa cuyo
	// stock está estrictamente bajo el umbral del producto, sigue siendo > 0 y
	// tuvo al menos una venta desde `since`. `since` debe pasarse siempre como
	// parámetro enlazado de la consulta, nunca interpolado en el texto SQL.
	GetLowStockRows(ctx context.Context, companyID string, since time.Time) ([]LowStockRow, error)
}
