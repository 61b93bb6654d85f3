package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consultas de solo lectura del reporte de stock bajo.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// GetLowStockRows devuelve las filas (bodega, producto) de la empresa con
// stock estrictamente bajo el umbral del producto, todavía > 0 y con al menos
// una venta desde `since`.
//
// Detalles de la consulta:
//   - INNER JOIN a warehouses (con filtro de empresa) y products: filas sin
//     bodega o sin producto quedan fuera.
//   - El agregado de ventas usa COALESCE para tratar "sin filas" como 0.
//   - El proveedor primario se resuelve con un LATERAL ordenado por supplier_id
//     ASC con LIMIT 1: si los datos violan la unicidad del primario (más de un
//     link marcado), el desempate es determinista (menor id), nunca arbitrario.
//   - `since` viaja como parámetro $2; la fecha nunca se interpola en el SQL.
func (r *AlertRepo) GetLowStockRows(
	ctx context.Context,
	companyID string,
	since time.Time,
) ([]repository.LowStockRow, error) {
	const query = `
	SELECT
	    p.id                                  AS product_id,
	    p.name                                AS product_name,
	    p.sku,
	    w.id                                  AS warehouse_id,
	    w.name                                AS warehouse_name,
	    s.quantity                            AS current_stock,
	    p.low_stock_threshold                 AS threshold,
	    COALESCE(v.total_sold, 0)             AS recent_sales_total,
	    sup.id                                AS supplier_id,
	    sup.name                              AS supplier_name,
	    sup.contact_email                     AS supplier_contact_email
	FROM stock s
	JOIN warehouses w ON w.id = s.warehouse_id AND w.company_id = $1
	JOIN products   p ON p.id = s.product_id
	LEFT JOIN LATERAL (
	    SELECT SUM(oi.quantity) AS total_sold
	    FROM sales_order_items oi
	    WHERE oi.product_id = p.id
	      AND oi.created_at >= $2
	) v ON TRUE
	LEFT JOIN LATERAL (
	    SELECT l.supplier_id
	    FROM product_suppliers l
	    WHERE l.product_id = p.id
	      AND l.is_primary
	    ORDER BY l.supplier_id
	    LIMIT 1
	) pl ON TRUE
	LEFT JOIN suppliers sup ON sup.id = pl.supplier_id
	WHERE s.quantity > 0
	  AND s.quantity < p.low_stock_threshold
	  AND EXISTS (
	      SELECT 1
	      FROM sales_order_items oi
	      WHERE oi.product_id = p.id
	        AND oi.created_at >= $2
	  )
	ORDER BY w.name, p.sku`

	rows, err := r.pool.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("alerts.GetLowStockRows: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.SKU,
			&row.WarehouseID,
			&row.WarehouseName,
			&row.Quantity,
			&row.Threshold,
			&row.RecentSalesTotal,
			&row.SupplierID,
			&row.SupplierName,
			&row.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("alerts.GetLowStockRows scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("alerts.GetLowStockRows rows: %w", err)
	}
	return results, nil
}
