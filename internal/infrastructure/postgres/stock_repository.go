package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo lecturas de niveles de stock sobre PostgreSQL.
// La tabla stock la escribe el sistema de inventario; aquí solo se consulta.
type StockRepo struct {
	pool *pgxpool.Pool
}

// NewStockRepository construye el adaptador de lectura de stock.
func NewStockRepository(pool *pgxpool.Pool) *StockRepo {
	return &StockRepo{pool: pool}
}

// Get obtiene el stock de un producto en una bodega.
func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.pool.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// ListByWarehouse lista los niveles de stock de una bodega con paginación.
func (r *StockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM stock WHERE warehouse_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock by warehouse: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
