package repository

import "github.com/jhoicas/stock-alerts-api/internal/domain/entity"

// StockRepository define el puerto de solo lectura para los niveles de stock.
// Este servicio no escribe stock; las mutaciones pertenecen al sistema de inventario.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Stock, error)
}
