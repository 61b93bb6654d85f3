package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario (multi-bodega).
// LowStockThreshold es una regla de negocio por producto: cantidad bajo la cual
// el stock se considera insuficiente. No existe un umbral global configurable.
type Product struct {
	ID                string
	CompanyID         string
	SKU               string // código único por empresa
	Name              string
	Description       string
	Price             decimal.Decimal // precio de venta
	LowStockThreshold int64           // unidades; 0 = producto sin umbral (nunca alerta)
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
