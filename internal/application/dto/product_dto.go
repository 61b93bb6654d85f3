package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU               string          `json:"sku" validate:"required,min=1,max=100"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"low_stock_threshold" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	LowStockThreshold *int64           `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
