package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier y sus
// vínculos con productos (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)

	// SetPrimary marca al proveedor como primario del producto. Si otro link
	// del producto ya era primario, lo degrada en la misma transacción: hacia
	// adelante se garantiza a lo sumo un primario por producto.
	SetPrimary(ctx context.Context, productID, supplierID string) error

	// ListLinksByProduct devuelve los vínculos producto-proveedor del producto.
	ListLinksByProduct(ctx context.Context, productID string) ([]*entity.ProductSupplierLink, error)
}
