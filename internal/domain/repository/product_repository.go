package repository

import "github.com/jhoicas/stock-alerts-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
}
