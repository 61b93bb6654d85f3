package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se lee desde el
// sistema de inventario; aquí solo se administra el catálogo y su umbral.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El SKU es único por empresa.
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.LowStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		SKU:               in.SKU,
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El SKU no se modifica.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.LowStockThreshold = *in.LowStockThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
