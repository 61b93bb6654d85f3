package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores y su vínculo con productos.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un nuevo proveedor para la empresa.
func (uc *SupplierUseCase) Create(companyID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now()
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores por empresa con paginación.
func (uc *SupplierUseCase) List(companyID string, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SetPrimary marca al proveedor como primario del producto. El producto y el
// proveedor deben existir y pertenecer a la misma empresa. Cualquier primario
// anterior del producto queda degradado en la misma transacción.
func (uc *SupplierUseCase) SetPrimary(ctx context.Context, productID, supplierID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	supplier, err := uc.repo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if supplier.CompanyID != product.CompanyID {
		return domain.ErrConflict
	}
	return uc.repo.SetPrimary(ctx, productID, supplierID)
}

// ListLinksByProduct devuelve los vínculos producto-proveedor de un producto.
func (uc *SupplierUseCase) ListLinksByProduct(ctx context.Context, productID string) ([]dto.ProductSupplierLinkResponse, error) {
	links, err := uc.repo.ListLinksByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductSupplierLinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, dto.ProductSupplierLinkResponse{
			ProductID:  l.ProductID,
			SupplierID: l.SupplierID,
			IsPrimary:  l.IsPrimary,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
