package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas, más lectura de stock.
type WarehouseUseCase struct {
	repo      repository.WarehouseRepository
	stockRepo repository.StockRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, stockRepo repository.StockRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, stockRepo: stockRepo}
}

// Create crea una nueva bodega para la empresa.
func (uc *WarehouseUseCase) Create(companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID. Devuelve nil si no existe.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas por empresa con paginación.
func (uc *WarehouseUseCase) List(companyID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListStock devuelve los niveles de stock actuales de una bodega (solo lectura).
func (uc *WarehouseUseCase) ListStock(warehouseID string, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.stockRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevelResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.StockLevelResponse{
			ProductID:   s.ProductID,
			WarehouseID: s.WarehouseID,
			Quantity:    s.Quantity,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
