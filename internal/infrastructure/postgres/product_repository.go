package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto. SKU único por empresa (constraint en DB).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, sku, name, description, price, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.SKU, product.Name, product.Description,
		product.Price, product.LowStockThreshold, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, sku, name, description, price, low_stock_threshold, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id))
}

// GetByCompanyAndSKU obtiene un producto por empresa y SKU.
func (r *ProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, sku, name, description, price, low_stock_threshold, created_at, updated_at
		FROM products WHERE company_id = $1 AND sku = $2`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, companyID, sku))
}

// Update actualiza un producto existente. El SKU no se modifica.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, low_stock_threshold = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.LowStockThreshold, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByCompany lista productos por empresa con paginación.
func (r *ProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, company_id, sku, name, description, price, low_stock_threshold, created_at, updated_at
		FROM products WHERE company_id = $1 ORDER BY sku LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Description,
			&p.Price, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Description,
		&p.Price, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
