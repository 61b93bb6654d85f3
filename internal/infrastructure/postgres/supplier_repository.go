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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, company_id, name, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyID, supplier.Name, supplier.ContactEmail,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, contact_email, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByCompany lista proveedores por empresa con paginación.
func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, contact_email, created_at, updated_at
		FROM suppliers WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SetPrimary marca al proveedor como primario del producto dentro de una
// transacción: degrada cualquier primario anterior y hace upsert del vínculo.
// Así se garantiza, hacia adelante, a lo sumo un primario por producto.
func (r *SupplierRepo) SetPrimary(ctx context.Context, productID, supplierID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	demote := `
		UPDATE product_suppliers SET is_primary = FALSE
		WHERE product_id = $1 AND is_primary AND supplier_id <> $2`
	if _, err := tx.Exec(ctx, demote, productID, supplierID); err != nil {
		return fmt.Errorf("demote primary supplier: %w", err)
	}

	upsert := `
		INSERT INTO product_suppliers (product_id, supplier_id, is_primary, created_at)
		VALUES ($1, $2, TRUE, now())
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET is_primary = TRUE`
	if _, err := tx.Exec(ctx, upsert, productID, supplierID); err != nil {
		return fmt.Errorf("upsert primary supplier: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListLinksByProduct devuelve los vínculos producto-proveedor del producto.
func (r *SupplierRepo) ListLinksByProduct(ctx context.Context, productID string) ([]*entity.ProductSupplierLink, error) {
	query := `
		SELECT product_id, supplier_id, is_primary, created_at
		FROM product_suppliers WHERE product_id = $1 ORDER BY supplier_id`
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductSupplierLink
	for rows.Next() {
		var l entity.ProductSupplierLink
		if err := rows.Scan(&l.ProductID, &l.SupplierID, &l.IsPrimary, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product supplier: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
