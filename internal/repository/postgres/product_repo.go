package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstpro/internal/domain"
	"gstpro/internal/port"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `INSERT INTO products (id, owner_id, name, description, hsn_sac, sku, is_service,
		price, tax_rate, unit, stock_quantity, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.OwnerID, product.Name, product.Description, product.HSNSAC,
		product.SKU, product.IsService, product.Price, product.TaxRate, product.Unit,
		product.StockQuantity, product.LowStockThreshold, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, ownerID, productID uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product,
		"SELECT * FROM products WHERE id = $1 AND owner_id = $2", productID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &product, nil
}

func (r *productRepo) GetByHSNAndName(ctx context.Context, ownerID uuid.UUID, hsnSAC, name string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product,
		`SELECT * FROM products WHERE owner_id = $1 AND hsn_sac = $2 AND name = $3
		ORDER BY created_at LIMIT 1`,
		ownerID, hsnSAC, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByHSNAndName: %w", err)
	}
	return &product, nil
}

func (r *productRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Product, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM products WHERE owner_id = $1", ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("productRepo.ListByOwner count: %w", err)
	}

	var products []domain.Product
	err = r.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE owner_id = $1 ORDER BY name OFFSET $2 LIMIT $3",
		ownerID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("productRepo.ListByOwner: %w", err)
	}
	return products, total, nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()

	query := `UPDATE products SET name = $1, description = $2, hsn_sac = $3, sku = $4,
		is_service = $5, price = $6, tax_rate = $7, unit = $8, stock_quantity = $9,
		low_stock_threshold = $10, updated_at = $11
		WHERE id = $12 AND owner_id = $13`

	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.HSNSAC, product.SKU, product.IsService,
		product.Price, product.TaxRate, product.Unit, product.StockQuantity,
		product.LowStockThreshold, product.UpdatedAt, product.ID, product.OwnerID)
	if err != nil {
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, ownerID, productID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM products WHERE id = $1 AND owner_id = $2", productID, ownerID)
	if err != nil {
		return fmt.Errorf("productRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
