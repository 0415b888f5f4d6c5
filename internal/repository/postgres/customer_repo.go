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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if customer.Country == "" {
		customer.Country = "India"
	}

	query := `INSERT INTO customers (id, owner_id, name, gstin, address, city, state, country,
		pincode, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.OwnerID, customer.Name, customer.GSTIN, customer.Address,
		customer.City, customer.State, customer.Country, customer.Pincode,
		customer.Email, customer.Phone, customer.Notes, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, ownerID, customerID uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer,
		"SELECT * FROM customers WHERE id = $1 AND owner_id = $2", customerID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &customer, nil
}

func (r *customerRepo) GetByGSTIN(ctx context.Context, ownerID uuid.UUID, gstin string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer,
		"SELECT * FROM customers WHERE owner_id = $1 AND gstin = $2 ORDER BY created_at LIMIT 1",
		ownerID, gstin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByGSTIN: %w", err)
	}
	return &customer, nil
}

func (r *customerRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Customer, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM customers WHERE owner_id = $1", ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.ListByOwner count: %w", err)
	}

	var customers []domain.Customer
	err = r.db.SelectContext(ctx, &customers,
		"SELECT * FROM customers WHERE owner_id = $1 ORDER BY name OFFSET $2 LIMIT $3",
		ownerID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.ListByOwner: %w", err)
	}
	return customers, total, nil
}

func (r *customerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	customer.UpdatedAt = time.Now().UTC()

	query := `UPDATE customers SET name = $1, gstin = $2, address = $3, city = $4, state = $5,
		country = $6, pincode = $7, email = $8, phone = $9, notes = $10, updated_at = $11
		WHERE id = $12 AND owner_id = $13`

	res, err := r.db.ExecContext(ctx, query,
		customer.Name, customer.GSTIN, customer.Address, customer.City, customer.State,
		customer.Country, customer.Pincode, customer.Email, customer.Phone, customer.Notes,
		customer.UpdatedAt, customer.ID, customer.OwnerID)
	if err != nil {
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, ownerID, customerID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM customers WHERE id = $1 AND owner_id = $2", customerID, ownerID)
	if err != nil {
		return fmt.Errorf("customerRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
