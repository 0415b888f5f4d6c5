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

type businessProfileRepo struct {
	db *sqlx.DB
}

// NewBusinessProfileRepo creates a new PostgreSQL-backed BusinessProfileRepository.
func NewBusinessProfileRepo(db *sqlx.DB) port.BusinessProfileRepository {
	return &businessProfileRepo{db: db}
}

func (r *businessProfileRepo) Create(ctx context.Context, profile *domain.BusinessProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.CurrentInvoiceNumber < 1 {
		profile.CurrentInvoiceNumber = 1
	}

	query := `INSERT INTO business_profiles (id, owner_id, name, gstin, pan, address, city, state,
		state_code, pin, phone, email, bank_name, account_number, ifsc_code, is_default,
		current_invoice_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.OwnerID, profile.Name, profile.GSTIN, profile.PAN,
		profile.Address, profile.City, profile.State, profile.StateCode, profile.PIN,
		profile.Phone, profile.Email, profile.BankName, profile.AccountNumber,
		profile.IFSCCode, profile.IsDefault, profile.CurrentInvoiceNumber,
		profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("businessProfileRepo.Create: %w", err)
	}
	return nil
}

func (r *businessProfileRepo) GetByID(ctx context.Context, ownerID, profileID uuid.UUID) (*domain.BusinessProfile, error) {
	var profile domain.BusinessProfile
	err := r.db.GetContext(ctx, &profile,
		"SELECT * FROM business_profiles WHERE id = $1 AND owner_id = $2", profileID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBusinessProfileNotFound
		}
		return nil, fmt.Errorf("businessProfileRepo.GetByID: %w", err)
	}
	return &profile, nil
}

func (r *businessProfileRepo) GetByGSTIN(ctx context.Context, ownerID uuid.UUID, gstin string) (*domain.BusinessProfile, error) {
	var profile domain.BusinessProfile
	err := r.db.GetContext(ctx, &profile,
		"SELECT * FROM business_profiles WHERE owner_id = $1 AND gstin = $2", ownerID, gstin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBusinessProfileNotFound
		}
		return nil, fmt.Errorf("businessProfileRepo.GetByGSTIN: %w", err)
	}
	return &profile, nil
}

func (r *businessProfileRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.BusinessProfile, error) {
	var profiles []domain.BusinessProfile
	err := r.db.SelectContext(ctx, &profiles,
		"SELECT * FROM business_profiles WHERE owner_id = $1 ORDER BY is_default DESC, created_at", ownerID)
	if err != nil {
		return nil, fmt.Errorf("businessProfileRepo.ListByOwner: %w", err)
	}
	return profiles, nil
}

func (r *businessProfileRepo) Update(ctx context.Context, profile *domain.BusinessProfile) error {
	profile.UpdatedAt = time.Now().UTC()

	query := `UPDATE business_profiles SET name = $1, gstin = $2, pan = $3, address = $4,
		city = $5, state = $6, state_code = $7, pin = $8, phone = $9, email = $10,
		bank_name = $11, account_number = $12, ifsc_code = $13, is_default = $14, updated_at = $15
		WHERE id = $16 AND owner_id = $17`

	res, err := r.db.ExecContext(ctx, query,
		profile.Name, profile.GSTIN, profile.PAN, profile.Address, profile.City,
		profile.State, profile.StateCode, profile.PIN, profile.Phone, profile.Email,
		profile.BankName, profile.AccountNumber, profile.IFSCCode, profile.IsDefault,
		profile.UpdatedAt, profile.ID, profile.OwnerID)
	if err != nil {
		return fmt.Errorf("businessProfileRepo.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBusinessProfileNotFound
	}
	return nil
}

func (r *businessProfileRepo) Delete(ctx context.Context, ownerID, profileID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM business_profiles WHERE id = $1 AND owner_id = $2", profileID, ownerID)
	if err != nil {
		return fmt.Errorf("businessProfileRepo.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBusinessProfileNotFound
	}
	return nil
}
