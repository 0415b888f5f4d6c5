package port

import (
	"context"

	"github.com/google/uuid"

	"gstpro/internal/domain"
)

// BusinessProfileRepository defines the contract for seller profile
// persistence. All query methods include ownerID to scope data per account.
type BusinessProfileRepository interface {
	Create(ctx context.Context, profile *domain.BusinessProfile) error
	GetByID(ctx context.Context, ownerID, profileID uuid.UUID) (*domain.BusinessProfile, error)
	GetByGSTIN(ctx context.Context, ownerID uuid.UUID, gstin string) (*domain.BusinessProfile, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.BusinessProfile, error)
	Update(ctx context.Context, profile *domain.BusinessProfile) error
	Delete(ctx context.Context, ownerID, profileID uuid.UUID) error
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, ownerID, customerID uuid.UUID) (*domain.Customer, error)
	GetByGSTIN(ctx context.Context, ownerID uuid.UUID, gstin string) (*domain.Customer, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, ownerID, customerID uuid.UUID) error
}

// ProductRepository defines the contract for product persistence.
// GetByHSNAndName supports the import path, which matches payload items to
// existing products by HSN code and description before creating new ones.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, ownerID, productID uuid.UUID) (*domain.Product, error)
	GetByHSNAndName(ctx context.Context, ownerID uuid.UUID, hsnSAC, name string) (*domain.Product, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, ownerID, productID uuid.UUID) error
}
