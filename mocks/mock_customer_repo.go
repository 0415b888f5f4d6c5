package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstpro/internal/domain"
)

// MockCustomerRepo is a mock implementation of port.CustomerRepository.
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, ownerID, customerID uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, ownerID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) GetByGSTIN(ctx context.Context, ownerID uuid.UUID, gstin string) (*domain.Customer, error) {
	args := m.Called(ctx, ownerID, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Customer, int, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Int(1), args.Error(2)
}

func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, ownerID, customerID uuid.UUID) error {
	args := m.Called(ctx, ownerID, customerID)
	return args.Error(0)
}
