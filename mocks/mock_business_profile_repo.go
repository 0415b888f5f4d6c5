package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstpro/internal/domain"
)

// MockBusinessProfileRepo is a mock implementation of port.BusinessProfileRepository.
type MockBusinessProfileRepo struct {
	mock.Mock
}

func (m *MockBusinessProfileRepo) Create(ctx context.Context, profile *domain.BusinessProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockBusinessProfileRepo) GetByID(ctx context.Context, ownerID, profileID uuid.UUID) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, ownerID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepo) GetByGSTIN(ctx context.Context, ownerID uuid.UUID, gstin string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, ownerID, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.BusinessProfile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepo) Update(ctx context.Context, profile *domain.BusinessProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockBusinessProfileRepo) Delete(ctx context.Context, ownerID, profileID uuid.UUID) error {
	args := m.Called(ctx, ownerID, profileID)
	return args.Error(0)
}
