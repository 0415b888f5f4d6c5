package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstpro/internal/domain"
	"gstpro/internal/port"
)

// MockInvoiceRepo is a mock implementation of port.InvoiceRepository. The
// profile handed to CreateNumbered builders is configurable so tests can
// exercise the numbering path without a database.
type MockInvoiceRepo struct {
	mock.Mock

	// BuilderProfile is passed to the InvoiceBuilder along with its
	// CurrentInvoiceNumber when CreateNumbered is expected to succeed.
	BuilderProfile *domain.BusinessProfile
}

func (m *MockInvoiceRepo) CreateNumbered(ctx context.Context, ownerID, profileID uuid.UUID, build port.InvoiceBuilder) (*domain.Invoice, error) {
	args := m.Called(ctx, ownerID, profileID)
	if args.Error(0) != nil {
		return nil, args.Error(0)
	}
	profile := m.BuilderProfile
	if profile == nil {
		profile = &domain.BusinessProfile{ID: profileID, CurrentInvoiceNumber: 1}
	}
	inv, _, err := build(profile.CurrentInvoiceNumber, profile)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (m *MockInvoiceRepo) CreateImported(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	args := m.Called(ctx, inv, items)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, ownerID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) ItemsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepo) LinesByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLine, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLine), args.Error(1)
}

func (m *MockInvoiceRepo) ExistsByNumber(ctx context.Context, profileID uuid.UUID, invoiceNumber string) (bool, error) {
	args := m.Called(ctx, profileID, invoiceNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepo) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) ListByProfile(ctx context.Context, ownerID, profileID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, ownerID, profileID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	args := m.Called(ctx, inv, items)
	return args.Error(0)
}

func (m *MockInvoiceRepo) UpdateStatus(ctx context.Context, ownerID, invoiceID uuid.UUID, status domain.InvoiceStatus) error {
	args := m.Called(ctx, ownerID, invoiceID, status)
	return args.Error(0)
}

func (m *MockInvoiceRepo) UpdatePaymentStatus(ctx context.Context, ownerID, invoiceID uuid.UUID, status domain.PaymentStatus) error {
	args := m.Called(ctx, ownerID, invoiceID, status)
	return args.Error(0)
}

func (m *MockInvoiceRepo) Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error {
	args := m.Called(ctx, ownerID, invoiceID)
	return args.Error(0)
}
