package port

import (
	"context"

	"github.com/google/uuid"

	"gstpro/internal/domain"
)

// InvoiceBuilder receives the profile's current invoice counter inside the
// numbering transaction and returns the fully computed invoice and items to
// persist. Returning an error aborts the transaction without consuming the
// counter.
type InvoiceBuilder func(counter int, profile *domain.BusinessProfile) (*domain.Invoice, []domain.InvoiceItem, error)

// InvoiceRepository defines the contract for invoice persistence. The
// invoice and its items always move together: creation, replacement, and
// deletion are atomic.
type InvoiceRepository interface {
	// CreateNumbered runs the numbering transaction: it locks the profile
	// row, hands the counter to build, inserts the returned invoice and
	// items, and increments the counter. The counter advances only when the
	// whole transaction commits.
	CreateNumbered(ctx context.Context, ownerID, profileID uuid.UUID, build InvoiceBuilder) (*domain.Invoice, error)

	// CreateImported inserts an invoice carrying its own number without
	// touching the profile counter.
	CreateImported(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error

	GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error)
	ItemsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error)
	LinesByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLine, error)
	ExistsByNumber(ctx context.Context, profileID uuid.UUID, invoiceNumber string) (bool, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	ListByProfile(ctx context.Context, ownerID, profileID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)

	// Update rewrites the invoice header and replaces its items in one
	// transaction.
	Update(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error
	UpdateStatus(ctx context.Context, ownerID, invoiceID uuid.UUID, status domain.InvoiceStatus) error
	UpdatePaymentStatus(ctx context.Context, ownerID, invoiceID uuid.UUID, status domain.PaymentStatus) error
	Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error
}
