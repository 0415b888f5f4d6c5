package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstpro/internal/domain"
	"gstpro/internal/pdf"
)

func newRenderer() *pdf.Renderer {
	// No engine path: the chain starts at the native styled tier.
	return pdf.NewRenderer(pdf.Config{}, zerolog.Nop())
}

func sampleInvoice() (*domain.Invoice, *domain.BusinessProfile, *domain.Customer, []domain.InvoiceLine) {
	inv := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "AC-INV-26-00001",
		InvoiceDate:   time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		TaxType:       domain.TaxTypeCGSTSGST,
		Subtotal:      decimal.RequireFromString("1000"),
		TaxAmount:     decimal.RequireFromString("180"),
		CGSTTotal:     decimal.RequireFromString("90"),
		SGSTTotal:     decimal.RequireFromString("90"),
		Total:         decimal.RequireFromString("1180"),
		DocumentType:  domain.DocumentTypeInvoice,
		Status:        domain.InvoiceStatusDraft,
	}
	profile := &domain.BusinessProfile{
		Name:  "Acme Traders",
		GSTIN: "29AAAAA0000A1Z5",
		State: "Karnataka",
	}
	customer := &domain.Customer{
		Name:  "Beta Retail",
		GSTIN: "29BBBBB0000B1Z4",
		State: "Karnataka",
	}
	lines := []domain.InvoiceLine{
		{
			Item: domain.InvoiceItem{
				Quantity:  decimal.RequireFromString("10"),
				Rate:      decimal.RequireFromString("100"),
				TaxRate:   decimal.RequireFromString("18"),
				Subtotal:  decimal.RequireFromString("1000"),
				Total:     decimal.RequireFromString("1180"),
				CGST:      decimal.RequireFromString("90"),
				SGST:      decimal.RequireFromString("90"),
				TaxAmount: decimal.RequireFromString("180"),
				HSNSAC:    "8471",
			},
			Product: domain.Product{Name: "Widget", Unit: "NOS"},
		},
	}
	return inv, profile, customer, lines
}

func TestRender_ProducesPDF(t *testing.T) {
	inv, profile, customer, lines := sampleInvoice()
	data := newRenderer().Render(context.Background(), inv, profile, customer, lines)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_InterStateInvoice(t *testing.T) {
	inv, profile, customer, lines := sampleInvoice()
	inv.TaxType = domain.TaxTypeIGST
	inv.CGSTTotal = decimal.Zero
	inv.SGSTTotal = decimal.Zero
	inv.IGSTTotal = decimal.RequireFromString("180")
	customer.State = "Maharashtra"

	data := newRenderer().Render(context.Background(), inv, profile, customer, lines)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_NilCustomer(t *testing.T) {
	inv, profile, _, lines := sampleInvoice()
	data := newRenderer().Render(context.Background(), inv, profile, nil, lines)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_AllNilInputs(t *testing.T) {
	data := newRenderer().Render(context.Background(), nil, nil, nil, nil)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_NoItems(t *testing.T) {
	inv, profile, customer, _ := sampleInvoice()
	data := newRenderer().Render(context.Background(), inv, profile, customer, nil)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
