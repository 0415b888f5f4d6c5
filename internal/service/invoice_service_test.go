package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstpro/internal/domain"
	"gstpro/internal/nic"
	"gstpro/internal/pdf"
	"gstpro/internal/service"
	"gstpro/mocks"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	profiles  *mocks.MockBusinessProfileRepo
	customers *mocks.MockCustomerRepo
	products  *mocks.MockProductRepo
	invoices  *mocks.MockInvoiceRepo
	svc       service.InvoiceService

	ownerID  uuid.UUID
	profile  *domain.BusinessProfile
	customer *domain.Customer
	product  *domain.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		profiles:  &mocks.MockBusinessProfileRepo{},
		customers: &mocks.MockCustomerRepo{},
		products:  &mocks.MockProductRepo{},
		invoices:  &mocks.MockInvoiceRepo{},
		ownerID:   uuid.New(),
	}
	f.profile = &domain.BusinessProfile{
		ID:                   uuid.New(),
		OwnerID:              f.ownerID,
		Name:                 "Acme Traders",
		GSTIN:                "29AAAAA0000A1Z5",
		State:                "Karnataka",
		CurrentInvoiceNumber: 7,
	}
	f.customer = &domain.Customer{
		ID:      uuid.New(),
		OwnerID: f.ownerID,
		Name:    "Beta Retail",
		GSTIN:   "29BBBBB0000B1Z4",
		State:   "Karnataka",
		Country: "India",
	}
	f.product = &domain.Product{
		ID:      uuid.New(),
		OwnerID: f.ownerID,
		Name:    "Widget",
		HSNSAC:  "8471",
		Price:   dec("100"),
		TaxRate: dec("18"),
		Unit:    "NOS",
	}
	f.invoices.BuilderProfile = f.profile

	renderer := pdf.NewRenderer(pdf.Config{}, zerolog.Nop())
	f.svc = service.NewInvoiceService(
		f.profiles, f.customers, f.products, f.invoices,
		renderer, nic.NewExporter(""), zerolog.Nop(),
	)
	return f
}

func (f *fixture) draft() *domain.InvoiceDraft {
	return &domain.InvoiceDraft{
		BusinessProfileID: f.profile.ID,
		CustomerID:        f.customer.ID,
		Items: []domain.ItemDraft{
			{ProductID: f.product.ID, Quantity: dec("10"), Rate: dec("100")},
		},
	}
}

func TestCreate_IntraState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.On("GetByID", ctx, f.ownerID, f.profile.ID).Return(f.profile, nil)
	f.customers.On("GetByID", ctx, f.ownerID, f.customer.ID).Return(f.customer, nil)
	f.products.On("GetByID", ctx, f.ownerID, f.product.ID).Return(f.product, nil)
	f.invoices.On("CreateNumbered", ctx, f.ownerID, f.profile.ID).Return(nil)

	inv, err := f.svc.Create(ctx, f.ownerID, f.draft())
	require.NoError(t, err)

	expectedNumber := fmt.Sprintf("AC-INV-%s-00007", time.Now().Format("06"))
	assert.Equal(t, expectedNumber, inv.InvoiceNumber)
	assert.Equal(t, domain.TaxTypeCGSTSGST, inv.TaxType)
	assert.True(t, inv.Subtotal.Equal(dec("1000")), "subtotal = %s", inv.Subtotal)
	assert.True(t, inv.CGSTTotal.Equal(dec("90")))
	assert.True(t, inv.SGSTTotal.Equal(dec("90")))
	assert.True(t, inv.IGSTTotal.IsZero())
	assert.True(t, inv.Total.Equal(dec("1180")))
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	f.invoices.AssertExpectations(t)
}

func TestCreate_InterState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.customer.State = "Maharashtra"

	f.profiles.On("GetByID", ctx, f.ownerID, f.profile.ID).Return(f.profile, nil)
	f.customers.On("GetByID", ctx, f.ownerID, f.customer.ID).Return(f.customer, nil)
	f.products.On("GetByID", ctx, f.ownerID, f.product.ID).Return(f.product, nil)
	f.invoices.On("CreateNumbered", ctx, f.ownerID, f.profile.ID).Return(nil)

	inv, err := f.svc.Create(ctx, f.ownerID, f.draft())
	require.NoError(t, err)
	assert.Equal(t, domain.TaxTypeIGST, inv.TaxType)
	assert.True(t, inv.IGSTTotal.Equal(dec("180")))
	assert.True(t, inv.CGSTTotal.IsZero())
	assert.True(t, inv.SGSTTotal.IsZero())
}

func TestCreate_NoItems(t *testing.T) {
	f := newFixture(t)
	draft := f.draft()
	draft.Items = nil

	_, err := f.svc.Create(context.Background(), f.ownerID, draft)
	assert.ErrorIs(t, err, domain.ErrInvoiceHasNoItems)
}

func TestCreate_IRNForcesApproved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.On("GetByID", ctx, f.ownerID, f.profile.ID).Return(f.profile, nil)
	f.customers.On("GetByID", ctx, f.ownerID, f.customer.ID).Return(f.customer, nil)
	f.products.On("GetByID", ctx, f.ownerID, f.product.ID).Return(f.product, nil)
	f.invoices.On("CreateNumbered", ctx, f.ownerID, f.profile.ID).Return(nil)

	draft := f.draft()
	draft.Status = domain.InvoiceStatusSent
	draft.IRN = "a1b2c3d4"

	inv, err := f.svc.Create(ctx, f.ownerID, draft)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusApproved, inv.Status)
}

func TestCreate_ImportedWithExplicitNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.On("GetByID", ctx, f.ownerID, f.profile.ID).Return(f.profile, nil)
	f.customers.On("GetByID", ctx, f.ownerID, f.customer.ID).Return(f.customer, nil)
	f.products.On("GetByID", ctx, f.ownerID, f.product.ID).Return(f.product, nil)
	f.invoices.On("ExistsByNumber", ctx, f.profile.ID, "LEGACY-001").Return(false, nil)
	f.invoices.On("CreateImported", ctx, mock.Anything, mock.Anything).Return(nil)

	draft := f.draft()
	draft.IsImported = true
	draft.InvoiceNumber = "LEGACY-001"

	inv, err := f.svc.Create(ctx, f.ownerID, draft)
	require.NoError(t, err)
	assert.Equal(t, "LEGACY-001", inv.InvoiceNumber)
	f.invoices.AssertNotCalled(t, "CreateNumbered", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ImportedDuplicateNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.profiles.On("GetByID", ctx, f.ownerID, f.profile.ID).Return(f.profile, nil)
	f.customers.On("GetByID", ctx, f.ownerID, f.customer.ID).Return(f.customer, nil)
	f.invoices.On("ExistsByNumber", ctx, f.profile.ID, "LEGACY-001").Return(true, nil)

	draft := f.draft()
	draft.IsImported = true
	draft.InvoiceNumber = "LEGACY-001"

	_, err := f.svc.Create(ctx, f.ownerID, draft)
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
}

func TestGeneratePDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	invoiceID := uuid.New()
	inv := &domain.Invoice{
		ID:                invoiceID,
		InvoiceNumber:     "AC-INV-26-00001",
		InvoiceDate:       time.Now(),
		BusinessProfileID: f.profile.ID,
		CustomerID:        f.customer.ID,
		TaxType:           domain.TaxTypeCGSTSGST,
		Total:             dec("1180"),
	}

	f.invoices.On("GetByID", ctx, f.ownerID, invoiceID).Return(inv, nil)
	f.profiles.On("GetByID", ctx, f.ownerID, f.profile.ID).Return(f.profile, nil)
	f.customers.On("GetByID", ctx, f.ownerID, f.customer.ID).Return(nil, domain.ErrCustomerNotFound)
	f.invoices.On("LinesByInvoice", ctx, invoiceID).Return([]domain.InvoiceLine{}, nil)

	// A missing customer still renders with placeholders.
	data, err := f.svc.GeneratePDF(ctx, f.ownerID, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportNICJSON_ErrorPayload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	invoiceID := uuid.New()

	f.invoices.On("GetByID", ctx, f.ownerID, invoiceID).Return(nil, domain.ErrInvoiceNotFound)

	payload, err := f.svc.ExportNICJSON(ctx, f.ownerID, invoiceID)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

	// The body is still a structured JSON error.
	var body map[string]string
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.Equal(t, domain.ErrInvoiceNotFound.Error(), body["error"])
}

func TestExportNICJSON_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	invoiceID := uuid.New()
	inv := &domain.Invoice{
		ID:                invoiceID,
		InvoiceNumber:     "AC-INV-26-00001",
		InvoiceDate:       time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		BusinessProfileID: f.profile.ID,
		CustomerID:        f.customer.ID,
		TaxType:           domain.TaxTypeCGSTSGST,
		Subtotal:          dec("1000"),
		TaxAmount:         dec("180"),
		CGSTTotal:         dec("90"),
		SGSTTotal:         dec("90"),
		Total:             dec("1180"),
		SupplyType:        domain.SupplyTypeB2B,
		DocumentType:      domain.DocumentTypeInvoice,
	}
	lines := []domain.InvoiceLine{
		{
			Item:    domain.InvoiceItem{Quantity: dec("10"), Rate: dec("100"), Subtotal: dec("1000"), Total: dec("1180"), CGST: dec("90"), SGST: dec("90"), TaxRate: dec("18"), HSNSAC: "8471"},
			Product: domain.Product{Name: "Widget", HSNSAC: "8471", Unit: "NOS"},
		},
	}

	f.invoices.On("GetByID", ctx, f.ownerID, invoiceID).Return(inv, nil)
	f.profiles.On("GetByID", ctx, f.ownerID, f.profile.ID).Return(f.profile, nil)
	f.customers.On("GetByID", ctx, f.ownerID, f.customer.ID).Return(f.customer, nil)
	f.invoices.On("LinesByInvoice", ctx, invoiceID).Return(lines, nil)

	payload, err := f.svc.ExportNICJSON(ctx, f.ownerID, invoiceID)
	require.NoError(t, err)

	doc, err := nic.ParseDocument(payload)
	require.NoError(t, err)
	assert.Equal(t, "AC-INV-26-00001", doc.DocDtls.No)
	assert.Equal(t, "29AAAAA0000A1Z5", doc.SellerDtls.Gstin)
}

func TestImportNICJSON(t *testing.T) {
	payload := []byte(`{
		"Version": "1.1",
		"TranDtls": {"TaxSch": "GST", "SupTyp": "B2B", "RegRev": "N", "IgstOnIntra": "N"},
		"DocDtls": {"Typ": "INV", "No": "EXT-001", "Dt": "14/02/2026"},
		"SellerDtls": {"Gstin": "29AAAAA0000A1Z5", "LglNm": "Acme Traders", "Loc": "Karnataka", "Stcd": "29"},
		"BuyerDtls": {"Gstin": "29BBBBB0000B1Z4", "LglNm": "Beta Retail", "Pos": "29", "Loc": "Karnataka", "Stcd": "29"},
		"ItemList": [{"SlNo": "1", "PrdDesc": "Widget", "IsServc": "N", "HsnCd": "8471",
			"Qty": 10, "Unit": "NOS", "UnitPrice": 100, "AssAmt": 1000, "GstRt": 18,
			"CgstAmt": 90, "SgstAmt": 90, "TotItemVal": 1180}],
		"ValDtls": {"AssVal": 1000, "CgstVal": 90, "SgstVal": 90, "TotInvVal": 1180}
	}`)

	t.Run("existing_profile_and_customer", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.profiles.On("GetByGSTIN", ctx, f.ownerID, "29AAAAA0000A1Z5").Return(f.profile, nil)
		f.customers.On("GetByGSTIN", ctx, f.ownerID, "29BBBBB0000B1Z4").Return(f.customer, nil)
		f.invoices.On("ExistsByNumber", ctx, f.profile.ID, "EXT-001").Return(false, nil)
		f.products.On("GetByHSNAndName", ctx, f.ownerID, "8471", "Widget").Return(f.product, nil)
		f.invoices.On("CreateImported", ctx, mock.Anything, mock.Anything).Return(nil)

		inv, err := f.svc.ImportNICJSON(ctx, f.ownerID, payload)
		require.NoError(t, err)
		assert.Equal(t, "EXT-001", inv.InvoiceNumber)
		assert.Equal(t, f.profile.ID, inv.BusinessProfileID)
		assert.Equal(t, f.customer.ID, inv.CustomerID)
		assert.Equal(t, domain.TaxTypeCGSTSGST, inv.TaxType)
		assert.True(t, inv.IsImported)
		f.invoices.AssertExpectations(t)
	})

	t.Run("creates_missing_records", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.profiles.On("GetByGSTIN", ctx, f.ownerID, "29AAAAA0000A1Z5").
			Return(nil, domain.ErrBusinessProfileNotFound)
		f.profiles.On("Create", ctx, mock.Anything).Return(nil)
		f.customers.On("GetByGSTIN", ctx, f.ownerID, "29BBBBB0000B1Z4").
			Return(nil, domain.ErrCustomerNotFound)
		f.customers.On("Create", ctx, mock.Anything).Return(nil)
		f.invoices.On("ExistsByNumber", ctx, mock.Anything, "EXT-001").Return(false, nil)
		f.products.On("GetByHSNAndName", ctx, f.ownerID, "8471", "Widget").
			Return(nil, domain.ErrProductNotFound)
		f.products.On("Create", ctx, mock.Anything).Return(nil)
		f.invoices.On("CreateImported", ctx, mock.Anything, mock.Anything).Return(nil)

		inv, err := f.svc.ImportNICJSON(ctx, f.ownerID, payload)
		require.NoError(t, err)
		assert.Equal(t, "EXT-001", inv.InvoiceNumber)
		f.profiles.AssertCalled(t, "Create", ctx, mock.Anything)
		f.customers.AssertCalled(t, "Create", ctx, mock.Anything)
		f.products.AssertCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("duplicate_number", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		f.profiles.On("GetByGSTIN", ctx, f.ownerID, "29AAAAA0000A1Z5").Return(f.profile, nil)
		f.customers.On("GetByGSTIN", ctx, f.ownerID, "29BBBBB0000B1Z4").Return(f.customer, nil)
		f.invoices.On("ExistsByNumber", ctx, f.profile.ID, "EXT-001").Return(true, nil)

		_, err := f.svc.ImportNICJSON(ctx, f.ownerID, payload)
		assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
		f.invoices.AssertNotCalled(t, "CreateImported", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed_payload", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ImportNICJSON(context.Background(), f.ownerID, []byte(`{}`))
		assert.ErrorIs(t, err, domain.ErrMalformedEInvoicePayload)
	})
}

func TestUpdate_RecomputesAndKeepsNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	invoiceID := uuid.New()
	existing := &domain.Invoice{
		ID:                invoiceID,
		InvoiceNumber:     "AC-INV-26-00007",
		BusinessProfileID: f.profile.ID,
		CustomerID:        f.customer.ID,
		CreatedAt:         time.Now().Add(-time.Hour),
	}

	f.invoices.On("GetByID", ctx, f.ownerID, invoiceID).Return(existing, nil)
	f.profiles.On("GetByID", ctx, f.ownerID, f.profile.ID).Return(f.profile, nil)
	f.customers.On("GetByID", ctx, f.ownerID, f.customer.ID).Return(f.customer, nil)
	f.products.On("GetByID", ctx, f.ownerID, f.product.ID).Return(f.product, nil)
	f.invoices.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)

	draft := f.draft()
	draft.Items[0].Quantity = dec("20")

	inv, err := f.svc.Update(ctx, f.ownerID, invoiceID, draft)
	require.NoError(t, err)
	assert.Equal(t, "AC-INV-26-00007", inv.InvoiceNumber)
	assert.Equal(t, invoiceID, inv.ID)
	assert.True(t, inv.Subtotal.Equal(dec("2000")), "subtotal = %s", inv.Subtotal)
	assert.True(t, inv.Total.Equal(dec("2360")))
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	invoiceID := uuid.New()

	f.invoices.On("Delete", ctx, f.ownerID, invoiceID).Return(nil)
	require.NoError(t, f.svc.Delete(ctx, f.ownerID, invoiceID))
	f.invoices.AssertExpectations(t)
}
