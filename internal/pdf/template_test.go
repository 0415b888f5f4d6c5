package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstpro/internal/domain"
)

func footerViewModel() *viewModel {
	inv := &domain.Invoice{
		InvoiceNumber: "AC-INV-26-00001",
		InvoiceDate:   time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		TaxType:       domain.TaxTypeCGSTSGST,
		Total:         decimal.RequireFromString("1180"),
	}
	profile := &domain.BusinessProfile{Name: "Acme Traders", GSTIN: "29AAAAA0000A1Z5"}
	return buildViewModel(inv, profile, nil, nil)
}

func TestBuildViewModel_GeneratedAt(t *testing.T) {
	v := footerViewModel()
	require.NotEmpty(t, v.GeneratedAt)

	_, err := time.Parse("02-01-2006 15:04", v.GeneratedAt)
	assert.NoError(t, err)
}

func TestInvoiceTemplate_SignatureFooter(t *testing.T) {
	v := footerViewModel()

	var buf bytes.Buffer
	require.NoError(t, invoiceTemplate.Execute(&buf, v))

	html := buf.String()
	assert.Contains(t, html, "For Acme Traders")
	assert.Contains(t, html, "Authorised Signatory")
	assert.Contains(t, html, "This is a computer-generated invoice and requires no signature.")
	assert.Contains(t, html, "Generated on "+v.GeneratedAt)
}

func TestGeneratedDisclaimer(t *testing.T) {
	v := footerViewModel()
	assert.Equal(t,
		"This is a computer-generated invoice and requires no signature. Generated on "+v.GeneratedAt,
		generatedDisclaimer(v))
}
