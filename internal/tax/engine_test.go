package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gstpro/internal/domain"
	"gstpro/internal/tax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestJurisdiction(t *testing.T) {
	assert.Equal(t, domain.TaxTypeCGSTSGST, tax.Jurisdiction("Karnataka", "Karnataka"))
	assert.Equal(t, domain.TaxTypeCGSTSGST, tax.Jurisdiction(" karnataka ", "KARNATAKA"))
	assert.Equal(t, domain.TaxTypeIGST, tax.Jurisdiction("Karnataka", "Maharashtra"))
	assert.Equal(t, domain.TaxTypeIGST, tax.Jurisdiction("Karnataka", ""))
}

func TestComputeLine_IGST(t *testing.T) {
	line := tax.ComputeLine(dec("1000"), dec("18"), domain.TaxTypeIGST)
	assert.True(t, line.IGST.Equal(dec("180")), "IGST = %s", line.IGST)
	assert.True(t, line.TaxAmount.Equal(dec("180")))
	assert.True(t, line.CGST.IsZero())
	assert.True(t, line.SGST.IsZero())
}

func TestComputeLine_CGSTSGST(t *testing.T) {
	line := tax.ComputeLine(dec("1000"), dec("18"), domain.TaxTypeCGSTSGST)
	assert.True(t, line.CGST.Equal(dec("90")), "CGST = %s", line.CGST)
	assert.True(t, line.SGST.Equal(dec("90")))
	assert.True(t, line.TaxAmount.Equal(dec("180")))
	assert.True(t, line.IGST.IsZero())
}

func TestComputeLine_HalvesAreExact(t *testing.T) {
	// An odd rate must still satisfy CGST + SGST == full tax.
	line := tax.ComputeLine(dec("999.99"), dec("5"), domain.TaxTypeCGSTSGST)
	assert.True(t, line.CGST.Add(line.SGST).Equal(line.TaxAmount))
}

func TestComputeLine_ZeroAndNegativeRate(t *testing.T) {
	for _, rate := range []string{"0", "-5"} {
		line := tax.ComputeLine(dec("1000"), dec(rate), domain.TaxTypeIGST)
		assert.True(t, line.TaxAmount.IsZero())
		assert.True(t, line.IGST.IsZero())
	}
}

func TestTotals(t *testing.T) {
	var totals tax.Totals
	totals.Add(dec("1000"), tax.ComputeLine(dec("1000"), dec("18"), domain.TaxTypeCGSTSGST))
	totals.Add(dec("500"), tax.ComputeLine(dec("500"), dec("12"), domain.TaxTypeCGSTSGST))

	assert.True(t, totals.Subtotal.Equal(dec("1500")))
	assert.True(t, totals.CGSTTotal.Equal(dec("120")), "CGST = %s", totals.CGSTTotal)
	assert.True(t, totals.SGSTTotal.Equal(dec("120")))
	assert.True(t, totals.TaxAmount.Equal(dec("240")))
	assert.True(t, totals.IGSTTotal.IsZero())
}

func TestGrandTotal(t *testing.T) {
	var totals tax.Totals
	totals.Add(dec("1000"), tax.ComputeLine(dec("1000"), dec("18"), domain.TaxTypeIGST))

	// subtotal + tax - discount + round_off
	total := totals.GrandTotal(dec("100"), dec("0.25"))
	assert.True(t, total.Equal(dec("1080.25")), "total = %s", total)

	total = totals.GrandTotal(decimal.Zero, decimal.Zero)
	assert.True(t, total.Equal(dec("1180")))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "1180.46", tax.Round2(dec("1180.455")).StringFixed(2))
}
