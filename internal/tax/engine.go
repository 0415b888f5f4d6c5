// Package tax computes GST splits for invoice lines and aggregates them into
// invoice totals. All arithmetic is decimal; rounding to 2 places happens
// only at presentation boundaries, never here.
package tax

import (
	"strings"

	"github.com/shopspring/decimal"

	"gstpro/internal/domain"
)

var (
	hundred    = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

// Jurisdiction decides the tax type for an invoice: IGST when seller and
// buyer states differ, CGST+SGST otherwise. Decided once per invoice and
// applied uniformly to every line.
func Jurisdiction(sellerState, buyerState string) domain.TaxType {
	if strings.EqualFold(strings.TrimSpace(sellerState), strings.TrimSpace(buyerState)) {
		return domain.TaxTypeCGSTSGST
	}
	return domain.TaxTypeIGST
}

// LineTax is the tax split for a single line. Exactly one of IGST or the
// CGST/SGST pair is nonzero.
type LineTax struct {
	TaxAmount decimal.Decimal
	CGST      decimal.Decimal
	SGST      decimal.Decimal
	IGST      decimal.Decimal
}

// ComputeLine splits tax on a line subtotal (quantity x rate). IGST carries
// the full rate; CGST and SGST each carry half. A zero or negative rate
// yields zero tax, never an error.
func ComputeLine(subtotal, ratePercent decimal.Decimal, taxType domain.TaxType) LineTax {
	if ratePercent.Sign() <= 0 {
		return LineTax{
			TaxAmount: decimal.Zero,
			CGST:      decimal.Zero,
			SGST:      decimal.Zero,
			IGST:      decimal.Zero,
		}
	}
	if taxType == domain.TaxTypeIGST {
		igst := subtotal.Mul(ratePercent).Div(hundred)
		return LineTax{TaxAmount: igst, CGST: decimal.Zero, SGST: decimal.Zero, IGST: igst}
	}
	half := subtotal.Mul(ratePercent).Div(twoHundred)
	return LineTax{TaxAmount: half.Add(half), CGST: half, SGST: half, IGST: decimal.Zero}
}

// Totals accumulates line results into invoice-level aggregates.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	CGSTTotal decimal.Decimal
	SGSTTotal decimal.Decimal
	IGSTTotal decimal.Decimal
}

// Add folds one line into the running totals.
func (t *Totals) Add(lineSubtotal decimal.Decimal, line LineTax) {
	t.Subtotal = t.Subtotal.Add(lineSubtotal)
	t.TaxAmount = t.TaxAmount.Add(line.TaxAmount)
	t.CGSTTotal = t.CGSTTotal.Add(line.CGST)
	t.SGSTTotal = t.SGSTTotal.Add(line.SGST)
	t.IGSTTotal = t.IGSTTotal.Add(line.IGST)
}

// GrandTotal applies the document-level discount and round-off adjustment:
// subtotal + tax - discount + round_off. Discount is a presentation-level
// deduction taken after tax; it does not change the tax base.
func (t *Totals) GrandTotal(discount, roundOff decimal.Decimal) decimal.Decimal {
	return t.Subtotal.Add(t.TaxAmount).Sub(discount).Add(roundOff)
}

// Round2 rounds a monetary value to 2 decimal places for presentation.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
