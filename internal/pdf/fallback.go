package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// simplifiedStrategy is the degraded layout: header, a plain line list, and
// totals, with a disclaimer marking the output as a simplified rendering.
type simplifiedStrategy struct{}

func (s *simplifiedStrategy) name() string { return "simplified" }

func (s *simplifiedStrategy) render(_ context.Context, v *viewModel) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, v.Title, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Invoice No: "+v.InvoiceNumber+"    Date: "+v.InvoiceDate, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Seller: "+v.SellerName+" (GSTIN: "+v.SellerGSTIN+")", "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Buyer: "+v.BuyerName+" (GSTIN: "+v.BuyerGSTIN+")", "", 1, "L", false, 0, "")
	doc.Ln(3)

	doc.SetFont("Helvetica", "", 9)
	for _, item := range v.Items {
		line := fmt.Sprintf("%d. %s  x%s  @ %s  = %s",
			item.SlNo, item.Description, item.Quantity, item.Rate, item.Total)
		doc.MultiCell(0, 5, line, "", "L", false)
	}
	doc.Ln(3)

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Subtotal: "+v.Subtotal, "", 1, "R", false, 0, "")
	if v.Intra {
		doc.CellFormat(0, 6, "CGST: "+v.CGSTTotal+"    SGST: "+v.SGSTTotal, "", 1, "R", false, 0, "")
	} else {
		doc.CellFormat(0, 6, "IGST: "+v.IGSTTotal, "", 1, "R", false, 0, "")
	}
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, "Total: "+v.Total, "", 1, "R", false, 0, "")

	doc.Ln(5)
	doc.SetFont("Helvetica", "I", 8)
	doc.MultiCell(0, 4, "This is a simplified rendering of the invoice. Formatting details may be missing.", "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("simplified layout: %w", err)
	}
	return buf.Bytes(), nil
}

// minimalStrategy emits only the identifying fields and the total, for use
// when even the simplified layout fails.
type minimalStrategy struct{}

func (s *minimalStrategy) name() string { return "minimal" }

func (s *minimalStrategy) render(_ context.Context, v *viewModel) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, v.Title, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Invoice No: "+v.InvoiceNumber, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Date: "+v.InvoiceDate, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 8, "Total: "+v.Total, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("minimal layout: %w", err)
	}
	return buf.Bytes(), nil
}

// staticFallbackPDF is a complete single-page document stating that invoice
// generation failed. Returned when every rendering tier errors, so the
// caller still receives well-formed PDF bytes.
const staticFallbackPDF = "%PDF-1.4\n" +
	"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
	"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n" +
	"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n" +
	"4 0 obj\n<< /Length 80 >>\nstream\nBT /F1 14 Tf 72 720 Td (Invoice PDF generation failed. Please retry.) Tj ET\nendstream\nendobj\n" +
	"5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n" +
	"trailer\n<< /Root 1 0 R >>\n%%EOF\n"
